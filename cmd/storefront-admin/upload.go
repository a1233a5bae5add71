package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/cobra"

	"github.com/dtroode/storefront-server/internal/config"
	storage "github.com/dtroode/storefront-server/internal/storage/minio"
)

func uploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload [file]",
		Short: "Upload a product file and print the key to store as its file path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			key, _ := cmd.Flags().GetString("key")
			if key == "" {
				key = productFileKey(args[0])
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer f.Close()

			info, err := f.Stat()
			if err != nil {
				return fmt.Errorf("failed to stat file: %w", err)
			}

			client, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
				Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
				Secure: cfg.Storage.UseSSL,
			})
			if err != nil {
				return fmt.Errorf("failed to create minio client: %w", err)
			}

			files, err := storage.NewProductFiles(cmd.Context(), client, cfg.Storage.Bucket)
			if err != nil {
				return err
			}

			if err := files.Put(cmd.Context(), key, f, info.Size(), mime.TypeByExtension(filepath.Ext(key))); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}

	cmd.Flags().String("key", "", "Object key (default products/<uuid>-<file name>)")

	return cmd
}

func productFileKey(path string) string {
	return "products/" + uuid.NewString() + "-" + filepath.Base(path)
}
