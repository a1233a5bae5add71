package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/storefront-server/database"
	"github.com/dtroode/storefront-server/internal/config"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			status, _ := cmd.Flags().GetBool("status")
			if status {
				return database.Status(cmd.Context(), cfg.Database.DSN)
			}

			if err := database.Migrate(cmd.Context(), cfg.Database.DSN); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}

	cmd.Flags().Bool("status", false, "Print migration status instead of migrating")

	return cmd
}
