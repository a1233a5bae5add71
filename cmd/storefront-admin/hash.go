package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/storefront-server/internal/credential"
)

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print the digest to set as ADMIN_HASHED_PASSWORD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return fmt.Errorf("password must not be empty")
			}
			fmt.Fprintln(cmd.OutOrStdout(), credential.Hash(args[0]))
			return nil
		},
	}
}
