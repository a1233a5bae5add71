// Command storefront-admin holds operator tasks for the storefront.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront-admin",
		Short:         "Operator tasks for the storefront server",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(hashPasswordCmd())
	root.AddCommand(migrateCmd())
	root.AddCommand(uploadCmd())

	return root
}
