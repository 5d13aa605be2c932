package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SscSPs/trust_ledger_app/pkg/database"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applied, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, slog.Default())
			if err != nil {
				return err
			}
			if applied {
				fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
			}
			return nil
		},
	})
	return cmd
}
