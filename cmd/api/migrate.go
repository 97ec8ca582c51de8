package main

import (
	"errors"
	"strings"

	pg "child-immunization-tracker/internal/adapters/storage/postgres"
	"child-immunization-tracker/internal/config"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the Postgres schema (idempotent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if strings.TrimSpace(cfg.DatabaseURL) == "" {
				return errors.New("DATABASE_URL is required")
			}

			db, err := pg.Open(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := pg.CreateSchema(cmd.Context(), db); err != nil {
				return err
			}

			newLogger(cfg).Info("schema ready", nil)
			return nil
		},
	}
}
