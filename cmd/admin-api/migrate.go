package main

import (
	"github.com/spf13/cobra"

	"github.com/nmarchetti/shop-admin/internal/config"
	"github.com/nmarchetti/shop-admin/internal/postgres"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			pool, err := postgres.Connect(cmd.Context(), cfg.PostgresDSN)
			if err != nil {
				return err
			}
			defer pool.Close()
			return postgres.Migrate(cmd.Context(), pool)
		},
	}
}
