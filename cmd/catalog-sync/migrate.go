package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/catalog-sync/internal/infrastructure/postgres"
)

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <up|down|version>",
		Short:     "Aplica o revierte las migraciones del esquema",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "version"},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := postgres.NewMigrator(a.cfg.DB.ConnectionString(), a.log.Zerolog())
			if err != nil {
				return err
			}
			defer m.Close()

			switch args[0] {
			case "up":
				return m.Up()
			case "down":
				return m.Down()
			default:
				v, dirty, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", v, dirty)
				return nil
			}
		},
	}
}
