package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/catalog-sync/internal/application/catalogsync"
	dsync "github.com/jhoicas/catalog-sync/internal/domain/catalogsync"
	"github.com/jhoicas/catalog-sync/internal/infrastructure/fastprint"
	"github.com/jhoicas/catalog-sync/internal/infrastructure/postgres"
)

func newSyncCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync <username|auto>",
		Short: "Descarga la lista remota y la reconcilia con la base local",
		Example: `  catalog-sync sync auto                 # identidades generadas para la hora actual ±1
  catalog-sync sync tesprogrammer180326C14  # usuario explícito (más variantes por hora)
  catalog-sync sync operador              # usuario literal, un único intento`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := a.cfg.Sync

			loc, err := cfg.Location()
			if err != nil {
				return err
			}
			client, err := fastprint.NewClient(fastprint.Options{
				Endpoint:          cfg.Endpoint,
				UserAgent:         cfg.UserAgent,
				Timeout:           cfg.AttemptTimeout,
				AttemptsPerSecond: cfg.AttemptsPerSecond,
			})
			if err != nil {
				return err
			}

			pool, err := postgres.NewPool(ctx, a.cfg.DB)
			if err != nil {
				return fmt.Errorf("conexión a PostgreSQL: %w", err)
			}
			defer pool.Close()

			uc := catalogsync.NewSyncUseCase(
				client,
				catalogsync.NewReconciler(postgres.NewTxRunner(pool)),
				catalogsync.Config{
					PasswordPrefix: cfg.PasswordPrefix,
					Scheme: dsync.IdentityScheme{
						Prefix:    cfg.UsernamePrefix,
						Separator: cfg.HourSeparator,
						Marker:    cfg.UsernameMarker,
					},
					Location: loc,
				},
				a.log.Zerolog(),
			)

			res, err := uc.Run(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sync ok: usuario=%s intentos=%d recibidos=%d creados=%d actualizados=%d omitidos=%d\n",
				res.Username, res.Attempts,
				res.Report.Received, res.Report.Created, res.Report.Updated, res.Report.Skipped)
			return nil
		},
	}
}
