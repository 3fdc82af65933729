package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/catalog-sync/pkg/config"
	"github.com/jhoicas/catalog-sync/pkg/logger"
)

// app estado compartido por los subcomandos; se inicializa en PersistentPreRunE.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	logLevel string
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "catalog-sync",
		Short: "Sincroniza productos desde la API de inventario remota",
		Long: `catalog-sync descarga la lista de productos de la API remota usando la
credencial diaria derivada y reconcilia categorías, estados y productos
con la base de datos local en una sola transacción.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "nivel de log: trace, debug, info, warn, error (sobrescribe LOG_LEVEL)")

	root.AddCommand(newSyncCommand(a), newMigrateCommand(a))
	return root
}

func (a *app) setup(*cobra.Command, []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.App.LogLevel = a.logLevel
	}
	a.cfg = cfg
	a.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	return nil
}
