// Package commands implements the ledgerctl command tree.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"moneysaving/internal/buildinfo"
	"moneysaving/internal/config"
	"moneysaving/internal/ledger"
	applog "moneysaving/internal/log"
	"moneysaving/internal/storage"
)

// app holds what every subcommand needs; it is filled in before RunE.
type app struct {
	dbPath  string
	verbose bool

	logger *applog.Logger
	store  *storage.Store
	svc    *ledger.Service
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ledgerctl",
		Short:   "Inspect and maintain the money-saving ledger",
		Version: fmt.Sprintf("%s (commit: %s)", buildinfo.Version, buildinfo.Commit),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", config.Load().SQLiteDBPath, "path to the ledger database")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log store activity to stderr")

	rootCmd.AddCommand(
		newAddCommand(a),
		newListCommand(a),
		newShowCommand(a),
		newEditCommand(a),
		newDeleteCommand(a),
		newTotalsCommand(a),
		newBalancesCommand(a),
		newSourcesCommand(a),
		newSummaryCommand(a),
		newConvertCommand(a),
		newWipeCommand(a),
		newImportCommand(a),
		newExportCommand(a),
	)
	for _, sub := range rootCmd.Commands() {
		a.closeAfter(sub)
	}

	return rootCmd
}

// closeAfter releases the store once cmd returns. Cobra skips post-run
// hooks when RunE fails, so the close is deferred inside RunE itself.
func (a *app) closeAfter(cmd *cobra.Command) {
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) (err error) {
		defer func() { err = errors.Join(err, a.close()) }()
		return run(cmd, args)
	}
}

func (a *app) open(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelInfo
	}
	a.logger = applog.New(applog.Config{
		Level:     level,
		Component: applog.ComponentCLI,
		Output:    cmd.ErrOrStderr(),
	})

	a.store = storage.New(a.dbPath, storage.WithLogger(a.logger.WithComponent(applog.ComponentStorage).Slog()))
	// a one-shot process gains nothing from caching aggregates
	a.svc = ledger.NewService(a.store, ledger.Options{CacheSize: 1, CacheTTL: time.Nanosecond, Logger: a.logger.Slog()})
	return nil
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
