// Package cmd implements the pocket CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pocketfin/pocket/internal/config"
	"github.com/pocketfin/pocket/internal/storage"
	"github.com/pocketfin/pocket/internal/store"
)

var (
	flagDays    int
	flagDataDir string
	flagBackend string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pocket",
	Short: "Personal finance tracker",
	Long:  "Track transactions, set category budgets, and review spending from your terminal.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", 0, "Time window in days (7, 30, 90, 365; 0 = config default)")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override data directory")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Storage backend (sqlite or json)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// openStore is the shared loading path used by all commands: config,
// logger, storage backend, then the store built from persisted state.
// The caller must Close the returned store.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}
	if flagDataDir != "" {
		cfg.Storage.DataDir = flagDataDir
	}
	if flagBackend != "" {
		cfg.Storage.Backend = flagBackend
	}

	log := newLogger()

	var backend storage.Backend
	switch cfg.Storage.Backend {
	case config.BackendJSON:
		backend = storage.NewSnapshotFile(cfg.SnapshotPath())
	case config.BackendSQLite:
		backend, err = storage.OpenSQLite(cfg.JournalPath())
		if err != nil {
			return nil, cfg, fmt.Errorf("opening journal: %w", err)
		}
	default:
		return nil, cfg, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return store.New(backend, log), cfg, nil
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// effectiveDays resolves the time window: the --days flag when given,
// the configured default otherwise.
func effectiveDays(cfg config.Config) int {
	if flagDays > 0 {
		return flagDays
	}
	return cfg.General.DefaultDays
}
