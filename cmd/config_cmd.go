package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocketfin/pocket/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default days:    %d\n", cfg.General.DefaultDays)
	fmt.Printf("    Currency symbol: %s\n", cfg.General.CurrencySymbol)
	fmt.Println()

	fmt.Println("  [Storage]")
	fmt.Printf("    Backend:  %s\n", cfg.Storage.Backend)
	fmt.Printf("    Data dir: %s\n", cfg.EffectiveDataDir())
	switch cfg.Storage.Backend {
	case config.BackendJSON:
		fmt.Printf("    File:     %s\n", cfg.SnapshotPath())
	default:
		fmt.Printf("    File:     %s\n", cfg.JournalPath())
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `pocket setup` to reconfigure.")
	return nil
}
