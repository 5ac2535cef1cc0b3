package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/pocketfin/pocket/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	days := fmt.Sprintf("%d", cfg.General.DefaultDays)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default time range").
				Options(
					huh.NewOption("7 days", "7"),
					huh.NewOption("30 days", "30"),
					huh.NewOption("90 days", "90"),
					huh.NewOption("365 days", "365"),
				).
				Value(&days),
			huh.NewInput().
				Title("Currency symbol").
				Validate(func(s string) error {
					if s == "" {
						return errors.New("enter a symbol")
					}
					return nil
				}).
				Value(&cfg.General.CurrencySymbol),
			huh.NewSelect[string]().
				Title("Storage backend").
				Options(
					huh.NewOption("SQLite journal (recommended)", config.BackendSQLite),
					huh.NewOption("JSON snapshot file", config.BackendJSON),
				).
				Value(&cfg.Storage.Backend),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Catppuccin Mocha", "catppuccin-mocha"),
					huh.NewOption("Tokyo Night", "tokyo-night"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&cfg.Appearance.Theme),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	if n, err := strconv.Atoi(days); err == nil {
		cfg.General.DefaultDays = n
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `pocket setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
