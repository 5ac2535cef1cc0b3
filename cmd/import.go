package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/pocketfin/pocket/internal/export"
)

var flagImportForce bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore data from a JSON export",
	Long:  "Replace all transactions, budgets, and categories with the contents of a JSON export.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().BoolVar(&flagImportForce, "force", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	snap, err := export.ReadJSON(f)
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	existing := len(st.Snapshot().Transactions)
	if existing > 0 && !flagImportForce {
		var confirmed bool
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Replace %d existing transactions with %d imported ones?",
				existing, len(snap.Transactions))).
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("  Import cancelled.")
			return nil
		}
	}

	st.LoadSnapshot(snap)
	fmt.Printf("  Imported %d transactions, %d budgets, %d categories\n",
		len(snap.Transactions), len(snap.Budgets), len(snap.Categories))
	return nil
}
