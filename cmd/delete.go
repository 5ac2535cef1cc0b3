package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocketfin/pocket/internal/cli"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a transaction",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	tx, err := resolveTransaction(st, args[0])
	if err != nil {
		return err
	}

	st.DeleteTransaction(tx.ID)
	fmt.Printf("  Deleted %s  %s  %s  %s\n",
		shortID(tx.ID),
		cli.FormatDate(tx.Date),
		tx.Category,
		cli.FormatAmount(tx.Amount, cfg.General.CurrencySymbol),
	)
	return nil
}
