package cmd

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pocketfin/pocket/internal/cli"
	"github.com/pocketfin/pocket/internal/model"
	"github.com/pocketfin/pocket/internal/store"
	"github.com/pocketfin/pocket/internal/types"
)

var (
	flagEditAmount      string
	flagEditType        string
	flagEditCategory    string
	flagEditDate        string
	flagEditDescription string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a transaction",
	Long:  "Edit a transaction by id. Only the fields given as flags change; ids may be abbreviated to a unique prefix.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&flagEditAmount, "amount", "a", "", "New amount")
	editCmd.Flags().StringVarP(&flagEditType, "type", "t", "", "New type (income or expense)")
	editCmd.Flags().StringVarP(&flagEditCategory, "category", "c", "", "New category name")
	editCmd.Flags().StringVar(&flagEditDate, "date", "", "New date as YYYY-MM-DD")
	editCmd.Flags().StringVarP(&flagEditDescription, "description", "m", "", "New description")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	tx, err := resolveTransaction(st, args[0])
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("amount") {
		amount, err := decimal.NewFromString(flagEditAmount)
		if err != nil || !amount.IsPositive() {
			return fmt.Errorf("invalid amount %q", flagEditAmount)
		}
		tx.Amount = amount
	}
	if cmd.Flags().Changed("type") {
		kind := model.Kind(strings.ToLower(flagEditType))
		if !kind.Valid() {
			return fmt.Errorf("invalid type %q (want income or expense)", flagEditType)
		}
		tx.Kind = kind
	}
	if cmd.Flags().Changed("category") {
		tx.Category = flagEditCategory
	}
	if cmd.Flags().Changed("date") {
		date, err := types.ParseDate(flagEditDate)
		if err != nil {
			return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", flagEditDate)
		}
		tx.Date = date
	}
	if cmd.Flags().Changed("description") {
		tx.Description = flagEditDescription
	}

	st.UpdateTransaction(tx)
	fmt.Printf("  Updated %s  %s  %s\n",
		shortID(tx.ID),
		tx.Category,
		cli.FormatAmount(tx.Amount, cfg.General.CurrencySymbol),
	)
	return nil
}

// resolveTransaction finds a transaction by full id or unique prefix.
func resolveTransaction(st *store.Store, id string) (model.Transaction, error) {
	snap := st.Snapshot()

	var matches []model.Transaction
	for _, tx := range snap.Transactions {
		if tx.ID == id {
			return tx, nil
		}
		if strings.HasPrefix(tx.ID, id) {
			matches = append(matches, tx)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Transaction{}, fmt.Errorf("no transaction with id %q", id)
	default:
		return model.Transaction{}, fmt.Errorf("id %q is ambiguous (%d matches)", id, len(matches))
	}
}
