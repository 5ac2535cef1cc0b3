package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pocketfin/pocket/internal/cli"
	"github.com/pocketfin/pocket/internal/model"
	"github.com/pocketfin/pocket/internal/store"
	"github.com/pocketfin/pocket/internal/types"
)

var (
	flagAddAmount      string
	flagAddType        string
	flagAddCategory    string
	flagAddDate        string
	flagAddDescription string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction",
	Long:  "Record an income or expense transaction. Without --amount an interactive form opens.",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddAmount, "amount", "a", "", "Amount, e.g. 12.50")
	addCmd.Flags().StringVarP(&flagAddType, "type", "t", "expense", "Transaction type (income or expense)")
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Category name")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Date as YYYY-MM-DD (default today)")
	addCmd.Flags().StringVarP(&flagAddDescription, "description", "m", "", "Description")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if !cmd.Flags().Changed("amount") {
		if err := promptTransaction(st); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
	}

	amount, err := decimal.NewFromString(flagAddAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %q", flagAddAmount)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}

	kind := model.Kind(strings.ToLower(flagAddType))
	if !kind.Valid() {
		return fmt.Errorf("invalid type %q (want income or expense)", flagAddType)
	}

	date := types.Today()
	if flagAddDate != "" {
		date, err = types.ParseDate(flagAddDate)
		if err != nil {
			return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", flagAddDate)
		}
	}

	tx := st.AddTransaction(model.TransactionData{
		Amount:      amount,
		Kind:        kind,
		Category:    flagAddCategory,
		Date:        date,
		Description: flagAddDescription,
	})

	sign := "-"
	if tx.Kind == model.KindIncome {
		sign = "+"
	}
	fmt.Printf("  Recorded %s%s  %s  %s\n",
		sign,
		cli.FormatAmount(tx.Amount, cfg.General.CurrencySymbol),
		tx.Category,
		cli.FormatDate(tx.Date),
	)
	return nil
}

// promptTransaction fills the add flags from an interactive form.
func promptTransaction(st *store.Store) error {
	snap := st.Snapshot()
	catOpts := make([]huh.Option[string], 0, len(snap.Categories))
	for _, cat := range snap.Categories {
		catOpts = append(catOpts, huh.NewOption(cat.Icon+" "+cat.Name, cat.Name))
	}

	if flagAddDate == "" {
		flagAddDate = types.Today().String()
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Expense", "expense"),
					huh.NewOption("Income", "income"),
				).
				Value(&flagAddType),
			huh.NewInput().
				Title("Amount").
				Placeholder("12.50").
				Validate(func(s string) error {
					d, err := decimal.NewFromString(s)
					if err != nil || !d.IsPositive() {
						return fmt.Errorf("enter a positive amount")
					}
					return nil
				}).
				Value(&flagAddAmount),
			huh.NewSelect[string]().
				Title("Category").
				Options(catOpts...).
				Value(&flagAddCategory),
			huh.NewInput().
				Title("Date").
				Validate(func(s string) error {
					_, err := types.ParseDate(s)
					return err
				}).
				Value(&flagAddDate),
			huh.NewInput().
				Title("Description").
				Value(&flagAddDescription),
		),
	)

	return form.Run()
}
