package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pocketfin/pocket/internal/cli"
	"github.com/pocketfin/pocket/internal/model"
	"github.com/pocketfin/pocket/internal/report"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage category budgets",
	RunE:  runBudgetList,
}

var budgetSetCmd = &cobra.Command{
	Use:   "set <category> <limit>",
	Short: "Set or replace the budget for a category",
	Args:  cobra.ExactArgs(2),
	RunE:  runBudgetSet,
}

var budgetListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all budgets with live progress",
	RunE:  runBudgetList,
}

func init() {
	budgetCmd.AddCommand(budgetSetCmd)
	budgetCmd.AddCommand(budgetListCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetSet(_ *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	category := args[0]
	limit, err := decimal.NewFromString(args[1])
	if err != nil || !limit.IsPositive() {
		return fmt.Errorf("invalid limit %q (want a positive amount)", args[1])
	}

	st.SetBudget(model.Budget{Category: category, Limit: limit})

	spent := st.SpentForCategory(category)
	fmt.Printf("  Budget for %s set to %s (spent so far: %s)\n",
		category,
		cli.FormatAmount(limit, cfg.General.CurrencySymbol),
		cli.FormatAmount(spent, cfg.General.CurrencySymbol),
	)
	return nil
}

func runBudgetList(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	rows := report.BudgetRows(st.Snapshot())
	if len(rows) == 0 {
		fmt.Println("\n  No budgets set. Try `pocket budget set Food 500`.")
		return nil
	}

	symbol := cfg.General.CurrencySymbol
	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		status := cli.RenderBudgetBar(row.Progress, 20)
		if row.Over {
			status += " " + cli.ExpenseStyle.Render("over")
		}
		tableRows = append(tableRows, []string{
			row.Category.Icon + " " + row.Category.Name,
			cli.FormatAmount(row.Spent, symbol),
			cli.FormatAmount(row.Limit, symbol),
			status,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Budgets",
		Headers: []string{"Category", "Spent", "Limit", "Progress"},
		Rows:    tableRows,
	}))
	return nil
}
