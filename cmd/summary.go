package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocketfin/pocket/internal/cli"
	"github.com/pocketfin/pocket/internal/model"
	"github.com/pocketfin/pocket/internal/report"
	"github.com/pocketfin/pocket/internal/store"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Spending summary with category breakdown",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	snap := st.Snapshot()
	if len(snap.Transactions) == 0 {
		fmt.Println("\n  No transactions yet. Record one with `pocket add`.")
		return nil
	}

	days := effectiveDays(cfg)
	window := snap
	window.Transactions = report.FilterPeriod(snap.Transactions, days, timeNow())

	totals := report.ComputeTotals(window)
	symbol := cfg.General.CurrencySymbol

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("POCKET  Last %dd", days)))
	fmt.Println()

	balance := cli.IncomeStyle.Render(cli.FormatAmount(totals.Balance, symbol))
	if totals.Balance.IsNegative() {
		balance = cli.ExpenseStyle.Render(cli.FormatAmount(totals.Balance, symbol))
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Transactions", cli.FormatNumber(int64(totals.Transactions))},
			{"Income", "+" + cli.FormatAmount(totals.Income, symbol)},
			{"Expenses", "-" + cli.FormatAmount(totals.Expenses, symbol)},
			{"---"},
			{"Balance", balance},
		},
	}))

	breakdown := report.CategoryBreakdown(window)
	if len(breakdown) > 0 {
		maxSpent, _ := breakdown[0].Spent.Float64()
		rows := make([][]string, 0, len(breakdown))
		for _, cs := range breakdown {
			spent, _ := cs.Spent.Float64()
			rows = append(rows, []string{
				cs.Category.Icon + " " + cs.Category.Name,
				cli.FormatAmount(cs.Spent, symbol),
				cli.FormatPercent(cs.SharePercent),
				cli.RenderHorizontalBar(spent, maxSpent, 20),
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Spending by Category",
			Headers: []string{"Category", "Spent", "Share", ""},
			Rows:    rows,
		}))
	}

	if over := overBudget(st, window); len(over) > 0 {
		fmt.Println()
		for _, name := range over {
			fmt.Println("  " + cli.WarnStyle.Render("Budget exceeded: "+name))
		}
	}

	return nil
}

// overBudget lists categories whose windowed spend exceeds their budget.
func overBudget(st *store.Store, window model.Snapshot) []string {
	var out []string
	for _, cs := range report.CategoryBreakdown(window) {
		if b, ok := st.BudgetFor(cs.Category.Name); ok && cs.Spent.GreaterThan(b.Limit) {
			out = append(out, cs.Category.Name)
		}
	}
	return out
}
