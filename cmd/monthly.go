package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocketfin/pocket/internal/cli"
	"github.com/pocketfin/pocket/internal/report"
)

var flagMonths int

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Monthly income and expense trend",
	RunE:  runMonthly,
}

func init() {
	monthlyCmd.Flags().IntVar(&flagMonths, "months", 6, "Number of months to show")
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if flagMonths <= 0 {
		return fmt.Errorf("months must be positive")
	}

	months := report.AggregateMonths(st.Snapshot(), flagMonths, timeNow())
	symbol := cfg.General.CurrencySymbol

	rows := make([][]string, 0, len(months))
	expenses := make([]float64, 0, len(months))
	for _, m := range months {
		net := "+" + cli.FormatAmount(m.Net, symbol)
		if m.Net.IsNegative() {
			net = cli.FormatAmount(m.Net, symbol)
		}
		rows = append(rows, []string{
			cli.FormatMonth(m.Month.Year(), int(m.Month.Month())),
			"+" + cli.FormatAmount(m.Income, symbol),
			"-" + cli.FormatAmount(m.Expenses, symbol),
			net,
		})
		e, _ := m.Expenses.Float64()
		expenses = append(expenses, e)
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Monthly  Last %dmo", flagMonths),
		Headers: []string{"Month", "Income", "Expenses", "Net"},
		Rows:    rows,
	}))
	fmt.Printf("\n  Expense trend: %s\n", cli.RenderSparkline(expenses))

	return nil
}
