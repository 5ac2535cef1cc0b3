package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pocketfin/pocket/internal/cli"
	"github.com/pocketfin/pocket/internal/model"
	"github.com/pocketfin/pocket/internal/report"
	"github.com/pocketfin/pocket/internal/types"
)

var (
	flagListCategory string
	flagListType     string
	flagListSearch   string
	flagListAll      bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List transactions",
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVarP(&flagListCategory, "category", "c", "", "Filter to category")
	listCmd.Flags().StringVarP(&flagListType, "type", "t", "", "Filter to type (income or expense)")
	listCmd.Flags().StringVarP(&flagListSearch, "search", "s", "", "Fuzzy search description and category")
	listCmd.Flags().BoolVar(&flagListAll, "all", false, "Ignore the time window")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	snap := st.Snapshot()
	txs := snap.Transactions

	days := effectiveDays(cfg)
	if !flagListAll {
		txs = report.FilterPeriod(txs, days, timeNow())
	}
	if flagListCategory != "" {
		txs = report.FilterByCategory(txs, flagListCategory)
	}
	if flagListType != "" {
		kind := model.Kind(strings.ToLower(flagListType))
		if !kind.Valid() {
			return fmt.Errorf("invalid type %q (want income or expense)", flagListType)
		}
		txs = report.FilterByKind(txs, kind)
	}
	if flagListSearch != "" {
		txs = report.Search(txs, flagListSearch)
	}
	txs = report.SortByDateDesc(txs)

	if len(txs) == 0 {
		fmt.Println("\n  No transactions found. Record one with `pocket add`.")
		return nil
	}

	symbol := cfg.General.CurrencySymbol
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		cat := st.CategoryByName(tx.Category)
		amount := "-" + cli.FormatAmount(tx.Amount, symbol)
		if tx.Kind == model.KindIncome {
			amount = "+" + cli.FormatAmount(tx.Amount, symbol)
		}
		rows = append(rows, []string{
			cli.FormatDate(tx.Date),
			cat.Icon + " " + cat.Name,
			cli.Truncate(tx.Description, 32),
			amount,
			shortID(tx.ID),
		})
	}

	title := fmt.Sprintf("Transactions  Last %dd", days)
	if flagListAll {
		title = "Transactions"
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   title,
		Headers: []string{"Date", "Category", "Description", "Amount", "ID"},
		Rows:    rows,
	}))
	return nil
}

// shortID abbreviates a UUID for display. Commands that take an id
// accept either form.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func timeNow() time.Time { return types.Today().Time() }
