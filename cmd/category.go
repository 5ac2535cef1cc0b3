package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocketfin/pocket/internal/cli"
	"github.com/pocketfin/pocket/internal/model"
)

var (
	flagCategoryIcon  string
	flagCategoryColor string
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
	RunE:  runCategoryList,
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryAdd,
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE:  runCategoryList,
}

func init() {
	categoryAddCmd.Flags().StringVar(&flagCategoryIcon, "icon", model.FallbackIcon, "Display icon")
	categoryAddCmd.Flags().StringVar(&flagCategoryColor, "color", model.FallbackColor, "Hex color, e.g. #DA702C")
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryListCmd)
	rootCmd.AddCommand(categoryCmd)
}

func runCategoryAdd(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	cat := st.AddCategory(model.CategoryData{
		Name:  args[0],
		Icon:  flagCategoryIcon,
		Color: flagCategoryColor,
	})
	fmt.Printf("  Added category %s %s\n", cat.Icon, cat.Name)
	return nil
}

func runCategoryList(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	snap := st.Snapshot()
	symbol := cfg.General.CurrencySymbol

	rows := make([][]string, 0, len(snap.Categories))
	for _, cat := range snap.Categories {
		spent := st.SpentForCategory(cat.Name)
		limit := "-"
		if b, ok := st.BudgetFor(cat.Name); ok {
			limit = cli.FormatAmount(b.Limit, symbol)
		}
		rows = append(rows, []string{
			cat.Icon + " " + cat.Name,
			cli.FormatAmount(spent, symbol),
			limit,
			cat.Color,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Categories",
		Headers: []string{"Category", "Spent", "Budget", "Color"},
		Rows:    rows,
	}))
	return nil
}
