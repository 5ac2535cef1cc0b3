package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pocketfin/pocket/internal/cli"
	"github.com/pocketfin/pocket/internal/tui/components"
	"github.com/pocketfin/pocket/internal/tui/theme"
)

func (a App) renderDashboardTab(cw int) string {
	t := theme.Active
	symbol := a.cfg.General.CurrencySymbol
	var b strings.Builder

	// Row 1: Metric cards
	balanceDetail := "income - expenses"
	if a.totals.Balance.IsNegative() {
		balanceDetail = "spending exceeds income"
	}

	cards := []struct{ Label, Value, Detail string }{
		{"Balance", cli.FormatAmount(a.totals.Balance, symbol), balanceDetail},
		{"Income", "+" + cli.FormatAmount(a.totals.Income, symbol), fmt.Sprintf("last %dd", a.days)},
		{"Expenses", "-" + cli.FormatAmount(a.totals.Expenses, symbol), fmt.Sprintf("last %dd", a.days)},
		{"Transactions", cli.FormatNumber(int64(a.totals.Transactions)), ""},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Monthly expense chart
	if len(a.months) > 0 {
		chartVals := make([]float64, len(a.months))
		chartLabels := make([]string, len(a.months))
		for i, m := range a.months {
			chartVals[i], _ = m.Expenses.Float64()
			chartLabels[i] = m.Month.Format("Jan")
		}
		chartInnerW := components.CardInnerWidth(cw)
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Monthly Expenses (%dmo)", monthsShown),
			components.BarChart(chartVals, chartLabels, symbol, t.Blue, chartInnerW, 10),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: Category split + top budgets
	halves := components.LayoutRow(cw, 2)
	innerW := components.CardInnerWidth(halves[0])

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var splitBody strings.Builder
	limit := 6
	if len(a.breakdown) < limit {
		limit = len(a.breakdown)
	}
	maxShare := 0.0
	for _, cs := range a.breakdown[:limit] {
		if cs.SharePercent > maxShare {
			maxShare = cs.SharePercent
		}
	}
	nameW := innerW / 3
	if nameW < 10 {
		nameW = 10
	}
	barMaxLen := innerW - nameW - 10
	if barMaxLen < 1 {
		barMaxLen = 1
	}
	for _, cs := range a.breakdown[:limit] {
		barLen := 0
		if maxShare > 0 {
			barLen = int(cs.SharePercent / maxShare * float64(barMaxLen))
		}
		label := cs.Category.Icon + " " + cli.Truncate(cs.Category.Name, nameW-3)
		fmt.Fprintf(&splitBody, "%s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, label)),
			barStyle.Render(strings.Repeat("█", barLen)),
			pctStyle.Render(fmt.Sprintf("%.0f%%", cs.SharePercent)))
	}
	if limit == 0 {
		splitBody.WriteString(pctStyle.Render("No expenses in this window"))
	}

	var budgetBody strings.Builder
	gaugeLimit := 6
	if len(a.budgets) < gaugeLimit {
		gaugeLimit = len(a.budgets)
	}
	budgetInnerW := components.CardInnerWidth(halves[1])
	gaugeLabelW := 14
	gaugeBarW := budgetInnerW - gaugeLabelW - 26
	if gaugeBarW < 8 {
		gaugeBarW = 8
	}
	for _, row := range a.budgets[:gaugeLimit] {
		amounts := cli.FormatAmount(row.Spent, symbol) + " / " + cli.FormatAmount(row.Limit, symbol)
		pct := row.Progress / 100
		if row.Over {
			pct = 1.01 // push the gauge into the red band
		}
		budgetBody.WriteString(components.BudgetGauge(
			cli.Truncate(row.Category.Name, gaugeLabelW), pct, amounts, gaugeLabelW, gaugeBarW))
		budgetBody.WriteString("\n")
	}
	if gaugeLimit == 0 {
		budgetBody.WriteString(pctStyle.Render("No budgets set"))
	}

	splitCard := components.ContentCard("Category Split", splitBody.String(), halves[0])
	budgetCard := components.ContentCard("Budgets", budgetBody.String(), halves[1])
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Category Split", splitBody.String(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Budgets", budgetBody.String(), cw))
	} else {
		b.WriteString(components.CardRow([]string{splitCard, budgetCard}))
	}

	return b.String()
}
