package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pocketfin/pocket/internal/cli"
	"github.com/pocketfin/pocket/internal/tui/components"
	"github.com/pocketfin/pocket/internal/tui/theme"
)

func (a App) renderBudgetsTab(cw int) string {
	t := theme.Active
	symbol := a.cfg.General.CurrencySymbol
	var b strings.Builder

	if len(a.budgets) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		b.WriteString("\n  " + emptyStyle.Render("No budgets set. Use `pocket budget set <category> <limit>`."))
		return b.String()
	}

	innerW := components.CardInnerWidth(cw)
	labelW := 18
	barW := innerW - labelW - 30
	if barW < 10 {
		barW = 10
	}

	overStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)

	var body strings.Builder
	for _, row := range a.budgets {
		amounts := cli.FormatAmount(row.Spent, symbol) + " / " + cli.FormatAmount(row.Limit, symbol)
		pct := row.Progress / 100
		if row.Over {
			pct = 1.01
			amounts += " " + overStyle.Render("over")
		}
		label := row.Category.Icon + " " + cli.Truncate(row.Category.Name, labelW-3)
		body.WriteString(components.BudgetGauge(label, pct, amounts, labelW, barW))
		body.WriteString("\n")
	}

	b.WriteString(components.ContentCard("Budgets", body.String(), cw))
	return b.String()
}
