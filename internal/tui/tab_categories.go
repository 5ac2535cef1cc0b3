package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pocketfin/pocket/internal/cli"
	"github.com/pocketfin/pocket/internal/report"
	"github.com/pocketfin/pocket/internal/tui/components"
	"github.com/pocketfin/pocket/internal/tui/theme"
)

func (a App) renderCategoriesTab(cw int) string {
	t := theme.Active
	symbol := a.cfg.General.CurrencySymbol

	// Spend within the current window, from the precomputed breakdown
	spentByCat := make(map[string]string, len(a.snap.Categories))
	for _, cs := range a.breakdown {
		spentByCat[cs.Category.Name] = cli.FormatAmount(cs.Spent, symbol)
	}
	budgetByCat := make(map[string]report.BudgetRow, len(a.budgets))
	for _, row := range a.budgets {
		budgetByCat[row.Category.Name] = row
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	const barW = 10

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("%-24s %12s %12s   %-*s   %s",
		"Category", "Spent", "Budget", barW+5, "Used", "Color")))
	body.WriteString("\n")

	for _, cat := range a.snap.Categories {
		spent := spentByCat[cat.Name]
		if spent == "" {
			spent = "-"
		}

		limit := "-"
		used := strings.Repeat(" ", barW+5)
		if row, ok := budgetByCat[cat.Name]; ok {
			limit = cli.FormatAmount(row.Limit, symbol)
			used = components.ProgressBar(row.Progress/100, barW)
		}

		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Color)).Render("██ " + cat.Color)
		body.WriteString(nameStyle.Render(fmt.Sprintf("%-24s ", cat.Icon+" "+cli.Truncate(cat.Name, 21))))
		body.WriteString(mutedStyle.Render(fmt.Sprintf("%12s %12s   ", spent, limit)))
		body.WriteString(used)
		body.WriteString(mutedStyle.Render("   "))
		body.WriteString(swatch)
		body.WriteString("\n")
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("Categories", body.String(), cw))
	return b.String()
}
