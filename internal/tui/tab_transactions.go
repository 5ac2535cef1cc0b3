package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pocketfin/pocket/internal/cli"
	"github.com/pocketfin/pocket/internal/model"
	"github.com/pocketfin/pocket/internal/tui/theme"
)

// transactionsState tracks the transactions tab state.
type transactionsState struct {
	cursor      int
	offset      int
	searching   bool
	searchQuery string
	searchInput textinput.Model
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "description or category"
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

// updateTransactionsKeys handles tab-local keys. The bool result reports
// whether the key was consumed.
func (a App) updateTransactionsKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "/":
		a.txState.searching = true
		a.txState.searchInput = newSearchInput()
		a.txState.searchInput.Focus()
		return a, a.txState.searchInput.Cursor.BlinkCmd(), true
	case "esc":
		if a.txState.searchQuery != "" {
			a.txState.searchQuery = ""
			a.txState.cursor = 0
			a.txState.offset = 0
			a.recompute()
		}
		return a, nil, true
	case "j", "down":
		if a.txState.cursor < len(a.txs)-1 {
			a.txState.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.txState.cursor > 0 {
			a.txState.cursor--
		}
		return a, nil, true
	case "g":
		a.txState.cursor = 0
		a.txState.offset = 0
		return a, nil, true
	case "G":
		a.txState.cursor = len(a.txs) - 1
		if a.txState.cursor < 0 {
			a.txState.cursor = 0
		}
		return a, nil, true
	case "D":
		if a.txState.cursor < len(a.txs) {
			a.store.DeleteTransaction(a.txs[a.txState.cursor].ID)
			a.recompute()
		}
		return a, nil, true
	}
	return a, nil, false
}

// updateTransactionsSearch handles key events while in search mode.
func (a App) updateTransactionsSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.txState.searchQuery = strings.TrimSpace(a.txState.searchInput.Value())
		a.txState.searching = false
		a.txState.cursor = 0
		a.txState.offset = 0
		a.recompute()
		return a, nil

	case "esc":
		a.txState.searching = false
		return a, nil
	}

	var cmd tea.Cmd
	a.txState.searchInput, cmd = a.txState.searchInput.Update(msg)
	return a, cmd
}

func (a App) renderTransactionsTab(cw, contentH int) string {
	t := theme.Active
	var b strings.Builder

	if a.txState.searching {
		searchStyle := lipgloss.NewStyle().
			Foreground(t.Accent).
			Background(t.Surface).
			Bold(true)
		b.WriteString(" " + searchStyle.Render("Search: ") + a.txState.searchInput.View())
		b.WriteString("\n")
	}

	if len(a.txs) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		b.WriteString("\n  " + emptyStyle.Render("No transactions in this window. Press [a] to add one."))
		return b.String()
	}

	// Visible window: keep the cursor inside the list viewport
	listH := contentH - 3 // header row + search line + padding
	if listH < 3 {
		listH = 3
	}
	offset := a.txState.offset
	if a.txState.cursor < offset {
		offset = a.txState.cursor
	}
	if a.txState.cursor >= offset+listH {
		offset = a.txState.cursor - listH + 1
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	incomeStyle := lipgloss.NewStyle().Foreground(t.Green)
	expenseStyle := lipgloss.NewStyle().Foreground(t.Red)

	descW := cw - 52
	if descW < 10 {
		descW = 10
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-12s %-18s %-*s %12s", "Date", "Category", descW, "Description", "Amount")))
	b.WriteString("\n")

	end := offset + listH
	if end > len(a.txs) {
		end = len(a.txs)
	}
	symbol := a.cfg.General.CurrencySymbol
	for i := offset; i < end; i++ {
		tx := a.txs[i]
		cat := catForName(a.snap, tx.Category)

		amountStr := "-" + cli.FormatAmount(tx.Amount, symbol)
		amountStyle := expenseStyle
		if tx.Kind == model.KindIncome {
			amountStr = "+" + cli.FormatAmount(tx.Amount, symbol)
			amountStyle = incomeStyle
		}

		line := fmt.Sprintf("  %-12s %s %-16s %-*s %s",
			tx.Date.String(),
			cat.Icon,
			cli.Truncate(cat.Name, 16),
			descW,
			cli.Truncate(tx.Description, descW),
			amountStyle.Render(fmt.Sprintf("%12s", amountStr)),
		)

		if i == a.txState.cursor {
			b.WriteString(selectedStyle.Render(fmt.Sprintf("▸ %-12s %s %-16s %-*s %12s",
				tx.Date.String(), cat.Icon, cli.Truncate(cat.Name, 16),
				descW, cli.Truncate(tx.Description, descW), amountStr)))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(a.txs) > listH {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d-%d of %d", offset+1, end, len(a.txs))))
	}

	return b.String()
}

// catForName resolves a category by display name with a render fallback.
func catForName(snap model.Snapshot, name string) model.Category {
	if cat, ok := snap.CategoryByName(name); ok {
		return cat
	}
	return model.Category{Name: name, Icon: model.FallbackIcon, Color: model.FallbackColor}
}
