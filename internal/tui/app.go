// Package tui provides the interactive Bubble Tea dashboard for pocket.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/pocketfin/pocket/internal/config"
	"github.com/pocketfin/pocket/internal/model"
	"github.com/pocketfin/pocket/internal/report"
	"github.com/pocketfin/pocket/internal/store"
	"github.com/pocketfin/pocket/internal/tui/components"
	"github.com/pocketfin/pocket/internal/tui/theme"
)

// App is the root Bubble Tea model.
type App struct {
	store *store.Store
	cfg   config.Config

	// Pre-computed views of the current snapshot
	snap      model.Snapshot
	totals    report.Totals
	breakdown []report.CategorySummary
	months    []report.MonthlySummary
	budgets   []report.BudgetRow
	txs       []model.Transaction // windowed, newest first

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	days      int

	// Per-tab state
	txState  transactionsState
	settings settingsState

	// Add-transaction form (huh)
	addForm *huh.Form
	addVals addValues
	adding  bool
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	monthsShown      = 6
	minContentHeight = 5
)

// NewApp creates a new TUI app model around an already-open store.
func NewApp(st *store.Store, cfg config.Config) App {
	a := App{
		store: st,
		cfg:   cfg,
		days:  cfg.General.DefaultDays,
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// recompute refreshes all derived views from the store snapshot. Called
// after every mutation and period change.
func (a *App) recompute() {
	a.snap = a.store.Snapshot()
	now := time.Now()

	windowed := report.FilterPeriod(a.snap.Transactions, a.days, now)
	winSnap := a.snap
	winSnap.Transactions = windowed

	a.totals = report.ComputeTotals(winSnap)
	a.breakdown = report.CategoryBreakdown(winSnap)
	a.months = report.AggregateMonths(a.snap, monthsShown, now)
	a.budgets = report.BudgetRows(a.snap)

	a.txs = report.SortByDateDesc(windowed)
	if a.txState.searchQuery != "" {
		a.txs = report.Search(a.txs, a.txState.searchQuery)
	}

	// Clamp cursor to the new list bounds
	if a.txState.cursor >= len(a.txs) {
		a.txState.cursor = len(a.txs) - 1
	}
	if a.txState.cursor < 0 {
		a.txState.cursor = 0
	}
}

// cyclePeriod advances the time window to the next preset.
func (a *App) cyclePeriod() {
	for i, d := range report.Periods {
		if d == a.days {
			a.days = report.Periods[(i+1)%len(report.Periods)]
			a.recompute()
			return
		}
	}
	a.days = report.Periods[0]
	a.recompute()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.adding {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabTransactions && !a.txState.searching {
				if a.txState.cursor > 0 {
					a.txState.cursor--
				}
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.activeTab == tabTransactions && !a.txState.searching {
				if a.txState.cursor < len(a.txs)-1 {
					a.txState.cursor++
				}
			}
			return a, nil

		case tea.MouseButtonLeft:
			// Tab bar occupies the first line
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Add-transaction form intercepts all keys
		if a.adding && a.addForm != nil {
			return a.updateAddForm(msg)
		}

		// Settings tab editing mode
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// Transactions search mode intercepts all keys when active
		if a.activeTab == tabTransactions && a.txState.searching {
			return a.updateTransactionsSearch(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Global: open the add form
		if key == "a" {
			return a.startAddForm()
		}

		// Global: cycle the time window
		if key == "p" {
			a.cyclePeriod()
			return a, nil
		}

		if a.activeTab == tabTransactions {
			if m, cmd, handled := a.updateTransactionsKeys(key); handled {
				return m, cmd
			}
		}

		if a.activeTab == tabSettings {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Tab navigation
		switch key {
		case "d":
			a.activeTab = tabDashboard
		case "t":
			a.activeTab = tabTransactions
		case "b":
			a.activeTab = tabBudgets
		case "c":
			a.activeTab = tabCategories
		case "x":
			a.activeTab = tabSettings
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		}
		return a, nil
	}

	// Forward unhandled messages to the add form (cursor blinks, etc.)
	if a.adding && a.addForm != nil {
		return a.updateAddForm(msg)
	}

	return a, nil
}

const (
	tabDashboard = iota
	tabTransactions
	tabBudgets
	tabCategories
	tabSettings
)

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.adding && a.addForm != nil {
		return a.addForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  pocket needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"d t b c x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate transactions"},
		{"g G", "First / Last transaction"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"a", "Add transaction"},
		{"D", "Delete selected transaction"},
		{"/", "Search transactions"},
		{"p", "Cycle time window"},
		{"Esc", "Back / Cancel"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + period pill
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pillAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	pill := pillStyle.Render(" ") + pillAccentStyle.Render(fmt.Sprintf("%dd", a.days))
	if a.txState.searchQuery != "" {
		pill += pillStyle.Render(" │ ") + pillAccentStyle.Render("/"+a.txState.searchQuery)
	}
	pill += pillStyle.Render(" ")

	pillRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab) + "\n" + pillRowStyle.Render(pill)

	// 2. Status bar
	right := fmt.Sprintf("%d transactions │ %s", len(a.snap.Transactions), a.cfg.Storage.Backend)
	statusBar := components.RenderStatusBar(w, right)

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case tabDashboard:
		content = a.renderDashboardTab(cw)
	case tabTransactions:
		content = a.renderTransactionsTab(cw, contentH)
	case tabBudgets:
		content = a.renderBudgetsTab(cw)
	case tabCategories:
		content = a.renderCategoriesTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background (fixes gaps between cards)
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	// 8. Stack vertically
	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	// 9. Fill the whole terminal with background
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space before the first tab
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
