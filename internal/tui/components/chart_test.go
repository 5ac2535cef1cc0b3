package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/pocketfin/pocket/internal/tui/theme"
)

func TestMoneyAxisLabel(t *testing.T) {
	tests := []struct {
		v      float64
		symbol string
		want   string
	}{
		{850, "$", "$850"},
		{1000, "$", "$1k"},
		{1200, "$", "$1.2k"},
		{2_000_000, "$", "$2M"},
		{3_500_000, "$", "$3.5M"},
		{500, "€", "€500"},
		{0.25, "$", "$0.25"},
	}

	for _, tt := range tests {
		if got := moneyAxisLabel(tt.v, tt.symbol); got != tt.want {
			t.Errorf("moneyAxisLabel(%v, %q) = %q, want %q", tt.v, tt.symbol, got, tt.want)
		}
	}
}

func TestAxisPadCountsRunes(t *testing.T) {
	if got := axisPad("€50", 5); got != "  €50" {
		t.Errorf("axisPad(%q, 5) = %q, want %q", "€50", got, "  €50")
	}
	if got := axisPad("$1.2k", 3); got != "$1.2k" {
		t.Errorf("axisPad should not truncate: got %q", got)
	}
}

func TestBarChartYAxisCarriesCurrency(t *testing.T) {
	theme.SetActive("flexoki-dark")

	out := BarChart(
		[]float64{100, 250, 900},
		[]string{"Jan", "Feb", "Mar"},
		"$", lipgloss.Color("#4385be"), 40, 10,
	)

	// maxVal 900 ticks at $200, ceiling $1k
	if !strings.Contains(out, "$200") {
		t.Errorf("y-axis should show %q, got:\n%s", "$200", out)
	}
	if !strings.Contains(out, "$1k") {
		t.Errorf("y-axis should show %q, got:\n%s", "$1k", out)
	}
	if !strings.Contains(out, "$0") {
		t.Errorf("origin should show %q, got:\n%s", "$0", out)
	}
}
