package tui

import (
	"testing"

	"github.com/pocketfin/pocket/internal/tui/components"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 1 // leading space

		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < len(components.Tabs)-1 {
				pos++ // separator
			}
		}
	}
}

func TestTabAtXOutside(t *testing.T) {
	a := App{}
	if got := a.tabAtX(0); got != -1 {
		t.Fatalf("x=0 -> tab=%d, want -1", got)
	}
	if got := a.tabAtX(10_000); got != -1 {
		t.Fatalf("far right -> tab=%d, want -1", got)
	}
}
