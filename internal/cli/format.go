// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pocketfin/pocket/internal/types"
)

// FormatAmount formats a monetary amount with a currency symbol and
// comma-grouped integer part. e.g., 1234.5 -> "$1,234.50"
func FormatAmount(amount decimal.Decimal, symbol string) string {
	neg := amount.IsNegative()
	s := amount.Abs().StringFixed(2)

	whole, frac, _ := strings.Cut(s, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err == nil {
		whole = FormatNumber(n)
	}

	out := symbol + whole + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

// FormatSigned formats an amount with an explicit leading sign.
// e.g., 12.5 -> "+$12.50", -3 -> "-$3.00"
func FormatSigned(amount decimal.Decimal, symbol string) string {
	if amount.IsNegative() {
		return FormatAmount(amount, symbol)
	}
	return "+" + FormatAmount(amount, symbol)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 percentage value.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(d types.Date) string {
	return d.String()
}

// FormatMonth renders a month for report headings, e.g. "Jan 2026".
func FormatMonth(year int, month int) string {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	if month < 1 || month > 12 {
		return "???"
	}
	return fmt.Sprintf("%s %d", months[month-1], year)
}

// Truncate shortens a string to max runes, appending an ellipsis.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
