package report

import (
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/pocketfin/pocket/internal/model"
	"github.com/pocketfin/pocket/internal/types"
)

// Periods are the supported export/report cutoffs in days.
var Periods = []int{7, 30, 90, 365}

// ValidPeriod reports whether days is one of the supported cutoffs.
func ValidPeriod(days int) bool {
	for _, p := range Periods {
		if p == days {
			return true
		}
	}
	return false
}

// FilterPeriod keeps transactions dated within the last `days` days of
// now, inclusive of today.
func FilterPeriod(txs []model.Transaction, days int, now time.Time) []model.Transaction {
	cutoff := types.DateOf(now).AddDays(-days)

	var out []model.Transaction
	for _, tx := range txs {
		if tx.Date.After(cutoff) {
			out = append(out, tx)
		}
	}
	return out
}

// FilterByCategory keeps transactions in the named category.
func FilterByCategory(txs []model.Transaction, category string) []model.Transaction {
	var out []model.Transaction
	for _, tx := range txs {
		if tx.Category == category {
			out = append(out, tx)
		}
	}
	return out
}

// FilterByKind keeps transactions of one kind.
func FilterByKind(txs []model.Transaction, kind model.Kind) []model.Transaction {
	var out []model.Transaction
	for _, tx := range txs {
		if tx.Kind == kind {
			out = append(out, tx)
		}
	}
	return out
}

// Search fuzzy-matches the query against description and category,
// case-insensitively.
func Search(txs []model.Transaction, query string) []model.Transaction {
	query = strings.TrimSpace(query)
	if query == "" {
		return txs
	}

	var out []model.Transaction
	for _, tx := range txs {
		if fuzzy.MatchFold(query, tx.Description) || fuzzy.MatchFold(query, tx.Category) {
			out = append(out, tx)
		}
	}
	return out
}

// SortByDateDesc returns a copy sorted newest first. Transactions on the
// same date keep their insertion order, which preserves display history.
func SortByDateDesc(txs []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txs))
	copy(out, txs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
