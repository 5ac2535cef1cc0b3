// Package report computes aggregate views over a store snapshot: totals,
// category breakdowns, monthly buckets, and budget rows. Everything here
// is a pure function; nothing mutates the snapshot.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketfin/pocket/internal/model"
)

// Totals holds the top-level aggregate across all transactions.
type Totals struct {
	Income       decimal.Decimal
	Expenses     decimal.Decimal
	Balance      decimal.Decimal
	Transactions int
}

// ComputeTotals sums income and expenses across the snapshot.
func ComputeTotals(snap model.Snapshot) Totals {
	var t Totals
	for _, tx := range snap.Transactions {
		t.Transactions++
		switch tx.Kind {
		case model.KindIncome:
			t.Income = t.Income.Add(tx.Amount)
		case model.KindExpense:
			t.Expenses = t.Expenses.Add(tx.Amount)
		}
	}
	t.Balance = t.Income.Sub(t.Expenses)
	return t
}

// CategorySummary holds aggregated spending for a single category.
type CategorySummary struct {
	Category     model.Category
	Spent        decimal.Decimal
	SharePercent float64
	Transactions int
}

// CategoryBreakdown aggregates expense spending per category, sorted by
// spend descending. Categories with no expenses are absent. Orphaned
// category names resolve to a fallback icon and color.
func CategoryBreakdown(snap model.Snapshot) []CategorySummary {
	spent := make(map[string]*CategorySummary)
	var total decimal.Decimal

	for _, tx := range snap.Transactions {
		if tx.Kind != model.KindExpense {
			continue
		}
		cs, ok := spent[tx.Category]
		if !ok {
			cat, found := snap.CategoryByName(tx.Category)
			if !found {
				cat = model.Category{
					Name:  tx.Category,
					Icon:  model.FallbackIcon,
					Color: model.FallbackColor,
				}
			}
			cs = &CategorySummary{Category: cat}
			spent[tx.Category] = cs
		}
		cs.Spent = cs.Spent.Add(tx.Amount)
		cs.Transactions++
		total = total.Add(tx.Amount)
	}

	out := make([]CategorySummary, 0, len(spent))
	for _, cs := range spent {
		if total.IsPositive() {
			share, _ := cs.Spent.Div(total).Mul(decimal.NewFromInt(100)).Float64()
			cs.SharePercent = share
		}
		out = append(out, *cs)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Spent.Equal(out[j].Spent) {
			return out[i].Spent.GreaterThan(out[j].Spent)
		}
		return out[i].Category.Name < out[j].Category.Name
	})
	return out
}

// MonthlySummary holds income and expense totals for one calendar month.
type MonthlySummary struct {
	Month    time.Time // first day of the month
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// AggregateMonths buckets transactions into the `months` calendar months
// ending at now's month, oldest first. Months without transactions are
// present with zero totals so charts keep their time axis.
func AggregateMonths(snap model.Snapshot, months int, now time.Time) []MonthlySummary {
	if months <= 0 {
		return nil
	}

	firstOf := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}

	start := firstOf(now).AddDate(0, -(months - 1), 0)
	buckets := make(map[time.Time]*MonthlySummary, months)
	out := make([]MonthlySummary, months)
	for i := 0; i < months; i++ {
		m := start.AddDate(0, i, 0)
		out[i] = MonthlySummary{Month: m}
		buckets[m] = &out[i]
	}

	for _, tx := range snap.Transactions {
		m := firstOf(tx.Date.Time())
		bucket, ok := buckets[m]
		if !ok {
			continue // outside the window
		}
		switch tx.Kind {
		case model.KindIncome:
			bucket.Income = bucket.Income.Add(tx.Amount)
		case model.KindExpense:
			bucket.Expenses = bucket.Expenses.Add(tx.Amount)
		}
	}

	for i := range out {
		out[i].Net = out[i].Income.Sub(out[i].Expenses)
	}
	return out
}

// BudgetRow is one category budget with its live derived spend.
type BudgetRow struct {
	Category model.Category
	Limit    decimal.Decimal
	Spent    decimal.Decimal
	Progress float64 // clamped [0, 100]
	Over     bool    // true when unclamped spend exceeds the limit
}

// BudgetRows builds one row per budget, recomputing spend from the
// transaction list. Rows are sorted by progress descending so the most
// stressed budgets come first.
func BudgetRows(snap model.Snapshot) []BudgetRow {
	spentByCat := make(map[string]decimal.Decimal)
	for _, tx := range snap.Transactions {
		if tx.Kind == model.KindExpense {
			spentByCat[tx.Category] = spentByCat[tx.Category].Add(tx.Amount)
		}
	}

	out := make([]BudgetRow, 0, len(snap.Budgets))
	for _, b := range snap.Budgets {
		cat, found := snap.CategoryByName(b.Category)
		if !found {
			cat = model.Category{
				Name:  b.Category,
				Icon:  model.FallbackIcon,
				Color: model.FallbackColor,
			}
		}

		row := BudgetRow{
			Category: cat,
			Limit:    b.Limit,
			Spent:    spentByCat[b.Category],
		}
		if b.Limit.IsPositive() {
			pct, _ := row.Spent.Div(b.Limit).Mul(decimal.NewFromInt(100)).Float64()
			row.Over = pct > 100
			if pct > 100 {
				pct = 100
			}
			if pct < 0 {
				pct = 0
			}
			row.Progress = pct
		}
		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Progress != out[j].Progress {
			return out[i].Progress > out[j].Progress
		}
		return out[i].Category.Name < out[j].Category.Name
	})
	return out
}
