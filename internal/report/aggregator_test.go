package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketfin/pocket/internal/model"
	"github.com/pocketfin/pocket/internal/report"
	"github.com/pocketfin/pocket/internal/types"
)

func tx(id string, amount int64, kind model.Kind, category, date string) model.Transaction {
	d, err := types.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return model.Transaction{
		ID:       id,
		Amount:   decimal.NewFromInt(amount),
		Kind:     kind,
		Category: category,
		Date:     d,
	}
}

func sampleSnapshot() model.Snapshot {
	snap := model.Seed()
	snap.Transactions = []model.Transaction{
		tx("t1", 3000, model.KindIncome, "Salary", "2024-01-01"),
		tx("t2", 500, model.KindExpense, "Food & Dining", "2024-01-10"),
		tx("t3", 300, model.KindExpense, "Food & Dining", "2024-02-05"),
		tx("t4", 200, model.KindExpense, "Transportation", "2024-02-20"),
		tx("t5", 150, model.KindExpense, "Ghost Category", "2024-03-01"),
	}
	return snap
}

func TestComputeTotals(t *testing.T) {
	totals := report.ComputeTotals(sampleSnapshot())

	assert.True(t, totals.Income.Equal(decimal.NewFromInt(3000)))
	assert.True(t, totals.Expenses.Equal(decimal.NewFromInt(1150)))
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(1850)))
	assert.Equal(t, 5, totals.Transactions)
}

func TestCategoryBreakdown(t *testing.T) {
	rows := report.CategoryBreakdown(sampleSnapshot())

	require.Len(t, rows, 3)
	assert.Equal(t, "Food & Dining", rows[0].Category.Name)
	assert.True(t, rows[0].Spent.Equal(decimal.NewFromInt(800)))
	assert.InDelta(t, 800.0/1150.0*100, rows[0].SharePercent, 1e-9)
	assert.Equal(t, 2, rows[0].Transactions)

	// Orphaned category names still render, with fallback icon/color.
	var ghost *report.CategorySummary
	for i := range rows {
		if rows[i].Category.Name == "Ghost Category" {
			ghost = &rows[i]
		}
	}
	require.NotNil(t, ghost)
	assert.Equal(t, model.FallbackIcon, ghost.Category.Icon)
	assert.Equal(t, model.FallbackColor, ghost.Category.Color)
}

func TestAggregateMonths(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	months := report.AggregateMonths(sampleSnapshot(), 3, now)

	require.Len(t, months, 3)
	assert.Equal(t, time.January, months[0].Month.Month())
	assert.True(t, months[0].Income.Equal(decimal.NewFromInt(3000)))
	assert.True(t, months[0].Expenses.Equal(decimal.NewFromInt(500)))
	assert.True(t, months[0].Net.Equal(decimal.NewFromInt(2500)))

	assert.True(t, months[1].Expenses.Equal(decimal.NewFromInt(500)), "feb: 300 + 200")
	assert.True(t, months[2].Expenses.Equal(decimal.NewFromInt(150)))
}

func TestAggregateMonths_EmptyBucketsPresent(t *testing.T) {
	snap := model.Seed()
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	months := report.AggregateMonths(snap, 4, now)

	require.Len(t, months, 4)
	for _, m := range months {
		assert.True(t, m.Income.IsZero())
		assert.True(t, m.Expenses.IsZero())
	}
	assert.Equal(t, time.March, months[0].Month.Month())
	assert.Equal(t, time.June, months[3].Month.Month())
}

func TestBudgetRows(t *testing.T) {
	snap := sampleSnapshot()
	snap.Budgets = []model.Budget{
		{Category: "Food & Dining", Limit: decimal.NewFromInt(1000)},
		{Category: "Transportation", Limit: decimal.NewFromInt(100)},
		{Category: "Entertainment", Limit: decimal.NewFromInt(50)},
	}

	rows := report.BudgetRows(snap)
	require.Len(t, rows, 3)

	// Most stressed first: Transportation is over budget.
	assert.Equal(t, "Transportation", rows[0].Category.Name)
	assert.Equal(t, 100.0, rows[0].Progress)
	assert.True(t, rows[0].Over)
	assert.True(t, rows[0].Spent.Equal(decimal.NewFromInt(200)))

	assert.Equal(t, "Food & Dining", rows[1].Category.Name)
	assert.InDelta(t, 80, rows[1].Progress, 1e-9)
	assert.False(t, rows[1].Over)

	assert.Equal(t, "Entertainment", rows[2].Category.Name)
	assert.Equal(t, 0.0, rows[2].Progress)
}

func TestFilterPeriod(t *testing.T) {
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	txs := sampleSnapshot().Transactions

	last7 := report.FilterPeriod(txs, 7, now)
	assert.Empty(t, last7, "newest entry is 9 days old")

	last30 := report.FilterPeriod(txs, 30, now)
	require.Len(t, last30, 2)
	assert.Equal(t, "t4", last30[0].ID)
	assert.Equal(t, "t5", last30[1].ID)

	last90 := report.FilterPeriod(txs, 90, now)
	assert.Len(t, last90, 5)
}

func TestSearch(t *testing.T) {
	txs := []model.Transaction{
		{ID: "a", Description: "Grocery run", Category: "Food & Dining"},
		{ID: "b", Description: "Bus ticket", Category: "Transportation"},
		{ID: "c", Description: "Dinner with friends", Category: "Food & Dining"},
	}

	got := report.Search(txs, "groc")
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	// Fuzzy subsequence match, case-insensitive, also against category.
	got = report.Search(txs, "food")
	assert.Len(t, got, 2)

	got = report.Search(txs, "  ")
	assert.Len(t, got, 3, "blank query matches everything")
}

func TestSortByDateDesc_StableWithinDay(t *testing.T) {
	txs := []model.Transaction{
		tx("first", 1, model.KindExpense, "Other", "2024-01-10"),
		tx("older", 2, model.KindExpense, "Other", "2024-01-05"),
		tx("second", 3, model.KindExpense, "Other", "2024-01-10"),
	}

	sorted := report.SortByDateDesc(txs)
	require.Len(t, sorted, 3)
	assert.Equal(t, "first", sorted[0].ID)
	assert.Equal(t, "second", sorted[1].ID, "same-day order follows insertion history")
	assert.Equal(t, "older", sorted[2].ID)
}
