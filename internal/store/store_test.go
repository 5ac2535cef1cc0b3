package store_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketfin/pocket/internal/model"
	"github.com/pocketfin/pocket/internal/store"
	"github.com/pocketfin/pocket/internal/types"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(nil, zerolog.Nop())
}

func expense(amount float64, category string) model.TransactionData {
	return model.TransactionData{
		Amount:      decimal.NewFromFloat(amount),
		Kind:        model.KindExpense,
		Category:    category,
		Date:        types.NewDate(2024, 1, 10),
		Description: "test expense",
	}
}

func income(amount float64) model.TransactionData {
	return model.TransactionData{
		Amount:      decimal.NewFromFloat(amount),
		Kind:        model.KindIncome,
		Category:    "Salary",
		Date:        types.NewDate(2024, 1, 1),
		Description: "test income",
	}
}

func TestNewSeedsCategories(t *testing.T) {
	s := newStore(t)
	snap := s.Snapshot()

	assert.Len(t, snap.Categories, 9)
	assert.Empty(t, snap.Transactions)
	assert.Empty(t, snap.Budgets)

	_, ok := snap.CategoryByName("Food & Dining")
	assert.True(t, ok)
}

func TestAddTransaction_GrowsByOneAndKeepsFields(t *testing.T) {
	s := newStore(t)
	data := expense(42.50, "Food & Dining")

	before := len(s.Snapshot().Transactions)
	tx := s.AddTransaction(data)
	after := s.Snapshot().Transactions

	require.Len(t, after, before+1)
	assert.NotEmpty(t, tx.ID)
	got := after[len(after)-1]
	assert.Equal(t, tx.ID, got.ID)
	assert.True(t, data.Amount.Equal(got.Amount))
	assert.Equal(t, data.Kind, got.Kind)
	assert.Equal(t, data.Category, got.Category)
	assert.True(t, data.Date.Equal(got.Date))
	assert.Equal(t, data.Description, got.Description)
}

func TestAddTransaction_UniqueIDs(t *testing.T) {
	s := newStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tx := s.AddTransaction(expense(1, "Other"))
		if seen[tx.ID] {
			t.Fatalf("duplicate transaction id %q after %d inserts", tx.ID, i)
		}
		seen[tx.ID] = true
	}
}

func TestBalanceIdentity(t *testing.T) {
	s := newStore(t)
	s.AddTransaction(income(3000))
	s.AddTransaction(expense(500, "Food & Dining"))
	s.AddTransaction(expense(120.75, "Transportation"))
	tx := s.AddTransaction(expense(60, "Other"))
	s.DeleteTransaction(tx.ID)
	s.AddTransaction(income(250.25))

	want := s.TotalIncome().Sub(s.TotalExpenses())
	assert.True(t, want.Equal(s.Balance()),
		"balance = %s, want %s", s.Balance(), want)
	assert.True(t, s.TotalIncome().Equal(decimal.NewFromFloat(3250.25)))
	assert.True(t, s.TotalExpenses().Equal(decimal.NewFromFloat(620.75)))
}

func TestExpensesByCategory(t *testing.T) {
	s := newStore(t)
	s.AddTransaction(income(1000)) // excluded
	s.AddTransaction(expense(200, "Food & Dining"))
	s.AddTransaction(expense(300, "Food & Dining"))
	s.AddTransaction(expense(50, "Transportation"))

	byCat := s.ExpensesByCategory()

	require.Len(t, byCat, 2)
	assert.True(t, byCat["Food & Dining"].Equal(decimal.NewFromInt(500)))
	assert.True(t, byCat["Transportation"].Equal(decimal.NewFromInt(50)))

	// No zero-valued entries, and the values sum to total expenses.
	var sum decimal.Decimal
	for name, v := range byCat {
		assert.False(t, v.IsZero(), "category %q present with zero value", name)
		sum = sum.Add(v)
	}
	assert.True(t, sum.Equal(s.TotalExpenses()))
}

func TestUpdateTransaction(t *testing.T) {
	s := newStore(t)
	tx := s.AddTransaction(expense(100, "Food & Dining"))

	tx.Amount = decimal.NewFromInt(150)
	tx.Description = "groceries"
	s.UpdateTransaction(tx)

	snap := s.Snapshot()
	require.Len(t, snap.Transactions, 1)
	assert.True(t, snap.Transactions[0].Amount.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "groceries", snap.Transactions[0].Description)
}

func TestUpdateTransaction_UnknownIDIsNoop(t *testing.T) {
	s := newStore(t)
	s.AddTransaction(expense(100, "Food & Dining"))
	before := s.Snapshot()

	s.UpdateTransaction(model.Transaction{ID: "missing", Amount: decimal.NewFromInt(9)})

	assert.Equal(t, before, s.Snapshot())
}

func TestDeleteTransaction_UnknownIDIsNoop(t *testing.T) {
	s := newStore(t)
	s.AddTransaction(expense(100, "Food & Dining"))

	s.DeleteTransaction("missing")

	assert.Len(t, s.Snapshot().Transactions, 1)
}

func TestSetBudget_UpsertByCategory(t *testing.T) {
	s := newStore(t)

	s.SetBudget(model.Budget{Category: "Food & Dining", Limit: decimal.NewFromInt(500)})
	s.SetBudget(model.Budget{Category: "Food & Dining", Limit: decimal.NewFromInt(800)})

	snap := s.Snapshot()
	require.Len(t, snap.Budgets, 1)
	assert.Equal(t, "Food & Dining", snap.Budgets[0].Category)
	assert.True(t, snap.Budgets[0].Limit.Equal(decimal.NewFromInt(800)),
		"second call's limit wins")
}

func TestBudgetProgress_Clamped(t *testing.T) {
	s := newStore(t)
	s.SetBudget(model.Budget{Category: "Food & Dining", Limit: decimal.NewFromInt(100)})

	assert.Equal(t, 0.0, s.BudgetProgress("Food & Dining"))

	s.AddTransaction(expense(50, "Food & Dining"))
	assert.InDelta(t, 50, s.BudgetProgress("Food & Dining"), 1e-9)

	s.AddTransaction(expense(500, "Food & Dining"))
	assert.Equal(t, 100.0, s.BudgetProgress("Food & Dining"), "clamped at 100")
}

func TestBudgetProgress_NoBudget(t *testing.T) {
	s := newStore(t)
	s.AddTransaction(expense(50, "Food & Dining"))
	assert.Equal(t, 0.0, s.BudgetProgress("Food & Dining"))
}

func TestBudgetProgress_IgnoresStoredSpent(t *testing.T) {
	s := newStore(t)
	// Stored spent claims 990, but live recomputation sees only 10.
	s.SetBudget(model.Budget{
		Category: "Food & Dining",
		Limit:    decimal.NewFromInt(100),
		Spent:    decimal.NewFromInt(990),
	})
	s.AddTransaction(expense(10, "Food & Dining"))

	assert.InDelta(t, 10, s.BudgetProgress("Food & Dining"), 1e-9)
}

// End to end: seeded categories, an expense, a budget, then overspending
// clamps progress.
func TestBudgetLifecycle(t *testing.T) {
	s := newStore(t)

	date, err := types.ParseDate("2024-01-10")
	require.Nil(t, err)

	s.AddTransaction(model.TransactionData{
		Amount:      decimal.NewFromInt(500),
		Kind:        model.KindExpense,
		Category:    "Food & Dining",
		Date:        date,
		Description: "Lunch",
	})

	assert.True(t, s.TotalExpenses().Equal(decimal.NewFromInt(500)))
	assert.True(t, s.ExpensesByCategory()["Food & Dining"].Equal(decimal.NewFromInt(500)))

	s.SetBudget(model.Budget{
		Category: "Food & Dining",
		Limit:    decimal.NewFromInt(1000),
		Spent:    decimal.NewFromInt(500),
	})
	assert.InDelta(t, 50, s.BudgetProgress("Food & Dining"), 1e-9)

	s.AddTransaction(model.TransactionData{
		Amount:      decimal.NewFromInt(600),
		Kind:        model.KindExpense,
		Category:    "Food & Dining",
		Date:        date,
		Description: "Dinner",
	})
	assert.Equal(t, 100.0, s.BudgetProgress("Food & Dining"), "clamped from 110")
}

func TestAddCategory(t *testing.T) {
	s := newStore(t)

	cat := s.AddCategory(model.CategoryData{Name: "Pets", Icon: "🐕", Color: "#879A39"})

	assert.NotEmpty(t, cat.ID)
	snap := s.Snapshot()
	assert.Len(t, snap.Categories, 10)

	got, ok := snap.CategoryByName("Pets")
	require.True(t, ok)
	assert.Equal(t, cat, got)
}

func TestCategoryByName_OrphanFallback(t *testing.T) {
	s := newStore(t)
	cat := s.CategoryByName("Deleted Category")

	assert.Equal(t, "Deleted Category", cat.Name)
	assert.Equal(t, model.FallbackIcon, cat.Icon)
	assert.Equal(t, model.FallbackColor, cat.Color)
}

func TestLoadSnapshot_ReplacesWholesale(t *testing.T) {
	s := newStore(t)
	s.AddTransaction(expense(100, "Food & Dining"))

	replacement := model.Snapshot{
		Transactions: []model.Transaction{{
			ID:       "t1",
			Amount:   decimal.NewFromInt(7),
			Kind:     model.KindExpense,
			Category: "Imported",
			Date:     types.NewDate(2023, 6, 1),
		}},
		Budgets:    []model.Budget{},
		Categories: []model.Category{{ID: "c1", Name: "Imported"}},
	}
	s.LoadSnapshot(replacement)

	snap := s.Snapshot()
	require.Len(t, snap.Transactions, 1)
	assert.Equal(t, "t1", snap.Transactions[0].ID)
	assert.Len(t, snap.Categories, 1, "seeded categories replaced too")
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newStore(t)
	s.AddTransaction(expense(100, "Food & Dining"))

	snap := s.Snapshot()
	snap.Transactions[0].Description = "mutated"

	assert.Equal(t, "test expense", s.Snapshot().Transactions[0].Description)
}
