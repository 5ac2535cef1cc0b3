package store

import (
	"github.com/shopspring/decimal"

	"github.com/pocketfin/pocket/internal/model"
)

// TotalIncome sums the amounts of all income transactions.
func (s *Store) TotalIncome() decimal.Decimal {
	return sumByKind(s.snap.Transactions, model.KindIncome)
}

// TotalExpenses sums the amounts of all expense transactions.
func (s *Store) TotalExpenses() decimal.Decimal {
	return sumByKind(s.snap.Transactions, model.KindExpense)
}

// Balance is total income minus total expenses.
func (s *Store) Balance() decimal.Decimal {
	return s.TotalIncome().Sub(s.TotalExpenses())
}

// ExpensesByCategory maps category name to the sum of expense amounts in
// that category. Income is excluded; categories with no expenses are
// absent from the map rather than present with zero.
func (s *Store) ExpensesByCategory() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, tx := range s.snap.Transactions {
		if tx.Kind != model.KindExpense {
			continue
		}
		out[tx.Category] = out[tx.Category].Add(tx.Amount)
	}
	return out
}

// SpentForCategory is the live expense total for one category, computed
// from the transaction list at query time. The Budget's stored Spent
// field is never consulted.
func (s *Store) SpentForCategory(category string) decimal.Decimal {
	var total decimal.Decimal
	for _, tx := range s.snap.Transactions {
		if tx.Kind == model.KindExpense && tx.Category == category {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// BudgetProgress returns spend against the category's budget as a
// percentage clamped to [0, 100]. Categories without a budget report 0.
func (s *Store) BudgetProgress(category string) float64 {
	var budget *model.Budget
	for i := range s.snap.Budgets {
		if s.snap.Budgets[i].Category == category {
			budget = &s.snap.Budgets[i]
			break
		}
	}
	if budget == nil || !budget.Limit.IsPositive() {
		return 0
	}

	spent := s.SpentForCategory(category)
	pct, _ := spent.Div(budget.Limit).Mul(decimal.NewFromInt(100)).Float64()
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// BudgetFor returns the budget for a category, if one is set.
func (s *Store) BudgetFor(category string) (model.Budget, bool) {
	for _, b := range s.snap.Budgets {
		if b.Category == category {
			return b, true
		}
	}
	return model.Budget{}, false
}

// CategoryByName resolves a category by display name. Orphaned names
// resolve to a fallback category so they still render.
func (s *Store) CategoryByName(name string) model.Category {
	if cat, ok := s.snap.CategoryByName(name); ok {
		return cat
	}
	return model.Category{
		Name:  name,
		Icon:  model.FallbackIcon,
		Color: model.FallbackColor,
	}
}

func sumByKind(txs []model.Transaction, kind model.Kind) decimal.Decimal {
	var total decimal.Decimal
	for _, tx := range txs {
		if tx.Kind == kind {
			total = total.Add(tx.Amount)
		}
	}
	return total
}
