package model

import "github.com/shopspring/decimal"

func init() {
	// The persisted layout stores amounts as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Snapshot is the complete store state at a point in time and the unit of
// persistence. Mutations never edit a snapshot in place; they build a new
// one.
type Snapshot struct {
	Transactions []Transaction `json:"transactions"`
	Budgets      []Budget      `json:"budgets"`
	Categories   []Category    `json:"categories"`
}

// Seed returns the first-run snapshot: no records, built-in categories.
func Seed() Snapshot {
	return Snapshot{
		Transactions: []Transaction{},
		Budgets:      []Budget{},
		Categories:   SeedCategories(),
	}
}

// Clone returns a deep copy of the snapshot. Slices are copied so the
// result shares no mutable state with the receiver.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Transactions: make([]Transaction, len(s.Transactions)),
		Budgets:      make([]Budget, len(s.Budgets)),
		Categories:   make([]Category, len(s.Categories)),
	}
	copy(out.Transactions, s.Transactions)
	copy(out.Budgets, s.Budgets)
	copy(out.Categories, s.Categories)
	return out
}

// CategoryByName resolves a category by its display name. The second
// return is false for orphaned names; callers fall back to FallbackIcon
// and FallbackColor.
func (s Snapshot) CategoryByName(name string) (Category, bool) {
	for _, c := range s.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
