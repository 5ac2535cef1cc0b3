// Package model defines domain types for pocket transactions, budgets,
// and categories.
package model

import (
	"github.com/shopspring/decimal"

	"github.com/pocketfin/pocket/internal/types"
)

// Kind distinguishes income from expense transactions.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid reports whether k is one of the closed set of transaction kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is a single income or expense record. The ID is assigned at
// creation and never changes; every other field is replaceable by id.
type Transaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        Kind            `json:"type"`
	Category    string          `json:"category"`
	Date        types.Date      `json:"date"`
	Description string          `json:"description"`
}

// TransactionData holds the caller-supplied fields for a new transaction,
// before the store assigns an identifier.
type TransactionData struct {
	Amount      decimal.Decimal
	Kind        Kind
	Category    string
	Date        types.Date
	Description string
}
