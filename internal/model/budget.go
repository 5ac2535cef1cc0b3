package model

import "github.com/shopspring/decimal"

// Budget is a spending limit for one category. At most one budget exists
// per category name; SetBudget upserts.
//
// Spent is a display hint captured when the budget was last edited. It is
// persisted for layout compatibility but queries always derive current
// spend from the transaction list instead.
type Budget struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Spent    decimal.Decimal `json:"spent"`
}
