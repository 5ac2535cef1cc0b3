package cmd

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

func seededStore(t *testing.T) (*store.Store, []model.Transaction) {
	t.Helper()
	st := store.New(nil, zerolog.Nop())

	date, err := types.ParseDate("2026-08-01")
	require.Nil(t, err)

	var txs []model.Transaction
	for _, desc := range []string{"Groceries", "Rent", "Salary"} {
		txs = append(txs, st.AddTransaction(model.TransactionData{
			Amount:      decimal.NewFromInt(10),
			Kind:        model.KindExpense,
			Category:    "Food & Dining",
			Date:        date,
			Description: desc,
		}))
	}
	return st, txs
}

func TestResolveTransaction_FullID(t *testing.T) {
	st, txs := seededStore(t)

	got, err := resolveTransaction(st, txs[1].ID)
	require.Nil(t, err)
	assert.Equal(t, txs[1].ID, got.ID)
	assert.Equal(t, "Rent", got.Description)
}

func TestResolveTransaction_UniquePrefix(t *testing.T) {
	st, txs := seededStore(t)

	// UUIDs differ early; an 8-char prefix is unique among three
	got, err := resolveTransaction(st, txs[0].ID[:8])
	require.Nil(t, err)
	assert.Equal(t, txs[0].ID, got.ID)
}

func TestResolveTransaction_UnknownIDErrors(t *testing.T) {
	st, _ := seededStore(t)

	_, err := resolveTransaction(st, "no-such-id")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "no transaction with id")
}

func TestResolveTransaction_AmbiguousPrefixErrors(t *testing.T) {
	st, _ := seededStore(t)

	// Every UUID string shares the empty prefix
	_, err := resolveTransaction(st, "")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}
