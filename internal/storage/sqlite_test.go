package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketfin/pocket/internal/model"
	"github.com/pocketfin/pocket/internal/storage"
	"github.com/pocketfin/pocket/internal/types"
)

func openJournal(t *testing.T, path string) *storage.SQLiteJournal {
	t.Helper()
	j, err := storage.OpenSQLite(path)
	require.Nil(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func tx(id string, amount int64, category string) model.Transaction {
	return model.Transaction{
		ID:       id,
		Amount:   decimal.NewFromInt(amount),
		Kind:     model.KindExpense,
		Category: category,
		Date:     types.NewDate(2024, 3, 15),
	}
}

func TestSQLiteJournal_EmptyLoad(t *testing.T) {
	j := openJournal(t, filepath.Join(t.TempDir(), "pocket.db"))

	_, ok, err := j.Load()
	require.Nil(t, err)
	assert.False(t, ok, "fresh database should report no prior state")
}

func TestSQLiteJournal_ReplayEquivalence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pocket.db")
	j := openJournal(t, path)

	snap := model.Seed()
	changes := []model.Change{
		{Op: model.OpAddTransaction, Transaction: ptr(tx("t1", 100, "Food & Dining"))},
		{Op: model.OpAddTransaction, Transaction: ptr(tx("t2", 40, "Transportation"))},
		{Op: model.OpSetBudget, Budget: &model.Budget{Category: "Food & Dining", Limit: decimal.NewFromInt(500)}},
		{Op: model.OpDeleteTransaction, TransactionID: "t2"},
		{Op: model.OpAddCategory, Category: &model.Category{ID: "c1", Name: "Pets", Icon: "🐕"}},
	}
	for _, c := range changes {
		snap = snap.Apply(c)
		require.Nil(t, j.Record(c, snap))
	}
	require.Nil(t, j.Close())

	// A fresh open must rebuild the exact same state.
	j2 := openJournal(t, path)
	loaded, ok, err := j2.Load()
	require.Nil(t, err)
	require.True(t, ok)

	require.Len(t, loaded.Transactions, 1)
	assert.Equal(t, "t1", loaded.Transactions[0].ID)
	require.Len(t, loaded.Budgets, 1)
	assert.True(t, loaded.Budgets[0].Limit.Equal(decimal.NewFromInt(500)))
	assert.Len(t, loaded.Categories, 10)
}

func TestSQLiteJournal_AppendsAfterBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pocket.db")
	j := openJournal(t, path)

	snap := model.Seed()
	c := model.Change{Op: model.OpAddTransaction, Transaction: ptr(tx("t1", 1, "Other"))}
	snap = snap.Apply(c)
	require.Nil(t, j.Record(c, snap)) // first write compacts into a base row

	for i := 0; i < 5; i++ {
		c := model.Change{Op: model.OpSetBudget, Budget: &model.Budget{
			Category: "Other", Limit: decimal.NewFromInt(int64(i + 1)),
		}}
		snap = snap.Apply(c)
		require.Nil(t, j.Record(c, snap))
	}

	n, err := j.JournalLen()
	require.Nil(t, err)
	assert.Equal(t, 5, n, "changes after the base row are journaled, not compacted")
}

func TestSQLiteJournal_LoadSnapshotCompacts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pocket.db")
	j := openJournal(t, path)

	snap := model.Seed()
	c := model.Change{Op: model.OpAddTransaction, Transaction: ptr(tx("t1", 1, "Other"))}
	snap = snap.Apply(c)
	require.Nil(t, j.Record(c, snap))

	replacement := model.Snapshot{
		Transactions: []model.Transaction{tx("imported", 9, "Imported")},
		Budgets:      []model.Budget{},
		Categories:   []model.Category{{ID: "c1", Name: "Imported"}},
	}
	c = model.Change{Op: model.OpLoadSnapshot, Snapshot: &replacement}
	snap = snap.Apply(c)
	require.Nil(t, j.Record(c, snap))

	n, err := j.JournalLen()
	require.Nil(t, err)
	assert.Equal(t, 0, n, "wholesale replace folds into a fresh base row")

	loaded, ok, err := j.Load()
	require.Nil(t, err)
	require.True(t, ok)
	require.Len(t, loaded.Transactions, 1)
	assert.Equal(t, "imported", loaded.Transactions[0].ID)
}

func ptr[T any](v T) *T { return &v }
