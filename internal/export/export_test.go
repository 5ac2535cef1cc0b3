package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketfin/pocket/internal/export"
	"github.com/pocketfin/pocket/internal/model"
	"github.com/pocketfin/pocket/internal/types"
)

func tx(id string, amount float64, kind model.Kind, category, date, desc string) model.Transaction {
	d, err := types.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return model.Transaction{
		ID:          id,
		Amount:      decimal.NewFromFloat(amount),
		Kind:        kind,
		Category:    category,
		Date:        d,
		Description: desc,
	}
}

func TestWriteCSV(t *testing.T) {
	txs := []model.Transaction{
		tx("t1", 500, model.KindExpense, "Food & Dining", "2024-01-10", "Lunch"),
		tx("t2", 3000.5, model.KindIncome, "Salary", "2024-01-01", "January pay"),
	}

	var buf bytes.Buffer
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	require.Nil(t, export.WriteCSV(&buf, txs, 30, now))

	records, err := csv.NewReader(&buf).ReadAll()
	require.Nil(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"date", "type", "category", "description", "amount"}, records[0])
	// Newest first.
	assert.Equal(t, []string{"2024-01-10", "expense", "Food & Dining", "Lunch", "500.00"}, records[1])
	assert.Equal(t, []string{"2024-01-01", "income", "Salary", "January pay", "3000.50"}, records[2])
}

func TestWriteCSV_PeriodCutoff(t *testing.T) {
	txs := []model.Transaction{
		tx("old", 10, model.KindExpense, "Other", "2023-06-01", "stale"),
		tx("new", 20, model.KindExpense, "Other", "2024-01-14", "fresh"),
	}

	var buf bytes.Buffer
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	require.Nil(t, export.WriteCSV(&buf, txs, 7, now))

	records, err := csv.NewReader(&buf).ReadAll()
	require.Nil(t, err)
	require.Len(t, records, 2, "header + one fresh row")
	assert.Equal(t, "fresh", records[1][3])
}

func TestJSONRoundTrip(t *testing.T) {
	snap := model.Seed()
	snap.Transactions = []model.Transaction{
		tx("t1", 42.50, model.KindExpense, "Food & Dining", "2024-01-10", "Lunch"),
	}
	snap.Budgets = []model.Budget{
		{Category: "Food & Dining", Limit: decimal.NewFromInt(1000), Spent: decimal.NewFromInt(500)},
	}

	var buf bytes.Buffer
	require.Nil(t, export.WriteJSON(&buf, snap))

	back, err := export.ReadJSON(&buf)
	require.Nil(t, err)

	require.Len(t, back.Transactions, 1)
	assert.Equal(t, "t1", back.Transactions[0].ID)
	assert.True(t, back.Transactions[0].Amount.Equal(decimal.NewFromFloat(42.50)))
	assert.Equal(t, "2024-01-10", back.Transactions[0].Date.String())

	require.Len(t, back.Budgets, 1)
	assert.True(t, back.Budgets[0].Limit.Equal(decimal.NewFromInt(1000)))
	assert.Len(t, back.Categories, 9)
}

func TestReadJSON_Malformed(t *testing.T) {
	_, err := export.ReadJSON(strings.NewReader("{nope"))
	assert.NotNil(t, err)
}

func TestWriteYAML(t *testing.T) {
	snap := model.Seed()
	snap.Transactions = []model.Transaction{
		tx("t1", 12.5, model.KindExpense, "Food & Dining", "2024-01-10", "Lunch"),
	}

	var buf bytes.Buffer
	require.Nil(t, export.WriteYAML(&buf, snap))

	out := buf.String()
	assert.Contains(t, out, "transactions:")
	assert.Contains(t, out, "amount: 12.5")
	assert.Contains(t, out, "date: \"2024-01-10\"")
	assert.Contains(t, out, "categories:")
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"csv", "json", "yaml"} {
		f, err := export.ParseFormat(valid)
		require.Nil(t, err)
		assert.Equal(t, valid, string(f))
	}

	_, err := export.ParseFormat("xml")
	assert.NotNil(t, err)
}
