package ingest

import (
	"errors"
	"testing"
	"time"

	"fjacquet/expense-csv/internal/categorizer"
	"fjacquet/expense-csv/internal/logging"
	"fjacquet/expense-csv/internal/models"
	"fjacquet/expense-csv/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2026, 8, 22, 15, 4, 5, 0, time.Local)

func newTestValidator() *Validator {
	matcher := categorizer.NewMatcher(models.DefaultRules(), &logging.MockLogger{})
	return NewValidator(matcher, &logging.MockLogger{}).WithClock(func() time.Time { return testToday })
}

func table(columns []string, rows ...[]string) *Table {
	return &Table{FilePath: "expenses.csv", Columns: columns, Rows: rows}
}

func TestValidateAndClean_Scenario(t *testing.T) {
	tbl := table(
		[]string{"Description", "Amount"},
		[]string{"Walmart Grocery Shopping", "54.23"},
		[]string{"Netflix Subscription", "15.99"},
		[]string{"Cash Withdrawal", "abc"},
	)

	res, err := newTestValidator().ValidateAndClean(tbl)
	require.NoError(t, err)

	require.Len(t, res.Transactions, 2)
	assert.Equal(t, 3, res.Stats.Rows)
	assert.Equal(t, 2, res.Stats.Kept)
	assert.Equal(t, 1, res.Stats.DroppedBadAmount)
	assert.Equal(t, 1, res.Stats.Dropped())

	first, second := res.Transactions[0], res.Transactions[1]
	assert.Equal(t, models.CategoryGroceries, first.Category)
	assert.True(t, first.Amount.Equal(decimal.RequireFromString("54.23")))
	assert.Equal(t, models.CategoryEntertainment, second.Category)
	assert.True(t, second.Amount.Equal(decimal.RequireFromString("15.99")))

	// No date column: first kept row is today, the next yesterday.
	assert.True(t, res.DatesSynthesized)
	assert.Equal(t, time.Date(2026, 8, 22, 0, 0, 0, 0, time.Local), first.Date)
	assert.Equal(t, time.Date(2026, 8, 21, 0, 0, 0, 0, time.Local), second.Date)
	assert.Equal(t, "2026-08", first.Month)
}

func TestValidateAndClean_MissingColumns(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		missing []string
	}{
		{
			name:    "no description",
			columns: []string{"Amount", "Note"},
			missing: []string{"Description"},
		},
		{
			name:    "no amount",
			columns: []string{"Description"},
			missing: []string{"Amount"},
		},
		{
			name:    "neither",
			columns: []string{"Merchant", "Total"},
			missing: []string{"Description", "Amount"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestValidator().ValidateAndClean(table(tt.columns, []string{"x", "1"}))
			require.Error(t, err)

			var missing *parsererror.MissingColumnError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.missing, missing.Columns)
			assert.Equal(t, "expenses.csv", missing.FilePath)
		})
	}
}

func TestCheckColumns(t *testing.T) {
	assert.NoError(t, CheckColumns(table([]string{"Description", "Amount"})))
	assert.Error(t, CheckColumns(table([]string{"Description"})))
}

func TestValidateAndClean_RowDrops(t *testing.T) {
	tbl := table(
		[]string{"Description", "Amount"},
		[]string{"", "10.00"},          // blank description
		[]string{"Walmart", ""},        // blank amount
		[]string{"Walmart", "   "},     // whitespace amount
		[]string{"   ", "12.00"},       // whitespace description
		[]string{"Netflix", "oops"},    // non-numeric amount
		[]string{"Aldi Store", "9.99"}, // survives
	)

	res, err := newTestValidator().ValidateAndClean(tbl)
	require.NoError(t, err)

	assert.Equal(t, 6, res.Stats.Rows)
	assert.Equal(t, 1, res.Stats.Kept)
	assert.Equal(t, 4, res.Stats.DroppedMissing)
	assert.Equal(t, 1, res.Stats.DroppedBadAmount)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, "Aldi Store", res.Transactions[0].Description)
}

func TestValidateAndClean_DateColumn(t *testing.T) {
	tbl := table(
		[]string{"Date", "Description", "Amount"},
		[]string{"2026-07-03", "Walmart", "54.23"},
		[]string{"03.07.2026", "Internet bill", "49.90"},
		[]string{"not-a-date", "Netflix", "15.99"},
	)

	res, err := newTestValidator().ValidateAndClean(tbl)
	require.NoError(t, err)

	assert.False(t, res.DatesSynthesized)
	assert.Equal(t, 1, res.Stats.DroppedBadDate)
	require.Len(t, res.Transactions, 2)
	assert.Equal(t, "2026-07", res.Transactions[0].Month)
	assert.Equal(t, time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC), res.Transactions[1].Date)
}

func TestValidateAndClean_BackfillCountsSurvivorsOnly(t *testing.T) {
	tbl := table(
		[]string{"Description", "Amount"},
		[]string{"Walmart", "10"},
		[]string{"broken", "xx"},
		[]string{"Netflix", "20"},
	)

	res, err := newTestValidator().ValidateAndClean(tbl)
	require.NoError(t, err)

	require.Len(t, res.Transactions, 2)
	// The dropped middle row does not consume a day.
	assert.Equal(t, time.Date(2026, 8, 22, 0, 0, 0, 0, time.Local), res.Transactions[0].Date)
	assert.Equal(t, time.Date(2026, 8, 21, 0, 0, 0, 0, time.Local), res.Transactions[1].Date)
}

func TestValidateAndClean_ExtrasPassThrough(t *testing.T) {
	tbl := table(
		[]string{"Note", "Description", "Amount", "Receipt"},
		[]string{"weekly", "Walmart", "54.23", "r-001"},
		[]string{"", "Netflix", "15.99", "r-002"},
	)

	res, err := newTestValidator().ValidateAndClean(tbl)
	require.NoError(t, err)

	assert.Equal(t, []string{"Note", "Receipt"}, res.ExtraColumns)
	require.Len(t, res.Transactions, 2)
	assert.Equal(t, []string{"weekly", "r-001"}, res.Transactions[0].Extras)
	assert.Equal(t, []string{"", "r-002"}, res.Transactions[1].Extras)
}

func TestValidateAndClean_ExistingCategoryIsRecomputed(t *testing.T) {
	tbl := table(
		[]string{"Description", "Amount", "Category", "Month"},
		[]string{"Walmart", "54.23", "bogus", "1999-01"},
	)

	res, err := newTestValidator().ValidateAndClean(tbl)
	require.NoError(t, err)

	// Category and Month are reserved, never pass-through columns.
	assert.Empty(t, res.ExtraColumns)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, models.CategoryGroceries, res.Transactions[0].Category)
	assert.Equal(t, "2026-08", res.Transactions[0].Month)
}

func TestValidateAndClean_ShortRowsPadded(t *testing.T) {
	tbl := table(
		[]string{"Description", "Amount", "Note"},
		[]string{"Walmart"}, // amount cell absent entirely
		[]string{"Netflix", "15.99"},
	)

	res, err := newTestValidator().ValidateAndClean(tbl)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Stats.DroppedMissing)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, "Netflix", res.Transactions[0].Description)
	assert.Equal(t, []string{""}, res.Transactions[0].Extras)
}

func TestValidateAndClean_HeaderOnly(t *testing.T) {
	res, err := newTestValidator().ValidateAndClean(table([]string{"Description", "Amount"}))
	require.NoError(t, err)

	assert.Empty(t, res.Transactions)
	assert.Equal(t, Stats{}, res.Stats)
	assert.True(t, res.DatesSynthesized)
}
