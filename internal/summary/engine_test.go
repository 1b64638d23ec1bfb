package summary

import (
	"testing"
	"time"

	"fjacquet/expense-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(description, category, month, amount string) models.Transaction {
	return models.Transaction{
		Date:        time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC),
		Description: description,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Month:       month,
	}
}

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		tx("Walmart Grocery Shopping", models.CategoryGroceries, "2026-08", "54.23"),
		tx("Netflix Subscription", models.CategoryEntertainment, "2026-08", "15.99"),
		tx("Aldi", models.CategoryGroceries, "2026-07", "20.00"),
		tx("Cash Withdrawal", models.CategoryOther, "2026-07", "100.00"),
	}
}

func TestEngine_CategoryTotals(t *testing.T) {
	eng := NewEngine(sampleTransactions())
	totals := eng.CategoryTotals()

	require.Len(t, totals, 3)
	assert.True(t, totals[models.CategoryGroceries].Equal(decimal.RequireFromString("74.23")))
	assert.True(t, totals[models.CategoryEntertainment].Equal(decimal.RequireFromString("15.99")))
	assert.True(t, totals[models.CategoryOther].Equal(decimal.RequireFromString("100.00")))

	_, present := totals[models.CategoryRent]
	assert.False(t, present, "categories without spending are not invented")
}

func TestEngine_CategoryTotalsSorted(t *testing.T) {
	sorted := NewEngine(sampleTransactions()).CategoryTotalsSorted()

	require.Len(t, sorted, 3)
	assert.Equal(t, models.CategoryEntertainment, sorted[0].Category)
	assert.Equal(t, models.CategoryGroceries, sorted[1].Category)
	assert.Equal(t, models.CategoryOther, sorted[2].Category)
}

func TestEngine_MonthlyTotals(t *testing.T) {
	eng := NewEngine(sampleTransactions())

	totals := eng.MonthlyTotals()
	require.Len(t, totals, 2)
	assert.True(t, totals["2026-08"].Equal(decimal.RequireFromString("70.22")))
	assert.True(t, totals["2026-07"].Equal(decimal.RequireFromString("120.00")))

	sorted := eng.MonthlyTotalsSorted()
	require.Len(t, sorted, 2)
	assert.Equal(t, "2026-07", sorted[0].Month)
	assert.Equal(t, "2026-08", sorted[1].Month)
}

func TestEngine_TotalMatchesPartitions(t *testing.T) {
	eng := NewEngine(sampleTransactions())
	total := eng.Total()

	assert.True(t, total.Equal(decimal.RequireFromString("190.22")))

	byCategory := decimal.Zero
	for _, ct := range eng.CategoryTotalsSorted() {
		byCategory = byCategory.Add(ct.Total)
	}
	assert.True(t, total.Equal(byCategory))

	byMonth := decimal.Zero
	for _, mt := range eng.MonthlyTotalsSorted() {
		byMonth = byMonth.Add(mt.Total)
	}
	assert.True(t, total.Equal(byMonth))
}

func TestEngine_ExactDecimalArithmetic(t *testing.T) {
	eng := NewEngine([]models.Transaction{
		tx("Walmart", models.CategoryGroceries, "2026-08", "54.23"),
		tx("Netflix", models.CategoryEntertainment, "2026-08", "15.99"),
	})
	assert.Equal(t, "70.22", eng.Total().String())
}

func TestEngine_BudgetComparison(t *testing.T) {
	eng := NewEngine(sampleTransactions())
	lines := eng.BudgetComparison(models.DefaultBudgets())

	require.Len(t, lines, 4, "always exactly the four budgeted categories")
	assert.Equal(t, models.CategoryGroceries, lines[0].Category)
	assert.Equal(t, models.CategoryRent, lines[1].Category)
	assert.Equal(t, models.CategoryUtilities, lines[2].Category)
	assert.Equal(t, models.CategoryEntertainment, lines[3].Category)

	assert.True(t, lines[0].Actual.Equal(decimal.RequireFromString("74.23")))
	assert.True(t, lines[1].Actual.IsZero(), "no rent spending means a zero actual")
	assert.True(t, lines[2].Actual.IsZero())
	assert.True(t, lines[3].Actual.Equal(decimal.RequireFromString("15.99")))

	assert.True(t, lines[0].Budget.Equal(decimal.NewFromInt(200)))
	assert.False(t, lines[0].Overspent())
	assert.True(t, lines[0].Remaining().Equal(decimal.RequireFromString("125.77")))

	for _, line := range lines {
		assert.NotEqual(t, models.CategoryOther, line.Category,
			"the catch-all never appears in the budget comparison")
	}
}

func TestEngine_Empty(t *testing.T) {
	eng := NewEngine(nil)

	assert.Zero(t, eng.Count())
	assert.True(t, eng.Total().IsZero())
	assert.Empty(t, eng.CategoryTotals())
	assert.Empty(t, eng.MonthlyTotalsSorted())

	lines := eng.BudgetComparison(models.DefaultBudgets())
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.True(t, line.Actual.IsZero())
	}
}
