// Package summary aggregates cleaned transactions into the totals that
// reports, exports and budget comparisons are built from.
package summary

import (
	"sort"

	"fjacquet/expense-csv/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one category's spending total.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MonthTotal is one calendar month's spending total.
type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// Engine computes aggregates over a fixed slice of transactions. It never
// modifies them.
type Engine struct {
	transactions []models.Transaction
}

// NewEngine builds an Engine over transactions.
func NewEngine(transactions []models.Transaction) *Engine {
	return &Engine{transactions: transactions}
}

// Count returns the number of transactions.
func (e *Engine) Count() int {
	return len(e.transactions)
}

// Total returns the grand total over all transactions.
func (e *Engine) Total() decimal.Decimal {
	total := decimal.Zero
	for _, tx := range e.transactions {
		total = total.Add(tx.Amount)
	}
	return total
}

// CategoryTotals sums spending per observed category. Categories without
// transactions do not appear.
func (e *Engine) CategoryTotals() map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range e.transactions {
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	return totals
}

// CategoryTotalsSorted returns the category totals in alphabetical order.
func (e *Engine) CategoryTotalsSorted() []CategoryTotal {
	totals := e.CategoryTotals()
	out := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		out = append(out, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// MonthlyTotals sums spending per calendar month bucket.
func (e *Engine) MonthlyTotals() map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range e.transactions {
		totals[tx.Month] = totals[tx.Month].Add(tx.Amount)
	}
	return totals
}

// MonthlyTotalsSorted returns the monthly totals in chronological order.
// The YYYY-MM bucket keys sort chronologically as plain strings.
func (e *Engine) MonthlyTotalsSorted() []MonthTotal {
	totals := e.MonthlyTotals()
	out := make([]MonthTotal, 0, len(totals))
	for month, total := range totals {
		out = append(out, MonthTotal{Month: month, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// BudgetComparison returns one line per budgeted category, always the same
// four in the same order. A category without transactions compares with an
// actual of zero; categories outside the budgeted four, including the
// catch-all, never appear here.
func (e *Engine) BudgetComparison(budgets models.Budgets) []models.BudgetLine {
	totals := e.CategoryTotals()
	lines := make([]models.BudgetLine, 0, 4)
	for _, name := range models.BudgetCategories() {
		budget, _ := budgets.ForCategory(name)
		actual := decimal.Zero
		if total, ok := totals[name]; ok {
			actual = total
		}
		lines = append(lines, models.BudgetLine{Category: name, Budget: budget, Actual: actual})
	}
	return lines
}
