package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Budgets holds the monthly budget for each of the four budgeted categories.
type Budgets struct {
	Groceries     decimal.Decimal
	Rent          decimal.Decimal
	Utilities     decimal.Decimal
	Entertainment decimal.Decimal
}

// DefaultBudgets returns the budget amounts used when the user sets none.
func DefaultBudgets() Budgets {
	return Budgets{
		Groceries:     decimal.NewFromInt(200),
		Rent:          decimal.NewFromInt(1000),
		Utilities:     decimal.NewFromInt(150),
		Entertainment: decimal.NewFromInt(100),
	}
}

// ForCategory returns the budget amount for a budgeted category name and
// false for any other name.
func (b Budgets) ForCategory(category string) (decimal.Decimal, bool) {
	switch category {
	case CategoryGroceries:
		return b.Groceries, true
	case CategoryRent:
		return b.Rent, true
	case CategoryUtilities:
		return b.Utilities, true
	case CategoryEntertainment:
		return b.Entertainment, true
	}
	return decimal.Zero, false
}

// Validate rejects negative budget amounts.
func (b Budgets) Validate() error {
	lines := []struct {
		name   string
		amount decimal.Decimal
	}{
		{CategoryGroceries, b.Groceries},
		{CategoryRent, b.Rent},
		{CategoryUtilities, b.Utilities},
		{CategoryEntertainment, b.Entertainment},
	}
	for _, l := range lines {
		if l.amount.IsNegative() {
			return fmt.Errorf("budget for %s is negative: %s", l.name, l.amount)
		}
	}
	return nil
}

// BudgetLine is one row of a budget-vs-actual comparison.
type BudgetLine struct {
	Category string
	Budget   decimal.Decimal
	Actual   decimal.Decimal
}

// Remaining returns how much of the budget is left; negative when overspent.
func (l BudgetLine) Remaining() decimal.Decimal {
	return l.Budget.Sub(l.Actual)
}

// Overspent reports whether actual spending exceeds the budget.
func (l BudgetLine) Overspent() bool {
	return l.Actual.GreaterThan(l.Budget)
}

// BudgetCategories returns the budgeted category names in presentation order.
func BudgetCategories() []string {
	return []string{CategoryGroceries, CategoryRent, CategoryUtilities, CategoryEntertainment}
}
