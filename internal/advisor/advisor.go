// Package advisor maps expense categories to fixed money-saving tips.
package advisor

import "fjacquet/expense-csv/internal/models"

var tips = map[string]string{
	models.CategoryGroceries:     "Consider buying in bulk, using coupons, and shopping at discount stores.",
	models.CategoryRent:          "Try to negotiate a lower rent or consider moving to a more affordable place.",
	models.CategoryUtilities:     "Turn off unused electronics, and use energy-efficient appliances.",
	models.CategoryEntertainment: "Cut down on subscriptions and find free or low-cost entertainment options.",
	models.CategoryOther:         "Analyze discretionary expenses and reduce non-essential spending.",
}

// Tip returns the saving tip for a category. Categories without a tip of
// their own get the catch-all tip, so the result is never empty.
func Tip(category string) string {
	if tip, ok := tips[category]; ok {
		return tip
	}
	return tips[models.CategoryOther]
}

// Categories returns the advised category names in presentation order.
func Categories() []string {
	return []string{
		models.CategoryGroceries,
		models.CategoryRent,
		models.CategoryUtilities,
		models.CategoryEntertainment,
		models.CategoryOther,
	}
}
