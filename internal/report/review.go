// Package report assembles the full expense review and renders it as text
// or JSON.
package report

import (
	"time"

	"fjacquet/expense-csv/internal/advisor"
	"fjacquet/expense-csv/internal/ingest"
	"fjacquet/expense-csv/internal/models"
	"fjacquet/expense-csv/internal/summary"

	"github.com/shopspring/decimal"
)

// BudgetLine is one budget comparison row of the review, with the derived
// values materialized for serialization.
type BudgetLine struct {
	Category  string          `json:"category"`
	Budget    decimal.Decimal `json:"budget"`
	Actual    decimal.Decimal `json:"actual"`
	Remaining decimal.Decimal `json:"remaining"`
	Overspent bool            `json:"overspent"`
}

// TipLine pairs an observed category with its spending and saving tip.
type TipLine struct {
	Category string          `json:"category"`
	Spent    decimal.Decimal `json:"spent"`
	Tip      string          `json:"tip"`
}

// Review is the assembled expense report.
type Review struct {
	GeneratedAt      time.Time               `json:"generated_at"`
	InputFile        string                  `json:"input_file,omitempty"`
	Rows             int                     `json:"rows"`
	Kept             int                     `json:"kept"`
	Dropped          int                     `json:"dropped"`
	DatesSynthesized bool                    `json:"dates_synthesized"`
	Categories       []summary.CategoryTotal `json:"categories"`
	Months           []summary.MonthTotal    `json:"months"`
	Budget           []BudgetLine            `json:"budget"`
	Tips             []TipLine               `json:"tips"`
	Total            decimal.Decimal         `json:"total"`
}

// Build assembles a Review from a cleaned result. Categories and tips are
// in alphabetical category order, months chronological, budget lines in
// the fixed budgeted order.
func Build(res *ingest.Result, eng *summary.Engine, budgets models.Budgets) *Review {
	categories := eng.CategoryTotalsSorted()

	tips := make([]TipLine, 0, len(categories))
	for _, ct := range categories {
		tips = append(tips, TipLine{
			Category: ct.Category,
			Spent:    ct.Total,
			Tip:      advisor.Tip(ct.Category),
		})
	}

	comparison := eng.BudgetComparison(budgets)
	budget := make([]BudgetLine, 0, len(comparison))
	for _, line := range comparison {
		budget = append(budget, BudgetLine{
			Category:  line.Category,
			Budget:    line.Budget,
			Actual:    line.Actual,
			Remaining: line.Remaining(),
			Overspent: line.Overspent(),
		})
	}

	return &Review{
		GeneratedAt:      time.Now(),
		InputFile:        res.FilePath,
		Rows:             res.Stats.Rows,
		Kept:             res.Stats.Kept,
		Dropped:          res.Stats.Dropped(),
		DatesSynthesized: res.DatesSynthesized,
		Categories:       categories,
		Months:           eng.MonthlyTotalsSorted(),
		Budget:           budget,
		Tips:             tips,
		Total:            eng.Total(),
	}
}
