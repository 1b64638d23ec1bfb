// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"fjacquet/expense-csv/internal/batch"
	"fjacquet/expense-csv/internal/container"
	"fjacquet/expense-csv/internal/currencyutils"
	"fjacquet/expense-csv/internal/ingest"
	"fjacquet/expense-csv/internal/models"
	"fjacquet/expense-csv/internal/summary"
	"fjacquet/expense-csv/internal/validation"
)

// ProcessInput reads, validates and categorizes one expense file.
func ProcessInput(c *container.Container, inputFile string) (*ingest.Result, error) {
	if inputFile == "" {
		return nil, fmt.Errorf("input file must be specified with --input")
	}
	if err := validation.IsValidInputPath(inputFile); err != nil {
		return nil, err
	}

	tbl, err := c.GetReader().ReadFile(inputFile)
	if err != nil {
		return nil, err
	}
	return c.GetValidator().ValidateAndClean(tbl)
}

// DefaultOutputFile names the categorized output next to the input file.
func DefaultOutputFile(inputFile string) string {
	return filepath.Join(filepath.Dir(inputFile), batch.OutputFilename(inputFile))
}

// PrintCategoryTotals writes per-category totals as an aligned table.
func PrintCategoryTotals(w io.Writer, totals []summary.CategoryTotal) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Category\tAmount")
	for _, ct := range totals {
		fmt.Fprintf(tw, "%s\t%s\n", ct.Category, currencyutils.FormatAmount(ct.Total))
	}
	_ = tw.Flush()
}

// PrintMonthlyTotals writes per-month totals as an aligned table.
func PrintMonthlyTotals(w io.Writer, totals []summary.MonthTotal) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Month\tAmount")
	for _, mt := range totals {
		fmt.Fprintf(tw, "%s\t%s\n", mt.Month, currencyutils.FormatAmount(mt.Total))
	}
	_ = tw.Flush()
}

// PrintBudgetLines writes the budget comparison as an aligned table.
func PrintBudgetLines(w io.Writer, lines []models.BudgetLine) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Category\tBudget\tActual\tRemaining\tStatus")
	for _, line := range lines {
		status := "within budget"
		if line.Overspent() {
			status = "OVER BUDGET"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			line.Category,
			currencyutils.FormatAmount(line.Budget),
			currencyutils.FormatAmount(line.Actual),
			currencyutils.FormatAmount(line.Remaining()),
			status)
	}
	_ = tw.Flush()
}
