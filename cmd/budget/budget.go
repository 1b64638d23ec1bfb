// Package budget handles the budget comparison command
package budget

import (
	"fmt"

	"fjacquet/expense-csv/cmd/common"
	"fjacquet/expense-csv/cmd/root"
	"fjacquet/expense-csv/internal/summary"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	groceriesBudget     float64
	rentBudget          float64
	utilitiesBudget     float64
	entertainmentBudget float64
	exportFile          string
)

// Cmd represents the budget command
var Cmd = &cobra.Command{
	Use:   "budget",
	Short: "Compare spending against category budgets",
	Long: `Compare spending from an expense CSV file against the budgets for
groceries, rent, utilities and entertainment. Every budgeted category is
listed, with a zero actual when it has no expenses.

Example:
  expense-csv budget -i expenses.csv --groceries 250`,
	RunE: budgetFunc,
}

func init() {
	Cmd.Flags().Float64Var(&groceriesBudget, "groceries", 0, "Override the groceries budget")
	Cmd.Flags().Float64Var(&rentBudget, "rent", 0, "Override the rent budget")
	Cmd.Flags().Float64Var(&utilitiesBudget, "utilities", 0, "Override the utilities budget")
	Cmd.Flags().Float64Var(&entertainmentBudget, "entertainment", 0, "Override the entertainment budget")
	Cmd.Flags().StringVar(&exportFile, "export", "", "Also write the comparison to this CSV file")
}

func budgetFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()

	res, err := common.ProcessInput(c, root.SharedFlags.Input)
	if err != nil {
		return err
	}

	budgets := c.GetBudgets()
	overrides := []struct {
		name   string
		value  float64
		target *decimal.Decimal
	}{
		{"groceries", groceriesBudget, &budgets.Groceries},
		{"rent", rentBudget, &budgets.Rent},
		{"utilities", utilitiesBudget, &budgets.Utilities},
		{"entertainment", entertainmentBudget, &budgets.Entertainment},
	}
	for _, o := range overrides {
		if !cmd.Flags().Changed(o.name) {
			continue
		}
		if o.value < 0 {
			return fmt.Errorf("budget for %s cannot be negative: %v", o.name, o.value)
		}
		*o.target = decimal.NewFromFloat(o.value)
	}

	eng := summary.NewEngine(res.Transactions)
	lines := eng.BudgetComparison(budgets)

	common.PrintBudgetLines(cmd.OutOrStdout(), lines)

	if exportFile != "" {
		return c.GetWriter().WriteBudgetReport(lines, exportFile)
	}
	return nil
}
