// Package summary handles the spending summary command
package summary

import (
	"fmt"

	"fjacquet/expense-csv/cmd/common"
	"fjacquet/expense-csv/cmd/root"
	"fjacquet/expense-csv/internal/summary"

	"github.com/spf13/cobra"
)

var (
	groupBy    string
	exportFile string
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize spending by category or month",
	Long: `Summarize spending from an expense CSV file, grouped by category or by
calendar month. Only categories and months that actually occur appear.

Example:
  expense-csv summary -i expenses.csv --by month`,
	RunE: summaryFunc,
}

func init() {
	Cmd.Flags().StringVar(&groupBy, "by", "category", "Group totals by 'category' or 'month'")
	Cmd.Flags().StringVar(&exportFile, "export", "", "Also write the totals to this CSV file")
}

func summaryFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()

	res, err := common.ProcessInput(c, root.SharedFlags.Input)
	if err != nil {
		return err
	}
	eng := summary.NewEngine(res.Transactions)

	switch groupBy {
	case "category":
		totals := eng.CategoryTotalsSorted()
		common.PrintCategoryTotals(cmd.OutOrStdout(), totals)
		if exportFile != "" {
			if err := c.GetWriter().WriteCategorySummary(totals, exportFile); err != nil {
				return err
			}
		}
	case "month":
		totals := eng.MonthlyTotalsSorted()
		common.PrintMonthlyTotals(cmd.OutOrStdout(), totals)
		if exportFile != "" {
			if err := c.GetWriter().WriteMonthlySummary(totals, exportFile); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported grouping: %s (supported: category, month)", groupBy)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Total: %s\n", eng.Total().StringFixed(2))
	return nil
}
