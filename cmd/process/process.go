// Package process handles cleaning and categorizing a single expense file
package process

import (
	"fmt"

	"fjacquet/expense-csv/cmd/common"
	"fjacquet/expense-csv/cmd/root"
	"fjacquet/expense-csv/internal/logging"
	"fjacquet/expense-csv/internal/summary"

	"github.com/spf13/cobra"
)

var showSummary bool

// Cmd represents the process command
var Cmd = &cobra.Command{
	Use:   "process",
	Short: "Clean and categorize an expense CSV file",
	Long: `Clean an expense CSV file and write it back with Category, Date and
Month columns added. Rows with a missing description or an unparseable
amount are dropped. When the input has no Date column, dates are counted
back from today, newest row first.

Example:
  expense-csv process -i expenses.csv -o expenses_categorized.csv`,
	RunE: processFunc,
}

func init() {
	Cmd.Flags().BoolVar(&showSummary, "summary", false, "Print a category summary after processing")
}

func processFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	logger := c.GetLogger()

	res, err := common.ProcessInput(c, root.SharedFlags.Input)
	if err != nil {
		return err
	}

	outputFile := root.SharedFlags.Output
	if outputFile == "" {
		outputFile = common.DefaultOutputFile(root.SharedFlags.Input)
	}

	if err := c.GetWriter().WriteTable(res, outputFile); err != nil {
		return err
	}

	logger.Info("processing completed",
		logging.F(logging.FieldInputFile, root.SharedFlags.Input),
		logging.F(logging.FieldOutputFile, outputFile),
		logging.F(logging.FieldKept, res.Stats.Kept),
		logging.F(logging.FieldDropped, res.Stats.Dropped()))

	if showSummary {
		eng := summary.NewEngine(res.Transactions)
		common.PrintCategoryTotals(cmd.OutOrStdout(), eng.CategoryTotalsSorted())
		fmt.Fprintf(cmd.OutOrStdout(), "Total: %s\n", eng.Total().StringFixed(2))
	}
	return nil
}
