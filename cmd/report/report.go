// Package report handles the full expense report command
package report

import (
	"fmt"
	"os"

	"fjacquet/expense-csv/cmd/common"
	"fjacquet/expense-csv/cmd/root"
	"fjacquet/expense-csv/internal/fileutils"
	"fjacquet/expense-csv/internal/report"
	"fjacquet/expense-csv/internal/summary"
	"fjacquet/expense-csv/internal/validation"

	"github.com/spf13/cobra"
)

var format string

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a full spending report",
	Long: `Generate a full spending report from an expense CSV file: totals by
category and month, the budget comparison and a saving tip for every
category that occurs. Written to stdout, or to a file with --output.

Example:
  expense-csv report -i expenses.csv --format json`,
	RunE: reportFunc,
}

func init() {
	Cmd.Flags().StringVar(&format, "format", "", "Report format, 'text' or 'json' (default from config)")
}

func reportFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()

	res, err := common.ProcessInput(c, root.SharedFlags.Input)
	if err != nil {
		return err
	}

	reportFormat := format
	if reportFormat == "" {
		reportFormat = c.GetConfig().Report.Format
	}
	if err := validation.IsValidReportFormat(reportFormat); err != nil {
		return err
	}

	eng := summary.NewEngine(res.Transactions)
	rev := report.Build(res, eng, c.GetBudgets())

	out, err := c.GetGenerator().Generate(rev, reportFormat)
	if err != nil {
		return err
	}

	if root.SharedFlags.Output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	if err := fileutils.EnsureParentDirectory(root.SharedFlags.Output); err != nil {
		return err
	}
	return os.WriteFile(root.SharedFlags.Output, out, 0600)
}
