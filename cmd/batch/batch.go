// Package batch handles batch processing of expense files
package batch

import (
	"fmt"

	"fjacquet/expense-csv/cmd/root"

	"github.com/spf13/cobra"
)

var consolidate bool

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process expense files from a directory",
	Long: `Batch process every CSV file in the input directory and write the
categorized results to the output directory. For batch, -i and -o refer
to directories. With --consolidate, all files are additionally merged
into one chronological table named after the covered date range.

Example:
  expense-csv batch -i statements/ -o categorized/ --consolidate`,
	RunE: batchFunc,
}

func init() {
	Cmd.Flags().BoolVar(&consolidate, "consolidate", false, "Also merge all files into one chronological table")
}

func batchFunc(cmd *cobra.Command, args []string) error {
	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	if inputDir == "" || outputDir == "" {
		return fmt.Errorf("input and output directories must be specified with --input and --output")
	}

	processor := root.GetContainer().GetBatchProcessor()

	count, err := processor.ProcessDirectory(inputDir, outputDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Batch processing completed. %d files written.\n", count)

	if consolidate {
		outPath, err := processor.Consolidate(inputDir, outputDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Consolidated table written to %s.\n", outPath)
	}
	return nil
}
