// Package categorize handles one-off expense categorization
package categorize

import (
	"fmt"

	"fjacquet/expense-csv/cmd/root"
	"fjacquet/expense-csv/internal/advisor"

	"github.com/spf13/cobra"
)

var (
	description string
	tipsOnly    bool
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single expense description",
	Long: `Categorize a single expense description against the keyword rules and
show the saving tip for the matched category.

Example:
  expense-csv categorize -d "Walmart weekly shop"`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Expense description to categorize")
	Cmd.Flags().BoolVar(&tipsOnly, "tips-only", false, "Print only the saving tip")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()

	category := c.GetMatcher().Categorize(description)
	if !tipsOnly {
		fmt.Fprintf(cmd.OutOrStdout(), "Category: %s\n", category)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Tip: %s\n", advisor.Tip(category))
	return nil
}
