package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"fjacquet/expense-csv/internal/currencyutils"
	"fjacquet/expense-csv/internal/logging"
)

// Formats accepted by Generator.Generate.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Generator renders a Review.
type Generator struct {
	logger logging.Logger
}

// NewGenerator returns a Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &Generator{logger: logger}
}

// Generate renders the review in the given format, "text" or "json".
func (g *Generator) Generate(rev *Review, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return g.generateJSON(rev)
	case FormatText:
		return g.generateText(rev)
	default:
		return nil, fmt.Errorf("unsupported report format: %s (supported: text, json)", format)
	}
}

func (g *Generator) generateJSON(rev *Review) ([]byte, error) {
	out, err := json.MarshalIndent(rev, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return out, nil
}

func (g *Generator) generateText(rev *Review) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "EXPENSE REPORT")
	fmt.Fprintf(&buf, "Generated: %s\n", rev.GeneratedAt.Format("2006-01-02 15:04"))
	if rev.InputFile != "" {
		fmt.Fprintf(&buf, "Input: %s\n", rev.InputFile)
	}
	fmt.Fprintf(&buf, "Rows: %d processed, %d kept, %d dropped\n", rev.Rows, rev.Kept, rev.Dropped)
	if rev.DatesSynthesized {
		fmt.Fprintln(&buf, "Dates: no date column in the input, dates were counted back from today")
	}

	fmt.Fprintln(&buf, "\nSPENDING BY CATEGORY")
	if len(rev.Categories) == 0 {
		fmt.Fprintln(&buf, "  no expenses")
	} else {
		tw := newTabWriter(&buf)
		fmt.Fprintln(tw, "  Category\tAmount")
		for _, ct := range rev.Categories {
			fmt.Fprintf(tw, "  %s\t%s\n", ct.Category, currencyutils.FormatAmount(ct.Total))
		}
		flush(tw)
	}

	fmt.Fprintln(&buf, "\nMONTHLY TREND")
	if len(rev.Months) == 0 {
		fmt.Fprintln(&buf, "  no expenses")
	} else {
		tw := newTabWriter(&buf)
		fmt.Fprintln(tw, "  Month\tAmount")
		for _, mt := range rev.Months {
			fmt.Fprintf(tw, "  %s\t%s\n", mt.Month, currencyutils.FormatAmount(mt.Total))
		}
		flush(tw)
	}

	fmt.Fprintln(&buf, "\nBUDGET")
	tw := newTabWriter(&buf)
	fmt.Fprintln(tw, "  Category\tBudget\tActual\tRemaining\tStatus")
	for _, line := range rev.Budget {
		status := "within budget"
		if line.Overspent {
			status = "OVER BUDGET"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n",
			line.Category,
			currencyutils.FormatAmount(line.Budget),
			currencyutils.FormatAmount(line.Actual),
			currencyutils.FormatAmount(line.Remaining),
			status)
	}
	flush(tw)

	fmt.Fprintln(&buf, "\nSAVING TIPS")
	if len(rev.Tips) == 0 {
		fmt.Fprintln(&buf, "  no expenses")
	}
	for _, tip := range rev.Tips {
		fmt.Fprintf(&buf, "  %s (%s): %s\n", tip.Category, currencyutils.FormatAmount(tip.Spent), tip.Tip)
	}

	fmt.Fprintf(&buf, "\nTOTAL SPENT: %s\n", currencyutils.FormatAmount(rev.Total))

	return buf.Bytes(), nil
}

func newTabWriter(buf *bytes.Buffer) *tabwriter.Writer {
	return tabwriter.NewWriter(buf, 0, 4, 2, ' ', 0)
}

func flush(tw *tabwriter.Writer) {
	// Flushing into a bytes.Buffer cannot fail.
	_ = tw.Flush()
}
