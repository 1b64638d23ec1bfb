// Package export serializes pipeline results back to CSV.
//
// The categorized table keeps the input's column order and pass-through
// values and is written with encoding/csv because its shape is only known
// at run time. The fixed-shape summary files go through gocsv tagged row
// structs like every other structured export in this codebase.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"fjacquet/expense-csv/internal/currencyutils"
	"fjacquet/expense-csv/internal/dateutils"
	"fjacquet/expense-csv/internal/fileutils"
	"fjacquet/expense-csv/internal/ingest"
	"fjacquet/expense-csv/internal/logging"
	"fjacquet/expense-csv/internal/models"
	"fjacquet/expense-csv/internal/summary"

	"github.com/gocarina/gocsv"
)

// Writer writes the pipeline's CSV outputs with a shared delimiter.
type Writer struct {
	delimiter rune
	logger    logging.Logger
}

// NewWriter returns a Writer using delimiter for all files; zero means
// comma.
func NewWriter(delimiter rune, logger logging.Logger) *Writer {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &Writer{delimiter: delimiter, logger: logger}
}

// WriteTable writes the cleaned, categorized table. Input columns keep
// their order and position, with Description, Amount, Date, Category and
// Month rewritten from the cleaned transactions and everything else passed
// through untouched. Whichever of Category, Date and Month the input did
// not have are appended, in that order. Amounts are written exactly as
// parsed; dates as YYYY-MM-DD.
func (w *Writer) WriteTable(res *ingest.Result, path string) error {
	if err := fileutils.EnsureParentDirectory(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create output file %s: %w", path, err)
	}
	defer w.closeQuietly(f, path)

	cw := csv.NewWriter(f)
	cw.Comma = w.delimiter

	header, sources := tableLayout(res)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write header to %s: %w", path, err)
	}
	row := make([]string, len(sources))
	for _, tx := range res.Transactions {
		for i, src := range sources {
			row[i] = src.value(tx)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write row to %s: %w", path, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot flush %s: %w", path, err)
	}

	w.logger.Info("wrote categorized table",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldCount, len(res.Transactions)))
	return nil
}

// cellSource tells WriteTable where one output cell comes from: a reserved
// column rewritten from the transaction, or a pass-through cell by index.
type cellSource struct {
	name  string // reserved column name, "" for pass-through
	extra int
}

func (s cellSource) value(tx models.Transaction) string {
	switch s.name {
	case models.ColumnDescription:
		return tx.Description
	case models.ColumnAmount:
		return tx.Amount.String()
	case models.ColumnDate:
		return dateutils.ToISODate(tx.Date)
	case models.ColumnCategory:
		return tx.Category
	case models.ColumnMonth:
		return tx.Month
	}
	if s.extra < len(tx.Extras) {
		return tx.Extras[s.extra]
	}
	return ""
}

func tableLayout(res *ingest.Result) ([]string, []cellSource) {
	var header []string
	var sources []cellSource
	seen := make(map[string]bool)
	extraCursor := 0

	for _, name := range res.Columns {
		if models.IsReservedColumn(name) {
			if seen[name] {
				continue
			}
			seen[name] = true
			header = append(header, name)
			sources = append(sources, cellSource{name: name})
			continue
		}
		header = append(header, name)
		sources = append(sources, cellSource{extra: extraCursor})
		extraCursor++
	}

	for _, name := range []string{models.ColumnCategory, models.ColumnDate, models.ColumnMonth} {
		if !seen[name] {
			header = append(header, name)
			sources = append(sources, cellSource{name: name})
		}
	}
	return header, sources
}

type categoryRow struct {
	Category string `csv:"Category"`
	Amount   string `csv:"Amount"`
}

// WriteCategorySummary writes per-category totals, one row per category.
func (w *Writer) WriteCategorySummary(totals []summary.CategoryTotal, path string) error {
	rows := make([]categoryRow, 0, len(totals))
	for _, ct := range totals {
		rows = append(rows, categoryRow{
			Category: ct.Category,
			Amount:   currencyutils.FormatAmount(ct.Total),
		})
	}
	return w.marshalToFile(rows, path)
}

type monthRow struct {
	Month  string `csv:"Month"`
	Amount string `csv:"Amount"`
}

// WriteMonthlySummary writes per-month totals, one row per month bucket.
func (w *Writer) WriteMonthlySummary(totals []summary.MonthTotal, path string) error {
	rows := make([]monthRow, 0, len(totals))
	for _, mt := range totals {
		rows = append(rows, monthRow{
			Month:  mt.Month,
			Amount: currencyutils.FormatAmount(mt.Total),
		})
	}
	return w.marshalToFile(rows, path)
}

type budgetRow struct {
	Category  string `csv:"Category"`
	Budget    string `csv:"Budget"`
	Actual    string `csv:"Actual"`
	Remaining string `csv:"Remaining"`
	Overspent bool   `csv:"Overspent"`
}

// WriteBudgetReport writes the budget comparison, one row per budgeted
// category.
func (w *Writer) WriteBudgetReport(lines []models.BudgetLine, path string) error {
	rows := make([]budgetRow, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, budgetRow{
			Category:  line.Category,
			Budget:    currencyutils.FormatAmount(line.Budget),
			Actual:    currencyutils.FormatAmount(line.Actual),
			Remaining: currencyutils.FormatAmount(line.Remaining()),
			Overspent: line.Overspent(),
		})
	}
	return w.marshalToFile(rows, path)
}

func (w *Writer) marshalToFile(rows interface{}, path string) error {
	if err := fileutils.EnsureParentDirectory(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create output file %s: %w", path, err)
	}
	defer w.closeQuietly(f, path)

	cw := csv.NewWriter(f)
	cw.Comma = w.delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}

	w.logger.Info("wrote summary file", logging.F(logging.FieldOutputFile, path))
	return nil
}

func (w *Writer) closeQuietly(f *os.File, path string) {
	if err := f.Close(); err != nil {
		w.logger.WithError(err).Warn("failed to close output file",
			logging.F(logging.FieldOutputFile, path))
	}
}
