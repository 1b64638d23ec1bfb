package ingest

import (
	"strings"
	"time"

	"fjacquet/expense-csv/internal/categorizer"
	"fjacquet/expense-csv/internal/currencyutils"
	"fjacquet/expense-csv/internal/dateutils"
	"fjacquet/expense-csv/internal/logging"
	"fjacquet/expense-csv/internal/models"
	"fjacquet/expense-csv/internal/parsererror"
)

// Stats counts what validation did with the input rows.
type Stats struct {
	Rows             int // data rows in the input
	Kept             int
	DroppedMissing   int // blank description or amount
	DroppedBadAmount int // amount not numeric
	DroppedBadDate   int // date cell present but not parseable
}

// Dropped returns the total number of rows removed during cleaning.
func (s Stats) Dropped() int {
	return s.DroppedMissing + s.DroppedBadAmount + s.DroppedBadDate
}

// Result is the outcome of validating and cleaning one table.
type Result struct {
	Transactions []models.Transaction
	// FilePath names the source file when the table came from one.
	FilePath string
	// Columns is the input column order, used to reproduce the table
	// shape on export.
	Columns []string
	// ExtraColumns names the pass-through columns; Transaction.Extras is
	// aligned with it.
	ExtraColumns []string
	// DatesSynthesized is set when the input had no date column and dates
	// were counted backward from today.
	DatesSynthesized bool
	Stats            Stats
}

// Validator turns raw tables into cleaned, categorized transactions.
type Validator struct {
	matcher *categorizer.Matcher
	logger  logging.Logger
	now     func() time.Time
}

// NewValidator builds a Validator using matcher for category assignment.
func NewValidator(matcher *categorizer.Matcher, logger logging.Logger) *Validator {
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &Validator{matcher: matcher, logger: logger, now: time.Now}
}

// WithClock replaces the wall clock used for date synthesis. Tests use it
// to pin "today".
func (v *Validator) WithClock(now func() time.Time) *Validator {
	v.now = now
	return v
}

// CheckColumns verifies the required-column contract on its own. It is the
// same check ValidateAndClean performs first.
func CheckColumns(tbl *Table) error {
	missing := missingColumns(tbl.Columns)
	if len(missing) > 0 {
		return &parsererror.MissingColumnError{FilePath: tbl.FilePath, Columns: missing}
	}
	return nil
}

// ValidateAndClean enforces the column contract, drops unusable rows,
// fills in dates, derives month buckets and assigns categories.
//
// Rows survive in input order. When the input has no date column, the
// i-th surviving row is dated i days before today, so the first kept row
// is today, the next yesterday, and so on.
func (v *Validator) ValidateAndClean(tbl *Table) (*Result, error) {
	if err := CheckColumns(tbl); err != nil {
		return nil, err
	}

	descIdx := indexOf(tbl.Columns, models.ColumnDescription)
	amountIdx := indexOf(tbl.Columns, models.ColumnAmount)
	dateIdx := indexOf(tbl.Columns, models.ColumnDate)
	extraIdx, extraNames := extraColumns(tbl.Columns)

	raws := make([]models.RawRecord, 0, len(tbl.Rows))
	for i, row := range tbl.Rows {
		raw := models.RawRecord{
			Line:        i + 1,
			Description: cell(row, descIdx),
			Amount:      cell(row, amountIdx),
		}
		if dateIdx >= 0 {
			raw.Date = cell(row, dateIdx)
		}
		if len(extraIdx) > 0 {
			raw.Extras = make([]string, 0, len(extraIdx))
			for _, idx := range extraIdx {
				raw.Extras = append(raw.Extras, cell(row, idx))
			}
		}
		raws = append(raws, raw)
	}

	synthesize := dateIdx < 0
	now := v.now()
	stats := Stats{Rows: len(raws)}
	txs := make([]models.Transaction, 0, len(raws))

	for _, raw := range raws {
		rowLog := v.logger.WithField(logging.FieldRow, raw.Line)

		if strings.TrimSpace(raw.Description) == "" || strings.TrimSpace(raw.Amount) == "" {
			stats.DroppedMissing++
			rowLog.Warn("row dropped, description or amount missing")
			continue
		}

		amount, err := currencyutils.ParseAmount(raw.Amount)
		if err != nil {
			stats.DroppedBadAmount++
			rowLog.WithError(err).Warn("row dropped, amount is not numeric")
			continue
		}

		var date time.Time
		if synthesize {
			date = dateutils.DaysAgo(now, len(txs))
		} else {
			parsed, _, err := dateutils.ParseDate(raw.Date)
			if err != nil {
				stats.DroppedBadDate++
				rowLog.WithError(err).Warn("row dropped, date is not parseable")
				continue
			}
			date = parsed
		}

		txs = append(txs, models.Transaction{
			Date:        date,
			Description: raw.Description,
			Amount:      amount,
			Category:    v.matcher.Categorize(raw.Description),
			Month:       dateutils.MonthKey(date),
			Extras:      raw.Extras,
		})
		stats.Kept++
	}

	v.logger.Info("cleaned input table",
		logging.F(logging.FieldFile, tbl.FilePath),
		logging.F(logging.FieldKept, stats.Kept),
		logging.F(logging.FieldDropped, stats.Dropped()))

	return &Result{
		Transactions:     txs,
		FilePath:         tbl.FilePath,
		Columns:          append([]string(nil), tbl.Columns...),
		ExtraColumns:     extraNames,
		DatesSynthesized: synthesize,
		Stats:            stats,
	}, nil
}

func missingColumns(columns []string) []string {
	var missing []string
	for _, required := range []string{models.ColumnDescription, models.ColumnAmount} {
		if indexOf(columns, required) < 0 {
			missing = append(missing, required)
		}
	}
	return missing
}

// extraColumns returns the indices and names of the non-reserved columns,
// in input order.
func extraColumns(columns []string) ([]int, []string) {
	var idx []int
	var names []string
	for i, name := range columns {
		if models.IsReservedColumn(name) {
			continue
		}
		idx = append(idx, i)
		names = append(names, name)
	}
	return idx, names
}

func indexOf(columns []string, name string) int {
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	return -1
}

// cell reads row[idx], padding short rows with an empty cell.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
