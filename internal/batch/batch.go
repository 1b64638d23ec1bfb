// Package batch processes whole directories of expense files: each file is
// cleaned and categorized on its own, and optionally everything is merged
// into one chronological table.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"fjacquet/expense-csv/internal/export"
	"fjacquet/expense-csv/internal/fileutils"
	"fjacquet/expense-csv/internal/ingest"
	"fjacquet/expense-csv/internal/logging"
	"fjacquet/expense-csv/internal/models"
)

// DateRange is the span of dates covered by a set of transactions.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns the range as "YYYY-MM-DD_YYYY-MM-DD", or "" for a zero range.
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s",
		dr.Start.Format("2006-01-02"),
		dr.End.Format("2006-01-02"))
}

// Range returns the date span covered by transactions. ok is false when
// the slice is empty.
func Range(transactions []models.Transaction) (dr DateRange, ok bool) {
	if len(transactions) == 0 {
		return DateRange{}, false
	}
	dr.Start = transactions[0].Date
	dr.End = transactions[0].Date
	for _, tx := range transactions[1:] {
		if tx.Date.Before(dr.Start) {
			dr.Start = tx.Date
		}
		if tx.Date.After(dr.End) {
			dr.End = tx.Date
		}
	}
	return dr, true
}

// Merge combines transaction batches into one chronologically sorted slice.
// Ties on date are broken by description, then amount, so merged output is
// deterministic regardless of input file order.
func Merge(batches ...[]models.Transaction) []models.Transaction {
	var merged []models.Transaction
	for _, batch := range batches {
		merged = append(merged, batch...)
	}
	sort.Slice(merged, func(i, j int) bool {
		if !merged[i].Date.Equal(merged[j].Date) {
			return merged[i].Date.Before(merged[j].Date)
		}
		if merged[i].Description != merged[j].Description {
			return merged[i].Description < merged[j].Description
		}
		return merged[i].Amount.LessThan(merged[j].Amount)
	})
	return merged
}

// ConsolidatedFilename names the merged output file for a date range,
// "expenses_<start>_<end>.csv". A zero range falls back to "expenses.csv".
func ConsolidatedFilename(dr DateRange) string {
	if span := dr.String(); span != "" {
		return fmt.Sprintf("expenses_%s.csv", span)
	}
	return "expenses.csv"
}

// Processor runs the ingest and export pipeline over every CSV file in a
// directory.
type Processor struct {
	reader    *ingest.Reader
	validator *ingest.Validator
	writer    *export.Writer
	logger    logging.Logger
}

// NewProcessor wires a Processor from the pipeline stages.
func NewProcessor(reader *ingest.Reader, validator *ingest.Validator, writer *export.Writer, logger logging.Logger) *Processor {
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &Processor{
		reader:    reader,
		validator: validator,
		writer:    writer,
		logger:    logger,
	}
}

// ProcessDirectory cleans and categorizes every CSV file in inputDir and
// writes each result to outputDir as <name>_categorized.csv. Files that
// cannot be processed are logged and skipped so one bad file does not stop
// the batch. Returns the number of files written.
func (p *Processor) ProcessDirectory(inputDir, outputDir string) (int, error) {
	files, err := p.listInputFiles(inputDir)
	if err != nil {
		return 0, err
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return 0, err
	}

	count := 0
	for _, file := range files {
		res, err := p.processFile(file)
		if err != nil {
			p.logger.WithError(err).Error("skipping file",
				logging.F(logging.FieldFile, file))
			continue
		}
		outPath := filepath.Join(outputDir, OutputFilename(file))
		if err := p.writer.WriteTable(res, outPath); err != nil {
			p.logger.WithError(err).Error("skipping file",
				logging.F(logging.FieldFile, file))
			continue
		}
		count++
	}

	p.logger.Info("batch processing finished",
		logging.F(logging.FieldDirectory, inputDir),
		logging.F(logging.FieldCount, count))
	return count, nil
}

// Consolidate cleans every CSV file in inputDir, merges the surviving
// transactions chronologically and writes one table to outputDir named
// after the covered date range. Returns the path of the written file.
func (p *Processor) Consolidate(inputDir, outputDir string) (string, error) {
	files, err := p.listInputFiles(inputDir)
	if err != nil {
		return "", err
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return "", err
	}

	var batches [][]models.Transaction
	for _, file := range files {
		res, err := p.processFile(file)
		if err != nil {
			p.logger.WithError(err).Error("skipping file",
				logging.F(logging.FieldFile, file))
			continue
		}
		// Extra columns differ between files, so the consolidated
		// table keeps only the canonical columns.
		for i := range res.Transactions {
			res.Transactions[i].Extras = nil
		}
		batches = append(batches, res.Transactions)
	}

	merged := Merge(batches...)
	dr, _ := Range(merged)
	outPath := filepath.Join(outputDir, ConsolidatedFilename(dr))

	consolidated := &ingest.Result{
		Transactions: merged,
		Columns:      []string{models.ColumnDescription, models.ColumnAmount},
		Stats:        ingest.Stats{Rows: len(merged), Kept: len(merged)},
	}
	if err := p.writer.WriteTable(consolidated, outPath); err != nil {
		return "", err
	}

	p.logger.Info("wrote consolidated table",
		logging.F(logging.FieldOutputFile, outPath),
		logging.F(logging.FieldCount, len(merged)))
	return outPath, nil
}

func (p *Processor) processFile(path string) (*ingest.Result, error) {
	tbl, err := p.reader.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.validator.ValidateAndClean(tbl)
}

func (p *Processor) listInputFiles(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		files = append(files, filepath.Join(inputDir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// OutputFilename names the per-file batch output: "<name>_categorized.csv".
func OutputFilename(inputPath string) string {
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return name + "_categorized.csv"
}
