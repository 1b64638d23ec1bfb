// Package ingest reads delimited expense tables and turns them into
// cleaned, categorized transactions.
//
// Ingestion is two-phase. The Reader loads the raw grid without judging
// it; the Validator then enforces the column contract, drops unusable
// rows, fills in dates and assigns categories. Fatal problems (no header,
// missing required columns) abort with a typed error and no output; row
// level problems only shrink the output and are counted in Stats.
package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"fjacquet/expense-csv/internal/logging"
	"fjacquet/expense-csv/internal/parsererror"
)

// Table is a raw delimited table: the header plus the data rows, exactly
// as they appeared in the input.
type Table struct {
	FilePath string
	Columns  []string
	Rows     [][]string
}

// Reader reads delimited files into Tables.
type Reader struct {
	delimiter rune
	logger    logging.Logger
}

// NewReader returns a Reader splitting on delimiter; zero means comma.
func NewReader(delimiter rune, logger logging.Logger) *Reader {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &Reader{delimiter: delimiter, logger: logger}
}

// ReadFile reads the delimited table stored at path.
func (r *Reader) ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{FilePath: path, Msg: "cannot open input", Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			r.logger.WithError(cerr).Warn("failed to close input file",
				logging.F(logging.FieldFile, path))
		}
	}()

	tbl, err := r.Read(f)
	if err != nil {
		var invalid *parsererror.InvalidFormatError
		if errors.As(err, &invalid) && invalid.FilePath == "" {
			invalid.FilePath = path
		}
		return nil, err
	}
	tbl.FilePath = path
	return tbl, nil
}

// Read reads a delimited table from a stream. The first record is the
// header; rows may be ragged, short rows are padded with empty cells
// during validation.
func (r *Reader) Read(src io.Reader) (*Table, error) {
	cr := csv.NewReader(src)
	cr.Comma = r.delimiter
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &parsererror.InvalidFormatError{Msg: "no header row"}
	}
	if err != nil {
		return nil, &parsererror.InvalidFormatError{Msg: "cannot read header", Err: err}
	}

	var rows [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &parsererror.InvalidFormatError{Msg: "cannot read data row", Err: err}
		}
		rows = append(rows, record)
	}

	r.logger.Debug("read input table",
		logging.F(logging.FieldCount, len(rows)),
		logging.F(logging.FieldDelimiter, string(r.delimiter)))
	return &Table{Columns: header, Rows: rows}, nil
}
