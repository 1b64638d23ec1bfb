// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawRecord is a single data row as read from the input table, before any
// validation. Cell values are kept verbatim; Extras holds the cells of
// columns the pipeline does not interpret, in input column order.
type RawRecord struct {
	Description string
	Amount      string
	Date        string
	Extras      []string
	Line        int // 1-based data row number, for diagnostics
}

// Transaction is a cleaned, categorized expense row. Raw rows become
// transactions only after validation, so a Transaction always carries a
// non-empty description, a parsed amount, a date and a month bucket.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    string
	Month       string // calendar month bucket, YYYY-MM
	Extras      []string
}
