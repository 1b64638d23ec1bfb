// Package parsererror defines the typed errors returned by the ingestion
// pipeline so callers can distinguish fatal input problems from everything
// else with errors.As.
package parsererror

import (
	"fmt"
	"strings"
)

// MissingColumnError reports that the input table lacks one or more required
// columns. Nothing is processed when this error is returned.
type MissingColumnError struct {
	FilePath string
	Columns  []string
}

func (e *MissingColumnError) Error() string {
	cols := strings.Join(e.Columns, ", ")
	if e.FilePath != "" {
		return fmt.Sprintf("input file '%s' is missing required columns: %s", e.FilePath, cols)
	}
	return fmt.Sprintf("input is missing required columns: %s", cols)
}

// InvalidFormatError represents an input that could not be read as a
// delimited table at all: unreadable file, empty file, no header row.
type InvalidFormatError struct {
	FilePath string
	Msg      string
	Err      error
}

func (e *InvalidFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid input file '%s': %s: %v", e.FilePath, e.Msg, e.Err)
	}
	return fmt.Sprintf("invalid input file '%s': %s", e.FilePath, e.Msg)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// RulesError reports a category rules file that exists but could not be
// used: unreadable, not valid YAML, or structurally invalid. A missing rules
// file is not an error; the built-in defaults cover that case.
type RulesError struct {
	FilePath string
	Err      error
}

func (e *RulesError) Error() string {
	return fmt.Sprintf("invalid category rules file '%s': %v", e.FilePath, e.Err)
}

func (e *RulesError) Unwrap() error {
	return e.Err
}
