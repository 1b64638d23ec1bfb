// Package validation holds the small input checks shared by the commands
// and the configuration loader.
package validation

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// IsValidInputPath checks that path names an existing regular file.
func IsValidInputPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, expected a file", path)
	}
	return nil
}

// IsValidReportFormat checks the report output format.
func IsValidReportFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unsupported report format: %s (supported: text, json)", format)
	}
}

// IsValidDelimiter checks that the CSV delimiter is a single character.
func IsValidDelimiter(delimiter string) error {
	if utf8.RuneCountInString(delimiter) != 1 {
		return fmt.Errorf("csv delimiter must be a single character, got %q", delimiter)
	}
	return nil
}

// IsValidLogLevel checks the configured log level.
func IsValidLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log level: %s (supported: debug, info, warn, error)", level)
	}
}

// IsValidLogFormat checks the configured log format.
func IsValidLogFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid log format: %s (supported: text, json)", format)
	}
}
