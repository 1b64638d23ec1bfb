// Package currencyutils provides the amount parsing and formatting helpers
// used throughout the application.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var symbolPattern = regexp.MustCompile(`[€$£¥₣₤₧₹₺₽₩฿₫₲₴₸₼₪\s]|CHF|USD|EUR`)

// ParseAmount parses an amount cell into a decimal value. It tolerates
// currency symbols, thousands separators and the usual negative notations;
// anything that is not numeric after cleaning is an error.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	cleaned := CleanNumeric(amountStr)
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cannot parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// CleanNumeric strips currency symbols, whitespace and thousands separators
// and normalizes negative notation, so that the result can be handed to
// decimal.NewFromString. Handles "1,234.56", "1.234,56", "1'234.56",
// "$54.23", "(54.23)" and "54.23-".
func CleanNumeric(amountStr string) string {
	s := symbolPattern.ReplaceAllString(amountStr, "")

	// Accounting negatives: parentheses or a trailing minus.
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	if strings.HasSuffix(s, "-") {
		negative = true
		s = strings.TrimSuffix(s, "-")
	}

	// Both separators present: the rightmost one is the decimal point.
	if strings.Contains(s, ",") && strings.Contains(s, ".") {
		if strings.LastIndex(s, ".") < strings.LastIndex(s, ",") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	} else if strings.Contains(s, ",") {
		// A lone comma is a decimal separator when at most two digits
		// follow it, a thousands separator otherwise.
		parts := strings.Split(s, ",")
		if len(parts[len(parts)-1]) <= 2 {
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}

	s = strings.ReplaceAll(s, "'", "")

	if negative && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s
}

// FormatAmount renders an amount with two decimal places for display.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
