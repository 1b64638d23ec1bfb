// Package dateutils provides the date parsing and formatting helpers used
// throughout the application.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Layout constants used across the application.
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutUS       = "01/02/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
	MonthLayout        = "2006-01"
)

// CommonFormats lists the layouts tried when parsing a date cell, most
// specific and most common first.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutFull,
	DateLayoutEuropean,
	DateLayoutUS,
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"2-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate parses a date string by trying each of CommonFormats in order.
// It returns the parsed time and the layout that matched.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = strings.Join(strings.Fields(dateStr), " ")
	for _, layout := range CommonFormats {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, layout, nil
		}
	}
	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// MonthKey returns the calendar month bucket for a date, e.g. "2026-08".
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// Midnight truncates a time to the start of its day, keeping the location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysAgo returns the start of the day n days before now. DaysAgo(now, 0)
// is today at midnight.
func DaysAgo(now time.Time, n int) time.Time {
	return Midnight(now).AddDate(0, 0, -n)
}

// ToISODate formats a time as YYYY-MM-DD.
func ToISODate(t time.Time) string {
	return t.Format(DateLayoutISO)
}
