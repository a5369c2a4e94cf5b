package timex

import (
	"strings"
	"time"
)

// dateLayouts are tried in order. All are day/month/year; single-digit
// days and months are accepted.
var dateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
}

// ParseDayMonthYear parses a date written day-first. Empty or unparsable
// input yields nil; it never returns an error.
func ParseDayMonthYear(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return &t
		}
	}
	return nil
}

// FormatDate renders t as dd/mm/yyyy, or "" for nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}

// FormatDateTime renders t as dd/mm/yyyy HH:MM, or "" for nil.
func FormatDateTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006 15:04")
}
