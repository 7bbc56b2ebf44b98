package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	// DateLayout is the calendar-date format accepted from clients.
	DateLayout = "2006-01-02"
	// LogDateLayout renders a date without time of day, e.g. "Mon Jan 01 2024".
	LogDateLayout = "Mon Jan 02 2006"
	// TimestampLayout renders an instant with millisecond precision in UTC.
	TimestampLayout = "2006-01-02T15:04:05.000Z"
)

var ErrInvalidDate = errors.New("invalid date")

// ParseDate accepts "YYYY-MM-DD" (midnight UTC) or an RFC 3339 timestamp.
// The result is truncated to millisecond precision, which is what the store keeps.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.ParseInLocation(DateLayout, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return NormalizeDate(t), nil
}

// NormalizeDate converts t to UTC at millisecond precision.
func NormalizeDate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// FormatLogDate renders the calendar day of t in UTC.
func FormatLogDate(t time.Time) string {
	return t.UTC().Format(LogDateLayout)
}

// FormatTimestamp renders t as an ISO 8601 UTC timestamp with milliseconds.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
