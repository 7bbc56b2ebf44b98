package domain

import (
	"strconv"
	"strings"
	"time"
)

// LogQuery narrows the exercises returned for a user's log.
// A nil From/To leaves that side of the range open; Limit <= 0 means no cap.
type LogQuery struct {
	From  *time.Time
	To    *time.Time
	Limit int64
}

// ParseLogQuery builds a LogQuery from raw query values. Values that do not
// parse are treated as absent.
func ParseLogQuery(from, to, limit string) LogQuery {
	var q LogQuery
	if t, err := ParseDate(from); err == nil {
		q.From = &t
	}
	if t, err := ParseDate(to); err == nil {
		q.To = &t
	}
	if n, err := strconv.ParseInt(strings.TrimSpace(limit), 10, 64); err == nil && n > 0 {
		q.Limit = n
	}
	return q
}

// LogEntry is the reshaped view of an Exercise inside an ExerciseLog.
type LogEntry struct {
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}

// NewLogEntry reshapes an exercise for log output.
func NewLogEntry(ex Exercise) LogEntry {
	return LogEntry{
		Description: ex.Description,
		Duration:    ex.Duration,
		Date:        FormatLogDate(ex.Date),
	}
}

// ExerciseLog is the result of a log query for one user.
// Count is len(Log), after any limit was applied.
type ExerciseLog struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	ID       string     `json:"_id"`
	Log      []LogEntry `json:"log"`
}
