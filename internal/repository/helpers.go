package repository

import (
	"database/sql"
	"strconv"
	"strings"
	"time"
)

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the formatted string.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// nullableFloatToValue converts a *float64 to a value suitable for SQLite storage.
func nullableFloatToValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// nullableStringToValue converts a *string to a value suitable for SQLite storage.
// Stored as '' rather than NULL since the columns have NOT NULL defaults.
func nullableStringToValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// stringToNullableString turns '' back into a nil pointer.
func stringToNullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// weekdaysToString joins weekdays as a comma-separated list of numbers
// (time.Sunday = 0).
func weekdaysToString(days []time.Weekday) string {
	if len(days) == 0 {
		return ""
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

// stringToWeekdays is the inverse of weekdaysToString. Unparseable entries
// are dropped.
func stringToWeekdays(s string) []time.Weekday {
	if s == "" {
		return nil
	}
	var days []time.Weekday
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 6 {
			continue
		}
		days = append(days, time.Weekday(n))
	}
	return days
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
