package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"today", now, "Today"},
		{"tomorrow", now.AddDate(0, 0, 1), "Tomorrow"},
		{"yesterday", now.AddDate(0, 0, -1), "Yesterday"},
		{"in days", now.AddDate(0, 0, 5), "In 5d"},
		{"in weeks", now.AddDate(0, 0, 21), "In 3w"},
		{"in months", now.AddDate(0, 0, 90), "In 3mo"},
		{"days ago", now.AddDate(0, 0, -4), "4d ago"},
		{"weeks ago", now.AddDate(0, 0, -21), "3w ago"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RelativeDateFrom(tc.t, now))
		})
	}
}

func TestHours(t *testing.T) {
	assert.Equal(t, "2h", Hours(2))
	assert.Equal(t, "1.5h", Hours(1.5))
	assert.Equal(t, "0h", Hours(0))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "12345678", TruncID("12345678-abcd-efgh"))
	assert.Equal(t, "short", TruncID("short"))
}

func TestClockRange(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "09:00-10:30", ClockRange(start, start.Add(90*time.Minute)))
}
