package domain

import "fmt"

// TaskTiming is the closed record produced by the task-timing analyzer:
// a preferred time of day and the hour window within which a task may be
// scheduled. Exactly these four fields, validated once at the analyzer
// boundary so downstream code can assume validity.
type TaskTiming struct {
	Preferred    TimePreference `json:"preferred_time"`
	EarliestHour int            `json:"earliest_hour"`
	LatestHour   int            `json:"latest_hour"`
	Reasoning    string         `json:"reasoning"`
}

// DefaultTiming is the fallback used whenever the analyzer is unavailable
// or returns an invalid payload. A failed lookup must never abort a
// scheduling run.
func DefaultTiming() TaskTiming {
	return TaskTiming{
		Preferred:    PreferAnytime,
		EarliestHour: 9,
		LatestHour:   21,
		Reasoning:    "Default scheduling (analyzer unavailable)",
	}
}

// WindowHours returns the size of the allowed hour window. Smaller windows
// mean less flexible tasks, which the scheduler places first.
func (t TaskTiming) WindowHours() int {
	return t.LatestHour - t.EarliestHour
}

// AllowsHour reports whether a slot starting at the given hour falls inside
// the half-open window [EarliestHour, LatestHour).
func (t TaskTiming) AllowsHour(hour int) bool {
	return hour >= t.EarliestHour && hour < t.LatestHour
}

func (t TaskTiming) Validate() error {
	if !ValidTimePreferences[string(t.Preferred)] {
		return fmt.Errorf("invalid preferred_time %q", t.Preferred)
	}
	if t.EarliestHour < 0 || t.EarliestHour > 23 {
		return fmt.Errorf("earliest_hour %d out of range [0,23]", t.EarliestHour)
	}
	if t.LatestHour < 0 || t.LatestHour > 23 {
		return fmt.Errorf("latest_hour %d out of range [0,23]", t.LatestHour)
	}
	if t.EarliestHour > t.LatestHour {
		return fmt.Errorf("earliest_hour %d after latest_hour %d", t.EarliestHour, t.LatestHour)
	}
	return nil
}
