// Package interval provides the pure slot arithmetic the scheduler is built
// on: half-open time intervals, subtraction with splitting on partial
// overlap, and minimum-duration filtering.
package interval

import "time"

// Interval is a half-open time range [Start, End). Invariant: Start < End.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns the interval length.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Overlaps reports whether two half-open intervals intersect.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Subtract removes every blocking interval from the free set. A free
// interval partially covered by a blocker is split into the parts strictly
// before and/or after it; a fully covered interval disappears. The result
// preserves the chronological order of the input free intervals, sub-split
// in place, and is independent of the order of blockers.
func Subtract(free, blocking []Interval) []Interval {
	remaining := free
	for _, block := range blocking {
		next := make([]Interval, 0, len(remaining))
		for _, slot := range remaining {
			if !slot.Overlaps(block) {
				next = append(next, slot)
				continue
			}
			if block.Start.After(slot.Start) {
				next = append(next, Interval{Start: slot.Start, End: block.Start})
			}
			if block.End.Before(slot.End) {
				next = append(next, Interval{Start: block.End, End: slot.End})
			}
		}
		remaining = next
	}
	return remaining
}

// FilterMinDuration drops intervals shorter than min. Apply it after all
// subtractions, never before: subtraction only shrinks intervals, so
// filtering last is both safe and required for correctness.
func FilterMinDuration(intervals []Interval, min time.Duration) []Interval {
	kept := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Duration() >= min {
			kept = append(kept, iv)
		}
	}
	return kept
}
