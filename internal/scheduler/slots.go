package scheduler

import (
	"time"

	"blockplan/internal/domain"
	"blockplan/internal/interval"
)

// slotMode selects which part of a weekday the slot generator covers.
// Weekends have a single pool regardless of mode.
type slotMode int

const (
	modePersonal slotMode = iota
	modeWork
)

const (
	weekendStartHour = 9
	eveningEndHour   = 21
)

// lifeNecessityBlocks returns the fixed daily blocks that are never
// available for scheduling: morning routine, lunch, dinner, and the
// evening wind-down. Identical on weekdays and weekends.
func lifeNecessityBlocks(day time.Time) []interval.Interval {
	return []interval.Interval{
		{Start: hourOn(day, 7, 0), End: hourOn(day, 8, 0)},
		{Start: hourOn(day, 12, 0), End: hourOn(day, 13, 0)},
		{Start: hourOn(day, 18, 0), End: hourOn(day, 19, 0)},
		{Start: hourOn(day, 21, 0), End: hourOn(day, 23, 59)},
	}
}

// daySlots generates the free slots for one calendar day: the base window
// for the day/mode, minus life necessities, minus external events on that
// date, filtered to the configured minimum block length.
//
// Weekday personal time is evening-only: morning time before work is
// intentionally excluded.
func (e *Engine) daySlots(day time.Time, events []*domain.ExternalEvent, mode slotMode) []interval.Interval {
	var base []interval.Interval
	switch {
	case isWeekend(day):
		base = []interval.Interval{{Start: hourOn(day, weekendStartHour, 0), End: hourOn(day, eveningEndHour, 0)}}
	case mode == modeWork:
		base = []interval.Interval{{Start: hourOn(day, e.cfg.WorkStartHour, 0), End: hourOn(day, e.cfg.WorkEndHour, 0)}}
	default:
		base = []interval.Interval{{Start: hourOn(day, e.cfg.WorkEndHour, 0), End: hourOn(day, eveningEndHour, 0)}}
	}

	free := interval.Subtract(base, lifeNecessityBlocks(day))
	free = interval.Subtract(free, eventIntervalsOn(day, events))
	return interval.FilterMinDuration(free, time.Duration(e.cfg.MinBlockMinutes)*time.Minute)
}

// eventIntervalsOn returns the intervals of events whose start date equals
// the given day.
func eventIntervalsOn(day time.Time, events []*domain.ExternalEvent) []interval.Interval {
	var out []interval.Interval
	for _, ev := range events {
		if sameDate(ev.Start, day) {
			out = append(out, interval.Interval{Start: ev.Start, End: ev.End})
		}
	}
	return out
}

func hourOn(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func isWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
