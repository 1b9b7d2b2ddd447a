package domain

import (
	"fmt"
	"time"
)

// ExternalEvent is an immovable calendar commitment. The scheduling engine
// only consumes Start and End; the remaining fields exist for display and
// round-tripping with the calendar sync layer.
type ExternalEvent struct {
	ID          string
	Title       string
	Description string

	Start time.Time
	End   time.Time

	IsAllDay bool
	Category string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e *ExternalEvent) Validate() error {
	if !e.Start.Before(e.End) {
		return fmt.Errorf("event start must be before end (%s >= %s)",
			e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
	}
	return nil
}
