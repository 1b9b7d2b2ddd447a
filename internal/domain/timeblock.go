package domain

import (
	"fmt"
	"time"
)

// TimeBlock is one scheduled unit of the generated plan. The engine creates
// blocks in BlockScheduled status only; later lifecycle transitions
// (confirm, complete, skip, reschedule) belong to the service layer.
type TimeBlock struct {
	ID       string
	TaskType TaskType
	TaskID   string
	TaskName string

	Start time.Time
	End   time.Time

	Status TimeBlockStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the block length.
func (b *TimeBlock) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

func (b *TimeBlock) Validate() error {
	if !b.Start.Before(b.End) {
		return fmt.Errorf("time block start must be before end (%s >= %s)",
			b.Start.Format(time.RFC3339), b.End.Format(time.RFC3339))
	}
	return nil
}
