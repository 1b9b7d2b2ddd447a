package formatter

import (
	"fmt"
	"strings"
	"time"

	"blockplan/internal/domain"
)

// FormatSchedule renders blocks grouped by day, one section per date, in
// chronological order. The caller supplies blocks already sorted by start.
func FormatSchedule(blocks []*domain.TimeBlock) string {
	if len(blocks) == 0 {
		return Dim("No blocks scheduled.")
	}

	var b strings.Builder
	var currentDay time.Time

	totals := make(map[domain.TaskType]time.Duration)

	for _, block := range blocks {
		day := time.Date(block.Start.Year(), block.Start.Month(), block.Start.Day(), 0, 0, 0, 0, block.Start.Location())
		if !day.Equal(currentDay) {
			if !currentDay.IsZero() {
				b.WriteString("\n")
			}
			b.WriteString(StyleHeader.Render(day.Format("Monday, Jan 2")) + "\n")
			currentDay = day
		}

		badge := TaskTypeStyle(block.TaskType).Render(fmt.Sprintf("%-10s", block.TaskType))
		b.WriteString(fmt.Sprintf("  %s  %s %s  %s\n",
			Dim(ClockRange(block.Start, block.End)),
			badge,
			Bold(block.TaskName),
			StatusPill(block.Status)))

		totals[block.TaskType] += block.Duration()
	}

	b.WriteString("\n" + formatTotals(totals))
	return b.String()
}

func formatTotals(totals map[domain.TaskType]time.Duration) string {
	order := []domain.TaskType{
		domain.TaskProject, domain.TaskCourse, domain.TaskAssignment,
		domain.TaskHousehold, domain.TaskPersonal, domain.TaskMeeting,
	}

	var parts []string
	for _, tt := range order {
		if d, ok := totals[tt]; ok {
			parts = append(parts, fmt.Sprintf("%s %s", TaskTypeStyle(tt).Render(string(tt)), Hours(d.Hours())))
		}
	}
	return Dim("Totals: ") + strings.Join(parts, Dim("  |  "))
}
