package formatter

import (
	"fmt"
	"strings"
	"time"

	"blockplan/internal/domain"
)

// FormatTaskList renders household tasks as a table.
func FormatTaskList(tasks []*domain.HouseholdTask) string {
	headers := []string{"ID", "NAME", "DURATION", "RECURRENCE", "DAYS", "STATUS"}
	rows := make([][]string, 0, len(tasks))

	for _, t := range tasks {
		status := StyleGreen.Render("active")
		if !t.IsActive {
			status = Dim("inactive")
		}
		rows = append(rows, []string{
			Dim(TruncID(t.ID)),
			Bold(t.Name),
			fmt.Sprintf("%dm", t.EstimatedDurationMinutes),
			string(t.Recurrence),
			weekdayAbbrevs(t.PreferredDays),
			status,
		})
	}

	return RenderBox("Household tasks", RenderTable(headers, rows))
}

// FormatAssignmentList renders assignments as a table ordered as given.
func FormatAssignmentList(assignments []*domain.Assignment) string {
	headers := []string{"ID", "COURSE", "NAME", "DUE", "EST", "STATUS"}
	rows := make([][]string, 0, len(assignments))

	for _, a := range assignments {
		est := Dim("--")
		if a.EstimatedHours != nil {
			est = Hours(*a.EstimatedHours)
		}
		status := StyleYellow.Render("open")
		if a.IsCompleted {
			status = StyleGreen.Render("done")
		}
		rows = append(rows, []string{
			Dim(TruncID(a.ID)),
			a.CourseID,
			Bold(a.Name),
			RelativeDateStyled(a.DueDate),
			est,
			status,
		})
	}

	return RenderBox("Assignments", RenderTable(headers, rows))
}

// FormatEventList renders external events as a table.
func FormatEventList(events []*domain.ExternalEvent) string {
	headers := []string{"ID", "TITLE", "WHEN", "CATEGORY"}
	rows := make([][]string, 0, len(events))

	for _, e := range events {
		when := fmt.Sprintf("%s %s", e.Start.Format("Mon Jan 2"), ClockRange(e.Start, e.End))
		if e.IsAllDay {
			when = e.Start.Format("Mon Jan 2") + " " + Dim("(all day)")
		}
		category := e.Category
		if category == "" {
			category = Dim("--")
		}
		rows = append(rows, []string{
			Dim(TruncID(e.ID)),
			Bold(e.Title),
			when,
			category,
		})
	}

	return RenderBox("Events", RenderTable(headers, rows))
}

// FormatConfig renders the user configuration as a field list.
func FormatConfig(c *domain.UserConfig) string {
	var b strings.Builder

	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(label), value))
	}

	field("WORK HOURS      ", fmt.Sprintf("%02d:00 - %02d:00", c.WorkStartHour, c.WorkEndHour))
	field("MIN BLOCK       ", fmt.Sprintf("%d minutes", c.MinBlockMinutes))
	field("HOUSEHOLD BUFFER", fmt.Sprintf("%d minutes", c.HouseholdBufferMinutes))
	field("HORIZON         ", fmt.Sprintf("%d days", c.ScheduleHorizonDays))
	if c.AutoScheduleEnabled {
		field("AUTO SCHEDULE   ", StyleGreen.Render(fmt.Sprintf("every %d minutes", c.AutoSyncIntervalMins)))
	} else {
		field("AUTO SCHEDULE   ", Dim("off"))
	}
	field("TIMEZONE        ", c.Timezone)

	return RenderBox("Configuration", strings.TrimRight(b.String(), "\n"))
}

func weekdayAbbrevs(days []time.Weekday) string {
	if len(days) == 0 {
		return Dim("any")
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = d.String()[:3]
	}
	return strings.Join(parts, ",")
}
