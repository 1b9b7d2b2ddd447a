package formatter

import (
	"fmt"
	"strings"

	"blockplan/internal/domain"
)

// FormatProjectList renders a styled project table inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "NAME", "PRIORITY", "ALLOC", "HOURS", "STATUS"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		status := StyleGreen.Render("active")
		if !p.IsActive {
			status = Dim("inactive")
		}
		hours := fmt.Sprintf("%s / %s", Hours(p.HoursUsed), Hours(p.TotalHoursAllocated))

		rows = append(rows, []string{
			Dim(TruncID(p.ID)),
			Bold(p.Name),
			PriorityStyle(p.Priority).Render(string(p.Priority)),
			fmt.Sprintf("%.0f%%", p.AllocationPercentage),
			hours,
			status,
		})
	}

	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatProjectInspect renders a single-project detail card.
func FormatProjectInspect(p *domain.Project) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(p.Name) + "\n")
	if p.Description != "" {
		b.WriteString(Dim(p.Description) + "\n")
	}
	b.WriteString("\n")

	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(label), value))
	}

	field("UUID    ", TruncID(p.ID))
	field("PRIORITY", PriorityStyle(p.Priority).Render(string(p.Priority)))
	field("ALLOC   ", fmt.Sprintf("%.0f%% of work hours", p.AllocationPercentage))
	field("BUDGET  ", fmt.Sprintf("%s used of %s (%s left)",
		Hours(p.HoursUsed), Hours(p.TotalHoursAllocated), Hours(p.HoursRemaining())))
	if p.WeeklyHourCap != nil {
		field("WEEK CAP", Hours(*p.WeeklyHourCap))
	}
	if p.DailyHourCap != nil {
		field("DAY CAP ", Hours(*p.DailyHourCap))
	}
	field("SOURCE  ", p.SourceAdapter)
	if p.IsActive {
		field("STATUS  ", StyleGreen.Render("active"))
	} else {
		field("STATUS  ", Dim("inactive"))
	}

	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}
