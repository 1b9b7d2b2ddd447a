package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"blockplan/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PriorityStyle returns the style for a priority level.
func PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityUrgent:
		return StyleRed
	case domain.PriorityHigh:
		return StyleYellow
	case domain.PriorityMedium:
		return StyleBlue
	case domain.PriorityLow:
		return StyleDim
	default:
		return StyleDim
	}
}

// TaskTypeStyle returns the style used for a block's task type badge.
func TaskTypeStyle(tt domain.TaskType) lipgloss.Style {
	switch tt {
	case domain.TaskProject:
		return StyleBlue
	case domain.TaskAssignment, domain.TaskCourse:
		return StylePurple
	case domain.TaskHousehold:
		return StyleGreen
	case domain.TaskMeeting:
		return StyleYellow
	default:
		return StyleFg
	}
}

// StatusPill returns a colored status label for a time block.
func StatusPill(status domain.TimeBlockStatus) string {
	switch status {
	case domain.BlockConfirmed:
		return StyleGreen.Render("confirmed")
	case domain.BlockCompleted:
		return StyleAqua.Render("completed")
	case domain.BlockSkipped:
		return StyleDim.Render("skipped")
	case domain.BlockRescheduled:
		return StyleYellow.Render("rescheduled")
	default:
		return StyleBlue.Render("scheduled")
	}
}
