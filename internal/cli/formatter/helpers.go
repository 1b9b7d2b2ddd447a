package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Dim renders s in the dim style.
func Dim(s string) string { return StyleDim.Render(s) }

// Bold renders s in the bold foreground style.
func Bold(s string) string { return StyleBold.Render(s) }

// TruncID returns the first eight characters of a UUID.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// HumanDate formats a date as "Mon, Jan 2 2006".
func HumanDate(t time.Time) string {
	return t.Format("Mon, Jan 2 2006")
}

// ClockRange formats a block's start and end as "15:04-16:30".
func ClockRange(start, end time.Time) string {
	return start.Format("15:04") + "-" + end.Format("15:04")
}

// Hours formats a float hour count as "2h" or "1.5h".
func Hours(h float64) string {
	if h == math.Trunc(h) {
		return fmt.Sprintf("%.0fh", h)
	}
	return fmt.Sprintf("%.1fh", h)
}

// RelativeDate returns a human-friendly relative date string.
func RelativeDate(t time.Time) string {
	return RelativeDateFrom(t, time.Now())
}

// RelativeDateFrom returns a human-friendly relative date string from a
// reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	diff := t.Sub(now)
	days := int(math.Round(diff.Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days < 0 && days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days < 0 && days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// RelativeDateStyled colors a relative date by urgency: overdue red, within
// three days yellow, otherwise dim.
func RelativeDateStyled(t time.Time) string {
	return RelativeDateStyledFrom(t, time.Now())
}

// RelativeDateStyledFrom is RelativeDateStyled with an explicit reference
// time.
func RelativeDateStyledFrom(t time.Time, now time.Time) string {
	label := RelativeDateFrom(t, now)
	days := int(math.Round(t.Sub(now).Hours() / 24))
	switch {
	case days < 0:
		return StyleRed.Render(label)
	case days <= 3:
		return StyleYellow.Render(label)
	default:
		return StyleDim.Render(label)
	}
}
