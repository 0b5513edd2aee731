// Package minical renders the small sidebar month calendar.
package minical

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/calendar"
)

// Options controls calendar styling.
type Options struct {
	TitleStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	BusyStyle     lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowTitle     bool
}

// Render lays out the month of selected Monday-first. density holds the
// activity count per day of the month, index 0 being the 1st.
func Render(selected activity.Date, density []int, today activity.Date, opts Options) string {
	if selected.IsZero() {
		return ""
	}

	var lines []string
	if opts.ShowTitle {
		lines = append(lines, opts.TitleStyle.Render(selected.Format("January 2006")))
	}
	lines = append(lines, opts.HeaderStyle.Render(strings.Join(calendar.WeekdayInitials[:], " ")))

	for _, week := range calendar.MonthGrid(selected) {
		cells := make([]string, 0, len(week))
		for _, d := range week {
			if d.IsZero() {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(d, density, today, selected, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(d activity.Date, density []int, today, selected activity.Date, opts Options) string {
	text := fmt.Sprintf("%2d", d.Day)

	style := opts.EmptyStyle
	if i := d.Day - 1; i < len(density) && density[i] > 0 {
		style = opts.BusyStyle
	}
	if d == today {
		style = style.Inherit(opts.TodayStyle)
	}
	if d == selected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}
