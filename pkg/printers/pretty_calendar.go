package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/calendar"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints the month heading with its activity count, then a small
// Monday-first calendar where busy days are bold and today is highlighted.
func (pp *PrettyPrint) Month(heading string, count int, density []int, anchor, today activity.Date) {
	pp.TitleWithCount(heading, count)
	pp.NewLine()
	pp.MonthGrid(anchor, density, today)
}

// MonthGrid prints the calendar of anchor's month. density holds the number
// of activities per day, index 0 being the 1st.
func (pp *PrettyPrint) MonthGrid(anchor activity.Date, density []int, today activity.Date) {
	tf := pp.color(color.FgWhite, color.Italic)
	l1 := pp.color(color.Faint, color.FgWhite)
	l2 := pp.color(color.Bold, color.FgHiWhite)
	now := pp.color(color.Bold, color.FgHiCyan, color.Underline)

	m := anchor.Format("January")
	mid := (width - ansi.PrintableRuneWidth(m)) / 2
	_, _ = tf.Fprintf(pp.Out, "%s%s\n", strings.Repeat(" ", mid), m)
	_, _ = tf.Fprintln(pp.Out, strings.Join(calendar.WeekdayInitials[:], " "))

	for _, week := range calendar.MonthGrid(anchor) {
		cells := make([]string, 0, 7)
		for _, d := range week {
			if d.IsZero() {
				cells = append(cells, "  ")
				continue
			}
			printer := l1
			if i := d.Day - 1; i < len(density) && density[i] > 0 {
				printer = l2
			}
			if d == today {
				printer = now
			}
			cells = append(cells, printer.Sprintf("%2d", d.Day))
		}
		_, _ = fmt.Fprintln(pp.Out, strings.TrimRight(strings.Join(cells, " "), " "))
	}
	pp.NewLine()
}
