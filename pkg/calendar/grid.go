package calendar

import "tableflip.dev/routine/pkg/activity"

// MonthGrid lays out d's month as Monday-first weeks. Cells outside the
// month are zero Dates.
func MonthGrid(d activity.Date) [][7]activity.Date {
	first, last := MonthBounds(d)
	lead := (int(first.Weekday()) + 6) % 7

	var weeks [][7]activity.Date
	var row [7]activity.Date
	col := lead
	for day := first; !day.After(last); day = day.AddDays(1) {
		row[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, row)
			row = [7]activity.Date{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, row)
	}
	return weeks
}

// WeekdayInitials are the Monday-first column headers of MonthGrid.
var WeekdayInitials = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}
