// Package calendar computes the days a view covers and how the anchor date
// moves between them. Weeks start on Monday.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/routine/pkg/activity"
)

// Mode is the date granularity of a view.
type Mode string

const (
	Day   Mode = "day"
	Week  Mode = "week"
	Month Mode = "month"
)

// Modes lists every Mode in display order.
func Modes() []Mode {
	return []Mode{Day, Week, Month}
}

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Day, Week, Month:
		return m, nil
	case "":
		return Day, nil
	default:
		return "", fmt.Errorf("unknown view mode %q, expected one of day, week, month", s)
	}
}

// Direction moves the anchor backward or forward.
type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prev", "previous", "back", "-":
		return Previous, nil
	case "next", "forward", "+":
		return Next, nil
	default:
		return 0, fmt.Errorf("unknown direction %q, expected previous or next", s)
	}
}

func (d Direction) String() string {
	if d < 0 {
		return "previous"
	}
	return "next"
}

// Selector is the date range a view covers. Days holds the single day of a
// day view or the seven days of a week view; a month view is described by
// First and Last only.
type Selector struct {
	Mode   Mode
	Anchor activity.Date
	Days   []activity.Date
	First  activity.Date
	Last   activity.Date
}

// Select computes the Selector for anchor under mode.
func Select(anchor activity.Date, mode Mode) Selector {
	s := Selector{Mode: mode, Anchor: anchor}
	switch mode {
	case Week:
		days := WeekDays(anchor)
		s.Days = days[:]
		s.First, s.Last = days[0], days[6]
	case Month:
		s.First, s.Last = MonthBounds(anchor)
	default:
		s.Mode = Day
		s.Days = []activity.Date{anchor}
		s.First, s.Last = anchor, anchor
	}
	return s
}

// Contains reports whether d falls within the selected range.
func (s Selector) Contains(d activity.Date) bool {
	return !d.Before(s.First) && !d.After(s.Last)
}

// StartOfWeek is the Monday on or before d.
func StartOfWeek(d activity.Date) activity.Date {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// WeekDays returns Monday through Sunday of the week containing d.
func WeekDays(d activity.Date) [7]activity.Date {
	var days [7]activity.Date
	start := StartOfWeek(d)
	for i := range days {
		days[i] = start.AddDays(i)
	}
	return days
}

// DaysIn is the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthBounds returns the first and last day of d's month.
func MonthBounds(d activity.Date) (activity.Date, activity.Date) {
	first := activity.Date{Year: d.Year, Month: d.Month, Day: 1}
	last := activity.Date{Year: d.Year, Month: d.Month, Day: DaysIn(d.Year, d.Month)}
	return first, last
}

// AddMonths moves d by n calendar months, keeping the day of month when the
// target month has it and clamping to its last day otherwise.
func AddMonths(d activity.Date, n int) activity.Date {
	first := activity.NewDate(d.Year, d.Month+time.Month(n), 1)
	day := d.Day
	if days := DaysIn(first.Year, first.Month); day > days {
		day = days
	}
	return activity.Date{Year: first.Year, Month: first.Month, Day: day}
}

// Advance computes the next anchor: one day, seven days or one clamped
// calendar month in dir.
func Advance(anchor activity.Date, mode Mode, dir Direction) activity.Date {
	step := int(dir)
	if step == 0 {
		return anchor
	}
	if step > 0 {
		step = 1
	} else {
		step = -1
	}
	switch mode {
	case Week:
		return anchor.AddDays(7 * step)
	case Month:
		return AddMonths(anchor, step)
	default:
		return anchor.AddDays(step)
	}
}
