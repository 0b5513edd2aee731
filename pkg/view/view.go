// Package view projects a store snapshot onto the days a calendar view
// covers.
package view

import (
	"sort"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/calendar"
)

// DayGroup is one day of a view with its activities in display order.
type DayGroup struct {
	Date       activity.Date       `json:"date"`
	Activities []activity.Activity `json:"activities"`
}

// Projection is what a view renders. Days is empty for month views, which
// only surface Count.
type Projection struct {
	Mode  calendar.Mode `json:"mode"`
	First activity.Date `json:"first"`
	Last  activity.Date `json:"last"`
	Days  []DayGroup    `json:"days,omitempty"`
	Count int           `json:"count"`
}

// SortByTime orders activities by time of day. HH:MM is fixed width, so
// string order is clock order; equal times keep their incoming order.
func SortByTime(all []activity.Activity) {
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Time < all[j].Time
	})
}

// ForDate returns the activities on day d, sorted by time.
func ForDate(all []activity.Activity, d activity.Date) []activity.Activity {
	out := make([]activity.Activity, 0)
	for _, a := range all {
		if a.Date == d {
			out = append(out, a)
		}
	}
	SortByTime(out)
	return out
}

// ForDays groups activities under each of days, in the order given.
func ForDays(all []activity.Activity, days []activity.Date) []DayGroup {
	groups := make([]DayGroup, 0, len(days))
	for _, d := range days {
		groups = append(groups, DayGroup{Date: d, Activities: ForDate(all, d)})
	}
	return groups
}

// ForWeek groups activities under the seven days of d's week.
func ForWeek(all []activity.Activity, d activity.Date) []DayGroup {
	days := calendar.WeekDays(d)
	return ForDays(all, days[:])
}

// MonthCount is the number of activities dated within d's month.
func MonthCount(all []activity.Activity, d activity.Date) int {
	n := 0
	for _, a := range all {
		if a.Date.SameMonth(d) {
			n++
		}
	}
	return n
}

// MonthDensity counts activities per day of d's month; index 0 is the 1st.
func MonthDensity(all []activity.Activity, d activity.Date) []int {
	counts := make([]int, calendar.DaysIn(d.Year, d.Month))
	for _, a := range all {
		if a.Date.SameMonth(d) {
			counts[a.Date.Day-1]++
		}
	}
	return counts
}

// Project applies sel to all.
func Project(all []activity.Activity, sel calendar.Selector) Projection {
	p := Projection{Mode: sel.Mode, First: sel.First, Last: sel.Last}
	switch sel.Mode {
	case calendar.Month:
		p.Count = MonthCount(all, sel.Anchor)
	default:
		p.Days = ForDays(all, sel.Days)
		for _, g := range p.Days {
			p.Count += len(g.Activities)
		}
	}
	return p
}
