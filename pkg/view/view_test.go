package view

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/calendar"
	"tableflip.dev/routine/pkg/store"
)

var today = activity.NewDate(2024, time.January, 31)

func act(id string, d activity.Date, clock string) activity.Activity {
	return activity.Activity{ID: id, Title: "t" + id, Date: d, Time: clock, CategoryID: "work"}
}

func TestForDateSeed(t *testing.T) {
	all := store.Seed(today)

	got := ForDate(all, today)
	require.Len(t, got, 2)
	assert.Equal(t, "Morning Yoga", got[0].Title)
	assert.Equal(t, "Team Meeting", got[1].Title)
}

func TestForDateMembership(t *testing.T) {
	all := []activity.Activity{
		act("a", today, "09:00"),
		act("b", today.AddDays(1), "09:00"),
		act("c", today.AddDays(-30), "09:00"),
	}
	for _, a := range all {
		assert.Contains(t, ForDate(all, a.Date), a)
		for _, other := range []activity.Date{a.Date.AddDays(1), a.Date.AddDays(-1)} {
			assert.NotContains(t, ForDate(all, other), a)
		}
	}
}

func TestForDateSortsByTimeStable(t *testing.T) {
	all := []activity.Activity{
		act("late", today, "18:00"),
		act("first-seven", today, "07:00"),
		act("noon", today, "12:00"),
		act("second-seven", today, "07:00"),
	}

	got := ForDate(all, today)
	assert.Equal(t, []string{"first-seven", "second-seven", "noon", "late"}, ids(got))
	assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Time < got[j].Time }))
}

func TestForDateDoesNotReorderInput(t *testing.T) {
	all := []activity.Activity{act("b", today, "10:00"), act("a", today, "07:00")}
	_ = ForDate(all, today)
	assert.Equal(t, []string{"b", "a"}, ids(all))
}

func TestForWeek(t *testing.T) {
	monday := activity.NewDate(2024, time.January, 29)
	all := []activity.Activity{
		act("sun", monday.AddDays(6), "08:00"),
		act("mon-late", monday, "20:00"),
		act("mon-early", monday, "06:00"),
		act("next-week", monday.AddDays(7), "06:00"),
	}

	groups := ForWeek(all, today)
	require.Len(t, groups, 7)
	for i, g := range groups {
		assert.Equal(t, monday.AddDays(i), g.Date)
	}
	assert.Equal(t, []string{"mon-early", "mon-late"}, ids(groups[0].Activities))
	assert.Equal(t, []string{"sun"}, ids(groups[6].Activities))
	assert.Empty(t, groups[3].Activities)
}

func TestMonthCount(t *testing.T) {
	all := []activity.Activity{
		act("a", activity.NewDate(2024, time.January, 1), "07:00"),
		act("b", activity.NewDate(2024, time.January, 31), "07:00"),
		act("c", activity.NewDate(2024, time.February, 1), "07:00"),
		act("d", activity.NewDate(2023, time.January, 15), "07:00"),
	}
	assert.Equal(t, 2, MonthCount(all, today))
	assert.Equal(t, 1, MonthCount(all, activity.NewDate(2024, time.February, 10)))
}

func TestMonthDensity(t *testing.T) {
	all := store.Seed(today)
	counts := MonthDensity(all, today)
	require.Len(t, counts, 31)
	assert.Equal(t, 2, counts[30])
	assert.Equal(t, 0, counts[0])
}

func TestProject(t *testing.T) {
	all := store.Seed(today)

	day := Project(all, calendar.Select(today, calendar.Day))
	assert.Equal(t, calendar.Day, day.Mode)
	require.Len(t, day.Days, 1)
	assert.Equal(t, 2, day.Count)

	week := Project(all, calendar.Select(today, calendar.Week))
	require.Len(t, week.Days, 7)
	assert.Equal(t, 3, week.Count)

	month := Project(all, calendar.Select(today, calendar.Month))
	assert.Empty(t, month.Days)
	assert.Equal(t, 2, month.Count, "the tomorrow seed falls in February")
}

func ids(all []activity.Activity) []string {
	out := make([]string, 0, len(all))
	for _, a := range all {
		out = append(out, a.ID)
	}
	return out
}
