package teaui

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/runner/tea/internal/minical"
)

func TestViewDay(t *testing.T) {
	m := newTestModel(t)
	out := m.View()

	for _, want := range []string{
		"Wednesday, March 13, 2024",
		"2 activities",
		"Morning Yoga",
		"Team Meeting",
		"March 2024",
		"Mo Tu We Th Fr Sa Su",
		"Categories",
		"Health",
		"Social",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Study Python") {
		t.Fatalf("tomorrow's activity shown in day view:\n%s", out)
	}
}

func TestViewWeekAndMonth(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "w")
	out := m.View()
	for _, want := range []string{"Week of Mar 11 - Mar 17, 2024", "3 activities", "Study Python", "Monday, Mar 11"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in week view:\n%s", want, out)
		}
	}

	m = press(t, m, "m")
	out = m.View()
	if !strings.Contains(out, "3 activities") {
		t.Fatalf("expected month count in view:\n%s", out)
	}
	if strings.Contains(out, "Morning Yoga") {
		t.Fatalf("month view should only show a count:\n%s", out)
	}
}

func TestViewEmptyDay(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "l", "l")
	if out := m.View(); !strings.Contains(out, "No activities scheduled") {
		t.Fatalf("expected empty message:\n%s", out)
	}
}

func TestViewForm(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "a", "enter")
	out := m.View()
	for _, want := range []string{"New activity", "Title is required", "Time is required", "esc cancel"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in form view:\n%s", want, out)
		}
	}
}

func TestMinicalLayout(t *testing.T) {
	out := minical.Render(activity.NewDate(2024, time.March, 13), nil, activity.Date{}, minical.Options{})
	lines := strings.Split(out, "\n")
	if lines[0] != "Mo Tu We Th Fr Sa Su" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	// March 1, 2024 is a Friday.
	if !strings.HasSuffix(lines[1], " 1  2  3") || !strings.HasPrefix(lines[1], "            ") {
		t.Fatalf("unexpected first week %q", lines[1])
	}
	if lines[len(lines)-1] != "25 26 27 28 29 30 31" {
		t.Fatalf("unexpected last week %q", lines[len(lines)-1])
	}
}

func TestViewSelectedDetails(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "j")
	out := m.View()
	for _, want := range []string{"Wed Mar 13, 2024", "Category", "Work", "ID"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in details:\n%s", want, out)
		}
	}
}
