package teaui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/app"
	"tableflip.dev/routine/pkg/calendar"
	"tableflip.dev/routine/pkg/config"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 13, 8, 0, 0, 0, time.UTC)
}

var today = activity.NewDate(2024, time.March, 13)

func newTestModel(t *testing.T) Model {
	t.Helper()
	svc, err := app.New(config.Default(), fixedClock, nil)
	if err != nil {
		t.Fatalf("app.New failed: %v", err)
	}
	m := New(app.NewPlanner(svc, fixedClock))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func TestNavigateDays(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "l")
	if got := m.planner.Anchor; got != today.AddDays(1) {
		t.Fatalf("expected anchor %s, got %s", today.AddDays(1), got)
	}
	m = press(t, m, "left", "left")
	if got := m.planner.Anchor; got != today.AddDays(-1) {
		t.Fatalf("expected anchor %s, got %s", today.AddDays(-1), got)
	}
	m = press(t, m, "t")
	if got := m.planner.Anchor; got != today {
		t.Fatalf("expected today, got %s", got)
	}
}

func TestModeSwitching(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "w")
	if m.planner.Mode != calendar.Week {
		t.Fatalf("expected week mode, got %s", m.planner.Mode)
	}
	m = press(t, m, "right")
	if got := m.planner.Anchor; got != today.AddDays(7) {
		t.Fatalf("expected a week later, got %s", got)
	}

	m = press(t, m, "m", "l")
	if m.planner.Mode != calendar.Month {
		t.Fatalf("expected month mode, got %s", m.planner.Mode)
	}
	if got := m.planner.Anchor; got != activity.NewDate(2024, time.April, 20) {
		t.Fatalf("expected 2024-04-20, got %s", got)
	}
	if rows := m.visible(); len(rows) != 0 {
		t.Fatalf("expected no rows in month view, got %d", len(rows))
	}

	m = press(t, m, "d")
	if m.planner.Mode != calendar.Day {
		t.Fatalf("expected day mode, got %s", m.planner.Mode)
	}
}

func TestSelectionMoves(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "j")
	if a, ok := m.current(); !ok || a.Title != "Team Meeting" {
		t.Fatalf("expected Team Meeting selected, got %+v", a)
	}
	m = press(t, m, "j", "j")
	if m.selected != 1 {
		t.Fatalf("expected selection to stop at the last row, got %d", m.selected)
	}
	m = press(t, m, "k", "k")
	if m.selected != 0 {
		t.Fatalf("expected selection to stop at the first row, got %d", m.selected)
	}

	m = press(t, m, "w", "j", "j")
	if a, ok := m.current(); !ok || a.Title != "Study Python" {
		t.Fatalf("expected week rows to span days, got %+v", a)
	}
}

func TestAddActivity(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "a")
	if m.form == nil {
		t.Fatalf("expected the form to open")
	}
	if got := m.form.values().Date; got != today.String() {
		t.Fatalf("expected date prefilled with the anchor, got %q", got)
	}

	m = typeText(t, m, "Gym")
	m = press(t, m, "tab", "tab")
	m = typeText(t, m, "06:30")
	m = press(t, m, "tab")
	m = typeText(t, m, "health")
	m = press(t, m, "enter")

	if m.form != nil {
		t.Fatalf("expected the form to close, errors: %v", m.form.errs)
	}
	rows := m.visible()
	if len(rows) != 3 || rows[0].Title != "Gym" {
		t.Fatalf("expected Gym first of 3 rows, got %+v", rows)
	}
	if got := m.footer.Status(); got != "Activity added: Gym has been added to your routine." {
		t.Fatalf("unexpected status %q", got)
	}
}

func TestAddInvalidKeepsForm(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "a", "enter")
	if m.form == nil {
		t.Fatalf("expected the form to stay open")
	}
	for _, field := range []string{activity.FieldTitle, activity.FieldTime, activity.FieldCategoryID} {
		if _, ok := m.form.errs[field]; !ok {
			t.Fatalf("expected an error on %s, got %v", field, m.form.errs)
		}
	}
	if m.form.focus != 0 {
		t.Fatalf("expected focus on the first failing field, got %d", m.form.focus)
	}
	if n := len(m.planner.Service().All()); n != 3 {
		t.Fatalf("expected store unchanged, got %d activities", n)
	}

	m = press(t, m, "esc")
	if m.form != nil {
		t.Fatalf("expected esc to close the form")
	}
}

func TestEditActivity(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "j", "e")
	if m.form == nil || m.form.editing != "2" {
		t.Fatalf("expected editing form for id 2")
	}
	if got := m.form.values().Title; got != "Team Meeting" {
		t.Fatalf("expected form prefilled, got %q", got)
	}

	m.form.inputs[0].SetValue("Standup")
	m = press(t, m, "enter")
	if m.form != nil {
		t.Fatalf("expected the form to close, errors: %v", m.form.errs)
	}
	a, _ := m.planner.Service().Activity("2")
	if a.Title != "Standup" || a.Time != "10:00" || a.CategoryID != "work" {
		t.Fatalf("unexpected edit result %+v", a)
	}
}

func TestDeleteActivity(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "j", "x")
	if n := len(m.visible()); n != 1 {
		t.Fatalf("expected one row left, got %d", n)
	}
	if m.selected != 0 {
		t.Fatalf("expected selection clamped, got %d", m.selected)
	}
	if got := m.footer.Status(); got != "Activity deleted: The activity has been removed from your routine." {
		t.Fatalf("unexpected status %q", got)
	}

	m = press(t, m, "l", "l", "x")
	if got := m.footer.Status(); got != "Nothing selected to delete" {
		t.Fatalf("expected nothing to delete on an empty day, got %q", got)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if !next.(Model).quitting {
		t.Fatalf("expected quitting state")
	}

	m = press(t, m, "a", "q")
	if m.quitting || m.form == nil {
		t.Fatalf("expected q to be typed into the form, not quit")
	}
	if got := m.form.values().Title; got != "q" {
		t.Fatalf("expected q in the title field, got %q", got)
	}
}
