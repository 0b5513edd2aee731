package commands

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDayJSON(t *testing.T) {
	out, err := execute(t, "day", "--json")
	if err != nil {
		t.Fatalf("day failed: %v", err)
	}
	for _, want := range []string{`"mode": "day"`, "Morning Yoga", "Team Meeting"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Study Python") {
		t.Fatalf("tomorrow's activity in today's view:\n%s", out)
	}
}

func TestAddRequiresTitle(t *testing.T) {
	if _, err := execute(t, "add", "--time", "07:00"); err == nil {
		t.Fatalf("expected an error without a title")
	}
}

func TestAddJSON(t *testing.T) {
	out, err := execute(t, "add", "Evening", "walk", "-t", "19:30", "-c", "health", "--on", "tomorrow", "--json")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(out, `"title": "Evening walk"`) {
		t.Fatalf("expected the new activity in:\n%s", out)
	}
}

func TestEditNothing(t *testing.T) {
	if _, err := execute(t, "edit", "1"); err == nil {
		t.Fatalf("expected an error for an edit without flags")
	}
}

func TestDeleteUnknown(t *testing.T) {
	out, err := execute(t, "delete", "404")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !strings.Contains(out, "nothing deleted") {
		t.Fatalf("expected a no-op message, got:\n%s", out)
	}
}
