package activity

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestDateOfStripsTime(t *testing.T) {
	loc := time.FixedZone("test", -5*3600)
	late := time.Date(2024, time.March, 10, 23, 30, 0, 0, loc)
	if got, want := DateOf(late), NewDate(2024, time.March, 10); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNewDateNormalizes(t *testing.T) {
	if got, want := NewDate(2023, time.February, 29), NewDate(2023, time.March, 1); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAddDaysAcrossYear(t *testing.T) {
	got := NewDate(2024, time.December, 30).AddDays(3)
	if want := NewDate(2025, time.January, 2); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	a := Activity{ID: "1", Title: "Yoga", Date: NewDate(2024, time.January, 5), Time: "07:00", CategoryID: "health"}
	b, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `"date":"2024-01-05"`; !strings.Contains(string(b), want) {
		t.Fatalf("expected %s in %s", want, b)
	}
	var back Activity
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != a {
		t.Fatalf("expected %+v, got %+v", a, back)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("tomorrow-ish"); err == nil {
		t.Fatalf("expected error")
	}
}
