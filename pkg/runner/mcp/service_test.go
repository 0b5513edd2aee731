package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/app"
	"tableflip.dev/routine/pkg/config"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 13, 8, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	core, err := app.New(config.Default(), fixedClock, nil)
	if err != nil {
		t.Fatalf("app.New failed: %v", err)
	}
	svc := NewService(core)
	svc.Now = fixedClock
	return svc
}

func TestServiceListDay(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	day, err := svc.ListDay(ctx, "")
	if err != nil {
		t.Fatalf("ListDay failed: %v", err)
	}
	if day.Date != "2024-03-13" || day.Weekday != "Wednesday" {
		t.Fatalf("unexpected day header %s %s", day.Date, day.Weekday)
	}
	if day.Count != 2 {
		t.Fatalf("expected 2 activities today, got %d", day.Count)
	}
	if day.Activities[0].Title != "Morning Yoga" || day.Activities[0].CategoryLabel != "Health" {
		t.Fatalf("unexpected first activity %+v", day.Activities[0])
	}

	tomorrow, err := svc.ListDay(ctx, "tomorrow")
	if err != nil {
		t.Fatalf("ListDay failed: %v", err)
	}
	if tomorrow.Count != 1 || tomorrow.Activities[0].ID != "3" {
		t.Fatalf("unexpected tomorrow %+v", tomorrow)
	}

	if _, err := svc.ListDay(ctx, "someday"); err == nil {
		t.Fatalf("expected an error for an unparseable date")
	}
}

func TestServiceListWeek(t *testing.T) {
	svc := newTestService(t)

	days, err := svc.ListWeek(context.Background(), "2024-03-17")
	if err != nil {
		t.Fatalf("ListWeek failed: %v", err)
	}
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0].Date != "2024-03-11" || days[6].Date != "2024-03-17" {
		t.Fatalf("expected Monday to Sunday, got %s..%s", days[0].Date, days[6].Date)
	}
}

func TestServiceMonthAndAdvance(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, count, err := svc.MonthCount(ctx, "2024-03-01")
	if err != nil || count != 3 {
		t.Fatalf("expected 3 activities in March, got %d (%v)", count, err)
	}
	_, count, _ = svc.MonthCount(ctx, "2024-04-01")
	if count != 0 {
		t.Fatalf("expected no activities in April, got %d", count)
	}

	next, err := svc.AdvanceAnchor(ctx, "2024-01-31", "month", "next")
	if err != nil {
		t.Fatalf("AdvanceAnchor failed: %v", err)
	}
	if next.String() != "2024-02-29" {
		t.Fatalf("expected month clamp to 2024-02-29, got %s", next)
	}

	if _, err := svc.AdvanceAnchor(ctx, "", "year", "next"); err == nil {
		t.Fatalf("expected an error for an unknown mode")
	}
}

func TestServiceMutations(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	added, err := svc.SubmitActivity(ctx, activity.FormValues{
		Title:      "Read",
		Date:       "2024-03-13",
		Time:       "21:00",
		CategoryID: "personal",
	})
	if err != nil {
		t.Fatalf("SubmitActivity failed: %v", err)
	}
	if added.Notice == nil || added.Notice.Title != "Activity added" {
		t.Fatalf("expected an added notice, got %+v", added.Notice)
	}
	id := added.Activity.ID

	updated, err := svc.UpdateActivity(ctx, id, app.Patch{Time: app.String("22:00")})
	if err != nil {
		t.Fatalf("UpdateActivity failed: %v", err)
	}
	if updated.Activity.Time != "22:00" || updated.Activity.Title != "Read" {
		t.Fatalf("unexpected update %+v", updated.Activity)
	}

	deleted, err := svc.DeleteActivity(ctx, id)
	if err != nil {
		t.Fatalf("DeleteActivity failed: %v", err)
	}
	if deleted.Notice == nil || deleted.Notice.Variant != app.Destructive {
		t.Fatalf("expected a destructive notice, got %+v", deleted.Notice)
	}

	again, err := svc.DeleteActivity(ctx, id)
	if err != nil {
		t.Fatalf("second DeleteActivity failed: %v", err)
	}
	if again.Notice != nil {
		t.Fatalf("expected no notice for an absent id, got %+v", again.Notice)
	}

	if _, err := svc.ActivityByID(ctx, id); !errors.Is(err, ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
}

func TestServiceSubmitInvalid(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SubmitActivity(context.Background(), activity.FormValues{Date: "today", Time: "09:00"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !errors.Is(err, activity.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	for _, want := range []string{"Title is required", "Category is required"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %q", want, err.Error())
		}
	}
	if len(svc.App.All()) != 3 {
		t.Fatalf("store changed on a rejected submit")
	}
}

func TestServiceUpdateErrors(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.UpdateActivity(ctx, "1", app.Patch{}); err == nil {
		t.Fatalf("expected an error for an empty patch")
	}
	if _, err := svc.UpdateActivity(ctx, "missing", app.Patch{Title: app.String("x")}); err == nil {
		t.Fatalf("expected an error for an unknown id")
	}
}

func TestNewServerRegistersTools(t *testing.T) {
	srv := NewServer(newTestService(t), "routine", "test")
	if srv == nil {
		t.Fatalf("expected a server")
	}
}
