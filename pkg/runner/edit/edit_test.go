package edit

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/routine/pkg/app"
	"tableflip.dev/routine/pkg/config"
	"tableflip.dev/routine/pkg/store"
)

func newApp(t *testing.T) *app.Service {
	t.Helper()
	clock := func() time.Time { return time.Date(2024, time.March, 13, 8, 0, 0, 0, time.UTC) }
	svc, err := app.New(config.Default(), clock, nil)
	if err != nil {
		t.Fatalf("app.New failed: %v", err)
	}
	return svc
}

func TestEdit(t *testing.T) {
	var out bytes.Buffer
	svc := newApp(t)
	e := Edit{App: svc, ID: "3", Patch: app.Patch{Title: app.String("Study Go")}, Out: &out}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if !strings.Contains(out.String(), "Activity updated: Study Go has been updated.") {
		t.Fatalf("expected notice, got:\n%s", out.String())
	}
	if a, _ := svc.Activity("3"); a.Title != "Study Go" || a.Time != "18:00" {
		t.Fatalf("unexpected activity %+v", a)
	}
}

func TestEditErrors(t *testing.T) {
	svc := newApp(t)

	e := Edit{App: svc, ID: "3", Out: &bytes.Buffer{}}
	if err := e.Do(context.Background()); !errors.Is(err, ErrNothingToEdit) {
		t.Fatalf("expected ErrNothingToEdit, got %v", err)
	}

	e = Edit{App: svc, ID: "404", Patch: app.Patch{Title: app.String("x")}, Out: &bytes.Buffer{}}
	if err := e.Do(context.Background()); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
