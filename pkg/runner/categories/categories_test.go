package categories

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/routine/pkg/app"
	"tableflip.dev/routine/pkg/config"
)

func TestCategories(t *testing.T) {
	svc, err := app.New(config.Default(), nil, nil)
	if err != nil {
		t.Fatalf("app.New failed: %v", err)
	}

	var out bytes.Buffer
	k := Categories{App: svc, Out: &out}
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	for _, want := range []string{"Work", "Personal", "Health", "Study", "Social"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in:\n%s", want, out.String())
		}
	}

	out.Reset()
	k.JSON = true
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if !strings.Contains(out.String(), `"id": "work"`) {
		t.Fatalf("expected JSON categories, got:\n%s", out.String())
	}
}
