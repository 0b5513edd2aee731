package panel

import (
	"strings"
	"testing"
)

func TestPanel(t *testing.T) {
	m := New()
	if m.View() != "" {
		t.Fatalf("expected an empty panel to render nothing")
	}

	m.SetTitle("Team Meeting")
	m.Add("Time", "10:00")
	m.Add("Category", "Work")
	m.Add("Notes", "")

	out := m.View()
	for _, want := range []string{"Team Meeting", "Time", "10:00", "Category", "Work"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Notes") {
		t.Fatalf("empty field rendered:\n%s", out)
	}

	m.SetTitle("Other")
	if strings.Contains(m.View(), "10:00") {
		t.Fatalf("SetTitle should drop fields")
	}
}
