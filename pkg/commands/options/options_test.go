package options

import (
	"testing"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/routine/pkg/activity"
)

func TestPatchOnlyChangedFlags(t *testing.T) {
	ao := &ActivityOptions{}
	on := &OnOptions{}
	cmd := &cobra.Command{Use: "edit"}
	AddActivityArgs(cmd, ao)
	AddTitleArg(cmd, ao)
	AddOnArgs(cmd, on)

	if err := cmd.ParseFlags([]string{"--title", "Standup", "--on", "tomorrow"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	p := ao.Patch(cmd, on)
	if p.Title == nil || *p.Title != "Standup" {
		t.Fatalf("expected title in patch, got %+v", p.Title)
	}
	if p.Date == nil || *p.Date != "tomorrow" {
		t.Fatalf("expected date in patch, got %+v", p.Date)
	}
	if p.Time != nil || p.CategoryID != nil || p.Description != nil {
		t.Fatalf("unset flags leaked into the patch: %+v", p)
	}
}

func TestPatchClearsDescription(t *testing.T) {
	ao := &ActivityOptions{}
	cmd := &cobra.Command{Use: "edit"}
	AddActivityArgs(cmd, ao)

	if err := cmd.ParseFlags([]string{"--description="}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	p := ao.Patch(cmd, nil)
	if p.Description == nil || *p.Description != "" {
		t.Fatalf("expected an explicit empty description, got %+v", p.Description)
	}
}

func TestGetOn(t *testing.T) {
	now := time.Date(2024, time.March, 13, 22, 0, 0, 0, time.UTC)

	o := &OnOptions{}
	if got, err := o.GetOn(now); err != nil || got != activity.NewDate(2024, time.March, 13) {
		t.Fatalf("expected today, got %s (%v)", got, err)
	}
	o.OnString = "+1w"
	if got, err := o.GetOn(now); err != nil || got != activity.NewDate(2024, time.March, 20) {
		t.Fatalf("expected a week later, got %s (%v)", got, err)
	}
	o.OnString = "not a date"
	if _, err := o.GetOn(now); err == nil {
		t.Fatalf("expected an error")
	}
}
