package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/calendar"
	"tableflip.dev/routine/pkg/category"
	"tableflip.dev/routine/pkg/store"
	"tableflip.dev/routine/pkg/view"
)

// Service is the boundary between the routine core and whatever presents
// it. It wraps the store, the category registry and the form rules so the
// CLI, the terminal UI and the MCP session share one behavior.
type Service struct {
	Store      store.Store
	Categories *category.Registry
	Validator  activity.Validator

	// NewID generates activity ids; defaults to random UUIDs.
	NewID func() string
	// Notify receives confirmations meant for transient display.
	Notify func(Notice)
	Log    log.FieldLogger
}

var errNoStore = errors.New("app: no store configured")

func (s *Service) logger() log.FieldLogger {
	if s.Log == nil {
		discard := log.New()
		discard.SetOutput(io.Discard)
		s.Log = discard
	}
	return s.Log
}

func (s *Service) notify(n Notice) {
	if s.Notify != nil {
		s.Notify(n)
	}
}

func (s *Service) snapshot() []activity.Activity {
	if s.Store == nil {
		return nil
	}
	return s.Store.All()
}

// All returns every activity in insertion order.
func (s *Service) All() []activity.Activity {
	return s.snapshot()
}

// Activity finds one activity by id.
func (s *Service) Activity(id string) (activity.Activity, bool) {
	if s.Store == nil {
		return activity.Activity{}, false
	}
	return s.Store.Get(id)
}

// ActivitiesForDate lists the activities on d, ordered by time.
func (s *Service) ActivitiesForDate(d activity.Date) []activity.Activity {
	return view.ForDate(s.snapshot(), d)
}

// WeekDays returns the Monday-first week containing anchor.
func (s *Service) WeekDays(anchor activity.Date) [7]activity.Date {
	return calendar.WeekDays(anchor)
}

// Week groups the activities of anchor's week by day.
func (s *Service) Week(anchor activity.Date) []view.DayGroup {
	return view.ForWeek(s.snapshot(), anchor)
}

// MonthCount is the number of activities in anchor's month.
func (s *Service) MonthCount(anchor activity.Date) int {
	return view.MonthCount(s.snapshot(), anchor)
}

// MonthDensity counts activities per day of anchor's month.
func (s *Service) MonthDensity(anchor activity.Date) []int {
	return view.MonthDensity(s.snapshot(), anchor)
}

// Project renders the view for anchor under mode.
func (s *Service) Project(anchor activity.Date, mode calendar.Mode) view.Projection {
	return view.Project(s.snapshot(), calendar.Select(anchor, mode))
}

// AdvanceAnchor computes the next anchor; it changes nothing.
func (s *Service) AdvanceAnchor(anchor activity.Date, mode calendar.Mode, dir calendar.Direction) activity.Date {
	return calendar.Advance(anchor, mode, dir)
}

// LookupCategory finds a category; absence is a normal outcome.
func (s *Service) LookupCategory(id string) (category.Category, bool) {
	return s.Categories.Lookup(id)
}

// CategoryFor is the category to display for a, Unknown when unregistered.
func (s *Service) CategoryFor(a activity.Activity) category.Category {
	return s.Categories.Display(a.CategoryID)
}

// ListCategories returns the registry in order.
func (s *Service) ListCategories() []category.Category {
	return s.Categories.All()
}

// SubmitActivity validates values and adds the resulting activity. A
// validation failure leaves the store untouched.
func (s *Service) SubmitActivity(values activity.FormValues) (activity.Activity, error) {
	if s.Store == nil {
		return activity.Activity{}, errNoStore
	}
	f, err := s.Validator.Validate(values)
	if err != nil {
		s.logger().WithField("op", "submit").WithError(err).Info("activity rejected")
		return activity.Activity{}, err
	}

	newID := s.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	a := activity.New(newID(), f)
	if err := s.Store.Add(a); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			s.logger().WithField("activity_id", a.ID).Error("id generator produced a duplicate id")
		}
		return activity.Activity{}, fmt.Errorf("app: add activity: %w", err)
	}

	s.logger().WithFields(log.Fields{"op": "submit", "activity_id": a.ID}).Debug("activity added")
	s.notify(Notice{
		Title:       "Activity added",
		Description: fmt.Sprintf("%s has been added to your routine.", a.Title),
		Variant:     Default,
	})
	return a, nil
}

// DeleteActivity removes id. Deleting an id that is already gone is a
// silent no-op.
func (s *Service) DeleteActivity(id string) {
	if s.Store == nil {
		return
	}
	if !s.Store.Remove(id) {
		s.logger().WithFields(log.Fields{"op": "delete", "activity_id": id}).Debug("activity already gone")
		return
	}
	s.logger().WithFields(log.Fields{"op": "delete", "activity_id": id}).Debug("activity deleted")
	s.notify(Notice{
		Title:       "Activity deleted",
		Description: "The activity has been removed from your routine.",
		Variant:     Destructive,
	})
}

// UpdateActivity applies patch over the current values of id, validates
// the merged form and replaces the activity's fields. It fails with
// store.ErrNotFound for an unknown id and activity.ErrValidation when the
// merged form is invalid.
func (s *Service) UpdateActivity(id string, patch Patch) (activity.Activity, error) {
	if s.Store == nil {
		return activity.Activity{}, errNoStore
	}
	current, ok := s.Store.Get(id)
	if !ok {
		err := &store.NotFoundError{ID: id}
		s.logger().WithFields(log.Fields{"op": "update", "activity_id": id}).Info("activity not found")
		return activity.Activity{}, err
	}

	f, err := s.Validator.Validate(patch.Merge(current))
	if err != nil {
		s.logger().WithFields(log.Fields{"op": "update", "activity_id": id}).WithError(err).Info("activity rejected")
		return activity.Activity{}, err
	}
	// The raw date of an untouched field round-trips through the form, so
	// keep the stored value rather than re-resolving it.
	if patch.Date == nil {
		f.Date = current.Date
	}

	updated, err := s.Store.Update(id, f)
	if err != nil {
		return activity.Activity{}, fmt.Errorf("app: update activity: %w", err)
	}
	s.logger().WithFields(log.Fields{"op": "update", "activity_id": id}).Debug("activity updated")
	s.notify(Notice{
		Title:       "Activity updated",
		Description: fmt.Sprintf("%s has been updated.", updated.Title),
		Variant:     Default,
	})
	return updated, nil
}
