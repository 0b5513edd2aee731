// Package mcp provides the Model Context Protocol server integration for routine.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/app"
	"tableflip.dev/routine/pkg/calendar"
	"tableflip.dev/routine/pkg/timeutil"
)

// Service adapts the routine core to tool calls: string arguments in,
// transport-friendly DTOs out.
type Service struct {
	App *app.Service
	Now func() time.Time

	// mu serializes mutations so each call sees only its own notices.
	mu sync.Mutex
}

// ErrActivityNotFound is returned when an id is not in the store.
var ErrActivityNotFound = errors.New("activity not found")

var errNoApp = errors.New("routine service is not configured")

// ActivityDTO is a transport-friendly projection of an activity.
type ActivityDTO struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	CategoryID    string `json:"categoryId"`
	CategoryLabel string `json:"categoryLabel"`
	CategoryColor string `json:"categoryColor,omitempty"`
}

// DayDTO is one day with its activities in time order.
type DayDTO struct {
	Date       string        `json:"date"`
	Weekday    string        `json:"weekday"`
	Activities []ActivityDTO `json:"activities"`
	Count      int           `json:"count"`
}

// MutationResult reports a change and the notice a UI would show for it.
type MutationResult struct {
	Activity *ActivityDTO `json:"activity,omitempty"`
	Notice   *app.Notice  `json:"notice,omitempty"`
}

// NewService wraps svc for tool calls.
func NewService(svc *app.Service) *Service {
	return &Service{App: svc, Now: time.Now}
}

func (s *Service) today() activity.Date {
	now := s.Now
	if now == nil {
		now = time.Now
	}
	return activity.DateOf(now())
}

// ResolveDate accepts the same inputs as the CLI's --on flag.
func (s *Service) ResolveDate(input string) (activity.Date, error) {
	return timeutil.ResolveDate(input, s.today())
}

func (s *Service) toDTO(a activity.Activity) ActivityDTO {
	cat := s.App.CategoryFor(a)
	return ActivityDTO{
		ID:            a.ID,
		Title:         a.Title,
		Description:   a.Description,
		Date:          a.Date.String(),
		Time:          a.Time,
		CategoryID:    a.CategoryID,
		CategoryLabel: cat.Label,
		CategoryColor: cat.Color,
	}
}

func (s *Service) day(d activity.Date, all []activity.Activity) DayDTO {
	out := DayDTO{
		Date:       d.String(),
		Weekday:    d.Weekday().String(),
		Activities: make([]ActivityDTO, 0, len(all)),
		Count:      len(all),
	}
	for _, a := range all {
		out.Activities = append(out.Activities, s.toDTO(a))
	}
	return out
}

// ListDay returns the activities of one day.
func (s *Service) ListDay(_ context.Context, date string) (DayDTO, error) {
	if s.App == nil {
		return DayDTO{}, errNoApp
	}
	d, err := s.ResolveDate(date)
	if err != nil {
		return DayDTO{}, err
	}
	return s.day(d, s.App.ActivitiesForDate(d)), nil
}

// ListWeek returns the Monday-first week containing date.
func (s *Service) ListWeek(_ context.Context, date string) ([]DayDTO, error) {
	if s.App == nil {
		return nil, errNoApp
	}
	d, err := s.ResolveDate(date)
	if err != nil {
		return nil, err
	}
	groups := s.App.Week(d)
	out := make([]DayDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, s.day(g.Date, g.Activities))
	}
	return out, nil
}

// MonthCount counts the activities in date's month.
func (s *Service) MonthCount(_ context.Context, date string) (activity.Date, int, error) {
	if s.App == nil {
		return activity.Date{}, 0, errNoApp
	}
	d, err := s.ResolveDate(date)
	if err != nil {
		return activity.Date{}, 0, err
	}
	return d, s.App.MonthCount(d), nil
}

// AdvanceAnchor computes the neighbor anchor without changing anything.
func (s *Service) AdvanceAnchor(_ context.Context, date, mode, direction string) (activity.Date, error) {
	if s.App == nil {
		return activity.Date{}, errNoApp
	}
	d, err := s.ResolveDate(date)
	if err != nil {
		return activity.Date{}, err
	}
	m, err := calendar.ParseMode(mode)
	if err != nil {
		return activity.Date{}, err
	}
	dir, err := calendar.ParseDirection(direction)
	if err != nil {
		return activity.Date{}, err
	}
	return s.App.AdvanceAnchor(d, m, dir), nil
}

// capture runs fn with a notice collector attached to the app.
func (s *Service) capture(fn func()) *app.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	notices := &app.Notices{}
	prev := s.App.Notify
	s.App.Notify = func(n app.Notice) {
		notices.Push(n)
		if prev != nil {
			prev(n)
		}
	}
	defer func() { s.App.Notify = prev }()

	fn()
	if n, ok := notices.Last(); ok {
		return &n
	}
	return nil
}

// SubmitActivity validates and adds an activity.
func (s *Service) SubmitActivity(_ context.Context, values activity.FormValues) (*MutationResult, error) {
	if s.App == nil {
		return nil, errNoApp
	}
	var (
		added activity.Activity
		err   error
	)
	notice := s.capture(func() {
		added, err = s.App.SubmitActivity(values)
	})
	if err != nil {
		return nil, describe(err)
	}
	dto := s.toDTO(added)
	return &MutationResult{Activity: &dto, Notice: notice}, nil
}

// UpdateActivity applies a partial edit.
func (s *Service) UpdateActivity(_ context.Context, id string, patch app.Patch) (*MutationResult, error) {
	if s.App == nil {
		return nil, errNoApp
	}
	if patch.Empty() {
		return nil, errors.New("nothing to update")
	}
	var (
		updated activity.Activity
		err     error
	)
	notice := s.capture(func() {
		updated, err = s.App.UpdateActivity(id, patch)
	})
	if err != nil {
		return nil, describe(err)
	}
	dto := s.toDTO(updated)
	return &MutationResult{Activity: &dto, Notice: notice}, nil
}

// DeleteActivity removes an activity; an unknown id yields no notice.
func (s *Service) DeleteActivity(_ context.Context, id string) (*MutationResult, error) {
	if s.App == nil {
		return nil, errNoApp
	}
	notice := s.capture(func() {
		s.App.DeleteActivity(id)
	})
	return &MutationResult{Notice: notice}, nil
}

// ActivityByID fetches a single activity.
func (s *Service) ActivityByID(_ context.Context, id string) (ActivityDTO, error) {
	if s.App == nil {
		return ActivityDTO{}, errNoApp
	}
	a, ok := s.App.Activity(id)
	if !ok {
		return ActivityDTO{}, fmt.Errorf("%w: %s", ErrActivityNotFound, id)
	}
	return s.toDTO(a), nil
}

// describe flattens validation failures into one readable line.
func describe(err error) error {
	var verr *activity.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	msgs := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return fmt.Errorf("invalid activity (%s): %w", strings.Join(msgs, "; "), err)
}
