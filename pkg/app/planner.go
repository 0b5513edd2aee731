package app

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/calendar"
	"tableflip.dev/routine/pkg/view"
)

const (
	layoutDayHeading   = "Monday, January 2, 2006"
	layoutWeekStart    = "Jan 2"
	layoutWeekEnd      = "Jan 2, 2006"
	layoutMonthHeading = "January 2006"
)

// Planner is one session's position in the calendar: the anchor date and
// the current view mode. It never mutates the store by itself.
type Planner struct {
	svc *Service
	now func() time.Time

	Anchor activity.Date
	Mode   calendar.Mode
}

// NewPlanner starts a day view on today.
func NewPlanner(svc *Service, now func() time.Time) *Planner {
	if now == nil {
		now = time.Now
	}
	return &Planner{
		svc:    svc,
		now:    now,
		Anchor: activity.DateOf(now()),
		Mode:   calendar.Day,
	}
}

func (p *Planner) Service() *Service {
	return p.svc
}

// Today is the current day according to the planner's clock.
func (p *Planner) Today() activity.Date {
	return activity.DateOf(p.now())
}

// Navigate moves the anchor one step of the current mode.
func (p *Planner) Navigate(dir calendar.Direction) activity.Date {
	p.Anchor = p.svc.AdvanceAnchor(p.Anchor, p.Mode, dir)
	return p.Anchor
}

func (p *Planner) SetMode(m calendar.Mode) {
	p.Mode = m
}

// Select jumps to d, as picking a day on the sidebar calendar does.
func (p *Planner) Select(d activity.Date) {
	if !d.IsZero() {
		p.Anchor = d
	}
}

// GoToday resets the anchor to today.
func (p *Planner) GoToday() {
	p.Anchor = p.Today()
}

func (p *Planner) Selector() calendar.Selector {
	return calendar.Select(p.Anchor, p.Mode)
}

// Projection is the current view's content.
func (p *Planner) Projection() view.Projection {
	return p.svc.Project(p.Anchor, p.Mode)
}

// Heading is the title shown above the current view.
func (p *Planner) Heading() string {
	return Heading(p.Anchor, p.Mode)
}

// Submit adds an activity, defaulting an empty date to the anchor.
func (p *Planner) Submit(values activity.FormValues) (activity.Activity, error) {
	if strings.TrimSpace(values.Date) == "" {
		values.Date = p.Anchor.String()
	}
	return p.svc.SubmitActivity(values)
}

// Heading renders the title of a view anchored on d.
func Heading(d activity.Date, mode calendar.Mode) string {
	switch mode {
	case calendar.Week:
		days := calendar.WeekDays(d)
		return fmt.Sprintf("Week of %s - %s", days[0].Format(layoutWeekStart), days[6].Format(layoutWeekEnd))
	case calendar.Month:
		return d.Format(layoutMonthHeading)
	default:
		return d.Format(layoutDayHeading)
	}
}
