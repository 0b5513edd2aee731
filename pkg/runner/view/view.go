package view

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/app"
	"tableflip.dev/routine/pkg/calendar"
	"tableflip.dev/routine/pkg/printers"
	projection "tableflip.dev/routine/pkg/view"
)

// View prints the day, week or month anchored on On.
type View struct {
	App    *app.Service
	Mode   calendar.Mode
	On     activity.Date
	Today  activity.Date
	ShowID bool
	JSON   bool
	Out    io.Writer
}

// Result is the JSON shape of a view.
type Result struct {
	Heading string `json:"heading"`
	projection.Projection
	Density []int `json:"density,omitempty"`
}

func (v *View) Do(_ context.Context) error {
	if v.App == nil {
		return errors.New("can not view, no routine service")
	}

	p := v.App.Project(v.On, v.Mode)
	heading := app.Heading(v.On, p.Mode)

	if v.JSON {
		r := Result{Heading: heading, Projection: p}
		if p.Mode == calendar.Month {
			r.Density = v.App.MonthDensity(v.On)
		}
		return printers.JSON(v.Out, r)
	}

	pp := printers.NewPretty(v.Out, v.App.Categories)
	pp.ShowID = v.ShowID
	pp.NewLine()

	switch p.Mode {
	case calendar.Week:
		pp.Week(heading, p.Days, v.Today)
	case calendar.Month:
		pp.Month(heading, p.Count, v.App.MonthDensity(v.On), v.On, v.Today)
	default:
		var all []activity.Activity
		if len(p.Days) > 0 {
			all = p.Days[0].Activities
		}
		pp.Day(heading, all)
	}
	return nil
}
