package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/app"
	"tableflip.dev/routine/pkg/calendar"
	"tableflip.dev/routine/pkg/printers"
)

// Add submits a new activity and prints the day it landed on.
type Add struct {
	Planner *app.Planner
	Values  activity.FormValues

	ShowID bool
	JSON   bool
	Out    io.Writer
}

func (n *Add) Do(_ context.Context) error {
	if n.Planner == nil || n.Planner.Service() == nil {
		return errors.New("can not add, no routine service")
	}
	svc := n.Planner.Service()
	notices := &app.Notices{}
	svc.Notify = notices.Push

	pp := printers.NewPretty(n.Out, svc.Categories)
	pp.ShowID = n.ShowID

	added, err := n.Planner.Submit(n.Values)
	if err != nil {
		var verr *activity.ValidationError
		if errors.As(err, &verr) && !n.JSON {
			pp.Invalid(verr)
		}
		return err
	}

	if n.JSON {
		return printers.JSON(n.Out, added)
	}

	if notice, ok := notices.Last(); ok {
		pp.Notice(notice)
	}
	pp.NewLine()
	pp.Day(app.Heading(added.Date, calendar.Day), svc.ActivitiesForDate(added.Date))
	return nil
}
