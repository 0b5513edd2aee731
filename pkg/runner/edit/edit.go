package edit

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/app"
	"tableflip.dev/routine/pkg/calendar"
	"tableflip.dev/routine/pkg/printers"
)

// ErrNothingToEdit is returned for a patch that sets no field.
var ErrNothingToEdit = errors.New("nothing to edit, set at least one of --title, --time, --category, --on or --description")

// Edit applies a partial change to one activity.
type Edit struct {
	App   *app.Service
	ID    string
	Patch app.Patch

	ShowID bool
	JSON   bool
	Out    io.Writer
}

func (n *Edit) Do(_ context.Context) error {
	if n.App == nil {
		return errors.New("can not edit, no routine service")
	}
	if n.Patch.Empty() {
		return ErrNothingToEdit
	}
	notices := &app.Notices{}
	n.App.Notify = notices.Push

	pp := printers.NewPretty(n.Out, n.App.Categories)
	pp.ShowID = n.ShowID

	updated, err := n.App.UpdateActivity(n.ID, n.Patch)
	if err != nil {
		var verr *activity.ValidationError
		if errors.As(err, &verr) && !n.JSON {
			pp.Invalid(verr)
		}
		return err
	}

	if n.JSON {
		return printers.JSON(n.Out, updated)
	}

	if notice, ok := notices.Last(); ok {
		pp.Notice(notice)
	}
	pp.NewLine()
	pp.Details(updated)
	pp.NewLine()
	pp.Day(app.Heading(updated.Date, calendar.Day), n.App.ActivitiesForDate(updated.Date))
	return nil
}
