package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/routine/pkg/app"
	"tableflip.dev/routine/pkg/calendar"
	"tableflip.dev/routine/pkg/printers"
)

// Remove deletes one activity. An unknown id is not an error.
type Remove struct {
	App *app.Service
	ID  string

	JSON bool
	Out  io.Writer
}

// Result is the JSON shape of a delete.
type Result struct {
	ID      string      `json:"id"`
	Deleted bool        `json:"deleted"`
	Notice  *app.Notice `json:"notice,omitempty"`
}

func (n *Remove) Do(_ context.Context) error {
	if n.App == nil {
		return errors.New("can not delete, no routine service")
	}
	notices := &app.Notices{}
	n.App.Notify = notices.Push

	existing, found := n.App.Activity(n.ID)
	n.App.DeleteActivity(n.ID)
	notice, deleted := notices.Last()

	if n.JSON {
		r := Result{ID: n.ID, Deleted: deleted}
		if deleted {
			r.Notice = &notice
		}
		return printers.JSON(n.Out, r)
	}

	pp := printers.NewPretty(n.Out, n.App.Categories)
	if !found || !deleted {
		_, _ = fmt.Fprintf(pp.Out, "No activity %q, nothing deleted.\n", n.ID)
		return nil
	}
	pp.Notice(notice)
	pp.NewLine()
	pp.Day(app.Heading(existing.Date, calendar.Day), n.App.ActivitiesForDate(existing.Date))
	return nil
}
