package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/app"
)

// ActivityOptions carry the fields of an activity given on the command line.
type ActivityOptions struct {
	Title       string
	Time        string
	Category    string
	Description string
}

func AddActivityArgs(cmd *cobra.Command, o *ActivityOptions) {
	cmd.Flags().StringVarP(&o.Time, "time", "t", "",
		`Time of day, example: --time="07:30".`)
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Category id, see `routine categories`.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Optional description.")
}

func AddTitleArg(cmd *cobra.Command, o *ActivityOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "",
		"New title.")
}

// Form builds the values of a new activity; date is the raw --on text.
func (o *ActivityOptions) Form(date string) activity.FormValues {
	return activity.FormValues{
		Title:       o.Title,
		Description: o.Description,
		Date:        date,
		Time:        o.Time,
		CategoryID:  o.Category,
	}
}

// Patch holds only the flags that were set on cmd.
func (o *ActivityOptions) Patch(cmd *cobra.Command, on *OnOptions) app.Patch {
	var p app.Patch
	flags := cmd.Flags()
	if flags.Changed("title") {
		p.Title = app.String(o.Title)
	}
	if flags.Changed("time") {
		p.Time = app.String(o.Time)
	}
	if flags.Changed("category") {
		p.CategoryID = app.String(o.Category)
	}
	if flags.Changed("description") {
		p.Description = app.String(o.Description)
	}
	if flags.Changed("on") && on != nil {
		p.Date = app.String(strings.TrimSpace(on.OnString))
	}
	return p
}
