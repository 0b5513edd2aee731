package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/timeutil"
)

// OnOptions selects the anchor date of a view or a new activity.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-2-28", --on="2/28", --on=tomorrow or --on=+1w.`)
}

// GetOn resolves the flag against now; an empty flag is today.
func (o *OnOptions) GetOn(now time.Time) (activity.Date, error) {
	return timeutil.ResolveDate(o.OnString, activity.DateOf(now))
}
