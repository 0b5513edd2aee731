package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/calendar"
	"tableflip.dev/routine/pkg/commands/options"
	"tableflip.dev/routine/pkg/runner/view"
)

func addViews(topLevel *cobra.Command) {
	addView(topLevel, calendar.Day, "Show the activities of one day.", []string{"today"})
	addView(topLevel, calendar.Week, "Show the seven days, Monday first, around a date.", nil)
	addView(topLevel, calendar.Month, "Count the activities of a month and draw its calendar.", nil)
}

func addView(topLevel *cobra.Command, mode calendar.Mode, short string, aliases []string) {
	oo := &base.OutputOptions{}
	on := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     string(mode),
		Aliases: aliases,
		Short:   short,
		Example: fmt.Sprintf(`
routine %[1]s
routine %[1]s --on tomorrow
routine %[1]s --on=+1w --json
`, mode),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, svc, err := load()
			if err != nil {
				return oo.HandleError(err)
			}
			now := time.Now()
			anchor, err := on.GetOn(now)
			if err != nil {
				return oo.HandleError(err)
			}
			v := view.View{
				App:    svc,
				Mode:   mode,
				On:     anchor,
				Today:  activity.DateOf(now),
				ShowID: io.ShowID,
				JSON:   jsonOutput(cfg, oo),
				Out:    cmd.OutOrStdout(),
			}
			return oo.HandleError(v.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
