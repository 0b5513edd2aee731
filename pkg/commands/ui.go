package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/routine/pkg/app"
	"tableflip.dev/routine/pkg/commands/options"
	teaui "tableflip.dev/routine/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive planner",
		Example: `
routine ui
routine ui --on +1w
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, svc, err := load()
			if err != nil {
				return err
			}
			planner := app.NewPlanner(svc, time.Now)
			anchor, err := on.GetOn(time.Now())
			if err != nil {
				return err
			}
			planner.Select(anchor)
			return teaui.Run(planner)
		},
	}

	options.AddOnArgs(cmd, on)
	topLevel.AddCommand(cmd)
}
