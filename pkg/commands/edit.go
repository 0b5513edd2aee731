package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/routine/pkg/app"
	"tableflip.dev/routine/pkg/commands/options"
	"tableflip.dev/routine/pkg/runner/edit"
	"tableflip.dev/routine/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	oo := &base.OutputOptions{}
	ao := &options.ActivityOptions{}
	on := &options.OnOptions{}
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "edit id",
		Short: "Change fields of an activity",
		Long: base.Wrap80("Change fields of an activity. Only the flags given are changed; " +
			"the result is validated like a new activity."),
		Example: `
routine edit 2 --title Standup
routine edit 3 --on +1d --time 19:00
routine edit 1 -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one activity id, see `routine day -k`")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, svc, err := load()
			if err != nil {
				return oo.HandleError(err)
			}

			patch := ao.Patch(cmd, on)
			if i.Interactive {
				current, ok := svc.Activity(io.ID)
				if !ok {
					return oo.HandleError(&store.NotFoundError{ID: io.ID})
				}
				values, err := promptForm(cmd, svc).Activity(patch.Merge(current))
				if err != nil {
					return err
				}
				patch = app.PatchFromForm(values)
			}

			e := edit.Edit{
				App:    svc,
				ID:     io.ID,
				Patch:  patch,
				ShowID: io.ShowID,
				JSON:   jsonOutput(cfg, oo),
				Out:    cmd.OutOrStdout(),
			}
			return oo.HandleError(e.Do(context.Background()))
		},
	}

	options.AddTitleArg(cmd, ao)
	options.AddActivityArgs(cmd, ao)
	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	options.InteractiveArgs(cmd, i)
	registerCategoryCompletion(cmd)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
