package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/app"
	"tableflip.dev/routine/pkg/commands/options"
	"tableflip.dev/routine/pkg/runner/add"
	"tableflip.dev/routine/pkg/snake"
	"tableflip.dev/routine/pkg/timeutil"
)

func addAdd(topLevel *cobra.Command) {
	oo := &base.OutputOptions{}
	ao := &options.ActivityOptions{}
	on := &options.OnOptions{}
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add an activity to the routine",
		Example: `
routine add Morning run --time 06:30 --category health
routine add Standup -t 09:15 -c work --on tomorrow
routine add -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 && !i.Interactive {
				return errors.New("requires a title")
			}
			ao.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, svc, err := load()
			if err != nil {
				return oo.HandleError(err)
			}
			planner := app.NewPlanner(svc, time.Now)

			values := ao.Form(strings.TrimSpace(on.OnString))
			if i.Interactive {
				if values.Date == "" {
					values.Date = planner.Anchor.String()
				}
				values, err = promptForm(cmd, svc).Activity(values)
				if err != nil {
					return err
				}
			}

			a := add.Add{
				Planner: planner,
				Values:  values,
				ShowID:  io.ShowID,
				JSON:    jsonOutput(cfg, oo),
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(a.Do(context.Background()))
		},
	}

	options.AddActivityArgs(cmd, ao)
	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	options.InteractiveArgs(cmd, i)
	registerCategoryCompletion(cmd)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

// promptForm is the interactive activity form bound to cmd's streams.
func promptForm(cmd *cobra.Command, svc *app.Service) snake.Form {
	return snake.Form{
		In:         cmd.InOrStdin(),
		Out:        cmd.OutOrStdout(),
		Categories: svc.ListCategories(),
		ValidateDate: func(input string) error {
			_, err := timeutil.ResolveDate(input, activity.DateOf(time.Now()))
			return err
		},
	}
}

func registerCategoryCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		_, svc, err := load()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		ids := make([]string, 0)
		for _, c := range svc.ListCategories() {
			if strings.HasPrefix(c.ID, toComplete) {
				ids = append(ids, c.ID)
			}
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	})
}
