package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/routine/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	oo := &base.OutputOptions{}
	var id string

	cmd := &cobra.Command{
		Use:     "delete id",
		Aliases: []string{"rm", "remove"},
		Short:   "Remove an activity from the routine",
		Example: `
routine delete 3
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one activity id")
			}
			id = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, svc, err := load()
			if err != nil {
				return oo.HandleError(err)
			}
			r := remove.Remove{
				App:  svc,
				ID:   id,
				JSON: jsonOutput(cfg, oo),
				Out:  cmd.OutOrStdout(),
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
