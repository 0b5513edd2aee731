package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/routine/pkg/runner/categories"
)

func addCategories(topLevel *cobra.Command) {
	oo := &base.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "cats"},
		Short:   "List the activity categories and their colors.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, svc, err := load()
			if err != nil {
				return oo.HandleError(err)
			}
			k := categories.Categories{
				App:  svc,
				JSON: jsonOutput(cfg, oo),
				Out:  cmd.OutOrStdout(),
			}
			return oo.HandleError(k.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
