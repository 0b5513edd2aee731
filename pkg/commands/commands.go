package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/routine/pkg/app"
	"tableflip.dev/routine/pkg/commands/options"
	"tableflip.dev/routine/pkg/config"
)

var (
	ro = &options.RootOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "routine",
		Short: base.Wrap80("Plan a daily routine of activities on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddRootArgs(cmd, ro)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addViews(topLevel)
	addCategories(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// load reads the config and builds the routine service. Every process
// starts from the seed set; nothing outlives it.
func load() (*config.Config, *app.Service, error) {
	cfg, err := ro.Load()
	if err != nil {
		return nil, nil, err
	}
	svc, err := app.New(cfg, time.Now, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	return cfg, svc, nil
}

// jsonOutput is true for --json or a config that asks for JSON.
func jsonOutput(cfg *config.Config, oo *base.OutputOptions) bool {
	if oo.JSON {
		return true
	}
	return cfg != nil && cfg.Output == config.OutputJSON
}
