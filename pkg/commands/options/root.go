package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/routine/pkg/config"
)

// RootOptions are flags every command inherits.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
}

func AddRootArgs(cmd *cobra.Command, o *RootOptions) {
	cmd.PersistentFlags().StringVar(&o.ConfigPath, "config", "",
		"Config file (default is .routine.yaml in the working or home directory).")
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log debug output to stderr.")
}

// Load reads the configuration, raising the log level for --verbose.
func (o *RootOptions) Load() (*config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	if o.Verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}
