// Package config loads routine settings from .routine.yaml and ROUTINE_*
// environment variables.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"tableflip.dev/routine/pkg/category"
)

const (
	OutputPretty = "pretty"
	OutputJSON   = "json"
)

// Config holds everything read at start-up. It never changes afterwards.
type Config struct {
	LogLevel   string              `json:"logLevel"`
	StrictTime bool                `json:"strictTime"`
	Seed       bool                `json:"seed"`
	Output     string              `json:"output"`
	Categories []category.Category `json:"categories,omitempty"`
	// File is the config file that was read, if any.
	File string `json:"file,omitempty"`
}

// Default is the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Seed:     true,
		Output:   OutputPretty,
	}
}

// Load reads configuration. When path is empty the working directory and
// ROUTINE_CONFIG_PATH are searched for .routine.yaml; a missing file there
// is fine. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("log-level", def.LogLevel)
	v.SetDefault("strict-time", def.StrictTime)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("output", def.Output)
	v.SetEnvPrefix("ROUTINE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("config: expand %q: %w", path, err)
		}
		v.SetConfigFile(expanded)
	} else {
		v.SetConfigName(".routine") // .yaml is implicit
		if override := os.Getenv("ROUTINE_CONFIG_PATH"); override != "" {
			if expanded, err := homedir.Expand(override); err == nil {
				v.AddConfigPath(expanded)
			}
		}
		v.AddConfigPath("./")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := &Config{
		LogLevel:   v.GetString("log-level"),
		StrictTime: v.GetBool("strict-time"),
		Seed:       v.GetBool("seed"),
		Output:     strings.ToLower(v.GetString("output")),
		File:       v.ConfigFileUsed(),
	}
	if v.IsSet("categories") {
		if err := v.UnmarshalKey("categories", &cfg.Categories); err != nil {
			return nil, fmt.Errorf("config: categories: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that viper cannot type-check.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputPretty, OutputJSON:
	default:
		return fmt.Errorf("config: unknown output %q, expected %s or %s", c.Output, OutputPretty, OutputJSON)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if len(c.Categories) > 0 {
		if _, err := category.NewRegistry(c.Categories...); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// Registry builds the category registry: the configured categories when
// set, the defaults otherwise.
func (c *Config) Registry() (*category.Registry, error) {
	if len(c.Categories) == 0 {
		return category.Default(), nil
	}
	return category.NewRegistry(c.Categories...)
}

// Logger builds a logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}
