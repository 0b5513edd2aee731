// Package app exposes the routine core to its presentations: the CLI,
// the terminal UI and the MCP session.
package app

import (
	"io"
	"time"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/config"
	"tableflip.dev/routine/pkg/store"
	"tableflip.dev/routine/pkg/timeutil"
)

// New builds a Service from cfg: categories, validation rules, a memory
// store seeded relative to now (unless seeding is off) and a logger that
// writes to logOut.
func New(cfg *config.Config, now func() time.Time, logOut io.Writer) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if now == nil {
		now = time.Now
	}
	if logOut == nil {
		logOut = io.Discard
	}

	registry, err := cfg.Registry()
	if err != nil {
		return nil, err
	}

	var seed []activity.Activity
	if cfg.Seed {
		seed = store.Seed(activity.DateOf(now()))
	}
	mem, err := store.NewMemory(seed...)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger(logOut)
	logger.WithField("activities", mem.Len()).Debug("store ready")

	return &Service{
		Store:      mem,
		Categories: registry,
		Validator: activity.Validator{
			StrictTime:  cfg.StrictTime,
			ResolveDate: timeutil.Resolver(now),
		},
		Log: logger,
	}, nil
}
