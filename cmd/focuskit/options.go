package main

import (
	"github.com/alexisbeaulieu97/focuskit/internal/config"
	"github.com/alexisbeaulieu97/focuskit/internal/tui"
)

// playgroundOptions converts the loaded configuration for the playground.
func playgroundOptions(cfg *config.Config) (tui.Options, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	nav, err := cfg.Navigation.Options()
	if err != nil {
		return tui.Options{}, err
	}
	return tui.Options{
		Trap:       cfg.Trap.Options(),
		Navigation: nav,
		Announcer:  cfg.Announcer.Options(),
	}, nil
}
