package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/focuskit/internal/config"
)

func newCheckCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <config-file>",
		Short: "Validate a configuration file and print the effective settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.check")
			path := args[0]

			if err := app.Loader.Validate(ctx, path); err != nil {
				logger.Error(ctx, "configuration invalid", "path", path, "error", err)
				return err
			}
			cfg, err := app.Loader.Load(ctx, path)
			if err != nil {
				return err
			}
			if _, err := playgroundOptions(cfg); err != nil {
				return err
			}

			writeSummary(cmd.OutOrStdout(), path, cfg)
			return nil
		},
	}

	return cmd
}

func writeSummary(w io.Writer, path string, cfg *config.Config) {
	initial := cfg.Trap.InitialFocus
	if initial == "" {
		initial = "(first focusable)"
	}
	fmt.Fprintf(w, "%s is valid (version %s)\n", path, cfg.Version)
	fmt.Fprintf(w, "trap:       escape=%t initial=%s\n", cfg.Trap.EscapeDeactivates, initial)
	fmt.Fprintf(w, "navigation: orientation=%s loop=%t columns=%d focus_within=%t\n",
		cfg.Navigation.Orientation, cfg.Navigation.Loop, cfg.Navigation.Columns, cfg.Navigation.FocusWithin)
	fmt.Fprintf(w, "announcer:  politeness=%s duration=%s dedupe=%t\n",
		cfg.Announcer.Politeness, cfg.Announcer.Duration, cfg.Announcer.Dedupe)
	fmt.Fprintf(w, "log:        level=%s format=%s backend=%s\n", cfg.Log.Level, cfg.Log.Format, cfg.Log.Backend)
}
