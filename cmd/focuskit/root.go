package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/focuskit/internal/config"
	"github.com/alexisbeaulieu97/focuskit/internal/infrastructure/logging"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	logBackend string
}

func newRootCmd(app *AppContext) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "focuskit",
		Short:         "focuskit demonstrates focus traps, roving navigation and live announcements",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configure(cmd, app, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the playground.
			if len(args) == 0 {
				ctx, logger := app.CommandContext(cmd, "command.demo")
				return startDemo(ctx, cmd, app, logger)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Override the log format (text, console, json, logfmt)")
	cmd.PersistentFlags().StringVar(&flags.logBackend, "log-backend", "", "Override the log backend (charm, zerolog)")

	cmd.AddCommand(newDemoCmd(app))
	cmd.AddCommand(newScriptCmd(app))
	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// configure loads the configuration, applies flag overrides and rebuilds
// the logger from the result.
func configure(cmd *cobra.Command, app *AppContext, flags *rootFlags) error {
	ctx, _ := app.CommandContext(cmd, "cli")

	cfg, err := app.Loader.Load(ctx, flags.configPath)
	if err != nil {
		return err
	}

	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Log.Format = flags.logFormat
	}
	if flags.logBackend != "" {
		cfg.Log.Backend = flags.logBackend
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	logger, err := logging.NewFromSettings(cfg.Log.Settings(cmd.ErrOrStderr(), "cli"))
	if err != nil {
		return err
	}
	app.Logger = logger
	app.Config = cfg
	return nil
}
