package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/focuskit/internal/config"
	infraconfig "github.com/alexisbeaulieu97/focuskit/internal/infrastructure/config"
	"github.com/alexisbeaulieu97/focuskit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/focuskit/internal/ports"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Logger  ports.Logger
	Loader  *infraconfig.YAMLLoader
	Config  *config.Config
	Session context.Context
}

func newAppContext(logger ports.Logger) *AppContext {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &AppContext{
		Logger:  logger,
		Loader:  infraconfig.NewYAMLLoader(logger.With("component", "config_loader")),
		Config:  config.Default(),
		Session: logging.NewSessionContext(context.Background()),
	}
}

// CommandContext returns the context and logger a command should use. The
// context carries the invocation's session ID.
func (a *AppContext) CommandContext(cmd *cobra.Command, component string) (context.Context, ports.Logger) {
	ctx := a.Session
	if ctx == nil {
		ctx = context.Background()
	}
	if cmd != nil && cmd.Context() != nil {
		ctx = logging.WithSessionID(cmd.Context(), logging.SessionID(ctx))
	}
	logger := a.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return ctx, logger.With("component", component)
}
