package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/focuskit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/focuskit/internal/ports"
	"github.com/alexisbeaulieu97/focuskit/internal/tui"
)

var errNotInteractive = errors.New("the playground needs an interactive terminal; try `focuskit script` instead")

var (
	demoRunner = runDemo
	isTerminal = func(w io.Writer) bool {
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
)

func newDemoCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive playground",
		Long: `Launch a terminal playground with a toolbar, a file list, a colour grid and
two modal dialogs. The panel at the bottom shows what a screen reader would
announce.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.demo")
			return startDemo(ctx, cmd, app, logger)
		},
	}

	return cmd
}

func startDemo(ctx context.Context, cmd *cobra.Command, app *AppContext, logger ports.Logger) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return errNotInteractive
	}
	logger.Info(ctx, "launching playground")
	err := demoRunner(ctx, app, logger)
	if err != nil {
		logger.Error(ctx, "playground failed", "error", err)
	}
	return err
}

// runDemo runs the playground full screen. Controller logs are buffered while
// the program owns the terminal and written out once it exits.
func runDemo(ctx context.Context, app *AppContext, logger ports.Logger) error {
	opts, err := playgroundOptions(app.Config)
	if err != nil {
		return err
	}
	buffer := logging.NewEventBuffer(512)
	opts.Logger = logging.NewBufferedLogger(buffer)

	m, err := tui.NewModel(opts)
	if err != nil {
		return err
	}
	defer m.Close()

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := program.Run()
	buffer.Flush(logger)
	if err != nil {
		return fmt.Errorf("failed to run playground: %w", err)
	}

	if fm, ok := final.(tui.Model); ok {
		logger.Info(ctx, "playground closed", "announcements", len(fm.History()))
	}
	return nil
}
