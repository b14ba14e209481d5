package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/focuskit/internal/announce"
	"github.com/alexisbeaulieu97/focuskit/internal/dom"
	"github.com/alexisbeaulieu97/focuskit/internal/ports"
	"github.com/alexisbeaulieu97/focuskit/internal/tui"
)

// defaultScript deletes a file through the confirmation dialog and then
// picks a colour.
var defaultScript = []string{"tab", "down", "enter", "right", "right", "enter", "tab", "right", "enter"}

var keyAliases = map[string]string{
	"space":     dom.KeySpace,
	"escape":    dom.KeyEscape,
	"return":    dom.KeyEnter,
	"backtab":   dom.KeyShiftTab,
	"shift-tab": dom.KeyShiftTab,
}

type scriptOptions struct {
	Keys []string
	JSON bool
}

// scriptStep records the playground state after one key.
type scriptStep struct {
	Key       string   `json:"key"`
	Focus     string   `json:"focus"`
	Dialogs   int      `json:"dialogs"`
	Prevented bool     `json:"prevented"`
	Announced []string `json:"announced,omitempty"`
}

func newScriptCmd(app *AppContext) *cobra.Command {
	opts := scriptOptions{}

	cmd := &cobra.Command{
		Use:   "script [keys...]",
		Short: "Replay key presses against the playground without a terminal",
		Long: `Script dispatches each key into the playground and reports where focus
landed, how many dialogs are open and what was announced. Keys use terminal
names such as tab, shift+tab, up, enter and esc; "space" and "escape" are
accepted as aliases. Without keys a short demo sequence is replayed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.script")
			opts.Keys = args
			if len(opts.Keys) == 0 {
				opts.Keys = defaultScript
			}

			steps, err := runScript(ctx, app, logger, opts.Keys)
			if err != nil {
				logger.Error(ctx, "script failed", "error", err)
				return err
			}
			if opts.JSON {
				return writeScriptJSON(cmd.OutOrStdout(), steps)
			}
			writeScriptText(cmd.OutOrStdout(), steps)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output steps in JSON format")

	return cmd
}

func runScript(ctx context.Context, app *AppContext, logger ports.Logger, keys []string) ([]scriptStep, error) {
	opts, err := playgroundOptions(app.Config)
	if err != nil {
		return nil, err
	}
	// Steps are instantaneous, so messages stay until replaced.
	opts.Announcer.Duration = 0
	opts.Logger = logger

	p, err := tui.NewPlayground(opts)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	var announced []string
	unsubscribe := p.Announcer().Subscribe(func(a announce.Announcement) {
		if a.Cleared() {
			announced = append(announced, fmt.Sprintf("%s: (cleared)", a.Politeness))
			return
		}
		announced = append(announced, fmt.Sprintf("%s: %s", a.Politeness, a.Message))
	})
	defer unsubscribe()

	steps := make([]scriptStep, 0, len(keys))
	for _, raw := range keys {
		if err := ctx.Err(); err != nil {
			return steps, fmt.Errorf("script cancelled: %w", err)
		}
		k := normalizeKey(raw)
		announced = nil
		prevented := p.HandleKey(dom.NewKeyEvent(k))

		step := scriptStep{
			Key:       k,
			Dialogs:   p.DialogDepth(),
			Prevented: prevented,
			Announced: announced,
		}
		if el := p.Document().ActiveElement(); el != nil {
			step.Focus = el.ID()
		}
		steps = append(steps, step)
	}
	logger.Debug(ctx, "script finished", "steps", len(steps))
	return steps, nil
}

func normalizeKey(raw string) string {
	k := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := keyAliases[k]; ok {
		return alias
	}
	if k == "" {
		return raw
	}
	return k
}

func writeScriptText(w io.Writer, steps []scriptStep) {
	for _, s := range steps {
		key := s.Key
		if key == dom.KeySpace {
			key = "space"
		}
		focus := s.Focus
		if focus == "" {
			focus = "(none)"
		}
		line := fmt.Sprintf("%-10s focus=%s", key, focus)
		if s.Dialogs > 0 {
			line += fmt.Sprintf(" dialogs=%d", s.Dialogs)
		}
		fmt.Fprintln(w, line)
		for _, a := range s.Announced {
			fmt.Fprintf(w, "           announce %s\n", a)
		}
	}
}

func writeScriptJSON(w io.Writer, steps []scriptStep) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(steps)
}
