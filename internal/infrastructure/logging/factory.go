package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/focuskit/internal/ports"
)

// Backend names accepted by NewFromSettings.
const (
	BackendCharm   = "charm"
	BackendZerolog = "zerolog"
)

// Settings selects and configures a logging backend.
type Settings struct {
	Backend   string
	Level     string
	Format    string
	Writer    io.Writer
	Component string
}

// NewFromSettings builds the ports.Logger named by Settings.Backend.
func NewFromSettings(s Settings) (ports.Logger, error) {
	switch strings.ToLower(s.Backend) {
	case "", BackendCharm:
		return New(Options{
			Writer:    s.Writer,
			Level:     s.Level,
			Format:    s.Format,
			Layer:     "cli",
			Component: s.Component,
		})
	case BackendZerolog:
		return NewZerolog(ZerologOptions{
			Writer:        s.Writer,
			Level:         s.Level,
			HumanReadable: !strings.EqualFold(s.Format, "json"),
			Layer:         "cli",
			Component:     s.Component,
		})
	default:
		return nil, fmt.Errorf("unknown log backend %q", s.Backend)
	}
}
