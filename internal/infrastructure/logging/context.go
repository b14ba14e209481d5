package logging

import (
	"context"

	"github.com/alexisbeaulieu97/focuskit/internal/ports"
)

// WithSessionID stores the UI session identifier inside the context.
func WithSessionID(ctx context.Context, id string) context.Context {
	return ports.WithSessionID(ctx, id)
}

// SessionID retrieves the session identifier from the context, returning an
// empty string when none is present.
func SessionID(ctx context.Context) string {
	return ports.GetSessionID(ctx)
}

// NewSessionContext returns a context carrying a freshly generated session ID.
func NewSessionContext(parent context.Context) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	return ports.WithSessionID(parent, ports.GenerateSessionID())
}
