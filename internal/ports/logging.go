package ports

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Logger defines focuskit's structured logging contract. All log calls take
// key/value pairs, must be safe for concurrent use (announcer timers log from
// their own goroutine), and should enrich entries with the UI session ID when
// one is present in context. Common fields:
//   - session_id (generated once per CLI invocation)
//   - layer (controller|infrastructure|cli)
//   - component (trap, navigator, announcer, playground, ...)
//   - container / politeness / index for controller decisions
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

type sessionIDKey struct{}

// WithSessionID attaches the UI session ID to the context so every layer
// logs against the same interactive session.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// GetSessionID extracts the session ID from context. It returns an empty
// string when none has been set.
func GetSessionID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateSessionID produces a new UUIDv4 string. The CLI entry point calls
// it once per command execution.
func GenerateSessionID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("failed to generate session id: %v", err))
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80

	var encoded [32]byte
	hex.Encode(encoded[:], b[:])

	return fmt.Sprintf("%s-%s-%s-%s-%s",
		encoded[0:8],
		encoded[8:12],
		encoded[12:16],
		encoded[16:20],
		encoded[20:32],
	)
}
