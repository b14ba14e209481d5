package logging

import (
	"context"

	"github.com/alexisbeaulieu97/focuskit/internal/ports"
)

// BufferedLogger captures entries into an EventBuffer. Without a buffer it
// discards everything, which is what NewNoOpLogger hands out.
type BufferedLogger struct {
	buffer *EventBuffer
	fields []interface{}
}

var discard = &BufferedLogger{}

// NewBufferedLogger returns a logger that captures into buffer.
func NewBufferedLogger(buffer *EventBuffer) *BufferedLogger {
	return &BufferedLogger{buffer: buffer}
}

// NewNoOpLogger returns the shared logger that drops every entry. Controllers
// fall back to it when constructed with a nil logger.
func NewNoOpLogger() ports.Logger { return discard }

func (l *BufferedLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.capture(ctx, LevelDebug, msg, fields)
}

func (l *BufferedLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.capture(ctx, LevelInfo, msg, fields)
}

func (l *BufferedLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.capture(ctx, LevelWarn, msg, fields)
}

func (l *BufferedLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.capture(ctx, LevelError, msg, fields)
}

// With returns a child sharing the buffer. A discarding logger returns
// itself.
func (l *BufferedLogger) With(fields ...interface{}) ports.Logger {
	if l == nil || l.buffer == nil {
		return discard
	}
	return &BufferedLogger{buffer: l.buffer, fields: join(l.fields, fields)}
}

func (l *BufferedLogger) capture(ctx context.Context, level Level, msg string, fields []interface{}) {
	if l == nil || l.buffer == nil {
		return
	}
	l.buffer.add(Entry{
		Level:     level,
		Message:   msg,
		SessionID: SessionID(ctx),
		Fields:    join(l.fields, fields),
	})
}

func join(base, extra []interface{}) []interface{} {
	out := make([]interface{}, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}
