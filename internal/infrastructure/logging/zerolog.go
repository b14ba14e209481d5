package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/focuskit/internal/ports"
)

// ZerologOptions configures the zerolog backend.
type ZerologOptions struct {
	Writer        io.Writer
	Level         string
	HumanReadable bool
	Layer         string
	Component     string
}

// ZerologLogger implements ports.Logger on top of rs/zerolog. It is selected
// with `log.backend: zerolog` and emits one JSON object per line unless
// HumanReadable is set.
type ZerologLogger struct {
	base   zerolog.Logger
	fields []interface{}
	layer  string
}

// NewZerolog creates a zerolog-backed logger.
func NewZerolog(opts ZerologOptions) (*ZerologLogger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	fields := make([]interface{}, 0, 2)
	if opts.Component != "" {
		fields = append(fields, "component", opts.Component)
	}
	layer := opts.Layer
	if layer == "" {
		layer = defaultLayer
	}

	return &ZerologLogger{
		base:   zerolog.New(output).Level(level).With().Timestamp().Logger(),
		fields: fields,
		layer:  layer,
	}, nil
}

// Debug emits a debug log entry.
func (l *ZerologLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.emit(ctx, zerolog.DebugLevel, msg, fields...)
}

// Info emits an info log entry.
func (l *ZerologLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.emit(ctx, zerolog.InfoLevel, msg, fields...)
}

// Warn emits a warning log entry.
func (l *ZerologLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.emit(ctx, zerolog.WarnLevel, msg, fields...)
}

// Error emits an error log entry.
func (l *ZerologLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.emit(ctx, zerolog.ErrorLevel, msg, fields...)
}

// With derives a new logger with persistent fields.
func (l *ZerologLogger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return NewNoOpLogger()
	}
	next := make([]interface{}, len(l.fields), len(l.fields)+len(fields))
	copy(next, l.fields)
	next = append(next, fields...)
	return &ZerologLogger{base: l.base, fields: next, layer: l.layer}
}

func (l *ZerologLogger) emit(ctx context.Context, level zerolog.Level, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	extras := map[string]interface{}{"layer": l.layer}
	if id := ports.GetSessionID(ctx); id != "" {
		extras["session_id"] = id
	}
	payload := mergeFields(l.fields, fields, extras)

	event := l.base.WithLevel(level)
	for i := 0; i+1 < len(payload); i += 2 {
		key, _ := payload[i].(string)
		if err, ok := payload[i+1].(error); ok {
			event = event.AnErr(key, err)
			continue
		}
		event = event.Interface(key, payload[i+1])
	}
	event.Msg(msg)
}

var _ ports.Logger = (*ZerologLogger)(nil)
