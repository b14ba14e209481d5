package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/focuskit/internal/ports"
)

const defaultBufferLimit = 1000

// Level is the severity of a buffered entry.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Entry is one captured log call. SessionID is read from the context at
// capture time; the context itself is not kept.
type Entry struct {
	Level     Level
	Message   string
	SessionID string
	Fields    []interface{}
}

// EventBuffer holds log entries while the primary logger cannot write, e.g.
// while the playground owns the alternate screen. Once full it drops the
// oldest entry.
type EventBuffer struct {
	mu      sync.Mutex
	limit   int
	entries []Entry
}

// NewEventBuffer creates a buffer holding at most limit entries (1000 when
// limit is not positive).
func NewEventBuffer(limit int) *EventBuffer {
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	return &EventBuffer{limit: limit, entries: make([]Entry, 0, limit)}
}

func (b *EventBuffer) add(e Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.entries) == b.limit {
		b.entries = append(b.entries[:0], b.entries[1:]...)
	}
	b.entries = append(b.entries, e)
}

// Entries returns a copy of the buffered entries, oldest first.
func (b *EventBuffer) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Flush empties the buffer into delegate in capture order. Each entry is
// replayed on a fresh context carrying its session id.
func (b *EventBuffer) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	b.mu.Lock()
	entries := b.entries
	b.entries = make([]Entry, 0, b.limit)
	b.mu.Unlock()

	for _, e := range entries {
		ctx := context.Background()
		if e.SessionID != "" {
			ctx = WithSessionID(ctx, e.SessionID)
		}
		switch e.Level {
		case LevelDebug:
			delegate.Debug(ctx, e.Message, e.Fields...)
		case LevelWarn:
			delegate.Warn(ctx, e.Message, e.Fields...)
		case LevelError:
			delegate.Error(ctx, e.Message, e.Fields...)
		default:
			delegate.Info(ctx, e.Message, e.Fields...)
		}
	}
}

// Len reports how many entries are buffered.
func (b *EventBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Messages returns the buffered messages, oldest first.
func (b *EventBuffer) Messages() []string {
	entries := b.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}
