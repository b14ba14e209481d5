package tui

import (
	"sync"
	"time"

	"github.com/alexisbeaulieu97/focuskit/internal/announce"
)

// teaScheduler runs announcer timers on the bubbletea goroutine: expired
// timers hand their callback to the program as a timerFiredMsg instead of
// touching the document from the timer goroutine.
type teaScheduler struct {
	fired chan func()
	done  chan struct{}
	once  sync.Once
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{
		fired: make(chan func()),
		done:  make(chan struct{}),
	}
}

// AfterFunc implements announce.Scheduler.
func (s *teaScheduler) AfterFunc(d time.Duration, f func()) announce.Timer {
	return time.AfterFunc(d, func() {
		select {
		case s.fired <- f:
		case <-s.done:
		}
	})
}

func (s *teaScheduler) close() {
	s.once.Do(func() { close(s.done) })
}

var _ announce.Scheduler = (*teaScheduler)(nil)
