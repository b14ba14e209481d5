package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/focuskit/internal/announce"
)

// historyLimit caps the announcement feed shown in the view.
const historyLimit = 6

// history collects announcer commits. It is shared between copies of the
// value model and only touched from the bubbletea goroutine.
type history struct {
	entries []announce.Announcement
}

func (h *history) record(a announce.Announcement) {
	h.entries = append(h.entries, a)
	if over := len(h.entries) - 4*historyLimit; over > 0 {
		h.entries = h.entries[over:]
	}
}

// Model is the bubbletea front end of the playground.
type Model struct {
	playground  *Playground
	scheduler   *teaScheduler
	history     *history
	unsubscribe func()

	keys     globalKeyMap
	help     help.Model
	width    int
	quitting bool
}

// NewModel builds a playground and wraps it for bubbletea. Unless opts names
// a scheduler, announcer timers are delivered through the program.
func NewModel(opts Options) (Model, error) {
	var sched *teaScheduler
	if opts.Announcer.Scheduler == nil {
		sched = newTeaScheduler()
		opts.Announcer.Scheduler = sched
	}

	p, err := NewPlayground(opts)
	if err != nil {
		if sched != nil {
			sched.close()
		}
		return Model{}, err
	}

	h := &history{}
	return Model{
		playground:  p,
		scheduler:   sched,
		history:     h,
		unsubscribe: p.Announcer().Subscribe(h.record),
		keys:        defaultGlobalKeyMap(),
		help:        help.New(),
	}, nil
}

// Init starts waiting for announcer timers.
func (m Model) Init() tea.Cmd {
	return waitForTimer(m.scheduler)
}

// Playground exposes the underlying document controllers.
func (m Model) Playground() *Playground { return m.playground }

// History returns the announcements committed so far, oldest first.
func (m Model) History() []announce.Announcement {
	out := make([]announce.Announcement, len(m.history.entries))
	copy(out, m.history.entries)
	return out
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool { return m.quitting }

// Close releases the playground and stops timer delivery. It is safe to call
// more than once.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	if m.playground != nil {
		m.playground.Close()
	}
	if m.scheduler != nil {
		m.scheduler.close()
	}
}

func (m Model) helpKeys() help.KeyMap {
	keys := m.keys
	keys.Close.SetEnabled(m.playground.DialogDepth() > 0)
	return mergedKeyMaps{keyMaps: []help.KeyMap{m.playground.KeyMap(), keys}}
}
