package announce

import (
	"sync"

	"github.com/alexisbeaulieu97/focuskit/internal/dom"
)

// Region is the live region for one politeness level. Its fields are
// guarded by the owning Announcer's mutex.
type Region struct {
	mu         *sync.Mutex
	politeness Politeness
	el         *dom.Element

	last       string
	timer      Timer
	generation uint64
}

func newRegion(mu *sync.Mutex, p Politeness) *Region {
	el := dom.New(dom.KindStatus).
		WithID("live-"+string(p)).
		WithClass("live-region").
		WithVisibility(dom.VisuallyHidden).
		WithAttr("aria-live", string(p)).
		WithAttr("aria-atomic", "true")
	if role := p.Role(); role != "" {
		el.WithAttr("role", role)
	}
	return &Region{mu: mu, politeness: p, el: el}
}

// Politeness returns the level this region speaks at.
func (r *Region) Politeness() Politeness { return r.politeness }

// Element returns the status element inside the document.
func (r *Region) Element() *dom.Element { return r.el }

// Message returns the text currently in the region.
func (r *Region) Message() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.el.Text()
}

// LastMessage returns the last committed message, reset when the region is
// cleared.
func (r *Region) LastMessage() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// Pending reports whether an auto-clear is scheduled.
func (r *Region) Pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timer != nil
}

// cancelLocked stops the pending clear and invalidates any callback that is
// already running.
func (r *Region) cancelLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.generation++
}

// blankLocked empties the region and reports whether it held text.
func (r *Region) blankLocked() bool {
	had := r.el.Text() != ""
	r.el.SetText("")
	r.last = ""
	return had
}
