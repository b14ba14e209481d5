package announce

import (
	"sync"

	"github.com/alexisbeaulieu97/focuskit/internal/dom"
	"github.com/alexisbeaulieu97/focuskit/internal/ports"
)

// Registry hands out one shared Announcer for call sites that have no
// owning component. It is passed by reference instead of living in a
// package variable so tests get isolated instances.
type Registry struct {
	mu        sync.Mutex
	doc       *dom.Document
	opts      Options
	logger    ports.Logger
	announcer *Announcer
}

// NewRegistry prepares a registry; nothing is created until first use.
func NewRegistry(doc *dom.Document, opts Options, logger ports.Logger) *Registry {
	return &Registry{doc: doc, opts: opts, logger: logger}
}

// Announcer returns the shared announcer, creating it if needed.
func (r *Registry) Announcer() *Announcer {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.announcer == nil || r.announcer.Disposed() {
		r.announcer = New(r.doc, r.opts, r.logger)
	}
	return r.announcer
}

// Announce forwards to the shared announcer.
func (r *Registry) Announce(msg string) { r.Announcer().Announce(msg) }

// AnnounceWith forwards to the shared announcer.
func (r *Registry) AnnounceWith(msg string, p Politeness) { r.Announcer().AnnounceWith(msg, p) }

// Clear blanks the shared regions if they exist.
func (r *Registry) Clear() {
	r.mu.Lock()
	a := r.announcer
	r.mu.Unlock()
	if a != nil {
		a.Clear()
	}
}

// Active reports whether the shared announcer currently exists.
func (r *Registry) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.announcer != nil && !r.announcer.Disposed()
}

// Dispose tears the shared announcer down. The next use builds a fresh one.
func (r *Registry) Dispose() {
	r.mu.Lock()
	a := r.announcer
	r.announcer = nil
	r.mu.Unlock()
	if a != nil {
		a.Dispose()
	}
}
