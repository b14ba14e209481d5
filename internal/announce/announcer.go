package announce

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/focuskit/internal/dom"
	"github.com/alexisbeaulieu97/focuskit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/focuskit/internal/ports"
)

// DefaultDuration is how long a message stays in its region.
const DefaultDuration = 5 * time.Second

// Options configures an Announcer.
type Options struct {
	// Politeness is used by Announce. Defaults to Polite.
	Politeness Politeness
	// Duration blanks a region this long after its last message. Zero keeps
	// messages until they are replaced or cleared.
	Duration time.Duration
	// Dedupe suppresses a message equal to the region's last one.
	Dedupe bool
	// Scheduler runs clear timers. Defaults to SystemScheduler.
	Scheduler Scheduler
}

// DefaultOptions returns polite, deduplicated announcements that expire
// after DefaultDuration.
func DefaultOptions() Options {
	return Options{
		Politeness: Polite,
		Duration:   DefaultDuration,
		Dedupe:     true,
		Scheduler:  SystemScheduler{},
	}
}

// Announcement is delivered to subscribers on every commit. An empty
// Message means the region was cleared.
type Announcement struct {
	Politeness Politeness
	Message    string
}

// Cleared reports whether a marks a region going blank.
func (a Announcement) Cleared() bool { return a.Message == "" }

type subscriber struct {
	id uint64
	fn func(Announcement)
}

// Announcer writes messages into one live region per politeness level.
// Regions are created on first use and appended to the document root.
// It is safe for concurrent use; the document itself is only touched while
// holding the announcer's lock.
type Announcer struct {
	mu      sync.Mutex
	doc     *dom.Document
	opts    Options
	logger  ports.Logger
	regions map[Politeness]*Region

	subs     []subscriber
	nextSub  uint64
	disposed bool
}

// New returns an announcer writing into doc.
func New(doc *dom.Document, opts Options, logger ports.Logger) *Announcer {
	if !opts.Politeness.Valid() {
		opts.Politeness = Polite
	}
	if opts.Scheduler == nil {
		opts.Scheduler = SystemScheduler{}
	}
	if opts.Duration < 0 {
		opts.Duration = 0
	}
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &Announcer{
		doc:     doc,
		opts:    opts,
		logger:  logger.With("component", "announcer"),
		regions: make(map[Politeness]*Region),
	}
}

// Options returns the effective configuration.
func (a *Announcer) Options() Options { return a.opts }

// Announce commits msg at the default politeness.
func (a *Announcer) Announce(msg string) {
	a.AnnounceWith(msg, a.opts.Politeness)
}

// AnnounceWith commits msg to the region for p. Blank messages, and with
// Dedupe a repeat of the region's last message, are dropped. A pending clear
// is replaced so the newest message always owns the timer.
func (a *Announcer) AnnounceWith(msg string, p Politeness) {
	ctx := context.Background()
	if strings.TrimSpace(msg) == "" {
		a.logger.Debug(ctx, "blank announcement ignored")
		return
	}
	if !p.Valid() {
		a.logger.Debug(ctx, "unknown politeness; using default", "politeness", string(p))
		p = a.opts.Politeness
	}

	a.mu.Lock()
	if a.disposed {
		a.mu.Unlock()
		a.logger.Debug(ctx, "announcer disposed; announcement dropped")
		return
	}
	r := a.regionLocked(p)
	if a.opts.Dedupe && msg == r.last {
		a.mu.Unlock()
		a.logger.Debug(ctx, "duplicate announcement suppressed", "politeness", string(p))
		return
	}

	r.cancelLocked()
	r.el.SetText(msg)
	r.last = msg
	if a.opts.Duration > 0 {
		gen := r.generation
		r.timer = a.opts.Scheduler.AfterFunc(a.opts.Duration, func() { a.expire(r, gen) })
	}
	subs := a.subscribersLocked()
	a.mu.Unlock()

	a.logger.Debug(ctx, "announcement committed", "politeness", string(p), "length", len(msg))
	notify(subs, Announcement{Politeness: p, Message: msg})
}

// expire blanks r unless a newer announcement or a Clear superseded the
// timer that scheduled it.
func (a *Announcer) expire(r *Region, gen uint64) {
	a.mu.Lock()
	if a.disposed || r.generation != gen {
		a.mu.Unlock()
		return
	}
	r.timer = nil
	had := r.blankLocked()
	subs := a.subscribersLocked()
	a.mu.Unlock()

	if had {
		notify(subs, Announcement{Politeness: r.politeness})
	}
}

// Clear blanks every region immediately and cancels pending timers.
func (a *Announcer) Clear() {
	a.mu.Lock()
	var cleared []Politeness
	for _, p := range []Politeness{Polite, Assertive, Off} {
		r, ok := a.regions[p]
		if !ok {
			continue
		}
		r.cancelLocked()
		if r.blankLocked() {
			cleared = append(cleared, p)
		}
	}
	subs := a.subscribersLocked()
	a.mu.Unlock()

	for _, p := range cleared {
		notify(subs, Announcement{Politeness: p})
	}
}

// Dispose cancels timers, removes the region elements and drops
// subscribers. Later announcements are ignored.
func (a *Announcer) Dispose() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.disposed {
		return
	}
	for _, r := range a.regions {
		r.cancelLocked()
		r.el.Remove()
	}
	a.regions = make(map[Politeness]*Region)
	a.subs = nil
	a.disposed = true
}

// Disposed reports whether Dispose has run.
func (a *Announcer) Disposed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.disposed
}

// Region returns the region for p, creating it on first use. It returns nil
// after Dispose or for an unknown level.
func (a *Announcer) Region(p Politeness) *Region {
	if !p.Valid() {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.disposed {
		return nil
	}
	return a.regionLocked(p)
}

// Subscribe registers fn for every commit and clear. The returned function
// unregisters it and may be called more than once.
func (a *Announcer) Subscribe(fn func(Announcement)) (unsubscribe func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.disposed || fn == nil {
		return func() {}
	}
	a.nextSub++
	id := a.nextSub
	a.subs = append(a.subs, subscriber{id: id, fn: fn})
	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		for i, s := range a.subs {
			if s.id == id {
				a.subs = append(a.subs[:i:i], a.subs[i+1:]...)
				return
			}
		}
	}
}

func (a *Announcer) regionLocked(p Politeness) *Region {
	if r, ok := a.regions[p]; ok {
		if !r.el.IsConnected() && a.doc != nil {
			a.doc.Root().AppendChild(r.el)
		}
		return r
	}
	r := newRegion(&a.mu, p)
	if a.doc != nil {
		a.doc.Root().AppendChild(r.el)
	}
	a.regions[p] = r
	return r
}

func (a *Announcer) subscribersLocked() []subscriber {
	if len(a.subs) == 0 {
		return nil
	}
	out := make([]subscriber, len(a.subs))
	copy(out, a.subs)
	return out
}

func notify(subs []subscriber, ev Announcement) {
	for _, s := range subs {
		s.fn(ev)
	}
}
