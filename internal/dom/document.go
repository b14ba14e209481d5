package dom

import "slices"

// KeyListener handles a key event dispatched against the document.
type KeyListener func(ev *KeyEvent)

type registration struct {
	id uint64
	fn KeyListener
}

// Document is the live interactive surface: a tree of elements, the element
// currently holding input focus and the document-level key listeners.
// It is not safe for concurrent use; the bubbletea update loop owns it.
type Document struct {
	root      *Element
	active    *Element
	listeners []registration
	nextID    uint64
}

// NewDocument creates an empty document whose root is an 80x24 container.
func NewDocument() *Document {
	d := &Document{}
	d.root = New(KindContainer).WithID("root").WithSize(80, 24)
	d.root.doc = d
	return d
}

// Root returns the root element; attach content below it.
func (d *Document) Root() *Element { return d.root }

// ActiveElement returns the focused element, or nil when focus sits on the
// document itself or the focused element has been removed.
func (d *Document) ActiveElement() *Element {
	if d.active != nil && !d.active.IsConnected() {
		d.active = nil
	}
	return d.active
}

// Focus moves input focus to el. It returns false and leaves focus alone
// when el is nil, detached, belongs to another document, or cannot take
// focus.
func (d *Document) Focus(el *Element) bool {
	if el == nil || el.Document() != d || !el.canReceiveFocus() {
		return false
	}
	d.active = el
	return true
}

// Blur drops focus back to the document.
func (d *Document) Blur() {
	d.active = nil
}

// GetElementByID finds a connected element by id.
func (d *Document) GetElementByID(id string) *Element {
	var found *Element
	d.root.Walk(func(el *Element) bool {
		if found != nil {
			return false
		}
		if el.id == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// Tabbable returns every element in the sequential focus order.
func (d *Document) Tabbable() []*Element {
	var out []*Element
	for _, el := range d.root.Descendants() {
		if el.IsTabbable() {
			out = append(out, el)
		}
	}
	return out
}

// AddKeyListener registers fn for every dispatched key event. The returned
// subscription must be closed to unregister it.
func (d *Document) AddKeyListener(fn KeyListener) *Subscription {
	d.nextID++
	d.listeners = append(d.listeners, registration{id: d.nextID, fn: fn})
	return &Subscription{doc: d, id: d.nextID}
}

// ListenerCount reports how many key listeners are registered.
func (d *Document) ListenerCount() int {
	return len(d.listeners)
}

func (d *Document) removeListener(id uint64) bool {
	i := slices.IndexFunc(d.listeners, func(r registration) bool { return r.id == id })
	if i < 0 {
		return false
	}
	d.listeners = slices.Delete(d.listeners, i, i+1)
	return true
}

func (d *Document) registered(id uint64) bool {
	return slices.ContainsFunc(d.listeners, func(r registration) bool { return r.id == id })
}

// Dispatch delivers ev to the registered listeners in registration order and
// then, unless one of them prevented default, performs the native action.
// Listeners removed during dispatch are not invoked. It reports whether the
// default action was prevented.
func (d *Document) Dispatch(ev *KeyEvent) bool {
	if ev == nil {
		return false
	}
	snapshot := slices.Clone(d.listeners)
	for _, r := range snapshot {
		if !d.registered(r.id) {
			continue
		}
		r.fn(ev)
	}
	if ev.DefaultPrevented() {
		return true
	}
	d.defaultAction(ev)
	return false
}

func (d *Document) defaultAction(ev *KeyEvent) {
	switch ev.Key() {
	case KeyTab:
		d.advance(1)
	case KeyShiftTab:
		d.advance(-1)
	case KeyEnter:
		if el := d.ActiveElement(); el != nil && el.IsActivationTarget() {
			el.Click()
		}
	case KeySpace:
		if el := d.ActiveElement(); el != nil && el.Kind() == KindButton {
			el.Click()
		}
	}
}

// advance moves sequential focus by step through the document's tab order,
// wrapping at both ends.
func (d *Document) advance(step int) {
	order := d.Tabbable()
	if len(order) == 0 {
		return
	}
	current := slices.Index(order, d.ActiveElement())
	var next int
	switch {
	case current < 0 && step > 0:
		next = 0
	case current < 0:
		next = len(order) - 1
	default:
		next = (current + step + len(order)) % len(order)
	}
	d.Focus(order[next])
}

// Subscription pairs one AddKeyListener call with its removal.
type Subscription struct {
	doc    *Document
	id     uint64
	closed bool
}

// Close unregisters the listener. Calling it more than once is a no-op.
func (s *Subscription) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	s.doc.removeListener(s.id)
}

// Closed reports whether Close has been called.
func (s *Subscription) Closed() bool {
	return s == nil || s.closed
}
