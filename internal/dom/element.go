package dom

import (
	"slices"
	"strconv"
)

// Kind identifies what an element is, which decides whether it takes part in
// sequential focus and whether Enter/Space activate it natively.
type Kind string

const (
	KindContainer Kind = "container"
	KindButton    Kind = "button"
	KindLink      Kind = "link"
	KindInput     Kind = "input"
	KindSelect    Kind = "select"
	KindTextArea  Kind = "textarea"
	KindText      Kind = "text"
	KindStatus    Kind = "status"
)

// Visibility mirrors the three ways an element can be present on screen.
type Visibility int

const (
	// Visible elements are drawn normally.
	Visible Visibility = iota
	// VisuallyHidden elements stay in the tree and are observed by assistive
	// technology, but draw nothing.
	VisuallyHidden
	// Hidden elements behave like display:none and are ignored entirely.
	Hidden
)

// Element is a node of the interactive surface.
type Element struct {
	id         string
	kind       Kind
	classes    []string
	attrs      map[string]string
	tabIndex   *int
	disabled   bool
	editable   bool
	text       string
	width      int
	height     int
	visibility Visibility
	onClick    func(*Element)

	parent   *Element
	children []*Element
	doc      *Document
}

// New creates a detached element of the given kind with a 1x1 layout box.
func New(kind Kind) *Element {
	return &Element{
		kind:   kind,
		attrs:  make(map[string]string),
		width:  1,
		height: 1,
	}
}

// Button creates a button element with the given id and label.
func Button(id, label string) *Element {
	return New(KindButton).WithID(id).WithText(label)
}

// Link creates a link element pointing at href.
func Link(id, label, href string) *Element {
	return New(KindLink).WithID(id).WithText(label).WithAttr("href", href)
}

// Input creates a text input element.
func Input(id string) *Element {
	return New(KindInput).WithID(id)
}

// Container creates a container element holding children.
func Container(id string, children ...*Element) *Element {
	el := New(KindContainer).WithID(id)
	for _, child := range children {
		el.AppendChild(child)
	}
	return el
}

// WithID sets the element id.
func (e *Element) WithID(id string) *Element {
	e.id = id
	return e
}

// WithClass adds CSS-like classes used by selectors.
func (e *Element) WithClass(classes ...string) *Element {
	for _, c := range classes {
		if c != "" && !slices.Contains(e.classes, c) {
			e.classes = append(e.classes, c)
		}
	}
	return e
}

// WithAttr sets an attribute.
func (e *Element) WithAttr(name, value string) *Element {
	e.attrs[name] = value
	return e
}

// WithTabIndex sets an explicit tab index. Negative values keep the element
// programmatically focusable but out of the tab sequence.
func (e *Element) WithTabIndex(i int) *Element {
	e.tabIndex = &i
	e.attrs["tabindex"] = strconv.Itoa(i)
	return e
}

// WithDisabled toggles the disabled flag.
func (e *Element) WithDisabled(disabled bool) *Element {
	e.disabled = disabled
	return e
}

// WithContentEditable marks the element as an editable region.
func (e *Element) WithContentEditable(editable bool) *Element {
	e.editable = editable
	return e
}

// WithText sets the text content.
func (e *Element) WithText(text string) *Element {
	e.text = text
	return e
}

// WithSize sets the rendered layout box.
func (e *Element) WithSize(width, height int) *Element {
	e.width = width
	e.height = height
	return e
}

// WithVisibility sets how the element is drawn.
func (e *Element) WithVisibility(v Visibility) *Element {
	e.visibility = v
	return e
}

// OnClick sets the native activation handler for buttons and links.
func (e *Element) OnClick(fn func(*Element)) *Element {
	e.onClick = fn
	return e
}

// ID returns the element id.
func (e *Element) ID() string { return e.id }

// Kind returns the element kind.
func (e *Element) Kind() Kind { return e.kind }

// Text returns the text content.
func (e *Element) Text() string { return e.text }

// SetText replaces the text content.
func (e *Element) SetText(text string) { e.text = text }

// Attr returns an attribute value and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// HasClass reports whether the element carries class c.
func (e *Element) HasClass(c string) bool {
	return slices.Contains(e.classes, c)
}

// TabIndex returns the explicit tab index, if any.
func (e *Element) TabIndex() (int, bool) {
	if e.tabIndex == nil {
		return 0, false
	}
	return *e.tabIndex, true
}

// Disabled reports the disabled flag.
func (e *Element) Disabled() bool { return e.disabled }

// SetDisabled changes the disabled flag after construction.
func (e *Element) SetDisabled(disabled bool) { e.disabled = disabled }

// Visibility returns how the element is drawn.
func (e *Element) Visibility() Visibility { return e.visibility }

// SetVisibility changes visibility after construction.
func (e *Element) SetVisibility(v Visibility) { e.visibility = v }

// Size returns the rendered layout box.
func (e *Element) Size() (int, int) { return e.width, e.height }

// Parent returns the parent element or nil.
func (e *Element) Parent() *Element { return e.parent }

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

// AppendChild attaches child as the last child of e, detaching it from any
// previous parent first.
func (e *Element) AppendChild(child *Element) *Element {
	if child == nil || child == e {
		return e
	}
	child.Remove()
	child.parent = e
	e.children = append(e.children, child)
	return e
}

// Remove detaches e from its parent. Removing a detached element is a no-op.
func (e *Element) Remove() {
	if e.parent == nil {
		return
	}
	siblings := e.parent.children
	if i := slices.Index(siblings, e); i >= 0 {
		e.parent.children = slices.Delete(siblings, i, i+1)
	}
	e.parent = nil
}

// Root returns the topmost ancestor of e.
func (e *Element) Root() *Element {
	cur := e
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Document returns the document e is connected to, or nil.
func (e *Element) Document() *Document {
	if e == nil {
		return nil
	}
	return e.Root().doc
}

// IsConnected reports whether e is reachable from a document root.
func (e *Element) IsConnected() bool {
	return e.Document() != nil
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == e {
			return true
		}
	}
	return false
}

// Walk visits e and its descendants in document order. Returning false from
// fn skips the children of the visited element.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, child := range e.children {
		child.Walk(fn)
	}
}

// Descendants returns every descendant of e in document order, excluding e.
func (e *Element) Descendants() []*Element {
	var out []*Element
	for _, child := range e.children {
		child.Walk(func(el *Element) bool {
			out = append(out, el)
			return true
		})
	}
	return out
}

// Rendered reports whether the element currently occupies layout: no
// ancestor is Hidden and its box has a non-zero area.
func (e *Element) Rendered() bool {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.visibility == Hidden {
			return false
		}
	}
	return e.width > 0 && e.height > 0
}

// IsPotentiallyFocusable reports membership in the focusable superset:
// links with an href, enabled form controls and buttons, explicit tab stops
// and content-editable regions. Negative tab indexes are excluded.
func (e *Element) IsPotentiallyFocusable() bool {
	if e.tabIndex != nil && *e.tabIndex < 0 {
		return false
	}
	switch e.kind {
	case KindLink:
		if _, ok := e.attrs["href"]; ok {
			return true
		}
	case KindButton, KindInput, KindSelect, KindTextArea:
		if !e.disabled {
			return true
		}
	}
	if e.tabIndex != nil {
		return !e.disabled
	}
	return e.editable
}

// IsTabbable reports whether e takes part in sequential Tab navigation.
func (e *Element) IsTabbable() bool {
	return e.IsPotentiallyFocusable() && e.Rendered()
}

// canReceiveFocus covers programmatic focus, which also accepts elements
// with a negative tab index.
func (e *Element) canReceiveFocus() bool {
	if !e.Rendered() || e.disabled {
		return false
	}
	return e.IsPotentiallyFocusable() || e.tabIndex != nil
}

// IsActivationTarget reports whether Enter/Space natively activate e.
func (e *Element) IsActivationTarget() bool {
	return e.kind == KindButton || e.kind == KindLink
}

// Click runs the native activation handler unless the element is disabled.
func (e *Element) Click() bool {
	if e.disabled || e.onClick == nil {
		return false
	}
	e.onClick(e)
	return true
}

// String returns a short selector-like description for logs.
func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	if e.id != "" {
		return string(e.kind) + "#" + e.id
	}
	return string(e.kind)
}
