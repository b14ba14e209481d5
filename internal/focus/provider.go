// Package focus confines and moves keyboard focus over a dom.Document.
//
// Two controllers live here. Trap keeps Tab-cycling inside a container while
// it is active and hands focus back when it is released. Navigator gives a
// container roving focus: one item at a time holds focus and the arrow keys,
// Home and End move it, Enter and Space activate it.
//
// Both controllers recompute the focusable set on every keystroke through a
// FocusableProvider, so content that appears or disappears while they are
// attached is picked up immediately. Neither controller returns errors while
// handling keys; every edge case is a logged no-op. The only error is a
// MisconfigurationError from NewNavigator.
package focus

import (
	"github.com/alexisbeaulieu97/focuskit/internal/dom"
)

// FocusableProvider lists the elements of container that can currently take
// focus, in document order.
type FocusableProvider interface {
	ListFocusable(container *dom.Element) []*dom.Element
}

// ProviderFunc adapts a plain function to FocusableProvider.
type ProviderFunc func(container *dom.Element) []*dom.Element

// ListFocusable calls f.
func (f ProviderFunc) ListFocusable(container *dom.Element) []*dom.Element {
	return f(container)
}

// DOMProvider queries the live element tree: potentially focusable
// descendants that are rendered with a non-zero box.
type DOMProvider struct{}

// ListFocusable implements FocusableProvider.
func (DOMProvider) ListFocusable(container *dom.Element) []*dom.Element {
	if container == nil {
		return nil
	}
	var out []*dom.Element
	for _, el := range container.Descendants() {
		if el.IsPotentiallyFocusable() && el.Rendered() {
			out = append(out, el)
		}
	}
	return out
}

// Surface is the part of the document the controllers drive. *dom.Document
// implements it.
type Surface interface {
	ActiveElement() *dom.Element
	Focus(el *dom.Element) bool
	AddKeyListener(fn dom.KeyListener) *dom.Subscription
}

var _ Surface = (*dom.Document)(nil)

func indexOf(set []*dom.Element, el *dom.Element) int {
	if el == nil {
		return -1
	}
	for i, candidate := range set {
		if candidate == el {
			return i
		}
	}
	return -1
}
