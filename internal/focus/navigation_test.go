package focus

import (
	"fmt"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/focuskit/internal/dom"
	apperrors "github.com/alexisbeaulieu97/focuskit/pkg/errors"
)

func newMenuDocument(items int) (*dom.Document, *dom.Element) {
	doc := dom.NewDocument()
	menu := dom.Container("menu")
	for i := range items {
		menu.AppendChild(dom.Button(fmt.Sprintf("item%d", i), fmt.Sprintf("Item %d", i)))
	}
	doc.Root().AppendChild(menu)
	doc.Root().AppendChild(dom.Input("search"))
	return doc, menu
}

func mustNavigator(t *testing.T, doc *dom.Document, container *dom.Element, opts NavOptions) *Navigator {
	t.Helper()
	nav, err := NewNavigator(doc, nil, container, opts, nil)
	require.NoError(t, err)
	return nav
}

func TestNavigatorLoopingMenu(t *testing.T) {
	t.Parallel()

	doc, menu := newMenuDocument(4)
	var changes []int
	var activated []string
	nav := mustNavigator(t, doc, menu, NavOptions{
		Orientation:   Vertical,
		Loop:          true,
		OnFocusChange: func(i int, _ *dom.Element) { changes = append(changes, i) },
		OnActivate: func(i int, el *dom.Element) {
			activated = append(activated, fmt.Sprintf("%d:%s", i, el.ID()))
		},
	})
	nav.Attach()
	defer nav.Detach()

	nav.SetFocusedIndex(0)
	require.Equal(t, "item0", activeID(doc))

	ev := press(doc, dom.KeyUp)
	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, 3, nav.FocusedIndex())
	assert.Equal(t, "item3", activeID(doc))

	press(doc, dom.KeyDown)
	assert.Equal(t, 0, nav.FocusedIndex())
	press(doc, dom.KeyEnd)
	assert.Equal(t, 3, nav.FocusedIndex())
	press(doc, dom.KeyHome)
	assert.Equal(t, 0, nav.FocusedIndex())

	nav.SetFocusedIndex(2)
	press(doc, dom.KeyEnter)
	assert.Equal(t, []string{"2:item2"}, activated)
	assert.Equal(t, []int{0, 3, 0, 3, 0, 2}, changes)
}

func TestNavigatorClampsWithoutLoop(t *testing.T) {
	t.Parallel()

	doc, menu := newMenuDocument(3)
	nav := mustNavigator(t, doc, menu, NavOptions{Orientation: Horizontal})
	nav.Attach()
	defer nav.Detach()

	nav.FocusLast()
	ev := press(doc, dom.KeyRight)
	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, 2, nav.FocusedIndex())

	nav.FocusFirst()
	press(doc, dom.KeyLeft)
	assert.Equal(t, 0, nav.FocusedIndex())
}

func TestNavigatorRoundTrip(t *testing.T) {
	t.Parallel()

	for _, loop := range []bool{true, false} {
		t.Run(fmt.Sprintf("loop=%t", loop), func(t *testing.T) {
			t.Parallel()

			doc, menu := newMenuDocument(5)
			nav := mustNavigator(t, doc, menu, NavOptions{Loop: loop})
			// Without looping the boundaries clamp, so only interior
			// indexes round-trip.
			first, last := 1, 3
			if loop {
				first, last = 0, 4
			}
			for start := first; start <= last; start++ {
				nav.SetFocusedIndex(start)
				nav.FocusNext()
				nav.FocusPrevious()
				assert.Equal(t, start, nav.FocusedIndex())

				nav.FocusPrevious()
				nav.FocusNext()
				assert.Equal(t, start, nav.FocusedIndex())
			}
		})
	}
}

func TestNavigatorSetFocusedIndexClamps(t *testing.T) {
	t.Parallel()

	doc, menu := newMenuDocument(3)
	nav := mustNavigator(t, doc, menu, NavOptions{})

	nav.SetFocusedIndex(99)
	assert.Equal(t, 2, nav.FocusedIndex())
	assert.Equal(t, "item2", activeID(doc))

	nav.SetFocusedIndex(-5)
	assert.Equal(t, 0, nav.FocusedIndex())
}

func TestNavigatorGrid(t *testing.T) {
	t.Parallel()

	// 3 columns, 8 items:
	//   0 1 2
	//   3 4 5
	//   6 7
	tests := []struct {
		name  string
		loop  bool
		start int
		key   string
		want  int
	}{
		{name: "down one row", start: 1, key: dom.KeyDown, want: 4},
		{name: "up one row", start: 4, key: dom.KeyUp, want: 1},
		{name: "right steps by one", start: 2, key: dom.KeyRight, want: 3},
		{name: "left steps by one", start: 3, key: dom.KeyLeft, want: 2},
		{name: "down at bottom stays", start: 7, key: dom.KeyDown, want: 7},
		{name: "down into short row stays", start: 5, key: dom.KeyDown, want: 5},
		{name: "up at top stays", start: 1, key: dom.KeyUp, want: 1},
		{name: "down at bottom wraps to column top", loop: true, start: 7, key: dom.KeyDown, want: 1},
		{name: "down past short row wraps", loop: true, start: 5, key: dom.KeyDown, want: 2},
		{name: "up at top wraps to column bottom", loop: true, start: 1, key: dom.KeyUp, want: 7},
		{name: "up at top wraps above short row", loop: true, start: 2, key: dom.KeyUp, want: 5},
		{name: "right at end wraps", loop: true, start: 7, key: dom.KeyRight, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, menu := newMenuDocument(8)
			nav := mustNavigator(t, doc, menu, NavOptions{Orientation: Both, Columns: 3, Loop: tt.loop})
			nav.SetFocusedIndex(tt.start)

			ev := dom.NewKeyEvent(tt.key)
			assert.True(t, nav.HandleKey(ev))
			assert.True(t, ev.DefaultPrevented())
			assert.Equal(t, tt.want, nav.FocusedIndex())
			assert.Equal(t, fmt.Sprintf("item%d", tt.want), activeID(doc))
		})
	}
}

func TestNavigatorGridRowRoundTrip(t *testing.T) {
	t.Parallel()

	doc, menu := newMenuDocument(9)
	nav := mustNavigator(t, doc, menu, NavOptions{Orientation: Both, Columns: 3})
	nav.Attach()
	defer nav.Detach()

	nav.SetFocusedIndex(1)
	press(doc, dom.KeyDown)
	assert.Equal(t, 4, nav.FocusedIndex())
	press(doc, dom.KeyUp)
	assert.Equal(t, 1, nav.FocusedIndex())
}

func TestNavigatorRejectsGridWithoutColumns(t *testing.T) {
	t.Parallel()

	doc, menu := newMenuDocument(3)
	for _, cols := range []int{0, -2} {
		nav, err := NewNavigator(doc, nil, menu, NavOptions{Orientation: Both, Columns: cols}, nil)
		require.Error(t, err)
		assert.Nil(t, nav)

		var misconfig *apperrors.MisconfigurationError
		require.ErrorAs(t, err, &misconfig)
		assert.Equal(t, "navigator", misconfig.Component)
		assert.Equal(t, "columns", misconfig.Option)
	}

	_, err := NewNavigator(doc, nil, menu, NavOptions{Orientation: "diagonal"}, nil)
	var misconfig *apperrors.MisconfigurationError
	require.ErrorAs(t, err, &misconfig)
	assert.Equal(t, "orientation", misconfig.Option)
}

func TestNavigatorIgnoresKeysUntilSeeded(t *testing.T) {
	t.Parallel()

	doc, menu := newMenuDocument(3)
	nav := mustNavigator(t, doc, menu, NavOptions{})
	nav.Attach()
	defer nav.Detach()

	ev := press(doc, dom.KeyDown)
	assert.False(t, ev.DefaultPrevented())
	assert.Equal(t, -1, nav.FocusedIndex())
	assert.Nil(t, doc.ActiveElement())

	nav.SetFocusedIndex(0)
	nav.Reset()
	assert.False(t, press(doc, dom.KeyDown).DefaultPrevented())
}

func TestNavigatorDisabled(t *testing.T) {
	t.Parallel()

	doc, menu := newMenuDocument(3)
	nav := mustNavigator(t, doc, menu, NavOptions{})
	nav.Attach()
	defer nav.Detach()
	nav.SetFocusedIndex(0)

	nav.SetEnabled(false)
	assert.False(t, nav.Enabled())
	ev := press(doc, dom.KeyDown)
	assert.False(t, ev.DefaultPrevented())
	assert.Equal(t, 0, nav.FocusedIndex())

	nav.SetEnabled(true)
	press(doc, dom.KeyDown)
	assert.Equal(t, 1, nav.FocusedIndex())
}

func TestNavigatorSkipsConsumedEvents(t *testing.T) {
	t.Parallel()

	doc, menu := newMenuDocument(3)
	nav := mustNavigator(t, doc, menu, NavOptions{})
	nav.SetFocusedIndex(0)

	ev := dom.NewKeyEvent(dom.KeyDown)
	ev.PreventDefault()
	assert.False(t, nav.HandleKey(ev))
	assert.Equal(t, 0, nav.FocusedIndex())
	assert.False(t, nav.HandleKey(nil))
}

func TestNavigatorLeavesUnrelatedKeysAlone(t *testing.T) {
	t.Parallel()

	doc, menu := newMenuDocument(3)
	nav := mustNavigator(t, doc, menu, NavOptions{Orientation: Vertical})
	nav.SetFocusedIndex(1)

	for _, k := range []string{dom.KeyLeft, dom.KeyRight, dom.KeyTab, "a", dom.KeyEscape} {
		ev := dom.NewKeyEvent(k)
		assert.False(t, nav.HandleKey(ev), k)
		assert.False(t, ev.DefaultPrevented(), k)
	}
	assert.Equal(t, 1, nav.FocusedIndex())
}

func TestNavigatorActivate(t *testing.T) {
	t.Parallel()

	doc := dom.NewDocument()
	clicks := map[string]int{}
	onClick := func(el *dom.Element) { clicks[el.ID()]++ }
	list := dom.Container("list",
		dom.Button("save", "Save").OnClick(onClick),
		dom.Link("docs", "Docs", "/docs").OnClick(onClick),
		dom.Input("name").OnClick(onClick),
	)
	doc.Root().AppendChild(list)

	var activated []int
	nav := mustNavigator(t, doc, list, NavOptions{
		OnActivate: func(i int, _ *dom.Element) { activated = append(activated, i) },
	})
	nav.Attach()
	defer nav.Detach()

	nav.SetFocusedIndex(0)
	assert.True(t, press(doc, dom.KeyEnter).DefaultPrevented())
	press(doc, dom.KeySpace)

	nav.SetFocusedIndex(1)
	press(doc, dom.KeySpace)

	nav.SetFocusedIndex(2)
	press(doc, dom.KeyEnter)

	assert.Equal(t, []int{0, 0, 1, 2}, activated)
	assert.Equal(t, map[string]int{"save": 2, "docs": 1}, clicks, "inputs have no native activation")
}

func TestNavigatorEmptyContainer(t *testing.T) {
	t.Parallel()

	doc := dom.NewDocument()
	empty := dom.Container("empty")
	doc.Root().AppendChild(empty)

	calls := 0
	nav := mustNavigator(t, doc, empty, NavOptions{OnFocusChange: func(int, *dom.Element) { calls++ }})
	nav.SetFocusedIndex(0)
	nav.FocusNext()
	nav.FocusLast()
	nav.Activate()

	assert.Equal(t, -1, nav.FocusedIndex())
	assert.Zero(t, calls)
	assert.False(t, nav.HandleKey(dom.NewKeyEvent(dom.KeyDown)))
}

func TestNavigatorNilContainer(t *testing.T) {
	t.Parallel()

	doc := dom.NewDocument()
	nav := mustNavigator(t, doc, nil, NavOptions{})
	nav.Attach()
	nav.FocusFirst()
	assert.False(t, press(doc, dom.KeyDown).DefaultPrevented())
	nav.Detach()
	assert.Zero(t, doc.ListenerCount())
}

func TestNavigatorItemsChangeWhileAttached(t *testing.T) {
	t.Parallel()

	doc, menu := newMenuDocument(3)
	nav := mustNavigator(t, doc, menu, NavOptions{Loop: true})
	nav.Attach()
	defer nav.Detach()

	nav.SetFocusedIndex(2)
	menu.AppendChild(dom.Button("item3", "Item 3"))
	press(doc, dom.KeyDown)
	assert.Equal(t, "item3", activeID(doc))

	doc.GetElementByID("item1").SetDisabled(true)
	nav.SetFocusedIndex(0)
	press(doc, dom.KeyDown)
	assert.Equal(t, "item2", activeID(doc))
}

func TestNavigatorSyncFromActive(t *testing.T) {
	t.Parallel()

	doc, menu := newMenuDocument(3)
	var changes []int
	nav := mustNavigator(t, doc, menu, NavOptions{
		OnFocusChange: func(i int, _ *dom.Element) { changes = append(changes, i) },
	})

	require.True(t, doc.Focus(doc.GetElementByID("item2")))
	assert.True(t, nav.SyncFromActive())
	assert.Equal(t, 2, nav.FocusedIndex())
	assert.False(t, nav.SyncFromActive())

	require.True(t, doc.Focus(doc.GetElementByID("search")))
	assert.False(t, nav.SyncFromActive())
	assert.Equal(t, 2, nav.FocusedIndex())
	assert.Equal(t, []int{2}, changes)
}

func TestNavigatorFocusWithin(t *testing.T) {
	t.Parallel()

	doc, menu := newMenuDocument(3)
	nav := mustNavigator(t, doc, menu, NavOptions{FocusWithin: true})
	nav.Attach()
	defer nav.Detach()

	nav.SetFocusedIndex(0)
	require.True(t, doc.Focus(doc.GetElementByID("search")))
	assert.False(t, press(doc, dom.KeyDown).DefaultPrevented())
	assert.Equal(t, "search", activeID(doc))

	require.True(t, doc.Focus(doc.GetElementByID("item0")))
	assert.True(t, press(doc, dom.KeyDown).DefaultPrevented())
	assert.Equal(t, "item1", activeID(doc))
}

func TestNavigatorCustomKeyMap(t *testing.T) {
	t.Parallel()

	doc, menu := newMenuDocument(3)
	km := DefaultNavKeyMap()
	km.Down = key.NewBinding(key.WithKeys("down", "j"))
	km.Up = key.NewBinding(key.WithKeys("up", "k"))
	nav := mustNavigator(t, doc, menu, NavOptions{KeyMap: km})
	nav.SetFocusedIndex(0)

	assert.True(t, nav.HandleKey(dom.NewKeyEvent("j")))
	assert.Equal(t, 1, nav.FocusedIndex())
	assert.True(t, nav.HandleKey(dom.NewKeyEvent("k")))
	assert.Equal(t, 0, nav.FocusedIndex())
}

func TestNavigatorAttachDetachPairing(t *testing.T) {
	t.Parallel()

	doc, menu := newMenuDocument(2)
	nav := mustNavigator(t, doc, menu, NavOptions{})

	nav.Attach()
	nav.Attach()
	assert.Equal(t, 1, doc.ListenerCount())
	assert.True(t, nav.Attached())

	nav.Detach()
	nav.Detach()
	assert.Zero(t, doc.ListenerCount())
	assert.False(t, nav.Attached())
}

func TestNavigatorUsesCustomProvider(t *testing.T) {
	t.Parallel()

	doc, menu := newMenuDocument(4)
	evens := ProviderFunc(func(c *dom.Element) []*dom.Element {
		return []*dom.Element{c.Query("#item0"), c.Query("#item2")}
	})
	nav, err := NewNavigator(doc, evens, menu, NavOptions{Loop: true}, nil)
	require.NoError(t, err)

	nav.SetFocusedIndex(0)
	nav.FocusNext()
	assert.Equal(t, "item2", activeID(doc))
	nav.FocusNext()
	assert.Equal(t, "item0", activeID(doc))
}

func TestParseOrientation(t *testing.T) {
	t.Parallel()

	tests := map[string]Orientation{
		"":           Vertical,
		"vertical":   Vertical,
		"Horizontal": Horizontal,
		" both ":     Both,
		"grid":       Both,
	}
	for in, want := range tests {
		got, err := ParseOrientation(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseOrientation("diagonal")
	assert.Error(t, err)
}

func TestNavKeyMapForOrientation(t *testing.T) {
	t.Parallel()

	km := DefaultNavKeyMap()
	vertical := km.ForOrientation(Vertical)
	assert.False(t, vertical.Left.Enabled())
	assert.True(t, vertical.Down.Enabled())
	assert.True(t, km.Left.Enabled(), "original is untouched")

	horizontal := km.ForOrientation(Horizontal)
	assert.False(t, horizontal.Up.Enabled())
	assert.True(t, horizontal.Right.Enabled())

	grid := km.ForOrientation(Both)
	assert.Len(t, grid.ShortHelp(), 5)
	for _, b := range grid.ShortHelp() {
		assert.True(t, b.Enabled())
	}
}
