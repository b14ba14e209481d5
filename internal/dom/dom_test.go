package dom

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(els []*Element) []string {
	out := make([]string, 0, len(els))
	for _, el := range els {
		out = append(out, el.ID())
	}
	return out
}

func newTestDocument() *Document {
	doc := NewDocument()
	doc.Root().AppendChild(Container("toolbar",
		Button("new", "New"),
		Button("open", "Open"),
		Button("gone", "Gone").WithDisabled(true),
	))
	doc.Root().AppendChild(Container("form",
		Input("name"),
		New(KindText).WithID("hint").WithText("hint"),
		Link("help", "Help", "/help"),
		New(KindLink).WithID("anchor"),
	))
	return doc
}

func TestWalkVisitsInDocumentOrder(t *testing.T) {
	t.Parallel()

	doc := newTestDocument()
	got := ids(doc.Root().Descendants())
	want := []string{"toolbar", "new", "open", "gone", "form", "name", "hint", "help", "anchor"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("document order mismatch (-want +got):\n%s", diff)
	}
}

func TestTabbableFiltersSuperset(t *testing.T) {
	t.Parallel()

	doc := newTestDocument()
	doc.Root().AppendChild(New(KindText).WithID("stop").WithTabIndex(0))
	doc.Root().AppendChild(Button("skip", "Skip").WithTabIndex(-1))
	doc.Root().AppendChild(New(KindText).WithID("editor").WithContentEditable(true))
	doc.Root().AppendChild(Button("collapsed", "Collapsed").WithSize(0, 1))
	doc.Root().AppendChild(Container("hidden", Button("inside", "Inside")).WithVisibility(Hidden))

	got := ids(doc.Tabbable())
	want := []string{"new", "open", "name", "help", "stop", "editor"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tabbable mismatch (-want +got):\n%s", diff)
	}
}

func TestVisuallyHiddenStaysRendered(t *testing.T) {
	t.Parallel()

	el := New(KindStatus).WithVisibility(VisuallyHidden)
	require.True(t, el.Rendered())
	el.SetVisibility(Hidden)
	require.False(t, el.Rendered())
}

func TestFocusRequiresConnectedFocusableElement(t *testing.T) {
	t.Parallel()

	doc := newTestDocument()
	require.True(t, doc.Focus(doc.GetElementByID("open")))
	require.Equal(t, "open", doc.ActiveElement().ID())

	require.False(t, doc.Focus(Button("detached", "x")))
	require.False(t, doc.Focus(doc.GetElementByID("hint")))
	require.False(t, doc.Focus(doc.GetElementByID("gone")))
	require.False(t, doc.Focus(nil))
	require.Equal(t, "open", doc.ActiveElement().ID())

	other := NewDocument()
	foreign := Button("foreign", "x")
	other.Root().AppendChild(foreign)
	require.False(t, doc.Focus(foreign))
}

func TestFocusAcceptsNegativeTabIndexProgrammatically(t *testing.T) {
	t.Parallel()

	doc := NewDocument()
	item := New(KindText).WithID("item").WithTabIndex(-1)
	doc.Root().AppendChild(item)
	require.True(t, doc.Focus(item))
	require.Empty(t, doc.Tabbable())
}

func TestActiveElementClearsWhenRemoved(t *testing.T) {
	t.Parallel()

	doc := newTestDocument()
	open := doc.GetElementByID("open")
	require.True(t, doc.Focus(open))

	open.Remove()
	require.Nil(t, doc.ActiveElement())
	require.False(t, open.IsConnected())
}

func TestDispatchRunsListenersThenDefaultTab(t *testing.T) {
	t.Parallel()

	doc := newTestDocument()
	var seen []string
	sub := doc.AddKeyListener(func(ev *KeyEvent) { seen = append(seen, ev.Key()) })

	prevented := doc.Dispatch(NewKeyEvent(KeyTab))
	require.False(t, prevented)
	require.Equal(t, "new", doc.ActiveElement().ID())

	doc.Dispatch(NewKeyEvent(KeyShiftTab))
	require.Equal(t, "help", doc.ActiveElement().ID())
	require.Equal(t, []string{KeyTab, KeyShiftTab}, seen)

	sub.Close()
	sub.Close()
	require.Zero(t, doc.ListenerCount())
	require.True(t, sub.Closed())
}

func TestDefaultTabWrapsAround(t *testing.T) {
	t.Parallel()

	doc := newTestDocument()
	require.True(t, doc.Focus(doc.GetElementByID("help")))
	doc.Dispatch(NewKeyEvent(KeyTab))
	assert.Equal(t, "new", doc.ActiveElement().ID())
	doc.Dispatch(NewKeyEvent(KeyShiftTab))
	assert.Equal(t, "help", doc.ActiveElement().ID())
}

func TestPreventDefaultSuppressesNativeAction(t *testing.T) {
	t.Parallel()

	doc := newTestDocument()
	require.True(t, doc.Focus(doc.GetElementByID("new")))
	sub := doc.AddKeyListener(func(ev *KeyEvent) { ev.PreventDefault() })
	defer sub.Close()

	require.True(t, doc.Dispatch(NewKeyEvent(KeyTab)))
	require.Equal(t, "new", doc.ActiveElement().ID())
}

func TestListenerRemovedDuringDispatchIsSkipped(t *testing.T) {
	t.Parallel()

	doc := NewDocument()
	var second *Subscription
	calls := 0
	first := doc.AddKeyListener(func(*KeyEvent) { second.Close() })
	second = doc.AddKeyListener(func(*KeyEvent) { calls++ })
	defer first.Close()

	doc.Dispatch(NewKeyEvent(KeyDown))
	require.Zero(t, calls)
	require.Equal(t, 1, doc.ListenerCount())
}

func TestEnterClicksButtonsAndLinks(t *testing.T) {
	t.Parallel()

	doc := NewDocument()
	clicks := map[string]int{}
	record := func(el *Element) { clicks[el.ID()]++ }
	save := Button("save", "Save").OnClick(record)
	docs := Link("docs", "Docs", "/docs").OnClick(record)
	field := Input("field").OnClick(record)
	doc.Root().AppendChild(Container("panel", save, docs, field))

	doc.Focus(save)
	doc.Dispatch(NewKeyEvent(KeyEnter))
	doc.Dispatch(NewKeyEvent(KeySpace))
	doc.Focus(docs)
	doc.Dispatch(NewKeyEvent(KeyEnter))
	doc.Dispatch(NewKeyEvent(KeySpace))
	doc.Focus(field)
	doc.Dispatch(NewKeyEvent(KeyEnter))

	require.Equal(t, map[string]int{"save": 2, "docs": 1}, clicks)
}

func TestKeyFromTea(t *testing.T) {
	t.Parallel()

	tests := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, KeyTab},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, KeyShiftTab},
		{tea.KeyMsg{Type: tea.KeyUp}, KeyUp},
		{tea.KeyMsg{Type: tea.KeyDown}, KeyDown},
		{tea.KeyMsg{Type: tea.KeyHome}, KeyHome},
		{tea.KeyMsg{Type: tea.KeyEnd}, KeyEnd},
		{tea.KeyMsg{Type: tea.KeyEnter}, KeyEnter},
		{tea.KeyMsg{Type: tea.KeySpace}, KeySpace},
		{tea.KeyMsg{Type: tea.KeyEsc}, KeyEscape},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, KeyFromTea(tt.msg).Key())
	}
}

func TestAppendChildReparents(t *testing.T) {
	t.Parallel()

	a := Container("a")
	b := Container("b")
	child := Button("child", "x")
	a.AppendChild(child)
	b.AppendChild(child)

	require.Empty(t, a.Children())
	require.Same(t, b, child.Parent())
	require.True(t, b.Contains(child))
	require.False(t, a.Contains(child))
}
