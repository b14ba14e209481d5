package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/alexisbeaulieu97/focuskit/internal/announce"
	"github.com/alexisbeaulieu97/focuskit/internal/dom"
	"github.com/alexisbeaulieu97/focuskit/internal/focus"
	"github.com/alexisbeaulieu97/focuskit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/focuskit/internal/ports"
)

// PaletteColumns is the width of the colour grid.
const PaletteColumns = 3

var (
	defaultFiles   = []string{"notes.txt", "todo.md", "draft.go", "readme.md"}
	paletteColours = []string{"red", "orange", "yellow", "green", "teal", "blue", "indigo", "violet"}
)

// Options configures the playground.
type Options struct {
	Trap       focus.TrapOptions
	Navigation focus.NavOptions
	Announcer  announce.Options
	Logger     ports.Logger
	Files      []string
}

// DefaultOptions mirrors config.Default. The announcer scheduler is left
// nil so NewModel can route timers through the program.
func DefaultOptions() Options {
	ann := announce.DefaultOptions()
	ann.Scheduler = nil
	return Options{
		Trap:       focus.DefaultTrapOptions(),
		Navigation: focus.NavOptions{Orientation: focus.Vertical, Loop: true},
		Announcer:  ann,
	}
}

// Playground is the document behind the demo: a toolbar, a file list, a
// colour grid and two dialogs, each wired to the focus controllers.
type Playground struct {
	doc       *dom.Document
	logger    ports.Logger
	announcer *announce.Announcer
	trapOpts  focus.TrapOptions

	toolbar *dom.Element
	files   *dom.Element
	palette *dom.Element
	confirm *dom.Element
	info    *dom.Element

	toolbarNav *focus.Navigator
	filesNav   *focus.Navigator
	paletteNav *focus.Navigator
	confirmNav *focus.Navigator
	infoNav    *focus.Navigator
	navs       []*focus.Navigator

	confirmTrap *focus.Trap
	infoTrap    *focus.Trap
	stack       focus.TrapStack

	pending *dom.Element
	colour  string
	created int
}

// rovingProvider lists the enabled, rendered buttons of a group regardless
// of tab index, so items parked at tabindex -1 stay navigable.
var rovingProvider = focus.ProviderFunc(func(container *dom.Element) []*dom.Element {
	var out []*dom.Element
	for _, el := range container.QueryAll("button") {
		if el.Rendered() && !el.Disabled() {
			out = append(out, el)
		}
	}
	return out
})

// NewPlayground builds the document and attaches every navigator.
func NewPlayground(opts Options) (*Playground, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	files := opts.Files
	if files == nil {
		files = defaultFiles
	}

	p := &Playground{
		doc:      dom.NewDocument(),
		logger:   logger.With("component", "playground"),
		trapOpts: opts.Trap,
	}
	p.build(files)
	p.announcer = announce.New(p.doc, opts.Announcer, logger)
	p.announcer.Region(announce.Polite)
	p.announcer.Region(announce.Assertive)

	if err := p.attach(opts.Navigation, logger); err != nil {
		p.Close()
		return nil, err
	}
	p.confirmTrap = focus.NewTrap(p.doc, nil, logger)
	p.infoTrap = focus.NewTrap(p.doc, nil, logger)

	p.paletteNav.SetFocusedIndex(0)
	p.filesNav.SetFocusedIndex(0)
	p.toolbarNav.SetFocusedIndex(0)
	return p, nil
}

func (p *Playground) build(files []string) {
	p.toolbar = dom.Container("toolbar",
		dom.Button("new", "New file").OnClick(func(*dom.Element) { p.newFile() }),
		dom.Button("sort", "Sort").OnClick(func(*dom.Element) { p.sortFiles() }),
		dom.Button("quiet", "Clear").OnClick(func(*dom.Element) { p.announcer.Clear() }),
		dom.Button("about", "About").OnClick(func(*dom.Element) { p.openInfo() }),
	).WithAttr("role", "toolbar")

	p.files = dom.Container("files").WithAttr("role", "listbox")
	for _, name := range files {
		p.files.AppendChild(fileItem(name))
	}

	p.palette = dom.Container("palette").WithAttr("role", "grid")
	for _, c := range paletteColours {
		p.palette.AppendChild(dom.Button("colour-"+c, c).WithClass("swatch"))
	}

	p.confirm = dom.Container("confirm",
		dom.New(dom.KindText).WithID("confirm-title"),
		dom.Button("cancel", "Cancel").WithClass("default").OnClick(func(*dom.Element) {
			p.closeConfirm("Deletion cancelled")
		}),
		dom.Button("details", "Details").OnClick(func(*dom.Element) { p.openInfo() }),
		dom.Button("delete", "Delete").WithClass("danger").OnClick(func(*dom.Element) { p.confirmDelete() }),
	).WithAttr("role", "dialog").WithVisibility(dom.Hidden)

	p.info = dom.Container("info",
		dom.New(dom.KindText).WithID("info-text").
			WithText("Tab moves between groups, arrows move inside them."),
		dom.Button("close", "Close").WithClass("default").OnClick(func(*dom.Element) { p.closeInfo() }),
	).WithAttr("role", "dialog").WithVisibility(dom.Hidden)

	for _, el := range []*dom.Element{p.toolbar, p.files, p.palette, p.confirm, p.info} {
		p.doc.Root().AppendChild(el)
	}
}

func fileItem(name string) *dom.Element {
	return dom.Button("file-"+name, name).WithClass("file")
}

func (p *Playground) attach(nav focus.NavOptions, logger ports.Logger) error {
	roving := func(container *dom.Element) func(int, *dom.Element) {
		return func(_ int, el *dom.Element) { rove(container, el) }
	}

	toolbarOpts := nav
	toolbarOpts.Orientation = focus.Horizontal
	toolbarOpts.Columns = 0
	toolbarOpts.FocusWithin = true
	toolbarOpts.OnFocusChange = roving(p.toolbar)
	toolbarOpts.OnActivate = nil

	filesOpts := nav
	filesOpts.FocusWithin = true
	filesOpts.OnFocusChange = roving(p.files)
	filesOpts.OnActivate = func(_ int, el *dom.Element) { p.openConfirm(el) }

	paletteOpts := nav
	paletteOpts.Orientation = focus.Both
	paletteOpts.Columns = PaletteColumns
	paletteOpts.FocusWithin = true
	paletteOpts.OnFocusChange = roving(p.palette)
	paletteOpts.OnActivate = func(_ int, el *dom.Element) { p.pickColour(el) }

	dialogOpts := focus.NavOptions{Orientation: focus.Horizontal, Loop: true, KeyMap: nav.KeyMap, FocusWithin: true}

	var err error
	if p.toolbarNav, err = focus.NewNavigator(p.doc, rovingProvider, p.toolbar, toolbarOpts, logger); err != nil {
		return err
	}
	if p.filesNav, err = focus.NewNavigator(p.doc, rovingProvider, p.files, filesOpts, logger); err != nil {
		return err
	}
	if p.paletteNav, err = focus.NewNavigator(p.doc, rovingProvider, p.palette, paletteOpts, logger); err != nil {
		return err
	}
	if p.confirmNav, err = focus.NewNavigator(p.doc, nil, p.confirm, dialogOpts, logger); err != nil {
		return err
	}
	if p.infoNav, err = focus.NewNavigator(p.doc, nil, p.info, dialogOpts, logger); err != nil {
		return err
	}

	p.navs = []*focus.Navigator{p.toolbarNav, p.filesNav, p.paletteNav, p.confirmNav, p.infoNav}
	for _, n := range p.navs {
		n.Attach()
	}
	return nil
}

// rove leaves active as the only tab stop of its group.
func rove(container, active *dom.Element) {
	for _, el := range container.QueryAll("button") {
		if el == active {
			el.WithTabIndex(0)
		} else {
			el.WithTabIndex(-1)
		}
	}
}

// HandleKey dispatches ev to the document and re-syncs every navigator with
// wherever focus ended up.
func (p *Playground) HandleKey(ev *dom.KeyEvent) bool {
	prevented := p.doc.Dispatch(ev)
	for _, n := range p.navs {
		n.SyncFromActive()
	}
	return prevented
}

// Document returns the playground document.
func (p *Playground) Document() *dom.Document { return p.doc }

// Announcer returns the playground's announcer.
func (p *Playground) Announcer() *announce.Announcer { return p.announcer }

// Toolbar returns the toolbar group.
func (p *Playground) Toolbar() *dom.Element { return p.toolbar }

// Files returns the file list group.
func (p *Playground) Files() *dom.Element { return p.files }

// Palette returns the colour grid.
func (p *Playground) Palette() *dom.Element { return p.palette }

// Confirm returns the delete confirmation dialog.
func (p *Playground) Confirm() *dom.Element { return p.confirm }

// Info returns the about dialog.
func (p *Playground) Info() *dom.Element { return p.info }

// Colour returns the last picked palette colour.
func (p *Playground) Colour() string { return p.colour }

// DialogDepth reports how many dialogs are stacked.
func (p *Playground) DialogDepth() int { return p.stack.Len() }

// KeyMap returns the bindings of the group holding focus.
func (p *Playground) KeyMap() focus.NavKeyMap {
	active := p.doc.ActiveElement()
	for _, n := range p.navs {
		for _, el := range n.Elements() {
			if el == active {
				return n.KeyMap()
			}
		}
	}
	return p.filesNav.KeyMap()
}

// Close detaches listeners, releases dialogs and disposes the announcer.
func (p *Playground) Close() {
	for _, n := range p.navs {
		n.Detach()
	}
	p.stack.Clear()
	p.announcer.Dispose()
}

func (p *Playground) newFile() {
	p.created++
	name := fmt.Sprintf("untitled-%d.txt", p.created)
	p.files.AppendChild(fileItem(name))
	p.reroveFiles()
	p.announcer.Announce("Created " + name)
}

func (p *Playground) sortFiles() {
	items := p.files.Children()
	slices.SortStableFunc(items, func(a, b *dom.Element) int {
		return strings.Compare(a.Text(), b.Text())
	})
	for _, el := range items {
		p.files.AppendChild(el)
	}
	p.reroveFiles()
	p.announcer.Announce("Files sorted")
}

// reroveFiles keeps exactly one tab stop in the file list after it changed.
func (p *Playground) reroveFiles() {
	els := p.filesNav.Elements()
	if len(els) == 0 {
		return
	}
	i := p.filesNav.FocusedIndex()
	if i < 0 || i >= len(els) {
		i = 0
	}
	rove(p.files, els[i])
}

func (p *Playground) pickColour(el *dom.Element) {
	p.colour = el.Text()
	p.announcer.Announce(fmt.Sprintf("Colour %s selected", p.colour))
}

func (p *Playground) setBackgroundEnabled(enabled bool) {
	p.toolbarNav.SetEnabled(enabled)
	p.filesNav.SetEnabled(enabled)
	p.paletteNav.SetEnabled(enabled)
}

func (p *Playground) dialogOptions(onEscape func()) focus.TrapOptions {
	opts := p.trapOpts
	if opts.InitialFocus == "" {
		opts.InitialFocus = ".default"
	}
	opts.RestoreFocus = nil
	opts.OnDeactivate = onEscape
	return opts
}

func (p *Playground) openConfirm(file *dom.Element) {
	if p.stack.Len() > 0 {
		return
	}
	p.pending = file
	if title := p.confirm.Query("#confirm-title"); title != nil {
		title.SetText(fmt.Sprintf("Delete %s?", file.Text()))
	}
	p.confirm.SetVisibility(dom.Visible)
	p.setBackgroundEnabled(false)
	p.stack.Push(p.confirmTrap, p.confirm, p.dialogOptions(func() { p.closeConfirm("Deletion cancelled") }))
	p.logger.Debug(context.Background(), "confirm dialog opened", "file", file.Text())
}

// closeConfirm hides the confirmation dialog. On the Escape path the trap
// has already been released by the time this runs.
func (p *Playground) closeConfirm(msg string) {
	if p.stack.Top() == p.confirmTrap {
		p.stack.Pop()
	}
	p.confirm.SetVisibility(dom.Hidden)
	p.confirmNav.Reset()
	p.pending = nil
	if p.stack.Len() == 0 {
		p.setBackgroundEnabled(true)
	}
	if msg != "" {
		p.announcer.Announce(msg)
	}
}

func (p *Playground) confirmDelete() {
	file := p.pending
	if file == nil {
		return
	}
	idx := slices.Index(p.filesNav.Elements(), file)
	p.closeConfirm("")
	file.Remove()

	if len(p.filesNav.Elements()) == 0 {
		p.filesNav.Reset()
		p.toolbarNav.FocusFirst()
	} else {
		p.filesNav.SetFocusedIndex(max(idx, 0))
	}
	p.announcer.AnnounceWith("Deleted "+file.Text(), announce.Assertive)
}

func (p *Playground) openInfo() {
	if p.stack.Top() == p.infoTrap {
		return
	}
	p.info.SetVisibility(dom.Visible)
	p.setBackgroundEnabled(false)
	p.stack.Push(p.infoTrap, p.info, p.dialogOptions(p.closeInfo))
}

func (p *Playground) closeInfo() {
	if p.stack.Top() == p.infoTrap {
		p.stack.Pop()
	}
	p.info.SetVisibility(dom.Hidden)
	p.infoNav.Reset()
	if p.stack.Len() == 0 {
		p.setBackgroundEnabled(true)
	}
}
