package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/focuskit/internal/dom"
)

var (
	itemStyle    = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("252"))
	focusedStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).
			Foreground(lipgloss.Color("212")).Background(lipgloss.Color("237"))
	dangerStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("196"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
)

// GroupEntry is one rendered control of a group.
type GroupEntry struct {
	ID      string
	Label   string
	Focused bool
	// TabStop marks the element reachable with Tab.
	TabStop bool
	Danger  bool
}

// Group renders the buttons of a container. Columns of 0 lays them out on a
// single row, 1 as a list and anything larger as a grid.
type Group struct {
	entries []GroupEntry
	columns int
}

// NewGroup snapshots the rendered buttons of container.
func NewGroup(container, active *dom.Element, columns int) Group {
	var entries []GroupEntry
	if container != nil {
		for _, el := range container.QueryAll("button") {
			if !el.Rendered() {
				continue
			}
			entries = append(entries, GroupEntry{
				ID:      el.ID(),
				Label:   el.Text(),
				Focused: el == active,
				TabStop: el.IsTabbable(),
				Danger:  el.HasClass("danger"),
			})
		}
	}
	return Group{entries: entries, columns: columns}
}

// Entries returns the group's controls in document order.
func (g Group) Entries() []GroupEntry {
	clone := make([]GroupEntry, len(g.entries))
	copy(clone, g.entries)
	return clone
}

// View renders the group.
func (g Group) View() string {
	if len(g.entries) == 0 {
		return mutedStyle.Render("(empty)")
	}
	cols := g.columns
	if cols <= 0 {
		cols = len(g.entries)
	}

	var rows []string
	for start := 0; start < len(g.entries); start += cols {
		end := min(start+cols, len(g.entries))
		cells := make([]string, 0, end-start)
		for _, e := range g.entries[start:end] {
			cells = append(cells, renderEntry(e))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func renderEntry(e GroupEntry) string {
	label := e.Label
	if e.Focused {
		label = "▸ " + label
	} else {
		label = "  " + label
	}
	switch {
	case e.Focused:
		return focusedStyle.Render(label)
	case e.Danger:
		return dangerStyle.Render(label)
	default:
		return itemStyle.Render(label)
	}
}
