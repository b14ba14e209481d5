package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/focuskit/internal/dom"
	"github.com/alexisbeaulieu97/focuskit/internal/tui/components"
)

// View renders the playground.
func (m Model) View() string {
	if m.quitting || m.playground == nil {
		return ""
	}
	p := m.playground
	active := p.Document().ActiveElement()

	var b strings.Builder
	b.WriteString(titleStyle.Render("focuskit playground"))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Toolbar"))
	b.WriteString("\n")
	b.WriteString(components.NewGroup(p.Toolbar(), active, 0).View())
	b.WriteString("\n")

	files := sectionStyle.Render("Files") + "\n" + components.NewGroup(p.Files(), active, 1).View()
	paletteTitle := "Palette"
	if c := p.Colour(); c != "" {
		paletteTitle = fmt.Sprintf("Palette (%s)", c)
	}
	palette := sectionStyle.Render(paletteTitle) + "\n" +
		components.NewGroup(p.Palette(), active, PaletteColumns).View()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, files, "    ", palette))
	b.WriteString("\n")

	if d := renderDialog(p.Confirm(), active); d != "" {
		b.WriteString(d)
		b.WriteString("\n")
	}
	if d := renderDialog(p.Info(), active); d != "" {
		b.WriteString(d)
		b.WriteString("\n")
	}

	output := sectionStyle.Render("Assistive output") + "\n" +
		components.LiveRegions(p.Announcer()) + "\n\n" +
		components.NewFeed(m.History(), historyLimit).View()
	b.WriteString(outputStyle.Render(output))
	b.WriteString("\n")

	b.WriteString(footerStyle.Render(m.help.View(m.helpKeys())))
	return b.String()
}

func renderDialog(dialog, active *dom.Element) string {
	if dialog == nil || !dialog.Rendered() {
		return ""
	}
	var title string
	for _, el := range dialog.Children() {
		if el.Kind() == dom.KindText {
			title = el.Text()
			break
		}
	}
	body := dialogTitleStyle.Render(title) + "\n" + components.NewGroup(dialog, active, 0).View()
	return dialogStyle.Render(body)
}
