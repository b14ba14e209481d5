package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/focuskit/internal/dom"
)

// Update handles bubbletea messages. Keys the model does not own are
// dispatched into the playground document.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case timerFiredMsg:
		if msg.fn != nil {
			msg.fn()
		}
		return m, waitForTimer(m.scheduler)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if m.quitting {
			return m, nil
		}
		m.playground.HandleKey(dom.KeyFromTea(msg))
		return m, nil
	}
	return m, nil
}
