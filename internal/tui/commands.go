package tui

import tea "github.com/charmbracelet/bubbletea"

// timerFiredMsg carries an expired announcer timer back to Update.
type timerFiredMsg struct {
	fn func()
}

// waitForTimer blocks until the scheduler hands over an expired timer or is
// closed.
func waitForTimer(s *teaScheduler) tea.Cmd {
	if s == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case fn := <-s.fired:
			return timerFiredMsg{fn: fn}
		case <-s.done:
			return nil
		}
	}
}
