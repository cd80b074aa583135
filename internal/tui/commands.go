package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// confess submits text to the confessional. Statistics are read in the
// same command so the core only ever sees one caller at a time.
func (m Model) confess(text string) tea.Cmd {
	return func() tea.Msg {
		result := m.confessor.Submit(m.ctx, text)
		return confessionHeardMsg{
			result: result,
			stats:  m.confessor.Statistics(),
		}
	}
}

// absolve wipes the ledger.
func (m Model) absolve() tea.Cmd {
	return func() tea.Msg {
		err := m.confessor.Reset(m.ctx)
		return absolvedMsg{
			err:   err,
			stats: m.confessor.Statistics(),
		}
	}
}
