package tui

import (
	"fmt"

	"github.com/Veraticus/sarcastic-confessional/internal/cli"
	"github.com/Veraticus/sarcastic-confessional/internal/model"
	"github.com/Veraticus/sarcastic-confessional/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

const appTitle = "Der Sarkastische Beichtstuhl"

// renderConfessionView renders the main screen: monk, last reply and the
// input line.
func (m Model) renderConfessionView() string {
	booth := m.renderBooth()

	if m.showSidePanel() {
		booth = lipgloss.JoinHorizontal(
			lipgloss.Top,
			booth,
			"  ",
			m.theme.RoundedBox.Render(m.statsPanel.View()),
		)
	}

	return m.frame(booth)
}

// renderBooth renders the confession box itself.
func (m Model) renderBooth() string {
	emotion := model.EmotionNeutral
	reply := m.theme.Subtitle.Render("Der Mönch wartet. Ungeduldig.")
	var karmaLine string

	if m.lastResult != nil {
		emotion = m.lastResult.Emotion
		reply = m.theme.Response.Render(m.lastResult.Response)
		if m.lastResult.Accepted {
			karmaLine = m.theme.Karma.Render(fmt.Sprintf("+%d Karma-Schulden!", m.lastResult.Karma)) +
				"  " + m.theme.Subtitle.Render(themes.GetCategoryIcon(m.lastResult.Category)+" "+m.lastResult.Category.Title())
		}
	}

	total := m.theme.Bold.Render(fmt.Sprintf("Karma-Schulden: %d", m.stats.KarmaTotal))

	parts := []string{
		cli.MonkFace(emotion),
		"",
		reply,
	}
	if karmaLine != "" {
		parts = append(parts, karmaLine)
	}
	parts = append(parts, "", m.input.View(), "", total)

	return m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderStatsView renders the full-screen statistics.
func (m Model) renderStatsView() string {
	return m.frame(m.theme.RoundedBox.Render(m.statsPanel.View()))
}

// renderHelpView renders the full key map.
func (m Model) renderHelpView() string {
	h := m.help
	h.ShowAll = true
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Subtitle.Render("Tastenkürzel"),
		"",
		h.View(m.keymap),
	)
	return m.frame(m.theme.RoundedBox.Render(content))
}

// renderConfirmView asks before wiping the ledger.
func (m Model) renderConfirmView() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		cli.MonkFace(model.EmotionShocked),
		"",
		m.theme.StatusWarning.Render("Alle Sünden vergeben und vergessen?"),
		m.theme.Subtitle.Render(fmt.Sprintf("%d Beichten, %d Karma-Schulden", m.stats.HistoryCount, m.stats.KarmaTotal)),
		"",
		m.theme.Normal.Render("[y] Ja, Absolution  [n] Nein"),
	)
	return m.frame(m.theme.RoundedBox.Render(content))
}

// frame adds the title, status line and help footer around content.
func (m Model) frame(content string) string {
	sections := []string{
		m.theme.Title.Render("🕯️ " + appTitle),
		content,
	}

	if status := m.renderStatus(); status != "" {
		sections = append(sections, status)
	}

	if m.config.ShowHelp && m.state != StateHelp {
		sections = append(sections, m.help.View(m.keymap))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStatus renders the one-line status message.
func (m Model) renderStatus() string {
	switch {
	case m.busy:
		return m.theme.StatusInfo.Render("Der Mönch denkt nach...")
	case m.status == "":
		return ""
	case m.statusErr:
		return m.theme.StatusError.Render("✗ " + m.status)
	default:
		return m.theme.StatusSuccess.Render(m.status)
	}
}
