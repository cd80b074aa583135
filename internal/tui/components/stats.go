// Package components contains the reusable bubbletea views of the TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/sarcastic-confessional/internal/cli"
	"github.com/Veraticus/sarcastic-confessional/internal/model"
	"github.com/Veraticus/sarcastic-confessional/internal/tui/themes"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const (
	maxBarWidth = 30
	labelWidth  = 14
)

// StatsPanelModel displays the sin statistics with one bar per category.
type StatsPanelModel struct {
	theme       themes.Theme
	progressBar progress.Model
	stats       model.Statistics
	width       int
	height      int
}

// NewStatsPanelModel creates a new stats panel.
func NewStatsPanelModel(theme themes.Theme) StatsPanelModel {
	prog := progress.New(progress.WithDefaultGradient())
	prog.ShowPercentage = false
	prog.Width = maxBarWidth

	return StatsPanelModel{
		theme:       theme,
		progressBar: prog,
		stats:       model.Statistics{Categories: []model.CategoryShare{}},
	}
}

// SetStatistics replaces the displayed snapshot.
func (m StatsPanelModel) SetStatistics(stats model.Statistics) StatsPanelModel {
	m.stats = stats
	return m
}

// Statistics returns the displayed snapshot.
func (m StatsPanelModel) Statistics() model.Statistics {
	return m.stats
}

// Resize sets the available area.
func (m StatsPanelModel) Resize(width, height int) StatsPanelModel {
	m.width = width
	m.height = height
	m.progressBar.Width = max(min(width-labelWidth-12, maxBarWidth), 5)
	return m
}

// View renders the stats panel.
func (m StatsPanelModel) View() string {
	title := m.theme.Title.Render("📊 Deine Sünden-Statistiken")

	if m.stats.HistoryCount == 0 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			m.theme.Subtitle.Render("Noch keine Beichten vorhanden!"),
		)
	}

	sections := []string{
		title,
		m.renderTotals(),
		"",
		m.renderCategories(),
	}

	if recent := m.stats.MostRecent; recent != nil {
		sections = append(sections,
			"",
			m.theme.Subtitle.Render("Letzte Beichte"),
			m.theme.Italic.Render(fmt.Sprintf("%q", cli.Truncate(recent.Text, cli.PreviewLength))),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m StatsPanelModel) renderTotals() string {
	return strings.Join([]string{
		"Gesamt Karma-Schulden: " + m.theme.Karma.Render(fmt.Sprint(m.stats.KarmaTotal)),
		fmt.Sprintf("Anzahl Beichten: %d", m.stats.HistoryCount),
		fmt.Sprintf("Durchschnitt pro Beichte: %d", m.stats.AveragePerEntry),
	}, "\n")
}

// renderCategories draws one progress bar per category that has entries.
func (m StatsPanelModel) renderCategories() string {
	label := lipgloss.NewStyle().Width(labelWidth)

	lines := make([]string, 0, len(m.stats.Categories))
	for _, share := range m.stats.Categories {
		name := themes.GetCategoryIcon(share.Category) + " " + share.Category.Title()
		bar := m.progressBar.ViewAs(share.Percent / 100)
		lines = append(lines, fmt.Sprintf("%s %s %dx (%.1f%%)",
			label.Render(name), bar, share.Count, share.Percent))
	}
	return strings.Join(lines, "\n")
}
