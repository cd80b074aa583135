package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/sarcastic-confessional/internal/karma"
	"github.com/Veraticus/sarcastic-confessional/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// PreviewLength is how many characters of a confession are shown in
// summaries.
const PreviewLength = 50

// Truncate shortens text to at most limit characters, adding an ellipsis
// when something was cut.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// FormatResult renders the monk's reaction to a submission.
func FormatResult(result model.Result) string {
	reply := ResponseStyle.Render(result.Response)

	var footer string
	if result.Accepted {
		footer = KarmaStyle.Render(fmt.Sprintf("+%d Karma-Schulden!", result.Karma)) +
			SubtleStyle.Render(fmt.Sprintf("  (%s)", result.Category.Title()))
	}

	parts := []string{MonkFace(result.Emotion), "", reply}
	if footer != "" {
		parts = append(parts, "", footer)
	}
	if result.Accepted && !result.Persisted {
		parts = append(parts, FormatWarning("Konnte nicht gespeichert werden"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// FormatBreakdown lists the components of a karma score.
func FormatBreakdown(b karma.Breakdown) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Basis (%s)\t%d\n", b.Category.Title(), b.Base)
	if b.LongConfession > 0 {
		fmt.Fprintf(w, "Lange Beichte\t+%d\n", b.LongConfession)
	}
	if b.PenaltyWord > 0 {
		fmt.Fprintf(w, "Schlimme Wörter\t+%d\n", b.PenaltyWord)
	}
	if b.Shouting > 0 {
		fmt.Fprintf(w, "Geschrei\t+%d\n", b.Shouting)
	}
	fmt.Fprintf(w, "Gesamt\t%d\n", b.Total())
	_ = w.Flush()

	return strings.TrimRight(sb.String(), "\n")
}

// FormatStatistics renders the statistics snapshot.
func FormatStatistics(stats model.Statistics) string {
	if stats.HistoryCount == 0 {
		return FormatInfo("Noch keine Beichten vorhanden!")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Gesamt Karma-Schulden: %s\n", KarmaStyle.Render(fmt.Sprint(stats.KarmaTotal)))
	fmt.Fprintf(&sb, "Anzahl Beichten: %d\n", stats.HistoryCount)
	fmt.Fprintf(&sb, "Durchschnitt pro Beichte: %d\n\n", stats.AveragePerEntry)

	sb.WriteString(TableHeaderStyle.Render("KATEGORIEN") + "\n")
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	for _, share := range stats.Categories {
		fmt.Fprintf(w, "• %s\t%dx\t(%.1f%%)\n", share.Category.Title(), share.Count, share.Percent)
	}
	_ = w.Flush()

	if stats.MostRecent != nil {
		fmt.Fprintf(&sb, "\n%s\n%q", TableHeaderStyle.Render("LETZTE BEICHTE"), Truncate(stats.MostRecent.Text, PreviewLength))
	}

	return RenderBox(ChartIcon+" Deine Sünden-Statistiken", strings.TrimRight(sb.String(), "\n"))
}

// FormatHistory renders confessions as a table, oldest first.
func FormatHistory(records []model.ConfessionRecord) string {
	if len(records) == 0 {
		return FormatInfo("Noch keine Beichten vorhanden!")
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		TableHeaderStyle.Render("#"),
		TableHeaderStyle.Render("Kategorie"),
		TableHeaderStyle.Render("Karma"),
		TableHeaderStyle.Render("Beichte"))
	for i, r := range records {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", i+1, r.Category.Title(), r.Karma, Truncate(r.Text, PreviewLength))
	}
	_ = w.Flush()

	return strings.TrimRight(sb.String(), "\n")
}
