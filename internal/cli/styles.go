// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (electric blue).
	PrimaryColor = lipgloss.Color("#7aa2f7")
	// AccentColor highlights karma numbers.
	AccentColor = lipgloss.Color("#ff9e64") // Orange
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#9ece6a") // Green
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#e0af68") // Yellow
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#f7768e") // Red
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#73daca") // Teal
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#565f89") // Gray
	// RobeColor is used for the monk.
	RobeColor = lipgloss.Color("#8B4513")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// KarmaStyle formats karma amounts.
	KarmaStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor)

	// MonkStyle draws the monk.
	MonkStyle = lipgloss.NewStyle().
			Foreground(RobeColor)

	// ResponseStyle frames the monk's reply.
	ResponseStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#c0caf5"))

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3a3b5c")).
			Padding(1, 2)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(PrimaryColor)

	// PromptStyle is used for user prompts.
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	CandleIcon  = "🕯️"
	ChartIcon   = "📊"
	ScrollIcon  = "📜"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatTitle formats a title with the candle icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(CandleIcon + " " + title)
}

// FormatPrompt formats a prompt message.
func FormatPrompt(prompt string) string {
	return PromptStyle.Render(prompt + " → ")
}

// RenderBox renders content in a styled box.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	boxContent := lipgloss.JoinVertical(
		lipgloss.Left,
		boxTitle,
		content,
	)

	return BoxStyle.Render(boxContent)
}
