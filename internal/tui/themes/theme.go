package themes

import (
	"github.com/Veraticus/sarcastic-confessional/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Italic        lipgloss.Style
	Monk          lipgloss.Style
	Response      lipgloss.Style
	Karma         lipgloss.Style
	RoundedBox    lipgloss.Style
	BorderedBox   lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Accent        lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
}

func newTheme(primary, secondary, accent, robe, fg, sub, muted, border, success, warning, errColor, info string) Theme {
	return Theme{
		Primary:    lipgloss.Color(primary),
		Secondary:  lipgloss.Color(secondary),
		Accent:     lipgloss.Color(accent),
		Muted:      lipgloss.Color(muted),
		Border:     lipgloss.Color(border),
		Foreground: lipgloss.Color(fg),
		Error:      lipgloss.Color(errColor),
		Success:    lipgloss.Color(success),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(primary)).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(sub)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fg)),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(fg)),
		Italic: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(fg)),
		Monk: lipgloss.NewStyle().
			Foreground(lipgloss.Color(robe)),
		Response: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(secondary)),
		Karma: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(accent)),

		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(1, 2),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(0, 1),

		StatusSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color(success)).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(warning)).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(errColor)).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(info)).
			Bold(true),
	}
}

// Default is the default theme, candlelight on dark wood.
var Default = newTheme(
	"#e0af68", // primary
	"#c0caf5", // secondary
	"#ff9e64", // accent
	"#8b4513", // robe
	"#fafafa", // foreground
	"#a3a3a3", // subtitle
	"#737373", // muted
	"#404040", // border
	"#10b981", // success
	"#f59e0b", // warning
	"#ef4444", // error
	"#3b82f6", // info
)

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(
	"#cba6f7",
	"#f5c2e7",
	"#fab387",
	"#eba0ac",
	"#cdd6f4",
	"#a6adc8",
	"#6c7086",
	"#45475a",
	"#a6e3a1",
	"#f9e2af",
	"#f38ba8",
	"#89dceb",
)

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// GetCategoryIcon returns an icon for a category.
func GetCategoryIcon(c model.Category) string {
	switch c {
	case model.CategoryLies:
		return "🤥"
	case model.CategoryMoney:
		return "💸"
	case model.CategoryFood:
		return "🍕"
	case model.CategoryLaziness:
		return "🛋️"
	case model.CategoryEnvy:
		return "😒"
	case model.CategoryStandard:
		return "🕯️"
	default:
		return "🕯️"
	}
}
