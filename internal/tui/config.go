package tui

import (
	"context"

	"github.com/Veraticus/sarcastic-confessional/internal/model"
	"github.com/Veraticus/sarcastic-confessional/internal/tui/themes"
)

// Confessor is the part of the confessional the TUI drives.
type Confessor interface {
	Submit(ctx context.Context, text string) model.Result
	Reset(ctx context.Context) error
	Statistics() model.Statistics
}

// Config holds TUI configuration.
type Config struct {
	Theme     themes.Theme
	Width     int
	Height    int
	ShowStats bool
	ShowHelp  bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Width:     80,
		Height:    24,
		ShowStats: true,
		ShowHelp:  true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithStats controls whether the statistics panel is shown next to the
// confession box.
func WithStats(show bool) Option {
	return func(c *Config) {
		c.ShowStats = show
	}
}

// WithHelp controls the help footer.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}
