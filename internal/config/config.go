package config

import (
	"fmt"

	"github.com/Veraticus/sarcastic-confessional/internal/common"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyDataPath      = "data.path"
	KeySeed          = "responses.seed"
	KeyLogLevel      = "logging.level"
	KeyLogFormat     = "logging.format"
	KeyTUIShowStats  = "tui.show_stats"
	KeyTUITheme      = "tui.theme"
	DefaultDataPath  = "$HOME/.local/share/confess/beichtstuhl_daten.json"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
	DefaultTUITheme  = "default"
)

// Config holds the settings the confessional runs with.
type Config struct {
	DataPath     string
	LogLevel     string
	LogFormat    string
	Seed         uint64
	TUITheme     string
	TUIShowStats bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDataPath, DefaultDataPath)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
	v.SetDefault(KeyTUIShowStats, true)
	v.SetDefault(KeyTUITheme, DefaultTUITheme)
}

// Load reads the configuration from v, applying defaults for unset keys.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		DataPath:     ExpandPath(v.GetString(KeyDataPath)),
		LogLevel:     v.GetString(KeyLogLevel),
		LogFormat:    v.GetString(KeyLogFormat),
		Seed:         v.GetUint64(KeySeed),
		TUITheme:     v.GetString(KeyTUITheme),
		TUIShowStats: v.GetBool(KeyTUIShowStats),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyDataPath)
	}
	if _, err := common.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
