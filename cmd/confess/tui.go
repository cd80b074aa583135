package main

import (
	"github.com/Veraticus/sarcastic-confessional/internal/config"
	"github.com/Veraticus/sarcastic-confessional/internal/tui"
	"github.com/Veraticus/sarcastic-confessional/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func tuiCmd(v *viper.Viper) *cobra.Command {
	var theme string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive confessional (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, v)
		},
	}

	cmd.Flags().StringVar(&theme, "theme", config.DefaultTUITheme, "Color theme (default, catppuccin-mocha)")
	_ = v.BindPFlag(config.KeyTUITheme, cmd.Flags().Lookup("theme"))

	return cmd
}

func runTUI(cmd *cobra.Command, v *viper.Viper) error {
	c, cfg, err := openConfessional(cmd.Context(), v)
	if err != nil {
		return err
	}

	return tui.Run(cmd.Context(), c,
		tui.WithStats(cfg.TUIShowStats),
		tui.WithTheme(themes.GetTheme(cfg.TUITheme)),
	)
}
