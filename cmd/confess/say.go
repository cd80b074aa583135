package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/sarcastic-confessional/internal/cli"
	"github.com/Veraticus/sarcastic-confessional/internal/karma"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func sayCmd(v *viper.Viper) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "say <confession...>",
		Short: "Confess a single sin",
		Long: `Submit one confession to the monk and hear his verdict.

All arguments are joined with spaces, so quoting is optional:

  confess say Ich habe die ganze Pizza gegessen`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := openConfessional(cmd.Context(), v)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			result := c.Submit(cmd.Context(), text)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatResult(result))

			if explain && result.Accepted {
				fmt.Fprintln(out)
				fmt.Fprintln(out, cli.FormatBreakdown(karma.Explain(result.Category, text)))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "Show how the karma debt was calculated")

	return cmd
}
