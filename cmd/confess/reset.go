package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/Veraticus/sarcastic-confessional/internal/cli"
	"github.com/Veraticus/sarcastic-confessional/internal/common"
	"github.com/Veraticus/sarcastic-confessional/internal/response"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func resetCmd(v *viper.Viper) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe your karma debt and confession history",
		Long: `Reset grants absolution: the karma debt, the confession history and the
category tally are all cleared and the empty ledger is written to disk.

This cannot be undone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, err := openConfessional(cmd.Context(), v)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			stats := c.Statistics()

			if stats.HistoryCount == 0 && stats.KarmaTotal == 0 {
				fmt.Fprintln(out, cli.FormatInfo("Nichts zu vergeben. Verdächtig."))
				return nil
			}

			// Confirm with user unless --force is used
			if !force {
				fmt.Fprintf(out, "Das löscht %d Beichten und %d Karma-Schulden.\n", stats.HistoryCount, stats.KarmaTotal)
				fmt.Fprint(out, cli.FormatPrompt("Wirklich alles vergessen? [y/N]"))

				answer, err := cli.NewNonBlockingReader(cmd.InOrStdin()).ReadLine(cmd.Context())
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("failed to read input: %w", err)
				}
				if !cli.IsYes(answer) {
					fmt.Fprintln(out, "Absolution abgebrochen.")
					return nil
				}
			}

			if err := c.Reset(cmd.Context()); err != nil {
				return common.NewUserError("Absolution konnte nicht gespeichert werden", err)
			}

			fmt.Fprintln(out, cli.FormatSuccess(response.ResetMessage))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
