package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Veraticus/sarcastic-confessional/internal/cli"
	"github.com/Veraticus/sarcastic-confessional/internal/common"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// batchSummary tallies the outcome of a batch run.
type batchSummary struct {
	Submitted    int
	Unsaved      int
	KarmaCharged int
}

func batchCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Confess every line of a file",
		Long: `Batch submits each non-empty line of a file as its own confession, in
order. Use "-" to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readConfessions(cmd.InOrStdin(), args[0])
			if err != nil {
				return common.NewUserError("Datei konnte nicht gelesen werden", err)
			}
			if len(lines) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("Keine Beichten in der Datei gefunden."))
				return nil
			}

			c, _, err := openConfessional(cmd.Context(), v)
			if err != nil {
				return err
			}

			interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
			ctx := interrupts.HandleInterrupts(cmd.Context())
			defer interrupts.Stop()

			bar := newBatchProgress(cmd.ErrOrStderr(), len(lines))

			var summary batchSummary
			for _, line := range lines {
				if ctx.Err() != nil {
					break
				}

				result := c.Submit(ctx, line)
				summary.Submitted++
				summary.KarmaCharged += result.Karma
				if !result.Persisted {
					summary.Unsaved++
				}

				if err := bar.Add(1); err != nil {
					slog.Warn("Failed to update progress bar", "error", err)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("%d Beichten abgenommen, +%d Karma-Schulden", summary.Submitted, summary.KarmaCharged)))
			fmt.Fprintf(out, "Gesamt Karma-Schulden: %s\n", cli.KarmaStyle.Render(fmt.Sprint(c.Statistics().KarmaTotal)))
			if summary.Unsaved > 0 {
				fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("%d Beichten konnten nicht gespeichert werden", summary.Unsaved)))
			}

			if summary.Submitted < len(lines) {
				return common.NewUserError(
					fmt.Sprintf("Abgebrochen nach %d von %d Beichten", summary.Submitted, len(lines)),
					context.Canceled,
				)
			}
			return nil
		},
	}

	return cmd
}

// readConfessions returns the trimmed non-empty lines of path, or of stdin
// when path is "-".
func readConfessions(stdin io.Reader, path string) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path) //nolint:gosec // user-supplied input file
		if err != nil {
			return nil, err
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				slog.Warn("Failed to close input file", "error", closeErr)
			}
		}()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func newBatchProgress(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[yellow][bold]Der Mönch hört zu...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[yellow]=[reset]",
			SaucerHead:    "[yellow]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
