package main

import (
	"github.com/Veraticus/sarcastic-confessional/internal/cli"
	"github.com/Veraticus/sarcastic-confessional/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func statsCmd(v *viper.Viper) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show your sin statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, err := openConfessional(cmd.Context(), v)
			if err != nil {
				return err
			}

			stats := c.Statistics()
			return writeOutput(cmd.OutOrStdout(), output, stats, func() string {
				return cli.FormatStatistics(stats)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format (table, json, yaml)")

	return cmd
}

func historyCmd(v *viper.Viper) *cobra.Command {
	var (
		output string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past confessions, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, err := openConfessional(cmd.Context(), v)
			if err != nil {
				return err
			}

			records := lastN(c.History(), limit)
			return writeOutput(cmd.OutOrStdout(), output, records, func() string {
				return cli.FormatHistory(records)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format (table, json, yaml)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Only show the most recent N confessions (0 shows all)")

	return cmd
}

// lastN returns the final n records, or all of them when n <= 0.
func lastN(records []model.ConfessionRecord, n int) []model.ConfessionRecord {
	if n <= 0 || n >= len(records) {
		return records
	}
	return records[len(records)-n:]
}
