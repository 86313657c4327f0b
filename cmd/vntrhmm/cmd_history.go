package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the most recent bake/decode runs recorded in the run store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := store.Recent(context.Background(), historyLimit)
		if err != nil {
			return fmt.Errorf("query run history: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("no runs recorded yet")
			return nil
		}
		for _, r := range records {
			logp := "-"
			if r.LogProbability != nil {
				logp = fmt.Sprintf("%g", *r.LogProbability)
			}
			fmt.Printf("%s  %-8s %-20s len=%-6d logp=%-10s %5dms  %s\n",
				r.CreatedAt.Format("2006-01-02T15:04:05Z"), r.Kind, r.ModelName, r.SequenceLength, logp, r.DurationMS, r.ID)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to list")
}
