package main

import (
	"context"
	"fmt"

	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/pkg/entity"
	"github.com/spf13/cobra"
)

var (
	logFocus    int
	logWasted   string
	logWins     string
	logFailures string
	logMood     string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Commit today's review",
	RunE: func(cmd *cobra.Command, args []string) error {
		draft := service.LogDraft{
			Focus:      logFocus,
			WastedTime: logWasted,
			Wins:       logWins,
			Failures:   logFailures,
			Mood:       logMood,
		}
		return withTracker(cmd, func(ctx context.Context, ts *service.TrackerService) error {
			entry, err := ts.CommitLog(ctx, &draft)
			if err != nil {
				return err
			}
			_, data := ts.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\nStreak: %d days\nLife score: %d\n", entry.Feedback, data.Streak, data.LifeScore)
			return nil
		})
	},
}

func init() {
	logCmd.Flags().IntVar(&logFocus, "focus", 5, "Focus level, 1-10")
	logCmd.Flags().StringVar(&logWasted, "wasted", entity.WastedTimes[0], "Hours wasted: 0, 1, 2, 3, 4 or 5+")
	logCmd.Flags().StringVar(&logWins, "wins", "", "What went well")
	logCmd.Flags().StringVar(&logFailures, "failures", "", "Where you slipped")
	logCmd.Flags().StringVar(&logMood, "mood", entity.DefaultMood, "Mood")
	rootCmd.AddCommand(logCmd)
}
