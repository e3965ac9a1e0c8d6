package main

import (
	"context"
	"fmt"

	"github.com/limbo/lifeos/internal/service"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show life score, streak and counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, ts *service.TrackerService) error {
			st := ts.Status()
			out := cmd.OutOrStdout()
			if !st.Onboarded {
				fmt.Fprintln(out, "Not onboarded. Run `lifeos onboard --name <name>`.")
				return nil
			}
			fmt.Fprintf(out, "Operator: %s\nLife score: %d (%s)\nStreak: %d days\nLogs: %d\nGoals: %d active / %d total\n",
				st.Name, st.LifeScore, st.Band, st.Streak, st.Logs, st.ActiveGoals, st.Goals)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
