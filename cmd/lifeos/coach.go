package main

import (
	"context"
	"fmt"

	"github.com/limbo/lifeos/internal/service"
	"github.com/spf13/cobra"
)

var briefingCmd = &cobra.Command{
	Use:   "briefing",
	Short: "Get today's protocol",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, ts *service.TrackerService) error {
			b, err := ts.MorningBriefing(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", b.Greeting, b.Text)
			return nil
		})
	},
}

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Look for patterns across your logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, ts *service.TrackerService) error {
			text, err := ts.AnalyzePatterns(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(briefingCmd, patternsCmd)
}
