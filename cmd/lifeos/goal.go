package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/limbo/lifeos/internal/service"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage goals and the systems behind them",
}

var goalAddCmd = &cobra.Command{
	Use:   "add <objective>",
	Short: "Turn an objective into a system",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		return withTracker(cmd, func(ctx context.Context, ts *service.TrackerService) error {
			goal, err := ts.AddGoal(ctx, title)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Goal %s: %s\n\n%s\n\nDaily:\n", goal.ID, goal.Title, goal.SystemStr)
			for _, action := range goal.System.Daily {
				fmt.Fprintf(out, "  - %s\n", action)
			}
			return nil
		})
	},
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, ts *service.TrackerService) error {
			_, data := ts.Snapshot()
			out := cmd.OutOrStdout()
			if len(data.Goals) == 0 {
				fmt.Fprintln(out, "No goals yet")
				return nil
			}
			fmt.Fprintln(out, "ID\tSTATUS\tCREATED\tTITLE")
			for _, g := range data.Goals {
				status := "active"
				if !g.Active {
					status = "inactive"
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", g.ID, status, g.Created.Format("2006-01-02"), g.Title)
			}
			return nil
		})
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseGoalID(args[0])
		if err != nil {
			return err
		}
		return withTracker(cmd, func(ctx context.Context, ts *service.TrackerService) error {
			if err := ts.DeleteGoal(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted goal %s\n", id)
			return nil
		})
	},
}

var goalDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Mark a goal as abandoned",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseGoalID(args[0])
		if err != nil {
			return err
		}
		return withTracker(cmd, func(ctx context.Context, ts *service.TrackerService) error {
			goal, err := ts.DeactivateGoal(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deactivated goal %s: %s\n", goal.ID, goal.Title)
			return nil
		})
	},
}

func parseGoalID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("invalid goal id %q", s)
	}
	return id, nil
}

func init() {
	goalCmd.AddCommand(goalAddCmd, goalListCmd, goalDeleteCmd, goalDeactivateCmd)
	rootCmd.AddCommand(goalCmd)
}
