package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/limbo/lifeos/internal/service"
	"github.com/spf13/cobra"
)

var resetConfirmed bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved data and start over",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetConfirmed {
			return errors.New("this deletes your profile, goals and logs; pass --yes to confirm")
		}
		return withTracker(cmd, func(ctx context.Context, ts *service.TrackerService) error {
			if err := ts.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "System reset. Run `lifeos onboard` to start again.")
			return nil
		})
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetConfirmed, "yes", false, "Confirm the reset")
	rootCmd.AddCommand(resetCmd)
}
