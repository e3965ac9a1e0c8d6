package main

import (
	"context"
	"fmt"

	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/pkg/entity"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, ts *service.TrackerService) error {
			if err := requireOnboarded(ts); err != nil {
				return err
			}
			p, _ := ts.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\nAge: %s\nFocus: %s\nStruggle: %s\nStyle: %s\nJoined: %s\n",
				p.Name, p.AgeRange, p.FocusArea, p.Struggle, p.FeedbackStyle, p.JoinedDate.Format("2006-01-02"))
			return nil
		})
	},
}

var (
	profileName  string
	profileStyle string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change your name or feedback style",
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch service.ProfileUpdate
		if cmd.Flags().Changed("name") {
			patch.Name = &profileName
		}
		if cmd.Flags().Changed("style") {
			style := entity.FeedbackStyle(profileStyle)
			patch.FeedbackStyle = &style
		}
		if patch.Name == nil && patch.FeedbackStyle == nil {
			return fmt.Errorf("nothing to change, pass --name or --style")
		}
		return withTracker(cmd, func(ctx context.Context, ts *service.TrackerService) error {
			p, err := ts.UpdateProfile(ctx, &patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile updated: %s (%s feedback)\n", p.Name, p.FeedbackStyle)
			return nil
		})
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "New name")
	profileSetCmd.Flags().StringVar(&profileStyle, "style", "", "Feedback style: Soft, Honest or Brutal")
	profileCmd.AddCommand(profileShowCmd, profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
