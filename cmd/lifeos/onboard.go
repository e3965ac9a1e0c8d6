package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/pkg/entity"
	"github.com/spf13/cobra"
)

var (
	onboardName     string
	onboardAge      string
	onboardFocus    string
	onboardStruggle string
	onboardStyle    string
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Create your profile",
	Long: "Create your profile. Choices:\n" +
		"  --age      " + strings.Join(entity.AgeRanges, " | ") + "\n" +
		"  --focus    " + strings.Join(entity.FocusAreas, " | ") + "\n" +
		"  --struggle " + strings.Join(entity.Struggles, " | ") + "\n" +
		"  --style    " + strings.Join(entity.FeedbackStyles, " | "),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, ts *service.TrackerService) error {
			p, err := ts.CompleteOnboarding(ctx, &service.OnboardingRequest{
				Name:          onboardName,
				AgeRange:      onboardAge,
				FocusArea:     onboardFocus,
				Struggle:      onboardStruggle,
				FeedbackStyle: entity.FeedbackStyle(onboardStyle),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "System initialized for %s (%s feedback)\n", p.Name, p.FeedbackStyle)
			return nil
		})
	},
}

func init() {
	onboardCmd.Flags().StringVar(&onboardName, "name", "", "Your name")
	onboardCmd.Flags().StringVar(&onboardAge, "age", "", "Age range")
	onboardCmd.Flags().StringVar(&onboardFocus, "focus", "", "Primary focus area")
	onboardCmd.Flags().StringVar(&onboardStruggle, "struggle", "", "Biggest struggle")
	onboardCmd.Flags().StringVar(&onboardStyle, "style", string(entity.StyleHonest), "Feedback style")
	_ = onboardCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(onboardCmd)
}
