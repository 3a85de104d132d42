package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show mastery progress across the goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		goalID, err := resolveGoalID(ctx, cmd, s)
		if err != nil {
			return err
		}

		svc := newCoach(s)
		p, err := svc.GetProgress(ctx, goalID)
		if err != nil {
			return err
		}

		fmt.Printf("%s — %s · %d min/day\n", p.Plan.Title, p.Plan.Duration, p.Plan.DailyMinutesBudget)
		fmt.Printf("Overall: %d/%d skills mastered (%.0f%%)\n\n", p.Mastered, p.TotalSkills, p.MasteryPercent)

		fmt.Printf("%-36s  %6s  %8s  %10s  %8s  %s\n",
			"Quest", "Skills", "Mastered", "Practicing", "Mastery", "Milestone")
		fmt.Println(strings.Repeat("─", 92))
		for _, q := range p.Quests {
			milestone := "-"
			if q.Milestone != nil {
				milestone = string(q.Milestone.Status)
			}
			fmt.Printf("%-36s  %6d  %8d  %10d  %7.0f%%  %s\n",
				truncate(q.Title, 36), q.TotalSkills, q.Mastered, q.Practicing, q.MasteryPercent, milestone)
		}

		if w := p.CurrentWeek; w != nil {
			fmt.Printf("\nWeek %d (days %d-%d): %d completed, %d passed, %d failed, %d skipped\n",
				w.WeekNumber, w.StartDay, w.EndDay,
				w.DrillsCompleted, w.DrillsPassed, w.DrillsFailed, w.DrillsSkipped)
		}

		if len(p.NeedsReview) > 0 {
			fmt.Println("\nNeeds review (automatic retries exhausted):")
			for _, sk := range p.NeedsReview {
				fmt.Printf("  %s — %s\n", sk.ID, sk.Title)
			}
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
