package cmd

import (
	"fmt"
	"strings"

	"github.com/praxis-coach/praxis/internal/week"
	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the active practice week",
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
		w, err := svc.GetCurrentWeek(ctx, goalID)
		if err != nil {
			return err
		}
		if w == nil {
			fmt.Println("No active week. Every planned week has closed.")
			return nil
		}
		printWeek(w)
		return nil
	},
}

var weekListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every week of the plan",
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
		weeks, err := svc.GetWeeks(ctx, goalID)
		if err != nil {
			return err
		}
		if len(weeks) == 0 {
			fmt.Println("No weeks planned.")
			return nil
		}

		fmt.Printf("%-5s  %-9s  %-10s  %6s  %6s  %6s  %8s\n",
			"Week", "Days", "Status", "Done", "Passed", "Failed", "Mastered")
		fmt.Println(strings.Repeat("─", 64))
		for _, w := range weeks {
			fmt.Printf("%-5d  %3d-%-5d  %-10s  %6d  %6d  %6d  %8d\n",
				w.WeekNumber, w.StartDay, w.EndDay, w.Status,
				w.DrillsCompleted, w.DrillsPassed, w.DrillsFailed, w.SkillsMastered)
		}
		return nil
	},
}

var weekCompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Close the active week early and activate the next one",
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
		w, err := svc.CompleteWeek(ctx, goalID)
		if err != nil {
			return err
		}
		fmt.Printf("Week %d closed.\n", w.WeekNumber)
		if len(w.CarryForwardIDs) > 0 {
			fmt.Printf("Carrying %d skill(s) into next week: %s\n",
				len(w.CarryForwardIDs), strings.Join(w.CarryForwardIDs, ", "))
		}
		return nil
	},
}

func printWeek(w *week.WeekPlan) {
	fmt.Printf("Week %d · days %d-%d · %s\n", w.WeekNumber, w.StartDay, w.EndDay, w.Status)
	fmt.Printf("  Drills:   %d completed, %d passed, %d failed, %d skipped\n",
		w.DrillsCompleted, w.DrillsPassed, w.DrillsFailed, w.DrillsSkipped)
	fmt.Printf("  Mastered: %d skill(s) this week\n", w.SkillsMastered)
	if w.DrillsCompleted > 0 {
		fmt.Printf("  Pass rate: %.0f%%\n", w.PassRate()*100)
	}
	if len(w.CarryForwardIDs) > 0 {
		fmt.Printf("  Carry-forward: %s\n", strings.Join(w.CarryForwardIDs, ", "))
	}
}

func init() {
	weekCmd.AddCommand(weekListCmd)
	weekCmd.AddCommand(weekCompleteCmd)
}
