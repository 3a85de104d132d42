package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/praxis-coach/praxis/internal/drill"
	"github.com/praxis-coach/praxis/internal/fault"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's drill, creating it on first call",
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

		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = time.Now().Format(drill.DateLayout)
		}

		svc := newCoach(s)
		today, err := svc.GetTodayPractice(ctx, goalID, date)
		if fault.Is(err, fault.KindCompleted) {
			fmt.Println("Every skill is mastered. This goal is complete — congratulations!")
			fmt.Println("Start a new goal with 'praxis init', or reread your milestones with 'praxis milestone'.")
			return nil
		}
		if err != nil {
			return err
		}

		for _, missed := range today.Reconciled {
			fmt.Printf("Marked %s as missed.\n", missed)
		}

		d := today.Drill
		sk, err := s.Skills().Get(ctx, d.SkillID)
		if err != nil {
			return err
		}

		sep := strings.Repeat("─", 64)
		fmt.Printf("Day %d · Week %d · %s\n", d.DayNumber, d.WeekNumber, d.Date)
		fmt.Println(sep)
		fmt.Printf("Skill: %s (%s)\n", sk.Title, sk.Mastery)
		if d.IsRetry {
			fmt.Printf("Retry %d — yesterday's drill didn't pass. Same skill, tighter scope.\n", d.RetryCount)
		}
		if d.CarryForward != "" {
			fmt.Printf("Carrying forward: %s\n", d.CarryForward)
		}
		fmt.Printf("Total: %d min\n\n", d.TotalMinutes())

		printSection(d.Warmup)
		printSection(&d.Main)
		printSection(d.Stretch)

		fmt.Println(sep)
		fmt.Println("When done: praxis record <pass|fail|partial> [--note \"...\"]")
		return nil
	},
}

func printSection(sec *drill.Section) {
	if sec == nil {
		return
	}
	label := strings.ToUpper(string(sec.Kind))
	if sec.FromOtherQuest {
		label += " (review)"
	}
	fmt.Printf("%s — %d min\n", label, sec.Minutes)
	fmt.Printf("  %s\n", sec.Action)
	if sec.Constraint != "" {
		fmt.Printf("  Constraint:  %s\n", sec.Constraint)
	}
	if sec.PassSignal != "" {
		fmt.Printf("  Pass signal: %s\n", sec.PassSignal)
	}
	if sec.DesignedFailure != "" {
		fmt.Printf("  Break it:    %s\n", sec.DesignedFailure)
		if sec.Recovery != "" {
			fmt.Printf("  Recover:     %s\n", sec.Recovery)
		}
	}
	fmt.Println()
}

func init() {
	todayCmd.Flags().String("date", "", "Practice date as YYYY-MM-DD (defaults to today)")
}
