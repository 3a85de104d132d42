package cmd

import (
	"fmt"
	"time"

	"github.com/praxis-coach/praxis/internal/drill"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record <pass|fail|partial>",
	Short: "Record the outcome of today's drill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var outcome drill.Outcome
		switch args[0] {
		case "pass":
			outcome = drill.OutcomePass
		case "fail":
			outcome = drill.OutcomeFail
		case "partial":
			outcome = drill.OutcomePartial
		default:
			return fmt.Errorf("outcome must be pass, fail, or partial, got %q", args[0])
		}

		note, _ := cmd.Flags().GetString("note")
		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = time.Now().Format(drill.DateLayout)
		}

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
		res, err := svc.RecordOutcome(ctx, goalID, date, outcome, note)
		if err != nil {
			return err
		}

		if res.AlreadyRecorded {
			fmt.Printf("Outcome %s already recorded for %s.\n", outcome, date)
			return nil
		}

		fmt.Printf("Recorded %s for %s.\n", outcome, date)
		if res.Transition.From != res.Transition.To {
			fmt.Printf("Mastery: %s → %s\n", res.Transition.From, res.Transition.To)
		}
		for _, id := range res.Unlocked {
			fmt.Printf("Unlocked: %s\n", id)
		}
		if res.MilestoneUnlocked {
			fmt.Println("Quest milestone is now available. Run 'praxis milestone start' when ready.")
		}
		if res.RetryTomorrow {
			fmt.Println("Tomorrow retries the same skill with a reduced scope.")
		}
		return nil
	},
}

var skipCmd = &cobra.Command{
	Use:   "skip",
	Short: "Skip today's drill without touching mastery",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		reason, _ := cmd.Flags().GetString("reason")
		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = time.Now().Format(drill.DateLayout)
		}

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
		res, err := svc.SkipDrill(ctx, goalID, date, reason)
		if err != nil {
			return err
		}
		if res.AlreadyRecorded {
			fmt.Printf("Drill for %s was already skipped.\n", date)
			return nil
		}
		fmt.Printf("Skipped %s. Mastery unchanged.\n", date)
		return nil
	},
}

func init() {
	recordCmd.Flags().StringP("note", "n", "", "What you observed while practicing")
	recordCmd.Flags().String("date", "", "Drill date as YYYY-MM-DD (defaults to today)")

	skipCmd.Flags().StringP("reason", "r", "", "Why today's drill is skipped")
	skipCmd.Flags().String("date", "", "Drill date as YYYY-MM-DD (defaults to today)")
}
