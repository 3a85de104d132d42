package cmd

import (
	"fmt"
	"strings"

	"github.com/praxis-coach/praxis/internal/skill"
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the goal's skills and their mastery state",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		questID, _ := cmd.Flags().GetString("quest")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		var skills []*skill.Skill
		if questID != "" {
			skills, err = s.Skills().ListByQuest(ctx, questID)
		} else {
			goalID, gerr := resolveGoalID(ctx, cmd, s)
			if gerr != nil {
				return gerr
			}
			skills, err = s.Skills().ListByGoal(ctx, goalID)
		}
		if err != nil {
			return err
		}
		if len(skills) == 0 {
			fmt.Println("No skills found.")
			return nil
		}

		fmt.Printf("%-14s  %-36s  %-8s  %-11s  %4s  %4s  %6s\n",
			"ID", "Skill", "Level", "Mastery", "Pass", "Fail", "Streak")
		fmt.Println(strings.Repeat("─", 96))
		anyReview := false
		for _, sk := range skills {
			mastery := string(sk.Mastery)
			if sk.NeedsReview {
				mastery += "!"
				anyReview = true
			}
			fmt.Printf("%-14s  %-36s  %-8s  %-11s  %4d  %4d  %6d\n",
				truncate(sk.ID, 14), truncate(sk.Title, 36), sk.StageLevel,
				mastery, sk.PassCount, sk.FailCount, sk.ConsecutivePasses)
		}
		if anyReview {
			fmt.Println("\n! = retries exhausted, needs review")
		}
		return nil
	},
}

func init() {
	skillsCmd.Flags().StringP("quest", "q", "", "Only show skills for one quest ID")
}
