package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var milestoneCmd = &cobra.Command{
	Use:   "milestone",
	Short: "Show quest milestones and their acceptance criteria",
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

		plan, err := s.Plans().GetByGoal(ctx, goalID)
		if err != nil {
			return err
		}
		milestones, err := s.Milestones().ListByGoal(ctx, goalID)
		if err != nil {
			return err
		}
		byQuest := make(map[string]int, len(milestones))
		for i, m := range milestones {
			byQuest[m.QuestID] = i
		}

		sep := strings.Repeat("─", 64)
		for _, q := range plan.Quests {
			i, ok := byQuest[q.ID]
			if !ok {
				continue
			}
			m := milestones[i]
			fmt.Printf("%s\n", m.Title)
			fmt.Println(sep)
			fmt.Printf("  Quest:  %s (%s)\n", q.Title, q.ID)
			fmt.Printf("  Status: %s\n", m.Status)
			fmt.Printf("  Gate:   %d%% of quest skills mastered\n", m.RequiredMasteryPercent)
			fmt.Println("  Acceptance criteria:")
			for _, c := range m.AcceptanceCriteria {
				fmt.Printf("    - %s\n", c)
			}
			if m.CompletedAt != nil {
				fmt.Printf("  Completed: %s\n", m.CompletedAt.Local().Format("2006-01-02"))
			}
			fmt.Println()
		}
		return nil
	},
}

var milestoneStartCmd = &cobra.Command{
	Use:   "start <quest-id>",
	Short: "Start an available milestone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		svc := newCoach(s)
		m, err := svc.StartMilestone(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Milestone started: %s\n", m.Title)
		fmt.Println("Build it, then confirm with 'praxis milestone complete'.")
		return nil
	},
}

var milestoneCompleteCmd = &cobra.Command{
	Use:   "complete <quest-id>",
	Short: "Confirm a milestone's acceptance criteria",
	Long: "Walks through each acceptance criterion and asks for a yes/no " +
		"self-assessment. The milestone completes only when every criterion " +
		"is confirmed; mastery percentages alone never complete it.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		questID := args[0]
		confirmAll, _ := cmd.Flags().GetBool("yes")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		m, err := s.Milestones().GetByQuest(ctx, questID)
		if err != nil {
			return err
		}

		assessment := make(map[string]bool, len(m.AcceptanceCriteria))
		if confirmAll {
			for _, c := range m.AcceptanceCriteria {
				assessment[c] = true
			}
		} else {
			reader := bufio.NewReader(os.Stdin)
			for _, c := range m.AcceptanceCriteria {
				fmt.Printf("%s\nDid you do this without reference material? [y/N] ", c)
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read answer: %w", err)
				}
				answer := strings.ToLower(strings.TrimSpace(line))
				assessment[c] = answer == "y" || answer == "yes"
			}
		}

		svc := newCoach(s)
		done, err := svc.CompleteMilestone(ctx, questID, assessment)
		if err != nil {
			return err
		}
		fmt.Printf("Milestone completed: %s\n", done.Title)
		return nil
	},
}

func init() {
	milestoneCompleteCmd.Flags().BoolP("yes", "y", false, "Confirm every criterion without prompting")

	milestoneCmd.AddCommand(milestoneStartCmd)
	milestoneCmd.AddCommand(milestoneCompleteCmd)
}
