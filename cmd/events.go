package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect the event log",
}

var eventsLLMCmd = &cobra.Command{
	Use:   "llm",
	Short: "List recent LLM request events",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.Events().ListLLMRequests(ctx, limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-14s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"Seq", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Printf("%-5d  %-19s  %-14s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.Sequence,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				truncate(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var eventsMasteryCmd = &cobra.Command{
	Use:   "mastery",
	Short: "List the goal's mastery transitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		goalID, err := resolveGoalID(ctx, cmd, s)
		if err != nil {
			return err
		}

		events, err := s.Events().ListMasteryEvents(ctx, goalID, limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No mastery events found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-14s  %-12s  %-12s  %s\n",
			"Seq", "Timestamp", "Skill", "From", "To", "Trigger")
		fmt.Println(strings.Repeat("─", 80))
		for _, e := range events {
			fmt.Printf("%-5d  %-19s  %-14s  %-12s  %-12s  %s\n",
				e.Sequence,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(e.SkillID, 14),
				e.FromState,
				e.ToState,
				e.Trigger,
			)
		}
		return nil
	},
}

func init() {
	eventsLLMCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	eventsLLMCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. stage-gen)")
	eventsMasteryCmd.Flags().IntP("limit", "n", 20, "Number of events to show")

	eventsCmd.AddCommand(eventsLLMCmd)
	eventsCmd.AddCommand(eventsMasteryCmd)
}
