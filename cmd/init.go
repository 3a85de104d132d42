package cmd

import (
	"fmt"
	"os"

	"github.com/praxis-coach/praxis/internal/coach"
	"github.com/praxis-coach/praxis/internal/llm"
	"github.com/praxis-coach/praxis/internal/quest"
	"github.com/praxis-coach/praxis/internal/stagegen"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a learning plan from a goal file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		path, _ := cmd.Flags().GetString("file")

		g, quests, stages, err := quest.LoadGoalFile(path)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		// Build LLM-backed stage generation when a provider is configured.
		// Quests with inline stages don't need it; quests without stages
		// fall back to deterministic templates otherwise.
		var stageSource coach.StageSource
		provider, err := llm.NewProviderFromEnv(ctx, s.Events())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Quests without inline stages will use template decomposition.")
			stageSource = stagegen.NewService(nil, nil, stagegen.DefaultConfig())
		} else {
			cache := stagegen.NewMemoryCache(stagegen.DefaultCacheTTL)
			stageSource = stagegen.NewService(provider, cache, stagegen.DefaultConfig())
		}

		svc := coach.NewService(coachStores(s), stageSource, coach.DefaultConfig())
		plan, err := svc.InitializePlan(ctx, g, quests, stages)
		if err != nil {
			return err
		}

		fmt.Printf("Plan created: %s\n", plan.Title)
		fmt.Printf("  Goal ID:        %s\n", plan.GoalID)
		fmt.Printf("  Duration:       %s\n", plan.Duration)
		fmt.Printf("  Daily budget:   %d min\n", plan.DailyMinutesBudget)
		fmt.Printf("  Quests:         %d\n", len(plan.Quests))
		fmt.Printf("  Skills:         %d\n", plan.TotalSkills)
		if plan.EstimatedDays > 0 {
			fmt.Printf("  Estimated days: %d\n", plan.EstimatedDays)
		}
		for _, w := range plan.Warnings {
			fmt.Printf("  Warning: %s\n", w)
		}
		fmt.Println("\nRun 'praxis today' to get your first drill.")
		return nil
	},
}

func init() {
	initCmd.Flags().StringP("file", "f", "goal.yaml", "Path to the goal YAML file")
}
