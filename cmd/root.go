package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/praxis-coach/praxis/internal/coach"
	"github.com/praxis-coach/praxis/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "praxis",
	Short: "Deliberate-practice coach for technical skills",
	Long:  "Praxis — terminal coach that turns a learning goal into daily deliberate-practice drills and tracks mastery.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PRAXIS_DB env var)")
	rootCmd.PersistentFlags().String("goal", "", "Goal ID (defaults to the only goal when exactly one exists)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(skipCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(milestoneCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(stagegenCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PRAXIS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database for a command run.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// resolveGoalID returns the --goal flag value, falling back to the only
// stored goal when the flag is empty.
func resolveGoalID(ctx context.Context, cmd *cobra.Command, s *store.Store) (string, error) {
	if g, _ := cmd.Flags().GetString("goal"); g != "" {
		return g, nil
	}
	plans, err := s.Plans().List(ctx)
	if err != nil {
		return "", fmt.Errorf("list plans: %w", err)
	}
	switch len(plans) {
	case 0:
		return "", fmt.Errorf("no learning plan found; run 'praxis init -f goal.yaml' first")
	case 1:
		return plans[0].GoalID, nil
	default:
		ids := make([]string, len(plans))
		for i, p := range plans {
			ids[i] = fmt.Sprintf("%s (%s)", p.GoalID, p.Title)
		}
		return "", fmt.Errorf("multiple goals found, pick one with --goal:\n  %s", strings.Join(ids, "\n  "))
	}
}

// newCoach builds the coaching service over an open store. Stage generation
// is left out; commands that need it wire their own StageSource.
func newCoach(s *store.Store) *coach.Service {
	return coach.NewService(coachStores(s), nil, coach.DefaultConfig())
}

func coachStores(s *store.Store) coach.Stores {
	return coach.Stores{
		Skills:     s.Skills(),
		Drills:     s.Drills(),
		Weeks:      s.Weeks(),
		Plans:      s.Plans(),
		Milestones: s.Milestones(),
		Events:     s.Events(),
	}
}
