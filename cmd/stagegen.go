package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/praxis-coach/praxis/internal/llm"
	"github.com/praxis-coach/praxis/internal/quest"
	"github.com/praxis-coach/praxis/internal/stagegen"
	"github.com/spf13/cobra"
)

// stagegenCmd runs stage decomposition standalone, for inspecting what a
// quest would turn into before committing to a plan.
var stagegenCmd = &cobra.Command{
	Use:   "stagegen <topic>",
	Short: "Preview the capability-stage decomposition for a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		topic := strings.Join(args, " ")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		provider, err := llm.NewProviderFromEnv(ctx, s.Events())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Showing template decomposition.")
		}

		q := quest.Quest{Title: topic, Topic: topic}
		var res *stagegen.Result
		if provider != nil {
			svc := stagegen.NewService(provider, stagegen.NewMemoryCache(stagegen.DefaultCacheTTL), stagegen.DefaultConfig())
			res, err = svc.Generate(ctx, q)
			if err != nil {
				return err
			}
		} else {
			res = &stagegen.Result{Stages: stagegen.FallbackStages(q), Fallback: true}
		}

		if res.Fallback {
			fmt.Println("(template fallback)")
			if res.Warning != "" {
				fmt.Printf("Warning: %s\n", res.Warning)
			}
		}
		sep := strings.Repeat("─", 64)
		for _, st := range res.Stages {
			fmt.Printf("%s\n%s\n", strings.ToUpper(string(st.Level)), sep)
			fmt.Printf("  Capability: %s\n", st.Capability)
			fmt.Printf("  Artifact:   %s\n", st.Artifact)
			if st.DesignedFailure != "" {
				fmt.Printf("  Break it:   %s\n", st.DesignedFailure)
			}
			if st.Recovery != "" {
				fmt.Printf("  Recover:    %s\n", st.Recovery)
			}
			if st.TransferScenario != "" {
				fmt.Printf("  Transfers:  %s\n", st.TransferScenario)
			}
			fmt.Println()
		}
		return nil
	},
}
