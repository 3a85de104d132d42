// Package stagegen produces the five capability stages a quest is decomposed
// from. The primary path asks an LLM provider for structured output; when the
// provider is unavailable or keeps returning junk the service falls back to
// deterministic templates so initialization never blocks on a network call.
package stagegen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/praxis-coach/praxis/internal/llm"
	"github.com/praxis-coach/praxis/internal/quest"
)

// Config controls stage generation.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns sensible defaults for stage generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.6,
	}
}

// Result carries generated stages plus how they were produced.
type Result struct {
	Stages []quest.CapabilityStage

	// Fallback is true when the deterministic templates were used.
	Fallback bool

	// Warning describes why the LLM path was abandoned, if it was.
	Warning string
}

// Service generates capability stages for quests.
type Service struct {
	provider llm.Provider
	cache    Cache
	cfg      Config
}

// NewService creates a stage generation service. A nil provider means the
// deterministic fallback is the only path; a nil cache disables caching.
func NewService(provider llm.Provider, cache Cache, cfg Config) *Service {
	return &Service{provider: provider, cache: cache, cfg: cfg}
}

// stageOutput is the raw LLM response before conversion.
type stageOutput struct {
	Stages []struct {
		Level            string   `json:"level"`
		Capability       string   `json:"capability"`
		Artifact         string   `json:"artifact"`
		DesignedFailure  string   `json:"designed_failure"`
		Consequence      string   `json:"consequence"`
		Recovery         string   `json:"recovery"`
		TransferScenario string   `json:"transfer_scenario"`
		TopicTags        []string `json:"topic_tags"`
	} `json:"stages"`
}

// Generate returns the five capability stages for a quest. The cache is
// consulted first; an LLM failure degrades to templates rather than erroring.
func (s *Service) Generate(ctx context.Context, q quest.Quest) (*Result, error) {
	key := cacheKey(q)
	if s.cache != nil {
		if stages, ok := s.cache.Get(key); ok {
			return &Result{Stages: stages}, nil
		}
	}

	if s.provider == nil {
		return &Result{Stages: FallbackStages(q), Fallback: true}, nil
	}

	stages, err := s.generateLLM(ctx, q)
	if err != nil {
		return &Result{
			Stages:   FallbackStages(q),
			Fallback: true,
			Warning:  fmt.Sprintf("stage generation for quest %q fell back to templates: %v", q.Title, err),
		}, nil
	}

	if s.cache != nil {
		s.cache.Put(key, stages)
	}
	return &Result{Stages: stages}, nil
}

func (s *Service) generateLLM(ctx context.Context, q quest.Quest) ([]quest.CapabilityStage, error) {
	ctx = llm.WithPurpose(ctx, "stage-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(q)},
		},
		Schema:      StageSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw stageOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse stage response: %w", err)
	}

	stages := make([]quest.CapabilityStage, 0, len(raw.Stages))
	for _, st := range raw.Stages {
		stages = append(stages, quest.CapabilityStage{
			Level:            quest.StageLevel(st.Level),
			Capability:       st.Capability,
			Artifact:         st.Artifact,
			DesignedFailure:  st.DesignedFailure,
			Consequence:      st.Consequence,
			Recovery:         st.Recovery,
			TransferScenario: st.TransferScenario,
			TopicTags:        st.TopicTags,
		})
	}
	if err := validateStages(stages); err != nil {
		return nil, err
	}
	return stages, nil
}

// validateStages checks that all five levels are present exactly once, in
// progression order.
func validateStages(stages []quest.CapabilityStage) error {
	levels := quest.AllLevels()
	if len(stages) != len(levels) {
		return fmt.Errorf("got %d stages, want %d", len(stages), len(levels))
	}
	for i, st := range stages {
		if st.Level != levels[i] {
			return fmt.Errorf("stage %d level = %q, want %q", i, st.Level, levels[i])
		}
		if st.Capability == "" {
			return fmt.Errorf("stage %q has empty capability", st.Level)
		}
	}
	return nil
}

func cacheKey(q quest.Quest) string {
	return q.Topic + "|" + q.Title
}
