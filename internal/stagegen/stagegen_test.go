package stagegen

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/praxis-coach/praxis/internal/llm"
	"github.com/praxis-coach/praxis/internal/quest"
)

func testQuest() quest.Quest {
	return quest.Quest{
		ID:    "quest-1",
		Title: "HTTP servers from scratch",
		Topic: "networking",
	}
}

// validStageJSON builds a schema-conforming response with all five levels.
func validStageJSON(t *testing.T) json.RawMessage {
	t.Helper()
	var stages []map[string]any
	for _, level := range quest.AllLevels() {
		stages = append(stages, map[string]any{
			"level":             string(level),
			"capability":        fmt.Sprintf("can %s an HTTP server", level),
			"artifact":          "A running server",
			"designed_failure":  "Forgetting to close the listener",
			"consequence":       "The port stays bound",
			"recovery":          "Find the leak with lsof and add the close",
			"transfer_scenario": "TCP echo servers",
			"topic_tags":        []string{"networking"},
		})
	}
	raw, err := json.Marshal(map[string]any{"stages": stages})
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func TestGenerateFromLLM(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validStageJSON(t)})
	svc := NewService(mock, nil, DefaultConfig())

	res, err := svc.Generate(context.Background(), testQuest())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.Fallback {
		t.Fatalf("unexpected fallback: %s", res.Warning)
	}
	if len(res.Stages) != 5 {
		t.Fatalf("stages = %d, want 5", len(res.Stages))
	}
	if res.Stages[0].Level != quest.LevelReproduce {
		t.Errorf("first level = %q, want reproduce", res.Stages[0].Level)
	}
	if res.Stages[4].Level != quest.LevelShip {
		t.Errorf("last level = %q, want ship", res.Stages[4].Level)
	}

	// The request carried the schema.
	if len(mock.Calls) != 1 || mock.Calls[0].Schema != StageSchema {
		t.Error("expected one schema-bearing call")
	}
}

func TestGenerateFallsBackWhenProviderFails(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: provider unavailable
	svc := NewService(mock, nil, DefaultConfig())

	res, err := svc.Generate(context.Background(), testQuest())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !res.Fallback {
		t.Fatal("expected fallback")
	}
	if res.Warning == "" {
		t.Error("expected a warning explaining the fallback")
	}
	if err := validateStages(res.Stages); err != nil {
		t.Errorf("fallback stages invalid: %v", err)
	}
}

func TestGenerateFallsBackOnWrongLevels(t *testing.T) {
	// Three stages instead of five.
	raw, _ := json.Marshal(map[string]any{"stages": []map[string]any{
		{"level": "reproduce", "capability": "can do a thing"},
		{"level": "modify", "capability": "can change a thing"},
		{"level": "ship", "capability": "can ship a thing"},
	}})
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	svc := NewService(mock, nil, DefaultConfig())

	res, err := svc.Generate(context.Background(), testQuest())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !res.Fallback {
		t.Fatal("expected fallback on malformed stages")
	}
}

func TestGenerateNilProvider(t *testing.T) {
	svc := NewService(nil, nil, DefaultConfig())
	res, err := svc.Generate(context.Background(), testQuest())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !res.Fallback {
		t.Fatal("expected fallback with nil provider")
	}
}

func TestGenerateUsesCache(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validStageJSON(t)})
	cache := NewMemoryCache(time.Hour)
	svc := NewService(mock, cache, DefaultConfig())
	ctx := context.Background()

	if _, err := svc.Generate(ctx, testQuest()); err != nil {
		t.Fatalf("first generate: %v", err)
	}
	res, err := svc.Generate(ctx, testQuest())
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}
	if res.Fallback {
		t.Fatal("cache hit should not fall back")
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestGenerateFallbackNotCached(t *testing.T) {
	mock := llm.NewMockProvider() // first call fails
	cache := NewMemoryCache(time.Hour)
	svc := NewService(mock, cache, DefaultConfig())
	ctx := context.Background()

	res, err := svc.Generate(ctx, testQuest())
	if err != nil || !res.Fallback {
		t.Fatalf("expected fallback, got res=%+v err=%v", res, err)
	}

	// Once the provider recovers, the LLM path is tried again.
	mock.AddResponse(llm.MockResponse{Content: validStageJSON(t)})
	res, err = svc.Generate(ctx, testQuest())
	if err != nil {
		t.Fatalf("generate after recovery: %v", err)
	}
	if res.Fallback {
		t.Error("expected LLM stages after provider recovery")
	}
}

func TestFallbackStagesAlwaysValid(t *testing.T) {
	stages := FallbackStages(quest.Quest{Title: "Goroutine pools"})
	if err := validateStages(stages); err != nil {
		t.Fatalf("fallback invalid: %v", err)
	}
	for _, st := range stages {
		if st.DesignedFailure == "" || st.Recovery == "" {
			t.Errorf("stage %s missing resilience fields", st.Level)
		}
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	now := time.Now()
	cache.now = func() time.Time { return now }

	cache.Put("k", FallbackStages(testQuest()))
	if _, ok := cache.Get("k"); !ok {
		t.Fatal("expected fresh entry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := cache.Get("k"); ok {
		t.Fatal("expected expired entry")
	}
}
