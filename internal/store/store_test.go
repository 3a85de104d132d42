package store

import (
	"context"
	"testing"
	"time"

	"github.com/praxis-coach/praxis/internal/drill"
	"github.com/praxis-coach/praxis/internal/fault"
	"github.com/praxis-coach/praxis/internal/quest"
	"github.com/praxis-coach/praxis/internal/skill"
	"github.com/praxis-coach/praxis/internal/week"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testSkill(id, questID string) *skill.Skill {
	return &skill.Skill{
		ID:               id,
		QuestID:          questID,
		GoalID:           "goal-1",
		UserID:           "user-1",
		Title:            "Two-pointer partition",
		Action:           "Partition a slice around a pivot in place",
		SuccessSignal:    "Completed: the slice splits without extra allocation",
		LockedVariables:  []string{"Keep the same approach for the whole exercise"},
		EstimatedMinutes: 20,
		Type:             skill.TypeFoundation,
		OrderIndex:       0,
		StageLevel:       "reproduce",
		Mastery:          skill.MasteryNotStarted,
		Status:           skill.StatusAvailable,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSkillRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Skills()
	ctx := context.Background()

	in := testSkill("sk-1", "quest-1")
	in.PrerequisiteIDs = []string{"sk-0"}
	if err := repo.CreateBatch(ctx, []*skill.Skill{in}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "sk-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Action != in.Action {
		t.Errorf("action = %q, want %q", got.Action, in.Action)
	}
	if got.Type != skill.TypeFoundation {
		t.Errorf("type = %q, want foundation", got.Type)
	}
	if len(got.PrerequisiteIDs) != 1 || got.PrerequisiteIDs[0] != "sk-0" {
		t.Errorf("prerequisites = %v, want [sk-0]", got.PrerequisiteIDs)
	}
	if got.LastPracticedAt != nil {
		t.Error("expected nil last_practiced_at on a fresh skill")
	}
}

func TestSkillGetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Skills().Get(context.Background(), "nope")
	if !fault.Is(err, fault.KindNotFound) {
		t.Fatalf("err = %v, want not_found", err)
	}
}

func TestSkillUpdateTracking(t *testing.T) {
	s := openTestStore(t)
	repo := s.Skills()
	ctx := context.Background()

	in := testSkill("sk-1", "quest-1")
	if err := repo.CreateBatch(ctx, []*skill.Skill{in}); err != nil {
		t.Fatalf("create: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	in.Mastery = skill.MasteryPracticing
	in.Status = skill.StatusInProgress
	in.PassCount = 2
	in.ConsecutivePasses = 2
	in.LastPracticedAt = &now
	if err := repo.UpdateTracking(ctx, in); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.Get(ctx, "sk-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Mastery != skill.MasteryPracticing {
		t.Errorf("mastery = %q, want practicing", got.Mastery)
	}
	if got.PassCount != 2 || got.ConsecutivePasses != 2 {
		t.Errorf("counters = (%d, %d), want (2, 2)", got.PassCount, got.ConsecutivePasses)
	}
	if got.LastPracticedAt == nil || !got.LastPracticedAt.Equal(now) {
		t.Errorf("last_practiced_at = %v, want %v", got.LastPracticedAt, now)
	}

	// Decomposition fields are untouched by tracking updates.
	if got.Action != in.Action {
		t.Errorf("action changed: %q", got.Action)
	}
}

func TestSkillListByGoalOrdered(t *testing.T) {
	s := openTestStore(t)
	repo := s.Skills()
	ctx := context.Background()

	a := testSkill("sk-a", "quest-1")
	a.OrderIndex = 1
	b := testSkill("sk-b", "quest-2")
	b.OrderIndex = 0
	if err := repo.CreateBatch(ctx, []*skill.Skill{a, b}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.ListByGoal(ctx, "goal-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "sk-b" || got[1].ID != "sk-a" {
		t.Errorf("order = [%s, %s], want [sk-b, sk-a]", got[0].ID, got[1].ID)
	}
}

func testDrill(id, date string) *drill.Drill {
	return &drill.Drill{
		ID:      id,
		UserID:  "user-1",
		GoalID:  "goal-1",
		QuestID: "quest-1",
		SkillID: "sk-1",
		Date:    date,
		Main: drill.Section{
			Kind:    drill.SectionMain,
			Action:  "Partition a slice around a pivot in place",
			Minutes: 20,
		},
		Status:    drill.StatusScheduled,
		CreatedAt: time.Now().UTC(),
	}
}

func TestDrillGetByDateAbsent(t *testing.T) {
	s := openTestStore(t)
	got, err := s.Drills().GetByDate(context.Background(), "user-1", "goal-1", "2026-08-29")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil drill when none exists")
	}
}

func TestDrillRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Drills()
	ctx := context.Background()

	in := testDrill("dr-1", "2026-08-29")
	in.Warmup = &drill.Section{Kind: drill.SectionWarmup, Action: "Revisit pivot choice", Minutes: 5, FromOtherQuest: true}
	if err := repo.Create(ctx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByDate(ctx, "user-1", "goal-1", "2026-08-29")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected drill")
	}
	if got.Main.Action != in.Main.Action {
		t.Errorf("main action = %q", got.Main.Action)
	}
	if got.Warmup == nil || !got.Warmup.FromOtherQuest {
		t.Errorf("warmup = %+v, want from-other-quest warmup", got.Warmup)
	}
	if got.Stretch != nil {
		t.Error("expected nil stretch")
	}
}

func TestDrillUniquePerDay(t *testing.T) {
	s := openTestStore(t)
	repo := s.Drills()
	ctx := context.Background()

	if err := repo.Create(ctx, testDrill("dr-1", "2026-08-29")); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := repo.Create(ctx, testDrill("dr-2", "2026-08-29"))
	if !fault.Is(err, fault.KindInvalidState) {
		t.Fatalf("second create err = %v, want invalid_state", err)
	}

	// A different date is fine.
	if err := repo.Create(ctx, testDrill("dr-3", "2026-08-30")); err != nil {
		t.Fatalf("create next day: %v", err)
	}
}

func TestDrillRecordOutcomeOnce(t *testing.T) {
	s := openTestStore(t)
	repo := s.Drills()
	ctx := context.Background()

	if err := repo.Create(ctx, testDrill("dr-1", "2026-08-29")); err != nil {
		t.Fatalf("create: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	if err := repo.RecordOutcome(ctx, "dr-1", drill.OutcomePass, "clean run", now); err != nil {
		t.Fatalf("record: %v", err)
	}

	got, err := repo.GetByDate(ctx, "user-1", "goal-1", "2026-08-29")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != drill.StatusCompleted || got.Outcome != drill.OutcomePass {
		t.Errorf("status = %q outcome = %q", got.Status, got.Outcome)
	}
	if got.CompletedAt == nil {
		t.Error("expected completed_at")
	}

	// Second write is rejected, the first outcome stands.
	err = repo.RecordOutcome(ctx, "dr-1", drill.OutcomeFail, "changed my mind", now)
	if !fault.Is(err, fault.KindInvalidState) {
		t.Fatalf("re-record err = %v, want invalid_state", err)
	}
	got, _ = repo.GetByDate(ctx, "user-1", "goal-1", "2026-08-29")
	if got.Outcome != drill.OutcomePass {
		t.Errorf("outcome after re-record = %q, want pass", got.Outcome)
	}
}

func TestDrillRecordOutcomeMissing(t *testing.T) {
	s := openTestStore(t)
	err := s.Drills().RecordOutcome(context.Background(), "nope", drill.OutcomePass, "", time.Now())
	if !fault.Is(err, fault.KindNotFound) {
		t.Fatalf("err = %v, want not_found", err)
	}
}

func TestDrillMarkMissedAndListOpen(t *testing.T) {
	s := openTestStore(t)
	repo := s.Drills()
	ctx := context.Background()

	if err := repo.Create(ctx, testDrill("dr-1", "2026-08-27")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, testDrill("dr-2", "2026-08-28")); err != nil {
		t.Fatalf("create: %v", err)
	}

	open, err := repo.ListOpenBefore(ctx, "user-1", "goal-1", "2026-08-29")
	if err != nil {
		t.Fatalf("list open: %v", err)
	}
	if len(open) != 2 || open[0].ID != "dr-1" {
		t.Fatalf("open = %v, want [dr-1, dr-2]", open)
	}

	if err := repo.MarkMissed(ctx, "dr-1"); err != nil {
		t.Fatalf("mark missed: %v", err)
	}
	open, err = repo.ListOpenBefore(ctx, "user-1", "goal-1", "2026-08-29")
	if err != nil {
		t.Fatalf("list open: %v", err)
	}
	if len(open) != 1 || open[0].ID != "dr-2" {
		t.Fatalf("open after miss = %v, want [dr-2]", open)
	}
}

func TestWeekPlanActiveAndUpdate(t *testing.T) {
	s := openTestStore(t)
	repo := s.Weeks()
	ctx := context.Background()

	weeks := []*week.WeekPlan{
		{ID: "wk-1", GoalID: "goal-1", QuestID: "quest-1", WeekNumber: 1, StartDay: 1, EndDay: 7, Status: week.StatusActive},
		{ID: "wk-2", GoalID: "goal-1", QuestID: "quest-1", WeekNumber: 2, StartDay: 8, EndDay: 14, Status: week.StatusPending},
	}
	if err := repo.CreateBatch(ctx, weeks); err != nil {
		t.Fatalf("create: %v", err)
	}

	active, err := repo.GetActive(ctx, "goal-1")
	if err != nil {
		t.Fatalf("get active: %v", err)
	}
	if active == nil || active.ID != "wk-1" {
		t.Fatalf("active = %+v, want wk-1", active)
	}

	active.DrillsCompleted = 3
	active.DrillsPassed = 2
	active.CarryForwardIDs = []string{"sk-9"}
	active.Status = week.StatusCompleted
	if err := repo.Update(ctx, active); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.Get(ctx, "wk-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.DrillsPassed != 2 || got.Status != week.StatusCompleted {
		t.Errorf("got %+v", got)
	}
	if len(got.CarryForwardIDs) != 1 || got.CarryForwardIDs[0] != "sk-9" {
		t.Errorf("carry forward = %v", got.CarryForwardIDs)
	}

	// No active week remains.
	active, err = repo.GetActive(ctx, "goal-1")
	if err != nil {
		t.Fatalf("get active: %v", err)
	}
	if active != nil {
		t.Errorf("active = %+v, want nil", active)
	}
}

func TestLearningPlanRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Plans()
	ctx := context.Background()

	in := &LearningPlan{
		ID:                 "pl-1",
		GoalID:             "goal-1",
		UserID:             "user-1",
		Title:              "Ship a CLI tool",
		Duration:           quest.DurationFixed,
		DailyMinutesBudget: 30,
		Quests: []quest.Quest{
			{ID: "quest-1", GoalID: "goal-1", Title: "Argument parsing", Topic: "cli", OrderIndex: 0},
			{ID: "quest-2", GoalID: "goal-1", Title: "Config files", Topic: "cli", OrderIndex: 1},
		},
		TotalSkills:   10,
		TotalMinutes:  200,
		EstimatedDays: 7,
		CreatedAt:     time.Now().UTC(),
	}
	if err := repo.Create(ctx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByGoal(ctx, "goal-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != in.Title || got.Duration != quest.DurationFixed {
		t.Errorf("got %+v", got)
	}
	if len(got.Quests) != 2 || got.Quests[1].ID != "quest-2" {
		t.Errorf("quests = %v", got.Quests)
	}

	g := got.Goal()
	if g.ID != "goal-1" || len(g.QuestIDs) != 2 {
		t.Errorf("goal = %+v", g)
	}

	// One plan per goal.
	err = repo.Create(ctx, in)
	if !fault.Is(err, fault.KindInvalidState) {
		t.Fatalf("duplicate create err = %v, want invalid_state", err)
	}
}

func TestMilestoneRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Milestones()
	ctx := context.Background()

	in := &week.QuestMilestone{
		ID:                     "ms-1",
		QuestID:                "quest-1",
		GoalID:                 "goal-1",
		Title:                  "Argument parsing checkpoint",
		RequiredMasteryPercent: 80,
		AcceptanceCriteria:     []string{"Parses flags", "Rejects bad input"},
		Status:                 week.MilestoneLocked,
	}
	if err := repo.CreateBatch(ctx, []*week.QuestMilestone{in}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByQuest(ctx, "quest-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != week.MilestoneLocked || got.RequiredMasteryPercent != 80 {
		t.Errorf("got %+v", got)
	}

	now := time.Now().UTC().Truncate(time.Second)
	got.Status = week.MilestoneCompleted
	got.CompletedAt = &now
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err = repo.GetByQuest(ctx, "quest-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != week.MilestoneCompleted || got.CompletedAt == nil {
		t.Errorf("got %+v", got)
	}
}

func TestEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "stage-gen",
		InputTokens:  120,
		OutputTokens: 800,
		LatencyMs:    950,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append llm: %v", err)
	}

	err = repo.AppendMasteryEvent(ctx, MasteryEventData{
		SkillID:   "sk-1",
		GoalID:    "goal-1",
		FromState: "practicing",
		ToState:   "mastered",
		Trigger:   "pass",
		DrillID:   "dr-1",
	})
	if err != nil {
		t.Fatalf("append mastery: %v", err)
	}

	// Sequences are shared across event types.
	llm, err := s.Client().LLMRequestEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query llm event: %v", err)
	}
	mastery, err := s.Client().MasteryEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query mastery event: %v", err)
	}
	if mastery.Sequence != llm.Sequence+1 {
		t.Errorf("sequences = (%d, %d), want consecutive", llm.Sequence, mastery.Sequence)
	}
}

func TestEventList(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "anthropic",
			Model:    "claude-sonnet-4-5",
			Purpose:  "stage-gen",
			Success:  true,
		})
		if err != nil {
			t.Fatalf("append llm %d: %v", i, err)
		}
	}
	err := repo.AppendMasteryEvent(ctx, MasteryEventData{
		SkillID:   "sk-1",
		GoalID:    "goal-1",
		FromState: "attempting",
		ToState:   "practicing",
		Trigger:   "pass",
	})
	if err != nil {
		t.Fatalf("append mastery: %v", err)
	}

	llm, err := repo.ListLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("list llm: %v", err)
	}
	if len(llm) != 2 {
		t.Fatalf("len(llm) = %d, want 2", len(llm))
	}
	if llm[0].Sequence <= llm[1].Sequence {
		t.Errorf("llm events not newest first: %d, %d", llm[0].Sequence, llm[1].Sequence)
	}

	events, err := repo.ListMasteryEvents(ctx, "goal-1", 0)
	if err != nil {
		t.Fatalf("list mastery: %v", err)
	}
	if len(events) != 1 || events[0].ToState != "practicing" {
		t.Fatalf("mastery events = %+v, want one practicing transition", events)
	}
	other, err := repo.ListMasteryEvents(ctx, "goal-2", 0)
	if err != nil {
		t.Fatalf("list mastery other goal: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("len(other) = %d, want 0", len(other))
	}
}
