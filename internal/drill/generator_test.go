package drill

import (
	"strings"
	"testing"

	"github.com/praxis-coach/praxis/internal/skill"
)

func testSkill() *skill.Skill {
	return &skill.Skill{
		ID:               "s1",
		QuestID:          "q1",
		GoalID:           "g1",
		UserID:           "u1",
		Title:            "Handlers — reproduce",
		Action:           "Write a minimal HTTP handler",
		SuccessSignal:    "Completed: handler returns 200 on /health",
		LockedVariables:  []string{"Keep the same approach for the whole exercise"},
		EstimatedMinutes: 20,
		Type:             skill.TypeFoundation,
		TransferScenario: "a gRPC health check",
	}
}

func day(budget int) DayContext {
	return DayContext{Date: "2026-03-02", DayNumber: 1, WeekNumber: 1, DailyMinutes: budget}
}

func TestGenerate_MainSection(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	s := testSkill()

	d := g.Generate(s, nil, day(60))

	if d.Main.Action != s.Action {
		t.Errorf("main action = %q", d.Main.Action)
	}
	if d.Main.PassSignal != s.SuccessSignal {
		t.Errorf("main pass signal = %q", d.Main.PassSignal)
	}
	if d.Main.Constraint != s.LockedVariables[0] {
		t.Errorf("main constraint = %q", d.Main.Constraint)
	}
	if d.Main.Minutes != 20 {
		t.Errorf("main minutes = %d", d.Main.Minutes)
	}
	if d.Status != StatusScheduled {
		t.Errorf("status = %s", d.Status)
	}
	if d.Warmup != nil {
		t.Error("warmup present without a review skill")
	}
}

func TestGenerate_StretchByType(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	cases := []struct {
		typ  skill.Type
		want string
	}{
		{skill.TypeFoundation, "new context"},
		{skill.TypeBuilding, "Combine"},
		{skill.TypeCompound, "Explain"},
		{skill.TypeSynthesis, "three-quarters"},
	}
	for _, c := range cases {
		s := testSkill()
		s.Type = c.typ
		d := g.Generate(s, nil, day(60))
		if d.Stretch == nil {
			t.Errorf("type %s: no stretch section", c.typ)
			continue
		}
		if !strings.Contains(d.Stretch.Action, c.want) {
			t.Errorf("type %s: stretch action %q missing %q", c.typ, d.Stretch.Action, c.want)
		}
	}
}

func TestGenerate_WarmupProvenance(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	s := testSkill()
	review := testSkill()
	review.ID = "s0"
	review.QuestID = "q0"
	review.Title = "Loops — reproduce"

	d := g.Generate(s, review, day(60))
	if d.Warmup == nil {
		t.Fatal("no warmup with a review skill supplied")
	}
	if !d.Warmup.FromOtherQuest {
		t.Error("warmup from another quest not provenance-flagged")
	}

	review.QuestID = s.QuestID
	d = g.Generate(s, review, day(60))
	if d.Warmup.FromOtherQuest {
		t.Error("same-quest warmup wrongly flagged")
	}
}

func TestGenerate_BudgetTrimsStretchThenWarmup(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	s := testSkill() // main 20, warmup 5, stretch 10

	review := testSkill()
	review.ID = "s0"

	d := g.Generate(s, review, day(60))
	if d.Warmup == nil || d.Stretch == nil {
		t.Fatal("expected all sections within a 60-minute budget")
	}

	d = g.Generate(s, review, day(30))
	if d.Stretch != nil {
		t.Error("stretch kept over budget, should drop first")
	}
	if d.Warmup == nil {
		t.Error("warmup dropped although stretch alone restored the budget")
	}

	d = g.Generate(s, review, day(20))
	if d.Warmup != nil || d.Stretch != nil {
		t.Error("only the main section fits a 20-minute budget")
	}
	if d.Main.Minutes != 20 {
		t.Error("main section must never be dropped or shrunk")
	}
}

func TestAdaptForRetry_Scaling(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	s := testSkill() // 20 minutes

	prev := g.Generate(s, nil, day(60))
	prev.Outcome = OutcomeFail
	prev.Observation = "lost the thread halfway"

	d := g.AdaptForRetry(s, prev, 1, day(60))
	if !d.IsRetry || d.RetryCount != 1 {
		t.Errorf("retry bookkeeping = %v/%d", d.IsRetry, d.RetryCount)
	}
	if d.Main.Minutes != 25 { // 20 × 1.25
		t.Errorf("first retry minutes = %d, want 25", d.Main.Minutes)
	}
	if d.Stretch != nil {
		t.Error("retry drill kept the stretch section")
	}
	if !strings.Contains(d.Main.Action, "lost the thread halfway") {
		t.Errorf("observation not prepended: %q", d.Main.Action)
	}
	if d.CarryForward != "lost the thread halfway" {
		t.Errorf("carry-forward = %q", d.CarryForward)
	}

	d = g.AdaptForRetry(s, prev, 2, day(60))
	if d.Main.Minutes != 30 { // 20 × 1.5
		t.Errorf("second retry minutes = %d, want 30", d.Main.Minutes)
	}
}

func TestNeedsRetry(t *testing.T) {
	d := &Drill{Outcome: OutcomeFail}
	if !d.NeedsRetry() {
		t.Error("fail should need retry")
	}
	d.Outcome = OutcomePartial
	if !d.NeedsRetry() {
		t.Error("partial should need retry")
	}
	d.Outcome = OutcomePass
	if d.NeedsRetry() {
		t.Error("pass should not need retry")
	}
	d.Outcome = OutcomeSkipped
	if d.NeedsRetry() {
		t.Error("skipped should not need retry")
	}
}
