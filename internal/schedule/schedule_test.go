package schedule

import (
	"testing"
	"time"

	"github.com/praxis-coach/praxis/internal/drill"
	"github.com/praxis-coach/praxis/internal/fault"
	"github.com/praxis-coach/praxis/internal/quest"
	"github.com/praxis-coach/praxis/internal/skill"
)

func fixedGoal() *quest.Goal {
	return &quest.Goal{ID: "g1", UserID: "u1", Duration: quest.DurationFixed}
}

func ongoingGoal() *quest.Goal {
	g := fixedGoal()
	g.Duration = quest.DurationOngoing
	return g
}

func sk(id string, order int, m skill.Mastery, prereqs ...string) *skill.Skill {
	st := skill.StatusAvailable
	if m == skill.MasteryMastered {
		st = skill.StatusMastered
	}
	return &skill.Skill{
		ID:              id,
		OrderIndex:      order,
		Mastery:         m,
		Status:          st,
		PrerequisiteIDs: prereqs,
	}
}

func TestSelect_Tier3_FirstUnlockedNotStarted(t *testing.T) {
	sc := NewScheduler(3)
	a := sk("a", 0, skill.MasteryNotStarted)
	b := sk("b", 1, skill.MasteryNotStarted, "a")
	set := skill.NewSet([]*skill.Skill{a, b})

	sel, err := sc.SelectForToday(fixedGoal(), set, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sel.Skill.ID != "a" || sel.Tier != TierNext {
		t.Errorf("selected %s via %s, want a via next_in_sequence", sel.Skill.ID, sel.Tier)
	}
	if sel.IsRetry {
		t.Error("fresh selection marked as retry")
	}
}

func TestSelect_Tier1_RetryAfterFail(t *testing.T) {
	sc := NewScheduler(3)
	a := sk("a", 0, skill.MasteryAttempting)
	set := skill.NewSet([]*skill.Skill{a})

	yesterday := &drill.Drill{
		SkillID:     "a",
		Outcome:     drill.OutcomeFail,
		RetryCount:  0,
		Observation: "ran out of time on step two",
	}

	sel, err := sc.SelectForToday(fixedGoal(), set, yesterday)
	if err != nil {
		t.Fatal(err)
	}
	if sel.Skill.ID != "a" || !sel.IsRetry || sel.RetryCount != 1 {
		t.Errorf("got %s retry=%v count=%d, want a retry=true count=1", sel.Skill.ID, sel.IsRetry, sel.RetryCount)
	}
	if sel.ContextNote != "ran out of time on step two" {
		t.Errorf("context note = %q", sel.ContextNote)
	}
}

func TestSelect_Tier1_PartialAlsoRetries(t *testing.T) {
	sc := NewScheduler(3)
	a := sk("a", 0, skill.MasteryPracticing)
	set := skill.NewSet([]*skill.Skill{a})

	yesterday := &drill.Drill{SkillID: "a", Outcome: drill.OutcomePartial, RetryCount: 1}
	sel, err := sc.SelectForToday(fixedGoal(), set, yesterday)
	if err != nil {
		t.Fatal(err)
	}
	if !sel.IsRetry || sel.RetryCount != 2 {
		t.Errorf("retry=%v count=%d, want true/2", sel.IsRetry, sel.RetryCount)
	}
}

func TestSelect_RetryCapFlagsForReview(t *testing.T) {
	sc := NewScheduler(3)
	a := sk("a", 0, skill.MasteryAttempting)
	b := sk("b", 1, skill.MasteryNotStarted)
	set := skill.NewSet([]*skill.Skill{a, b})

	yesterday := &drill.Drill{SkillID: "a", Outcome: drill.OutcomeFail, RetryCount: 3}
	sel, err := sc.SelectForToday(fixedGoal(), set, yesterday)
	if err != nil {
		t.Fatal(err)
	}
	if !a.NeedsReview {
		t.Error("skill past the retry cap not flagged for review")
	}
	if sel.IsRetry {
		t.Error("cascade still retried past the cap")
	}
	if sel.Skill.ID != "b" {
		t.Errorf("selected %s, want b (next in sequence)", sel.Skill.ID)
	}
}

func TestSelect_Tier2_ShortestStreakWins(t *testing.T) {
	sc := NewScheduler(3)
	a := sk("a", 0, skill.MasteryPracticing)
	a.ConsecutivePasses = 2
	b := sk("b", 1, skill.MasteryPracticing)
	b.ConsecutivePasses = 1
	c := sk("c", 2, skill.MasteryNotStarted)
	set := skill.NewSet([]*skill.Skill{a, b, c})

	sel, err := sc.SelectForToday(fixedGoal(), set, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sel.Skill.ID != "b" || sel.Tier != TierReinforce {
		t.Errorf("selected %s via %s, want b via reinforce", sel.Skill.ID, sel.Tier)
	}

	// Tie goes to the lower order index.
	b.ConsecutivePasses = 2
	sel, _ = sc.SelectForToday(fixedGoal(), set, nil)
	if sel.Skill.ID != "a" {
		t.Errorf("tie broke to %s, want a", sel.Skill.ID)
	}
}

func TestSelect_Tier4_OngoingLoopBack(t *testing.T) {
	sc := NewScheduler(3)
	old := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

	a := sk("a", 0, skill.MasteryMastered)
	a.LastPracticedAt = &recent
	b := sk("b", 1, skill.MasteryMastered)
	b.LastPracticedAt = &old
	set := skill.NewSet([]*skill.Skill{a, b})

	sel, err := sc.SelectForToday(ongoingGoal(), set, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sel.Skill.ID != "b" || sel.Tier != TierLoopBack {
		t.Errorf("selected %s via %s, want b via loop_back", sel.Skill.ID, sel.Tier)
	}
}

func TestSelect_FixedGoalCompleted(t *testing.T) {
	sc := NewScheduler(3)
	a := sk("a", 0, skill.MasteryMastered)
	set := skill.NewSet([]*skill.Skill{a})

	_, err := sc.SelectForToday(fixedGoal(), set, nil)
	if !fault.Is(err, fault.KindCompleted) {
		t.Errorf("err = %v, want completed kind", err)
	}
}

func TestSelect_Tier5_Attempting(t *testing.T) {
	sc := NewScheduler(3)
	a := sk("a", 0, skill.MasteryAttempting)
	set := skill.NewSet([]*skill.Skill{a})

	sel, err := sc.SelectForToday(fixedGoal(), set, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sel.Skill.ID != "a" || sel.Tier != TierAttempting {
		t.Errorf("selected %s via %s", sel.Skill.ID, sel.Tier)
	}
}

func TestSelect_OngoingFallbackToFirst(t *testing.T) {
	sc := NewScheduler(3)
	// Mastered but ongoing loop-back covers it; force the fallback with a
	// set where tier 4 cannot fire either.
	a := sk("a", 0, skill.MasteryNotStarted, "ghost") // unmet prereq, never selectable
	set := skill.NewSet([]*skill.Skill{a})

	sel, err := sc.SelectForToday(ongoingGoal(), set, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sel.Skill.ID != "a" || sel.Tier != TierFallback {
		t.Errorf("selected %v via %s, want a via fallback", sel.Skill.ID, sel.Tier)
	}
}
