package mastery

import (
	"testing"
	"time"

	"github.com/praxis-coach/praxis/internal/skill"
)

func newSkill(id string, prereqs ...string) *skill.Skill {
	return &skill.Skill{
		ID:              id,
		Mastery:         skill.MasteryNotStarted,
		Status:          skill.StatusLocked,
		PrerequisiteIDs: prereqs,
	}
}

func TestApplyPass_ThreeConsecutive(t *testing.T) {
	s := newSkill("s1")
	now := time.Now()

	tr := ApplyPass(s, now)
	if s.Mastery != skill.MasteryPracticing {
		t.Errorf("after 1 pass: mastery = %s, want practicing", s.Mastery)
	}
	if tr.From != skill.MasteryNotStarted || tr.To != skill.MasteryPracticing {
		t.Errorf("transition = %s→%s", tr.From, tr.To)
	}

	ApplyPass(s, now)
	if s.Mastery == skill.MasteryMastered {
		t.Error("mastered after 2 passes, threshold is 3")
	}

	tr = ApplyPass(s, now)
	if s.Mastery != skill.MasteryMastered {
		t.Errorf("after 3 consecutive passes: mastery = %s, want mastered", s.Mastery)
	}
	if s.ConsecutivePasses < MinConsecutivePasses || s.PassCount < MinTotalPasses {
		t.Errorf("mastered with consecutive=%d passes=%d", s.ConsecutivePasses, s.PassCount)
	}
	if s.Status != skill.StatusMastered {
		t.Errorf("status = %s, want mastered", s.Status)
	}
}

func TestApplyFail_BreaksStreakKeepsProgress(t *testing.T) {
	s := newSkill("s1")
	now := time.Now()

	ApplyPass(s, now)
	ApplyPass(s, now)
	tr := ApplyFail(s, now)

	if s.ConsecutivePasses != 0 {
		t.Errorf("consecutive passes = %d after fail, want 0", s.ConsecutivePasses)
	}
	if s.Mastery != skill.MasteryPracticing {
		t.Errorf("mastery = %s after fail with prior passes, want practicing", s.Mastery)
	}
	if s.PassCount != 2 || s.FailCount != 1 {
		t.Errorf("counts pass=%d fail=%d, want 2/1", s.PassCount, s.FailCount)
	}
	if tr.Trigger != "fail" {
		t.Errorf("trigger = %q", tr.Trigger)
	}

	// One fail then recovery: two more passes make 4 total with 2 consecutive.
	ApplyPass(s, now)
	if s.Mastery == skill.MasteryMastered {
		t.Error("mastered with only 1 consecutive pass after a fail")
	}
	ApplyPass(s, now)
	if s.Mastery != skill.MasteryMastered {
		t.Errorf("mastery = %s, want mastered (4 passes, 2 consecutive)", s.Mastery)
	}
}

func TestApplyFail_FirstOutcome(t *testing.T) {
	s := newSkill("s1")
	ApplyFail(s, time.Now())
	if s.Mastery != skill.MasteryAttempting {
		t.Errorf("mastery = %s after first fail, want attempting", s.Mastery)
	}
}

func TestPropagate_UnlocksWhenPrereqsMet(t *testing.T) {
	a := newSkill("a")
	a.Status = skill.StatusAvailable
	b := newSkill("b", "a")
	c := newSkill("c", "b")
	set := skill.NewSet([]*skill.Skill{a, b, c})

	if changed := Propagate(set); len(changed) != 0 {
		t.Fatalf("propagate flipped %d skills with nothing practicing", len(changed))
	}

	ApplyPass(a, time.Now()) // a → practicing
	changed := Propagate(set)
	if len(changed) != 1 || changed[0].ID != "b" {
		t.Fatalf("changed = %v, want [b]", ids(changed))
	}
	if b.Status != skill.StatusAvailable {
		t.Errorf("b status = %s, want available", b.Status)
	}
	if c.Status != skill.StatusLocked {
		t.Errorf("c status = %s, want locked (b is not practicing yet)", c.Status)
	}

	// Idempotent.
	if changed := Propagate(set); len(changed) != 0 {
		t.Errorf("second propagate changed %d skills", len(changed))
	}
}

func TestPropagateFrom_OnlyDependents(t *testing.T) {
	a := newSkill("a")
	a.Status = skill.StatusAvailable
	b := newSkill("b", "a")
	c := newSkill("c", "b")
	unrelated := newSkill("unrelated", "c")
	set := skill.NewSet([]*skill.Skill{a, b, c, unrelated})

	ApplyPass(a, time.Now()) // a → practicing
	changed := PropagateFrom(set, "a")
	if len(changed) != 1 || changed[0].ID != "b" {
		t.Fatalf("changed = %v, want [b]", ids(changed))
	}
	if c.Status != skill.StatusLocked {
		t.Errorf("c status = %s, want locked (not a dependent of a)", c.Status)
	}
	if unrelated.Status != skill.StatusLocked {
		t.Errorf("unrelated status = %s, want untouched", unrelated.Status)
	}

	// Matches the full scan.
	if changed := Propagate(set); len(changed) != 0 {
		t.Errorf("full propagate found %d skills the targeted walk missed", len(changed))
	}
}

func TestPropagate_CrossQuest(t *testing.T) {
	a := newSkill("a")
	a.QuestID = "q1"
	a.Mastery = skill.MasteryMastered
	a.Status = skill.StatusMastered
	b := newSkill("b", "a")
	b.QuestID = "q2"
	set := skill.NewSet([]*skill.Skill{a, b})

	Propagate(set)
	if b.Status != skill.StatusAvailable {
		t.Errorf("cross-quest unlock failed: b status = %s", b.Status)
	}
}

func ids(skills []*skill.Skill) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = s.ID
	}
	return out
}
