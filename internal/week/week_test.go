package week

import (
	"testing"
	"time"

	"github.com/praxis-coach/praxis/internal/drill"
	"github.com/praxis-coach/praxis/internal/fault"
	"github.com/praxis-coach/praxis/internal/skill"
)

func masteredSkills(mastered, total int) []*skill.Skill {
	skills := make([]*skill.Skill, total)
	for i := range skills {
		m := skill.MasteryAttempting
		if i < mastered {
			m = skill.MasteryMastered
		}
		skills[i] = &skill.Skill{ID: string(rune('a' + i)), Mastery: m}
	}
	return skills
}

func TestRecordOutcome_Counters(t *testing.T) {
	w := &WeekPlan{Status: StatusActive}
	w.RecordOutcome(drill.OutcomePass, 0)
	w.RecordOutcome(drill.OutcomePass, 1)
	w.RecordOutcome(drill.OutcomeFail, 0)
	w.RecordOutcome(drill.OutcomeSkipped, 0)

	if w.DrillsCompleted != 4 || w.DrillsPassed != 2 || w.DrillsFailed != 1 || w.DrillsSkipped != 1 {
		t.Errorf("counters = %d/%d/%d/%d", w.DrillsCompleted, w.DrillsPassed, w.DrillsFailed, w.DrillsSkipped)
	}
	if w.SkillsMastered != 1 {
		t.Errorf("skills mastered = %d", w.SkillsMastered)
	}
	if rate := w.PassRate(); rate != 0.5 {
		t.Errorf("pass rate = %f, want 0.5", rate)
	}
}

func TestComplete_CarryForwardAndActivation(t *testing.T) {
	w := &WeekPlan{WeekNumber: 1, Status: StatusActive}
	next := &WeekPlan{WeekNumber: 2, Status: StatusPending}

	skills := []*skill.Skill{
		{ID: "a", Mastery: skill.MasteryMastered},
		{ID: "b", Mastery: skill.MasteryPracticing},
		{ID: "c", Mastery: skill.MasteryAttempting},
		{ID: "d", Mastery: skill.MasteryNotStarted},
	}

	if err := w.Complete(skills, next); err != nil {
		t.Fatal(err)
	}
	if w.Status != StatusCompleted {
		t.Errorf("week status = %s", w.Status)
	}
	if next.Status != StatusActive {
		t.Errorf("next week status = %s", next.Status)
	}
	if len(w.CarryForwardIDs) != 2 {
		t.Fatalf("carry-forward = %v, want [c d]", w.CarryForwardIDs)
	}
	if w.CarryForwardIDs[0] != "c" || w.CarryForwardIDs[1] != "d" {
		t.Errorf("carry-forward = %v", w.CarryForwardIDs)
	}
}

func TestComplete_NonActiveWeek(t *testing.T) {
	w := &WeekPlan{WeekNumber: 1, Status: StatusPending}
	err := w.Complete(nil, nil)
	if !fault.Is(err, fault.KindInvalidState) {
		t.Errorf("err = %v, want invalid_state", err)
	}
}

func TestEvaluate_MilestoneGate(t *testing.T) {
	m := &QuestMilestone{QuestID: "q1", RequiredMasteryPercent: 75, Status: MilestoneLocked}

	// 6 of 10 mastered: stays locked.
	if m.Evaluate(masteredSkills(6, 10)) {
		t.Error("milestone unlocked at 60%")
	}
	if m.Status != MilestoneLocked {
		t.Errorf("status = %s, want locked", m.Status)
	}

	// 8 of 10 mastered: becomes available.
	if !m.Evaluate(masteredSkills(8, 10)) {
		t.Error("milestone not unlocked at 80%")
	}
	if m.Status != MilestoneAvailable {
		t.Errorf("status = %s, want available", m.Status)
	}

	// Never auto-completes.
	if m.Evaluate(masteredSkills(10, 10)) {
		t.Error("evaluate changed a non-locked milestone")
	}
	if m.Status != MilestoneAvailable {
		t.Errorf("status = %s after full mastery, want available (completion is explicit)", m.Status)
	}
}

func TestMilestone_StartAndConfirm(t *testing.T) {
	m := &QuestMilestone{
		QuestID:            "q1",
		Status:             MilestoneLocked,
		AcceptanceCriteria: []string{"built it solo", "explained the design"},
	}

	if err := m.Start(); !fault.Is(err, fault.KindInvalidState) {
		t.Errorf("start on locked milestone: err = %v", err)
	}

	m.Status = MilestoneAvailable
	if err := m.Start(); err != nil {
		t.Fatal(err)
	}
	if m.Status != MilestoneInProgress {
		t.Errorf("status = %s", m.Status)
	}

	err := m.Confirm(map[string]bool{"built it solo": true}, time.Now())
	if !fault.Is(err, fault.KindInvalidState) {
		t.Errorf("partial self-assessment accepted: %v", err)
	}

	err = m.Confirm(map[string]bool{"built it solo": true, "explained the design": true}, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if m.Status != MilestoneCompleted || m.CompletedAt == nil {
		t.Errorf("status = %s, completedAt = %v", m.Status, m.CompletedAt)
	}
}
