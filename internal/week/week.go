// Package week rolls daily drill outcomes into week- and quest-level
// aggregates: per-week counters, week lifecycle transitions with
// carry-forward, and milestone gating by aggregate mastery.
package week

import (
	"time"

	"github.com/praxis-coach/praxis/internal/drill"
	"github.com/praxis-coach/praxis/internal/fault"
	"github.com/praxis-coach/praxis/internal/skill"
)

// DaysPerWeek is the span of one WeekPlan.
const DaysPerWeek = 7

// Status is a week's lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// WeekPlan is a contiguous day span within one quest, with cumulative
// outcome counters.
type WeekPlan struct {
	ID         string
	GoalID     string
	QuestID    string
	WeekNumber int
	StartDay   int // 1-based day number within the plan
	EndDay     int

	DrillsCompleted int
	DrillsPassed    int
	DrillsFailed    int
	DrillsSkipped   int
	SkillsMastered  int

	// CarryForwardIDs are the skills still short of practicing when the
	// week closed; they seed the next week's focus.
	CarryForwardIDs []string

	Status Status
}

// PassRate returns passed/completed, or 0 with no completed drills.
func (w *WeekPlan) PassRate() float64 {
	if w.DrillsCompleted == 0 {
		return 0
	}
	return float64(w.DrillsPassed) / float64(w.DrillsCompleted)
}

// RecordOutcome folds one drill outcome into the week's counters.
// masteredDelta is 1 when the outcome pushed a skill to mastered.
func (w *WeekPlan) RecordOutcome(outcome drill.Outcome, masteredDelta int) {
	w.DrillsCompleted++
	switch outcome {
	case drill.OutcomePass:
		w.DrillsPassed++
	case drill.OutcomeFail, drill.OutcomePartial:
		w.DrillsFailed++
	case drill.OutcomeSkipped:
		w.DrillsSkipped++
	}
	w.SkillsMastered += masteredDelta
}

// Complete transitions an active week to completed, computes the
// carry-forward set from the quest's skills, and activates next (which may
// be nil at the end of a quest). Completing a non-active week is an
// invalid-state error.
func (w *WeekPlan) Complete(questSkills []*skill.Skill, next *WeekPlan) error {
	if w.Status != StatusActive {
		return fault.InvalidState("week %d is %s, only an active week can be completed", w.WeekNumber, w.Status)
	}

	w.CarryForwardIDs = nil
	for _, s := range questSkills {
		if !skill.PrereqSatisfied(s.Mastery) {
			w.CarryForwardIDs = append(w.CarryForwardIDs, s.ID)
		}
	}
	w.Status = StatusCompleted

	if next != nil {
		if next.Status != StatusPending {
			return fault.InvalidState("next week %d is %s, expected pending", next.WeekNumber, next.Status)
		}
		next.Status = StatusActive
	}
	return nil
}

// MilestoneStatus is a quest milestone's lifecycle state.
type MilestoneStatus string

const (
	MilestoneLocked     MilestoneStatus = "locked"
	MilestoneAvailable  MilestoneStatus = "available"
	MilestoneInProgress MilestoneStatus = "in_progress"
	MilestoneCompleted  MilestoneStatus = "completed"
)

// QuestMilestone is the synthesis checkpoint closing a quest, gated by a
// required mastery percentage across the quest's skills.
type QuestMilestone struct {
	ID      string
	QuestID string
	GoalID  string
	Title   string

	RequiredMasteryPercent int
	AcceptanceCriteria     []string

	Status      MilestoneStatus
	CompletedAt *time.Time
}

// MasteryPercent computes the mastered share of a skill set, 0–100.
func MasteryPercent(skills []*skill.Skill) float64 {
	if len(skills) == 0 {
		return 0
	}
	mastered := 0
	for _, s := range skills {
		if s.Mastery == skill.MasteryMastered {
			mastered++
		}
	}
	return float64(mastered) / float64(len(skills)) * 100
}

// Evaluate unlocks a locked milestone once the quest's mastery percentage
// crosses the gate. It never completes a milestone; that requires explicit
// learner confirmation. Returns true when the status changed.
func (m *QuestMilestone) Evaluate(questSkills []*skill.Skill) bool {
	if m.Status != MilestoneLocked {
		return false
	}
	if MasteryPercent(questSkills) >= float64(m.RequiredMasteryPercent) {
		m.Status = MilestoneAvailable
		return true
	}
	return false
}

// Start moves an available milestone to in_progress.
func (m *QuestMilestone) Start() error {
	if m.Status != MilestoneAvailable {
		return fault.InvalidState("milestone for quest %s is %s, must be available to start", m.QuestID, m.Status)
	}
	m.Status = MilestoneInProgress
	return nil
}

// Confirm completes the milestone from the learner's self-assessment. Every
// acceptance criterion must be confirmed; the transition never happens
// automatically.
func (m *QuestMilestone) Confirm(selfAssessment map[string]bool, now time.Time) error {
	if m.Status != MilestoneInProgress && m.Status != MilestoneAvailable {
		return fault.InvalidState("milestone for quest %s is %s, cannot be completed", m.QuestID, m.Status)
	}
	for _, criterion := range m.AcceptanceCriteria {
		if !selfAssessment[criterion] {
			return fault.InvalidState("acceptance criterion not confirmed: %q", criterion)
		}
	}
	m.Status = MilestoneCompleted
	m.CompletedAt = &now
	return nil
}
