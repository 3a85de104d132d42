package coach

import (
	"context"

	"github.com/praxis-coach/praxis/internal/drill"
	"github.com/praxis-coach/praxis/internal/fault"
	"github.com/praxis-coach/praxis/internal/mastery"
	"github.com/praxis-coach/praxis/internal/skill"
	"github.com/praxis-coach/praxis/internal/store"
	"github.com/praxis-coach/praxis/internal/week"
)

// RecordResult summarizes everything one outcome changed.
type RecordResult struct {
	Drill      *drill.Drill
	Transition mastery.Transition

	// Unlocked lists skills flipped from locked to available.
	Unlocked []string

	// MilestoneUnlocked is set when this outcome pushed the quest's
	// milestone from locked to available.
	MilestoneUnlocked bool

	// RetryTomorrow is set when the outcome schedules a retry of the
	// same skill for the next drill.
	RetryTomorrow bool

	// AlreadyRecorded is set when the identical outcome had been
	// recorded before and nothing changed.
	AlreadyRecorded bool
}

// RecordOutcome records the result of a date's drill and advances all
// downstream state: skill mastery, unlock propagation, week counters, and
// milestone gating. Recording the same outcome twice is a no-op; recording a
// different outcome over an existing one is an invalid-state error.
func (s *Service) RecordOutcome(ctx context.Context, goalID, date string, outcome drill.Outcome, observation string) (*RecordResult, error) {
	plan, err := s.stores.Plans.GetByGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}

	d, err := s.stores.Drills.GetByDate(ctx, plan.UserID, goalID, date)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fault.NotFound("no drill for goal %s on %s", goalID, date)
	}

	if d.Status != drill.StatusScheduled {
		if d.Outcome == outcome {
			return &RecordResult{Drill: d, AlreadyRecorded: true}, nil
		}
		return nil, fault.InvalidState("drill on %s already recorded as %s", date, d.Outcome)
	}

	now := s.now()
	if err := s.stores.Drills.RecordOutcome(ctx, d.ID, outcome, observation, now); err != nil {
		return nil, err
	}
	d.Status = drill.StatusCompleted
	d.Outcome = outcome
	d.Observation = observation
	d.CompletedAt = &now

	skills, err := s.stores.Skills.ListByGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	set := skill.NewSet(skills)
	sk := set.Get(d.SkillID)
	if sk == nil {
		return nil, fault.NotFound("skill %s behind drill %s", d.SkillID, d.ID)
	}

	res := &RecordResult{Drill: d}

	// Skips leave mastery untouched.
	if outcome != drill.OutcomeSkipped {
		switch outcome {
		case drill.OutcomePass:
			res.Transition = mastery.ApplyPass(sk, now)
		default: // fail and partial both break the streak
			res.Transition = mastery.ApplyFail(sk, now)
			res.RetryTomorrow = d.RetryCount < s.cfg.Drill.MaxRetries
		}
		if err := s.stores.Skills.UpdateTracking(ctx, sk); err != nil {
			return nil, err
		}
		if res.Transition.From != res.Transition.To {
			s.appendMasteryEvent(ctx, store.MasteryEventData{
				SkillID:   sk.ID,
				GoalID:    goalID,
				FromState: string(res.Transition.From),
				ToState:   string(res.Transition.To),
				Trigger:   res.Transition.Trigger,
				DrillID:   d.ID,
			})
		}

		for _, unlocked := range mastery.PropagateFrom(set, sk.ID) {
			if err := s.stores.Skills.UpdateTracking(ctx, unlocked); err != nil {
				return nil, err
			}
			res.Unlocked = append(res.Unlocked, unlocked.ID)
			s.appendMasteryEvent(ctx, store.MasteryEventData{
				SkillID:   unlocked.ID,
				GoalID:    goalID,
				FromState: string(skill.StatusLocked),
				ToState:   string(skill.StatusAvailable),
				Trigger:   "unlock",
				DrillID:   d.ID,
			})
		}
	}

	if err := s.updateWeek(ctx, goalID, d, outcome, res.Transition, set); err != nil {
		return nil, err
	}

	unlocked, err := s.evaluateMilestone(ctx, d.QuestID, set)
	if err != nil {
		return nil, err
	}
	res.MilestoneUnlocked = unlocked

	return res, nil
}

// SkipDrill records today's drill as skipped without touching mastery.
func (s *Service) SkipDrill(ctx context.Context, goalID, date, reason string) (*RecordResult, error) {
	return s.RecordOutcome(ctx, goalID, date, drill.OutcomeSkipped, reason)
}

// updateWeek folds the outcome into the active week's counters and closes
// the week once its final day is recorded.
func (s *Service) updateWeek(ctx context.Context, goalID string, d *drill.Drill, outcome drill.Outcome, tr mastery.Transition, set *skill.Set) error {
	w, err := s.stores.Weeks.GetActive(ctx, goalID)
	if err != nil {
		return err
	}
	if w == nil {
		return nil
	}

	masteredDelta := 0
	if tr.To == skill.MasteryMastered && tr.From != skill.MasteryMastered {
		masteredDelta = 1
	}
	w.RecordOutcome(outcome, masteredDelta)

	if d.DayNumber >= w.EndDay {
		if err := s.closeWeek(ctx, goalID, w, set); err != nil {
			return err
		}
	}
	return s.stores.Weeks.Update(ctx, w)
}

// closeWeek completes w and activates the next pending week, persisting the
// activation. The caller persists w itself.
func (s *Service) closeWeek(ctx context.Context, goalID string, w *week.WeekPlan, set *skill.Set) error {
	var questSkills []*skill.Skill
	for _, sk := range set.Ordered() {
		if sk.QuestID == w.QuestID {
			questSkills = append(questSkills, sk)
		}
	}

	all, err := s.stores.Weeks.ListByGoal(ctx, goalID)
	if err != nil {
		return err
	}
	var next *week.WeekPlan
	for _, cand := range all {
		if cand.WeekNumber == w.WeekNumber+1 {
			next = cand
			break
		}
	}

	if err := w.Complete(questSkills, next); err != nil {
		return err
	}
	if next != nil {
		if err := s.stores.Weeks.Update(ctx, next); err != nil {
			return err
		}
	}
	return nil
}

// evaluateMilestone unlocks the quest's milestone when its mastery gate is
// newly crossed.
func (s *Service) evaluateMilestone(ctx context.Context, questID string, set *skill.Set) (bool, error) {
	m, err := s.stores.Milestones.GetByQuest(ctx, questID)
	if err != nil {
		if fault.Is(err, fault.KindNotFound) {
			return false, nil
		}
		return false, err
	}

	var questSkills []*skill.Skill
	for _, sk := range set.Ordered() {
		if sk.QuestID == questID {
			questSkills = append(questSkills, sk)
		}
	}
	if !m.Evaluate(questSkills) {
		return false, nil
	}
	if err := s.stores.Milestones.Update(ctx, m); err != nil {
		return false, err
	}
	return true, nil
}
