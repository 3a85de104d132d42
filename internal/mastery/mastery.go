// Package mastery advances a skill's mastery state from observed pass/fail
// outcomes and propagates unlocks through the prerequisite graph.
//
// States move not_started → attempting → practicing → mastered. Mastered is
// terminal for required practice; ongoing goals may still reselect mastered
// skills for reinforcement.
package mastery

import (
	"time"

	"github.com/praxis-coach/praxis/internal/skill"
)

// Mastery thresholds: a skill is mastered once it has at least
// MinTotalPasses passes overall and the last MinConsecutivePasses were
// consecutive.
const (
	MinConsecutivePasses = 2
	MinTotalPasses       = 3
)

// Transition records a mastery state change for event logging and display.
type Transition struct {
	SkillID string
	From    skill.Mastery
	To      skill.Mastery
	Trigger string // "pass", "fail"
}

// ApplyPass records a passed drill outcome on the skill and returns the
// resulting transition (From == To when the state did not change).
func ApplyPass(s *skill.Skill, now time.Time) Transition {
	from := s.Mastery

	s.PassCount++
	s.ConsecutivePasses++
	s.LastPracticedAt = &now

	switch {
	case s.ConsecutivePasses >= MinConsecutivePasses && s.PassCount >= MinTotalPasses:
		s.Mastery = skill.MasteryMastered
		s.Status = skill.StatusMastered
	case s.PassCount >= 1:
		s.Mastery = skill.MasteryPracticing
		s.Status = skill.StatusInProgress
	default:
		s.Mastery = skill.MasteryAttempting
		s.Status = skill.StatusInProgress
	}

	return Transition{SkillID: s.ID, From: from, To: s.Mastery, Trigger: "pass"}
}

// ApplyFail records a failed drill outcome. A single failure does not erase
// prior progress but it breaks the mastery streak.
func ApplyFail(s *skill.Skill, now time.Time) Transition {
	from := s.Mastery

	s.FailCount++
	s.ConsecutivePasses = 0
	s.LastPracticedAt = &now

	if s.PassCount > 0 {
		s.Mastery = skill.MasteryPracticing
	} else {
		s.Mastery = skill.MasteryAttempting
	}
	s.Status = skill.StatusInProgress

	return Transition{SkillID: s.ID, From: from, To: s.Mastery, Trigger: "fail"}
}

// Propagate flips locked skills to available once every prerequisite sits at
// practicing or mastered. It scans the whole set, so unlocks cross quest
// boundaries, and it is idempotent: re-running it changes nothing.
// Returns the skills whose status changed.
func Propagate(set *skill.Set) []*skill.Skill {
	var changed []*skill.Skill
	for _, s := range set.Ordered() {
		if s.Status != skill.StatusLocked {
			continue
		}
		if set.PrereqsMet(s) {
			s.Status = skill.StatusAvailable
			changed = append(changed, s)
		}
	}
	return changed
}

// PropagateFrom flips locked dependents of one skill to available once their
// prerequisites sit at practicing or mastered. Only direct dependents can
// change: availability never satisfies a prerequisite, so an unlock cannot
// cascade further. Returns the skills whose status changed.
func PropagateFrom(set *skill.Set, skillID string) []*skill.Skill {
	var changed []*skill.Skill
	for _, id := range set.Dependents(skillID) {
		d := set.Get(id)
		if d == nil || d.Status != skill.StatusLocked {
			continue
		}
		if set.PrereqsMet(d) {
			d.Status = skill.StatusAvailable
			changed = append(changed, d)
		}
	}
	return changed
}
