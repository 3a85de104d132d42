// Package schedule picks the one skill a learner practices today via a
// strict five-tier priority cascade: retry yesterday's failure, reinforce a
// practicing skill, advance to the next unlocked skill in sequence, loop
// back over mastered skills (ongoing goals), then fall back to anything
// still at attempting.
package schedule

import (
	"github.com/praxis-coach/praxis/internal/drill"
	"github.com/praxis-coach/praxis/internal/fault"
	"github.com/praxis-coach/praxis/internal/quest"
	"github.com/praxis-coach/praxis/internal/skill"
)

// Tier names the cascade level that produced a selection.
type Tier string

const (
	TierRetry      Tier = "retry"
	TierReinforce  Tier = "reinforce"
	TierNext       Tier = "next_in_sequence"
	TierLoopBack   Tier = "loop_back"
	TierAttempting Tier = "attempting"
	TierFallback   Tier = "fallback"
)

// Selection is the scheduler's answer for one (goal, date).
type Selection struct {
	Skill       *skill.Skill
	Tier        Tier
	IsRetry     bool
	RetryCount  int
	ContextNote string // yesterday's observation, on retries
}

// Scheduler applies the cascade over a goal's skill set.
type Scheduler struct {
	// MaxRetries caps tier-1 reselection; a skill past it is flagged for
	// manual review and the cascade continues below.
	MaxRetries int
}

// NewScheduler creates a Scheduler.
func NewScheduler(maxRetries int) *Scheduler {
	return &Scheduler{MaxRetries: maxRetries}
}

// SelectForToday runs the cascade. yesterday may be nil. Skills flagged for
// manual review are never auto-retried. For a fixed-duration goal with
// nothing left to practice it returns a Completed-kind error; for an ongoing
// goal it falls back to the first skill by index rather than failing.
func (sc *Scheduler) SelectForToday(g *quest.Goal, set *skill.Set, yesterday *drill.Drill) (*Selection, error) {
	// Tier 1: retry yesterday's fail or partial.
	if yesterday != nil && yesterday.NeedsRetry() {
		if s := set.Get(yesterday.SkillID); s != nil && !s.NeedsReview {
			if yesterday.RetryCount >= sc.MaxRetries {
				// Retries exhausted: hand the skill to a human and keep
				// the cascade moving.
				s.NeedsReview = true
			} else {
				return &Selection{
					Skill:       s,
					Tier:        TierRetry,
					IsRetry:     true,
					RetryCount:  yesterday.RetryCount + 1,
					ContextNote: yesterday.Observation,
				}, nil
			}
		}
	}

	ordered := set.Ordered()

	// Tier 2: reinforce the practicing skill with the shortest streak.
	var reinforce *skill.Skill
	for _, s := range ordered {
		if s.Mastery != skill.MasteryPracticing {
			continue
		}
		if reinforce == nil || s.ConsecutivePasses < reinforce.ConsecutivePasses {
			reinforce = s
		}
	}
	if reinforce != nil {
		return &Selection{Skill: reinforce, Tier: TierReinforce}, nil
	}

	// Tier 3: next not-started skill in sequence whose prerequisites are met.
	for _, s := range ordered {
		if s.Mastery == skill.MasteryNotStarted && set.PrereqsMet(s) {
			return &Selection{Skill: s, Tier: TierNext}, nil
		}
	}

	// Tier 4: ongoing goals loop back over the stalest mastered skill.
	if g.Duration == quest.DurationOngoing {
		var stalest *skill.Skill
		for _, s := range ordered {
			if s.Mastery != skill.MasteryMastered {
				continue
			}
			if stalest == nil || olderPractice(s, stalest) {
				stalest = s
			}
		}
		if stalest != nil {
			return &Selection{Skill: stalest, Tier: TierLoopBack}, nil
		}
	}

	// Tier 5: anything still at attempting.
	for _, s := range ordered {
		if s.Mastery == skill.MasteryAttempting {
			return &Selection{Skill: s, Tier: TierAttempting}, nil
		}
	}

	if g.Duration == quest.DurationFixed {
		return nil, fault.Completed("goal %q has no remaining skills to practice", g.ID)
	}

	// Ongoing goal with nothing selectable: restart from the top rather
	// than reporting a failure.
	if len(ordered) > 0 {
		return &Selection{Skill: ordered[0], Tier: TierFallback}, nil
	}
	return nil, fault.NotFound("goal %q has no skills", g.ID)
}

// olderPractice reports whether a was practiced longer ago than b.
// A skill never practiced counts as oldest.
func olderPractice(a, b *skill.Skill) bool {
	switch {
	case a.LastPracticedAt == nil:
		return b.LastPracticedAt != nil
	case b.LastPracticedAt == nil:
		return false
	default:
		return a.LastPracticedAt.Before(*b.LastPracticedAt)
	}
}
