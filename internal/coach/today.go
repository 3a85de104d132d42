package coach

import (
	"context"

	"github.com/praxis-coach/praxis/internal/drill"
	"github.com/praxis-coach/praxis/internal/fault"
	"github.com/praxis-coach/praxis/internal/skill"
)

// Today is the answer to "what do I practice right now".
type Today struct {
	Drill *drill.Drill

	// Tier names the scheduling tier that picked the skill; empty when an
	// already materialized drill was returned.
	Tier string

	// Reconciled lists drills from earlier dates that were marked missed.
	Reconciled []string
}

// GetTodayPractice returns the drill for the given date, creating it on
// first call. Calling it twice for the same date returns the same drill;
// outstanding drills from earlier dates are marked missed first.
func (s *Service) GetTodayPractice(ctx context.Context, goalID, date string) (*Today, error) {
	plan, err := s.stores.Plans.GetByGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	g := plan.Goal()

	if existing, err := s.stores.Drills.GetByDate(ctx, g.UserID, goalID, date); err != nil {
		return nil, err
	} else if existing != nil {
		return &Today{Drill: existing}, nil
	}

	reconciled, err := s.reconcileMissed(ctx, g.UserID, goalID, date)
	if err != nil {
		return nil, err
	}

	skills, err := s.stores.Skills.ListByGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	set := skill.NewSet(skills)

	// The most recent drill drives the retry tier; after a missed day it
	// can be older than yesterday.
	previous, err := s.stores.Drills.Latest(ctx, g.UserID, goalID)
	if err != nil {
		return nil, err
	}

	sel, err := s.scheduler.SelectForToday(g, set, previous)
	if err != nil {
		return nil, err
	}

	// The cascade may flag the previous skill for review as a side effect.
	if previous != nil {
		if ps := set.Get(previous.SkillID); ps != nil && ps.NeedsReview {
			if err := s.stores.Skills.UpdateTracking(ctx, ps); err != nil {
				return nil, err
			}
		}
	}

	day := drill.DayContext{Date: date, DayNumber: 1, WeekNumber: 1, DailyMinutes: g.DailyMinutesBudget}
	if previous != nil {
		day.DayNumber = previous.DayNumber + 1
	}
	if active, err := s.stores.Weeks.GetActive(ctx, goalID); err != nil {
		return nil, err
	} else if active != nil {
		day.WeekNumber = active.WeekNumber
	}

	var d *drill.Drill
	if sel.IsRetry {
		d = s.generator.AdaptForRetry(sel.Skill, previous, sel.RetryCount, day)
	} else {
		d = s.generator.Generate(sel.Skill, s.pickReview(set, sel.Skill), day)
	}

	if err := s.stores.Drills.Create(ctx, d); err != nil {
		// Lost a creation race: someone materialized today's drill
		// between our lookup and the insert. Serve theirs.
		if fault.Is(err, fault.KindInvalidState) {
			existing, gerr := s.stores.Drills.GetByDate(ctx, g.UserID, goalID, date)
			if gerr == nil && existing != nil {
				return &Today{Drill: existing, Reconciled: reconciled}, nil
			}
		}
		return nil, err
	}

	return &Today{Drill: d, Tier: string(sel.Tier), Reconciled: reconciled}, nil
}

// reconcileMissed marks still-scheduled drills from earlier dates as missed.
func (s *Service) reconcileMissed(ctx context.Context, userID, goalID, date string) ([]string, error) {
	open, err := s.stores.Drills.ListOpenBefore(ctx, userID, goalID, date)
	if err != nil {
		return nil, err
	}
	var dates []string
	for _, d := range open {
		if err := s.stores.Drills.MarkMissed(ctx, d.ID); err != nil {
			return nil, err
		}
		dates = append(dates, d.Date)
	}
	return dates, nil
}

// pickReview chooses the warmup review skill: a mastered prerequisite of the
// selection when one exists, otherwise the least recently practiced mastered
// skill anywhere in the goal.
func (s *Service) pickReview(set *skill.Set, selected *skill.Skill) *skill.Skill {
	for _, id := range selected.PrerequisiteIDs {
		if p := set.Get(id); p != nil && p.Mastery == skill.MasteryMastered {
			return p
		}
	}

	var stalest *skill.Skill
	for _, sk := range set.Ordered() {
		if sk.ID == selected.ID || sk.Mastery != skill.MasteryMastered {
			continue
		}
		if stalest == nil || olderPractice(sk, stalest) {
			stalest = sk
		}
	}
	return stalest
}

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
