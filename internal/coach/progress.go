package coach

import (
	"context"

	"github.com/praxis-coach/praxis/internal/fault"
	"github.com/praxis-coach/praxis/internal/skill"
	"github.com/praxis-coach/praxis/internal/store"
	"github.com/praxis-coach/praxis/internal/week"
)

// QuestProgress summarizes one quest's state.
type QuestProgress struct {
	QuestID        string
	Title          string
	TotalSkills    int
	Mastered       int
	Practicing     int
	MasteryPercent float64
	Milestone      *week.QuestMilestone
}

// Progress summarizes a whole goal.
type Progress struct {
	Plan           *store.LearningPlan
	Quests         []QuestProgress
	TotalSkills    int
	Mastered       int
	MasteryPercent float64

	// NeedsReview lists skills whose automatic retries ran out.
	NeedsReview []*skill.Skill

	CurrentWeek *week.WeekPlan
}

// GetProgress assembles the goal-level progress view.
func (s *Service) GetProgress(ctx context.Context, goalID string) (*Progress, error) {
	plan, err := s.stores.Plans.GetByGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	skills, err := s.stores.Skills.ListByGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}

	p := &Progress{Plan: plan, TotalSkills: len(skills)}

	byQuest := make(map[string][]*skill.Skill)
	for _, sk := range skills {
		byQuest[sk.QuestID] = append(byQuest[sk.QuestID], sk)
		if sk.Mastery == skill.MasteryMastered {
			p.Mastered++
		}
		if sk.NeedsReview {
			p.NeedsReview = append(p.NeedsReview, sk)
		}
	}
	if p.TotalSkills > 0 {
		p.MasteryPercent = float64(p.Mastered) / float64(p.TotalSkills) * 100
	}

	for _, q := range plan.Quests {
		qSkills := byQuest[q.ID]
		qp := QuestProgress{
			QuestID:        q.ID,
			Title:          q.Title,
			TotalSkills:    len(qSkills),
			MasteryPercent: week.MasteryPercent(qSkills),
		}
		for _, sk := range qSkills {
			switch sk.Mastery {
			case skill.MasteryMastered:
				qp.Mastered++
			case skill.MasteryPracticing:
				qp.Practicing++
			}
		}
		if m, err := s.stores.Milestones.GetByQuest(ctx, q.ID); err == nil {
			qp.Milestone = m
		} else if !fault.Is(err, fault.KindNotFound) {
			return nil, err
		}
		p.Quests = append(p.Quests, qp)
	}

	if w, err := s.stores.Weeks.GetActive(ctx, goalID); err != nil {
		return nil, err
	} else {
		p.CurrentWeek = w
	}

	return p, nil
}

// GetCurrentWeek returns the active week, or nil when none is.
func (s *Service) GetCurrentWeek(ctx context.Context, goalID string) (*week.WeekPlan, error) {
	return s.stores.Weeks.GetActive(ctx, goalID)
}

// GetWeeks returns every week of a goal in order.
func (s *Service) GetWeeks(ctx context.Context, goalID string) ([]*week.WeekPlan, error) {
	return s.stores.Weeks.ListByGoal(ctx, goalID)
}

// CompleteWeek closes the active week early, computing carry-forward and
// activating the next week.
func (s *Service) CompleteWeek(ctx context.Context, goalID string) (*week.WeekPlan, error) {
	w, err := s.stores.Weeks.GetActive(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fault.NotFound("goal %s has no active week", goalID)
	}

	skills, err := s.stores.Skills.ListByGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if err := s.closeWeek(ctx, goalID, w, skill.NewSet(skills)); err != nil {
		return nil, err
	}
	if err := s.stores.Weeks.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// StartMilestone moves an available milestone to in_progress.
func (s *Service) StartMilestone(ctx context.Context, questID string) (*week.QuestMilestone, error) {
	m, err := s.stores.Milestones.GetByQuest(ctx, questID)
	if err != nil {
		return nil, err
	}
	if err := m.Start(); err != nil {
		return nil, err
	}
	if err := s.stores.Milestones.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// CompleteMilestone confirms a milestone from the learner's self-assessment.
// Every acceptance criterion must be confirmed; mastery percentages alone
// never complete a milestone.
func (s *Service) CompleteMilestone(ctx context.Context, questID string, selfAssessment map[string]bool) (*week.QuestMilestone, error) {
	m, err := s.stores.Milestones.GetByQuest(ctx, questID)
	if err != nil {
		return nil, err
	}
	if err := m.Confirm(selfAssessment, s.now()); err != nil {
		return nil, err
	}
	if err := s.stores.Milestones.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
