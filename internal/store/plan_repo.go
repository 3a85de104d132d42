package store

import (
	"context"

	"github.com/praxis-coach/praxis/ent"
	entplan "github.com/praxis-coach/praxis/ent/learningplan"
	"github.com/praxis-coach/praxis/ent/schema"
	"github.com/praxis-coach/praxis/internal/fault"
	"github.com/praxis-coach/praxis/internal/quest"
)

// learningPlanRepo implements LearningPlanRepo backed by ent.
type learningPlanRepo struct {
	client *ent.Client
}

func (r *learningPlanRepo) Create(ctx context.Context, p *LearningPlan) error {
	quests := make([]schema.PlanQuest, 0, len(p.Quests))
	for _, q := range p.Quests {
		quests = append(quests, schema.PlanQuest{
			ID:         q.ID,
			Title:      q.Title,
			Topic:      q.Topic,
			OrderIndex: q.OrderIndex,
		})
	}
	err := r.client.LearningPlan.Create().
		SetID(p.ID).
		SetGoalID(p.GoalID).
		SetUserID(p.UserID).
		SetTitle(p.Title).
		SetDuration(string(p.Duration)).
		SetDailyMinutesBudget(p.DailyMinutesBudget).
		SetQuests(quests).
		SetTotalSkills(p.TotalSkills).
		SetTotalMinutes(p.TotalMinutes).
		SetEstimatedDays(p.EstimatedDays).
		SetWarnings(p.Warnings).
		SetCreatedAt(p.CreatedAt).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fault.Wrap(fault.KindInvalidState, err, "goal %s already has a plan", p.GoalID)
		}
		return fault.Store(err, "create plan for goal %s", p.GoalID)
	}
	return nil
}

func (r *learningPlanRepo) GetByGoal(ctx context.Context, goalID string) (*LearningPlan, error) {
	e, err := r.client.LearningPlan.Query().
		Where(entplan.GoalID(goalID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fault.NotFound("no plan for goal %s", goalID)
	}
	if err != nil {
		return nil, fault.Store(err, "get plan for goal %s", goalID)
	}
	return fromEntPlan(e), nil
}

func (r *learningPlanRepo) List(ctx context.Context) ([]*LearningPlan, error) {
	rows, err := r.client.LearningPlan.Query().
		Order(ent.Desc(entplan.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fault.Store(err, "list plans")
	}
	out := make([]*LearningPlan, len(rows))
	for i, e := range rows {
		out[i] = fromEntPlan(e)
	}
	return out, nil
}

func fromEntPlan(e *ent.LearningPlan) *LearningPlan {
	p := &LearningPlan{
		ID:                 e.ID,
		GoalID:             e.GoalID,
		UserID:             e.UserID,
		Title:              e.Title,
		Duration:           quest.Duration(e.Duration),
		DailyMinutesBudget: e.DailyMinutesBudget,
		TotalSkills:        e.TotalSkills,
		TotalMinutes:       e.TotalMinutes,
		EstimatedDays:      e.EstimatedDays,
		Warnings:           e.Warnings,
		CreatedAt:          e.CreatedAt,
	}
	for _, q := range e.Quests {
		p.Quests = append(p.Quests, quest.Quest{
			ID:         q.ID,
			GoalID:     e.GoalID,
			Title:      q.Title,
			Topic:      q.Topic,
			OrderIndex: q.OrderIndex,
		})
	}
	return p
}
