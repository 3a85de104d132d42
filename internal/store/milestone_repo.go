package store

import (
	"context"

	"github.com/praxis-coach/praxis/ent"
	entmilestone "github.com/praxis-coach/praxis/ent/questmilestone"
	"github.com/praxis-coach/praxis/internal/fault"
	"github.com/praxis-coach/praxis/internal/week"
)

// milestoneRepo implements MilestoneRepo backed by ent.
type milestoneRepo struct {
	client *ent.Client
}

func (r *milestoneRepo) CreateBatch(ctx context.Context, milestones []*week.QuestMilestone) error {
	builders := make([]*ent.QuestMilestoneCreate, 0, len(milestones))
	for _, m := range milestones {
		builders = append(builders, r.client.QuestMilestone.Create().
			SetID(m.ID).
			SetQuestID(m.QuestID).
			SetGoalID(m.GoalID).
			SetTitle(m.Title).
			SetRequiredMasteryPercent(m.RequiredMasteryPercent).
			SetAcceptanceCriteria(m.AcceptanceCriteria).
			SetStatus(string(m.Status)).
			SetNillableCompletedAt(m.CompletedAt))
	}
	if _, err := r.client.QuestMilestone.CreateBulk(builders...).Save(ctx); err != nil {
		return fault.Store(err, "create %d milestones", len(milestones))
	}
	return nil
}

func (r *milestoneRepo) GetByQuest(ctx context.Context, questID string) (*week.QuestMilestone, error) {
	e, err := r.client.QuestMilestone.Query().
		Where(entmilestone.QuestID(questID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fault.NotFound("no milestone for quest %s", questID)
	}
	if err != nil {
		return nil, fault.Store(err, "get milestone for quest %s", questID)
	}
	return fromEntMilestone(e), nil
}

func (r *milestoneRepo) ListByGoal(ctx context.Context, goalID string) ([]*week.QuestMilestone, error) {
	rows, err := r.client.QuestMilestone.Query().
		Where(entmilestone.GoalID(goalID)).
		All(ctx)
	if err != nil {
		return nil, fault.Store(err, "list milestones for goal %s", goalID)
	}
	out := make([]*week.QuestMilestone, len(rows))
	for i, e := range rows {
		out[i] = fromEntMilestone(e)
	}
	return out, nil
}

func (r *milestoneRepo) Update(ctx context.Context, m *week.QuestMilestone) error {
	b := r.client.QuestMilestone.UpdateOneID(m.ID).
		SetStatus(string(m.Status))
	if m.CompletedAt != nil {
		b = b.SetCompletedAt(*m.CompletedAt)
	}
	if err := b.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fault.NotFound("milestone %s", m.ID)
		}
		return fault.Store(err, "update milestone %s", m.ID)
	}
	return nil
}

func fromEntMilestone(e *ent.QuestMilestone) *week.QuestMilestone {
	return &week.QuestMilestone{
		ID:                     e.ID,
		QuestID:                e.QuestID,
		GoalID:                 e.GoalID,
		Title:                  e.Title,
		RequiredMasteryPercent: e.RequiredMasteryPercent,
		AcceptanceCriteria:     e.AcceptanceCriteria,
		Status:                 week.MilestoneStatus(e.Status),
		CompletedAt:            e.CompletedAt,
	}
}
