package store

import (
	"context"

	"github.com/praxis-coach/praxis/ent"
	entweek "github.com/praxis-coach/praxis/ent/weekplan"
	"github.com/praxis-coach/praxis/internal/fault"
	"github.com/praxis-coach/praxis/internal/week"
)

// weekPlanRepo implements WeekPlanRepo backed by ent.
type weekPlanRepo struct {
	client *ent.Client
}

func (r *weekPlanRepo) CreateBatch(ctx context.Context, weeks []*week.WeekPlan) error {
	builders := make([]*ent.WeekPlanCreate, 0, len(weeks))
	for _, w := range weeks {
		builders = append(builders, r.client.WeekPlan.Create().
			SetID(w.ID).
			SetGoalID(w.GoalID).
			SetQuestID(w.QuestID).
			SetWeekNumber(w.WeekNumber).
			SetStartDay(w.StartDay).
			SetEndDay(w.EndDay).
			SetDrillsCompleted(w.DrillsCompleted).
			SetDrillsPassed(w.DrillsPassed).
			SetDrillsFailed(w.DrillsFailed).
			SetDrillsSkipped(w.DrillsSkipped).
			SetSkillsMastered(w.SkillsMastered).
			SetCarryForward(w.CarryForwardIDs).
			SetStatus(string(w.Status)))
	}
	if _, err := r.client.WeekPlan.CreateBulk(builders...).Save(ctx); err != nil {
		return fault.Store(err, "create %d week plans", len(weeks))
	}
	return nil
}

func (r *weekPlanRepo) Get(ctx context.Context, id string) (*week.WeekPlan, error) {
	e, err := r.client.WeekPlan.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fault.NotFound("week plan %s", id)
	}
	if err != nil {
		return nil, fault.Store(err, "get week plan %s", id)
	}
	return fromEntWeekPlan(e), nil
}

func (r *weekPlanRepo) GetActive(ctx context.Context, goalID string) (*week.WeekPlan, error) {
	e, err := r.client.WeekPlan.Query().
		Where(
			entweek.GoalID(goalID),
			entweek.Status(string(week.StatusActive)),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fault.Store(err, "get active week for goal %s", goalID)
	}
	return fromEntWeekPlan(e), nil
}

func (r *weekPlanRepo) ListByGoal(ctx context.Context, goalID string) ([]*week.WeekPlan, error) {
	rows, err := r.client.WeekPlan.Query().
		Where(entweek.GoalID(goalID)).
		Order(ent.Asc(entweek.FieldWeekNumber)).
		All(ctx)
	if err != nil {
		return nil, fault.Store(err, "list weeks for goal %s", goalID)
	}
	out := make([]*week.WeekPlan, len(rows))
	for i, e := range rows {
		out[i] = fromEntWeekPlan(e)
	}
	return out, nil
}

func (r *weekPlanRepo) Update(ctx context.Context, w *week.WeekPlan) error {
	err := r.client.WeekPlan.UpdateOneID(w.ID).
		SetDrillsCompleted(w.DrillsCompleted).
		SetDrillsPassed(w.DrillsPassed).
		SetDrillsFailed(w.DrillsFailed).
		SetDrillsSkipped(w.DrillsSkipped).
		SetSkillsMastered(w.SkillsMastered).
		SetCarryForward(w.CarryForwardIDs).
		SetStatus(string(w.Status)).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return fault.NotFound("week plan %s", w.ID)
	}
	if err != nil {
		return fault.Store(err, "update week plan %s", w.ID)
	}
	return nil
}

func fromEntWeekPlan(e *ent.WeekPlan) *week.WeekPlan {
	return &week.WeekPlan{
		ID:              e.ID,
		GoalID:          e.GoalID,
		QuestID:         e.QuestID,
		WeekNumber:      e.WeekNumber,
		StartDay:        e.StartDay,
		EndDay:          e.EndDay,
		DrillsCompleted: e.DrillsCompleted,
		DrillsPassed:    e.DrillsPassed,
		DrillsFailed:    e.DrillsFailed,
		DrillsSkipped:   e.DrillsSkipped,
		SkillsMastered:  e.SkillsMastered,
		CarryForwardIDs: e.CarryForward,
		Status:          week.Status(e.Status),
	}
}
