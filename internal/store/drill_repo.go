package store

import (
	"context"
	"time"

	"github.com/praxis-coach/praxis/ent"
	entdrill "github.com/praxis-coach/praxis/ent/drill"
	"github.com/praxis-coach/praxis/ent/schema"
	"github.com/praxis-coach/praxis/internal/drill"
	"github.com/praxis-coach/praxis/internal/fault"
)

// drillRepo implements DrillRepo backed by ent.
type drillRepo struct {
	client *ent.Client
}

func (r *drillRepo) Create(ctx context.Context, d *drill.Drill) error {
	b := r.client.Drill.Create().
		SetID(d.ID).
		SetUserID(d.UserID).
		SetGoalID(d.GoalID).
		SetQuestID(d.QuestID).
		SetSkillID(d.SkillID).
		SetDate(d.Date).
		SetDayNumber(d.DayNumber).
		SetWeekNumber(d.WeekNumber).
		SetMain(toSectionData(&d.Main)).
		SetStatus(string(d.Status)).
		SetOutcome(string(d.Outcome)).
		SetObservation(d.Observation).
		SetIsRetry(d.IsRetry).
		SetRetryCount(d.RetryCount).
		SetCarryForward(d.CarryForward).
		SetCreatedAt(d.CreatedAt).
		SetNillableCompletedAt(d.CompletedAt)
	if d.Warmup != nil {
		s := toSectionData(d.Warmup)
		b = b.SetWarmup(&s)
	}
	if d.Stretch != nil {
		s := toSectionData(d.Stretch)
		b = b.SetStretch(&s)
	}
	if err := b.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return fault.Wrap(fault.KindInvalidState, err, "drill already exists for %s on %s", d.GoalID, d.Date)
		}
		return fault.Store(err, "create drill %s", d.ID)
	}
	return nil
}

func (r *drillRepo) GetByDate(ctx context.Context, userID, goalID, date string) (*drill.Drill, error) {
	e, err := r.client.Drill.Query().
		Where(
			entdrill.UserID(userID),
			entdrill.GoalID(goalID),
			entdrill.Date(date),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fault.Store(err, "get drill for %s on %s", goalID, date)
	}
	return fromEntDrill(e), nil
}

func (r *drillRepo) Latest(ctx context.Context, userID, goalID string) (*drill.Drill, error) {
	e, err := r.client.Drill.Query().
		Where(
			entdrill.UserID(userID),
			entdrill.GoalID(goalID),
		).
		Order(ent.Desc(entdrill.FieldDate)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fault.Store(err, "latest drill for %s", goalID)
	}
	return fromEntDrill(e), nil
}

// RecordOutcome is guarded by a status predicate so a drill whose outcome is
// already recorded is never overwritten, even under concurrent callers.
func (r *drillRepo) RecordOutcome(ctx context.Context, id string, outcome drill.Outcome, observation string, completedAt time.Time) error {
	n, err := r.client.Drill.Update().
		Where(
			entdrill.ID(id),
			entdrill.Status(string(drill.StatusScheduled)),
		).
		SetStatus(string(drill.StatusCompleted)).
		SetOutcome(string(outcome)).
		SetObservation(observation).
		SetCompletedAt(completedAt).
		Save(ctx)
	if err != nil {
		return fault.Store(err, "record outcome for drill %s", id)
	}
	if n == 0 {
		return r.classifyNoRows(ctx, id)
	}
	return nil
}

func (r *drillRepo) MarkMissed(ctx context.Context, id string) error {
	n, err := r.client.Drill.Update().
		Where(
			entdrill.ID(id),
			entdrill.Status(string(drill.StatusScheduled)),
		).
		SetStatus(string(drill.StatusMissed)).
		Save(ctx)
	if err != nil {
		return fault.Store(err, "mark drill %s missed", id)
	}
	if n == 0 {
		return r.classifyNoRows(ctx, id)
	}
	return nil
}

// classifyNoRows distinguishes a missing drill from one that already left
// the scheduled state.
func (r *drillRepo) classifyNoRows(ctx context.Context, id string) error {
	e, err := r.client.Drill.Get(ctx, id)
	if ent.IsNotFound(err) {
		return fault.NotFound("drill %s", id)
	}
	if err != nil {
		return fault.Store(err, "get drill %s", id)
	}
	return fault.InvalidState("drill %s is %s, only a scheduled drill can change", id, e.Status)
}

func (r *drillRepo) ListOpenBefore(ctx context.Context, userID, goalID, date string) ([]*drill.Drill, error) {
	rows, err := r.client.Drill.Query().
		Where(
			entdrill.UserID(userID),
			entdrill.GoalID(goalID),
			entdrill.Status(string(drill.StatusScheduled)),
			entdrill.DateLT(date),
		).
		Order(ent.Asc(entdrill.FieldDate)).
		All(ctx)
	if err != nil {
		return nil, fault.Store(err, "list open drills for %s before %s", goalID, date)
	}
	out := make([]*drill.Drill, len(rows))
	for i, e := range rows {
		out[i] = fromEntDrill(e)
	}
	return out, nil
}

func toSectionData(s *drill.Section) schema.DrillSection {
	return schema.DrillSection{
		Kind:            string(s.Kind),
		Action:          s.Action,
		PassSignal:      s.PassSignal,
		Constraint:      s.Constraint,
		Minutes:         s.Minutes,
		FromOtherQuest:  s.FromOtherQuest,
		DesignedFailure: s.DesignedFailure,
		Recovery:        s.Recovery,
	}
}

func fromSectionData(d *schema.DrillSection) *drill.Section {
	if d == nil {
		return nil
	}
	return &drill.Section{
		Kind:            drill.SectionKind(d.Kind),
		Action:          d.Action,
		PassSignal:      d.PassSignal,
		Constraint:      d.Constraint,
		Minutes:         d.Minutes,
		FromOtherQuest:  d.FromOtherQuest,
		DesignedFailure: d.DesignedFailure,
		Recovery:        d.Recovery,
	}
}

func fromEntDrill(e *ent.Drill) *drill.Drill {
	d := &drill.Drill{
		ID:           e.ID,
		UserID:       e.UserID,
		GoalID:       e.GoalID,
		QuestID:      e.QuestID,
		SkillID:      e.SkillID,
		Date:         e.Date,
		DayNumber:    e.DayNumber,
		WeekNumber:   e.WeekNumber,
		Main:         *fromSectionData(&e.Main),
		Status:       drill.Status(e.Status),
		Outcome:      drill.Outcome(e.Outcome),
		Observation:  e.Observation,
		IsRetry:      e.IsRetry,
		RetryCount:   e.RetryCount,
		CarryForward: e.CarryForward,
		CreatedAt:    e.CreatedAt,
		CompletedAt:  e.CompletedAt,
	}
	d.Warmup = fromSectionData(e.Warmup)
	d.Stretch = fromSectionData(e.Stretch)
	return d
}
