package store

import (
	"context"
	"fmt"

	"github.com/praxis-coach/praxis/ent"
	entmasteryevent "github.com/praxis-coach/praxis/ent/masteryevent"
)

func (r *eventRepo) AppendMasteryEvent(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetSkillID(data.SkillID).
		SetGoalID(data.GoalID).
		SetFromState(data.FromState).
		SetToState(data.ToState).
		SetTrigger(data.Trigger)

	if data.DrillID != "" {
		builder = builder.SetDrillID(data.DrillID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListMasteryEvents(ctx context.Context, goalID string, limit int) ([]*MasteryEvent, error) {
	q := r.client.MasteryEvent.Query().
		Where(entmasteryevent.GoalID(goalID)).
		Order(ent.Desc(entmasteryevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mastery events: %w", err)
	}

	out := make([]*MasteryEvent, 0, len(rows))
	for _, e := range rows {
		out = append(out, &MasteryEvent{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			SkillID:   e.SkillID,
			GoalID:    e.GoalID,
			FromState: e.FromState,
			ToState:   e.ToState,
			Trigger:   e.Trigger,
			DrillID:   e.DrillID,
		})
	}
	return out, nil
}
