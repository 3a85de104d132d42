package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningPlan is the persisted root of one initialized goal: the goal's
// metadata, its ordered quests, and the decomposition totals. One plan
// exists per goal.
type LearningPlan struct {
	ent.Schema
}

// PlanQuest is the serialized form of a quest for persistence.
type PlanQuest struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Topic      string `json:"topic"`
	OrderIndex int    `json:"order_index"`
}

func (LearningPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").NotEmpty().Immutable(),
		field.String("goal_id").NotEmpty().Immutable(),
		field.String("user_id").NotEmpty().Immutable(),
		field.String("title").NotEmpty(),
		field.String("duration").
			NotEmpty().
			Comment("fixed or ongoing"),
		field.Int("daily_minutes_budget"),
		field.JSON("quests", []PlanQuest{}).
			Comment("Ordered quests of the goal"),
		field.Int("total_skills").Default(0),
		field.Int("total_minutes").Default(0),
		field.Int("estimated_days").Default(0),
		field.JSON("warnings", []string{}).
			Optional().
			Comment("Non-fatal decomposition warnings surfaced at init"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (LearningPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("goal_id").Unique(),
		index.Fields("user_id"),
	}
}
