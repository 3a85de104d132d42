package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WeekPlan is a contiguous seven-day span within one quest, with cumulative
// outcome counters. At most one week per goal is active at a time.
type WeekPlan struct {
	ent.Schema
}

func (WeekPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").NotEmpty().Immutable(),
		field.String("goal_id").NotEmpty().Immutable(),
		field.String("quest_id").NotEmpty().Immutable(),
		field.Int("week_number").Immutable(),
		field.Int("start_day").
			Immutable().
			Comment("1-based day number within the plan"),
		field.Int("end_day").Immutable(),
		field.Int("drills_completed").Default(0),
		field.Int("drills_passed").Default(0),
		field.Int("drills_failed").Default(0),
		field.Int("drills_skipped").Default(0),
		field.Int("skills_mastered").Default(0),
		field.JSON("carry_forward", []string{}).
			Optional().
			Comment("Skills still short of practicing when the week closed"),
		field.String("status").
			NotEmpty().
			Comment("pending, active, or completed"),
	}
}

func (WeekPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("goal_id", "week_number").Unique(),
		index.Fields("goal_id", "status"),
		index.Fields("quest_id"),
	}
}
