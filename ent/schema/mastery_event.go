package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryEvent records a mastery state transition for audit and analytics.
type MasteryEvent struct {
	ent.Schema
}

func (MasteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("skill_id").NotEmpty(),
		field.String("goal_id").NotEmpty(),
		field.String("from_state").NotEmpty(),
		field.String("to_state").NotEmpty(),
		field.String("trigger").
			NotEmpty().
			Comment("pass, fail, or unlock"),
		field.String("drill_id").Optional(),
	}
}

func (MasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id"),
		index.Fields("goal_id"),
	}
}
