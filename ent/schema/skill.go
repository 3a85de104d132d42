package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Skill is an atomic practice unit derived from one capability stage.
type Skill struct {
	ent.Schema
}

func (Skill) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").NotEmpty().Immutable(),
		field.String("quest_id").NotEmpty().Immutable(),
		field.String("goal_id").NotEmpty().Immutable(),
		field.String("user_id").NotEmpty().Immutable(),
		field.String("title").NotEmpty(),
		field.String("action").NotEmpty(),
		field.String("success_signal").NotEmpty(),
		field.JSON("locked_variables", []string{}),
		field.Int("estimated_minutes").Positive(),
		field.String("skill_type").NotEmpty(),
		field.Int("order_index"),
		field.String("stage_level").Optional(),
		field.JSON("prerequisites", []string{}).
			Optional().
			Comment("Prerequisite skill IDs, possibly crossing quests"),
		field.JSON("components", []string{}).
			Optional().
			Comment("Component skill IDs for compound skills"),
		field.String("designed_failure").Optional(),
		field.String("consequence").Optional(),
		field.String("recovery").Optional(),
		field.String("transfer_scenario").Optional(),
		field.String("mastery").NotEmpty(),
		field.String("status").NotEmpty(),
		field.Int("pass_count").Default(0),
		field.Int("fail_count").Default(0),
		field.Int("consecutive_passes").Default(0),
		field.Bool("needs_review").Default(false),
		field.Time("last_practiced_at").Optional().Nillable(),
	}
}

func (Skill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quest_id"),
		index.Fields("goal_id"),
		index.Fields("goal_id", "order_index"),
	}
}
