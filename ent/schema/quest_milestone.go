package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestMilestone is the synthesis checkpoint closing a quest, gated by a
// required mastery percentage and completed only by learner confirmation.
type QuestMilestone struct {
	ent.Schema
}

func (QuestMilestone) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").NotEmpty().Immutable(),
		field.String("quest_id").NotEmpty().Immutable(),
		field.String("goal_id").NotEmpty().Immutable(),
		field.String("title").NotEmpty(),
		field.Int("required_mastery_percent").
			Comment("Mastered share of quest skills, 0-100, needed to unlock"),
		field.JSON("acceptance_criteria", []string{}).
			Comment("Every criterion must be self-confirmed to complete"),
		field.String("status").
			NotEmpty().
			Comment("locked, available, in_progress, or completed"),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (QuestMilestone) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quest_id").Unique(),
		index.Fields("goal_id", "status"),
	}
}
