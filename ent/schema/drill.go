package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Drill is one day's exercise instance. The unique (user_id, goal_id, date)
// index is the database-level anchor for the one-drill-per-day invariant;
// concurrent get-or-create races resolve here.
type Drill struct {
	ent.Schema
}

// DrillSection is the serialized form of a drill section for persistence.
type DrillSection struct {
	Kind            string `json:"kind"`
	Action          string `json:"action"`
	PassSignal      string `json:"pass_signal,omitempty"`
	Constraint      string `json:"constraint,omitempty"`
	Minutes         int    `json:"minutes"`
	FromOtherQuest  bool   `json:"from_other_quest,omitempty"`
	DesignedFailure string `json:"designed_failure,omitempty"`
	Recovery        string `json:"recovery,omitempty"`
}

func (Drill) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").NotEmpty().Immutable(),
		field.String("user_id").NotEmpty().Immutable(),
		field.String("goal_id").NotEmpty().Immutable(),
		field.String("quest_id").NotEmpty().Immutable(),
		field.String("skill_id").NotEmpty().Immutable(),
		field.String("date").
			NotEmpty().
			Immutable().
			Comment("Calendar date in YYYY-MM-DD form"),
		field.Int("day_number").Default(0),
		field.Int("week_number").Default(0),
		field.JSON("warmup", &DrillSection{}).
			Optional().
			Comment("Optional warmup block, possibly from another quest"),
		field.JSON("main", DrillSection{}),
		field.JSON("stretch", &DrillSection{}).
			Optional(),
		field.String("status").
			NotEmpty().
			Comment("scheduled, completed, or missed"),
		field.String("outcome").
			Default("").
			Comment("pass, fail, partial, or skipped; empty until recorded"),
		field.String("observation").Default(""),
		field.Bool("is_retry").Default(false),
		field.Int("retry_count").Default(0),
		field.String("carry_forward").
			Default("").
			Comment("Free-text continuity note carried from the previous day"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (Drill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "goal_id", "date").Unique(),
		index.Fields("goal_id", "status"),
		index.Fields("skill_id"),
	}
}
