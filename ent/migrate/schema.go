// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DrillsColumns holds the columns for the "drills" table.
	DrillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "goal_id", Type: field.TypeString},
		{Name: "quest_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "date", Type: field.TypeString},
		{Name: "day_number", Type: field.TypeInt, Default: 0},
		{Name: "week_number", Type: field.TypeInt, Default: 0},
		{Name: "warmup", Type: field.TypeJSON, Nullable: true},
		{Name: "main", Type: field.TypeJSON},
		{Name: "stretch", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "outcome", Type: field.TypeString, Default: ""},
		{Name: "observation", Type: field.TypeString, Default: ""},
		{Name: "is_retry", Type: field.TypeBool, Default: false},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "carry_forward", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// DrillsTable holds the schema information for the "drills" table.
	DrillsTable = &schema.Table{
		Name:       "drills",
		Columns:    DrillsColumns,
		PrimaryKey: []*schema.Column{DrillsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "drill_user_id_goal_id_date",
				Unique:  true,
				Columns: []*schema.Column{DrillsColumns[1], DrillsColumns[2], DrillsColumns[5]},
			},
			{
				Name:    "drill_goal_id_status",
				Unique:  false,
				Columns: []*schema.Column{DrillsColumns[2], DrillsColumns[11]},
			},
			{
				Name:    "drill_skill_id",
				Unique:  false,
				Columns: []*schema.Column{DrillsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LearningPlansColumns holds the columns for the "learning_plans" table.
	LearningPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "goal_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "duration", Type: field.TypeString},
		{Name: "daily_minutes_budget", Type: field.TypeInt},
		{Name: "quests", Type: field.TypeJSON},
		{Name: "total_skills", Type: field.TypeInt, Default: 0},
		{Name: "total_minutes", Type: field.TypeInt, Default: 0},
		{Name: "estimated_days", Type: field.TypeInt, Default: 0},
		{Name: "warnings", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LearningPlansTable holds the schema information for the "learning_plans" table.
	LearningPlansTable = &schema.Table{
		Name:       "learning_plans",
		Columns:    LearningPlansColumns,
		PrimaryKey: []*schema.Column{LearningPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningplan_goal_id",
				Unique:  true,
				Columns: []*schema.Column{LearningPlansColumns[1]},
			},
			{
				Name:    "learningplan_user_id",
				Unique:  false,
				Columns: []*schema.Column{LearningPlansColumns[2]},
			},
		},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "goal_id", Type: field.TypeString},
		{Name: "from_state", Type: field.TypeString},
		{Name: "to_state", Type: field.TypeString},
		{Name: "trigger", Type: field.TypeString},
		{Name: "drill_id", Type: field.TypeString, Nullable: true},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3]},
			},
			{
				Name:    "masteryevent_goal_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[4]},
			},
		},
	}
	// QuestMilestonesColumns holds the columns for the "quest_milestones" table.
	QuestMilestonesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "quest_id", Type: field.TypeString},
		{Name: "goal_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "required_mastery_percent", Type: field.TypeInt},
		{Name: "acceptance_criteria", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeString},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// QuestMilestonesTable holds the schema information for the "quest_milestones" table.
	QuestMilestonesTable = &schema.Table{
		Name:       "quest_milestones",
		Columns:    QuestMilestonesColumns,
		PrimaryKey: []*schema.Column{QuestMilestonesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questmilestone_quest_id",
				Unique:  true,
				Columns: []*schema.Column{QuestMilestonesColumns[1]},
			},
			{
				Name:    "questmilestone_goal_id_status",
				Unique:  false,
				Columns: []*schema.Column{QuestMilestonesColumns[2], QuestMilestonesColumns[6]},
			},
		},
	}
	// SkillsColumns holds the columns for the "skills" table.
	SkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "quest_id", Type: field.TypeString},
		{Name: "goal_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "success_signal", Type: field.TypeString},
		{Name: "locked_variables", Type: field.TypeJSON},
		{Name: "estimated_minutes", Type: field.TypeInt},
		{Name: "skill_type", Type: field.TypeString},
		{Name: "order_index", Type: field.TypeInt},
		{Name: "stage_level", Type: field.TypeString, Nullable: true},
		{Name: "prerequisites", Type: field.TypeJSON, Nullable: true},
		{Name: "components", Type: field.TypeJSON, Nullable: true},
		{Name: "designed_failure", Type: field.TypeString, Nullable: true},
		{Name: "consequence", Type: field.TypeString, Nullable: true},
		{Name: "recovery", Type: field.TypeString, Nullable: true},
		{Name: "transfer_scenario", Type: field.TypeString, Nullable: true},
		{Name: "mastery", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "pass_count", Type: field.TypeInt, Default: 0},
		{Name: "fail_count", Type: field.TypeInt, Default: 0},
		{Name: "consecutive_passes", Type: field.TypeInt, Default: 0},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "last_practiced_at", Type: field.TypeTime, Nullable: true},
	}
	// SkillsTable holds the schema information for the "skills" table.
	SkillsTable = &schema.Table{
		Name:       "skills",
		Columns:    SkillsColumns,
		PrimaryKey: []*schema.Column{SkillsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skill_quest_id",
				Unique:  false,
				Columns: []*schema.Column{SkillsColumns[1]},
			},
			{
				Name:    "skill_goal_id",
				Unique:  false,
				Columns: []*schema.Column{SkillsColumns[2]},
			},
			{
				Name:    "skill_goal_id_order_index",
				Unique:  false,
				Columns: []*schema.Column{SkillsColumns[2], SkillsColumns[10]},
			},
		},
	}
	// WeekPlansColumns holds the columns for the "week_plans" table.
	WeekPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "goal_id", Type: field.TypeString},
		{Name: "quest_id", Type: field.TypeString},
		{Name: "week_number", Type: field.TypeInt},
		{Name: "start_day", Type: field.TypeInt},
		{Name: "end_day", Type: field.TypeInt},
		{Name: "drills_completed", Type: field.TypeInt, Default: 0},
		{Name: "drills_passed", Type: field.TypeInt, Default: 0},
		{Name: "drills_failed", Type: field.TypeInt, Default: 0},
		{Name: "drills_skipped", Type: field.TypeInt, Default: 0},
		{Name: "skills_mastered", Type: field.TypeInt, Default: 0},
		{Name: "carry_forward", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString},
	}
	// WeekPlansTable holds the schema information for the "week_plans" table.
	WeekPlansTable = &schema.Table{
		Name:       "week_plans",
		Columns:    WeekPlansColumns,
		PrimaryKey: []*schema.Column{WeekPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "weekplan_goal_id_week_number",
				Unique:  true,
				Columns: []*schema.Column{WeekPlansColumns[1], WeekPlansColumns[3]},
			},
			{
				Name:    "weekplan_goal_id_status",
				Unique:  false,
				Columns: []*schema.Column{WeekPlansColumns[1], WeekPlansColumns[12]},
			},
			{
				Name:    "weekplan_quest_id",
				Unique:  false,
				Columns: []*schema.Column{WeekPlansColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DrillsTable,
		LlmRequestEventsTable,
		LearningPlansTable,
		MasteryEventsTable,
		QuestMilestonesTable,
		SkillsTable,
		WeekPlansTable,
	}
)

func init() {
}
