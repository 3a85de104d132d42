// Code generated by ent, DO NOT EDIT.

package weekplan

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the weekplan type in the database.
	Label = "week_plan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGoalID holds the string denoting the goal_id field in the database.
	FieldGoalID = "goal_id"
	// FieldQuestID holds the string denoting the quest_id field in the database.
	FieldQuestID = "quest_id"
	// FieldWeekNumber holds the string denoting the week_number field in the database.
	FieldWeekNumber = "week_number"
	// FieldStartDay holds the string denoting the start_day field in the database.
	FieldStartDay = "start_day"
	// FieldEndDay holds the string denoting the end_day field in the database.
	FieldEndDay = "end_day"
	// FieldDrillsCompleted holds the string denoting the drills_completed field in the database.
	FieldDrillsCompleted = "drills_completed"
	// FieldDrillsPassed holds the string denoting the drills_passed field in the database.
	FieldDrillsPassed = "drills_passed"
	// FieldDrillsFailed holds the string denoting the drills_failed field in the database.
	FieldDrillsFailed = "drills_failed"
	// FieldDrillsSkipped holds the string denoting the drills_skipped field in the database.
	FieldDrillsSkipped = "drills_skipped"
	// FieldSkillsMastered holds the string denoting the skills_mastered field in the database.
	FieldSkillsMastered = "skills_mastered"
	// FieldCarryForward holds the string denoting the carry_forward field in the database.
	FieldCarryForward = "carry_forward"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// Table holds the table name of the weekplan in the database.
	Table = "week_plans"
)

// Columns holds all SQL columns for weekplan fields.
var Columns = []string{
	FieldID,
	FieldGoalID,
	FieldQuestID,
	FieldWeekNumber,
	FieldStartDay,
	FieldEndDay,
	FieldDrillsCompleted,
	FieldDrillsPassed,
	FieldDrillsFailed,
	FieldDrillsSkipped,
	FieldSkillsMastered,
	FieldCarryForward,
	FieldStatus,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	GoalIDValidator func(string) error
	// QuestIDValidator is a validator for the "quest_id" field. It is called by the builders before save.
	QuestIDValidator func(string) error
	// DefaultDrillsCompleted holds the default value on creation for the "drills_completed" field.
	DefaultDrillsCompleted int
	// DefaultDrillsPassed holds the default value on creation for the "drills_passed" field.
	DefaultDrillsPassed int
	// DefaultDrillsFailed holds the default value on creation for the "drills_failed" field.
	DefaultDrillsFailed int
	// DefaultDrillsSkipped holds the default value on creation for the "drills_skipped" field.
	DefaultDrillsSkipped int
	// DefaultSkillsMastered holds the default value on creation for the "skills_mastered" field.
	DefaultSkillsMastered int
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the WeekPlan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGoalID orders the results by the goal_id field.
func ByGoalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalID, opts...).ToFunc()
}

// ByQuestID orders the results by the quest_id field.
func ByQuestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestID, opts...).ToFunc()
}

// ByWeekNumber orders the results by the week_number field.
func ByWeekNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeekNumber, opts...).ToFunc()
}

// ByStartDay orders the results by the start_day field.
func ByStartDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDay, opts...).ToFunc()
}

// ByEndDay orders the results by the end_day field.
func ByEndDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndDay, opts...).ToFunc()
}

// ByDrillsCompleted orders the results by the drills_completed field.
func ByDrillsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrillsCompleted, opts...).ToFunc()
}

// ByDrillsPassed orders the results by the drills_passed field.
func ByDrillsPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrillsPassed, opts...).ToFunc()
}

// ByDrillsFailed orders the results by the drills_failed field.
func ByDrillsFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrillsFailed, opts...).ToFunc()
}

// ByDrillsSkipped orders the results by the drills_skipped field.
func ByDrillsSkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrillsSkipped, opts...).ToFunc()
}

// BySkillsMastered orders the results by the skills_mastered field.
func BySkillsMastered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillsMastered, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}
