// Code generated by ent, DO NOT EDIT.

package learningplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learningplan type in the database.
	Label = "learning_plan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGoalID holds the string denoting the goal_id field in the database.
	FieldGoalID = "goal_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDuration holds the string denoting the duration field in the database.
	FieldDuration = "duration"
	// FieldDailyMinutesBudget holds the string denoting the daily_minutes_budget field in the database.
	FieldDailyMinutesBudget = "daily_minutes_budget"
	// FieldQuests holds the string denoting the quests field in the database.
	FieldQuests = "quests"
	// FieldTotalSkills holds the string denoting the total_skills field in the database.
	FieldTotalSkills = "total_skills"
	// FieldTotalMinutes holds the string denoting the total_minutes field in the database.
	FieldTotalMinutes = "total_minutes"
	// FieldEstimatedDays holds the string denoting the estimated_days field in the database.
	FieldEstimatedDays = "estimated_days"
	// FieldWarnings holds the string denoting the warnings field in the database.
	FieldWarnings = "warnings"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the learningplan in the database.
	Table = "learning_plans"
)

// Columns holds all SQL columns for learningplan fields.
var Columns = []string{
	FieldID,
	FieldGoalID,
	FieldUserID,
	FieldTitle,
	FieldDuration,
	FieldDailyMinutesBudget,
	FieldQuests,
	FieldTotalSkills,
	FieldTotalMinutes,
	FieldEstimatedDays,
	FieldWarnings,
	FieldCreatedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	DurationValidator func(string) error
	// DefaultTotalSkills holds the default value on creation for the "total_skills" field.
	DefaultTotalSkills int
	// DefaultTotalMinutes holds the default value on creation for the "total_minutes" field.
	DefaultTotalMinutes int
	// DefaultEstimatedDays holds the default value on creation for the "estimated_days" field.
	DefaultEstimatedDays int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the LearningPlan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGoalID orders the results by the goal_id field.
func ByGoalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDuration orders the results by the duration field.
func ByDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuration, opts...).ToFunc()
}

// ByDailyMinutesBudget orders the results by the daily_minutes_budget field.
func ByDailyMinutesBudget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyMinutesBudget, opts...).ToFunc()
}

// ByTotalSkills orders the results by the total_skills field.
func ByTotalSkills(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalSkills, opts...).ToFunc()
}

// ByTotalMinutes orders the results by the total_minutes field.
func ByTotalMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalMinutes, opts...).ToFunc()
}

// ByEstimatedDays orders the results by the estimated_days field.
func ByEstimatedDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedDays, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
