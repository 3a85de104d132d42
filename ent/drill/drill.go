// Code generated by ent, DO NOT EDIT.

package drill

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the drill type in the database.
	Label = "drill"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldGoalID holds the string denoting the goal_id field in the database.
	FieldGoalID = "goal_id"
	// FieldQuestID holds the string denoting the quest_id field in the database.
	FieldQuestID = "quest_id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldDayNumber holds the string denoting the day_number field in the database.
	FieldDayNumber = "day_number"
	// FieldWeekNumber holds the string denoting the week_number field in the database.
	FieldWeekNumber = "week_number"
	// FieldWarmup holds the string denoting the warmup field in the database.
	FieldWarmup = "warmup"
	// FieldMain holds the string denoting the main field in the database.
	FieldMain = "main"
	// FieldStretch holds the string denoting the stretch field in the database.
	FieldStretch = "stretch"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldObservation holds the string denoting the observation field in the database.
	FieldObservation = "observation"
	// FieldIsRetry holds the string denoting the is_retry field in the database.
	FieldIsRetry = "is_retry"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldCarryForward holds the string denoting the carry_forward field in the database.
	FieldCarryForward = "carry_forward"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the drill in the database.
	Table = "drills"
)

// Columns holds all SQL columns for drill fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldGoalID,
	FieldQuestID,
	FieldSkillID,
	FieldDate,
	FieldDayNumber,
	FieldWeekNumber,
	FieldWarmup,
	FieldMain,
	FieldStretch,
	FieldStatus,
	FieldOutcome,
	FieldObservation,
	FieldIsRetry,
	FieldRetryCount,
	FieldCarryForward,
	FieldCreatedAt,
	FieldCompletedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	GoalIDValidator func(string) error
	// QuestIDValidator is a validator for the "quest_id" field. It is called by the builders before save.
	QuestIDValidator func(string) error
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// DateValidator is a validator for the "date" field. It is called by the builders before save.
	DateValidator func(string) error
	// DefaultDayNumber holds the default value on creation for the "day_number" field.
	DefaultDayNumber int
	// DefaultWeekNumber holds the default value on creation for the "week_number" field.
	DefaultWeekNumber int
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultOutcome holds the default value on creation for the "outcome" field.
	DefaultOutcome string
	// DefaultObservation holds the default value on creation for the "observation" field.
	DefaultObservation string
	// DefaultIsRetry holds the default value on creation for the "is_retry" field.
	DefaultIsRetry bool
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultCarryForward holds the default value on creation for the "carry_forward" field.
	DefaultCarryForward string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Drill queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByGoalID orders the results by the goal_id field.
func ByGoalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalID, opts...).ToFunc()
}

// ByQuestID orders the results by the quest_id field.
func ByQuestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByDayNumber orders the results by the day_number field.
func ByDayNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDayNumber, opts...).ToFunc()
}

// ByWeekNumber orders the results by the week_number field.
func ByWeekNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeekNumber, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByObservation orders the results by the observation field.
func ByObservation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservation, opts...).ToFunc()
}

// ByIsRetry orders the results by the is_retry field.
func ByIsRetry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsRetry, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByCarryForward orders the results by the carry_forward field.
func ByCarryForward(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCarryForward, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
