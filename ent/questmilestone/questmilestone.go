// Code generated by ent, DO NOT EDIT.

package questmilestone

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the questmilestone type in the database.
	Label = "quest_milestone"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQuestID holds the string denoting the quest_id field in the database.
	FieldQuestID = "quest_id"
	// FieldGoalID holds the string denoting the goal_id field in the database.
	FieldGoalID = "goal_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldRequiredMasteryPercent holds the string denoting the required_mastery_percent field in the database.
	FieldRequiredMasteryPercent = "required_mastery_percent"
	// FieldAcceptanceCriteria holds the string denoting the acceptance_criteria field in the database.
	FieldAcceptanceCriteria = "acceptance_criteria"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the questmilestone in the database.
	Table = "quest_milestones"
)

// Columns holds all SQL columns for questmilestone fields.
var Columns = []string{
	FieldID,
	FieldQuestID,
	FieldGoalID,
	FieldTitle,
	FieldRequiredMasteryPercent,
	FieldAcceptanceCriteria,
	FieldStatus,
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
	// QuestIDValidator is a validator for the "quest_id" field. It is called by the builders before save.
	QuestIDValidator func(string) error
	// GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	GoalIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the QuestMilestone queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuestID orders the results by the quest_id field.
func ByQuestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestID, opts...).ToFunc()
}

// ByGoalID orders the results by the goal_id field.
func ByGoalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByRequiredMasteryPercent orders the results by the required_mastery_percent field.
func ByRequiredMasteryPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiredMasteryPercent, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
