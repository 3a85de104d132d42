// Code generated by ent, DO NOT EDIT.

package skill

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the skill type in the database.
	Label = "skill"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQuestID holds the string denoting the quest_id field in the database.
	FieldQuestID = "quest_id"
	// FieldGoalID holds the string denoting the goal_id field in the database.
	FieldGoalID = "goal_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldSuccessSignal holds the string denoting the success_signal field in the database.
	FieldSuccessSignal = "success_signal"
	// FieldLockedVariables holds the string denoting the locked_variables field in the database.
	FieldLockedVariables = "locked_variables"
	// FieldEstimatedMinutes holds the string denoting the estimated_minutes field in the database.
	FieldEstimatedMinutes = "estimated_minutes"
	// FieldSkillType holds the string denoting the skill_type field in the database.
	FieldSkillType = "skill_type"
	// FieldOrderIndex holds the string denoting the order_index field in the database.
	FieldOrderIndex = "order_index"
	// FieldStageLevel holds the string denoting the stage_level field in the database.
	FieldStageLevel = "stage_level"
	// FieldPrerequisites holds the string denoting the prerequisites field in the database.
	FieldPrerequisites = "prerequisites"
	// FieldComponents holds the string denoting the components field in the database.
	FieldComponents = "components"
	// FieldDesignedFailure holds the string denoting the designed_failure field in the database.
	FieldDesignedFailure = "designed_failure"
	// FieldConsequence holds the string denoting the consequence field in the database.
	FieldConsequence = "consequence"
	// FieldRecovery holds the string denoting the recovery field in the database.
	FieldRecovery = "recovery"
	// FieldTransferScenario holds the string denoting the transfer_scenario field in the database.
	FieldTransferScenario = "transfer_scenario"
	// FieldMastery holds the string denoting the mastery field in the database.
	FieldMastery = "mastery"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPassCount holds the string denoting the pass_count field in the database.
	FieldPassCount = "pass_count"
	// FieldFailCount holds the string denoting the fail_count field in the database.
	FieldFailCount = "fail_count"
	// FieldConsecutivePasses holds the string denoting the consecutive_passes field in the database.
	FieldConsecutivePasses = "consecutive_passes"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldLastPracticedAt holds the string denoting the last_practiced_at field in the database.
	FieldLastPracticedAt = "last_practiced_at"
	// Table holds the table name of the skill in the database.
	Table = "skills"
)

// Columns holds all SQL columns for skill fields.
var Columns = []string{
	FieldID,
	FieldQuestID,
	FieldGoalID,
	FieldUserID,
	FieldTitle,
	FieldAction,
	FieldSuccessSignal,
	FieldLockedVariables,
	FieldEstimatedMinutes,
	FieldSkillType,
	FieldOrderIndex,
	FieldStageLevel,
	FieldPrerequisites,
	FieldComponents,
	FieldDesignedFailure,
	FieldConsequence,
	FieldRecovery,
	FieldTransferScenario,
	FieldMastery,
	FieldStatus,
	FieldPassCount,
	FieldFailCount,
	FieldConsecutivePasses,
	FieldNeedsReview,
	FieldLastPracticedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// SuccessSignalValidator is a validator for the "success_signal" field. It is called by the builders before save.
	SuccessSignalValidator func(string) error
	// EstimatedMinutesValidator is a validator for the "estimated_minutes" field. It is called by the builders before save.
	EstimatedMinutesValidator func(int) error
	// SkillTypeValidator is a validator for the "skill_type" field. It is called by the builders before save.
	SkillTypeValidator func(string) error
	// MasteryValidator is a validator for the "mastery" field. It is called by the builders before save.
	MasteryValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultPassCount holds the default value on creation for the "pass_count" field.
	DefaultPassCount int
	// DefaultFailCount holds the default value on creation for the "fail_count" field.
	DefaultFailCount int
	// DefaultConsecutivePasses holds the default value on creation for the "consecutive_passes" field.
	DefaultConsecutivePasses int
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Skill queries.
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

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// BySuccessSignal orders the results by the success_signal field.
func BySuccessSignal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessSignal, opts...).ToFunc()
}

// ByEstimatedMinutes orders the results by the estimated_minutes field.
func ByEstimatedMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedMinutes, opts...).ToFunc()
}

// BySkillType orders the results by the skill_type field.
func BySkillType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillType, opts...).ToFunc()
}

// ByOrderIndex orders the results by the order_index field.
func ByOrderIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderIndex, opts...).ToFunc()
}

// ByStageLevel orders the results by the stage_level field.
func ByStageLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageLevel, opts...).ToFunc()
}

// ByDesignedFailure orders the results by the designed_failure field.
func ByDesignedFailure(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDesignedFailure, opts...).ToFunc()
}

// ByConsequence orders the results by the consequence field.
func ByConsequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsequence, opts...).ToFunc()
}

// ByRecovery orders the results by the recovery field.
func ByRecovery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecovery, opts...).ToFunc()
}

// ByTransferScenario orders the results by the transfer_scenario field.
func ByTransferScenario(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransferScenario, opts...).ToFunc()
}

// ByMastery orders the results by the mastery field.
func ByMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMastery, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPassCount orders the results by the pass_count field.
func ByPassCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassCount, opts...).ToFunc()
}

// ByFailCount orders the results by the fail_count field.
func ByFailCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailCount, opts...).ToFunc()
}

// ByConsecutivePasses orders the results by the consecutive_passes field.
func ByConsecutivePasses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutivePasses, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByLastPracticedAt orders the results by the last_practiced_at field.
func ByLastPracticedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPracticedAt, opts...).ToFunc()
}
