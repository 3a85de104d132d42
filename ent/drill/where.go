// Code generated by ent, DO NOT EDIT.

package drill

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/praxis-coach/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldUserID, v))
}

// GoalID applies equality check predicate on the "goal_id" field. It's identical to GoalIDEQ.
func GoalID(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldGoalID, v))
}

// QuestID applies equality check predicate on the "quest_id" field. It's identical to QuestIDEQ.
func QuestID(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldQuestID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldSkillID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldDate, v))
}

// DayNumber applies equality check predicate on the "day_number" field. It's identical to DayNumberEQ.
func DayNumber(v int) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldDayNumber, v))
}

// WeekNumber applies equality check predicate on the "week_number" field. It's identical to WeekNumberEQ.
func WeekNumber(v int) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldWeekNumber, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldStatus, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldOutcome, v))
}

// Observation applies equality check predicate on the "observation" field. It's identical to ObservationEQ.
func Observation(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldObservation, v))
}

// IsRetry applies equality check predicate on the "is_retry" field. It's identical to IsRetryEQ.
func IsRetry(v bool) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldIsRetry, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldRetryCount, v))
}

// CarryForward applies equality check predicate on the "carry_forward" field. It's identical to CarryForwardEQ.
func CarryForward(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldCarryForward, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldCompletedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldUserID, v))
}

// GoalIDEQ applies the EQ predicate on the "goal_id" field.
func GoalIDEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldGoalID, v))
}

// GoalIDNEQ applies the NEQ predicate on the "goal_id" field.
func GoalIDNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldGoalID, v))
}

// GoalIDIn applies the In predicate on the "goal_id" field.
func GoalIDIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldGoalID, vs...))
}

// GoalIDNotIn applies the NotIn predicate on the "goal_id" field.
func GoalIDNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldGoalID, vs...))
}

// GoalIDGT applies the GT predicate on the "goal_id" field.
func GoalIDGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldGoalID, v))
}

// GoalIDGTE applies the GTE predicate on the "goal_id" field.
func GoalIDGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldGoalID, v))
}

// GoalIDLT applies the LT predicate on the "goal_id" field.
func GoalIDLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldGoalID, v))
}

// GoalIDLTE applies the LTE predicate on the "goal_id" field.
func GoalIDLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldGoalID, v))
}

// GoalIDContains applies the Contains predicate on the "goal_id" field.
func GoalIDContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldGoalID, v))
}

// GoalIDHasPrefix applies the HasPrefix predicate on the "goal_id" field.
func GoalIDHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldGoalID, v))
}

// GoalIDHasSuffix applies the HasSuffix predicate on the "goal_id" field.
func GoalIDHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldGoalID, v))
}

// GoalIDEqualFold applies the EqualFold predicate on the "goal_id" field.
func GoalIDEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldGoalID, v))
}

// GoalIDContainsFold applies the ContainsFold predicate on the "goal_id" field.
func GoalIDContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldGoalID, v))
}

// QuestIDEQ applies the EQ predicate on the "quest_id" field.
func QuestIDEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldQuestID, v))
}

// QuestIDNEQ applies the NEQ predicate on the "quest_id" field.
func QuestIDNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldQuestID, v))
}

// QuestIDIn applies the In predicate on the "quest_id" field.
func QuestIDIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldQuestID, vs...))
}

// QuestIDNotIn applies the NotIn predicate on the "quest_id" field.
func QuestIDNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldQuestID, vs...))
}

// QuestIDGT applies the GT predicate on the "quest_id" field.
func QuestIDGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldQuestID, v))
}

// QuestIDGTE applies the GTE predicate on the "quest_id" field.
func QuestIDGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldQuestID, v))
}

// QuestIDLT applies the LT predicate on the "quest_id" field.
func QuestIDLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldQuestID, v))
}

// QuestIDLTE applies the LTE predicate on the "quest_id" field.
func QuestIDLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldQuestID, v))
}

// QuestIDContains applies the Contains predicate on the "quest_id" field.
func QuestIDContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldQuestID, v))
}

// QuestIDHasPrefix applies the HasPrefix predicate on the "quest_id" field.
func QuestIDHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldQuestID, v))
}

// QuestIDHasSuffix applies the HasSuffix predicate on the "quest_id" field.
func QuestIDHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldQuestID, v))
}

// QuestIDEqualFold applies the EqualFold predicate on the "quest_id" field.
func QuestIDEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldQuestID, v))
}

// QuestIDContainsFold applies the ContainsFold predicate on the "quest_id" field.
func QuestIDContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldQuestID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldSkillID, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldDate, v))
}

// DayNumberEQ applies the EQ predicate on the "day_number" field.
func DayNumberEQ(v int) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldDayNumber, v))
}

// DayNumberNEQ applies the NEQ predicate on the "day_number" field.
func DayNumberNEQ(v int) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldDayNumber, v))
}

// DayNumberIn applies the In predicate on the "day_number" field.
func DayNumberIn(vs ...int) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldDayNumber, vs...))
}

// DayNumberNotIn applies the NotIn predicate on the "day_number" field.
func DayNumberNotIn(vs ...int) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldDayNumber, vs...))
}

// DayNumberGT applies the GT predicate on the "day_number" field.
func DayNumberGT(v int) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldDayNumber, v))
}

// DayNumberGTE applies the GTE predicate on the "day_number" field.
func DayNumberGTE(v int) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldDayNumber, v))
}

// DayNumberLT applies the LT predicate on the "day_number" field.
func DayNumberLT(v int) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldDayNumber, v))
}

// DayNumberLTE applies the LTE predicate on the "day_number" field.
func DayNumberLTE(v int) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldDayNumber, v))
}

// WeekNumberEQ applies the EQ predicate on the "week_number" field.
func WeekNumberEQ(v int) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldWeekNumber, v))
}

// WeekNumberNEQ applies the NEQ predicate on the "week_number" field.
func WeekNumberNEQ(v int) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldWeekNumber, v))
}

// WeekNumberIn applies the In predicate on the "week_number" field.
func WeekNumberIn(vs ...int) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldWeekNumber, vs...))
}

// WeekNumberNotIn applies the NotIn predicate on the "week_number" field.
func WeekNumberNotIn(vs ...int) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldWeekNumber, vs...))
}

// WeekNumberGT applies the GT predicate on the "week_number" field.
func WeekNumberGT(v int) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldWeekNumber, v))
}

// WeekNumberGTE applies the GTE predicate on the "week_number" field.
func WeekNumberGTE(v int) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldWeekNumber, v))
}

// WeekNumberLT applies the LT predicate on the "week_number" field.
func WeekNumberLT(v int) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldWeekNumber, v))
}

// WeekNumberLTE applies the LTE predicate on the "week_number" field.
func WeekNumberLTE(v int) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldWeekNumber, v))
}

// WarmupIsNil applies the IsNil predicate on the "warmup" field.
func WarmupIsNil() predicate.Drill {
	return predicate.Drill(sql.FieldIsNull(FieldWarmup))
}

// WarmupNotNil applies the NotNil predicate on the "warmup" field.
func WarmupNotNil() predicate.Drill {
	return predicate.Drill(sql.FieldNotNull(FieldWarmup))
}

// StretchIsNil applies the IsNil predicate on the "stretch" field.
func StretchIsNil() predicate.Drill {
	return predicate.Drill(sql.FieldIsNull(FieldStretch))
}

// StretchNotNil applies the NotNil predicate on the "stretch" field.
func StretchNotNil() predicate.Drill {
	return predicate.Drill(sql.FieldNotNull(FieldStretch))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldStatus, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldOutcome, v))
}

// ObservationEQ applies the EQ predicate on the "observation" field.
func ObservationEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldObservation, v))
}

// ObservationNEQ applies the NEQ predicate on the "observation" field.
func ObservationNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldObservation, v))
}

// ObservationIn applies the In predicate on the "observation" field.
func ObservationIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldObservation, vs...))
}

// ObservationNotIn applies the NotIn predicate on the "observation" field.
func ObservationNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldObservation, vs...))
}

// ObservationGT applies the GT predicate on the "observation" field.
func ObservationGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldObservation, v))
}

// ObservationGTE applies the GTE predicate on the "observation" field.
func ObservationGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldObservation, v))
}

// ObservationLT applies the LT predicate on the "observation" field.
func ObservationLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldObservation, v))
}

// ObservationLTE applies the LTE predicate on the "observation" field.
func ObservationLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldObservation, v))
}

// ObservationContains applies the Contains predicate on the "observation" field.
func ObservationContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldObservation, v))
}

// ObservationHasPrefix applies the HasPrefix predicate on the "observation" field.
func ObservationHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldObservation, v))
}

// ObservationHasSuffix applies the HasSuffix predicate on the "observation" field.
func ObservationHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldObservation, v))
}

// ObservationEqualFold applies the EqualFold predicate on the "observation" field.
func ObservationEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldObservation, v))
}

// ObservationContainsFold applies the ContainsFold predicate on the "observation" field.
func ObservationContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldObservation, v))
}

// IsRetryEQ applies the EQ predicate on the "is_retry" field.
func IsRetryEQ(v bool) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldIsRetry, v))
}

// IsRetryNEQ applies the NEQ predicate on the "is_retry" field.
func IsRetryNEQ(v bool) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldIsRetry, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldRetryCount, v))
}

// CarryForwardEQ applies the EQ predicate on the "carry_forward" field.
func CarryForwardEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldCarryForward, v))
}

// CarryForwardNEQ applies the NEQ predicate on the "carry_forward" field.
func CarryForwardNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldCarryForward, v))
}

// CarryForwardIn applies the In predicate on the "carry_forward" field.
func CarryForwardIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldCarryForward, vs...))
}

// CarryForwardNotIn applies the NotIn predicate on the "carry_forward" field.
func CarryForwardNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldCarryForward, vs...))
}

// CarryForwardGT applies the GT predicate on the "carry_forward" field.
func CarryForwardGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldCarryForward, v))
}

// CarryForwardGTE applies the GTE predicate on the "carry_forward" field.
func CarryForwardGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldCarryForward, v))
}

// CarryForwardLT applies the LT predicate on the "carry_forward" field.
func CarryForwardLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldCarryForward, v))
}

// CarryForwardLTE applies the LTE predicate on the "carry_forward" field.
func CarryForwardLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldCarryForward, v))
}

// CarryForwardContains applies the Contains predicate on the "carry_forward" field.
func CarryForwardContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldCarryForward, v))
}

// CarryForwardHasPrefix applies the HasPrefix predicate on the "carry_forward" field.
func CarryForwardHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldCarryForward, v))
}

// CarryForwardHasSuffix applies the HasSuffix predicate on the "carry_forward" field.
func CarryForwardHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldCarryForward, v))
}

// CarryForwardEqualFold applies the EqualFold predicate on the "carry_forward" field.
func CarryForwardEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldCarryForward, v))
}

// CarryForwardContainsFold applies the ContainsFold predicate on the "carry_forward" field.
func CarryForwardContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldCarryForward, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Drill {
	return predicate.Drill(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Drill {
	return predicate.Drill(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Drill) predicate.Drill {
	return predicate.Drill(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Drill) predicate.Drill {
	return predicate.Drill(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Drill) predicate.Drill {
	return predicate.Drill(sql.NotPredicates(p))
}
