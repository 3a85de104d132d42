// Code generated by ent, DO NOT EDIT.

package learningplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/praxis-coach/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContainsFold(FieldID, id))
}

// GoalID applies equality check predicate on the "goal_id" field. It's identical to GoalIDEQ.
func GoalID(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldGoalID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldUserID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldTitle, v))
}

// Duration applies equality check predicate on the "duration" field. It's identical to DurationEQ.
func Duration(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldDuration, v))
}

// DailyMinutesBudget applies equality check predicate on the "daily_minutes_budget" field. It's identical to DailyMinutesBudgetEQ.
func DailyMinutesBudget(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldDailyMinutesBudget, v))
}

// TotalSkills applies equality check predicate on the "total_skills" field. It's identical to TotalSkillsEQ.
func TotalSkills(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldTotalSkills, v))
}

// TotalMinutes applies equality check predicate on the "total_minutes" field. It's identical to TotalMinutesEQ.
func TotalMinutes(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldTotalMinutes, v))
}

// EstimatedDays applies equality check predicate on the "estimated_days" field. It's identical to EstimatedDaysEQ.
func EstimatedDays(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldEstimatedDays, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// GoalIDEQ applies the EQ predicate on the "goal_id" field.
func GoalIDEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldGoalID, v))
}

// GoalIDNEQ applies the NEQ predicate on the "goal_id" field.
func GoalIDNEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldGoalID, v))
}

// GoalIDIn applies the In predicate on the "goal_id" field.
func GoalIDIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldGoalID, vs...))
}

// GoalIDNotIn applies the NotIn predicate on the "goal_id" field.
func GoalIDNotIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldGoalID, vs...))
}

// GoalIDGT applies the GT predicate on the "goal_id" field.
func GoalIDGT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldGoalID, v))
}

// GoalIDGTE applies the GTE predicate on the "goal_id" field.
func GoalIDGTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldGoalID, v))
}

// GoalIDLT applies the LT predicate on the "goal_id" field.
func GoalIDLT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldGoalID, v))
}

// GoalIDLTE applies the LTE predicate on the "goal_id" field.
func GoalIDLTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldGoalID, v))
}

// GoalIDContains applies the Contains predicate on the "goal_id" field.
func GoalIDContains(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContains(FieldGoalID, v))
}

// GoalIDHasPrefix applies the HasPrefix predicate on the "goal_id" field.
func GoalIDHasPrefix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasPrefix(FieldGoalID, v))
}

// GoalIDHasSuffix applies the HasSuffix predicate on the "goal_id" field.
func GoalIDHasSuffix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasSuffix(FieldGoalID, v))
}

// GoalIDEqualFold applies the EqualFold predicate on the "goal_id" field.
func GoalIDEqualFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEqualFold(FieldGoalID, v))
}

// GoalIDContainsFold applies the ContainsFold predicate on the "goal_id" field.
func GoalIDContainsFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContainsFold(FieldGoalID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContainsFold(FieldUserID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContainsFold(FieldTitle, v))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldDuration, v))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldDuration, v))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldDuration, vs...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldDuration, vs...))
}

// DurationGT applies the GT predicate on the "duration" field.
func DurationGT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldDuration, v))
}

// DurationGTE applies the GTE predicate on the "duration" field.
func DurationGTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldDuration, v))
}

// DurationLT applies the LT predicate on the "duration" field.
func DurationLT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldDuration, v))
}

// DurationLTE applies the LTE predicate on the "duration" field.
func DurationLTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldDuration, v))
}

// DurationContains applies the Contains predicate on the "duration" field.
func DurationContains(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContains(FieldDuration, v))
}

// DurationHasPrefix applies the HasPrefix predicate on the "duration" field.
func DurationHasPrefix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasPrefix(FieldDuration, v))
}

// DurationHasSuffix applies the HasSuffix predicate on the "duration" field.
func DurationHasSuffix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasSuffix(FieldDuration, v))
}

// DurationEqualFold applies the EqualFold predicate on the "duration" field.
func DurationEqualFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEqualFold(FieldDuration, v))
}

// DurationContainsFold applies the ContainsFold predicate on the "duration" field.
func DurationContainsFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContainsFold(FieldDuration, v))
}

// DailyMinutesBudgetEQ applies the EQ predicate on the "daily_minutes_budget" field.
func DailyMinutesBudgetEQ(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldDailyMinutesBudget, v))
}

// DailyMinutesBudgetNEQ applies the NEQ predicate on the "daily_minutes_budget" field.
func DailyMinutesBudgetNEQ(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldDailyMinutesBudget, v))
}

// DailyMinutesBudgetIn applies the In predicate on the "daily_minutes_budget" field.
func DailyMinutesBudgetIn(vs ...int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldDailyMinutesBudget, vs...))
}

// DailyMinutesBudgetNotIn applies the NotIn predicate on the "daily_minutes_budget" field.
func DailyMinutesBudgetNotIn(vs ...int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldDailyMinutesBudget, vs...))
}

// DailyMinutesBudgetGT applies the GT predicate on the "daily_minutes_budget" field.
func DailyMinutesBudgetGT(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldDailyMinutesBudget, v))
}

// DailyMinutesBudgetGTE applies the GTE predicate on the "daily_minutes_budget" field.
func DailyMinutesBudgetGTE(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldDailyMinutesBudget, v))
}

// DailyMinutesBudgetLT applies the LT predicate on the "daily_minutes_budget" field.
func DailyMinutesBudgetLT(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldDailyMinutesBudget, v))
}

// DailyMinutesBudgetLTE applies the LTE predicate on the "daily_minutes_budget" field.
func DailyMinutesBudgetLTE(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldDailyMinutesBudget, v))
}

// TotalSkillsEQ applies the EQ predicate on the "total_skills" field.
func TotalSkillsEQ(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldTotalSkills, v))
}

// TotalSkillsNEQ applies the NEQ predicate on the "total_skills" field.
func TotalSkillsNEQ(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldTotalSkills, v))
}

// TotalSkillsIn applies the In predicate on the "total_skills" field.
func TotalSkillsIn(vs ...int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldTotalSkills, vs...))
}

// TotalSkillsNotIn applies the NotIn predicate on the "total_skills" field.
func TotalSkillsNotIn(vs ...int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldTotalSkills, vs...))
}

// TotalSkillsGT applies the GT predicate on the "total_skills" field.
func TotalSkillsGT(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldTotalSkills, v))
}

// TotalSkillsGTE applies the GTE predicate on the "total_skills" field.
func TotalSkillsGTE(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldTotalSkills, v))
}

// TotalSkillsLT applies the LT predicate on the "total_skills" field.
func TotalSkillsLT(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldTotalSkills, v))
}

// TotalSkillsLTE applies the LTE predicate on the "total_skills" field.
func TotalSkillsLTE(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldTotalSkills, v))
}

// TotalMinutesEQ applies the EQ predicate on the "total_minutes" field.
func TotalMinutesEQ(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldTotalMinutes, v))
}

// TotalMinutesNEQ applies the NEQ predicate on the "total_minutes" field.
func TotalMinutesNEQ(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldTotalMinutes, v))
}

// TotalMinutesIn applies the In predicate on the "total_minutes" field.
func TotalMinutesIn(vs ...int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldTotalMinutes, vs...))
}

// TotalMinutesNotIn applies the NotIn predicate on the "total_minutes" field.
func TotalMinutesNotIn(vs ...int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldTotalMinutes, vs...))
}

// TotalMinutesGT applies the GT predicate on the "total_minutes" field.
func TotalMinutesGT(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldTotalMinutes, v))
}

// TotalMinutesGTE applies the GTE predicate on the "total_minutes" field.
func TotalMinutesGTE(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldTotalMinutes, v))
}

// TotalMinutesLT applies the LT predicate on the "total_minutes" field.
func TotalMinutesLT(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldTotalMinutes, v))
}

// TotalMinutesLTE applies the LTE predicate on the "total_minutes" field.
func TotalMinutesLTE(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldTotalMinutes, v))
}

// EstimatedDaysEQ applies the EQ predicate on the "estimated_days" field.
func EstimatedDaysEQ(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldEstimatedDays, v))
}

// EstimatedDaysNEQ applies the NEQ predicate on the "estimated_days" field.
func EstimatedDaysNEQ(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldEstimatedDays, v))
}

// EstimatedDaysIn applies the In predicate on the "estimated_days" field.
func EstimatedDaysIn(vs ...int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldEstimatedDays, vs...))
}

// EstimatedDaysNotIn applies the NotIn predicate on the "estimated_days" field.
func EstimatedDaysNotIn(vs ...int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldEstimatedDays, vs...))
}

// EstimatedDaysGT applies the GT predicate on the "estimated_days" field.
func EstimatedDaysGT(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldEstimatedDays, v))
}

// EstimatedDaysGTE applies the GTE predicate on the "estimated_days" field.
func EstimatedDaysGTE(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldEstimatedDays, v))
}

// EstimatedDaysLT applies the LT predicate on the "estimated_days" field.
func EstimatedDaysLT(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldEstimatedDays, v))
}

// EstimatedDaysLTE applies the LTE predicate on the "estimated_days" field.
func EstimatedDaysLTE(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldEstimatedDays, v))
}

// WarningsIsNil applies the IsNil predicate on the "warnings" field.
func WarningsIsNil() predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIsNull(FieldWarnings))
}

// WarningsNotNil applies the NotNil predicate on the "warnings" field.
func WarningsNotNil() predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotNull(FieldWarnings))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningPlan) predicate.LearningPlan {
	return predicate.LearningPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningPlan) predicate.LearningPlan {
	return predicate.LearningPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningPlan) predicate.LearningPlan {
	return predicate.LearningPlan(sql.NotPredicates(p))
}
