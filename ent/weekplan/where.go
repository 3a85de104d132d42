// Code generated by ent, DO NOT EDIT.

package weekplan

import (
	"entgo.io/ent/dialect/sql"
	"github.com/praxis-coach/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContainsFold(FieldID, id))
}

// GoalID applies equality check predicate on the "goal_id" field. It's identical to GoalIDEQ.
func GoalID(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldGoalID, v))
}

// QuestID applies equality check predicate on the "quest_id" field. It's identical to QuestIDEQ.
func QuestID(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldQuestID, v))
}

// WeekNumber applies equality check predicate on the "week_number" field. It's identical to WeekNumberEQ.
func WeekNumber(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldWeekNumber, v))
}

// StartDay applies equality check predicate on the "start_day" field. It's identical to StartDayEQ.
func StartDay(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldStartDay, v))
}

// EndDay applies equality check predicate on the "end_day" field. It's identical to EndDayEQ.
func EndDay(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldEndDay, v))
}

// DrillsCompleted applies equality check predicate on the "drills_completed" field. It's identical to DrillsCompletedEQ.
func DrillsCompleted(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldDrillsCompleted, v))
}

// DrillsPassed applies equality check predicate on the "drills_passed" field. It's identical to DrillsPassedEQ.
func DrillsPassed(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldDrillsPassed, v))
}

// DrillsFailed applies equality check predicate on the "drills_failed" field. It's identical to DrillsFailedEQ.
func DrillsFailed(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldDrillsFailed, v))
}

// DrillsSkipped applies equality check predicate on the "drills_skipped" field. It's identical to DrillsSkippedEQ.
func DrillsSkipped(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldDrillsSkipped, v))
}

// SkillsMastered applies equality check predicate on the "skills_mastered" field. It's identical to SkillsMasteredEQ.
func SkillsMastered(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldSkillsMastered, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldStatus, v))
}

// GoalIDEQ applies the EQ predicate on the "goal_id" field.
func GoalIDEQ(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldGoalID, v))
}

// GoalIDNEQ applies the NEQ predicate on the "goal_id" field.
func GoalIDNEQ(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldGoalID, v))
}

// GoalIDIn applies the In predicate on the "goal_id" field.
func GoalIDIn(vs ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldGoalID, vs...))
}

// GoalIDNotIn applies the NotIn predicate on the "goal_id" field.
func GoalIDNotIn(vs ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldGoalID, vs...))
}

// GoalIDGT applies the GT predicate on the "goal_id" field.
func GoalIDGT(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldGoalID, v))
}

// GoalIDGTE applies the GTE predicate on the "goal_id" field.
func GoalIDGTE(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldGoalID, v))
}

// GoalIDLT applies the LT predicate on the "goal_id" field.
func GoalIDLT(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldGoalID, v))
}

// GoalIDLTE applies the LTE predicate on the "goal_id" field.
func GoalIDLTE(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldGoalID, v))
}

// GoalIDContains applies the Contains predicate on the "goal_id" field.
func GoalIDContains(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContains(FieldGoalID, v))
}

// GoalIDHasPrefix applies the HasPrefix predicate on the "goal_id" field.
func GoalIDHasPrefix(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldHasPrefix(FieldGoalID, v))
}

// GoalIDHasSuffix applies the HasSuffix predicate on the "goal_id" field.
func GoalIDHasSuffix(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldHasSuffix(FieldGoalID, v))
}

// GoalIDEqualFold applies the EqualFold predicate on the "goal_id" field.
func GoalIDEqualFold(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEqualFold(FieldGoalID, v))
}

// GoalIDContainsFold applies the ContainsFold predicate on the "goal_id" field.
func GoalIDContainsFold(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContainsFold(FieldGoalID, v))
}

// QuestIDEQ applies the EQ predicate on the "quest_id" field.
func QuestIDEQ(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldQuestID, v))
}

// QuestIDNEQ applies the NEQ predicate on the "quest_id" field.
func QuestIDNEQ(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldQuestID, v))
}

// QuestIDIn applies the In predicate on the "quest_id" field.
func QuestIDIn(vs ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldQuestID, vs...))
}

// QuestIDNotIn applies the NotIn predicate on the "quest_id" field.
func QuestIDNotIn(vs ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldQuestID, vs...))
}

// QuestIDGT applies the GT predicate on the "quest_id" field.
func QuestIDGT(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldQuestID, v))
}

// QuestIDGTE applies the GTE predicate on the "quest_id" field.
func QuestIDGTE(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldQuestID, v))
}

// QuestIDLT applies the LT predicate on the "quest_id" field.
func QuestIDLT(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldQuestID, v))
}

// QuestIDLTE applies the LTE predicate on the "quest_id" field.
func QuestIDLTE(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldQuestID, v))
}

// QuestIDContains applies the Contains predicate on the "quest_id" field.
func QuestIDContains(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContains(FieldQuestID, v))
}

// QuestIDHasPrefix applies the HasPrefix predicate on the "quest_id" field.
func QuestIDHasPrefix(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldHasPrefix(FieldQuestID, v))
}

// QuestIDHasSuffix applies the HasSuffix predicate on the "quest_id" field.
func QuestIDHasSuffix(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldHasSuffix(FieldQuestID, v))
}

// QuestIDEqualFold applies the EqualFold predicate on the "quest_id" field.
func QuestIDEqualFold(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEqualFold(FieldQuestID, v))
}

// QuestIDContainsFold applies the ContainsFold predicate on the "quest_id" field.
func QuestIDContainsFold(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContainsFold(FieldQuestID, v))
}

// WeekNumberEQ applies the EQ predicate on the "week_number" field.
func WeekNumberEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldWeekNumber, v))
}

// WeekNumberNEQ applies the NEQ predicate on the "week_number" field.
func WeekNumberNEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldWeekNumber, v))
}

// WeekNumberIn applies the In predicate on the "week_number" field.
func WeekNumberIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldWeekNumber, vs...))
}

// WeekNumberNotIn applies the NotIn predicate on the "week_number" field.
func WeekNumberNotIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldWeekNumber, vs...))
}

// WeekNumberGT applies the GT predicate on the "week_number" field.
func WeekNumberGT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldWeekNumber, v))
}

// WeekNumberGTE applies the GTE predicate on the "week_number" field.
func WeekNumberGTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldWeekNumber, v))
}

// WeekNumberLT applies the LT predicate on the "week_number" field.
func WeekNumberLT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldWeekNumber, v))
}

// WeekNumberLTE applies the LTE predicate on the "week_number" field.
func WeekNumberLTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldWeekNumber, v))
}

// StartDayEQ applies the EQ predicate on the "start_day" field.
func StartDayEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldStartDay, v))
}

// StartDayNEQ applies the NEQ predicate on the "start_day" field.
func StartDayNEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldStartDay, v))
}

// StartDayIn applies the In predicate on the "start_day" field.
func StartDayIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldStartDay, vs...))
}

// StartDayNotIn applies the NotIn predicate on the "start_day" field.
func StartDayNotIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldStartDay, vs...))
}

// StartDayGT applies the GT predicate on the "start_day" field.
func StartDayGT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldStartDay, v))
}

// StartDayGTE applies the GTE predicate on the "start_day" field.
func StartDayGTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldStartDay, v))
}

// StartDayLT applies the LT predicate on the "start_day" field.
func StartDayLT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldStartDay, v))
}

// StartDayLTE applies the LTE predicate on the "start_day" field.
func StartDayLTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldStartDay, v))
}

// EndDayEQ applies the EQ predicate on the "end_day" field.
func EndDayEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldEndDay, v))
}

// EndDayNEQ applies the NEQ predicate on the "end_day" field.
func EndDayNEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldEndDay, v))
}

// EndDayIn applies the In predicate on the "end_day" field.
func EndDayIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldEndDay, vs...))
}

// EndDayNotIn applies the NotIn predicate on the "end_day" field.
func EndDayNotIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldEndDay, vs...))
}

// EndDayGT applies the GT predicate on the "end_day" field.
func EndDayGT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldEndDay, v))
}

// EndDayGTE applies the GTE predicate on the "end_day" field.
func EndDayGTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldEndDay, v))
}

// EndDayLT applies the LT predicate on the "end_day" field.
func EndDayLT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldEndDay, v))
}

// EndDayLTE applies the LTE predicate on the "end_day" field.
func EndDayLTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldEndDay, v))
}

// DrillsCompletedEQ applies the EQ predicate on the "drills_completed" field.
func DrillsCompletedEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldDrillsCompleted, v))
}

// DrillsCompletedNEQ applies the NEQ predicate on the "drills_completed" field.
func DrillsCompletedNEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldDrillsCompleted, v))
}

// DrillsCompletedIn applies the In predicate on the "drills_completed" field.
func DrillsCompletedIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldDrillsCompleted, vs...))
}

// DrillsCompletedNotIn applies the NotIn predicate on the "drills_completed" field.
func DrillsCompletedNotIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldDrillsCompleted, vs...))
}

// DrillsCompletedGT applies the GT predicate on the "drills_completed" field.
func DrillsCompletedGT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldDrillsCompleted, v))
}

// DrillsCompletedGTE applies the GTE predicate on the "drills_completed" field.
func DrillsCompletedGTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldDrillsCompleted, v))
}

// DrillsCompletedLT applies the LT predicate on the "drills_completed" field.
func DrillsCompletedLT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldDrillsCompleted, v))
}

// DrillsCompletedLTE applies the LTE predicate on the "drills_completed" field.
func DrillsCompletedLTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldDrillsCompleted, v))
}

// DrillsPassedEQ applies the EQ predicate on the "drills_passed" field.
func DrillsPassedEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldDrillsPassed, v))
}

// DrillsPassedNEQ applies the NEQ predicate on the "drills_passed" field.
func DrillsPassedNEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldDrillsPassed, v))
}

// DrillsPassedIn applies the In predicate on the "drills_passed" field.
func DrillsPassedIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldDrillsPassed, vs...))
}

// DrillsPassedNotIn applies the NotIn predicate on the "drills_passed" field.
func DrillsPassedNotIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldDrillsPassed, vs...))
}

// DrillsPassedGT applies the GT predicate on the "drills_passed" field.
func DrillsPassedGT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldDrillsPassed, v))
}

// DrillsPassedGTE applies the GTE predicate on the "drills_passed" field.
func DrillsPassedGTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldDrillsPassed, v))
}

// DrillsPassedLT applies the LT predicate on the "drills_passed" field.
func DrillsPassedLT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldDrillsPassed, v))
}

// DrillsPassedLTE applies the LTE predicate on the "drills_passed" field.
func DrillsPassedLTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldDrillsPassed, v))
}

// DrillsFailedEQ applies the EQ predicate on the "drills_failed" field.
func DrillsFailedEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldDrillsFailed, v))
}

// DrillsFailedNEQ applies the NEQ predicate on the "drills_failed" field.
func DrillsFailedNEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldDrillsFailed, v))
}

// DrillsFailedIn applies the In predicate on the "drills_failed" field.
func DrillsFailedIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldDrillsFailed, vs...))
}

// DrillsFailedNotIn applies the NotIn predicate on the "drills_failed" field.
func DrillsFailedNotIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldDrillsFailed, vs...))
}

// DrillsFailedGT applies the GT predicate on the "drills_failed" field.
func DrillsFailedGT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldDrillsFailed, v))
}

// DrillsFailedGTE applies the GTE predicate on the "drills_failed" field.
func DrillsFailedGTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldDrillsFailed, v))
}

// DrillsFailedLT applies the LT predicate on the "drills_failed" field.
func DrillsFailedLT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldDrillsFailed, v))
}

// DrillsFailedLTE applies the LTE predicate on the "drills_failed" field.
func DrillsFailedLTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldDrillsFailed, v))
}

// DrillsSkippedEQ applies the EQ predicate on the "drills_skipped" field.
func DrillsSkippedEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldDrillsSkipped, v))
}

// DrillsSkippedNEQ applies the NEQ predicate on the "drills_skipped" field.
func DrillsSkippedNEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldDrillsSkipped, v))
}

// DrillsSkippedIn applies the In predicate on the "drills_skipped" field.
func DrillsSkippedIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldDrillsSkipped, vs...))
}

// DrillsSkippedNotIn applies the NotIn predicate on the "drills_skipped" field.
func DrillsSkippedNotIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldDrillsSkipped, vs...))
}

// DrillsSkippedGT applies the GT predicate on the "drills_skipped" field.
func DrillsSkippedGT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldDrillsSkipped, v))
}

// DrillsSkippedGTE applies the GTE predicate on the "drills_skipped" field.
func DrillsSkippedGTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldDrillsSkipped, v))
}

// DrillsSkippedLT applies the LT predicate on the "drills_skipped" field.
func DrillsSkippedLT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldDrillsSkipped, v))
}

// DrillsSkippedLTE applies the LTE predicate on the "drills_skipped" field.
func DrillsSkippedLTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldDrillsSkipped, v))
}

// SkillsMasteredEQ applies the EQ predicate on the "skills_mastered" field.
func SkillsMasteredEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldSkillsMastered, v))
}

// SkillsMasteredNEQ applies the NEQ predicate on the "skills_mastered" field.
func SkillsMasteredNEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldSkillsMastered, v))
}

// SkillsMasteredIn applies the In predicate on the "skills_mastered" field.
func SkillsMasteredIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldSkillsMastered, vs...))
}

// SkillsMasteredNotIn applies the NotIn predicate on the "skills_mastered" field.
func SkillsMasteredNotIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldSkillsMastered, vs...))
}

// SkillsMasteredGT applies the GT predicate on the "skills_mastered" field.
func SkillsMasteredGT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldSkillsMastered, v))
}

// SkillsMasteredGTE applies the GTE predicate on the "skills_mastered" field.
func SkillsMasteredGTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldSkillsMastered, v))
}

// SkillsMasteredLT applies the LT predicate on the "skills_mastered" field.
func SkillsMasteredLT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldSkillsMastered, v))
}

// SkillsMasteredLTE applies the LTE predicate on the "skills_mastered" field.
func SkillsMasteredLTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldSkillsMastered, v))
}

// CarryForwardIsNil applies the IsNil predicate on the "carry_forward" field.
func CarryForwardIsNil() predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIsNull(FieldCarryForward))
}

// CarryForwardNotNil applies the NotNil predicate on the "carry_forward" field.
func CarryForwardNotNil() predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotNull(FieldCarryForward))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContainsFold(FieldStatus, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WeekPlan) predicate.WeekPlan {
	return predicate.WeekPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WeekPlan) predicate.WeekPlan {
	return predicate.WeekPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WeekPlan) predicate.WeekPlan {
	return predicate.WeekPlan(sql.NotPredicates(p))
}
