// Code generated by ent, DO NOT EDIT.

package skill

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/praxis-coach/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldID, id))
}

// QuestID applies equality check predicate on the "quest_id" field. It's identical to QuestIDEQ.
func QuestID(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldQuestID, v))
}

// GoalID applies equality check predicate on the "goal_id" field. It's identical to GoalIDEQ.
func GoalID(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldGoalID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldUserID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldTitle, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldAction, v))
}

// SuccessSignal applies equality check predicate on the "success_signal" field. It's identical to SuccessSignalEQ.
func SuccessSignal(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldSuccessSignal, v))
}

// EstimatedMinutes applies equality check predicate on the "estimated_minutes" field. It's identical to EstimatedMinutesEQ.
func EstimatedMinutes(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldEstimatedMinutes, v))
}

// SkillType applies equality check predicate on the "skill_type" field. It's identical to SkillTypeEQ.
func SkillType(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldSkillType, v))
}

// OrderIndex applies equality check predicate on the "order_index" field. It's identical to OrderIndexEQ.
func OrderIndex(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldOrderIndex, v))
}

// StageLevel applies equality check predicate on the "stage_level" field. It's identical to StageLevelEQ.
func StageLevel(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldStageLevel, v))
}

// DesignedFailure applies equality check predicate on the "designed_failure" field. It's identical to DesignedFailureEQ.
func DesignedFailure(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldDesignedFailure, v))
}

// Consequence applies equality check predicate on the "consequence" field. It's identical to ConsequenceEQ.
func Consequence(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldConsequence, v))
}

// Recovery applies equality check predicate on the "recovery" field. It's identical to RecoveryEQ.
func Recovery(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldRecovery, v))
}

// TransferScenario applies equality check predicate on the "transfer_scenario" field. It's identical to TransferScenarioEQ.
func TransferScenario(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldTransferScenario, v))
}

// Mastery applies equality check predicate on the "mastery" field. It's identical to MasteryEQ.
func Mastery(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldMastery, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldStatus, v))
}

// PassCount applies equality check predicate on the "pass_count" field. It's identical to PassCountEQ.
func PassCount(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldPassCount, v))
}

// FailCount applies equality check predicate on the "fail_count" field. It's identical to FailCountEQ.
func FailCount(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldFailCount, v))
}

// ConsecutivePasses applies equality check predicate on the "consecutive_passes" field. It's identical to ConsecutivePassesEQ.
func ConsecutivePasses(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldConsecutivePasses, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldNeedsReview, v))
}

// LastPracticedAt applies equality check predicate on the "last_practiced_at" field. It's identical to LastPracticedAtEQ.
func LastPracticedAt(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldLastPracticedAt, v))
}

// QuestIDEQ applies the EQ predicate on the "quest_id" field.
func QuestIDEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldQuestID, v))
}

// QuestIDNEQ applies the NEQ predicate on the "quest_id" field.
func QuestIDNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldQuestID, v))
}

// QuestIDIn applies the In predicate on the "quest_id" field.
func QuestIDIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldQuestID, vs...))
}

// QuestIDNotIn applies the NotIn predicate on the "quest_id" field.
func QuestIDNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldQuestID, vs...))
}

// QuestIDGT applies the GT predicate on the "quest_id" field.
func QuestIDGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldQuestID, v))
}

// QuestIDGTE applies the GTE predicate on the "quest_id" field.
func QuestIDGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldQuestID, v))
}

// QuestIDLT applies the LT predicate on the "quest_id" field.
func QuestIDLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldQuestID, v))
}

// QuestIDLTE applies the LTE predicate on the "quest_id" field.
func QuestIDLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldQuestID, v))
}

// QuestIDContains applies the Contains predicate on the "quest_id" field.
func QuestIDContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldQuestID, v))
}

// QuestIDHasPrefix applies the HasPrefix predicate on the "quest_id" field.
func QuestIDHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldQuestID, v))
}

// QuestIDHasSuffix applies the HasSuffix predicate on the "quest_id" field.
func QuestIDHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldQuestID, v))
}

// QuestIDEqualFold applies the EqualFold predicate on the "quest_id" field.
func QuestIDEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldQuestID, v))
}

// QuestIDContainsFold applies the ContainsFold predicate on the "quest_id" field.
func QuestIDContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldQuestID, v))
}

// GoalIDEQ applies the EQ predicate on the "goal_id" field.
func GoalIDEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldGoalID, v))
}

// GoalIDNEQ applies the NEQ predicate on the "goal_id" field.
func GoalIDNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldGoalID, v))
}

// GoalIDIn applies the In predicate on the "goal_id" field.
func GoalIDIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldGoalID, vs...))
}

// GoalIDNotIn applies the NotIn predicate on the "goal_id" field.
func GoalIDNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldGoalID, vs...))
}

// GoalIDGT applies the GT predicate on the "goal_id" field.
func GoalIDGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldGoalID, v))
}

// GoalIDGTE applies the GTE predicate on the "goal_id" field.
func GoalIDGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldGoalID, v))
}

// GoalIDLT applies the LT predicate on the "goal_id" field.
func GoalIDLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldGoalID, v))
}

// GoalIDLTE applies the LTE predicate on the "goal_id" field.
func GoalIDLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldGoalID, v))
}

// GoalIDContains applies the Contains predicate on the "goal_id" field.
func GoalIDContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldGoalID, v))
}

// GoalIDHasPrefix applies the HasPrefix predicate on the "goal_id" field.
func GoalIDHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldGoalID, v))
}

// GoalIDHasSuffix applies the HasSuffix predicate on the "goal_id" field.
func GoalIDHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldGoalID, v))
}

// GoalIDEqualFold applies the EqualFold predicate on the "goal_id" field.
func GoalIDEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldGoalID, v))
}

// GoalIDContainsFold applies the ContainsFold predicate on the "goal_id" field.
func GoalIDContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldGoalID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldUserID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldTitle, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldAction, v))
}

// SuccessSignalEQ applies the EQ predicate on the "success_signal" field.
func SuccessSignalEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldSuccessSignal, v))
}

// SuccessSignalNEQ applies the NEQ predicate on the "success_signal" field.
func SuccessSignalNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldSuccessSignal, v))
}

// SuccessSignalIn applies the In predicate on the "success_signal" field.
func SuccessSignalIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldSuccessSignal, vs...))
}

// SuccessSignalNotIn applies the NotIn predicate on the "success_signal" field.
func SuccessSignalNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldSuccessSignal, vs...))
}

// SuccessSignalGT applies the GT predicate on the "success_signal" field.
func SuccessSignalGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldSuccessSignal, v))
}

// SuccessSignalGTE applies the GTE predicate on the "success_signal" field.
func SuccessSignalGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldSuccessSignal, v))
}

// SuccessSignalLT applies the LT predicate on the "success_signal" field.
func SuccessSignalLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldSuccessSignal, v))
}

// SuccessSignalLTE applies the LTE predicate on the "success_signal" field.
func SuccessSignalLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldSuccessSignal, v))
}

// SuccessSignalContains applies the Contains predicate on the "success_signal" field.
func SuccessSignalContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldSuccessSignal, v))
}

// SuccessSignalHasPrefix applies the HasPrefix predicate on the "success_signal" field.
func SuccessSignalHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldSuccessSignal, v))
}

// SuccessSignalHasSuffix applies the HasSuffix predicate on the "success_signal" field.
func SuccessSignalHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldSuccessSignal, v))
}

// SuccessSignalEqualFold applies the EqualFold predicate on the "success_signal" field.
func SuccessSignalEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldSuccessSignal, v))
}

// SuccessSignalContainsFold applies the ContainsFold predicate on the "success_signal" field.
func SuccessSignalContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldSuccessSignal, v))
}

// EstimatedMinutesEQ applies the EQ predicate on the "estimated_minutes" field.
func EstimatedMinutesEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldEstimatedMinutes, v))
}

// EstimatedMinutesNEQ applies the NEQ predicate on the "estimated_minutes" field.
func EstimatedMinutesNEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldEstimatedMinutes, v))
}

// EstimatedMinutesIn applies the In predicate on the "estimated_minutes" field.
func EstimatedMinutesIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldEstimatedMinutes, vs...))
}

// EstimatedMinutesNotIn applies the NotIn predicate on the "estimated_minutes" field.
func EstimatedMinutesNotIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldEstimatedMinutes, vs...))
}

// EstimatedMinutesGT applies the GT predicate on the "estimated_minutes" field.
func EstimatedMinutesGT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldEstimatedMinutes, v))
}

// EstimatedMinutesGTE applies the GTE predicate on the "estimated_minutes" field.
func EstimatedMinutesGTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldEstimatedMinutes, v))
}

// EstimatedMinutesLT applies the LT predicate on the "estimated_minutes" field.
func EstimatedMinutesLT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldEstimatedMinutes, v))
}

// EstimatedMinutesLTE applies the LTE predicate on the "estimated_minutes" field.
func EstimatedMinutesLTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldEstimatedMinutes, v))
}

// SkillTypeEQ applies the EQ predicate on the "skill_type" field.
func SkillTypeEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldSkillType, v))
}

// SkillTypeNEQ applies the NEQ predicate on the "skill_type" field.
func SkillTypeNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldSkillType, v))
}

// SkillTypeIn applies the In predicate on the "skill_type" field.
func SkillTypeIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldSkillType, vs...))
}

// SkillTypeNotIn applies the NotIn predicate on the "skill_type" field.
func SkillTypeNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldSkillType, vs...))
}

// SkillTypeGT applies the GT predicate on the "skill_type" field.
func SkillTypeGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldSkillType, v))
}

// SkillTypeGTE applies the GTE predicate on the "skill_type" field.
func SkillTypeGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldSkillType, v))
}

// SkillTypeLT applies the LT predicate on the "skill_type" field.
func SkillTypeLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldSkillType, v))
}

// SkillTypeLTE applies the LTE predicate on the "skill_type" field.
func SkillTypeLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldSkillType, v))
}

// SkillTypeContains applies the Contains predicate on the "skill_type" field.
func SkillTypeContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldSkillType, v))
}

// SkillTypeHasPrefix applies the HasPrefix predicate on the "skill_type" field.
func SkillTypeHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldSkillType, v))
}

// SkillTypeHasSuffix applies the HasSuffix predicate on the "skill_type" field.
func SkillTypeHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldSkillType, v))
}

// SkillTypeEqualFold applies the EqualFold predicate on the "skill_type" field.
func SkillTypeEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldSkillType, v))
}

// SkillTypeContainsFold applies the ContainsFold predicate on the "skill_type" field.
func SkillTypeContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldSkillType, v))
}

// OrderIndexEQ applies the EQ predicate on the "order_index" field.
func OrderIndexEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldOrderIndex, v))
}

// OrderIndexNEQ applies the NEQ predicate on the "order_index" field.
func OrderIndexNEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldOrderIndex, v))
}

// OrderIndexIn applies the In predicate on the "order_index" field.
func OrderIndexIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldOrderIndex, vs...))
}

// OrderIndexNotIn applies the NotIn predicate on the "order_index" field.
func OrderIndexNotIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldOrderIndex, vs...))
}

// OrderIndexGT applies the GT predicate on the "order_index" field.
func OrderIndexGT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldOrderIndex, v))
}

// OrderIndexGTE applies the GTE predicate on the "order_index" field.
func OrderIndexGTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldOrderIndex, v))
}

// OrderIndexLT applies the LT predicate on the "order_index" field.
func OrderIndexLT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldOrderIndex, v))
}

// OrderIndexLTE applies the LTE predicate on the "order_index" field.
func OrderIndexLTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldOrderIndex, v))
}

// StageLevelEQ applies the EQ predicate on the "stage_level" field.
func StageLevelEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldStageLevel, v))
}

// StageLevelNEQ applies the NEQ predicate on the "stage_level" field.
func StageLevelNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldStageLevel, v))
}

// StageLevelIn applies the In predicate on the "stage_level" field.
func StageLevelIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldStageLevel, vs...))
}

// StageLevelNotIn applies the NotIn predicate on the "stage_level" field.
func StageLevelNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldStageLevel, vs...))
}

// StageLevelGT applies the GT predicate on the "stage_level" field.
func StageLevelGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldStageLevel, v))
}

// StageLevelGTE applies the GTE predicate on the "stage_level" field.
func StageLevelGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldStageLevel, v))
}

// StageLevelLT applies the LT predicate on the "stage_level" field.
func StageLevelLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldStageLevel, v))
}

// StageLevelLTE applies the LTE predicate on the "stage_level" field.
func StageLevelLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldStageLevel, v))
}

// StageLevelContains applies the Contains predicate on the "stage_level" field.
func StageLevelContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldStageLevel, v))
}

// StageLevelHasPrefix applies the HasPrefix predicate on the "stage_level" field.
func StageLevelHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldStageLevel, v))
}

// StageLevelHasSuffix applies the HasSuffix predicate on the "stage_level" field.
func StageLevelHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldStageLevel, v))
}

// StageLevelIsNil applies the IsNil predicate on the "stage_level" field.
func StageLevelIsNil() predicate.Skill {
	return predicate.Skill(sql.FieldIsNull(FieldStageLevel))
}

// StageLevelNotNil applies the NotNil predicate on the "stage_level" field.
func StageLevelNotNil() predicate.Skill {
	return predicate.Skill(sql.FieldNotNull(FieldStageLevel))
}

// StageLevelEqualFold applies the EqualFold predicate on the "stage_level" field.
func StageLevelEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldStageLevel, v))
}

// StageLevelContainsFold applies the ContainsFold predicate on the "stage_level" field.
func StageLevelContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldStageLevel, v))
}

// PrerequisitesIsNil applies the IsNil predicate on the "prerequisites" field.
func PrerequisitesIsNil() predicate.Skill {
	return predicate.Skill(sql.FieldIsNull(FieldPrerequisites))
}

// PrerequisitesNotNil applies the NotNil predicate on the "prerequisites" field.
func PrerequisitesNotNil() predicate.Skill {
	return predicate.Skill(sql.FieldNotNull(FieldPrerequisites))
}

// ComponentsIsNil applies the IsNil predicate on the "components" field.
func ComponentsIsNil() predicate.Skill {
	return predicate.Skill(sql.FieldIsNull(FieldComponents))
}

// ComponentsNotNil applies the NotNil predicate on the "components" field.
func ComponentsNotNil() predicate.Skill {
	return predicate.Skill(sql.FieldNotNull(FieldComponents))
}

// DesignedFailureEQ applies the EQ predicate on the "designed_failure" field.
func DesignedFailureEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldDesignedFailure, v))
}

// DesignedFailureNEQ applies the NEQ predicate on the "designed_failure" field.
func DesignedFailureNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldDesignedFailure, v))
}

// DesignedFailureIn applies the In predicate on the "designed_failure" field.
func DesignedFailureIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldDesignedFailure, vs...))
}

// DesignedFailureNotIn applies the NotIn predicate on the "designed_failure" field.
func DesignedFailureNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldDesignedFailure, vs...))
}

// DesignedFailureGT applies the GT predicate on the "designed_failure" field.
func DesignedFailureGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldDesignedFailure, v))
}

// DesignedFailureGTE applies the GTE predicate on the "designed_failure" field.
func DesignedFailureGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldDesignedFailure, v))
}

// DesignedFailureLT applies the LT predicate on the "designed_failure" field.
func DesignedFailureLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldDesignedFailure, v))
}

// DesignedFailureLTE applies the LTE predicate on the "designed_failure" field.
func DesignedFailureLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldDesignedFailure, v))
}

// DesignedFailureContains applies the Contains predicate on the "designed_failure" field.
func DesignedFailureContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldDesignedFailure, v))
}

// DesignedFailureHasPrefix applies the HasPrefix predicate on the "designed_failure" field.
func DesignedFailureHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldDesignedFailure, v))
}

// DesignedFailureHasSuffix applies the HasSuffix predicate on the "designed_failure" field.
func DesignedFailureHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldDesignedFailure, v))
}

// DesignedFailureIsNil applies the IsNil predicate on the "designed_failure" field.
func DesignedFailureIsNil() predicate.Skill {
	return predicate.Skill(sql.FieldIsNull(FieldDesignedFailure))
}

// DesignedFailureNotNil applies the NotNil predicate on the "designed_failure" field.
func DesignedFailureNotNil() predicate.Skill {
	return predicate.Skill(sql.FieldNotNull(FieldDesignedFailure))
}

// DesignedFailureEqualFold applies the EqualFold predicate on the "designed_failure" field.
func DesignedFailureEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldDesignedFailure, v))
}

// DesignedFailureContainsFold applies the ContainsFold predicate on the "designed_failure" field.
func DesignedFailureContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldDesignedFailure, v))
}

// ConsequenceEQ applies the EQ predicate on the "consequence" field.
func ConsequenceEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldConsequence, v))
}

// ConsequenceNEQ applies the NEQ predicate on the "consequence" field.
func ConsequenceNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldConsequence, v))
}

// ConsequenceIn applies the In predicate on the "consequence" field.
func ConsequenceIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldConsequence, vs...))
}

// ConsequenceNotIn applies the NotIn predicate on the "consequence" field.
func ConsequenceNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldConsequence, vs...))
}

// ConsequenceGT applies the GT predicate on the "consequence" field.
func ConsequenceGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldConsequence, v))
}

// ConsequenceGTE applies the GTE predicate on the "consequence" field.
func ConsequenceGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldConsequence, v))
}

// ConsequenceLT applies the LT predicate on the "consequence" field.
func ConsequenceLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldConsequence, v))
}

// ConsequenceLTE applies the LTE predicate on the "consequence" field.
func ConsequenceLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldConsequence, v))
}

// ConsequenceContains applies the Contains predicate on the "consequence" field.
func ConsequenceContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldConsequence, v))
}

// ConsequenceHasPrefix applies the HasPrefix predicate on the "consequence" field.
func ConsequenceHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldConsequence, v))
}

// ConsequenceHasSuffix applies the HasSuffix predicate on the "consequence" field.
func ConsequenceHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldConsequence, v))
}

// ConsequenceIsNil applies the IsNil predicate on the "consequence" field.
func ConsequenceIsNil() predicate.Skill {
	return predicate.Skill(sql.FieldIsNull(FieldConsequence))
}

// ConsequenceNotNil applies the NotNil predicate on the "consequence" field.
func ConsequenceNotNil() predicate.Skill {
	return predicate.Skill(sql.FieldNotNull(FieldConsequence))
}

// ConsequenceEqualFold applies the EqualFold predicate on the "consequence" field.
func ConsequenceEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldConsequence, v))
}

// ConsequenceContainsFold applies the ContainsFold predicate on the "consequence" field.
func ConsequenceContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldConsequence, v))
}

// RecoveryEQ applies the EQ predicate on the "recovery" field.
func RecoveryEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldRecovery, v))
}

// RecoveryNEQ applies the NEQ predicate on the "recovery" field.
func RecoveryNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldRecovery, v))
}

// RecoveryIn applies the In predicate on the "recovery" field.
func RecoveryIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldRecovery, vs...))
}

// RecoveryNotIn applies the NotIn predicate on the "recovery" field.
func RecoveryNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldRecovery, vs...))
}

// RecoveryGT applies the GT predicate on the "recovery" field.
func RecoveryGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldRecovery, v))
}

// RecoveryGTE applies the GTE predicate on the "recovery" field.
func RecoveryGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldRecovery, v))
}

// RecoveryLT applies the LT predicate on the "recovery" field.
func RecoveryLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldRecovery, v))
}

// RecoveryLTE applies the LTE predicate on the "recovery" field.
func RecoveryLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldRecovery, v))
}

// RecoveryContains applies the Contains predicate on the "recovery" field.
func RecoveryContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldRecovery, v))
}

// RecoveryHasPrefix applies the HasPrefix predicate on the "recovery" field.
func RecoveryHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldRecovery, v))
}

// RecoveryHasSuffix applies the HasSuffix predicate on the "recovery" field.
func RecoveryHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldRecovery, v))
}

// RecoveryIsNil applies the IsNil predicate on the "recovery" field.
func RecoveryIsNil() predicate.Skill {
	return predicate.Skill(sql.FieldIsNull(FieldRecovery))
}

// RecoveryNotNil applies the NotNil predicate on the "recovery" field.
func RecoveryNotNil() predicate.Skill {
	return predicate.Skill(sql.FieldNotNull(FieldRecovery))
}

// RecoveryEqualFold applies the EqualFold predicate on the "recovery" field.
func RecoveryEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldRecovery, v))
}

// RecoveryContainsFold applies the ContainsFold predicate on the "recovery" field.
func RecoveryContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldRecovery, v))
}

// TransferScenarioEQ applies the EQ predicate on the "transfer_scenario" field.
func TransferScenarioEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldTransferScenario, v))
}

// TransferScenarioNEQ applies the NEQ predicate on the "transfer_scenario" field.
func TransferScenarioNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldTransferScenario, v))
}

// TransferScenarioIn applies the In predicate on the "transfer_scenario" field.
func TransferScenarioIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldTransferScenario, vs...))
}

// TransferScenarioNotIn applies the NotIn predicate on the "transfer_scenario" field.
func TransferScenarioNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldTransferScenario, vs...))
}

// TransferScenarioGT applies the GT predicate on the "transfer_scenario" field.
func TransferScenarioGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldTransferScenario, v))
}

// TransferScenarioGTE applies the GTE predicate on the "transfer_scenario" field.
func TransferScenarioGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldTransferScenario, v))
}

// TransferScenarioLT applies the LT predicate on the "transfer_scenario" field.
func TransferScenarioLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldTransferScenario, v))
}

// TransferScenarioLTE applies the LTE predicate on the "transfer_scenario" field.
func TransferScenarioLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldTransferScenario, v))
}

// TransferScenarioContains applies the Contains predicate on the "transfer_scenario" field.
func TransferScenarioContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldTransferScenario, v))
}

// TransferScenarioHasPrefix applies the HasPrefix predicate on the "transfer_scenario" field.
func TransferScenarioHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldTransferScenario, v))
}

// TransferScenarioHasSuffix applies the HasSuffix predicate on the "transfer_scenario" field.
func TransferScenarioHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldTransferScenario, v))
}

// TransferScenarioIsNil applies the IsNil predicate on the "transfer_scenario" field.
func TransferScenarioIsNil() predicate.Skill {
	return predicate.Skill(sql.FieldIsNull(FieldTransferScenario))
}

// TransferScenarioNotNil applies the NotNil predicate on the "transfer_scenario" field.
func TransferScenarioNotNil() predicate.Skill {
	return predicate.Skill(sql.FieldNotNull(FieldTransferScenario))
}

// TransferScenarioEqualFold applies the EqualFold predicate on the "transfer_scenario" field.
func TransferScenarioEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldTransferScenario, v))
}

// TransferScenarioContainsFold applies the ContainsFold predicate on the "transfer_scenario" field.
func TransferScenarioContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldTransferScenario, v))
}

// MasteryEQ applies the EQ predicate on the "mastery" field.
func MasteryEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldMastery, v))
}

// MasteryNEQ applies the NEQ predicate on the "mastery" field.
func MasteryNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldMastery, v))
}

// MasteryIn applies the In predicate on the "mastery" field.
func MasteryIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldMastery, vs...))
}

// MasteryNotIn applies the NotIn predicate on the "mastery" field.
func MasteryNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldMastery, vs...))
}

// MasteryGT applies the GT predicate on the "mastery" field.
func MasteryGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldMastery, v))
}

// MasteryGTE applies the GTE predicate on the "mastery" field.
func MasteryGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldMastery, v))
}

// MasteryLT applies the LT predicate on the "mastery" field.
func MasteryLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldMastery, v))
}

// MasteryLTE applies the LTE predicate on the "mastery" field.
func MasteryLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldMastery, v))
}

// MasteryContains applies the Contains predicate on the "mastery" field.
func MasteryContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldMastery, v))
}

// MasteryHasPrefix applies the HasPrefix predicate on the "mastery" field.
func MasteryHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldMastery, v))
}

// MasteryHasSuffix applies the HasSuffix predicate on the "mastery" field.
func MasteryHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldMastery, v))
}

// MasteryEqualFold applies the EqualFold predicate on the "mastery" field.
func MasteryEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldMastery, v))
}

// MasteryContainsFold applies the ContainsFold predicate on the "mastery" field.
func MasteryContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldMastery, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldStatus, v))
}

// PassCountEQ applies the EQ predicate on the "pass_count" field.
func PassCountEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldPassCount, v))
}

// PassCountNEQ applies the NEQ predicate on the "pass_count" field.
func PassCountNEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldPassCount, v))
}

// PassCountIn applies the In predicate on the "pass_count" field.
func PassCountIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldPassCount, vs...))
}

// PassCountNotIn applies the NotIn predicate on the "pass_count" field.
func PassCountNotIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldPassCount, vs...))
}

// PassCountGT applies the GT predicate on the "pass_count" field.
func PassCountGT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldPassCount, v))
}

// PassCountGTE applies the GTE predicate on the "pass_count" field.
func PassCountGTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldPassCount, v))
}

// PassCountLT applies the LT predicate on the "pass_count" field.
func PassCountLT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldPassCount, v))
}

// PassCountLTE applies the LTE predicate on the "pass_count" field.
func PassCountLTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldPassCount, v))
}

// FailCountEQ applies the EQ predicate on the "fail_count" field.
func FailCountEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldFailCount, v))
}

// FailCountNEQ applies the NEQ predicate on the "fail_count" field.
func FailCountNEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldFailCount, v))
}

// FailCountIn applies the In predicate on the "fail_count" field.
func FailCountIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldFailCount, vs...))
}

// FailCountNotIn applies the NotIn predicate on the "fail_count" field.
func FailCountNotIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldFailCount, vs...))
}

// FailCountGT applies the GT predicate on the "fail_count" field.
func FailCountGT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldFailCount, v))
}

// FailCountGTE applies the GTE predicate on the "fail_count" field.
func FailCountGTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldFailCount, v))
}

// FailCountLT applies the LT predicate on the "fail_count" field.
func FailCountLT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldFailCount, v))
}

// FailCountLTE applies the LTE predicate on the "fail_count" field.
func FailCountLTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldFailCount, v))
}

// ConsecutivePassesEQ applies the EQ predicate on the "consecutive_passes" field.
func ConsecutivePassesEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldConsecutivePasses, v))
}

// ConsecutivePassesNEQ applies the NEQ predicate on the "consecutive_passes" field.
func ConsecutivePassesNEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldConsecutivePasses, v))
}

// ConsecutivePassesIn applies the In predicate on the "consecutive_passes" field.
func ConsecutivePassesIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldConsecutivePasses, vs...))
}

// ConsecutivePassesNotIn applies the NotIn predicate on the "consecutive_passes" field.
func ConsecutivePassesNotIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldConsecutivePasses, vs...))
}

// ConsecutivePassesGT applies the GT predicate on the "consecutive_passes" field.
func ConsecutivePassesGT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldConsecutivePasses, v))
}

// ConsecutivePassesGTE applies the GTE predicate on the "consecutive_passes" field.
func ConsecutivePassesGTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldConsecutivePasses, v))
}

// ConsecutivePassesLT applies the LT predicate on the "consecutive_passes" field.
func ConsecutivePassesLT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldConsecutivePasses, v))
}

// ConsecutivePassesLTE applies the LTE predicate on the "consecutive_passes" field.
func ConsecutivePassesLTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldConsecutivePasses, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldNeedsReview, v))
}

// LastPracticedAtEQ applies the EQ predicate on the "last_practiced_at" field.
func LastPracticedAtEQ(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtNEQ applies the NEQ predicate on the "last_practiced_at" field.
func LastPracticedAtNEQ(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtIn applies the In predicate on the "last_practiced_at" field.
func LastPracticedAtIn(vs ...time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtNotIn applies the NotIn predicate on the "last_practiced_at" field.
func LastPracticedAtNotIn(vs ...time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtGT applies the GT predicate on the "last_practiced_at" field.
func LastPracticedAtGT(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldLastPracticedAt, v))
}

// LastPracticedAtGTE applies the GTE predicate on the "last_practiced_at" field.
func LastPracticedAtGTE(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldLastPracticedAt, v))
}

// LastPracticedAtLT applies the LT predicate on the "last_practiced_at" field.
func LastPracticedAtLT(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldLastPracticedAt, v))
}

// LastPracticedAtLTE applies the LTE predicate on the "last_practiced_at" field.
func LastPracticedAtLTE(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldLastPracticedAt, v))
}

// LastPracticedAtIsNil applies the IsNil predicate on the "last_practiced_at" field.
func LastPracticedAtIsNil() predicate.Skill {
	return predicate.Skill(sql.FieldIsNull(FieldLastPracticedAt))
}

// LastPracticedAtNotNil applies the NotNil predicate on the "last_practiced_at" field.
func LastPracticedAtNotNil() predicate.Skill {
	return predicate.Skill(sql.FieldNotNull(FieldLastPracticedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Skill) predicate.Skill {
	return predicate.Skill(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Skill) predicate.Skill {
	return predicate.Skill(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Skill) predicate.Skill {
	return predicate.Skill(sql.NotPredicates(p))
}
