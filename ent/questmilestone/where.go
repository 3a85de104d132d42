// Code generated by ent, DO NOT EDIT.

package questmilestone

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/praxis-coach/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldContainsFold(FieldID, id))
}

// QuestID applies equality check predicate on the "quest_id" field. It's identical to QuestIDEQ.
func QuestID(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldEQ(FieldQuestID, v))
}

// GoalID applies equality check predicate on the "goal_id" field. It's identical to GoalIDEQ.
func GoalID(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldEQ(FieldGoalID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldEQ(FieldTitle, v))
}

// RequiredMasteryPercent applies equality check predicate on the "required_mastery_percent" field. It's identical to RequiredMasteryPercentEQ.
func RequiredMasteryPercent(v int) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldEQ(FieldRequiredMasteryPercent, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldEQ(FieldStatus, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldEQ(FieldCompletedAt, v))
}

// QuestIDEQ applies the EQ predicate on the "quest_id" field.
func QuestIDEQ(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldEQ(FieldQuestID, v))
}

// QuestIDNEQ applies the NEQ predicate on the "quest_id" field.
func QuestIDNEQ(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldNEQ(FieldQuestID, v))
}

// QuestIDIn applies the In predicate on the "quest_id" field.
func QuestIDIn(vs ...string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldIn(FieldQuestID, vs...))
}

// QuestIDNotIn applies the NotIn predicate on the "quest_id" field.
func QuestIDNotIn(vs ...string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldNotIn(FieldQuestID, vs...))
}

// QuestIDGT applies the GT predicate on the "quest_id" field.
func QuestIDGT(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldGT(FieldQuestID, v))
}

// QuestIDGTE applies the GTE predicate on the "quest_id" field.
func QuestIDGTE(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldGTE(FieldQuestID, v))
}

// QuestIDLT applies the LT predicate on the "quest_id" field.
func QuestIDLT(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldLT(FieldQuestID, v))
}

// QuestIDLTE applies the LTE predicate on the "quest_id" field.
func QuestIDLTE(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldLTE(FieldQuestID, v))
}

// QuestIDContains applies the Contains predicate on the "quest_id" field.
func QuestIDContains(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldContains(FieldQuestID, v))
}

// QuestIDHasPrefix applies the HasPrefix predicate on the "quest_id" field.
func QuestIDHasPrefix(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldHasPrefix(FieldQuestID, v))
}

// QuestIDHasSuffix applies the HasSuffix predicate on the "quest_id" field.
func QuestIDHasSuffix(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldHasSuffix(FieldQuestID, v))
}

// QuestIDEqualFold applies the EqualFold predicate on the "quest_id" field.
func QuestIDEqualFold(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldEqualFold(FieldQuestID, v))
}

// QuestIDContainsFold applies the ContainsFold predicate on the "quest_id" field.
func QuestIDContainsFold(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldContainsFold(FieldQuestID, v))
}

// GoalIDEQ applies the EQ predicate on the "goal_id" field.
func GoalIDEQ(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldEQ(FieldGoalID, v))
}

// GoalIDNEQ applies the NEQ predicate on the "goal_id" field.
func GoalIDNEQ(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldNEQ(FieldGoalID, v))
}

// GoalIDIn applies the In predicate on the "goal_id" field.
func GoalIDIn(vs ...string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldIn(FieldGoalID, vs...))
}

// GoalIDNotIn applies the NotIn predicate on the "goal_id" field.
func GoalIDNotIn(vs ...string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldNotIn(FieldGoalID, vs...))
}

// GoalIDGT applies the GT predicate on the "goal_id" field.
func GoalIDGT(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldGT(FieldGoalID, v))
}

// GoalIDGTE applies the GTE predicate on the "goal_id" field.
func GoalIDGTE(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldGTE(FieldGoalID, v))
}

// GoalIDLT applies the LT predicate on the "goal_id" field.
func GoalIDLT(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldLT(FieldGoalID, v))
}

// GoalIDLTE applies the LTE predicate on the "goal_id" field.
func GoalIDLTE(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldLTE(FieldGoalID, v))
}

// GoalIDContains applies the Contains predicate on the "goal_id" field.
func GoalIDContains(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldContains(FieldGoalID, v))
}

// GoalIDHasPrefix applies the HasPrefix predicate on the "goal_id" field.
func GoalIDHasPrefix(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldHasPrefix(FieldGoalID, v))
}

// GoalIDHasSuffix applies the HasSuffix predicate on the "goal_id" field.
func GoalIDHasSuffix(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldHasSuffix(FieldGoalID, v))
}

// GoalIDEqualFold applies the EqualFold predicate on the "goal_id" field.
func GoalIDEqualFold(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldEqualFold(FieldGoalID, v))
}

// GoalIDContainsFold applies the ContainsFold predicate on the "goal_id" field.
func GoalIDContainsFold(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldContainsFold(FieldGoalID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldContainsFold(FieldTitle, v))
}

// RequiredMasteryPercentEQ applies the EQ predicate on the "required_mastery_percent" field.
func RequiredMasteryPercentEQ(v int) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldEQ(FieldRequiredMasteryPercent, v))
}

// RequiredMasteryPercentNEQ applies the NEQ predicate on the "required_mastery_percent" field.
func RequiredMasteryPercentNEQ(v int) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldNEQ(FieldRequiredMasteryPercent, v))
}

// RequiredMasteryPercentIn applies the In predicate on the "required_mastery_percent" field.
func RequiredMasteryPercentIn(vs ...int) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldIn(FieldRequiredMasteryPercent, vs...))
}

// RequiredMasteryPercentNotIn applies the NotIn predicate on the "required_mastery_percent" field.
func RequiredMasteryPercentNotIn(vs ...int) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldNotIn(FieldRequiredMasteryPercent, vs...))
}

// RequiredMasteryPercentGT applies the GT predicate on the "required_mastery_percent" field.
func RequiredMasteryPercentGT(v int) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldGT(FieldRequiredMasteryPercent, v))
}

// RequiredMasteryPercentGTE applies the GTE predicate on the "required_mastery_percent" field.
func RequiredMasteryPercentGTE(v int) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldGTE(FieldRequiredMasteryPercent, v))
}

// RequiredMasteryPercentLT applies the LT predicate on the "required_mastery_percent" field.
func RequiredMasteryPercentLT(v int) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldLT(FieldRequiredMasteryPercent, v))
}

// RequiredMasteryPercentLTE applies the LTE predicate on the "required_mastery_percent" field.
func RequiredMasteryPercentLTE(v int) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldLTE(FieldRequiredMasteryPercent, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldContainsFold(FieldStatus, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestMilestone) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestMilestone) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestMilestone) predicate.QuestMilestone {
	return predicate.QuestMilestone(sql.NotPredicates(p))
}
