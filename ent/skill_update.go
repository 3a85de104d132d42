// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/praxis-coach/praxis/ent/predicate"
	"github.com/praxis-coach/praxis/ent/skill"
)

// SkillUpdate is the builder for updating Skill entities.
type SkillUpdate struct {
	config
	hooks    []Hook
	mutation *SkillMutation
}

// Where appends a list predicates to the SkillUpdate builder.
func (_u *SkillUpdate) Where(ps ...predicate.Skill) *SkillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *SkillUpdate) SetTitle(v string) *SkillUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableTitle(v *string) *SkillUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SkillUpdate) SetAction(v string) *SkillUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableAction(v *string) *SkillUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetSuccessSignal sets the "success_signal" field.
func (_u *SkillUpdate) SetSuccessSignal(v string) *SkillUpdate {
	_u.mutation.SetSuccessSignal(v)
	return _u
}

// SetNillableSuccessSignal sets the "success_signal" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableSuccessSignal(v *string) *SkillUpdate {
	if v != nil {
		_u.SetSuccessSignal(*v)
	}
	return _u
}

// SetLockedVariables sets the "locked_variables" field.
func (_u *SkillUpdate) SetLockedVariables(v []string) *SkillUpdate {
	_u.mutation.SetLockedVariables(v)
	return _u
}

// AppendLockedVariables appends value to the "locked_variables" field.
func (_u *SkillUpdate) AppendLockedVariables(v []string) *SkillUpdate {
	_u.mutation.AppendLockedVariables(v)
	return _u
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (_u *SkillUpdate) SetEstimatedMinutes(v int) *SkillUpdate {
	_u.mutation.ResetEstimatedMinutes()
	_u.mutation.SetEstimatedMinutes(v)
	return _u
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableEstimatedMinutes(v *int) *SkillUpdate {
	if v != nil {
		_u.SetEstimatedMinutes(*v)
	}
	return _u
}

// AddEstimatedMinutes adds value to the "estimated_minutes" field.
func (_u *SkillUpdate) AddEstimatedMinutes(v int) *SkillUpdate {
	_u.mutation.AddEstimatedMinutes(v)
	return _u
}

// SetSkillType sets the "skill_type" field.
func (_u *SkillUpdate) SetSkillType(v string) *SkillUpdate {
	_u.mutation.SetSkillType(v)
	return _u
}

// SetNillableSkillType sets the "skill_type" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableSkillType(v *string) *SkillUpdate {
	if v != nil {
		_u.SetSkillType(*v)
	}
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *SkillUpdate) SetOrderIndex(v int) *SkillUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableOrderIndex(v *int) *SkillUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *SkillUpdate) AddOrderIndex(v int) *SkillUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetStageLevel sets the "stage_level" field.
func (_u *SkillUpdate) SetStageLevel(v string) *SkillUpdate {
	_u.mutation.SetStageLevel(v)
	return _u
}

// SetNillableStageLevel sets the "stage_level" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableStageLevel(v *string) *SkillUpdate {
	if v != nil {
		_u.SetStageLevel(*v)
	}
	return _u
}

// ClearStageLevel clears the value of the "stage_level" field.
func (_u *SkillUpdate) ClearStageLevel() *SkillUpdate {
	_u.mutation.ClearStageLevel()
	return _u
}

// SetPrerequisites sets the "prerequisites" field.
func (_u *SkillUpdate) SetPrerequisites(v []string) *SkillUpdate {
	_u.mutation.SetPrerequisites(v)
	return _u
}

// AppendPrerequisites appends value to the "prerequisites" field.
func (_u *SkillUpdate) AppendPrerequisites(v []string) *SkillUpdate {
	_u.mutation.AppendPrerequisites(v)
	return _u
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (_u *SkillUpdate) ClearPrerequisites() *SkillUpdate {
	_u.mutation.ClearPrerequisites()
	return _u
}

// SetComponents sets the "components" field.
func (_u *SkillUpdate) SetComponents(v []string) *SkillUpdate {
	_u.mutation.SetComponents(v)
	return _u
}

// AppendComponents appends value to the "components" field.
func (_u *SkillUpdate) AppendComponents(v []string) *SkillUpdate {
	_u.mutation.AppendComponents(v)
	return _u
}

// ClearComponents clears the value of the "components" field.
func (_u *SkillUpdate) ClearComponents() *SkillUpdate {
	_u.mutation.ClearComponents()
	return _u
}

// SetDesignedFailure sets the "designed_failure" field.
func (_u *SkillUpdate) SetDesignedFailure(v string) *SkillUpdate {
	_u.mutation.SetDesignedFailure(v)
	return _u
}

// SetNillableDesignedFailure sets the "designed_failure" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableDesignedFailure(v *string) *SkillUpdate {
	if v != nil {
		_u.SetDesignedFailure(*v)
	}
	return _u
}

// ClearDesignedFailure clears the value of the "designed_failure" field.
func (_u *SkillUpdate) ClearDesignedFailure() *SkillUpdate {
	_u.mutation.ClearDesignedFailure()
	return _u
}

// SetConsequence sets the "consequence" field.
func (_u *SkillUpdate) SetConsequence(v string) *SkillUpdate {
	_u.mutation.SetConsequence(v)
	return _u
}

// SetNillableConsequence sets the "consequence" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableConsequence(v *string) *SkillUpdate {
	if v != nil {
		_u.SetConsequence(*v)
	}
	return _u
}

// ClearConsequence clears the value of the "consequence" field.
func (_u *SkillUpdate) ClearConsequence() *SkillUpdate {
	_u.mutation.ClearConsequence()
	return _u
}

// SetRecovery sets the "recovery" field.
func (_u *SkillUpdate) SetRecovery(v string) *SkillUpdate {
	_u.mutation.SetRecovery(v)
	return _u
}

// SetNillableRecovery sets the "recovery" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableRecovery(v *string) *SkillUpdate {
	if v != nil {
		_u.SetRecovery(*v)
	}
	return _u
}

// ClearRecovery clears the value of the "recovery" field.
func (_u *SkillUpdate) ClearRecovery() *SkillUpdate {
	_u.mutation.ClearRecovery()
	return _u
}

// SetTransferScenario sets the "transfer_scenario" field.
func (_u *SkillUpdate) SetTransferScenario(v string) *SkillUpdate {
	_u.mutation.SetTransferScenario(v)
	return _u
}

// SetNillableTransferScenario sets the "transfer_scenario" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableTransferScenario(v *string) *SkillUpdate {
	if v != nil {
		_u.SetTransferScenario(*v)
	}
	return _u
}

// ClearTransferScenario clears the value of the "transfer_scenario" field.
func (_u *SkillUpdate) ClearTransferScenario() *SkillUpdate {
	_u.mutation.ClearTransferScenario()
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *SkillUpdate) SetMastery(v string) *SkillUpdate {
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableMastery(v *string) *SkillUpdate {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SkillUpdate) SetStatus(v string) *SkillUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableStatus(v *string) *SkillUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPassCount sets the "pass_count" field.
func (_u *SkillUpdate) SetPassCount(v int) *SkillUpdate {
	_u.mutation.ResetPassCount()
	_u.mutation.SetPassCount(v)
	return _u
}

// SetNillablePassCount sets the "pass_count" field if the given value is not nil.
func (_u *SkillUpdate) SetNillablePassCount(v *int) *SkillUpdate {
	if v != nil {
		_u.SetPassCount(*v)
	}
	return _u
}

// AddPassCount adds value to the "pass_count" field.
func (_u *SkillUpdate) AddPassCount(v int) *SkillUpdate {
	_u.mutation.AddPassCount(v)
	return _u
}

// SetFailCount sets the "fail_count" field.
func (_u *SkillUpdate) SetFailCount(v int) *SkillUpdate {
	_u.mutation.ResetFailCount()
	_u.mutation.SetFailCount(v)
	return _u
}

// SetNillableFailCount sets the "fail_count" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableFailCount(v *int) *SkillUpdate {
	if v != nil {
		_u.SetFailCount(*v)
	}
	return _u
}

// AddFailCount adds value to the "fail_count" field.
func (_u *SkillUpdate) AddFailCount(v int) *SkillUpdate {
	_u.mutation.AddFailCount(v)
	return _u
}

// SetConsecutivePasses sets the "consecutive_passes" field.
func (_u *SkillUpdate) SetConsecutivePasses(v int) *SkillUpdate {
	_u.mutation.ResetConsecutivePasses()
	_u.mutation.SetConsecutivePasses(v)
	return _u
}

// SetNillableConsecutivePasses sets the "consecutive_passes" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableConsecutivePasses(v *int) *SkillUpdate {
	if v != nil {
		_u.SetConsecutivePasses(*v)
	}
	return _u
}

// AddConsecutivePasses adds value to the "consecutive_passes" field.
func (_u *SkillUpdate) AddConsecutivePasses(v int) *SkillUpdate {
	_u.mutation.AddConsecutivePasses(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *SkillUpdate) SetNeedsReview(v bool) *SkillUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableNeedsReview(v *bool) *SkillUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *SkillUpdate) SetLastPracticedAt(v time.Time) *SkillUpdate {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableLastPracticedAt(v *time.Time) *SkillUpdate {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (_u *SkillUpdate) ClearLastPracticedAt() *SkillUpdate {
	_u.mutation.ClearLastPracticedAt()
	return _u
}

// Mutation returns the SkillMutation object of the builder.
func (_u *SkillUpdate) Mutation() *SkillMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := skill.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Skill.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := skill.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "Skill.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessSignal(); ok {
		if err := skill.SuccessSignalValidator(v); err != nil {
			return &ValidationError{Name: "success_signal", err: fmt.Errorf(`ent: validator failed for field "Skill.success_signal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstimatedMinutes(); ok {
		if err := skill.EstimatedMinutesValidator(v); err != nil {
			return &ValidationError{Name: "estimated_minutes", err: fmt.Errorf(`ent: validator failed for field "Skill.estimated_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillType(); ok {
		if err := skill.SkillTypeValidator(v); err != nil {
			return &ValidationError{Name: "skill_type", err: fmt.Errorf(`ent: validator failed for field "Skill.skill_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mastery(); ok {
		if err := skill.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "Skill.mastery": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := skill.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Skill.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skill.Table, skill.Columns, sqlgraph.NewFieldSpec(skill.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(skill.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(skill.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuccessSignal(); ok {
		_spec.SetField(skill.FieldSuccessSignal, field.TypeString, value)
	}
	if value, ok := _u.mutation.LockedVariables(); ok {
		_spec.SetField(skill.FieldLockedVariables, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLockedVariables(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skill.FieldLockedVariables, value)
		})
	}
	if value, ok := _u.mutation.EstimatedMinutes(); ok {
		_spec.SetField(skill.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedMinutes(); ok {
		_spec.AddField(skill.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillType(); ok {
		_spec.SetField(skill.FieldSkillType, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(skill.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(skill.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StageLevel(); ok {
		_spec.SetField(skill.FieldStageLevel, field.TypeString, value)
	}
	if _u.mutation.StageLevelCleared() {
		_spec.ClearField(skill.FieldStageLevel, field.TypeString)
	}
	if value, ok := _u.mutation.Prerequisites(); ok {
		_spec.SetField(skill.FieldPrerequisites, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrerequisites(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skill.FieldPrerequisites, value)
		})
	}
	if _u.mutation.PrerequisitesCleared() {
		_spec.ClearField(skill.FieldPrerequisites, field.TypeJSON)
	}
	if value, ok := _u.mutation.Components(); ok {
		_spec.SetField(skill.FieldComponents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedComponents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skill.FieldComponents, value)
		})
	}
	if _u.mutation.ComponentsCleared() {
		_spec.ClearField(skill.FieldComponents, field.TypeJSON)
	}
	if value, ok := _u.mutation.DesignedFailure(); ok {
		_spec.SetField(skill.FieldDesignedFailure, field.TypeString, value)
	}
	if _u.mutation.DesignedFailureCleared() {
		_spec.ClearField(skill.FieldDesignedFailure, field.TypeString)
	}
	if value, ok := _u.mutation.Consequence(); ok {
		_spec.SetField(skill.FieldConsequence, field.TypeString, value)
	}
	if _u.mutation.ConsequenceCleared() {
		_spec.ClearField(skill.FieldConsequence, field.TypeString)
	}
	if value, ok := _u.mutation.Recovery(); ok {
		_spec.SetField(skill.FieldRecovery, field.TypeString, value)
	}
	if _u.mutation.RecoveryCleared() {
		_spec.ClearField(skill.FieldRecovery, field.TypeString)
	}
	if value, ok := _u.mutation.TransferScenario(); ok {
		_spec.SetField(skill.FieldTransferScenario, field.TypeString, value)
	}
	if _u.mutation.TransferScenarioCleared() {
		_spec.ClearField(skill.FieldTransferScenario, field.TypeString)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(skill.FieldMastery, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(skill.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PassCount(); ok {
		_spec.SetField(skill.FieldPassCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassCount(); ok {
		_spec.AddField(skill.FieldPassCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailCount(); ok {
		_spec.SetField(skill.FieldFailCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailCount(); ok {
		_spec.AddField(skill.FieldFailCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutivePasses(); ok {
		_spec.SetField(skill.FieldConsecutivePasses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutivePasses(); ok {
		_spec.AddField(skill.FieldConsecutivePasses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(skill.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(skill.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedAtCleared() {
		_spec.ClearField(skill.FieldLastPracticedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillUpdateOne is the builder for updating a single Skill entity.
type SkillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillMutation
}

// SetTitle sets the "title" field.
func (_u *SkillUpdateOne) SetTitle(v string) *SkillUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableTitle(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SkillUpdateOne) SetAction(v string) *SkillUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableAction(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetSuccessSignal sets the "success_signal" field.
func (_u *SkillUpdateOne) SetSuccessSignal(v string) *SkillUpdateOne {
	_u.mutation.SetSuccessSignal(v)
	return _u
}

// SetNillableSuccessSignal sets the "success_signal" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableSuccessSignal(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetSuccessSignal(*v)
	}
	return _u
}

// SetLockedVariables sets the "locked_variables" field.
func (_u *SkillUpdateOne) SetLockedVariables(v []string) *SkillUpdateOne {
	_u.mutation.SetLockedVariables(v)
	return _u
}

// AppendLockedVariables appends value to the "locked_variables" field.
func (_u *SkillUpdateOne) AppendLockedVariables(v []string) *SkillUpdateOne {
	_u.mutation.AppendLockedVariables(v)
	return _u
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (_u *SkillUpdateOne) SetEstimatedMinutes(v int) *SkillUpdateOne {
	_u.mutation.ResetEstimatedMinutes()
	_u.mutation.SetEstimatedMinutes(v)
	return _u
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableEstimatedMinutes(v *int) *SkillUpdateOne {
	if v != nil {
		_u.SetEstimatedMinutes(*v)
	}
	return _u
}

// AddEstimatedMinutes adds value to the "estimated_minutes" field.
func (_u *SkillUpdateOne) AddEstimatedMinutes(v int) *SkillUpdateOne {
	_u.mutation.AddEstimatedMinutes(v)
	return _u
}

// SetSkillType sets the "skill_type" field.
func (_u *SkillUpdateOne) SetSkillType(v string) *SkillUpdateOne {
	_u.mutation.SetSkillType(v)
	return _u
}

// SetNillableSkillType sets the "skill_type" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableSkillType(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetSkillType(*v)
	}
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *SkillUpdateOne) SetOrderIndex(v int) *SkillUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableOrderIndex(v *int) *SkillUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *SkillUpdateOne) AddOrderIndex(v int) *SkillUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetStageLevel sets the "stage_level" field.
func (_u *SkillUpdateOne) SetStageLevel(v string) *SkillUpdateOne {
	_u.mutation.SetStageLevel(v)
	return _u
}

// SetNillableStageLevel sets the "stage_level" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableStageLevel(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetStageLevel(*v)
	}
	return _u
}

// ClearStageLevel clears the value of the "stage_level" field.
func (_u *SkillUpdateOne) ClearStageLevel() *SkillUpdateOne {
	_u.mutation.ClearStageLevel()
	return _u
}

// SetPrerequisites sets the "prerequisites" field.
func (_u *SkillUpdateOne) SetPrerequisites(v []string) *SkillUpdateOne {
	_u.mutation.SetPrerequisites(v)
	return _u
}

// AppendPrerequisites appends value to the "prerequisites" field.
func (_u *SkillUpdateOne) AppendPrerequisites(v []string) *SkillUpdateOne {
	_u.mutation.AppendPrerequisites(v)
	return _u
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (_u *SkillUpdateOne) ClearPrerequisites() *SkillUpdateOne {
	_u.mutation.ClearPrerequisites()
	return _u
}

// SetComponents sets the "components" field.
func (_u *SkillUpdateOne) SetComponents(v []string) *SkillUpdateOne {
	_u.mutation.SetComponents(v)
	return _u
}

// AppendComponents appends value to the "components" field.
func (_u *SkillUpdateOne) AppendComponents(v []string) *SkillUpdateOne {
	_u.mutation.AppendComponents(v)
	return _u
}

// ClearComponents clears the value of the "components" field.
func (_u *SkillUpdateOne) ClearComponents() *SkillUpdateOne {
	_u.mutation.ClearComponents()
	return _u
}

// SetDesignedFailure sets the "designed_failure" field.
func (_u *SkillUpdateOne) SetDesignedFailure(v string) *SkillUpdateOne {
	_u.mutation.SetDesignedFailure(v)
	return _u
}

// SetNillableDesignedFailure sets the "designed_failure" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableDesignedFailure(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetDesignedFailure(*v)
	}
	return _u
}

// ClearDesignedFailure clears the value of the "designed_failure" field.
func (_u *SkillUpdateOne) ClearDesignedFailure() *SkillUpdateOne {
	_u.mutation.ClearDesignedFailure()
	return _u
}

// SetConsequence sets the "consequence" field.
func (_u *SkillUpdateOne) SetConsequence(v string) *SkillUpdateOne {
	_u.mutation.SetConsequence(v)
	return _u
}

// SetNillableConsequence sets the "consequence" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableConsequence(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetConsequence(*v)
	}
	return _u
}

// ClearConsequence clears the value of the "consequence" field.
func (_u *SkillUpdateOne) ClearConsequence() *SkillUpdateOne {
	_u.mutation.ClearConsequence()
	return _u
}

// SetRecovery sets the "recovery" field.
func (_u *SkillUpdateOne) SetRecovery(v string) *SkillUpdateOne {
	_u.mutation.SetRecovery(v)
	return _u
}

// SetNillableRecovery sets the "recovery" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableRecovery(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetRecovery(*v)
	}
	return _u
}

// ClearRecovery clears the value of the "recovery" field.
func (_u *SkillUpdateOne) ClearRecovery() *SkillUpdateOne {
	_u.mutation.ClearRecovery()
	return _u
}

// SetTransferScenario sets the "transfer_scenario" field.
func (_u *SkillUpdateOne) SetTransferScenario(v string) *SkillUpdateOne {
	_u.mutation.SetTransferScenario(v)
	return _u
}

// SetNillableTransferScenario sets the "transfer_scenario" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableTransferScenario(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetTransferScenario(*v)
	}
	return _u
}

// ClearTransferScenario clears the value of the "transfer_scenario" field.
func (_u *SkillUpdateOne) ClearTransferScenario() *SkillUpdateOne {
	_u.mutation.ClearTransferScenario()
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *SkillUpdateOne) SetMastery(v string) *SkillUpdateOne {
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableMastery(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SkillUpdateOne) SetStatus(v string) *SkillUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableStatus(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPassCount sets the "pass_count" field.
func (_u *SkillUpdateOne) SetPassCount(v int) *SkillUpdateOne {
	_u.mutation.ResetPassCount()
	_u.mutation.SetPassCount(v)
	return _u
}

// SetNillablePassCount sets the "pass_count" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillablePassCount(v *int) *SkillUpdateOne {
	if v != nil {
		_u.SetPassCount(*v)
	}
	return _u
}

// AddPassCount adds value to the "pass_count" field.
func (_u *SkillUpdateOne) AddPassCount(v int) *SkillUpdateOne {
	_u.mutation.AddPassCount(v)
	return _u
}

// SetFailCount sets the "fail_count" field.
func (_u *SkillUpdateOne) SetFailCount(v int) *SkillUpdateOne {
	_u.mutation.ResetFailCount()
	_u.mutation.SetFailCount(v)
	return _u
}

// SetNillableFailCount sets the "fail_count" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableFailCount(v *int) *SkillUpdateOne {
	if v != nil {
		_u.SetFailCount(*v)
	}
	return _u
}

// AddFailCount adds value to the "fail_count" field.
func (_u *SkillUpdateOne) AddFailCount(v int) *SkillUpdateOne {
	_u.mutation.AddFailCount(v)
	return _u
}

// SetConsecutivePasses sets the "consecutive_passes" field.
func (_u *SkillUpdateOne) SetConsecutivePasses(v int) *SkillUpdateOne {
	_u.mutation.ResetConsecutivePasses()
	_u.mutation.SetConsecutivePasses(v)
	return _u
}

// SetNillableConsecutivePasses sets the "consecutive_passes" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableConsecutivePasses(v *int) *SkillUpdateOne {
	if v != nil {
		_u.SetConsecutivePasses(*v)
	}
	return _u
}

// AddConsecutivePasses adds value to the "consecutive_passes" field.
func (_u *SkillUpdateOne) AddConsecutivePasses(v int) *SkillUpdateOne {
	_u.mutation.AddConsecutivePasses(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *SkillUpdateOne) SetNeedsReview(v bool) *SkillUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableNeedsReview(v *bool) *SkillUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *SkillUpdateOne) SetLastPracticedAt(v time.Time) *SkillUpdateOne {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableLastPracticedAt(v *time.Time) *SkillUpdateOne {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (_u *SkillUpdateOne) ClearLastPracticedAt() *SkillUpdateOne {
	_u.mutation.ClearLastPracticedAt()
	return _u
}

// Mutation returns the SkillMutation object of the builder.
func (_u *SkillUpdateOne) Mutation() *SkillMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillUpdate builder.
func (_u *SkillUpdateOne) Where(ps ...predicate.Skill) *SkillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillUpdateOne) Select(field string, fields ...string) *SkillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Skill entity.
func (_u *SkillUpdateOne) Save(ctx context.Context) (*Skill, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillUpdateOne) SaveX(ctx context.Context) *Skill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := skill.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Skill.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := skill.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "Skill.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessSignal(); ok {
		if err := skill.SuccessSignalValidator(v); err != nil {
			return &ValidationError{Name: "success_signal", err: fmt.Errorf(`ent: validator failed for field "Skill.success_signal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstimatedMinutes(); ok {
		if err := skill.EstimatedMinutesValidator(v); err != nil {
			return &ValidationError{Name: "estimated_minutes", err: fmt.Errorf(`ent: validator failed for field "Skill.estimated_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillType(); ok {
		if err := skill.SkillTypeValidator(v); err != nil {
			return &ValidationError{Name: "skill_type", err: fmt.Errorf(`ent: validator failed for field "Skill.skill_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mastery(); ok {
		if err := skill.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "Skill.mastery": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := skill.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Skill.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillUpdateOne) sqlSave(ctx context.Context) (_node *Skill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skill.Table, skill.Columns, sqlgraph.NewFieldSpec(skill.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Skill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skill.FieldID)
		for _, f := range fields {
			if !skill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skill.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(skill.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(skill.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuccessSignal(); ok {
		_spec.SetField(skill.FieldSuccessSignal, field.TypeString, value)
	}
	if value, ok := _u.mutation.LockedVariables(); ok {
		_spec.SetField(skill.FieldLockedVariables, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLockedVariables(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skill.FieldLockedVariables, value)
		})
	}
	if value, ok := _u.mutation.EstimatedMinutes(); ok {
		_spec.SetField(skill.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedMinutes(); ok {
		_spec.AddField(skill.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillType(); ok {
		_spec.SetField(skill.FieldSkillType, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(skill.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(skill.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StageLevel(); ok {
		_spec.SetField(skill.FieldStageLevel, field.TypeString, value)
	}
	if _u.mutation.StageLevelCleared() {
		_spec.ClearField(skill.FieldStageLevel, field.TypeString)
	}
	if value, ok := _u.mutation.Prerequisites(); ok {
		_spec.SetField(skill.FieldPrerequisites, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrerequisites(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skill.FieldPrerequisites, value)
		})
	}
	if _u.mutation.PrerequisitesCleared() {
		_spec.ClearField(skill.FieldPrerequisites, field.TypeJSON)
	}
	if value, ok := _u.mutation.Components(); ok {
		_spec.SetField(skill.FieldComponents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedComponents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skill.FieldComponents, value)
		})
	}
	if _u.mutation.ComponentsCleared() {
		_spec.ClearField(skill.FieldComponents, field.TypeJSON)
	}
	if value, ok := _u.mutation.DesignedFailure(); ok {
		_spec.SetField(skill.FieldDesignedFailure, field.TypeString, value)
	}
	if _u.mutation.DesignedFailureCleared() {
		_spec.ClearField(skill.FieldDesignedFailure, field.TypeString)
	}
	if value, ok := _u.mutation.Consequence(); ok {
		_spec.SetField(skill.FieldConsequence, field.TypeString, value)
	}
	if _u.mutation.ConsequenceCleared() {
		_spec.ClearField(skill.FieldConsequence, field.TypeString)
	}
	if value, ok := _u.mutation.Recovery(); ok {
		_spec.SetField(skill.FieldRecovery, field.TypeString, value)
	}
	if _u.mutation.RecoveryCleared() {
		_spec.ClearField(skill.FieldRecovery, field.TypeString)
	}
	if value, ok := _u.mutation.TransferScenario(); ok {
		_spec.SetField(skill.FieldTransferScenario, field.TypeString, value)
	}
	if _u.mutation.TransferScenarioCleared() {
		_spec.ClearField(skill.FieldTransferScenario, field.TypeString)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(skill.FieldMastery, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(skill.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PassCount(); ok {
		_spec.SetField(skill.FieldPassCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassCount(); ok {
		_spec.AddField(skill.FieldPassCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailCount(); ok {
		_spec.SetField(skill.FieldFailCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailCount(); ok {
		_spec.AddField(skill.FieldFailCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutivePasses(); ok {
		_spec.SetField(skill.FieldConsecutivePasses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutivePasses(); ok {
		_spec.AddField(skill.FieldConsecutivePasses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(skill.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(skill.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedAtCleared() {
		_spec.ClearField(skill.FieldLastPracticedAt, field.TypeTime)
	}
	_node = &Skill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
