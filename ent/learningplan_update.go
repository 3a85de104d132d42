// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/praxis-coach/praxis/ent/learningplan"
	"github.com/praxis-coach/praxis/ent/predicate"
	"github.com/praxis-coach/praxis/ent/schema"
)

// LearningPlanUpdate is the builder for updating LearningPlan entities.
type LearningPlanUpdate struct {
	config
	hooks    []Hook
	mutation *LearningPlanMutation
}

// Where appends a list predicates to the LearningPlanUpdate builder.
func (_u *LearningPlanUpdate) Where(ps ...predicate.LearningPlan) *LearningPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *LearningPlanUpdate) SetTitle(v string) *LearningPlanUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableTitle(v *string) *LearningPlanUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *LearningPlanUpdate) SetDuration(v string) *LearningPlanUpdate {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableDuration(v *string) *LearningPlanUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// SetDailyMinutesBudget sets the "daily_minutes_budget" field.
func (_u *LearningPlanUpdate) SetDailyMinutesBudget(v int) *LearningPlanUpdate {
	_u.mutation.ResetDailyMinutesBudget()
	_u.mutation.SetDailyMinutesBudget(v)
	return _u
}

// SetNillableDailyMinutesBudget sets the "daily_minutes_budget" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableDailyMinutesBudget(v *int) *LearningPlanUpdate {
	if v != nil {
		_u.SetDailyMinutesBudget(*v)
	}
	return _u
}

// AddDailyMinutesBudget adds value to the "daily_minutes_budget" field.
func (_u *LearningPlanUpdate) AddDailyMinutesBudget(v int) *LearningPlanUpdate {
	_u.mutation.AddDailyMinutesBudget(v)
	return _u
}

// SetQuests sets the "quests" field.
func (_u *LearningPlanUpdate) SetQuests(v []schema.PlanQuest) *LearningPlanUpdate {
	_u.mutation.SetQuests(v)
	return _u
}

// AppendQuests appends value to the "quests" field.
func (_u *LearningPlanUpdate) AppendQuests(v []schema.PlanQuest) *LearningPlanUpdate {
	_u.mutation.AppendQuests(v)
	return _u
}

// SetTotalSkills sets the "total_skills" field.
func (_u *LearningPlanUpdate) SetTotalSkills(v int) *LearningPlanUpdate {
	_u.mutation.ResetTotalSkills()
	_u.mutation.SetTotalSkills(v)
	return _u
}

// SetNillableTotalSkills sets the "total_skills" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableTotalSkills(v *int) *LearningPlanUpdate {
	if v != nil {
		_u.SetTotalSkills(*v)
	}
	return _u
}

// AddTotalSkills adds value to the "total_skills" field.
func (_u *LearningPlanUpdate) AddTotalSkills(v int) *LearningPlanUpdate {
	_u.mutation.AddTotalSkills(v)
	return _u
}

// SetTotalMinutes sets the "total_minutes" field.
func (_u *LearningPlanUpdate) SetTotalMinutes(v int) *LearningPlanUpdate {
	_u.mutation.ResetTotalMinutes()
	_u.mutation.SetTotalMinutes(v)
	return _u
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableTotalMinutes(v *int) *LearningPlanUpdate {
	if v != nil {
		_u.SetTotalMinutes(*v)
	}
	return _u
}

// AddTotalMinutes adds value to the "total_minutes" field.
func (_u *LearningPlanUpdate) AddTotalMinutes(v int) *LearningPlanUpdate {
	_u.mutation.AddTotalMinutes(v)
	return _u
}

// SetEstimatedDays sets the "estimated_days" field.
func (_u *LearningPlanUpdate) SetEstimatedDays(v int) *LearningPlanUpdate {
	_u.mutation.ResetEstimatedDays()
	_u.mutation.SetEstimatedDays(v)
	return _u
}

// SetNillableEstimatedDays sets the "estimated_days" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableEstimatedDays(v *int) *LearningPlanUpdate {
	if v != nil {
		_u.SetEstimatedDays(*v)
	}
	return _u
}

// AddEstimatedDays adds value to the "estimated_days" field.
func (_u *LearningPlanUpdate) AddEstimatedDays(v int) *LearningPlanUpdate {
	_u.mutation.AddEstimatedDays(v)
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *LearningPlanUpdate) SetWarnings(v []string) *LearningPlanUpdate {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *LearningPlanUpdate) AppendWarnings(v []string) *LearningPlanUpdate {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *LearningPlanUpdate) ClearWarnings() *LearningPlanUpdate {
	_u.mutation.ClearWarnings()
	return _u
}

// Mutation returns the LearningPlanMutation object of the builder.
func (_u *LearningPlanUpdate) Mutation() *LearningPlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningPlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPlanUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := learningplan.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := learningplan.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.duration": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningplan.Table, learningplan.Columns, sqlgraph.NewFieldSpec(learningplan.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(learningplan.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(learningplan.FieldDuration, field.TypeString, value)
	}
	if value, ok := _u.mutation.DailyMinutesBudget(); ok {
		_spec.SetField(learningplan.FieldDailyMinutesBudget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyMinutesBudget(); ok {
		_spec.AddField(learningplan.FieldDailyMinutesBudget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Quests(); ok {
		_spec.SetField(learningplan.FieldQuests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningplan.FieldQuests, value)
		})
	}
	if value, ok := _u.mutation.TotalSkills(); ok {
		_spec.SetField(learningplan.FieldTotalSkills, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSkills(); ok {
		_spec.AddField(learningplan.FieldTotalSkills, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMinutes(); ok {
		_spec.SetField(learningplan.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMinutes(); ok {
		_spec.AddField(learningplan.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedDays(); ok {
		_spec.SetField(learningplan.FieldEstimatedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedDays(); ok {
		_spec.AddField(learningplan.FieldEstimatedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(learningplan.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningplan.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(learningplan.FieldWarnings, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningPlanUpdateOne is the builder for updating a single LearningPlan entity.
type LearningPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningPlanMutation
}

// SetTitle sets the "title" field.
func (_u *LearningPlanUpdateOne) SetTitle(v string) *LearningPlanUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableTitle(v *string) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *LearningPlanUpdateOne) SetDuration(v string) *LearningPlanUpdateOne {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableDuration(v *string) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// SetDailyMinutesBudget sets the "daily_minutes_budget" field.
func (_u *LearningPlanUpdateOne) SetDailyMinutesBudget(v int) *LearningPlanUpdateOne {
	_u.mutation.ResetDailyMinutesBudget()
	_u.mutation.SetDailyMinutesBudget(v)
	return _u
}

// SetNillableDailyMinutesBudget sets the "daily_minutes_budget" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableDailyMinutesBudget(v *int) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetDailyMinutesBudget(*v)
	}
	return _u
}

// AddDailyMinutesBudget adds value to the "daily_minutes_budget" field.
func (_u *LearningPlanUpdateOne) AddDailyMinutesBudget(v int) *LearningPlanUpdateOne {
	_u.mutation.AddDailyMinutesBudget(v)
	return _u
}

// SetQuests sets the "quests" field.
func (_u *LearningPlanUpdateOne) SetQuests(v []schema.PlanQuest) *LearningPlanUpdateOne {
	_u.mutation.SetQuests(v)
	return _u
}

// AppendQuests appends value to the "quests" field.
func (_u *LearningPlanUpdateOne) AppendQuests(v []schema.PlanQuest) *LearningPlanUpdateOne {
	_u.mutation.AppendQuests(v)
	return _u
}

// SetTotalSkills sets the "total_skills" field.
func (_u *LearningPlanUpdateOne) SetTotalSkills(v int) *LearningPlanUpdateOne {
	_u.mutation.ResetTotalSkills()
	_u.mutation.SetTotalSkills(v)
	return _u
}

// SetNillableTotalSkills sets the "total_skills" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableTotalSkills(v *int) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetTotalSkills(*v)
	}
	return _u
}

// AddTotalSkills adds value to the "total_skills" field.
func (_u *LearningPlanUpdateOne) AddTotalSkills(v int) *LearningPlanUpdateOne {
	_u.mutation.AddTotalSkills(v)
	return _u
}

// SetTotalMinutes sets the "total_minutes" field.
func (_u *LearningPlanUpdateOne) SetTotalMinutes(v int) *LearningPlanUpdateOne {
	_u.mutation.ResetTotalMinutes()
	_u.mutation.SetTotalMinutes(v)
	return _u
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableTotalMinutes(v *int) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetTotalMinutes(*v)
	}
	return _u
}

// AddTotalMinutes adds value to the "total_minutes" field.
func (_u *LearningPlanUpdateOne) AddTotalMinutes(v int) *LearningPlanUpdateOne {
	_u.mutation.AddTotalMinutes(v)
	return _u
}

// SetEstimatedDays sets the "estimated_days" field.
func (_u *LearningPlanUpdateOne) SetEstimatedDays(v int) *LearningPlanUpdateOne {
	_u.mutation.ResetEstimatedDays()
	_u.mutation.SetEstimatedDays(v)
	return _u
}

// SetNillableEstimatedDays sets the "estimated_days" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableEstimatedDays(v *int) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetEstimatedDays(*v)
	}
	return _u
}

// AddEstimatedDays adds value to the "estimated_days" field.
func (_u *LearningPlanUpdateOne) AddEstimatedDays(v int) *LearningPlanUpdateOne {
	_u.mutation.AddEstimatedDays(v)
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *LearningPlanUpdateOne) SetWarnings(v []string) *LearningPlanUpdateOne {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *LearningPlanUpdateOne) AppendWarnings(v []string) *LearningPlanUpdateOne {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *LearningPlanUpdateOne) ClearWarnings() *LearningPlanUpdateOne {
	_u.mutation.ClearWarnings()
	return _u
}

// Mutation returns the LearningPlanMutation object of the builder.
func (_u *LearningPlanUpdateOne) Mutation() *LearningPlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningPlanUpdate builder.
func (_u *LearningPlanUpdateOne) Where(ps ...predicate.LearningPlan) *LearningPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningPlanUpdateOne) Select(field string, fields ...string) *LearningPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningPlan entity.
func (_u *LearningPlanUpdateOne) Save(ctx context.Context) (*LearningPlan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPlanUpdateOne) SaveX(ctx context.Context) *LearningPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPlanUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := learningplan.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := learningplan.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.duration": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPlanUpdateOne) sqlSave(ctx context.Context) (_node *LearningPlan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningplan.Table, learningplan.Columns, sqlgraph.NewFieldSpec(learningplan.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningplan.FieldID)
		for _, f := range fields {
			if !learningplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningplan.FieldID {
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
		_spec.SetField(learningplan.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(learningplan.FieldDuration, field.TypeString, value)
	}
	if value, ok := _u.mutation.DailyMinutesBudget(); ok {
		_spec.SetField(learningplan.FieldDailyMinutesBudget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyMinutesBudget(); ok {
		_spec.AddField(learningplan.FieldDailyMinutesBudget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Quests(); ok {
		_spec.SetField(learningplan.FieldQuests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningplan.FieldQuests, value)
		})
	}
	if value, ok := _u.mutation.TotalSkills(); ok {
		_spec.SetField(learningplan.FieldTotalSkills, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSkills(); ok {
		_spec.AddField(learningplan.FieldTotalSkills, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMinutes(); ok {
		_spec.SetField(learningplan.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMinutes(); ok {
		_spec.AddField(learningplan.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedDays(); ok {
		_spec.SetField(learningplan.FieldEstimatedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedDays(); ok {
		_spec.AddField(learningplan.FieldEstimatedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(learningplan.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningplan.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(learningplan.FieldWarnings, field.TypeJSON)
	}
	_node = &LearningPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
