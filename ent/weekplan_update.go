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
	"github.com/praxis-coach/praxis/ent/predicate"
	"github.com/praxis-coach/praxis/ent/weekplan"
)

// WeekPlanUpdate is the builder for updating WeekPlan entities.
type WeekPlanUpdate struct {
	config
	hooks    []Hook
	mutation *WeekPlanMutation
}

// Where appends a list predicates to the WeekPlanUpdate builder.
func (_u *WeekPlanUpdate) Where(ps ...predicate.WeekPlan) *WeekPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDrillsCompleted sets the "drills_completed" field.
func (_u *WeekPlanUpdate) SetDrillsCompleted(v int) *WeekPlanUpdate {
	_u.mutation.ResetDrillsCompleted()
	_u.mutation.SetDrillsCompleted(v)
	return _u
}

// SetNillableDrillsCompleted sets the "drills_completed" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableDrillsCompleted(v *int) *WeekPlanUpdate {
	if v != nil {
		_u.SetDrillsCompleted(*v)
	}
	return _u
}

// AddDrillsCompleted adds value to the "drills_completed" field.
func (_u *WeekPlanUpdate) AddDrillsCompleted(v int) *WeekPlanUpdate {
	_u.mutation.AddDrillsCompleted(v)
	return _u
}

// SetDrillsPassed sets the "drills_passed" field.
func (_u *WeekPlanUpdate) SetDrillsPassed(v int) *WeekPlanUpdate {
	_u.mutation.ResetDrillsPassed()
	_u.mutation.SetDrillsPassed(v)
	return _u
}

// SetNillableDrillsPassed sets the "drills_passed" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableDrillsPassed(v *int) *WeekPlanUpdate {
	if v != nil {
		_u.SetDrillsPassed(*v)
	}
	return _u
}

// AddDrillsPassed adds value to the "drills_passed" field.
func (_u *WeekPlanUpdate) AddDrillsPassed(v int) *WeekPlanUpdate {
	_u.mutation.AddDrillsPassed(v)
	return _u
}

// SetDrillsFailed sets the "drills_failed" field.
func (_u *WeekPlanUpdate) SetDrillsFailed(v int) *WeekPlanUpdate {
	_u.mutation.ResetDrillsFailed()
	_u.mutation.SetDrillsFailed(v)
	return _u
}

// SetNillableDrillsFailed sets the "drills_failed" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableDrillsFailed(v *int) *WeekPlanUpdate {
	if v != nil {
		_u.SetDrillsFailed(*v)
	}
	return _u
}

// AddDrillsFailed adds value to the "drills_failed" field.
func (_u *WeekPlanUpdate) AddDrillsFailed(v int) *WeekPlanUpdate {
	_u.mutation.AddDrillsFailed(v)
	return _u
}

// SetDrillsSkipped sets the "drills_skipped" field.
func (_u *WeekPlanUpdate) SetDrillsSkipped(v int) *WeekPlanUpdate {
	_u.mutation.ResetDrillsSkipped()
	_u.mutation.SetDrillsSkipped(v)
	return _u
}

// SetNillableDrillsSkipped sets the "drills_skipped" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableDrillsSkipped(v *int) *WeekPlanUpdate {
	if v != nil {
		_u.SetDrillsSkipped(*v)
	}
	return _u
}

// AddDrillsSkipped adds value to the "drills_skipped" field.
func (_u *WeekPlanUpdate) AddDrillsSkipped(v int) *WeekPlanUpdate {
	_u.mutation.AddDrillsSkipped(v)
	return _u
}

// SetSkillsMastered sets the "skills_mastered" field.
func (_u *WeekPlanUpdate) SetSkillsMastered(v int) *WeekPlanUpdate {
	_u.mutation.ResetSkillsMastered()
	_u.mutation.SetSkillsMastered(v)
	return _u
}

// SetNillableSkillsMastered sets the "skills_mastered" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableSkillsMastered(v *int) *WeekPlanUpdate {
	if v != nil {
		_u.SetSkillsMastered(*v)
	}
	return _u
}

// AddSkillsMastered adds value to the "skills_mastered" field.
func (_u *WeekPlanUpdate) AddSkillsMastered(v int) *WeekPlanUpdate {
	_u.mutation.AddSkillsMastered(v)
	return _u
}

// SetCarryForward sets the "carry_forward" field.
func (_u *WeekPlanUpdate) SetCarryForward(v []string) *WeekPlanUpdate {
	_u.mutation.SetCarryForward(v)
	return _u
}

// AppendCarryForward appends value to the "carry_forward" field.
func (_u *WeekPlanUpdate) AppendCarryForward(v []string) *WeekPlanUpdate {
	_u.mutation.AppendCarryForward(v)
	return _u
}

// ClearCarryForward clears the value of the "carry_forward" field.
func (_u *WeekPlanUpdate) ClearCarryForward() *WeekPlanUpdate {
	_u.mutation.ClearCarryForward()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WeekPlanUpdate) SetStatus(v string) *WeekPlanUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableStatus(v *string) *WeekPlanUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the WeekPlanMutation object of the builder.
func (_u *WeekPlanUpdate) Mutation() *WeekPlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WeekPlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeekPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WeekPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeekPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WeekPlanUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := weekplan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WeekPlan.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WeekPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(weekplan.Table, weekplan.Columns, sqlgraph.NewFieldSpec(weekplan.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DrillsCompleted(); ok {
		_spec.SetField(weekplan.FieldDrillsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrillsCompleted(); ok {
		_spec.AddField(weekplan.FieldDrillsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DrillsPassed(); ok {
		_spec.SetField(weekplan.FieldDrillsPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrillsPassed(); ok {
		_spec.AddField(weekplan.FieldDrillsPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DrillsFailed(); ok {
		_spec.SetField(weekplan.FieldDrillsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrillsFailed(); ok {
		_spec.AddField(weekplan.FieldDrillsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DrillsSkipped(); ok {
		_spec.SetField(weekplan.FieldDrillsSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrillsSkipped(); ok {
		_spec.AddField(weekplan.FieldDrillsSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillsMastered(); ok {
		_spec.SetField(weekplan.FieldSkillsMastered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkillsMastered(); ok {
		_spec.AddField(weekplan.FieldSkillsMastered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CarryForward(); ok {
		_spec.SetField(weekplan.FieldCarryForward, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCarryForward(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, weekplan.FieldCarryForward, value)
		})
	}
	if _u.mutation.CarryForwardCleared() {
		_spec.ClearField(weekplan.FieldCarryForward, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(weekplan.FieldStatus, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weekplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WeekPlanUpdateOne is the builder for updating a single WeekPlan entity.
type WeekPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WeekPlanMutation
}

// SetDrillsCompleted sets the "drills_completed" field.
func (_u *WeekPlanUpdateOne) SetDrillsCompleted(v int) *WeekPlanUpdateOne {
	_u.mutation.ResetDrillsCompleted()
	_u.mutation.SetDrillsCompleted(v)
	return _u
}

// SetNillableDrillsCompleted sets the "drills_completed" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableDrillsCompleted(v *int) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetDrillsCompleted(*v)
	}
	return _u
}

// AddDrillsCompleted adds value to the "drills_completed" field.
func (_u *WeekPlanUpdateOne) AddDrillsCompleted(v int) *WeekPlanUpdateOne {
	_u.mutation.AddDrillsCompleted(v)
	return _u
}

// SetDrillsPassed sets the "drills_passed" field.
func (_u *WeekPlanUpdateOne) SetDrillsPassed(v int) *WeekPlanUpdateOne {
	_u.mutation.ResetDrillsPassed()
	_u.mutation.SetDrillsPassed(v)
	return _u
}

// SetNillableDrillsPassed sets the "drills_passed" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableDrillsPassed(v *int) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetDrillsPassed(*v)
	}
	return _u
}

// AddDrillsPassed adds value to the "drills_passed" field.
func (_u *WeekPlanUpdateOne) AddDrillsPassed(v int) *WeekPlanUpdateOne {
	_u.mutation.AddDrillsPassed(v)
	return _u
}

// SetDrillsFailed sets the "drills_failed" field.
func (_u *WeekPlanUpdateOne) SetDrillsFailed(v int) *WeekPlanUpdateOne {
	_u.mutation.ResetDrillsFailed()
	_u.mutation.SetDrillsFailed(v)
	return _u
}

// SetNillableDrillsFailed sets the "drills_failed" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableDrillsFailed(v *int) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetDrillsFailed(*v)
	}
	return _u
}

// AddDrillsFailed adds value to the "drills_failed" field.
func (_u *WeekPlanUpdateOne) AddDrillsFailed(v int) *WeekPlanUpdateOne {
	_u.mutation.AddDrillsFailed(v)
	return _u
}

// SetDrillsSkipped sets the "drills_skipped" field.
func (_u *WeekPlanUpdateOne) SetDrillsSkipped(v int) *WeekPlanUpdateOne {
	_u.mutation.ResetDrillsSkipped()
	_u.mutation.SetDrillsSkipped(v)
	return _u
}

// SetNillableDrillsSkipped sets the "drills_skipped" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableDrillsSkipped(v *int) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetDrillsSkipped(*v)
	}
	return _u
}

// AddDrillsSkipped adds value to the "drills_skipped" field.
func (_u *WeekPlanUpdateOne) AddDrillsSkipped(v int) *WeekPlanUpdateOne {
	_u.mutation.AddDrillsSkipped(v)
	return _u
}

// SetSkillsMastered sets the "skills_mastered" field.
func (_u *WeekPlanUpdateOne) SetSkillsMastered(v int) *WeekPlanUpdateOne {
	_u.mutation.ResetSkillsMastered()
	_u.mutation.SetSkillsMastered(v)
	return _u
}

// SetNillableSkillsMastered sets the "skills_mastered" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableSkillsMastered(v *int) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetSkillsMastered(*v)
	}
	return _u
}

// AddSkillsMastered adds value to the "skills_mastered" field.
func (_u *WeekPlanUpdateOne) AddSkillsMastered(v int) *WeekPlanUpdateOne {
	_u.mutation.AddSkillsMastered(v)
	return _u
}

// SetCarryForward sets the "carry_forward" field.
func (_u *WeekPlanUpdateOne) SetCarryForward(v []string) *WeekPlanUpdateOne {
	_u.mutation.SetCarryForward(v)
	return _u
}

// AppendCarryForward appends value to the "carry_forward" field.
func (_u *WeekPlanUpdateOne) AppendCarryForward(v []string) *WeekPlanUpdateOne {
	_u.mutation.AppendCarryForward(v)
	return _u
}

// ClearCarryForward clears the value of the "carry_forward" field.
func (_u *WeekPlanUpdateOne) ClearCarryForward() *WeekPlanUpdateOne {
	_u.mutation.ClearCarryForward()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WeekPlanUpdateOne) SetStatus(v string) *WeekPlanUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableStatus(v *string) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the WeekPlanMutation object of the builder.
func (_u *WeekPlanUpdateOne) Mutation() *WeekPlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the WeekPlanUpdate builder.
func (_u *WeekPlanUpdateOne) Where(ps ...predicate.WeekPlan) *WeekPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WeekPlanUpdateOne) Select(field string, fields ...string) *WeekPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WeekPlan entity.
func (_u *WeekPlanUpdateOne) Save(ctx context.Context) (*WeekPlan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeekPlanUpdateOne) SaveX(ctx context.Context) *WeekPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WeekPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeekPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WeekPlanUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := weekplan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WeekPlan.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WeekPlanUpdateOne) sqlSave(ctx context.Context) (_node *WeekPlan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(weekplan.Table, weekplan.Columns, sqlgraph.NewFieldSpec(weekplan.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WeekPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, weekplan.FieldID)
		for _, f := range fields {
			if !weekplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != weekplan.FieldID {
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
	if value, ok := _u.mutation.DrillsCompleted(); ok {
		_spec.SetField(weekplan.FieldDrillsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrillsCompleted(); ok {
		_spec.AddField(weekplan.FieldDrillsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DrillsPassed(); ok {
		_spec.SetField(weekplan.FieldDrillsPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrillsPassed(); ok {
		_spec.AddField(weekplan.FieldDrillsPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DrillsFailed(); ok {
		_spec.SetField(weekplan.FieldDrillsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrillsFailed(); ok {
		_spec.AddField(weekplan.FieldDrillsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DrillsSkipped(); ok {
		_spec.SetField(weekplan.FieldDrillsSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrillsSkipped(); ok {
		_spec.AddField(weekplan.FieldDrillsSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillsMastered(); ok {
		_spec.SetField(weekplan.FieldSkillsMastered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkillsMastered(); ok {
		_spec.AddField(weekplan.FieldSkillsMastered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CarryForward(); ok {
		_spec.SetField(weekplan.FieldCarryForward, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCarryForward(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, weekplan.FieldCarryForward, value)
		})
	}
	if _u.mutation.CarryForwardCleared() {
		_spec.ClearField(weekplan.FieldCarryForward, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(weekplan.FieldStatus, field.TypeString, value)
	}
	_node = &WeekPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weekplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
