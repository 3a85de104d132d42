// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxis-coach/praxis/ent/masteryevent"
	"github.com/praxis-coach/praxis/ent/predicate"
)

// MasteryEventUpdate is the builder for updating MasteryEvent entities.
type MasteryEventUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryEventMutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdate) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *MasteryEventUpdate) SetSkillID(v string) *MasteryEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableSkillID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *MasteryEventUpdate) SetGoalID(v string) *MasteryEventUpdate {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableGoalID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// SetFromState sets the "from_state" field.
func (_u *MasteryEventUpdate) SetFromState(v string) *MasteryEventUpdate {
	_u.mutation.SetFromState(v)
	return _u
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableFromState(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetFromState(*v)
	}
	return _u
}

// SetToState sets the "to_state" field.
func (_u *MasteryEventUpdate) SetToState(v string) *MasteryEventUpdate {
	_u.mutation.SetToState(v)
	return _u
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableToState(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetToState(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *MasteryEventUpdate) SetTrigger(v string) *MasteryEventUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableTrigger(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetDrillID sets the "drill_id" field.
func (_u *MasteryEventUpdate) SetDrillID(v string) *MasteryEventUpdate {
	_u.mutation.SetDrillID(v)
	return _u
}

// SetNillableDrillID sets the "drill_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableDrillID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetDrillID(*v)
	}
	return _u
}

// ClearDrillID clears the value of the "drill_id" field.
func (_u *MasteryEventUpdate) ClearDrillID() *MasteryEventUpdate {
	_u.mutation.ClearDrillID()
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdate) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdate) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := masteryevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GoalID(); ok {
		if err := masteryevent.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.goal_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromState(); ok {
		if err := masteryevent.FromStateValidator(v); err != nil {
			return &ValidationError{Name: "from_state", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.from_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToState(); ok {
		if err := masteryevent.ToStateValidator(v); err != nil {
			return &ValidationError{Name: "to_state", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.to_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := masteryevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(masteryevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(masteryevent.FieldGoalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromState(); ok {
		_spec.SetField(masteryevent.FieldFromState, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToState(); ok {
		_spec.SetField(masteryevent.FieldToState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(masteryevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.DrillID(); ok {
		_spec.SetField(masteryevent.FieldDrillID, field.TypeString, value)
	}
	if _u.mutation.DrillIDCleared() {
		_spec.ClearField(masteryevent.FieldDrillID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryEventUpdateOne is the builder for updating a single MasteryEvent entity.
type MasteryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryEventMutation
}

// SetSkillID sets the "skill_id" field.
func (_u *MasteryEventUpdateOne) SetSkillID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableSkillID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *MasteryEventUpdateOne) SetGoalID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableGoalID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// SetFromState sets the "from_state" field.
func (_u *MasteryEventUpdateOne) SetFromState(v string) *MasteryEventUpdateOne {
	_u.mutation.SetFromState(v)
	return _u
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableFromState(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetFromState(*v)
	}
	return _u
}

// SetToState sets the "to_state" field.
func (_u *MasteryEventUpdateOne) SetToState(v string) *MasteryEventUpdateOne {
	_u.mutation.SetToState(v)
	return _u
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableToState(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetToState(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *MasteryEventUpdateOne) SetTrigger(v string) *MasteryEventUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableTrigger(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetDrillID sets the "drill_id" field.
func (_u *MasteryEventUpdateOne) SetDrillID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetDrillID(v)
	return _u
}

// SetNillableDrillID sets the "drill_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableDrillID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetDrillID(*v)
	}
	return _u
}

// ClearDrillID clears the value of the "drill_id" field.
func (_u *MasteryEventUpdateOne) ClearDrillID() *MasteryEventUpdateOne {
	_u.mutation.ClearDrillID()
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdateOne) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdateOne) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryEventUpdateOne) Select(field string, fields ...string) *MasteryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryEvent entity.
func (_u *MasteryEventUpdateOne) Save(ctx context.Context) (*MasteryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) SaveX(ctx context.Context) *MasteryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdateOne) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := masteryevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GoalID(); ok {
		if err := masteryevent.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.goal_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromState(); ok {
		if err := masteryevent.FromStateValidator(v); err != nil {
			return &ValidationError{Name: "from_state", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.from_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToState(); ok {
		if err := masteryevent.ToStateValidator(v); err != nil {
			return &ValidationError{Name: "to_state", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.to_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := masteryevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdateOne) sqlSave(ctx context.Context) (_node *MasteryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryevent.FieldID)
		for _, f := range fields {
			if !masteryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryevent.FieldID {
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
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(masteryevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(masteryevent.FieldGoalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromState(); ok {
		_spec.SetField(masteryevent.FieldFromState, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToState(); ok {
		_spec.SetField(masteryevent.FieldToState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(masteryevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.DrillID(); ok {
		_spec.SetField(masteryevent.FieldDrillID, field.TypeString, value)
	}
	if _u.mutation.DrillIDCleared() {
		_spec.ClearField(masteryevent.FieldDrillID, field.TypeString)
	}
	_node = &MasteryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
