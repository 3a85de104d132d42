// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxis-coach/praxis/ent/drill"
	"github.com/praxis-coach/praxis/ent/predicate"
	"github.com/praxis-coach/praxis/ent/schema"
)

// DrillUpdate is the builder for updating Drill entities.
type DrillUpdate struct {
	config
	hooks    []Hook
	mutation *DrillMutation
}

// Where appends a list predicates to the DrillUpdate builder.
func (_u *DrillUpdate) Where(ps ...predicate.Drill) *DrillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDayNumber sets the "day_number" field.
func (_u *DrillUpdate) SetDayNumber(v int) *DrillUpdate {
	_u.mutation.ResetDayNumber()
	_u.mutation.SetDayNumber(v)
	return _u
}

// SetNillableDayNumber sets the "day_number" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableDayNumber(v *int) *DrillUpdate {
	if v != nil {
		_u.SetDayNumber(*v)
	}
	return _u
}

// AddDayNumber adds value to the "day_number" field.
func (_u *DrillUpdate) AddDayNumber(v int) *DrillUpdate {
	_u.mutation.AddDayNumber(v)
	return _u
}

// SetWeekNumber sets the "week_number" field.
func (_u *DrillUpdate) SetWeekNumber(v int) *DrillUpdate {
	_u.mutation.ResetWeekNumber()
	_u.mutation.SetWeekNumber(v)
	return _u
}

// SetNillableWeekNumber sets the "week_number" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableWeekNumber(v *int) *DrillUpdate {
	if v != nil {
		_u.SetWeekNumber(*v)
	}
	return _u
}

// AddWeekNumber adds value to the "week_number" field.
func (_u *DrillUpdate) AddWeekNumber(v int) *DrillUpdate {
	_u.mutation.AddWeekNumber(v)
	return _u
}

// SetWarmup sets the "warmup" field.
func (_u *DrillUpdate) SetWarmup(v *schema.DrillSection) *DrillUpdate {
	_u.mutation.SetWarmup(v)
	return _u
}

// ClearWarmup clears the value of the "warmup" field.
func (_u *DrillUpdate) ClearWarmup() *DrillUpdate {
	_u.mutation.ClearWarmup()
	return _u
}

// SetMain sets the "main" field.
func (_u *DrillUpdate) SetMain(v schema.DrillSection) *DrillUpdate {
	_u.mutation.SetMain(v)
	return _u
}

// SetNillableMain sets the "main" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableMain(v *schema.DrillSection) *DrillUpdate {
	if v != nil {
		_u.SetMain(*v)
	}
	return _u
}

// SetStretch sets the "stretch" field.
func (_u *DrillUpdate) SetStretch(v *schema.DrillSection) *DrillUpdate {
	_u.mutation.SetStretch(v)
	return _u
}

// ClearStretch clears the value of the "stretch" field.
func (_u *DrillUpdate) ClearStretch() *DrillUpdate {
	_u.mutation.ClearStretch()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DrillUpdate) SetStatus(v string) *DrillUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableStatus(v *string) *DrillUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *DrillUpdate) SetOutcome(v string) *DrillUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableOutcome(v *string) *DrillUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetObservation sets the "observation" field.
func (_u *DrillUpdate) SetObservation(v string) *DrillUpdate {
	_u.mutation.SetObservation(v)
	return _u
}

// SetNillableObservation sets the "observation" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableObservation(v *string) *DrillUpdate {
	if v != nil {
		_u.SetObservation(*v)
	}
	return _u
}

// SetIsRetry sets the "is_retry" field.
func (_u *DrillUpdate) SetIsRetry(v bool) *DrillUpdate {
	_u.mutation.SetIsRetry(v)
	return _u
}

// SetNillableIsRetry sets the "is_retry" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableIsRetry(v *bool) *DrillUpdate {
	if v != nil {
		_u.SetIsRetry(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *DrillUpdate) SetRetryCount(v int) *DrillUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableRetryCount(v *int) *DrillUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *DrillUpdate) AddRetryCount(v int) *DrillUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetCarryForward sets the "carry_forward" field.
func (_u *DrillUpdate) SetCarryForward(v string) *DrillUpdate {
	_u.mutation.SetCarryForward(v)
	return _u
}

// SetNillableCarryForward sets the "carry_forward" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableCarryForward(v *string) *DrillUpdate {
	if v != nil {
		_u.SetCarryForward(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DrillUpdate) SetCompletedAt(v time.Time) *DrillUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableCompletedAt(v *time.Time) *DrillUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DrillUpdate) ClearCompletedAt() *DrillUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the DrillMutation object of the builder.
func (_u *DrillUpdate) Mutation() *DrillMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DrillUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DrillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrillUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := drill.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Drill.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DrillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drill.Table, drill.Columns, sqlgraph.NewFieldSpec(drill.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DayNumber(); ok {
		_spec.SetField(drill.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayNumber(); ok {
		_spec.AddField(drill.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeekNumber(); ok {
		_spec.SetField(drill.FieldWeekNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekNumber(); ok {
		_spec.AddField(drill.FieldWeekNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Warmup(); ok {
		_spec.SetField(drill.FieldWarmup, field.TypeJSON, value)
	}
	if _u.mutation.WarmupCleared() {
		_spec.ClearField(drill.FieldWarmup, field.TypeJSON)
	}
	if value, ok := _u.mutation.Main(); ok {
		_spec.SetField(drill.FieldMain, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Stretch(); ok {
		_spec.SetField(drill.FieldStretch, field.TypeJSON, value)
	}
	if _u.mutation.StretchCleared() {
		_spec.ClearField(drill.FieldStretch, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(drill.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(drill.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Observation(); ok {
		_spec.SetField(drill.FieldObservation, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsRetry(); ok {
		_spec.SetField(drill.FieldIsRetry, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(drill.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(drill.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CarryForward(); ok {
		_spec.SetField(drill.FieldCarryForward, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(drill.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(drill.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DrillUpdateOne is the builder for updating a single Drill entity.
type DrillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DrillMutation
}

// SetDayNumber sets the "day_number" field.
func (_u *DrillUpdateOne) SetDayNumber(v int) *DrillUpdateOne {
	_u.mutation.ResetDayNumber()
	_u.mutation.SetDayNumber(v)
	return _u
}

// SetNillableDayNumber sets the "day_number" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableDayNumber(v *int) *DrillUpdateOne {
	if v != nil {
		_u.SetDayNumber(*v)
	}
	return _u
}

// AddDayNumber adds value to the "day_number" field.
func (_u *DrillUpdateOne) AddDayNumber(v int) *DrillUpdateOne {
	_u.mutation.AddDayNumber(v)
	return _u
}

// SetWeekNumber sets the "week_number" field.
func (_u *DrillUpdateOne) SetWeekNumber(v int) *DrillUpdateOne {
	_u.mutation.ResetWeekNumber()
	_u.mutation.SetWeekNumber(v)
	return _u
}

// SetNillableWeekNumber sets the "week_number" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableWeekNumber(v *int) *DrillUpdateOne {
	if v != nil {
		_u.SetWeekNumber(*v)
	}
	return _u
}

// AddWeekNumber adds value to the "week_number" field.
func (_u *DrillUpdateOne) AddWeekNumber(v int) *DrillUpdateOne {
	_u.mutation.AddWeekNumber(v)
	return _u
}

// SetWarmup sets the "warmup" field.
func (_u *DrillUpdateOne) SetWarmup(v *schema.DrillSection) *DrillUpdateOne {
	_u.mutation.SetWarmup(v)
	return _u
}

// ClearWarmup clears the value of the "warmup" field.
func (_u *DrillUpdateOne) ClearWarmup() *DrillUpdateOne {
	_u.mutation.ClearWarmup()
	return _u
}

// SetMain sets the "main" field.
func (_u *DrillUpdateOne) SetMain(v schema.DrillSection) *DrillUpdateOne {
	_u.mutation.SetMain(v)
	return _u
}

// SetNillableMain sets the "main" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableMain(v *schema.DrillSection) *DrillUpdateOne {
	if v != nil {
		_u.SetMain(*v)
	}
	return _u
}

// SetStretch sets the "stretch" field.
func (_u *DrillUpdateOne) SetStretch(v *schema.DrillSection) *DrillUpdateOne {
	_u.mutation.SetStretch(v)
	return _u
}

// ClearStretch clears the value of the "stretch" field.
func (_u *DrillUpdateOne) ClearStretch() *DrillUpdateOne {
	_u.mutation.ClearStretch()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DrillUpdateOne) SetStatus(v string) *DrillUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableStatus(v *string) *DrillUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *DrillUpdateOne) SetOutcome(v string) *DrillUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableOutcome(v *string) *DrillUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetObservation sets the "observation" field.
func (_u *DrillUpdateOne) SetObservation(v string) *DrillUpdateOne {
	_u.mutation.SetObservation(v)
	return _u
}

// SetNillableObservation sets the "observation" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableObservation(v *string) *DrillUpdateOne {
	if v != nil {
		_u.SetObservation(*v)
	}
	return _u
}

// SetIsRetry sets the "is_retry" field.
func (_u *DrillUpdateOne) SetIsRetry(v bool) *DrillUpdateOne {
	_u.mutation.SetIsRetry(v)
	return _u
}

// SetNillableIsRetry sets the "is_retry" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableIsRetry(v *bool) *DrillUpdateOne {
	if v != nil {
		_u.SetIsRetry(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *DrillUpdateOne) SetRetryCount(v int) *DrillUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableRetryCount(v *int) *DrillUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *DrillUpdateOne) AddRetryCount(v int) *DrillUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetCarryForward sets the "carry_forward" field.
func (_u *DrillUpdateOne) SetCarryForward(v string) *DrillUpdateOne {
	_u.mutation.SetCarryForward(v)
	return _u
}

// SetNillableCarryForward sets the "carry_forward" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableCarryForward(v *string) *DrillUpdateOne {
	if v != nil {
		_u.SetCarryForward(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DrillUpdateOne) SetCompletedAt(v time.Time) *DrillUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableCompletedAt(v *time.Time) *DrillUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DrillUpdateOne) ClearCompletedAt() *DrillUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the DrillMutation object of the builder.
func (_u *DrillUpdateOne) Mutation() *DrillMutation {
	return _u.mutation
}

// Where appends a list predicates to the DrillUpdate builder.
func (_u *DrillUpdateOne) Where(ps ...predicate.Drill) *DrillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DrillUpdateOne) Select(field string, fields ...string) *DrillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Drill entity.
func (_u *DrillUpdateOne) Save(ctx context.Context) (*Drill, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillUpdateOne) SaveX(ctx context.Context) *Drill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DrillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrillUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := drill.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Drill.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DrillUpdateOne) sqlSave(ctx context.Context) (_node *Drill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drill.Table, drill.Columns, sqlgraph.NewFieldSpec(drill.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Drill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, drill.FieldID)
		for _, f := range fields {
			if !drill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != drill.FieldID {
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
	if value, ok := _u.mutation.DayNumber(); ok {
		_spec.SetField(drill.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayNumber(); ok {
		_spec.AddField(drill.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeekNumber(); ok {
		_spec.SetField(drill.FieldWeekNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekNumber(); ok {
		_spec.AddField(drill.FieldWeekNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Warmup(); ok {
		_spec.SetField(drill.FieldWarmup, field.TypeJSON, value)
	}
	if _u.mutation.WarmupCleared() {
		_spec.ClearField(drill.FieldWarmup, field.TypeJSON)
	}
	if value, ok := _u.mutation.Main(); ok {
		_spec.SetField(drill.FieldMain, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Stretch(); ok {
		_spec.SetField(drill.FieldStretch, field.TypeJSON, value)
	}
	if _u.mutation.StretchCleared() {
		_spec.ClearField(drill.FieldStretch, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(drill.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(drill.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Observation(); ok {
		_spec.SetField(drill.FieldObservation, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsRetry(); ok {
		_spec.SetField(drill.FieldIsRetry, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(drill.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(drill.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CarryForward(); ok {
		_spec.SetField(drill.FieldCarryForward, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(drill.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(drill.FieldCompletedAt, field.TypeTime)
	}
	_node = &Drill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
