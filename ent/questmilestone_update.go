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
	"github.com/praxis-coach/praxis/ent/questmilestone"
)

// QuestMilestoneUpdate is the builder for updating QuestMilestone entities.
type QuestMilestoneUpdate struct {
	config
	hooks    []Hook
	mutation *QuestMilestoneMutation
}

// Where appends a list predicates to the QuestMilestoneUpdate builder.
func (_u *QuestMilestoneUpdate) Where(ps ...predicate.QuestMilestone) *QuestMilestoneUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *QuestMilestoneUpdate) SetTitle(v string) *QuestMilestoneUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *QuestMilestoneUpdate) SetNillableTitle(v *string) *QuestMilestoneUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetRequiredMasteryPercent sets the "required_mastery_percent" field.
func (_u *QuestMilestoneUpdate) SetRequiredMasteryPercent(v int) *QuestMilestoneUpdate {
	_u.mutation.ResetRequiredMasteryPercent()
	_u.mutation.SetRequiredMasteryPercent(v)
	return _u
}

// SetNillableRequiredMasteryPercent sets the "required_mastery_percent" field if the given value is not nil.
func (_u *QuestMilestoneUpdate) SetNillableRequiredMasteryPercent(v *int) *QuestMilestoneUpdate {
	if v != nil {
		_u.SetRequiredMasteryPercent(*v)
	}
	return _u
}

// AddRequiredMasteryPercent adds value to the "required_mastery_percent" field.
func (_u *QuestMilestoneUpdate) AddRequiredMasteryPercent(v int) *QuestMilestoneUpdate {
	_u.mutation.AddRequiredMasteryPercent(v)
	return _u
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (_u *QuestMilestoneUpdate) SetAcceptanceCriteria(v []string) *QuestMilestoneUpdate {
	_u.mutation.SetAcceptanceCriteria(v)
	return _u
}

// AppendAcceptanceCriteria appends value to the "acceptance_criteria" field.
func (_u *QuestMilestoneUpdate) AppendAcceptanceCriteria(v []string) *QuestMilestoneUpdate {
	_u.mutation.AppendAcceptanceCriteria(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuestMilestoneUpdate) SetStatus(v string) *QuestMilestoneUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuestMilestoneUpdate) SetNillableStatus(v *string) *QuestMilestoneUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QuestMilestoneUpdate) SetCompletedAt(v time.Time) *QuestMilestoneUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QuestMilestoneUpdate) SetNillableCompletedAt(v *time.Time) *QuestMilestoneUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *QuestMilestoneUpdate) ClearCompletedAt() *QuestMilestoneUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the QuestMilestoneMutation object of the builder.
func (_u *QuestMilestoneUpdate) Mutation() *QuestMilestoneMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestMilestoneUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestMilestoneUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestMilestoneUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestMilestoneUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestMilestoneUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := questmilestone.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "QuestMilestone.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := questmilestone.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuestMilestone.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestMilestoneUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questmilestone.Table, questmilestone.Columns, sqlgraph.NewFieldSpec(questmilestone.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(questmilestone.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequiredMasteryPercent(); ok {
		_spec.SetField(questmilestone.FieldRequiredMasteryPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequiredMasteryPercent(); ok {
		_spec.AddField(questmilestone.FieldRequiredMasteryPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AcceptanceCriteria(); ok {
		_spec.SetField(questmilestone.FieldAcceptanceCriteria, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAcceptanceCriteria(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questmilestone.FieldAcceptanceCriteria, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(questmilestone.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(questmilestone.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(questmilestone.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questmilestone.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestMilestoneUpdateOne is the builder for updating a single QuestMilestone entity.
type QuestMilestoneUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestMilestoneMutation
}

// SetTitle sets the "title" field.
func (_u *QuestMilestoneUpdateOne) SetTitle(v string) *QuestMilestoneUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *QuestMilestoneUpdateOne) SetNillableTitle(v *string) *QuestMilestoneUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetRequiredMasteryPercent sets the "required_mastery_percent" field.
func (_u *QuestMilestoneUpdateOne) SetRequiredMasteryPercent(v int) *QuestMilestoneUpdateOne {
	_u.mutation.ResetRequiredMasteryPercent()
	_u.mutation.SetRequiredMasteryPercent(v)
	return _u
}

// SetNillableRequiredMasteryPercent sets the "required_mastery_percent" field if the given value is not nil.
func (_u *QuestMilestoneUpdateOne) SetNillableRequiredMasteryPercent(v *int) *QuestMilestoneUpdateOne {
	if v != nil {
		_u.SetRequiredMasteryPercent(*v)
	}
	return _u
}

// AddRequiredMasteryPercent adds value to the "required_mastery_percent" field.
func (_u *QuestMilestoneUpdateOne) AddRequiredMasteryPercent(v int) *QuestMilestoneUpdateOne {
	_u.mutation.AddRequiredMasteryPercent(v)
	return _u
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (_u *QuestMilestoneUpdateOne) SetAcceptanceCriteria(v []string) *QuestMilestoneUpdateOne {
	_u.mutation.SetAcceptanceCriteria(v)
	return _u
}

// AppendAcceptanceCriteria appends value to the "acceptance_criteria" field.
func (_u *QuestMilestoneUpdateOne) AppendAcceptanceCriteria(v []string) *QuestMilestoneUpdateOne {
	_u.mutation.AppendAcceptanceCriteria(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuestMilestoneUpdateOne) SetStatus(v string) *QuestMilestoneUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuestMilestoneUpdateOne) SetNillableStatus(v *string) *QuestMilestoneUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QuestMilestoneUpdateOne) SetCompletedAt(v time.Time) *QuestMilestoneUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QuestMilestoneUpdateOne) SetNillableCompletedAt(v *time.Time) *QuestMilestoneUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *QuestMilestoneUpdateOne) ClearCompletedAt() *QuestMilestoneUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the QuestMilestoneMutation object of the builder.
func (_u *QuestMilestoneUpdateOne) Mutation() *QuestMilestoneMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestMilestoneUpdate builder.
func (_u *QuestMilestoneUpdateOne) Where(ps ...predicate.QuestMilestone) *QuestMilestoneUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestMilestoneUpdateOne) Select(field string, fields ...string) *QuestMilestoneUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestMilestone entity.
func (_u *QuestMilestoneUpdateOne) Save(ctx context.Context) (*QuestMilestone, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestMilestoneUpdateOne) SaveX(ctx context.Context) *QuestMilestone {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestMilestoneUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestMilestoneUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestMilestoneUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := questmilestone.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "QuestMilestone.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := questmilestone.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuestMilestone.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestMilestoneUpdateOne) sqlSave(ctx context.Context) (_node *QuestMilestone, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questmilestone.Table, questmilestone.Columns, sqlgraph.NewFieldSpec(questmilestone.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestMilestone.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questmilestone.FieldID)
		for _, f := range fields {
			if !questmilestone.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questmilestone.FieldID {
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
		_spec.SetField(questmilestone.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequiredMasteryPercent(); ok {
		_spec.SetField(questmilestone.FieldRequiredMasteryPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequiredMasteryPercent(); ok {
		_spec.AddField(questmilestone.FieldRequiredMasteryPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AcceptanceCriteria(); ok {
		_spec.SetField(questmilestone.FieldAcceptanceCriteria, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAcceptanceCriteria(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questmilestone.FieldAcceptanceCriteria, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(questmilestone.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(questmilestone.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(questmilestone.FieldCompletedAt, field.TypeTime)
	}
	_node = &QuestMilestone{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questmilestone.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
