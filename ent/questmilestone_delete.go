// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxis-coach/praxis/ent/predicate"
	"github.com/praxis-coach/praxis/ent/questmilestone"
)

// QuestMilestoneDelete is the builder for deleting a QuestMilestone entity.
type QuestMilestoneDelete struct {
	config
	hooks    []Hook
	mutation *QuestMilestoneMutation
}

// Where appends a list predicates to the QuestMilestoneDelete builder.
func (_d *QuestMilestoneDelete) Where(ps ...predicate.QuestMilestone) *QuestMilestoneDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *QuestMilestoneDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuestMilestoneDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *QuestMilestoneDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(questmilestone.Table, sqlgraph.NewFieldSpec(questmilestone.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// QuestMilestoneDeleteOne is the builder for deleting a single QuestMilestone entity.
type QuestMilestoneDeleteOne struct {
	_d *QuestMilestoneDelete
}

// Where appends a list predicates to the QuestMilestoneDelete builder.
func (_d *QuestMilestoneDeleteOne) Where(ps ...predicate.QuestMilestone) *QuestMilestoneDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *QuestMilestoneDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{questmilestone.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuestMilestoneDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
