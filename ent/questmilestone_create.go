// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxis-coach/praxis/ent/questmilestone"
)

// QuestMilestoneCreate is the builder for creating a QuestMilestone entity.
type QuestMilestoneCreate struct {
	config
	mutation *QuestMilestoneMutation
	hooks    []Hook
}

// SetQuestID sets the "quest_id" field.
func (_c *QuestMilestoneCreate) SetQuestID(v string) *QuestMilestoneCreate {
	_c.mutation.SetQuestID(v)
	return _c
}

// SetGoalID sets the "goal_id" field.
func (_c *QuestMilestoneCreate) SetGoalID(v string) *QuestMilestoneCreate {
	_c.mutation.SetGoalID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *QuestMilestoneCreate) SetTitle(v string) *QuestMilestoneCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetRequiredMasteryPercent sets the "required_mastery_percent" field.
func (_c *QuestMilestoneCreate) SetRequiredMasteryPercent(v int) *QuestMilestoneCreate {
	_c.mutation.SetRequiredMasteryPercent(v)
	return _c
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (_c *QuestMilestoneCreate) SetAcceptanceCriteria(v []string) *QuestMilestoneCreate {
	_c.mutation.SetAcceptanceCriteria(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *QuestMilestoneCreate) SetStatus(v string) *QuestMilestoneCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *QuestMilestoneCreate) SetCompletedAt(v time.Time) *QuestMilestoneCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *QuestMilestoneCreate) SetNillableCompletedAt(v *time.Time) *QuestMilestoneCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestMilestoneCreate) SetID(v string) *QuestMilestoneCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QuestMilestoneMutation object of the builder.
func (_c *QuestMilestoneCreate) Mutation() *QuestMilestoneMutation {
	return _c.mutation
}

// Save creates the QuestMilestone in the database.
func (_c *QuestMilestoneCreate) Save(ctx context.Context) (*QuestMilestone, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestMilestoneCreate) SaveX(ctx context.Context) *QuestMilestone {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestMilestoneCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestMilestoneCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestMilestoneCreate) check() error {
	if _, ok := _c.mutation.QuestID(); !ok {
		return &ValidationError{Name: "quest_id", err: errors.New(`ent: missing required field "QuestMilestone.quest_id"`)}
	}
	if v, ok := _c.mutation.QuestID(); ok {
		if err := questmilestone.QuestIDValidator(v); err != nil {
			return &ValidationError{Name: "quest_id", err: fmt.Errorf(`ent: validator failed for field "QuestMilestone.quest_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GoalID(); !ok {
		return &ValidationError{Name: "goal_id", err: errors.New(`ent: missing required field "QuestMilestone.goal_id"`)}
	}
	if v, ok := _c.mutation.GoalID(); ok {
		if err := questmilestone.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "QuestMilestone.goal_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "QuestMilestone.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := questmilestone.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "QuestMilestone.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequiredMasteryPercent(); !ok {
		return &ValidationError{Name: "required_mastery_percent", err: errors.New(`ent: missing required field "QuestMilestone.required_mastery_percent"`)}
	}
	if _, ok := _c.mutation.AcceptanceCriteria(); !ok {
		return &ValidationError{Name: "acceptance_criteria", err: errors.New(`ent: missing required field "QuestMilestone.acceptance_criteria"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QuestMilestone.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := questmilestone.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuestMilestone.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := questmilestone.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "QuestMilestone.id": %w`, err)}
		}
	}
	return nil
}

func (_c *QuestMilestoneCreate) sqlSave(ctx context.Context) (*QuestMilestone, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected QuestMilestone.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestMilestoneCreate) createSpec() (*QuestMilestone, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestMilestone{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questmilestone.Table, sqlgraph.NewFieldSpec(questmilestone.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.QuestID(); ok {
		_spec.SetField(questmilestone.FieldQuestID, field.TypeString, value)
		_node.QuestID = value
	}
	if value, ok := _c.mutation.GoalID(); ok {
		_spec.SetField(questmilestone.FieldGoalID, field.TypeString, value)
		_node.GoalID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(questmilestone.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.RequiredMasteryPercent(); ok {
		_spec.SetField(questmilestone.FieldRequiredMasteryPercent, field.TypeInt, value)
		_node.RequiredMasteryPercent = value
	}
	if value, ok := _c.mutation.AcceptanceCriteria(); ok {
		_spec.SetField(questmilestone.FieldAcceptanceCriteria, field.TypeJSON, value)
		_node.AcceptanceCriteria = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(questmilestone.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(questmilestone.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// QuestMilestoneCreateBulk is the builder for creating many QuestMilestone entities in bulk.
type QuestMilestoneCreateBulk struct {
	config
	err      error
	builders []*QuestMilestoneCreate
}

// Save creates the QuestMilestone entities in the database.
func (_c *QuestMilestoneCreateBulk) Save(ctx context.Context) ([]*QuestMilestone, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestMilestone, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestMilestoneMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuestMilestoneCreateBulk) SaveX(ctx context.Context) []*QuestMilestone {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestMilestoneCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestMilestoneCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
