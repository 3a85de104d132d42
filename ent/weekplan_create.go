// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxis-coach/praxis/ent/weekplan"
)

// WeekPlanCreate is the builder for creating a WeekPlan entity.
type WeekPlanCreate struct {
	config
	mutation *WeekPlanMutation
	hooks    []Hook
}

// SetGoalID sets the "goal_id" field.
func (_c *WeekPlanCreate) SetGoalID(v string) *WeekPlanCreate {
	_c.mutation.SetGoalID(v)
	return _c
}

// SetQuestID sets the "quest_id" field.
func (_c *WeekPlanCreate) SetQuestID(v string) *WeekPlanCreate {
	_c.mutation.SetQuestID(v)
	return _c
}

// SetWeekNumber sets the "week_number" field.
func (_c *WeekPlanCreate) SetWeekNumber(v int) *WeekPlanCreate {
	_c.mutation.SetWeekNumber(v)
	return _c
}

// SetStartDay sets the "start_day" field.
func (_c *WeekPlanCreate) SetStartDay(v int) *WeekPlanCreate {
	_c.mutation.SetStartDay(v)
	return _c
}

// SetEndDay sets the "end_day" field.
func (_c *WeekPlanCreate) SetEndDay(v int) *WeekPlanCreate {
	_c.mutation.SetEndDay(v)
	return _c
}

// SetDrillsCompleted sets the "drills_completed" field.
func (_c *WeekPlanCreate) SetDrillsCompleted(v int) *WeekPlanCreate {
	_c.mutation.SetDrillsCompleted(v)
	return _c
}

// SetNillableDrillsCompleted sets the "drills_completed" field if the given value is not nil.
func (_c *WeekPlanCreate) SetNillableDrillsCompleted(v *int) *WeekPlanCreate {
	if v != nil {
		_c.SetDrillsCompleted(*v)
	}
	return _c
}

// SetDrillsPassed sets the "drills_passed" field.
func (_c *WeekPlanCreate) SetDrillsPassed(v int) *WeekPlanCreate {
	_c.mutation.SetDrillsPassed(v)
	return _c
}

// SetNillableDrillsPassed sets the "drills_passed" field if the given value is not nil.
func (_c *WeekPlanCreate) SetNillableDrillsPassed(v *int) *WeekPlanCreate {
	if v != nil {
		_c.SetDrillsPassed(*v)
	}
	return _c
}

// SetDrillsFailed sets the "drills_failed" field.
func (_c *WeekPlanCreate) SetDrillsFailed(v int) *WeekPlanCreate {
	_c.mutation.SetDrillsFailed(v)
	return _c
}

// SetNillableDrillsFailed sets the "drills_failed" field if the given value is not nil.
func (_c *WeekPlanCreate) SetNillableDrillsFailed(v *int) *WeekPlanCreate {
	if v != nil {
		_c.SetDrillsFailed(*v)
	}
	return _c
}

// SetDrillsSkipped sets the "drills_skipped" field.
func (_c *WeekPlanCreate) SetDrillsSkipped(v int) *WeekPlanCreate {
	_c.mutation.SetDrillsSkipped(v)
	return _c
}

// SetNillableDrillsSkipped sets the "drills_skipped" field if the given value is not nil.
func (_c *WeekPlanCreate) SetNillableDrillsSkipped(v *int) *WeekPlanCreate {
	if v != nil {
		_c.SetDrillsSkipped(*v)
	}
	return _c
}

// SetSkillsMastered sets the "skills_mastered" field.
func (_c *WeekPlanCreate) SetSkillsMastered(v int) *WeekPlanCreate {
	_c.mutation.SetSkillsMastered(v)
	return _c
}

// SetNillableSkillsMastered sets the "skills_mastered" field if the given value is not nil.
func (_c *WeekPlanCreate) SetNillableSkillsMastered(v *int) *WeekPlanCreate {
	if v != nil {
		_c.SetSkillsMastered(*v)
	}
	return _c
}

// SetCarryForward sets the "carry_forward" field.
func (_c *WeekPlanCreate) SetCarryForward(v []string) *WeekPlanCreate {
	_c.mutation.SetCarryForward(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WeekPlanCreate) SetStatus(v string) *WeekPlanCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetID sets the "id" field.
func (_c *WeekPlanCreate) SetID(v string) *WeekPlanCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WeekPlanMutation object of the builder.
func (_c *WeekPlanCreate) Mutation() *WeekPlanMutation {
	return _c.mutation
}

// Save creates the WeekPlan in the database.
func (_c *WeekPlanCreate) Save(ctx context.Context) (*WeekPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WeekPlanCreate) SaveX(ctx context.Context) *WeekPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeekPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeekPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WeekPlanCreate) defaults() {
	if _, ok := _c.mutation.DrillsCompleted(); !ok {
		v := weekplan.DefaultDrillsCompleted
		_c.mutation.SetDrillsCompleted(v)
	}
	if _, ok := _c.mutation.DrillsPassed(); !ok {
		v := weekplan.DefaultDrillsPassed
		_c.mutation.SetDrillsPassed(v)
	}
	if _, ok := _c.mutation.DrillsFailed(); !ok {
		v := weekplan.DefaultDrillsFailed
		_c.mutation.SetDrillsFailed(v)
	}
	if _, ok := _c.mutation.DrillsSkipped(); !ok {
		v := weekplan.DefaultDrillsSkipped
		_c.mutation.SetDrillsSkipped(v)
	}
	if _, ok := _c.mutation.SkillsMastered(); !ok {
		v := weekplan.DefaultSkillsMastered
		_c.mutation.SetSkillsMastered(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WeekPlanCreate) check() error {
	if _, ok := _c.mutation.GoalID(); !ok {
		return &ValidationError{Name: "goal_id", err: errors.New(`ent: missing required field "WeekPlan.goal_id"`)}
	}
	if v, ok := _c.mutation.GoalID(); ok {
		if err := weekplan.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "WeekPlan.goal_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestID(); !ok {
		return &ValidationError{Name: "quest_id", err: errors.New(`ent: missing required field "WeekPlan.quest_id"`)}
	}
	if v, ok := _c.mutation.QuestID(); ok {
		if err := weekplan.QuestIDValidator(v); err != nil {
			return &ValidationError{Name: "quest_id", err: fmt.Errorf(`ent: validator failed for field "WeekPlan.quest_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WeekNumber(); !ok {
		return &ValidationError{Name: "week_number", err: errors.New(`ent: missing required field "WeekPlan.week_number"`)}
	}
	if _, ok := _c.mutation.StartDay(); !ok {
		return &ValidationError{Name: "start_day", err: errors.New(`ent: missing required field "WeekPlan.start_day"`)}
	}
	if _, ok := _c.mutation.EndDay(); !ok {
		return &ValidationError{Name: "end_day", err: errors.New(`ent: missing required field "WeekPlan.end_day"`)}
	}
	if _, ok := _c.mutation.DrillsCompleted(); !ok {
		return &ValidationError{Name: "drills_completed", err: errors.New(`ent: missing required field "WeekPlan.drills_completed"`)}
	}
	if _, ok := _c.mutation.DrillsPassed(); !ok {
		return &ValidationError{Name: "drills_passed", err: errors.New(`ent: missing required field "WeekPlan.drills_passed"`)}
	}
	if _, ok := _c.mutation.DrillsFailed(); !ok {
		return &ValidationError{Name: "drills_failed", err: errors.New(`ent: missing required field "WeekPlan.drills_failed"`)}
	}
	if _, ok := _c.mutation.DrillsSkipped(); !ok {
		return &ValidationError{Name: "drills_skipped", err: errors.New(`ent: missing required field "WeekPlan.drills_skipped"`)}
	}
	if _, ok := _c.mutation.SkillsMastered(); !ok {
		return &ValidationError{Name: "skills_mastered", err: errors.New(`ent: missing required field "WeekPlan.skills_mastered"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WeekPlan.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := weekplan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WeekPlan.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := weekplan.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "WeekPlan.id": %w`, err)}
		}
	}
	return nil
}

func (_c *WeekPlanCreate) sqlSave(ctx context.Context) (*WeekPlan, error) {
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
			return nil, fmt.Errorf("unexpected WeekPlan.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WeekPlanCreate) createSpec() (*WeekPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &WeekPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(weekplan.Table, sqlgraph.NewFieldSpec(weekplan.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GoalID(); ok {
		_spec.SetField(weekplan.FieldGoalID, field.TypeString, value)
		_node.GoalID = value
	}
	if value, ok := _c.mutation.QuestID(); ok {
		_spec.SetField(weekplan.FieldQuestID, field.TypeString, value)
		_node.QuestID = value
	}
	if value, ok := _c.mutation.WeekNumber(); ok {
		_spec.SetField(weekplan.FieldWeekNumber, field.TypeInt, value)
		_node.WeekNumber = value
	}
	if value, ok := _c.mutation.StartDay(); ok {
		_spec.SetField(weekplan.FieldStartDay, field.TypeInt, value)
		_node.StartDay = value
	}
	if value, ok := _c.mutation.EndDay(); ok {
		_spec.SetField(weekplan.FieldEndDay, field.TypeInt, value)
		_node.EndDay = value
	}
	if value, ok := _c.mutation.DrillsCompleted(); ok {
		_spec.SetField(weekplan.FieldDrillsCompleted, field.TypeInt, value)
		_node.DrillsCompleted = value
	}
	if value, ok := _c.mutation.DrillsPassed(); ok {
		_spec.SetField(weekplan.FieldDrillsPassed, field.TypeInt, value)
		_node.DrillsPassed = value
	}
	if value, ok := _c.mutation.DrillsFailed(); ok {
		_spec.SetField(weekplan.FieldDrillsFailed, field.TypeInt, value)
		_node.DrillsFailed = value
	}
	if value, ok := _c.mutation.DrillsSkipped(); ok {
		_spec.SetField(weekplan.FieldDrillsSkipped, field.TypeInt, value)
		_node.DrillsSkipped = value
	}
	if value, ok := _c.mutation.SkillsMastered(); ok {
		_spec.SetField(weekplan.FieldSkillsMastered, field.TypeInt, value)
		_node.SkillsMastered = value
	}
	if value, ok := _c.mutation.CarryForward(); ok {
		_spec.SetField(weekplan.FieldCarryForward, field.TypeJSON, value)
		_node.CarryForward = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(weekplan.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	return _node, _spec
}

// WeekPlanCreateBulk is the builder for creating many WeekPlan entities in bulk.
type WeekPlanCreateBulk struct {
	config
	err      error
	builders []*WeekPlanCreate
}

// Save creates the WeekPlan entities in the database.
func (_c *WeekPlanCreateBulk) Save(ctx context.Context) ([]*WeekPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WeekPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WeekPlanMutation)
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
func (_c *WeekPlanCreateBulk) SaveX(ctx context.Context) []*WeekPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeekPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeekPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
