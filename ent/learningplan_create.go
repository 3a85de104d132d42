// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxis-coach/praxis/ent/learningplan"
	"github.com/praxis-coach/praxis/ent/schema"
)

// LearningPlanCreate is the builder for creating a LearningPlan entity.
type LearningPlanCreate struct {
	config
	mutation *LearningPlanMutation
	hooks    []Hook
}

// SetGoalID sets the "goal_id" field.
func (_c *LearningPlanCreate) SetGoalID(v string) *LearningPlanCreate {
	_c.mutation.SetGoalID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *LearningPlanCreate) SetUserID(v string) *LearningPlanCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *LearningPlanCreate) SetTitle(v string) *LearningPlanCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDuration sets the "duration" field.
func (_c *LearningPlanCreate) SetDuration(v string) *LearningPlanCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetDailyMinutesBudget sets the "daily_minutes_budget" field.
func (_c *LearningPlanCreate) SetDailyMinutesBudget(v int) *LearningPlanCreate {
	_c.mutation.SetDailyMinutesBudget(v)
	return _c
}

// SetQuests sets the "quests" field.
func (_c *LearningPlanCreate) SetQuests(v []schema.PlanQuest) *LearningPlanCreate {
	_c.mutation.SetQuests(v)
	return _c
}

// SetTotalSkills sets the "total_skills" field.
func (_c *LearningPlanCreate) SetTotalSkills(v int) *LearningPlanCreate {
	_c.mutation.SetTotalSkills(v)
	return _c
}

// SetNillableTotalSkills sets the "total_skills" field if the given value is not nil.
func (_c *LearningPlanCreate) SetNillableTotalSkills(v *int) *LearningPlanCreate {
	if v != nil {
		_c.SetTotalSkills(*v)
	}
	return _c
}

// SetTotalMinutes sets the "total_minutes" field.
func (_c *LearningPlanCreate) SetTotalMinutes(v int) *LearningPlanCreate {
	_c.mutation.SetTotalMinutes(v)
	return _c
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_c *LearningPlanCreate) SetNillableTotalMinutes(v *int) *LearningPlanCreate {
	if v != nil {
		_c.SetTotalMinutes(*v)
	}
	return _c
}

// SetEstimatedDays sets the "estimated_days" field.
func (_c *LearningPlanCreate) SetEstimatedDays(v int) *LearningPlanCreate {
	_c.mutation.SetEstimatedDays(v)
	return _c
}

// SetNillableEstimatedDays sets the "estimated_days" field if the given value is not nil.
func (_c *LearningPlanCreate) SetNillableEstimatedDays(v *int) *LearningPlanCreate {
	if v != nil {
		_c.SetEstimatedDays(*v)
	}
	return _c
}

// SetWarnings sets the "warnings" field.
func (_c *LearningPlanCreate) SetWarnings(v []string) *LearningPlanCreate {
	_c.mutation.SetWarnings(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearningPlanCreate) SetCreatedAt(v time.Time) *LearningPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearningPlanCreate) SetNillableCreatedAt(v *time.Time) *LearningPlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LearningPlanCreate) SetID(v string) *LearningPlanCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LearningPlanMutation object of the builder.
func (_c *LearningPlanCreate) Mutation() *LearningPlanMutation {
	return _c.mutation
}

// Save creates the LearningPlan in the database.
func (_c *LearningPlanCreate) Save(ctx context.Context) (*LearningPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningPlanCreate) SaveX(ctx context.Context) *LearningPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningPlanCreate) defaults() {
	if _, ok := _c.mutation.TotalSkills(); !ok {
		v := learningplan.DefaultTotalSkills
		_c.mutation.SetTotalSkills(v)
	}
	if _, ok := _c.mutation.TotalMinutes(); !ok {
		v := learningplan.DefaultTotalMinutes
		_c.mutation.SetTotalMinutes(v)
	}
	if _, ok := _c.mutation.EstimatedDays(); !ok {
		v := learningplan.DefaultEstimatedDays
		_c.mutation.SetEstimatedDays(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learningplan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningPlanCreate) check() error {
	if _, ok := _c.mutation.GoalID(); !ok {
		return &ValidationError{Name: "goal_id", err: errors.New(`ent: missing required field "LearningPlan.goal_id"`)}
	}
	if v, ok := _c.mutation.GoalID(); ok {
		if err := learningplan.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.goal_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearningPlan.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := learningplan.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "LearningPlan.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := learningplan.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Duration(); !ok {
		return &ValidationError{Name: "duration", err: errors.New(`ent: missing required field "LearningPlan.duration"`)}
	}
	if v, ok := _c.mutation.Duration(); ok {
		if err := learningplan.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.duration": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DailyMinutesBudget(); !ok {
		return &ValidationError{Name: "daily_minutes_budget", err: errors.New(`ent: missing required field "LearningPlan.daily_minutes_budget"`)}
	}
	if _, ok := _c.mutation.Quests(); !ok {
		return &ValidationError{Name: "quests", err: errors.New(`ent: missing required field "LearningPlan.quests"`)}
	}
	if _, ok := _c.mutation.TotalSkills(); !ok {
		return &ValidationError{Name: "total_skills", err: errors.New(`ent: missing required field "LearningPlan.total_skills"`)}
	}
	if _, ok := _c.mutation.TotalMinutes(); !ok {
		return &ValidationError{Name: "total_minutes", err: errors.New(`ent: missing required field "LearningPlan.total_minutes"`)}
	}
	if _, ok := _c.mutation.EstimatedDays(); !ok {
		return &ValidationError{Name: "estimated_days", err: errors.New(`ent: missing required field "LearningPlan.estimated_days"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearningPlan.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := learningplan.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.id": %w`, err)}
		}
	}
	return nil
}

func (_c *LearningPlanCreate) sqlSave(ctx context.Context) (*LearningPlan, error) {
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
			return nil, fmt.Errorf("unexpected LearningPlan.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearningPlanCreate) createSpec() (*LearningPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningplan.Table, sqlgraph.NewFieldSpec(learningplan.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GoalID(); ok {
		_spec.SetField(learningplan.FieldGoalID, field.TypeString, value)
		_node.GoalID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(learningplan.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(learningplan.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(learningplan.FieldDuration, field.TypeString, value)
		_node.Duration = value
	}
	if value, ok := _c.mutation.DailyMinutesBudget(); ok {
		_spec.SetField(learningplan.FieldDailyMinutesBudget, field.TypeInt, value)
		_node.DailyMinutesBudget = value
	}
	if value, ok := _c.mutation.Quests(); ok {
		_spec.SetField(learningplan.FieldQuests, field.TypeJSON, value)
		_node.Quests = value
	}
	if value, ok := _c.mutation.TotalSkills(); ok {
		_spec.SetField(learningplan.FieldTotalSkills, field.TypeInt, value)
		_node.TotalSkills = value
	}
	if value, ok := _c.mutation.TotalMinutes(); ok {
		_spec.SetField(learningplan.FieldTotalMinutes, field.TypeInt, value)
		_node.TotalMinutes = value
	}
	if value, ok := _c.mutation.EstimatedDays(); ok {
		_spec.SetField(learningplan.FieldEstimatedDays, field.TypeInt, value)
		_node.EstimatedDays = value
	}
	if value, ok := _c.mutation.Warnings(); ok {
		_spec.SetField(learningplan.FieldWarnings, field.TypeJSON, value)
		_node.Warnings = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learningplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LearningPlanCreateBulk is the builder for creating many LearningPlan entities in bulk.
type LearningPlanCreateBulk struct {
	config
	err      error
	builders []*LearningPlanCreate
}

// Save creates the LearningPlan entities in the database.
func (_c *LearningPlanCreateBulk) Save(ctx context.Context) ([]*LearningPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningPlanMutation)
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
func (_c *LearningPlanCreateBulk) SaveX(ctx context.Context) []*LearningPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
