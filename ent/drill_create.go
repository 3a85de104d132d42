// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxis-coach/praxis/ent/drill"
	"github.com/praxis-coach/praxis/ent/schema"
)

// DrillCreate is the builder for creating a Drill entity.
type DrillCreate struct {
	config
	mutation *DrillMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *DrillCreate) SetUserID(v string) *DrillCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetGoalID sets the "goal_id" field.
func (_c *DrillCreate) SetGoalID(v string) *DrillCreate {
	_c.mutation.SetGoalID(v)
	return _c
}

// SetQuestID sets the "quest_id" field.
func (_c *DrillCreate) SetQuestID(v string) *DrillCreate {
	_c.mutation.SetQuestID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *DrillCreate) SetSkillID(v string) *DrillCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *DrillCreate) SetDate(v string) *DrillCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetDayNumber sets the "day_number" field.
func (_c *DrillCreate) SetDayNumber(v int) *DrillCreate {
	_c.mutation.SetDayNumber(v)
	return _c
}

// SetNillableDayNumber sets the "day_number" field if the given value is not nil.
func (_c *DrillCreate) SetNillableDayNumber(v *int) *DrillCreate {
	if v != nil {
		_c.SetDayNumber(*v)
	}
	return _c
}

// SetWeekNumber sets the "week_number" field.
func (_c *DrillCreate) SetWeekNumber(v int) *DrillCreate {
	_c.mutation.SetWeekNumber(v)
	return _c
}

// SetNillableWeekNumber sets the "week_number" field if the given value is not nil.
func (_c *DrillCreate) SetNillableWeekNumber(v *int) *DrillCreate {
	if v != nil {
		_c.SetWeekNumber(*v)
	}
	return _c
}

// SetWarmup sets the "warmup" field.
func (_c *DrillCreate) SetWarmup(v *schema.DrillSection) *DrillCreate {
	_c.mutation.SetWarmup(v)
	return _c
}

// SetMain sets the "main" field.
func (_c *DrillCreate) SetMain(v schema.DrillSection) *DrillCreate {
	_c.mutation.SetMain(v)
	return _c
}

// SetStretch sets the "stretch" field.
func (_c *DrillCreate) SetStretch(v *schema.DrillSection) *DrillCreate {
	_c.mutation.SetStretch(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DrillCreate) SetStatus(v string) *DrillCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *DrillCreate) SetOutcome(v string) *DrillCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *DrillCreate) SetNillableOutcome(v *string) *DrillCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetObservation sets the "observation" field.
func (_c *DrillCreate) SetObservation(v string) *DrillCreate {
	_c.mutation.SetObservation(v)
	return _c
}

// SetNillableObservation sets the "observation" field if the given value is not nil.
func (_c *DrillCreate) SetNillableObservation(v *string) *DrillCreate {
	if v != nil {
		_c.SetObservation(*v)
	}
	return _c
}

// SetIsRetry sets the "is_retry" field.
func (_c *DrillCreate) SetIsRetry(v bool) *DrillCreate {
	_c.mutation.SetIsRetry(v)
	return _c
}

// SetNillableIsRetry sets the "is_retry" field if the given value is not nil.
func (_c *DrillCreate) SetNillableIsRetry(v *bool) *DrillCreate {
	if v != nil {
		_c.SetIsRetry(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *DrillCreate) SetRetryCount(v int) *DrillCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *DrillCreate) SetNillableRetryCount(v *int) *DrillCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetCarryForward sets the "carry_forward" field.
func (_c *DrillCreate) SetCarryForward(v string) *DrillCreate {
	_c.mutation.SetCarryForward(v)
	return _c
}

// SetNillableCarryForward sets the "carry_forward" field if the given value is not nil.
func (_c *DrillCreate) SetNillableCarryForward(v *string) *DrillCreate {
	if v != nil {
		_c.SetCarryForward(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DrillCreate) SetCreatedAt(v time.Time) *DrillCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DrillCreate) SetNillableCreatedAt(v *time.Time) *DrillCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *DrillCreate) SetCompletedAt(v time.Time) *DrillCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *DrillCreate) SetNillableCompletedAt(v *time.Time) *DrillCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DrillCreate) SetID(v string) *DrillCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DrillMutation object of the builder.
func (_c *DrillCreate) Mutation() *DrillMutation {
	return _c.mutation
}

// Save creates the Drill in the database.
func (_c *DrillCreate) Save(ctx context.Context) (*Drill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DrillCreate) SaveX(ctx context.Context) *Drill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DrillCreate) defaults() {
	if _, ok := _c.mutation.DayNumber(); !ok {
		v := drill.DefaultDayNumber
		_c.mutation.SetDayNumber(v)
	}
	if _, ok := _c.mutation.WeekNumber(); !ok {
		v := drill.DefaultWeekNumber
		_c.mutation.SetWeekNumber(v)
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		v := drill.DefaultOutcome
		_c.mutation.SetOutcome(v)
	}
	if _, ok := _c.mutation.Observation(); !ok {
		v := drill.DefaultObservation
		_c.mutation.SetObservation(v)
	}
	if _, ok := _c.mutation.IsRetry(); !ok {
		v := drill.DefaultIsRetry
		_c.mutation.SetIsRetry(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := drill.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CarryForward(); !ok {
		v := drill.DefaultCarryForward
		_c.mutation.SetCarryForward(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := drill.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DrillCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Drill.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := drill.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Drill.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GoalID(); !ok {
		return &ValidationError{Name: "goal_id", err: errors.New(`ent: missing required field "Drill.goal_id"`)}
	}
	if v, ok := _c.mutation.GoalID(); ok {
		if err := drill.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "Drill.goal_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestID(); !ok {
		return &ValidationError{Name: "quest_id", err: errors.New(`ent: missing required field "Drill.quest_id"`)}
	}
	if v, ok := _c.mutation.QuestID(); ok {
		if err := drill.QuestIDValidator(v); err != nil {
			return &ValidationError{Name: "quest_id", err: fmt.Errorf(`ent: validator failed for field "Drill.quest_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "Drill.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := drill.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "Drill.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "Drill.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := drill.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "Drill.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DayNumber(); !ok {
		return &ValidationError{Name: "day_number", err: errors.New(`ent: missing required field "Drill.day_number"`)}
	}
	if _, ok := _c.mutation.WeekNumber(); !ok {
		return &ValidationError{Name: "week_number", err: errors.New(`ent: missing required field "Drill.week_number"`)}
	}
	if _, ok := _c.mutation.Main(); !ok {
		return &ValidationError{Name: "main", err: errors.New(`ent: missing required field "Drill.main"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Drill.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := drill.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Drill.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "Drill.outcome"`)}
	}
	if _, ok := _c.mutation.Observation(); !ok {
		return &ValidationError{Name: "observation", err: errors.New(`ent: missing required field "Drill.observation"`)}
	}
	if _, ok := _c.mutation.IsRetry(); !ok {
		return &ValidationError{Name: "is_retry", err: errors.New(`ent: missing required field "Drill.is_retry"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Drill.retry_count"`)}
	}
	if _, ok := _c.mutation.CarryForward(); !ok {
		return &ValidationError{Name: "carry_forward", err: errors.New(`ent: missing required field "Drill.carry_forward"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Drill.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := drill.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Drill.id": %w`, err)}
		}
	}
	return nil
}

func (_c *DrillCreate) sqlSave(ctx context.Context) (*Drill, error) {
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
			return nil, fmt.Errorf("unexpected Drill.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DrillCreate) createSpec() (*Drill, *sqlgraph.CreateSpec) {
	var (
		_node = &Drill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(drill.Table, sqlgraph.NewFieldSpec(drill.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(drill.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.GoalID(); ok {
		_spec.SetField(drill.FieldGoalID, field.TypeString, value)
		_node.GoalID = value
	}
	if value, ok := _c.mutation.QuestID(); ok {
		_spec.SetField(drill.FieldQuestID, field.TypeString, value)
		_node.QuestID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(drill.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(drill.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.DayNumber(); ok {
		_spec.SetField(drill.FieldDayNumber, field.TypeInt, value)
		_node.DayNumber = value
	}
	if value, ok := _c.mutation.WeekNumber(); ok {
		_spec.SetField(drill.FieldWeekNumber, field.TypeInt, value)
		_node.WeekNumber = value
	}
	if value, ok := _c.mutation.Warmup(); ok {
		_spec.SetField(drill.FieldWarmup, field.TypeJSON, value)
		_node.Warmup = value
	}
	if value, ok := _c.mutation.Main(); ok {
		_spec.SetField(drill.FieldMain, field.TypeJSON, value)
		_node.Main = value
	}
	if value, ok := _c.mutation.Stretch(); ok {
		_spec.SetField(drill.FieldStretch, field.TypeJSON, value)
		_node.Stretch = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(drill.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(drill.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Observation(); ok {
		_spec.SetField(drill.FieldObservation, field.TypeString, value)
		_node.Observation = value
	}
	if value, ok := _c.mutation.IsRetry(); ok {
		_spec.SetField(drill.FieldIsRetry, field.TypeBool, value)
		_node.IsRetry = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(drill.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.CarryForward(); ok {
		_spec.SetField(drill.FieldCarryForward, field.TypeString, value)
		_node.CarryForward = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(drill.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(drill.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// DrillCreateBulk is the builder for creating many Drill entities in bulk.
type DrillCreateBulk struct {
	config
	err      error
	builders []*DrillCreate
}

// Save creates the Drill entities in the database.
func (_c *DrillCreateBulk) Save(ctx context.Context) ([]*Drill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Drill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DrillMutation)
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
func (_c *DrillCreateBulk) SaveX(ctx context.Context) []*Drill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
