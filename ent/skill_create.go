// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxis-coach/praxis/ent/skill"
)

// SkillCreate is the builder for creating a Skill entity.
type SkillCreate struct {
	config
	mutation *SkillMutation
	hooks    []Hook
}

// SetQuestID sets the "quest_id" field.
func (_c *SkillCreate) SetQuestID(v string) *SkillCreate {
	_c.mutation.SetQuestID(v)
	return _c
}

// SetGoalID sets the "goal_id" field.
func (_c *SkillCreate) SetGoalID(v string) *SkillCreate {
	_c.mutation.SetGoalID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SkillCreate) SetUserID(v string) *SkillCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *SkillCreate) SetTitle(v string) *SkillCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *SkillCreate) SetAction(v string) *SkillCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetSuccessSignal sets the "success_signal" field.
func (_c *SkillCreate) SetSuccessSignal(v string) *SkillCreate {
	_c.mutation.SetSuccessSignal(v)
	return _c
}

// SetLockedVariables sets the "locked_variables" field.
func (_c *SkillCreate) SetLockedVariables(v []string) *SkillCreate {
	_c.mutation.SetLockedVariables(v)
	return _c
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (_c *SkillCreate) SetEstimatedMinutes(v int) *SkillCreate {
	_c.mutation.SetEstimatedMinutes(v)
	return _c
}

// SetSkillType sets the "skill_type" field.
func (_c *SkillCreate) SetSkillType(v string) *SkillCreate {
	_c.mutation.SetSkillType(v)
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *SkillCreate) SetOrderIndex(v int) *SkillCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetStageLevel sets the "stage_level" field.
func (_c *SkillCreate) SetStageLevel(v string) *SkillCreate {
	_c.mutation.SetStageLevel(v)
	return _c
}

// SetNillableStageLevel sets the "stage_level" field if the given value is not nil.
func (_c *SkillCreate) SetNillableStageLevel(v *string) *SkillCreate {
	if v != nil {
		_c.SetStageLevel(*v)
	}
	return _c
}

// SetPrerequisites sets the "prerequisites" field.
func (_c *SkillCreate) SetPrerequisites(v []string) *SkillCreate {
	_c.mutation.SetPrerequisites(v)
	return _c
}

// SetComponents sets the "components" field.
func (_c *SkillCreate) SetComponents(v []string) *SkillCreate {
	_c.mutation.SetComponents(v)
	return _c
}

// SetDesignedFailure sets the "designed_failure" field.
func (_c *SkillCreate) SetDesignedFailure(v string) *SkillCreate {
	_c.mutation.SetDesignedFailure(v)
	return _c
}

// SetNillableDesignedFailure sets the "designed_failure" field if the given value is not nil.
func (_c *SkillCreate) SetNillableDesignedFailure(v *string) *SkillCreate {
	if v != nil {
		_c.SetDesignedFailure(*v)
	}
	return _c
}

// SetConsequence sets the "consequence" field.
func (_c *SkillCreate) SetConsequence(v string) *SkillCreate {
	_c.mutation.SetConsequence(v)
	return _c
}

// SetNillableConsequence sets the "consequence" field if the given value is not nil.
func (_c *SkillCreate) SetNillableConsequence(v *string) *SkillCreate {
	if v != nil {
		_c.SetConsequence(*v)
	}
	return _c
}

// SetRecovery sets the "recovery" field.
func (_c *SkillCreate) SetRecovery(v string) *SkillCreate {
	_c.mutation.SetRecovery(v)
	return _c
}

// SetNillableRecovery sets the "recovery" field if the given value is not nil.
func (_c *SkillCreate) SetNillableRecovery(v *string) *SkillCreate {
	if v != nil {
		_c.SetRecovery(*v)
	}
	return _c
}

// SetTransferScenario sets the "transfer_scenario" field.
func (_c *SkillCreate) SetTransferScenario(v string) *SkillCreate {
	_c.mutation.SetTransferScenario(v)
	return _c
}

// SetNillableTransferScenario sets the "transfer_scenario" field if the given value is not nil.
func (_c *SkillCreate) SetNillableTransferScenario(v *string) *SkillCreate {
	if v != nil {
		_c.SetTransferScenario(*v)
	}
	return _c
}

// SetMastery sets the "mastery" field.
func (_c *SkillCreate) SetMastery(v string) *SkillCreate {
	_c.mutation.SetMastery(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SkillCreate) SetStatus(v string) *SkillCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetPassCount sets the "pass_count" field.
func (_c *SkillCreate) SetPassCount(v int) *SkillCreate {
	_c.mutation.SetPassCount(v)
	return _c
}

// SetNillablePassCount sets the "pass_count" field if the given value is not nil.
func (_c *SkillCreate) SetNillablePassCount(v *int) *SkillCreate {
	if v != nil {
		_c.SetPassCount(*v)
	}
	return _c
}

// SetFailCount sets the "fail_count" field.
func (_c *SkillCreate) SetFailCount(v int) *SkillCreate {
	_c.mutation.SetFailCount(v)
	return _c
}

// SetNillableFailCount sets the "fail_count" field if the given value is not nil.
func (_c *SkillCreate) SetNillableFailCount(v *int) *SkillCreate {
	if v != nil {
		_c.SetFailCount(*v)
	}
	return _c
}

// SetConsecutivePasses sets the "consecutive_passes" field.
func (_c *SkillCreate) SetConsecutivePasses(v int) *SkillCreate {
	_c.mutation.SetConsecutivePasses(v)
	return _c
}

// SetNillableConsecutivePasses sets the "consecutive_passes" field if the given value is not nil.
func (_c *SkillCreate) SetNillableConsecutivePasses(v *int) *SkillCreate {
	if v != nil {
		_c.SetConsecutivePasses(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *SkillCreate) SetNeedsReview(v bool) *SkillCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *SkillCreate) SetNillableNeedsReview(v *bool) *SkillCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_c *SkillCreate) SetLastPracticedAt(v time.Time) *SkillCreate {
	_c.mutation.SetLastPracticedAt(v)
	return _c
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_c *SkillCreate) SetNillableLastPracticedAt(v *time.Time) *SkillCreate {
	if v != nil {
		_c.SetLastPracticedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SkillCreate) SetID(v string) *SkillCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SkillMutation object of the builder.
func (_c *SkillCreate) Mutation() *SkillMutation {
	return _c.mutation
}

// Save creates the Skill in the database.
func (_c *SkillCreate) Save(ctx context.Context) (*Skill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillCreate) SaveX(ctx context.Context) *Skill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillCreate) defaults() {
	if _, ok := _c.mutation.PassCount(); !ok {
		v := skill.DefaultPassCount
		_c.mutation.SetPassCount(v)
	}
	if _, ok := _c.mutation.FailCount(); !ok {
		v := skill.DefaultFailCount
		_c.mutation.SetFailCount(v)
	}
	if _, ok := _c.mutation.ConsecutivePasses(); !ok {
		v := skill.DefaultConsecutivePasses
		_c.mutation.SetConsecutivePasses(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := skill.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillCreate) check() error {
	if _, ok := _c.mutation.QuestID(); !ok {
		return &ValidationError{Name: "quest_id", err: errors.New(`ent: missing required field "Skill.quest_id"`)}
	}
	if v, ok := _c.mutation.QuestID(); ok {
		if err := skill.QuestIDValidator(v); err != nil {
			return &ValidationError{Name: "quest_id", err: fmt.Errorf(`ent: validator failed for field "Skill.quest_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GoalID(); !ok {
		return &ValidationError{Name: "goal_id", err: errors.New(`ent: missing required field "Skill.goal_id"`)}
	}
	if v, ok := _c.mutation.GoalID(); ok {
		if err := skill.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "Skill.goal_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Skill.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := skill.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Skill.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Skill.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := skill.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Skill.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "Skill.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := skill.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "Skill.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SuccessSignal(); !ok {
		return &ValidationError{Name: "success_signal", err: errors.New(`ent: missing required field "Skill.success_signal"`)}
	}
	if v, ok := _c.mutation.SuccessSignal(); ok {
		if err := skill.SuccessSignalValidator(v); err != nil {
			return &ValidationError{Name: "success_signal", err: fmt.Errorf(`ent: validator failed for field "Skill.success_signal": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LockedVariables(); !ok {
		return &ValidationError{Name: "locked_variables", err: errors.New(`ent: missing required field "Skill.locked_variables"`)}
	}
	if _, ok := _c.mutation.EstimatedMinutes(); !ok {
		return &ValidationError{Name: "estimated_minutes", err: errors.New(`ent: missing required field "Skill.estimated_minutes"`)}
	}
	if v, ok := _c.mutation.EstimatedMinutes(); ok {
		if err := skill.EstimatedMinutesValidator(v); err != nil {
			return &ValidationError{Name: "estimated_minutes", err: fmt.Errorf(`ent: validator failed for field "Skill.estimated_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillType(); !ok {
		return &ValidationError{Name: "skill_type", err: errors.New(`ent: missing required field "Skill.skill_type"`)}
	}
	if v, ok := _c.mutation.SkillType(); ok {
		if err := skill.SkillTypeValidator(v); err != nil {
			return &ValidationError{Name: "skill_type", err: fmt.Errorf(`ent: validator failed for field "Skill.skill_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "Skill.order_index"`)}
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "Skill.mastery"`)}
	}
	if v, ok := _c.mutation.Mastery(); ok {
		if err := skill.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "Skill.mastery": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Skill.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := skill.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Skill.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PassCount(); !ok {
		return &ValidationError{Name: "pass_count", err: errors.New(`ent: missing required field "Skill.pass_count"`)}
	}
	if _, ok := _c.mutation.FailCount(); !ok {
		return &ValidationError{Name: "fail_count", err: errors.New(`ent: missing required field "Skill.fail_count"`)}
	}
	if _, ok := _c.mutation.ConsecutivePasses(); !ok {
		return &ValidationError{Name: "consecutive_passes", err: errors.New(`ent: missing required field "Skill.consecutive_passes"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "Skill.needs_review"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := skill.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Skill.id": %w`, err)}
		}
	}
	return nil
}

func (_c *SkillCreate) sqlSave(ctx context.Context) (*Skill, error) {
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
			return nil, fmt.Errorf("unexpected Skill.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SkillCreate) createSpec() (*Skill, *sqlgraph.CreateSpec) {
	var (
		_node = &Skill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skill.Table, sqlgraph.NewFieldSpec(skill.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.QuestID(); ok {
		_spec.SetField(skill.FieldQuestID, field.TypeString, value)
		_node.QuestID = value
	}
	if value, ok := _c.mutation.GoalID(); ok {
		_spec.SetField(skill.FieldGoalID, field.TypeString, value)
		_node.GoalID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(skill.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(skill.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(skill.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.SuccessSignal(); ok {
		_spec.SetField(skill.FieldSuccessSignal, field.TypeString, value)
		_node.SuccessSignal = value
	}
	if value, ok := _c.mutation.LockedVariables(); ok {
		_spec.SetField(skill.FieldLockedVariables, field.TypeJSON, value)
		_node.LockedVariables = value
	}
	if value, ok := _c.mutation.EstimatedMinutes(); ok {
		_spec.SetField(skill.FieldEstimatedMinutes, field.TypeInt, value)
		_node.EstimatedMinutes = value
	}
	if value, ok := _c.mutation.SkillType(); ok {
		_spec.SetField(skill.FieldSkillType, field.TypeString, value)
		_node.SkillType = value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(skill.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if value, ok := _c.mutation.StageLevel(); ok {
		_spec.SetField(skill.FieldStageLevel, field.TypeString, value)
		_node.StageLevel = value
	}
	if value, ok := _c.mutation.Prerequisites(); ok {
		_spec.SetField(skill.FieldPrerequisites, field.TypeJSON, value)
		_node.Prerequisites = value
	}
	if value, ok := _c.mutation.Components(); ok {
		_spec.SetField(skill.FieldComponents, field.TypeJSON, value)
		_node.Components = value
	}
	if value, ok := _c.mutation.DesignedFailure(); ok {
		_spec.SetField(skill.FieldDesignedFailure, field.TypeString, value)
		_node.DesignedFailure = value
	}
	if value, ok := _c.mutation.Consequence(); ok {
		_spec.SetField(skill.FieldConsequence, field.TypeString, value)
		_node.Consequence = value
	}
	if value, ok := _c.mutation.Recovery(); ok {
		_spec.SetField(skill.FieldRecovery, field.TypeString, value)
		_node.Recovery = value
	}
	if value, ok := _c.mutation.TransferScenario(); ok {
		_spec.SetField(skill.FieldTransferScenario, field.TypeString, value)
		_node.TransferScenario = value
	}
	if value, ok := _c.mutation.Mastery(); ok {
		_spec.SetField(skill.FieldMastery, field.TypeString, value)
		_node.Mastery = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(skill.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PassCount(); ok {
		_spec.SetField(skill.FieldPassCount, field.TypeInt, value)
		_node.PassCount = value
	}
	if value, ok := _c.mutation.FailCount(); ok {
		_spec.SetField(skill.FieldFailCount, field.TypeInt, value)
		_node.FailCount = value
	}
	if value, ok := _c.mutation.ConsecutivePasses(); ok {
		_spec.SetField(skill.FieldConsecutivePasses, field.TypeInt, value)
		_node.ConsecutivePasses = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(skill.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.LastPracticedAt(); ok {
		_spec.SetField(skill.FieldLastPracticedAt, field.TypeTime, value)
		_node.LastPracticedAt = &value
	}
	return _node, _spec
}

// SkillCreateBulk is the builder for creating many Skill entities in bulk.
type SkillCreateBulk struct {
	config
	err      error
	builders []*SkillCreate
}

// Save creates the Skill entities in the database.
func (_c *SkillCreateBulk) Save(ctx context.Context) ([]*Skill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Skill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillMutation)
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
func (_c *SkillCreateBulk) SaveX(ctx context.Context) []*Skill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
