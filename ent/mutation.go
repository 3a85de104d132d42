// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxis-coach/praxis/ent/drill"
	"github.com/praxis-coach/praxis/ent/learningplan"
	"github.com/praxis-coach/praxis/ent/llmrequestevent"
	"github.com/praxis-coach/praxis/ent/masteryevent"
	"github.com/praxis-coach/praxis/ent/predicate"
	"github.com/praxis-coach/praxis/ent/questmilestone"
	"github.com/praxis-coach/praxis/ent/schema"
	"github.com/praxis-coach/praxis/ent/skill"
	"github.com/praxis-coach/praxis/ent/weekplan"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDrill           = "Drill"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeLearningPlan    = "LearningPlan"
	TypeMasteryEvent    = "MasteryEvent"
	TypeQuestMilestone  = "QuestMilestone"
	TypeSkill           = "Skill"
	TypeWeekPlan        = "WeekPlan"
)

// DrillMutation represents an operation that mutates the Drill nodes in the graph.
type DrillMutation struct {
	config
	op             Op
	typ            string
	id             *string
	user_id        *string
	goal_id        *string
	quest_id       *string
	skill_id       *string
	date           *string
	day_number     *int
	addday_number  *int
	week_number    *int
	addweek_number *int
	warmup         **schema.DrillSection
	main           *schema.DrillSection
	stretch        **schema.DrillSection
	status         *string
	outcome        *string
	observation    *string
	is_retry       *bool
	retry_count    *int
	addretry_count *int
	carry_forward  *string
	created_at     *time.Time
	completed_at   *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Drill, error)
	predicates     []predicate.Drill
}

var _ ent.Mutation = (*DrillMutation)(nil)

// drillOption allows management of the mutation configuration using functional options.
type drillOption func(*DrillMutation)

// newDrillMutation creates new mutation for the Drill entity.
func newDrillMutation(c config, op Op, opts ...drillOption) *DrillMutation {
	m := &DrillMutation{
		config:        c,
		op:            op,
		typ:           TypeDrill,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDrillID sets the ID field of the mutation.
func withDrillID(id string) drillOption {
	return func(m *DrillMutation) {
		var (
			err   error
			once  sync.Once
			value *Drill
		)
		m.oldValue = func(ctx context.Context) (*Drill, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Drill.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDrill sets the old Drill of the mutation.
func withDrill(node *Drill) drillOption {
	return func(m *DrillMutation) {
		m.oldValue = func(context.Context) (*Drill, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DrillMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DrillMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Drill entities.
func (m *DrillMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DrillMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DrillMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Drill.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *DrillMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DrillMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Drill entity.
// If the Drill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DrillMutation) ResetUserID() {
	m.user_id = nil
}

// SetGoalID sets the "goal_id" field.
func (m *DrillMutation) SetGoalID(s string) {
	m.goal_id = &s
}

// GoalID returns the value of the "goal_id" field in the mutation.
func (m *DrillMutation) GoalID() (r string, exists bool) {
	v := m.goal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalID returns the old "goal_id" field's value of the Drill entity.
// If the Drill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillMutation) OldGoalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalID: %w", err)
	}
	return oldValue.GoalID, nil
}

// ResetGoalID resets all changes to the "goal_id" field.
func (m *DrillMutation) ResetGoalID() {
	m.goal_id = nil
}

// SetQuestID sets the "quest_id" field.
func (m *DrillMutation) SetQuestID(s string) {
	m.quest_id = &s
}

// QuestID returns the value of the "quest_id" field in the mutation.
func (m *DrillMutation) QuestID() (r string, exists bool) {
	v := m.quest_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestID returns the old "quest_id" field's value of the Drill entity.
// If the Drill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillMutation) OldQuestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestID: %w", err)
	}
	return oldValue.QuestID, nil
}

// ResetQuestID resets all changes to the "quest_id" field.
func (m *DrillMutation) ResetQuestID() {
	m.quest_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *DrillMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *DrillMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the Drill entity.
// If the Drill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *DrillMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetDate sets the "date" field.
func (m *DrillMutation) SetDate(s string) {
	m.date = &s
}

// Date returns the value of the "date" field in the mutation.
func (m *DrillMutation) Date() (r string, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Drill entity.
// If the Drill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillMutation) OldDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *DrillMutation) ResetDate() {
	m.date = nil
}

// SetDayNumber sets the "day_number" field.
func (m *DrillMutation) SetDayNumber(i int) {
	m.day_number = &i
	m.addday_number = nil
}

// DayNumber returns the value of the "day_number" field in the mutation.
func (m *DrillMutation) DayNumber() (r int, exists bool) {
	v := m.day_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDayNumber returns the old "day_number" field's value of the Drill entity.
// If the Drill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillMutation) OldDayNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDayNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDayNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDayNumber: %w", err)
	}
	return oldValue.DayNumber, nil
}

// AddDayNumber adds i to the "day_number" field.
func (m *DrillMutation) AddDayNumber(i int) {
	if m.addday_number != nil {
		*m.addday_number += i
	} else {
		m.addday_number = &i
	}
}

// AddedDayNumber returns the value that was added to the "day_number" field in this mutation.
func (m *DrillMutation) AddedDayNumber() (r int, exists bool) {
	v := m.addday_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetDayNumber resets all changes to the "day_number" field.
func (m *DrillMutation) ResetDayNumber() {
	m.day_number = nil
	m.addday_number = nil
}

// SetWeekNumber sets the "week_number" field.
func (m *DrillMutation) SetWeekNumber(i int) {
	m.week_number = &i
	m.addweek_number = nil
}

// WeekNumber returns the value of the "week_number" field in the mutation.
func (m *DrillMutation) WeekNumber() (r int, exists bool) {
	v := m.week_number
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekNumber returns the old "week_number" field's value of the Drill entity.
// If the Drill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillMutation) OldWeekNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekNumber: %w", err)
	}
	return oldValue.WeekNumber, nil
}

// AddWeekNumber adds i to the "week_number" field.
func (m *DrillMutation) AddWeekNumber(i int) {
	if m.addweek_number != nil {
		*m.addweek_number += i
	} else {
		m.addweek_number = &i
	}
}

// AddedWeekNumber returns the value that was added to the "week_number" field in this mutation.
func (m *DrillMutation) AddedWeekNumber() (r int, exists bool) {
	v := m.addweek_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeekNumber resets all changes to the "week_number" field.
func (m *DrillMutation) ResetWeekNumber() {
	m.week_number = nil
	m.addweek_number = nil
}

// SetWarmup sets the "warmup" field.
func (m *DrillMutation) SetWarmup(ss *schema.DrillSection) {
	m.warmup = &ss
}

// Warmup returns the value of the "warmup" field in the mutation.
func (m *DrillMutation) Warmup() (r *schema.DrillSection, exists bool) {
	v := m.warmup
	if v == nil {
		return
	}
	return *v, true
}

// OldWarmup returns the old "warmup" field's value of the Drill entity.
// If the Drill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillMutation) OldWarmup(ctx context.Context) (v *schema.DrillSection, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarmup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarmup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarmup: %w", err)
	}
	return oldValue.Warmup, nil
}

// ClearWarmup clears the value of the "warmup" field.
func (m *DrillMutation) ClearWarmup() {
	m.warmup = nil
	m.clearedFields[drill.FieldWarmup] = struct{}{}
}

// WarmupCleared returns if the "warmup" field was cleared in this mutation.
func (m *DrillMutation) WarmupCleared() bool {
	_, ok := m.clearedFields[drill.FieldWarmup]
	return ok
}

// ResetWarmup resets all changes to the "warmup" field.
func (m *DrillMutation) ResetWarmup() {
	m.warmup = nil
	delete(m.clearedFields, drill.FieldWarmup)
}

// SetMain sets the "main" field.
func (m *DrillMutation) SetMain(ss schema.DrillSection) {
	m.main = &ss
}

// Main returns the value of the "main" field in the mutation.
func (m *DrillMutation) Main() (r schema.DrillSection, exists bool) {
	v := m.main
	if v == nil {
		return
	}
	return *v, true
}

// OldMain returns the old "main" field's value of the Drill entity.
// If the Drill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillMutation) OldMain(ctx context.Context) (v schema.DrillSection, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMain: %w", err)
	}
	return oldValue.Main, nil
}

// ResetMain resets all changes to the "main" field.
func (m *DrillMutation) ResetMain() {
	m.main = nil
}

// SetStretch sets the "stretch" field.
func (m *DrillMutation) SetStretch(ss *schema.DrillSection) {
	m.stretch = &ss
}

// Stretch returns the value of the "stretch" field in the mutation.
func (m *DrillMutation) Stretch() (r *schema.DrillSection, exists bool) {
	v := m.stretch
	if v == nil {
		return
	}
	return *v, true
}

// OldStretch returns the old "stretch" field's value of the Drill entity.
// If the Drill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillMutation) OldStretch(ctx context.Context) (v *schema.DrillSection, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStretch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStretch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStretch: %w", err)
	}
	return oldValue.Stretch, nil
}

// ClearStretch clears the value of the "stretch" field.
func (m *DrillMutation) ClearStretch() {
	m.stretch = nil
	m.clearedFields[drill.FieldStretch] = struct{}{}
}

// StretchCleared returns if the "stretch" field was cleared in this mutation.
func (m *DrillMutation) StretchCleared() bool {
	_, ok := m.clearedFields[drill.FieldStretch]
	return ok
}

// ResetStretch resets all changes to the "stretch" field.
func (m *DrillMutation) ResetStretch() {
	m.stretch = nil
	delete(m.clearedFields, drill.FieldStretch)
}

// SetStatus sets the "status" field.
func (m *DrillMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DrillMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Drill entity.
// If the Drill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DrillMutation) ResetStatus() {
	m.status = nil
}

// SetOutcome sets the "outcome" field.
func (m *DrillMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *DrillMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the Drill entity.
// If the Drill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *DrillMutation) ResetOutcome() {
	m.outcome = nil
}

// SetObservation sets the "observation" field.
func (m *DrillMutation) SetObservation(s string) {
	m.observation = &s
}

// Observation returns the value of the "observation" field in the mutation.
func (m *DrillMutation) Observation() (r string, exists bool) {
	v := m.observation
	if v == nil {
		return
	}
	return *v, true
}

// OldObservation returns the old "observation" field's value of the Drill entity.
// If the Drill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillMutation) OldObservation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservation: %w", err)
	}
	return oldValue.Observation, nil
}

// ResetObservation resets all changes to the "observation" field.
func (m *DrillMutation) ResetObservation() {
	m.observation = nil
}

// SetIsRetry sets the "is_retry" field.
func (m *DrillMutation) SetIsRetry(b bool) {
	m.is_retry = &b
}

// IsRetry returns the value of the "is_retry" field in the mutation.
func (m *DrillMutation) IsRetry() (r bool, exists bool) {
	v := m.is_retry
	if v == nil {
		return
	}
	return *v, true
}

// OldIsRetry returns the old "is_retry" field's value of the Drill entity.
// If the Drill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillMutation) OldIsRetry(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsRetry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsRetry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsRetry: %w", err)
	}
	return oldValue.IsRetry, nil
}

// ResetIsRetry resets all changes to the "is_retry" field.
func (m *DrillMutation) ResetIsRetry() {
	m.is_retry = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *DrillMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *DrillMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Drill entity.
// If the Drill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *DrillMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *DrillMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *DrillMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetCarryForward sets the "carry_forward" field.
func (m *DrillMutation) SetCarryForward(s string) {
	m.carry_forward = &s
}

// CarryForward returns the value of the "carry_forward" field in the mutation.
func (m *DrillMutation) CarryForward() (r string, exists bool) {
	v := m.carry_forward
	if v == nil {
		return
	}
	return *v, true
}

// OldCarryForward returns the old "carry_forward" field's value of the Drill entity.
// If the Drill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillMutation) OldCarryForward(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCarryForward is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCarryForward requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCarryForward: %w", err)
	}
	return oldValue.CarryForward, nil
}

// ResetCarryForward resets all changes to the "carry_forward" field.
func (m *DrillMutation) ResetCarryForward() {
	m.carry_forward = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DrillMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DrillMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Drill entity.
// If the Drill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DrillMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *DrillMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *DrillMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Drill entity.
// If the Drill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *DrillMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[drill.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *DrillMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[drill.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *DrillMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, drill.FieldCompletedAt)
}

// Where appends a list predicates to the DrillMutation builder.
func (m *DrillMutation) Where(ps ...predicate.Drill) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DrillMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DrillMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Drill, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DrillMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DrillMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Drill).
func (m *DrillMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DrillMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.user_id != nil {
		fields = append(fields, drill.FieldUserID)
	}
	if m.goal_id != nil {
		fields = append(fields, drill.FieldGoalID)
	}
	if m.quest_id != nil {
		fields = append(fields, drill.FieldQuestID)
	}
	if m.skill_id != nil {
		fields = append(fields, drill.FieldSkillID)
	}
	if m.date != nil {
		fields = append(fields, drill.FieldDate)
	}
	if m.day_number != nil {
		fields = append(fields, drill.FieldDayNumber)
	}
	if m.week_number != nil {
		fields = append(fields, drill.FieldWeekNumber)
	}
	if m.warmup != nil {
		fields = append(fields, drill.FieldWarmup)
	}
	if m.main != nil {
		fields = append(fields, drill.FieldMain)
	}
	if m.stretch != nil {
		fields = append(fields, drill.FieldStretch)
	}
	if m.status != nil {
		fields = append(fields, drill.FieldStatus)
	}
	if m.outcome != nil {
		fields = append(fields, drill.FieldOutcome)
	}
	if m.observation != nil {
		fields = append(fields, drill.FieldObservation)
	}
	if m.is_retry != nil {
		fields = append(fields, drill.FieldIsRetry)
	}
	if m.retry_count != nil {
		fields = append(fields, drill.FieldRetryCount)
	}
	if m.carry_forward != nil {
		fields = append(fields, drill.FieldCarryForward)
	}
	if m.created_at != nil {
		fields = append(fields, drill.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, drill.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DrillMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case drill.FieldUserID:
		return m.UserID()
	case drill.FieldGoalID:
		return m.GoalID()
	case drill.FieldQuestID:
		return m.QuestID()
	case drill.FieldSkillID:
		return m.SkillID()
	case drill.FieldDate:
		return m.Date()
	case drill.FieldDayNumber:
		return m.DayNumber()
	case drill.FieldWeekNumber:
		return m.WeekNumber()
	case drill.FieldWarmup:
		return m.Warmup()
	case drill.FieldMain:
		return m.Main()
	case drill.FieldStretch:
		return m.Stretch()
	case drill.FieldStatus:
		return m.Status()
	case drill.FieldOutcome:
		return m.Outcome()
	case drill.FieldObservation:
		return m.Observation()
	case drill.FieldIsRetry:
		return m.IsRetry()
	case drill.FieldRetryCount:
		return m.RetryCount()
	case drill.FieldCarryForward:
		return m.CarryForward()
	case drill.FieldCreatedAt:
		return m.CreatedAt()
	case drill.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DrillMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case drill.FieldUserID:
		return m.OldUserID(ctx)
	case drill.FieldGoalID:
		return m.OldGoalID(ctx)
	case drill.FieldQuestID:
		return m.OldQuestID(ctx)
	case drill.FieldSkillID:
		return m.OldSkillID(ctx)
	case drill.FieldDate:
		return m.OldDate(ctx)
	case drill.FieldDayNumber:
		return m.OldDayNumber(ctx)
	case drill.FieldWeekNumber:
		return m.OldWeekNumber(ctx)
	case drill.FieldWarmup:
		return m.OldWarmup(ctx)
	case drill.FieldMain:
		return m.OldMain(ctx)
	case drill.FieldStretch:
		return m.OldStretch(ctx)
	case drill.FieldStatus:
		return m.OldStatus(ctx)
	case drill.FieldOutcome:
		return m.OldOutcome(ctx)
	case drill.FieldObservation:
		return m.OldObservation(ctx)
	case drill.FieldIsRetry:
		return m.OldIsRetry(ctx)
	case drill.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case drill.FieldCarryForward:
		return m.OldCarryForward(ctx)
	case drill.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case drill.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Drill field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DrillMutation) SetField(name string, value ent.Value) error {
	switch name {
	case drill.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case drill.FieldGoalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalID(v)
		return nil
	case drill.FieldQuestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestID(v)
		return nil
	case drill.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case drill.FieldDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case drill.FieldDayNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDayNumber(v)
		return nil
	case drill.FieldWeekNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekNumber(v)
		return nil
	case drill.FieldWarmup:
		v, ok := value.(*schema.DrillSection)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarmup(v)
		return nil
	case drill.FieldMain:
		v, ok := value.(schema.DrillSection)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMain(v)
		return nil
	case drill.FieldStretch:
		v, ok := value.(*schema.DrillSection)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStretch(v)
		return nil
	case drill.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case drill.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case drill.FieldObservation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservation(v)
		return nil
	case drill.FieldIsRetry:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsRetry(v)
		return nil
	case drill.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case drill.FieldCarryForward:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCarryForward(v)
		return nil
	case drill.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case drill.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Drill field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DrillMutation) AddedFields() []string {
	var fields []string
	if m.addday_number != nil {
		fields = append(fields, drill.FieldDayNumber)
	}
	if m.addweek_number != nil {
		fields = append(fields, drill.FieldWeekNumber)
	}
	if m.addretry_count != nil {
		fields = append(fields, drill.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DrillMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case drill.FieldDayNumber:
		return m.AddedDayNumber()
	case drill.FieldWeekNumber:
		return m.AddedWeekNumber()
	case drill.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DrillMutation) AddField(name string, value ent.Value) error {
	switch name {
	case drill.FieldDayNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDayNumber(v)
		return nil
	case drill.FieldWeekNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeekNumber(v)
		return nil
	case drill.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown Drill numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DrillMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(drill.FieldWarmup) {
		fields = append(fields, drill.FieldWarmup)
	}
	if m.FieldCleared(drill.FieldStretch) {
		fields = append(fields, drill.FieldStretch)
	}
	if m.FieldCleared(drill.FieldCompletedAt) {
		fields = append(fields, drill.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DrillMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DrillMutation) ClearField(name string) error {
	switch name {
	case drill.FieldWarmup:
		m.ClearWarmup()
		return nil
	case drill.FieldStretch:
		m.ClearStretch()
		return nil
	case drill.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Drill nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DrillMutation) ResetField(name string) error {
	switch name {
	case drill.FieldUserID:
		m.ResetUserID()
		return nil
	case drill.FieldGoalID:
		m.ResetGoalID()
		return nil
	case drill.FieldQuestID:
		m.ResetQuestID()
		return nil
	case drill.FieldSkillID:
		m.ResetSkillID()
		return nil
	case drill.FieldDate:
		m.ResetDate()
		return nil
	case drill.FieldDayNumber:
		m.ResetDayNumber()
		return nil
	case drill.FieldWeekNumber:
		m.ResetWeekNumber()
		return nil
	case drill.FieldWarmup:
		m.ResetWarmup()
		return nil
	case drill.FieldMain:
		m.ResetMain()
		return nil
	case drill.FieldStretch:
		m.ResetStretch()
		return nil
	case drill.FieldStatus:
		m.ResetStatus()
		return nil
	case drill.FieldOutcome:
		m.ResetOutcome()
		return nil
	case drill.FieldObservation:
		m.ResetObservation()
		return nil
	case drill.FieldIsRetry:
		m.ResetIsRetry()
		return nil
	case drill.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case drill.FieldCarryForward:
		m.ResetCarryForward()
		return nil
	case drill.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case drill.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Drill field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DrillMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DrillMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DrillMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DrillMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DrillMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DrillMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DrillMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Drill unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DrillMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Drill edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// LearningPlanMutation represents an operation that mutates the LearningPlan nodes in the graph.
type LearningPlanMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	goal_id                 *string
	user_id                 *string
	title                   *string
	duration                *string
	daily_minutes_budget    *int
	adddaily_minutes_budget *int
	quests                  *[]schema.PlanQuest
	appendquests            []schema.PlanQuest
	total_skills            *int
	addtotal_skills         *int
	total_minutes           *int
	addtotal_minutes        *int
	estimated_days          *int
	addestimated_days       *int
	warnings                *[]string
	appendwarnings          []string
	created_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*LearningPlan, error)
	predicates              []predicate.LearningPlan
}

var _ ent.Mutation = (*LearningPlanMutation)(nil)

// learningplanOption allows management of the mutation configuration using functional options.
type learningplanOption func(*LearningPlanMutation)

// newLearningPlanMutation creates new mutation for the LearningPlan entity.
func newLearningPlanMutation(c config, op Op, opts ...learningplanOption) *LearningPlanMutation {
	m := &LearningPlanMutation{
		config:        c,
		op:            op,
		typ:           TypeLearningPlan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearningPlanID sets the ID field of the mutation.
func withLearningPlanID(id string) learningplanOption {
	return func(m *LearningPlanMutation) {
		var (
			err   error
			once  sync.Once
			value *LearningPlan
		)
		m.oldValue = func(ctx context.Context) (*LearningPlan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearningPlan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearningPlan sets the old LearningPlan of the mutation.
func withLearningPlan(node *LearningPlan) learningplanOption {
	return func(m *LearningPlanMutation) {
		m.oldValue = func(context.Context) (*LearningPlan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearningPlanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearningPlanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LearningPlan entities.
func (m *LearningPlanMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearningPlanMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearningPlanMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearningPlan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGoalID sets the "goal_id" field.
func (m *LearningPlanMutation) SetGoalID(s string) {
	m.goal_id = &s
}

// GoalID returns the value of the "goal_id" field in the mutation.
func (m *LearningPlanMutation) GoalID() (r string, exists bool) {
	v := m.goal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalID returns the old "goal_id" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldGoalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalID: %w", err)
	}
	return oldValue.GoalID, nil
}

// ResetGoalID resets all changes to the "goal_id" field.
func (m *LearningPlanMutation) ResetGoalID() {
	m.goal_id = nil
}

// SetUserID sets the "user_id" field.
func (m *LearningPlanMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LearningPlanMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LearningPlanMutation) ResetUserID() {
	m.user_id = nil
}

// SetTitle sets the "title" field.
func (m *LearningPlanMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *LearningPlanMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *LearningPlanMutation) ResetTitle() {
	m.title = nil
}

// SetDuration sets the "duration" field.
func (m *LearningPlanMutation) SetDuration(s string) {
	m.duration = &s
}

// Duration returns the value of the "duration" field in the mutation.
func (m *LearningPlanMutation) Duration() (r string, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldDuration(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// ResetDuration resets all changes to the "duration" field.
func (m *LearningPlanMutation) ResetDuration() {
	m.duration = nil
}

// SetDailyMinutesBudget sets the "daily_minutes_budget" field.
func (m *LearningPlanMutation) SetDailyMinutesBudget(i int) {
	m.daily_minutes_budget = &i
	m.adddaily_minutes_budget = nil
}

// DailyMinutesBudget returns the value of the "daily_minutes_budget" field in the mutation.
func (m *LearningPlanMutation) DailyMinutesBudget() (r int, exists bool) {
	v := m.daily_minutes_budget
	if v == nil {
		return
	}
	return *v, true
}

// OldDailyMinutesBudget returns the old "daily_minutes_budget" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldDailyMinutesBudget(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDailyMinutesBudget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDailyMinutesBudget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDailyMinutesBudget: %w", err)
	}
	return oldValue.DailyMinutesBudget, nil
}

// AddDailyMinutesBudget adds i to the "daily_minutes_budget" field.
func (m *LearningPlanMutation) AddDailyMinutesBudget(i int) {
	if m.adddaily_minutes_budget != nil {
		*m.adddaily_minutes_budget += i
	} else {
		m.adddaily_minutes_budget = &i
	}
}

// AddedDailyMinutesBudget returns the value that was added to the "daily_minutes_budget" field in this mutation.
func (m *LearningPlanMutation) AddedDailyMinutesBudget() (r int, exists bool) {
	v := m.adddaily_minutes_budget
	if v == nil {
		return
	}
	return *v, true
}

// ResetDailyMinutesBudget resets all changes to the "daily_minutes_budget" field.
func (m *LearningPlanMutation) ResetDailyMinutesBudget() {
	m.daily_minutes_budget = nil
	m.adddaily_minutes_budget = nil
}

// SetQuests sets the "quests" field.
func (m *LearningPlanMutation) SetQuests(sq []schema.PlanQuest) {
	m.quests = &sq
	m.appendquests = nil
}

// Quests returns the value of the "quests" field in the mutation.
func (m *LearningPlanMutation) Quests() (r []schema.PlanQuest, exists bool) {
	v := m.quests
	if v == nil {
		return
	}
	return *v, true
}

// OldQuests returns the old "quests" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldQuests(ctx context.Context) (v []schema.PlanQuest, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuests: %w", err)
	}
	return oldValue.Quests, nil
}

// AppendQuests adds sq to the "quests" field.
func (m *LearningPlanMutation) AppendQuests(sq []schema.PlanQuest) {
	m.appendquests = append(m.appendquests, sq...)
}

// AppendedQuests returns the list of values that were appended to the "quests" field in this mutation.
func (m *LearningPlanMutation) AppendedQuests() ([]schema.PlanQuest, bool) {
	if len(m.appendquests) == 0 {
		return nil, false
	}
	return m.appendquests, true
}

// ResetQuests resets all changes to the "quests" field.
func (m *LearningPlanMutation) ResetQuests() {
	m.quests = nil
	m.appendquests = nil
}

// SetTotalSkills sets the "total_skills" field.
func (m *LearningPlanMutation) SetTotalSkills(i int) {
	m.total_skills = &i
	m.addtotal_skills = nil
}

// TotalSkills returns the value of the "total_skills" field in the mutation.
func (m *LearningPlanMutation) TotalSkills() (r int, exists bool) {
	v := m.total_skills
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalSkills returns the old "total_skills" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldTotalSkills(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalSkills is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalSkills requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalSkills: %w", err)
	}
	return oldValue.TotalSkills, nil
}

// AddTotalSkills adds i to the "total_skills" field.
func (m *LearningPlanMutation) AddTotalSkills(i int) {
	if m.addtotal_skills != nil {
		*m.addtotal_skills += i
	} else {
		m.addtotal_skills = &i
	}
}

// AddedTotalSkills returns the value that was added to the "total_skills" field in this mutation.
func (m *LearningPlanMutation) AddedTotalSkills() (r int, exists bool) {
	v := m.addtotal_skills
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalSkills resets all changes to the "total_skills" field.
func (m *LearningPlanMutation) ResetTotalSkills() {
	m.total_skills = nil
	m.addtotal_skills = nil
}

// SetTotalMinutes sets the "total_minutes" field.
func (m *LearningPlanMutation) SetTotalMinutes(i int) {
	m.total_minutes = &i
	m.addtotal_minutes = nil
}

// TotalMinutes returns the value of the "total_minutes" field in the mutation.
func (m *LearningPlanMutation) TotalMinutes() (r int, exists bool) {
	v := m.total_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalMinutes returns the old "total_minutes" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldTotalMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalMinutes: %w", err)
	}
	return oldValue.TotalMinutes, nil
}

// AddTotalMinutes adds i to the "total_minutes" field.
func (m *LearningPlanMutation) AddTotalMinutes(i int) {
	if m.addtotal_minutes != nil {
		*m.addtotal_minutes += i
	} else {
		m.addtotal_minutes = &i
	}
}

// AddedTotalMinutes returns the value that was added to the "total_minutes" field in this mutation.
func (m *LearningPlanMutation) AddedTotalMinutes() (r int, exists bool) {
	v := m.addtotal_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalMinutes resets all changes to the "total_minutes" field.
func (m *LearningPlanMutation) ResetTotalMinutes() {
	m.total_minutes = nil
	m.addtotal_minutes = nil
}

// SetEstimatedDays sets the "estimated_days" field.
func (m *LearningPlanMutation) SetEstimatedDays(i int) {
	m.estimated_days = &i
	m.addestimated_days = nil
}

// EstimatedDays returns the value of the "estimated_days" field in the mutation.
func (m *LearningPlanMutation) EstimatedDays() (r int, exists bool) {
	v := m.estimated_days
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedDays returns the old "estimated_days" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldEstimatedDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedDays: %w", err)
	}
	return oldValue.EstimatedDays, nil
}

// AddEstimatedDays adds i to the "estimated_days" field.
func (m *LearningPlanMutation) AddEstimatedDays(i int) {
	if m.addestimated_days != nil {
		*m.addestimated_days += i
	} else {
		m.addestimated_days = &i
	}
}

// AddedEstimatedDays returns the value that was added to the "estimated_days" field in this mutation.
func (m *LearningPlanMutation) AddedEstimatedDays() (r int, exists bool) {
	v := m.addestimated_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedDays resets all changes to the "estimated_days" field.
func (m *LearningPlanMutation) ResetEstimatedDays() {
	m.estimated_days = nil
	m.addestimated_days = nil
}

// SetWarnings sets the "warnings" field.
func (m *LearningPlanMutation) SetWarnings(s []string) {
	m.warnings = &s
	m.appendwarnings = nil
}

// Warnings returns the value of the "warnings" field in the mutation.
func (m *LearningPlanMutation) Warnings() (r []string, exists bool) {
	v := m.warnings
	if v == nil {
		return
	}
	return *v, true
}

// OldWarnings returns the old "warnings" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldWarnings(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarnings: %w", err)
	}
	return oldValue.Warnings, nil
}

// AppendWarnings adds s to the "warnings" field.
func (m *LearningPlanMutation) AppendWarnings(s []string) {
	m.appendwarnings = append(m.appendwarnings, s...)
}

// AppendedWarnings returns the list of values that were appended to the "warnings" field in this mutation.
func (m *LearningPlanMutation) AppendedWarnings() ([]string, bool) {
	if len(m.appendwarnings) == 0 {
		return nil, false
	}
	return m.appendwarnings, true
}

// ClearWarnings clears the value of the "warnings" field.
func (m *LearningPlanMutation) ClearWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	m.clearedFields[learningplan.FieldWarnings] = struct{}{}
}

// WarningsCleared returns if the "warnings" field was cleared in this mutation.
func (m *LearningPlanMutation) WarningsCleared() bool {
	_, ok := m.clearedFields[learningplan.FieldWarnings]
	return ok
}

// ResetWarnings resets all changes to the "warnings" field.
func (m *LearningPlanMutation) ResetWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	delete(m.clearedFields, learningplan.FieldWarnings)
}

// SetCreatedAt sets the "created_at" field.
func (m *LearningPlanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LearningPlanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LearningPlanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LearningPlanMutation builder.
func (m *LearningPlanMutation) Where(ps ...predicate.LearningPlan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearningPlanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearningPlanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearningPlan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearningPlanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearningPlanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearningPlan).
func (m *LearningPlanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearningPlanMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.goal_id != nil {
		fields = append(fields, learningplan.FieldGoalID)
	}
	if m.user_id != nil {
		fields = append(fields, learningplan.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, learningplan.FieldTitle)
	}
	if m.duration != nil {
		fields = append(fields, learningplan.FieldDuration)
	}
	if m.daily_minutes_budget != nil {
		fields = append(fields, learningplan.FieldDailyMinutesBudget)
	}
	if m.quests != nil {
		fields = append(fields, learningplan.FieldQuests)
	}
	if m.total_skills != nil {
		fields = append(fields, learningplan.FieldTotalSkills)
	}
	if m.total_minutes != nil {
		fields = append(fields, learningplan.FieldTotalMinutes)
	}
	if m.estimated_days != nil {
		fields = append(fields, learningplan.FieldEstimatedDays)
	}
	if m.warnings != nil {
		fields = append(fields, learningplan.FieldWarnings)
	}
	if m.created_at != nil {
		fields = append(fields, learningplan.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearningPlanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learningplan.FieldGoalID:
		return m.GoalID()
	case learningplan.FieldUserID:
		return m.UserID()
	case learningplan.FieldTitle:
		return m.Title()
	case learningplan.FieldDuration:
		return m.Duration()
	case learningplan.FieldDailyMinutesBudget:
		return m.DailyMinutesBudget()
	case learningplan.FieldQuests:
		return m.Quests()
	case learningplan.FieldTotalSkills:
		return m.TotalSkills()
	case learningplan.FieldTotalMinutes:
		return m.TotalMinutes()
	case learningplan.FieldEstimatedDays:
		return m.EstimatedDays()
	case learningplan.FieldWarnings:
		return m.Warnings()
	case learningplan.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearningPlanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learningplan.FieldGoalID:
		return m.OldGoalID(ctx)
	case learningplan.FieldUserID:
		return m.OldUserID(ctx)
	case learningplan.FieldTitle:
		return m.OldTitle(ctx)
	case learningplan.FieldDuration:
		return m.OldDuration(ctx)
	case learningplan.FieldDailyMinutesBudget:
		return m.OldDailyMinutesBudget(ctx)
	case learningplan.FieldQuests:
		return m.OldQuests(ctx)
	case learningplan.FieldTotalSkills:
		return m.OldTotalSkills(ctx)
	case learningplan.FieldTotalMinutes:
		return m.OldTotalMinutes(ctx)
	case learningplan.FieldEstimatedDays:
		return m.OldEstimatedDays(ctx)
	case learningplan.FieldWarnings:
		return m.OldWarnings(ctx)
	case learningplan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearningPlan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningPlanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learningplan.FieldGoalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalID(v)
		return nil
	case learningplan.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case learningplan.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case learningplan.FieldDuration:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case learningplan.FieldDailyMinutesBudget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDailyMinutesBudget(v)
		return nil
	case learningplan.FieldQuests:
		v, ok := value.([]schema.PlanQuest)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuests(v)
		return nil
	case learningplan.FieldTotalSkills:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalSkills(v)
		return nil
	case learningplan.FieldTotalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalMinutes(v)
		return nil
	case learningplan.FieldEstimatedDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedDays(v)
		return nil
	case learningplan.FieldWarnings:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarnings(v)
		return nil
	case learningplan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearningPlan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearningPlanMutation) AddedFields() []string {
	var fields []string
	if m.adddaily_minutes_budget != nil {
		fields = append(fields, learningplan.FieldDailyMinutesBudget)
	}
	if m.addtotal_skills != nil {
		fields = append(fields, learningplan.FieldTotalSkills)
	}
	if m.addtotal_minutes != nil {
		fields = append(fields, learningplan.FieldTotalMinutes)
	}
	if m.addestimated_days != nil {
		fields = append(fields, learningplan.FieldEstimatedDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearningPlanMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learningplan.FieldDailyMinutesBudget:
		return m.AddedDailyMinutesBudget()
	case learningplan.FieldTotalSkills:
		return m.AddedTotalSkills()
	case learningplan.FieldTotalMinutes:
		return m.AddedTotalMinutes()
	case learningplan.FieldEstimatedDays:
		return m.AddedEstimatedDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningPlanMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learningplan.FieldDailyMinutesBudget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDailyMinutesBudget(v)
		return nil
	case learningplan.FieldTotalSkills:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalSkills(v)
		return nil
	case learningplan.FieldTotalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalMinutes(v)
		return nil
	case learningplan.FieldEstimatedDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedDays(v)
		return nil
	}
	return fmt.Errorf("unknown LearningPlan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearningPlanMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learningplan.FieldWarnings) {
		fields = append(fields, learningplan.FieldWarnings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearningPlanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearningPlanMutation) ClearField(name string) error {
	switch name {
	case learningplan.FieldWarnings:
		m.ClearWarnings()
		return nil
	}
	return fmt.Errorf("unknown LearningPlan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearningPlanMutation) ResetField(name string) error {
	switch name {
	case learningplan.FieldGoalID:
		m.ResetGoalID()
		return nil
	case learningplan.FieldUserID:
		m.ResetUserID()
		return nil
	case learningplan.FieldTitle:
		m.ResetTitle()
		return nil
	case learningplan.FieldDuration:
		m.ResetDuration()
		return nil
	case learningplan.FieldDailyMinutesBudget:
		m.ResetDailyMinutesBudget()
		return nil
	case learningplan.FieldQuests:
		m.ResetQuests()
		return nil
	case learningplan.FieldTotalSkills:
		m.ResetTotalSkills()
		return nil
	case learningplan.FieldTotalMinutes:
		m.ResetTotalMinutes()
		return nil
	case learningplan.FieldEstimatedDays:
		m.ResetEstimatedDays()
		return nil
	case learningplan.FieldWarnings:
		m.ResetWarnings()
		return nil
	case learningplan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LearningPlan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearningPlanMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearningPlanMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearningPlanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearningPlanMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearningPlanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearningPlanMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearningPlanMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearningPlan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearningPlanMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearningPlan edge %s", name)
}

// MasteryEventMutation represents an operation that mutates the MasteryEvent nodes in the graph.
type MasteryEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	skill_id      *string
	goal_id       *string
	from_state    *string
	to_state      *string
	trigger       *string
	drill_id      *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*MasteryEvent, error)
	predicates    []predicate.MasteryEvent
}

var _ ent.Mutation = (*MasteryEventMutation)(nil)

// masteryeventOption allows management of the mutation configuration using functional options.
type masteryeventOption func(*MasteryEventMutation)

// newMasteryEventMutation creates new mutation for the MasteryEvent entity.
func newMasteryEventMutation(c config, op Op, opts ...masteryeventOption) *MasteryEventMutation {
	m := &MasteryEventMutation{
		config:        c,
		op:            op,
		typ:           TypeMasteryEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMasteryEventID sets the ID field of the mutation.
func withMasteryEventID(id int) masteryeventOption {
	return func(m *MasteryEventMutation) {
		var (
			err   error
			once  sync.Once
			value *MasteryEvent
		)
		m.oldValue = func(ctx context.Context) (*MasteryEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MasteryEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMasteryEvent sets the old MasteryEvent of the mutation.
func withMasteryEvent(node *MasteryEvent) masteryeventOption {
	return func(m *MasteryEventMutation) {
		m.oldValue = func(context.Context) (*MasteryEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MasteryEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MasteryEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MasteryEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MasteryEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MasteryEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *MasteryEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *MasteryEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the MasteryEvent entity.
// If the MasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *MasteryEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *MasteryEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *MasteryEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *MasteryEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *MasteryEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the MasteryEvent entity.
// If the MasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *MasteryEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSkillID sets the "skill_id" field.
func (m *MasteryEventMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *MasteryEventMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the MasteryEvent entity.
// If the MasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryEventMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *MasteryEventMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetGoalID sets the "goal_id" field.
func (m *MasteryEventMutation) SetGoalID(s string) {
	m.goal_id = &s
}

// GoalID returns the value of the "goal_id" field in the mutation.
func (m *MasteryEventMutation) GoalID() (r string, exists bool) {
	v := m.goal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalID returns the old "goal_id" field's value of the MasteryEvent entity.
// If the MasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryEventMutation) OldGoalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalID: %w", err)
	}
	return oldValue.GoalID, nil
}

// ResetGoalID resets all changes to the "goal_id" field.
func (m *MasteryEventMutation) ResetGoalID() {
	m.goal_id = nil
}

// SetFromState sets the "from_state" field.
func (m *MasteryEventMutation) SetFromState(s string) {
	m.from_state = &s
}

// FromState returns the value of the "from_state" field in the mutation.
func (m *MasteryEventMutation) FromState() (r string, exists bool) {
	v := m.from_state
	if v == nil {
		return
	}
	return *v, true
}

// OldFromState returns the old "from_state" field's value of the MasteryEvent entity.
// If the MasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryEventMutation) OldFromState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromState: %w", err)
	}
	return oldValue.FromState, nil
}

// ResetFromState resets all changes to the "from_state" field.
func (m *MasteryEventMutation) ResetFromState() {
	m.from_state = nil
}

// SetToState sets the "to_state" field.
func (m *MasteryEventMutation) SetToState(s string) {
	m.to_state = &s
}

// ToState returns the value of the "to_state" field in the mutation.
func (m *MasteryEventMutation) ToState() (r string, exists bool) {
	v := m.to_state
	if v == nil {
		return
	}
	return *v, true
}

// OldToState returns the old "to_state" field's value of the MasteryEvent entity.
// If the MasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryEventMutation) OldToState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToState: %w", err)
	}
	return oldValue.ToState, nil
}

// ResetToState resets all changes to the "to_state" field.
func (m *MasteryEventMutation) ResetToState() {
	m.to_state = nil
}

// SetTrigger sets the "trigger" field.
func (m *MasteryEventMutation) SetTrigger(s string) {
	m.trigger = &s
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *MasteryEventMutation) Trigger() (r string, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the MasteryEvent entity.
// If the MasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryEventMutation) OldTrigger(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *MasteryEventMutation) ResetTrigger() {
	m.trigger = nil
}

// SetDrillID sets the "drill_id" field.
func (m *MasteryEventMutation) SetDrillID(s string) {
	m.drill_id = &s
}

// DrillID returns the value of the "drill_id" field in the mutation.
func (m *MasteryEventMutation) DrillID() (r string, exists bool) {
	v := m.drill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDrillID returns the old "drill_id" field's value of the MasteryEvent entity.
// If the MasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryEventMutation) OldDrillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrillID: %w", err)
	}
	return oldValue.DrillID, nil
}

// ClearDrillID clears the value of the "drill_id" field.
func (m *MasteryEventMutation) ClearDrillID() {
	m.drill_id = nil
	m.clearedFields[masteryevent.FieldDrillID] = struct{}{}
}

// DrillIDCleared returns if the "drill_id" field was cleared in this mutation.
func (m *MasteryEventMutation) DrillIDCleared() bool {
	_, ok := m.clearedFields[masteryevent.FieldDrillID]
	return ok
}

// ResetDrillID resets all changes to the "drill_id" field.
func (m *MasteryEventMutation) ResetDrillID() {
	m.drill_id = nil
	delete(m.clearedFields, masteryevent.FieldDrillID)
}

// Where appends a list predicates to the MasteryEventMutation builder.
func (m *MasteryEventMutation) Where(ps ...predicate.MasteryEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MasteryEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MasteryEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MasteryEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MasteryEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MasteryEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MasteryEvent).
func (m *MasteryEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MasteryEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, masteryevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, masteryevent.FieldTimestamp)
	}
	if m.skill_id != nil {
		fields = append(fields, masteryevent.FieldSkillID)
	}
	if m.goal_id != nil {
		fields = append(fields, masteryevent.FieldGoalID)
	}
	if m.from_state != nil {
		fields = append(fields, masteryevent.FieldFromState)
	}
	if m.to_state != nil {
		fields = append(fields, masteryevent.FieldToState)
	}
	if m.trigger != nil {
		fields = append(fields, masteryevent.FieldTrigger)
	}
	if m.drill_id != nil {
		fields = append(fields, masteryevent.FieldDrillID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MasteryEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case masteryevent.FieldSequence:
		return m.Sequence()
	case masteryevent.FieldTimestamp:
		return m.Timestamp()
	case masteryevent.FieldSkillID:
		return m.SkillID()
	case masteryevent.FieldGoalID:
		return m.GoalID()
	case masteryevent.FieldFromState:
		return m.FromState()
	case masteryevent.FieldToState:
		return m.ToState()
	case masteryevent.FieldTrigger:
		return m.Trigger()
	case masteryevent.FieldDrillID:
		return m.DrillID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MasteryEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case masteryevent.FieldSequence:
		return m.OldSequence(ctx)
	case masteryevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case masteryevent.FieldSkillID:
		return m.OldSkillID(ctx)
	case masteryevent.FieldGoalID:
		return m.OldGoalID(ctx)
	case masteryevent.FieldFromState:
		return m.OldFromState(ctx)
	case masteryevent.FieldToState:
		return m.OldToState(ctx)
	case masteryevent.FieldTrigger:
		return m.OldTrigger(ctx)
	case masteryevent.FieldDrillID:
		return m.OldDrillID(ctx)
	}
	return nil, fmt.Errorf("unknown MasteryEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case masteryevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case masteryevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case masteryevent.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case masteryevent.FieldGoalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalID(v)
		return nil
	case masteryevent.FieldFromState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromState(v)
		return nil
	case masteryevent.FieldToState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToState(v)
		return nil
	case masteryevent.FieldTrigger:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	case masteryevent.FieldDrillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrillID(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MasteryEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, masteryevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MasteryEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case masteryevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case masteryevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MasteryEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(masteryevent.FieldDrillID) {
		fields = append(fields, masteryevent.FieldDrillID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MasteryEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MasteryEventMutation) ClearField(name string) error {
	switch name {
	case masteryevent.FieldDrillID:
		m.ClearDrillID()
		return nil
	}
	return fmt.Errorf("unknown MasteryEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MasteryEventMutation) ResetField(name string) error {
	switch name {
	case masteryevent.FieldSequence:
		m.ResetSequence()
		return nil
	case masteryevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case masteryevent.FieldSkillID:
		m.ResetSkillID()
		return nil
	case masteryevent.FieldGoalID:
		m.ResetGoalID()
		return nil
	case masteryevent.FieldFromState:
		m.ResetFromState()
		return nil
	case masteryevent.FieldToState:
		m.ResetToState()
		return nil
	case masteryevent.FieldTrigger:
		m.ResetTrigger()
		return nil
	case masteryevent.FieldDrillID:
		m.ResetDrillID()
		return nil
	}
	return fmt.Errorf("unknown MasteryEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MasteryEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MasteryEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MasteryEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MasteryEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MasteryEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MasteryEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MasteryEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MasteryEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MasteryEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MasteryEvent edge %s", name)
}

// QuestMilestoneMutation represents an operation that mutates the QuestMilestone nodes in the graph.
type QuestMilestoneMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	quest_id                    *string
	goal_id                     *string
	title                       *string
	required_mastery_percent    *int
	addrequired_mastery_percent *int
	acceptance_criteria         *[]string
	appendacceptance_criteria   []string
	status                      *string
	completed_at                *time.Time
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*QuestMilestone, error)
	predicates                  []predicate.QuestMilestone
}

var _ ent.Mutation = (*QuestMilestoneMutation)(nil)

// questmilestoneOption allows management of the mutation configuration using functional options.
type questmilestoneOption func(*QuestMilestoneMutation)

// newQuestMilestoneMutation creates new mutation for the QuestMilestone entity.
func newQuestMilestoneMutation(c config, op Op, opts ...questmilestoneOption) *QuestMilestoneMutation {
	m := &QuestMilestoneMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestMilestone,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestMilestoneID sets the ID field of the mutation.
func withQuestMilestoneID(id string) questmilestoneOption {
	return func(m *QuestMilestoneMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestMilestone
		)
		m.oldValue = func(ctx context.Context) (*QuestMilestone, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestMilestone.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestMilestone sets the old QuestMilestone of the mutation.
func withQuestMilestone(node *QuestMilestone) questmilestoneOption {
	return func(m *QuestMilestoneMutation) {
		m.oldValue = func(context.Context) (*QuestMilestone, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestMilestoneMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestMilestoneMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QuestMilestone entities.
func (m *QuestMilestoneMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestMilestoneMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestMilestoneMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestMilestone.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuestID sets the "quest_id" field.
func (m *QuestMilestoneMutation) SetQuestID(s string) {
	m.quest_id = &s
}

// QuestID returns the value of the "quest_id" field in the mutation.
func (m *QuestMilestoneMutation) QuestID() (r string, exists bool) {
	v := m.quest_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestID returns the old "quest_id" field's value of the QuestMilestone entity.
// If the QuestMilestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestMilestoneMutation) OldQuestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestID: %w", err)
	}
	return oldValue.QuestID, nil
}

// ResetQuestID resets all changes to the "quest_id" field.
func (m *QuestMilestoneMutation) ResetQuestID() {
	m.quest_id = nil
}

// SetGoalID sets the "goal_id" field.
func (m *QuestMilestoneMutation) SetGoalID(s string) {
	m.goal_id = &s
}

// GoalID returns the value of the "goal_id" field in the mutation.
func (m *QuestMilestoneMutation) GoalID() (r string, exists bool) {
	v := m.goal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalID returns the old "goal_id" field's value of the QuestMilestone entity.
// If the QuestMilestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestMilestoneMutation) OldGoalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalID: %w", err)
	}
	return oldValue.GoalID, nil
}

// ResetGoalID resets all changes to the "goal_id" field.
func (m *QuestMilestoneMutation) ResetGoalID() {
	m.goal_id = nil
}

// SetTitle sets the "title" field.
func (m *QuestMilestoneMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *QuestMilestoneMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the QuestMilestone entity.
// If the QuestMilestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestMilestoneMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *QuestMilestoneMutation) ResetTitle() {
	m.title = nil
}

// SetRequiredMasteryPercent sets the "required_mastery_percent" field.
func (m *QuestMilestoneMutation) SetRequiredMasteryPercent(i int) {
	m.required_mastery_percent = &i
	m.addrequired_mastery_percent = nil
}

// RequiredMasteryPercent returns the value of the "required_mastery_percent" field in the mutation.
func (m *QuestMilestoneMutation) RequiredMasteryPercent() (r int, exists bool) {
	v := m.required_mastery_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredMasteryPercent returns the old "required_mastery_percent" field's value of the QuestMilestone entity.
// If the QuestMilestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestMilestoneMutation) OldRequiredMasteryPercent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredMasteryPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredMasteryPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredMasteryPercent: %w", err)
	}
	return oldValue.RequiredMasteryPercent, nil
}

// AddRequiredMasteryPercent adds i to the "required_mastery_percent" field.
func (m *QuestMilestoneMutation) AddRequiredMasteryPercent(i int) {
	if m.addrequired_mastery_percent != nil {
		*m.addrequired_mastery_percent += i
	} else {
		m.addrequired_mastery_percent = &i
	}
}

// AddedRequiredMasteryPercent returns the value that was added to the "required_mastery_percent" field in this mutation.
func (m *QuestMilestoneMutation) AddedRequiredMasteryPercent() (r int, exists bool) {
	v := m.addrequired_mastery_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequiredMasteryPercent resets all changes to the "required_mastery_percent" field.
func (m *QuestMilestoneMutation) ResetRequiredMasteryPercent() {
	m.required_mastery_percent = nil
	m.addrequired_mastery_percent = nil
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (m *QuestMilestoneMutation) SetAcceptanceCriteria(s []string) {
	m.acceptance_criteria = &s
	m.appendacceptance_criteria = nil
}

// AcceptanceCriteria returns the value of the "acceptance_criteria" field in the mutation.
func (m *QuestMilestoneMutation) AcceptanceCriteria() (r []string, exists bool) {
	v := m.acceptance_criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldAcceptanceCriteria returns the old "acceptance_criteria" field's value of the QuestMilestone entity.
// If the QuestMilestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestMilestoneMutation) OldAcceptanceCriteria(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcceptanceCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcceptanceCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcceptanceCriteria: %w", err)
	}
	return oldValue.AcceptanceCriteria, nil
}

// AppendAcceptanceCriteria adds s to the "acceptance_criteria" field.
func (m *QuestMilestoneMutation) AppendAcceptanceCriteria(s []string) {
	m.appendacceptance_criteria = append(m.appendacceptance_criteria, s...)
}

// AppendedAcceptanceCriteria returns the list of values that were appended to the "acceptance_criteria" field in this mutation.
func (m *QuestMilestoneMutation) AppendedAcceptanceCriteria() ([]string, bool) {
	if len(m.appendacceptance_criteria) == 0 {
		return nil, false
	}
	return m.appendacceptance_criteria, true
}

// ResetAcceptanceCriteria resets all changes to the "acceptance_criteria" field.
func (m *QuestMilestoneMutation) ResetAcceptanceCriteria() {
	m.acceptance_criteria = nil
	m.appendacceptance_criteria = nil
}

// SetStatus sets the "status" field.
func (m *QuestMilestoneMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *QuestMilestoneMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QuestMilestone entity.
// If the QuestMilestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestMilestoneMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *QuestMilestoneMutation) ResetStatus() {
	m.status = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *QuestMilestoneMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *QuestMilestoneMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the QuestMilestone entity.
// If the QuestMilestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestMilestoneMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *QuestMilestoneMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[questmilestone.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *QuestMilestoneMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[questmilestone.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *QuestMilestoneMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, questmilestone.FieldCompletedAt)
}

// Where appends a list predicates to the QuestMilestoneMutation builder.
func (m *QuestMilestoneMutation) Where(ps ...predicate.QuestMilestone) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestMilestoneMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestMilestoneMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestMilestone, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestMilestoneMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestMilestoneMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestMilestone).
func (m *QuestMilestoneMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestMilestoneMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.quest_id != nil {
		fields = append(fields, questmilestone.FieldQuestID)
	}
	if m.goal_id != nil {
		fields = append(fields, questmilestone.FieldGoalID)
	}
	if m.title != nil {
		fields = append(fields, questmilestone.FieldTitle)
	}
	if m.required_mastery_percent != nil {
		fields = append(fields, questmilestone.FieldRequiredMasteryPercent)
	}
	if m.acceptance_criteria != nil {
		fields = append(fields, questmilestone.FieldAcceptanceCriteria)
	}
	if m.status != nil {
		fields = append(fields, questmilestone.FieldStatus)
	}
	if m.completed_at != nil {
		fields = append(fields, questmilestone.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestMilestoneMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questmilestone.FieldQuestID:
		return m.QuestID()
	case questmilestone.FieldGoalID:
		return m.GoalID()
	case questmilestone.FieldTitle:
		return m.Title()
	case questmilestone.FieldRequiredMasteryPercent:
		return m.RequiredMasteryPercent()
	case questmilestone.FieldAcceptanceCriteria:
		return m.AcceptanceCriteria()
	case questmilestone.FieldStatus:
		return m.Status()
	case questmilestone.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestMilestoneMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questmilestone.FieldQuestID:
		return m.OldQuestID(ctx)
	case questmilestone.FieldGoalID:
		return m.OldGoalID(ctx)
	case questmilestone.FieldTitle:
		return m.OldTitle(ctx)
	case questmilestone.FieldRequiredMasteryPercent:
		return m.OldRequiredMasteryPercent(ctx)
	case questmilestone.FieldAcceptanceCriteria:
		return m.OldAcceptanceCriteria(ctx)
	case questmilestone.FieldStatus:
		return m.OldStatus(ctx)
	case questmilestone.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuestMilestone field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestMilestoneMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questmilestone.FieldQuestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestID(v)
		return nil
	case questmilestone.FieldGoalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalID(v)
		return nil
	case questmilestone.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case questmilestone.FieldRequiredMasteryPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredMasteryPercent(v)
		return nil
	case questmilestone.FieldAcceptanceCriteria:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcceptanceCriteria(v)
		return nil
	case questmilestone.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case questmilestone.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuestMilestone field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestMilestoneMutation) AddedFields() []string {
	var fields []string
	if m.addrequired_mastery_percent != nil {
		fields = append(fields, questmilestone.FieldRequiredMasteryPercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestMilestoneMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case questmilestone.FieldRequiredMasteryPercent:
		return m.AddedRequiredMasteryPercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestMilestoneMutation) AddField(name string, value ent.Value) error {
	switch name {
	case questmilestone.FieldRequiredMasteryPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequiredMasteryPercent(v)
		return nil
	}
	return fmt.Errorf("unknown QuestMilestone numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestMilestoneMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(questmilestone.FieldCompletedAt) {
		fields = append(fields, questmilestone.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestMilestoneMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestMilestoneMutation) ClearField(name string) error {
	switch name {
	case questmilestone.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown QuestMilestone nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestMilestoneMutation) ResetField(name string) error {
	switch name {
	case questmilestone.FieldQuestID:
		m.ResetQuestID()
		return nil
	case questmilestone.FieldGoalID:
		m.ResetGoalID()
		return nil
	case questmilestone.FieldTitle:
		m.ResetTitle()
		return nil
	case questmilestone.FieldRequiredMasteryPercent:
		m.ResetRequiredMasteryPercent()
		return nil
	case questmilestone.FieldAcceptanceCriteria:
		m.ResetAcceptanceCriteria()
		return nil
	case questmilestone.FieldStatus:
		m.ResetStatus()
		return nil
	case questmilestone.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown QuestMilestone field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestMilestoneMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestMilestoneMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestMilestoneMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestMilestoneMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestMilestoneMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestMilestoneMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestMilestoneMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuestMilestone unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestMilestoneMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuestMilestone edge %s", name)
}

// SkillMutation represents an operation that mutates the Skill nodes in the graph.
type SkillMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	quest_id               *string
	goal_id                *string
	user_id                *string
	title                  *string
	action                 *string
	success_signal         *string
	locked_variables       *[]string
	appendlocked_variables []string
	estimated_minutes      *int
	addestimated_minutes   *int
	skill_type             *string
	order_index            *int
	addorder_index         *int
	stage_level            *string
	prerequisites          *[]string
	appendprerequisites    []string
	components             *[]string
	appendcomponents       []string
	designed_failure       *string
	consequence            *string
	recovery               *string
	transfer_scenario      *string
	mastery                *string
	status                 *string
	pass_count             *int
	addpass_count          *int
	fail_count             *int
	addfail_count          *int
	consecutive_passes     *int
	addconsecutive_passes  *int
	needs_review           *bool
	last_practiced_at      *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Skill, error)
	predicates             []predicate.Skill
}

var _ ent.Mutation = (*SkillMutation)(nil)

// skillOption allows management of the mutation configuration using functional options.
type skillOption func(*SkillMutation)

// newSkillMutation creates new mutation for the Skill entity.
func newSkillMutation(c config, op Op, opts ...skillOption) *SkillMutation {
	m := &SkillMutation{
		config:        c,
		op:            op,
		typ:           TypeSkill,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSkillID sets the ID field of the mutation.
func withSkillID(id string) skillOption {
	return func(m *SkillMutation) {
		var (
			err   error
			once  sync.Once
			value *Skill
		)
		m.oldValue = func(ctx context.Context) (*Skill, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Skill.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSkill sets the old Skill of the mutation.
func withSkill(node *Skill) skillOption {
	return func(m *SkillMutation) {
		m.oldValue = func(context.Context) (*Skill, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SkillMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SkillMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Skill entities.
func (m *SkillMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SkillMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SkillMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Skill.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuestID sets the "quest_id" field.
func (m *SkillMutation) SetQuestID(s string) {
	m.quest_id = &s
}

// QuestID returns the value of the "quest_id" field in the mutation.
func (m *SkillMutation) QuestID() (r string, exists bool) {
	v := m.quest_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestID returns the old "quest_id" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldQuestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestID: %w", err)
	}
	return oldValue.QuestID, nil
}

// ResetQuestID resets all changes to the "quest_id" field.
func (m *SkillMutation) ResetQuestID() {
	m.quest_id = nil
}

// SetGoalID sets the "goal_id" field.
func (m *SkillMutation) SetGoalID(s string) {
	m.goal_id = &s
}

// GoalID returns the value of the "goal_id" field in the mutation.
func (m *SkillMutation) GoalID() (r string, exists bool) {
	v := m.goal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalID returns the old "goal_id" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldGoalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalID: %w", err)
	}
	return oldValue.GoalID, nil
}

// ResetGoalID resets all changes to the "goal_id" field.
func (m *SkillMutation) ResetGoalID() {
	m.goal_id = nil
}

// SetUserID sets the "user_id" field.
func (m *SkillMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SkillMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SkillMutation) ResetUserID() {
	m.user_id = nil
}

// SetTitle sets the "title" field.
func (m *SkillMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SkillMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SkillMutation) ResetTitle() {
	m.title = nil
}

// SetAction sets the "action" field.
func (m *SkillMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *SkillMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *SkillMutation) ResetAction() {
	m.action = nil
}

// SetSuccessSignal sets the "success_signal" field.
func (m *SkillMutation) SetSuccessSignal(s string) {
	m.success_signal = &s
}

// SuccessSignal returns the value of the "success_signal" field in the mutation.
func (m *SkillMutation) SuccessSignal() (r string, exists bool) {
	v := m.success_signal
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessSignal returns the old "success_signal" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldSuccessSignal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessSignal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessSignal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessSignal: %w", err)
	}
	return oldValue.SuccessSignal, nil
}

// ResetSuccessSignal resets all changes to the "success_signal" field.
func (m *SkillMutation) ResetSuccessSignal() {
	m.success_signal = nil
}

// SetLockedVariables sets the "locked_variables" field.
func (m *SkillMutation) SetLockedVariables(s []string) {
	m.locked_variables = &s
	m.appendlocked_variables = nil
}

// LockedVariables returns the value of the "locked_variables" field in the mutation.
func (m *SkillMutation) LockedVariables() (r []string, exists bool) {
	v := m.locked_variables
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedVariables returns the old "locked_variables" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldLockedVariables(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedVariables is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedVariables requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedVariables: %w", err)
	}
	return oldValue.LockedVariables, nil
}

// AppendLockedVariables adds s to the "locked_variables" field.
func (m *SkillMutation) AppendLockedVariables(s []string) {
	m.appendlocked_variables = append(m.appendlocked_variables, s...)
}

// AppendedLockedVariables returns the list of values that were appended to the "locked_variables" field in this mutation.
func (m *SkillMutation) AppendedLockedVariables() ([]string, bool) {
	if len(m.appendlocked_variables) == 0 {
		return nil, false
	}
	return m.appendlocked_variables, true
}

// ResetLockedVariables resets all changes to the "locked_variables" field.
func (m *SkillMutation) ResetLockedVariables() {
	m.locked_variables = nil
	m.appendlocked_variables = nil
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (m *SkillMutation) SetEstimatedMinutes(i int) {
	m.estimated_minutes = &i
	m.addestimated_minutes = nil
}

// EstimatedMinutes returns the value of the "estimated_minutes" field in the mutation.
func (m *SkillMutation) EstimatedMinutes() (r int, exists bool) {
	v := m.estimated_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedMinutes returns the old "estimated_minutes" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldEstimatedMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedMinutes: %w", err)
	}
	return oldValue.EstimatedMinutes, nil
}

// AddEstimatedMinutes adds i to the "estimated_minutes" field.
func (m *SkillMutation) AddEstimatedMinutes(i int) {
	if m.addestimated_minutes != nil {
		*m.addestimated_minutes += i
	} else {
		m.addestimated_minutes = &i
	}
}

// AddedEstimatedMinutes returns the value that was added to the "estimated_minutes" field in this mutation.
func (m *SkillMutation) AddedEstimatedMinutes() (r int, exists bool) {
	v := m.addestimated_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedMinutes resets all changes to the "estimated_minutes" field.
func (m *SkillMutation) ResetEstimatedMinutes() {
	m.estimated_minutes = nil
	m.addestimated_minutes = nil
}

// SetSkillType sets the "skill_type" field.
func (m *SkillMutation) SetSkillType(s string) {
	m.skill_type = &s
}

// SkillType returns the value of the "skill_type" field in the mutation.
func (m *SkillMutation) SkillType() (r string, exists bool) {
	v := m.skill_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillType returns the old "skill_type" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldSkillType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillType: %w", err)
	}
	return oldValue.SkillType, nil
}

// ResetSkillType resets all changes to the "skill_type" field.
func (m *SkillMutation) ResetSkillType() {
	m.skill_type = nil
}

// SetOrderIndex sets the "order_index" field.
func (m *SkillMutation) SetOrderIndex(i int) {
	m.order_index = &i
	m.addorder_index = nil
}

// OrderIndex returns the value of the "order_index" field in the mutation.
func (m *SkillMutation) OrderIndex() (r int, exists bool) {
	v := m.order_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderIndex returns the old "order_index" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldOrderIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderIndex: %w", err)
	}
	return oldValue.OrderIndex, nil
}

// AddOrderIndex adds i to the "order_index" field.
func (m *SkillMutation) AddOrderIndex(i int) {
	if m.addorder_index != nil {
		*m.addorder_index += i
	} else {
		m.addorder_index = &i
	}
}

// AddedOrderIndex returns the value that was added to the "order_index" field in this mutation.
func (m *SkillMutation) AddedOrderIndex() (r int, exists bool) {
	v := m.addorder_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderIndex resets all changes to the "order_index" field.
func (m *SkillMutation) ResetOrderIndex() {
	m.order_index = nil
	m.addorder_index = nil
}

// SetStageLevel sets the "stage_level" field.
func (m *SkillMutation) SetStageLevel(s string) {
	m.stage_level = &s
}

// StageLevel returns the value of the "stage_level" field in the mutation.
func (m *SkillMutation) StageLevel() (r string, exists bool) {
	v := m.stage_level
	if v == nil {
		return
	}
	return *v, true
}

// OldStageLevel returns the old "stage_level" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldStageLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageLevel: %w", err)
	}
	return oldValue.StageLevel, nil
}

// ClearStageLevel clears the value of the "stage_level" field.
func (m *SkillMutation) ClearStageLevel() {
	m.stage_level = nil
	m.clearedFields[skill.FieldStageLevel] = struct{}{}
}

// StageLevelCleared returns if the "stage_level" field was cleared in this mutation.
func (m *SkillMutation) StageLevelCleared() bool {
	_, ok := m.clearedFields[skill.FieldStageLevel]
	return ok
}

// ResetStageLevel resets all changes to the "stage_level" field.
func (m *SkillMutation) ResetStageLevel() {
	m.stage_level = nil
	delete(m.clearedFields, skill.FieldStageLevel)
}

// SetPrerequisites sets the "prerequisites" field.
func (m *SkillMutation) SetPrerequisites(s []string) {
	m.prerequisites = &s
	m.appendprerequisites = nil
}

// Prerequisites returns the value of the "prerequisites" field in the mutation.
func (m *SkillMutation) Prerequisites() (r []string, exists bool) {
	v := m.prerequisites
	if v == nil {
		return
	}
	return *v, true
}

// OldPrerequisites returns the old "prerequisites" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldPrerequisites(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrerequisites is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrerequisites requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrerequisites: %w", err)
	}
	return oldValue.Prerequisites, nil
}

// AppendPrerequisites adds s to the "prerequisites" field.
func (m *SkillMutation) AppendPrerequisites(s []string) {
	m.appendprerequisites = append(m.appendprerequisites, s...)
}

// AppendedPrerequisites returns the list of values that were appended to the "prerequisites" field in this mutation.
func (m *SkillMutation) AppendedPrerequisites() ([]string, bool) {
	if len(m.appendprerequisites) == 0 {
		return nil, false
	}
	return m.appendprerequisites, true
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (m *SkillMutation) ClearPrerequisites() {
	m.prerequisites = nil
	m.appendprerequisites = nil
	m.clearedFields[skill.FieldPrerequisites] = struct{}{}
}

// PrerequisitesCleared returns if the "prerequisites" field was cleared in this mutation.
func (m *SkillMutation) PrerequisitesCleared() bool {
	_, ok := m.clearedFields[skill.FieldPrerequisites]
	return ok
}

// ResetPrerequisites resets all changes to the "prerequisites" field.
func (m *SkillMutation) ResetPrerequisites() {
	m.prerequisites = nil
	m.appendprerequisites = nil
	delete(m.clearedFields, skill.FieldPrerequisites)
}

// SetComponents sets the "components" field.
func (m *SkillMutation) SetComponents(s []string) {
	m.components = &s
	m.appendcomponents = nil
}

// Components returns the value of the "components" field in the mutation.
func (m *SkillMutation) Components() (r []string, exists bool) {
	v := m.components
	if v == nil {
		return
	}
	return *v, true
}

// OldComponents returns the old "components" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldComponents(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComponents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComponents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComponents: %w", err)
	}
	return oldValue.Components, nil
}

// AppendComponents adds s to the "components" field.
func (m *SkillMutation) AppendComponents(s []string) {
	m.appendcomponents = append(m.appendcomponents, s...)
}

// AppendedComponents returns the list of values that were appended to the "components" field in this mutation.
func (m *SkillMutation) AppendedComponents() ([]string, bool) {
	if len(m.appendcomponents) == 0 {
		return nil, false
	}
	return m.appendcomponents, true
}

// ClearComponents clears the value of the "components" field.
func (m *SkillMutation) ClearComponents() {
	m.components = nil
	m.appendcomponents = nil
	m.clearedFields[skill.FieldComponents] = struct{}{}
}

// ComponentsCleared returns if the "components" field was cleared in this mutation.
func (m *SkillMutation) ComponentsCleared() bool {
	_, ok := m.clearedFields[skill.FieldComponents]
	return ok
}

// ResetComponents resets all changes to the "components" field.
func (m *SkillMutation) ResetComponents() {
	m.components = nil
	m.appendcomponents = nil
	delete(m.clearedFields, skill.FieldComponents)
}

// SetDesignedFailure sets the "designed_failure" field.
func (m *SkillMutation) SetDesignedFailure(s string) {
	m.designed_failure = &s
}

// DesignedFailure returns the value of the "designed_failure" field in the mutation.
func (m *SkillMutation) DesignedFailure() (r string, exists bool) {
	v := m.designed_failure
	if v == nil {
		return
	}
	return *v, true
}

// OldDesignedFailure returns the old "designed_failure" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldDesignedFailure(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDesignedFailure is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDesignedFailure requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDesignedFailure: %w", err)
	}
	return oldValue.DesignedFailure, nil
}

// ClearDesignedFailure clears the value of the "designed_failure" field.
func (m *SkillMutation) ClearDesignedFailure() {
	m.designed_failure = nil
	m.clearedFields[skill.FieldDesignedFailure] = struct{}{}
}

// DesignedFailureCleared returns if the "designed_failure" field was cleared in this mutation.
func (m *SkillMutation) DesignedFailureCleared() bool {
	_, ok := m.clearedFields[skill.FieldDesignedFailure]
	return ok
}

// ResetDesignedFailure resets all changes to the "designed_failure" field.
func (m *SkillMutation) ResetDesignedFailure() {
	m.designed_failure = nil
	delete(m.clearedFields, skill.FieldDesignedFailure)
}

// SetConsequence sets the "consequence" field.
func (m *SkillMutation) SetConsequence(s string) {
	m.consequence = &s
}

// Consequence returns the value of the "consequence" field in the mutation.
func (m *SkillMutation) Consequence() (r string, exists bool) {
	v := m.consequence
	if v == nil {
		return
	}
	return *v, true
}

// OldConsequence returns the old "consequence" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldConsequence(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsequence: %w", err)
	}
	return oldValue.Consequence, nil
}

// ClearConsequence clears the value of the "consequence" field.
func (m *SkillMutation) ClearConsequence() {
	m.consequence = nil
	m.clearedFields[skill.FieldConsequence] = struct{}{}
}

// ConsequenceCleared returns if the "consequence" field was cleared in this mutation.
func (m *SkillMutation) ConsequenceCleared() bool {
	_, ok := m.clearedFields[skill.FieldConsequence]
	return ok
}

// ResetConsequence resets all changes to the "consequence" field.
func (m *SkillMutation) ResetConsequence() {
	m.consequence = nil
	delete(m.clearedFields, skill.FieldConsequence)
}

// SetRecovery sets the "recovery" field.
func (m *SkillMutation) SetRecovery(s string) {
	m.recovery = &s
}

// Recovery returns the value of the "recovery" field in the mutation.
func (m *SkillMutation) Recovery() (r string, exists bool) {
	v := m.recovery
	if v == nil {
		return
	}
	return *v, true
}

// OldRecovery returns the old "recovery" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldRecovery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecovery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecovery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecovery: %w", err)
	}
	return oldValue.Recovery, nil
}

// ClearRecovery clears the value of the "recovery" field.
func (m *SkillMutation) ClearRecovery() {
	m.recovery = nil
	m.clearedFields[skill.FieldRecovery] = struct{}{}
}

// RecoveryCleared returns if the "recovery" field was cleared in this mutation.
func (m *SkillMutation) RecoveryCleared() bool {
	_, ok := m.clearedFields[skill.FieldRecovery]
	return ok
}

// ResetRecovery resets all changes to the "recovery" field.
func (m *SkillMutation) ResetRecovery() {
	m.recovery = nil
	delete(m.clearedFields, skill.FieldRecovery)
}

// SetTransferScenario sets the "transfer_scenario" field.
func (m *SkillMutation) SetTransferScenario(s string) {
	m.transfer_scenario = &s
}

// TransferScenario returns the value of the "transfer_scenario" field in the mutation.
func (m *SkillMutation) TransferScenario() (r string, exists bool) {
	v := m.transfer_scenario
	if v == nil {
		return
	}
	return *v, true
}

// OldTransferScenario returns the old "transfer_scenario" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldTransferScenario(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransferScenario is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransferScenario requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransferScenario: %w", err)
	}
	return oldValue.TransferScenario, nil
}

// ClearTransferScenario clears the value of the "transfer_scenario" field.
func (m *SkillMutation) ClearTransferScenario() {
	m.transfer_scenario = nil
	m.clearedFields[skill.FieldTransferScenario] = struct{}{}
}

// TransferScenarioCleared returns if the "transfer_scenario" field was cleared in this mutation.
func (m *SkillMutation) TransferScenarioCleared() bool {
	_, ok := m.clearedFields[skill.FieldTransferScenario]
	return ok
}

// ResetTransferScenario resets all changes to the "transfer_scenario" field.
func (m *SkillMutation) ResetTransferScenario() {
	m.transfer_scenario = nil
	delete(m.clearedFields, skill.FieldTransferScenario)
}

// SetMastery sets the "mastery" field.
func (m *SkillMutation) SetMastery(s string) {
	m.mastery = &s
}

// Mastery returns the value of the "mastery" field in the mutation.
func (m *SkillMutation) Mastery() (r string, exists bool) {
	v := m.mastery
	if v == nil {
		return
	}
	return *v, true
}

// OldMastery returns the old "mastery" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldMastery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMastery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMastery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMastery: %w", err)
	}
	return oldValue.Mastery, nil
}

// ResetMastery resets all changes to the "mastery" field.
func (m *SkillMutation) ResetMastery() {
	m.mastery = nil
}

// SetStatus sets the "status" field.
func (m *SkillMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SkillMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SkillMutation) ResetStatus() {
	m.status = nil
}

// SetPassCount sets the "pass_count" field.
func (m *SkillMutation) SetPassCount(i int) {
	m.pass_count = &i
	m.addpass_count = nil
}

// PassCount returns the value of the "pass_count" field in the mutation.
func (m *SkillMutation) PassCount() (r int, exists bool) {
	v := m.pass_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPassCount returns the old "pass_count" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldPassCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassCount: %w", err)
	}
	return oldValue.PassCount, nil
}

// AddPassCount adds i to the "pass_count" field.
func (m *SkillMutation) AddPassCount(i int) {
	if m.addpass_count != nil {
		*m.addpass_count += i
	} else {
		m.addpass_count = &i
	}
}

// AddedPassCount returns the value that was added to the "pass_count" field in this mutation.
func (m *SkillMutation) AddedPassCount() (r int, exists bool) {
	v := m.addpass_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPassCount resets all changes to the "pass_count" field.
func (m *SkillMutation) ResetPassCount() {
	m.pass_count = nil
	m.addpass_count = nil
}

// SetFailCount sets the "fail_count" field.
func (m *SkillMutation) SetFailCount(i int) {
	m.fail_count = &i
	m.addfail_count = nil
}

// FailCount returns the value of the "fail_count" field in the mutation.
func (m *SkillMutation) FailCount() (r int, exists bool) {
	v := m.fail_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailCount returns the old "fail_count" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldFailCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailCount: %w", err)
	}
	return oldValue.FailCount, nil
}

// AddFailCount adds i to the "fail_count" field.
func (m *SkillMutation) AddFailCount(i int) {
	if m.addfail_count != nil {
		*m.addfail_count += i
	} else {
		m.addfail_count = &i
	}
}

// AddedFailCount returns the value that was added to the "fail_count" field in this mutation.
func (m *SkillMutation) AddedFailCount() (r int, exists bool) {
	v := m.addfail_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailCount resets all changes to the "fail_count" field.
func (m *SkillMutation) ResetFailCount() {
	m.fail_count = nil
	m.addfail_count = nil
}

// SetConsecutivePasses sets the "consecutive_passes" field.
func (m *SkillMutation) SetConsecutivePasses(i int) {
	m.consecutive_passes = &i
	m.addconsecutive_passes = nil
}

// ConsecutivePasses returns the value of the "consecutive_passes" field in the mutation.
func (m *SkillMutation) ConsecutivePasses() (r int, exists bool) {
	v := m.consecutive_passes
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutivePasses returns the old "consecutive_passes" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldConsecutivePasses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutivePasses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutivePasses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutivePasses: %w", err)
	}
	return oldValue.ConsecutivePasses, nil
}

// AddConsecutivePasses adds i to the "consecutive_passes" field.
func (m *SkillMutation) AddConsecutivePasses(i int) {
	if m.addconsecutive_passes != nil {
		*m.addconsecutive_passes += i
	} else {
		m.addconsecutive_passes = &i
	}
}

// AddedConsecutivePasses returns the value that was added to the "consecutive_passes" field in this mutation.
func (m *SkillMutation) AddedConsecutivePasses() (r int, exists bool) {
	v := m.addconsecutive_passes
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutivePasses resets all changes to the "consecutive_passes" field.
func (m *SkillMutation) ResetConsecutivePasses() {
	m.consecutive_passes = nil
	m.addconsecutive_passes = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *SkillMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *SkillMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *SkillMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (m *SkillMutation) SetLastPracticedAt(t time.Time) {
	m.last_practiced_at = &t
}

// LastPracticedAt returns the value of the "last_practiced_at" field in the mutation.
func (m *SkillMutation) LastPracticedAt() (r time.Time, exists bool) {
	v := m.last_practiced_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPracticedAt returns the old "last_practiced_at" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldLastPracticedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPracticedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPracticedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPracticedAt: %w", err)
	}
	return oldValue.LastPracticedAt, nil
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (m *SkillMutation) ClearLastPracticedAt() {
	m.last_practiced_at = nil
	m.clearedFields[skill.FieldLastPracticedAt] = struct{}{}
}

// LastPracticedAtCleared returns if the "last_practiced_at" field was cleared in this mutation.
func (m *SkillMutation) LastPracticedAtCleared() bool {
	_, ok := m.clearedFields[skill.FieldLastPracticedAt]
	return ok
}

// ResetLastPracticedAt resets all changes to the "last_practiced_at" field.
func (m *SkillMutation) ResetLastPracticedAt() {
	m.last_practiced_at = nil
	delete(m.clearedFields, skill.FieldLastPracticedAt)
}

// Where appends a list predicates to the SkillMutation builder.
func (m *SkillMutation) Where(ps ...predicate.Skill) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SkillMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SkillMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Skill, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SkillMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SkillMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Skill).
func (m *SkillMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SkillMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.quest_id != nil {
		fields = append(fields, skill.FieldQuestID)
	}
	if m.goal_id != nil {
		fields = append(fields, skill.FieldGoalID)
	}
	if m.user_id != nil {
		fields = append(fields, skill.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, skill.FieldTitle)
	}
	if m.action != nil {
		fields = append(fields, skill.FieldAction)
	}
	if m.success_signal != nil {
		fields = append(fields, skill.FieldSuccessSignal)
	}
	if m.locked_variables != nil {
		fields = append(fields, skill.FieldLockedVariables)
	}
	if m.estimated_minutes != nil {
		fields = append(fields, skill.FieldEstimatedMinutes)
	}
	if m.skill_type != nil {
		fields = append(fields, skill.FieldSkillType)
	}
	if m.order_index != nil {
		fields = append(fields, skill.FieldOrderIndex)
	}
	if m.stage_level != nil {
		fields = append(fields, skill.FieldStageLevel)
	}
	if m.prerequisites != nil {
		fields = append(fields, skill.FieldPrerequisites)
	}
	if m.components != nil {
		fields = append(fields, skill.FieldComponents)
	}
	if m.designed_failure != nil {
		fields = append(fields, skill.FieldDesignedFailure)
	}
	if m.consequence != nil {
		fields = append(fields, skill.FieldConsequence)
	}
	if m.recovery != nil {
		fields = append(fields, skill.FieldRecovery)
	}
	if m.transfer_scenario != nil {
		fields = append(fields, skill.FieldTransferScenario)
	}
	if m.mastery != nil {
		fields = append(fields, skill.FieldMastery)
	}
	if m.status != nil {
		fields = append(fields, skill.FieldStatus)
	}
	if m.pass_count != nil {
		fields = append(fields, skill.FieldPassCount)
	}
	if m.fail_count != nil {
		fields = append(fields, skill.FieldFailCount)
	}
	if m.consecutive_passes != nil {
		fields = append(fields, skill.FieldConsecutivePasses)
	}
	if m.needs_review != nil {
		fields = append(fields, skill.FieldNeedsReview)
	}
	if m.last_practiced_at != nil {
		fields = append(fields, skill.FieldLastPracticedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SkillMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case skill.FieldQuestID:
		return m.QuestID()
	case skill.FieldGoalID:
		return m.GoalID()
	case skill.FieldUserID:
		return m.UserID()
	case skill.FieldTitle:
		return m.Title()
	case skill.FieldAction:
		return m.Action()
	case skill.FieldSuccessSignal:
		return m.SuccessSignal()
	case skill.FieldLockedVariables:
		return m.LockedVariables()
	case skill.FieldEstimatedMinutes:
		return m.EstimatedMinutes()
	case skill.FieldSkillType:
		return m.SkillType()
	case skill.FieldOrderIndex:
		return m.OrderIndex()
	case skill.FieldStageLevel:
		return m.StageLevel()
	case skill.FieldPrerequisites:
		return m.Prerequisites()
	case skill.FieldComponents:
		return m.Components()
	case skill.FieldDesignedFailure:
		return m.DesignedFailure()
	case skill.FieldConsequence:
		return m.Consequence()
	case skill.FieldRecovery:
		return m.Recovery()
	case skill.FieldTransferScenario:
		return m.TransferScenario()
	case skill.FieldMastery:
		return m.Mastery()
	case skill.FieldStatus:
		return m.Status()
	case skill.FieldPassCount:
		return m.PassCount()
	case skill.FieldFailCount:
		return m.FailCount()
	case skill.FieldConsecutivePasses:
		return m.ConsecutivePasses()
	case skill.FieldNeedsReview:
		return m.NeedsReview()
	case skill.FieldLastPracticedAt:
		return m.LastPracticedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SkillMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case skill.FieldQuestID:
		return m.OldQuestID(ctx)
	case skill.FieldGoalID:
		return m.OldGoalID(ctx)
	case skill.FieldUserID:
		return m.OldUserID(ctx)
	case skill.FieldTitle:
		return m.OldTitle(ctx)
	case skill.FieldAction:
		return m.OldAction(ctx)
	case skill.FieldSuccessSignal:
		return m.OldSuccessSignal(ctx)
	case skill.FieldLockedVariables:
		return m.OldLockedVariables(ctx)
	case skill.FieldEstimatedMinutes:
		return m.OldEstimatedMinutes(ctx)
	case skill.FieldSkillType:
		return m.OldSkillType(ctx)
	case skill.FieldOrderIndex:
		return m.OldOrderIndex(ctx)
	case skill.FieldStageLevel:
		return m.OldStageLevel(ctx)
	case skill.FieldPrerequisites:
		return m.OldPrerequisites(ctx)
	case skill.FieldComponents:
		return m.OldComponents(ctx)
	case skill.FieldDesignedFailure:
		return m.OldDesignedFailure(ctx)
	case skill.FieldConsequence:
		return m.OldConsequence(ctx)
	case skill.FieldRecovery:
		return m.OldRecovery(ctx)
	case skill.FieldTransferScenario:
		return m.OldTransferScenario(ctx)
	case skill.FieldMastery:
		return m.OldMastery(ctx)
	case skill.FieldStatus:
		return m.OldStatus(ctx)
	case skill.FieldPassCount:
		return m.OldPassCount(ctx)
	case skill.FieldFailCount:
		return m.OldFailCount(ctx)
	case skill.FieldConsecutivePasses:
		return m.OldConsecutivePasses(ctx)
	case skill.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case skill.FieldLastPracticedAt:
		return m.OldLastPracticedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Skill field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillMutation) SetField(name string, value ent.Value) error {
	switch name {
	case skill.FieldQuestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestID(v)
		return nil
	case skill.FieldGoalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalID(v)
		return nil
	case skill.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case skill.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case skill.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case skill.FieldSuccessSignal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessSignal(v)
		return nil
	case skill.FieldLockedVariables:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedVariables(v)
		return nil
	case skill.FieldEstimatedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedMinutes(v)
		return nil
	case skill.FieldSkillType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillType(v)
		return nil
	case skill.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderIndex(v)
		return nil
	case skill.FieldStageLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageLevel(v)
		return nil
	case skill.FieldPrerequisites:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrerequisites(v)
		return nil
	case skill.FieldComponents:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComponents(v)
		return nil
	case skill.FieldDesignedFailure:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDesignedFailure(v)
		return nil
	case skill.FieldConsequence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsequence(v)
		return nil
	case skill.FieldRecovery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecovery(v)
		return nil
	case skill.FieldTransferScenario:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransferScenario(v)
		return nil
	case skill.FieldMastery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMastery(v)
		return nil
	case skill.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case skill.FieldPassCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassCount(v)
		return nil
	case skill.FieldFailCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailCount(v)
		return nil
	case skill.FieldConsecutivePasses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutivePasses(v)
		return nil
	case skill.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case skill.FieldLastPracticedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPracticedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Skill field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SkillMutation) AddedFields() []string {
	var fields []string
	if m.addestimated_minutes != nil {
		fields = append(fields, skill.FieldEstimatedMinutes)
	}
	if m.addorder_index != nil {
		fields = append(fields, skill.FieldOrderIndex)
	}
	if m.addpass_count != nil {
		fields = append(fields, skill.FieldPassCount)
	}
	if m.addfail_count != nil {
		fields = append(fields, skill.FieldFailCount)
	}
	if m.addconsecutive_passes != nil {
		fields = append(fields, skill.FieldConsecutivePasses)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SkillMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case skill.FieldEstimatedMinutes:
		return m.AddedEstimatedMinutes()
	case skill.FieldOrderIndex:
		return m.AddedOrderIndex()
	case skill.FieldPassCount:
		return m.AddedPassCount()
	case skill.FieldFailCount:
		return m.AddedFailCount()
	case skill.FieldConsecutivePasses:
		return m.AddedConsecutivePasses()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillMutation) AddField(name string, value ent.Value) error {
	switch name {
	case skill.FieldEstimatedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedMinutes(v)
		return nil
	case skill.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderIndex(v)
		return nil
	case skill.FieldPassCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPassCount(v)
		return nil
	case skill.FieldFailCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailCount(v)
		return nil
	case skill.FieldConsecutivePasses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutivePasses(v)
		return nil
	}
	return fmt.Errorf("unknown Skill numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SkillMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(skill.FieldStageLevel) {
		fields = append(fields, skill.FieldStageLevel)
	}
	if m.FieldCleared(skill.FieldPrerequisites) {
		fields = append(fields, skill.FieldPrerequisites)
	}
	if m.FieldCleared(skill.FieldComponents) {
		fields = append(fields, skill.FieldComponents)
	}
	if m.FieldCleared(skill.FieldDesignedFailure) {
		fields = append(fields, skill.FieldDesignedFailure)
	}
	if m.FieldCleared(skill.FieldConsequence) {
		fields = append(fields, skill.FieldConsequence)
	}
	if m.FieldCleared(skill.FieldRecovery) {
		fields = append(fields, skill.FieldRecovery)
	}
	if m.FieldCleared(skill.FieldTransferScenario) {
		fields = append(fields, skill.FieldTransferScenario)
	}
	if m.FieldCleared(skill.FieldLastPracticedAt) {
		fields = append(fields, skill.FieldLastPracticedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SkillMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SkillMutation) ClearField(name string) error {
	switch name {
	case skill.FieldStageLevel:
		m.ClearStageLevel()
		return nil
	case skill.FieldPrerequisites:
		m.ClearPrerequisites()
		return nil
	case skill.FieldComponents:
		m.ClearComponents()
		return nil
	case skill.FieldDesignedFailure:
		m.ClearDesignedFailure()
		return nil
	case skill.FieldConsequence:
		m.ClearConsequence()
		return nil
	case skill.FieldRecovery:
		m.ClearRecovery()
		return nil
	case skill.FieldTransferScenario:
		m.ClearTransferScenario()
		return nil
	case skill.FieldLastPracticedAt:
		m.ClearLastPracticedAt()
		return nil
	}
	return fmt.Errorf("unknown Skill nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SkillMutation) ResetField(name string) error {
	switch name {
	case skill.FieldQuestID:
		m.ResetQuestID()
		return nil
	case skill.FieldGoalID:
		m.ResetGoalID()
		return nil
	case skill.FieldUserID:
		m.ResetUserID()
		return nil
	case skill.FieldTitle:
		m.ResetTitle()
		return nil
	case skill.FieldAction:
		m.ResetAction()
		return nil
	case skill.FieldSuccessSignal:
		m.ResetSuccessSignal()
		return nil
	case skill.FieldLockedVariables:
		m.ResetLockedVariables()
		return nil
	case skill.FieldEstimatedMinutes:
		m.ResetEstimatedMinutes()
		return nil
	case skill.FieldSkillType:
		m.ResetSkillType()
		return nil
	case skill.FieldOrderIndex:
		m.ResetOrderIndex()
		return nil
	case skill.FieldStageLevel:
		m.ResetStageLevel()
		return nil
	case skill.FieldPrerequisites:
		m.ResetPrerequisites()
		return nil
	case skill.FieldComponents:
		m.ResetComponents()
		return nil
	case skill.FieldDesignedFailure:
		m.ResetDesignedFailure()
		return nil
	case skill.FieldConsequence:
		m.ResetConsequence()
		return nil
	case skill.FieldRecovery:
		m.ResetRecovery()
		return nil
	case skill.FieldTransferScenario:
		m.ResetTransferScenario()
		return nil
	case skill.FieldMastery:
		m.ResetMastery()
		return nil
	case skill.FieldStatus:
		m.ResetStatus()
		return nil
	case skill.FieldPassCount:
		m.ResetPassCount()
		return nil
	case skill.FieldFailCount:
		m.ResetFailCount()
		return nil
	case skill.FieldConsecutivePasses:
		m.ResetConsecutivePasses()
		return nil
	case skill.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case skill.FieldLastPracticedAt:
		m.ResetLastPracticedAt()
		return nil
	}
	return fmt.Errorf("unknown Skill field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SkillMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SkillMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SkillMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SkillMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SkillMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SkillMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SkillMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Skill unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SkillMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Skill edge %s", name)
}

// WeekPlanMutation represents an operation that mutates the WeekPlan nodes in the graph.
type WeekPlanMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	goal_id             *string
	quest_id            *string
	week_number         *int
	addweek_number      *int
	start_day           *int
	addstart_day        *int
	end_day             *int
	addend_day          *int
	drills_completed    *int
	adddrills_completed *int
	drills_passed       *int
	adddrills_passed    *int
	drills_failed       *int
	adddrills_failed    *int
	drills_skipped      *int
	adddrills_skipped   *int
	skills_mastered     *int
	addskills_mastered  *int
	carry_forward       *[]string
	appendcarry_forward []string
	status              *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*WeekPlan, error)
	predicates          []predicate.WeekPlan
}

var _ ent.Mutation = (*WeekPlanMutation)(nil)

// weekplanOption allows management of the mutation configuration using functional options.
type weekplanOption func(*WeekPlanMutation)

// newWeekPlanMutation creates new mutation for the WeekPlan entity.
func newWeekPlanMutation(c config, op Op, opts ...weekplanOption) *WeekPlanMutation {
	m := &WeekPlanMutation{
		config:        c,
		op:            op,
		typ:           TypeWeekPlan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWeekPlanID sets the ID field of the mutation.
func withWeekPlanID(id string) weekplanOption {
	return func(m *WeekPlanMutation) {
		var (
			err   error
			once  sync.Once
			value *WeekPlan
		)
		m.oldValue = func(ctx context.Context) (*WeekPlan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WeekPlan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWeekPlan sets the old WeekPlan of the mutation.
func withWeekPlan(node *WeekPlan) weekplanOption {
	return func(m *WeekPlanMutation) {
		m.oldValue = func(context.Context) (*WeekPlan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WeekPlanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WeekPlanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WeekPlan entities.
func (m *WeekPlanMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WeekPlanMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WeekPlanMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WeekPlan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGoalID sets the "goal_id" field.
func (m *WeekPlanMutation) SetGoalID(s string) {
	m.goal_id = &s
}

// GoalID returns the value of the "goal_id" field in the mutation.
func (m *WeekPlanMutation) GoalID() (r string, exists bool) {
	v := m.goal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalID returns the old "goal_id" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldGoalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalID: %w", err)
	}
	return oldValue.GoalID, nil
}

// ResetGoalID resets all changes to the "goal_id" field.
func (m *WeekPlanMutation) ResetGoalID() {
	m.goal_id = nil
}

// SetQuestID sets the "quest_id" field.
func (m *WeekPlanMutation) SetQuestID(s string) {
	m.quest_id = &s
}

// QuestID returns the value of the "quest_id" field in the mutation.
func (m *WeekPlanMutation) QuestID() (r string, exists bool) {
	v := m.quest_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestID returns the old "quest_id" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldQuestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestID: %w", err)
	}
	return oldValue.QuestID, nil
}

// ResetQuestID resets all changes to the "quest_id" field.
func (m *WeekPlanMutation) ResetQuestID() {
	m.quest_id = nil
}

// SetWeekNumber sets the "week_number" field.
func (m *WeekPlanMutation) SetWeekNumber(i int) {
	m.week_number = &i
	m.addweek_number = nil
}

// WeekNumber returns the value of the "week_number" field in the mutation.
func (m *WeekPlanMutation) WeekNumber() (r int, exists bool) {
	v := m.week_number
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekNumber returns the old "week_number" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldWeekNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekNumber: %w", err)
	}
	return oldValue.WeekNumber, nil
}

// AddWeekNumber adds i to the "week_number" field.
func (m *WeekPlanMutation) AddWeekNumber(i int) {
	if m.addweek_number != nil {
		*m.addweek_number += i
	} else {
		m.addweek_number = &i
	}
}

// AddedWeekNumber returns the value that was added to the "week_number" field in this mutation.
func (m *WeekPlanMutation) AddedWeekNumber() (r int, exists bool) {
	v := m.addweek_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeekNumber resets all changes to the "week_number" field.
func (m *WeekPlanMutation) ResetWeekNumber() {
	m.week_number = nil
	m.addweek_number = nil
}

// SetStartDay sets the "start_day" field.
func (m *WeekPlanMutation) SetStartDay(i int) {
	m.start_day = &i
	m.addstart_day = nil
}

// StartDay returns the value of the "start_day" field in the mutation.
func (m *WeekPlanMutation) StartDay() (r int, exists bool) {
	v := m.start_day
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDay returns the old "start_day" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldStartDay(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDay: %w", err)
	}
	return oldValue.StartDay, nil
}

// AddStartDay adds i to the "start_day" field.
func (m *WeekPlanMutation) AddStartDay(i int) {
	if m.addstart_day != nil {
		*m.addstart_day += i
	} else {
		m.addstart_day = &i
	}
}

// AddedStartDay returns the value that was added to the "start_day" field in this mutation.
func (m *WeekPlanMutation) AddedStartDay() (r int, exists bool) {
	v := m.addstart_day
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartDay resets all changes to the "start_day" field.
func (m *WeekPlanMutation) ResetStartDay() {
	m.start_day = nil
	m.addstart_day = nil
}

// SetEndDay sets the "end_day" field.
func (m *WeekPlanMutation) SetEndDay(i int) {
	m.end_day = &i
	m.addend_day = nil
}

// EndDay returns the value of the "end_day" field in the mutation.
func (m *WeekPlanMutation) EndDay() (r int, exists bool) {
	v := m.end_day
	if v == nil {
		return
	}
	return *v, true
}

// OldEndDay returns the old "end_day" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldEndDay(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndDay: %w", err)
	}
	return oldValue.EndDay, nil
}

// AddEndDay adds i to the "end_day" field.
func (m *WeekPlanMutation) AddEndDay(i int) {
	if m.addend_day != nil {
		*m.addend_day += i
	} else {
		m.addend_day = &i
	}
}

// AddedEndDay returns the value that was added to the "end_day" field in this mutation.
func (m *WeekPlanMutation) AddedEndDay() (r int, exists bool) {
	v := m.addend_day
	if v == nil {
		return
	}
	return *v, true
}

// ResetEndDay resets all changes to the "end_day" field.
func (m *WeekPlanMutation) ResetEndDay() {
	m.end_day = nil
	m.addend_day = nil
}

// SetDrillsCompleted sets the "drills_completed" field.
func (m *WeekPlanMutation) SetDrillsCompleted(i int) {
	m.drills_completed = &i
	m.adddrills_completed = nil
}

// DrillsCompleted returns the value of the "drills_completed" field in the mutation.
func (m *WeekPlanMutation) DrillsCompleted() (r int, exists bool) {
	v := m.drills_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldDrillsCompleted returns the old "drills_completed" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldDrillsCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrillsCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrillsCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrillsCompleted: %w", err)
	}
	return oldValue.DrillsCompleted, nil
}

// AddDrillsCompleted adds i to the "drills_completed" field.
func (m *WeekPlanMutation) AddDrillsCompleted(i int) {
	if m.adddrills_completed != nil {
		*m.adddrills_completed += i
	} else {
		m.adddrills_completed = &i
	}
}

// AddedDrillsCompleted returns the value that was added to the "drills_completed" field in this mutation.
func (m *WeekPlanMutation) AddedDrillsCompleted() (r int, exists bool) {
	v := m.adddrills_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetDrillsCompleted resets all changes to the "drills_completed" field.
func (m *WeekPlanMutation) ResetDrillsCompleted() {
	m.drills_completed = nil
	m.adddrills_completed = nil
}

// SetDrillsPassed sets the "drills_passed" field.
func (m *WeekPlanMutation) SetDrillsPassed(i int) {
	m.drills_passed = &i
	m.adddrills_passed = nil
}

// DrillsPassed returns the value of the "drills_passed" field in the mutation.
func (m *WeekPlanMutation) DrillsPassed() (r int, exists bool) {
	v := m.drills_passed
	if v == nil {
		return
	}
	return *v, true
}

// OldDrillsPassed returns the old "drills_passed" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldDrillsPassed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrillsPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrillsPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrillsPassed: %w", err)
	}
	return oldValue.DrillsPassed, nil
}

// AddDrillsPassed adds i to the "drills_passed" field.
func (m *WeekPlanMutation) AddDrillsPassed(i int) {
	if m.adddrills_passed != nil {
		*m.adddrills_passed += i
	} else {
		m.adddrills_passed = &i
	}
}

// AddedDrillsPassed returns the value that was added to the "drills_passed" field in this mutation.
func (m *WeekPlanMutation) AddedDrillsPassed() (r int, exists bool) {
	v := m.adddrills_passed
	if v == nil {
		return
	}
	return *v, true
}

// ResetDrillsPassed resets all changes to the "drills_passed" field.
func (m *WeekPlanMutation) ResetDrillsPassed() {
	m.drills_passed = nil
	m.adddrills_passed = nil
}

// SetDrillsFailed sets the "drills_failed" field.
func (m *WeekPlanMutation) SetDrillsFailed(i int) {
	m.drills_failed = &i
	m.adddrills_failed = nil
}

// DrillsFailed returns the value of the "drills_failed" field in the mutation.
func (m *WeekPlanMutation) DrillsFailed() (r int, exists bool) {
	v := m.drills_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldDrillsFailed returns the old "drills_failed" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldDrillsFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrillsFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrillsFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrillsFailed: %w", err)
	}
	return oldValue.DrillsFailed, nil
}

// AddDrillsFailed adds i to the "drills_failed" field.
func (m *WeekPlanMutation) AddDrillsFailed(i int) {
	if m.adddrills_failed != nil {
		*m.adddrills_failed += i
	} else {
		m.adddrills_failed = &i
	}
}

// AddedDrillsFailed returns the value that was added to the "drills_failed" field in this mutation.
func (m *WeekPlanMutation) AddedDrillsFailed() (r int, exists bool) {
	v := m.adddrills_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetDrillsFailed resets all changes to the "drills_failed" field.
func (m *WeekPlanMutation) ResetDrillsFailed() {
	m.drills_failed = nil
	m.adddrills_failed = nil
}

// SetDrillsSkipped sets the "drills_skipped" field.
func (m *WeekPlanMutation) SetDrillsSkipped(i int) {
	m.drills_skipped = &i
	m.adddrills_skipped = nil
}

// DrillsSkipped returns the value of the "drills_skipped" field in the mutation.
func (m *WeekPlanMutation) DrillsSkipped() (r int, exists bool) {
	v := m.drills_skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldDrillsSkipped returns the old "drills_skipped" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldDrillsSkipped(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrillsSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrillsSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrillsSkipped: %w", err)
	}
	return oldValue.DrillsSkipped, nil
}

// AddDrillsSkipped adds i to the "drills_skipped" field.
func (m *WeekPlanMutation) AddDrillsSkipped(i int) {
	if m.adddrills_skipped != nil {
		*m.adddrills_skipped += i
	} else {
		m.adddrills_skipped = &i
	}
}

// AddedDrillsSkipped returns the value that was added to the "drills_skipped" field in this mutation.
func (m *WeekPlanMutation) AddedDrillsSkipped() (r int, exists bool) {
	v := m.adddrills_skipped
	if v == nil {
		return
	}
	return *v, true
}

// ResetDrillsSkipped resets all changes to the "drills_skipped" field.
func (m *WeekPlanMutation) ResetDrillsSkipped() {
	m.drills_skipped = nil
	m.adddrills_skipped = nil
}

// SetSkillsMastered sets the "skills_mastered" field.
func (m *WeekPlanMutation) SetSkillsMastered(i int) {
	m.skills_mastered = &i
	m.addskills_mastered = nil
}

// SkillsMastered returns the value of the "skills_mastered" field in the mutation.
func (m *WeekPlanMutation) SkillsMastered() (r int, exists bool) {
	v := m.skills_mastered
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillsMastered returns the old "skills_mastered" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldSkillsMastered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillsMastered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillsMastered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillsMastered: %w", err)
	}
	return oldValue.SkillsMastered, nil
}

// AddSkillsMastered adds i to the "skills_mastered" field.
func (m *WeekPlanMutation) AddSkillsMastered(i int) {
	if m.addskills_mastered != nil {
		*m.addskills_mastered += i
	} else {
		m.addskills_mastered = &i
	}
}

// AddedSkillsMastered returns the value that was added to the "skills_mastered" field in this mutation.
func (m *WeekPlanMutation) AddedSkillsMastered() (r int, exists bool) {
	v := m.addskills_mastered
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkillsMastered resets all changes to the "skills_mastered" field.
func (m *WeekPlanMutation) ResetSkillsMastered() {
	m.skills_mastered = nil
	m.addskills_mastered = nil
}

// SetCarryForward sets the "carry_forward" field.
func (m *WeekPlanMutation) SetCarryForward(s []string) {
	m.carry_forward = &s
	m.appendcarry_forward = nil
}

// CarryForward returns the value of the "carry_forward" field in the mutation.
func (m *WeekPlanMutation) CarryForward() (r []string, exists bool) {
	v := m.carry_forward
	if v == nil {
		return
	}
	return *v, true
}

// OldCarryForward returns the old "carry_forward" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldCarryForward(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCarryForward is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCarryForward requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCarryForward: %w", err)
	}
	return oldValue.CarryForward, nil
}

// AppendCarryForward adds s to the "carry_forward" field.
func (m *WeekPlanMutation) AppendCarryForward(s []string) {
	m.appendcarry_forward = append(m.appendcarry_forward, s...)
}

// AppendedCarryForward returns the list of values that were appended to the "carry_forward" field in this mutation.
func (m *WeekPlanMutation) AppendedCarryForward() ([]string, bool) {
	if len(m.appendcarry_forward) == 0 {
		return nil, false
	}
	return m.appendcarry_forward, true
}

// ClearCarryForward clears the value of the "carry_forward" field.
func (m *WeekPlanMutation) ClearCarryForward() {
	m.carry_forward = nil
	m.appendcarry_forward = nil
	m.clearedFields[weekplan.FieldCarryForward] = struct{}{}
}

// CarryForwardCleared returns if the "carry_forward" field was cleared in this mutation.
func (m *WeekPlanMutation) CarryForwardCleared() bool {
	_, ok := m.clearedFields[weekplan.FieldCarryForward]
	return ok
}

// ResetCarryForward resets all changes to the "carry_forward" field.
func (m *WeekPlanMutation) ResetCarryForward() {
	m.carry_forward = nil
	m.appendcarry_forward = nil
	delete(m.clearedFields, weekplan.FieldCarryForward)
}

// SetStatus sets the "status" field.
func (m *WeekPlanMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *WeekPlanMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WeekPlan entity.
// If the WeekPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekPlanMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WeekPlanMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the WeekPlanMutation builder.
func (m *WeekPlanMutation) Where(ps ...predicate.WeekPlan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WeekPlanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WeekPlanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WeekPlan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WeekPlanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WeekPlanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WeekPlan).
func (m *WeekPlanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WeekPlanMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.goal_id != nil {
		fields = append(fields, weekplan.FieldGoalID)
	}
	if m.quest_id != nil {
		fields = append(fields, weekplan.FieldQuestID)
	}
	if m.week_number != nil {
		fields = append(fields, weekplan.FieldWeekNumber)
	}
	if m.start_day != nil {
		fields = append(fields, weekplan.FieldStartDay)
	}
	if m.end_day != nil {
		fields = append(fields, weekplan.FieldEndDay)
	}
	if m.drills_completed != nil {
		fields = append(fields, weekplan.FieldDrillsCompleted)
	}
	if m.drills_passed != nil {
		fields = append(fields, weekplan.FieldDrillsPassed)
	}
	if m.drills_failed != nil {
		fields = append(fields, weekplan.FieldDrillsFailed)
	}
	if m.drills_skipped != nil {
		fields = append(fields, weekplan.FieldDrillsSkipped)
	}
	if m.skills_mastered != nil {
		fields = append(fields, weekplan.FieldSkillsMastered)
	}
	if m.carry_forward != nil {
		fields = append(fields, weekplan.FieldCarryForward)
	}
	if m.status != nil {
		fields = append(fields, weekplan.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WeekPlanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case weekplan.FieldGoalID:
		return m.GoalID()
	case weekplan.FieldQuestID:
		return m.QuestID()
	case weekplan.FieldWeekNumber:
		return m.WeekNumber()
	case weekplan.FieldStartDay:
		return m.StartDay()
	case weekplan.FieldEndDay:
		return m.EndDay()
	case weekplan.FieldDrillsCompleted:
		return m.DrillsCompleted()
	case weekplan.FieldDrillsPassed:
		return m.DrillsPassed()
	case weekplan.FieldDrillsFailed:
		return m.DrillsFailed()
	case weekplan.FieldDrillsSkipped:
		return m.DrillsSkipped()
	case weekplan.FieldSkillsMastered:
		return m.SkillsMastered()
	case weekplan.FieldCarryForward:
		return m.CarryForward()
	case weekplan.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WeekPlanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case weekplan.FieldGoalID:
		return m.OldGoalID(ctx)
	case weekplan.FieldQuestID:
		return m.OldQuestID(ctx)
	case weekplan.FieldWeekNumber:
		return m.OldWeekNumber(ctx)
	case weekplan.FieldStartDay:
		return m.OldStartDay(ctx)
	case weekplan.FieldEndDay:
		return m.OldEndDay(ctx)
	case weekplan.FieldDrillsCompleted:
		return m.OldDrillsCompleted(ctx)
	case weekplan.FieldDrillsPassed:
		return m.OldDrillsPassed(ctx)
	case weekplan.FieldDrillsFailed:
		return m.OldDrillsFailed(ctx)
	case weekplan.FieldDrillsSkipped:
		return m.OldDrillsSkipped(ctx)
	case weekplan.FieldSkillsMastered:
		return m.OldSkillsMastered(ctx)
	case weekplan.FieldCarryForward:
		return m.OldCarryForward(ctx)
	case weekplan.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown WeekPlan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WeekPlanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case weekplan.FieldGoalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalID(v)
		return nil
	case weekplan.FieldQuestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestID(v)
		return nil
	case weekplan.FieldWeekNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekNumber(v)
		return nil
	case weekplan.FieldStartDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDay(v)
		return nil
	case weekplan.FieldEndDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndDay(v)
		return nil
	case weekplan.FieldDrillsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrillsCompleted(v)
		return nil
	case weekplan.FieldDrillsPassed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrillsPassed(v)
		return nil
	case weekplan.FieldDrillsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrillsFailed(v)
		return nil
	case weekplan.FieldDrillsSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrillsSkipped(v)
		return nil
	case weekplan.FieldSkillsMastered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillsMastered(v)
		return nil
	case weekplan.FieldCarryForward:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCarryForward(v)
		return nil
	case weekplan.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown WeekPlan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WeekPlanMutation) AddedFields() []string {
	var fields []string
	if m.addweek_number != nil {
		fields = append(fields, weekplan.FieldWeekNumber)
	}
	if m.addstart_day != nil {
		fields = append(fields, weekplan.FieldStartDay)
	}
	if m.addend_day != nil {
		fields = append(fields, weekplan.FieldEndDay)
	}
	if m.adddrills_completed != nil {
		fields = append(fields, weekplan.FieldDrillsCompleted)
	}
	if m.adddrills_passed != nil {
		fields = append(fields, weekplan.FieldDrillsPassed)
	}
	if m.adddrills_failed != nil {
		fields = append(fields, weekplan.FieldDrillsFailed)
	}
	if m.adddrills_skipped != nil {
		fields = append(fields, weekplan.FieldDrillsSkipped)
	}
	if m.addskills_mastered != nil {
		fields = append(fields, weekplan.FieldSkillsMastered)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WeekPlanMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case weekplan.FieldWeekNumber:
		return m.AddedWeekNumber()
	case weekplan.FieldStartDay:
		return m.AddedStartDay()
	case weekplan.FieldEndDay:
		return m.AddedEndDay()
	case weekplan.FieldDrillsCompleted:
		return m.AddedDrillsCompleted()
	case weekplan.FieldDrillsPassed:
		return m.AddedDrillsPassed()
	case weekplan.FieldDrillsFailed:
		return m.AddedDrillsFailed()
	case weekplan.FieldDrillsSkipped:
		return m.AddedDrillsSkipped()
	case weekplan.FieldSkillsMastered:
		return m.AddedSkillsMastered()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WeekPlanMutation) AddField(name string, value ent.Value) error {
	switch name {
	case weekplan.FieldWeekNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeekNumber(v)
		return nil
	case weekplan.FieldStartDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartDay(v)
		return nil
	case weekplan.FieldEndDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndDay(v)
		return nil
	case weekplan.FieldDrillsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDrillsCompleted(v)
		return nil
	case weekplan.FieldDrillsPassed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDrillsPassed(v)
		return nil
	case weekplan.FieldDrillsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDrillsFailed(v)
		return nil
	case weekplan.FieldDrillsSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDrillsSkipped(v)
		return nil
	case weekplan.FieldSkillsMastered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkillsMastered(v)
		return nil
	}
	return fmt.Errorf("unknown WeekPlan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WeekPlanMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(weekplan.FieldCarryForward) {
		fields = append(fields, weekplan.FieldCarryForward)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WeekPlanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WeekPlanMutation) ClearField(name string) error {
	switch name {
	case weekplan.FieldCarryForward:
		m.ClearCarryForward()
		return nil
	}
	return fmt.Errorf("unknown WeekPlan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WeekPlanMutation) ResetField(name string) error {
	switch name {
	case weekplan.FieldGoalID:
		m.ResetGoalID()
		return nil
	case weekplan.FieldQuestID:
		m.ResetQuestID()
		return nil
	case weekplan.FieldWeekNumber:
		m.ResetWeekNumber()
		return nil
	case weekplan.FieldStartDay:
		m.ResetStartDay()
		return nil
	case weekplan.FieldEndDay:
		m.ResetEndDay()
		return nil
	case weekplan.FieldDrillsCompleted:
		m.ResetDrillsCompleted()
		return nil
	case weekplan.FieldDrillsPassed:
		m.ResetDrillsPassed()
		return nil
	case weekplan.FieldDrillsFailed:
		m.ResetDrillsFailed()
		return nil
	case weekplan.FieldDrillsSkipped:
		m.ResetDrillsSkipped()
		return nil
	case weekplan.FieldSkillsMastered:
		m.ResetSkillsMastered()
		return nil
	case weekplan.FieldCarryForward:
		m.ResetCarryForward()
		return nil
	case weekplan.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown WeekPlan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WeekPlanMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WeekPlanMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WeekPlanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WeekPlanMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WeekPlanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WeekPlanMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WeekPlanMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WeekPlan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WeekPlanMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WeekPlan edge %s", name)
}
