// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxis-coach/praxis/ent/skill"
)

// Skill is the model entity for the Skill schema.
type Skill struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// QuestID holds the value of the "quest_id" field.
	QuestID string `json:"quest_id,omitempty"`
	// GoalID holds the value of the "goal_id" field.
	GoalID string `json:"goal_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Action holds the value of the "action" field.
	Action string `json:"action,omitempty"`
	// SuccessSignal holds the value of the "success_signal" field.
	SuccessSignal string `json:"success_signal,omitempty"`
	// LockedVariables holds the value of the "locked_variables" field.
	LockedVariables []string `json:"locked_variables,omitempty"`
	// EstimatedMinutes holds the value of the "estimated_minutes" field.
	EstimatedMinutes int `json:"estimated_minutes,omitempty"`
	// SkillType holds the value of the "skill_type" field.
	SkillType string `json:"skill_type,omitempty"`
	// OrderIndex holds the value of the "order_index" field.
	OrderIndex int `json:"order_index,omitempty"`
	// StageLevel holds the value of the "stage_level" field.
	StageLevel string `json:"stage_level,omitempty"`
	// Prerequisite skill IDs, possibly crossing quests
	Prerequisites []string `json:"prerequisites,omitempty"`
	// Component skill IDs for compound skills
	Components []string `json:"components,omitempty"`
	// DesignedFailure holds the value of the "designed_failure" field.
	DesignedFailure string `json:"designed_failure,omitempty"`
	// Consequence holds the value of the "consequence" field.
	Consequence string `json:"consequence,omitempty"`
	// Recovery holds the value of the "recovery" field.
	Recovery string `json:"recovery,omitempty"`
	// TransferScenario holds the value of the "transfer_scenario" field.
	TransferScenario string `json:"transfer_scenario,omitempty"`
	// Mastery holds the value of the "mastery" field.
	Mastery string `json:"mastery,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// PassCount holds the value of the "pass_count" field.
	PassCount int `json:"pass_count,omitempty"`
	// FailCount holds the value of the "fail_count" field.
	FailCount int `json:"fail_count,omitempty"`
	// ConsecutivePasses holds the value of the "consecutive_passes" field.
	ConsecutivePasses int `json:"consecutive_passes,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// LastPracticedAt holds the value of the "last_practiced_at" field.
	LastPracticedAt *time.Time `json:"last_practiced_at,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Skill) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case skill.FieldLockedVariables, skill.FieldPrerequisites, skill.FieldComponents:
			values[i] = new([]byte)
		case skill.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case skill.FieldEstimatedMinutes, skill.FieldOrderIndex, skill.FieldPassCount, skill.FieldFailCount, skill.FieldConsecutivePasses:
			values[i] = new(sql.NullInt64)
		case skill.FieldID, skill.FieldQuestID, skill.FieldGoalID, skill.FieldUserID, skill.FieldTitle, skill.FieldAction, skill.FieldSuccessSignal, skill.FieldSkillType, skill.FieldStageLevel, skill.FieldDesignedFailure, skill.FieldConsequence, skill.FieldRecovery, skill.FieldTransferScenario, skill.FieldMastery, skill.FieldStatus:
			values[i] = new(sql.NullString)
		case skill.FieldLastPracticedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Skill fields.
func (_m *Skill) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case skill.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case skill.FieldQuestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quest_id", values[i])
			} else if value.Valid {
				_m.QuestID = value.String
			}
		case skill.FieldGoalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal_id", values[i])
			} else if value.Valid {
				_m.GoalID = value.String
			}
		case skill.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case skill.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case skill.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case skill.FieldSuccessSignal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field success_signal", values[i])
			} else if value.Valid {
				_m.SuccessSignal = value.String
			}
		case skill.FieldLockedVariables:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field locked_variables", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LockedVariables); err != nil {
					return fmt.Errorf("unmarshal field locked_variables: %w", err)
				}
			}
		case skill.FieldEstimatedMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_minutes", values[i])
			} else if value.Valid {
				_m.EstimatedMinutes = int(value.Int64)
			}
		case skill.FieldSkillType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_type", values[i])
			} else if value.Valid {
				_m.SkillType = value.String
			}
		case skill.FieldOrderIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order_index", values[i])
			} else if value.Valid {
				_m.OrderIndex = int(value.Int64)
			}
		case skill.FieldStageLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_level", values[i])
			} else if value.Valid {
				_m.StageLevel = value.String
			}
		case skill.FieldPrerequisites:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field prerequisites", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Prerequisites); err != nil {
					return fmt.Errorf("unmarshal field prerequisites: %w", err)
				}
			}
		case skill.FieldComponents:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field components", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Components); err != nil {
					return fmt.Errorf("unmarshal field components: %w", err)
				}
			}
		case skill.FieldDesignedFailure:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field designed_failure", values[i])
			} else if value.Valid {
				_m.DesignedFailure = value.String
			}
		case skill.FieldConsequence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field consequence", values[i])
			} else if value.Valid {
				_m.Consequence = value.String
			}
		case skill.FieldRecovery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recovery", values[i])
			} else if value.Valid {
				_m.Recovery = value.String
			}
		case skill.FieldTransferScenario:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transfer_scenario", values[i])
			} else if value.Valid {
				_m.TransferScenario = value.String
			}
		case skill.FieldMastery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mastery", values[i])
			} else if value.Valid {
				_m.Mastery = value.String
			}
		case skill.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case skill.FieldPassCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pass_count", values[i])
			} else if value.Valid {
				_m.PassCount = int(value.Int64)
			}
		case skill.FieldFailCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fail_count", values[i])
			} else if value.Valid {
				_m.FailCount = int(value.Int64)
			}
		case skill.FieldConsecutivePasses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_passes", values[i])
			} else if value.Valid {
				_m.ConsecutivePasses = int(value.Int64)
			}
		case skill.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case skill.FieldLastPracticedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_practiced_at", values[i])
			} else if value.Valid {
				_m.LastPracticedAt = new(time.Time)
				*_m.LastPracticedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Skill.
// This includes values selected through modifiers, order, etc.
func (_m *Skill) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Skill.
// Note that you need to call Skill.Unwrap() before calling this method if this Skill
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Skill) Update() *SkillUpdateOne {
	return NewSkillClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Skill entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Skill) Unwrap() *Skill {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Skill is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Skill) String() string {
	var builder strings.Builder
	builder.WriteString("Skill(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("quest_id=")
	builder.WriteString(_m.QuestID)
	builder.WriteString(", ")
	builder.WriteString("goal_id=")
	builder.WriteString(_m.GoalID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("success_signal=")
	builder.WriteString(_m.SuccessSignal)
	builder.WriteString(", ")
	builder.WriteString("locked_variables=")
	builder.WriteString(fmt.Sprintf("%v", _m.LockedVariables))
	builder.WriteString(", ")
	builder.WriteString("estimated_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedMinutes))
	builder.WriteString(", ")
	builder.WriteString("skill_type=")
	builder.WriteString(_m.SkillType)
	builder.WriteString(", ")
	builder.WriteString("order_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderIndex))
	builder.WriteString(", ")
	builder.WriteString("stage_level=")
	builder.WriteString(_m.StageLevel)
	builder.WriteString(", ")
	builder.WriteString("prerequisites=")
	builder.WriteString(fmt.Sprintf("%v", _m.Prerequisites))
	builder.WriteString(", ")
	builder.WriteString("components=")
	builder.WriteString(fmt.Sprintf("%v", _m.Components))
	builder.WriteString(", ")
	builder.WriteString("designed_failure=")
	builder.WriteString(_m.DesignedFailure)
	builder.WriteString(", ")
	builder.WriteString("consequence=")
	builder.WriteString(_m.Consequence)
	builder.WriteString(", ")
	builder.WriteString("recovery=")
	builder.WriteString(_m.Recovery)
	builder.WriteString(", ")
	builder.WriteString("transfer_scenario=")
	builder.WriteString(_m.TransferScenario)
	builder.WriteString(", ")
	builder.WriteString("mastery=")
	builder.WriteString(_m.Mastery)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("pass_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PassCount))
	builder.WriteString(", ")
	builder.WriteString("fail_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailCount))
	builder.WriteString(", ")
	builder.WriteString("consecutive_passes=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutivePasses))
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	if v := _m.LastPracticedAt; v != nil {
		builder.WriteString("last_practiced_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Skills is a parsable slice of Skill.
type Skills []*Skill
