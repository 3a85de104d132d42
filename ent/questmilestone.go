// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxis-coach/praxis/ent/questmilestone"
)

// QuestMilestone is the model entity for the QuestMilestone schema.
type QuestMilestone struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// QuestID holds the value of the "quest_id" field.
	QuestID string `json:"quest_id,omitempty"`
	// GoalID holds the value of the "goal_id" field.
	GoalID string `json:"goal_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Mastered share of quest skills, 0-100, needed to unlock
	RequiredMasteryPercent int `json:"required_mastery_percent,omitempty"`
	// Every criterion must be self-confirmed to complete
	AcceptanceCriteria []string `json:"acceptance_criteria,omitempty"`
	// locked, available, in_progress, or completed
	Status string `json:"status,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestMilestone) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questmilestone.FieldAcceptanceCriteria:
			values[i] = new([]byte)
		case questmilestone.FieldRequiredMasteryPercent:
			values[i] = new(sql.NullInt64)
		case questmilestone.FieldID, questmilestone.FieldQuestID, questmilestone.FieldGoalID, questmilestone.FieldTitle, questmilestone.FieldStatus:
			values[i] = new(sql.NullString)
		case questmilestone.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestMilestone fields.
func (_m *QuestMilestone) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questmilestone.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case questmilestone.FieldQuestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quest_id", values[i])
			} else if value.Valid {
				_m.QuestID = value.String
			}
		case questmilestone.FieldGoalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal_id", values[i])
			} else if value.Valid {
				_m.GoalID = value.String
			}
		case questmilestone.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case questmilestone.FieldRequiredMasteryPercent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field required_mastery_percent", values[i])
			} else if value.Valid {
				_m.RequiredMasteryPercent = int(value.Int64)
			}
		case questmilestone.FieldAcceptanceCriteria:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field acceptance_criteria", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AcceptanceCriteria); err != nil {
					return fmt.Errorf("unmarshal field acceptance_criteria: %w", err)
				}
			}
		case questmilestone.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case questmilestone.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestMilestone.
// This includes values selected through modifiers, order, etc.
func (_m *QuestMilestone) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuestMilestone.
// Note that you need to call QuestMilestone.Unwrap() before calling this method if this QuestMilestone
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestMilestone) Update() *QuestMilestoneUpdateOne {
	return NewQuestMilestoneClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestMilestone entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestMilestone) Unwrap() *QuestMilestone {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuestMilestone is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestMilestone) String() string {
	var builder strings.Builder
	builder.WriteString("QuestMilestone(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("quest_id=")
	builder.WriteString(_m.QuestID)
	builder.WriteString(", ")
	builder.WriteString("goal_id=")
	builder.WriteString(_m.GoalID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("required_mastery_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiredMasteryPercent))
	builder.WriteString(", ")
	builder.WriteString("acceptance_criteria=")
	builder.WriteString(fmt.Sprintf("%v", _m.AcceptanceCriteria))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// QuestMilestones is a parsable slice of QuestMilestone.
type QuestMilestones []*QuestMilestone
