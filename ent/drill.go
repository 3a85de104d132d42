// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxis-coach/praxis/ent/drill"
	"github.com/praxis-coach/praxis/ent/schema"
)

// Drill is the model entity for the Drill schema.
type Drill struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// GoalID holds the value of the "goal_id" field.
	GoalID string `json:"goal_id,omitempty"`
	// QuestID holds the value of the "quest_id" field.
	QuestID string `json:"quest_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// Calendar date in YYYY-MM-DD form
	Date string `json:"date,omitempty"`
	// DayNumber holds the value of the "day_number" field.
	DayNumber int `json:"day_number,omitempty"`
	// WeekNumber holds the value of the "week_number" field.
	WeekNumber int `json:"week_number,omitempty"`
	// Optional warmup block, possibly from another quest
	Warmup *schema.DrillSection `json:"warmup,omitempty"`
	// Main holds the value of the "main" field.
	Main schema.DrillSection `json:"main,omitempty"`
	// Stretch holds the value of the "stretch" field.
	Stretch *schema.DrillSection `json:"stretch,omitempty"`
	// scheduled, completed, or missed
	Status string `json:"status,omitempty"`
	// pass, fail, partial, or skipped; empty until recorded
	Outcome string `json:"outcome,omitempty"`
	// Observation holds the value of the "observation" field.
	Observation string `json:"observation,omitempty"`
	// IsRetry holds the value of the "is_retry" field.
	IsRetry bool `json:"is_retry,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// Free-text continuity note carried from the previous day
	CarryForward string `json:"carry_forward,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Drill) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case drill.FieldWarmup, drill.FieldMain, drill.FieldStretch:
			values[i] = new([]byte)
		case drill.FieldIsRetry:
			values[i] = new(sql.NullBool)
		case drill.FieldDayNumber, drill.FieldWeekNumber, drill.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case drill.FieldID, drill.FieldUserID, drill.FieldGoalID, drill.FieldQuestID, drill.FieldSkillID, drill.FieldDate, drill.FieldStatus, drill.FieldOutcome, drill.FieldObservation, drill.FieldCarryForward:
			values[i] = new(sql.NullString)
		case drill.FieldCreatedAt, drill.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Drill fields.
func (_m *Drill) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case drill.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case drill.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case drill.FieldGoalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal_id", values[i])
			} else if value.Valid {
				_m.GoalID = value.String
			}
		case drill.FieldQuestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quest_id", values[i])
			} else if value.Valid {
				_m.QuestID = value.String
			}
		case drill.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case drill.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case drill.FieldDayNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_number", values[i])
			} else if value.Valid {
				_m.DayNumber = int(value.Int64)
			}
		case drill.FieldWeekNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field week_number", values[i])
			} else if value.Valid {
				_m.WeekNumber = int(value.Int64)
			}
		case drill.FieldWarmup:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field warmup", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Warmup); err != nil {
					return fmt.Errorf("unmarshal field warmup: %w", err)
				}
			}
		case drill.FieldMain:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field main", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Main); err != nil {
					return fmt.Errorf("unmarshal field main: %w", err)
				}
			}
		case drill.FieldStretch:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stretch", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Stretch); err != nil {
					return fmt.Errorf("unmarshal field stretch: %w", err)
				}
			}
		case drill.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case drill.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = value.String
			}
		case drill.FieldObservation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field observation", values[i])
			} else if value.Valid {
				_m.Observation = value.String
			}
		case drill.FieldIsRetry:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_retry", values[i])
			} else if value.Valid {
				_m.IsRetry = value.Bool
			}
		case drill.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case drill.FieldCarryForward:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field carry_forward", values[i])
			} else if value.Valid {
				_m.CarryForward = value.String
			}
		case drill.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case drill.FieldCompletedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Drill.
// This includes values selected through modifiers, order, etc.
func (_m *Drill) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Drill.
// Note that you need to call Drill.Unwrap() before calling this method if this Drill
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Drill) Update() *DrillUpdateOne {
	return NewDrillClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Drill entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Drill) Unwrap() *Drill {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Drill is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Drill) String() string {
	var builder strings.Builder
	builder.WriteString("Drill(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("goal_id=")
	builder.WriteString(_m.GoalID)
	builder.WriteString(", ")
	builder.WriteString("quest_id=")
	builder.WriteString(_m.QuestID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("day_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.DayNumber))
	builder.WriteString(", ")
	builder.WriteString("week_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeekNumber))
	builder.WriteString(", ")
	builder.WriteString("warmup=")
	builder.WriteString(fmt.Sprintf("%v", _m.Warmup))
	builder.WriteString(", ")
	builder.WriteString("main=")
	builder.WriteString(fmt.Sprintf("%v", _m.Main))
	builder.WriteString(", ")
	builder.WriteString("stretch=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stretch))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(_m.Outcome)
	builder.WriteString(", ")
	builder.WriteString("observation=")
	builder.WriteString(_m.Observation)
	builder.WriteString(", ")
	builder.WriteString("is_retry=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsRetry))
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("carry_forward=")
	builder.WriteString(_m.CarryForward)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Drills is a parsable slice of Drill.
type Drills []*Drill
