// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxis-coach/praxis/ent/weekplan"
)

// WeekPlan is the model entity for the WeekPlan schema.
type WeekPlan struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// GoalID holds the value of the "goal_id" field.
	GoalID string `json:"goal_id,omitempty"`
	// QuestID holds the value of the "quest_id" field.
	QuestID string `json:"quest_id,omitempty"`
	// WeekNumber holds the value of the "week_number" field.
	WeekNumber int `json:"week_number,omitempty"`
	// 1-based day number within the plan
	StartDay int `json:"start_day,omitempty"`
	// EndDay holds the value of the "end_day" field.
	EndDay int `json:"end_day,omitempty"`
	// DrillsCompleted holds the value of the "drills_completed" field.
	DrillsCompleted int `json:"drills_completed,omitempty"`
	// DrillsPassed holds the value of the "drills_passed" field.
	DrillsPassed int `json:"drills_passed,omitempty"`
	// DrillsFailed holds the value of the "drills_failed" field.
	DrillsFailed int `json:"drills_failed,omitempty"`
	// DrillsSkipped holds the value of the "drills_skipped" field.
	DrillsSkipped int `json:"drills_skipped,omitempty"`
	// SkillsMastered holds the value of the "skills_mastered" field.
	SkillsMastered int `json:"skills_mastered,omitempty"`
	// Skills still short of practicing when the week closed
	CarryForward []string `json:"carry_forward,omitempty"`
	// pending, active, or completed
	Status       string `json:"status,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WeekPlan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case weekplan.FieldCarryForward:
			values[i] = new([]byte)
		case weekplan.FieldWeekNumber, weekplan.FieldStartDay, weekplan.FieldEndDay, weekplan.FieldDrillsCompleted, weekplan.FieldDrillsPassed, weekplan.FieldDrillsFailed, weekplan.FieldDrillsSkipped, weekplan.FieldSkillsMastered:
			values[i] = new(sql.NullInt64)
		case weekplan.FieldID, weekplan.FieldGoalID, weekplan.FieldQuestID, weekplan.FieldStatus:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WeekPlan fields.
func (_m *WeekPlan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case weekplan.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case weekplan.FieldGoalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal_id", values[i])
			} else if value.Valid {
				_m.GoalID = value.String
			}
		case weekplan.FieldQuestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quest_id", values[i])
			} else if value.Valid {
				_m.QuestID = value.String
			}
		case weekplan.FieldWeekNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field week_number", values[i])
			} else if value.Valid {
				_m.WeekNumber = int(value.Int64)
			}
		case weekplan.FieldStartDay:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_day", values[i])
			} else if value.Valid {
				_m.StartDay = int(value.Int64)
			}
		case weekplan.FieldEndDay:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field end_day", values[i])
			} else if value.Valid {
				_m.EndDay = int(value.Int64)
			}
		case weekplan.FieldDrillsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field drills_completed", values[i])
			} else if value.Valid {
				_m.DrillsCompleted = int(value.Int64)
			}
		case weekplan.FieldDrillsPassed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field drills_passed", values[i])
			} else if value.Valid {
				_m.DrillsPassed = int(value.Int64)
			}
		case weekplan.FieldDrillsFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field drills_failed", values[i])
			} else if value.Valid {
				_m.DrillsFailed = int(value.Int64)
			}
		case weekplan.FieldDrillsSkipped:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field drills_skipped", values[i])
			} else if value.Valid {
				_m.DrillsSkipped = int(value.Int64)
			}
		case weekplan.FieldSkillsMastered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field skills_mastered", values[i])
			} else if value.Valid {
				_m.SkillsMastered = int(value.Int64)
			}
		case weekplan.FieldCarryForward:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field carry_forward", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CarryForward); err != nil {
					return fmt.Errorf("unmarshal field carry_forward: %w", err)
				}
			}
		case weekplan.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WeekPlan.
// This includes values selected through modifiers, order, etc.
func (_m *WeekPlan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WeekPlan.
// Note that you need to call WeekPlan.Unwrap() before calling this method if this WeekPlan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WeekPlan) Update() *WeekPlanUpdateOne {
	return NewWeekPlanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WeekPlan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WeekPlan) Unwrap() *WeekPlan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WeekPlan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WeekPlan) String() string {
	var builder strings.Builder
	builder.WriteString("WeekPlan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("goal_id=")
	builder.WriteString(_m.GoalID)
	builder.WriteString(", ")
	builder.WriteString("quest_id=")
	builder.WriteString(_m.QuestID)
	builder.WriteString(", ")
	builder.WriteString("week_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeekNumber))
	builder.WriteString(", ")
	builder.WriteString("start_day=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartDay))
	builder.WriteString(", ")
	builder.WriteString("end_day=")
	builder.WriteString(fmt.Sprintf("%v", _m.EndDay))
	builder.WriteString(", ")
	builder.WriteString("drills_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.DrillsCompleted))
	builder.WriteString(", ")
	builder.WriteString("drills_passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.DrillsPassed))
	builder.WriteString(", ")
	builder.WriteString("drills_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.DrillsFailed))
	builder.WriteString(", ")
	builder.WriteString("drills_skipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.DrillsSkipped))
	builder.WriteString(", ")
	builder.WriteString("skills_mastered=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkillsMastered))
	builder.WriteString(", ")
	builder.WriteString("carry_forward=")
	builder.WriteString(fmt.Sprintf("%v", _m.CarryForward))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteByte(')')
	return builder.String()
}

// WeekPlans is a parsable slice of WeekPlan.
type WeekPlans []*WeekPlan
