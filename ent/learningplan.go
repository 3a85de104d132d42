// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxis-coach/praxis/ent/learningplan"
	"github.com/praxis-coach/praxis/ent/schema"
)

// LearningPlan is the model entity for the LearningPlan schema.
type LearningPlan struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// GoalID holds the value of the "goal_id" field.
	GoalID string `json:"goal_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// fixed or ongoing
	Duration string `json:"duration,omitempty"`
	// DailyMinutesBudget holds the value of the "daily_minutes_budget" field.
	DailyMinutesBudget int `json:"daily_minutes_budget,omitempty"`
	// Ordered quests of the goal
	Quests []schema.PlanQuest `json:"quests,omitempty"`
	// TotalSkills holds the value of the "total_skills" field.
	TotalSkills int `json:"total_skills,omitempty"`
	// TotalMinutes holds the value of the "total_minutes" field.
	TotalMinutes int `json:"total_minutes,omitempty"`
	// EstimatedDays holds the value of the "estimated_days" field.
	EstimatedDays int `json:"estimated_days,omitempty"`
	// Non-fatal decomposition warnings surfaced at init
	Warnings []string `json:"warnings,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningPlan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningplan.FieldQuests, learningplan.FieldWarnings:
			values[i] = new([]byte)
		case learningplan.FieldDailyMinutesBudget, learningplan.FieldTotalSkills, learningplan.FieldTotalMinutes, learningplan.FieldEstimatedDays:
			values[i] = new(sql.NullInt64)
		case learningplan.FieldID, learningplan.FieldGoalID, learningplan.FieldUserID, learningplan.FieldTitle, learningplan.FieldDuration:
			values[i] = new(sql.NullString)
		case learningplan.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningPlan fields.
func (_m *LearningPlan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningplan.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case learningplan.FieldGoalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal_id", values[i])
			} else if value.Valid {
				_m.GoalID = value.String
			}
		case learningplan.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case learningplan.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case learningplan.FieldDuration:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field duration", values[i])
			} else if value.Valid {
				_m.Duration = value.String
			}
		case learningplan.FieldDailyMinutesBudget:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_minutes_budget", values[i])
			} else if value.Valid {
				_m.DailyMinutesBudget = int(value.Int64)
			}
		case learningplan.FieldQuests:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field quests", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Quests); err != nil {
					return fmt.Errorf("unmarshal field quests: %w", err)
				}
			}
		case learningplan.FieldTotalSkills:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_skills", values[i])
			} else if value.Valid {
				_m.TotalSkills = int(value.Int64)
			}
		case learningplan.FieldTotalMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_minutes", values[i])
			} else if value.Valid {
				_m.TotalMinutes = int(value.Int64)
			}
		case learningplan.FieldEstimatedDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_days", values[i])
			} else if value.Valid {
				_m.EstimatedDays = int(value.Int64)
			}
		case learningplan.FieldWarnings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field warnings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Warnings); err != nil {
					return fmt.Errorf("unmarshal field warnings: %w", err)
				}
			}
		case learningplan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearningPlan.
// This includes values selected through modifiers, order, etc.
func (_m *LearningPlan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearningPlan.
// Note that you need to call LearningPlan.Unwrap() before calling this method if this LearningPlan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearningPlan) Update() *LearningPlanUpdateOne {
	return NewLearningPlanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearningPlan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearningPlan) Unwrap() *LearningPlan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningPlan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearningPlan) String() string {
	var builder strings.Builder
	builder.WriteString("LearningPlan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("goal_id=")
	builder.WriteString(_m.GoalID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("duration=")
	builder.WriteString(_m.Duration)
	builder.WriteString(", ")
	builder.WriteString("daily_minutes_budget=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyMinutesBudget))
	builder.WriteString(", ")
	builder.WriteString("quests=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quests))
	builder.WriteString(", ")
	builder.WriteString("total_skills=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalSkills))
	builder.WriteString(", ")
	builder.WriteString("total_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalMinutes))
	builder.WriteString(", ")
	builder.WriteString("estimated_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedDays))
	builder.WriteString(", ")
	builder.WriteString("warnings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Warnings))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearningPlans is a parsable slice of LearningPlan.
type LearningPlans []*LearningPlan
