// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Drill is the predicate function for drill builders.
type Drill func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LearningPlan is the predicate function for learningplan builders.
type LearningPlan func(*sql.Selector)

// MasteryEvent is the predicate function for masteryevent builders.
type MasteryEvent func(*sql.Selector)

// QuestMilestone is the predicate function for questmilestone builders.
type QuestMilestone func(*sql.Selector)

// Skill is the predicate function for skill builders.
type Skill func(*sql.Selector)

// WeekPlan is the predicate function for weekplan builders.
type WeekPlan func(*sql.Selector)
