// Package skill defines the atomic practice unit the whole core revolves
// around, plus graph helpers over a goal's full skill set.
package skill

import "time"

// Type classifies what kind of practice a skill demands.
type Type string

const (
	TypeFoundation Type = "foundation" // isolated basic capability
	TypeBuilding   Type = "building"   // extends or varies a foundation
	TypeCompound   Type = "compound"   // combines component skills
	TypeSynthesis  Type = "synthesis"  // ship-level integration
)

// Mastery is a skill's learned-ness state, derived from accumulated outcomes.
type Mastery string

const (
	MasteryNotStarted Mastery = "not_started"
	MasteryAttempting Mastery = "attempting"
	MasteryPracticing Mastery = "practicing"
	MasteryMastered   Mastery = "mastered"
)

// Status is a skill's availability in the prerequisite graph.
type Status string

const (
	StatusLocked     Status = "locked"
	StatusAvailable  Status = "available"
	StatusInProgress Status = "in_progress"
	StatusMastered   Status = "mastered"
)

// Skill is an atomic, time-boxed practice unit derived from one capability
// stage. Created once at decomposition; only the tracking fields mutate
// afterward, and only through outcome recording and unlock propagation.
type Skill struct {
	ID      string
	QuestID string
	GoalID  string
	UserID  string

	Title            string
	Action           string   // imperative: what the learner does
	SuccessSignal    string   // binary: how they know it worked
	LockedVariables  []string // constraints that must not change mid-exercise
	EstimatedMinutes int
	Type             Type
	OrderIndex       int
	StageLevel       string

	PrerequisiteIDs []string // may cross quests
	ComponentIDs    []string // set when Type == TypeCompound

	// Resilience fields, propagated verbatim from the capability stage.
	DesignedFailure  string
	Consequence      string
	Recovery         string
	TransferScenario string

	// Tracking state.
	Mastery           Mastery
	Status            Status
	PassCount         int
	FailCount         int
	ConsecutivePasses int
	NeedsReview       bool // set when automatic retries are exhausted
	LastPracticedAt   *time.Time
}

// PrereqSatisfied reports whether a prerequisite's mastery counts as met
// for unlocking dependents.
func PrereqSatisfied(m Mastery) bool {
	return m == MasteryPracticing || m == MasteryMastered
}
