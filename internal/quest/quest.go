// Package quest holds the input side of the coaching core: a learner's Goal,
// its ordered Quests, and the externally supplied capability stages each
// quest is broken into. These types are created by the caller (or loaded from
// a goal file) and are never mutated by the core.
package quest

// Duration is how long a goal runs.
type Duration string

const (
	// DurationFixed means the goal ends once every skill is mastered.
	DurationFixed Duration = "fixed"
	// DurationOngoing means mastered skills keep cycling back for
	// reinforcement; the goal never reports completion.
	DurationOngoing Duration = "ongoing"
)

// Goal is a learner's top-level objective.
type Goal struct {
	ID                 string
	UserID             string
	Title              string
	Duration           Duration
	DailyMinutesBudget int
	QuestIDs           []string // ordered
}

// Quest is one stage of a goal, pre-decomposed externally into
// capability stages.
type Quest struct {
	ID         string
	GoalID     string
	Title      string
	Topic      string
	OrderIndex int
}

// StageLevel names one of the five competence levels a quest is
// decomposed into.
type StageLevel string

const (
	LevelReproduce StageLevel = "reproduce"
	LevelModify    StageLevel = "modify"
	LevelDiagnose  StageLevel = "diagnose"
	LevelDesign    StageLevel = "design"
	LevelShip      StageLevel = "ship"
)

// AllLevels returns the five stage levels in progression order.
func AllLevels() []StageLevel {
	return []StageLevel{LevelReproduce, LevelModify, LevelDiagnose, LevelDesign, LevelShip}
}

// CapabilityStage describes one competence level of a quest. It arrives from
// the generation collaborator (or the goal file) and is consumed as-is: the
// resilience fields are propagated onto skills, never synthesized.
type CapabilityStage struct {
	Level            StageLevel
	Capability       string   // what the learner can do at this level
	Artifact         string   // the concrete thing produced
	DesignedFailure  string   // failure the stage deliberately provokes
	Consequence      string   // what the failure costs if unhandled
	Recovery         string   // how to get back on track
	TransferScenario string   // where else the capability applies
	TopicTags        []string
}
