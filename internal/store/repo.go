package store

import (
	"context"
	"time"

	"github.com/praxis-coach/praxis/internal/drill"
	"github.com/praxis-coach/praxis/internal/quest"
	"github.com/praxis-coach/praxis/internal/skill"
	"github.com/praxis-coach/praxis/internal/week"
)

// SkillRepo persists skills and their mutable tracking state.
type SkillRepo interface {
	// CreateBatch stores a set of freshly decomposed skills.
	CreateBatch(ctx context.Context, skills []*skill.Skill) error

	// Get returns one skill, or a not-found error.
	Get(ctx context.Context, id string) (*skill.Skill, error)

	// ListByGoal returns every skill of a goal ordered by order_index.
	ListByGoal(ctx context.Context, goalID string) ([]*skill.Skill, error)

	// ListByQuest returns a quest's skills ordered by order_index.
	ListByQuest(ctx context.Context, questID string) ([]*skill.Skill, error)

	// UpdateTracking persists the mutable tracking fields of a skill.
	// The decomposition fields are immutable and never written back.
	UpdateTracking(ctx context.Context, s *skill.Skill) error
}

// DrillRepo persists daily drills. At most one drill exists per
// (user, goal, date); the unique index enforces it under races.
type DrillRepo interface {
	// Create stores a new drill.
	Create(ctx context.Context, d *drill.Drill) error

	// GetByDate returns the drill for (user, goal, date), or nil when
	// none exists yet.
	GetByDate(ctx context.Context, userID, goalID, date string) (*drill.Drill, error)

	// Latest returns the newest drill by date for (user, goal), or nil
	// when the goal has no drills yet.
	Latest(ctx context.Context, userID, goalID string) (*drill.Drill, error)

	// RecordOutcome writes the outcome onto a still-scheduled drill.
	// A drill that has already left the scheduled state is not touched
	// and an invalid-state error is returned.
	RecordOutcome(ctx context.Context, id string, outcome drill.Outcome, observation string, completedAt time.Time) error

	// MarkMissed moves a still-scheduled drill to missed.
	MarkMissed(ctx context.Context, id string) error

	// ListOpenBefore returns scheduled drills dated strictly before the
	// given date, oldest first. Used for missed-day reconciliation.
	ListOpenBefore(ctx context.Context, userID, goalID, date string) ([]*drill.Drill, error)
}

// WeekPlanRepo persists week plans and their counters.
type WeekPlanRepo interface {
	CreateBatch(ctx context.Context, weeks []*week.WeekPlan) error
	Get(ctx context.Context, id string) (*week.WeekPlan, error)

	// GetActive returns the goal's single active week, or nil when no
	// week is active.
	GetActive(ctx context.Context, goalID string) (*week.WeekPlan, error)

	// ListByGoal returns every week of a goal ordered by week_number.
	ListByGoal(ctx context.Context, goalID string) ([]*week.WeekPlan, error)

	// Update persists a week's counters, carry-forward set, and status.
	Update(ctx context.Context, w *week.WeekPlan) error
}

// LearningPlan is the persisted root of one initialized goal.
type LearningPlan struct {
	ID                 string
	GoalID             string
	UserID             string
	Title              string
	Duration           quest.Duration
	DailyMinutesBudget int
	Quests             []quest.Quest

	TotalSkills   int
	TotalMinutes  int
	EstimatedDays int
	Warnings      []string

	CreatedAt time.Time
}

// Goal reconstructs the goal this plan was initialized from.
func (p *LearningPlan) Goal() *quest.Goal {
	g := &quest.Goal{
		ID:                 p.GoalID,
		UserID:             p.UserID,
		Title:              p.Title,
		Duration:           p.Duration,
		DailyMinutesBudget: p.DailyMinutesBudget,
	}
	for _, q := range p.Quests {
		g.QuestIDs = append(g.QuestIDs, q.ID)
	}
	return g
}

// LearningPlanRepo persists one plan per goal.
type LearningPlanRepo interface {
	Create(ctx context.Context, p *LearningPlan) error

	// GetByGoal returns the goal's plan, or a not-found error.
	GetByGoal(ctx context.Context, goalID string) (*LearningPlan, error)

	// List returns every plan, newest first.
	List(ctx context.Context) ([]*LearningPlan, error)
}

// MilestoneRepo persists quest milestones.
type MilestoneRepo interface {
	CreateBatch(ctx context.Context, milestones []*week.QuestMilestone) error

	// GetByQuest returns the quest's milestone, or a not-found error.
	GetByQuest(ctx context.Context, questID string) (*week.QuestMilestone, error)

	// ListByGoal returns a goal's milestones. Order is unspecified;
	// callers sort by their own quest list.
	ListByGoal(ctx context.Context, goalID string) ([]*week.QuestMilestone, error)

	Update(ctx context.Context, m *week.QuestMilestone) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// MasteryEventData captures one mastery state transition.
type MasteryEventData struct {
	SkillID   string
	GoalID    string
	FromState string
	ToState   string
	Trigger   string
	DrillID   string
}

// LLMRequestEvent is a stored LLM API call event.
type LLMRequestEvent struct {
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// MasteryEvent is a stored mastery state transition.
type MasteryEvent struct {
	Sequence  int64
	Timestamp time.Time
	SkillID   string
	GoalID    string
	FromState string
	ToState   string
	Trigger   string
	DrillID   string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendMasteryEvent records a mastery state transition.
	AppendMasteryEvent(ctx context.Context, data MasteryEventData) error

	// ListLLMRequests returns the most recent LLM request events, newest
	// first. limit <= 0 means no limit.
	ListLLMRequests(ctx context.Context, limit int) ([]*LLMRequestEvent, error)

	// ListMasteryEvents returns a goal's mastery transitions, newest first.
	// limit <= 0 means no limit.
	ListMasteryEvents(ctx context.Context, goalID string, limit int) ([]*MasteryEvent, error)
}
