// Package coach orchestrates the coaching core: it wires decomposition,
// scheduling, drill generation, mastery tracking, and week/milestone
// progression over the persistence layer. CLI commands talk to this package
// and nothing below it.
package coach

import (
	"context"
	"time"

	"github.com/praxis-coach/praxis/internal/drill"
	"github.com/praxis-coach/praxis/internal/quest"
	"github.com/praxis-coach/praxis/internal/schedule"
	"github.com/praxis-coach/praxis/internal/stagegen"
	"github.com/praxis-coach/praxis/internal/store"
)

// Config tunes the coaching service.
type Config struct {
	Drill drill.Config

	// RequiredMasteryPercent gates quest milestones.
	RequiredMasteryPercent int
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		Drill:                  drill.DefaultConfig(),
		RequiredMasteryPercent: 80,
	}
}

// StageSource produces capability stages for quests that arrive without
// a pre-made decomposition.
type StageSource interface {
	Generate(ctx context.Context, q quest.Quest) (*stagegen.Result, error)
}

// Stores bundles the repositories the service needs.
type Stores struct {
	Skills     store.SkillRepo
	Drills     store.DrillRepo
	Weeks      store.WeekPlanRepo
	Plans      store.LearningPlanRepo
	Milestones store.MilestoneRepo
	Events     store.EventRepo // optional
}

// Service is the coaching facade.
type Service struct {
	stores    Stores
	stages    StageSource // optional
	scheduler *schedule.Scheduler
	generator *drill.Generator
	cfg       Config
	now       func() time.Time
}

// NewService creates a coaching service. stages may be nil when every goal
// ships its own capability stages.
func NewService(stores Stores, stages StageSource, cfg Config) *Service {
	return &Service{
		stores:    stores,
		stages:    stages,
		scheduler: schedule.NewScheduler(cfg.Drill.MaxRetries),
		generator: drill.NewGenerator(cfg.Drill),
		cfg:       cfg,
		now:       time.Now,
	}
}

// appendMasteryEvent records a transition when an event repo is wired.
// Append failures are swallowed; the event log is best-effort.
func (s *Service) appendMasteryEvent(ctx context.Context, data store.MasteryEventData) {
	if s.stores.Events == nil {
		return
	}
	_ = s.stores.Events.AppendMasteryEvent(ctx, data)
}
