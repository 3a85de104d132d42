// Package drill materializes one day's concrete exercise from a selected
// skill: a mandatory main section plus optional warmup and stretch sections,
// trimmed to the daily minutes budget.
package drill

import "time"

// DateLayout is the calendar-date key format used for drill uniqueness.
const DateLayout = "2006-01-02"

// Status is a drill's lifecycle state.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusMissed    Status = "missed"
)

// Outcome is the recorded result of a completed drill. Empty until recorded.
type Outcome string

const (
	OutcomePass    Outcome = "pass"
	OutcomeFail    Outcome = "fail"
	OutcomePartial Outcome = "partial"
	OutcomeSkipped Outcome = "skipped"
)

// SectionKind names a drill section.
type SectionKind string

const (
	SectionWarmup  SectionKind = "warmup"
	SectionMain    SectionKind = "main"
	SectionStretch SectionKind = "stretch"
)

// Section is one block of a drill.
type Section struct {
	Kind       SectionKind
	Action     string
	PassSignal string // optional
	Constraint string // optional
	Minutes    int

	// FromOtherQuest marks a warmup borrowed from a different quest.
	FromOtherQuest bool

	// Resilience fields, carried on the main section only.
	DesignedFailure string
	Recovery        string
}

// Drill is one day's exercise instance. Exactly one exists per
// (user, goal, date); it is created by the generator, mutated exactly once
// by outcome recording or missed-day reconciliation, and immutable after.
type Drill struct {
	ID      string
	UserID  string
	GoalID  string
	QuestID string
	SkillID string

	Date       string // DateLayout
	DayNumber  int
	WeekNumber int

	Warmup  *Section
	Main    Section
	Stretch *Section

	Status      Status
	Outcome     Outcome
	Observation string

	IsRetry      bool
	RetryCount   int
	CarryForward string // free-text continuity from the previous day

	CreatedAt   time.Time
	CompletedAt *time.Time
}

// TotalMinutes sums the minutes across all present sections.
func (d *Drill) TotalMinutes() int {
	total := d.Main.Minutes
	if d.Warmup != nil {
		total += d.Warmup.Minutes
	}
	if d.Stretch != nil {
		total += d.Stretch.Minutes
	}
	return total
}

// NeedsRetry reports whether the drill's outcome should trigger a retry of
// the same skill the next day.
func (d *Drill) NeedsRetry() bool {
	return d.Outcome == OutcomeFail || d.Outcome == OutcomePartial
}
