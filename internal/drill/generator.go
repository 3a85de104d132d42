package drill

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/praxis-coach/praxis/internal/skill"
)

// Config tunes drill generation.
type Config struct {
	WarmupMinutes  int
	StretchMinutes int

	// MaxRetries caps automatic retries of a failed skill. Beyond it the
	// skill is flagged for manual review instead of rescheduled.
	MaxRetries int
}

// DefaultConfig returns the standard generation tuning.
func DefaultConfig() Config {
	return Config{
		WarmupMinutes:  5,
		StretchMinutes: 10,
		MaxRetries:     3,
	}
}

// DayContext carries the scheduling coordinates for the drill being built.
type DayContext struct {
	Date         string
	DayNumber    int
	WeekNumber   int
	DailyMinutes int
}

// Generator builds drills from selected skills.
type Generator struct {
	cfg Config
	now func() time.Time
}

// NewGenerator creates a Generator.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg, now: time.Now}
}

// Generate expands a selected skill, plus an optional review skill for the
// warmup, into a drill. When the section minutes would exceed the daily
// budget the stretch is dropped first, then the warmup.
func (g *Generator) Generate(s *skill.Skill, review *skill.Skill, day DayContext) *Drill {
	d := &Drill{
		ID:         uuid.NewString(),
		UserID:     s.UserID,
		GoalID:     s.GoalID,
		QuestID:    s.QuestID,
		SkillID:    s.ID,
		Date:       day.Date,
		DayNumber:  day.DayNumber,
		WeekNumber: day.WeekNumber,
		Status:     StatusScheduled,
		CreatedAt:  g.now(),
		Main:       mainSection(s),
	}

	if review != nil {
		d.Warmup = &Section{
			Kind:           SectionWarmup,
			Action:         fmt.Sprintf("Review %q: %s", review.Title, review.Action),
			PassSignal:     review.SuccessSignal,
			Minutes:        g.cfg.WarmupMinutes,
			FromOtherQuest: review.QuestID != s.QuestID,
		}
	}

	if stretch := g.stretchFor(s); stretch != nil {
		d.Stretch = stretch
	}

	g.trimToBudget(d, day.DailyMinutes)
	return d
}

func mainSection(s *skill.Skill) Section {
	sec := Section{
		Kind:            SectionMain,
		Action:          s.Action,
		PassSignal:      s.SuccessSignal,
		Minutes:         s.EstimatedMinutes,
		DesignedFailure: s.DesignedFailure,
		Recovery:        s.Recovery,
	}
	if len(s.LockedVariables) > 0 {
		sec.Constraint = s.LockedVariables[0]
	}
	return sec
}

// stretchFor builds the optional stretch section. Its nature follows the
// skill type: foundations transfer to a new context, building skills combine
// with prior work, compound skills get explained, synthesis skills get a
// speed pass.
func (g *Generator) stretchFor(s *skill.Skill) *Section {
	var action string
	switch s.Type {
	case skill.TypeFoundation:
		if s.TransferScenario != "" {
			action = "Apply the same skill in a new context: " + s.TransferScenario
		} else {
			action = "Apply the same skill in a context you haven't tried yet"
		}
	case skill.TypeBuilding:
		action = "Combine this with a skill you practiced earlier and run them together"
	case skill.TypeCompound:
		action = "Explain the underlying concept out loud as if teaching it"
	case skill.TypeSynthesis:
		action = "Repeat the main exercise aiming to finish in three-quarters of the time"
	default:
		return nil
	}
	return &Section{
		Kind:    SectionStretch,
		Action:  action,
		Minutes: g.cfg.StretchMinutes,
	}
}

// trimToBudget drops sections until the drill fits the daily budget:
// stretch first, then warmup. The main section is never dropped.
func (g *Generator) trimToBudget(d *Drill, budget int) {
	if budget <= 0 {
		return
	}
	if d.TotalMinutes() > budget {
		d.Stretch = nil
	}
	if d.TotalMinutes() > budget {
		d.Warmup = nil
	}
}

// Retry multipliers for the main-section time box.
const (
	firstRetryScale = 1.25
	laterRetryScale = 1.5
)

// AdaptForRetry rebuilds a drill for retrying a failed or partial skill:
// the main section grows (×1.25 on the first retry, ×1.5 after), the
// stretch is removed, and the prior failure observation is prepended to the
// action so the learner starts from what went wrong.
func (g *Generator) AdaptForRetry(s *skill.Skill, previous *Drill, retryCount int, day DayContext) *Drill {
	d := g.Generate(s, nil, day)

	scale := firstRetryScale
	if retryCount > 1 {
		scale = laterRetryScale
	}

	d.IsRetry = true
	d.RetryCount = retryCount
	d.Stretch = nil
	d.Main.Minutes = int(math.Round(float64(s.EstimatedMinutes) * scale))

	if previous != nil && previous.Observation != "" {
		d.Main.Action = fmt.Sprintf("Last attempt: %s. %s", previous.Observation, d.Main.Action)
		d.CarryForward = previous.Observation
	}

	return d
}
