package coach

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/praxis-coach/praxis/internal/decompose"
	"github.com/praxis-coach/praxis/internal/fault"
	"github.com/praxis-coach/praxis/internal/mastery"
	"github.com/praxis-coach/praxis/internal/quest"
	"github.com/praxis-coach/praxis/internal/skill"
	"github.com/praxis-coach/praxis/internal/store"
	"github.com/praxis-coach/praxis/internal/week"
)

// InitializePlan decomposes a goal's quests into skills, lays out week plans
// and quest milestones, and persists the whole plan. Stages missing from the
// given map are generated through the stage source. A quest that yields no
// usable skills is skipped with a warning; only a goal where every quest
// fails is an error.
func (s *Service) InitializePlan(ctx context.Context, g *quest.Goal, quests []quest.Quest, stages map[string][]quest.CapabilityStage) (*store.LearningPlan, error) {
	if g.DailyMinutesBudget <= 0 {
		return nil, fault.New(fault.KindValidation, "goal %q has no daily minutes budget", g.ID)
	}
	if len(quests) == 0 {
		return nil, fault.New(fault.KindValidation, "goal %q has no quests", g.ID)
	}

	plan := &store.LearningPlan{
		ID:                 uuid.NewString(),
		GoalID:             g.ID,
		UserID:             g.UserID,
		Title:              g.Title,
		Duration:           g.Duration,
		DailyMinutesBudget: g.DailyMinutesBudget,
		Quests:             quests,
		CreatedAt:          s.now(),
	}

	var (
		allSkills  []*skill.Skill
		questDays  = make(map[string]int)
		questOrder []quest.Quest
		resolved   = make(map[string][]quest.CapabilityStage)
	)
	orderBase := 0
	for _, q := range quests {
		qStages, err := s.stagesFor(ctx, q, stages, plan)
		if err != nil {
			plan.Warnings = append(plan.Warnings, err.Error())
			continue
		}
		resolved[q.ID] = qStages

		res := decompose.Quest(q, g, qStages, g.DailyMinutesBudget)
		plan.Warnings = append(plan.Warnings, res.Warnings...)
		if len(res.Skills) == 0 {
			continue
		}

		// Chain across quests: the next quest opens only after the
		// previous one's final skill is at least practicing.
		if len(allSkills) > 0 {
			first := res.Skills[0]
			last := allSkills[len(allSkills)-1]
			first.PrerequisiteIDs = append(first.PrerequisiteIDs, last.ID)
		}

		for _, sk := range res.Skills {
			sk.OrderIndex += orderBase
		}
		orderBase += len(res.Skills)

		allSkills = append(allSkills, res.Skills...)
		plan.TotalMinutes += res.TotalMinutes
		questDays[q.ID] = res.EstimatedDays
		questOrder = append(questOrder, q)
	}

	if len(allSkills) == 0 {
		return nil, fault.New(fault.KindProcessing, "goal %q: no quest produced usable skills", g.ID)
	}
	plan.TotalSkills = len(allSkills)
	for _, days := range questDays {
		plan.EstimatedDays += days
	}

	if err := skill.Validate(allSkills); err != nil {
		return nil, fault.Wrap(fault.KindValidation, err, "decomposed skill graph for goal %q", g.ID)
	}

	// Skills with no prerequisites start available; everything else waits
	// on propagation.
	set := skill.NewSet(allSkills)
	mastery.Propagate(set)

	weeks := layoutWeeks(g.ID, questOrder, questDays)
	milestones := s.layoutMilestones(g.ID, questOrder, resolved)

	if err := s.stores.Skills.CreateBatch(ctx, allSkills); err != nil {
		return nil, err
	}
	if err := s.stores.Weeks.CreateBatch(ctx, weeks); err != nil {
		return nil, err
	}
	if err := s.stores.Milestones.CreateBatch(ctx, milestones); err != nil {
		return nil, err
	}
	if err := s.stores.Plans.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// stagesFor returns a quest's capability stages, generating them when the
// goal did not supply any.
func (s *Service) stagesFor(ctx context.Context, q quest.Quest, stages map[string][]quest.CapabilityStage, plan *store.LearningPlan) ([]quest.CapabilityStage, error) {
	if st, ok := stages[q.ID]; ok && len(st) > 0 {
		return st, nil
	}
	if s.stages == nil {
		return nil, fmt.Errorf("quest %q has no capability stages and no stage source is configured", q.Title)
	}
	res, err := s.stages.Generate(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("quest %q stage generation: %w", q.Title, err)
	}
	if res.Warning != "" {
		plan.Warnings = append(plan.Warnings, res.Warning)
	}
	return res.Stages, nil
}

// layoutWeeks allocates consecutive seven-day spans, quest by quest, with
// globally increasing week and day numbers. The first week starts active.
func layoutWeeks(goalID string, quests []quest.Quest, questDays map[string]int) []*week.WeekPlan {
	var weeks []*week.WeekPlan
	weekNum := 1
	day := 1
	for _, q := range quests {
		days := questDays[q.ID]
		n := int(math.Ceil(float64(days) / float64(week.DaysPerWeek)))
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			w := &week.WeekPlan{
				ID:         uuid.NewString(),
				GoalID:     goalID,
				QuestID:    q.ID,
				WeekNumber: weekNum,
				StartDay:   day,
				EndDay:     day + week.DaysPerWeek - 1,
				Status:     week.StatusPending,
			}
			if weekNum == 1 {
				w.Status = week.StatusActive
			}
			weeks = append(weeks, w)
			weekNum++
			day += week.DaysPerWeek
		}
	}
	return weeks
}

// layoutMilestones creates one locked milestone per quest. Acceptance
// criteria come from the design and ship stage artifacts when present.
func (s *Service) layoutMilestones(goalID string, quests []quest.Quest, stages map[string][]quest.CapabilityStage) []*week.QuestMilestone {
	var milestones []*week.QuestMilestone
	for _, q := range quests {
		m := &week.QuestMilestone{
			ID:                     uuid.NewString(),
			QuestID:                q.ID,
			GoalID:                 goalID,
			Title:                  fmt.Sprintf("%s checkpoint", q.Title),
			RequiredMasteryPercent: s.cfg.RequiredMasteryPercent,
			Status:                 week.MilestoneLocked,
		}
		for _, st := range stages[q.ID] {
			if st.Level == quest.LevelDesign || st.Level == quest.LevelShip {
				if st.Artifact != "" {
					m.AcceptanceCriteria = append(m.AcceptanceCriteria, st.Artifact)
				}
			}
		}
		if len(m.AcceptanceCriteria) == 0 {
			m.AcceptanceCriteria = []string{
				fmt.Sprintf("Demonstrated %s end to end without reference material", q.Title),
			}
		}
		milestones = append(milestones, m)
	}
	return milestones
}
