// Package decompose turns a quest's ordered capability stages into atomic,
// time-boxed skills: normalizing actions and success signals, synthesizing
// locked-variable constraints, estimating and splitting time boxes, and
// chaining prerequisites.
package decompose

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/praxis-coach/praxis/internal/quest"
	"github.com/praxis-coach/praxis/internal/skill"
)

// MinSuccessSignalLen is the shortest success signal considered usable.
const MinSuccessSignalLen = 10

// Result is the outcome of decomposing one quest.
type Result struct {
	Skills        []*skill.Skill
	TotalMinutes  int
	EstimatedDays int
	Warnings      []string
}

// typeForLevel maps a capability stage level to a skill type.
// Reproduce drills an isolated basic; modify and diagnose build on it;
// design combines components; ship is full synthesis.
func typeForLevel(l quest.StageLevel) skill.Type {
	switch l {
	case quest.LevelReproduce:
		return skill.TypeFoundation
	case quest.LevelModify, quest.LevelDiagnose:
		return skill.TypeBuilding
	case quest.LevelDesign:
		return skill.TypeCompound
	case quest.LevelShip:
		return skill.TypeSynthesis
	default:
		return skill.TypeFoundation
	}
}

// Quest decomposes one quest's stages into skills. Invalid stages are
// skipped with a warning; a quest yielding zero usable skills is reported
// through Result.Warnings, never as an error, so other quests keep going.
func Quest(q quest.Quest, g *quest.Goal, stages []quest.CapabilityStage, dailyMinutesBudget int) *Result {
	res := &Result{}
	order := 0

	for i, stage := range stages {
		action := toAction(stage.Capability)
		signal := toSuccessSignal(stage.Artifact)
		locked := lockedVariables(stage.DesignedFailure)
		minutes := estimateMinutes(action, stage.Artifact)

		base := &skill.Skill{
			QuestID:          q.ID,
			GoalID:           g.ID,
			UserID:           g.UserID,
			Title:            fmt.Sprintf("%s — %s", q.Title, stage.Level),
			Action:           action,
			SuccessSignal:    signal,
			LockedVariables:  locked,
			EstimatedMinutes: minutes,
			Type:             typeForLevel(stage.Level),
			StageLevel:       string(stage.Level),
			DesignedFailure:  stage.DesignedFailure,
			Consequence:      stage.Consequence,
			Recovery:         stage.Recovery,
			TransferScenario: stage.TransferScenario,
			Mastery:          skill.MasteryNotStarted,
			Status:           skill.StatusLocked,
		}

		parts := splitSkill(base, dailyMinutesBudget)

		ok := true
		for _, p := range parts {
			if err := validateSkill(p, dailyMinutesBudget); err != nil {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("quest %q stage %d (%s): %v", q.Title, i, stage.Level, err))
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		// Compound skills record the skills they combine: everything the
		// quest has produced so far.
		if base.Type == skill.TypeCompound {
			for _, prior := range res.Skills {
				parts[0].ComponentIDs = append(parts[0].ComponentIDs, prior.ID)
			}
		}

		for _, p := range parts {
			p.OrderIndex = order
			order++
			res.Skills = append(res.Skills, p)
			res.TotalMinutes += p.EstimatedMinutes
		}
	}

	if len(res.Skills) == 0 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("quest %q produced no usable skills and was skipped", q.Title))
		return res
	}

	// Chain consecutive skills: same-stage and adjacent-stage links only,
	// which linear chaining gives by construction.
	for i := 1; i < len(res.Skills); i++ {
		cur := res.Skills[i]
		prev := res.Skills[i-1]
		if !contains(cur.PrerequisiteIDs, prev.ID) {
			cur.PrerequisiteIDs = append(cur.PrerequisiteIDs, prev.ID)
		}
	}

	res.EstimatedDays = len(res.Skills)
	if byTime := int(math.Ceil(float64(res.TotalMinutes) / float64(dailyMinutesBudget))); byTime > res.EstimatedDays {
		res.EstimatedDays = byTime
	}

	return res
}

// splitSkill splits a skill whose time box exceeds the daily budget into
// ceil(minutes/budget) ordered parts that sum to the original minutes, each
// within budget. Only the final part keeps the resilience fields; parts are
// prerequisite-chained.
func splitSkill(base *skill.Skill, budget int) []*skill.Skill {
	base.ID = uuid.NewString()
	if base.EstimatedMinutes <= budget {
		return []*skill.Skill{base}
	}

	n := (base.EstimatedMinutes + budget - 1) / budget
	per := base.EstimatedMinutes / n
	rem := base.EstimatedMinutes % n

	parts := make([]*skill.Skill, n)
	for i := 0; i < n; i++ {
		p := *base
		p.ID = uuid.NewString()
		p.Title = fmt.Sprintf("%s (part %d/%d)", base.Title, i+1, n)
		p.EstimatedMinutes = per
		if i < rem {
			p.EstimatedMinutes++
		}
		p.LockedVariables = append([]string(nil), base.LockedVariables...)
		if i < n-1 {
			// Resilience surfaces only in the final part, where the
			// designed failure is actually provoked.
			p.DesignedFailure = ""
			p.Consequence = ""
			p.Recovery = ""
			p.TransferScenario = ""
		}
		if i > 0 {
			p.PrerequisiteIDs = []string{parts[i-1].ID}
		}
		parts[i] = &p
	}
	return parts
}

// validateSkill enforces the decomposer's contract on a finished skill.
func validateSkill(s *skill.Skill, budget int) error {
	if !startsWithVerb(s.Action) {
		return fmt.Errorf("action is not verb-first: %q", s.Action)
	}
	if len(strings.TrimPrefix(s.SuccessSignal, "Completed: ")) < MinSuccessSignalLen {
		return fmt.Errorf("success signal too short: %q", s.SuccessSignal)
	}
	if len(s.LockedVariables) == 0 {
		return fmt.Errorf("no locked variables")
	}
	if s.EstimatedMinutes < MinSkillMinutes || s.EstimatedMinutes > budget {
		return fmt.Errorf("estimated minutes %d outside [%d, %d]", s.EstimatedMinutes, MinSkillMinutes, budget)
	}
	return nil
}

func contains(ss []string, v string) bool {
	for _, s := range ss {
		if s == v {
			return true
		}
	}
	return false
}
