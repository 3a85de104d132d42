package store

import (
	"context"

	"github.com/praxis-coach/praxis/ent"
	entskill "github.com/praxis-coach/praxis/ent/skill"
	"github.com/praxis-coach/praxis/internal/fault"
	"github.com/praxis-coach/praxis/internal/skill"
)

// skillRepo implements SkillRepo backed by ent.
type skillRepo struct {
	client *ent.Client
}

func (r *skillRepo) CreateBatch(ctx context.Context, skills []*skill.Skill) error {
	builders := make([]*ent.SkillCreate, 0, len(skills))
	for _, s := range skills {
		b := r.client.Skill.Create().
			SetID(s.ID).
			SetQuestID(s.QuestID).
			SetGoalID(s.GoalID).
			SetUserID(s.UserID).
			SetTitle(s.Title).
			SetAction(s.Action).
			SetSuccessSignal(s.SuccessSignal).
			SetLockedVariables(s.LockedVariables).
			SetEstimatedMinutes(s.EstimatedMinutes).
			SetSkillType(string(s.Type)).
			SetOrderIndex(s.OrderIndex).
			SetStageLevel(s.StageLevel).
			SetPrerequisites(s.PrerequisiteIDs).
			SetComponents(s.ComponentIDs).
			SetDesignedFailure(s.DesignedFailure).
			SetConsequence(s.Consequence).
			SetRecovery(s.Recovery).
			SetTransferScenario(s.TransferScenario).
			SetMastery(string(s.Mastery)).
			SetStatus(string(s.Status)).
			SetPassCount(s.PassCount).
			SetFailCount(s.FailCount).
			SetConsecutivePasses(s.ConsecutivePasses).
			SetNeedsReview(s.NeedsReview).
			SetNillableLastPracticedAt(s.LastPracticedAt)
		builders = append(builders, b)
	}
	if _, err := r.client.Skill.CreateBulk(builders...).Save(ctx); err != nil {
		return fault.Store(err, "create %d skills", len(skills))
	}
	return nil
}

func (r *skillRepo) Get(ctx context.Context, id string) (*skill.Skill, error) {
	e, err := r.client.Skill.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fault.NotFound("skill %s", id)
	}
	if err != nil {
		return nil, fault.Store(err, "get skill %s", id)
	}
	return fromEntSkill(e), nil
}

func (r *skillRepo) ListByGoal(ctx context.Context, goalID string) ([]*skill.Skill, error) {
	rows, err := r.client.Skill.Query().
		Where(entskill.GoalID(goalID)).
		Order(ent.Asc(entskill.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return nil, fault.Store(err, "list skills for goal %s", goalID)
	}
	return fromEntSkills(rows), nil
}

func (r *skillRepo) ListByQuest(ctx context.Context, questID string) ([]*skill.Skill, error) {
	rows, err := r.client.Skill.Query().
		Where(entskill.QuestID(questID)).
		Order(ent.Asc(entskill.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return nil, fault.Store(err, "list skills for quest %s", questID)
	}
	return fromEntSkills(rows), nil
}

func (r *skillRepo) UpdateTracking(ctx context.Context, s *skill.Skill) error {
	b := r.client.Skill.UpdateOneID(s.ID).
		SetMastery(string(s.Mastery)).
		SetStatus(string(s.Status)).
		SetPassCount(s.PassCount).
		SetFailCount(s.FailCount).
		SetConsecutivePasses(s.ConsecutivePasses).
		SetNeedsReview(s.NeedsReview)
	if s.LastPracticedAt != nil {
		b = b.SetLastPracticedAt(*s.LastPracticedAt)
	} else {
		b = b.ClearLastPracticedAt()
	}
	if _, err := b.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fault.NotFound("skill %s", s.ID)
		}
		return fault.Store(err, "update skill %s", s.ID)
	}
	return nil
}

func fromEntSkill(e *ent.Skill) *skill.Skill {
	return &skill.Skill{
		ID:               e.ID,
		QuestID:          e.QuestID,
		GoalID:           e.GoalID,
		UserID:           e.UserID,
		Title:            e.Title,
		Action:           e.Action,
		SuccessSignal:    e.SuccessSignal,
		LockedVariables:  e.LockedVariables,
		EstimatedMinutes: e.EstimatedMinutes,
		Type:             skill.Type(e.SkillType),
		OrderIndex:       e.OrderIndex,
		StageLevel:       e.StageLevel,
		PrerequisiteIDs:  e.Prerequisites,
		ComponentIDs:     e.Components,
		DesignedFailure:  e.DesignedFailure,
		Consequence:      e.Consequence,
		Recovery:         e.Recovery,
		TransferScenario: e.TransferScenario,
		Mastery:          skill.Mastery(e.Mastery),
		Status:           skill.Status(e.Status),
		PassCount:        e.PassCount,
		FailCount:        e.FailCount,
		ConsecutivePasses: e.ConsecutivePasses,
		NeedsReview:       e.NeedsReview,
		LastPracticedAt:   e.LastPracticedAt,
	}
}

func fromEntSkills(rows []*ent.Skill) []*skill.Skill {
	out := make([]*skill.Skill, len(rows))
	for i, e := range rows {
		out[i] = fromEntSkill(e)
	}
	return out
}
