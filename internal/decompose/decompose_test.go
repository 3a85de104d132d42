package decompose

import (
	"strings"
	"testing"

	"github.com/praxis-coach/praxis/internal/quest"
	"github.com/praxis-coach/praxis/internal/skill"
)

func testGoal() *quest.Goal {
	return &quest.Goal{ID: "goal-1", UserID: "u1", DailyMinutesBudget: 30}
}

func testQuest() quest.Quest {
	return quest.Quest{ID: "quest-1", GoalID: "goal-1", Title: "HTTP servers", Topic: "http"}
}

func fiveStages() []quest.CapabilityStage {
	return []quest.CapabilityStage{
		{Level: quest.LevelReproduce, Capability: "Can write a minimal HTTP handler", Artifact: "a handler that returns 200 on GET /health", DesignedFailure: "handler panics on nil body"},
		{Level: quest.LevelModify, Capability: "able to add routing for a second endpoint", Artifact: "the server answering two routes", DesignedFailure: "route conflict without a mux"},
		{Level: quest.LevelDiagnose, Capability: "Trace a failing request through middleware", Artifact: "a written diagnosis of the failure", DesignedFailure: "silent 404 without logs"},
		{Level: quest.LevelDesign, Capability: "Design a middleware chain", Artifact: "a middleware design sketch with ordering rationale"},
		{Level: quest.LevelShip, Capability: "Ship the server behind graceful shutdown", Artifact: "completed deployment with drain on SIGTERM"},
	}
}

func TestToAction(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Write a parser", "Write a parser"},
		{"can write a parser", "Write a parser"},
		{"is able to debug a goroutine leak", "Debug a goroutine leak"},
		{"fluency with pointers", "Practice: fluency with pointers"},
	}
	for _, c := range cases {
		if got := toAction(c.in); got != c.want {
			t.Errorf("toAction(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestToSuccessSignal(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"a working parser for the sample file", "Completed: working parser for the sample file"},
		{"Completed migration of the test suite", "Completed migration of the test suite"},
		{"the benchmark suite is complete", "Benchmark suite is complete"},
	}
	for _, c := range cases {
		if got := toSuccessSignal(c.in); got != c.want {
			t.Errorf("toSuccessSignal(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLockedVariables(t *testing.T) {
	vars := lockedVariables("completes the kata without an IDE")
	if len(vars) != 2 {
		t.Fatalf("got %d locked variables, want 2: %v", len(vars), vars)
	}
	if vars[0] != baselineConstraint {
		t.Errorf("baseline missing, got %q", vars[0])
	}
	if vars[1] != "Work without an IDE" {
		t.Errorf("derived constraint = %q", vars[1])
	}

	vars = lockedVariables("changes approach midway through the kata")
	if len(vars) != 1 {
		t.Errorf("expected baseline only, got %v", vars)
	}
}

func TestQuest_FiveStages(t *testing.T) {
	res := Quest(testQuest(), testGoal(), fiveStages(), 30)

	if len(res.Skills) < 5 {
		t.Fatalf("got %d skills, want at least 5", len(res.Skills))
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}

	for i, s := range res.Skills {
		if s.OrderIndex != i {
			t.Errorf("skill %d has order index %d", i, s.OrderIndex)
		}
		if s.EstimatedMinutes < MinSkillMinutes || s.EstimatedMinutes > 30 {
			t.Errorf("skill %d minutes %d outside [%d, 30]", i, s.EstimatedMinutes, MinSkillMinutes)
		}
		if len(s.LockedVariables) == 0 {
			t.Errorf("skill %d has no locked variables", i)
		}
		if i > 0 && len(s.PrerequisiteIDs) == 0 {
			t.Errorf("skill %d is not chained to its predecessor", i)
		}
	}

	// Linear chain: each skill requires exactly the one before it.
	for i := 1; i < len(res.Skills); i++ {
		found := false
		for _, pre := range res.Skills[i].PrerequisiteIDs {
			if pre == res.Skills[i-1].ID {
				found = true
			}
		}
		if !found {
			t.Errorf("skill %d does not require skill %d", i, i-1)
		}
	}
}

func TestQuest_TypeMapping(t *testing.T) {
	res := Quest(testQuest(), testGoal(), fiveStages(), 30)

	byLevel := make(map[string]skill.Type)
	for _, s := range res.Skills {
		byLevel[s.StageLevel] = s.Type
	}
	want := map[string]skill.Type{
		"reproduce": skill.TypeFoundation,
		"modify":    skill.TypeBuilding,
		"diagnose":  skill.TypeBuilding,
		"design":    skill.TypeCompound,
		"ship":      skill.TypeSynthesis,
	}
	for level, typ := range want {
		if byLevel[level] != typ {
			t.Errorf("level %s mapped to %s, want %s", level, byLevel[level], typ)
		}
	}
}

func TestQuest_CompoundComponents(t *testing.T) {
	res := Quest(testQuest(), testGoal(), fiveStages(), 30)

	var compound *skill.Skill
	for _, s := range res.Skills {
		if s.Type == skill.TypeCompound {
			compound = s
			break
		}
	}
	if compound == nil {
		t.Fatal("no compound skill produced")
	}
	if len(compound.ComponentIDs) == 0 {
		t.Error("compound skill has no component IDs")
	}
}

func TestSplitSkill_ExactDistribution(t *testing.T) {
	base := &skill.Skill{
		Title:            "Long kata",
		Action:           "Write the whole pipeline",
		SuccessSignal:    "Completed: pipeline runs end to end",
		LockedVariables:  []string{baselineConstraint},
		EstimatedMinutes: 130,
		DesignedFailure:  "input file is corrupt",
		Recovery:         "re-run from the last checkpoint",
	}

	parts := splitSkill(base, 30)
	if len(parts) != 5 {
		t.Fatalf("got %d parts, want 5", len(parts))
	}

	total := 0
	for i, p := range parts {
		total += p.EstimatedMinutes
		if p.EstimatedMinutes > 30 {
			t.Errorf("part %d has %d minutes, exceeds budget", i, p.EstimatedMinutes)
		}
		if !strings.Contains(p.Title, "part") {
			t.Errorf("part %d title %q has no part marker", i, p.Title)
		}
		if i > 0 {
			if len(p.PrerequisiteIDs) != 1 || p.PrerequisiteIDs[0] != parts[i-1].ID {
				t.Errorf("part %d not chained to part %d", i+1, i)
			}
		}
		if i < len(parts)-1 && p.DesignedFailure != "" {
			t.Errorf("part %d carries resilience fields, only the final part should", i+1)
		}
	}
	if total != 130 {
		t.Errorf("parts sum to %d minutes, want 130", total)
	}
	if last := parts[len(parts)-1]; last.DesignedFailure == "" || last.Recovery == "" {
		t.Error("final part lost the resilience fields")
	}
}

func TestQuest_EmptyStages(t *testing.T) {
	res := Quest(testQuest(), testGoal(), nil, 30)
	if len(res.Skills) != 0 {
		t.Fatalf("expected no skills, got %d", len(res.Skills))
	}
	if len(res.Warnings) == 0 {
		t.Error("expected a warning for a quest with no usable skills")
	}
}

func TestQuest_InvalidStageSkipped(t *testing.T) {
	stages := []quest.CapabilityStage{
		{Level: quest.LevelReproduce, Capability: "Can write a loop", Artifact: "x"}, // signal too short
		{Level: quest.LevelModify, Capability: "Can extend the loop", Artifact: "a loop over the full dataset"},
	}
	res := Quest(testQuest(), testGoal(), stages, 30)
	if len(res.Skills) != 1 {
		t.Fatalf("got %d skills, want 1 (invalid stage skipped)", len(res.Skills))
	}
	if len(res.Warnings) == 0 {
		t.Error("expected a warning for the invalid stage")
	}
}
