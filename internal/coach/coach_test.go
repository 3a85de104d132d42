package coach

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/praxis-coach/praxis/internal/drill"
	"github.com/praxis-coach/praxis/internal/fault"
	"github.com/praxis-coach/praxis/internal/quest"
	"github.com/praxis-coach/praxis/internal/skill"
	"github.com/praxis-coach/praxis/internal/stagegen"
	"github.com/praxis-coach/praxis/internal/store"
	"github.com/praxis-coach/praxis/internal/week"
)

// memStores is an in-memory implementation of the store interfaces. Reads
// and writes copy, so state only changes through the repo methods, the same
// contract the SQLite-backed repos give.
type memStores struct {
	skills     map[string]*skill.Skill
	skillOrder []string
	drills     map[string]*drill.Drill
	weeks      map[string]*week.WeekPlan
	plans      map[string]*store.LearningPlan
	milestones map[string]*week.QuestMilestone
	events     []store.MasteryEventData
}

func newMemStores() *memStores {
	return &memStores{
		skills:     map[string]*skill.Skill{},
		drills:     map[string]*drill.Drill{},
		weeks:      map[string]*week.WeekPlan{},
		plans:      map[string]*store.LearningPlan{},
		milestones: map[string]*week.QuestMilestone{},
	}
}

func (m *memStores) stores() Stores {
	return Stores{
		Skills:     (*memSkills)(m),
		Drills:     (*memDrills)(m),
		Weeks:      (*memWeeks)(m),
		Plans:      (*memPlans)(m),
		Milestones: (*memMilestones)(m),
		Events:     (*memEvents)(m),
	}
}

func copySkill(s *skill.Skill) *skill.Skill {
	c := *s
	c.LockedVariables = append([]string(nil), s.LockedVariables...)
	c.PrerequisiteIDs = append([]string(nil), s.PrerequisiteIDs...)
	c.ComponentIDs = append([]string(nil), s.ComponentIDs...)
	if s.LastPracticedAt != nil {
		t := *s.LastPracticedAt
		c.LastPracticedAt = &t
	}
	return &c
}

type memSkills memStores

func (m *memSkills) CreateBatch(_ context.Context, skills []*skill.Skill) error {
	for _, s := range skills {
		m.skills[s.ID] = copySkill(s)
		m.skillOrder = append(m.skillOrder, s.ID)
	}
	return nil
}

func (m *memSkills) Get(_ context.Context, id string) (*skill.Skill, error) {
	s, ok := m.skills[id]
	if !ok {
		return nil, fault.NotFound("skill %s", id)
	}
	return copySkill(s), nil
}

func (m *memSkills) list(filter func(*skill.Skill) bool) []*skill.Skill {
	var out []*skill.Skill
	for _, id := range m.skillOrder {
		if s := m.skills[id]; filter(s) {
			out = append(out, copySkill(s))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out
}

func (m *memSkills) ListByGoal(_ context.Context, goalID string) ([]*skill.Skill, error) {
	return m.list(func(s *skill.Skill) bool { return s.GoalID == goalID }), nil
}

func (m *memSkills) ListByQuest(_ context.Context, questID string) ([]*skill.Skill, error) {
	return m.list(func(s *skill.Skill) bool { return s.QuestID == questID }), nil
}

func (m *memSkills) UpdateTracking(_ context.Context, s *skill.Skill) error {
	cur, ok := m.skills[s.ID]
	if !ok {
		return fault.NotFound("skill %s", s.ID)
	}
	cur.Mastery = s.Mastery
	cur.Status = s.Status
	cur.PassCount = s.PassCount
	cur.FailCount = s.FailCount
	cur.ConsecutivePasses = s.ConsecutivePasses
	cur.NeedsReview = s.NeedsReview
	cur.LastPracticedAt = nil
	if s.LastPracticedAt != nil {
		t := *s.LastPracticedAt
		cur.LastPracticedAt = &t
	}
	return nil
}

func copyDrill(d *drill.Drill) *drill.Drill {
	c := *d
	if d.Warmup != nil {
		w := *d.Warmup
		c.Warmup = &w
	}
	if d.Stretch != nil {
		st := *d.Stretch
		c.Stretch = &st
	}
	if d.CompletedAt != nil {
		t := *d.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}

type memDrills memStores

func (m *memDrills) Create(_ context.Context, d *drill.Drill) error {
	for _, cur := range m.drills {
		if cur.UserID == d.UserID && cur.GoalID == d.GoalID && cur.Date == d.Date {
			return fault.InvalidState("drill already exists for %s on %s", d.GoalID, d.Date)
		}
	}
	m.drills[d.ID] = copyDrill(d)
	return nil
}

func (m *memDrills) GetByDate(_ context.Context, userID, goalID, date string) (*drill.Drill, error) {
	for _, d := range m.drills {
		if d.UserID == userID && d.GoalID == goalID && d.Date == date {
			return copyDrill(d), nil
		}
	}
	return nil, nil
}

func (m *memDrills) Latest(_ context.Context, userID, goalID string) (*drill.Drill, error) {
	var latest *drill.Drill
	for _, d := range m.drills {
		if d.UserID != userID || d.GoalID != goalID {
			continue
		}
		if latest == nil || d.Date > latest.Date {
			latest = d
		}
	}
	if latest == nil {
		return nil, nil
	}
	return copyDrill(latest), nil
}

func (m *memDrills) RecordOutcome(_ context.Context, id string, outcome drill.Outcome, observation string, completedAt time.Time) error {
	d, ok := m.drills[id]
	if !ok {
		return fault.NotFound("drill %s", id)
	}
	if d.Status != drill.StatusScheduled {
		return fault.InvalidState("drill %s is %s", id, d.Status)
	}
	d.Status = drill.StatusCompleted
	d.Outcome = outcome
	d.Observation = observation
	t := completedAt
	d.CompletedAt = &t
	return nil
}

func (m *memDrills) MarkMissed(_ context.Context, id string) error {
	d, ok := m.drills[id]
	if !ok {
		return fault.NotFound("drill %s", id)
	}
	if d.Status != drill.StatusScheduled {
		return fault.InvalidState("drill %s is %s", id, d.Status)
	}
	d.Status = drill.StatusMissed
	return nil
}

func (m *memDrills) ListOpenBefore(_ context.Context, userID, goalID, date string) ([]*drill.Drill, error) {
	var out []*drill.Drill
	for _, d := range m.drills {
		if d.UserID == userID && d.GoalID == goalID && d.Status == drill.StatusScheduled && d.Date < date {
			out = append(out, copyDrill(d))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

type memWeeks memStores

func copyWeek(w *week.WeekPlan) *week.WeekPlan {
	c := *w
	c.CarryForwardIDs = append([]string(nil), w.CarryForwardIDs...)
	return &c
}

func (m *memWeeks) CreateBatch(_ context.Context, weeks []*week.WeekPlan) error {
	for _, w := range weeks {
		m.weeks[w.ID] = copyWeek(w)
	}
	return nil
}

func (m *memWeeks) Get(_ context.Context, id string) (*week.WeekPlan, error) {
	w, ok := m.weeks[id]
	if !ok {
		return nil, fault.NotFound("week plan %s", id)
	}
	return copyWeek(w), nil
}

func (m *memWeeks) GetActive(_ context.Context, goalID string) (*week.WeekPlan, error) {
	for _, w := range m.weeks {
		if w.GoalID == goalID && w.Status == week.StatusActive {
			return copyWeek(w), nil
		}
	}
	return nil, nil
}

func (m *memWeeks) ListByGoal(_ context.Context, goalID string) ([]*week.WeekPlan, error) {
	var out []*week.WeekPlan
	for _, w := range m.weeks {
		if w.GoalID == goalID {
			out = append(out, copyWeek(w))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeekNumber < out[j].WeekNumber })
	return out, nil
}

func (m *memWeeks) Update(_ context.Context, w *week.WeekPlan) error {
	if _, ok := m.weeks[w.ID]; !ok {
		return fault.NotFound("week plan %s", w.ID)
	}
	m.weeks[w.ID] = copyWeek(w)
	return nil
}

type memPlans memStores

func (m *memPlans) Create(_ context.Context, p *store.LearningPlan) error {
	if _, ok := m.plans[p.GoalID]; ok {
		return fault.InvalidState("goal %s already has a plan", p.GoalID)
	}
	c := *p
	m.plans[p.GoalID] = &c
	return nil
}

func (m *memPlans) GetByGoal(_ context.Context, goalID string) (*store.LearningPlan, error) {
	p, ok := m.plans[goalID]
	if !ok {
		return nil, fault.NotFound("no plan for goal %s", goalID)
	}
	c := *p
	return &c, nil
}

func (m *memPlans) List(_ context.Context) ([]*store.LearningPlan, error) {
	var out []*store.LearningPlan
	for _, p := range m.plans {
		c := *p
		out = append(out, &c)
	}
	return out, nil
}

type memMilestones memStores

func (m *memMilestones) CreateBatch(_ context.Context, milestones []*week.QuestMilestone) error {
	for _, ms := range milestones {
		c := *ms
		m.milestones[ms.QuestID] = &c
	}
	return nil
}

func (m *memMilestones) GetByQuest(_ context.Context, questID string) (*week.QuestMilestone, error) {
	ms, ok := m.milestones[questID]
	if !ok {
		return nil, fault.NotFound("no milestone for quest %s", questID)
	}
	c := *ms
	return &c, nil
}

func (m *memMilestones) ListByGoal(_ context.Context, goalID string) ([]*week.QuestMilestone, error) {
	var out []*week.QuestMilestone
	for _, ms := range m.milestones {
		if ms.GoalID == goalID {
			c := *ms
			out = append(out, &c)
		}
	}
	return out, nil
}

func (m *memMilestones) Update(_ context.Context, ms *week.QuestMilestone) error {
	if _, ok := m.milestones[ms.QuestID]; !ok {
		return fault.NotFound("milestone %s", ms.ID)
	}
	c := *ms
	m.milestones[ms.QuestID] = &c
	return nil
}

type memEvents memStores

func (m *memEvents) AppendLLMRequest(context.Context, store.LLMRequestEventData) error { return nil }

func (m *memEvents) AppendMasteryEvent(_ context.Context, data store.MasteryEventData) error {
	m.events = append(m.events, data)
	return nil
}

func (m *memEvents) ListLLMRequests(context.Context, int) ([]*store.LLMRequestEvent, error) {
	return nil, nil
}

func (m *memEvents) ListMasteryEvents(_ context.Context, goalID string, limit int) ([]*store.MasteryEvent, error) {
	var out []*store.MasteryEvent
	for i := len(m.events) - 1; i >= 0; i-- {
		e := m.events[i]
		if e.GoalID != goalID {
			continue
		}
		out = append(out, &store.MasteryEvent{
			Sequence:  int64(i),
			SkillID:   e.SkillID,
			GoalID:    e.GoalID,
			FromState: e.FromState,
			ToState:   e.ToState,
			Trigger:   e.Trigger,
			DrillID:   e.DrillID,
		})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// fallbackStages is a StageSource that always serves the deterministic
// templates.
type fallbackStages struct{}

func (fallbackStages) Generate(_ context.Context, q quest.Quest) (*stagegen.Result, error) {
	return &stagegen.Result{Stages: stagegen.FallbackStages(q), Fallback: true}, nil
}

type fixture struct {
	svc *Service
	mem *memStores
	g   *quest.Goal
}

func newFixture(t *testing.T, duration quest.Duration) *fixture {
	t.Helper()
	mem := newMemStores()
	svc := NewService(mem.stores(), fallbackStages{}, DefaultConfig())

	g := &quest.Goal{
		ID:                 "goal-1",
		UserID:             "user-1",
		Title:              "Backend fundamentals",
		Duration:           duration,
		DailyMinutesBudget: 45,
	}
	quests := []quest.Quest{
		{ID: "quest-1", GoalID: g.ID, Title: "HTTP handlers", Topic: "http", OrderIndex: 0},
		{ID: "quest-2", GoalID: g.ID, Title: "Database access", Topic: "sql", OrderIndex: 1},
	}
	g.QuestIDs = []string{"quest-1", "quest-2"}

	if _, err := svc.InitializePlan(context.Background(), g, quests, nil); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return &fixture{svc: svc, mem: mem, g: g}
}

// date returns the nth practice date, 1-based.
func date(n int) string {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, n-1).Format(drill.DateLayout)
}

func TestInitializePlan(t *testing.T) {
	f := newFixture(t, quest.DurationFixed)
	ctx := context.Background()

	skills, err := f.mem.stores().Skills.ListByGoal(ctx, f.g.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(skills) == 0 {
		t.Fatal("expected decomposed skills")
	}

	// Only the first skill is available at the start.
	if skills[0].Status != skill.StatusAvailable {
		t.Errorf("first skill status = %q, want available", skills[0].Status)
	}
	for _, sk := range skills[1:] {
		if sk.Status != skill.StatusLocked {
			t.Errorf("skill %q status = %q, want locked", sk.Title, sk.Status)
		}
	}

	// Quests chain: quest-2's first skill requires quest-1's last.
	var lastQ1, firstQ2 *skill.Skill
	for _, sk := range skills {
		if sk.QuestID == "quest-1" {
			lastQ1 = sk
		}
		if sk.QuestID == "quest-2" && firstQ2 == nil {
			firstQ2 = sk
		}
	}
	found := false
	for _, id := range firstQ2.PrerequisiteIDs {
		if id == lastQ1.ID {
			found = true
		}
	}
	if !found {
		t.Error("quest-2's first skill does not require quest-1's last skill")
	}

	// First week active, milestones locked.
	w, err := f.svc.GetCurrentWeek(ctx, f.g.ID)
	if err != nil || w == nil {
		t.Fatalf("current week = %v, %v", w, err)
	}
	if w.WeekNumber != 1 {
		t.Errorf("active week = %d, want 1", w.WeekNumber)
	}
	for _, questID := range f.g.QuestIDs {
		m, err := f.mem.stores().Milestones.GetByQuest(ctx, questID)
		if err != nil {
			t.Fatalf("milestone %s: %v", questID, err)
		}
		if m.Status != week.MilestoneLocked {
			t.Errorf("milestone %s = %q, want locked", questID, m.Status)
		}
	}
}

func TestInitializePlanNoStagesNoSource(t *testing.T) {
	mem := newMemStores()
	svc := NewService(mem.stores(), nil, DefaultConfig())
	g := &quest.Goal{ID: "goal-1", UserID: "user-1", Duration: quest.DurationFixed, DailyMinutesBudget: 30}
	_, err := svc.InitializePlan(context.Background(), g, []quest.Quest{{ID: "q1", Title: "Anything"}}, nil)
	if !fault.Is(err, fault.KindProcessing) {
		t.Fatalf("err = %v, want processing_error", err)
	}
}

func TestInitializePlanNilProviderUsesTemplates(t *testing.T) {
	mem := newMemStores()
	source := stagegen.NewService(nil, nil, stagegen.DefaultConfig())
	svc := NewService(mem.stores(), source, DefaultConfig())

	g := &quest.Goal{
		ID:                 "goal-1",
		UserID:             "user-1",
		Title:              "Backend fundamentals",
		Duration:           quest.DurationFixed,
		DailyMinutesBudget: 45,
		QuestIDs:           []string{"quest-1"},
	}
	quests := []quest.Quest{
		{ID: "quest-1", GoalID: g.ID, Title: "HTTP handlers", Topic: "http", OrderIndex: 0},
	}

	plan, err := svc.InitializePlan(context.Background(), g, quests, nil)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if plan.TotalSkills == 0 {
		t.Fatal("plan has no skills")
	}
	skills, err := mem.stores().Skills.ListByGoal(context.Background(), g.ID)
	if err != nil {
		t.Fatalf("list skills: %v", err)
	}
	if len(skills) != plan.TotalSkills {
		t.Errorf("persisted %d skills, plan says %d", len(skills), plan.TotalSkills)
	}
}

func TestGetTodayPracticeIdempotent(t *testing.T) {
	f := newFixture(t, quest.DurationFixed)
	ctx := context.Background()

	first, err := f.svc.GetTodayPractice(ctx, f.g.ID, date(1))
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := f.svc.GetTodayPractice(ctx, f.g.ID, date(1))
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first.Drill.ID != second.Drill.ID {
		t.Errorf("drill IDs differ: %s vs %s", first.Drill.ID, second.Drill.ID)
	}
	if first.Drill.TotalMinutes() > f.g.DailyMinutesBudget {
		t.Errorf("drill minutes %d exceed budget %d", first.Drill.TotalMinutes(), f.g.DailyMinutesBudget)
	}
}

func TestRecordOutcomeIdempotent(t *testing.T) {
	f := newFixture(t, quest.DurationFixed)
	ctx := context.Background()

	today, err := f.svc.GetTodayPractice(ctx, f.g.ID, date(1))
	if err != nil {
		t.Fatalf("today: %v", err)
	}

	res, err := f.svc.RecordOutcome(ctx, f.g.ID, date(1), drill.OutcomePass, "went fine")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if res.Transition.To != skill.MasteryPracticing {
		t.Errorf("mastery after first pass = %q, want practicing", res.Transition.To)
	}

	// Same outcome again: acknowledged, nothing double-counted.
	res2, err := f.svc.RecordOutcome(ctx, f.g.ID, date(1), drill.OutcomePass, "again")
	if err != nil {
		t.Fatalf("re-record: %v", err)
	}
	if !res2.AlreadyRecorded {
		t.Error("expected AlreadyRecorded")
	}
	sk, _ := f.mem.stores().Skills.Get(ctx, today.Drill.SkillID)
	if sk.PassCount != 1 {
		t.Errorf("pass count = %d, want 1", sk.PassCount)
	}

	// A different outcome is rejected.
	_, err = f.svc.RecordOutcome(ctx, f.g.ID, date(1), drill.OutcomeFail, "")
	if !fault.Is(err, fault.KindInvalidState) {
		t.Fatalf("conflicting record err = %v, want invalid_state", err)
	}

	w, _ := f.svc.GetCurrentWeek(ctx, f.g.ID)
	if w.DrillsCompleted != 1 || w.DrillsPassed != 1 {
		t.Errorf("week counters = (%d completed, %d passed), want (1, 1)", w.DrillsCompleted, w.DrillsPassed)
	}
}

func TestFailSchedulesRetry(t *testing.T) {
	f := newFixture(t, quest.DurationFixed)
	ctx := context.Background()

	today, err := f.svc.GetTodayPractice(ctx, f.g.ID, date(1))
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	baseMinutes := today.Drill.Main.Minutes

	res, err := f.svc.RecordOutcome(ctx, f.g.ID, date(1), drill.OutcomeFail, "lost the thread halfway")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !res.RetryTomorrow {
		t.Error("expected RetryTomorrow after a fail")
	}

	next, err := f.svc.GetTodayPractice(ctx, f.g.ID, date(2))
	if err != nil {
		t.Fatalf("next day: %v", err)
	}
	if !next.Drill.IsRetry || next.Drill.RetryCount != 1 {
		t.Fatalf("retry drill = %+v, want retry count 1", next.Drill)
	}
	if next.Drill.SkillID != today.Drill.SkillID {
		t.Error("retry targets a different skill")
	}
	if next.Drill.Main.Minutes <= baseMinutes {
		t.Errorf("retry minutes %d not scaled above %d", next.Drill.Main.Minutes, baseMinutes)
	}
	if next.Drill.Stretch != nil {
		t.Error("retry drill should drop the stretch")
	}
}

func TestRetryCapFlagsReview(t *testing.T) {
	f := newFixture(t, quest.DurationFixed)
	ctx := context.Background()

	// Fail every day until the retry cap is exhausted.
	maxRetries := f.svc.cfg.Drill.MaxRetries
	var skillID string
	for day := 1; day <= maxRetries+1; day++ {
		today, err := f.svc.GetTodayPractice(ctx, f.g.ID, date(day))
		if err != nil {
			t.Fatalf("day %d: %v", day, err)
		}
		if day == 1 {
			skillID = today.Drill.SkillID
		}
		if _, err := f.svc.RecordOutcome(ctx, f.g.ID, date(day), drill.OutcomeFail, "still stuck"); err != nil {
			t.Fatalf("record day %d: %v", day, err)
		}
	}

	// Automatic retries stop: the next drill is a plain one, and the
	// flag survives in the store.
	after, err := f.svc.GetTodayPractice(ctx, f.g.ID, date(maxRetries+2))
	if err != nil {
		t.Fatalf("after cap: %v", err)
	}
	if after.Drill.IsRetry {
		t.Error("exhausted skill was auto-retried past the cap")
	}
	sk, _ := f.mem.stores().Skills.Get(ctx, skillID)
	if !sk.NeedsReview {
		t.Error("expected needs_review flag after retry cap")
	}

	p, err := f.svc.GetProgress(ctx, f.g.ID)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if len(p.NeedsReview) != 1 || p.NeedsReview[0].ID != skillID {
		t.Errorf("needs-review list = %v, want [%s]", p.NeedsReview, skillID)
	}
}

func TestMissedDayReconciliation(t *testing.T) {
	f := newFixture(t, quest.DurationFixed)
	ctx := context.Background()

	if _, err := f.svc.GetTodayPractice(ctx, f.g.ID, date(1)); err != nil {
		t.Fatalf("day 1: %v", err)
	}

	// Day 1 never recorded; two days later it is reconciled as missed.
	today, err := f.svc.GetTodayPractice(ctx, f.g.ID, date(3))
	if err != nil {
		t.Fatalf("day 3: %v", err)
	}
	if len(today.Reconciled) != 1 || today.Reconciled[0] != date(1) {
		t.Errorf("reconciled = %v, want [%s]", today.Reconciled, date(1))
	}
	old, _ := f.mem.stores().Drills.GetByDate(ctx, f.g.UserID, f.g.ID, date(1))
	if old.Status != drill.StatusMissed {
		t.Errorf("day 1 status = %q, want missed", old.Status)
	}
}

func TestMasteryUnlocksNextSkill(t *testing.T) {
	f := newFixture(t, quest.DurationFixed)
	ctx := context.Background()

	// Pass until the first skill is mastered.
	var firstSkill string
	day := 1
	for {
		today, err := f.svc.GetTodayPractice(ctx, f.g.ID, date(day))
		if err != nil {
			t.Fatalf("day %d: %v", day, err)
		}
		if firstSkill == "" {
			firstSkill = today.Drill.SkillID
		}
		res, err := f.svc.RecordOutcome(ctx, f.g.ID, date(day), drill.OutcomePass, "clean")
		if err != nil {
			t.Fatalf("record day %d: %v", day, err)
		}
		if res.Transition.SkillID == firstSkill && res.Transition.To == skill.MasteryMastered {
			break
		}
		day++
		if day > 10 {
			t.Fatal("first skill never mastered")
		}
	}

	sk, _ := f.mem.stores().Skills.Get(ctx, firstSkill)
	if sk.PassCount < 3 || sk.ConsecutivePasses < 2 {
		t.Errorf("mastered with counters (%d, %d)", sk.PassCount, sk.ConsecutivePasses)
	}

	// Unlock propagation persisted: some dependent is now available.
	skills, _ := f.mem.stores().Skills.ListByGoal(ctx, f.g.ID)
	available := 0
	for _, s := range skills {
		if s.Status == skill.StatusAvailable {
			available++
		}
	}
	if available == 0 {
		t.Error("no skill available after mastering the first")
	}

	// Mastery events were logged.
	if len(f.mem.events) == 0 {
		t.Error("expected mastery events")
	}
}

func TestFixedGoalCompletes(t *testing.T) {
	f := newFixture(t, quest.DurationFixed)
	ctx := context.Background()

	// Master everything by brute force through the repos.
	skills, _ := f.mem.stores().Skills.ListByGoal(ctx, f.g.ID)
	for _, sk := range skills {
		sk.Mastery = skill.MasteryMastered
		sk.Status = skill.StatusMastered
		sk.PassCount = 3
		sk.ConsecutivePasses = 3
		if err := f.mem.stores().Skills.UpdateTracking(ctx, sk); err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	_, err := f.svc.GetTodayPractice(ctx, f.g.ID, date(1))
	if !fault.Is(err, fault.KindCompleted) {
		t.Fatalf("err = %v, want completed", err)
	}
}

func TestOngoingGoalLoopsBack(t *testing.T) {
	f := newFixture(t, quest.DurationOngoing)
	ctx := context.Background()

	skills, _ := f.mem.stores().Skills.ListByGoal(ctx, f.g.ID)
	past := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	for i, sk := range skills {
		sk.Mastery = skill.MasteryMastered
		sk.Status = skill.StatusMastered
		sk.PassCount = 3
		sk.ConsecutivePasses = 3
		t0 := past.Add(time.Duration(i) * time.Hour)
		sk.LastPracticedAt = &t0
		if err := f.mem.stores().Skills.UpdateTracking(ctx, sk); err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	today, err := f.svc.GetTodayPractice(ctx, f.g.ID, date(1))
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	// The stalest mastered skill comes back around.
	if today.Drill.SkillID != skills[0].ID {
		t.Errorf("looped to %s, want stalest %s", today.Drill.SkillID, skills[0].ID)
	}
}

func TestSkipLeavesMasteryAlone(t *testing.T) {
	f := newFixture(t, quest.DurationFixed)
	ctx := context.Background()

	today, err := f.svc.GetTodayPractice(ctx, f.g.ID, date(1))
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	before, _ := f.mem.stores().Skills.Get(ctx, today.Drill.SkillID)

	if _, err := f.svc.SkipDrill(ctx, f.g.ID, date(1), "travel day"); err != nil {
		t.Fatalf("skip: %v", err)
	}

	after, _ := f.mem.stores().Skills.Get(ctx, today.Drill.SkillID)
	if after.Mastery != before.Mastery || after.PassCount != before.PassCount {
		t.Error("skip changed mastery state")
	}
	w, _ := f.svc.GetCurrentWeek(ctx, f.g.ID)
	if w.DrillsSkipped != 1 {
		t.Errorf("skipped counter = %d, want 1", w.DrillsSkipped)
	}
}

func TestWeekRollsOver(t *testing.T) {
	f := newFixture(t, quest.DurationFixed)
	ctx := context.Background()

	for day := 1; day <= week.DaysPerWeek; day++ {
		if _, err := f.svc.GetTodayPractice(ctx, f.g.ID, date(day)); err != nil {
			t.Fatalf("day %d: %v", day, err)
		}
		if _, err := f.svc.RecordOutcome(ctx, f.g.ID, date(day), drill.OutcomePass, ""); err != nil {
			t.Fatalf("record day %d: %v", day, err)
		}
	}

	weeks, err := f.svc.GetWeeks(ctx, f.g.ID)
	if err != nil {
		t.Fatalf("weeks: %v", err)
	}
	if weeks[0].Status != week.StatusCompleted {
		t.Errorf("week 1 = %q, want completed", weeks[0].Status)
	}
	if len(weeks) > 1 && weeks[1].Status != week.StatusActive {
		t.Errorf("week 2 = %q, want active", weeks[1].Status)
	}
	if weeks[0].DrillsCompleted != week.DaysPerWeek {
		t.Errorf("week 1 completed = %d, want %d", weeks[0].DrillsCompleted, week.DaysPerWeek)
	}
}

func TestMilestoneFlow(t *testing.T) {
	f := newFixture(t, quest.DurationFixed)
	ctx := context.Background()

	// Put quest-1 one pass away from the gate: every skill mastered except
	// the first, which sits at practicing with the next pass mastering it.
	q1, _ := f.mem.stores().Skills.ListByQuest(ctx, "quest-1")
	for i, sk := range q1 {
		if i == 0 {
			sk.Mastery = skill.MasteryPracticing
			sk.Status = skill.StatusInProgress
			sk.PassCount = 2
			sk.ConsecutivePasses = 1
		} else {
			sk.Mastery = skill.MasteryMastered
			sk.Status = skill.StatusMastered
			sk.PassCount = 3
			sk.ConsecutivePasses = 3
		}
		if err := f.mem.stores().Skills.UpdateTracking(ctx, sk); err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	// Reinforcement picks the practicing skill; the pass closes the gate.
	today, err := f.svc.GetTodayPractice(ctx, f.g.ID, date(1))
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if today.Drill.SkillID != q1[0].ID {
		t.Fatalf("selected %s, want the practicing quest-1 skill", today.Drill.SkillID)
	}
	res, err := f.svc.RecordOutcome(ctx, f.g.ID, date(1), drill.OutcomePass, "")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !res.MilestoneUnlocked {
		t.Error("expected milestone unlock")
	}

	m, err := f.mem.stores().Milestones.GetByQuest(ctx, "quest-1")
	if err != nil {
		t.Fatalf("milestone: %v", err)
	}
	if m.Status != week.MilestoneAvailable {
		t.Fatalf("milestone status = %q, want available", m.Status)
	}

	// Available, never auto-completed. Confirmation needs every criterion.
	if _, err := f.svc.StartMilestone(ctx, "quest-1"); err != nil {
		t.Fatalf("start: %v", err)
	}
	_, err = f.svc.CompleteMilestone(ctx, "quest-1", map[string]bool{})
	if !fault.Is(err, fault.KindInvalidState) {
		t.Fatalf("incomplete confirm err = %v, want invalid_state", err)
	}

	assessment := map[string]bool{}
	for _, c := range m.AcceptanceCriteria {
		assessment[c] = true
	}
	done, err := f.svc.CompleteMilestone(ctx, "quest-1", assessment)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Status != week.MilestoneCompleted || done.CompletedAt == nil {
		t.Errorf("milestone = %+v, want completed", done)
	}
}

func TestProgressView(t *testing.T) {
	f := newFixture(t, quest.DurationFixed)
	ctx := context.Background()

	if _, err := f.svc.GetTodayPractice(ctx, f.g.ID, date(1)); err != nil {
		t.Fatalf("today: %v", err)
	}
	if _, err := f.svc.RecordOutcome(ctx, f.g.ID, date(1), drill.OutcomePass, ""); err != nil {
		t.Fatalf("record: %v", err)
	}

	p, err := f.svc.GetProgress(ctx, f.g.ID)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.TotalSkills == 0 {
		t.Fatal("no skills in progress view")
	}
	if len(p.Quests) != 2 {
		t.Fatalf("quests = %d, want 2", len(p.Quests))
	}
	for _, qp := range p.Quests {
		if qp.Milestone == nil {
			t.Errorf("quest %s missing milestone", qp.QuestID)
		}
	}
	if p.CurrentWeek == nil || p.CurrentWeek.DrillsCompleted != 1 {
		t.Errorf("current week = %+v", p.CurrentWeek)
	}
}

func TestDrillSectionsWithinBudget(t *testing.T) {
	f := newFixture(t, quest.DurationFixed)
	ctx := context.Background()

	for day := 1; day <= 5; day++ {
		today, err := f.svc.GetTodayPractice(ctx, f.g.ID, date(day))
		if err != nil {
			t.Fatalf("day %d: %v", day, err)
		}
		if !today.Drill.IsRetry && today.Drill.TotalMinutes() > f.g.DailyMinutesBudget {
			t.Errorf("day %d minutes %d exceed budget", day, today.Drill.TotalMinutes())
		}
		outcome := drill.OutcomePass
		if day%3 == 0 {
			outcome = drill.OutcomePartial
		}
		if _, err := f.svc.RecordOutcome(ctx, f.g.ID, date(day), outcome, fmt.Sprintf("day %d", day)); err != nil {
			t.Fatalf("record day %d: %v", day, err)
		}
	}
}
