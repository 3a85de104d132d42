// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/praxis-coach/praxis/ent/drill"
	"github.com/praxis-coach/praxis/ent/learningplan"
	"github.com/praxis-coach/praxis/ent/llmrequestevent"
	"github.com/praxis-coach/praxis/ent/masteryevent"
	"github.com/praxis-coach/praxis/ent/questmilestone"
	"github.com/praxis-coach/praxis/ent/schema"
	"github.com/praxis-coach/praxis/ent/skill"
	"github.com/praxis-coach/praxis/ent/weekplan"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	drillFields := schema.Drill{}.Fields()
	_ = drillFields
	// drillDescUserID is the schema descriptor for user_id field.
	drillDescUserID := drillFields[1].Descriptor()
	// drill.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	drill.UserIDValidator = drillDescUserID.Validators[0].(func(string) error)
	// drillDescGoalID is the schema descriptor for goal_id field.
	drillDescGoalID := drillFields[2].Descriptor()
	// drill.GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	drill.GoalIDValidator = drillDescGoalID.Validators[0].(func(string) error)
	// drillDescQuestID is the schema descriptor for quest_id field.
	drillDescQuestID := drillFields[3].Descriptor()
	// drill.QuestIDValidator is a validator for the "quest_id" field. It is called by the builders before save.
	drill.QuestIDValidator = drillDescQuestID.Validators[0].(func(string) error)
	// drillDescSkillID is the schema descriptor for skill_id field.
	drillDescSkillID := drillFields[4].Descriptor()
	// drill.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	drill.SkillIDValidator = drillDescSkillID.Validators[0].(func(string) error)
	// drillDescDate is the schema descriptor for date field.
	drillDescDate := drillFields[5].Descriptor()
	// drill.DateValidator is a validator for the "date" field. It is called by the builders before save.
	drill.DateValidator = drillDescDate.Validators[0].(func(string) error)
	// drillDescDayNumber is the schema descriptor for day_number field.
	drillDescDayNumber := drillFields[6].Descriptor()
	// drill.DefaultDayNumber holds the default value on creation for the day_number field.
	drill.DefaultDayNumber = drillDescDayNumber.Default.(int)
	// drillDescWeekNumber is the schema descriptor for week_number field.
	drillDescWeekNumber := drillFields[7].Descriptor()
	// drill.DefaultWeekNumber holds the default value on creation for the week_number field.
	drill.DefaultWeekNumber = drillDescWeekNumber.Default.(int)
	// drillDescStatus is the schema descriptor for status field.
	drillDescStatus := drillFields[11].Descriptor()
	// drill.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	drill.StatusValidator = drillDescStatus.Validators[0].(func(string) error)
	// drillDescOutcome is the schema descriptor for outcome field.
	drillDescOutcome := drillFields[12].Descriptor()
	// drill.DefaultOutcome holds the default value on creation for the outcome field.
	drill.DefaultOutcome = drillDescOutcome.Default.(string)
	// drillDescObservation is the schema descriptor for observation field.
	drillDescObservation := drillFields[13].Descriptor()
	// drill.DefaultObservation holds the default value on creation for the observation field.
	drill.DefaultObservation = drillDescObservation.Default.(string)
	// drillDescIsRetry is the schema descriptor for is_retry field.
	drillDescIsRetry := drillFields[14].Descriptor()
	// drill.DefaultIsRetry holds the default value on creation for the is_retry field.
	drill.DefaultIsRetry = drillDescIsRetry.Default.(bool)
	// drillDescRetryCount is the schema descriptor for retry_count field.
	drillDescRetryCount := drillFields[15].Descriptor()
	// drill.DefaultRetryCount holds the default value on creation for the retry_count field.
	drill.DefaultRetryCount = drillDescRetryCount.Default.(int)
	// drillDescCarryForward is the schema descriptor for carry_forward field.
	drillDescCarryForward := drillFields[16].Descriptor()
	// drill.DefaultCarryForward holds the default value on creation for the carry_forward field.
	drill.DefaultCarryForward = drillDescCarryForward.Default.(string)
	// drillDescCreatedAt is the schema descriptor for created_at field.
	drillDescCreatedAt := drillFields[17].Descriptor()
	// drill.DefaultCreatedAt holds the default value on creation for the created_at field.
	drill.DefaultCreatedAt = drillDescCreatedAt.Default.(func() time.Time)
	// drillDescID is the schema descriptor for id field.
	drillDescID := drillFields[0].Descriptor()
	// drill.IDValidator is a validator for the "id" field. It is called by the builders before save.
	drill.IDValidator = drillDescID.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	learningplanFields := schema.LearningPlan{}.Fields()
	_ = learningplanFields
	// learningplanDescGoalID is the schema descriptor for goal_id field.
	learningplanDescGoalID := learningplanFields[1].Descriptor()
	// learningplan.GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	learningplan.GoalIDValidator = learningplanDescGoalID.Validators[0].(func(string) error)
	// learningplanDescUserID is the schema descriptor for user_id field.
	learningplanDescUserID := learningplanFields[2].Descriptor()
	// learningplan.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learningplan.UserIDValidator = learningplanDescUserID.Validators[0].(func(string) error)
	// learningplanDescTitle is the schema descriptor for title field.
	learningplanDescTitle := learningplanFields[3].Descriptor()
	// learningplan.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	learningplan.TitleValidator = learningplanDescTitle.Validators[0].(func(string) error)
	// learningplanDescDuration is the schema descriptor for duration field.
	learningplanDescDuration := learningplanFields[4].Descriptor()
	// learningplan.DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	learningplan.DurationValidator = learningplanDescDuration.Validators[0].(func(string) error)
	// learningplanDescTotalSkills is the schema descriptor for total_skills field.
	learningplanDescTotalSkills := learningplanFields[7].Descriptor()
	// learningplan.DefaultTotalSkills holds the default value on creation for the total_skills field.
	learningplan.DefaultTotalSkills = learningplanDescTotalSkills.Default.(int)
	// learningplanDescTotalMinutes is the schema descriptor for total_minutes field.
	learningplanDescTotalMinutes := learningplanFields[8].Descriptor()
	// learningplan.DefaultTotalMinutes holds the default value on creation for the total_minutes field.
	learningplan.DefaultTotalMinutes = learningplanDescTotalMinutes.Default.(int)
	// learningplanDescEstimatedDays is the schema descriptor for estimated_days field.
	learningplanDescEstimatedDays := learningplanFields[9].Descriptor()
	// learningplan.DefaultEstimatedDays holds the default value on creation for the estimated_days field.
	learningplan.DefaultEstimatedDays = learningplanDescEstimatedDays.Default.(int)
	// learningplanDescCreatedAt is the schema descriptor for created_at field.
	learningplanDescCreatedAt := learningplanFields[11].Descriptor()
	// learningplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	learningplan.DefaultCreatedAt = learningplanDescCreatedAt.Default.(func() time.Time)
	// learningplanDescID is the schema descriptor for id field.
	learningplanDescID := learningplanFields[0].Descriptor()
	// learningplan.IDValidator is a validator for the "id" field. It is called by the builders before save.
	learningplan.IDValidator = learningplanDescID.Validators[0].(func(string) error)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescSkillID is the schema descriptor for skill_id field.
	masteryeventDescSkillID := masteryeventFields[0].Descriptor()
	// masteryevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	masteryevent.SkillIDValidator = masteryeventDescSkillID.Validators[0].(func(string) error)
	// masteryeventDescGoalID is the schema descriptor for goal_id field.
	masteryeventDescGoalID := masteryeventFields[1].Descriptor()
	// masteryevent.GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	masteryevent.GoalIDValidator = masteryeventDescGoalID.Validators[0].(func(string) error)
	// masteryeventDescFromState is the schema descriptor for from_state field.
	masteryeventDescFromState := masteryeventFields[2].Descriptor()
	// masteryevent.FromStateValidator is a validator for the "from_state" field. It is called by the builders before save.
	masteryevent.FromStateValidator = masteryeventDescFromState.Validators[0].(func(string) error)
	// masteryeventDescToState is the schema descriptor for to_state field.
	masteryeventDescToState := masteryeventFields[3].Descriptor()
	// masteryevent.ToStateValidator is a validator for the "to_state" field. It is called by the builders before save.
	masteryevent.ToStateValidator = masteryeventDescToState.Validators[0].(func(string) error)
	// masteryeventDescTrigger is the schema descriptor for trigger field.
	masteryeventDescTrigger := masteryeventFields[4].Descriptor()
	// masteryevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	masteryevent.TriggerValidator = masteryeventDescTrigger.Validators[0].(func(string) error)
	questmilestoneFields := schema.QuestMilestone{}.Fields()
	_ = questmilestoneFields
	// questmilestoneDescQuestID is the schema descriptor for quest_id field.
	questmilestoneDescQuestID := questmilestoneFields[1].Descriptor()
	// questmilestone.QuestIDValidator is a validator for the "quest_id" field. It is called by the builders before save.
	questmilestone.QuestIDValidator = questmilestoneDescQuestID.Validators[0].(func(string) error)
	// questmilestoneDescGoalID is the schema descriptor for goal_id field.
	questmilestoneDescGoalID := questmilestoneFields[2].Descriptor()
	// questmilestone.GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	questmilestone.GoalIDValidator = questmilestoneDescGoalID.Validators[0].(func(string) error)
	// questmilestoneDescTitle is the schema descriptor for title field.
	questmilestoneDescTitle := questmilestoneFields[3].Descriptor()
	// questmilestone.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	questmilestone.TitleValidator = questmilestoneDescTitle.Validators[0].(func(string) error)
	// questmilestoneDescStatus is the schema descriptor for status field.
	questmilestoneDescStatus := questmilestoneFields[6].Descriptor()
	// questmilestone.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	questmilestone.StatusValidator = questmilestoneDescStatus.Validators[0].(func(string) error)
	// questmilestoneDescID is the schema descriptor for id field.
	questmilestoneDescID := questmilestoneFields[0].Descriptor()
	// questmilestone.IDValidator is a validator for the "id" field. It is called by the builders before save.
	questmilestone.IDValidator = questmilestoneDescID.Validators[0].(func(string) error)
	skillFields := schema.Skill{}.Fields()
	_ = skillFields
	// skillDescQuestID is the schema descriptor for quest_id field.
	skillDescQuestID := skillFields[1].Descriptor()
	// skill.QuestIDValidator is a validator for the "quest_id" field. It is called by the builders before save.
	skill.QuestIDValidator = skillDescQuestID.Validators[0].(func(string) error)
	// skillDescGoalID is the schema descriptor for goal_id field.
	skillDescGoalID := skillFields[2].Descriptor()
	// skill.GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	skill.GoalIDValidator = skillDescGoalID.Validators[0].(func(string) error)
	// skillDescUserID is the schema descriptor for user_id field.
	skillDescUserID := skillFields[3].Descriptor()
	// skill.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	skill.UserIDValidator = skillDescUserID.Validators[0].(func(string) error)
	// skillDescTitle is the schema descriptor for title field.
	skillDescTitle := skillFields[4].Descriptor()
	// skill.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	skill.TitleValidator = skillDescTitle.Validators[0].(func(string) error)
	// skillDescAction is the schema descriptor for action field.
	skillDescAction := skillFields[5].Descriptor()
	// skill.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	skill.ActionValidator = skillDescAction.Validators[0].(func(string) error)
	// skillDescSuccessSignal is the schema descriptor for success_signal field.
	skillDescSuccessSignal := skillFields[6].Descriptor()
	// skill.SuccessSignalValidator is a validator for the "success_signal" field. It is called by the builders before save.
	skill.SuccessSignalValidator = skillDescSuccessSignal.Validators[0].(func(string) error)
	// skillDescEstimatedMinutes is the schema descriptor for estimated_minutes field.
	skillDescEstimatedMinutes := skillFields[8].Descriptor()
	// skill.EstimatedMinutesValidator is a validator for the "estimated_minutes" field. It is called by the builders before save.
	skill.EstimatedMinutesValidator = skillDescEstimatedMinutes.Validators[0].(func(int) error)
	// skillDescSkillType is the schema descriptor for skill_type field.
	skillDescSkillType := skillFields[9].Descriptor()
	// skill.SkillTypeValidator is a validator for the "skill_type" field. It is called by the builders before save.
	skill.SkillTypeValidator = skillDescSkillType.Validators[0].(func(string) error)
	// skillDescMastery is the schema descriptor for mastery field.
	skillDescMastery := skillFields[18].Descriptor()
	// skill.MasteryValidator is a validator for the "mastery" field. It is called by the builders before save.
	skill.MasteryValidator = skillDescMastery.Validators[0].(func(string) error)
	// skillDescStatus is the schema descriptor for status field.
	skillDescStatus := skillFields[19].Descriptor()
	// skill.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	skill.StatusValidator = skillDescStatus.Validators[0].(func(string) error)
	// skillDescPassCount is the schema descriptor for pass_count field.
	skillDescPassCount := skillFields[20].Descriptor()
	// skill.DefaultPassCount holds the default value on creation for the pass_count field.
	skill.DefaultPassCount = skillDescPassCount.Default.(int)
	// skillDescFailCount is the schema descriptor for fail_count field.
	skillDescFailCount := skillFields[21].Descriptor()
	// skill.DefaultFailCount holds the default value on creation for the fail_count field.
	skill.DefaultFailCount = skillDescFailCount.Default.(int)
	// skillDescConsecutivePasses is the schema descriptor for consecutive_passes field.
	skillDescConsecutivePasses := skillFields[22].Descriptor()
	// skill.DefaultConsecutivePasses holds the default value on creation for the consecutive_passes field.
	skill.DefaultConsecutivePasses = skillDescConsecutivePasses.Default.(int)
	// skillDescNeedsReview is the schema descriptor for needs_review field.
	skillDescNeedsReview := skillFields[23].Descriptor()
	// skill.DefaultNeedsReview holds the default value on creation for the needs_review field.
	skill.DefaultNeedsReview = skillDescNeedsReview.Default.(bool)
	// skillDescID is the schema descriptor for id field.
	skillDescID := skillFields[0].Descriptor()
	// skill.IDValidator is a validator for the "id" field. It is called by the builders before save.
	skill.IDValidator = skillDescID.Validators[0].(func(string) error)
	weekplanFields := schema.WeekPlan{}.Fields()
	_ = weekplanFields
	// weekplanDescGoalID is the schema descriptor for goal_id field.
	weekplanDescGoalID := weekplanFields[1].Descriptor()
	// weekplan.GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	weekplan.GoalIDValidator = weekplanDescGoalID.Validators[0].(func(string) error)
	// weekplanDescQuestID is the schema descriptor for quest_id field.
	weekplanDescQuestID := weekplanFields[2].Descriptor()
	// weekplan.QuestIDValidator is a validator for the "quest_id" field. It is called by the builders before save.
	weekplan.QuestIDValidator = weekplanDescQuestID.Validators[0].(func(string) error)
	// weekplanDescDrillsCompleted is the schema descriptor for drills_completed field.
	weekplanDescDrillsCompleted := weekplanFields[6].Descriptor()
	// weekplan.DefaultDrillsCompleted holds the default value on creation for the drills_completed field.
	weekplan.DefaultDrillsCompleted = weekplanDescDrillsCompleted.Default.(int)
	// weekplanDescDrillsPassed is the schema descriptor for drills_passed field.
	weekplanDescDrillsPassed := weekplanFields[7].Descriptor()
	// weekplan.DefaultDrillsPassed holds the default value on creation for the drills_passed field.
	weekplan.DefaultDrillsPassed = weekplanDescDrillsPassed.Default.(int)
	// weekplanDescDrillsFailed is the schema descriptor for drills_failed field.
	weekplanDescDrillsFailed := weekplanFields[8].Descriptor()
	// weekplan.DefaultDrillsFailed holds the default value on creation for the drills_failed field.
	weekplan.DefaultDrillsFailed = weekplanDescDrillsFailed.Default.(int)
	// weekplanDescDrillsSkipped is the schema descriptor for drills_skipped field.
	weekplanDescDrillsSkipped := weekplanFields[9].Descriptor()
	// weekplan.DefaultDrillsSkipped holds the default value on creation for the drills_skipped field.
	weekplan.DefaultDrillsSkipped = weekplanDescDrillsSkipped.Default.(int)
	// weekplanDescSkillsMastered is the schema descriptor for skills_mastered field.
	weekplanDescSkillsMastered := weekplanFields[10].Descriptor()
	// weekplan.DefaultSkillsMastered holds the default value on creation for the skills_mastered field.
	weekplan.DefaultSkillsMastered = weekplanDescSkillsMastered.Default.(int)
	// weekplanDescStatus is the schema descriptor for status field.
	weekplanDescStatus := weekplanFields[12].Descriptor()
	// weekplan.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	weekplan.StatusValidator = weekplanDescStatus.Validators[0].(func(string) error)
	// weekplanDescID is the schema descriptor for id field.
	weekplanDescID := weekplanFields[0].Descriptor()
	// weekplan.IDValidator is a validator for the "id" field. It is called by the builders before save.
	weekplan.IDValidator = weekplanDescID.Validators[0].(func(string) error)
}
