package quest

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// GoalFile is the YAML document a learner writes to describe a goal.
// Capability stages may be supplied inline per quest; quests without stages
// go through the stage generation service at init time.
type GoalFile struct {
	Title        string          `yaml:"title"`
	User         string          `yaml:"user"`
	Duration     string          `yaml:"duration"`      // "ongoing" or omitted for fixed
	DailyMinutes int             `yaml:"daily_minutes"`
	Quests       []GoalFileQuest `yaml:"quests"`
}

// GoalFileQuest is one quest entry in a goal file.
type GoalFileQuest struct {
	Title  string          `yaml:"title"`
	Topic  string          `yaml:"topic"`
	Stages []GoalFileStage `yaml:"stages,omitempty"`
}

// GoalFileStage mirrors CapabilityStage in YAML form.
type GoalFileStage struct {
	Level            string   `yaml:"level"`
	Capability       string   `yaml:"capability"`
	Artifact         string   `yaml:"artifact"`
	DesignedFailure  string   `yaml:"designed_failure,omitempty"`
	Consequence      string   `yaml:"consequence,omitempty"`
	Recovery         string   `yaml:"recovery,omitempty"`
	TransferScenario string   `yaml:"transfer_scenario,omitempty"`
	TopicTags        []string `yaml:"topic_tags,omitempty"`
}

// DefaultDailyMinutes is used when a goal file omits daily_minutes.
const DefaultDailyMinutes = 30

// LoadGoalFile parses a goal file and materializes the Goal, its Quests, and
// any inline capability stages keyed by quest ID.
func LoadGoalFile(path string) (*Goal, []Quest, map[string][]CapabilityStage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read goal file: %w", err)
	}

	var gf GoalFile
	if err := yaml.Unmarshal(raw, &gf); err != nil {
		return nil, nil, nil, fmt.Errorf("parse goal file: %w", err)
	}

	if err := gf.validate(); err != nil {
		return nil, nil, nil, err
	}

	goal := &Goal{
		ID:                 uuid.NewString(),
		UserID:             gf.User,
		Title:              gf.Title,
		Duration:           DurationFixed,
		DailyMinutesBudget: gf.DailyMinutes,
	}
	if goal.UserID == "" {
		goal.UserID = "local"
	}
	if gf.Duration == string(DurationOngoing) {
		goal.Duration = DurationOngoing
	}
	if goal.DailyMinutesBudget == 0 {
		goal.DailyMinutesBudget = DefaultDailyMinutes
	}

	var quests []Quest
	stagesByQuest := make(map[string][]CapabilityStage)
	for i, q := range gf.Quests {
		id := uuid.NewString()
		quests = append(quests, Quest{
			ID:         id,
			GoalID:     goal.ID,
			Title:      q.Title,
			Topic:      q.Topic,
			OrderIndex: i,
		})
		goal.QuestIDs = append(goal.QuestIDs, id)
		for _, s := range q.Stages {
			stagesByQuest[id] = append(stagesByQuest[id], CapabilityStage{
				Level:            StageLevel(s.Level),
				Capability:       s.Capability,
				Artifact:         s.Artifact,
				DesignedFailure:  s.DesignedFailure,
				Consequence:      s.Consequence,
				Recovery:         s.Recovery,
				TransferScenario: s.TransferScenario,
				TopicTags:        s.TopicTags,
			})
		}
	}

	return goal, quests, stagesByQuest, nil
}

func (gf *GoalFile) validate() error {
	if gf.Title == "" {
		return fmt.Errorf("goal file: title is required")
	}
	if len(gf.Quests) == 0 {
		return fmt.Errorf("goal file: at least one quest is required")
	}
	if gf.Duration != "" && gf.Duration != "fixed" && gf.Duration != string(DurationOngoing) {
		return fmt.Errorf("goal file: duration must be \"fixed\" or \"ongoing\", got %q", gf.Duration)
	}
	valid := make(map[string]bool)
	for _, l := range AllLevels() {
		valid[string(l)] = true
	}
	for i, q := range gf.Quests {
		if q.Title == "" {
			return fmt.Errorf("goal file: quest %d has no title", i)
		}
		for _, s := range q.Stages {
			if !valid[s.Level] {
				return fmt.Errorf("goal file: quest %q has unknown stage level %q", q.Title, s.Level)
			}
		}
	}
	return nil
}
