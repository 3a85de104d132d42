package stagegen

import (
	"fmt"
	"strings"

	"github.com/praxis-coach/praxis/internal/quest"
)

// FallbackStages produces deterministic template stages for a quest. They are
// blunter than LLM output but always valid, so initialization can proceed
// offline.
func FallbackStages(q quest.Quest) []quest.CapabilityStage {
	topic := q.Topic
	if topic == "" {
		topic = strings.ToLower(q.Title)
	}
	tags := []string{topic}

	return []quest.CapabilityStage{
		{
			Level:            quest.LevelReproduce,
			Capability:       fmt.Sprintf("can reproduce a worked example of %s end to end", q.Title),
			Artifact:         fmt.Sprintf("A faithful recreation of an existing %s example", topic),
			DesignedFailure:  "Skipping a step in the example and getting a different result",
			Consequence:      "The recreation diverges and the divergence point is unknown",
			Recovery:         "Diff against the example step by step until the divergence is found",
			TransferScenario: fmt.Sprintf("Reproducing an unfamiliar %s example from a different source", topic),
			TopicTags:        tags,
		},
		{
			Level:            quest.LevelModify,
			Capability:       fmt.Sprintf("can change one variable of a working %s example and predict the outcome", topic),
			Artifact:         "The modified example plus a written prediction made before running it",
			DesignedFailure:  "Changing two things at once so the observed effect has no clear cause",
			Consequence:      "The mental model stays vague because cause and effect are entangled",
			Recovery:         "Revert to the working version and reapply one change at a time",
			TransferScenario: fmt.Sprintf("Predicting the effect of the same change in a larger %s system", topic),
			TopicTags:        tags,
		},
		{
			Level:            quest.LevelDiagnose,
			Capability:       fmt.Sprintf("can locate and explain the defect in a broken %s example", topic),
			Artifact:         "A written diagnosis naming the defect and why it produces the observed symptom",
			DesignedFailure:  "Fixing the symptom without identifying the underlying cause",
			Consequence:      "The same defect reappears in the next exercise under a different symptom",
			Recovery:         "State the expected behavior, the observed behavior, and bisect between them",
			TransferScenario: fmt.Sprintf("Diagnosing a %s failure reported by someone else", topic),
			TopicTags:        tags,
		},
		{
			Level:            quest.LevelDesign,
			Capability:       fmt.Sprintf("can build a small %s solution from requirements without a model to copy", topic),
			Artifact:         "A working solution built from a short requirements list",
			DesignedFailure:  "Designing for requirements the list never asked for",
			Consequence:      "Time runs out before the actual requirements are met",
			Recovery:         "Cross out everything not traceable to a listed requirement and rebuild",
			TransferScenario: fmt.Sprintf("Designing under a constraint the practice never used, such as a strict %s limit", topic),
			TopicTags:        tags,
		},
		{
			Level:            quest.LevelShip,
			Capability:       fmt.Sprintf("can ship a %s artifact a real consumer depends on", topic),
			Artifact:         "The shipped artifact plus the note announcing it to its consumer",
			DesignedFailure:  "Shipping without checking how the consumer actually invokes it",
			Consequence:      "The first real use breaks and trust in the artifact drops",
			Recovery:         "Walk through the consumer's exact usage path and patch the gap",
			TransferScenario: fmt.Sprintf("Shipping a %s change into a codebase owned by someone else", topic),
			TopicTags:        tags,
		},
	}
}
