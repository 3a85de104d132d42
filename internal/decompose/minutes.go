package decompose

import "strings"

// Minute estimation bounds.
const (
	MinSkillMinutes = 5
	MaxSkillMinutes = 60
)

// heavyKeywords suggest an exercise that needs a longer block.
var heavyKeywords = []string{
	"design", "architect", "end-to-end", "from scratch", "integrate",
	"deploy", "ship", "refactor", "whole", "complete",
}

// estimateMinutes derives a time box from text complexity: a base cost, a
// per-word cost over the combined action and artifact text, and a surcharge
// for keywords that signal larger scope. Clamped to [MinSkillMinutes,
// MaxSkillMinutes].
func estimateMinutes(action, artifact string) int {
	words := len(strings.Fields(action)) + len(strings.Fields(artifact))
	minutes := 10 + words*2

	combined := strings.ToLower(action + " " + artifact)
	for _, kw := range heavyKeywords {
		if strings.Contains(combined, kw) {
			minutes += 10
			break
		}
	}

	if minutes < MinSkillMinutes {
		minutes = MinSkillMinutes
	}
	if minutes > MaxSkillMinutes {
		minutes = MaxSkillMinutes
	}
	return minutes
}
