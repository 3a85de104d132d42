package stagegen

import (
	"fmt"
	"strings"

	"github.com/praxis-coach/praxis/internal/quest"
)

const systemPrompt = `You are a deliberate-practice coach decomposing a learning quest into five competence stages.

Rules:
- Produce exactly five stages in this order: reproduce, modify, diagnose, design, ship.
- reproduce: follow existing work closely enough to recreate it.
- modify: change one variable of the reproduced work and predict the effect.
- diagnose: find and explain why a broken version fails.
- design: build the thing from requirements without a model to copy.
- ship: integrate the capability into something real with an external audience or consumer.
- Each capability must be phrased as an ability statement ("can ...") describing one observable behavior.
- Each artifact must be a concrete, checkable thing, not a feeling or an understanding.
- The designed failure must be a realistic mistake a practitioner actually makes at that stage, safe to hit on purpose.
- Recovery must be actionable within a single practice session.
- The transfer scenario names a genuinely different context, not a restatement of the quest.
- Keep every field to one or two plain sentences.`

// buildUserMessage constructs the user message for one quest.
func buildUserMessage(q quest.Quest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Quest: %s\n", q.Title)
	if q.Topic != "" {
		fmt.Fprintf(&b, "Topic: %s\n", q.Topic)
	}
	b.WriteString("\nDecompose this quest into the five stages.")
	return b.String()
}
