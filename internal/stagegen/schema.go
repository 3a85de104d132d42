package stagegen

import "github.com/praxis-coach/praxis/internal/llm"

// StageSchema defines the JSON schema for capability stage generation.
var StageSchema = &llm.Schema{
	Name:        "capability-stages",
	Description: "Five competence stages decomposing one quest, from reproducing known work to shipping",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"stages": map[string]any{
				"type":        "array",
				"minItems":    5,
				"maxItems":    5,
				"description": "Exactly five stages in order: reproduce, modify, diagnose, design, ship",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"level": map[string]any{
							"type": "string",
							"enum": []any{"reproduce", "modify", "diagnose", "design", "ship"},
						},
						"capability": map[string]any{
							"type":        "string",
							"description": "What the learner can do at this level, phrased as an ability",
						},
						"artifact": map[string]any{
							"type":        "string",
							"description": "The concrete thing produced while practicing this stage",
						},
						"designed_failure": map[string]any{
							"type":        "string",
							"description": "A failure the stage deliberately provokes so the learner meets it safely",
						},
						"consequence": map[string]any{
							"type":        "string",
							"description": "What the failure costs if it happens unprepared",
						},
						"recovery": map[string]any{
							"type":        "string",
							"description": "How to get back on track after the designed failure",
						},
						"transfer_scenario": map[string]any{
							"type":        "string",
							"description": "A different context where the same capability applies",
						},
						"topic_tags": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required": []any{
						"level", "capability", "artifact", "designed_failure",
						"consequence", "recovery", "transfer_scenario", "topic_tags",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"stages"},
		"additionalProperties": false,
	},
}
