package safety

import "github.com/rpandey/mentora/internal/llm"

// VerdictSchema defines the JSON schema for safety classification.
var VerdictSchema = &llm.Schema{
	Name:        "safety-verdict",
	Description: "Safety classification of a single message in a tutoring conversation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"safe": map[string]any{
				"type":        "boolean",
				"description": "true when the message is appropriate for a tutoring session",
			},
			"reason": map[string]any{
				"type":        "string",
				"description": "Short reason when unsafe, empty string otherwise",
			},
		},
		"required":             []any{"safe", "reason"},
		"additionalProperties": false,
	},
}
