package tutor

import "github.com/rpandey/mentora/internal/llm"

// TurnSchema defines the JSON schema for one tutor turn: the visible
// message plus grading and control signals.
var TurnSchema = &llm.Schema{
	Name:        "tutor-turn",
	Description: "One tutor turn: visible message, intent classification, grading signal, and session control flags",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"description": "The tutor message shown to the student",
			},
			"intent": map[string]any{
				"type":        "string",
				"enum":        []any{"answer", "answer_change", "question", "confusion", "novel_strategy", "off_topic", "continuation"},
				"description": "What the student's latest message was doing relative to the open question",
			},
			"graded": map[string]any{
				"type":        "boolean",
				"description": "true when the student attempted an answer and correctness applies",
			},
			"correctness": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Grading signal: 1.0 fully correct, 0.0 fully wrong, partial credit in exam mode",
			},
			"concept_id": map[string]any{
				"type":        "string",
				"description": "Concept identifier the current exchange addresses (kebab-case)",
			},
			"misconceptions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Newly detected conceptual error patterns, short labels (empty if none)",
			},
			"session_complete": map[string]any{
				"type":        "boolean",
				"description": "true when the session has reached natural closure",
			},
			"stop_requested": map[string]any{
				"type":        "boolean",
				"description": "true when the student explicitly asked to end the session",
			},
			"new_question": map[string]any{
				"type": []any{"object", "null"},
				"properties": map[string]any{
					"prompt":     map[string]any{"type": "string"},
					"rubric":     map[string]any{"type": "string"},
					"concept_id": map[string]any{"type": "string"},
					"hints": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required":             []any{"prompt", "rubric", "concept_id", "hints"},
				"additionalProperties": false,
				"description":          "Set when the message poses a new question, null otherwise",
			},
		},
		"required": []any{
			"message", "intent", "graded", "correctness", "concept_id",
			"misconceptions", "session_complete", "stop_requested", "new_question",
		},
		"additionalProperties": false,
	},
}
