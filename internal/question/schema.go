package question

// ingestSchema defines the JSON schema for question payloads produced by
// the upstream text-to-question conversion tool.
var ingestSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":        "string",
			"minLength":   1,
			"description": "Stable question identifier (UUID)",
		},
		"subject": map[string]any{
			"type": "string",
			"enum": []any{
				"logical-thinking", "arithmetic", "number-theory",
				"geometry", "combinatorics",
			},
		},
		"tier": map[string]any{
			"type": "string",
			"enum": []any{"easy", "medium", "hard", "olympiad"},
		},
		"format": map[string]any{
			"type": "string",
			"enum": []any{"multiple-choice", "open-ended"},
		},
		"text": map[string]any{
			"type":        "string",
			"minLength":   1,
			"description": "The question prompt shown to the student",
		},
		"answer": map[string]any{
			"type":        "string",
			"minLength":   1,
			"description": "The correct answer as a string",
		},
		"params": map[string]any{
			"type":        "object",
			"description": "Optional calibrated psychometric parameters",
			"properties": map[string]any{
				"elo_rating": map[string]any{
					"type":    "number",
					"minimum": 400,
					"maximum": 2400,
				},
				"bkt": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"p_learn": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
						"p_guess": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
						"p_slip":  map[string]any{"type": "number", "minimum": 0, "maximum": 1},
					},
					"required":             []any{"p_learn", "p_guess", "p_slip"},
					"additionalProperties": false,
				},
				"irt": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"discrimination": map[string]any{"type": "number", "exclusiveMinimum": 0},
						"difficulty":     map[string]any{"type": "number"},
						"guessing":       map[string]any{"type": "number", "minimum": 0, "exclusiveMaximum": 1},
					},
					"required":             []any{"discrimination", "difficulty", "guessing"},
					"additionalProperties": false,
				},
			},
			"additionalProperties": false,
		},
	},
	"required":             []any{"id", "subject", "tier", "format", "text", "answer"},
	"additionalProperties": false,
}
