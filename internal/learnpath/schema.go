package learnpath

// resourceSchema describes a single Resource in a plan response.
var resourceSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"type":       map[string]any{"type": "string"},
		"title":      map[string]any{"type": "string"},
		"why":        map[string]any{"type": "string"},
		"url":        map[string]any{"type": "string"},
		"duration":   map[string]any{"type": "string"},
		"difficulty": map[string]any{"type": "string"},
	},
	"required": []any{"type", "title", "url"},
}

var moduleSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":     map[string]any{"type": "integer"},
		"domain": map[string]any{"type": "string"},
		"title":  map[string]any{"type": "string"},
		"priority": map[string]any{
			"type": "string",
			"enum": []any{"critical", "high", "medium"},
		},
		"why_this_now":    map[string]any{"type": "string"},
		"current_score":   map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		"target_score":    map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		"estimated_weeks": map[string]any{"type": "integer", "minimum": 0},
		"milestone":       map[string]any{"type": "string"},
		// Plans re-encoded locally carry null for a module without resources.
		"resources": map[string]any{
			"type":  []any{"array", "null"},
			"items": resourceSchema,
		},
	},
	"required": []any{"domain", "title", "priority", "current_score", "target_score"},
}

// PlanSchema is the JSON schema a plan response must satisfy before it is
// accepted as a Plan.
var PlanSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"overall_readiness":   map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		"target_role":         map[string]any{"type": "string"},
		"total_weeks":         map[string]any{"type": "integer", "minimum": 1},
		"next_action":         map[string]any{"type": "string"},
		"motivational_note":   map[string]any{"type": "string"},
		"adapted_from_scores": map[string]any{"type": "boolean"},
		"modules": map[string]any{
			"type":  "array",
			"items": moduleSchema,
		},
	},
	"required": []any{"overall_readiness", "target_role", "total_weeks", "modules"},
}

// ResourceListSchema is the JSON schema for a resource lookup response.
var ResourceListSchema = map[string]any{
	"type":  "array",
	"items": resourceSchema,
}
