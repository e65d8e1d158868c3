package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// responseSchema validates a decoded backend payload before it is merged
// into local state. The schemas are deliberately loose about extra fields
// (the backend grows them freely) but strict about the types of the fields
// the client acts on.
type responseSchema struct {
	name       string
	definition map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	compileE error
}

func (s *responseSchema) validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	s.once.Do(func() {
		s.compiled, s.compileE = compile(s.name, s.definition)
	})
	if s.compileE != nil {
		return fmt.Errorf("compile schema %q: %w", s.name, s.compileE)
	}

	if err := s.compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compile(name string, definition map[string]any) (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}

var questionDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":         map[string]any{"type": "string"},
		"text":       map[string]any{"type": "string"},
		"difficulty": map[string]any{"enum": []any{"easy", "medium", "hard"}},
		"time_limit": map[string]any{"type": "integer", "minimum": 0},
	},
	"required": []any{"id", "text", "difficulty"},
}

var startInterviewSchema = &responseSchema{
	name: "start-interview",
	definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"interview_completed": map[string]any{"type": "boolean"},
			"session_id":          map[string]any{"type": "string"},
			"question":            questionDefinition,
			"resuming":            map[string]any{"type": "boolean"},
			"question_number":     map[string]any{"type": "integer", "minimum": 0},
			"elapsed_time":        map[string]any{"type": "integer", "minimum": 0},
			"final_score":         map[string]any{"type": []any{"integer", "null"}},
			"summary":             map[string]any{"type": []any{"string", "null"}},
		},
		"required": []any{"session_id"},
	},
}

var submitAnswerSchema = &responseSchema{
	name: "submit-answer",
	definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"already_answered": map[string]any{"type": "boolean"},
			"completed":        map[string]any{"type": "boolean"},
			"evaluation": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"score":    map[string]any{"type": "integer", "minimum": 0},
					"feedback": map[string]any{"type": "string"},
				},
				"required": []any{"score"},
			},
			"next_question":   questionDefinition,
			"question_number": map[string]any{"type": "integer", "minimum": 0},
			"final_score":     map[string]any{"type": []any{"integer", "null"}},
			"summary":         map[string]any{"type": []any{"string", "null"}},
		},
	},
}
