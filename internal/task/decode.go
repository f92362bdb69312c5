package task

import (
	"encoding/json"
	"errors"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const envelopeSchemaURL = "task.schema.json"

// envelopeSchema fixes the outer shape of a task. Region contents are checked
// against the labeling config, not here.
const envelopeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "data": {"type": "object"},
    "annotations": {"type": "array", "items": {"$ref": "#/definitions/resultSet"}},
    "predictions": {"type": "array", "items": {"$ref": "#/definitions/resultSet"}}
  },
  "definitions": {
    "resultSet": {
      "type": "object",
      "properties": {
        "result": {"type": "array", "items": {"type": "object"}},
        "score": {"type": ["number", "null"]},
        "model_version": {"type": ["string", "null"]}
      }
    }
  }
}`

var compiledEnvelope = jsonschema.MustCompileString(envelopeSchemaURL, envelopeSchema)

// EnvelopeError reports a task that does not have the task shape.
type EnvelopeError struct {
	// Path is the JSON pointer of the offending instance location.
	Path    string
	Message string
}

func (e *EnvelopeError) Error() string {
	if e.Path == "" {
		return "invalid task: " + e.Message
	}

	return fmt.Sprintf("invalid task at %s: %s", e.Path, e.Message)
}

// CheckEnvelope validates a decoded JSON value against the task shape.
func CheckEnvelope(raw any) error {
	if err := compiledEnvelope.Validate(raw); err != nil {
		return toEnvelopeError(err)
	}

	return nil
}

// toEnvelopeError reports the deepest schema failure, the one closest to the
// offending value.
func toEnvelopeError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &EnvelopeError{Message: err.Error()}
	}

	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}

	return &EnvelopeError{Path: ve.InstanceLocation, Message: ve.Message}
}

// Parse decodes and shape-checks a JSON task. A bare object without any of
// the data/annotations/predictions keys is taken to be the task data itself.
func Parse(data []byte) (*Task, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse task JSON: %w", err)
	}

	obj, ok := raw.(map[string]any)
	if ok && !hasTaskKeys(obj) {
		raw = map[string]any{"data": obj}
	}

	return FromValue(raw)
}

// FromValue shape-checks a JSON-like value and converts it to a Task. The
// value is round-tripped through encoding/json first, so Go-built maps and
// slices are accepted as well as decoded JSON.
func FromValue(raw any) (*Task, error) {
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode task: %w", err)
	}

	var normalized any
	if err := json.Unmarshal(buf, &normalized); err != nil {
		return nil, fmt.Errorf("failed to decode task: %w", err)
	}

	if err := CheckEnvelope(normalized); err != nil {
		return nil, err
	}

	var t Task
	if err := json.Unmarshal(buf, &t); err != nil {
		return nil, fmt.Errorf("failed to decode task: %w", err)
	}

	return &t, nil
}

func hasTaskKeys(obj map[string]any) bool {
	for _, k := range []string{"data", "annotations", "predictions"} {
		if _, ok := obj[k]; ok {
			return true
		}
	}

	return false
}
