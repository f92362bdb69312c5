package task

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Task is one unit of labeling work.
type Task struct {
	Data        map[string]any `json:"data,omitempty"`
	Annotations []Annotation   `json:"annotations,omitempty"`
	Predictions []Prediction   `json:"predictions,omitempty"`
}

// Annotation is a human-made result set.
type Annotation struct {
	ID     any      `json:"id,omitempty"`
	Result []Region `json:"result"`
}

// Prediction is a machine-made result set.
type Prediction struct {
	ModelVersion string   `json:"model_version,omitempty"`
	Score        *float64 `json:"score,omitempty"`
	Result       []Region `json:"result"`
}

// Region is one annotated item linking a control, an object and a value.
type Region struct {
	ID       string         `json:"id,omitempty"`
	FromName string         `json:"from_name" validate:"required"`
	ToName   string         `json:"to_name" validate:"required"`
	Type     string         `json:"type" validate:"required"`
	Value    map[string]any `json:"value" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that every required region field is set.
func (r *Region) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid region: %w", err)
	}

	return nil
}
