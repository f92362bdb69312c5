package labelconfig

import (
	"encoding/json"
	"strings"

	"github.com/charmbracelet/log"

	"lsconfig/internal/common"
	"lsconfig/internal/logging"
)

// Example is the task embedded in a config comment.
type Example struct {
	// Data is nil when the comment only carries annotations or predictions.
	Data        map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
	Annotations any            `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Predictions any            `json:"predictions,omitempty" yaml:"predictions,omitempty"`
}

// IsZero reports whether the example carries nothing.
func (e Example) IsZero() bool {
	return e.Data == nil && e.Annotations == nil && e.Predictions == nil
}

func (e Example) clone() Example {
	return Example{
		Data:        common.CloneMap(e.Data),
		Annotations: common.CloneValue(e.Annotations),
		Predictions: common.CloneValue(e.Predictions),
	}
}

// ExtractExample finds the first "<!-- {" (or "<!--{") comment and decodes its
// JSON body. A missing or undecodable comment yields ok == false. A "data"
// member that is not an object is dropped while annotations and predictions
// are kept.
func ExtractExample(text string) (Example, bool) {
	return extractExample(text, logging.Discard())
}

func extractExample(text string, logger *log.Logger) (Example, bool) {
	start := strings.Index(text, "<!-- {")
	if start < 0 {
		start = strings.Index(text, "<!--{")
	}

	if start < 0 {
		return Example{}, false
	}

	start += len("<!--")

	end := strings.Index(text[start:], "-->")
	if end <= 0 {
		return Example{}, false
	}

	var body map[string]any
	if err := json.Unmarshal([]byte(text[start:start+end]), &body); err != nil {
		logger.Debug("embedded example is not valid JSON", "err", err)
		return Example{}, false
	}

	annotations, hasAnnotations := body["annotations"]
	predictions, hasPredictions := body["predictions"]

	ex := Example{Annotations: annotations, Predictions: predictions}

	switch data, ok := body["data"]; {
	case ok:
		if m, isMap := data.(map[string]any); isMap {
			ex.Data = m
		} else {
			logger.Debug("embedded example data is not an object, dropping it")
		}
	case !hasAnnotations && !hasPredictions:
		ex.Data = body
	}

	return ex, !ex.IsZero()
}
