package labelconfig

import (
	"fmt"
	"maps"

	"lsconfig/internal/common"
	"lsconfig/internal/tags"
	"lsconfig/internal/task"
)

// Sample is a generated task merged with the config's embedded example.
type Sample struct {
	Data        map[string]any `json:"data" yaml:"data"`
	Annotations any            `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Predictions any            `json:"predictions,omitempty" yaml:"predictions,omitempty"`
}

// GenerateExampleData returns example data keyed by each variable object's
// data key. Objects with a static value such as <Header value="Title"/> read
// nothing from task data and are skipped.
func (c *LabelingConfig) GenerateExampleData(mode tags.ExampleMode, secure bool) map[string]any {
	out := map[string]any{}

	for _, obj := range c.objects.Sorted() {
		if obj.ValueIsVariable {
			out[obj.ValueName] = obj.GenerateExampleValue(mode, secure)
		}
	}

	return out
}

// GenerateSampleTask returns generated example data overridden by the
// embedded example's data, plus the embedded annotations and predictions.
func (c *LabelingConfig) GenerateSampleTask(mode tags.ExampleMode, secure bool) Sample {
	data := c.GenerateExampleData(mode, secure)
	maps.Copy(data, common.CloneMap(c.example.Data))

	c.logger.Debug("generated sample task", "mode", mode, "secure", secure, "keys", len(data))

	return Sample{
		Data:        data,
		Annotations: common.CloneValue(c.example.Annotations),
		Predictions: common.CloneValue(c.example.Predictions),
	}
}

// GenerateSampleAnnotation returns an annotation with one region per resolved
// control to object binding. Every region passes ValidateRegion.
func (c *LabelingConfig) GenerateSampleAnnotation() task.Annotation {
	result := []task.Region{}

	for _, control := range c.controls.Sorted() {
		for _, object := range control.Objects {
			result = append(result, task.Region{
				ID:       fmt.Sprintf("%s-%s", control.Name, object),
				FromName: control.Name,
				ToName:   object,
				Type:     control.Type(),
				Value:    control.ExampleValue(),
			})
		}
	}

	return task.Annotation{Result: result}
}
