package labelconfig

import (
	"fmt"
	"strings"

	"lsconfig/internal/task"
)

// CheckRegion explains why a region does not fit this config, or returns nil.
func (c *LabelingConfig) CheckRegion(r task.Region) error {
	fail := func(format string, args ...any) error {
		return newValidationError(CodeRegionInvalid, []string{r.ID}, format, args...)
	}

	if err := r.Validate(); err != nil {
		return fail("%v", err)
	}

	control, ok := c.controls[r.FromName]
	if !ok {
		return fail("from_name %q is not a control", r.FromName)
	}

	if _, ok := c.objects[r.ToName]; !ok {
		return fail("to_name %q is not an object", r.ToName)
	}

	if !strings.EqualFold(control.Tag, r.Type) {
		return fail("type %q does not match control %q of type %q", r.Type, control.Name, control.Type())
	}

	if !control.HasObject(r.ToName) {
		return fail("control %q is not bound to object %q", control.Name, r.ToName)
	}

	if !control.ValidateValue(r.Value) {
		return fail("value of region %q does not fit control %q of type %q", r.ID, control.Name, control.Type())
	}

	return nil
}

// ValidateRegion reports whether a region's control, object, type and value
// all fit this config.
func (c *LabelingConfig) ValidateRegion(r task.Region) bool {
	return c.CheckRegion(r) == nil
}

// ValidateResult reports whether every region validates. An empty result is
// valid.
func (c *LabelingConfig) ValidateResult(result []task.Region) bool {
	for _, r := range result {
		if !c.ValidateRegion(r) {
			return false
		}
	}

	return true
}

// ValidateAnnotation reports whether every region of a validates.
func (c *LabelingConfig) ValidateAnnotation(a task.Annotation) bool {
	return c.ValidateResult(a.Result)
}

// ValidatePrediction reports whether every region of p validates.
func (c *LabelingConfig) ValidatePrediction(p task.Prediction) bool {
	return c.ValidateResult(p.Result)
}

// CheckTask returns every reason t does not fit this config: a missing value
// for a variable object, then each invalid region in annotation and
// prediction order.
func (c *LabelingConfig) CheckTask(t *task.Task) []error {
	if t == nil {
		return []error{fmt.Errorf("%w: task", ErrNotFound)}
	}

	var errs []error

	for _, obj := range c.objects.Sorted() {
		if !obj.ValueIsVariable {
			continue
		}

		if v, ok := t.Data[obj.ValueName]; !ok || v == nil {
			errs = append(errs, fmt.Errorf("data has no value for object %q (key %q)", obj.Name, obj.ValueName))
		}
	}

	for i, a := range t.Annotations {
		for _, r := range a.Result {
			if err := c.CheckRegion(r); err != nil {
				errs = append(errs, fmt.Errorf("annotation %d: %w", i, err))
			}
		}
	}

	for i, p := range t.Predictions {
		for _, r := range p.Result {
			if err := c.CheckRegion(r); err != nil {
				errs = append(errs, fmt.Errorf("prediction %d: %w", i, err))
			}
		}
	}

	return errs
}

// ValidateTask reports whether t carries data for every variable object and
// all its annotations and predictions validate.
func (c *LabelingConfig) ValidateTask(t *task.Task) bool {
	return len(c.CheckTask(t)) == 0
}
