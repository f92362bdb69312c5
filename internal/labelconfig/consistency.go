package labelconfig

import (
	"fmt"
	"strings"

	"lsconfig/internal/common"
	"lsconfig/internal/usage"
)

// TextArea tuples are not checked against bindings.
const textAreaType = "textarea"

// ValidateLabelsConsistency fails when this config would orphan labels that
// annotations or drafts already use. created and drafts are summed first.
func (c *LabelingConfig) ValidateLabelsConsistency(created, drafts usage.LabelCounts) error {
	return c.validateLabels(usage.Merge(created, drafts))
}

func (c *LabelingConfig) validateLabels(merged usage.LabelCounts) error {
	names := common.SortedKeys(merged)

	for _, name := range names {
		if _, ok := c.controls[name]; ok {
			continue
		}

		if total := merged.Total(name); total > 0 {
			return newValidationError(CodeControlRemoved, []string{name},
				"There are %s created with tag %q, you can't remove it",
				usage.DisplayCount(total, "annotation"), name)
		}
	}

	var (
		removed []string
		lines   []string
	)

	for _, name := range names {
		control, ok := c.controls[name]
		if !ok || control.DynamicValue {
			continue
		}

		var missing []string

		for _, label := range common.SortedKeys(merged[name]) {
			if merged[name][label] > 0 && !control.HasLabel(label) {
				missing = append(missing, label)
			}
		}

		if len(missing) > 0 {
			removed = append(removed, missing...)
			lines = append(lines, fmt.Sprintf("%s (tag name=%q)", strings.Join(missing, ", "), name))
		}
	}

	if len(removed) == 0 {
		return nil
	}

	return newValidationError(CodeLabelsRemoved, removed,
		"These labels still exist in annotations or drafts:\n%s\nPlease add them back to the corresponding tags.",
		strings.Join(lines, "\n"))
}

// ValidateAnnotationsConsistency fails when a control/object binding that
// annotations already use no longer exists. TextArea tuples are exempt.
func (c *LabelingConfig) ValidateAnnotationsConsistency(tuples usage.TupleCounts) error {
	var bad []string

	for _, key := range common.SortedKeys(tuples) {
		t, err := usage.ParseTuple(key)
		if err != nil {
			bad = append(bad, key)
			continue
		}

		if t.Type == textAreaType {
			continue
		}

		if !c.bindingExists(t) {
			bad = append(bad, key)
		}
	}

	if len(bad) == 0 {
		return nil
	}

	lines := make([]string, len(bad))
	for i, key := range bad {
		lines[i] = describeTuple(key)
	}

	return newValidationError(CodeAnnotationsMismatch, bad,
		"Created annotations are incompatible with provided labeling schema, we found:\n%s",
		strings.Join(lines, "\n"))
}

func (c *LabelingConfig) bindingExists(t usage.Tuple) bool {
	control, ok := c.controls[t.FromName]
	if !ok || len(t.ToName) == 0 {
		return false
	}

	for _, to := range t.ToName {
		if !control.HasObject(to) {
			return false
		}
	}

	return true
}

func describeTuple(key string) string {
	t, err := usage.ParseTuple(key)
	if err != nil {
		return fmt.Sprintf("malformed tag tuple %q", key)
	}

	return fmt.Sprintf("with from_name=%s, to_name=%s, type=%s",
		t.FromName, strings.Join(t.ToName, ","), t.Type)
}

// ValidateConfigUsingSummary checks this config against a project's recorded
// usage: it must declare an object, keep every used binding and keep every
// used label.
func (c *LabelingConfig) ValidateConfigUsingSummary(s *usage.Summary) error {
	if len(c.objects) == 0 {
		return newValidationError(CodeNoObjects, nil, "Labeling config has no object tags")
	}

	if s == nil || s.IsEmpty() {
		return nil
	}

	if err := c.ValidateAnnotationsConsistency(s.CreatedAnnotations); err != nil {
		return err
	}

	return c.validateLabels(s.MergedLabels())
}
