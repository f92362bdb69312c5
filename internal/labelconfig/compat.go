package labelconfig

import (
	"fmt"
	"slices"

	"lsconfig/internal/common"
)

// EssentialChanges lists the edits between c and next that existing
// annotations could not survive: a new control, a changed control type, a
// changed set of bound objects or a removed label. Removing a control is not
// listed here; ValidateLabelsConsistency covers controls that are in use.
func (c *LabelingConfig) EssentialChanges(next *LabelingConfig) []string {
	var out []string

	for _, n := range next.controls.Sorted() {
		old, ok := c.controls[n.Name]
		if !ok {
			out = append(out, fmt.Sprintf("control %q added", n.Name))
			continue
		}

		if old.Type() != n.Type() {
			out = append(out, fmt.Sprintf("control %q changed type from %s to %s", n.Name, old.Tag, n.Tag))
		}

		if !c.sameObjects(old.Objects, next, n.Objects) {
			out = append(out, fmt.Sprintf("control %q changed objects from %v to %v", n.Name, old.Objects, n.Objects))
		}

		if common.IsSubset(old.Labels, n.Labels) {
			continue
		}

		for _, label := range old.Labels {
			if !n.HasLabel(label) {
				out = append(out, fmt.Sprintf("control %q removed label %q", n.Name, label))
			}
		}
	}

	return out
}

// sameObjects compares bound object names in order, and each object's type.
func (c *LabelingConfig) sameObjects(old []string, next *LabelingConfig, cur []string) bool {
	if !slices.Equal(old, cur) {
		return false
	}

	for _, name := range cur {
		if c.objects[name].Type() != next.objects[name].Type() {
			return false
		}
	}

	return true
}

// HasEssentialChange parses newText and reports whether it is an essential
// change of c. A parse failure of newText is returned.
func (c *LabelingConfig) HasEssentialChange(newText string) (bool, error) {
	next, err := New(newText, WithLogger(c.logger))
	if err != nil {
		return false, fmt.Errorf("parse new config: %w", err)
	}

	changes := c.EssentialChanges(next)
	for _, ch := range changes {
		c.logger.Debug("essential change", "change", ch)
	}

	return len(changes) > 0, nil
}
