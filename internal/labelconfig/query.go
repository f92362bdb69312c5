package labelconfig

import (
	"fmt"
	"strings"

	"lsconfig/internal/tags"
	"lsconfig/internal/usage"
)

// Control returns the named control. An empty name selects the only control
// and is an error when there are several.
func (c *LabelingConfig) Control(name string) (*tags.ControlTag, error) {
	return lookup(c.controls, name, "control")
}

// Object returns the named object. An empty name selects the only object and
// is an error when there are several.
func (c *LabelingConfig) Object(name string) (*tags.ObjectTag, error) {
	return lookup(c.objects, name, "object")
}

func lookup[T any, M ~map[string]T](m M, name, kind string) (T, error) {
	var zero T

	if name == "" {
		switch len(m) {
		case 0:
			return zero, fmt.Errorf("%w: config has no %s tags", ErrNotFound, kind)
		case 1:
			for _, v := range m {
				return v, nil
			}
		}

		return zero, fmt.Errorf("config has %d %s tags, a name is required", len(m), kind)
	}

	v, ok := m[name]
	if !ok {
		return zero, fmt.Errorf("%w: %s %q", ErrNotFound, kind, name)
	}

	return v, nil
}

// Tag returns the control or object with the given name, controls first.
func (c *LabelingConfig) Tag(name string) (tags.Tag, error) {
	if ctl, ok := c.controls[name]; ok {
		return ctl, nil
	}

	if obj, ok := c.objects[name]; ok {
		return obj, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Tag filters accepted by FindTags.
const (
	FilterAll      = ""
	FilterControls = "controls"
	FilterObjects  = "objects"
	// FilterInputs is an alias of FilterObjects.
	FilterInputs = "inputs"
	// FilterOutputs is an alias of FilterControls.
	FilterOutputs = "outputs"
)

// FindTags returns the tags selected by filter that satisfy match, controls
// before objects, each ordered by name. A nil match accepts everything.
func (c *LabelingConfig) FindTags(filter string, match func(tags.Tag) bool) ([]tags.Tag, error) {
	var withControls, withObjects bool

	switch strings.ToLower(filter) {
	case FilterAll:
		withControls, withObjects = true, true
	case FilterControls, FilterOutputs:
		withControls = true
	case FilterObjects, FilterInputs:
		withObjects = true
	default:
		return nil, fmt.Errorf("unknown tag filter %q", filter)
	}

	var out []tags.Tag

	keep := func(t tags.Tag) {
		if match == nil || match(t) {
			out = append(out, t)
		}
	}

	if withControls {
		for _, ctl := range c.controls.Sorted() {
			keep(ctl)
		}
	}

	if withObjects {
		for _, obj := range c.objects.Sorted() {
			keep(obj)
		}
	}

	return out, nil
}

// ByType matches tags whose lower-cased tag name is one of types.
func ByType(types ...string) func(tags.Tag) bool {
	return func(t tags.Tag) bool {
		for _, typ := range types {
			if strings.EqualFold(t.Type(), typ) {
				return true
			}
		}

		return false
	}
}

// ControlTagTuples returns one "from|to|type" key per control, sorted.
func (c *LabelingConfig) ControlTagTuples() []string {
	out := make([]string, 0, len(c.controls))
	for _, ctl := range c.controls.Sorted() {
		out = append(out, usage.FormatTuple(ctl.Name, ctl.ToName, ctl.Type()))
	}

	return out
}

// AllTypes returns the lower-cased type of every control, ordered by control
// name.
func (c *LabelingConfig) AllTypes() []string {
	out := make([]string, 0, len(c.controls))
	for _, ctl := range c.controls.Sorted() {
		out = append(out, ctl.Type())
	}

	return out
}

// AllLabels returns the declared label values per control and the set of
// controls whose labels come from task data.
func (c *LabelingConfig) AllLabels() (map[string][]string, map[string]bool) {
	labels := make(map[string][]string, len(c.controls))
	dynamic := map[string]bool{}

	for name, ctl := range c.controls {
		labels[name] = append([]string{}, ctl.Labels...)
		if ctl.DynamicValue {
			dynamic[name] = true
		}
	}

	return labels, dynamic
}

const videoType = "video"

// ExtractDataTypes maps each variable object's data key to its object type.
// When several objects share a key, Video wins.
func (c *LabelingConfig) ExtractDataTypes() map[string]string {
	out := map[string]string{}

	for _, obj := range c.objects.Sorted() {
		if !obj.ValueIsVariable {
			continue
		}

		if prev, ok := out[obj.ValueName]; ok && strings.EqualFold(prev, videoType) {
			continue
		}

		out[obj.ValueName] = obj.Tag
	}

	return out
}

// IsVideoObjectTracking reports whether any control is a VideoRectangle.
func (c *LabelingConfig) IsVideoObjectTracking() bool {
	for _, ctl := range c.controls {
		if ctl.Type() == "videorectangle" {
			return true
		}
	}

	return false
}
