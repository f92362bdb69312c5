package tags

import (
	"slices"
	"strings"

	"lsconfig/internal/common"
)

// ExampleLabel is used in generated values when a control declares no labels.
const ExampleLabel = "example"

// ControlTag is an annotatable output such as Choices or RectangleLabels.
type ControlTag struct {
	Name string
	// Tag is the markup tag name as written, e.g. "RectangleLabels".
	Tag string
	// ToName lists the target object names in declaration order.
	ToName []string
	// Labels lists the permitted label values in document order.
	Labels []string
	// LabelAttrs maps each label value to its declared attributes.
	LabelAttrs map[string]map[string]string
	// DynamicValue is set when labels come from task data (value="$key").
	DynamicValue bool
	// Objects lists the resolved target object names. Set by linking.
	Objects []string
	Attrs   map[string]string
}

// NewControlTag builds a ControlTag from a node classified as KindControl.
func NewControlTag(n *Node) *ControlTag {
	attrs := n.AttrMap()

	return &ControlTag{
		Name:         attrs[AttrName],
		Tag:          n.Tag,
		ToName:       SplitNames(attrs[AttrToName]),
		DynamicValue: strings.HasPrefix(attrs[AttrValue], "$"),
		Attrs:        attrs,
	}
}

// SplitNames splits a comma separated toName attribute.
func SplitNames(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// Type returns the lower-cased tag name, the form used in region "type".
func (c *ControlTag) Type() string {
	return strings.ToLower(c.Tag)
}

// IsKnownType reports whether the control's tag has a known value contract.
func (c *ControlTag) IsKnownType() bool {
	_, ok := controlShapes[c.Type()]
	return ok
}

// LabelKey returns the region value key that lists chosen labels, or "".
func (c *ControlTag) LabelKey() string {
	return controlShapes[c.Type()].LabelKey
}

// ValueKeys returns the region value keys the control type requires.
func (c *ControlTag) ValueKeys() []string {
	return controlShapes[c.Type()].keys()
}

// SetObjects replaces the resolved target objects.
func (c *ControlTag) SetObjects(names []string) {
	c.Objects = slices.Clone(names)
}

// SetLabels replaces the permitted labels with the given ones, which must be
// in document order.
func (c *ControlTag) SetLabels(labels []*LabelTag) {
	c.Labels = make([]string, 0, len(labels))
	c.LabelAttrs = make(map[string]map[string]string, len(labels))

	for _, l := range labels {
		if _, dup := c.LabelAttrs[l.Value]; !dup {
			c.Labels = append(c.Labels, l.Value)
		}

		c.LabelAttrs[l.Value] = common.CloneStringMap(l.Attrs)
	}
}

// HasLabel reports whether value is a declared label.
func (c *ControlTag) HasLabel(value string) bool {
	_, ok := c.LabelAttrs[value]
	return ok
}

// HasObject reports whether name is among the resolved target objects.
func (c *ControlTag) HasObject(name string) bool {
	for _, o := range c.Objects {
		if o == name {
			return true
		}
	}

	return false
}

// checksLabels reports whether chosen labels must be declared ones. Dynamic
// controls take labels from task data, and a control that declares none has
// nothing to check against.
func (c *ControlTag) checksLabels() bool {
	return !c.DynamicValue && len(c.Labels) > 0
}

// ValidateValue reports whether a region value has the shape this control
// type produces. Unknown control types accept any non-nil object.
func (c *ControlTag) ValidateValue(value map[string]any) bool {
	if value == nil {
		return false
	}

	shape, known := controlShapes[c.Type()]
	if !known {
		return true
	}

	for _, f := range shape.Fields {
		v, ok := value[f.Key]
		if !ok || !f.Shape.check(v) {
			return false
		}
	}

	if shape.LabelKey == "" {
		return true
	}

	chosen, ok := stringList(value[shape.LabelKey])
	if !ok || len(chosen) == 0 {
		return false
	}

	if c.checksLabels() {
		for _, l := range chosen {
			if !c.HasLabel(l) {
				return false
			}
		}
	}

	return true
}

// ExampleValue returns a region value this control accepts, built from its
// first declared label.
func (c *ControlTag) ExampleValue() map[string]any {
	label := ExampleLabel
	if first, ok := common.First(c.Labels); ok {
		label = first
	}

	shape, known := controlShapes[c.Type()]
	if !known {
		return map[string]any{}
	}

	extra := map[string]any{}
	if shape.LabelKey != "" {
		extra[shape.LabelKey] = []any{label}
	}

	if c.Type() == "taxonomy" {
		extra["taxonomy"] = []any{[]any{label}}
	}

	return shape.mergeExample(extra)
}

// Clone returns a deep copy of c.
func (c *ControlTag) Clone() *ControlTag {
	out := *c
	out.ToName = slices.Clone(c.ToName)
	out.Labels = slices.Clone(c.Labels)
	out.Objects = slices.Clone(c.Objects)
	out.Attrs = common.CloneStringMap(c.Attrs)

	if c.LabelAttrs != nil {
		out.LabelAttrs = make(map[string]map[string]string, len(c.LabelAttrs))
		for k, v := range c.LabelAttrs {
			out.LabelAttrs[k] = common.CloneStringMap(v)
		}
	}

	return &out
}
