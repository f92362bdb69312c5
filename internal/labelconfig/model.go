package labelconfig

import (
	"sort"

	"lsconfig/internal/common"
	"lsconfig/internal/tags"
)

// ControlMap maps control name to control.
type ControlMap map[string]*tags.ControlTag

// ObjectMap maps object name to object.
type ObjectMap map[string]*tags.ObjectTag

// LabelMap maps control name -> label value -> label.
type LabelMap map[string]map[string]*tags.LabelTag

// Names returns the control names sorted.
func (m ControlMap) Names() []string { return common.SortedKeys(m) }

// Sorted returns the controls ordered by name.
func (m ControlMap) Sorted() []*tags.ControlTag {
	out := make([]*tags.ControlTag, 0, len(m))
	for _, name := range m.Names() {
		out = append(out, m[name])
	}

	return out
}

// Clone returns a deep copy of m.
func (m ControlMap) Clone() ControlMap {
	out := make(ControlMap, len(m))
	for k, v := range m {
		out[k] = v.Clone()
	}

	return out
}

// Names returns the object names sorted.
func (m ObjectMap) Names() []string { return common.SortedKeys(m) }

// Sorted returns the objects ordered by name.
func (m ObjectMap) Sorted() []*tags.ObjectTag {
	out := make([]*tags.ObjectTag, 0, len(m))
	for _, name := range m.Names() {
		out = append(out, m[name])
	}

	return out
}

// Clone returns a deep copy of m.
func (m ObjectMap) Clone() ObjectMap {
	out := make(ObjectMap, len(m))
	for k, v := range m {
		out[k] = v.Clone()
	}

	return out
}

// Ordered returns the labels of control in document order.
func (m LabelMap) Ordered(control string) []*tags.LabelTag {
	out := make([]*tags.LabelTag, 0, len(m[control]))
	for _, l := range m[control] {
		out = append(out, l)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })

	return out
}

// Values returns the label values of control in document order.
func (m LabelMap) Values(control string) []string {
	ordered := m.Ordered(control)
	out := make([]string, len(ordered))

	for i, l := range ordered {
		out[i] = l.Value
	}

	return out
}

// Clone returns a deep copy of m.
func (m LabelMap) Clone() LabelMap {
	out := make(LabelMap, len(m))
	for control, labels := range m {
		cp := make(map[string]*tags.LabelTag, len(labels))
		for v, l := range labels {
			cp[v] = l.Clone()
		}

		out[control] = cp
	}

	return out
}
