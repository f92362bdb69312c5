package tags

import "lsconfig/internal/common"

// LabelTag is one permitted value under a control.
type LabelTag struct {
	// ParentName is the name of the owning control.
	ParentName string
	Value      string
	Tag        string
	// Attrs holds every declared attribute (background, hint, alias, ...).
	Attrs map[string]string
	// Index is the document position, used to keep labels in declared order.
	Index int
}

// NewLabelTag builds a LabelTag from a node classified as KindLabel.
func NewLabelTag(n *Node, parent string, index int) *LabelTag {
	attrs := n.AttrMap()

	return &LabelTag{
		ParentName: parent,
		Value:      attrs[AttrValue],
		Tag:        n.Tag,
		Attrs:      attrs,
		Index:      index,
	}
}

// Clone returns a copy of l.
func (l *LabelTag) Clone() *LabelTag {
	out := *l
	out.Attrs = common.CloneStringMap(l.Attrs)

	return &out
}
