package tags

// LabelTagNames are the element names that declare a permitted label value.
var LabelTagNames = map[string]struct{}{
	"Label":    {},
	"Choice":   {},
	"Relation": {},
}

// Attribute names the classifier and parser rely on.
const (
	AttrName   = "name"
	AttrToName = "toName"
	AttrValue  = "value"
)

// IsLabelTagName reports whether tag is one of LabelTagNames.
func IsLabelTagName(tag string) bool {
	_, ok := LabelTagNames[tag]
	return ok
}

// IsControl reports whether n declares a control: it has a name and a toName.
func IsControl(n *Node) bool {
	if n == nil || IsLabelTagName(n.Tag) {
		return false
	}

	return n.AttrOr(AttrName, "") != "" && n.AttrOr(AttrToName, "") != ""
}

// IsObject reports whether n declares an object: it has a name and a value.
func IsObject(n *Node) bool {
	if n == nil || IsLabelTagName(n.Tag) {
		return false
	}

	return n.AttrOr(AttrName, "") != "" && n.AttrOr(AttrValue, "") != ""
}

// IsLabel reports whether n declares a label value.
func IsLabel(n *Node) bool {
	if n == nil || !IsLabelTagName(n.Tag) {
		return false
	}

	_, ok := n.Attr(AttrValue)

	return ok
}

// Classify returns the role of n. Predicates are checked in the order
// control, object, label and the first match wins: a Choices element with a
// dynamic value="$options" attribute satisfies both the control and the object
// predicate and must be a control.
func Classify(n *Node) Kind {
	switch {
	case IsControl(n):
		return KindControl
	case IsObject(n):
		return KindObject
	case IsLabel(n):
		return KindLabel
	default:
		return KindNone
	}
}
