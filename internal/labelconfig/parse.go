package labelconfig

import (
	"fmt"

	"github.com/charmbracelet/log"

	"lsconfig/internal/diagnostic"
	"lsconfig/internal/tags"
)

// Diagnostic codes produced while parsing and linking.
const (
	CodeLabelOwnerUnresolved = "label_owner_unresolved"
	CodeToNameUnresolved     = "to_name_unresolved"
	CodeDuplicateName        = "duplicate_name"
	CodeChannelOrphan        = "channel_orphan"
)

// Parsed is the unlinked result of Parse.
type Parsed struct {
	Controls ControlMap
	Objects  ObjectMap
	Labels   LabelMap
	// Tree is the root element of the raw markup.
	Tree        *tags.Node
	Diagnostics diagnostic.Diagnostics
}

// Parse reads markup text and classifies every element in one pre-order walk.
// It fails only with *SyntaxError.
func Parse(text string, opts ...Option) (*Parsed, error) {
	o := newOptions(opts)

	root, err := parseMarkup(text)
	if err != nil {
		return nil, err
	}

	p := &Parsed{
		Controls: ControlMap{},
		Objects:  ObjectMap{},
		Labels:   LabelMap{},
		Tree:     root,
	}

	w := walker{parsed: p, logger: o.logger}
	root.Walk(w.visit)

	o.logger.Debug("parsed label config",
		"controls", len(p.Controls), "objects", len(p.Objects), "elements", root.Count())

	return p, nil
}

type walker struct {
	parsed *Parsed
	logger *log.Logger
	// index counts labels across the whole document.
	index int
}

func (w *walker) visit(n *tags.Node, ancestors []*tags.Node) {
	p := w.parsed

	switch tags.Classify(n) {
	case tags.KindControl:
		c := tags.NewControlTag(n)
		if _, dup := p.Controls[c.Name]; dup {
			w.duplicate(c.Name, n)
		}

		p.Controls[c.Name] = c
	case tags.KindObject:
		obj := tags.NewObjectTag(n)
		if _, dup := p.Objects[obj.Name]; dup {
			w.duplicate(obj.Name, n)
		}

		p.Objects[obj.Name] = obj
	case tags.KindLabel:
		w.label(n, ancestors)
	default:
		if n.Tag == "Channel" {
			w.channel(n, ancestors)
		}
	}
}

func (w *walker) duplicate(name string, n *tags.Node) {
	msg := fmt.Sprintf("<%s> on line %d redeclares name %q, the last declaration wins", n.Tag, n.Line, name)
	w.parsed.Diagnostics.AddWarning(CodeDuplicateName, msg, name, tags.AttrName)
	w.logger.Warn("duplicate name", "name", name, "line", n.Line)
}

// label attaches a label to its nearest control ancestor.
func (w *walker) label(n *tags.Node, ancestors []*tags.Node) {
	owner := ""

	for i := len(ancestors) - 1; i >= 0; i-- {
		if tags.IsControl(ancestors[i]) {
			owner = ancestors[i].AttrOr(tags.AttrName, "")
			break
		}
	}

	value := n.AttrOr(tags.AttrValue, "")
	if owner == "" {
		msg := fmt.Sprintf("<%s value=%q> on line %d has no enclosing control and is ignored", n.Tag, value, n.Line)
		w.parsed.Diagnostics.AddWarning(CodeLabelOwnerUnresolved, msg, "", value)
		w.logger.Debug("label without owner", "tag", n.Tag, "value", value, "line", n.Line)

		return
	}

	labels, ok := w.parsed.Labels[owner]
	if !ok {
		labels = map[string]*tags.LabelTag{}
		w.parsed.Labels[owner] = labels
	}

	l := tags.NewLabelTag(n, owner, w.index)
	if prev, dup := labels[value]; dup {
		l.Index = prev.Index
	}

	labels[value] = l
	w.index++
}

// channel records a TimeSeries channel column on the nearest object ancestor.
func (w *walker) channel(n *tags.Node, ancestors []*tags.Node) {
	column := n.AttrOr("column", "")

	for i := len(ancestors) - 1; i >= 0; i-- {
		if !tags.IsObject(ancestors[i]) {
			continue
		}

		if obj, ok := w.parsed.Objects[ancestors[i].AttrOr(tags.AttrName, "")]; ok {
			obj.AddChannel(column)
			return
		}
	}

	w.parsed.Diagnostics.AddInfo(CodeChannelOrphan,
		fmt.Sprintf("<Channel column=%q> on line %d is not inside an object", column, n.Line), "", column)
}
