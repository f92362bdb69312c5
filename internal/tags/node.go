package tags

import "slices"

// Attr is a single markup attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of the raw markup tree. Nodes hold no parent pointers;
// ancestry is supplied by Walk.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
	// Line is the 1-based source line of the start tag, 0 when unknown.
	Line int
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}

	return "", false
}

// AttrOr returns the named attribute, or def when it is absent.
func (n *Node) AttrOr(name, def string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}

	return def
}

// AttrMap returns the attributes as a map. Later duplicates win.
func (n *Node) AttrMap() map[string]string {
	m := make(map[string]string, len(n.Attrs))
	for _, a := range n.Attrs {
		m[a.Name] = a.Value
	}

	return m
}

// Clone deep-copies the subtree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	out := &Node{
		Tag:   n.Tag,
		Attrs: slices.Clone(n.Attrs),
		Line:  n.Line,
	}

	if n.Children != nil {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}

	return out
}

// Walk visits n and its descendants in document order (pre-order). The
// ancestors slice runs from the root to the direct parent and is only valid
// during the call.
func (n *Node) Walk(fn func(node *Node, ancestors []*Node)) {
	if n == nil {
		return
	}

	var visit func(node *Node, ancestors []*Node)
	visit = func(node *Node, ancestors []*Node) {
		fn(node, ancestors)

		ancestors = append(ancestors, node)
		for _, c := range node.Children {
			visit(c, ancestors)
		}
	}

	visit(n, nil)
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node, []*Node) { total++ })

	return total
}
