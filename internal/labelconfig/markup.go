package labelconfig

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"maps"
	"strings"

	"lsconfig/internal/tags"
)

// xmlPrefix is bound in every document without a declaration.
const xmlPrefix = "xml"

// element is an open element together with the prefixes in scope for it.
type element struct {
	node  *tags.Node
	raw   string
	scope map[string]bool
}

// parseMarkup builds the raw element tree. Comments, processing instructions
// and character data are not kept. Element tags are stored by local name once
// their prefix is known to be bound; attribute names keep their prefix.
func parseMarkup(text string) (*tags.Node, error) {
	dec := xml.NewDecoder(strings.NewReader(text))
	dec.Strict = true

	var (
		root  *tags.Node
		stack []element
	)

	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, toSyntaxError(err)
		}

		line, _ := dec.InputPos()

		switch t := tok.(type) {
		case xml.StartElement:
			var parent map[string]bool
			if len(stack) > 0 {
				parent = stack[len(stack)-1].scope
			}

			el, err := openElement(t, parent, line)
			if err != nil {
				return nil, err
			}

			switch {
			case len(stack) > 0:
				p := stack[len(stack)-1].node
				p.Children = append(p.Children, el.node)
			case root != nil:
				return nil, &SyntaxError{Line: line, Msg: "extra content at the end of the document"}
			default:
				root = el.node
			}

			stack = append(stack, el)
		case xml.EndElement:
			raw := rawName(t.Name)
			if len(stack) == 0 {
				return nil, &SyntaxError{Line: line, Msg: fmt.Sprintf("unexpected end element </%s>", raw)}
			}

			if open := stack[len(stack)-1].raw; open != raw {
				return nil, &SyntaxError{Line: line, Msg: fmt.Sprintf("element <%s> closed by </%s>", open, raw)}
			}

			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 && len(bytes.TrimSpace(t)) > 0 {
				return nil, &SyntaxError{Line: line, Msg: "text outside of the root element"}
			}
		}
	}

	if len(stack) > 0 {
		line, _ := dec.InputPos()

		return nil, &SyntaxError{Line: line, Msg: fmt.Sprintf("unexpected EOF: element <%s> not closed", stack[len(stack)-1].raw)}
	}

	if root == nil {
		return nil, &SyntaxError{Msg: "document is empty"}
	}

	return root, nil
}

// openElement checks attribute uniqueness and prefix bindings for a start tag
// and returns the element with its own prefix scope.
func openElement(t xml.StartElement, parent map[string]bool, line int) (element, error) {
	scope := parent
	owned := false
	seen := make(map[string]bool, len(t.Attr))

	for _, a := range t.Attr {
		name := rawName(a.Name)
		if seen[name] {
			return element{}, &SyntaxError{Line: line, Msg: fmt.Sprintf("attribute %s redefined", name)}
		}

		seen[name] = true

		if a.Name.Space != "xmlns" {
			continue
		}

		if !owned {
			scope = make(map[string]bool, len(parent)+1)
			maps.Copy(scope, parent)
			owned = true
		}

		scope[a.Name.Local] = true
	}

	if !bound(t.Name.Space, scope) {
		return element{}, &SyntaxError{
			Line: line,
			Msg:  fmt.Sprintf("namespace prefix %s on element %s is not defined", t.Name.Space, t.Name.Local),
		}
	}

	n := &tags.Node{Tag: t.Name.Local, Line: line}

	for _, a := range t.Attr {
		if a.Name.Space != "xmlns" && !bound(a.Name.Space, scope) {
			return element{}, &SyntaxError{
				Line: line,
				Msg:  fmt.Sprintf("namespace prefix %s for attribute %s is not defined", a.Name.Space, a.Name.Local),
			}
		}

		n.Attrs = append(n.Attrs, tags.Attr{Name: rawName(a.Name), Value: a.Value})
	}

	return element{node: n, raw: rawName(t.Name), scope: scope}, nil
}

func bound(prefix string, scope map[string]bool) bool {
	return prefix == "" || prefix == xmlPrefix || scope[prefix]
}

func toSyntaxError(err error) *SyntaxError {
	var xe *xml.SyntaxError
	if errors.As(err, &xe) {
		return &SyntaxError{Line: xe.Line, Msg: xe.Msg, Err: err}
	}

	return &SyntaxError{Msg: err.Error(), Err: err}
}

// rawName renders a name as written, with its prefix.
func rawName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}

	return n.Space + ":" + n.Local
}
