package rtacxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Node is one element of a parsed XML document: tag name, attributes,
// ordered child elements, and accumulated character data. All searches
// operate on this tree so element cardinality never matters - a single
// Row and a sequence of Rows are both just children.
type Node struct {
	Name     string
	Attrs    []xml.Attr
	Children []*Node
	Text     string
}

// decodeDocument builds the Node tree for an XML document. Namespace
// prefixes are dropped; RTAC exports do not use them consistently enough
// to be meaningful. Returns an error only for malformed XML.
func decodeDocument(data []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charsetReader

	var root *Node
	var stack []*Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local, Attrs: t.Attr}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unbalanced end element %q", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("no root element")
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("unclosed element %q", stack[len(stack)-1].Name)
	}
	return root, nil
}

// charsetReader decodes XML declared in a non-UTF-8 charset. RTAC export
// tools have been observed emitting windows-1252 and ISO-8859-1 headers.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

// TrimmedText returns the node's character data with surrounding
// whitespace removed.
func (n *Node) TrimmedText() string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.Text)
}

// Child returns the first direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all direct children with the given name,
// in document order.
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the first descendant (depth-first, document order) with
// the given name, or nil. The node itself is not considered.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant with the given name in document
// order. The node itself is not considered.
func (n *Node) FindAll(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
		out = append(out, c.FindAll(name)...)
	}
	return out
}

// AllNamed returns the node itself (when its name matches) followed by
// every matching descendant, in document order.
func (n *Node) AllNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	if n.Name == name {
		out = append(out, n)
	}
	return append(out, n.FindAll(name)...)
}

// Walk visits the node and every descendant in depth-first document
// order.
func (n *Node) Walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// Attr returns the value of the first attribute matching any of the
// given names, tried in order. Missing attributes yield "".
func (n *Node) Attr(names ...string) string {
	if n == nil {
		return ""
	}
	for _, name := range names {
		for _, a := range n.Attrs {
			if a.Name.Local == name {
				return a.Value
			}
		}
	}
	return ""
}
