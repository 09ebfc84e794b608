package scprofile

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// rdfElement is one node of the profile document. The document is
// assembled as an explicit tree and serialized with a fixed two-space
// indent so output bytes are reproducible.
type rdfElement struct {
	name     string
	attrs    []rdfAttr
	text     string
	children []*rdfElement
}

type rdfAttr struct {
	name  string
	value string
}

func newElement(name string) *rdfElement {
	return &rdfElement{name: name}
}

func (e *rdfElement) attr(name, value string) *rdfElement {
	e.attrs = append(e.attrs, rdfAttr{name: name, value: value})
	return e
}

// child appends a text-only child element.
func (e *rdfElement) child(name, text string) {
	e.children = append(e.children, &rdfElement{name: name, text: text})
}

// resource appends an empty child carrying an rdf:resource reference.
func (e *rdfElement) resource(name, ref string) {
	c := newElement(name).attr("rdf:resource", ref)
	e.children = append(e.children, c)
}

func (e *rdfElement) append(children ...*rdfElement) {
	e.children = append(e.children, children...)
}

func (e *rdfElement) write(buf *bytes.Buffer, depth int) {
	indent := strings.Repeat("  ", depth)
	buf.WriteString(indent)
	buf.WriteByte('<')
	buf.WriteString(e.name)
	for _, a := range e.attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.name)
		buf.WriteString(`="`)
		escape(buf, a.value)
		buf.WriteByte('"')
	}
	switch {
	case len(e.children) > 0:
		buf.WriteString(">\n")
		for _, c := range e.children {
			c.write(buf, depth+1)
		}
		buf.WriteString(indent)
		buf.WriteString("</")
		buf.WriteString(e.name)
		buf.WriteString(">\n")
	case e.text != "":
		buf.WriteByte('>')
		escape(buf, e.text)
		buf.WriteString("</")
		buf.WriteString(e.name)
		buf.WriteString(">\n")
	default:
		buf.WriteString("/>\n")
	}
}

func escape(buf *bytes.Buffer, s string) {
	// EscapeText cannot fail on a bytes.Buffer.
	_ = xml.EscapeText(buf, []byte(s))
}
