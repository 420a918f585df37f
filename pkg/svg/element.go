// Package svg provides a minimal XML element tree for building SVG
// fragments with deterministic, insertion-ordered attributes.
//
// encoding/xml cannot guarantee attribute order and struct-based marshal
// does not compose well for heterogeneous fragment trees, so elements are
// serialized by hand. Attribute values must be fully resolved strings
// before insertion; escaping happens only at serialization time.
package svg

import (
	"strconv"
	"strings"
)

// Attr is a single name/value attribute pair.
type Attr struct {
	Name, Value string
}

// Element is one node of an SVG fragment: a tag with ordered attributes
// and ordered children.
type Element struct {
	Tag      string
	attrs    []Attr
	children []*Element
}

// New builds an element with the given tag and initial attributes.
func New(tag string, attrs ...Attr) *Element {
	return &Element{Tag: tag, attrs: attrs}
}

// Set appends the attribute, replacing the value if the name is already
// present. Insertion order is preserved.
func (e *Element) Set(name, value string) *Element {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return e
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
	return e
}

// Get returns the value of the named attribute and whether it is set.
func (e *Element) Get(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns a copy of the attribute list in insertion order.
func (e *Element) Attrs() []Attr {
	out := make([]Attr, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// Append adds children to the element, preserving order.
func (e *Element) Append(children ...*Element) *Element {
	e.children = append(e.children, children...)
	return e
}

// Children returns the child list. The slice must not be mutated.
func (e *Element) Children() []*Element { return e.children }

// Find returns the first descendant (depth-first, including e itself)
// with the given tag, or nil.
func (e *Element) Find(tag string) *Element {
	if e.Tag == tag {
		return e
	}
	for _, c := range e.children {
		if found := c.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns all descendants (depth-first, including e itself)
// with the given tag, in document order.
func (e *Element) FindAll(tag string) []*Element {
	var out []*Element
	if e.Tag == tag {
		out = append(out, e)
	}
	for _, c := range e.children {
		out = append(out, c.FindAll(tag)...)
	}
	return out
}

// String serializes the element and its subtree. Childless elements are
// self-closing; attribute values are XML-escaped.
func (e *Element) String() string {
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (e *Element) write(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(e.Tag)
	for _, a := range e.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(escape(a.Value))
		sb.WriteByte('"')
	}
	if len(e.children) == 0 {
		sb.WriteString(" />")
		return
	}
	sb.WriteByte('>')
	for _, c := range e.children {
		c.write(sb)
	}
	sb.WriteString("</")
	sb.WriteString(e.Tag)
	sb.WriteByte('>')
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string { return escaper.Replace(s) }

// Num formats a float the way SVG coordinates are conventionally written:
// the shortest decimal representation that round-trips, with no trailing
// zeros ("20", "0.5", "-3.25").
func Num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
