// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package encode

import (
	"encoding/xml"
	"strconv"
	"time"

	"github.com/Ventmere/mws-go/internal/decl"
	"github.com/Ventmere/mws-go/internal/marshal"
	"github.com/Ventmere/mws-go/xtime"
	"mellium.im/xmlstream"
)

// Element is a node that writes an element with its attributes and content.
// It is built by chaining method calls starting from Elem or ElemNS:
//
//	encode.Elem("Message").
//		Append(encode.Elem("SKU").Text(sku)).
//		Append(encode.Elem("Quantity").Int(qty))
//
// Namespace declarations are written first, then attributes, then the content
// in the order it was appended.
type Element struct {
	name    xml.Name
	ns      []xml.Attr
	attr    []xml.Attr
	content []xmlstream.WriterTo
}

// Elem returns an element with the given local name.
func Elem(local string) *Element {
	return &Element{name: xml.Name{Local: local}}
}

// ElemNS returns an element in the namespace space.
func ElemNS(space, local string) *Element {
	return &Element{name: xml.Name{Space: space, Local: local}}
}

// NS declares the namespace uri with the given prefix on the element.
// An empty prefix declares the default namespace.
func (e *Element) NS(prefix, uri string) *Element {
	if prefix == "" {
		e.ns = append(e.ns, xml.Attr{Name: xml.Name{Local: nsXMLNS}, Value: uri})
		return e
	}
	e.ns = append(e.ns, xml.Attr{Name: xml.Name{Space: nsXMLNS, Local: prefix}, Value: uri})
	return e
}

// Attr adds an attribute.
func (e *Element) Attr(local, value string) *Element {
	e.attr = append(e.attr, xml.Attr{Name: xml.Name{Local: local}, Value: value})
	return e
}

// AttrNS adds an attribute in the namespace space.
// The namespace must be declared on the element or one of its ancestors.
func (e *Element) AttrNS(space, local, value string) *Element {
	e.attr = append(e.attr, xml.Attr{Name: xml.Name{Space: space, Local: local}, Value: value})
	return e
}

// Text appends character data.
func (e *Element) Text(s string) *Element {
	return e.Append(Text(s))
}

// Int appends the decimal representation of v.
func (e *Element) Int(v int) *Element {
	return e.Append(Text(strconv.Itoa(v)))
}

// Int64 appends the decimal representation of v.
func (e *Element) Int64(v int64) *Element {
	return e.Append(Text(strconv.FormatInt(v, 10)))
}

// Bool appends "true" or "false".
func (e *Element) Bool(v bool) *Element {
	return e.Append(Text(strconv.FormatBool(v)))
}

// Time appends t formatted as an RFC 3339 timestamp in UTC.
func (e *Element) Time(t time.Time) *Element {
	return e.Append(Text(xtime.Format(t)))
}

// Append appends child nodes.
func (e *Element) Append(n ...xmlstream.WriterTo) *Element {
	e.content = append(e.content, n...)
	return e
}

// Func appends a function that writes content directly to the token stream.
func (e *Element) Func(f func(w xmlstream.TokenWriter) error) *Element {
	return e.Append(Func(f))
}

// WriteXML satisfies the xmlstream.WriterTo interface.
// It is like MarshalXML except it writes tokens to w.
func (e *Element) WriteXML(w xmlstream.TokenWriter) (n int, err error) {
	attr := make([]xml.Attr, 0, len(e.ns)+len(e.attr))
	attr = append(attr, e.ns...)
	attr = append(attr, e.attr...)
	start := xml.StartElement{Name: e.name, Attr: attr}
	if err = w.EncodeToken(start); err != nil {
		return n, err
	}
	n++
	for _, c := range e.content {
		if c == nil {
			continue
		}
		nn, err := c.WriteXML(w)
		n += nn
		if err != nil {
			return n, err
		}
	}
	if err = w.EncodeToken(start.End()); err != nil {
		return n, err
	}
	n++
	return n, nil
}

// Text is a node that writes character data.
// An empty string writes nothing.
type Text string

// WriteXML satisfies the xmlstream.WriterTo interface.
func (t Text) WriteXML(w xmlstream.TokenWriter) (int, error) {
	if t == "" {
		return 0, nil
	}
	if err := w.EncodeToken(xml.CharData(t)); err != nil {
		return 0, err
	}
	return 1, nil
}

// Func is a node that writes arbitrary tokens.
type Func func(w xmlstream.TokenWriter) error

// WriteXML satisfies the xmlstream.WriterTo interface.
func (f Func) WriteXML(w xmlstream.TokenWriter) (int, error) {
	cw := &countWriter{w: w}
	err := f(cw)
	return cw.n, err
}

type countWriter struct {
	w xmlstream.TokenWriter
	n int
}

func (w *countWriter) EncodeToken(t xml.Token) error {
	err := w.w.EncodeToken(t)
	if err == nil {
		w.n++
	}
	return err
}

// Nodes is a sequence of nodes written one after the other.
// Nil entries are skipped.
type Nodes []xmlstream.WriterTo

// WriteXML satisfies the xmlstream.WriterTo interface.
func (nodes Nodes) WriteXML(w xmlstream.TokenWriter) (n int, err error) {
	for _, node := range nodes {
		if node == nil {
			continue
		}
		nn, err := node.WriteXML(w)
		n += nn
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Maybe returns node if cond is true and a node that writes nothing otherwise.
func Maybe(cond bool, node xmlstream.WriterTo) xmlstream.WriterTo {
	if !cond {
		return Nodes(nil)
	}
	return node
}

// Optional returns the node created by f from *v or, if v is nil, a node that
// writes nothing.
func Optional[T any](v *T, f func(T) xmlstream.WriterTo) xmlstream.WriterTo {
	if v == nil {
		return Nodes(nil)
	}
	return f(*v)
}

// OptionalText writes an element containing *v unless v is nil.
// A pointer to an empty string writes an empty element.
func OptionalText(local string, v *string) xmlstream.WriterTo {
	return Optional(v, func(s string) xmlstream.WriterTo {
		return Elem(local).Text(s)
	})
}

// OptionalInt writes an element containing *v unless v is nil.
func OptionalInt(local string, v *int) xmlstream.WriterTo {
	return Optional(v, func(i int) xmlstream.WriterTo {
		return Elem(local).Int(i)
	})
}

// OptionalTime writes an element containing *v unless v is nil.
func OptionalTime(local string, v *time.Time) xmlstream.WriterTo {
	return Optional(v, func(t time.Time) xmlstream.WriterTo {
		return Elem(local).Time(t)
	})
}

// OptionalRecord writes an element named local whose content is written by v
// unless v is nil.
func OptionalRecord[PT interface {
	comparable
	xmlstream.WriterTo
}](local string, v PT) xmlstream.WriterTo {
	var zero PT
	if v == zero {
		return Nodes(nil)
	}
	return Elem(local).Append(v)
}

// List writes a wrapper element named local containing the node created by
// item for each entry in items.
// A nil slice writes nothing while an empty, non-nil slice writes an empty
// wrapper element.
func List[T any](local string, items []T, item func(T) xmlstream.WriterTo) xmlstream.WriterTo {
	if items == nil {
		return Nodes(nil)
	}
	e := Elem(local)
	for _, v := range items {
		e.Append(item(v))
	}
	return e
}

// Value returns a node that writes v using encoding/xml.
// If v is an xml.TokenReader or xmlstream.Marshaler its tokens are copied
// instead.
func Value(v interface{}) xmlstream.WriterTo {
	return value{v: v}
}

type value struct {
	v interface{}
}

func (v value) WriteXML(w xmlstream.TokenWriter) (int, error) {
	return marshal.EncodeXML(w, v.v)
}

// Tokens returns a node that copies every token from r.
// An XML declaration at the start of r is dropped so that a decoded document
// can be embedded in another one.
// The node can only be written once.
func Tokens(r xml.TokenReader) xmlstream.WriterTo {
	return tokens{r: decl.Skip(r)}
}

type tokens struct {
	r xml.TokenReader
}

func (t tokens) WriteXML(w xmlstream.TokenWriter) (int, error) {
	return xmlstream.Copy(w, t.r)
}
