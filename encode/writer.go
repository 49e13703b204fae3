// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package encode

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/Ventmere/mws-go/internal/decl"
	"github.com/Ventmere/mws-go/xmlevent"
)

const (
	nsXML   = "http://www.w3.org/XML/1998/namespace"
	nsXMLNS = "xmlns"
)

// Errors returned by the Writer.
// They indicate a bug in the code producing the tokens, not a problem with the
// data being encoded.
var (
	ErrUnboundNamespace = errors.New("encode: no prefix is bound to the attribute namespace")
	ErrMismatchedEnd    = errors.New("encode: end element does not match the open element")
	ErrTextOutsideRoot  = errors.New("encode: character data outside of the root element")
	ErrUnclosed         = errors.New("encode: document ended with open elements")
	ErrMultipleRoots    = errors.New("encode: element after the root element was closed")
)

type scope struct {
	// name is the qualified name written for the element.
	name  string
	local string
	// def is the default namespace inside the element.
	def string
	// prefixes maps namespace URIs to the prefixes declared on the element.
	prefixes map[string]string
}

// Writer is an xmlstream.TokenWriter that serializes tokens as XML text.
//
// Unlike an xml.Encoder, a Writer keeps track of the namespace prefixes that
// are in scope: namespace declarations given as attributes in the form
// produced by an xml.Decoder (Name{Space: "xmlns", Local: prefix}) bind a
// prefix, and element or attribute names whose Space is a bound namespace are
// written with that prefix.
// An element in a namespace that has no prefix declares it as the default
// namespace and an element with no namespace inside of a default namespace
// resets it with xmlns="".
// An attribute in a namespace that has no prefix results in
// ErrUnboundNamespace.
//
// The XML declaration is written before the first token unless the
// NoDeclaration option is given.
// A Writer produces a single document: once the root element is closed any
// further element results in ErrMultipleRoots.
// Writers created by Fragment accept any number of top level elements.
type Writer struct {
	out    io.Writer
	e      *xml.Encoder
	log    *log.Logger
	opts   options
	scopes []scope
	start  bool
	closed bool
	err    error
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	o := getOpts(opts...)
	e := xml.NewEncoder(w)
	if o.prefix != "" || o.indent != "" {
		e.Indent(o.prefix, o.indent)
	}
	return &Writer{
		out:  w,
		e:    e,
		log:  o.log,
		opts: o,
	}
}

func (w *Writer) header() error {
	if w.start {
		return nil
	}
	w.start = true
	if w.opts.noDecl {
		return nil
	}
	return decl.Write(w.out, w.opts.prefix != "" || w.opts.indent != "")
}

// EncodeToken writes the given XML token to the stream.
//
// An xml.EndElement with an empty name closes the innermost open element.
// XML declarations are dropped since the writer emits its own, and whitespace
// outside of the root element is ignored.
func (w *Writer) EncodeToken(t xml.Token) error {
	if w.err != nil {
		return w.err
	}
	if err := w.header(); err != nil {
		w.err = err
		return err
	}
	var err error
	switch tok := t.(type) {
	case xml.StartElement:
		err = w.startElement(tok)
	case xml.EndElement:
		err = w.endElement(tok)
	case xml.CharData:
		if len(w.scopes) == 0 && !w.opts.fragment {
			if len(strings.TrimLeft(string(tok), " \t\r\n")) > 0 {
				return ErrTextOutsideRoot
			}
			return nil
		}
		err = w.e.EncodeToken(tok)
	case xml.ProcInst:
		if tok.Target == "xml" {
			return nil
		}
		err = w.e.EncodeToken(tok)
	default:
		err = w.e.EncodeToken(t)
	}
	return err
}

// Write writes an event to the stream.
//
// DocumentStart writes the XML declaration if it has not been written yet and
// DocumentEnd checks that every element was closed and flushes the writer.
func (w *Writer) Write(ev xmlevent.Event) error {
	switch ev.Kind {
	case xmlevent.DocumentStart:
		if w.err != nil {
			return w.err
		}
		if err := w.header(); err != nil {
			w.err = err
			return err
		}
		return nil
	case xmlevent.DocumentEnd:
		if len(w.scopes) > 0 {
			return fmt.Errorf("%w: <%s>", ErrUnclosed, w.scopes[len(w.scopes)-1].name)
		}
		return w.Flush()
	}
	return w.EncodeToken(ev.Token())
}

// Flush flushes any buffered XML to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.e.Flush()
}

func (w *Writer) startElement(start xml.StartElement) error {
	if w.closed && len(w.scopes) == 0 && !w.opts.fragment {
		return fmt.Errorf("%w: <%s>", ErrMultipleRoots, start.Name.Local)
	}
	sc := scope{local: start.Name.Local}
	if n := len(w.scopes); n > 0 {
		sc.def = w.scopes[n-1].def
	}
	var ownDef bool

	attrs := make([]xml.Attr, 0, len(start.Attr)+1)
	for _, attr := range start.Attr {
		switch {
		case attr.Name.Space == nsXMLNS:
			if sc.prefixes == nil {
				sc.prefixes = make(map[string]string)
			}
			sc.prefixes[attr.Value] = attr.Name.Local
			w.log.Printf("encode: binding prefix %q to %q in <%s>", attr.Name.Local, attr.Value, start.Name.Local)
			attrs = append(attrs, xml.Attr{Name: xml.Name{Local: nsXMLNS + ":" + attr.Name.Local}, Value: attr.Value})
		case attr.Name.Space == "" && attr.Name.Local == nsXMLNS:
			sc.def = attr.Value
			ownDef = true
			attrs = append(attrs, attr)
		}
	}
	w.scopes = append(w.scopes, sc)
	top := &w.scopes[len(w.scopes)-1]

	switch space := start.Name.Space; {
	case space == "" && top.def != "" && !ownDef:
		w.log.Printf("encode: resetting default namespace on <%s>", start.Name.Local)
		top.def = ""
		top.name = start.Name.Local
		attrs = append([]xml.Attr{{Name: xml.Name{Local: nsXMLNS}, Value: ""}}, attrs...)
	case space == "" || space == top.def:
		top.name = start.Name.Local
	case w.isPrefix(space):
		top.name = space + ":" + start.Name.Local
	default:
		if p, ok := w.lookup(space); ok {
			top.name = p + ":" + start.Name.Local
			break
		}
		w.log.Printf("encode: declaring default namespace %q on <%s>", space, start.Name.Local)
		top.def = space
		top.name = start.Name.Local
		attrs = append([]xml.Attr{{Name: xml.Name{Local: nsXMLNS}, Value: space}}, attrs...)
	}

	for _, attr := range start.Attr {
		if attr.Name.Space == nsXMLNS || (attr.Name.Space == "" && attr.Name.Local == nsXMLNS) {
			continue
		}
		name, err := w.attrName(attr.Name)
		if err != nil {
			w.scopes = w.scopes[:len(w.scopes)-1]
			return err
		}
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: name}, Value: attr.Value})
	}

	return w.e.EncodeToken(xml.StartElement{
		Name: xml.Name{Local: top.name},
		Attr: attrs,
	})
}

func (w *Writer) attrName(name xml.Name) (string, error) {
	switch space := name.Space; {
	case space == "":
		return name.Local, nil
	case space == nsXML || space == "xml":
		return "xml:" + name.Local, nil
	case w.isPrefix(space):
		return space + ":" + name.Local, nil
	default:
		if p, ok := w.lookup(space); ok {
			return p + ":" + name.Local, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnboundNamespace, name.Space)
}

// lookup returns the prefix bound to the namespace uri in the current scope.
func (w *Writer) lookup(uri string) (string, bool) {
	for i := len(w.scopes) - 1; i >= 0; i-- {
		p, ok := w.scopes[i].prefixes[uri]
		if !ok {
			continue
		}
		// The prefix may have been rebound to another namespace by a descendant.
		for _, inner := range w.scopes[i+1:] {
			for u, q := range inner.prefixes {
				if q == p && u != uri {
					return "", false
				}
			}
		}
		return p, true
	}
	return "", false
}

// isPrefix reports whether s is itself a prefix that is in scope.
// This lets names that use prefixes instead of namespace URIs in the Space
// field, such as those returned by xml.Decoder.RawToken, be written unchanged.
func (w *Writer) isPrefix(s string) bool {
	for i := len(w.scopes) - 1; i >= 0; i-- {
		for _, p := range w.scopes[i].prefixes {
			if p == s {
				return true
			}
		}
	}
	return false
}

func (w *Writer) endElement(end xml.EndElement) error {
	if len(w.scopes) == 0 {
		return fmt.Errorf("%w: </%s> with no open element", ErrMismatchedEnd, end.Name.Local)
	}
	top := w.scopes[len(w.scopes)-1]
	if end.Name.Local != "" && end.Name.Local != top.local && end.Name.Local != top.name {
		return fmt.Errorf("%w: </%s> closing <%s>", ErrMismatchedEnd, end.Name.Local, top.name)
	}
	w.scopes = w.scopes[:len(w.scopes)-1]
	w.closed = len(w.scopes) == 0
	return w.e.EncodeToken(xml.EndElement{Name: xml.Name{Local: top.name}})
}
