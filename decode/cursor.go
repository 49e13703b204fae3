// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package decode

import (
	"encoding/xml"
	"errors"
	"io"
	"log"
	"strings"

	"github.com/Ventmere/mws-go/xmlevent"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Cursor is a forward-only, pull based view over an XML token stream.
//
// The first event read from a cursor is always a DocumentStart and once the
// underlying stream is exhausted every read returns DocumentEnd.
// Comments, processing instructions and directives are dropped.
//
// A Cursor is not safe for concurrent use and is meant to be used for a single
// document.
type Cursor struct {
	r    xml.TokenReader
	log  *log.Logger
	open []xml.StartElement

	next    xmlevent.Event
	peeked  bool
	started bool
	done    bool

	// srcErr is an error returned by the source alongside a token. It is
	// reported on the read after the token.
	srcErr error
	err    error

	// reads counts calls to Peek and Next and lets FoldElements notice children
	// that the step function ignored.
	reads uint64
}

// NewCursor returns a cursor that reads tokens from r.
func NewCursor(r xml.TokenReader, opts ...Option) *Cursor {
	o := getOpts(opts...)
	return &Cursor{
		r:   r,
		log: o.log,
	}
}

// NewReader returns a cursor that tokenizes the XML document read from r.
//
// Byte order marks are stripped (UTF-16 input is transcoded to UTF-8) and
// documents that declare a character set other than UTF-8 are transcoded
// before being tokenized.
func NewReader(r io.Reader, opts ...Option) *Cursor {
	d := xml.NewDecoder(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	d.CharsetReader = charsetReader
	return NewCursor(d, opts...)
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(label) {
	case "utf-16", "utf-16le", "utf-16be", "utf16":
		// A UTF-16 document only decodes if it has a BOM, in which case the input
		// has already been transcoded to UTF-8.
		return input, nil
	}
	return charset.NewReaderLabel(label, input)
}

func (c *Cursor) fill() error {
	if c.peeked {
		return nil
	}
	if c.err != nil {
		return c.err
	}
	if !c.started {
		c.started = true
		c.next = xmlevent.Event{Kind: xmlevent.DocumentStart}
		c.peeked = true
		return nil
	}
	for !c.done {
		if c.srcErr != nil {
			err := c.srcErr
			c.srcErr = nil
			if err == io.EOF {
				c.done = true
				break
			}
			c.err = c.ioError(err)
			return c.err
		}
		tok, err := c.r.Token()
		if err != nil {
			c.srcErr = err
		}
		if tok == nil {
			continue
		}
		if ev, ok := xmlevent.FromToken(tok); ok {
			c.next = ev
			c.peeked = true
			return nil
		}
	}
	c.next = xmlevent.Event{Kind: xmlevent.DocumentEnd}
	c.peeked = true
	return nil
}

// Peek returns the next event without consuming it.
func (c *Cursor) Peek() (xmlevent.Event, error) {
	c.reads++
	if err := c.fill(); err != nil {
		return xmlevent.Event{}, err
	}
	return c.next, nil
}

// PeekKind returns the kind of the next event without consuming it.
func (c *Cursor) PeekKind() (xmlevent.Kind, error) {
	ev, err := c.Peek()
	return ev.Kind, err
}

// Next consumes and returns the next event.
//
// Reaching the end of the document while an element is still open results in
// an UnexpectedEndOfDocument error.
func (c *Cursor) Next() (xmlevent.Event, error) {
	c.reads++
	if err := c.fill(); err != nil {
		return xmlevent.Event{}, err
	}
	ev := c.next
	switch ev.Kind {
	case xmlevent.DocumentEnd:
		if len(c.open) > 0 {
			return ev, c.errorf(UnexpectedEndOfDocument, nil)
		}
		// DocumentEnd stays peeked so that it is returned on every later read.
		return ev, nil
	case xmlevent.StartElement:
		c.open = append(c.open, xml.StartElement{Name: ev.Name, Attr: ev.Attr})
	case xmlevent.EndElement:
		if len(c.open) == 0 {
			c.peeked = false
			c.err = &Error{
				Kind:     UnexpectedEvent,
				Expected: []string{xmlevent.StartElement.String()},
				Found:    ev.Kind.String() + " " + ev.String(),
			}
			return ev, c.err
		}
		c.open = c.open[:len(c.open)-1]
	}
	c.peeked = false
	return ev, nil
}

// Token satisfies the xml.TokenReader interface for Cursor.
// It lets the remainder of the document (or, combined with xmlstream.Inner,
// the remainder of the current element) be handed to code that works with
// encoding/xml tokens.
// Tokens read this way are consumed from the cursor.
func (c *Cursor) Token() (xml.Token, error) {
	for {
		ev, err := c.Next()
		if err != nil {
			return nil, err
		}
		switch ev.Kind {
		case xmlevent.DocumentStart:
			continue
		case xmlevent.DocumentEnd:
			return nil, io.EOF
		}
		return ev.Token(), nil
	}
}

// SkipSubtree consumes the remaining events of the current element including
// its end element.
// Nested elements, including ones with the same name as the current element,
// are skipped as a unit.
// At the top level of the document SkipSubtree does nothing.
func (c *Cursor) SkipSubtree() error {
	return c.closeTo(len(c.open))
}

// closeTo consumes events until the element opened at depth (counting the
// root as 1) has been closed.
func (c *Cursor) closeTo(depth int) error {
	if depth <= 0 {
		return nil
	}
	if len(c.open) < depth-1 {
		return &Error{
			Kind:  UnexpectedEvent,
			Found: "end of an enclosing element",
			Path:  c.Path(),
		}
	}
	for len(c.open) >= depth {
		if _, err := c.Next(); err != nil {
			return err
		}
	}
	return nil
}

// leave finishes the element opened at depth after its body ran.
// The body's error, if any, is returned in preference to errors encountered
// while skipping the rest of the element.
func (c *Cursor) leave(depth int, bodyErr error) error {
	err := c.closeTo(depth)
	if bodyErr != nil {
		return bodyErr
	}
	return err
}

// Depth returns the number of currently open elements.
func (c *Cursor) Depth() int {
	return len(c.open)
}

// Start returns the start element of the innermost open element or nil at the
// top level of the document.
func (c *Cursor) Start() *xml.StartElement {
	if len(c.open) == 0 {
		return nil
	}
	start := c.open[len(c.open)-1]
	return &start
}

// Name returns the name of the innermost open element.
func (c *Cursor) Name() xml.Name {
	if len(c.open) == 0 {
		return xml.Name{}
	}
	return c.open[len(c.open)-1].Name
}

// LocalName returns the local name of the innermost open element.
// Inside a FoldElements step function this is the child being visited.
func (c *Cursor) LocalName() string {
	return c.Name().Local
}

// Attr returns the value of the first attribute of the innermost open element
// with the provided local name or an empty string if no such attribute exists.
func (c *Cursor) Attr(local string) string {
	if len(c.open) == 0 {
		return ""
	}
	for _, a := range c.open[len(c.open)-1].Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// Path returns the local names of all open elements, outermost first.
func (c *Cursor) Path() []string {
	if len(c.open) == 0 {
		return nil
	}
	path := make([]string, len(c.open))
	for i, start := range c.open {
		path[i] = start.Name.Local
	}
	return path
}

func (c *Cursor) errorf(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Path: c.Path(), Err: err}
}

func (c *Cursor) unexpected(ev xmlevent.Event, expected ...xmlevent.Kind) error {
	if ev.Kind == xmlevent.DocumentEnd && len(c.open) > 0 {
		return c.errorf(UnexpectedEndOfDocument, nil)
	}
	e := &Error{
		Kind:  UnexpectedEvent,
		Found: ev.Kind.String(),
		Path:  c.Path(),
	}
	switch ev.Kind {
	case xmlevent.StartElement, xmlevent.EndElement, xmlevent.Text:
		e.Found += " " + ev.String()
	}
	for _, k := range expected {
		e.Expected = append(e.Expected, k.String())
	}
	return e
}

func (c *Cursor) ioError(err error) error {
	var syntaxErr *xml.SyntaxError
	if errors.Is(err, io.ErrUnexpectedEOF) || (errors.As(err, &syntaxErr) && syntaxErr.Msg == "unexpected EOF") {
		return c.errorf(UnexpectedEndOfDocument, err)
	}
	return c.errorf(Io, err)
}
