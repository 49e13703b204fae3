// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package decode

import (
	"strings"

	"github.com/Ventmere/mws-go/xmlevent"
)

// Names is an ordered list of acceptable local names for an element.
// More than one name is used when a response may be delivered under different
// root elements, for example the first page and the "by next token" pages of a
// list operation.
type Names []string

// Match reports whether local is one of the names.
// Matching is exact and case-sensitive.
func (n Names) Match(local string) bool {
	for _, name := range n {
		if name == local {
			return true
		}
	}
	return false
}

func (n Names) String() string {
	return strings.Join(n, "|")
}

// StartDocument consumes the start of the document and any whitespace that
// precedes the root element, leaving the cursor before the root's start
// element.
func StartDocument(c *Cursor) error {
	for {
		ev, err := c.Peek()
		if err != nil {
			return err
		}
		switch {
		case ev.Kind == xmlevent.StartElement:
			return nil
		case ev.Kind == xmlevent.DocumentStart || ev.IsWhitespace():
			if _, err = c.Next(); err != nil {
				return err
			}
		default:
			return c.unexpected(ev, xmlevent.StartElement)
		}
	}
}

// Element consumes an element whose local name is one of names and calls body
// to decode its contents.
//
// When body is called the start element has been consumed, so c.LocalName and
// c.Attr describe the matched element.
// After body returns, any children it did not read and the end element are
// consumed, even if body returned an error, leaving the cursor after the
// element.
// The error from body takes precedence over any error encountered while doing
// so.
//
// Whitespace before the start element is skipped; any other text, or an end
// element, results in an UnexpectedEvent error and a start element with the
// wrong name in an UnexpectedElement error.
func Element[T any](c *Cursor, names Names, body func(*Cursor) (T, error)) (T, error) {
	var zero T
	if err := c.startElement(names); err != nil {
		return zero, err
	}
	depth := len(c.open)
	v, err := body(c)
	if err = c.leave(depth, err); err != nil {
		return zero, err
	}
	return v, nil
}

func (c *Cursor) startElement(names Names) error {
	for {
		ev, err := c.Peek()
		if err != nil {
			return err
		}
		switch {
		case ev.Kind == xmlevent.DocumentStart || ev.IsWhitespace():
			if _, err = c.Next(); err != nil {
				return err
			}
			continue
		case ev.Kind != xmlevent.StartElement:
			return c.unexpected(ev, xmlevent.StartElement)
		}
		if !names.Match(ev.Name.Local) {
			return &Error{
				Kind:     UnexpectedElement,
				Expected: names,
				Found:    ev.Name.Local,
				Path:     c.Path(),
			}
		}
		_, err = c.Next()
		return err
	}
}

// FoldElements calls step once for every child element of the current element
// and returns the final value of acc.
//
// When step is called the child's start element has been consumed, so
// c.LocalName identifies the child.
// Whatever step leaves unread of the child, including the whole child when
// step does not recognize it, is consumed before moving on to the next child.
// Text between children is ignored.
// Iteration stops before the end element of the current element, which is left
// for the caller (normally Element or an enclosing FoldElements) to consume.
//
// At the top level of a document FoldElements visits every root element and
// stops at the end of the document, which allows decoding fragments that have
// more than one root.
//
// The first error returned by step is returned immediately and no further
// children are visited.
func FoldElements[A any](c *Cursor, acc A, step func(c *Cursor, acc *A) error) (A, error) {
	depth := len(c.open)
	for {
		ev, err := c.Peek()
		if err != nil {
			return acc, err
		}
		switch ev.Kind {
		case xmlevent.EndElement:
			return acc, nil
		case xmlevent.DocumentEnd:
			if depth > 0 {
				return acc, c.errorf(UnexpectedEndOfDocument, nil)
			}
			return acc, nil
		case xmlevent.StartElement:
			if _, err = c.Next(); err != nil {
				return acc, err
			}
			reads := c.reads
			err = step(c, &acc)
			if err == nil && c.reads == reads {
				c.log.Printf("decode: skipping unrecognized element /%s", strings.Join(c.Path(), "/"))
			}
			if err = c.leave(depth+1, err); err != nil {
				return acc, err
			}
		default:
			if _, err = c.Next(); err != nil {
				return acc, err
			}
		}
	}
}
