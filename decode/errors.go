// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package decode

import (
	"errors"
	"strconv"
	"strings"
)

// ErrorKind is the category of a decoding error.
type ErrorKind uint8

// A list of error kinds.
const (
	// UnexpectedElement is returned when a required start element does not match
	// any of the accepted names.
	UnexpectedElement ErrorKind = iota + 1

	// UnexpectedEvent is returned when the next event is of the wrong kind, for
	// example text where an element was required.
	UnexpectedEvent

	// UnexpectedEndOfDocument is returned when the source is exhausted while an
	// element is still open.
	UnexpectedEndOfDocument

	// ParseValue is returned when the text content of an element cannot be
	// converted to the requested type.
	ParseValue

	// Io is returned when the underlying token source fails, including when it
	// reports malformed XML.
	Io
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedElement:
		return "UnexpectedElement"
	case UnexpectedEvent:
		return "UnexpectedEvent"
	case UnexpectedEndOfDocument:
		return "UnexpectedEndOfDocument"
	case ParseValue:
		return "ParseValue"
	case Io:
		return "Io"
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// Sentinel errors that match any *Error of the corresponding kind when used
// with errors.Is.
var (
	ErrUnexpectedElement       = errors.New("decode: unexpected element")
	ErrUnexpectedEvent         = errors.New("decode: unexpected event")
	ErrUnexpectedEndOfDocument = errors.New("decode: unexpected end of document")
	ErrParseValue              = errors.New("decode: invalid value")
	ErrIo                      = errors.New("decode: read error")
)

// Error is the error type returned by every function in this package.
// The first error aborts the entire decode and no partially decoded value is
// returned alongside it.
type Error struct {
	Kind ErrorKind

	// Expected holds the accepted element names for UnexpectedElement and the
	// expected event kind for UnexpectedEvent.
	Expected []string

	// Found is the local name (UnexpectedElement) or a description of the event
	// (UnexpectedEvent) that was encountered instead.
	Found string

	// Raw and Type are the text that could not be converted and the name of the
	// target type for ParseValue errors.
	Raw  string
	Type string

	// Path is the local names of the open elements, outermost first, at the
	// time the error occurred.
	Path []string

	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("decode: ")
	switch e.Kind {
	case UnexpectedElement:
		b.WriteString("unexpected element <")
		b.WriteString(e.Found)
		b.WriteString(">, expected ")
		writeNames(&b, e.Expected)
	case UnexpectedEvent:
		b.WriteString("unexpected ")
		b.WriteString(e.Found)
		if len(e.Expected) > 0 {
			b.WriteString(", expected ")
			b.WriteString(strings.Join(e.Expected, " or "))
		}
	case UnexpectedEndOfDocument:
		b.WriteString("unexpected end of document")
	case ParseValue:
		b.WriteString("cannot parse ")
		b.WriteString(strconv.Quote(e.Raw))
		b.WriteString(" as ")
		b.WriteString(e.Type)
	case Io:
		b.WriteString("read error")
	default:
		b.WriteString(e.Kind.String())
	}
	if len(e.Path) > 0 {
		b.WriteString(" at /")
		b.WriteString(strings.Join(e.Path, "/"))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func writeNames(b *strings.Builder, names []string) {
	if len(names) == 1 {
		b.WriteString("<" + names[0] + ">")
		return
	}
	b.WriteString("one of ")
	for i, n := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("<" + n + ">")
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel error for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnexpectedElement:
		return e.Kind == UnexpectedElement
	case ErrUnexpectedEvent:
		return e.Kind == UnexpectedEvent
	case ErrUnexpectedEndOfDocument:
		return e.Kind == UnexpectedEndOfDocument
	case ErrParseValue:
		return e.Kind == ParseValue
	case ErrIo:
		return e.Kind == Io
	}
	return false
}
