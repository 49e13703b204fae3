// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package xmlevent defines the events that flow between an XML token stream
// and the decode and encode packages.
//
// An event is a thin, copyable view of an encoding/xml token: the cursor in
// package decode produces them in document order and the writer in package
// encode consumes them.
// Comments, directives and processing instructions have no event
// representation and are dropped on conversion.
package xmlevent // import "github.com/Ventmere/mws-go/xmlevent"

import (
	"encoding/xml"
	"strconv"
	"unicode/utf8"
)

// Kind is the type of an event.
type Kind uint8

// A list of event kinds.
const (
	// DocumentStart is always the first event of a document.
	DocumentStart Kind = iota

	// StartElement opens an element and carries its name and attributes.
	StartElement

	// EndElement closes the innermost open element.
	EndElement

	// Text is character data (including whitespace between elements).
	Text

	// DocumentEnd is reported once the underlying source is exhausted and on
	// every read after that.
	DocumentEnd
)

func (k Kind) String() string {
	switch k {
	case DocumentStart:
		return "DocumentStart"
	case StartElement:
		return "StartElement"
	case EndElement:
		return "EndElement"
	case Text:
		return "Text"
	case DocumentEnd:
		return "DocumentEnd"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Event is a single XML parse event.
//
// Name is only set for StartElement and EndElement events, Attr only for
// StartElement events, and Text only for Text events.
type Event struct {
	Kind Kind
	Name xml.Name
	Attr []xml.Attr
	Text string
}

// Start returns a StartElement event with the given local name and attributes.
func Start(local string, attr ...xml.Attr) Event {
	return Event{Kind: StartElement, Name: xml.Name{Local: local}, Attr: attr}
}

// End returns an EndElement event for the given local name.
// An empty name closes whatever element is currently open when the event is
// written.
func End(local string) Event {
	return Event{Kind: EndElement, Name: xml.Name{Local: local}}
}

// CharData returns a Text event.
func CharData(s string) Event {
	return Event{Kind: Text, Text: s}
}

// FromToken converts an encoding/xml token into an event.
// The returned event does not share memory with t so it remains valid after
// the next call to the decoder that produced t.
// If t has no event representation ok is false.
func FromToken(t xml.Token) (ev Event, ok bool) {
	switch tok := t.(type) {
	case xml.StartElement:
		ev = Event{Kind: StartElement, Name: tok.Name}
		if len(tok.Attr) > 0 {
			ev.Attr = make([]xml.Attr, len(tok.Attr))
			copy(ev.Attr, tok.Attr)
		}
		return ev, true
	case xml.EndElement:
		return Event{Kind: EndElement, Name: tok.Name}, true
	case xml.CharData:
		return Event{Kind: Text, Text: string(tok)}, true
	}
	return ev, false
}

// Token returns the encoding/xml token for the event.
// DocumentStart and DocumentEnd have no token representation and return nil.
func (e Event) Token() xml.Token {
	switch e.Kind {
	case StartElement:
		return xml.StartElement{Name: e.Name, Attr: e.Attr}
	case EndElement:
		return xml.EndElement{Name: e.Name}
	case Text:
		return xml.CharData(e.Text)
	}
	return nil
}

// IsWhitespace reports whether e is a Text event made up only of XML
// whitespace.
func (e Event) IsWhitespace() bool {
	if e.Kind != Text {
		return false
	}
	for i := 0; i < len(e.Text); i++ {
		switch e.Text[i] {
		case ' ', '\t', '\r', '\n':
		default:
			return false
		}
	}
	return true
}

// String returns a short description of the event suitable for error
// messages.
func (e Event) String() string {
	switch e.Kind {
	case StartElement:
		return "<" + e.Name.Local + ">"
	case EndElement:
		return "</" + e.Name.Local + ">"
	case Text:
		const maxText = 32
		if len(e.Text) > maxText {
			// Cut on a rune boundary.
			i := maxText
			for i > 0 && !utf8.RuneStart(e.Text[i]) {
				i--
			}
			return strconv.Quote(e.Text[:i] + "…")
		}
		return strconv.Quote(e.Text)
	}
	return e.Kind.String()
}
