// Copyright 2020 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package xtime implements the date and time format used in MWS documents.
//
// Timestamps are RFC 3339 date-times with a UTC offset, for example
// "2016-11-03T00:09:40Z" or "2016-11-02T17:09:40-07:00".
// Values are always normalized to UTC when parsed and formatted in UTC.
package xtime // import "github.com/Ventmere/mws-go/xtime"

import (
	"encoding/xml"
	"time"

	"mellium.im/xmlstream"
)

// Layout is the layout used when formatting times.
// Fractional seconds are accepted when parsing.
const Layout = time.RFC3339

// Parse parses an RFC 3339 date-time and returns it in UTC.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// Format formats t in UTC, for example "2016-11-03T00:09:40Z".
// The same format is used for query parameters sent to MWS.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// Time is like a time.Time but it marshals as character data using the
// format of this package.
type Time time.Time

// MarshalText implements encoding.TextMarshaler.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(Format(time.Time(t))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Time) UnmarshalText(text []byte) error {
	tt, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = Time(tt)
	return nil
}

// String returns the formatted time.
func (t Time) String() string {
	return Format(time.Time(t))
}

// WriteXML satisfies the xmlstream.WriterTo interface.
// It is like MarshalXML except it writes tokens to w.
func (t Time) WriteXML(w xmlstream.TokenWriter) (n int, err error) {
	return xmlstream.Copy(w, t.TokenReader())
}

// TokenReader satisfies the xmlstream.Marshaler interface.
// The stream contains only the character data, it is meant to be wrapped in an
// element.
func (t Time) TokenReader() xml.TokenReader {
	return xmlstream.Token(xml.CharData(t.String()))
}

// MarshalXML implements xml.Marshaler.
func (t Time) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	_, err := xmlstream.Copy(e, xmlstream.Wrap(t.TokenReader(), start))
	return err
}

// UnmarshalXML implements xml.Unmarshaler.
func (t *Time) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	err := d.DecodeElement(&s, &start)
	if err != nil {
		return err
	}
	return t.UnmarshalText([]byte(s))
}
