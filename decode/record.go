// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package decode

import (
	"bytes"
	"encoding/xml"

	"github.com/Ventmere/mws-go/xmlevent"
	"mellium.im/xmlstream"
)

// Unmarshaler is the interface implemented by records that can decode
// themselves from a Cursor.
//
// UnmarshalXMLStream is called after the record's own start element has been
// consumed and should populate the receiver from the element's children,
// normally with FoldElements or a Table.
// It must not consume the record's end element.
type Unmarshaler interface {
	UnmarshalXMLStream(c *Cursor) error
}

// Record decodes the current element into a new value of type T.
// Fields that have no matching child element keep their zero value.
func Record[T any, PT interface {
	*T
	Unmarshaler
}](c *Cursor) (T, error) {
	var v T
	if err := PT(&v).UnmarshalXMLStream(c); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Table maps the local names of a record's child elements to functions that
// decode the child and assign it to the record.
//
// A Table is normally declared once per record type as a package level
// variable and used from the record's UnmarshalXMLStream method.
type Table[T any] map[string]func(c *Cursor, v *T) error

// Fold populates v from the children of the current element.
// Children with no entry in the table are skipped.
func (t Table[T]) Fold(c *Cursor, v *T) error {
	_, err := FoldElements(c, v, func(c *Cursor, v **T) error {
		if f, ok := t[c.LocalName()]; ok {
			return f(c, *v)
		}
		return nil
	})
	return err
}

// Some converts the result of a decoding function into an optional value.
// It is used for fields where an empty element and a missing element must be
// distinguishable:
//
//	r.GiftMessage, err = decode.Some(decode.Characters(c))
func Some[T any](v T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// List decodes every child of the current (wrapper) element with item and
// returns the results in document order.
// A wrapper with no children results in an empty, non-nil slice.
func List[T any](c *Cursor, item func(*Cursor) (T, error)) ([]T, error) {
	return FoldElements(c, []T{}, func(c *Cursor, l *[]T) error {
		v, err := item(c)
		if err != nil {
			return err
		}
		*l = append(*l, v)
		return nil
	})
}

// ListOf is like List except that only children with the local name name are
// decoded, any other children are skipped.
func ListOf[T any](c *Cursor, name string, item func(*Cursor) (T, error)) ([]T, error) {
	return FoldElements(c, []T{}, func(c *Cursor, l *[]T) error {
		if c.LocalName() != name {
			return nil
		}
		v, err := item(c)
		if err != nil {
			return err
		}
		*l = append(*l, v)
		return nil
	})
}

// Decode decodes a whole document whose root element has one of the provided
// names into a new value of type T.
func Decode[T any, PT interface {
	*T
	Unmarshaler
}](c *Cursor, names Names) (T, error) {
	var zero T
	if err := StartDocument(c); err != nil {
		return zero, err
	}
	return Element(c, names, Record[T, PT])
}

// Unmarshal is a convenience function that decodes the document in data.
func Unmarshal[T any, PT interface {
	*T
	Unmarshaler
}](data []byte, names Names, opts ...Option) (T, error) {
	return Decode[T, PT](NewReader(bytes.NewReader(data), opts...), names)
}

// DecodeElement decodes the remainder of the current element into v using
// encoding/xml.
// It can be used for parts of a document that do not warrant a hand written
// decoder.
// The element's end element is consumed.
func DecodeElement(c *Cursor, v interface{}) error {
	start := c.Start()
	if start == nil {
		ev, err := c.Peek()
		if err != nil {
			return err
		}
		return c.unexpected(ev, xmlevent.StartElement)
	}
	r := xmlstream.MultiReader(
		xmlstream.Token(*start),
		xmlstream.Inner(c),
		xmlstream.Token(start.End()),
	)
	if err := xml.NewTokenDecoder(r).Decode(v); err != nil {
		if _, ok := err.(*Error); ok {
			return err
		}
		return c.errorf(Io, err)
	}
	return nil
}
