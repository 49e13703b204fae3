// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package decode maps a stream of XML events onto typed records.
//
// Decoding is built from a few combinators that operate on a Cursor:
// StartDocument skips to the root element, Element matches one element by name
// and runs a function over its contents, FoldElements visits every child of the
// current element, and Characters (and the typed helpers built on it such as
// Int, Bool and Time) reads an element's text.
//
// Records implement Unmarshaler by folding over their children and dispatching
// on each child's local name:
//
//	func (a *Address) UnmarshalXMLStream(c *decode.Cursor) error {
//		_, err := decode.FoldElements(c, a, func(c *decode.Cursor, a **Address) error {
//			var err error
//			switch c.LocalName() {
//			case "City":
//				(*a).City, err = decode.Characters(c)
//			case "Line2":
//				(*a).Line2, err = decode.Some(decode.Characters(c))
//			}
//			return err
//		})
//		return err
//	}
//
// The order of the children does not matter, children that are not recognized
// are skipped, and fields whose element is missing keep their zero value.
// Optional fields are pointers: a nil pointer means the element was absent
// while a pointer to a zero value means it was present but empty.
// Lists are wrapper elements whose children are decoded by List or ListOf.
//
// Decoding is all or nothing: the first error unwinds every combinator and no
// partially populated record is returned.
// All errors are of type *Error and can be matched against the sentinel
// errors in this package with errors.Is.
package decode // import "github.com/Ventmere/mws-go/decode"
