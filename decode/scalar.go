// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package decode

import (
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Ventmere/mws-go/xmlevent"
	"github.com/Ventmere/mws-go/xtime"
)

// Characters returns the text content of the current element.
//
// Character data is read up to, but not including, the element's end element.
// An empty element results in an empty string.
// A child element results in an UnexpectedEvent error.
func Characters(c *Cursor) (string, error) {
	var s string
	var b *strings.Builder
	for {
		ev, err := c.Peek()
		if err != nil {
			return "", err
		}
		switch ev.Kind {
		case xmlevent.Text:
			if _, err = c.Next(); err != nil {
				return "", err
			}
			switch {
			case b != nil:
				b.WriteString(ev.Text)
			case s == "":
				s = ev.Text
			default:
				b = &strings.Builder{}
				b.WriteString(s)
				b.WriteString(ev.Text)
			}
		case xmlevent.EndElement:
			if b != nil {
				return b.String(), nil
			}
			return s, nil
		case xmlevent.DocumentEnd:
			if len(c.open) == 0 {
				return s, nil
			}
			return "", c.errorf(UnexpectedEndOfDocument, nil)
		default:
			return "", c.unexpected(ev, xmlevent.Text, xmlevent.EndElement)
		}
	}
}

// Parse reads the text content of the current element and converts it using
// parse.
// If parse fails the result is a ParseValue error naming typ.
func Parse[T any](c *Cursor, typ string, parse func(string) (T, error)) (T, error) {
	var zero T
	s, err := Characters(c)
	if err != nil {
		return zero, err
	}
	v, err := parse(s)
	if err != nil {
		return zero, &Error{
			Kind: ParseValue,
			Raw:  s,
			Type: typ,
			Path: c.Path(),
			Err:  err,
		}
	}
	return v, nil
}

// Int decodes the text content of the current element as a base 10 int.
// Surrounding whitespace is ignored.
func Int(c *Cursor) (int, error) {
	return Parse(c, "int", func(s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	})
}

// Int32 decodes the text content of the current element as a base 10 int32.
func Int32(c *Cursor) (int32, error) {
	return Parse(c, "int32", func(s string) (int32, error) {
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
		return int32(i), err
	})
}

// Int64 decodes the text content of the current element as a base 10 int64.
func Int64(c *Cursor) (int64, error) {
	return Parse(c, "int64", func(s string) (int64, error) {
		return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	})
}

// Uint64 decodes the text content of the current element as a base 10 uint64.
func Uint64(c *Cursor) (uint64, error) {
	return Parse(c, "uint64", func(s string) (uint64, error) {
		return strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	})
}

// Float64 decodes the text content of the current element as a float64.
func Float64(c *Cursor) (float64, error) {
	return Parse(c, "float64", func(s string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	})
}

var errBool = errors.New(`expected "true" or "false"`)

// Bool decodes the text content of the current element as a boolean.
// Only the literals "true" and "false" are accepted.
func Bool(c *Cursor) (bool, error) {
	return Parse(c, "bool", func(s string) (bool, error) {
		switch strings.TrimSpace(s) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return false, errBool
	})
}

// Time decodes the text content of the current element as an RFC 3339 date and
// time with a UTC offset, for example "2016-11-03T00:09:40Z".
// The result is always in UTC.
func Time(c *Cursor) (time.Time, error) {
	return Parse(c, "time.Time", func(s string) (time.Time, error) {
		return xtime.Parse(strings.TrimSpace(s))
	})
}

// Text decodes the text content of the current element into a value of type T
// using its UnmarshalText method.
// It is normally used for string enumerations:
//
//	status, err := decode.Text[fulfillment.PackageStatus](c)
func Text[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](c *Cursor) (T, error) {
	var v T
	return Parse(c, fmt.Sprintf("%T", v), func(s string) (T, error) {
		err := PT(&v).UnmarshalText([]byte(s))
		return v, err
	})
}
