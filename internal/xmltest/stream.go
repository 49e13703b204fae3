// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package xmltest

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/Ventmere/mws-go/decode"
	"github.com/Ventmere/mws-go/encode"
	"mellium.im/xmlstream"
)

// Codec is a record that can write itself to and read itself from an XML
// stream.
type Codec interface {
	xmlstream.WriterTo
	decode.Unmarshaler
}

// StreamTestCase is like DocumentTestCase except that the value is written as
// a fragment with encode.Fragment and read back with its UnmarshalXMLStream
// method directly, without a root element or XML declaration.
//
// Value must be a pointer.
type StreamTestCase struct {
	Value       Codec
	XML         string
	Err         error
	NoMarshal   bool
	NoUnmarshal bool
}

// RunStreamTests iterates over the test cases and runs each one.
func RunStreamTests(t *testing.T, testCases []StreamTestCase) {
	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if !tc.NoMarshal {
				t.Run("marshal", func(t *testing.T) {
					var b strings.Builder
					err := encode.Fragment(&b, tc.Value)
					if !errors.Is(err, tc.Err) {
						t.Fatalf("unexpected error: want=%v, got=%v", tc.Err, err)
					}
					if out := b.String(); out != tc.XML {
						t.Fatalf("unexpected output:\nwant=%q,\n got=%q", tc.XML, out)
					}
				})
			}
			if !tc.NoUnmarshal {
				t.Run("unmarshal", func(t *testing.T) {
					valType := reflect.TypeOf(tc.Value).Elem()
					newVal := reflect.New(valType).Interface().(Codec)
					err := newVal.UnmarshalXMLStream(decode.NewReader(strings.NewReader(tc.XML)))
					if !errors.Is(err, tc.Err) {
						t.Fatalf("unexpected error: want=%v, got=%v", tc.Err, err)
					}
					if tc.Err != nil {
						return
					}
					if !reflect.DeepEqual(newVal, tc.Value) {
						t.Fatalf("unexpected value: want=%+v, got=%+v", tc.Value, newVal)
					}
				})
			}
		})
	}
}
