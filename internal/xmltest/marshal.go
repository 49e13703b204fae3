// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package xmltest

import (
	"bytes"
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/Ventmere/mws-go/decode"
	"github.com/Ventmere/mws-go/encode"
)

// DocumentTestCase is a test that writes a record as the only child content of
// a root element named Root with encode.Bytes and checks that the resulting
// document (including the XML declaration) matches XML.
// The document is then read back with decode.StartDocument and decode.Element
// into a new zero value of the type in Value and compared with
// reflect.DeepEqual.
// If NoMarshal or NoUnmarshal is set then the corresponding part of the test is
// not run.
//
// Value must be a pointer.
type DocumentTestCase struct {
	Root        string
	Value       Codec
	XML         string
	Err         error
	NoMarshal   bool
	NoUnmarshal bool
}

// RunDocumentTests iterates over the test cases and runs each one.
func RunDocumentTests(t *testing.T, testCases []DocumentTestCase) {
	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if !tc.NoMarshal {
				t.Run("marshal", func(t *testing.T) {
					out, err := encode.Bytes(encode.Elem(tc.Root).Append(tc.Value))
					if !errors.Is(err, tc.Err) {
						t.Fatalf("unexpected error: want=%v, got=%v", tc.Err, err)
					}
					if string(out) != tc.XML {
						t.Fatalf("unexpected output:\nwant=%q,\n got=%q", tc.XML, out)
					}
				})
			}
			if !tc.NoUnmarshal {
				t.Run("unmarshal", func(t *testing.T) {
					valType := reflect.TypeOf(tc.Value).Elem()
					newVal := reflect.New(valType).Interface().(Codec)
					c := decode.NewReader(bytes.NewReader([]byte(tc.XML)))
					err := decode.StartDocument(c)
					if err == nil {
						_, err = decode.Element(c, decode.Names{tc.Root}, func(c *decode.Cursor) (struct{}, error) {
							return struct{}{}, newVal.UnmarshalXMLStream(c)
						})
					}
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
