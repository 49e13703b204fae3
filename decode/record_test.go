// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package decode_test

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Ventmere/mws-go/decode"
	"github.com/Ventmere/mws-go/encode"
	"github.com/Ventmere/mws-go/internal/xmltest"
	"mellium.im/xmlstream"
)

type sample struct {
	A    string
	B    int
	Date *time.Time
}

func (s *sample) UnmarshalXMLStream(c *decode.Cursor) error {
	_, err := decode.FoldElements(c, s, func(c *decode.Cursor, s **sample) error {
		var err error
		switch c.LocalName() {
		case "a":
			(*s).A, err = decode.Characters(c)
		case "b":
			(*s).B, err = decode.Int(c)
		case "date":
			(*s).Date, err = decode.Some(decode.Time(c))
		}
		return err
	})
	return err
}

func (s *sample) WriteXML(w xmlstream.TokenWriter) (int, error) {
	return encode.Nodes{
		encode.Elem("a").Text(s.A),
		encode.Elem("b").Int(s.B),
		encode.OptionalTime("date", s.Date),
	}.WriteXML(w)
}

type address struct {
	Name  string
	Line2 *string
}

func (a *address) UnmarshalXMLStream(c *decode.Cursor) error {
	return addressTable.Fold(c, a)
}

func (a *address) WriteXML(w xmlstream.TokenWriter) (int, error) {
	return encode.Nodes{
		encode.Elem("Name").Text(a.Name),
		encode.OptionalText("Line2", a.Line2),
	}.WriteXML(w)
}

var addressTable = decode.Table[address]{
	"Name": func(c *decode.Cursor, a *address) (err error) {
		a.Name, err = decode.Characters(c)
		return err
	},
	"Line2": func(c *decode.Cursor, a *address) (err error) {
		a.Line2, err = decode.Some(decode.Characters(c))
		return err
	},
}

type order struct {
	ID      string
	Items   []int
	Members []string
	Address *address
}

func (o *order) UnmarshalXMLStream(c *decode.Cursor) error {
	return orderTable.Fold(c, o)
}

func (o *order) WriteXML(w xmlstream.TokenWriter) (int, error) {
	return encode.Nodes{
		encode.Elem("ID").Text(o.ID),
		encode.List("items", o.Items, func(i int) xmlstream.WriterTo {
			return encode.Elem("value").Int(i)
		}),
		encode.List("Members", o.Members, func(s string) xmlstream.WriterTo {
			return encode.Elem("member").Text(s)
		}),
		encode.OptionalRecord("Address", o.Address),
	}.WriteXML(w)
}

var orderTable = decode.Table[order]{
	"ID": func(c *decode.Cursor, o *order) (err error) {
		o.ID, err = decode.Characters(c)
		return err
	},
	"items": func(c *decode.Cursor, o *order) (err error) {
		o.Items, err = decode.List(c, decode.Int)
		return err
	},
	"Members": func(c *decode.Cursor, o *order) (err error) {
		o.Members, err = decode.ListOf(c, "member", decode.Characters)
		return err
	},
	"Address": func(c *decode.Cursor, o *order) (err error) {
		o.Address, err = decode.Some(decode.Record[address](c))
		return err
	},
}

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

var recordTestCases = []xmltest.StreamTestCase{
	0: {
		Value: &sample{A: "AAA", B: 777, Date: timePtr(time.Date(2016, 11, 3, 0, 9, 40, 0, time.UTC))},
		XML:   `<a>AAA</a><b>777</b><date>2016-11-03T00:09:40Z</date>`,
	},
	1: {
		Value: &sample{A: "", B: 1},
		XML:   `<a></a><b>1</b>`,
	},
	2: {
		// Order does not matter and unknown elements are skipped.
		NoMarshal: true,
		Value:     &sample{A: "x", B: 2},
		XML:       `<b>2</b><extra><a>nested</a></extra><a>x</a><future/>`,
	},
	3: {
		NoMarshal: true,
		Value:     &sample{},
		XML:       `<b>two</b>`,
		Err:       decode.ErrParseValue,
	},
	4: {
		Value: &order{ID: "1", Items: []int{1, 3}},
		XML:   `<ID>1</ID><items><value>1</value><value>3</value></items>`,
	},
	5: {
		Value: &order{ID: "2", Items: []int{}, Members: []string{}},
		XML:   `<ID>2</ID><items></items><Members></Members>`,
	},
	6: {
		NoMarshal: true,
		Value:     &order{Items: []int{}, Members: []string{"a", "b"}},
		XML:       `<items/><Members><member>a</member><other>x</other><member>b</member></Members>`,
	},
	7: {
		Value: &order{ID: "3", Address: &address{Name: "Joe", Line2: strPtr("")}},
		XML:   `<ID>3</ID><Address><Name>Joe</Name><Line2></Line2></Address>`,
	},
	8: {
		Value: &order{ID: "4", Address: &address{}},
		XML:   `<ID>4</ID><Address><Name></Name></Address>`,
	},
	9: {
		NoMarshal: true,
		Value:     &order{Address: &address{}},
		XML:       `<Address/>`,
	},
	10: {
		NoMarshal: true,
		Value:     &order{},
		XML:       `<items><value>1</value><value>x</value></items>`,
		Err:       decode.ErrParseValue,
	},
	11: {
		NoMarshal: true,
		Value:     &sample{},
		XML:       `<a>text<b/></a>`,
		Err:       decode.ErrUnexpectedEvent,
	},
}

func TestRecords(t *testing.T) {
	xmltest.RunStreamTests(t, recordTestCases)
}

type response struct {
	RequestID string
	Orders    []order
}

func (r *response) UnmarshalXMLStream(c *decode.Cursor) error {
	_, err := decode.FoldElements(c, r, func(c *decode.Cursor, r **response) error {
		var err error
		switch c.LocalName() {
		case "ListResult":
			(*r).Orders, err = decode.ListOf(c, "Order", decode.Record[order, *order])
		case "ResponseMetadata":
			(*r).RequestID, err = decode.Element(c, decode.Names{"RequestId"}, decode.Characters)
		}
		return err
	})
	return err
}

var responseNames = decode.Names{"ListResponse", "ListByNextTokenResponse"}

var decodeTestCases = [...]struct {
	in  string
	out response
	err error
}{
	0: {
		in: `<?xml version="1.0"?>
<ListResponse xmlns="https://mws.amazonservices.com/">
  <ListResult>
    <Order><ID>1</ID></Order>
    <Order><ID>2</ID><items><value>5</value></items></Order>
  </ListResult>
  <ResponseMetadata><RequestId>abc</RequestId></ResponseMetadata>
</ListResponse>`,
		out: response{
			RequestID: "abc",
			Orders:    []order{{ID: "1"}, {ID: "2", Items: []int{5}}},
		},
	},
	1: {
		in:  `<ListByNextTokenResponse><ResponseMetadata><RequestId>def</RequestId></ResponseMetadata></ListByNextTokenResponse>`,
		out: response{RequestID: "def"},
	},
	2: {
		in:  `<ErrorResponse><Error/></ErrorResponse>`,
		err: decode.ErrUnexpectedElement,
	},
	3: {
		in:  `<ListResponse><ListResult><Order><ID>1</ID>`,
		err: decode.ErrUnexpectedEndOfDocument,
	},
	4: {
		in:  `<ListResponse><ListResult></Order></ListResponse>`,
		err: decode.ErrIo,
	},
}

func TestDecode(t *testing.T) {
	for i, tc := range decodeTestCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			out, err := decode.Unmarshal[response]([]byte(tc.in), responseNames)
			if !errors.Is(err, tc.err) {
				t.Fatalf("unexpected error: want=%v, got=%v", tc.err, err)
			}
			if !reflect.DeepEqual(out, tc.out) {
				t.Errorf("unexpected value:\nwant=%+v,\n got=%+v", tc.out, out)
			}
		})
	}
}

type legacy struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"v"`
}

func TestDecodeElement(t *testing.T) {
	c := decode.NewReader(strings.NewReader(`<r><item name="n"><v>x</v></item><next>1</next></r>`))
	type result struct {
		item legacy
		next int
	}
	res, err := decode.Element(c, decode.Names{"r"}, func(c *decode.Cursor) (result, error) {
		return decode.FoldElements(c, result{}, func(c *decode.Cursor, res *result) error {
			var err error
			switch c.LocalName() {
			case "item":
				err = decode.DecodeElement(c, &res.item)
			case "next":
				res.next, err = decode.Int(c)
			}
			return err
		})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := result{item: legacy{Name: "n", Value: "x"}, next: 1}
	if res != want {
		t.Errorf("unexpected result: want=%+v, got=%+v", want, res)
	}
}

func TestDecodeElementNoElement(t *testing.T) {
	c := decode.NewReader(strings.NewReader(`<r/>`))
	err := decode.DecodeElement(c, &legacy{})
	if !errors.Is(err, decode.ErrUnexpectedEvent) {
		t.Errorf("unexpected error: want=%v, got=%v", decode.ErrUnexpectedEvent, err)
	}
}
