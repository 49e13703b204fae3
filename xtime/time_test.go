// Copyright 2020 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package xtime_test

import (
	"encoding"
	"encoding/xml"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/Ventmere/mws-go/decode"
	"github.com/Ventmere/mws-go/encode"
	"github.com/Ventmere/mws-go/internal/xmltest"
	"github.com/Ventmere/mws-go/xtime"
	"mellium.im/xmlstream"
)

var (
	_ xml.Marshaler            = xtime.Time{}
	_ xml.Unmarshaler          = (*xtime.Time)(nil)
	_ xmlstream.Marshaler      = xtime.Time{}
	_ xmlstream.WriterTo       = xtime.Time{}
	_ encoding.TextMarshaler   = xtime.Time{}
	_ encoding.TextUnmarshaler = (*xtime.Time)(nil)
)

var parseTests = [...]struct {
	in   string
	out  time.Time
	fail bool
}{
	0: {in: "2016-11-03T00:09:40Z", out: time.Date(2016, 11, 3, 0, 9, 40, 0, time.UTC)},
	1: {in: "2016-11-02T17:09:40-07:00", out: time.Date(2016, 11, 3, 0, 9, 40, 0, time.UTC)},
	2: {in: "2017-12-11T08:00:00.250Z", out: time.Date(2017, 12, 11, 8, 0, 0, 250000000, time.UTC)},
	3: {in: "2016-11-03", fail: true},
	4: {in: "", fail: true},
	5: {in: "2016-11-03 00:09:40Z", fail: true},
}

func TestParse(t *testing.T) {
	for i, tc := range parseTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			out, err := xtime.Parse(tc.in)
			switch {
			case tc.fail && err == nil:
				t.Fatalf("expected error parsing %q, got %v", tc.in, out)
			case !tc.fail && err != nil:
				t.Fatalf("unexpected error: %v", err)
			}
			if !out.Equal(tc.out) {
				t.Errorf("wrong time: want=%v, got=%v", tc.out, out)
			}
			if !tc.fail && out.Location() != time.UTC {
				t.Errorf("expected time in UTC, got %v", out.Location())
			}
		})
	}
}

func TestFormat(t *testing.T) {
	loc := time.FixedZone("PDT", -7*60*60)
	in := time.Date(2016, 11, 2, 17, 9, 40, 0, loc)
	const want = "2016-11-03T00:09:40Z"
	if s := xtime.Format(in); s != want {
		t.Errorf("wrong format: want=%q, got=%q", want, s)
	}
}

var encodingTests = [...]struct {
	v        wrapper
	xml      string
	noDecode bool
}{
	0: {
		v:   wrapper{XMLName: xml.Name{Local: "w"}, Date: xtime.Time(time.Date(2018, 1, 30, 23, 38, 45, 0, time.UTC))},
		xml: `<w><date>2018-01-30T23:38:45Z</date></w>`,
	},
	1: {
		v:        wrapper{Date: xtime.Time(time.Date(2018, 1, 30, 15, 38, 45, 0, time.FixedZone("PST", -8*60*60)))},
		xml:      `<w><date>2018-01-30T23:38:45Z</date></w>`,
		noDecode: true,
	},
}

type wrapper struct {
	XMLName xml.Name   `xml:"w"`
	Date    xtime.Time `xml:"date"`
}

func TestEncoding(t *testing.T) {
	for i, tc := range encodingTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			out, err := xml.Marshal(tc.v)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(out) != tc.xml {
				t.Errorf("unexpected output:\nwant=%q,\n got=%q", tc.xml, out)
			}
			if tc.noDecode {
				return
			}
			var v wrapper
			if err = xml.Unmarshal(out, &v); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(v, tc.v) {
				t.Errorf("unexpected value: want=%+v, got=%+v", tc.v, v)
			}
		})
	}
}

// shipment is a record with a time field written through xtime.Time.
type shipment struct {
	ShipDate time.Time
}

func (s *shipment) WriteXML(w xmlstream.TokenWriter) (int, error) {
	return encode.Elem("ShipDate").Append(xtime.Time(s.ShipDate)).WriteXML(w)
}

func (s *shipment) UnmarshalXMLStream(c *decode.Cursor) error {
	_, err := decode.FoldElements(c, s, func(c *decode.Cursor, s **shipment) (err error) {
		if c.LocalName() == "ShipDate" {
			(*s).ShipDate, err = decode.Time(c)
		}
		return err
	})
	return err
}

func TestDocument(t *testing.T) {
	xmltest.RunDocumentTests(t, []xmltest.DocumentTestCase{
		0: {
			Root:  "Shipment",
			Value: &shipment{ShipDate: time.Date(2020, 2, 19, 11, 46, 0, 0, time.UTC)},
			XML:   `<?xml version="1.0" encoding="utf-8"?><Shipment><ShipDate>2020-02-19T11:46:00Z</ShipDate></Shipment>`,
		},
		1: {
			Root:      "Shipment",
			NoMarshal: true,
			Value:     &shipment{ShipDate: time.Date(2020, 2, 19, 11, 46, 0, 0, time.UTC)},
			XML:       `<Shipment><ShipDate>2020-02-19T03:46:00-08:00</ShipDate></Shipment>`,
		},
		2: {
			Root:      "Shipment",
			NoMarshal: true,
			Value:     &shipment{},
			XML:       `<Shipment><ShipDate>2020-02-19</ShipDate></Shipment>`,
			Err:       decode.ErrParseValue,
		},
	})
}
