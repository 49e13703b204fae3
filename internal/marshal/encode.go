// Copyright 2019 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package marshal contains functions for encoding arbitrary Go values as an XML
// token stream.
package marshal // import "github.com/Ventmere/mws-go/internal/marshal"

import (
	"bytes"
	"encoding/xml"

	"mellium.im/xmlstream"
)

// TokenReader returns a reader for the XML encoding of v.
//
// If v is an xml.TokenReader it is returned as is and if it is an
// xmlstream.Marshaler its TokenReader method is used.
// Anything else is encoded with encoding/xml.
func TokenReader(v interface{}) (xml.TokenReader, error) {
	switch r := v.(type) {
	case xml.TokenReader:
		return r, nil
	case xmlstream.Marshaler:
		return r.TokenReader(), nil
	}

	var b bytes.Buffer
	err := xml.NewEncoder(&b).Encode(v)
	if err != nil {
		return nil, err
	}
	return xml.NewDecoder(&b), nil
}

// EncodeXML writes the XML encoding of v to the stream and returns the number
// of tokens written.
//
// Values that implement xmlstream.WriterTo write themselves, see TokenReader
// for how other values are converted.
func EncodeXML(w xmlstream.TokenWriter, v interface{}) (int, error) {
	if wt, ok := v.(xmlstream.WriterTo); ok {
		return wt.WriteXML(w)
	}
	r, err := TokenReader(v)
	if err != nil {
		return 0, err
	}
	return xmlstream.Copy(w, r)
}
