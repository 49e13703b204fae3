// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package encode

import (
	"bytes"
	"io"

	"github.com/Ventmere/mws-go/xmlevent"
	"mellium.im/xmlstream"
)

// Marshal writes the XML declaration followed by v to w and flushes the
// output.
func Marshal(w io.Writer, v xmlstream.WriterTo, opts ...Option) error {
	return write(NewWriter(w, opts...), v)
}

// Bytes is like Marshal except that it returns the encoded document.
func Bytes(v xmlstream.WriterTo, opts ...Option) ([]byte, error) {
	var b bytes.Buffer
	if err := Marshal(&b, v, opts...); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Fragment writes v to w without an XML declaration.
// Unlike Marshal the output may contain more than one root element or
// character data at the top level.
func Fragment(w io.Writer, v xmlstream.WriterTo, opts ...Option) error {
	return write(NewWriter(w, append(opts, fragment())...), v)
}

func write(w *Writer, v xmlstream.WriterTo) error {
	if err := w.Write(xmlevent.Event{Kind: xmlevent.DocumentStart}); err != nil {
		return err
	}
	if _, err := v.WriteXML(w); err != nil {
		return err
	}
	return w.Write(xmlevent.Event{Kind: xmlevent.DocumentEnd})
}
