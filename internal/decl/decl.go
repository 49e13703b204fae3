// Copyright 2019 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package decl contains functionality related to XML declarations.
package decl // import "github.com/Ventmere/mws-go/internal/decl"

import (
	"encoding/xml"
	"io"
)

const (
	// Header is the XML declaration written at the start of every encoded
	// document.
	// Unlike xml.Header it does not end in a newline.
	Header = `<?xml version="1.0" encoding="utf-8"?>`
)

type skipper struct {
	r       xml.TokenReader
	started bool
}

// Token implements xml.TokenReader for skipper.
// Only an XML declaration that is the very first token is dropped, any later
// processing instruction is passed through.
func (r *skipper) Token() (xml.Token, error) {
	tok, err := r.r.Token()
	if tok != nil && !r.started {
		r.started = true
		if proc, ok := tok.(xml.ProcInst); ok && proc.Target == "xml" {
			if err != nil {
				return nil, err
			}
			return r.r.Token()
		}
	}
	return tok, err
}

// Skip wraps a token reader and skips any XML declaration.
func Skip(r xml.TokenReader) xml.TokenReader {
	return &skipper{r: r}
}

// Write writes the XML declaration to w followed by a newline if newline is
// true.
func Write(w io.Writer, newline bool) error {
	h := Header
	if newline {
		h += "\n"
	}
	_, err := io.WriteString(w, h)
	return err
}
