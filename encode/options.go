// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package encode

import (
	"io"
	"log"
)

// Option can be used to configure a Writer.
type Option func(*options)

type options struct {
	log      *log.Logger
	prefix   string
	indent   string
	noDecl   bool
	fragment bool
}

func getOpts(o ...Option) (res options) {
	for _, f := range o {
		f(&res)
	}

	// Log to /dev/null by default.
	if res.log == nil {
		res.log = log.New(io.Discard, "", log.LstdFlags)
	}
	return
}

// Indent sets the writer to generate XML in which each element begins on a new
// indented line that starts with prefix and is followed by one or more copies
// of indent according to the nesting depth.
// Elements that contain only character data stay on one line.
func Indent(prefix, indent string) Option {
	return func(o *options) {
		o.prefix = prefix
		o.indent = indent
	}
}

// NoDeclaration disables writing the XML declaration.
func NoDeclaration() Option {
	return func(o *options) {
		o.noDecl = true
	}
}

// The Logger option can be provided to have the writer log debug messages, for
// example when a namespace prefix is bound.
func Logger(logger *log.Logger) Option {
	return func(o *options) {
		o.log = logger
	}
}

func fragment() Option {
	return func(o *options) {
		o.noDecl = true
		o.fragment = true
	}
}
