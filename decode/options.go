// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package decode

import (
	"io"
	"log"
)

// Option can be used to configure a Cursor.
type Option func(*options)

type options struct {
	log *log.Logger
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

// The Logger option can be provided to have the cursor log debug messages, for
// example when an element is skipped because nothing recognized it.
func Logger(logger *log.Logger) Option {
	return func(o *options) {
		o.log = logger
	}
}
