// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package fulfillment_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Ventmere/mws-go/decode"
)

func decodeFragment[T any, PT interface {
	*T
	decode.Unmarshaler
}](t *testing.T, in string) T {
	t.Helper()
	v, err := decode.Record[T, PT](decode.NewReader(strings.NewReader(in)))
	if err != nil {
		t.Fatalf("unexpected error decoding: %v", err)
	}
	return v
}

func date(year int, month time.Month, day, hour, min, sec int) *time.Time {
	t := time.Date(year, month, day, hour, min, sec, 0, time.UTC)
	return &t
}

func strPtr(s string) *string {
	return &s
}
