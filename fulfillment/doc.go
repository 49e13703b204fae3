// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package fulfillment contains the records of the Fulfillment Outbound
// Shipment API (version 2010-10-01) and decoders for its responses.
//
// Responses are decoded from a decode.Cursor:
//
//	c := decode.NewReader(resp.Body)
//	orders, err := fulfillment.DecodeListAllFulfillmentOrdersResponse(c)
//
// Lists in these documents are wrapper elements with one "member" child per
// entry.
// A missing wrapper results in a nil slice and an empty wrapper in an empty,
// non-nil slice.
package fulfillment // import "github.com/Ventmere/mws-go/fulfillment"
