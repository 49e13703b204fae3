// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package fulfillment

import (
	"github.com/Ventmere/mws-go/decode"
)

func requestID(c *decode.Cursor) (string, error) {
	return decode.Element(c, decode.Names{"RequestId"}, decode.Characters)
}

// ListAllFulfillmentOrdersResponse is the response to a
// ListAllFulfillmentOrders or ListAllFulfillmentOrdersByNextToken request.
type ListAllFulfillmentOrdersResponse struct {
	RequestID         string             `json:"request_id"`
	FulfillmentOrders []FulfillmentOrder `json:"fulfillment_orders"`
	NextToken         *string            `json:"next_token,omitempty"`
}

// UnmarshalXMLStream satisfies the decode.Unmarshaler interface.
func (r *ListAllFulfillmentOrdersResponse) UnmarshalXMLStream(c *decode.Cursor) error {
	_, err := decode.FoldElements(c, r, func(c *decode.Cursor, r **ListAllFulfillmentOrdersResponse) error {
		var err error
		switch c.LocalName() {
		case "ListAllFulfillmentOrdersResult", "ListAllFulfillmentOrdersByNextTokenResult":
			err = listOrdersTable.Fold(c, *r)
		case "ResponseMetadata":
			(*r).RequestID, err = requestID(c)
		}
		return err
	})
	return err
}

var listOrdersTable = decode.Table[ListAllFulfillmentOrdersResponse]{
	"FulfillmentOrders": func(c *decode.Cursor, r *ListAllFulfillmentOrdersResponse) (err error) {
		r.FulfillmentOrders, err = decode.List(c, decode.Record[FulfillmentOrder, *FulfillmentOrder])
		return err
	},
	"NextToken": func(c *decode.Cursor, r *ListAllFulfillmentOrdersResponse) (err error) {
		r.NextToken, err = decode.Some(decode.Characters(c))
		return err
	},
}

// ListAllFulfillmentOrdersResponseNames are the accepted root elements of a
// ListAllFulfillmentOrders response.
var ListAllFulfillmentOrdersResponseNames = decode.Names{
	"ListAllFulfillmentOrdersResponse",
	"ListAllFulfillmentOrdersByNextTokenResponse",
}

// DecodeListAllFulfillmentOrdersResponse reads a ListAllFulfillmentOrders or
// ListAllFulfillmentOrdersByNextToken response document.
func DecodeListAllFulfillmentOrdersResponse(c *decode.Cursor) (ListAllFulfillmentOrdersResponse, error) {
	return decode.Decode[ListAllFulfillmentOrdersResponse](c, ListAllFulfillmentOrdersResponseNames)
}

// GetFulfillmentOrderResponse is the response to a GetFulfillmentOrder
// request.
type GetFulfillmentOrderResponse struct {
	RequestID             string                 `json:"request_id"`
	FulfillmentOrder      FulfillmentOrder       `json:"fulfillment_order"`
	FulfillmentShipments  []FulfillmentShipment  `json:"fulfillment_shipments"`
	FulfillmentOrderItems []FulfillmentOrderItem `json:"fulfillment_order_items"`
}

// UnmarshalXMLStream satisfies the decode.Unmarshaler interface.
// Return items and return authorizations are skipped.
func (r *GetFulfillmentOrderResponse) UnmarshalXMLStream(c *decode.Cursor) error {
	_, err := decode.FoldElements(c, r, func(c *decode.Cursor, r **GetFulfillmentOrderResponse) error {
		var err error
		switch c.LocalName() {
		case "GetFulfillmentOrderResult":
			err = getOrderTable.Fold(c, *r)
		case "ResponseMetadata":
			(*r).RequestID, err = requestID(c)
		}
		return err
	})
	return err
}

var getOrderTable = decode.Table[GetFulfillmentOrderResponse]{
	"FulfillmentOrder": func(c *decode.Cursor, r *GetFulfillmentOrderResponse) (err error) {
		r.FulfillmentOrder, err = decode.Record[FulfillmentOrder](c)
		return err
	},
	"FulfillmentShipment": func(c *decode.Cursor, r *GetFulfillmentOrderResponse) (err error) {
		r.FulfillmentShipments, err = decode.List(c, decode.Record[FulfillmentShipment, *FulfillmentShipment])
		return err
	},
	"FulfillmentOrderItem": func(c *decode.Cursor, r *GetFulfillmentOrderResponse) (err error) {
		r.FulfillmentOrderItems, err = decode.List(c, decode.Record[FulfillmentOrderItem, *FulfillmentOrderItem])
		return err
	},
}

// GetFulfillmentOrderResponseNames are the accepted root elements of a
// GetFulfillmentOrder response.
var GetFulfillmentOrderResponseNames = decode.Names{"GetFulfillmentOrderResponse"}

// DecodeGetFulfillmentOrderResponse reads a GetFulfillmentOrder response
// document.
func DecodeGetFulfillmentOrderResponse(c *decode.Cursor) (GetFulfillmentOrderResponse, error) {
	return decode.Decode[GetFulfillmentOrderResponse](c, GetFulfillmentOrderResponseNames)
}

// GetPackageTrackingDetailsResponse is the response to a
// GetPackageTrackingDetails request.
type GetPackageTrackingDetailsResponse struct {
	RequestID string `json:"request_id"`
	PackageTrackingDetails
}

// UnmarshalXMLStream satisfies the decode.Unmarshaler interface.
func (r *GetPackageTrackingDetailsResponse) UnmarshalXMLStream(c *decode.Cursor) error {
	_, err := decode.FoldElements(c, r, func(c *decode.Cursor, r **GetPackageTrackingDetailsResponse) error {
		var err error
		switch c.LocalName() {
		case "GetPackageTrackingDetailsResult":
			err = (*r).PackageTrackingDetails.UnmarshalXMLStream(c)
		case "ResponseMetadata":
			(*r).RequestID, err = requestID(c)
		}
		return err
	})
	return err
}

// GetPackageTrackingDetailsResponseNames are the accepted root elements of a
// GetPackageTrackingDetails response.
var GetPackageTrackingDetailsResponseNames = decode.Names{"GetPackageTrackingDetailsResponse"}

// DecodeGetPackageTrackingDetailsResponse reads a GetPackageTrackingDetails
// response document.
func DecodeGetPackageTrackingDetailsResponse(c *decode.Cursor) (GetPackageTrackingDetailsResponse, error) {
	return decode.Decode[GetPackageTrackingDetailsResponse](c, GetPackageTrackingDetailsResponseNames)
}
