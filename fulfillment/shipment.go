// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package fulfillment

import (
	"time"

	"github.com/Ventmere/mws-go/decode"
	"github.com/Ventmere/mws-go/encode"
	"mellium.im/xmlstream"
)

// FulfillmentShipment is a shipment of some or all of the items in a
// fulfillment order.
type FulfillmentShipment struct {
	AmazonShipmentID          string                    `json:"amazon_shipment_id"`
	FulfillmentCenterID       string                    `json:"fulfillment_center_id"`
	FulfillmentShipmentStatus FulfillmentShipmentStatus `json:"fulfillment_shipment_status"`

	// ShippingDateTime is the estimated time the shipment leaves the
	// fulfillment center while it is pending and the actual time once it has
	// shipped.
	// It is absent for cancelled shipments.
	ShippingDateTime         *time.Time `json:"shipping_date_time,omitempty"`
	EstimatedArrivalDateTime *time.Time `json:"estimated_arrival_date_time,omitempty"`

	FulfillmentShipmentItem    []FulfillmentShipmentItem    `json:"fulfillment_shipment_item"`
	FulfillmentShipmentPackage []FulfillmentShipmentPackage `json:"fulfillment_shipment_package"`
}

// UnmarshalXMLStream satisfies the decode.Unmarshaler interface.
func (s *FulfillmentShipment) UnmarshalXMLStream(c *decode.Cursor) error {
	return shipmentTable.Fold(c, s)
}

var shipmentTable = decode.Table[FulfillmentShipment]{
	"AmazonShipmentId": func(c *decode.Cursor, s *FulfillmentShipment) (err error) {
		s.AmazonShipmentID, err = decode.Characters(c)
		return err
	},
	"FulfillmentCenterId": func(c *decode.Cursor, s *FulfillmentShipment) (err error) {
		s.FulfillmentCenterID, err = decode.Characters(c)
		return err
	},
	"FulfillmentShipmentStatus": func(c *decode.Cursor, s *FulfillmentShipment) (err error) {
		s.FulfillmentShipmentStatus, err = decode.Text[FulfillmentShipmentStatus](c)
		return err
	},
	"ShippingDateTime": func(c *decode.Cursor, s *FulfillmentShipment) (err error) {
		s.ShippingDateTime, err = decode.Some(decode.Time(c))
		return err
	},
	"EstimatedArrivalDateTime": func(c *decode.Cursor, s *FulfillmentShipment) (err error) {
		s.EstimatedArrivalDateTime, err = decode.Some(decode.Time(c))
		return err
	},
	"FulfillmentShipmentItem": func(c *decode.Cursor, s *FulfillmentShipment) (err error) {
		s.FulfillmentShipmentItem, err = decode.List(c, decode.Record[FulfillmentShipmentItem, *FulfillmentShipmentItem])
		return err
	},
	"FulfillmentShipmentPackage": func(c *decode.Cursor, s *FulfillmentShipment) (err error) {
		s.FulfillmentShipmentPackage, err = decode.List(c, decode.Record[FulfillmentShipmentPackage, *FulfillmentShipmentPackage])
		return err
	},
}

// FulfillmentShipmentItem is the quantity of an order item contained in a
// shipment.
type FulfillmentShipmentItem struct {
	SellerSKU                    *string `json:"seller_sku,omitempty"`
	SellerFulfillmentOrderItemID string  `json:"seller_fulfillment_order_item_id"`
	Quantity                     int32   `json:"quantity"`
	PackageNumber                *string `json:"package_number,omitempty"`
}

// WriteXML satisfies the xmlstream.WriterTo interface.
func (i *FulfillmentShipmentItem) WriteXML(w xmlstream.TokenWriter) (int, error) {
	return encode.Nodes{
		encode.OptionalText("SellerSKU", i.SellerSKU),
		encode.Elem("SellerFulfillmentOrderItemId").Text(i.SellerFulfillmentOrderItemID),
		encode.Elem("Quantity").Int64(int64(i.Quantity)),
		encode.OptionalText("PackageNumber", i.PackageNumber),
	}.WriteXML(w)
}

// UnmarshalXMLStream satisfies the decode.Unmarshaler interface.
func (i *FulfillmentShipmentItem) UnmarshalXMLStream(c *decode.Cursor) error {
	return shipmentItemTable.Fold(c, i)
}

var shipmentItemTable = decode.Table[FulfillmentShipmentItem]{
	"SellerSKU": func(c *decode.Cursor, i *FulfillmentShipmentItem) (err error) {
		i.SellerSKU, err = decode.Some(decode.Characters(c))
		return err
	},
	"SellerFulfillmentOrderItemId": func(c *decode.Cursor, i *FulfillmentShipmentItem) (err error) {
		i.SellerFulfillmentOrderItemID, err = decode.Characters(c)
		return err
	},
	"Quantity": func(c *decode.Cursor, i *FulfillmentShipmentItem) (err error) {
		i.Quantity, err = decode.Int32(c)
		return err
	},
	"PackageNumber": func(c *decode.Cursor, i *FulfillmentShipmentItem) (err error) {
		i.PackageNumber, err = decode.Some(decode.Characters(c))
		return err
	},
}

// FulfillmentShipmentPackage is a single package in a shipment.
type FulfillmentShipmentPackage struct {
	PackageNumber string `json:"package_number"`
	// CarrierCode identifies the carrier delivering the package.
	CarrierCode              string     `json:"carrier_code"`
	TrackingNumber           *string    `json:"tracking_number,omitempty"`
	EstimatedArrivalDateTime *time.Time `json:"estimated_arrival_date_time,omitempty"`
}

// WriteXML satisfies the xmlstream.WriterTo interface.
func (p *FulfillmentShipmentPackage) WriteXML(w xmlstream.TokenWriter) (int, error) {
	return encode.Nodes{
		encode.Elem("PackageNumber").Text(p.PackageNumber),
		encode.Elem("CarrierCode").Text(p.CarrierCode),
		encode.OptionalText("TrackingNumber", p.TrackingNumber),
		encode.OptionalTime("EstimatedArrivalDateTime", p.EstimatedArrivalDateTime),
	}.WriteXML(w)
}

// UnmarshalXMLStream satisfies the decode.Unmarshaler interface.
func (p *FulfillmentShipmentPackage) UnmarshalXMLStream(c *decode.Cursor) error {
	return shipmentPackageTable.Fold(c, p)
}

var shipmentPackageTable = decode.Table[FulfillmentShipmentPackage]{
	"PackageNumber": func(c *decode.Cursor, p *FulfillmentShipmentPackage) (err error) {
		p.PackageNumber, err = decode.Characters(c)
		return err
	},
	"CarrierCode": func(c *decode.Cursor, p *FulfillmentShipmentPackage) (err error) {
		p.CarrierCode, err = decode.Characters(c)
		return err
	},
	"TrackingNumber": func(c *decode.Cursor, p *FulfillmentShipmentPackage) (err error) {
		p.TrackingNumber, err = decode.Some(decode.Characters(c))
		return err
	},
	"EstimatedArrivalDateTime": func(c *decode.Cursor, p *FulfillmentShipmentPackage) (err error) {
		p.EstimatedArrivalDateTime, err = decode.Some(decode.Time(c))
		return err
	},
}
