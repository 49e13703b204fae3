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

// FulfillmentOrder is a fulfillment order as returned by GetFulfillmentOrder
// and ListAllFulfillmentOrders.
type FulfillmentOrder struct {
	SellerFulfillmentOrderID string                 `json:"seller_fulfillment_order_id"`
	DestinationAddress       DestinationAddress     `json:"destination_address"`
	DisplayableOrderDateTime *time.Time             `json:"displayable_order_date_time,omitempty"`
	ShippingSpeedCategory    string                 `json:"shipping_speed_category"`
	FulfillmentMethod        string                 `json:"fulfillment_method"`
	FulfillmentOrderStatus   FulfillmentOrderStatus `json:"fulfillment_order_status"`
	StatusUpdatedDateTime    *time.Time             `json:"status_updated_date_time,omitempty"`
	FulfillmentPolicy        FulfillmentPolicy      `json:"fulfillment_policy"`
	ReceivedDateTime         *time.Time             `json:"received_date_time,omitempty"`
	DisplayableOrderID       string                 `json:"displayable_order_id"`
	DisplayableOrderComment  string                 `json:"displayable_order_comment"`
	MarketplaceID            *string                `json:"marketplace_id,omitempty"`
	FulfillmentAction        *string                `json:"fulfillment_action,omitempty"`
	NotificationEmailList    []string               `json:"notification_email_list"`
}

// UnmarshalXMLStream satisfies the decode.Unmarshaler interface.
func (o *FulfillmentOrder) UnmarshalXMLStream(c *decode.Cursor) error {
	return orderTable.Fold(c, o)
}

var orderTable = decode.Table[FulfillmentOrder]{
	"SellerFulfillmentOrderId": func(c *decode.Cursor, o *FulfillmentOrder) (err error) {
		o.SellerFulfillmentOrderID, err = decode.Characters(c)
		return err
	},
	"DestinationAddress": func(c *decode.Cursor, o *FulfillmentOrder) (err error) {
		o.DestinationAddress, err = decode.Record[DestinationAddress](c)
		return err
	},
	"DisplayableOrderDateTime": func(c *decode.Cursor, o *FulfillmentOrder) (err error) {
		o.DisplayableOrderDateTime, err = decode.Some(decode.Time(c))
		return err
	},
	"ShippingSpeedCategory": func(c *decode.Cursor, o *FulfillmentOrder) (err error) {
		o.ShippingSpeedCategory, err = decode.Characters(c)
		return err
	},
	"FulfillmentMethod": func(c *decode.Cursor, o *FulfillmentOrder) (err error) {
		o.FulfillmentMethod, err = decode.Characters(c)
		return err
	},
	"FulfillmentOrderStatus": func(c *decode.Cursor, o *FulfillmentOrder) (err error) {
		o.FulfillmentOrderStatus, err = decode.Text[FulfillmentOrderStatus](c)
		return err
	},
	"StatusUpdatedDateTime": func(c *decode.Cursor, o *FulfillmentOrder) (err error) {
		o.StatusUpdatedDateTime, err = decode.Some(decode.Time(c))
		return err
	},
	"FulfillmentPolicy": func(c *decode.Cursor, o *FulfillmentOrder) (err error) {
		o.FulfillmentPolicy, err = decode.Text[FulfillmentPolicy](c)
		return err
	},
	"ReceivedDateTime": func(c *decode.Cursor, o *FulfillmentOrder) (err error) {
		o.ReceivedDateTime, err = decode.Some(decode.Time(c))
		return err
	},
	"DisplayableOrderId": func(c *decode.Cursor, o *FulfillmentOrder) (err error) {
		o.DisplayableOrderID, err = decode.Characters(c)
		return err
	},
	"DisplayableOrderComment": func(c *decode.Cursor, o *FulfillmentOrder) (err error) {
		o.DisplayableOrderComment, err = decode.Characters(c)
		return err
	},
	"MarketplaceId": func(c *decode.Cursor, o *FulfillmentOrder) (err error) {
		o.MarketplaceID, err = decode.Some(decode.Characters(c))
		return err
	},
	"FulfillmentAction": func(c *decode.Cursor, o *FulfillmentOrder) (err error) {
		o.FulfillmentAction, err = decode.Some(decode.Characters(c))
		return err
	},
	"NotificationEmailList": func(c *decode.Cursor, o *FulfillmentOrder) (err error) {
		o.NotificationEmailList, err = decode.List(c, decode.Characters)
		return err
	},
}

// DestinationAddress is the address a fulfillment order is shipped to.
// Lines that are present but empty decode as empty strings.
type DestinationAddress struct {
	PhoneNumber         string `json:"phone_number"`
	City                string `json:"city"`
	CountryCode         string `json:"country_code"`
	PostalCode          string `json:"postal_code"`
	Name                string `json:"name"`
	StateOrProvinceCode string `json:"state_or_province_code"`
	DistrictOrCounty    string `json:"district_or_county"`
	Line1               string `json:"line1"`
	Line2               string `json:"line2"`
	Line3               string `json:"line3"`
}

// WriteXML satisfies the xmlstream.WriterTo interface.
// Every field is written, empty ones as empty elements.
func (a *DestinationAddress) WriteXML(w xmlstream.TokenWriter) (int, error) {
	return encode.Nodes{
		encode.Elem("Name").Text(a.Name),
		encode.Elem("Line1").Text(a.Line1),
		encode.Elem("Line2").Text(a.Line2),
		encode.Elem("Line3").Text(a.Line3),
		encode.Elem("DistrictOrCounty").Text(a.DistrictOrCounty),
		encode.Elem("City").Text(a.City),
		encode.Elem("StateOrProvinceCode").Text(a.StateOrProvinceCode),
		encode.Elem("CountryCode").Text(a.CountryCode),
		encode.Elem("PostalCode").Text(a.PostalCode),
		encode.Elem("PhoneNumber").Text(a.PhoneNumber),
	}.WriteXML(w)
}

// UnmarshalXMLStream satisfies the decode.Unmarshaler interface.
func (a *DestinationAddress) UnmarshalXMLStream(c *decode.Cursor) error {
	_, err := decode.FoldElements(c, a, func(c *decode.Cursor, a **DestinationAddress) error {
		var field *string
		switch c.LocalName() {
		case "PhoneNumber":
			field = &(*a).PhoneNumber
		case "City":
			field = &(*a).City
		case "CountryCode":
			field = &(*a).CountryCode
		case "PostalCode":
			field = &(*a).PostalCode
		case "Name":
			field = &(*a).Name
		case "StateOrProvinceCode":
			field = &(*a).StateOrProvinceCode
		case "DistrictOrCounty":
			field = &(*a).DistrictOrCounty
		case "Line1":
			field = &(*a).Line1
		case "Line2":
			field = &(*a).Line2
		case "Line3":
			field = &(*a).Line3
		default:
			return nil
		}
		var err error
		*field, err = decode.Characters(c)
		return err
	})
	return err
}

// Currency is a monetary amount.
type Currency struct {
	// CurrencyCode is the three letter ISO 4217 currency code.
	CurrencyCode string `json:"currency_code"`
	// Value is the amount as it appears in the document.
	Value string `json:"value"`
}

// WriteXML satisfies the xmlstream.WriterTo interface.
func (c *Currency) WriteXML(w xmlstream.TokenWriter) (int, error) {
	return encode.Nodes{
		encode.Elem("CurrencyCode").Text(c.CurrencyCode),
		encode.Elem("Value").Text(c.Value),
	}.WriteXML(w)
}

// UnmarshalXMLStream satisfies the decode.Unmarshaler interface.
func (c *Currency) UnmarshalXMLStream(cur *decode.Cursor) error {
	return currencyTable.Fold(cur, c)
}

var currencyTable = decode.Table[Currency]{
	"CurrencyCode": func(c *decode.Cursor, v *Currency) (err error) {
		v.CurrencyCode, err = decode.Characters(c)
		return err
	},
	"Value": func(c *decode.Cursor, v *Currency) (err error) {
		v.Value, err = decode.Characters(c)
		return err
	},
}

// FulfillmentOrderItem is an item in a fulfillment order.
type FulfillmentOrderItem struct {
	SellerSKU                    string `json:"seller_sku"`
	SellerFulfillmentOrderItemID string `json:"seller_fulfillment_order_item_id"`
	Quantity                     int32  `json:"quantity"`

	// GiftMessage is a message to the gift recipient, if any.
	GiftMessage *string `json:"gift_message,omitempty"`

	// DisplayableComment is shown in recipient facing materials such as the
	// packing slip.
	DisplayableComment    *string `json:"displayable_comment,omitempty"`
	FulfillmentNetworkSKU *string `json:"fulfillment_network_sku,omitempty"`
	CancelledQuantity     int32   `json:"cancelled_quantity"`
	UnfulfillableQuantity int32   `json:"unfulfillable_quantity"`

	// EstimatedShipDateTime and EstimatedArrivalDateTime may change over time
	// and are absent once the shipment containing the item is cancelled.
	EstimatedShipDateTime    *time.Time `json:"estimated_ship_date_time,omitempty"`
	EstimatedArrivalDateTime *time.Time `json:"estimated_arrival_date_time,omitempty"`

	PerUnitDeclaredValue *Currency `json:"per_unit_declared_value,omitempty"`

	// PerUnitPrice and PerUnitTax are only set for cash on delivery orders.
	PerUnitPrice *Currency `json:"per_unit_price,omitempty"`
	PerUnitTax   *Currency `json:"per_unit_tax,omitempty"`
}

// UnmarshalXMLStream satisfies the decode.Unmarshaler interface.
func (i *FulfillmentOrderItem) UnmarshalXMLStream(c *decode.Cursor) error {
	return orderItemTable.Fold(c, i)
}

func currency(c *decode.Cursor) (*Currency, error) {
	return decode.Some(decode.Record[Currency](c))
}

var orderItemTable = decode.Table[FulfillmentOrderItem]{
	"SellerSKU": func(c *decode.Cursor, i *FulfillmentOrderItem) (err error) {
		i.SellerSKU, err = decode.Characters(c)
		return err
	},
	"SellerFulfillmentOrderItemId": func(c *decode.Cursor, i *FulfillmentOrderItem) (err error) {
		i.SellerFulfillmentOrderItemID, err = decode.Characters(c)
		return err
	},
	"Quantity": func(c *decode.Cursor, i *FulfillmentOrderItem) (err error) {
		i.Quantity, err = decode.Int32(c)
		return err
	},
	"GiftMessage": func(c *decode.Cursor, i *FulfillmentOrderItem) (err error) {
		i.GiftMessage, err = decode.Some(decode.Characters(c))
		return err
	},
	"DisplayableComment": func(c *decode.Cursor, i *FulfillmentOrderItem) (err error) {
		i.DisplayableComment, err = decode.Some(decode.Characters(c))
		return err
	},
	"FulfillmentNetworkSKU": func(c *decode.Cursor, i *FulfillmentOrderItem) (err error) {
		i.FulfillmentNetworkSKU, err = decode.Some(decode.Characters(c))
		return err
	},
	"CancelledQuantity": func(c *decode.Cursor, i *FulfillmentOrderItem) (err error) {
		i.CancelledQuantity, err = decode.Int32(c)
		return err
	},
	"UnfulfillableQuantity": func(c *decode.Cursor, i *FulfillmentOrderItem) (err error) {
		i.UnfulfillableQuantity, err = decode.Int32(c)
		return err
	},
	"EstimatedShipDateTime": func(c *decode.Cursor, i *FulfillmentOrderItem) (err error) {
		i.EstimatedShipDateTime, err = decode.Some(decode.Time(c))
		return err
	},
	"EstimatedArrivalDateTime": func(c *decode.Cursor, i *FulfillmentOrderItem) (err error) {
		i.EstimatedArrivalDateTime, err = decode.Some(decode.Time(c))
		return err
	},
	"PerUnitDeclaredValue": func(c *decode.Cursor, i *FulfillmentOrderItem) (err error) {
		i.PerUnitDeclaredValue, err = currency(c)
		return err
	},
	"PerUnitPrice": func(c *decode.Cursor, i *FulfillmentOrderItem) (err error) {
		i.PerUnitPrice, err = currency(c)
		return err
	},
	"PerUnitTax": func(c *decode.Cursor, i *FulfillmentOrderItem) (err error) {
		i.PerUnitTax, err = currency(c)
		return err
	},
}
