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

// TrackingAddress is the location of a package or tracking event.
type TrackingAddress struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// WriteXML satisfies the xmlstream.WriterTo interface.
func (a *TrackingAddress) WriteXML(w xmlstream.TokenWriter) (int, error) {
	return encode.Nodes{
		encode.Elem("City").Text(a.City),
		encode.Elem("State").Text(a.State),
		encode.Elem("Country").Text(a.Country),
	}.WriteXML(w)
}

// UnmarshalXMLStream satisfies the decode.Unmarshaler interface.
func (a *TrackingAddress) UnmarshalXMLStream(c *decode.Cursor) error {
	return trackingAddressTable.Fold(c, a)
}

var trackingAddressTable = decode.Table[TrackingAddress]{
	"City": func(c *decode.Cursor, a *TrackingAddress) (err error) {
		a.City, err = decode.Characters(c)
		return err
	},
	"State": func(c *decode.Cursor, a *TrackingAddress) (err error) {
		a.State, err = decode.Characters(c)
		return err
	},
	"Country": func(c *decode.Cursor, a *TrackingAddress) (err error) {
		a.Country, err = decode.Characters(c)
		return err
	},
}

// TrackingEvent is a single scan or status change of a package.
type TrackingEvent struct {
	EventDate    *time.Time       `json:"event_date,omitempty"`
	EventAddress *TrackingAddress `json:"event_address,omitempty"`
	EventCode    string           `json:"event_code"`
}

var eventDescriptions = map[string]string{
	"EVENT_101": "Carrier notified to pick up package.",
	"EVENT_102": "Shipment picked up from seller's facility.",
	"EVENT_201": "Arrival scan.",
	"EVENT_202": "Departure scan.",
	"EVENT_203": "Arrived at destination country.",
	"EVENT_204": "Initiated customs clearance process.",
	"EVENT_205": "Completed customs clearance process.",
	"EVENT_206": "In transit to pickup location.",
	"EVENT_301": "Delivered.",
	"EVENT_302": "Out for delivery.",
	"EVENT_304": "Delivery attempted.",
	"EVENT_306": "Customer contacted to arrange delivery.",
	"EVENT_307": "Delivery appointment scheduled.",
	"EVENT_308": "Available for pickup.",
	"EVENT_309": "Returned to seller.",
	"EVENT_401": "Held by carrier - incorrect address.",
	"EVENT_402": "Customs clearance delay.",
	"EVENT_403": "Customer moved.",
	"EVENT_404": "Delay in delivery due to external factors.",
	"EVENT_405": "Shipment damaged.",
	"EVENT_406": "Held by carrier.",
	"EVENT_407": "Customer refused delivery.",
	"EVENT_408": "Returning to seller.",
	"EVENT_409": "Lost by carrier.",
	"EVENT_411": "Paperwork received - did not receive shipment.",
	"EVENT_412": "Shipment received- did not receive paperwork.",
	"EVENT_413": "Held by carrier- customer refused shipment due to customs charges.",
	"EVENT_414": "Missorted by carrier.",
	"EVENT_415": "Received from prior carrier.",
	"EVENT_416": "Undeliverable.",
	"EVENT_417": "Shipment missorted.",
	"EVENT_418": "Shipment delayed.",
	"EVENT_419": "Address corrected - delivery rescheduled.",
}

// Description returns a human readable description of the event code and
// false if the code is not known.
func (e TrackingEvent) Description() (string, bool) {
	d, ok := eventDescriptions[e.EventCode]
	return d, ok
}

// WriteXML satisfies the xmlstream.WriterTo interface.
func (e *TrackingEvent) WriteXML(w xmlstream.TokenWriter) (int, error) {
	return encode.Nodes{
		encode.OptionalTime("EventDate", e.EventDate),
		encode.OptionalRecord("EventAddress", e.EventAddress),
		encode.Elem("EventCode").Text(e.EventCode),
	}.WriteXML(w)
}

// UnmarshalXMLStream satisfies the decode.Unmarshaler interface.
func (e *TrackingEvent) UnmarshalXMLStream(c *decode.Cursor) error {
	return trackingEventTable.Fold(c, e)
}

var trackingEventTable = decode.Table[TrackingEvent]{
	"EventDate": func(c *decode.Cursor, e *TrackingEvent) (err error) {
		e.EventDate, err = decode.Some(decode.Time(c))
		return err
	},
	"EventAddress": func(c *decode.Cursor, e *TrackingEvent) (err error) {
		e.EventAddress, err = decode.Some(decode.Record[TrackingAddress](c))
		return err
	},
	"EventCode": func(c *decode.Cursor, e *TrackingEvent) (err error) {
		e.EventCode, err = decode.Characters(c)
		return err
	},
}

// PackageTrackingDetails is the delivery status and tracking history of a
// package.
type PackageTrackingDetails struct {
	PackageNumber        string           `json:"package_number"`
	TrackingNumber       *string          `json:"tracking_number,omitempty"`
	CarrierCode          *string          `json:"carrier_code,omitempty"`
	CarrierPhoneNumber   *string          `json:"carrier_phone_number,omitempty"`
	CarrierURL           *string          `json:"carrier_url,omitempty"`
	ShipDate             *time.Time       `json:"ship_date,omitempty"`
	ShipToAddress        *TrackingAddress `json:"ship_to_address,omitempty"`
	CurrentStatus        PackageStatus    `json:"current_status"`
	SignedForBy          *string          `json:"signed_for_by,omitempty"`
	EstimatedArrivalDate *time.Time       `json:"estimated_arrival_date,omitempty"`
	TrackingEvents       []TrackingEvent  `json:"tracking_events"`

	// AdditionalLocationInfo is extra information about where the package was
	// left, for example "FRONT_DOOR".
	AdditionalLocationInfo *string `json:"additional_location_info,omitempty"`
}

// UnmarshalXMLStream satisfies the decode.Unmarshaler interface.
func (d *PackageTrackingDetails) UnmarshalXMLStream(c *decode.Cursor) error {
	return trackingDetailsTable.Fold(c, d)
}

var trackingDetailsTable = decode.Table[PackageTrackingDetails]{
	"PackageNumber": func(c *decode.Cursor, d *PackageTrackingDetails) (err error) {
		d.PackageNumber, err = decode.Characters(c)
		return err
	},
	"TrackingNumber": func(c *decode.Cursor, d *PackageTrackingDetails) (err error) {
		d.TrackingNumber, err = decode.Some(decode.Characters(c))
		return err
	},
	"CarrierCode": func(c *decode.Cursor, d *PackageTrackingDetails) (err error) {
		d.CarrierCode, err = decode.Some(decode.Characters(c))
		return err
	},
	"CarrierPhoneNumber": func(c *decode.Cursor, d *PackageTrackingDetails) (err error) {
		d.CarrierPhoneNumber, err = decode.Some(decode.Characters(c))
		return err
	},
	"CarrierURL": func(c *decode.Cursor, d *PackageTrackingDetails) (err error) {
		d.CarrierURL, err = decode.Some(decode.Characters(c))
		return err
	},
	"ShipDate": func(c *decode.Cursor, d *PackageTrackingDetails) (err error) {
		d.ShipDate, err = decode.Some(decode.Time(c))
		return err
	},
	"ShipToAddress": func(c *decode.Cursor, d *PackageTrackingDetails) (err error) {
		d.ShipToAddress, err = decode.Some(decode.Record[TrackingAddress](c))
		return err
	},
	"CurrentStatus": func(c *decode.Cursor, d *PackageTrackingDetails) (err error) {
		d.CurrentStatus, err = decode.Text[PackageStatus](c)
		return err
	},
	"SignedForBy": func(c *decode.Cursor, d *PackageTrackingDetails) (err error) {
		d.SignedForBy, err = decode.Some(decode.Characters(c))
		return err
	},
	"EstimatedArrivalDate": func(c *decode.Cursor, d *PackageTrackingDetails) (err error) {
		d.EstimatedArrivalDate, err = decode.Some(decode.Time(c))
		return err
	},
	"TrackingEvents": func(c *decode.Cursor, d *PackageTrackingDetails) (err error) {
		d.TrackingEvents, err = decode.List(c, decode.Record[TrackingEvent, *TrackingEvent])
		return err
	},
	"AdditionalLocationInfo": func(c *decode.Cursor, d *PackageTrackingDetails) (err error) {
		d.AdditionalLocationInfo, err = decode.Some(decode.Characters(c))
		return err
	},
}
