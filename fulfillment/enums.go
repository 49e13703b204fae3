// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package fulfillment

import (
	"fmt"
)

func parseEnum[T ~string](typ string, text []byte, known ...T) (T, error) {
	v := T(text)
	for _, k := range known {
		if v == k {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("fulfillment: unknown %s %q", typ, text)
}

// FulfillmentPolicy is the policy chosen when the fulfillment order was
// created.
type FulfillmentPolicy string

// A list of fulfillment policies.
const (
	FillOrKill       FulfillmentPolicy = "FillOrKill"
	FillAll          FulfillmentPolicy = "FillAll"
	FillAllAvailable FulfillmentPolicy = "FillAllAvailable"
)

// MarshalText implements encoding.TextMarshaler.
func (p FulfillmentPolicy) MarshalText() ([]byte, error) {
	return []byte(p), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Unknown policies are an error.
func (p *FulfillmentPolicy) UnmarshalText(text []byte) (err error) {
	*p, err = parseEnum("fulfillment policy", text, FillOrKill, FillAll, FillAllAvailable)
	return err
}

// FulfillmentOrderStatus is the current status of a fulfillment order.
type FulfillmentOrderStatus string

// A list of fulfillment order statuses.
const (
	OrderReceived           FulfillmentOrderStatus = "RECEIVED"
	OrderInvalid            FulfillmentOrderStatus = "INVALID"
	OrderPlanning           FulfillmentOrderStatus = "PLANNING"
	OrderProcessing         FulfillmentOrderStatus = "PROCESSING"
	OrderCancelled          FulfillmentOrderStatus = "CANCELLED"
	OrderComplete           FulfillmentOrderStatus = "COMPLETE"
	OrderCompletePartialled FulfillmentOrderStatus = "COMPLETE_PARTIALLED"
	OrderUnfulfillable      FulfillmentOrderStatus = "UNFULFILLABLE"
)

// MarshalText implements encoding.TextMarshaler.
func (s FulfillmentOrderStatus) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *FulfillmentOrderStatus) UnmarshalText(text []byte) (err error) {
	*s, err = parseEnum("fulfillment order status", text,
		OrderReceived,
		OrderInvalid,
		OrderPlanning,
		OrderProcessing,
		OrderCancelled,
		OrderComplete,
		OrderCompletePartialled,
		OrderUnfulfillable,
	)
	return err
}

// FulfillmentShipmentStatus is the current status of a shipment.
type FulfillmentShipmentStatus string

// A list of shipment statuses.
const (
	ShipmentPending              FulfillmentShipmentStatus = "PENDING"
	ShipmentShipped              FulfillmentShipmentStatus = "SHIPPED"
	ShipmentCancelledByFulfiller FulfillmentShipmentStatus = "CANCELLED_BY_FULFILLER"
	ShipmentCancelledBySeller    FulfillmentShipmentStatus = "CANCELLED_BY_SELLER"
)

// MarshalText implements encoding.TextMarshaler.
func (s FulfillmentShipmentStatus) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *FulfillmentShipmentStatus) UnmarshalText(text []byte) (err error) {
	*s, err = parseEnum("shipment status", text,
		ShipmentPending,
		ShipmentShipped,
		ShipmentCancelledByFulfiller,
		ShipmentCancelledBySeller,
	)
	return err
}

// PackageStatus is the current delivery status of a package.
type PackageStatus string

// A list of package statuses.
const (
	PackageInTransit          PackageStatus = "IN_TRANSIT"
	PackageDelivered          PackageStatus = "DELIVERED"
	PackageReturning          PackageStatus = "RETURNING"
	PackageReturned           PackageStatus = "RETURNED"
	PackageUndeliverable      PackageStatus = "UNDELIVERABLE"
	PackageDelayed            PackageStatus = "DELAYED"
	PackageAvailableForPickup PackageStatus = "AVAILABLE_FOR_PICKUP"
	PackageCustomerAction     PackageStatus = "CUSTOMER_ACTION"
)

// MarshalText implements encoding.TextMarshaler.
func (s PackageStatus) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PackageStatus) UnmarshalText(text []byte) (err error) {
	*s, err = parseEnum("package status", text,
		PackageInTransit,
		PackageDelivered,
		PackageReturning,
		PackageReturned,
		PackageUndeliverable,
		PackageDelayed,
		PackageAvailableForPickup,
		PackageCustomerAction,
	)
	return err
}
