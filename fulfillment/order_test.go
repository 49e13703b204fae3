// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package fulfillment_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Ventmere/mws-go/decode"
	"github.com/Ventmere/mws-go/fulfillment"
	"github.com/Ventmere/mws-go/internal/xmltest"
)

func TestDecodeDestinationAddress(t *testing.T) {
	const in = `
        <PhoneNumber>(111) 222-3333</PhoneNumber>
        <City>DORADO</City>
        <CountryCode>US</CountryCode>
        <PostalCode>888888</PostalCode>
        <Name>Foo Bar</Name>
        <StateOrProvinceCode>CA</StateOrProvinceCode>
        <Line3/>
        <Line2/>
        <DistrictOrCounty/>
        <Line1>1818 DRIFTWOOD CIRCLE</Line1>
`
	want := fulfillment.DestinationAddress{
		PhoneNumber:         "(111) 222-3333",
		City:                "DORADO",
		CountryCode:         "US",
		PostalCode:          "888888",
		Name:                "Foo Bar",
		StateOrProvinceCode: "CA",
		Line1:               "1818 DRIFTWOOD CIRCLE",
	}
	got := decodeFragment[fulfillment.DestinationAddress](t, in)
	if got != want {
		t.Errorf("unexpected address:\nwant=%+v,\n got=%+v", want, got)
	}
}

func TestDecodeFulfillmentOrder(t *testing.T) {
	const in = `
        <SellerFulfillmentOrderId>11111111</SellerFulfillmentOrderId>
        <DestinationAddress>
          <PhoneNumber>22222222</PhoneNumber>
          <City>City Name</City>
          <CountryCode>US</CountryCode>
          <PostalCode>333333</PostalCode>
          <Name>Foo Bar</Name>
          <StateOrProvinceCode>TX</StateOrProvinceCode>
          <Line3/>
          <DistrictOrCounty/>
          <Line2/>
          <Line1>2907 Switch Case St</Line1>
        </DestinationAddress>
        <DisplayableOrderDateTime>2017-12-11T08:00:00Z</DisplayableOrderDateTime>
        <ShippingSpeedCategory>Expedited</ShippingSpeedCategory>
        <FulfillmentMethod>Consumer</FulfillmentMethod>
        <FulfillmentOrderStatus>COMPLETE</FulfillmentOrderStatus>
        <FulfillmentPolicy>FillOrKill</FulfillmentPolicy>
        <StatusUpdatedDateTime>2017-12-12T10:27:43Z</StatusUpdatedDateTime>
        <MarketplaceId>ATVPDKIKX0DER</MarketplaceId>
        <ReceivedDateTime>2017-12-13T10:27:43Z</ReceivedDateTime>
        <FulfillmentAction>Ship</FulfillmentAction>
        <NotificationEmailList>
          <member>hello@ventmere.com</member>
        </NotificationEmailList>
        <DisplayableOrderId>55555555</DisplayableOrderId>
        <DisplayableOrderComment>Thank you for your order!</DisplayableOrderComment>
`
	want := fulfillment.FulfillmentOrder{
		SellerFulfillmentOrderID: "11111111",
		DestinationAddress: fulfillment.DestinationAddress{
			PhoneNumber:         "22222222",
			City:                "City Name",
			CountryCode:         "US",
			PostalCode:          "333333",
			Name:                "Foo Bar",
			StateOrProvinceCode: "TX",
			Line1:               "2907 Switch Case St",
		},
		DisplayableOrderDateTime: date(2017, time.December, 11, 8, 0, 0),
		ShippingSpeedCategory:    "Expedited",
		FulfillmentMethod:        "Consumer",
		FulfillmentOrderStatus:   fulfillment.OrderComplete,
		StatusUpdatedDateTime:    date(2017, time.December, 12, 10, 27, 43),
		FulfillmentPolicy:        fulfillment.FillOrKill,
		ReceivedDateTime:         date(2017, time.December, 13, 10, 27, 43),
		DisplayableOrderID:       "55555555",
		DisplayableOrderComment:  "Thank you for your order!",
		MarketplaceID:            strPtr("ATVPDKIKX0DER"),
		FulfillmentAction:        strPtr("Ship"),
		NotificationEmailList:    []string{"hello@ventmere.com"},
	}
	got := decodeFragment[fulfillment.FulfillmentOrder](t, in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected order:\nwant=%+v,\n got=%+v", want, got)
	}
}

func TestDecodeFulfillmentOrderItem(t *testing.T) {
	const in = `
        <SellerSKU>sku-1</SellerSKU>
        <SellerFulfillmentOrderItemId>item-1</SellerFulfillmentOrderItemId>
        <Quantity>3</Quantity>
        <GiftMessage/>
        <CancelledQuantity>1</CancelledQuantity>
        <UnfulfillableQuantity>0</UnfulfillableQuantity>
        <EstimatedShipDateTime>2017-12-01T12:00:00Z</EstimatedShipDateTime>
        <EstimatedArrivalDateTime>2017-12-03T04:00:00Z</EstimatedArrivalDateTime>
        <PerUnitDeclaredValue>
          <CurrencyCode>USD</CurrencyCode>
          <Value>19.99</Value>
        </PerUnitDeclaredValue>
        <PerUnitTax/>
`
	want := fulfillment.FulfillmentOrderItem{
		SellerSKU:                    "sku-1",
		SellerFulfillmentOrderItemID: "item-1",
		Quantity:                     3,
		GiftMessage:                  strPtr(""),
		CancelledQuantity:            1,
		EstimatedShipDateTime:        date(2017, time.December, 1, 12, 0, 0),
		EstimatedArrivalDateTime:     date(2017, time.December, 3, 4, 0, 0),
		PerUnitDeclaredValue:         &fulfillment.Currency{CurrencyCode: "USD", Value: "19.99"},
		PerUnitTax:                   &fulfillment.Currency{},
	}
	got := decodeFragment[fulfillment.FulfillmentOrderItem](t, in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected item:\nwant=%+v,\n got=%+v", want, got)
	}
}

func TestDecodeFulfillmentOrderInvalidStatus(t *testing.T) {
	const in = `<FulfillmentOrderStatus>SHIPPED</FulfillmentOrderStatus>`
	_, err := decode.Record[fulfillment.FulfillmentOrder](decode.NewReader(strings.NewReader(in)))
	if !errors.Is(err, decode.ErrParseValue) {
		t.Fatalf("unexpected error: want=%v, got=%v", decode.ErrParseValue, err)
	}
}

var orderStreamTestCases = []xmltest.StreamTestCase{
	0: {
		Value: &fulfillment.DestinationAddress{
			Name:                "Foo Bar",
			Line1:               "1818 DRIFTWOOD CIRCLE",
			City:                "DORADO",
			StateOrProvinceCode: "CA",
			CountryCode:         "US",
			PostalCode:          "888888",
			PhoneNumber:         "(111) 222-3333",
		},
		XML: `<Name>Foo Bar</Name><Line1>1818 DRIFTWOOD CIRCLE</Line1><Line2></Line2><Line3></Line3>` +
			`<DistrictOrCounty></DistrictOrCounty><City>DORADO</City><StateOrProvinceCode>CA</StateOrProvinceCode>` +
			`<CountryCode>US</CountryCode><PostalCode>888888</PostalCode><PhoneNumber>(111) 222-3333</PhoneNumber>`,
	},
	1: {
		Value: &fulfillment.Currency{CurrencyCode: "JPY", Value: "1200"},
		XML:   `<CurrencyCode>JPY</CurrencyCode><Value>1200</Value>`,
	},
	2: {
		NoMarshal: true,
		Value:     &fulfillment.Currency{Value: "1.00"},
		XML:       `<Value>1.00</Value><Unknown><Value>2.00</Value></Unknown>`,
	},
}

func TestOrderStream(t *testing.T) {
	xmltest.RunStreamTests(t, orderStreamTestCases)
}
