// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package feeds

import (
	"github.com/Ventmere/mws-go/decode"
	"github.com/Ventmere/mws-go/encode"
	"mellium.im/xmlstream"
)

// InventoryMessage updates the available quantity of a SKU.
type InventoryMessage struct {
	SKU                string `json:"sku" yaml:"sku"`
	Quantity           int    `json:"quantity" yaml:"quantity"`
	FulfillmentLatency int    `json:"fulfillment_latency" yaml:"fulfillment_latency"`
}

// MessageType returns "Inventory".
func (InventoryMessage) MessageType() string {
	return "Inventory"
}

// WriteXML satisfies the xmlstream.WriterTo interface.
// It writes the contents of the message, the Message element itself is written
// by the envelope.
func (m InventoryMessage) WriteXML(w xmlstream.TokenWriter) (int, error) {
	return encode.Nodes{
		encode.Elem("SKU").Text(m.SKU),
		encode.Elem("Quantity").Int(m.Quantity),
		encode.Elem("FulfillmentLatency").Int(m.FulfillmentLatency),
	}.WriteXML(w)
}

// UnmarshalXMLStream satisfies the decode.Unmarshaler interface.
func (m *InventoryMessage) UnmarshalXMLStream(c *decode.Cursor) error {
	return inventoryTable.Fold(c, m)
}

var inventoryTable = decode.Table[InventoryMessage]{
	"SKU": func(c *decode.Cursor, m *InventoryMessage) (err error) {
		m.SKU, err = decode.Characters(c)
		return err
	},
	"Quantity": func(c *decode.Cursor, m *InventoryMessage) (err error) {
		m.Quantity, err = decode.Int(c)
		return err
	},
	"FulfillmentLatency": func(c *decode.Cursor, m *InventoryMessage) (err error) {
		m.FulfillmentLatency, err = decode.Int(c)
		return err
	},
}
