// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package encode writes typed records as XML documents.
//
// Records describe their encoding by implementing xmlstream.WriterTo, normally
// by building a tree of nodes with the functions in this package and writing
// it:
//
//	func (m InventoryMessage) WriteXML(w xmlstream.TokenWriter) (int, error) {
//		return encode.Nodes{
//			encode.Elem("SKU").Text(m.SKU),
//			encode.Elem("Quantity").Int(m.Quantity),
//			encode.OptionalText("Note", m.Note),
//		}.WriteXML(w)
//	}
//
// Nodes are written in the order they are declared so the element order of the
// output is fixed by the code and does not depend on map iteration or
// reflection.
// Optional fields that are nil are omitted entirely.
//
// A Writer serializes the resulting tokens, keeping track of namespace
// prefixes and writing the XML declaration, and Marshal ties the two together.
package encode // import "github.com/Ventmere/mws-go/encode"
