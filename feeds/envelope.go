// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package feeds

import (
	"github.com/Ventmere/mws-go/decode"
	"github.com/Ventmere/mws-go/encode"
	"mellium.im/xmlstream"
)

const (
	// DocumentVersion is the version written in the header of every envelope.
	DocumentVersion = "1.01"

	nsXSI          = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocation = "amznenvelope.xsd"
)

// Message is the content of a single message in a feed envelope.
// All messages in an envelope have the same type.
type Message interface {
	xmlstream.WriterTo

	// MessageType is the value written to the envelope's MessageType element.
	// It is called on the zero value.
	MessageType() string
}

// EnvelopeMessage is a message and the operation to perform with it.
type EnvelopeMessage[M Message] struct {
	Data          M
	OperationType *OperationType
}

// Envelope is an AmazonEnvelope document, the container for the messages of a
// feed.
type Envelope[M Message] struct {
	MerchantIdentifier string
	messages           []EnvelopeMessage[M]
}

// NewEnvelope returns an empty envelope for the given merchant.
func NewEnvelope[M Message](merchantID string) *Envelope[M] {
	return &Envelope[M]{MerchantIdentifier: merchantID}
}

// AddMessage appends a message to the envelope and returns the envelope so that
// calls can be chained.
// The operation type is optional.
func (e *Envelope[M]) AddMessage(m M, op *OperationType) *Envelope[M] {
	e.messages = append(e.messages, EnvelopeMessage[M]{
		Data:          m,
		OperationType: op,
	})
	return e
}

// Messages returns the messages in the order they were added.
func (e *Envelope[M]) Messages() []EnvelopeMessage[M] {
	return e.messages
}

// WriteXML satisfies the xmlstream.WriterTo interface.
// It writes the entire AmazonEnvelope element.
//
// Operation types are not written.
func (e *Envelope[M]) WriteXML(w xmlstream.TokenWriter) (int, error) {
	var zero M
	return encode.Elem("AmazonEnvelope").
		NS("xsi", nsXSI).
		AttrNS(nsXSI, "noNamespaceSchemaLocation", schemaLocation).
		Append(
			encode.Elem("Header").Append(
				encode.Elem("DocumentVersion").Text(DocumentVersion),
				encode.Elem("MerchantIdentifier").Text(e.MerchantIdentifier),
			),
			encode.Elem("MessageType").Text(zero.MessageType()),
			encode.Elem("Messages").Append(encode.Func(func(w xmlstream.TokenWriter) error {
				for _, m := range e.messages {
					if _, err := encode.Elem("Message").Append(m.Data).WriteXML(w); err != nil {
						return err
					}
				}
				return nil
			})),
		).WriteXML(w)
}

var envelopeNames = decode.Names{"AmazonEnvelope"}

// DecodeEnvelope reads an AmazonEnvelope document.
// The operation type of the decoded messages is always nil.
func DecodeEnvelope[M Message, PM interface {
	*M
	decode.Unmarshaler
}](c *decode.Cursor) (*Envelope[M], error) {
	if err := decode.StartDocument(c); err != nil {
		return nil, err
	}
	return decode.Element(c, envelopeNames, func(c *decode.Cursor) (*Envelope[M], error) {
		return decode.FoldElements(c, &Envelope[M]{}, func(c *decode.Cursor, e **Envelope[M]) error {
			switch c.LocalName() {
			case "Header":
				return decode.Table[Envelope[M]]{
					"MerchantIdentifier": func(c *decode.Cursor, e *Envelope[M]) (err error) {
						e.MerchantIdentifier, err = decode.Characters(c)
						return err
					},
				}.Fold(c, *e)
			case "Messages":
				msgs, err := decode.ListOf(c, "Message", decode.Record[M, PM])
				for _, m := range msgs {
					(*e).AddMessage(m, nil)
				}
				return err
			}
			return nil
		})
	})
}
