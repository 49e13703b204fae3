// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Ventmere/mws-go/decode"
	"github.com/Ventmere/mws-go/feeds"
	"github.com/Ventmere/mws-go/fulfillment"
	json "github.com/goccy/go-json"
)

type decodeFunc func(*decode.Cursor) (any, error)

func decoder[T any](f func(*decode.Cursor) (T, error)) decodeFunc {
	return func(c *decode.Cursor) (any, error) {
		return f(c)
	}
}

var documentTypes = map[string]decodeFunc{
	"submit-feed":             decoder(feeds.DecodeSubmitFeedResponse),
	"feed-submission-list":    decoder(feeds.DecodeGetFeedSubmissionListResponse),
	"inventory-envelope":      decoder(decodeInventoryEnvelope),
	"list-fulfillment-orders": decoder(fulfillment.DecodeListAllFulfillmentOrdersResponse),
	"get-fulfillment-order":   decoder(fulfillment.DecodeGetFulfillmentOrderResponse),
	"package-tracking":        decoder(fulfillment.DecodeGetPackageTrackingDetailsResponse),
}

type inventoryEnvelope struct {
	MerchantID string                   `json:"merchant_id"`
	Messages   []feeds.InventoryMessage `json:"messages"`
}

func decodeInventoryEnvelope(c *decode.Cursor) (inventoryEnvelope, error) {
	e, err := feeds.DecodeEnvelope[feeds.InventoryMessage](c)
	if err != nil {
		return inventoryEnvelope{}, err
	}
	out := inventoryEnvelope{
		MerchantID: e.MerchantIdentifier,
		Messages:   []feeds.InventoryMessage{},
	}
	for _, m := range e.Messages() {
		out.Messages = append(out.Messages, m.Data)
	}
	return out, nil
}

func documentTypeNames() string {
	names := make([]string, 0, len(documentTypes))
	for name := range documentTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func (c command) decode(args []string) error {
	var typ string
	flags := flag.NewFlagSet("decode", flag.ContinueOnError)
	flags.SetOutput(c.stderr)
	flags.StringVar(&typ, "type", typ, "The document type, one of: "+documentTypeNames()+".")
	if err := flags.Parse(args); err != nil {
		return err
	}
	f, ok := documentTypes[typ]
	if !ok {
		flags.Usage()
		return fmt.Errorf("%w: unknown document type %q", errUsage, typ)
	}

	in, err := c.open(flags.Args())
	if err != nil {
		return err
	}
	defer in.Close()

	v, err := f(decode.NewReader(in, decode.Logger(c.logger)))
	if err != nil {
		return fmt.Errorf("error decoding %s document: %w", typ, err)
	}

	var out []byte
	if c.cfg.Indent {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	out = append(out, '\n')
	_, err = c.stdout.Write(out)
	return err
}
