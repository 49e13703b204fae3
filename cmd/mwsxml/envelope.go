// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/Ventmere/mws-go/encode"
	"github.com/Ventmere/mws-go/feeds"
	"gopkg.in/yaml.v3"
)

// inventoryFile is the YAML input of the envelope command:
//
//	merchant_id: A1B2C3
//	messages:
//	- sku: SKU-1
//	  quantity: 10
//	  fulfillment_latency: 2
//	  operation: Update
type inventoryFile struct {
	MerchantID string             `yaml:"merchant_id"`
	Messages   []inventoryMessage `yaml:"messages"`
}

type inventoryMessage struct {
	feeds.InventoryMessage `yaml:",inline"`
	Operation              *feeds.OperationType `yaml:"operation"`
}

var (
	errNoMerchant   = errors.New("no merchant identifier, use -merchant or set $MWS_MERCHANT_ID")
	errReadMessages = errors.New("error reading messages")
)

func (c command) envelope(args []string) error {
	merchant := c.cfg.MerchantID
	flags := flag.NewFlagSet("envelope", flag.ContinueOnError)
	flags.SetOutput(c.stderr)
	flags.StringVar(&merchant, "merchant", merchant, "The merchant identifier, overrides $MWS_MERCHANT_ID and the input file.")
	if err := flags.Parse(args); err != nil {
		return err
	}

	in, err := c.open(flags.Args())
	if err != nil {
		return err
	}
	defer in.Close()

	var file inventoryFile
	d := yaml.NewDecoder(in)
	d.KnownFields(true)
	if err := d.Decode(&file); err != nil {
		return fmt.Errorf("%w: %w", errReadMessages, err)
	}
	if merchant == "" {
		merchant = file.MerchantID
	}
	if merchant == "" {
		return errNoMerchant
	}

	e := feeds.NewEnvelope[feeds.InventoryMessage](merchant)
	for _, m := range file.Messages {
		e.AddMessage(m.InventoryMessage, m.Operation)
	}
	c.logger.Printf("writing envelope with %d messages for %s", len(file.Messages), merchant)

	opts := []encode.Option{encode.Logger(c.logger)}
	if c.cfg.Indent {
		opts = append(opts, encode.Indent("", "  "))
	}
	if err := encode.Marshal(c.stdout, e, opts...); err != nil {
		return fmt.Errorf("error writing envelope: %w", err)
	}
	_, err = fmt.Fprintln(c.stdout)
	return err
}
