// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type config struct {
	MerchantID string `env:"MWS_MERCHANT_ID"`
	Indent     bool   `env:"MWS_XML_INDENT" envDefault:"true"`
	Verbose    bool   `env:"MWS_XML_VERBOSE"`
}

var errParseEnv = errors.New("parse env")

func loadConfig(environ map[string]string) (config, error) {
	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return cfg, fmt.Errorf("%w: %w", errParseEnv, err)
	}
	return cfg, nil
}
