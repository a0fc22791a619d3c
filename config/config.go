// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config reads message configurations for colorcode.Assemble.
//
// A configuration is a JSON object with up to three string fields,
// "qr", "block" and "steg", and optional integer dimension hints
// "rows" and "cols":
//
//	{"qr": "G4G16#001", "block": "Thank you", "steg": "hidden", "cols": 20}
package config // import "github.com/unixdj/colorcode/config"

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/unixdj/colorcode"
)

var ErrTrailing = errors.New("config: trailing data after object")

// Load decodes a configuration from r.  Unknown fields are an error.
// Load does not require any message to be present; Assemble does.
func Load(r io.Reader) (*colorcode.Messages, error) {
	d := json.NewDecoder(r)
	d.DisallowUnknownFields()
	var m colorcode.Messages
	if err := d.Decode(&m); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if d.More() {
		return nil, ErrTrailing
	}
	if m.Rows < 0 || m.Cols < 0 {
		return nil, fmt.Errorf("config: negative dimension %d x %d", m.Rows, m.Cols)
	}
	return &m, nil
}

// LoadFile decodes the configuration in the named file.
func LoadFile(name string) (*colorcode.Messages, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Load(f)
}
