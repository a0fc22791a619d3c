// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package colorcode encodes text messages into grids of coloured cells
and decodes them back.

A grid can carry three independent messages at once:

  - a QR code, read by any QR scanner;
  - a block code, three characters per cell, one per RGB channel,
    stored as twice the character value;
  - a steganographic code in the least significant bit of every
    channel, seven bits per character.

Block channels are even, so the LSB is always free for the
steganographic code.  Block colours composed onto a QR code are
complemented (XOR 0xFEFEFE) to keep the dark modules dark; the
complement does not touch channel LSBs either.
*/
package colorcode // import "github.com/unixdj/colorcode"

import (
	"fmt"

	"rsc.io/qr"
)

// NewQR returns a QR layer for message, encoded at error correction
// level L.  Dark modules are set to Color(0), light modules are left
// unset and never receive colour.
func NewQR(message string) (*Layer, error) {
	if err := validate(message); err != nil {
		return nil, err
	}
	c, err := qr.Encode(message, qr.L)
	if err != nil {
		return nil, fmt.Errorf("colorcode: %w", err)
	}
	siz := c.Size
	l := &Layer{kind: QR, msg: message, grid: NewGrid(siz, siz)}
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			if c.Black(x, y) {
				l.grid.Fill(Coord{y, x}, 0)
			}
		}
	}
	return l, nil
}
