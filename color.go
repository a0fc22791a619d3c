// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorcode

import (
	"fmt"
	"image/color"
)

// A Color is an RGB colour packed into an integer as R<<16 | G<<8 | B.
//
// Arithmetic is integer arithmetic on the packed value, not per
// channel.  A sum of colours may carry from one channel into the
// next, and may exceed 24 bits; neither is masked.
type Color uint32

// ComplementMask is XORed with a colour by Complement.  It leaves the
// least significant bit of every channel alone.
const ComplementMask Color = 0xFEFEFE

// FromChannels returns the colour with the given channel values.
// Channels are weighted positionally and not range checked.
func FromChannels(r, g, b int) Color {
	return Color(r*0x10000 + g*0x100 + b)
}

// Complement returns c XOR ComplementMask.  Complement is its own
// inverse.
func (c Color) Complement() Color { return c ^ ComplementMask }

// Add returns the integer sum of c and d.
func (c Color) Add(d Color) Color { return c + d }

// Channels returns the red, green and blue channels of the low 24
// bits of c.
func (c Color) Channels() (r, g, b byte) {
	return byte(c >> 16), byte(c >> 8), byte(c)
}

// Hex returns c as upper case hex digits, zero padded to 6.
func (c Color) Hex() string { return fmt.Sprintf("%06X", uint32(c)) }

// String returns c in #RRGGBB notation.
func (c Color) String() string { return "#" + c.Hex() }

// RGBA returns the low 24 bits of c as an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.Channels()
	return color.RGBA{r, g, b, 0xff}
}

// identity and complement are the colour transforms applied to
// composition sources.
func identity(c Color) Color   { return c }
func complement(c Color) Color { return c.Complement() }
