// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorcode

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePPM writes a binary Portable Pixel Map image of g with
// scale×scale pixels per cell to w, for use with netpbm.
func (g *Grid) EncodePPM(w io.Writer, scale int) error {
	if w == nil {
		return ErrArgs
	}
	if err := g.checkScale(scale); err != nil {
		return err
	}
	b := bufio.NewWriter(w)
	width := g.cols * scale
	if _, err := b.WriteString("P6\n" + strconv.Itoa(width) + " " +
		strconv.Itoa(g.rows*scale) + "\n255\n"); err != nil {
		return err
	}
	row := make([]byte, width*3)
	for y := 0; y < g.rows; y++ {
		p := row
		for x := 0; x < g.cols; x++ {
			c := Background
			if col, ok := g.Cell(y*g.cols + x); ok {
				c = col.RGBA()
			}
			for i := 0; i < scale; i++ {
				p[0], p[1], p[2] = c.R, c.G, c.B
				p = p[3:]
			}
		}
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}
