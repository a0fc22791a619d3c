// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorcode

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

var (
	ErrArgs       = errors.New("colorcode: invalid arguments")
	ErrLargeImage = errors.New("colorcode: image too large")
)

// Background is the colour of unset cells in raster images.
var Background = color.RGBA{0xff, 0xff, 0xff, 0xff}

// maxPixels limits raster image dimensions.
const maxPixels = 1 << 15

// gridImage displays a grid at one pixel per cell.
type gridImage struct {
	*Grid
}

func (g gridImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.cols, g.rows)
}

func (g gridImage) At(x, y int) color.Color {
	c := Coord{y, x}
	if !g.In(c) {
		return Background
	}
	if col, ok := g.Grid.At(c); ok {
		return col.RGBA()
	}
	return Background
}

func (g gridImage) ColorModel() color.Model {
	return color.RGBAModel
}

// checkScale reports whether g can be drawn at scale.
func (g *Grid) checkScale(scale int) error {
	if scale < 1 {
		return ErrArgs
	}
	if g.cols*scale > maxPixels || g.rows*scale > maxPixels {
		return ErrLargeImage
	}
	return nil
}

// Image returns an image of g with scale×scale pixels per cell.
// Colours are truncated to 24 bits; unset cells are Background.
func (g *Grid) Image(scale int) (image.Image, error) {
	if err := g.checkScale(scale); err != nil {
		return nil, err
	}
	src := gridImage{g}
	if scale == 1 {
		return src, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, g.cols*scale, g.rows*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// EncodePNG writes a PNG image of g with scale×scale pixels per cell
// to w.
func (g *Grid) EncodePNG(w io.Writer, scale int) error {
	if w == nil {
		return ErrArgs
	}
	m, err := g.Image(scale)
	if err != nil {
		return err
	}
	return png.Encode(w, m)
}
