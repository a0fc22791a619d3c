// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg writes colour grids as SVG images and reads them back.
//
// Every set cell becomes a <rect> carrying its colour in the fill
// attribute and its tag ("light" or "dark") in a desc attribute.
// Rects are written in row-major order and Decode returns them in
// file order, so a file written by Encode decodes in grid order.
package svg // import "github.com/unixdj/colorcode/svg"

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/unixdj/colorcode"
)

var ErrArgs = errors.New("svg: invalid arguments")

// DefaultModuleSize is the side of a cell in user units.
const DefaultModuleSize = 10

// Options control Encode.  A nil *Options means the defaults.
type Options struct {
	ModuleSize  int  // side of a cell; 0 means DefaultModuleSize
	BoundingBox bool // outline the grid
}

// A FillError reports a rect whose fill is not a #RRGGBB colour.
type FillError string

func (e FillError) Error() string {
	return fmt.Sprintf("svg: bad fill %q", string(e))
}

// Encode writes g to w as an SVG image, with every rect tagged tag.
func Encode(w io.Writer, g *colorcode.Grid, tag colorcode.Tag, opt *Options) error {
	if w == nil || g == nil {
		return ErrArgs
	}
	siz := DefaultModuleSize
	box := false
	if opt != nil {
		if opt.ModuleSize < 0 {
			return ErrArgs
		}
		if opt.ModuleSize != 0 {
			siz = opt.ModuleSize
		}
		box = opt.BoundingBox
	}
	b := bufio.NewWriter(w)
	width, height := g.Cols()*siz, g.Rows()*siz
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`,
		width, height)
	desc := ""
	if tag != colorcode.Untagged {
		desc = ` desc="` + tag.String() + `"`
	}
	g.Each(func(c colorcode.Coord, col colorcode.Color, ok bool) bool {
		if ok {
			fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" fill="#%s"%s/>`,
				c.Col*siz, c.Row*siz, siz, siz, col.Hex(), desc)
		}
		return true
	})
	if box {
		fmt.Fprintf(b, `<rect x="0" y="0" width="%d" height="%d" stroke="black" fill-opacity="0"/>`,
			width, height)
	}
	b.WriteString("</svg>")
	return b.Flush()
}

// Decode reads an SVG image and returns the colours of its rects in
// file order, tagged from their desc attributes.  Rects without a fill
// attribute, such as a bounding box, are skipped.
func Decode(r io.Reader) ([]colorcode.Sample, error) {
	d := xml.NewDecoder(r)
	var s []colorcode.Sample
	for {
		t, err := d.Token()
		if err == io.EOF {
			return s, nil
		}
		if err != nil {
			return nil, fmt.Errorf("svg: %w", err)
		}
		e, ok := t.(xml.StartElement)
		if !ok || e.Name.Local != "rect" {
			continue
		}
		var fill, desc string
		hasFill := false
		for _, a := range e.Attr {
			switch a.Name.Local {
			case "fill":
				fill, hasFill = a.Value, true
			case "desc":
				desc = a.Value
			}
		}
		if !hasFill {
			continue
		}
		c, err := parseFill(fill)
		if err != nil {
			return nil, err
		}
		s = append(s, colorcode.Sample{Color: c, Tag: colorcode.ParseTag(desc)})
	}
}

func parseFill(s string) (colorcode.Color, error) {
	h, ok := strings.CutPrefix(s, "#")
	if !ok || len(h) < 6 {
		return 0, FillError(s)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, FillError(s)
	}
	return colorcode.Color(n), nil
}
