// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"strings"

	"github.com/unixdj/colorcode"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// cellWidth is the number of terminal columns per cell.
const cellWidth = 2

var (
	cell     = strings.Repeat(" ", cellWidth)
	unsetSty = lipgloss.NewStyle().Background(lipgloss.Color("#FFFFFF"))
)

// terminal writes l to w as rows of coloured blocks, with a one cell
// quiet zone.  Only the low 24 bits of each colour are shown.
func terminal(l *colorcode.Layer, w io.Writer) error {
	grid := l.Grid()
	cols := grid.Cols() + 2
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil &&
			width < cols*cellWidth {
			g.log.Warn("terminal too narrow",
				zap.Int("width", width), zap.Int("need", cols*cellWidth))
		}
	}
	quiet := unsetSty.Render(strings.Repeat(cell, cols)) + "\n"
	var b strings.Builder
	b.WriteString(quiet)
	for y := 0; y < grid.Rows(); y++ {
		b.WriteString(unsetSty.Render(cell))
		for x := 0; x < grid.Cols(); x++ {
			sty := unsetSty
			if c, ok := grid.At(colorcode.Coord{Row: y, Col: x}); ok {
				sty = lipgloss.NewStyle().
					Background(lipgloss.Color((c & 0xFFFFFF).String()))
			}
			b.WriteString(sty.Render(cell))
		}
		b.WriteString(unsetSty.Render(cell))
		b.WriteByte('\n')
	}
	b.WriteString(quiet)
	_, err := io.WriteString(w, b.String())
	return err
}
