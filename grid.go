// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorcode

// A Coord addresses a grid cell by row and column.
type Coord struct {
	Row, Col int
}

// Add returns the component-wise sum of c and d.
func (c Coord) Add(d Coord) Coord {
	return Coord{c.Row + d.Row, c.Col + d.Col}
}

// A Grid is a fixed size matrix of optional colours.
//
// Cells are linearised in row-major order: columns increase within a
// row, then rows increase.  Encoding assigns colours in this order and
// decoding reads them back in it.  A cell, once set, stays set.
type Grid struct {
	rows, cols int
	cells      []Color
	set        []bool
}

// NewGrid returns a grid of rows×cols unset cells.
func NewGrid(rows, cols int) *Grid {
	n := rows * cols
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Color, n),
		set:   make([]bool, n),
	}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Area returns the number of cells in g.
func (g *Grid) Area() int { return g.rows * g.cols }

// Filled returns the number of set cells in g.
func (g *Grid) Filled() int {
	n := 0
	for _, v := range g.set {
		if v {
			n++
		}
	}
	return n
}

// Coord returns the coordinates of the cell at linear index i.
func (g *Grid) Coord(i int) Coord {
	return Coord{i / g.cols, i % g.cols}
}

// Index returns the linear index of the cell at c.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// In reports whether c lies within g.
func (g *Grid) In(c Coord) bool {
	return 0 <= c.Row && c.Row < g.rows && 0 <= c.Col && c.Col < g.cols
}

// At returns the colour at c and whether the cell is set.
func (g *Grid) At(c Coord) (Color, bool) {
	i := g.Index(c)
	return g.cells[i], g.set[i]
}

// Cell returns the colour at linear index i and whether it is set.
func (g *Grid) Cell(i int) (Color, bool) {
	return g.cells[i], g.set[i]
}

// Has reports whether the cell at c is set.
func (g *Grid) Has(c Coord) bool { return g.set[g.Index(c)] }

// Fill sets the cell at c to col.
func (g *Grid) Fill(c Coord, col Color) { g.fill(g.Index(c), col) }

func (g *Grid) fill(i int, col Color) {
	g.cells[i] = col
	g.set[i] = true
}

// Each calls f for every cell of g in linear order, set or not.
// Each stops early if f returns false.
func (g *Grid) Each(f func(c Coord, col Color, ok bool) bool) {
	for i := range g.cells {
		if !f(g.Coord(i), g.cells[i], g.set[i]) {
			return
		}
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: append([]Color(nil), g.cells...),
		set:   append([]bool(nil), g.set...),
	}
}

// Equal reports whether g and h have the same dimensions, the same
// set cells and the same colours in them.
func (g *Grid) Equal(h *Grid) bool {
	if g.rows != h.rows || g.cols != h.cols {
		return false
	}
	for i := range g.cells {
		if g.set[i] != h.set[i] || g.set[i] && g.cells[i] != h.cells[i] {
			return false
		}
	}
	return true
}

// cursor is a position in the linear cell sequence of a grid.
type cursor struct {
	g *Grid
	i int
}

// exhausted reports whether every cell has been consumed.
func (c *cursor) exhausted() bool { return c.i >= len(c.g.cells) }

// next returns the current cell and advances.  It must not be called
// on an exhausted cursor.
func (c *cursor) next() (Color, bool) {
	col, ok := c.g.cells[c.i], c.g.set[c.i]
	c.i++
	return col, ok
}
