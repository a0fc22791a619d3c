// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorcode

import "testing"

func TestGrid(t *testing.T) {
	g := NewGrid(2, 3)
	if g.Area() != 6 || g.Filled() != 0 {
		t.Fatalf("area %d, filled %d", g.Area(), g.Filled())
	}
	for i := 0; i < g.Area(); i++ {
		c := g.Coord(i)
		if c != (Coord{i / 3, i % 3}) || g.Index(c) != i {
			t.Errorf("%d: coord %v, index %d", i, c, g.Index(c))
		}
	}
	if c := (Coord{1, 1}).Add(Coord{0, 1}); c != (Coord{1, 2}) {
		t.Errorf("Add = %v", c)
	}
	if g.In(Coord{2, 0}) || g.In(Coord{0, -1}) || !g.In(Coord{1, 2}) {
		t.Error("In")
	}
	h := g.Clone()
	g.Fill(Coord{1, 0}, 0)
	if !g.Has(Coord{1, 0}) || h.Has(Coord{1, 0}) {
		t.Error("clone shares cells")
	}
	if g.Equal(h) {
		t.Error("set black cell equals unset cell")
	}
	if c, ok := g.Cell(3); !ok || c != 0 {
		t.Errorf("Cell(3) = %v, %v", c, ok)
	}
	var order []int
	g.Each(func(c Coord, _ Color, _ bool) bool {
		order = append(order, g.Index(c))
		return len(order) < 4
	})
	if len(order) != 4 || order[3] != 3 {
		t.Errorf("Each order %v", order)
	}
}

func TestCursor(t *testing.T) {
	g := NewGrid(1, 3)
	g.Fill(Coord{0, 0}, 5)
	c := cursor{g: g}
	if v, ok := c.next(); !ok || v != 5 {
		t.Errorf("first = %v, %v", v, ok)
	}
	if _, ok := c.next(); ok {
		t.Error("second cell set")
	}
	c.next()
	if !c.exhausted() {
		t.Error("not exhausted")
	}
}
