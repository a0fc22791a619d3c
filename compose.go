// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorcode

import (
	"fmt"

	"go.uber.org/zap"
)

// A Status is the result of a composition.
type Status int

const (
	Composed        Status = iota // colours added to the target
	CapacitySkipped               // message too long, target unchanged
)

func (s Status) String() string {
	if s == CapacitySkipped {
		return "capacity skipped"
	}
	return "composed"
}

// An Outcome describes one call to Compose.
type Outcome struct {
	Source Kind   // kind of the source layer
	Status Status // what happened
	Len    int    // source message length
	Max    int    // target capacity for the source kind
	Cells  int    // target cells written
}

func (o Outcome) String() string {
	if o.Status == CapacitySkipped {
		return fmt.Sprintf("%v: message is too long; currently %d, max length is %d; skipping",
			o.Source, o.Len, o.Max)
	}
	return fmt.Sprintf("%v: message max: %d, currently %d", o.Source, o.Max, o.Len)
}

// Compose adds the colours of src to the grid of l.
//
// Block colours are complemented before adding, steganographic
// colours are added as they are.  A QR layer cannot be a source;
// Compose returns ErrSource for it.
//
// If src's message is longer than l.Capacity(src.Kind()), l is left
// untouched and the outcome has Status CapacitySkipped.  Otherwise the
// cells of l are walked in linear order.  Cells l skips (unset cells
// of a QR layer) do not consume source cells.  The walk stops at the
// end of src's grid or at its first unset cell.
func (l *Layer) Compose(src *Layer) (Outcome, error) {
	tf := kinds[src.kind].transform
	if tf == nil {
		return Outcome{Source: src.kind}, ErrSource
	}
	o := Outcome{
		Source: src.kind,
		Len:    len(src.msg),
		Max:    l.Capacity(src.kind),
	}
	log := Logger().With(zap.Stringer("target", l.kind),
		zap.Stringer("source", src.kind))
	if o.Len > o.Max {
		o.Status = CapacitySkipped
		log.Warn("message too long; skipping",
			zap.Int("len", o.Len), zap.Int("max", o.Max))
		return o, nil
	}
	sg := src.grid
	if src == l {
		sg = sg.Clone()
	}
	g := l.grid
	skip := kinds[l.kind].skipUnset
	cur := cursor{g: sg}
	for i := range g.cells {
		if skip && !g.set[i] {
			continue
		}
		if cur.exhausted() {
			break
		}
		c, ok := cur.next()
		if !ok {
			break
		}
		// unset cells hold 0, the additive identity
		g.fill(i, g.cells[i].Add(tf(c)))
		o.Cells++
	}
	l.composed = append(l.composed, src.kind)
	log.Info("composed", zap.Int("len", o.Len), zap.Int("max", o.Max),
		zap.Int("cells", o.Cells))
	return o, nil
}
