// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorcode

// Messages lists the messages to combine into one grid.  A nil field
// means no layer of that kind.
type Messages struct {
	QR    *string `json:"qr,omitempty"`
	Block *string `json:"block,omitempty"`
	Steg  *string `json:"steg,omitempty"`

	// Dimension hints for the layer that holds the others, when it is
	// a block or steganographic layer.  Zero means unconstrained.
	Rows int `json:"rows,omitempty"`
	Cols int `json:"cols,omitempty"`
}

// Assemble builds a layer for each message in m and composes them.
//
// A QR layer receives the block layer, then the steganographic one.
// Without QR, the block layer receives the steganographic layer.
// Otherwise the steganographic layer stands alone.  Assemble returns
// the receiving layer and the outcome of each composition; a message
// skipped for capacity is reported there, not as an error.
func Assemble(m *Messages) (*Layer, []Outcome, error) {
	if m.QR == nil && m.Block == nil && m.Steg == nil {
		return nil, nil, ErrNoMessages
	}
	var sc, bc, qc *Layer
	var err error
	if m.Steg != nil {
		rows, cols := 0, 0
		if m.QR == nil && m.Block == nil {
			rows, cols = m.Rows, m.Cols
		}
		if sc, err = NewSteg(*m.Steg, rows, cols); err != nil {
			return nil, nil, err
		}
	}
	if m.Block != nil {
		rows, cols := 0, 0
		if m.QR == nil {
			rows, cols = m.Rows, m.Cols
		}
		if bc, err = NewBlock(*m.Block, rows, cols); err != nil {
			return nil, nil, err
		}
	}
	if m.QR != nil {
		if qc, err = NewQR(*m.QR); err != nil {
			return nil, nil, err
		}
	}

	var dst *Layer
	var src []*Layer
	switch {
	case qc != nil:
		dst, src = qc, []*Layer{bc, sc}
	case bc != nil:
		dst, src = bc, []*Layer{sc}
	default:
		dst = sc
	}
	var out []Outcome
	for _, s := range src {
		if s == nil {
			continue
		}
		o, err := dst.Compose(s)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, o)
	}
	return dst, out, nil
}
