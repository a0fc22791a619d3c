// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorcode

import (
	"errors"
	"strings"
	"testing"
)

func ptr(s string) *string { return &s }

func TestAssemble(t *testing.T) {
	const (
		q = "G4G16#042"
		b = "colored blocks carry three characters per cell"
		s = "hidden"
	)
	for _, tc := range []struct {
		m        Messages
		kind     Kind
		outcomes int
	}{
		{Messages{QR: ptr(q), Block: ptr(b), Steg: ptr(s)}, QR, 2},
		{Messages{QR: ptr(q), Block: ptr(b)}, QR, 1},
		{Messages{QR: ptr(q), Steg: ptr(s)}, QR, 1},
		{Messages{QR: ptr(q)}, QR, 0},
		{Messages{Block: ptr(b), Steg: ptr(s)}, Block, 1},
		{Messages{Block: ptr(b)}, Block, 0},
		{Messages{Steg: ptr(s)}, Steg, 0},
	} {
		l, out, err := Assemble(&tc.m)
		if err != nil {
			t.Errorf("%v: %v", tc.kind, err)
			continue
		}
		if l.Kind() != tc.kind || len(out) != tc.outcomes {
			t.Errorf("%v: got %v with %d outcomes", tc.kind, l.Kind(), len(out))
			continue
		}
		for _, o := range out {
			if o.Status != Composed {
				t.Errorf("%v: %v", tc.kind, o)
			}
		}
		if tc.kind == QR {
			continue
		}
		m := Decode(l.Samples(), nil)
		if tc.m.Block != nil && !strings.HasPrefix(m.Block, b) {
			t.Errorf("%v: block %q", tc.kind, m.Block)
		}
		if tc.m.Steg != nil && m.Steg != s {
			t.Errorf("%v: steg %q", tc.kind, m.Steg)
		}
	}
}

func TestAssembleEmpty(t *testing.T) {
	if _, _, err := Assemble(&Messages{Rows: 3}); !errors.Is(err, ErrNoMessages) {
		t.Errorf("error %v", err)
	}
}

func TestAssembleSkip(t *testing.T) {
	m := Messages{
		QR:    ptr("x"),
		Block: ptr(strings.Repeat("long block message ", 200)),
		Steg:  ptr("short"),
	}
	l, out, err := Assemble(&m)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0].Source != Block || out[0].Status != CapacitySkipped ||
		out[1].Source != Steg || out[1].Status != Composed {
		t.Fatalf("outcomes %v", out)
	}
	if got := Decode(l.Samples(), nil).Steg; got != "short" {
		t.Errorf("steg %q", got)
	}
}

func TestAssembleHints(t *testing.T) {
	l, _, err := Assemble(&Messages{Block: ptr("abcdef"), Steg: ptr("a"), Cols: 5})
	if err != nil {
		t.Fatal(err)
	}
	if g := l.Grid(); g.Rows() != 1 || g.Cols() != 5 {
		t.Errorf("%d x %d", g.Rows(), g.Cols())
	}
	l, _, err = Assemble(&Messages{Steg: ptr("abc"), Rows: 1})
	if err != nil {
		t.Fatal(err)
	}
	if g := l.Grid(); g.Rows() != 1 || g.Cols() != 7 {
		t.Errorf("%d x %d", g.Rows(), g.Cols())
	}
	_, _, err = Assemble(&Messages{Block: ptr("abcdefg"), Rows: 1, Cols: 2})
	var ce *CapacityError
	if !errors.As(err, &ce) {
		t.Errorf("error %v", err)
	}
	_, _, err = Assemble(&Messages{Block: ptr("ok"), Steg: ptr("b\x01d")})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("error %v", err)
	}
}
