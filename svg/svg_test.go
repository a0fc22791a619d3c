// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/unixdj/colorcode"
)

func str(s string) *string { return &s }

func TestRoundTrip(t *testing.T) {
	const (
		q = "G4G16#170"
		b = "Multiplying colours by 2 shifts them left"
		s = "LSB"
	)
	for _, m := range []colorcode.Messages{
		{QR: str(q)},
		{QR: str(q), Block: str(b)},
		{QR: str(q), Steg: str(s)},
		{QR: str(q), Block: str(b), Steg: str(s)},
		{Block: str(b)},
		{Block: str(b), Steg: str(s)},
		{Steg: str(s)},
	} {
		l, _, err := colorcode.Assemble(&m)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := Encode(&buf, l.Grid(), l.Tag(), &Options{BoundingBox: true}); err != nil {
			t.Fatal(err)
		}
		got, err := Decode(&buf)
		if err != nil {
			t.Fatal(err)
		}
		want := l.Samples()
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%v: samples differ", l.Kind())
			continue
		}
		dm := colorcode.Decode(got, nil)
		if m.Block != nil && !strings.HasPrefix(dm.Block, b) {
			t.Errorf("%v: block %q", l.Kind(), dm.Block)
		}
		if m.Steg != nil && dm.Steg != s {
			t.Errorf("%v: steg %q", l.Kind(), dm.Steg)
		}
	}
}

func TestEncode(t *testing.T) {
	g := colorcode.NewGrid(2, 2)
	g.Fill(colorcode.Coord{Row: 0, Col: 1}, 0x90D200)
	g.Fill(colorcode.Coord{Row: 1, Col: 0}, 0xabc)
	var buf bytes.Buffer
	if err := Encode(&buf, g, colorcode.Light, &Options{ModuleSize: 5}); err != nil {
		t.Fatal(err)
	}
	const want = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">` +
		`<rect x="5" y="0" width="5" height="5" fill="#90D200" desc="light"/>` +
		`<rect x="0" y="5" width="5" height="5" fill="#000ABC" desc="light"/>` +
		`</svg>`
	if got := buf.String(); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
	buf.Reset()
	if err := Encode(&buf, g, colorcode.Untagged, nil); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "desc") {
		t.Errorf("untagged output has desc: %s", buf.String())
	}
	if err := Encode(&buf, g, colorcode.Dark, &Options{ModuleSize: -1}); !errors.Is(err, ErrArgs) {
		t.Errorf("negative size: %v", err)
	}
	if err := Encode(nil, g, colorcode.Dark, nil); !errors.Is(err, ErrArgs) {
		t.Errorf("nil writer: %v", err)
	}
}

func TestDecode(t *testing.T) {
	const in = `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" width="20" height="10">
  <rect x="0" y="0" width="10" height="10" fill="#010203" desc="dark"/>
  <rect x="10" y="0" width="10" height="10" fill="#FFFFFF"/>
  <rect x="0" y="0" width="20" height="10" stroke="black" fill-opacity="0"/>
</svg>`
	got, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []colorcode.Sample{
		{Color: 0x010203, Tag: colorcode.Dark},
		{Color: 0xFFFFFF, Tag: colorcode.Untagged},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDecodeError(t *testing.T) {
	for _, in := range []string{
		`<svg><rect fill="red"/></svg>`,
		`<svg><rect fill="#12345"/></svg>`,
		`<svg><rect fill="#GGGGGG"/></svg>`,
	} {
		_, err := Decode(strings.NewReader(in))
		var fe FillError
		if !errors.As(err, &fe) {
			t.Errorf("%s: %v", in, err)
		}
	}
	if _, err := Decode(strings.NewReader(`<svg><rect`)); err == nil {
		t.Error("truncated input decoded")
	}
}
