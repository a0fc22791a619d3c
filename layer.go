// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorcode

// A Kind identifies the encoding of a layer.
type Kind int

const (
	QR    Kind = iota // QR code; dark modules only
	Block             // 3 characters per cell, channels doubled
	Steg              // 7 bits per character in channel LSBs
)

const (
	rgbLen   = 3 // channels per colour
	asciiLen = 7 // bits per character
)

// kinds holds per-kind behaviour.
var kinds = [...]struct {
	name      string
	transform func(Color) Color // applied to source colours; nil if never a source
	skipUnset bool              // as a target, unset cells are not eligible
	tag       Tag               // render tag
}{
	QR:    {"qr", nil, true, Dark},
	Block: {"block", complement, false, Light},
	Steg:  {"steg", identity, false, Dark},
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kinds) {
		return "kind(?)"
	}
	return kinds[k].name
}

// A Layer is a message encoded into a grid of colours.
// The message is fixed at construction.  The grid is filled from it
// then and may afterwards receive other layers through Compose.
type Layer struct {
	kind     Kind
	msg      string
	grid     *Grid
	composed []Kind
}

func (l *Layer) Kind() Kind       { return l.kind }
func (l *Layer) Message() string  { return l.msg }
func (l *Layer) Grid() *Grid      { return l.grid }
func (l *Layer) Composed() []Kind { return l.composed }

// Tag returns the tag written with l's cells when rendered: Light for
// block layers, whose colours were never complemented, and Dark
// otherwise.
func (l *Layer) Tag() Tag { return kinds[l.kind].tag }

// eligible returns the number of cells that may receive colour.
func (l *Layer) eligible() int {
	if kinds[l.kind].skipUnset {
		return l.grid.Filled()
	}
	return l.grid.Area()
}

// BlockMax returns the longest block message l can receive.
func (l *Layer) BlockMax() int { return l.eligible() * rgbLen }

// StegMax returns the longest steganographic message l can receive.
func (l *Layer) StegMax() int { return l.eligible() * rgbLen / asciiLen }

// Capacity returns the longest message of kind k that l can receive.
func (l *Layer) Capacity(k Kind) int {
	switch k {
	case Block:
		return l.BlockMax()
	case Steg:
		return l.StegMax()
	}
	return 0
}

// Samples returns the set cells of l in linear order, tagged as
// they would be rendered.
func (l *Layer) Samples() []Sample {
	t := l.Tag()
	s := make([]Sample, 0, l.grid.Filled())
	for i, c := range l.grid.cells {
		if l.grid.set[i] {
			s = append(s, Sample{c, t})
		}
	}
	return s
}

// newLayer validates msg, sizes a grid for its colours and fills it.
func newLayer(k Kind, msg string, rows, cols int,
	cells func(string) int, colors func(string) []Color) (*Layer, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	rows, cols, err := Dimensions(cells(msg), rows, cols)
	if err != nil {
		return nil, err
	}
	l := &Layer{kind: k, msg: msg, grid: NewGrid(rows, cols)}
	for i, c := range colors(msg) {
		l.grid.fill(i, c)
	}
	return l, nil
}

// NewBlock returns a block layer for message.  Each cell holds three
// characters, one per channel, doubled to keep channel LSBs free.
// The last cell is padded with NUL.  Zero rows or cols leave the
// dimension to Dimensions.
func NewBlock(message string, rows, cols int) (*Layer, error) {
	return newLayer(Block, message, rows, cols, blockCells, blockColors)
}

// NewSteg returns a steganographic layer for message.  Characters
// are written as 7 bits, most significant first, and the bit stream
// is cut into colours of three 0 or 1 channels.  The last colour is
// padded with zero bits.
func NewSteg(message string, rows, cols int) (*Layer, error) {
	return newLayer(Steg, message, rows, cols, stegCells, stegColors)
}

func blockCells(s string) int { return ceilDiv(len(s), rgbLen) }
func stegCells(s string) int  { return ceilDiv(len(s)*asciiLen, rgbLen) }

func blockColors(s string) []Color {
	a := make([]Color, 0, blockCells(s))
	for i := 0; i < len(s); i += rgbLen {
		var ch [rgbLen]int
		for j := 0; j < rgbLen && i+j < len(s); j++ {
			ch[j] = charToChannel(s[i+j])
		}
		a = append(a, FromChannels(ch[0], ch[1], ch[2]))
	}
	return a
}

func stegColors(s string) []Color {
	nbit := len(s) * asciiLen
	a := make([]Color, 0, stegCells(s))
	for i := 0; i < nbit; i += rgbLen {
		var ch [rgbLen]int
		for j := range ch {
			if k := i + j; k < nbit {
				ch[j] = int(s[k/asciiLen] >> (asciiLen - 1 - k%asciiLen) & 1)
			}
		}
		a = append(a, FromChannels(ch[0], ch[1], ch[2]))
	}
	return a
}

func charToChannel(c byte) int   { return 2 * int(c) }
func channelToChar(ch byte) byte { return ch / 2 }
