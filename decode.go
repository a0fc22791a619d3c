// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorcode

import (
	"strings"

	"go.uber.org/zap"
)

// A Tag records whether a rendered colour was complemented.
type Tag int

const (
	Untagged Tag = iota // unknown
	Light               // not complemented
	Dark                // complemented
)

func (t Tag) String() string {
	switch t {
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return ""
}

// ParseTag returns the tag named s, or Untagged.
func ParseTag(s string) Tag {
	switch s {
	case "light":
		return Light
	case "dark":
		return Dark
	}
	return Untagged
}

// A Sample is a colour read back from a rendered grid.
type Sample struct {
	Color Color
	Tag   Tag
}

// DecodeOptions control the handling of tags in Decode.
type DecodeOptions struct {
	// Override applies to samples without a tag of their own.
	Override Tag
	// ForceOverride makes a non-Untagged Override apply to every
	// sample regardless of its tag.
	ForceOverride bool
}

// A Message holds the texts recovered from a grid.
type Message struct {
	Block string // one character per channel, NUL padding included
	Steg  string // up to the first all-zero or all-one character
}

// Channels undoes the block transform where a sample is dark and
// returns the R, G and B channels of all samples in order.
func Channels(samples []Sample, opt *DecodeOptions) []byte {
	var o DecodeOptions
	if opt != nil {
		o = *opt
	}
	ch := make([]byte, 0, len(samples)*rgbLen)
	for _, s := range samples {
		t := s.Tag
		if t == Untagged || o.ForceOverride && o.Override != Untagged {
			t = o.Override
		}
		c := s.Color
		if t == Dark {
			c = c.Complement()
		}
		r, g, b := c.Channels()
		ch = append(ch, r, g, b)
	}
	return ch
}

// Decode recovers the block and steganographic messages from samples
// in linear grid order.
func Decode(samples []Sample, opt *DecodeOptions) Message {
	ch := Channels(samples, opt)
	m := Message{DecodeBlock(ch), DecodeSteg(ch)}
	Logger().Debug("decoded", zap.Int("samples", len(samples)),
		zap.Int("block", len(m.Block)), zap.Int("steg", len(m.Steg)))
	return m
}

// DecodeBlock returns one character per channel, each channel halved.
func DecodeBlock(ch []byte) string {
	b := make([]byte, len(ch))
	for i, v := range ch {
		b[i] = channelToChar(v)
	}
	return string(b)
}

// DecodeSteg reads channel LSBs seven at a time as characters,
// most significant bit first.  It stops at an incomplete group, or at
// a group of all zeros or all ones.
func DecodeSteg(ch []byte) string {
	var b strings.Builder
	for ; len(ch) >= asciiLen; ch = ch[asciiLen:] {
		var c byte
		for _, v := range ch[:asciiLen] {
			c = c<<1 | v&1
		}
		if c == 0 || c == 1<<asciiLen-1 {
			break
		}
		b.WriteByte(c)
	}
	return b.String()
}
