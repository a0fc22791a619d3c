// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldASCII strips combining marks from s, so that "café" becomes
// "cafe", and maps Unicode spaces to ASCII space.  Other non-ASCII
// runes are kept and rejected later by the encoder.
func foldASCII(s string) string {
	t := transform.Chain(norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(func(r rune) rune {
			if r > unicode.MaxASCII && unicode.IsSpace(r) {
				return ' '
			}
			return r
		}),
		norm.NFC)
	if r, _, err := transform.String(t, s); err == nil {
		return r
	}
	return s
}
