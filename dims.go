// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorcode

import "math"

// Dimensions returns grid dimensions holding at least n cells.
// A zero rows or cols means no constraint on it.
//
// With no constraints the grid is as square as possible: the side is
// the integer square root of n, then a row is added if short, then a
// column if still short.  With one constraint the other dimension is
// the smallest that fits.  With both, Dimensions returns a
// *CapacityError if rows*cols < n rather than adjusting either.
func Dimensions(n, rows, cols int) (int, int, error) {
	if rows < 0 || cols < 0 {
		return 0, 0, &CapacityError{n, rows, cols}
	}
	switch {
	case rows == 0 && cols == 0:
		s := isqrt(n)
		rows, cols = s, s
		if rows*cols < n {
			rows++
		}
		if rows*cols < n {
			cols++
		}
	case rows == 0:
		rows = ceilDiv(n, cols)
	case cols == 0:
		cols = ceilDiv(n, rows)
	default:
		if rows*cols < n {
			return 0, 0, &CapacityError{n, rows, cols}
		}
	}
	return rows, cols, nil
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int) int {
	s := int(math.Sqrt(float64(n)))
	for s*s > n {
		s--
	}
	for (s+1)*(s+1) <= n {
		s++
	}
	return s
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }
