// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorcode

import (
	"errors"
	"fmt"
)

var (
	ErrNoMessages = errors.New("colorcode: need at least one of qr, block, steg")
	ErrSource     = errors.New("colorcode: QR layer cannot be composed onto a grid")
)

// A ValidationError reports a message character outside printable
// ASCII (32 to 126).
type ValidationError struct {
	Pos  int  // byte offset in the message
	Char byte // offending byte
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("colorcode: byte %#02x at offset %d is not printable ASCII",
		e.Char, e.Pos)
}

// A CapacityError reports grid dimensions too small for a message.
type CapacityError struct {
	Need       int // cells required
	Rows, Cols int // dimensions requested
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("colorcode: %d x %d is insufficient for %d cells; "+
		"give rows or columns only, or neither", e.Rows, e.Cols, e.Need)
}

// validate checks that s is printable ASCII.
func validate(s string) error {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < ' ' || c > '~' {
			return &ValidationError{i, c}
		}
	}
	return nil
}
