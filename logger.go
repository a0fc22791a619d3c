// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorcode

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() { logger.Store(zap.NewNop()) }

// Logger returns the package logger.  It discards everything unless
// replaced with SetLogger.
func Logger() *zap.Logger { return logger.Load() }

// SetLogger sets the package logger.  Compose logs at info level,
// and at warning level when a message does not fit; Decode logs at
// debug level.  A nil l restores the default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}
