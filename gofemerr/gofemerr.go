// Copyright 2024 The rodmc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gofemerr defines the two-tier error vocabulary shared by every
// package in this module: recoverable errors that the CLI reports and
// exits on, and internal invariant breaks that indicate a bug rather
// than bad input or an environmental failure.
package gofemerr

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Err formats a recoverable error: infeasible configuration, a missing
// or malformed file, or a fill strategy that could not place every rod.
// Callers return it; the CLI prints it and exits non-zero.
func Err(msg string, args ...interface{}) error {
	return chk.Err(msg, args...)
}

// Invariant reports a broken internal invariant -- a grid Move call
// that could not locate the index it was told to move, or a committed
// rod found outside the annulus walls. These are bugs, not
// environmental errors: Invariant logs the condition and panics via
// chk.Panic.
func Invariant(msg string, args ...interface{}) {
	io.Pf("INVARIANT VIOLATION: "+msg+"\n", args...)
	chk.Panic(msg, args...)
}

// Wrap annotates err with context, or returns nil if err is nil.
func Wrap(err error, msg string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", io.Sf(msg, args...), err)
}
