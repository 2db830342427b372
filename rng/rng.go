// Copyright 2024 The rodmc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rng wires gonum's 64-bit Mersenne Twister into the standard
// math/rand facade used by the rest of this module. Each generator
// New returns is an independent MT19937_64, and the same seed always
// yields the same trial sequence. This package only bridges its Seed/Uint64 signatures to the
// math/rand.Source64 interface so callers get Float64, Intn and
// Shuffle for free.
package rng

import (
	"math/rand"

	"gonum.org/v1/gonum/mathext/prng"
)

// source adapts *prng.MT19937_64 to math/rand.Source64.
type source struct {
	mt *prng.MT19937_64
}

// New returns a *rand.Rand backed by a freshly seeded MT19937_64.
func New(seed uint64) *rand.Rand {
	mt := prng.NewMT19937_64()
	mt.Seed(seed)
	return rand.New(&source{mt: mt})
}

func (s *source) Int63() int64 {
	return int64(s.mt.Uint64() >> 1)
}

func (s *source) Seed(seed int64) {
	s.mt.Seed(uint64(seed))
}

func (s *source) Uint64() uint64 {
	return s.mt.Uint64()
}
