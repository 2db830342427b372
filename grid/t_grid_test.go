// Copyright 2024 The rodmc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/cpmech/rodmc/params"
)

func newTestBundle(tst *testing.T) *params.Bundle {
	b, err := params.New(params.Primary{
		RodWidth:         1.0,
		RodLength:        4.0,
		InnerRadius:      10.0,
		OuterRadius:      30.0,
		NumRods:          10,
		Seed:             1,
		TargetAcceptance: 0.5,
	})
	if err != nil {
		tst.Fatalf("test bundle setup failed: %v", err)
	}
	return b
}

func Test_grid01(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("grid01: insert then find via neighbors")

	b := newTestBundle(tst)
	g := New(b)

	p := r2.Vec{X: 5, Y: -3}
	g.Insert(0, p)

	found := false
	for _, idx := range g.Neighbors(p) {
		if idx == 0 {
			found = true
		}
	}
	if !found {
		tst.Error("inserted index must appear in its own box's neighbor query")
	}
}

func Test_grid02(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("grid02: move relocates without duplicating")

	b := newTestBundle(tst)
	g := New(b)

	start := r2.Vec{X: 0, Y: 0}
	end := r2.Vec{X: b.OuterRadius - 1, Y: b.OuterRadius - 1}
	g.Insert(7, start)
	g.Move(7, start, end)

	count := 0
	for _, idx := range g.Neighbors(end) {
		if idx == 7 {
			count++
		}
	}
	if count != 1 {
		tst.Errorf("expected exactly one occurrence of index 7 near its new position, got %d", count)
	}

	for _, idx := range g.Neighbors(start) {
		if idx == 7 {
			tst.Error("index 7 should no longer be found near its old position")
		}
	}
}

func Test_grid03(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("grid03: corner box neighbor coordinates never go out of range")

	b := newTestBundle(tst)
	g := New(b)

	for _, idx := range g.NeighborsAt(0, 0) {
		_ = idx // must not panic: exercising the boundary clamp is the point
	}
	last := g.BoxesPerSide() - 1
	for _, idx := range g.NeighborsAt(last, last) {
		_ = idx
	}
}
