// Copyright 2024 The rodmc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/rodmc/params"
	"github.com/cpmech/rodmc/rod"
)

func newTestBundle(tst *testing.T, numRods int) *params.Bundle {
	b, err := params.New(params.Primary{
		RodWidth:         1.0,
		RodLength:        4.0,
		InnerRadius:      15.0,
		OuterRadius:      40.0,
		NumRods:          numRods,
		Seed:             7,
		TargetAcceptance: 0.5,
	})
	if err != nil {
		tst.Fatalf("test bundle setup failed: %v", err)
	}
	return b
}

func Test_cell01(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("cell01: wall predicates agree at the annulus midline")

	b := newTestBundle(tst, 5)
	c := New(b)

	mid := 0.5 * (b.InnerRadius + b.OuterRadius)
	p := rod.New(mid, 0, 0)
	if c.TouchesInnerWall(p) {
		tst.Error("a rod centered at the annulus midline must not touch the inner wall")
	}
	if c.TouchesOuterWall(p) {
		tst.Error("a rod centered at the annulus midline must not touch the outer wall")
	}
	if !c.InsideWalls(p) {
		tst.Error("a rod centered at the annulus midline must be inside the walls")
	}

	onInner := rod.New(b.InnerRadius, 0, 0)
	if !c.TouchesInnerWall(onInner) {
		tst.Error("a rod centered exactly on the inner wall must be touching it")
	}
}

func Test_cell02(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("cell02: FillRandom and FillMissing produce a valid ensemble")

	b := newTestBundle(tst, 20)
	c := New(b)
	r := rand.New(rand.NewSource(42))

	c.FillRandom(r)
	if len(c.Missing) > 0 {
		c.FillMissing(r)
	}
	if len(c.Missing) != 0 {
		tst.Fatalf("expected every rod to be placed, %d still missing", len(c.Missing))
	}
	if !c.IsValid() {
		tst.Error("filled ensemble must be valid: no wall overlap, no rod-rod overlap")
	}
}

func Test_cell03(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("cell03: FillRing places a dense ensemble without overlaps")

	b := newTestBundle(tst, 40)
	c := New(b)
	c.FillRing()

	if len(c.Missing) == 0 {
		if !c.IsValid() {
			tst.Error("a fully ring-filled ensemble must be valid")
		}
		return
	}
	missing := make(map[int]bool, len(c.Missing))
	for _, i := range c.Missing {
		missing[i] = true
	}
	for i, p := range c.Rods {
		if missing[i] {
			continue
		}
		for _, j := range c.Neighbors(p.Center) {
			if j <= i || missing[j] {
				continue
			}
			if rod.Overlaps(p, c.Rods[j], b) {
				tst.Errorf("rods %d and %d placed by ring fill must not overlap", i, j)
			}
		}
	}
}

func Test_cell04(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("cell04: Commit keeps the grid consistent with CanPlace")

	b := newTestBundle(tst, 3)
	c := New(b)
	r := rand.New(rand.NewSource(1))
	c.FillRandom(r)
	if len(c.Missing) > 0 {
		c.FillMissing(r)
	}

	p := rod.New(c.Rods[0].Center.X+0.01, c.Rods[0].Center.Y, c.Rods[0].Angle)
	if c.CanPlace(0, p) {
		c.Commit(0, p)
		if !c.IsValid() {
			tst.Error("committing a validated move must keep the ensemble valid")
		}
	}
}
