// Copyright 2024 The rodmc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_forest01(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("forest01: union-find groups transitively linked indices")

	f := BuildForest(6, []Link{{0, 1}, {1, 2}, {3, 4}})
	groups := f.Components(1)

	sizes := map[int]int{}
	for root, members := range groups {
		sizes[root] = len(members)
	}

	total := 0
	for _, n := range sizes {
		total += n
	}
	if total != 6 {
		tst.Errorf("expected all 6 indices accounted for across components, got %d", total)
	}

	if f.Find(0) != f.Find(2) {
		tst.Error("0 and 2 are transitively linked through 1 and must share a root")
	}
	if f.Find(3) != f.Find(4) {
		tst.Error("3 and 4 are directly linked and must share a root")
	}
	if f.Find(0) == f.Find(3) {
		tst.Error("0 and 3 are never linked and must not share a root")
	}
	if f.Find(5) == f.Find(0) {
		tst.Error("5 is isolated and must not share a root with any linked component")
	}
}

func Test_forest02(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("forest02: Components filters by minimum size")

	f := BuildForest(5, []Link{{0, 1}})
	groups := f.Components(2)
	if len(groups) != 1 {
		tst.Errorf("expected exactly one component of size >= 2, got %d", len(groups))
	}
	for _, members := range groups {
		if len(members) != 2 {
			tst.Errorf("expected the surviving component to have 2 members, got %d", len(members))
		}
	}
}
