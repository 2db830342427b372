// Copyright 2024 The rodmc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cell owns the rod ensemble confined to an annular region: a
// bundle of poses, a spatial grid kept in sync with it, and the wall
// and neighbor predicates every Monte Carlo trial needs.
package cell

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/cpmech/rodmc/grid"
	"github.com/cpmech/rodmc/params"
	"github.com/cpmech/rodmc/rod"
)

// AnnularCell is the mutable ensemble of rods confined between two
// concentric circles, plus the spatial index used to bound every
// overlap query to a handful of neighbors.
type AnnularCell struct {
	Bundle  *params.Bundle
	Rods    []rod.Pose
	Missing []int // indices the last fill pass could not place

	grid *grid.Grid
}

// New returns an empty AnnularCell sized for Bundle.NumRods, with
// every rod initially parked at the sentinel corner position used by
// the fill routines before a placement succeeds.
func New(b *params.Bundle) *AnnularCell {
	c := &AnnularCell{
		Bundle: b,
		Rods:   make([]rod.Pose, b.NumRods),
		grid:   grid.New(b),
	}
	sentinel := rod.New(b.OuterRadius, b.OuterRadius, -b.Alpha)
	for i := range c.Rods {
		c.Rods[i] = sentinel
		c.grid.Insert(i, sentinel.Center)
	}
	for i := range c.Rods {
		c.Missing = append(c.Missing, i)
	}
	return c
}

// TouchesInnerWall reports whether p overlaps the inner boundary.
func (c *AnnularCell) TouchesInnerWall(p rod.Pose) bool { return touchesInnerWall(p, c.Bundle) }

// TouchesOuterWall reports whether p overlaps the outer boundary.
func (c *AnnularCell) TouchesOuterWall(p rod.Pose) bool { return touchesOuterWall(p, c.Bundle) }

// InsideWalls reports whether p touches neither boundary.
func (c *AnnularCell) InsideWalls(p rod.Pose) bool { return insideWalls(p, c.Bundle) }

// Neighbors returns the indices sharing p's grid box or an adjacent
// one, a superset of every index that could possibly overlap a rod
// placed at p.
func (c *AnnularCell) Neighbors(p r2.Vec) []int { return c.grid.Neighbors(p) }

// BoxesPerSide returns the number of grid boxes along one side of the
// bounding square, for callers that want to iterate the grid box by
// box rather than through Neighbors.
func (c *AnnularCell) BoxesPerSide() int { return c.grid.BoxesPerSide() }

// Box returns the indices held directly in grid box (gi, gj), not
// including its neighbors.
func (c *AnnularCell) Box(gi, gj int) []int { return c.grid.Box(gi, gj) }

// CanPlace reports whether a rod posed at p can be committed at
// index idx without touching a wall or any other rod in the
// ensemble. idx is excluded from the overlap scan so a rod may test
// a candidate move against everyone but itself.
func (c *AnnularCell) CanPlace(idx int, p rod.Pose) bool {
	if c.TouchesInnerWall(p) || c.TouchesOuterWall(p) {
		return false
	}
	for _, j := range c.Neighbors(p.Center) {
		if j == idx {
			continue
		}
		if rod.Overlaps(p, c.Rods[j], c.Bundle) {
			return false
		}
	}
	return true
}

// Commit installs p as rod idx's pose, keeping the grid in sync. The
// caller is responsible for having already verified CanPlace(idx, p);
// Commit itself performs no validity check.
func (c *AnnularCell) Commit(idx int, p rod.Pose) {
	old := c.Rods[idx]
	c.grid.Move(idx, old.Center, p.Center)
	c.Rods[idx] = p
}

// IsValid reports whether every rod in the ensemble lies inside the
// walls and overlaps no other rod. It is O(N) amortized thanks to the
// grid, used as a post-fill and post-load sanity check.
func (c *AnnularCell) IsValid() bool {
	for i, p := range c.Rods {
		if !c.InsideWalls(p) {
			return false
		}
		for _, j := range c.Neighbors(p.Center) {
			if j <= i {
				continue
			}
			if rod.Overlaps(p, c.Rods[j], c.Bundle) {
				return false
			}
		}
	}
	return true
}
