// Copyright 2024 The rodmc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid implements the uniform box index that makes every
// Monte Carlo trial O(1) in the number of rods: a square tiling of
// the bounding square [-H,H]^2 with box side >= the rod diagonal, so
// a rod can only overlap rods whose centers lie in its box or one of
// the (generally eight) neighboring boxes.
package grid

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/cpmech/rodmc/gofemerr"
	"github.com/cpmech/rodmc/params"
)

// Grid is a regular n-by-n tiling, stored as a flat slice of boxes
// indexed row-major, with a precomputed neighbor-coordinate list per
// box so corner and edge boxes need no special-casing at query time.
type Grid struct {
	n        int
	boxSide  float64
	half     float64
	boxes    [][]int
	nbrI     [][]int // nbrI[box] = candidate column coordinates
	nbrJ     [][]int // nbrJ[box] = candidate row coordinates
}

// New builds an empty grid sized from the Bundle's derived geometry.
func New(b *params.Bundle) *Grid {
	n := b.GridBoxesPerSide
	g := &Grid{
		n:       n,
		boxSide: b.GridBoxSide,
		half:    b.GridHalfExtent,
		boxes:   make([][]int, n*n),
		nbrI:    make([][]int, n*n),
		nbrJ:    make([][]int, n*n),
	}
	last := n - 1
	for i := 0; i < n; i++ {
		cols := adjacent(i, last)
		for j := 0; j < n; j++ {
			rows := adjacent(j, last)
			g.nbrI[i*n+j] = cols
			g.nbrJ[i*n+j] = rows
		}
	}
	return g
}

// adjacent returns {v-1,v,v+1} clamped to [0,last], deduplicated at
// the boundary (so corner boxes only test themselves and their real
// neighbors, never an out-of-range index).
func adjacent(v, last int) []int {
	switch {
	case v == 0 && last == 0:
		return []int{0}
	case v == 0:
		return []int{0, 1}
	case v == last:
		return []int{last - 1, last}
	default:
		return []int{v - 1, v, v + 1}
	}
}

// Coords maps a center position to its (i,j) box coordinates.
func (g *Grid) Coords(p r2.Vec) (i, j int) {
	i = int((p.X + g.half) / g.boxSide)
	j = int((p.Y + g.half) / g.boxSide)
	if i < 0 {
		i = 0
	} else if i >= g.n {
		i = g.n - 1
	}
	if j < 0 {
		j = 0
	} else if j >= g.n {
		j = g.n - 1
	}
	return i, j
}

func (g *Grid) index(i, j int) int { return i*g.n + j }

// Insert appends idx to the box containing p.
func (g *Grid) Insert(idx int, p r2.Vec) {
	i, j := g.Coords(p)
	b := g.index(i, j)
	g.boxes[b] = append(g.boxes[b], idx)
}

// Move relocates idx from the box containing oldPos to the box
// containing newPos. A no-op if both positions map to the same box.
// Failing to find idx at the expected location is a broken invariant,
// not an environmental error: it means some earlier commit diverged
// the grid from the rod ensemble it indexes.
func (g *Grid) Move(idx int, oldPos, newPos r2.Vec) {
	oi, oj := g.Coords(oldPos)
	ni, nj := g.Coords(newPos)
	if oi == ni && oj == nj {
		return
	}
	from := g.index(oi, oj)
	bucket := g.boxes[from]
	for k, v := range bucket {
		if v == idx {
			last := len(bucket) - 1
			bucket[k] = bucket[last]
			g.boxes[from] = bucket[:last]
			to := g.index(ni, nj)
			g.boxes[to] = append(g.boxes[to], idx)
			return
		}
	}
	gofemerr.Invariant("rod #%d not found when moving from (%d,%d) to (%d,%d)", idx, oi, oj, ni, nj)
}

// Neighbors returns a freshly allocated slice of every index held in
// the box containing p and its (up to eight) neighboring boxes,
// including p's own box. Returning a fresh slice per call (rather
// than a retained scratch buffer) keeps Neighbors safe to call
// reentrantly.
func (g *Grid) Neighbors(p r2.Vec) []int {
	i, j := g.Coords(p)
	return g.NeighborsAt(i, j)
}

// NeighborsAt is Neighbors addressed directly by box coordinates.
func (g *Grid) NeighborsAt(i, j int) []int {
	b := g.index(i, j)
	cols, rows := g.nbrI[b], g.nbrJ[b]
	out := make([]int, 0, 4*len(cols)*len(rows))
	for _, ci := range cols {
		for _, cj := range rows {
			out = append(out, g.boxes[g.index(ci, cj)]...)
		}
	}
	return out
}

// BoxesPerSide returns the number of boxes along one side of the grid.
func (g *Grid) BoxesPerSide() int { return g.n }

// Box returns the raw contents of box (i,j), for callers (e.g. the
// by-box sweep order) that want to iterate a box without pulling in
// its neighbors.
func (g *Grid) Box(i, j int) []int { return g.boxes[g.index(i, j)] }
