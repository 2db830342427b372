// Copyright 2024 The rodmc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"math"
	"math/rand"

	"github.com/cpmech/rodmc/rod"
)

const (
	randomFillTrialsPerRod    = 1000
	missingFillPositionTrials = 500
	missingFillAngleTrials    = 100
)

// FillRandom places every rod at a uniformly random position and
// orientation within the bounding square, retrying up to
// randomFillTrialsPerRod times per index. Indices that exhaust their
// trial budget keep their previous pose and are recorded in Missing;
// call FillMissing afterwards to retry them against the full, by-then
// much denser, ensemble.
func (c *AnnularCell) FillRandom(r *rand.Rand) {
	c.Missing = c.Missing[:0]
	out := c.Bundle.OuterRadius
	for i := range c.Rods {
		placed := false
		for trial := 0; trial < randomFillTrialsPerRod; trial++ {
			p := rod.New(
				(2*r.Float64()-1)*out,
				(2*r.Float64()-1)*out,
				(2*r.Float64()-1)*math.Pi/2,
			)
			if c.CanPlace(i, p) {
				c.Commit(i, p)
				placed = true
				break
			}
		}
		if !placed {
			c.Missing = append(c.Missing, i)
		}
	}
}

// FillMissing retries every index in Missing, trying
// missingFillPositionTrials random positions, and for each position
// up to missingFillAngleTrials random orientations before moving on.
// It replaces Missing with whatever indices still could not be
// placed.
func (c *AnnularCell) FillMissing(r *rand.Rand) {
	out := c.Bundle.OuterRadius
	var stillMissing []int
	for _, i := range c.Missing {
		placed := false
		for pos := 0; pos < missingFillPositionTrials && !placed; pos++ {
			x := (2*r.Float64() - 1) * out
			y := (2*r.Float64() - 1) * out
			for ang := 0; ang < missingFillAngleTrials; ang++ {
				p := rod.New(x, y, (2*r.Float64()-1)*math.Pi/2)
				if c.CanPlace(i, p) {
					c.Commit(i, p)
					placed = true
					break
				}
			}
		}
		if !placed {
			stillMissing = append(stillMissing, i)
		}
	}
	c.Missing = stillMissing
}

// FillRing places rods deterministically on concentric rings worked
// inward from the outer wall, each ring's angular spacing set so
// adjacent rods' long edges just clear one another, with a small
// alternating offset between rings so rods tile rather than stack
// radially. Indices left over once the innermost feasible ring is
// reached are appended to Missing for FillMissing to place randomly.
//
// This mirrors a denser, order-seeded initial configuration: far
// fewer early rejections than FillRandom once occupancy is high, at
// the cost of an initial configuration with visible ring structure
// that Thermalize must then erase.
func (c *AnnularCell) FillRing() {
	c.Missing = c.Missing[:0]
	b := c.Bundle

	current := 0
	rMax := b.OuterMaxDist
	rMin := b.InnerMaxDist
	offset := 0.0

	for rMax > rMin && current < len(c.Rods) {
		beta := 2.0 * math.Atan(b.HalfLength/(rMax-b.HalfWidth))
		spaces := math.Floor(2.0 * math.Pi / beta)
		if spaces < 1 {
			break
		}
		buffer := (2.0*math.Pi - spaces*beta) / spaces

		theta := 0.0
		for theta < 2*math.Pi && current < len(c.Rods) {
			p := rod.New(
				rMax*math.Cos(theta+offset),
				rMax*math.Sin(theta+offset),
				math.Remainder(theta+offset-math.Pi/2, math.Pi),
			)
			if c.CanPlace(current, p) {
				c.Commit(current, p)
				current++
			}
			theta += beta + buffer
		}

		offset += 0.5 * beta
		rMax -= b.HalfWidth
		halfBeta := 0.5 * beta
		rMax = 0.9993 * math.Sqrt(rMax*rMax+b.HalfDiagonal*b.HalfDiagonal+
			rMax*b.Diagonal*math.Cos(halfBeta+math.Asin(2.0*rMax*math.Sin(halfBeta)/b.Diagonal)))
	}

	for ; current < len(c.Rods); current++ {
		c.Missing = append(c.Missing, current)
	}
}

// FillFromSnapshot installs poses as the first len(poses) rods and
// marks every remaining index as missing, for resuming a run from a
// partially complete configuration.
func (c *AnnularCell) FillFromSnapshot(poses []rod.Pose) {
	c.Missing = c.Missing[:0]
	n := len(poses)
	if n > len(c.Rods) {
		n = len(c.Rods)
	}
	for i := 0; i < n; i++ {
		c.Commit(i, poses[i])
	}
	for i := n; i < len(c.Rods); i++ {
		c.Missing = append(c.Missing, i)
	}
}
