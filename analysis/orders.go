// Copyright 2024 The rodmc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package analysis computes the local order parameters, clusters and
// defects of a filled AnnularCell. Every routine here is read-only:
// none of them mutate the cell they are given.
package analysis

import (
	"math"

	"github.com/cpmech/rodmc/cell"
)

// LocalOrder is the per-rod local structure computed by LocalOrders:
// a locally averaged director (the "tilt") and the nematic, tetratic
// and smectic order parameters relative to it.
type LocalOrder struct {
	Director float64
	Q2       float64
	Q4       float64
	QS       float64
}

// LocalOrders computes a LocalOrder for every rod in c, averaging
// over every rod (itself included) within Bundle.AveragingRadius of
// it.
//
// The director is the half-argument of the local mean of exp(2i*a), a
// standard way to average orientations that are only defined modulo
// pi. Q2 and Q4 are then the magnitudes of the local mean of
// exp(2i*(a-director)) and exp(4i*(a-director)); QS is the magnitude
// of the local mean of a phase that advances by 2*pi over one period
// of smectic layer spacing along the director.
func LocalOrders(c *cell.AnnularCell) []LocalOrder {
	b := c.Bundle
	n := len(c.Rods)
	out := make([]LocalOrder, n)
	scale := 2.0 * math.Pi * b.InverseLayerSpacing

	for i := 0; i < n; i++ {
		neighbors := averagingIndexes(c, i)

		var sumCos2, sumSin2 float64
		for _, j := range neighbors {
			a := 2.0 * c.Rods[j].Angle
			sumCos2 += math.Cos(a)
			sumSin2 += math.Sin(a)
		}
		tilt := 0.5 * math.Atan2(sumSin2, sumCos2)

		var sc2, ss2, sc4, ss4, scS, ssS float64
		for _, j := range neighbors {
			zeta := 2.0 * (c.Rods[j].Angle - tilt)
			sc2 += math.Cos(zeta)
			ss2 += math.Sin(zeta)
			sc4 += math.Cos(2.0 * zeta)
			ss4 += math.Sin(2.0 * zeta)

			dx := c.Rods[j].Center.X - c.Rods[i].Center.X
			dy := c.Rods[j].Center.Y - c.Rods[i].Center.Y
			phase := scale * (math.Cos(tilt)*dx + math.Sin(tilt)*dy)
			scS += math.Cos(phase)
			ssS += math.Sin(phase)
		}

		inv := 1.0 / float64(len(neighbors))
		out[i] = LocalOrder{
			Director: tilt,
			Q2:       math.Hypot(sc2, ss2) * inv,
			Q4:       math.Hypot(sc4, ss4) * inv,
			QS:       math.Hypot(scS, ssS) * inv,
		}
	}
	return out
}

// averagingIndexes returns every rod index (including i itself)
// within Bundle.AveragingRadius of rod i.
func averagingIndexes(c *cell.AnnularCell, i int) []int {
	var out []int
	for j, p := range c.Rods {
		if c.Rods[i].IsWithinRadius(p, c.Bundle.AveragingRadius) {
			out = append(out, j)
		}
	}
	return out
}
