// Copyright 2024 The rodmc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"math"

	"github.com/cpmech/rodmc/params"
	"github.com/cpmech/rodmc/rod"
)

// touchesInnerWall reports whether p overlaps the inner disk boundary,
// ported from AnnularCell::rodIsTouchingInnerWall. The fast path uses
// the center's Cartesian distance from the origin against the
// inscribed/circumscribed radii; the slow path resolves an analytic
// minimum distance from the relative bearing phi, split into three
// angular regions by the rod's own diagonal half-angle.
func touchesInnerWall(p rod.Pose, b *params.Bundle) bool {
	distance := math.Hypot(p.Center.X, p.Center.Y)

	if distance > b.InnerMaxDist {
		return false
	}
	if distance < b.InnerMinDist {
		return true
	}

	theta := math.Atan2(p.Center.Y, p.Center.X)
	phi := math.Abs(p.Angle - theta)
	if phi > math.Pi {
		phi -= math.Pi
	}
	if phi > math.Pi/2 {
		phi = math.Pi - phi
	}

	var minDist float64
	switch {
	case phi < b.InnerPhiOne:
		minDist = (b.InnerRadius + b.HalfLength) / math.Cos(phi)
	case phi > b.InnerPhiTwo:
		minDist = (b.InnerRadius + b.HalfWidth) / math.Sin(phi)
	default:
		lambda := math.Asin(b.InnerHalfDOverR * math.Sin(b.Alpha-phi))
		if phi < b.Alpha {
			minDist = (b.HalfLength + b.InnerRadius*math.Cos(phi-lambda)) / math.Cos(phi)
		} else {
			minDist = (b.HalfWidth + b.InnerRadius*math.Sin(phi-lambda)) / math.Sin(phi)
		}
	}

	return distance < minDist
}

// touchesOuterWall reports whether p overlaps the outer disk boundary,
// ported from AnnularCell::rodIsTouchingOuterWall.
func touchesOuterWall(p rod.Pose, b *params.Bundle) bool {
	distance := math.Hypot(p.Center.X, p.Center.Y)

	if distance > b.OuterMinDist {
		return true
	}
	if distance < b.OuterMaxDist {
		return false
	}

	theta := math.Atan2(p.Center.Y, p.Center.X)
	phi := p.Angle - theta
	if phi < -math.Pi/2 {
		phi += math.Pi
	} else if phi > math.Pi/2 {
		phi -= math.Pi
	}

	c := math.Cos(b.Alpha - math.Abs(phi))
	bound := math.Sqrt(b.OuterRadius*b.OuterRadius-b.HalfDiagonal*b.HalfDiagonal*(1.0-c*c)) - b.HalfDiagonal*c

	return distance > bound
}

// insideWalls reports whether p touches neither the inner nor the
// outer boundary, i.e. lies entirely within the annulus.
func insideWalls(p rod.Pose, b *params.Bundle) bool {
	return !touchesInnerWall(p, b) && !touchesOuterWall(p, b)
}
