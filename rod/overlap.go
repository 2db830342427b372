// Copyright 2024 The rodmc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rod

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/cpmech/rodmc/params"
)

// Overlaps is the hard-core overlap test between two oriented
// rectangles of identical width/length (taken from b). It is total:
// every finite input yields a defined boolean, with no error path.
//
// Three phases, ported verbatim from the analytic derivation in
// original_source/Rod.cpp:
//
//  1. squared-distance fast accept/reject using the inscribed-disk
//     radius (W) and the maximum extent (the diagonal D);
//  2. reduction of the relative orientation phi and relative bearing
//     theta into a single symmetric quadrant;
//  3. a six-region piecewise minimum-separation distance m(theta),
//     with overlap iff d^2 < m^2.
func Overlaps(a, other Pose, b *params.Bundle) bool {
	rel := a.Center.Sub(other.Center)
	dSq := r2.Norm2(rel)

	if dSq < b.RodWidth*b.RodWidth {
		return true
	}
	if dSq > b.DiagonalSq {
		return false
	}

	phi := NormalizeAngle(a.Angle - other.Angle)
	theta := math.Atan2(rel.Y, rel.X) - other.Angle
	theta = wrapToPi(theta)

	if phi < 0 {
		phi = -phi
		if theta < 0 {
			theta = -theta
		} else {
			theta = math.Pi - theta
		}
	} else if theta < 0 {
		theta += math.Pi
	}

	theta0 := 0.5 * phi
	thetaM1 := theta0 - b.Alpha
	theta1 := theta0 + b.Alpha
	theta2 := theta0 + math.Pi/2
	theta3 := thetaM1 + math.Pi

	minDist := b.Diagonal * math.Cos(theta0)

	switch {
	case theta < thetaM1:
		minDist *= math.Sin(theta1) / math.Sin(phi-theta)
	case theta < theta0:
		minDist *= math.Cos(thetaM1) / math.Cos(theta)
	case theta < theta1:
		minDist *= math.Cos(thetaM1) / math.Cos(theta-phi)
	case theta < theta2:
		minDist *= math.Sin(theta1) / math.Sin(theta)
	case theta < theta3:
		minDist *= math.Sin(theta1) / math.Sin(theta-phi)
	default:
		minDist *= math.Cos(thetaM1) / (-math.Cos(theta))
	}

	return dSq < minDist*minDist
}

// wrapToPi reduces theta into [-pi, pi].
func wrapToPi(theta float64) float64 {
	if theta > math.Pi {
		return theta - 2.0*math.Pi
	}
	if theta < -math.Pi {
		return theta + 2.0*math.Pi
	}
	return theta
}
