// Copyright 2024 The rodmc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rod implements the rigid-rectangle pose type shared by every
// rod in the simulation, and the exact analytic overlap predicate
// between two rods. All W, L geometry is carried externally in a
// *params.Bundle; Pose itself only carries position and orientation.
package rod

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Pose is the immutable-valued state of one rod: its center and the
// angle between the rod's long axis and the +x axis, kept in
// [-pi/2, pi/2] after every mutation (the rectangle is pi-periodic).
type Pose struct {
	Center r2.Vec
	Angle  float64
}

// New returns a Pose with its angle normalized into [-pi/2, pi/2].
func New(x, y, angle float64) Pose {
	return Pose{Center: r2.Vec{X: x, Y: y}, Angle: NormalizeAngle(angle)}
}

// NormalizeAngle reduces a into [-pi/2, pi/2], exploiting the shape's
// pi-periodicity. math.Remainder(a, pi) is used instead of a
// subtract-until-in-range loop: it is exact, sign-correct, and has no
// loop-bound risk for large accumulated deltas.
func NormalizeAngle(a float64) float64 {
	return math.Remainder(a, math.Pi)
}

// Translate returns the pose shifted by d; the angle is unchanged.
func (p Pose) Translate(d r2.Vec) Pose {
	return Pose{Center: p.Center.Add(d), Angle: p.Angle}
}

// Rotate returns the pose rotated by da, with the angle renormalized.
func (p Pose) Rotate(da float64) Pose {
	return Pose{Center: p.Center, Angle: NormalizeAngle(p.Angle + da)}
}

// IsWithinRadius reports whether the centers of p and other are
// strictly closer than r.
func (p Pose) IsWithinRadius(other Pose, r float64) bool {
	return r2.Norm2(p.Center.Sub(other.Center)) < r*r
}
