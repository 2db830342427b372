// Copyright 2024 The rodmc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params collects every tunable and derived constant of the
// simulation into one immutable bundle, built once from user-facing
// primary parameters and shared by pointer with every other package.
// No package carries process-wide mutable globals; a *Bundle is the
// only thing threaded through rod, grid, cell, mc and analysis.
package params

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/rodmc/gofemerr"
)

// Primary holds the user-facing configuration, read from a JSON file:
// a flat struct with json tags and a SetDefault pass for the fields a
// caller may omit.
type Primary struct {
	RodWidth            float64 `json:"rod_width"`
	RodLength           float64 `json:"rod_length"`
	InnerRadius         float64 `json:"inner_radius"`
	OuterRadius         float64 `json:"outer_radius"`
	NumRods             int     `json:"num_rods"`
	Seed                uint64  `json:"seed"`
	TargetAcceptance    float64 `json:"target_acceptance"`
	ThermalSweeps       int     `json:"thermal_sweeps"`
	MCSweeps            int     `json:"mc_sweeps"`
	Iterations          int     `json:"iterations"`
	AveragingRadius     float64 `json:"averaging_radius"`
	InverseLayerSpacing float64 `json:"inverse_layer_spacing"`

	ClusterDistanceFactor float64 `json:"cluster_distance_factor"`
	ClusterAngle          float64 `json:"cluster_angle"`
	ClusterMinSize        int     `json:"cluster_min_size"`

	DefectDistanceFactor float64 `json:"defect_distance_factor"`
	DefectQ4Ceiling      float64 `json:"defect_q4_ceiling"`
	DefectMinSize        int     `json:"defect_min_size"`
}

// SetDefault fills in the fields a config file is allowed to omit.
func (p *Primary) SetDefault() {
	if p.TargetAcceptance == 0 {
		p.TargetAcceptance = 0.5
	}
	if p.AveragingRadius == 0 {
		p.AveragingRadius = 4.0 * p.RodLength
	}
	if p.InverseLayerSpacing == 0 {
		p.InverseLayerSpacing = 1.0 / (1.2 * p.RodLength)
	}
	if p.ClusterDistanceFactor == 0 {
		p.ClusterDistanceFactor = 1.8
	}
	if p.ClusterAngle == 0 {
		p.ClusterAngle = math.Pi / 18.0
	}
	if p.ClusterMinSize == 0 {
		p.ClusterMinSize = 2
	}
	if p.DefectDistanceFactor == 0 {
		p.DefectDistanceFactor = 2.0
	}
	if p.DefectQ4Ceiling == 0 {
		p.DefectQ4Ceiling = 0.4
	}
	if p.DefectMinSize == 0 {
		p.DefectMinSize = 5
	}
}

// Bundle is the immutable, fully-derived parameter set. Every field is
// computed once in New and never mutated afterwards.
type Bundle struct {
	Primary

	// Rod geometry
	HalfWidth    float64
	HalfLength   float64
	Diagonal     float64
	DiagonalSq   float64
	HalfDiagonal float64
	Alpha        float64 // atan2(W, L), the interior diagonal angle

	// Annular cell geometry
	InnerRadiusSq float64
	OuterRadiusSq float64

	// Wall-predicate thresholds (AnnularCell.rodIsTouchingInnerWall/OuterWall)
	InnerMinDist    float64
	InnerMaxDist    float64
	InnerMinDistSq  float64
	InnerMaxDistSq  float64
	InnerPhiOne     float64
	InnerPhiTwo     float64
	InnerHalfDOverR float64
	OuterMinDist    float64
	OuterMaxDist    float64
	OuterMinDistSq  float64
	OuterMaxDistSq  float64

	// Grid sizing (box side >= Diagonal; bounding square [-Half,Half]^2)
	GridBoxesPerSide int
	GridBoxSide      float64
	GridHalfExtent   float64

	// Cluster / defect thresholds, resolved to absolute distances
	ClusterMaxDist float64
	DefectMaxDist  float64
}

// New validates primary and derives the Bundle's geometric constants,
// the same feasibility checks GlobalParameters.hpp enforced with
// static_asserts, returning an error rather than panicking so the CLI
// can report a clean exit.
func New(p Primary) (*Bundle, error) {
	p.SetDefault()

	if p.RodWidth <= 0 {
		return nil, gofemerr.Err("rod width must be positive, got %g", p.RodWidth)
	}
	if p.RodWidth > p.RodLength {
		return nil, gofemerr.Err("rod width %g must not exceed rod length %g", p.RodWidth, p.RodLength)
	}
	if p.InnerRadius <= 0 {
		return nil, gofemerr.Err("inner radius must be positive, got %g", p.InnerRadius)
	}
	if p.InnerRadius >= p.OuterRadius {
		return nil, gofemerr.Err("inner radius %g must be less than outer radius %g", p.InnerRadius, p.OuterRadius)
	}
	if p.NumRods <= 0 {
		return nil, gofemerr.Err("num_rods must be positive, got %d", p.NumRods)
	}
	if p.TargetAcceptance <= 0 || p.TargetAcceptance >= 1 {
		return nil, gofemerr.Err("target_acceptance must be in (0,1), got %g", p.TargetAcceptance)
	}

	b := &Bundle{Primary: p}

	b.HalfWidth = 0.5 * p.RodWidth
	b.HalfLength = 0.5 * p.RodLength
	b.DiagonalSq = p.RodWidth*p.RodWidth + p.RodLength*p.RodLength
	b.Diagonal = math.Sqrt(b.DiagonalSq)
	b.HalfDiagonal = 0.5 * b.Diagonal
	b.Alpha = math.Atan2(p.RodWidth, p.RodLength)

	b.InnerRadiusSq = p.InnerRadius * p.InnerRadius
	b.OuterRadiusSq = p.OuterRadius * p.OuterRadius

	// feasibility: R_out^2 > (R_in+W)^2 + L^2/4
	if !(b.OuterRadiusSq > (p.InnerRadius+p.RodWidth)*(p.InnerRadius+p.RodWidth)+0.25*p.RodLength*p.RodLength) {
		return nil, gofemerr.Err("outer radius %g is too small for rods of width %g, length %g around inner radius %g",
			p.OuterRadius, p.RodWidth, p.RodLength, p.InnerRadius)
	}
	// feasibility: N*W*L < pi*(R_out^2 - R_in^2)
	area := float64(p.NumRods) * p.RodWidth * p.RodLength
	annulus := math.Pi * (b.OuterRadiusSq - b.InnerRadiusSq)
	if area >= annulus {
		return nil, gofemerr.Err("num_rods %d cannot fit: rod area %g exceeds annulus area %g", p.NumRods, area, annulus)
	}

	rPlusHalfL := p.InnerRadius + b.HalfLength
	rPlusHalfW := p.InnerRadius + b.HalfWidth
	b.InnerMinDist = rPlusHalfW
	b.InnerMaxDist = p.InnerRadius + b.HalfDiagonal
	b.InnerMinDistSq = rPlusHalfW * rPlusHalfW
	b.InnerMaxDistSq = b.InnerMaxDist * b.InnerMaxDist
	b.InnerPhiOne = math.Atan2(b.HalfWidth, rPlusHalfL)
	b.InnerPhiTwo = math.Atan2(rPlusHalfW, b.HalfLength)
	b.InnerHalfDOverR = b.HalfDiagonal / p.InnerRadius

	b.OuterMinDist = math.Sqrt(b.OuterRadiusSq-b.HalfLength*b.HalfLength) - b.HalfWidth
	b.OuterMaxDist = p.OuterRadius - b.HalfDiagonal
	b.OuterMinDistSq = b.OuterMinDist * b.OuterMinDist
	b.OuterMaxDistSq = b.OuterMaxDist * b.OuterMaxDist

	b.GridBoxSide = b.Diagonal
	b.GridBoxesPerSide = int(math.Ceil(2.0*p.OuterRadius/b.GridBoxSide)) + 1
	b.GridHalfExtent = 0.5 * float64(b.GridBoxesPerSide) * b.GridBoxSide

	b.ClusterMaxDist = p.ClusterDistanceFactor * p.RodWidth
	b.DefectMaxDist = p.DefectDistanceFactor * b.Diagonal

	return b, nil
}

// PackingFraction returns N*W*L / (pi*(R_out^2 - R_in^2)).
func (b *Bundle) PackingFraction() float64 {
	return float64(b.NumRods) * b.RodWidth * b.RodLength / (math.Pi * (b.OuterRadiusSq - b.InnerRadiusSq))
}

// ReadJSON loads Primary from a JSON config file and derives a Bundle.
func ReadJSON(path string) (*Bundle, error) {
	data, err := io.ReadFile(path)
	if err != nil {
		return nil, gofemerr.Err("cannot read config file %q: %v", path, err)
	}
	var p Primary
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, gofemerr.Err("cannot parse config file %q: %v", path, err)
	}
	return New(p)
}
