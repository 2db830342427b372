// Copyright 2024 The rodmc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mc drives the Metropolis Monte Carlo evolution of an
// AnnularCell: single-rod trial moves, step-size adaptation towards a
// target acceptance rate, and the thermalize/simulate loops built on
// top of a sweep.
package mc

import (
	"math"
	"math/rand"

	"github.com/cpmech/rodmc/cell"
	"github.com/cpmech/rodmc/gofemerr"
	"github.com/cpmech/rodmc/rod"
)

// State tracks what an Engine's AnnularCell has been through, so
// callers cannot accidentally thermalize an unfilled cell or sample
// an unthermalized one.
type State int

const (
	Uninitialized State = iota
	Filled
	Thermalized
	Running
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Filled:
		return "filled"
	case Thermalized:
		return "thermalized"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Engine holds the mutable step sizes and RNG used to evolve a Cell,
// kept apart from AnnularCell itself so the same cell can be driven
// by different engines (e.g. one per temperature) without aliasing
// adaptive state.
type Engine struct {
	Cell  *cell.AnnularCell
	Rand  *rand.Rand
	State State

	deltaSpace float64
	deltaAngle float64

	indexes []int // scratch permutation buffer, reused across sweeps
}

// New returns an Engine over cell c, with step sizes seeded at the
// teacher's 0.1*L / 0.1*(pi/2) starting point.
func New(c *cell.AnnularCell, r *rand.Rand) *Engine {
	b := c.Bundle
	e := &Engine{
		Cell:       c,
		Rand:       r,
		State:      Uninitialized,
		deltaSpace: 0.1 * b.RodLength,
		deltaAngle: 0.1 * math.Pi / 2,
		indexes:    make([]int, len(c.Rods)),
	}
	for i := range e.indexes {
		e.indexes[i] = i
	}
	return e
}

// MarkFilled records that Cell now holds a complete, valid initial
// configuration, unlocking Thermalize.
func (e *Engine) MarkFilled() {
	if len(e.Cell.Missing) != 0 {
		gofemerr.Invariant("cannot mark filled: %d rods still missing", len(e.Cell.Missing))
	}
	e.State = Filled
}

// Sweep attempts one trial move per rod, in a freshly shuffled order,
// and adapts the step sizes towards Bundle.TargetAcceptance. It
// returns the fraction of rods successfully moved.
func (e *Engine) Sweep() float64 {
	b := e.Cell.Bundle
	maxRadius := b.OuterRadius - b.HalfDiagonal

	e.Rand.Shuffle(len(e.indexes), func(i, j int) {
		e.indexes[i], e.indexes[j] = e.indexes[j], e.indexes[i]
	})

	successes := 0
	for _, i := range e.indexes {
		if e.tryMove(i, maxRadius) {
			successes++
		}
	}

	rate := float64(successes) / float64(len(e.indexes))
	adapt := 1.0 + (rate - b.TargetAcceptance)
	e.deltaSpace *= adapt
	e.deltaAngle *= adapt

	return rate
}

// tryMove proposes a displaced, rotated pose for rod i and commits it
// if valid.
func (e *Engine) tryMove(i int, maxRadius float64) bool {
	current := e.Cell.Rods[i]

	x := current.Center.X + (2*e.Rand.Float64()-1)*e.deltaSpace
	y := current.Center.Y + (2*e.Rand.Float64()-1)*e.deltaSpace
	a := current.Angle + (2*e.Rand.Float64()-1)*e.deltaAngle

	out := e.Cell.Bundle.OuterRadius
	if x > out {
		x = maxRadius
	} else if x < -out {
		x = -maxRadius
	}
	if y > out {
		y = maxRadius
	} else if y < -out {
		y = -maxRadius
	}

	proposed := rod.New(x, y, a)
	if !e.Cell.CanPlace(i, proposed) {
		return false
	}
	e.Cell.Commit(i, proposed)
	return true
}

// SweepByBox is the grid-box-ordered variant: grid boxes, rather than
// individual rods, are shuffled, and every rod in a box is attempted
// before moving to the next box. Box membership is read once at the
// start of the sweep, so every rod is attempted exactly once even if
// an accepted move carries it into another box. This improves cache
// locality for large ensembles at the cost of a slightly different
// (but still ergodic) move ordering.
func (e *Engine) SweepByBox(boxesPerSide int) float64 {
	b := e.Cell.Bundle
	maxRadius := b.OuterRadius - b.HalfDiagonal

	n := boxesPerSide * boxesPerSide
	boxes := make([]int, n)
	for i := range boxes {
		boxes[i] = i
	}
	e.Rand.Shuffle(n, func(i, j int) { boxes[i], boxes[j] = boxes[j], boxes[i] })

	var order []int
	for _, box := range boxes {
		gi, gj := box%boxesPerSide, box/boxesPerSide
		order = append(order, e.cellBox(gi, gj)...)
	}

	successes, total := 0, len(order)
	for _, i := range order {
		if e.tryMove(i, maxRadius) {
			successes++
		}
	}
	if total == 0 {
		return 0
	}

	rate := float64(successes) / float64(total)
	adapt := 1.0 + (rate - b.TargetAcceptance)
	e.deltaSpace *= adapt
	e.deltaAngle *= adapt
	return rate
}

func (e *Engine) cellBox(gi, gj int) []int {
	return e.Cell.Box(gi, gj)
}

// Thermalize runs sweeps Sweep calls without recording any output,
// returning the mean acceptance rate over the run.
func (e *Engine) Thermalize(sweeps int) float64 {
	if e.State == Uninitialized {
		gofemerr.Invariant("cannot thermalize: cell has not been filled")
	}
	var sum float64
	for s := 0; s < sweeps; s++ {
		sum += e.Sweep()
	}
	e.State = Thermalized
	if sweeps == 0 {
		return 0
	}
	return sum / float64(sweeps)
}

// Simulate runs iterations blocks of sweepsPerIter sweeps each,
// invoking onSnapshot after every block with the block's mean
// acceptance rate. onSnapshot may be nil.
func (e *Engine) Simulate(sweepsPerIter, iterations int, onSnapshot func(iter int, acceptance float64)) {
	if e.State != Thermalized && e.State != Running {
		gofemerr.Invariant("cannot simulate: cell has not been thermalized")
	}
	e.State = Running
	for it := 0; it < iterations; it++ {
		var sum float64
		for s := 0; s < sweepsPerIter; s++ {
			sum += e.Sweep()
		}
		if onSnapshot != nil {
			mean := 0.0
			if sweepsPerIter > 0 {
				mean = sum / float64(sweepsPerIter)
			}
			onSnapshot(it, mean)
		}
	}
}
