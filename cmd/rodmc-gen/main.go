// Copyright 2024 The rodmc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rodmc-gen reads a configuration file and prints the full
// table of derived geometric constants a Bundle computes from it, for
// inspecting a configuration before committing to a long run.
package main

import (
	"flag"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/rodmc/params"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	flag.Parse()
	path := "config.json"
	if len(flag.Args()) > 0 {
		path = flag.Arg(0)
	}

	b, err := params.ReadJSON(path)
	if err != nil {
		io.PfRed("%v\n", err)
		return
	}

	io.Pforan("rod geometry\n")
	io.Pfblue2("  half width      = %g\n", b.HalfWidth)
	io.Pfblue2("  half length     = %g\n", b.HalfLength)
	io.Pfblue2("  diagonal        = %g\n", b.Diagonal)
	io.Pfblue2("  alpha           = %g rad\n", b.Alpha)

	io.Pforan("annulus\n")
	io.Pfblue2("  inner radius    = %g\n", b.InnerRadius)
	io.Pfblue2("  outer radius    = %g\n", b.OuterRadius)
	io.Pfblue2("  packing frac.   = %g\n", b.PackingFraction())

	io.Pforan("wall thresholds\n")
	io.Pfblue2("  inner min dist  = %g\n", b.InnerMinDist)
	io.Pfblue2("  inner max dist  = %g\n", b.InnerMaxDist)
	io.Pfblue2("  inner phi one   = %g rad\n", b.InnerPhiOne)
	io.Pfblue2("  inner phi two   = %g rad\n", b.InnerPhiTwo)
	io.Pfblue2("  outer min dist  = %g\n", b.OuterMinDist)
	io.Pfblue2("  outer max dist  = %g\n", b.OuterMaxDist)

	io.Pforan("grid\n")
	io.Pfblue2("  boxes per side  = %d\n", b.GridBoxesPerSide)
	io.Pfblue2("  box side        = %g\n", b.GridBoxSide)

	io.Pforan("analysis thresholds\n")
	io.Pfblue2("  averaging radius    = %g\n", b.AveragingRadius)
	io.Pfblue2("  inverse layer space = %g\n", b.InverseLayerSpacing)
	io.Pfblue2("  cluster max dist    = %g\n", b.ClusterMaxDist)
	io.Pfblue2("  cluster angle       = %g rad\n", b.ClusterAngle)
	io.Pfblue2("  defect max dist     = %g\n", b.DefectMaxDist)
	io.Pfblue2("  defect q4 ceiling   = %g\n", b.DefectQ4Ceiling)
}
