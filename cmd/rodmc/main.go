// Copyright 2024 The rodmc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rodmc drives a hard-rod Monte Carlo simulation in an
// annular cell from the command line: fill an initial configuration,
// resume a run from a saved one, or analyze a saved configuration's
// order parameters, clusters and defects.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/rodmc/analysis"
	"github.com/cpmech/rodmc/cell"
	"github.com/cpmech/rodmc/mc"
	"github.com/cpmech/rodmc/params"
	"github.com/cpmech/rodmc/rng"
	"github.com/cpmech/rodmc/snapshot"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			utl.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	utl.PfWhite("\nrodmc -- hard-rod Monte Carlo in an annular cell\n\n")

	flag.Parse()
	args := flag.Args()
	if len(args) < 2 {
		utl.Panic("usage: rodmc <fill|resume|analyze> <config.json> [snapshot.csv]\n")
	}

	cmd, configPath := args[0], args[1]

	bundle, err := params.ReadJSON(configPath)
	if err != nil {
		utl.Panic("%v\n", err)
	}
	utl.Pf("loaded config: N=%d, packing fraction=%.4f\n", bundle.NumRods, bundle.PackingFraction())

	switch cmd {
	case "fill":
		runFill(bundle, args[2:])
	case "resume":
		runResume(bundle, args[2:])
	case "analyze":
		runAnalyze(bundle, args[2:])
	default:
		utl.Panic("unknown command %q: expected fill, resume or analyze\n", cmd)
	}
}

func runFill(b *params.Bundle, rest []string) {
	c := cell.New(b)
	c.FillRing()
	if len(c.Missing) > 0 {
		utl.Pfyel("ring fill left %d rods unplaced, falling back to random placement\n", len(c.Missing))
		r := rng.New(b.Seed)
		c.FillMissing(r)
	}
	if len(c.Missing) > 0 {
		utl.Panic("could not place %d of %d rods\n", len(c.Missing), b.NumRods)
	}
	if !c.IsValid() {
		utl.Panic("filled configuration failed validation\n")
	}

	out := "initial.csv"
	if len(rest) > 0 {
		out = rest[0]
	}
	if err := snapshot.WriteBasic(out, c.Rods); err != nil {
		utl.Panic("%v\n", err)
	}
	utl.Pfgreen("wrote %s\n", out)

	runSimulation(b, c, "thermalized.csv", "iteration")
}

func runResume(b *params.Bundle, rest []string) {
	if len(rest) < 1 {
		utl.Panic("usage: rodmc resume <config.json> <snapshot.csv>\n")
	}
	poses, err := snapshot.ReadBasic(rest[0])
	if err != nil {
		utl.Panic("%v\n", err)
	}
	c := cell.New(b)
	c.FillFromSnapshot(poses)
	if len(c.Missing) > 0 {
		r := rng.New(b.Seed)
		c.FillMissing(r)
	}
	if !c.IsValid() {
		utl.Panic("resumed configuration failed validation\n")
	}
	runSimulation(b, c, "thermalized.csv", "iteration")
}

func runSimulation(b *params.Bundle, c *cell.AnnularCell, thermalizedOut, iterPrefix string) {
	r := rng.New(b.Seed)
	eng := mc.New(c, r)
	eng.MarkFilled()

	tic := time.Now()
	meanAcc := eng.Thermalize(b.ThermalSweeps)
	utl.Pf("thermalization took %v, mean acceptance %.1f%%\n", time.Since(tic), 100*meanAcc)

	if err := snapshot.WriteBasic(thermalizedOut, c.Rods); err != nil {
		utl.Panic("%v\n", err)
	}

	eng.Simulate(b.MCSweeps, b.Iterations, func(iter int, acceptance float64) {
		utl.Pf(" --- iteration %d of %d --- mean acceptance %.1f%%\n", iter+1, b.Iterations, 100*acceptance)
		fn := fmt.Sprintf("%s_%03d.csv", iterPrefix, iter)
		if err := snapshot.WriteBasic(fn, c.Rods); err != nil {
			utl.Panic("%v\n", err)
		}
	})
}

func runAnalyze(b *params.Bundle, rest []string) {
	if len(rest) < 1 {
		utl.Panic("usage: rodmc analyze <config.json> <snapshot.csv> [output.csv]\n")
	}
	poses, err := snapshot.ReadBasic(rest[0])
	if err != nil {
		utl.Panic("%v\n", err)
	}
	c := cell.New(b)
	c.FillFromSnapshot(poses)

	orders := analysis.LocalOrders(c)

	out := "analyzed.csv"
	if len(rest) > 1 {
		out = rest[1]
	}
	if err := snapshot.WriteExtended(out, c.Rods, orders); err != nil {
		utl.Panic("%v\n", err)
	}
	utl.Pfgreen("wrote %s\n", out)

	clusterForest := analysis.BuildForest(len(c.Rods), analysis.ClusterLinks(c))
	clusters := clusterForest.Components(b.ClusterMinSize)
	utl.Pf("found %d clusters of size >= %d\n", len(clusters), b.ClusterMinSize)

	defectForest := analysis.BuildForest(len(c.Rods), analysis.DefectLinks(c, orders))
	defects := defectForest.Components(b.DefectMinSize)
	utl.Pf("found %d defects of size >= %d\n", len(defects), b.DefectMinSize)
}
