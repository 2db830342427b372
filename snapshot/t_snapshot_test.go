// Copyright 2024 The rodmc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/rodmc/analysis"
	"github.com/cpmech/rodmc/rod"
)

func Test_snapshot01(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("snapshot01: basic format round-trips")

	poses := []rod.Pose{
		rod.New(1.5, -2.25, 0.3),
		rod.New(-10, 0, -0.7),
	}
	path := filepath.Join(tst.TempDir(), "basic.csv")
	if err := WriteBasic(path, poses); err != nil {
		tst.Fatalf("WriteBasic failed: %v", err)
	}
	got, err := ReadBasic(path)
	if err != nil {
		tst.Fatalf("ReadBasic failed: %v", err)
	}
	if len(got) != len(poses) {
		tst.Fatalf("expected %d rods, got %d", len(poses), len(got))
	}
	for i := range poses {
		chk.Scalar(tst, "x", 1e-12, got[i].Center.X, poses[i].Center.X)
		chk.Scalar(tst, "y", 1e-12, got[i].Center.Y, poses[i].Center.Y)
		chk.Scalar(tst, "a", 1e-12, got[i].Angle, poses[i].Angle)
	}
}

func Test_snapshot02(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("snapshot02: ReadBasic tolerates a header row")

	path := filepath.Join(tst.TempDir(), "headered.csv")
	content := "x,y,a\r\n1,2,0.1\r\n3,4,-0.2\r\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tst.Fatalf("setup failed: %v", err)
	}
	got, err := ReadBasic(path)
	if err != nil {
		tst.Fatalf("ReadBasic failed: %v", err)
	}
	if len(got) != 2 {
		tst.Fatalf("expected 2 rods after skipping the header, got %d", len(got))
	}
}

func Test_snapshot03(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("snapshot03: extended format round-trips")

	poses := []rod.Pose{rod.New(1, 2, 0.1), rod.New(3, 4, -0.2)}
	orders := []analysis.LocalOrder{
		{Director: 0.1, Q2: 0.9, Q4: 0.3, QS: 0.2},
		{Director: -0.2, Q2: 0.8, Q4: 0.25, QS: 0.15},
	}
	path := filepath.Join(tst.TempDir(), "extended.csv")
	if err := WriteExtended(path, poses, orders); err != nil {
		tst.Fatalf("WriteExtended failed: %v", err)
	}
	got, err := ReadExtended(path)
	if err != nil {
		tst.Fatalf("ReadExtended failed: %v", err)
	}
	if len(got) != 2 {
		tst.Fatalf("expected 2 rows, got %d", len(got))
	}
	chk.Scalar(tst, "q4", 1e-12, got[0].Order.Q4, orders[0].Q4)
	chk.Scalar(tst, "qs", 1e-12, got[1].Order.QS, orders[1].QS)
}

func Test_snapshot04(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("snapshot04: ReadExtended understands the legacy 8-column layout")

	path := filepath.Join(tst.TempDir(), "legacy.csv")
	content := "index,x,y,angle,q1,q2,q3,q4\r\n1,5,6,0.3,0,0,0,0.42\r\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tst.Fatalf("setup failed: %v", err)
	}
	got, err := ReadExtended(path)
	if err != nil {
		tst.Fatalf("ReadExtended failed: %v", err)
	}
	if len(got) != 1 {
		tst.Fatalf("expected 1 row, got %d", len(got))
	}
	chk.Scalar(tst, "legacy x", 1e-12, got[0].Pose.Center.X, 5)
	chk.Scalar(tst, "legacy y", 1e-12, got[0].Pose.Center.Y, 6)
	chk.Scalar(tst, "legacy q4", 1e-12, got[0].Order.Q4, 0.42)
}
