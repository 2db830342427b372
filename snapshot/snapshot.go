// Copyright 2024 The rodmc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package snapshot reads and writes rod-ensemble configurations to
// CSV, in either the bare 3-column form used to resume a run or the
// extended form carrying the local order parameters computed by
// package analysis.
package snapshot

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/rodmc/analysis"
	"github.com/cpmech/rodmc/gofemerr"
	"github.com/cpmech/rodmc/rod"
)

// WriteBasic writes poses as headerless "x,y,a" rows, one rod per
// line, the format FillFromSnapshot and ReadBasic both understand.
func WriteBasic(path string, poses []rod.Pose) error {
	var b strings.Builder
	for _, p := range poses {
		b.WriteString(io.Sf("%.17g,%.17g,%.17g\r\n", p.Center.X, p.Center.Y, p.Angle))
	}
	if err := io.WriteFileV(path, []byte(b.String())); err != nil {
		return gofemerr.Err("cannot write snapshot %q: %v", path, err)
	}
	return nil
}

// ReadBasic parses the format WriteBasic produces. It tolerates an
// optional header row (a first line that does not parse as x,y,a is
// skipped) so hand-edited files still load, and ignores blank lines;
// any other line that does not parse is an error.
func ReadBasic(path string) ([]rod.Pose, error) {
	data, err := io.ReadFile(path)
	if err != nil {
		return nil, gofemerr.Err("cannot read snapshot %q: %v", path, err)
	}
	var poses []rod.Pose
	for n, line := range splitLines(string(data)) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitFields(line)
		if len(fields) >= 3 {
			x, errX := strconv.ParseFloat(fields[0], 64)
			y, errY := strconv.ParseFloat(fields[1], 64)
			a, errA := strconv.ParseFloat(fields[2], 64)
			if errX == nil && errY == nil && errA == nil {
				poses = append(poses, rod.New(x, y, a))
				continue
			}
		}
		if n == 0 {
			continue // header row
		}
		return nil, gofemerr.Err("malformed line %d in snapshot %q", n+1, path)
	}
	return poses, nil
}

// Extended is one row of the extended snapshot format: a pose plus
// its locally computed order parameters.
type Extended struct {
	Pose  rod.Pose
	Order analysis.LocalOrder
}

// WriteExtended writes the 7-column "x,y,a,tilt,q2,q4,qs" format with
// a header row, one line per rod.
func WriteExtended(path string, poses []rod.Pose, orders []analysis.LocalOrder) error {
	var b strings.Builder
	b.WriteString("x,y,a,tilt,q2,q4,qs\r\n")
	for i, p := range poses {
		o := orders[i]
		b.WriteString(io.Sf("%.17g,%.17g,%.17g,%.17g,%.17g,%.17g,%.17g\r\n",
			p.Center.X, p.Center.Y, p.Angle, o.Director, o.Q2, o.Q4, o.QS))
	}
	if err := io.WriteFileV(path, []byte(b.String())); err != nil {
		return gofemerr.Err("cannot write snapshot %q: %v", path, err)
	}
	return nil
}

// ReadExtended loads either the 7-column format WriteExtended
// produces or the legacy 8-column "index,x,y,a,q1,q2,q3,q4" layout
// (x and a in columns 1 and 3, the last column holding q4), skipping
// a header row on the first line and blank lines. Any other row with
// another column count or a field that does not parse is an error.
func ReadExtended(path string) ([]Extended, error) {
	data, err := io.ReadFile(path)
	if err != nil {
		return nil, gofemerr.Err("cannot read snapshot %q: %v", path, err)
	}
	var out []Extended
	for n, line := range splitLines(string(data)) {
		fields := splitFields(line)
		switch len(fields) {
		case 7:
			x, e1 := strconv.ParseFloat(fields[0], 64)
			y, e2 := strconv.ParseFloat(fields[1], 64)
			a, e3 := strconv.ParseFloat(fields[2], 64)
			tilt, e4 := strconv.ParseFloat(fields[3], 64)
			q2, e5 := strconv.ParseFloat(fields[4], 64)
			q4, e6 := strconv.ParseFloat(fields[5], 64)
			qs, e7 := strconv.ParseFloat(fields[6], 64)
			if anyErr(e1, e2, e3, e4, e5, e6, e7) {
				if n == 0 {
					continue // header row
				}
				return nil, gofemerr.Err("malformed line %d in snapshot %q", n+1, path)
			}
			out = append(out, Extended{
				Pose:  rod.New(x, y, a),
				Order: analysis.LocalOrder{Director: tilt, Q2: q2, Q4: q4, QS: qs},
			})
		case 8:
			x, e1 := strconv.ParseFloat(fields[1], 64)
			y, e2 := strconv.ParseFloat(fields[2], 64)
			a, e3 := strconv.ParseFloat(fields[3], 64)
			q4, e4 := strconv.ParseFloat(fields[7], 64)
			if anyErr(e1, e2, e3, e4) {
				if n == 0 {
					continue // header row
				}
				return nil, gofemerr.Err("malformed line %d in snapshot %q", n+1, path)
			}
			out = append(out, Extended{
				Pose:  rod.New(x, y, a),
				Order: analysis.LocalOrder{Q4: q4},
			})
		default:
			if n == 0 || strings.TrimSpace(line) == "" {
				continue
			}
			return nil, gofemerr.Err("malformed line %d in snapshot %q", n+1, path)
		}
	}
	return out, nil
}

func anyErr(errs ...error) bool {
	for _, e := range errs {
		if e != nil {
			return true
		}
	}
	return false
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(strings.Trim(s, "\n"), "\n")
}

func splitFields(line string) []string {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
