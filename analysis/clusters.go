// Copyright 2024 The rodmc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/cpmech/rodmc/cell"
)

// Link is an undirected edge between two rod indices, Left always
// less than Right so a slice of Links is naturally deduplicated.
type Link struct {
	Left, Right int
}

// Forest is a disjoint-set over rod indices, built with a plain
// parent array and union-by-size. This is deliberately simpler than
// packing a root flag into the first element of each component's
// member list: that scheme saves one array but means every read of a
// component has to branch on whether its own index is the root, and
// a caller that forgets breaks silently. A parent array costs one
// more int per rod and makes every operation (Find, Union, the
// membership walk in Components) a straight loop.
type Forest struct {
	parent []int
	size   []int
}

// NewForest returns a Forest with n singleton components.
func NewForest(n int) *Forest {
	f := &Forest{parent: make([]int, n), size: make([]int, n)}
	for i := range f.parent {
		f.parent[i] = i
		f.size[i] = 1
	}
	return f
}

// Find returns the representative of i's component, path-compressing
// along the way.
func (f *Forest) Find(i int) int {
	for f.parent[i] != i {
		f.parent[i] = f.parent[f.parent[i]]
		i = f.parent[i]
	}
	return i
}

// Union merges the components containing i and j.
func (f *Forest) Union(i, j int) {
	ri, rj := f.Find(i), f.Find(j)
	if ri == rj {
		return
	}
	if f.size[ri] < f.size[rj] {
		ri, rj = rj, ri
	}
	f.parent[rj] = ri
	f.size[ri] += f.size[rj]
}

// BuildForest unions every pair of indices named by links.
func BuildForest(n int, links []Link) *Forest {
	f := NewForest(n)
	for _, lk := range links {
		f.Union(lk.Left, lk.Right)
	}
	return f
}

// Components groups every index by its Forest root, discarding
// components with fewer than minSize members. The returned map is
// keyed by a representative index, not by any externally meaningful
// id.
func (f *Forest) Components(minSize int) map[int][]int {
	groups := make(map[int][]int)
	for i := range f.parent {
		r := f.Find(i)
		groups[r] = append(groups[r], i)
	}
	for root, members := range groups {
		if len(members) < minSize {
			delete(groups, root)
		}
	}
	return groups
}

// ClusterLinks returns every pair of grid-neighboring rods whose
// centers lie within Bundle.ClusterMaxDist of each other and whose
// orientations differ by less than Bundle.ClusterAngle (mod pi). The
// grid bounds the candidate pairs to O(N) total rather than O(N^2).
func ClusterLinks(c *cell.AnnularCell) []Link {
	b := c.Bundle
	var links []Link
	for i, p := range c.Rods {
		for _, j := range c.Neighbors(p.Center) {
			if j <= i {
				continue
			}
			if !p.IsWithinRadius(c.Rods[j], b.ClusterMaxDist) {
				continue
			}
			angleDiff := math.Abs(p.Angle - c.Rods[j].Angle)
			if angleDiff > math.Pi/2 {
				angleDiff = math.Pi - angleDiff
			}
			if angleDiff < b.ClusterAngle {
				links = append(links, Link{Left: i, Right: j})
			}
		}
	}
	return links
}

// DefectLinks returns every pair among the rods whose local tetratic
// order falls below Bundle.DefectQ4Ceiling (the orders slice as
// returned by LocalOrders) that lie within Bundle.DefectMaxDist of
// each other. Unlike ClusterLinks this scans all such rods pairwise:
// defect cores are rare and small enough that the grid's per-box
// bookkeeping is not worth it.
func DefectLinks(c *cell.AnnularCell, orders []LocalOrder) []Link {
	b := c.Bundle
	var lowQ4 []int
	for i, o := range orders {
		if o.Q4 < b.DefectQ4Ceiling {
			lowQ4 = append(lowQ4, i)
		}
	}

	var links []Link
	for a, i := range lowQ4 {
		for _, j := range lowQ4[a+1:] {
			if c.Rods[i].IsWithinRadius(c.Rods[j], b.DefectMaxDist) {
				links = append(links, Link{Left: i, Right: j})
			}
		}
	}
	return links
}

// Centroid is the mean position of a component, in both Cartesian and
// polar form for callers reporting radial structure.
type Centroid struct {
	Center r2.Vec
	Radius float64
	Theta  float64
	Size   int
}

// Centroids computes one Centroid per component in groups, using the
// rod centers in c.
func Centroids(c *cell.AnnularCell, groups map[int][]int) map[int]Centroid {
	out := make(map[int]Centroid, len(groups))
	for root, members := range groups {
		var sum r2.Vec
		for _, i := range members {
			sum = sum.Add(c.Rods[i].Center)
		}
		mean := sum.Scale(1.0 / float64(len(members)))
		out[root] = Centroid{
			Center: mean,
			Radius: math.Hypot(mean.X, mean.Y),
			Theta:  math.Atan2(mean.Y, mean.X),
			Size:   len(members),
		}
	}
	return out
}
