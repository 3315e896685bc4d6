// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/gofdm/rng"
	"github.com/cpmech/gosl/chk"
)

// NeighborPair records that patches A and B at the same level are adjacent: their boxes,
// shrunk by BuffWidth, intersect (§3.3, §4.3 step E).
type NeighborPair struct{ A, B int }

// ParentLink records that the Child patch (at level l) is nested in the Parent patch (at level
// l-1): the child's box shrunk by BuffWidth intersects the parent's box upscaled by the
// refinement ratio.
type ParentLink struct{ Child, Parent int }

// CartesianAMRMesh owns one refined CartesianMesh per level plus, per level, the patches
// covering it and their neighbor/parent adjacency (§3.3).
type CartesianAMRMesh struct {
	RefinementRatio int
	BuffWidth       int
	Meshes          []*CartesianMesh     // Meshes[l] is the level-l mesh (Meshes[0] == base)
	Patches         [][]rng.LevelRange   // Patches[l] is level l's patch list; Patches[0] is a single patch covering the whole base mesh
	neighbors       [][]NeighborPair     // neighbors[l], l>0 only (§9: level 0 is absent by design)
	parents         [][]ParentLink       // parents[l], l>=1: links from level l to level l-1
}

// NewCartesianAMRMesh builds the per-level refined meshes (Meshes[0]==base, Meshes[l] ==
// base.Refine(ratio^l)) and installs the given per-level patch list, then computes neighbor and
// parent adjacency (§3.3, §4.3 step E). Patches[0] is conventionally a single patch covering the
// whole base logical range.
func NewCartesianAMRMesh(base *CartesianMesh, ratio, buffWidth int, patches [][]rng.LevelRange) *CartesianAMRMesh {
	if ratio <= 0 {
		chk.Panic("invalid-mesh-dims: refinementRatio must be positive, got %d", ratio)
	}
	h := &CartesianAMRMesh{
		RefinementRatio: ratio,
		BuffWidth:       buffWidth,
		Meshes:          make([]*CartesianMesh, len(patches)),
		Patches:         patches,
	}
	h.Meshes[0] = base
	cur := base
	for l := 1; l < len(patches); l++ {
		cur = cur.Refine(ratio)
		h.Meshes[l] = cur
	}
	h.ComputeRelations()
	return h
}

// MaxLevel returns the number of levels (including the base, level 0)
func (h *CartesianAMRMesh) MaxLevel() int { return len(h.Meshes) }

// LevelMesh returns the mesh at level l
func (h *CartesianAMRMesh) LevelMesh(l int) *CartesianMesh { return h.Meshes[l] }

// Neighbors returns the neighbor pairs at level l. By design (§9), level 0 relations are never
// computed; this returns an empty slice for l==0, not an error.
func (h *CartesianAMRMesh) Neighbors(l int) []NeighborPair {
	if l == 0 || l >= len(h.neighbors) {
		return nil
	}
	return h.neighbors[l]
}

// Parents returns the (child, parent) links from level l to level l-1
func (h *CartesianAMRMesh) Parents(l int) []ParentLink {
	if l == 0 || l >= len(h.parents) {
		return nil
	}
	return h.parents[l]
}

// Equal requires identical per-level meshes and identical patch layouts (§4.2)
func (h *CartesianAMRMesh) Equal(other *CartesianAMRMesh) bool {
	if h.MaxLevel() != other.MaxLevel() || h.RefinementRatio != other.RefinementRatio {
		return false
	}
	for l := 0; l < h.MaxLevel(); l++ {
		if !h.Meshes[l].Equal(other.Meshes[l]) {
			return false
		}
		if len(h.Patches[l]) != len(other.Patches[l]) {
			return false
		}
		for p := range h.Patches[l] {
			a, b := h.Patches[l][p], other.Patches[l][p]
			if !rng.EqualInts(a.Start, b.Start) || !rng.EqualInts(a.End, b.End) {
				return false
			}
		}
	}
	return true
}

// ComputeRelations (re)computes neighbor and parent adjacency for every level l>0, per §4.3
// step E: neighbors are patch pairs at the same level whose boxes shrunk by BuffWidth
// intersect; parents are level-l patches whose box shrunk by BuffWidth intersects a level-(l-1)
// patch's box upscaled by RefinementRatio.
func (h *CartesianAMRMesh) ComputeRelations() {
	n := h.MaxLevel()
	h.neighbors = make([][]NeighborPair, n)
	h.parents = make([][]ParentLink, n)
	for l := 1; l < n; l++ {
		patches := h.Patches[l]
		var nb []NeighborPair
		for i := 0; i < len(patches); i++ {
			bi := patches[i].Shrink(h.BuffWidth)
			for j := i + 1; j < len(patches); j++ {
				bj := patches[j].Shrink(h.BuffWidth)
				if rng.IntersectRange(bi, bj) {
					nb = append(nb, NeighborPair{i, j})
				}
			}
		}
		h.neighbors[l] = nb

		var pl []ParentLink
		for c, child := range patches {
			cb := child.Shrink(h.BuffWidth)
			for p, parent := range h.Patches[l-1] {
				pb := rng.UpscaleBox(parent.AxisBox, h.RefinementRatio, 1)
				if rng.IntersectRange(cb, pb) {
					pl = append(pl, ParentLink{c, p})
				}
			}
		}
		h.parents[l] = pl
	}
}

// IsProperlyNested verifies, by divide-and-conquer bisection along the longest splittable
// axis, that every cell of patch p (level l) lies within some parent patch at level l-1 after
// upscaling (§4.3 "Proper-nesting verification"). Returns false (not chk.Panic) so callers can
// decide whether to treat it as fatal per their own policy; AMR construction treats a false
// result as fatal (§7, NotProperlyNested).
func (h *CartesianAMRMesh) IsProperlyNested(l, p int) bool {
	if l == 0 {
		return true
	}
	parentBoxes := make([]rng.AxisBox, len(h.Patches[l-1]))
	for i, pp := range h.Patches[l-1] {
		parentBoxes[i] = rng.UpscaleBox(pp.AxisBox, h.RefinementRatio, 1)
	}
	return coveredByDivideAndConquer(h.Patches[l][p].AxisBox, parentBoxes)
}

// coveredByDivideAndConquer checks box ⊆ ⋃ parents by bisecting when no single parent covers
// it outright, and failing only once a half reaches unit size still uncovered.
func coveredByDivideAndConquer(box rng.AxisBox, parents []rng.AxisBox) bool {
	for _, p := range parents {
		if boxSubsetOf(box, p) {
			return true
		}
	}
	if !box.Splittable() {
		return false
	}
	left, right := box.Split()
	return coveredByDivideAndConquer(left, parents) && coveredByDivideAndConquer(right, parents)
}

func boxSubsetOf(a, b rng.AxisBox) bool {
	if a.Ndim() != b.Ndim() {
		chk.Panic("dim-mismatch: cannot compare boxes of different dimension")
	}
	for k := 0; k < a.Ndim(); k++ {
		if a.Start[k] < b.Start[k] || a.End[k] > b.End[k] {
			return false
		}
	}
	return true
}
