// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package amr

import (
	"sort"

	"github.com/cpmech/gofdm/idx"
	"github.com/cpmech/gofdm/mesh"
	"github.com/cpmech/gofdm/rng"
	"github.com/cpmech/gosl/chk"
)

// MarkerFunc decides whether the cell at levelMDIndex idx, on the given level, should be
// refined (§4.3, "marker function")
type MarkerFunc func(level int, idx idx.MDIndex) bool

// Params collects the tunables of the recursive box-splitting construction (§4.3)
type Params struct {
	RefinementRatio   int
	MaxLevel          int
	BuffWidth         int
	FillRateThreshold float64 // ∈ (0,1]
	SlimThreshold     int     // ≥ 1
}

// Build runs §4.3's algorithm over `base`, producing a properly-nested patch hierarchy. Levels
// are built in descending order from maxLevel-1 down to 1 so that each coarser level can see the
// already-built next-finer level's patches (step A's nestability requirement).
func Build(base *mesh.CartesianMesh, p Params, mark MarkerFunc) *mesh.CartesianAMRMesh {
	if p.RefinementRatio <= 0 {
		chk.Panic("invalid refinementRatio %d", p.RefinementRatio)
	}
	if p.FillRateThreshold <= 0 || p.FillRateThreshold > 1 {
		chk.Panic("fillRateThreshold must be in (0,1], got %g", p.FillRateThreshold)
	}
	if p.SlimThreshold < 1 {
		chk.Panic("slimThreshold must be ≥ 1, got %d", p.SlimThreshold)
	}

	patches := make([][]rng.LevelRange, p.MaxLevel)
	baseLogical := base.LogicalRange()
	patches[0] = []rng.LevelRange{rng.NewLevelRange(baseLogical, 0, 0)}

	// finerPatches[l-1] holds the already-built level-l patches (in level-(l-1) coarse
	// coordinates is not needed here; we keep them in their own level-l coordinates and convert
	// on demand in gatherMarked).
	finerPatches := map[int][]rng.LevelRange{}

	for l := p.MaxLevel - 1; l >= 1; l-- {
		coarseLevel := l - 1
		marked := gatherMarked(base, p.RefinementRatio, coarseLevel, mark, finerPatches[l], p.BuffWidth)
		tree := newKdTree(marked)
		if tree.Count() == 0 {
			patches[l] = nil
			continue
		}
		boxes := partitionBoxes(tree, tree.BoundingBox(), p.FillRateThreshold, p.SlimThreshold)

		// step D: each accepted coarse-level box becomes a level-l patch
		levelPatches := make([]rng.LevelRange, len(boxes))
		for i, b := range boxes {
			start := make([]int, b.Ndim())
			end := make([]int, b.Ndim())
			for k := 0; k < b.Ndim(); k++ {
				start[k] = b.Start[k] * p.RefinementRatio
				end[k] = (b.End[k]-1)*p.RefinementRatio + 1 + 1
			}
			levelPatches[i] = rng.NewLevelRange(rng.NewAxisBox(start, end), l, i)
		}
		patches[l] = levelPatches
		finerPatches[l-1] = levelPatches
	}

	h := mesh.NewCartesianAMRMesh(base, p.RefinementRatio, p.BuffWidth, patches)

	// fatal, abort with the offending patch printed (§7, NotProperlyNested)
	for l := 1; l < h.MaxLevel(); l++ {
		for pIdx := range h.Patches[l] {
			if !h.IsProperlyNested(l, pIdx) {
				chk.Panic("not-properly-nested: level %d patch %d (%v) is not covered by level %d patches",
					l, pIdx, h.Patches[l][pIdx].AxisBox, l-1)
			}
		}
	}
	return h
}

// gatherMarked implements §4.3 step A: collect every marked cell at level `level`, plus (if the
// next-finer level already has patches) the cells needed to keep those finer patches nestable.
func gatherMarked(base *mesh.CartesianMesh, ratio, level int, mark MarkerFunc, finerAtLevelPlus1 []rng.LevelRange, buffWidth int) []idx.MDIndex {
	logical := base.LogicalRange()
	levelFactor := 1
	for i := 0; i < level; i++ {
		levelFactor *= ratio
	}
	levelRange := rng.NewAxisBox(scaleInts(logical.Start, levelFactor), scaleIntsEndExclusive(logical.End, levelFactor))

	var pts []idx.MDIndex
	seen := map[uint64]bool{}
	add := func(p idx.MDIndex) {
		h := p.Hash()
		if !seen[h] {
			seen[h] = true
			pts = append(pts, p)
		}
	}

	ri := idx.NewRangedIndex(levelRange)
	for ri.Valid() {
		if mark(level, ri.MDIndex.Clone()) {
			add(ri.MDIndex.Clone())
		}
		ri.Inc()
	}

	for _, fp := range finerAtLevelPlus1 {
		down := rng.AxisBox{Start: append([]int{}, fp.Start...), End: append([]int{}, fp.End...), Stride: fp.Stride}
		for k := 0; k < down.Ndim(); k++ {
			down.Start[k] = floorDivInt(down.Start[k]-buffWidth*ratio, ratio*ratio)
			down.End[k] = ceilDivInt(down.End[k]+buffWidth*ratio, ratio*ratio)
			if down.Start[k] < levelRange.Start[k] {
				down.Start[k] = levelRange.Start[k]
			}
			if down.End[k] > levelRange.End[k] {
				down.End[k] = levelRange.End[k]
			}
		}
		if down.Empty() {
			continue
		}
		dri := idx.NewRangedIndex(down)
		for dri.Valid() {
			add(dri.MDIndex.Clone())
			dri.Inc()
		}
	}

	sort.Slice(pts, func(i, j int) bool { return idx.Less(pts[i], pts[j]) })
	return pts
}

func scaleInts(s []int, f int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = v * f
	}
	return out
}

func scaleIntsEndExclusive(s []int, f int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = v * f
	}
	return out
}

func floorDivInt(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDivInt(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}
