// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package amr

import (
	"math"
	"testing"

	"github.com/cpmech/gofdm/idx"
	"github.com/cpmech/gofdm/mesh"
	"github.com/cpmech/gosl/chk"
)

// Test_build01 marks a disc of cells in the interior of a 2D base grid and checks that the
// resulting single-level-1 hierarchy covers the disc and is properly nested (§8, "circle marker").
func Test_build01(tst *testing.T) {

	chk.PrintTitle("build01: circle marker produces a properly-nested level-1 patch set")

	base := mesh.NewMeshBuilder(2).SetPadWidth(2).
		SetAxisUniform(0, 0, 1, 33, mesh.Symm).
		SetAxisUniform(1, 0, 1, 33, mesh.Symm).
		Build()

	cx, cy, radius := 16.0, 16.0, 8.0
	marker := func(level int, p idx.MDIndex) bool {
		dx := float64(p[0]) - cx
		dy := float64(p[1]) - cy
		return math.Sqrt(dx*dx+dy*dy) <= radius
	}

	h := Build(base, Params{
		RefinementRatio:   2,
		MaxLevel:          2,
		BuffWidth:         1,
		FillRateThreshold: 0.7,
		SlimThreshold:     4,
	}, marker)

	if h.MaxLevel() != 2 {
		tst.Fatalf("expected 2 levels, got %d", h.MaxLevel())
	}
	if len(h.Patches[1]) == 0 {
		tst.Fatalf("expected at least one level-1 patch covering the marked disc")
	}
	for p := range h.Patches[1] {
		if !h.IsProperlyNested(1, p) {
			tst.Fatalf("level-1 patch %d not properly nested", p)
		}
	}

	// every marked cell (at level 0) must map inside some level-1 patch once upscaled
	for x := 0; x < 33; x++ {
		for y := 0; y < 33; y++ {
			p := idx.MDIndex{x, y}
			if !marker(0, p) {
				continue
			}
			covered := false
			for _, patch := range h.Patches[1] {
				up := idx.MDIndex{x * 2, y * 2}
				if patch.InRange(up) {
					covered = true
					break
				}
			}
			if !covered {
				tst.Fatalf("marked cell %v not covered by any level-1 patch", p)
			}
		}
	}
}

// Test_build02 verifies that an empty marker set produces no refined levels.
func Test_build02(tst *testing.T) {

	chk.PrintTitle("build02: no marked cells ⇒ no refinement")

	base := mesh.NewMeshBuilder(1).SetPadWidth(1).
		SetAxisUniform(0, 0, 1, 9, mesh.Symm).Build()

	none := func(level int, p idx.MDIndex) bool { return false }

	h := Build(base, Params{
		RefinementRatio:   2,
		MaxLevel:          2,
		BuffWidth:         1,
		FillRateThreshold: 0.7,
		SlimThreshold:     4,
	}, none)

	if len(h.Patches[1]) != 0 {
		tst.Fatalf("expected no level-1 patches, got %d", len(h.Patches[1]))
	}
}
