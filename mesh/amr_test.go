// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gofdm/rng"
	"github.com/cpmech/gosl/chk"
)

func Test_amrmesh01(tst *testing.T) {

	chk.PrintTitle("amrmesh01: proper nesting + relations")

	base := NewMeshBuilder(2).SetPadWidth(2).
		SetAxisUniform(0, 0, 1, 9, Symm).
		SetAxisUniform(1, 0, 1, 9, Symm).
		Build()

	level0 := []rng.LevelRange{rng.NewLevelRange(base.LogicalRange(), 0, 0)}
	level1patch := rng.NewLevelRange(rng.NewAxisBox([]int{2, 2}, []int{14, 14}), 1, 0)

	h := NewCartesianAMRMesh(base, 2, 1, [][]rng.LevelRange{level0, {level1patch}})

	if !h.IsProperlyNested(1, 0) {
		tst.Fatalf("level-1 patch should be properly nested in the single base patch")
	}

	// a patch reaching outside the base (upscaled) is not nested
	bad := rng.NewLevelRange(rng.NewAxisBox([]int{2, 2}, []int{20, 20}), 1, 0)
	h2 := NewCartesianAMRMesh(base, 2, 1, [][]rng.LevelRange{level0, {bad}})
	if h2.IsProperlyNested(1, 0) {
		tst.Fatalf("patch extending past the base coverage must fail nesting")
	}
}

func Test_amrmesh02(tst *testing.T) {

	chk.PrintTitle("amrmesh02: level-0 neighbor relations are absent by design")

	base := NewMeshBuilder(1).SetPadWidth(1).SetAxisUniform(0, 0, 1, 5, Symm).Build()
	level0 := []rng.LevelRange{rng.NewLevelRange(base.LogicalRange(), 0, 0)}
	h := NewCartesianAMRMesh(base, 2, 1, [][]rng.LevelRange{level0})

	if h.Neighbors(0) != nil {
		tst.Fatalf("level 0 neighbor relations must be nil, not computed")
	}
}
