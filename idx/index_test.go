// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idx

import (
	"testing"

	"github.com/cpmech/gofdm/rng"
	"github.com/cpmech/gosl/chk"
)

func Test_index01(tst *testing.T) {

	chk.PrintTitle("index01: ordering and equality")

	a := MDIndex{1, 2}
	b := MDIndex{1, 3}
	if !Less(a, b) {
		tst.Errorf("a should be less than b (last-axis-major)")
	}
	if Equal(a, b) {
		tst.Errorf("a should not equal b")
	}
	if !Equal(a, MDIndex{1, 2}) {
		tst.Errorf("a should equal {1,2}")
	}
}

func Test_index02(tst *testing.T) {

	chk.PrintTitle("index02: ranged traversal visits every cell exactly once")

	r := rng.NewAxisBox([]int{0, 0}, []int{3, 2})
	ri := NewRangedIndex(r)
	count := 0
	var last MDIndex
	for ri.Valid() {
		count++
		last = ri.MDIndex.Clone()
		ri.Inc()
	}
	chk.IntAssert(count, r.Count())
	chk.Ints(tst, "last visited", last, MDIndex{2, 1})
}

func Test_index03(tst *testing.T) {

	chk.PrintTitle("index03: level conversion multiplies by ratio^Δlevel")

	idx0 := LevelMDIndex{MDIndex: MDIndex{3, 5}, Level: 0, Part: 0}
	idx1 := idx0.ToLevel(1, 2)
	chk.Ints(tst, "level1", idx1.MDIndex, MDIndex{6, 10})
	back := idx1.ToLevel(0, 2)
	chk.Ints(tst, "back to level0", back.MDIndex, MDIndex{3, 5})
}

func Test_index04(tst *testing.T) {

	chk.PrintTitle("index04: hash is stable and distinguishes distinct indices")

	a := MDIndex{1, 2, 3}
	b := MDIndex{1, 2, 3}
	c := MDIndex{3, 2, 1}
	if a.Hash() != b.Hash() {
		tst.Errorf("equal indices must hash equally")
	}
	if a.Hash() == c.Hash() {
		tst.Errorf("different indices are unlikely to collide")
	}
}
