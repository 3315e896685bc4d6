// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rng

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_box01(tst *testing.T) {

	chk.PrintTitle("box01: count, intersect, split")

	r := NewAxisBox([]int{0, 0}, []int{4, 6})
	chk.IntAssert(r.Count(), 24)

	a := NewAxisBox([]int{0, 0}, []int{3, 3})
	b := NewAxisBox([]int{2, 1}, []int{5, 5})
	x := Intersect(a, b)
	chk.Ints(tst, "intersect.start", x.Start, []int{2, 1})
	chk.Ints(tst, "intersect.end", x.End, []int{3, 3})

	if !IntersectRange(a, b) {
		tst.Errorf("a and b should intersect")
	}
	c := NewAxisBox([]int{10, 10}, []int{12, 12})
	if IntersectRange(a, c) {
		tst.Errorf("a and c should not intersect")
	}
}

func Test_box02(tst *testing.T) {

	chk.PrintTitle("box02: split is stable and covers the whole range")

	r := NewAxisBox([]int{0, 0}, []int{7, 3})
	left, right := r.Split()

	// union covers r, intersection is empty
	seen := make(map[[2]int]bool)
	for _, half := range []AxisBox{left, right} {
		for i := half.Start[0]; i < half.End[0]; i++ {
			for j := half.Start[1]; j < half.End[1]; j++ {
				key := [2]int{i, j}
				if seen[key] {
					tst.Fatalf("index %v visited twice across split halves", key)
				}
				seen[key] = true
			}
		}
	}
	chk.IntAssert(len(seen), r.Count())
}

func Test_box03(tst *testing.T) {

	chk.PrintTitle("box03: shrink and BC slices")

	r := NewAxisBox([]int{0, 0}, []int{10, 10})
	s := r.Shrink(1)
	chk.Ints(tst, "shrink.start", s.Start, []int{1, 1})
	chk.Ints(tst, "shrink.end", s.End, []int{9, 9})

	faces := r.GetBCSlices(2)
	chk.IntAssert(len(faces), 4)
	chk.Ints(tst, "face0.end", faces[0].End, []int{2, 10})
	chk.Ints(tst, "face1.start", faces[1].Start, []int{8, 10})
}
