// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package amr

import (
	"github.com/cpmech/gofdm/idx"
	"github.com/cpmech/gofdm/rng"
)

// partitionBoxes implements §4.3 step C: starting from the global AABB of the marked-cell set,
// recursively accept-or-split boxes by fill rate and, for boxes below the fill-rate threshold,
// by a signature (per-axis marker-count projection) analysis.
func partitionBoxes(tree *kdTree, domain rng.AxisBox, fillRateThreshold float64, slimThreshold int) []rng.AxisBox {
	queue := []rng.AxisBox{domain}
	var accepted []rng.AxisBox

	for len(queue) > 0 {
		box := queue[0]
		queue = queue[1:]
		if box.Empty() {
			continue
		}

		count := tree.CountInBox(box)
		volume := box.Count()
		if count == 0 {
			continue
		}
		fillRate := float64(count) / float64(volume)
		if fillRate >= fillRateThreshold {
			accepted = append(accepted, box)
			continue
		}

		sig := computeSignature(tree, box)
		runs := make([][][2]int, box.Ndim())
		for k := range runs {
			runs[k] = nonZeroRuns(sig[k], box.Start[k])
		}

		// if any axis has more than one run, or a single run narrower than the box, the box is
		// not yet "compact": shrink/split it per step 3.
		notCompact := false
		for k := range runs {
			if len(runs[k]) != 1 || runs[k][0][0] != box.Start[k] || runs[k][0][1] != box.End[k]-1 {
				notCompact = true
				break
			}
		}

		if notCompact {
			anyMultiRun := false
			for k := range runs {
				if len(runs[k]) > 1 {
					anyMultiRun = true
					break
				}
			}
			if anyMultiRun {
				// enumerate the Cartesian product of sub-intervals across axes
				for _, sub := range cartesianRuns(runs) {
					b := box.Clone()
					for k, iv := range sub {
						b.Start[k], b.End[k] = iv[0], iv[1]+1
					}
					queue = append(queue, b)
				}
				continue
			}
			// every axis has a single run, but at least one is narrower than the box: shrink
			shrunk := box.Clone()
			for k, r := range runs {
				shrunk.Start[k], shrunk.End[k] = r[0][0], r[0][1]+1
			}
			queue = append(queue, shrunk)
			continue
		}

		// box is compact: slim-in-every-axis acceptance
		allSlim := true
		slimInAxis := make([]bool, box.Ndim())
		for k := 0; k < box.Ndim(); k++ {
			slimInAxis[k] = box.Extent(k) < slimThreshold
			allSlim = allSlim && slimInAxis[k]
		}
		if allSlim {
			accepted = append(accepted, box)
			continue
		}

		axis, splitPoint, ok := chooseSplit(sig, box, slimInAxis, slimThreshold)
		if !ok {
			// bisect the longest axis
			left, right := box.Split()
			queue = append(queue, left, right)
			continue
		}
		left := box.Clone()
		left.End[axis] = splitPoint + 1
		right := box.Clone()
		right.Start[axis] = splitPoint + 1
		queue = append(queue, left, right)
	}
	return accepted
}

// computeSignature returns, per axis, the marker-count projection sig[k][i] = |{p in box : p[k]=i}|
func computeSignature(tree *kdTree, box rng.AxisBox) [][]int {
	sig := make([][]int, box.Ndim())
	for k := range sig {
		sig[k] = make([]int, box.Extent(k))
	}
	tree.TraverseInBox(box, func(p idx.MDIndex) {
		for k := range sig {
			sig[k][p[k]-box.Start[k]]++
		}
	})
	return sig
}

// nonZeroRuns returns the maximal runs of consecutive nonzero entries in s, as [lo,hi] absolute
// index pairs (offset added back), i.e. the "compactified" sub-intervals of §4.3 step C.2.
func nonZeroRuns(s []int, offset int) [][2]int {
	var runs [][2]int
	i := 0
	for i < len(s) {
		for i < len(s) && s[i] == 0 {
			i++
		}
		if i >= len(s) {
			break
		}
		lo := i
		for i < len(s) && s[i] != 0 {
			i++
		}
		runs = append(runs, [2]int{lo + offset, i - 1 + offset})
	}
	return runs
}

// cartesianRuns enumerates the Cartesian product of per-axis run intervals
func cartesianRuns(runs [][][2]int) [][][2]int {
	result := [][][2]int{{}}
	for _, axisRuns := range runs {
		var next [][][2]int
		for _, prefix := range result {
			for _, r := range axisRuns {
				entry := append(append([][2]int{}, prefix...), r)
				next = append(next, entry)
			}
		}
		result = next
	}
	return result
}

// chooseSplit implements §4.3 step C.4's second-difference split-point selection: compute the
// lap (discrete second difference) of the signature per non-slim axis, find sign-change points
// with maximal jump, pick the axis with the largest max-jump, and use the split point closest to
// the axis median — retrying the next-ranked axis if the split would leave a slim sliver.
func chooseSplit(sig [][]int, box rng.AxisBox, slimInAxis []bool, slimThreshold int) (axis, splitPoint int, ok bool) {
	ndim := box.Ndim()
	maxJump := make([]int, ndim)
	zeroPoints := make([][]int, ndim)

	for k := 0; k < ndim; k++ {
		if slimInAxis[k] {
			continue
		}
		lap := make([]int, len(sig[k]))
		for i := 1; i < len(sig[k])-1; i++ {
			lap[i] = sig[k][i-1] - 2*sig[k][i] + sig[k][i+1]
		}
		for i := 1; i < len(lap)-1; i++ {
			if (lap[i] <= 0 && lap[i+1] >= 0) || (lap[i] >= 0 && lap[i+1] <= 0) {
				jump := absInt(lap[i] - lap[i+1])
				abs := box.Start[k] + i
				if jump > maxJump[k] {
					maxJump[k] = jump
					zeroPoints[k] = []int{abs}
				} else if jump == maxJump[k] && jump > 0 {
					zeroPoints[k] = append(zeroPoints[k], abs)
				}
			}
		}
	}

	priority := make([]int, 0, ndim)
	for k := 0; k < ndim; k++ {
		priority = append(priority, k)
	}
	// sort axes by descending max jump (simple insertion sort; ndim is always small)
	for i := 1; i < len(priority); i++ {
		for j := i; j > 0 && maxJump[priority[j]] > maxJump[priority[j-1]]; j-- {
			priority[j], priority[j-1] = priority[j-1], priority[j]
		}
	}

	for _, k := range priority {
		if len(zeroPoints[k]) == 0 {
			continue
		}
		median := (box.Start[k] + box.End[k] - 1) / 2
		best := zeroPoints[k][0]
		for _, p := range zeroPoints[k] {
			if absInt(p-median) < absInt(best-median) {
				best = p
			}
		}
		if best-box.Start[k]+1 >= slimThreshold && box.End[k]-1-best >= slimThreshold {
			return k, best, true
		}
	}
	return 0, 0, false
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
