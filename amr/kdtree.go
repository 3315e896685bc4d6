// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package amr implements the signature-based recursive box-splitting construction of a
// properly-nested AMR patch hierarchy from a cell-level marker predicate (§4.3)
package amr

import (
	"sort"

	"github.com/cpmech/gofdm/idx"
	"github.com/cpmech/gofdm/rng"
)

// kdNode is one node of the point KD-tree used to accelerate countInBox/traverseInBox over the
// marked-cell set (§4.3 step B). Leaves hold a single point; internal nodes cache their
// subtree's point count and bounding box so that boxes fully inside (or fully outside) a query
// box can be resolved in O(1) without descending further.
type kdNode struct {
	p          idx.MDIndex
	count      int
	bbox       rng.AxisBox
	left, right *kdNode
}

// kdTree is a static point KD-tree over d-dimensional marked-cell indices
type kdTree struct {
	root *kdNode
	ndim int
}

func newKdTree(points []idx.MDIndex) *kdTree {
	if len(points) == 0 {
		return &kdTree{}
	}
	t := &kdTree{ndim: len(points[0])}
	cp := append([]idx.MDIndex{}, points...)
	t.root = buildSubtree(cp, 0, t.ndim)
	return t
}

func pointBox(p idx.MDIndex) rng.AxisBox {
	start := append([]int{}, p...)
	end := make([]int, len(p))
	for k, v := range p {
		end[k] = v + 1
	}
	return rng.NewAxisBox(start, end)
}

func mergeBox(a, b rng.AxisBox) rng.AxisBox { return rng.MinCoverBox(a, b) }

func buildSubtree(points []idx.MDIndex, level, ndim int) *kdNode {
	if len(points) == 0 {
		return nil
	}
	if len(points) == 1 {
		return &kdNode{p: points[0], count: 1, bbox: pointBox(points[0])}
	}
	axis := level % ndim
	sort.Slice(points, func(i, j int) bool { return points[i][axis] < points[j][axis] })
	mid := (len(points) - 1) / 2
	medianVal := points[mid][axis]

	// group every point sharing the median's coordinate on this axis onto one side, to avoid
	// infinite recursion when many points are collinear along axis (mirrors the reference
	// KdTree's forward/backward degenerate-median handling).
	split := mid + 1
	for split < len(points) && points[split][axis] == medianVal {
		split++
	}
	if split == len(points) {
		// all points from mid to end share the value; walk the left boundary back instead
		split = mid
		for split > 0 && points[split-1][axis] == medianVal {
			split--
		}
		if split == 0 {
			split = len(points) // fully collinear: keep everything on the left
		}
	}

	left := points[:split]
	right := points[split:]

	lc := buildSubtree(left, level+1, ndim)
	var rc *kdNode
	if len(right) > 0 {
		rc = buildSubtree(right, level+1, ndim)
	}

	n := &kdNode{count: lc.count, bbox: lc.bbox}
	if rc != nil {
		n.count += rc.count
		n.bbox = mergeBox(n.bbox, rc.bbox)
	}
	n.left, n.right = lc, rc
	return n
}

// Count returns the total number of points in the tree
func (t *kdTree) Count() int {
	if t.root == nil {
		return 0
	}
	return t.root.count
}

// BoundingBox returns the AABB of all points
func (t *kdTree) BoundingBox() rng.AxisBox {
	if t.root == nil {
		return rng.AxisBox{}
	}
	return t.root.bbox
}

// CountInBox returns the number of points within box, in expected sublinear time via bbox
// pruning (§4.3 step B)
func (t *kdTree) CountInBox(box rng.AxisBox) int {
	return countInBox(t.root, box)
}

func countInBox(n *kdNode, box rng.AxisBox) int {
	if n == nil {
		return 0
	}
	if n.left == nil && n.right == nil {
		if box.InRange(n.p) {
			return 1
		}
		return 0
	}
	total := 0
	for _, c := range []*kdNode{n.left, n.right} {
		if c == nil {
			continue
		}
		if boxSubset(c.bbox, box) {
			total += c.count
		} else if rng.IntersectRange(c.bbox, box) {
			total += countInBox(c, box)
		}
	}
	return total
}

// TraverseInBox calls f for every point of the tree lying within box
func (t *kdTree) TraverseInBox(box rng.AxisBox, f func(idx.MDIndex)) {
	traverseInBox(t.root, box, f)
}

func traverseInBox(n *kdNode, box rng.AxisBox, f func(idx.MDIndex)) {
	if n == nil {
		return
	}
	if n.left == nil && n.right == nil {
		if box.InRange(n.p) {
			f(n.p)
		}
		return
	}
	for _, c := range []*kdNode{n.left, n.right} {
		if c == nil {
			continue
		}
		if boxSubset(c.bbox, box) {
			traverseAll(c, f)
		} else if rng.IntersectRange(c.bbox, box) {
			traverseInBox(c, box, f)
		}
	}
}

func traverseAll(n *kdNode, f func(idx.MDIndex)) {
	if n == nil {
		return
	}
	if n.left == nil && n.right == nil {
		f(n.p)
		return
	}
	traverseAll(n.left, f)
	traverseAll(n.right, f)
}

func boxSubset(a, b rng.AxisBox) bool {
	for k := 0; k < a.Ndim(); k++ {
		if a.Start[k] < b.Start[k] || a.End[k] > b.End[k] {
			return false
		}
	}
	return true
}
