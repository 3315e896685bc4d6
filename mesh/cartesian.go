// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesh implements structured Cartesian meshes and, for adaptive runs, the AMR patch
// hierarchy built on top of them (§3.3, §4.2, §4.3)
package mesh

import (
	"github.com/cpmech/gofdm/rng"
	"github.com/cpmech/gosl/chk"
)

// ExtMode selects how an axis' coordinates are extended into the ghost/padding region beyond
// the logical range (§3.3). Symm is the default.
type ExtMode int

const (
	Symm     ExtMode = iota // mirror dx across the boundary
	Periodic                // wrap dx from the opposite end
	Uniform                 // replicate the edge dx
)

// axis1D holds one axis' node coordinates and derived spacing over an extended range
// [logicalStart-pad, logicalEnd+pad), logicalStart/logicalEnd being the axis' logical bounds.
type axis1D struct {
	logicalStart, logicalEnd int
	pad                      int
	mode                     ExtMode
	x, dx, idx               offsetVec
}

func (a *axis1D) extStart() int { return a.logicalStart - a.pad }
func (a *axis1D) extEnd() int   { return a.logicalEnd + a.pad }

// CartesianMesh owns, per axis, node coordinates and derived spacing over an extended range
// (logical range padded by a ghost width), per §3.3.
type CartesianMesh struct {
	axes []axis1D
}

// Ndim returns the number of axes
func (m *CartesianMesh) Ndim() int { return len(m.axes) }

// X returns the coordinate of node i along axis d
func (m *CartesianMesh) X(d, i int) float64 { return m.axes[d].x.at(i) }

// Dx returns the spacing x[i+1]-x[i] along axis d
func (m *CartesianMesh) Dx(d, i int) float64 { return m.axes[d].dx.at(i) }

// Idx returns 1/Dx(d,i)
func (m *CartesianMesh) Idx(d, i int) float64 { return m.axes[d].idx.at(i) }

// LogicalRange returns the interior (non-padded) range of the mesh
func (m *CartesianMesh) LogicalRange() rng.AxisBox {
	start := make([]int, m.Ndim())
	end := make([]int, m.Ndim())
	for d, a := range m.axes {
		start[d], end[d] = a.logicalStart, a.logicalEnd
	}
	return rng.NewAxisBox(start, end)
}

// ExtendedRange returns the padded range over which X/Dx/Idx are valid
func (m *CartesianMesh) ExtendedRange() rng.AxisBox {
	start := make([]int, m.Ndim())
	end := make([]int, m.Ndim())
	for d, a := range m.axes {
		start[d], end[d] = a.extStart(), a.extEnd()
	}
	return rng.NewAxisBox(start, end)
}

// Equal checks pointwise coordinate equality on the common extended range (§4.2)
func (m *CartesianMesh) Equal(other *CartesianMesh) bool {
	if m.Ndim() != other.Ndim() {
		return false
	}
	for d := 0; d < m.Ndim(); d++ {
		start := maxInt(m.axes[d].extStart(), other.axes[d].extStart())
		end := minInt(m.axes[d].extEnd(), other.axes[d].extEnd())
		for i := start; i < end; i++ {
			if m.X(d, i) != other.X(d, i) {
				return false
			}
		}
	}
	return true
}

// Refine returns a new mesh with ratio*(dims-1)+1 nodes per axis, linearly subdividing each
// interval of the logical range and re-extending the padding per each axis' ExtMode (§4.2).
func (m *CartesianMesh) Refine(ratio int) *CartesianMesh {
	if ratio <= 0 {
		chk.Panic("invalid-mesh-dims: refinement ratio must be positive, got %d", ratio)
	}
	out := &CartesianMesh{axes: make([]axis1D, m.Ndim())}
	for d := range m.axes {
		src := &m.axes[d]
		oldDims := src.logicalEnd - src.logicalStart
		newDims := ratio*(oldDims-1) + 1

		b := &meshAxisBuilder{pad: src.pad, mode: src.mode}
		xs := make([]float64, newDims)
		xs[0] = src.x.at(src.logicalStart)
		for j := 0; j < oldDims-1; j++ {
			dx := src.dx.at(src.logicalStart + j)
			base := src.x.at(src.logicalStart + j)
			for k := 1; k <= ratio; k++ {
				xs[ratio*j+k] = base + dx/float64(ratio)*float64(k)
			}
		}
		out.axes[d] = b.buildFromSamples(0, xs)
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
