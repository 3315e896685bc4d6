// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/gosl/chk"

// meshAxisBuilder constructs one axis of a CartesianMesh: given logical node coordinates, it
// extends them into the padding region per the axis' ExtMode (§4.2, §9 "setBaseMesh").
type meshAxisBuilder struct {
	pad  int
	mode ExtMode
}

// buildFromSamples builds an axis1D whose logical range starts at `start` and whose logical
// node coordinates are exactly `xs` (len(xs) nodes).
func (b *meshAxisBuilder) buildFromSamples(start int, xs []float64) axis1D {
	n := len(xs)
	if n < 2 {
		chk.Panic("invalid-mesh-dims: an axis needs at least 2 nodes, got %d", n)
	}
	a := axis1D{
		logicalStart: start,
		logicalEnd:   start + n,
		pad:          b.pad,
		mode:         b.mode,
	}
	extStart, extEnd := a.extStart(), a.extEnd()
	a.x = newOffsetVec(extStart, extEnd-extStart)
	a.dx = newOffsetVec(extStart, extEnd-extStart-1)
	a.idx = newOffsetVec(extStart, extEnd-extStart-1)

	for i, v := range xs {
		a.x.setAt(a.logicalStart+i, v)
	}
	for j := a.logicalStart; j < a.logicalEnd-1; j++ {
		dx := a.x.at(j+1) - a.x.at(j)
		a.dx.setAt(j, dx)
		a.idx.setAt(j, 1/dx)
	}
	extendAxis(&a)
	return a
}

// MeshBuilder assembles a CartesianMesh one axis at a time, mirroring the ergonomics of the
// teacher's `fem.NewDomains`/`inp.ReadSim` fluent setup: `NewMeshBuilder(ndim).SetPadWidth(w).
// SetAxisUniform(0, 0, 1, n, Symm).Build()`.
type MeshBuilder struct {
	ndim int
	pad  int
	axes []axis1D
	set  []bool
}

// NewMeshBuilder starts building a mesh with the given number of axes
func NewMeshBuilder(ndim int) *MeshBuilder {
	return &MeshBuilder{ndim: ndim, pad: 3, axes: make([]axis1D, ndim), set: make([]bool, ndim)}
}

// SetPadWidth sets the ghost width used for every axis (default 3)
func (b *MeshBuilder) SetPadWidth(w int) *MeshBuilder {
	b.pad = w
	return b
}

// SetAxisUniform sets axis d to n uniformly-spaced nodes over [lo,hi] with extension mode m
func (b *MeshBuilder) SetAxisUniform(d int, lo, hi float64, n int, m ExtMode) *MeshBuilder {
	if n < 2 {
		chk.Panic("invalid-mesh-dims: axis %d needs at least 2 nodes, got %d", d, n)
	}
	xs := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = lo + (hi-lo)/float64(n-1)*float64(i)
	}
	return b.SetAxisSamples(d, 0, xs, m)
}

// SetAxisSamples sets axis d's logical node coordinates explicitly, starting at logical index
// `start`, with extension mode m
func (b *MeshBuilder) SetAxisSamples(d, start int, xs []float64, m ExtMode) *MeshBuilder {
	bld := &meshAxisBuilder{pad: b.pad, mode: m}
	b.axes[d] = bld.buildFromSamples(start, xs)
	b.set[d] = true
	return b
}

// Build finalises and returns the mesh; panics if any axis was left unset
func (b *MeshBuilder) Build() *CartesianMesh {
	for d, ok := range b.set {
		if !ok {
			chk.Panic("invalid-mesh-dims: axis %d was never set", d)
		}
	}
	return &CartesianMesh{axes: b.axes}
}

// extendAxis fills the ghost/padding region of a per the axis' ExtMode (§4.2), then integrates
// the extended dx back into x outward from the logical boundary, exactly as the reference
// MeshBuilder::setExtMesh does.
func extendAxis(a *axis1D) {
	ls, le := a.logicalStart, a.logicalEnd
	es, ee := a.extStart(), a.extEnd()

	switch a.mode {
	case Symm:
		for i := es; i < ls; i++ {
			a.dx.setAt(i, a.dx.at(2*ls-1-i))
			a.idx.setAt(i, 1/a.dx.at(i))
		}
		for i := le - 1; i < ee-1; i++ {
			a.dx.setAt(i, a.dx.at(2*le-3-i))
			a.idx.setAt(i, 1/a.dx.at(i))
		}
	case Periodic:
		for i := es; i < ls; i++ {
			a.dx.setAt(i, a.dx.at(le-1-(ls-i)))
			a.idx.setAt(i, 1/a.dx.at(i))
		}
		for i := le - 1; i < ee-1; i++ {
			a.dx.setAt(i, a.dx.at(ls+i-le+1))
			a.idx.setAt(i, 1/a.dx.at(i))
		}
	case Uniform:
		for i := es; i < ls; i++ {
			a.dx.setAt(i, a.dx.at(ls))
			a.idx.setAt(i, 1/a.dx.at(i))
		}
		for i := le - 1; i < ee-1; i++ {
			a.dx.setAt(i, a.dx.at(le-2))
			a.idx.setAt(i, 1/a.dx.at(i))
		}
	}

	// integrate dx back into x, outward from the logical boundary
	for i := ls - 1; i >= es; i-- {
		a.x.setAt(i, a.x.at(i+1)-a.dx.at(i))
	}
	for i := le; i < ee; i++ {
		a.x.setAt(i, a.x.at(i-1)+a.dx.at(i-1))
	}
}
