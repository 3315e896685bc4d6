// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/cpmech/gofdm/idx"
)

// weno5 combines five consecutive first-difference estimates v[0..4] into a single fifth-order
// WENO derivative estimate, following the Jiang–Shu smoothness/weight recipe (§4.4): eps in the
// weight denominator is 1e-6·max(v_i²)+1e-99.
func weno5(v [5]float64) float64 {
	phi1 := v[0]/3 - 7*v[1]/6 + 11*v[2]/6
	phi2 := -v[1]/6 + 5*v[2]/6 + v[3]/3
	phi3 := v[2]/3 + 5*v[3]/6 - v[4]/6

	s1 := 13.0/12.0*sq(v[0]-2*v[1]+v[2]) + 0.25*sq(v[0]-4*v[1]+3*v[2])
	s2 := 13.0/12.0*sq(v[1]-2*v[2]+v[3]) + 0.25*sq(v[1]-v[3])
	s3 := 13.0/12.0*sq(v[2]-2*v[3]+v[4]) + 0.25*sq(3*v[2]-4*v[3]+v[4])

	maxSq := 0.0
	for _, x := range v {
		if x*x > maxSq {
			maxSq = x * x
		}
	}
	eps := 1e-6*maxSq + 1e-99

	const c1, c2, c3 = 0.1, 0.6, 0.3
	a1 := c1 / sq(s1+eps)
	a2 := c2 / sq(s2+eps)
	a3 := c3 / sq(s3+eps)
	sum := a1 + a2 + a3
	w1, w2, w3 := a1/sum, a2/sum, a3/sum

	return w1*phi1 + w2*phi2 + w3*phi3
}

func sq(x float64) float64 { return x * x }

// D1WENO53Upwind estimates d/dx_k using the right-biased ("+") WENO5 stencil over six points
// [i-2, i+3]. bc_width = 3 (§4.4); falls back through a decayable chain to a first-order biased
// scheme near boundaries (see Decayable in decay.go).
type D1WENO53Upwind struct {
	Base
	A    Expression
	Axis int
}

func NewD1WENO53Upwind(a Expression, axis int) *D1WENO53Upwind { return &D1WENO53Upwind{A: a, Axis: axis} }

func (o *D1WENO53Upwind) Prepare() {
	if o.markPrepared() {
		return
	}
	prepareArgs(o.A)
	lo, hi := zeros(o.A.Ndim()), zeros(o.A.Ndim())
	lo[o.Axis], hi[o.Axis] = 2, 3
	o.shrinkByFootprint(meshOf(o.A), combineNames("weno5up", o.A), []Expression{o.A}, lo, hi)
}

func (o *D1WENO53Upwind) at(i idx.MDIndex, d int) idx.MDIndex {
	out := i.Clone()
	out[o.Axis] += d
	return out
}

func (o *D1WENO53Upwind) diffs(i idx.MDIndex, eval func(idx.MDIndex) float64) [5]float64 {
	// v[0..4] = D_{i+2}, D_{i+1}, D_i, D_{i-1}, D_{i-2}, D_j = (u[j+1]-u[j])/dxFace(j)
	var v [5]float64
	for k, j := range []int{2, 1, 0, -1, -2} {
		dx := faceDx(o.A, o.Axis, o.at(i, j))
		v[k] = (eval(o.at(i, j+1)) - eval(o.at(i, j))) / dx
	}
	return v
}

func (o *D1WENO53Upwind) EvalAt(i idx.MDIndex) float64     { return weno5(o.diffs(i, o.A.EvalAt)) }
func (o *D1WENO53Upwind) EvalSafeAt(i idx.MDIndex) float64 { return weno5(o.diffs(i, o.A.EvalSafeAt)) }
func (o *D1WENO53Upwind) CouldSafeEval(i idx.MDIndex) bool {
	for j := -2; j <= 3; j++ {
		if !o.A.CouldSafeEval(o.at(i, j)) {
			return false
		}
	}
	return true
}

// D1WENO53Downwind mirrors D1WENO53Upwind using the left-biased ("-") stencil over [i-3, i+2].
type D1WENO53Downwind struct {
	Base
	A    Expression
	Axis int
}

func NewD1WENO53Downwind(a Expression, axis int) *D1WENO53Downwind {
	return &D1WENO53Downwind{A: a, Axis: axis}
}

func (o *D1WENO53Downwind) Prepare() {
	if o.markPrepared() {
		return
	}
	prepareArgs(o.A)
	lo, hi := zeros(o.A.Ndim()), zeros(o.A.Ndim())
	lo[o.Axis], hi[o.Axis] = 3, 2
	o.shrinkByFootprint(meshOf(o.A), combineNames("weno5down", o.A), []Expression{o.A}, lo, hi)
}

func (o *D1WENO53Downwind) at(i idx.MDIndex, d int) idx.MDIndex {
	out := i.Clone()
	out[o.Axis] += d
	return out
}

func (o *D1WENO53Downwind) diffs(i idx.MDIndex, eval func(idx.MDIndex) float64) [5]float64 {
	// v[0..4] = D_{i-3}, D_{i-2}, D_{i-1}, D_i, D_{i+1}
	var v [5]float64
	for k, j := range []int{-3, -2, -1, 0, 1} {
		dx := faceDx(o.A, o.Axis, o.at(i, j))
		v[k] = (eval(o.at(i, j+1)) - eval(o.at(i, j))) / dx
	}
	return v
}

func (o *D1WENO53Downwind) EvalAt(i idx.MDIndex) float64 { return weno5(o.diffs(i, o.A.EvalAt)) }
func (o *D1WENO53Downwind) EvalSafeAt(i idx.MDIndex) float64 {
	return weno5(o.diffs(i, o.A.EvalSafeAt))
}
func (o *D1WENO53Downwind) CouldSafeEval(i idx.MDIndex) bool {
	for j := -3; j <= 2; j++ {
		if !o.A.CouldSafeEval(o.at(i, j)) {
			return false
		}
	}
	return true
}
