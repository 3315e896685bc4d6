// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqn

import (
	"github.com/cpmech/gofdm/field"
	"github.com/cpmech/gofdm/idx"
)

// This file mirrors the linear numeric finite-difference operators of package expr (fd.go) in
// symbolic form (WENO operators have no symbolic twin), operating on StencilField views instead of plain Expression leaves. Equation
// lambdas compose these directly (§4.5 step 1: "Substitute these views into the equation's
// lambda to obtain a symbolic expression"). Kept as a small, purpose-built set rather than a
// generic dual-mode walk of the expr tree — the symbolic and numeric evaluation contracts return
// different types (Stencil vs. float64), so the two trees are built independently from the same
// StencilField/Field leaf, per the EvalAtSym/EvalSafeAtSym split already established in
// field/stencil.go.

func faceDxSym(s *field.StencilField, axis int, i idx.MDIndex) float64 {
	m := s.Mesh()
	if s.LocAt(axis) == field.Corner {
		return m.Dx(axis, i[axis])
	}
	return (m.Dx(axis, i[axis]) + m.Dx(axis, i[axis]+1)) / 2
}

func faceDxDownSym(s *field.StencilField, axis int, i idx.MDIndex) float64 {
	m := s.Mesh()
	if s.LocAt(axis) == field.Corner {
		return m.Dx(axis, i[axis]-1)
	}
	return (m.Dx(axis, i[axis]-1) + m.Dx(axis, i[axis])) / 2
}

// D1UpwindSym is the symbolic twin of expr.D1FirstOrderBiasedUpwind: (u[i+e]-u[i])/dxFace.
func D1UpwindSym(s *field.StencilField, axis int, i idx.MDIndex) field.Stencil {
	plus := i.Clone()
	plus[axis]++
	dx := faceDxSym(s, axis, i)
	return field.Sub(s.EvalSafeAtSym(plus), s.EvalSafeAtSym(i)).Scale(1 / dx)
}

// D1DownwindSym is the symbolic twin of expr.D1FirstOrderBiasedDownwind: (u[i]-u[i-e])/dxFace.
func D1DownwindSym(s *field.StencilField, axis int, i idx.MDIndex) field.Stencil {
	minus := i.Clone()
	minus[axis]--
	dx := faceDxDownSym(s, axis, i)
	return field.Sub(s.EvalSafeAtSym(i), s.EvalSafeAtSym(minus)).Scale(1 / dx)
}

// D2CenteredSym is the symbolic twin of expr.D2SecondOrderCentered, the three-point Laplacian
// stencil on a (possibly non-uniform) mesh along axis: ((u+ - u0)/dxR - (u0 - u-)/dxL)/((dxL+dxR)/2).
func D2CenteredSym(s *field.StencilField, axis int, i idx.MDIndex) field.Stencil {
	plus, minus := i.Clone(), i.Clone()
	plus[axis]++
	minus[axis]--
	dxR := faceDxSym(s, axis, i)
	dxL := faceDxDownSym(s, axis, i)
	u0 := s.EvalSafeAtSym(i)
	right := field.Sub(s.EvalSafeAtSym(plus), u0).Scale(1 / dxR)
	left := field.Sub(u0, s.EvalSafeAtSym(minus)).Scale(1 / dxL)
	return field.Sub(right, left).Scale(1 / ((dxL + dxR) / 2))
}

// LaplacianSym sums D2CenteredSym over every axis — the symbolic n-dimensional Laplacian used by
// the manufactured-solution Poisson examples (§8).
func LaplacianSym(s *field.StencilField, i idx.MDIndex) field.Stencil {
	out := field.Stencil{}
	for d := 0; d < s.Ndim(); d++ {
		out = field.Add(out, D2CenteredSym(s, d, i))
	}
	return out
}
