// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eqn implements the equation-to-linear-system compiler (§3.7, §4.5): binding
// lhs==rhs expressions, written as Go closures over colored StencilField views of a TargetSet,
// to the CSR assembly that a solver backend consumes.
package eqn

import (
	"github.com/cpmech/gofdm/field"
	"github.com/cpmech/gofdm/idx"
)

// StencilFunc is the symbolic form of one side of an equation: given the colored stencil views
// of every target (indexed the same way as the owning EqnSet's TargetSet) and a writable cell,
// it returns the sparse linear combination of unknowns (plus constant) that side contributes.
type StencilFunc func(views []*field.StencilField, i idx.MDIndex) field.Stencil

// Equation binds Lhs to Rhs via == (§3.7). Pinned marks a singular (pure-Neumann) system whose
// nullspace is removed by replacing its target's first assignable row with [1, 0, ...] / rhs=0.
type Equation struct {
	Lhs, Rhs StencilFunc
	Pinned   bool
}

// TargetSet is the tuple of target fields an EqnSet discretizes into; target j gets color j.
type TargetSet []*field.Field

// EqnSet is a tuple of equations paired with their TargetSet (§3.7). The k-th equation's k-th
// argument position is target k — i.e. Eqns[k] discretizes over Targets[k].AssignableRange().
// StaticMat selects the matrix-reuse policy (§4.5 "Matrix reuse"): when true, Compile keeps the
// row mapper of its first call and reuses it later; every call still rebuilds the whole system
// (row_ptr/col_idx as well as val/rhs).
type EqnSet struct {
	Eqns      []Equation
	Targets   TargetSet
	StaticMat bool

	cached *cachedStructure
}

// views builds one StencilField per target, colored by its position in the TargetSet.
func (s *EqnSet) views() []*field.StencilField {
	out := make([]*field.StencilField, len(s.Targets))
	for j, t := range s.Targets {
		out[j] = field.NewStencilField(t, j)
	}
	return out
}
