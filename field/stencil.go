// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"github.com/cpmech/gofdm/idx"
)

// Term is one entry of a Stencil: a coefficient-weighted reference to a single (color, index)
// unknown, emitted by a StencilField leaf when traversed by the equation compiler (§3.5, §4.5).
type Term struct {
	Color int
	Index idx.MDIndex
	Coeff float64
}

// Stencil is the symbolic result of evaluating an expression over StencilField leaves: a sparse
// linear combination of unknowns plus a constant (non-unknown) contribution. Arithmetic
// operators combine Stencils instead of numbers when their arguments are symbolic.
type Stencil struct {
	Terms []Term
	Const float64
}

// Scale multiplies every term and the constant by c
func (s Stencil) Scale(c float64) Stencil {
	out := Stencil{Terms: make([]Term, len(s.Terms)), Const: s.Const * c}
	for i, t := range s.Terms {
		out.Terms[i] = Term{Color: t.Color, Index: t.Index, Coeff: t.Coeff * c}
	}
	return out
}

// Add merges two stencils, concatenating terms (the equation compiler sums duplicate
// (color,index) terms when it flattens the row, so no merging happens here).
func Add(a, b Stencil) Stencil {
	out := Stencil{Terms: make([]Term, 0, len(a.Terms)+len(b.Terms)), Const: a.Const + b.Const}
	out.Terms = append(out.Terms, a.Terms...)
	out.Terms = append(out.Terms, b.Terms...)
	return out
}

// Sub is Add(a, b.Scale(-1))
func Sub(a, b Stencil) Stencil { return Add(a, b.Scale(-1)) }

// ConstStencil wraps a plain number as a Stencil with no unknown terms
func ConstStencil(c float64) Stencil { return Stencil{Const: c} }

// Flatten collapses duplicate (color, index) terms by summing their coefficients, producing the
// canonical row used by CSR assembly (§4.5 step 4).
func (s Stencil) Flatten() Stencil {
	type key struct {
		color int
		hash  uint64
	}
	order := []key{}
	byKey := map[key]*Term{}
	for _, t := range s.Terms {
		k := key{t.Color, t.Index.Hash()}
		if ex, ok := byKey[k]; ok {
			ex.Coeff += t.Coeff
			continue
		}
		cp := t
		order = append(order, k)
		byKey[k] = &cp
	}
	out := Stencil{Const: s.Const}
	for _, k := range order {
		out.Terms = append(out.Terms, *byKey[k])
	}
	return out
}

// StencilField is a symbolic view of a Field: EvalAtSym(i) returns a Stencil naming i (with
// coefficient 1) under the field's Color, instead of the number the embedded Field's EvalAt
// returns (§3.5). It reuses the underlying
// Field's ranges and BC metadata for prepare()/couldSafeEval() purposes.
type StencilField struct {
	*Field
	Color int
}

// NewStencilField wraps f as a symbolic view tagged with the given color
func NewStencilField(f *Field, color int) *StencilField {
	return &StencilField{Field: f, Color: color}
}

// EvalAtSym returns the symbolic stencil for index i: the single unknown (Color, i) with unit
// coefficient. Distinguished by name from Field.EvalAt (numeric) since a StencilField is used by
// the equation compiler's symbolic evaluation pass (§4.5 step 1), not the expression tree's
// numeric evaluation pass.
func (s *StencilField) EvalAtSym(i idx.MDIndex) Stencil {
	return Stencil{Terms: []Term{{Color: s.Color, Index: i.Clone(), Coeff: 1}}}
}

// EvalSafeAtSym consults the same BC descriptors as Field.EvalSafeAt, but produces a symbolic
// ghost term/constant instead of a number: Dirichlet/Neumann ghosts fold into a constant (their
// value is known), Symm/Periodic/ASymm ghosts fold into a (possibly negated) reference to the
// mirrored/wrapped interior unknown.
func (s *StencilField) EvalSafeAtSym(i idx.MDIndex) Stencil {
	if s.Accessible.InRange(i) {
		return s.EvalAtSym(i)
	}
	for d := 0; d < s.Ndim(); d++ {
		if i[d] < s.Accessible.Start[d] {
			return s.ghostStencil(i, d, true)
		}
		if i[d] >= s.Accessible.End[d] {
			return s.ghostStencil(i, d, false)
		}
	}
	return Stencil{}
}

func (s *StencilField) ghostStencil(i idx.MDIndex, axis int, atLow bool) Stencil {
	bc := s.BCEnd[axis]
	if atLow {
		bc = s.BCStart[axis]
	}
	mirror := i.Clone()
	switch bc.Kind {
	case Periodic:
		span := s.Accessible.End[axis] - s.Accessible.Start[axis]
		if atLow {
			mirror[axis] += span
		} else {
			mirror[axis] -= span
		}
		return s.EvalAtSym(mirror)
	case Symm:
		mirror[axis] = reflectCoord(i[axis], s.Accessible, axis, atLow)
		return s.EvalAtSym(mirror)
	case ASymm:
		mirror[axis] = reflectCoord(i[axis], s.Accessible, axis, atLow)
		return s.EvalAtSym(mirror).Scale(-1)
	case Dirichlet:
		interior := i.Clone()
		if atLow {
			interior[axis] = s.Accessible.Start[axis]
		} else {
			interior[axis] = s.Accessible.End[axis] - 1
		}
		x := s.faceCoord(interior, axis)
		bv := bc.Value(s.time, x)
		return Sub(ConstStencil(2*bv), s.EvalAtSym(interior))
	case Neumann:
		interior := i.Clone()
		if atLow {
			interior[axis] = s.Accessible.Start[axis]
		} else {
			interior[axis] = s.Accessible.End[axis] - 1
		}
		x := s.faceCoord(interior, axis)
		bv := bc.Value(s.time, x)
		dx := s.FieldMesh.Dx(axis, interior[axis])
		sign := 1.0
		if atLow {
			sign = -1.0
		}
		return Add(s.EvalAtSym(interior), ConstStencil(sign*bv*dx))
	}
	return Stencil{}
}

// CouldSafeEvalSym mirrors Field.CouldSafeEval for the symbolic evaluation pass.
func (s *StencilField) CouldSafeEvalSym(i idx.MDIndex) bool {
	return s.Field.CouldSafeEval(i)
}
