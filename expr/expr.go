// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package expr implements the lazy, compile-time-composed expression graph (§3.6, §4.4): every
// node — a stored Field or an operator over other nodes — exposes the same evalAt/evalSafeAt/
// couldSafeEval/prepare contract, carrying enough range/BC metadata to be evaluated safely near
// domain, patch and boundary-condition interfaces.
package expr

import (
	"github.com/cpmech/gofdm/field"
	"github.com/cpmech/gofdm/idx"
	"github.com/cpmech/gofdm/mesh"
	"github.com/cpmech/gofdm/rng"
	"github.com/cpmech/gosl/chk"
)

// Expression is the uniform contract every tree node satisfies (§3.6). A *field.Field implements
// it directly (it is the tree's leaf type); operators in this package implement it by embedding
// Base and filling in EvalAt/EvalSafeAt/CouldSafeEval/Prepare.
type Expression interface {
	Name() string
	Ndim() int
	Mesh() *mesh.CartesianMesh
	LocAt(d int) field.Location
	AssignableRange() rng.AxisBox
	AccessibleRange() rng.AxisBox
	LocalRange() rng.AxisBox
	LogicalRange() rng.AxisBox
	EvalAt(i idx.MDIndex) float64
	EvalSafeAt(i idx.MDIndex) float64
	CouldSafeEval(i idx.MDIndex) bool
	Prepare()
}

// Base holds the metadata every derived (non-leaf) node publishes after prepare(): its name, the
// mesh it is defined over, and its four ranges. Derived expressions are read-only, so
// AssignableRange is always empty (§4.4 "prepare... empties assignableRange").
type Base struct {
	NameStr    string
	MeshRef    *mesh.CartesianMesh
	LocVec     []field.Location
	Accessible rng.AxisBox
	Local      rng.AxisBox
	Logical    rng.AxisBox
	prepared   bool
}

func (b *Base) Name() string                { return b.NameStr }
func (b *Base) Ndim() int                   { return b.MeshRef.Ndim() }
func (b *Base) Mesh() *mesh.CartesianMesh   { return b.MeshRef }
func (b *Base) LocAt(d int) field.Location  { return b.LocVec[d] }
func (b *Base) AssignableRange() rng.AxisBox { return rng.AxisBox{} }
func (b *Base) AccessibleRange() rng.AxisBox      { return b.Accessible }
func (b *Base) LocalRange() rng.AxisBox           { return b.Local }
func (b *Base) LogicalRange() rng.AxisBox         { return b.Logical }

// CouldSafeEval defaults to "inside AccessibleRange"; operators with BC-reachable footprints
// (derivative/interpolation ops near a boundary) override this.
func (b *Base) CouldSafeEval(i idx.MDIndex) bool { return b.Accessible.InRange(i) }

// shrinkByFootprint sets Accessible/Local/Logical to the intersection of every argument's
// accessible range, then shrinks each axis by bcWidth on the face(s) the operator consumes
// (§4.4's "shrinks accessibleRange/localRange/logicalRange by the operator's footprint").
func (b *Base) shrinkByFootprint(mshRef *mesh.CartesianMesh, name string, args []Expression, shrinkLow, shrinkHigh []int) {
	if len(args) == 0 {
		chk.Panic("expr.Base.shrinkByFootprint: at least one argument required")
	}
	b.MeshRef = mshRef
	b.NameStr = name
	b.LocVec = make([]field.Location, args[0].Ndim())
	for k := range b.LocVec {
		b.LocVec[k] = args[0].LocAt(k)
	}
	acc := args[0].AccessibleRange()
	for _, a := range args[1:] {
		acc = rng.Intersect(acc, a.AccessibleRange())
	}
	ndim := acc.Ndim()
	for k := 0; k < ndim; k++ {
		lo, hi := 0, 0
		if shrinkLow != nil {
			lo = shrinkLow[k]
		}
		if shrinkHigh != nil {
			hi = shrinkHigh[k]
		}
		acc = acc.ShrinkAxis(k, lo, hi)
	}
	b.Accessible = acc
	b.Local = acc
	b.Logical = acc
}

// markPrepared guards against redoing the range computation on a second prepare() call, making
// prepare idempotent (§8 invariant 3: "calling prepare() twice... leaves metadata unchanged").
func (b *Base) markPrepared() bool {
	if b.prepared {
		return true
	}
	b.prepared = true
	return false
}

// prepareArgs calls Prepare on every argument (bottom-up composition)
func prepareArgs(args ...Expression) {
	for _, a := range args {
		a.Prepare()
	}
}

func combineNames(op string, args ...Expression) string {
	s := op + "("
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		s += a.Name()
	}
	return s + ")"
}

func meshOf(args ...Expression) *mesh.CartesianMesh {
	return args[0].Mesh()
}

func zeros(n int) []int { return make([]int, n) }
