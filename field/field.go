// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"math"

	"github.com/cpmech/gofdm/idx"
	"github.com/cpmech/gofdm/mesh"
	"github.com/cpmech/gofdm/rng"
	"github.com/cpmech/gosl/chk"
)

// Field is a typed buffer of cell/corner values anchored to a mesh (§3.5). It is itself a leaf
// of the expression tree: it implements the same EvalAt/EvalSafeAt/CouldSafeEval/Prepare
// contract as every operator node, consulting its BC descriptors to manufacture a ghost value
// for an index that lies one layer outside Accessible along a single axis.
type Field struct {
	FieldMesh *mesh.CartesianMesh
	FieldName string
	Loc       []Location // per axis
	BCStart   []BC       // per axis, low end
	BCEnd     []BC       // per axis, high end

	Assignable rng.AxisBox // writable interior
	Accessible rng.AxisBox // where EvalAt is valid, including BC ghost extension
	Local      rng.AxisBox // this worker's shard of Accessible
	Logical    rng.AxisBox // Accessible widened by BC ghost padding

	Offset   []int         // index offset, for distributed parallelization
	Padding  int           // padding width, for distributed parallelization
	SplitMap []rng.AxisBox // rank -> assignable shard, for distributed parallelization
	Neighbors []Neighbor

	values ndArray
	time   float64 // current time, passed to BC functors
}

// NewField allocates a Field over m with the given per-axis location and BCs. assignable is the
// field's writable interior; bcWidth is the one-sided ghost width every BC/operator may reach
// into (Accessible is assignable widened by bcWidth on every face; Logical is Accessible widened
// by the one ghost layer a BC reaches).
func NewField(name string, m *mesh.CartesianMesh, loc []Location, bcStart, bcEnd []BC, assignable rng.AxisBox, bcWidth int) *Field {
	ndim := m.Ndim()
	if len(loc) != ndim || len(bcStart) != ndim || len(bcEnd) != ndim {
		chk.Panic("dim-mismatch: NewField %q: loc/bc slices must have length %d", name, ndim)
	}
	accessible := assignable.Shrink(-bcWidth)
	f := &Field{
		FieldMesh:  m,
		FieldName:  name,
		Loc:        append([]Location{}, loc...),
		BCStart:    append([]BC{}, bcStart...),
		BCEnd:      append([]BC{}, bcEnd...),
		Assignable: assignable,
		Accessible: accessible,
		Local:      accessible,
		Logical:    accessible.Shrink(-1),
		Offset:     make([]int, ndim),
	}
	f.values = newNdArray(accessible)
	return f
}

// Name returns the field's name
func (f *Field) Name() string { return f.FieldName }

// Ndim returns the number of axes
func (f *Field) Ndim() int { return f.FieldMesh.Ndim() }

// Mesh returns the field's mesh
func (f *Field) Mesh() *mesh.CartesianMesh { return f.FieldMesh }

// LocAt returns the location (Center/Corner) along axis d
func (f *Field) LocAt(d int) Location { return f.Loc[d] }

// AssignableRange returns the writable interior range
func (f *Field) AssignableRange() rng.AxisBox { return f.Assignable }

// AccessibleRange returns the range over which EvalAt is valid
func (f *Field) AccessibleRange() rng.AxisBox { return f.Accessible }

// LocalRange returns this worker's shard of AccessibleRange
func (f *Field) LocalRange() rng.AxisBox { return f.Local }

// LogicalRange returns AccessibleRange widened by BC ghost padding
func (f *Field) LogicalRange() rng.AxisBox { return f.Logical }

// SetTime sets the time passed to BC functors on the next EvalSafeAt ghost computation
func (f *Field) SetTime(t float64) { f.time = t }

// Get reads the raw stored value at i (i must be within AccessibleRange)
func (f *Field) Get(i idx.MDIndex) float64 { return f.values.At(i) }

// SetValue writes x at i (i must be within AccessibleRange)
func (f *Field) SetValue(i idx.MDIndex, x float64) { f.values.Set(i, x) }

// EvalAt returns the stored value at i; caller must guarantee CouldSafeEval(i).
func (f *Field) EvalAt(i idx.MDIndex) float64 {
	return f.values.At(i)
}

// CouldSafeEval tells whether i is directly accessible, or within one BC reach of it.
func (f *Field) CouldSafeEval(i idx.MDIndex) bool {
	if f.Accessible.InRange(i) {
		return true
	}
	return f.withinOneBCReach(i)
}

// EvalSafeAt evaluates at i, consulting BC descriptors when i lies outside AccessibleRange but
// within one BC reach (§3.6, §4.4).
func (f *Field) EvalSafeAt(i idx.MDIndex) float64 {
	if f.Accessible.InRange(i) {
		return f.values.At(i)
	}
	v, ok := f.ghostValue(i)
	if !ok {
		chk.Panic("CannotEvalSafeAt: field %q has no BC support for index %v", f.FieldName, i)
	}
	return v
}

// withinOneBCReach tells whether ghostValue can supply a value at i: i is out of range by one
// ghost layer on its first overflowing axis, and that face's BC is not Internal.
func (f *Field) withinOneBCReach(i idx.MDIndex) bool {
	_, ok := f.ghostValue(i)
	return ok
}

// ghostValue manufactures the value at an out-of-Accessible index i by mirroring/wrapping/
// extrapolating per the BC declared on the axis where i overflows. Only single-axis overflow by
// one layer is supported: the first overflowing axis decides, and a corner index whose mirror is
// still outside Accessible is reported as out of BC reach.
func (f *Field) ghostValue(i idx.MDIndex) (float64, bool) {
	for d := 0; d < f.Ndim(); d++ {
		if i[d] < f.Accessible.Start[d] {
			if f.Accessible.Start[d]-i[d] > 1 {
				return 0, false // more than one ghost layer deep: out of BC reach
			}
			return f.reflectOrWrap(i, d, true)
		}
		if i[d] >= f.Accessible.End[d] {
			if i[d]-f.Accessible.End[d] > 0 {
				return 0, false
			}
			return f.reflectOrWrap(i, d, false)
		}
	}
	return 0, false
}

func (f *Field) reflectOrWrap(i idx.MDIndex, axis int, atLow bool) (float64, bool) {
	bc := f.BCEnd[axis]
	if atLow {
		bc = f.BCStart[axis]
	}
	mirror := i.Clone()
	switch bc.Kind {
	case Periodic:
		span := f.Accessible.End[axis] - f.Accessible.Start[axis]
		if atLow {
			mirror[axis] += span
		} else {
			mirror[axis] -= span
		}
	case Symm:
		mirror[axis] = reflectCoord(i[axis], f.Accessible, axis, atLow)
	case ASymm:
		mirror[axis] = reflectCoord(i[axis], f.Accessible, axis, atLow)
		if !f.Accessible.InRange(mirror) {
			return 0, false
		}
		return -f.values.At(mirror), true
	case Dirichlet, Neumann:
		return f.bcExtrapolate(i, axis, atLow, bc)
	case Internal:
		return 0, false
	default:
		return 0, false
	}
	if !f.Accessible.InRange(mirror) {
		return 0, false
	}
	return f.values.At(mirror), true
}

func reflectCoord(v int, r rng.AxisBox, axis int, atLow bool) int {
	if atLow {
		return 2*r.Start[axis] - v - 1
	}
	return 2*r.End[axis] - v - 1
}

// bcExtrapolate manufactures the ghost value for Dirichlet/Neumann BCs from the nearest interior
// value and the BC functor, using one-sided extrapolation based on mesh spacing.
func (f *Field) bcExtrapolate(i idx.MDIndex, axis int, atLow bool, bc BC) (float64, bool) {
	interior := i.Clone()
	if atLow {
		interior[axis] = f.Accessible.Start[axis]
	} else {
		interior[axis] = f.Accessible.End[axis] - 1
	}
	if !f.Accessible.InRange(interior) {
		return 0, false
	}
	x := f.faceCoord(interior, axis)
	bv := bc.Value(f.time, x)
	if math.IsNaN(bv) {
		return math.NaN(), true // InvalidBCFunctor: propagated as NaN, not fatal (§7)
	}
	switch bc.Kind {
	case Dirichlet:
		return 2*bv - f.values.At(interior), true
	case Neumann:
		dx := f.FieldMesh.Dx(axis, interior[axis])
		if atLow {
			return f.values.At(interior) - bv*dx, true
		}
		return f.values.At(interior) + bv*dx, true
	}
	return 0, false
}

func (f *Field) faceCoord(i idx.MDIndex, axis int) []float64 {
	x := make([]float64, f.Ndim())
	for d := 0; d < f.Ndim(); d++ {
		x[d] = f.FieldMesh.X(d, i[d])
	}
	_ = axis
	return x
}

// Prepare is a no-op for a plain stored Field: its ranges are fixed at construction (only
// derived expressions shrink their ranges during prepare).
func (f *Field) Prepare() {}

func (f *Field) newRangedIndex(r rng.AxisBox) idx.RangedIndex { return idx.NewRangedIndex(r) }
