// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqn

import (
	"github.com/cpmech/gofdm/field"
	"github.com/cpmech/gofdm/idx"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/mpi"
)

// cachedStructure holds the row mapper from a prior Compile call, reused across solves when
// EqnSet.StaticMat is set (§4.5 "Matrix reuse"). Only the mapper is reused: each Compile call
// re-evaluates every row and rebuilds row_ptr/col_idx along with val/rhs.
type cachedStructure struct {
	mapper *ColoredBlockedMDRangeMapper
	nnzMax int
}

// CSR is the plain compressed-sparse-row form of an assembled system (§3.7 "CSR" glossary
// entry): row_ptr[r+1]-row_ptr[r] gives row r's nonzero count, col_idx/val hold its entries in
// the order they were collected. Native iterative backends (package solver) operate on this
// directly rather than through la.Triplet/CCMatrix, since the sparse matvec kernel is itself
// domain code, not an ambient concern gosl provides a ready-made routine for.
type CSR struct {
	RowPtr []int
	ColIdx []int
	Val    []float64
	Rhs    []float64
	N      int
}

// MatVec computes y = A*x using the CSR row layout.
func (m *CSR) MatVec(x []float64) []float64 {
	y := make([]float64, m.N)
	for r := 0; r < m.N; r++ {
		sum := 0.0
		for k := m.RowPtr[r]; k < m.RowPtr[r+1]; k++ {
			sum += m.Val[k] * x[m.ColIdx[k]]
		}
		y[r] = sum
	}
	return y
}

// System is the assembled linear system handed to a solver backend: A in both COO/triplet form
// (the corpus's la.Triplet, convertible to CSR via its own ToMatrix/CCMatrix — the representation
// an external direct-factorization backend expects) and plain CSR form (for the native iterative
// backends), the right-hand side, and the mapper used to build it (needed to scatter the
// solution vector back into targets).
type System struct {
	A      *la.Triplet
	Rows   *CSR
	Rhs    []float64
	Mapper *ColoredBlockedMDRangeMapper
}

// Compile discretizes every equation in s over its target's assignableRange and assembles the
// global linear system (§4.5). t is the current time, passed through to every BC functor a
// StencilField ghost term consults.
func (s *EqnSet) Compile(t float64) *System {
	if len(s.Eqns) != len(s.Targets) {
		chk.Panic("dim-mismatch: EqnSet has %d equations but %d targets", len(s.Eqns), len(s.Targets))
	}
	for _, tgt := range s.Targets {
		tgt.SetTime(t)
	}

	views := s.views()
	mapper := NewColoredBlockedMDRangeMapper(s.Targets)
	nrows := globalSize(mapper)

	if s.StaticMat && s.cached != nil {
		mapper = s.cached.mapper
	}

	// a conservative nnz estimate: 4*ndim+1 terms per row, about twice the 2*ndim+1 terms of a
	// centered Laplacian stencil.
	nnzEstimate := 1
	if len(s.Targets) > 0 {
		nnzEstimate = mapper.BlockSize() * (4*s.Targets[0].Ndim() + 1)
	}

	A := new(la.Triplet)
	A.Init(nrows, nrows, nnzEstimate)
	rhs := make([]float64, mapper.BlockSize())

	rowPtr := make([]int, 1, mapper.BlockSize()+1)
	colIdx := make([]int, 0, nnzEstimate)
	val := make([]float64, 0, nnzEstimate)

	for k, eqn := range s.Eqns {
		target := s.Targets[k]
		assignable := target.AssignableRange()
		pinRow := mapper.Row(k, assignable.Start)
		ri := idx.NewRangedIndex(assignable)
		for ri.Valid() {
			i := ri.MDIndex.Clone()
			row := mapper.Row(k, i)
			local := row - mapper.blockBase

			if eqn.Pinned && row == pinRow && ownsRow(mapper, row) {
				A.Put(row, row, 1)
				colIdx = append(colIdx, row)
				val = append(val, 1)
				rhs[local] = 0
				rowPtr = append(rowPtr, len(colIdx))
				ri.Inc()
				continue
			}

			diff := field.Sub(eqn.Lhs(views, i), eqn.Rhs(views, i)).Flatten()
			for _, term := range diff.Terms {
				if term.Coeff == 0 {
					continue
				}
				col := mapper.Row(term.Color, term.Index)
				A.Put(row, col, term.Coeff)
				colIdx = append(colIdx, col)
				val = append(val, term.Coeff)
			}
			rhs[local] = -diff.Const
			rowPtr = append(rowPtr, len(colIdx))
			ri.Inc()
		}
	}

	if s.StaticMat {
		s.cached = &cachedStructure{mapper: mapper, nnzMax: nnzEstimate}
	}

	rows := &CSR{RowPtr: rowPtr, ColIdx: colIdx, Val: val, Rhs: rhs, N: mapper.BlockSize()}
	return &System{A: A, Rows: rows, Rhs: rhs, Mapper: mapper}
}

// globalSize returns the total unknown count across every rank's block (Σ over ranks of
// BlockSize), i.e. the dimension of the dense global linear system (§4.5 step 3).
func globalSize(m *ColoredBlockedMDRangeMapper) int {
	if !mpi.IsOn() {
		return m.BlockSize()
	}
	n := mpi.Size()
	src := make([]float64, n)
	src[mpi.Rank()] = float64(m.BlockSize())
	dst := make([]float64, n)
	mpi.AllReduceSum(dst, src)
	total := 0
	for _, v := range dst {
		total += int(v)
	}
	return total
}

// ownsRow tells whether the given dense global row falls inside this rank's own block — pinning
// a target's first row (§4.5 step 5) must only be applied by the rank that actually assembles
// that row, since blockBase partitions the global row space disjointly across ranks.
func ownsRow(m *ColoredBlockedMDRangeMapper, row int) bool {
	return row >= m.blockBase && row < m.blockBase+m.BlockSize()
}

// Scatter writes x (the solution vector returned by a solver, indexed by this mapper's dense
// global rows) back into each target's assignable cells.
func (sys *System) Scatter(targets TargetSet, x []float64) {
	for k, t := range targets {
		ri := idx.NewRangedIndex(t.AssignableRange())
		for ri.Valid() {
			i := ri.MDIndex.Clone()
			row := sys.Mapper.Row(k, i)
			local := row - sys.Mapper.blockBase
			t.SetValue(i, x[local])
			ri.Inc()
		}
	}
}
