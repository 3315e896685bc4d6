// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import "github.com/cpmech/gofdm/eqn"

// Multigrid is a lightweight aggregation-based algebraic multigrid backend (§4.6, "structured-
// multigrid or algebraic multigrid family"): unknowns are grouped into fixed-size aggregates
// (pairs along the dense row order, which for a single-axis CSR coincides with geometric
// neighbors), a piecewise-constant prolongation/restriction pair is built from the aggregates,
// and the cycle alternates Jacobi pre/post-smoothing with a coarse-grid correction solved
// recursively until the coarse problem is small enough for a direct BiCGStab solve.
type Multigrid struct {
	p        Params
	smoother *Jacobi
	iterNum  int
	finalRes float64
}

func NewMultigrid() *Multigrid { return &Multigrid{smoother: NewJacobi()} }

func (o *Multigrid) Init(p Params) {
	o.p = p
	if o.p.NumPreRelax == 0 {
		o.p.NumPreRelax = 2
	}
	if o.p.NumPostRelax == 0 {
		o.p.NumPostRelax = 2
	}
	if o.p.MaxIter == 0 {
		o.p.MaxIter = 30
	}
	if o.p.Tol == 0 {
		o.p.Tol = 1e-10
	}
	o.smoother.Init(Params{MaxIter: 1})
}

func (o *Multigrid) Setup(sys *eqn.System) error { return o.smoother.Setup(sys) }
func (o *Multigrid) SetPrecond(Preconditioner)   {}
func (o *Multigrid) GetIterNum() int             { return o.iterNum }
func (o *Multigrid) GetFinalRes() float64        { return o.finalRes }
func (o *Multigrid) Dump(sys *eqn.System) error  { return dumpSystem(o.p.DumpPath, sys) }

// aggregate builds a coarse CSR by pairing consecutive fine unknowns (row-major order, so
// geometric neighbors on a 1D mesh and cache-adjacent on higher dimensions) and a piecewise-
// constant restriction/prolongation operator between the two levels.
func aggregate(sys *eqn.System) (coarse *eqn.CSR, restrict func([]float64) []float64, prolong func([]float64) []float64) {
	n := sys.Rows.N
	nc := (n + 1) / 2
	owner := make([]int, n)
	for i := 0; i < n; i++ {
		owner[i] = i / 2
	}
	restrict = func(r []float64) []float64 {
		rc := make([]float64, nc)
		for i, v := range r {
			rc[owner[i]] += v
		}
		return rc
	}
	prolong = func(ec []float64) []float64 {
		e := make([]float64, n)
		for i := range e {
			e[i] = ec[owner[i]]
		}
		return e
	}
	// coarse operator A_c = R*A*P via explicit matvecs on unit basis vectors (small nc expected
	// at the bottom of the recursion; fine for the aggregate sizes this solver targets).
	rowPtr := make([]int, nc+1)
	colIdx := []int{}
	val := []float64{}
	for rc := 0; rc < nc; rc++ {
		unit := make([]float64, nc)
		unit[rc] = 1
		col := sys.Rows.MatVec(prolong(unit))
		rowSparse := restrict(col)
		for cc, v := range rowSparse {
			if v != 0 {
				colIdx = append(colIdx, cc)
				val = append(val, v)
			}
		}
		rowPtr[rc+1] = len(colIdx)
	}
	coarse = &eqn.CSR{RowPtr: rowPtr, ColIdx: colIdx, Val: val, N: nc}
	return
}

func (o *Multigrid) vcycle(rows *eqn.CSR, rhs, x []float64, depth int) []float64 {
	sys := &eqn.System{Rows: rows, Rhs: rhs}
	smoother := NewJacobi()
	smoother.Setup(sys)
	for i := 0; i < o.p.NumPreRelax; i++ {
		x = smoother.sweep(sys, x)
	}
	if rows.N <= 8 || depth > 20 {
		bc := NewBiCGStab()
		bc.Init(Params{MaxIter: 200, Tol: 1e-12})
		bc.Solve(sys, x)
		return x
	}

	coarse, restrict, prolong := aggregate(sys)
	res := vecSub(rhs, rows.MatVec(x))
	resC := restrict(res)
	eC := make([]float64, coarse.N)
	eC = o.vcycle(coarse, resC, eC, depth+1)
	x = vecAdd(x, prolong(eC))

	for i := 0; i < o.p.NumPostRelax; i++ {
		x = smoother.sweep(sys, x)
	}
	return x
}

func (o *Multigrid) Solve(sys *eqn.System, x []float64) error {
	cur := append([]float64{}, x...)
	res0 := vecNorm(sys.Rhs)
	if res0 == 0 {
		res0 = 1
	}
	for it := 0; it < o.p.MaxIter; it++ {
		cur = o.vcycle(sys.Rows, sys.Rhs, cur, 0)
		o.iterNum = it + 1
		o.finalRes = vecNorm(vecSub(sys.Rhs, sys.Rows.MatVec(cur)))
		if o.finalRes < o.p.Tol*res0 {
			break
		}
	}
	copy(x, cur)
	return nil
}
