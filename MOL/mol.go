package MOL

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/hyperweno/FD1D"
	"github.com/notargets/hyperweno/WENO"
	"github.com/notargets/hyperweno/flux"
	"github.com/notargets/hyperweno/utils"
)

// MOL is the WENO finite difference semi-discretization of a conservation law on a Grid1D.
// Interface fluxes use an arithmetic mean interface state for the characteristic projection
// and a global Lax-Friedrichs splitting.
type MOL struct {
	Grid  *FD1D.Grid1D
	Model flux.Flux1D
	Weno  WENO.Scheme
	BC    FD1D.BCFunc
	// Extended stencil offsets relative to the cell right of an interface
	ext []int
	// -d/dx, 4th order centred, assembled once
	negDx utils.CSR
	pm    *utils.PartitionMap
}

func NewMOL(grid *FD1D.Grid1D, fm flux.Flux1D, sch WENO.Scheme, bc FD1D.BCFunc) (m *MOL) {
	if grid.Mbc < sch.Mbc() {
		panic("grid has fewer ghost cells than the WENO scheme requires")
	}
	st := sch.Stencil()
	m = &MOL{
		Grid:  grid,
		Model: fm,
		Weno:  sch,
		BC:    bc,
		ext:   append([]int{st[0] - 1}, st...),
		negDx: newNegDx(grid),
		pm:    utils.NewPartitionMap(1, grid.Mx+1),
	}
	return
}

// SetParallel splits the interface loop over np goroutines
func (m *MOL) SetParallel(np int) {
	m.pm = utils.NewPartitionMap(np, m.Grid.Mx+1)
}

// newNegDx builds -d/dx for the interior rows. Ghost rows are empty so the result is zero there.
func newNegDx(g *FD1D.Grid1D) utils.CSR {
	var (
		nc         = g.Ncells()
		iBeg, iEnd = g.Interior()
		c          = 1. / (12. * g.Dx)
		D          = utils.NewDOK(nc, nc)
	)
	D.SetName("negDx")
	for i := iBeg; i < iEnd; i++ {
		D.Set(i, i-2, -c)
		D.Set(i, i-1, 8*c)
		D.Set(i, i+1, -8*c)
		D.Set(i, i+2, c)
	}
	return D.ToCSR()
}

// TimeDerivatives applies the boundary conditions for time t and returns q_t and q_tt
func (m *MOL) TimeDerivatives(Q utils.Matrix, t float64) (Qt, Qtt utils.Matrix) {
	m.BC(Q, t)
	Qt = m.Qt(Q)
	Qtt = m.Qtt(Q, Qt, t)
	return
}

// Rhs applies the boundary conditions for time t and returns q_t
func (m *MOL) Rhs(Q utils.Matrix, t float64) utils.Matrix {
	m.BC(Q, t)
	return m.Qt(Q)
}

// Qt is the conservative WENO flux difference. The boundary conditions must already be applied
// to Q. Ghost cells of the result are zero.
func (m *MOL) Qt(Q utils.Matrix) (Qt utils.Matrix) {
	var (
		g     = m.Grid
		meq   = g.Meq
		nIf   = g.Mx + 1
		mm    = meq * meq
		Rall  = make([]float64, nIf*mm)
		Lall  = make([]float64, nIf*mm)
		F     = flux.FluxAll(m.Model, Q)
		Fhat  = utils.NewMatrix(meq, nIf)
		alpha float64
	)
	Q.SetReadOnly("Q")
	F.SetReadOnly("F")
	// Interface eigen decomposition and the global splitting speed
	amax := make([]float64, m.pm.ParallelDegree)
	m.pm.Run(func(bn, kMin, kMax int) {
		var (
			qa  = make([]float64, meq)
			lam = make([]float64, meq)
		)
		for k := kMin; k < kMax; k++ {
			m.interfaceState(Q, g.Mbc+k, qa)
			R := mat.NewDense(meq, meq, Rall[k*mm:(k+1)*mm])
			L := mat.NewDense(meq, meq, Lall[k*mm:(k+1)*mm])
			m.Model.EigenVectors(qa, R, L)
			m.Model.EigenValues(qa, lam)
			for _, l := range lam {
				amax[bn] = math.Max(amax[bn], math.Abs(l))
			}
		}
	})
	for _, a := range amax {
		alpha = math.Max(alpha, a)
	}
	// Characteristic reconstruction of the split fluxes
	m.pm.Run(func(bn, kMin, kMax int) {
		var (
			ns   = len(m.ext)
			w    = make([]float64, ns*meq)
			gc   = make([]float64, ns*meq)
			gp   = make([]float64, ns)
			gm   = make([]float64, ns)
			ghat = mat.NewVecDense(meq, nil)
			fhat = mat.NewVecDense(meq, nil)
			col  = make([]float64, meq)
		)
		for k := kMin; k < kMax; k++ {
			var (
				i = g.Mbc + k
				R = mat.NewDense(meq, meq, Rall[k*mm:(k+1)*mm])
				L = mat.NewDense(meq, meq, Lall[k*mm:(k+1)*mm])
			)
			// w = L q and g = L f at every extended stencil point, stored [point][field]
			for s, off := range m.ext {
				Q.ColInto(i+off, col)
				project(L, col, w[s*meq:(s+1)*meq])
				F.ColInto(i+off, col)
				project(L, col, gc[s*meq:(s+1)*meq])
			}
			for p := 0; p < meq; p++ {
				for s := 0; s < ns; s++ {
					gp[s] = 0.5 * (gc[s*meq+p] + alpha*w[s*meq+p])
					gm[s] = 0.5 * (gc[s*meq+p] - alpha*w[s*meq+p])
				}
				ghat.SetVec(p, m.Weno.ReconstructLeft(gp[:ns-1])+m.Weno.ReconstructRight(gm[1:]))
			}
			fhat.MulVec(R, ghat)
			for n := 0; n < meq; n++ {
				Fhat.Set(n, k, fhat.AtVec(n))
			}
		}
	})
	Qt = utils.NewMatrix(meq, g.Ncells())
	for n := 0; n < meq; n++ {
		var (
			qt = Qt.Row(n)
			fh = Fhat.Row(n)
		)
		for k := 0; k < g.Mx; k++ {
			qt[g.Mbc+k] = -(fh[k+1] - fh[k]) / g.Dx
		}
	}
	return
}

// Qtt is -d/dx (J(q) q_t). The boundary conditions for time t are applied to a copy of q_t so
// the centred difference sees consistent ghost values.
func (m *MOL) Qtt(Q, Qt utils.Matrix, t float64) (Qtt utils.Matrix) {
	var (
		QtB = Qt.Copy()
	)
	Qt.SetReadOnly("Qt")
	m.BC(QtB, t)
	Ft := flux.JacobianTimes(m.Model, Q, QtB)
	Qtt = utils.NewMatrix(m.Grid.Meq, m.Grid.Ncells())
	m.negDx.MulRows(Ft, Qtt)
	return
}

// interfaceState is the arithmetic mean of the cells either side of interface i-1/2
func (m *MOL) interfaceState(Q utils.Matrix, i int, qa []float64) {
	for n := range qa {
		row := Q.Row(n)
		qa[n] = 0.5 * (row[i-1] + row[i])
	}
}

func project(L *mat.Dense, v, out []float64) {
	var (
		n = len(v)
	)
	for r := 0; r < n; r++ {
		var sum float64
		for c := 0; c < n; c++ {
			sum += L.At(r, c) * v[c]
		}
		out[r] = sum
	}
}
