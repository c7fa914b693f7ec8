package flux

import (
	"github.com/notargets/hyperweno/utils"
	"gonum.org/v1/gonum/mat"
)

// Flux1D is a 1D conservation law q_t + f(q)_x = 0. Every method is pointwise: q holds the Meq
// conserved values of one cell. Eigenvalues are ordered to match the columns of R and the rows
// of L, with L = R^-1 and J = R diag(eig) L.
//
// States must be physically admissible, near vacuum states divide by zero without a guard.
type Flux1D interface {
	Name() string
	Meq() int
	Flux(q, f []float64)
	Jacobian(q []float64, J *mat.Dense)
	EigenVectors(q []float64, R, L *mat.Dense)
	EigenValues(q, lam []float64)
	// MaxWaveSpeed is the largest eigenvalue magnitude over every column of Q, ghosts included
	MaxWaveSpeed(Q utils.Matrix) float64
}

// FluxAll evaluates the flux for every column of Q
func FluxAll(fm Flux1D, Q utils.Matrix) (F utils.Matrix) {
	var (
		meq, nc = Q.Dims()
		q       = make([]float64, meq)
		f       = make([]float64, meq)
	)
	F = utils.NewMatrix(meq, nc)
	for i := 0; i < nc; i++ {
		Q.ColInto(i, q)
		fm.Flux(q, f)
		F.SetCol(i, f)
	}
	return
}

// JacobianTimes returns J(Q[:,i]) V[:,i] for every column i
func JacobianTimes(fm Flux1D, Q, V utils.Matrix) (R utils.Matrix) {
	var (
		meq, nc = Q.Dims()
		q       = make([]float64, meq)
		v       = make([]float64, meq)
		J       = mat.NewDense(meq, meq, nil)
		jv      = mat.NewVecDense(meq, nil)
	)
	R = utils.NewMatrix(meq, nc)
	for i := 0; i < nc; i++ {
		Q.ColInto(i, q)
		V.ColInto(i, v)
		fm.Jacobian(q, J)
		jv.MulVec(J, mat.NewVecDense(meq, v))
		R.SetCol(i, jv.RawVector().Data)
	}
	return
}

// maxOverColumns applies speed to each column of Q and returns the maximum
func maxOverColumns(Q utils.Matrix, speed func(q []float64) float64) (vmax float64) {
	var (
		meq, nc = Q.Dims()
		q       = make([]float64, meq)
	)
	for i := 0; i < nc; i++ {
		Q.ColInto(i, q)
		if s := speed(q); s > vmax {
			vmax = s
		}
	}
	return
}
