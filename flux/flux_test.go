package flux

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/hyperweno/utils"
)

type modelStates struct {
	fm     Flux1D
	states [][]float64
}

func testModels() []modelStates {
	eu := NewEuler(1.4)
	qa, qb := make([]float64, 3), make([]float64, 3)
	eu.Conserved(1.0, 0.3, 1.0, qa)
	eu.Conserved(0.125, -1.2, 0.1, qb)
	return []modelStates{
		{NewAdvection(1.5), [][]float64{{0.3}, {-2}}},
		{NewBurgers(), [][]float64{{0.7}, {-0.4}}},
		{NewBuckleyLeverett(1. / 3.), [][]float64{{0.2}, {0.65}}},
		{eu, [][]float64{qa, qb}},
		{NewShallowWater(9.81), [][]float64{{3, 0.5}, {1, -2}}},
	}
}

func TestEigenDecomposition(t *testing.T) {
	for _, tm := range testModels() {
		meq := tm.fm.Meq()
		for _, q := range tm.states {
			var (
				J     = mat.NewDense(meq, meq, nil)
				R     = mat.NewDense(meq, meq, nil)
				L     = mat.NewDense(meq, meq, nil)
				lam   = make([]float64, meq)
				RD    = mat.NewDense(meq, meq, nil)
				RDL   = mat.NewDense(meq, meq, nil)
				LR    = mat.NewDense(meq, meq, nil)
				ident = mat.NewDiagDense(meq, utils.ConstArray(meq, 1))
			)
			tm.fm.Jacobian(q, J)
			tm.fm.EigenVectors(q, R, L)
			tm.fm.EigenValues(q, lam)
			RD.Mul(R, mat.NewDiagDense(meq, lam))
			RDL.Mul(RD, L)
			assert.True(t, mat.EqualApprox(J, RDL, 1.e-12), "%s: R diag(eig) L != J", tm.fm.Name())
			LR.Mul(L, R)
			assert.True(t, mat.EqualApprox(ident, LR, 1.e-12), "%s: L R != I", tm.fm.Name())
			// Eigenvalues are sorted ascending, matching the columns of R
			assert.True(t, sort.Float64sAreSorted(lam), tm.fm.Name())
			if meq > 1 {
				var eig mat.Eigen
				require.True(t, eig.Factorize(J, mat.EigenNone))
				vals := eig.Values(nil)
				re := make([]float64, meq)
				for i, v := range vals {
					re[i] = real(v)
					assert.InDelta(t, 0, imag(v), 1.e-12)
				}
				sort.Float64s(re)
				assert.InDeltaSlice(t, lam, re, 1.e-10, tm.fm.Name())
			}
		}
	}
}

func TestJacobianMatchesFlux(t *testing.T) {
	// Central difference of the flux in each conserved variable
	var (
		h = 1.e-6
	)
	for _, tm := range testModels() {
		meq := tm.fm.Meq()
		for _, q := range tm.states {
			J := mat.NewDense(meq, meq, nil)
			tm.fm.Jacobian(q, J)
			fp, fm := make([]float64, meq), make([]float64, meq)
			for j := 0; j < meq; j++ {
				qp, qm := append([]float64{}, q...), append([]float64{}, q...)
				qp[j] += h
				qm[j] -= h
				tm.fm.Flux(qp, fp)
				tm.fm.Flux(qm, fm)
				for i := 0; i < meq; i++ {
					assert.InDelta(t, (fp[i]-fm[i])/(2*h), J.At(i, j), 1.e-6, "%s J[%d,%d]", tm.fm.Name(), i, j)
				}
			}
		}
	}
}

func TestMaxWaveSpeed(t *testing.T) {
	{
		Q := utils.NewMatrix(1, 3, []float64{0.5, -3, 2})
		assert.Equal(t, 1.5, NewAdvection(-1.5).MaxWaveSpeed(Q))
		assert.Equal(t, 3., NewBurgers().MaxWaveSpeed(Q))
	}
	{
		// For M = 1/2 the maximum of f' on [0,1] is interior to the range
		bl := NewBuckleyLeverett(0.5)
		Q := utils.NewMatrix(1, 2, []float64{0, 1})
		var fine float64
		for _, q := range utils.Linspace(0, 1, 100001) {
			fine = math.Max(fine, bl.Fp(q))
		}
		assert.InDelta(t, fine, bl.MaxWaveSpeed(Q), 1.e-2)
		assert.LessOrEqual(t, bl.MaxWaveSpeed(Q), fine+1.e-8)
		assert.Equal(t, 0., bl.MaxWaveSpeed(utils.NewMatrix(1, 2, []float64{1, 1})))
	}
	{
		eu := NewEuler(1.4)
		Q := utils.NewMatrix(3, 2)
		q := make([]float64, 3)
		eu.Conserved(1, 0.5, 1, q)
		Q.SetCol(0, q)
		eu.Conserved(1, -2, 1.4, q)
		Q.SetCol(1, q)
		assert.InDelta(t, 2+math.Sqrt(1.4*1.4), eu.MaxWaveSpeed(Q), 1.e-12)
	}
	{
		sw := NewShallowWater(1)
		Q := utils.NewMatrix(2, 2, []float64{
			4, 1,
			4, -3,
		})
		assert.InDelta(t, 4., sw.MaxWaveSpeed(Q), 1.e-14)
	}
}

func TestEulerPrimitive(t *testing.T) {
	var (
		eu = NewEuler(1.4)
		q  = make([]float64, 3)
		f  = make([]float64, 3)
	)
	eu.Conserved(2, 3, 5, q)
	assert.InDeltaSlice(t, []float64{2, 6, 5/0.4 + 9}, q, 1.e-12)
	rho, u, p := eu.Primitive(q)
	assert.InDelta(t, 2., rho, 1.e-14)
	assert.InDelta(t, 3., u, 1.e-14)
	assert.InDelta(t, 5., p, 1.e-12)
	eu.Flux(q, f)
	assert.InDeltaSlice(t, []float64{6, 18 + 5, 3 * (q[2] + 5)}, f, 1.e-12)
}

func TestEulerSolidWall(t *testing.T) {
	var (
		eu       = NewEuler(1.4)
		mx, mbc  = 4, 2
		nc       = mx + 2*mbc
		Q        = utils.NewMatrix(3, nc)
		interior = []float64{1, 2, 3, 4}
	)
	for n := 0; n < 3; n++ {
		for i, v := range interior {
			Q.Set(n, mbc+i, v*float64(n+1))
		}
	}
	eu.SolidWallLeft(Q, mx, mbc)
	eu.SolidWallRight(Q, mx, mbc)
	assert.Equal(t, []float64{2, 1, 1, 2, 3, 4, 4, 3}, Q.Row(0))
	assert.Equal(t, []float64{-4, -2, 2, 4, 6, 8, -8, -6}, Q.Row(1))
	assert.Equal(t, []float64{6, 3, 3, 6, 9, 12, 12, 9}, Q.Row(2))
}

func TestColumnHelpers(t *testing.T) {
	var (
		sw = NewShallowWater(2)
		Q  = utils.NewMatrix(2, 2, []float64{
			1, 2,
			1, 4,
		})
		V = utils.NewMatrix(2, 2, []float64{
			1, 0,
			0, 1,
		})
	)
	F := FluxAll(sw, Q)
	assert.InDeltaSlice(t, []float64{1, 4, 1 + 1, 8 + 4}, F.Data(), 1.e-14)
	// J = [[0,1],[g h - u^2, 2u]]; column 0 (h=1,u=1) times (1,0), column 1 (h=2,u=2) times (0,1)
	JV := JacobianTimes(sw, Q, V)
	assert.InDeltaSlice(t, []float64{0, 1, 1, 4}, JV.Data(), 1.e-14)
}
