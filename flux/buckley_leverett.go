package flux

import (
	"math"

	"github.com/notargets/hyperweno/utils"
	"gonum.org/v1/gonum/mat"
)

// BuckleyLeverett is two phase flow in a porous medium with mobility ratio M,
//
//	f(q) = q^2 / (q^2 + M (1-q)^2)
//
// The flux is non-convex, so the wave speed is not monotone in q.
type BuckleyLeverett struct {
	M float64
}

// Number of samples of f' used to bound the wave speed between min(q) and max(q)
const blSamples = 100

func NewBuckleyLeverett(M float64) *BuckleyLeverett { return &BuckleyLeverett{M: M} }

func (bl *BuckleyLeverett) Name() string { return "BuckleyLeverett" }
func (bl *BuckleyLeverett) Meq() int     { return 1 }

// F is the scalar flux function
func (bl *BuckleyLeverett) F(q float64) float64 {
	var (
		q2 = q * q
	)
	return q2 / (q2 + bl.M*utils.POW(1-q, 2))
}

// Fp is the derivative of F
func (bl *BuckleyLeverett) Fp(q float64) float64 {
	var (
		den = q*q + bl.M*utils.POW(1-q, 2)
	)
	return 2 * bl.M * q * (1 - q) / (den * den)
}

func (bl *BuckleyLeverett) Flux(q, f []float64) { f[0] = bl.F(q[0]) }

func (bl *BuckleyLeverett) Jacobian(q []float64, J *mat.Dense) { J.Set(0, 0, bl.Fp(q[0])) }

func (bl *BuckleyLeverett) EigenVectors(q []float64, R, L *mat.Dense) {
	R.Set(0, 0, 1)
	L.Set(0, 0, 1)
}

func (bl *BuckleyLeverett) EigenValues(q, lam []float64) { lam[0] = bl.Fp(q[0]) }

func (bl *BuckleyLeverett) MaxWaveSpeed(Q utils.Matrix) (vmax float64) {
	for _, qq := range utils.Linspace(Q.Min(), Q.Max(), blSamples) {
		if s := math.Abs(bl.Fp(qq)); s > vmax {
			vmax = s
		}
	}
	return
}
