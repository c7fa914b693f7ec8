package riemann

import (
	"github.com/notargets/hyperweno/flux"
	"github.com/notargets/hyperweno/utils"
)

// TangentState finds qs where the shock from qs to qfixed travels at the characteristic speed of qs,
//
//	f'(qs) = (f(qs) - f(qfixed)) / (qs - qfixed)
func TangentState(bl *flux.BuckleyLeverett, qfixed, guess0, guess1 float64) (qs float64, err error) {
	G := func(q float64) float64 {
		return bl.Fp(q) - (bl.F(q)-bl.F(qfixed))/(q-qfixed)
	}
	return SecantSolveScalar(G, guess0, guess1, SecantTol, SecantMaxIter)
}

// BuckleyLeverettSpeeds returns the tangent states of the slab problem: qsLeft for the jump up to
// q = 1 and qsRight for the jump down to q = 0.
func BuckleyLeverettSpeeds(bl *flux.BuckleyLeverett) (qsLeft, qsRight float64, err error) {
	if qsLeft, err = TangentState(bl, 1, 0.13, 0.130000001); err != nil {
		return
	}
	qsRight, err = TangentState(bl, 0, 0.48, 0.480000001)
	return
}

// BuckleyLeverettSlab is the exact solution for q = 1 on XL < x < XR and q = 0 elsewhere, valid
// until the two waves interact.
type BuckleyLeverettSlab struct {
	Flux            *flux.BuckleyLeverett
	XL, XR          float64
	QsLeft, QsRight float64
}

func NewBuckleyLeverettSlab(bl *flux.BuckleyLeverett, xl, xr float64) (s *BuckleyLeverettSlab, err error) {
	s = &BuckleyLeverettSlab{Flux: bl, XL: xl, XR: xr}
	s.QsLeft, s.QsRight, err = BuckleyLeverettSpeeds(bl)
	return
}

// ShockPositions returns the location of both shocks at time t
func (s *BuckleyLeverettSlab) ShockPositions(t float64) (left, right float64) {
	left = s.XL + t*s.Flux.Fp(s.QsLeft)
	right = s.XR + t*s.Flux.Fp(s.QsRight)
	return
}

// At returns q(x, t). Each rarefaction is a monotone branch of f' so it is inverted by bisection.
func (s *BuckleyLeverettSlab) At(x, t float64) float64 {
	if t <= 0 {
		if x > s.XL && x < s.XR {
			return 1
		}
		return 0
	}
	var (
		bl                    = s.Flux
		shockLeft, shockRight = s.ShockPositions(t)
	)
	switch {
	case x <= s.XL:
		return 0
	case x < shockLeft:
		xi := (x - s.XL) / t
		return bisect(func(q float64) float64 { return bl.Fp(q) - xi }, 0, s.QsLeft)
	case x <= s.XR:
		return 1
	case x < shockRight:
		xi := (x - s.XR) / t
		return bisect(func(q float64) float64 { return bl.Fp(q) - xi }, s.QsRight, 1)
	default:
		return 0
	}
}

func (s *BuckleyLeverettSlab) Exact(x []float64, t float64) (Q utils.Matrix) {
	Q = utils.NewMatrix(1, len(x))
	for i, xx := range x {
		Q.Set(0, i, s.At(xx, t))
	}
	return
}
