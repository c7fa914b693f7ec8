package WENO

import (
	"math"

	"github.com/notargets/hyperweno/utils"
)

// Optimal linear weights of the three 3rd order sub-stencils
var gamma5 = [3]float64{0.1, 0.6, 0.3}

// Stencil s = [u(i-2), u(i-1), u(i), u(i+1), u(i+2)]

// delta5 returns the 3rd order sub-stencil reconstructions at i+1/2 minus u(i). Written in
// differences so a flat stencil reconstructs u(i) exactly.
//
//	u1 =  1/3 u(i-2) - 7/6 u(i-1) + 11/6 u(i)
//	u2 = -1/6 u(i-1) + 5/6 u(i)   +  1/3 u(i+1)
//	u3 =  1/3 u(i)   + 5/6 u(i+1) -  1/6 u(i+2)
func delta5(s []float64) (d [3]float64) {
	var (
		uim2, uim1, ui, uip1, uip2 = s[0], s[1], s[2], s[3], s[4]
	)
	d[0] = -(5./6.)*(uim1-ui) + (1./3.)*(uim2-uim1)
	d[1] = -(1./6.)*(uim1-ui) + (1./3.)*(uip1-ui)
	d[2] = (2./3.)*(uip1-ui) - (1./6.)*(uip2-uip1)
	return
}

// beta5 are the Jiang-Shu smoothness indicators
func beta5(s []float64) (b [3]float64) {
	var (
		uim2, uim1, ui, uip1, uip2 = s[0], s[1], s[2], s[3], s[4]
	)
	b[0] = (13./12.)*utils.POW(uim2-2*uim1+ui, 2) + 0.25*utils.POW(uim2-4*uim1+3*ui, 2)
	b[1] = (13./12.)*utils.POW(uim1-2*ui+uip1, 2) + 0.25*utils.POW(uim1-uip1, 2)
	b[2] = (13./12.)*utils.POW(ui-2*uip1+uip2, 2) + 0.25*utils.POW(3*ui-4*uip1+uip2, 2)
	return
}

func reverse5(s []float64) []float64 {
	return []float64{s[4], s[3], s[2], s[1], s[0]}
}

func combine5(s []float64, w [3]float64) float64 {
	d := delta5(s)
	return s[2] + (w[0]*d[0] + w[1]*d[1] + w[2]*d[2])
}

// CFD5 is the fifth order upwind linear scheme, WENO5 with the nonlinear weights replaced by
// the optimal weights
type CFD5 struct{ stencilBase }

func NewCFD5() *CFD5 { return &CFD5{newStencilBase("CFD5", 5)} }

func (w *CFD5) ReconstructLeft(s []float64) float64 { return combine5(s, gamma5) }

func (w *CFD5) ReconstructRight(s []float64) float64 { return w.ReconstructLeft(reverse5(s)) }

// JS5 is the Jiang-Shu WENO5 scheme
type JS5 struct {
	stencilBase
	Eps float64
}

func NewJS5() *JS5 { return &JS5{newStencilBase("JS5", 5), DefaultEps} }

// Weights are the normalized nonlinear weights for reconstruction at i+1/2
func (w *JS5) Weights(s []float64) (omega [3]float64) {
	b := beta5(s)
	for k := range omega {
		omega[k] = gamma5[k] / utils.POW(w.Eps+b[k], 2)
	}
	normalize(omega[:])
	return
}

func (w *JS5) ReconstructLeft(s []float64) float64 { return combine5(s, w.Weights(s)) }

func (w *JS5) ReconstructRight(s []float64) float64 { return w.ReconstructLeft(reverse5(s)) }

// Z5 is the WENO-Z scheme of Borges et al. with global indicator tau5 = |beta0 - beta2|
type Z5 struct {
	stencilBase
	Eps float64
	P   int
}

func NewZ5() *Z5 { return &Z5{newStencilBase("Z5", 5), DefaultEps, DefaultP} }

func (w *Z5) Weights(s []float64) (omega [3]float64) {
	var (
		b   = beta5(s)
		tau = math.Abs(b[0] - b[2])
	)
	for k := range omega {
		omega[k] = gamma5[k] * (1 + utils.POW(tau/(w.Eps+b[k]), w.P))
	}
	normalize(omega[:])
	return
}

func (w *Z5) ReconstructLeft(s []float64) float64 { return combine5(s, w.Weights(s)) }

func (w *Z5) ReconstructRight(s []float64) float64 { return w.ReconstructLeft(reverse5(s)) }
