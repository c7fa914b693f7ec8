package WENO

import (
	"math"

	"github.com/notargets/hyperweno/utils"
)

var gamma7 = [4]float64{1. / 35., 12. / 35., 18. / 35., 4. / 35.}

// Stencil s = [u(i-3), u(i-2), u(i-1), u(i), u(i+1), u(i+2), u(i+3)]

// delta7 returns the 4th order sub-stencil reconstructions at i+1/2 minus u(i)
//
//	u1 = -1/4  u(i-3) + 13/12 u(i-2) - 23/12 u(i-1) + 25/12 u(i)
//	u2 =  1/12 u(i-2) -  5/12 u(i-1) + 13/12 u(i)   +  1/4  u(i+1)
//	u3 = -1/12 u(i-1) +  7/12 u(i)   +  7/12 u(i+1) -  1/12 u(i+2)
//	u4 =  1/4  u(i)   + 13/12 u(i+1) -  5/12 u(i+2) +  1/12 u(i+3)
func delta7(s []float64) (d [4]float64) {
	var (
		uim3, uim2, uim1, ui = s[0], s[1], s[2], s[3]
		uip1, uip2, uip3     = s[4], s[5], s[6]
	)
	d[0] = -(13./12.)*(uim1-ui) + (5./6.)*(uim2-uim1) - 0.25*(uim3-uim2)
	d[1] = 0.25*(uip1-ui) - (1./3.)*(uim1-ui) + (1./12.)*(uim2-uim1)
	d[2] = 0.5*(uip1-ui) - (1./12.)*(uim1-ui) - (1./12.)*(uip2-uip1)
	d[3] = 0.75*(uip1-ui) - (1./3.)*(uip2-uip1) + (1./12.)*(uip3-uip2)
	return
}

// beta7 are the Balsara-Shu smoothness indicators
func beta7(s []float64) (b [4]float64) {
	var (
		uim3, uim2, uim1, ui = s[0], s[1], s[2], s[3]
		uip1, uip2, uip3     = s[4], s[5], s[6]
	)
	b[0] = uim3*(547*uim3-3882*uim2+4642*uim1-1854*ui) +
		uim2*(7043*uim2-17246*uim1+7042*ui) +
		uim1*(11003*uim1-9402*ui) +
		2107*ui*ui
	b[1] = uim2*(267*uim2-1642*uim1+1602*ui-494*uip1) +
		uim1*(2843*uim1-5966*ui+1922*uip1) +
		ui*(3443*ui-2522*uip1) +
		547*uip1*uip1
	b[2] = uim1*(547*uim1-2522*ui+1922*uip1-494*uip2) +
		ui*(3443*ui-5966*uip1+1602*uip2) +
		uip1*(2843*uip1-1642*uip2) +
		267*uip2*uip2
	b[3] = ui*(2107*ui-9402*uip1+7042*uip2-1854*uip3) +
		uip1*(11003*uip1-17246*uip2+4642*uip3) +
		uip2*(7043*uip2-3882*uip3) +
		547*uip3*uip3
	return
}

func reverse7(s []float64) []float64 {
	return []float64{s[6], s[5], s[4], s[3], s[2], s[1], s[0]}
}

func combine7(s []float64, w [4]float64) float64 {
	d := delta7(s)
	return s[3] + (w[0]*d[0] + w[1]*d[1] + w[2]*d[2] + w[3]*d[3])
}

// CFD7 is the seventh order upwind linear scheme
type CFD7 struct{ stencilBase }

func NewCFD7() *CFD7 { return &CFD7{newStencilBase("CFD7", 7)} }

func (w *CFD7) ReconstructLeft(s []float64) float64 { return combine7(s, gamma7) }

func (w *CFD7) ReconstructRight(s []float64) float64 { return w.ReconstructLeft(reverse7(s)) }

type JS7 struct {
	stencilBase
	Eps float64
}

func NewJS7() *JS7 { return &JS7{newStencilBase("JS7", 7), DefaultEps} }

func (w *JS7) Weights(s []float64) (omega [4]float64) {
	b := beta7(s)
	for k := range omega {
		omega[k] = gamma7[k] / utils.POW(w.Eps+b[k], 2)
	}
	normalize(omega[:])
	return
}

func (w *JS7) ReconstructLeft(s []float64) float64 { return combine7(s, w.Weights(s)) }

func (w *JS7) ReconstructRight(s []float64) float64 { return w.ReconstructLeft(reverse7(s)) }

// Z7 uses the global indicator tau7 = |beta0 + 3 beta1 - 3 beta2 - beta3| of Castro, Costa and Don
type Z7 struct {
	stencilBase
	Eps float64
	P   int
}

func NewZ7() *Z7 { return &Z7{newStencilBase("Z7", 7), DefaultEps, DefaultP} }

func (w *Z7) Weights(s []float64) (omega [4]float64) {
	var (
		b   = beta7(s)
		tau = math.Abs(b[0] + 3*b[1] - 3*b[2] - b[3])
	)
	for k := range omega {
		omega[k] = gamma7[k] * (1 + utils.POW(tau/(w.Eps+b[k]), w.P))
	}
	normalize(omega[:])
	return
}

func (w *Z7) ReconstructLeft(s []float64) float64 { return combine7(s, w.Weights(s)) }

func (w *Z7) ReconstructRight(s []float64) float64 { return w.ReconstructLeft(reverse7(s)) }
