package flux

import (
	"math"

	"github.com/notargets/hyperweno/utils"
	"gonum.org/v1/gonum/mat"
)

// Advection is q_t + v q_x = 0
type Advection struct {
	V float64
}

func NewAdvection(v float64) *Advection { return &Advection{V: v} }

func (a *Advection) Name() string { return "Advection" }
func (a *Advection) Meq() int     { return 1 }

func (a *Advection) Flux(q, f []float64) { f[0] = a.V * q[0] }

func (a *Advection) Jacobian(q []float64, J *mat.Dense) { J.Set(0, 0, a.V) }

func (a *Advection) EigenVectors(q []float64, R, L *mat.Dense) {
	R.Set(0, 0, 1)
	L.Set(0, 0, 1)
}

func (a *Advection) EigenValues(q, lam []float64) { lam[0] = a.V }

func (a *Advection) MaxWaveSpeed(Q utils.Matrix) float64 { return math.Abs(a.V) }
