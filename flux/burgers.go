package flux

import (
	"github.com/notargets/hyperweno/utils"
	"gonum.org/v1/gonum/mat"
)

// Burgers is the inviscid Burgers equation, f = q^2/2
type Burgers struct{}

func NewBurgers() *Burgers { return &Burgers{} }

func (b *Burgers) Name() string { return "Burgers" }
func (b *Burgers) Meq() int     { return 1 }

func (b *Burgers) Flux(q, f []float64) { f[0] = 0.5 * q[0] * q[0] }

func (b *Burgers) Jacobian(q []float64, J *mat.Dense) { J.Set(0, 0, q[0]) }

func (b *Burgers) EigenVectors(q []float64, R, L *mat.Dense) {
	R.Set(0, 0, 1)
	L.Set(0, 0, 1)
}

func (b *Burgers) EigenValues(q, lam []float64) { lam[0] = q[0] }

func (b *Burgers) MaxWaveSpeed(Q utils.Matrix) float64 { return Q.MaxAbs() }
