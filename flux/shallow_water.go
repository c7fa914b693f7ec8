package flux

import (
	"math"

	"github.com/notargets/hyperweno/utils"
	"gonum.org/v1/gonum/mat"
)

// ShallowWater is the 1D shallow water system q = (h, hu) with gravity G
type ShallowWater struct {
	G float64
}

func NewShallowWater(g float64) *ShallowWater { return &ShallowWater{G: g} }

func (sw *ShallowWater) Name() string { return "ShallowWater" }
func (sw *ShallowWater) Meq() int     { return 2 }

func (sw *ShallowWater) velocityCelerity(q []float64) (u, c float64) {
	u = q[1] / q[0]
	c = math.Sqrt(sw.G * q[0])
	return
}

func (sw *ShallowWater) Flux(q, f []float64) {
	var (
		h, hu = q[0], q[1]
	)
	f[0] = hu
	f[1] = hu*hu/h + 0.5*sw.G*h*h
}

func (sw *ShallowWater) Jacobian(q []float64, J *mat.Dense) {
	var (
		u = q[1] / q[0]
	)
	J.Set(0, 0, 0)
	J.Set(0, 1, 1)
	J.Set(1, 0, sw.G*q[0]-u*u)
	J.Set(1, 1, 2*u)
}

func (sw *ShallowWater) EigenVectors(q []float64, R, L *mat.Dense) {
	var (
		u, c = sw.velocityCelerity(q)
	)
	R.Set(0, 0, 1)
	R.Set(0, 1, 1)
	R.Set(1, 0, u-c)
	R.Set(1, 1, u+c)

	L.Set(0, 0, 0.5*(c+u)/c)
	L.Set(0, 1, -0.5/c)
	L.Set(1, 0, 0.5*(c-u)/c)
	L.Set(1, 1, 0.5/c)
}

func (sw *ShallowWater) EigenValues(q, lam []float64) {
	var (
		u, c = sw.velocityCelerity(q)
	)
	lam[0] = u - c
	lam[1] = u + c
}

func (sw *ShallowWater) MaxWaveSpeed(Q utils.Matrix) float64 {
	return maxOverColumns(Q, func(q []float64) float64 {
		u, c := sw.velocityCelerity(q)
		return math.Abs(u) + c
	})
}
