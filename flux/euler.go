package flux

import (
	"math"

	"github.com/notargets/hyperweno/utils"
	"gonum.org/v1/gonum/mat"
)

// Euler is the ideal gas Euler system in conserved variables q = (rho, rho*u, E)
type Euler struct {
	Gamma float64
}

func NewEuler(gamma float64) *Euler { return &Euler{Gamma: gamma} }

func (e *Euler) Name() string { return "Euler" }
func (e *Euler) Meq() int     { return 3 }

// Primitive returns density, velocity and pressure
func (e *Euler) Primitive(q []float64) (rho, u, p float64) {
	rho = q[0]
	u = q[1] / rho
	p = (e.Gamma - 1) * (q[2] - 0.5*rho*u*u)
	return
}

// Conserved is the inverse of Primitive
func (e *Euler) Conserved(rho, u, p float64, q []float64) {
	q[0] = rho
	q[1] = rho * u
	q[2] = p/(e.Gamma-1) + 0.5*rho*u*u
}

func (e *Euler) soundSpeedEnthalpy(q []float64) (u, c, H float64) {
	var (
		rho, uu, p = e.Primitive(q)
	)
	u = uu
	c = math.Sqrt(e.Gamma * p / rho)
	H = (q[2] + p) / rho
	return
}

func (e *Euler) Flux(q, f []float64) {
	var (
		_, u, p = e.Primitive(q)
	)
	f[0] = q[1]
	f[1] = q[1]*u + p
	f[2] = u * (q[2] + p)
}

func (e *Euler) Jacobian(q []float64, J *mat.Dense) {
	var (
		g         = e.Gamma
		rho, m, E = q[0], q[1], q[2]
		u         = m / rho
		rho2      = rho * rho
	)
	J.Set(0, 0, 0)
	J.Set(0, 1, 1)
	J.Set(0, 2, 0)
	J.Set(1, 0, 0.5*(g-3)*u*u)
	J.Set(1, 1, -u*(g-3))
	J.Set(1, 2, g-1)
	J.Set(2, 0, -u*(g*rho*E-(g-1)*m*m)/rho2)
	J.Set(2, 1, 0.5*(2*g*rho*E-3*(g-1)*m*m)/rho2)
	J.Set(2, 2, g*u)
}

func (e *Euler) EigenVectors(q []float64, R, L *mat.Dense) {
	var (
		g       = e.Gamma
		u, c, H = e.soundSpeedEnthalpy(q)
		M       = u / c
		t0      = 0.5 * (g - 1) * M * M
		t1      = (g - 1) * M
		t2      = (g - 1) / (c * c)
	)
	// Columns are the right eigenvectors for u-c, u, u+c
	R.Set(0, 0, 1)
	R.Set(1, 0, u-c)
	R.Set(2, 0, H-u*c)
	R.Set(0, 1, 1)
	R.Set(1, 1, u)
	R.Set(2, 1, 0.5*u*u)
	R.Set(0, 2, 1)
	R.Set(1, 2, u+c)
	R.Set(2, 2, H+u*c)

	L.Set(0, 0, 0.5*(t0+M))
	L.Set(0, 1, -0.5*(t1+1)/c)
	L.Set(0, 2, 0.5*t2)
	L.Set(1, 0, 1-t0)
	L.Set(1, 1, t1/c)
	L.Set(1, 2, -t2)
	L.Set(2, 0, 0.5*(t0-M))
	L.Set(2, 1, -0.5*(t1-1)/c)
	L.Set(2, 2, 0.5*t2)
}

func (e *Euler) EigenValues(q, lam []float64) {
	var (
		u, c, _ = e.soundSpeedEnthalpy(q)
	)
	lam[0] = u - c
	lam[1] = u
	lam[2] = u + c
}

func (e *Euler) MaxWaveSpeed(Q utils.Matrix) float64 {
	return maxOverColumns(Q, func(q []float64) float64 {
		u, c, _ := e.soundSpeedEnthalpy(q)
		return math.Abs(u) + c
	})
}

// SolidWallLeft mirrors the first mbc interior cells into the left ghost cells and negates
// their momentum
func (e *Euler) SolidWallLeft(Q utils.Matrix, mx, mbc int) {
	for n := 0; n < 3; n++ {
		row := Q.Row(n)
		for j := 0; j < mbc; j++ {
			row[j] = row[2*mbc-1-j]
		}
	}
	mom := Q.Row(1)
	for j := 0; j < mbc; j++ {
		mom[j] = -mom[j]
	}
}

// SolidWallRight is the mirror image of SolidWallLeft at the right boundary
func (e *Euler) SolidWallRight(Q utils.Matrix, mx, mbc int) {
	var (
		r = mbc + mx
	)
	for n := 0; n < 3; n++ {
		row := Q.Row(n)
		for j := 0; j < mbc; j++ {
			row[r+j] = row[r-1-j]
		}
	}
	mom := Q.Row(1)
	for j := 0; j < mbc; j++ {
		mom[r+j] = -mom[r+j]
	}
}
