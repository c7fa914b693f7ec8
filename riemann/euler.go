package riemann

import (
	"fmt"
	"math"

	"github.com/notargets/hyperweno/flux"
	"github.com/notargets/hyperweno/utils"
)

// Primitive is an Euler state in primitive variables
type Primitive struct {
	Rho, U, P float64
}

// EulerRiemann is the exact solution of the ideal gas Riemann problem with an initial jump at X0
type EulerRiemann struct {
	Gamma       float64
	Left, Right Primitive
	X0          float64
	// Star region, filled by Solve
	PStar, UStar, RhoStarL, RhoStarR float64
	NIter                            int
	solved                           bool
}

func NewEulerRiemann(gamma float64, left, right Primitive, x0 float64) (rp *EulerRiemann, err error) {
	rp = &EulerRiemann{Gamma: gamma, Left: left, Right: right, X0: x0}
	err = rp.Solve()
	return
}

func (rp *EulerRiemann) soundSpeed(w Primitive) float64 { return math.Sqrt(rp.Gamma * w.P / w.Rho) }

// pressureFunction is the velocity change across the wave connecting w to pressure p, and its derivative
func (rp *EulerRiemann) pressureFunction(p float64, w Primitive) (f, fp float64) {
	var (
		g = rp.Gamma
		c = rp.soundSpeed(w)
	)
	if p > w.P {
		A := 2 / ((g + 1) * w.Rho)
		B := (g - 1) / (g + 1) * w.P
		q := math.Sqrt(A / (p + B))
		f = (p - w.P) * q
		fp = q * (1 - (p-w.P)/(2*(B+p)))
		return
	}
	ratio := p / w.P
	f = 2 * c / (g - 1) * (math.Pow(ratio, (g-1)/(2*g)) - 1)
	fp = math.Pow(ratio, -(g+1)/(2*g)) / (w.Rho * c)
	return
}

// Solve computes the star region pressure with Newton iteration from the two rarefaction estimate
func (rp *EulerRiemann) Solve() (err error) {
	var (
		g      = rp.Gamma
		L, R   = rp.Left, rp.Right
		cL, cR = rp.soundSpeed(L), rp.soundSpeed(R)
		du     = R.U - L.U
		z      = (g - 1) / (2 * g)
		pFloor = 1.e-12 * math.Min(L.P, R.P)
	)
	if 2*(cL+cR)/(g-1) <= du {
		return fmt.Errorf("%w: Euler, du = %v", ErrVacuum, du)
	}
	clamp := func(p float64) float64 { return math.Max(p, pFloor) }
	f := func(p float64) float64 {
		fL, _ := rp.pressureFunction(clamp(p), L)
		fR, _ := rp.pressureFunction(clamp(p), R)
		return fL + fR + du
	}
	fp := func(p float64) float64 {
		_, dL := rp.pressureFunction(clamp(p), L)
		_, dR := rp.pressureFunction(clamp(p), R)
		return dL + dR
	}
	pGuess := math.Pow((cL+cR-0.5*(g-1)*du)/(cL/math.Pow(L.P, z)+cR/math.Pow(R.P, z)), 1/z)
	var p float64
	if p, rp.NIter, err = NewtonSolveScalar(f, fp, pGuess, 1.e-12*math.Max(1, cL+cR), NewtonMaxIter); err != nil {
		return
	}
	rp.PStar = clamp(p)
	fL, _ := rp.pressureFunction(rp.PStar, L)
	fR, _ := rp.pressureFunction(rp.PStar, R)
	rp.UStar = 0.5*(L.U+R.U) + 0.5*(fR-fL)
	rp.RhoStarL = rp.starDensity(L)
	rp.RhoStarR = rp.starDensity(R)
	rp.solved = true
	return
}

func (rp *EulerRiemann) starDensity(w Primitive) float64 {
	var (
		g     = rp.Gamma
		ratio = rp.PStar / w.P
		g6    = (g - 1) / (g + 1)
	)
	if ratio > 1 {
		return w.Rho * (ratio + g6) / (g6*ratio + 1)
	}
	return w.Rho * math.Pow(ratio, 1/g)
}

// WaveSpeeds returns the left wave head and tail, the contact speed, and the right wave tail and head.
// Heads and tails coincide for shocks.
func (rp *EulerRiemann) WaveSpeeds() (lHead, lTail, contact, rTail, rHead float64) {
	var (
		g      = rp.Gamma
		L, R   = rp.Left, rp.Right
		cL, cR = rp.soundSpeed(L), rp.soundSpeed(R)
	)
	contact = rp.UStar
	if rp.PStar > L.P {
		lHead = L.U - cL*math.Sqrt((g+1)/(2*g)*rp.PStar/L.P+(g-1)/(2*g))
		lTail = lHead
	} else {
		lHead = L.U - cL
		lTail = rp.UStar - cL*math.Pow(rp.PStar/L.P, (g-1)/(2*g))
	}
	if rp.PStar > R.P {
		rHead = R.U + cR*math.Sqrt((g+1)/(2*g)*rp.PStar/R.P+(g-1)/(2*g))
		rTail = rHead
	} else {
		rHead = R.U + cR
		rTail = rp.UStar + cR*math.Pow(rp.PStar/R.P, (g-1)/(2*g))
	}
	return
}

// Sample returns the self similar solution at xi = (x-X0)/t
func (rp *EulerRiemann) Sample(xi float64) (w Primitive) {
	var (
		g                                   = rp.Gamma
		L, R                                = rp.Left, rp.Right
		lHead, lTail, contact, rTail, rHead = rp.WaveSpeeds()
	)
	switch {
	case xi <= lHead:
		w = L
	case xi < lTail:
		cL := rp.soundSpeed(L)
		c := 2 / (g + 1) * (cL + 0.5*(g-1)*(L.U-xi))
		w.U = 2 / (g + 1) * (cL + 0.5*(g-1)*L.U + xi)
		w.Rho = L.Rho * math.Pow(c/cL, 2/(g-1))
		w.P = L.P * math.Pow(c/cL, 2*g/(g-1))
	case xi <= contact:
		w = Primitive{rp.RhoStarL, rp.UStar, rp.PStar}
	case xi <= rTail:
		w = Primitive{rp.RhoStarR, rp.UStar, rp.PStar}
	case xi < rHead:
		cR := rp.soundSpeed(R)
		c := 2 / (g + 1) * (cR - 0.5*(g-1)*(R.U-xi))
		w.U = 2 / (g + 1) * (-cR + 0.5*(g-1)*R.U + xi)
		w.Rho = R.Rho * math.Pow(c/cR, 2/(g-1))
		w.P = R.P * math.Pow(c/cR, 2*g/(g-1))
	default:
		w = R
	}
	return
}

// Exact returns the conserved variables at points x and time t, one equation per row
func (rp *EulerRiemann) Exact(x []float64, t float64) (Q utils.Matrix) {
	var (
		fm = flux.NewEuler(rp.Gamma)
		q  = make([]float64, 3)
	)
	if !rp.solved {
		panic("EulerRiemann: Exact called before Solve")
	}
	Q = utils.NewMatrix(3, len(x))
	for i, xx := range x {
		var w Primitive
		switch {
		case t > 0:
			w = rp.Sample((xx - rp.X0) / t)
		case xx < rp.X0:
			w = rp.Left
		default:
			w = rp.Right
		}
		fm.Conserved(w.Rho, w.U, w.P, q)
		Q.SetCol(i, q)
	}
	return
}
