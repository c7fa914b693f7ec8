package riemann

import (
	"fmt"
	"math"

	"github.com/notargets/hyperweno/utils"
)

// ShallowWaterRiemann is the exact solution of the wet bed shallow water Riemann problem,
// initial depths HL, HR and velocities UL, UR with the jump at X0.
type ShallowWaterRiemann struct {
	G              float64
	HL, UL, HR, UR float64
	X0             float64
	HStar, UStar   float64
	NIter          int
	solved         bool
}

// NewDamBreak is the still water problem with depths hl > hr
func NewDamBreak(g, hl, hr, x0 float64) (rp *ShallowWaterRiemann, err error) {
	rp = &ShallowWaterRiemann{G: g, HL: hl, HR: hr, X0: x0}
	err = rp.Solve()
	return
}

// depthFunction is the velocity change across the wave connecting depth hK to depth h
func (rp *ShallowWaterRiemann) depthFunction(h, hK float64) (f, fp float64) {
	var (
		g = rp.G
	)
	if h > hK {
		s := math.Sqrt(0.5 * g * (h + hK) / (h * hK))
		f = (h - hK) * s
		fp = s - 0.25*g*(h-hK)/(s*h*h)
		return
	}
	f = 2 * (math.Sqrt(g*h) - math.Sqrt(g*hK))
	fp = math.Sqrt(g / h)
	return
}

func (rp *ShallowWaterRiemann) Solve() (err error) {
	var (
		g      = rp.G
		aL, aR = math.Sqrt(g * rp.HL), math.Sqrt(g * rp.HR)
		du     = rp.UR - rp.UL
		hFloor = 1.e-12 * math.Min(rp.HL, rp.HR)
	)
	if 2*(aL+aR) <= du {
		return fmt.Errorf("%w: shallow water, du = %v", ErrVacuum, du)
	}
	clamp := func(h float64) float64 { return math.Max(h, hFloor) }
	f := func(h float64) float64 {
		fL, _ := rp.depthFunction(clamp(h), rp.HL)
		fR, _ := rp.depthFunction(clamp(h), rp.HR)
		return fL + fR + du
	}
	fp := func(h float64) float64 {
		_, dL := rp.depthFunction(clamp(h), rp.HL)
		_, dR := rp.depthFunction(clamp(h), rp.HR)
		return dL + dR
	}
	// Two rarefaction estimate
	hGuess := utils.POW(0.5*(aL+aR)-0.25*du, 2) / g
	var h float64
	if h, rp.NIter, err = NewtonSolveScalar(f, fp, hGuess, NewtonTol, NewtonMaxIter); err != nil {
		return
	}
	rp.HStar = clamp(h)
	fL, _ := rp.depthFunction(rp.HStar, rp.HL)
	fR, _ := rp.depthFunction(rp.HStar, rp.HR)
	rp.UStar = 0.5*(rp.UL+rp.UR) + 0.5*(fR-fL)
	rp.solved = true
	return
}

// WaveSpeeds returns the head and tail of both waves, they coincide for shocks
func (rp *ShallowWaterRiemann) WaveSpeeds() (lHead, lTail, rTail, rHead float64) {
	var (
		g      = rp.G
		aL, aR = math.Sqrt(g * rp.HL), math.Sqrt(g * rp.HR)
		aStar  = math.Sqrt(g * rp.HStar)
	)
	if rp.HStar > rp.HL {
		lHead = rp.UL - aL*math.Sqrt(0.5*(rp.HStar+rp.HL)*rp.HStar/(rp.HL*rp.HL))
		lTail = lHead
	} else {
		lHead = rp.UL - aL
		lTail = rp.UStar - aStar
	}
	if rp.HStar > rp.HR {
		rHead = rp.UR + aR*math.Sqrt(0.5*(rp.HStar+rp.HR)*rp.HStar/(rp.HR*rp.HR))
		rTail = rHead
	} else {
		rHead = rp.UR + aR
		rTail = rp.UStar + aStar
	}
	return
}

// Sample returns depth and velocity at xi = (x-X0)/t
func (rp *ShallowWaterRiemann) Sample(xi float64) (h, u float64) {
	var (
		g                          = rp.G
		lHead, lTail, rTail, rHead = rp.WaveSpeeds()
	)
	switch {
	case xi <= lHead:
		h, u = rp.HL, rp.UL
	case xi < lTail:
		aL := math.Sqrt(g * rp.HL)
		h = utils.POW(rp.UL+2*aL-xi, 2) / (9 * g)
		u = (rp.UL + 2*aL + 2*xi) / 3
	case xi <= rTail:
		h, u = rp.HStar, rp.UStar
	case xi < rHead:
		aR := math.Sqrt(g * rp.HR)
		h = utils.POW(-rp.UR+2*aR+xi, 2) / (9 * g)
		u = (rp.UR - 2*aR + 2*xi) / 3
	default:
		h, u = rp.HR, rp.UR
	}
	return
}

// Exact returns (h, hu) at points x and time t
func (rp *ShallowWaterRiemann) Exact(x []float64, t float64) (Q utils.Matrix) {
	if !rp.solved {
		panic("ShallowWaterRiemann: Exact called before Solve")
	}
	Q = utils.NewMatrix(2, len(x))
	for i, xx := range x {
		var h, u float64
		switch {
		case t > 0:
			h, u = rp.Sample((xx - rp.X0) / t)
		case xx < rp.X0:
			h, u = rp.HL, rp.UL
		default:
			h, u = rp.HR, rp.UR
		}
		Q.Set(0, i, h)
		Q.Set(1, i, h*u)
	}
	return
}
