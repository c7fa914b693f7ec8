package model_problems

import (
	"math"

	"github.com/notargets/hyperweno/FD1D"
	"github.com/notargets/hyperweno/flux"
	"github.com/notargets/hyperweno/riemann"
	"github.com/notargets/hyperweno/solver"
	"github.com/notargets/hyperweno/utils"
)

func init() {
	register(&Problem{
		Name:        "burgers_sine_to_n",
		Description: "Burgers equation from 0.5(1+sin 2 pi x), periodic on [0,1], smooth until t = 1/pi",
		Defaults:    Defaults{Scheme: "JS5", Stepper: "rk4", CFL: 0.5, Mx: 100, Frames: 5},
		build:       burgersSine,
	})
	register(&Problem{
		Name:        "buckley_leverett",
		Description: "Buckley-Leverett, M = 1/3, slab q = 1 on (-0.5,0) in [-1,1], outflow",
		Defaults:    Defaults{Scheme: "JS5", Stepper: "td_rk4", CFL: 0.5, Mx: 200, Frames: 8},
		build:       buckleyLeverett,
	})
}

func burgersSine() *solver.TestCase {
	var (
		tpi = 2 * math.Pi
		u0  = func(x float64) float64 { return 0.5 * (1 + math.Sin(tpi*x)) }
		du0 = func(x float64) float64 { return math.Pi * math.Cos(tpi*x) }
	)
	// Before the gradient catastrophe u(x,t) = u0(xi) with xi + u0(xi) t = x, the characteristic
	// foot xi is found with Newton starting from x.
	exact := func(x []float64, t float64) utils.Matrix {
		return pointwise(1, x, func(x float64, q []float64) {
			xi, _, err := riemann.NewtonSolveScalar(
				func(xi float64) float64 { return xi + u0(xi)*t - x },
				func(xi float64) float64 { return 1 + du0(xi)*t },
				x-u0(x)*t, riemann.NewtonTol, riemann.NewtonMaxIter)
			if err != nil {
				q[0] = math.NaN()
				return
			}
			q[0] = u0(xi)
		})
	}
	return &solver.TestCase{
		Model:  flux.NewBurgers(),
		XLims:  [2]float64{0, 1},
		BCs:    FD1D.NewPeriodicBCs(),
		QInit:  func(x []float64) utils.Matrix { return exact(x, 0) },
		QExact: exact,
		TEnd:   0.25,
	}
}

func buckleyLeverett() *solver.TestCase {
	var (
		bl        = flux.NewBuckleyLeverett(1. / 3.)
		slab, err = riemann.NewBuckleyLeverettSlab(bl, -0.5, 0)
	)
	return &solver.TestCase{
		Model:  bl,
		XLims:  [2]float64{-1, 1},
		BCs:    FD1D.NewOutflowBCs(),
		QInit:  func(x []float64) utils.Matrix { return slab.Exact(x, 0) },
		QExact: slabExact(slab, err),
		TEnd:   0.4,
	}
}

// slabExact is the exact solution of the slab. When the shock speeds could not be found only the
// initial state is known and later times are NaN, which shows up in every error norm.
func slabExact(slab *riemann.BuckleyLeverettSlab, err error) func(x []float64, t float64) utils.Matrix {
	if err == nil {
		return slab.Exact
	}
	return func(x []float64, t float64) utils.Matrix {
		if t <= 0 {
			return slab.Exact(x, 0)
		}
		return pointwise(1, x, func(x float64, q []float64) { q[0] = math.NaN() })
	}
}
