package model_problems

import (
	"math"

	"github.com/notargets/hyperweno/FD1D"
	"github.com/notargets/hyperweno/flux"
	"github.com/notargets/hyperweno/solver"
	"github.com/notargets/hyperweno/utils"
)

func init() {
	register(&Problem{
		Name:        "advection_sine",
		Description: "linear advection of sin(2 pi x), v = 1, periodic on [0,1]",
		Defaults:    Defaults{Scheme: "JS5", Stepper: "rk4", CFL: 0.5, Mx: 100, Frames: 10},
		build: func() *solver.TestCase {
			return advection(1, [2]float64{0, 1}, 1, func(x float64) float64 {
				return math.Sin(2 * math.Pi * x)
			})
		},
	})
	register(&Problem{
		Name:        "advection_square",
		Description: "linear advection of a square pulse on (0.3,0.5), v = 1, periodic on [0,1]",
		Defaults:    Defaults{Scheme: "JS5", Stepper: "rk3_ssp", CFL: 0.5, Mx: 200, Frames: 10},
		build: func() *solver.TestCase {
			return advection(1, [2]float64{0, 1}, 1, func(x float64) float64 {
				if x > 0.3 && x < 0.5 {
					return 1
				}
				return 0
			})
		},
	})
	register(&Problem{
		Name:        "advection_4bells",
		Description: "Jiang-Shu gaussian, square, triangle and ellipse on [-1,1], v = 1, periodic, four periods",
		Defaults:    Defaults{Scheme: "Z5", Stepper: "rk4", CFL: 0.5, Mx: 200, Frames: 16},
		build: func() *solver.TestCase {
			return advection(1, [2]float64{-1, 1}, 8, fourBells)
		},
	})
}

// advection is constant velocity transport of q0 on a periodic domain, the exact solution is
// q0 traced back along the characteristic and wrapped into the domain.
func advection(v float64, xlims [2]float64, tend float64, q0 func(x float64) float64) *solver.TestCase {
	exact := func(x []float64, t float64) utils.Matrix {
		return pointwise(1, x, func(x float64, q []float64) {
			q[0] = q0(wrap(x-v*t, xlims[0], xlims[1]))
		})
	}
	return &solver.TestCase{
		Model:  flux.NewAdvection(v),
		XLims:  xlims,
		BCs:    FD1D.NewPeriodicBCs(),
		QInit:  func(x []float64) utils.Matrix { return exact(x, 0) },
		QExact: exact,
		TEnd:   tend,
	}
}

// fourBells is the composite profile of Jiang and Shu: a smooth gaussian combination, a square
// pulse, a triangle and a half ellipse combination.
func fourBells(x float64) float64 {
	const (
		a     = 0.5
		z     = -0.7
		delta = 0.005
		alpha = 10.
	)
	var (
		beta = math.Log10(2) / (36 * delta * delta)
		G    = func(x, c float64) float64 { return math.Exp(-beta * (x - c) * (x - c)) }
		F    = func(x, c float64) float64 { return math.Sqrt(math.Max(1-alpha*alpha*(x-c)*(x-c), 0)) }
	)
	switch {
	case x >= -0.8 && x <= -0.6:
		return (G(x, z-delta) + G(x, z+delta) + 4*G(x, z)) / 6
	case x >= -0.4 && x <= -0.2:
		return 1
	case x >= 0 && x <= 0.2:
		return 1 - math.Abs(10*(x-0.1))
	case x >= 0.4 && x <= 0.6:
		return (F(x, a-delta) + F(x, a+delta) + 4*F(x, a)) / 6
	}
	return 0
}
