package model_problems

import (
	"math"

	"github.com/notargets/hyperweno/FD1D"
	"github.com/notargets/hyperweno/flux"
	"github.com/notargets/hyperweno/riemann"
	"github.com/notargets/hyperweno/solver"
	"github.com/notargets/hyperweno/utils"
)

const gammaAir = 1.4

func init() {
	register(&Problem{
		Name:        "euler_smooth",
		Description: "Euler density wave rho = 1+0.2 sin(pi x), u = 1, p = 1, periodic on [0,2]",
		Defaults:    Defaults{Scheme: "JS5", Stepper: "rk4", CFL: 0.5, Mx: 100, Frames: 4},
		build:       eulerSmooth,
	})
	register(&Problem{
		Name:        "sod",
		Description: "Sod shock tube, (1,0,1) | (0.125,0,0.1) at x = 0.5, outflow",
		Defaults:    Defaults{Scheme: "JS5", Stepper: "rk3_ssp", CFL: 0.5, Mx: 200, Frames: 4},
		build: func() *solver.TestCase {
			return riemannProblem(riemann.Primitive{Rho: 1, P: 1}, riemann.Primitive{Rho: 0.125, P: 0.1}, 0.2)
		},
	})
	register(&Problem{
		Name:        "shock_tube",
		Description: "Euler shock tube, rho = p = 3 | rho = p = 1 at x = 0.5, outflow",
		Defaults:    Defaults{Scheme: "JS5", Stepper: "rk3_ssp", CFL: 0.5, Mx: 200, Frames: 5},
		build: func() *solver.TestCase {
			return riemannProblem(riemann.Primitive{Rho: 3, P: 3}, riemann.Primitive{Rho: 1, P: 1}, 0.5)
		},
	})
	register(&Problem{
		Name:        "shock_entropy",
		Description: "Shu-Osher shock entropy wave interaction on [-5,5], outflow",
		Defaults:    Defaults{Scheme: "Z5", Stepper: "rk3_ssp", CFL: 0.5, Mx: 400, Frames: 6},
		build:       shockEntropy,
	})
	register(&Problem{
		Name:        "blast_wave",
		Description: "Woodward-Colella interacting blast waves on [0,1], solid walls",
		Defaults:    Defaults{Scheme: "JS5", Stepper: "rk4", CFL: 0.1, Mx: 100, Frames: 50},
		build:       blastWave,
	})
	register(&Problem{
		Name:        "dam_break",
		Description: "shallow water dam break, h = 3 | h = 1 at x = 0.5, g = 1, outflow",
		Defaults:    Defaults{Scheme: "JS5", Stepper: "rk4", CFL: 0.5, Mx: 200, Frames: 4},
		build:       damBreak,
	})
}

// primitiveProfile builds conserved Euler variables from a primitive profile
func primitiveProfile(fm *flux.Euler, prim func(x float64) (rho, u, p float64)) func(x []float64) utils.Matrix {
	return func(x []float64) utils.Matrix {
		return pointwise(3, x, func(x float64, q []float64) {
			rho, u, p := prim(x)
			fm.Conserved(rho, u, p, q)
		})
	}
}

func eulerSmooth() *solver.TestCase {
	var (
		fm   = flux.NewEuler(gammaAir)
		init = primitiveProfile(fm, func(x float64) (rho, u, p float64) {
			return 1 + 0.2*math.Sin(math.Pi*x), 1, 1
		})
	)
	return &solver.TestCase{
		Model: fm,
		XLims: [2]float64{0, 2},
		BCs:   FD1D.NewPeriodicBCs(),
		QInit: init,
		QExact: func(x []float64, t float64) utils.Matrix {
			shifted := make([]float64, len(x))
			for i, xx := range x {
				shifted[i] = wrap(xx-t, 0, 2)
			}
			return init(shifted)
		},
		TEnd: 2,
	}
}

func riemannProblem(left, right riemann.Primitive, tend float64) *solver.TestCase {
	var (
		fm = flux.NewEuler(gammaAir)
	)
	tc := &solver.TestCase{
		Model: fm,
		XLims: [2]float64{0, 1},
		BCs:   FD1D.NewOutflowBCs(),
		QInit: primitiveProfile(fm, func(x float64) (rho, u, p float64) {
			w := right
			if x <= 0.5 {
				w = left
			}
			return w.Rho, w.U, w.P
		}),
		TEnd: tend,
	}
	if rp, err := riemann.NewEulerRiemann(gammaAir, left, right, 0.5); err == nil {
		tc.QExact = rp.Exact
	}
	return tc
}

func shockEntropy() *solver.TestCase {
	fm := flux.NewEuler(gammaAir)
	return &solver.TestCase{
		Model: fm,
		XLims: [2]float64{-5, 5},
		BCs:   FD1D.NewOutflowBCs(),
		QInit: primitiveProfile(fm, func(x float64) (rho, u, p float64) {
			if x < -4 {
				return 3.857143, 2.629369, 10.3333
			}
			return 1 + 0.2*math.Sin(5*x), 0, 1
		}),
		TEnd: 1.8,
	}
}

func blastWave() *solver.TestCase {
	fm := flux.NewEuler(gammaAir)
	return &solver.TestCase{
		Model: fm,
		XLims: [2]float64{0, 1},
		BCs:   FD1D.NewSideBCs(fm.SolidWallLeft, fm.SolidWallRight),
		QInit: primitiveProfile(fm, func(x float64) (rho, u, p float64) {
			switch {
			case x < 0.1:
				return 1, 0, 1000
			case x > 0.1 && x < 0.9:
				return 1, 0, 0.01
			}
			return 1, 0, 100
		}),
		TEnd: 0.038,
	}
}

func damBreak() *solver.TestCase {
	var (
		g  = 1.
		hl = 3.
		hr = 1.
	)
	tc := &solver.TestCase{
		Model: flux.NewShallowWater(g),
		XLims: [2]float64{0, 1},
		BCs:   FD1D.NewOutflowBCs(),
		QInit: func(x []float64) utils.Matrix {
			return pointwise(2, x, func(x float64, q []float64) {
				q[0], q[1] = hl, 0
				if x > 0.5 {
					q[0] = hr
				}
			})
		},
		TEnd: 0.2,
	}
	if rp, err := riemann.NewDamBreak(g, hl, hr, 0.5); err == nil {
		tc.QExact = rp.Exact
	}
	return tc
}
