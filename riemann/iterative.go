package riemann

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNoConvergence = errors.New("iteration failed to converge")
	ErrVacuum        = errors.New("initial states generate a vacuum")
)

const (
	NewtonTol     = 1.e-13
	NewtonMaxIter = 1000
	SecantTol     = 1.e-14
	SecantMaxIter = 100000
)

// NewtonSolveScalar finds a zero of f given its derivative fp. Convergence is declared when
// |f| < tol at the current iterate, which is then updated once more before returning.
func NewtonSolveScalar(f, fp func(y float64) float64, yguess, tol float64, maxIter int) (y float64, n int, err error) {
	y = yguess
	for n < maxIter {
		fn := f(y)
		y -= fn / fp(y)
		n++
		if math.Abs(fn) < tol {
			return
		}
	}
	err = fmt.Errorf("%w: Newton, %d iterations, y = %v", ErrNoConvergence, n, y)
	return
}

// SecantSolveScalar finds a zero of G from two initial guesses
func SecantSolveScalar(G func(y float64) float64, y0, y1, tol float64, maxIter int) (y float64, err error) {
	var (
		ynm1 = y0
		Gnm1 = G(ynm1)
	)
	y = y1
	for n := 0; n < maxIter; n++ {
		Gn := G(y)
		if math.Abs(Gn) < tol {
			return
		}
		if Gn == Gnm1 {
			break
		}
		ynew := y - Gn*(y-ynm1)/(Gn-Gnm1)
		ynm1, Gnm1 = y, Gn
		y = ynew
	}
	err = fmt.Errorf("%w: secant, y = %v", ErrNoConvergence, y)
	return
}

// bisect finds the zero of a continuous f with a sign change on [a, b]
func bisect(f func(y float64) float64, a, b float64) float64 {
	fa := f(a)
	for i := 0; i < 200 && b-a > 1.e-15*math.Max(1, math.Abs(a)); i++ {
		m := 0.5 * (a + b)
		fm := f(m)
		if fm == 0 {
			return m
		}
		if (fm < 0) == (fa < 0) {
			a, fa = m, fm
		} else {
			b = m
		}
	}
	return 0.5 * (a + b)
}
