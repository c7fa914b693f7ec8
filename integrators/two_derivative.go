package integrators

import (
	"fmt"

	"github.com/notargets/hyperweno/utils"
)

// Two derivative methods use both q_t and q_tt = d/dt(q_t) at every stage.

func Taylor2() *Stepper {
	return &Stepper{
		Name:     "TAYLOR2",
		Order:    2,
		TwoDeriv: true,
		Step2: func(f RHS2, Y utils.Matrix, t, dt float64) utils.Matrix {
			k1, dk1 := f(Y, t)
			return utils.LinearCombination([]float64{1, dt, 0.5 * dt * dt}, Y, k1, dk1)
		},
	}
}

func TDRK3() *Stepper {
	return &Stepper{
		Name:     "TD_RK3",
		Order:    3,
		TwoDeriv: true,
		Step2: func(f RHS2, Y utils.Matrix, t, dt float64) utils.Matrix {
			var (
				dt2 = dt * dt
			)
			k1, dk1 := f(Y, t)
			Ys := utils.LinearCombination([]float64{1, 2. / 3. * dt, 2. / 9. * dt2}, Y, k1, dk1)
			_, dk2 := f(Ys, t+2./3.*dt)
			return utils.LinearCombination([]float64{1, dt, 0.25 * dt2, 0.25 * dt2}, Y, k1, dk1, dk2)
		},
	}
}

func TDRK4() *Stepper {
	return &Stepper{
		Name:     "TD_RK4",
		Order:    4,
		TwoDeriv: true,
		Step2: func(f RHS2, Y utils.Matrix, t, dt float64) utils.Matrix {
			var (
				dt2 = dt * dt
			)
			k1, dk1 := f(Y, t)
			Ys := utils.LinearCombination([]float64{1, 0.5 * dt, 0.125 * dt2}, Y, k1, dk1)
			_, dk2 := f(Ys, t+0.5*dt)
			return utils.LinearCombination([]float64{1, dt, dt2 / 6., dt2 / 3.}, Y, k1, dk1, dk2)
		},
	}
}

// NewTDRK5 is the three stage fifth order two derivative family parameterized by the third
// abscissa c3. c3 = 1/2 is singular.
func NewTDRK5(c3 float64) (s *Stepper, err error) {
	if c3 == 0.5 {
		err = fmt.Errorf("%w: TD_RK5 c3 = %v", ErrInvalidParameter, c3)
		return
	}
	var (
		c2 = (5*c3 - 3) / (10*c3 - 5)
	)
	if c2 == 0 || c2 == c3 {
		err = fmt.Errorf("%w: TD_RK5 c3 = %v gives c2 = %v", ErrInvalidParameter, c3, c2)
		return
	}
	var (
		b2  = (2*c3 - 1) / (12 * c2 * (c3 - c2))
		b3  = (1 - 2*c2) / (12 * c3 * (c3 - c2))
		b1  = 0.5 - b2 - b3
		a21 = 0.5 * c2 * c2
		a32 = 1. / (120 * b3 * c2)
		a31 = 0.5*c3*c3 - a32
	)
	s = &Stepper{
		Name:     "TD_RK5",
		Order:    5,
		TwoDeriv: true,
		Step2: func(f RHS2, Y utils.Matrix, t, dt float64) utils.Matrix {
			var (
				dt2 = dt * dt
			)
			k1, dk1 := f(Y, t)
			Y2 := utils.LinearCombination([]float64{1, c2 * dt, a21 * dt2}, Y, k1, dk1)
			_, dk2 := f(Y2, t+c2*dt)
			Y3 := utils.LinearCombination([]float64{1, c3 * dt, a31 * dt2, a32 * dt2}, Y, k1, dk1, dk2)
			_, dk3 := f(Y3, t+c3*dt)
			return utils.LinearCombination([]float64{1, dt, b1 * dt2, b2 * dt2, b3 * dt2}, Y, k1, dk1, dk2, dk3)
		},
	}
	return
}
