package integrators

import (
	"github.com/notargets/hyperweno/utils"
)

// Tableau is an explicit Runge-Kutta Butcher tableau
type Tableau struct {
	Name  string
	Order int
	C     []float64
	A     [][]float64
	B     []float64
}

// Stepper wraps the tableau as a single derivative Stepper
func (tb *Tableau) Stepper() *Stepper {
	return &Stepper{
		Name:  tb.Name,
		Order: tb.Order,
		Step1: tb.Step,
	}
}

// Step advances Y by one step of size dt. Stage states are fresh copies, Y is only ever passed
// to the first stage evaluation.
func (tb *Tableau) Step(f RHS, Y utils.Matrix, t, dt float64) (Ynew utils.Matrix) {
	var (
		ns = len(tb.B)
		k  = make([]utils.Matrix, ns)
	)
	k[0] = f(Y, t)
	for i := 1; i < ns; i++ {
		Ys := Y.Copy()
		for j, a := range tb.A[i] {
			if a != 0 {
				Ys.AddScaled(dt*a, k[j])
			}
		}
		k[i] = f(Ys, t+tb.C[i]*dt)
	}
	Ynew = Y.Copy()
	for i, b := range tb.B {
		if b != 0 {
			Ynew.AddScaled(dt*b, k[i])
		}
	}
	return
}

func FE() *Stepper {
	return (&Tableau{
		Name:  "FE",
		Order: 1,
		C:     []float64{0},
		A:     [][]float64{{}},
		B:     []float64{1},
	}).Stepper()
}

func RK2Midpoint() *Stepper {
	return (&Tableau{
		Name:  "RK2_MIDPOINT",
		Order: 2,
		C:     []float64{0, 0.5},
		A:     [][]float64{{}, {0.5}},
		B:     []float64{0, 1},
	}).Stepper()
}

// RK2Heun is the two stage SSP Runge-Kutta method
func RK2Heun() *Stepper {
	return (&Tableau{
		Name:  "RK2_HEUN",
		Order: 2,
		C:     []float64{0, 1},
		A:     [][]float64{{}, {1}},
		B:     []float64{0.5, 0.5},
	}).Stepper()
}

func RK3() *Stepper {
	return (&Tableau{
		Name:  "RK3",
		Order: 3,
		C:     []float64{0, 0.5, 1},
		A:     [][]float64{{}, {0.5}, {-1, 2}},
		B:     []float64{1. / 6., 4. / 6., 1. / 6.},
	}).Stepper()
}

func RK4() *Stepper {
	return (&Tableau{
		Name:  "RK4",
		Order: 4,
		C:     []float64{0, 0.5, 0.5, 1},
		A:     [][]float64{{}, {0.5}, {0, 0.5}, {0, 0, 1}},
		B:     []float64{1. / 6., 1. / 3., 1. / 3., 1. / 6.},
	}).Stepper()
}

// Fehlberg5 is the fifth order solution of the Runge-Kutta-Fehlberg pair, no error estimate is used
func Fehlberg5() *Stepper {
	return (&Tableau{
		Name:  "FEHLBERG5",
		Order: 5,
		C:     []float64{0, 0.25, 0.375, 12. / 13., 1, 0.5},
		A: [][]float64{
			{},
			{0.25},
			{3. / 32., 9. / 32.},
			{1932. / 2197., -7200. / 2197., 7296. / 2197.},
			{439. / 216., -8., 3680. / 513., -845. / 4104.},
			{-8. / 27., 2., -3544. / 2565., 1859. / 4104., -11. / 40.},
		},
		B: []float64{16. / 135., 0, 6656. / 12825., 28561. / 56430., -9. / 50., 2. / 55.},
	}).Stepper()
}

// RK3SSP is the three stage Shu-Osher strong stability preserving method
func RK3SSP() *Stepper {
	return &Stepper{
		Name:  "RK3_SSP",
		Order: 3,
		Step1: func(f RHS, Y utils.Matrix, t, dt float64) utils.Matrix {
			// SSP RK Stage 1
			rhs := f(Y, t)
			update1 := func(u0, rhs float64) (u1 float64) {
				u1 = u0 + dt*rhs
				return
			}
			Y1 := Y.Copy().Apply2(rhs, update1)

			// SSP RK Stage 2
			rhs = f(Y1, t+dt)
			update2 := func(u0, u1, rhs float64) (u2 float64) {
				u2 = (3*u0 + u1 + rhs*dt) * (1. / 4.)
				return
			}
			Y2 := Y.Copy().Apply3(Y1, rhs, update2)

			// SSP RK Stage 3
			rhs = f(Y2, t+0.5*dt)
			update3 := func(u0, u2, rhs float64) (u3 float64) {
				u3 = (u0 + 2*u2 + 2*dt*rhs) * (1. / 3.)
				return
			}
			return Y.Copy().Apply3(Y2, rhs, update3)
		},
	}
}
