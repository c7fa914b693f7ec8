package solver

import (
	"fmt"

	"github.com/notargets/hyperweno/FD1D"
	"github.com/notargets/hyperweno/WENO"
	"github.com/notargets/hyperweno/flux"
	"github.com/notargets/hyperweno/integrators"
	"github.com/notargets/hyperweno/utils"
)

// TestCase is the physical problem: model equation, domain, boundary conditions and initial data.
// QExact is optional.
type TestCase struct {
	Name   string
	Model  flux.Flux1D
	XLims  [2]float64
	BCs    FD1D.BCFactory
	QInit  func(x []float64) utils.Matrix
	QExact func(x []float64, t float64) utils.Matrix
	TEnd   float64
}

func (tc *TestCase) Verify() (err error) {
	switch {
	case tc.Model == nil:
		err = fmt.Errorf("%w: Model", ErrMissingField)
	case tc.BCs == nil:
		err = fmt.Errorf("%w: BCs", ErrMissingField)
	case tc.QInit == nil:
		err = fmt.Errorf("%w: QInit", ErrMissingField)
	case tc.XLims[0] >= tc.XLims[1]:
		err = fmt.Errorf("%w: xlims = %v", ErrInvalidDomain, tc.XLims)
	case !(tc.TEnd > 0):
		err = fmt.Errorf("%w: tend = %v", ErrInvalidTime, tc.TEnd)
	}
	return
}

// HasExact reports whether error norms can be computed
func (tc *TestCase) HasExact() bool { return tc.QExact != nil }

// Numerics is the discretization applied to a TestCase
type Numerics struct {
	Weno    WENO.Scheme
	Stepper *integrators.Stepper
	CFL     float64
	Mx      int
}

func (nm *Numerics) Verify() (err error) {
	switch {
	case nm.Weno == nil:
		err = fmt.Errorf("%w: Weno", ErrMissingField)
	case nm.Stepper == nil:
		err = fmt.Errorf("%w: Stepper", ErrMissingField)
	case !(nm.CFL > 0):
		err = fmt.Errorf("%w: CFL = %v", ErrInvalidCFL, nm.CFL)
	case nm.Mx <= 0:
		err = fmt.Errorf("%w: mx = %d", ErrInvalidMx, nm.Mx)
	case nm.Mx < nm.Weno.Mbc():
		// Periodic ghost cells are copied from the interior
		err = fmt.Errorf("%w: mx = %d is less than the %d ghost cells of %s", ErrInvalidMx, nm.Mx, nm.Weno.Mbc(), nm.Weno.Name())
	}
	return
}

// NewNumerics looks up the scheme and stepper by name
func NewNumerics(scheme, stepper string, CFL float64, mx int) (nm *Numerics, err error) {
	nm = &Numerics{CFL: CFL, Mx: mx}
	if nm.Weno, err = WENO.NewScheme(scheme); err != nil {
		return
	}
	if nm.Stepper, err = integrators.NewStepper(stepper); err != nil {
		return
	}
	err = nm.Verify()
	return
}

// TimeManager is the single simulation clock, t and the step count only move together
type TimeManager struct {
	t  float64
	ts int
}

func NewTimeManager(t0 float64) *TimeManager { return &TimeManager{t: t0} }

func (tm *TimeManager) Advance(dt float64) {
	tm.t += dt
	tm.ts++
}

func (tm *TimeManager) T() float64 { return tm.t }
func (tm *TimeManager) TS() int    { return tm.ts }
