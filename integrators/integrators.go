package integrators

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/notargets/hyperweno/utils"
)

var (
	ErrUnknownStepper   = errors.New("unknown time stepper")
	ErrInvalidParameter = errors.New("invalid time stepper parameter")
)

// RHS returns q_t for state q at time t. It may overwrite the ghost cells of q.
type RHS func(q utils.Matrix, t float64) utils.Matrix

// RHS2 returns q_t and q_tt for state q at time t. It may overwrite the ghost cells of q.
type RHS2 func(q utils.Matrix, t float64) (qt, qtt utils.Matrix)

// Derivatives is the semi-discretization a Stepper advances, *MOL.MOL satisfies it
type Derivatives interface {
	Rhs(Q utils.Matrix, t float64) utils.Matrix
	TimeDerivatives(Q utils.Matrix, t float64) (Qt, Qtt utils.Matrix)
}

// Stepper is a single step time integrator. Exactly one of Step1 and Step2 is set, TwoDeriv
// tells which one.
type Stepper struct {
	Name     string
	Order    int
	TwoDeriv bool
	Step1    func(f RHS, Y utils.Matrix, t, dt float64) utils.Matrix
	Step2    func(f RHS2, Y utils.Matrix, t, dt float64) utils.Matrix
}

// Advance returns the state at t+dt without modifying the interior of Y
func (s *Stepper) Advance(d Derivatives, Y utils.Matrix, t, dt float64) utils.Matrix {
	if s.TwoDeriv {
		return s.Step2(d.TimeDerivatives, Y, t, dt)
	}
	return s.Step1(d.Rhs, Y, t, dt)
}

func (s *Stepper) String() string {
	kind := "single derivative"
	if s.TwoDeriv {
		kind = "two derivative"
	}
	return fmt.Sprintf("%s (order %d, %s)", s.Name, s.Order, kind)
}

var registry = map[string]func() *Stepper{
	"fe":           FE,
	"rk2_midpoint": RK2Midpoint,
	"rk2_heun":     RK2Heun,
	"rk3":          RK3,
	"rk3_ssp":      RK3SSP,
	"rk4":          RK4,
	"fehlberg5":    Fehlberg5,
	"taylor2":      Taylor2,
	"td_rk3":       TDRK3,
	"td_rk4":       TDRK4,
	"td_rk5":       func() *Stepper { s, _ := NewTDRK5(1); return s },
}

// NewStepper looks up a stepper by name, case insensitive
func NewStepper(name string) (s *Stepper, err error) {
	ctor, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		err = fmt.Errorf("%w: %q, choose one of %v", ErrUnknownStepper, name, Names())
		return
	}
	s = ctor()
	return
}

// Names lists the registered steppers in sorted order
func Names() (names []string) {
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
