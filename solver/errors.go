package solver

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField  = errors.New("solver: mandatory field not specified")
	ErrInvalidDomain = errors.New("solver: domain limits must be ordered")
	ErrInvalidTime   = errors.New("solver: final time must be positive")
	ErrInvalidCFL    = errors.New("solver: CFL must be positive")
	ErrInvalidMx     = errors.New("solver: mx must cover at least the ghost cells")
	ErrInvalidInit   = errors.New("solver: initial condition does not match the grid")
	ErrNonFinite     = errors.New("solver: solution contains NaN or Inf")
	ErrMaxSteps      = errors.New("solver: step limit reached before final time")
)

// SimulationError records where in the run a failure happened
type SimulationError struct {
	Case    string
	Step    int
	Time    float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("%s at ts = %d, t = %.6e: %v", e.Case, e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error { return e.Wrapped }
