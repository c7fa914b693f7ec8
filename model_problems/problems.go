package model_problems

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/notargets/hyperweno/solver"
	"github.com/notargets/hyperweno/utils"
)

var ErrUnknownProblem = errors.New("unknown model problem")

// Defaults are the numerics a problem is usually run with
type Defaults struct {
	Scheme  string
	Stepper string
	CFL     float64
	Mx      int
	Frames  int
}

type Problem struct {
	Name        string
	Description string
	Defaults    Defaults
	build       func() *solver.TestCase
}

// TestCase builds a fresh test case, callers may modify it
func (p *Problem) TestCase() *solver.TestCase {
	tc := p.build()
	tc.Name = p.Name
	return tc
}

var problems = map[string]*Problem{}

func register(p *Problem) {
	if _, ok := problems[p.Name]; ok {
		panic(fmt.Errorf("model problem %s registered twice", p.Name))
	}
	problems[p.Name] = p
}

func Lookup(name string) (p *Problem, err error) {
	var ok bool
	if p, ok = problems[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = fmt.Errorf("%w: %q, choose one of %v", ErrUnknownProblem, name, Names())
	}
	return
}

// Get returns the test case registered under name
func Get(name string) (tc *solver.TestCase, err error) {
	var p *Problem
	if p, err = Lookup(name); err != nil {
		return
	}
	tc = p.TestCase()
	return
}

func Names() (names []string) {
	for name := range problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// pointwise evaluates a per point initial condition over every cell
func pointwise(meq int, x []float64, f func(x float64, q []float64)) (Q utils.Matrix) {
	Q = utils.NewMatrix(meq, len(x))
	q := make([]float64, meq)
	for i, xx := range x {
		f(xx, q)
		Q.SetCol(i, q)
	}
	return
}

// wrap maps x into the periodic interval [lo, hi)
func wrap(x, lo, hi float64) float64 {
	r := math.Mod(x-lo, hi-lo)
	if r < 0 {
		r += hi - lo
	}
	return lo + r
}
