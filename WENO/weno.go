package WENO

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Scheme reconstructs an interface value from the cell values at the offsets in Stencil.
// ReconstructLeft gives the value at i+1/2 biased to the left of that interface,
// ReconstructRight gives the value at i-1/2 biased to the right and is always
// ReconstructLeft applied to the reversed stencil.
type Scheme interface {
	Name() string
	Order() int
	Stencil() []int
	Mbc() int
	ReconstructLeft(s []float64) float64
	ReconstructRight(s []float64) float64
}

// Regularization of the smoothness indicators in the nonlinear weights
const DefaultEps = 1.e-12

// Exponent of the WENO-Z weights
const DefaultP = 2

var ErrUnknownScheme = errors.New("unknown WENO scheme")

type stencilBase struct {
	name    string
	order   int
	stencil []int
}

func newStencilBase(name string, order int) stencilBase {
	var (
		r       = (order - 1) / 2
		stencil = make([]int, 0, order)
	)
	for k := -r; k <= r; k++ {
		stencil = append(stencil, k)
	}
	return stencilBase{name: name, order: order, stencil: stencil}
}

func (sb stencilBase) Name() string { return sb.name }
func (sb stencilBase) Order() int   { return sb.order }

func (sb stencilBase) Stencil() []int {
	st := make([]int, len(sb.stencil))
	copy(st, sb.stencil)
	return st
}

// Mbc is the ghost cell count, one more than the stencil half width because the flux
// splitting extends the stencil by one point
func (sb stencilBase) Mbc() int { return sb.stencil[len(sb.stencil)-1] + 1 }

var registry = map[string]func() Scheme{
	"cfd5": func() Scheme { return NewCFD5() },
	"cfd7": func() Scheme { return NewCFD7() },
	"js5":  func() Scheme { return NewJS5() },
	"js7":  func() Scheme { return NewJS7() },
	"z5":   func() Scheme { return NewZ5() },
	"z7":   func() Scheme { return NewZ7() },
}

// NewScheme looks up a scheme by name, case insensitive
func NewScheme(name string) (Scheme, error) {
	ctor, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q, choose from %v", ErrUnknownScheme, name, Names())
	}
	return ctor(), nil
}

func Names() (names []string) {
	for name := range registry {
		names = append(names, strings.ToUpper(name))
	}
	sort.Strings(names)
	return
}

// normalize scales w in place to sum to one
func normalize(w []float64) {
	var sum float64
	for _, v := range w {
		sum += v
	}
	for i := range w {
		w[i] /= sum
	}
}
