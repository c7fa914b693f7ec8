package FD1D

import (
	"fmt"
	"strings"

	"github.com/notargets/hyperweno/utils"
)

// BCFunc fills the ghost cells of Q for time t. It must not touch the interior.
type BCFunc func(Q utils.Matrix, t float64)

// BCFactory builds the BCFunc for a grid with mx interior and mbc ghost cells per side
type BCFactory func(mx, mbc int) BCFunc

// SideBC fills the ghost cells on one side of the domain
type SideBC func(Q utils.Matrix, mx, mbc int)

// BCType names the boundary conditions available from input files
type BCType uint8

const (
	BCNone BCType = iota
	BCPeriodic
	BCOutflow
	BCSolidWall
)

func (bc BCType) String() string {
	switch bc {
	case BCPeriodic:
		return "Periodic"
	case BCOutflow:
		return "Outflow"
	case BCSolidWall:
		return "SolidWall"
	}
	return "None"
}

func NewBCType(name string) (bc BCType, err error) {
	switch strings.ToLower(name) {
	case "periodic":
		bc = BCPeriodic
	case "outflow":
		bc = BCOutflow
	case "solidwall", "solid_wall", "wall":
		bc = BCSolidWall
	default:
		err = fmt.Errorf("unknown boundary condition: %q", name)
	}
	return
}

// PeriodicBCs wraps each ghost region from the opposite end of the interior, mx must be at least mbc
func PeriodicBCs(Q utils.Matrix, mx, mbc int) {
	var (
		meq, _ = Q.Dims()
		r      = mbc + mx
	)
	for n := 0; n < meq; n++ {
		row := Q.Row(n)
		copy(row[:mbc], row[r-mbc:r])
		copy(row[r:r+mbc], row[mbc:2*mbc])
	}
}

// OutflowBCLeft copies the first interior value into every left ghost cell
func OutflowBCLeft(Q utils.Matrix, mx, mbc int) {
	meq, _ := Q.Dims()
	for n := 0; n < meq; n++ {
		row := Q.Row(n)
		for j := 0; j < mbc; j++ {
			row[j] = row[mbc]
		}
	}
}

// OutflowBCRight copies the last interior value into every right ghost cell
func OutflowBCRight(Q utils.Matrix, mx, mbc int) {
	var (
		meq, _ = Q.Dims()
		r      = mbc + mx
	)
	for n := 0; n < meq; n++ {
		row := Q.Row(n)
		for j := r; j < r+mbc; j++ {
			row[j] = row[r-1]
		}
	}
}

func NewPeriodicBCs() BCFactory {
	return func(mx, mbc int) BCFunc {
		return func(Q utils.Matrix, t float64) {
			PeriodicBCs(Q, mx, mbc)
		}
	}
}

func NewOutflowBCs() BCFactory {
	return NewSideBCs(OutflowBCLeft, OutflowBCRight)
}

// NewSideBCs combines independent left and right boundary operators
func NewSideBCs(left, right SideBC) BCFactory {
	return func(mx, mbc int) BCFunc {
		return func(Q utils.Matrix, t float64) {
			left(Q, mx, mbc)
			right(Q, mx, mbc)
		}
	}
}
