package FD1D

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/hyperweno/utils"
)

// Grid1D is a uniform cell centred mesh on [XLo, XHi] with Mbc ghost cells on each side.
// Q holds Meq rows of Mx+2*Mbc values, the interior is [Mbc, Mbc+Mx).
type Grid1D struct {
	XLo, XHi     float64
	Mx, Mbc, Meq int
	Dx           float64
	X            []float64
	Q            utils.Matrix
}

func NewGrid1D(xlims [2]float64, mx, mbc, meq int) (g *Grid1D) {
	if mx <= 0 || mbc < 0 || meq <= 0 {
		panic(fmt.Errorf("invalid grid dimensions: mx = %d, mbc = %d, meq = %d", mx, mbc, meq))
	}
	g = &Grid1D{
		XLo: xlims[0],
		XHi: xlims[1],
		Mx:  mx,
		Mbc: mbc,
		Meq: meq,
		Dx:  (xlims[1] - xlims[0]) / float64(mx),
	}
	var (
		halo = (float64(mbc) - 0.5) * g.Dx
	)
	g.X = utils.Linspace(g.XLo-halo, g.XHi+halo, g.Ncells())
	g.Q = utils.NewMatrix(meq, g.Ncells())
	return
}

// Ncells is the total number of cells, ghosts included
func (g *Grid1D) Ncells() int { return g.Mx + 2*g.Mbc }

// Interior returns the half open index range of the interior cells
func (g *Grid1D) Interior() (iBeg, iEnd int) { return g.Mbc, g.Mbc + g.Mx }

func (g *Grid1D) InteriorX() []float64 {
	iBeg, iEnd := g.Interior()
	return g.X[iBeg:iEnd]
}

// InteriorRow is a view of equation n over the interior cells
func (g *Grid1D) InteriorRow(n int) []float64 {
	iBeg, iEnd := g.Interior()
	return g.Q.Row(n)[iBeg:iEnd]
}

// SetQ copies Q into the grid state, Q must span every cell
func (g *Grid1D) SetQ(Q utils.Matrix) {
	g.Q.Assign(Q)
}

// Mass returns the integral of each conserved variable over the interior
func (g *Grid1D) Mass() (m []float64) {
	m = make([]float64, g.Meq)
	for n := range m {
		m[n] = floats.Sum(g.InteriorRow(n)) * g.Dx
	}
	return
}

func (g *Grid1D) String() string {
	return fmt.Sprintf("Grid1D: [%g, %g], mx = %d, mbc = %d, meq = %d, dx = %g",
		g.XLo, g.XHi, g.Mx, g.Mbc, g.Meq, g.Dx)
}
