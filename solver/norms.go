package solver

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/hyperweno/FD1D"
	"github.com/notargets/hyperweno/utils"
)

// Norms holds the discrete error norms of each equation over the interior cells
type Norms struct {
	L1, L2, Linf []float64
}

// ErrorNorms compares the grid solution with Qexact, which must span every cell of the grid
func ErrorNorms(g *FD1D.Grid1D, Qexact utils.Matrix) (nrm Norms, err error) {
	var (
		iBeg, iEnd = g.Interior()
		e          = make([]float64, g.Mx)
	)
	nrm = Norms{
		L1:   make([]float64, g.Meq),
		L2:   make([]float64, g.Meq),
		Linf: make([]float64, g.Meq),
	}
	if nr, nc := Qexact.Dims(); nr != g.Meq || nc != g.Ncells() {
		err = fmt.Errorf("%w: exact solution is %dx%d, grid needs %dx%d", ErrInvalidInit, nr, nc, g.Meq, g.Ncells())
		return
	}
	for n := 0; n < g.Meq; n++ {
		exact := Qexact.Row(n)
		floats.SubTo(e, g.Q.Row(n)[iBeg:iEnd], exact[iBeg:iEnd])
		nrm.L1[n] = floats.Norm(e, 1) * g.Dx
		nrm.L2[n] = floats.Norm(e, 2) * math.Sqrt(g.Dx)
		nrm.Linf[n] = floats.Norm(e, math.Inf(1))
	}
	return
}

// ConvergenceRow is one level of a refinement study, errors are for the first equation and Order
// is the observed L2 rate against the previous level (NaN on the first level).
type ConvergenceRow struct {
	Mx           int
	Dx           float64
	L1, L2, Linf float64
	Order        float64
}

// RefinementLevels returns n cell counts spaced logarithmically between mxMin and mxMax
func RefinementLevels(mxMin, mxMax, n int) (levels []int) {
	if n < 2 {
		return []int{mxMin}
	}
	span := floats.LogSpan(make([]float64, n), float64(mxMin), float64(mxMax))
	for _, v := range span {
		mx := int(math.Round(v))
		if len(levels) == 0 || mx != levels[len(levels)-1] {
			levels = append(levels, mx)
		}
	}
	return
}

// Refine runs tc at each resolution in mxs and reports the observed order of accuracy
func Refine(tc *TestCase, scheme, stepper string, CFL float64, mxs []int, opts *Options) (rows []ConvergenceRow, err error) {
	if !tc.HasExact() {
		err = fmt.Errorf("%w: %s has no exact solution to refine against", ErrMissingField, tc.Name)
		return
	}
	for k, mx := range mxs {
		var (
			nm  *Numerics
			res *Result
		)
		if nm, err = NewNumerics(scheme, stepper, CFL, mx); err != nil {
			return
		}
		if res, err = RunSimulation(tc, nm, opts); err != nil {
			return
		}
		row := ConvergenceRow{
			Mx:    mx,
			Dx:    res.Grid.Dx,
			L1:    res.Norms.L1[0],
			L2:    res.Norms.L2[0],
			Linf:  res.Norms.Linf[0],
			Order: math.NaN(),
		}
		if k > 0 {
			prev := rows[k-1]
			row.Order = math.Log(prev.L2/row.L2) / math.Log(prev.Dx/row.Dx)
		}
		rows = append(rows, row)
	}
	return
}

// WriteConvergenceCSV writes the rows with a header line, the order column is empty on the first row
func WriteConvergenceCSV(w io.Writer, rows []ConvergenceRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"mx", "dx", "L1", "L2", "Linf", "order"}); err != nil {
		return err
	}
	ff := func(x float64) string { return strconv.FormatFloat(x, 'e', 15, 64) }
	for _, r := range rows {
		order := ""
		if !math.IsNaN(r.Order) {
			order = strconv.FormatFloat(r.Order, 'f', 4, 64)
		}
		if err := cw.Write([]string{strconv.Itoa(r.Mx), ff(r.Dx), ff(r.L1), ff(r.L2), ff(r.Linf), order}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
