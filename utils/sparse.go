package utils

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
	"gonum.org/v1/gonum/mat"
)

// DOK is the assembly format, it is converted to CSR before use
type DOK struct {
	M    *sparse.DOK
	name string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		"unnamed - hint: pass a variable name to SetName()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)         { return m.M.Dims() }
func (m DOK) At(i, j int) float64      { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix            { return m.M.T() }
func (m DOK) NNZ() int                 { return m.M.NNZ() }
func (m *DOK) SetName(name string) DOK { m.name = name; return *m }

func (m DOK) Set(i, j int, val float64) DOK { // Changes receiver
	var (
		nr, nc = m.Dims()
	)
	if i < 0 || i >= nr || j < 0 || j >= nc {
		panic(fmt.Errorf("index [%d,%d] out of bounds for sparse matrix %q of size [%d,%d]", i, j, m.name, nr, nc))
	}
	m.M.Set(i, j, val)
	return m
}

// ToCSR converts to compressed rows. The DOK is a map, so the column indices of each row are
// sorted to fix the summation order of every product.
func (m DOK) ToCSR() CSR {
	var (
		csr = m.M.ToCSR()
		raw = csr.RawMatrix()
	)
	for i := 0; i < raw.I; i++ {
		k0, k1 := raw.Indptr[i], raw.Indptr[i+1]
		sort.Sort(csrRow{raw.Ind[k0:k1], raw.Data[k0:k1]})
	}
	return CSR{
		M:    csr,
		name: m.name,
	}
}

type csrRow struct {
	ind  []int
	data []float64
}

func (r csrRow) Len() int           { return len(r.ind) }
func (r csrRow) Less(i, j int) bool { return r.ind[i] < r.ind[j] }
func (r csrRow) Swap(i, j int) {
	r.ind[i], r.ind[j] = r.ind[j], r.ind[i]
	r.data[i], r.data[j] = r.data[j], r.data[i]
}

type CSR struct {
	M    *sparse.CSR
	name string
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)              { return m.M.Dims() }
func (m CSR) At(i, j int) float64           { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix                 { return m.M.T() }
func (m CSR) RawMatrix() *blas.SparseMatrix { return m.M.RawMatrix() }
func (m CSR) NNZ() int                      { return m.M.NNZ() }

// MulVec computes y = A*x using the compressed row storage directly
func (m CSR) MulVec(x, y []float64) {
	var (
		nr, nc = m.Dims()
		raw    = m.RawMatrix()
	)
	if len(x) != nc || len(y) != nr {
		panic(fmt.Errorf("dimension mismatch in %q: [%d,%d] times %d into %d", m.name, nr, nc, len(x), len(y)))
	}
	for i := 0; i < nr; i++ {
		var sum float64
		for k := raw.Indptr[i]; k < raw.Indptr[i+1]; k++ {
			sum += raw.Data[k] * x[raw.Ind[k]]
		}
		y[i] = sum
	}
}

// MulRows applies the operator to every row of X, storing into Y
func (m CSR) MulRows(X, Y Matrix) {
	nr, _ := X.Dims()
	for n := 0; n < nr; n++ {
		m.MulVec(X.Row(n), Y.Row(n))
	}
}
