package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Row views are contiguous and write through
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, []float64{4, 5, 6}, M.Row(1))
		assert.Equal(t, []float64{1, 2, 3}, M.Row(-2))
		M.Row(0)[2] = 10
		assert.Equal(t, 10., M.At(0, 2))
		col := make([]float64, 2)
		M.ColInto(2, col)
		assert.Equal(t, []float64{10, 6}, col)
	}
	// Copy is deep
	{
		M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		C := M.Copy()
		C.Set(0, 0, -1)
		assert.Equal(t, 1., M.At(0, 0))
		assert.Equal(t, -1., C.At(0, 0))
	}
	// Chained arithmetic
	{
		A := NewMatrix(1, 3, []float64{1, 2, 3})
		B := NewMatrix(1, 3, []float64{1, 1, 1})
		A.Copy().AddScaled(1, B)
		assert.Equal(t, []float64{1, 2, 3}, A.Data())
		R := A.Copy().AddScaled(2, B).AddScaled(-1, B)
		assert.Equal(t, []float64{2, 3, 4}, R.Data())
		R.Apply2(A, func(x, y float64) float64 { return x*y + 1 })
		assert.Equal(t, []float64{3, 7, 13}, R.Data())
		R.Assign(NewMatrix(1, 3, []float64{9, 25, 49}))
		R.Apply2(B, func(x, y float64) float64 { return x - y })
		assert.Equal(t, []float64{8, 24, 48}, R.Data())
		assert.Equal(t, 8., R.Min())
		assert.Equal(t, 48., R.Max())
		R.Apply3(A, B, func(r, a, b float64) float64 { return r + a*b })
		assert.Equal(t, []float64{9, 26, 51}, R.Data())
	}
	// Linear combination
	{
		A := NewMatrix(1, 2, []float64{1, 2})
		B := NewMatrix(1, 2, []float64{10, 20})
		R := LinearCombination([]float64{2, 0.5}, A, B)
		assert.Equal(t, []float64{7, 14}, R.Data())
		assert.Panics(t, func() { LinearCombination([]float64{1}, A, B) })
	}
	// Dimension checks and read only
	{
		A := NewMatrix(2, 2)
		B := NewMatrix(1, 4)
		assert.Panics(t, func() { A.AddScaled(1, B) })
		assert.NotPanics(t, func() { A.Set(0, 0, 1) })
		A.SetReadOnly("A")
		assert.Panics(t, func() { A.Set(0, 0, 1) })
		assert.Panics(t, func() { A.Apply2(A, func(x, y float64) float64 { return x }) })
		// Copies of a read only matrix are writable
		C := A.Copy()
		assert.NotPanics(t, func() { C.Set(0, 0, 2) })
		assert.Panics(t, func() { NewMatrix(2, 2, []float64{1, 2, 3}) })
	}
	assert.Equal(t, 4., NewMatrix(1, 3, []float64{-4, 2, 3}).MaxAbs())
}

func TestSystem(t *testing.T) {
	assert.False(t, IsNan(NewMatrix(1, 2, []float64{1, 2})))
	assert.True(t, IsNan(NewMatrix(1, 2, []float64{1, math.NaN()})))
	assert.True(t, IsNan([]float64{math.Inf(1)}))
	assert.True(t, IsNan([]Matrix{NewMatrix(1, 1), NewMatrix(1, 1, []float64{math.Inf(-1)})}))
}

func TestMath(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, Linspace(0, 1, 5))
	assert.Equal(t, []float64{2}, Linspace(2, 3, 1))
	assert.Equal(t, []float64{3, 2, 1}, Reverse([]float64{1, 2, 3}))
	assert.Equal(t, []float64{7, 7}, ConstArray(2, 7))
	for p := -10; p <= 10; p++ {
		assert.InDelta(t, math.Pow(1.3, float64(p)), POW(1.3, p), 1.e-12)
	}
}

func TestSparse(t *testing.T) {
	// Second difference operator on 4 points
	D := NewDOK(4, 4)
	D.SetName("D2")
	for i := 0; i < 4; i++ {
		D.Set(i, i, -2)
		if i > 0 {
			D.Set(i, i-1, 1)
		}
		if i < 3 {
			D.Set(i, i+1, 1)
		}
	}
	assert.Equal(t, 10, D.NNZ())
	assert.Panics(t, func() { D.Set(4, 0, 1) })
	C := D.ToCSR()
	assert.Equal(t, 10, C.NNZ())
	y := make([]float64, 4)
	C.MulVec([]float64{1, 4, 9, 16}, y)
	assert.Equal(t, []float64{2, 2, 2, -23}, y)
	X := NewMatrix(2, 4, []float64{1, 1, 1, 1, 0, 1, 2, 3})
	Y := NewMatrix(2, 4)
	C.MulRows(X, Y)
	assert.Equal(t, []float64{-1, 0, 0, -1, 1, 0, 0, -4}, Y.Data())
	assert.Panics(t, func() { C.MulVec([]float64{1}, y) })
	// Column indices ascend within every row regardless of map order
	for k := 0; k < 10; k++ {
		raw := D.ToCSR().RawMatrix()
		assert.Equal(t, []int{0, 1, 0, 1, 2, 1, 2, 3, 2, 3}, raw.Ind)
		assert.Equal(t, []float64{-2, 1, 1, -2, 1, 1, -2, 1, 1, -2}, raw.Data)
	}
}
