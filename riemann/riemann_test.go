package riemann

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/hyperweno/flux"
)

func TestScalarSolvers(t *testing.T) {
	{
		f := func(y float64) float64 { return y*y - 2 }
		fp := func(y float64) float64 { return 2 * y }
		y, n, err := NewtonSolveScalar(f, fp, 1, NewtonTol, NewtonMaxIter)
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt2, y, 1.e-15)
		assert.Less(t, n, 10)
		_, _, err = NewtonSolveScalar(func(y float64) float64 { return y*y + 1 }, fp, 1, NewtonTol, 50)
		assert.True(t, errors.Is(err, ErrNoConvergence))
	}
	{
		y, err := SecantSolveScalar(math.Cos, 1, 1.1, SecantTol, SecantMaxIter)
		require.NoError(t, err)
		assert.InDelta(t, 0.5*math.Pi, y, 1.e-14)
		_, err = SecantSolveScalar(func(y float64) float64 { return 1 }, 0, 1, SecantTol, SecantMaxIter)
		assert.True(t, errors.Is(err, ErrNoConvergence))
	}
	assert.InDelta(t, math.Sqrt2, bisect(func(y float64) float64 { return y*y - 2 }, 0, 2), 1.e-14)
}

func TestBuckleyLeverett(t *testing.T) {
	bl := flux.NewBuckleyLeverett(1. / 3.)
	qsL, qsR, err := BuckleyLeverettSpeeds(bl)
	require.NoError(t, err)
	assert.InDelta(t, 0.13397459621556132, qsL, 1.e-12)
	assert.InDelta(t, 0.5, qsR, 1.e-12)

	slab, err := NewBuckleyLeverettSlab(bl, -0.5, 0)
	require.NoError(t, err)
	var (
		tt        = 0.4
		sl, sr    = slab.ShockPositions(tt)
		eps       = 1.e-9
		qJustLeft = slab.At(sl-eps, tt)
	)
	assert.InDelta(t, qsL, qJustLeft, 1.e-6)
	assert.Equal(t, 1., slab.At(sl+eps, tt))
	assert.InDelta(t, qsR, slab.At(sr-eps, tt), 1.e-6)
	assert.Equal(t, 0., slab.At(sr+eps, tt))
	assert.Equal(t, 0., slab.At(-0.9, tt))
	// Inside the right fan the characteristic speed matches x/t
	x := 0.5 * sr
	assert.InDelta(t, x/tt, bl.Fp(slab.At(x, tt)), 1.e-10)
	Q := slab.Exact([]float64{-0.9, -0.25, 0.9}, 0)
	assert.Equal(t, []float64{0, 1, 0}, Q.Data())
}

func TestSod(t *testing.T) {
	rp, err := NewEulerRiemann(1.4, Primitive{1, 0, 1}, Primitive{0.125, 0, 0.1}, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.30313, rp.PStar, 1.e-5)
	assert.InDelta(t, 0.92745, rp.UStar, 1.e-5)
	assert.InDelta(t, 0.4263194281781805, rp.RhoStarL, 1.e-6)
	assert.InDelta(t, 0.26557371170513905, rp.RhoStarR, 1.e-6)
	_, _, contact, _, shock := rp.WaveSpeeds()
	assert.InDelta(t, 0.6752, rp.X0+0.1*shock, 1.e-4)
	assert.InDelta(t, 0.8504, rp.X0+0.2*shock, 1.e-4)
	assert.Equal(t, rp.UStar, contact)

	Q := rp.Exact([]float64{0.1, 0.5 + 0.2*0.5*(contact+shock), 0.99}, 0.2)
	assert.InDelta(t, 1., Q.At(0, 0), 1.e-15)
	assert.InDelta(t, rp.RhoStarR, Q.At(0, 1), 1.e-12)
	assert.InDelta(t, rp.RhoStarR*rp.UStar, Q.At(1, 1), 1.e-12)
	assert.InDelta(t, 0.125, Q.At(0, 2), 1.e-15)
	assert.InDelta(t, 0.1/0.4, Q.At(2, 2), 1.e-15)
}

func TestEulerFanContinuity(t *testing.T) {
	for _, tc := range []struct {
		left, right Primitive
	}{
		{Primitive{1, 0, 1}, Primitive{0.125, 0, 0.1}},
		{Primitive{1, -2, 0.4}, Primitive{1, 2, 0.4}},
		{Primitive{1, 0, 1000}, Primitive{1, 0, 0.01}},
		{Primitive{0.445, 0.3111 / 0.445, 3.528}, Primitive{0.5, 0, 0.571}},
	} {
		rp, err := NewEulerRiemann(1.4, tc.left, tc.right, 0)
		require.NoError(t, err)
		lHead, lTail, _, rTail, rHead := rp.WaveSpeeds()
		eps := 1.e-10
		for _, xi := range []float64{lHead, lTail, rTail, rHead} {
			a, b := rp.Sample(xi-eps), rp.Sample(xi+eps)
			if xi == lHead && lHead == lTail || xi == rHead && rHead == rTail {
				continue // shocks jump
			}
			assert.InDelta(t, a.P, b.P, 1.e-6*tc.left.P)
			assert.InDelta(t, a.U, b.U, 1.e-6*(1+math.Abs(a.U)))
		}
		// Pressure and velocity are continuous across the contact
		fL, _ := rp.pressureFunction(rp.PStar, rp.Left)
		fR, _ := rp.pressureFunction(rp.PStar, rp.Right)
		assert.InDelta(t, 0., fL+fR+rp.Right.U-rp.Left.U, 1.e-10)
	}
	_, err := NewEulerRiemann(1.4, Primitive{1, -20, 0.4}, Primitive{1, 20, 0.4}, 0)
	assert.True(t, errors.Is(err, ErrVacuum))
}

func TestDamBreak(t *testing.T) {
	rp, err := NewDamBreak(1, 3, 1, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1.848576603096757, rp.HStar, 1.e-12)
	assert.InDelta(t, 0.7448542169801264, rp.UStar, 1.e-12)
	lHead, lTail, rTail, rHead := rp.WaveSpeeds()
	assert.InDelta(t, -math.Sqrt(3), lHead, 1.e-15)
	assert.InDelta(t, rp.UStar-math.Sqrt(rp.HStar), lTail, 1.e-14)
	assert.Equal(t, rTail, rHead)
	// Rankine-Hugoniot mass jump
	assert.InDelta(t, (rp.HStar*rp.UStar-0)/(rp.HStar-1), rHead, 1.e-10)
	// The fan joins the star state continuously
	h, u := rp.Sample(lTail - 1.e-12)
	assert.InDelta(t, rp.HStar, h, 1.e-9)
	assert.InDelta(t, rp.UStar, u, 1.e-9)
	Q := rp.Exact([]float64{0, 0.5, 1}, 0.2)
	assert.Equal(t, 3., Q.At(0, 0))
	assert.Equal(t, 0., Q.At(1, 0))
	assert.Equal(t, 1., Q.At(0, 2))
	assert.InDelta(t, rp.HStar*rp.UStar, Q.At(1, 1), 1.e-12)
}
