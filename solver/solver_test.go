package solver

import (
	"bufio"
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/hyperweno/FD1D"
	"github.com/notargets/hyperweno/flux"
	"github.com/notargets/hyperweno/utils"
)

func sineProfile(x []float64, t float64) utils.Matrix {
	Q := utils.NewMatrix(1, len(x))
	for i, xx := range x {
		Q.Set(0, i, math.Sin(2*math.Pi*(xx-t)))
	}
	return Q
}

func advectionSine() *TestCase {
	return &TestCase{
		Name:   "advection_sine",
		Model:  flux.NewAdvection(1),
		XLims:  [2]float64{0, 1},
		BCs:    FD1D.NewPeriodicBCs(),
		QInit:  func(x []float64) utils.Matrix { return sineProfile(x, 0) },
		QExact: sineProfile,
		TEnd:   1,
	}
}

func quiet() *Options { return &Options{} }

func TestVerify(t *testing.T) {
	tc := advectionSine()
	require.NoError(t, tc.Verify())
	for _, bad := range []struct {
		mutate func(tc *TestCase)
		target error
	}{
		{func(tc *TestCase) { tc.Model = nil }, ErrMissingField},
		{func(tc *TestCase) { tc.BCs = nil }, ErrMissingField},
		{func(tc *TestCase) { tc.QInit = nil }, ErrMissingField},
		{func(tc *TestCase) { tc.XLims = [2]float64{1, 0} }, ErrInvalidDomain},
		{func(tc *TestCase) { tc.XLims = [2]float64{1, 1} }, ErrInvalidDomain},
		{func(tc *TestCase) { tc.TEnd = 0 }, ErrInvalidTime},
		{func(tc *TestCase) { tc.TEnd = -1 }, ErrInvalidTime},
	} {
		tc := advectionSine()
		bad.mutate(tc)
		assert.True(t, errors.Is(tc.Verify(), bad.target))
	}
	// The exact solution is optional
	tc.QExact = nil
	assert.NoError(t, tc.Verify())

	nm, err := NewNumerics("JS5", "rk4", 0.5, 100)
	require.NoError(t, err)
	assert.Equal(t, 3, nm.Weno.Mbc())
	_, err = NewNumerics("JS5", "rk4", 0, 100)
	assert.True(t, errors.Is(err, ErrInvalidCFL))
	_, err = NewNumerics("JS5", "rk4", 0.5, 0)
	assert.True(t, errors.Is(err, ErrInvalidMx))
	_, err = NewNumerics("JS7", "rk4", 0.5, 3)
	assert.True(t, errors.Is(err, ErrInvalidMx))
	_, err = NewNumerics("JS7", "rk4", 0.5, 4)
	assert.NoError(t, err)
	assert.True(t, errors.Is((&Numerics{Stepper: nm.Stepper, CFL: 1, Mx: 1}).Verify(), ErrMissingField))
	assert.True(t, errors.Is((&Numerics{Weno: nm.Weno, CFL: 1, Mx: 1}).Verify(), ErrMissingField))
	_, err = RunSimulation(tc, &Numerics{Weno: nm.Weno, Stepper: nm.Stepper, CFL: -1, Mx: 10}, quiet())
	assert.True(t, errors.Is(err, ErrInvalidCFL))
}

func TestTimeManager(t *testing.T) {
	tm := NewTimeManager(0.5)
	assert.Equal(t, 0.5, tm.T())
	assert.Equal(t, 0, tm.TS())
	tm.Advance(0.25)
	tm.Advance(0.25)
	assert.Equal(t, 1., tm.T())
	assert.Equal(t, 2, tm.TS())
}

func TestAdvectionSine(t *testing.T) {
	nm, err := NewNumerics("JS5", "RK4", 0.5, 100)
	require.NoError(t, err)
	var log bytes.Buffer
	res, err := RunSimulation(advectionSine(), nm, &Options{LogFrequency: 50, Log: &log})
	require.NoError(t, err)
	assert.Equal(t, 1., res.T)
	assert.Equal(t, 200, res.Steps)
	require.NotNil(t, res.Norms)
	assert.Greater(t, res.Norms.L2[0], 1.e-7)
	assert.Less(t, res.Norms.L2[0], 1.e-4)
	assert.LessOrEqual(t, res.Norms.L2[0], res.Norms.Linf[0])
	lines := strings.Split(strings.TrimSpace(log.String()), "\n")
	assert.Equal(t, "ts =   0;  t = 0.000;  dt = 5.000e-03", lines[0])
	assert.Equal(t, "ts =  50;  t = 0.250;  dt = 5.000e-03", lines[1])
	assert.Equal(t, "ts = 200;  t = 1.000;  dt = --", lines[4])
}

func TestConservedOverRun(t *testing.T) {
	var (
		gamma = 1.4
		euler = flux.NewEuler(gamma)
	)
	tc := &TestCase{
		Name:  "euler_periodic",
		Model: euler,
		XLims: [2]float64{0, 2},
		BCs:   FD1D.NewPeriodicBCs(),
		QInit: func(x []float64) utils.Matrix {
			Q := utils.NewMatrix(3, len(x))
			q := make([]float64, 3)
			for i, xx := range x {
				euler.Conserved(1+0.2*math.Sin(math.Pi*xx), 1, 1, q)
				Q.SetCol(i, q)
			}
			return Q
		},
		TEnd: 0.3,
	}
	for _, stepper := range []string{"rk3_ssp", "td_rk4"} {
		nm, err := NewNumerics("Z7", stepper, 0.5, 50)
		require.NoError(t, err)
		g := FD1D.NewGrid1D(tc.XLims, nm.Mx, nm.Weno.Mbc(), 3)
		g.SetQ(tc.QInit(g.X))
		mass0 := g.Mass()
		res, err := RunSimulation(tc, nm, &Options{Parallel: 3})
		require.NoError(t, err)
		assert.Nil(t, res.Norms)
		assert.InDeltaSlice(t, mass0, res.Grid.Mass(), 1.e-12, stepper)
	}
}

func TestOutputFrames(t *testing.T) {
	var (
		dir     = t.TempDir()
		base    = filepath.Join(dir, "sine")
		hist    = filepath.Join(dir, "history.dat")
		visited []float64
	)
	nm, err := NewNumerics("CFD5", "td_rk4", 0.7, 20)
	require.NoError(t, err)
	res, err := RunSimulation(advectionSine(), nm, &Options{
		Tout:        []float64{0.5, 0, 0.3, 2},
		OutputBase:  base,
		HistoryFile: hist,
		OnFrame:     func(frame int, t float64, g *FD1D.Grid1D) { visited = append(visited, t) },
	})
	require.NoError(t, err)
	assert.Equal(t, []string{base + "_0000.dat", base + "_0001.dat", base + "_0002.dat"}, res.Frames)
	assert.InDeltaSlice(t, []float64{0, 0.3, 0.5}, visited, 1.e-14)

	file, err := os.Open(res.Frames[1])
	require.NoError(t, err)
	defer file.Close()
	sc := bufio.NewScanner(file)
	require.True(t, sc.Scan())
	assert.True(t, strings.HasPrefix(sc.Text(), "3.0000000000000"))
	var rows int
	for sc.Scan() {
		assert.Len(t, strings.Fields(sc.Text()), 2)
		rows++
	}
	assert.Equal(t, 20, rows)

	data, err := os.ReadFile(hist)
	require.NoError(t, err)
	var dataRows int
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" && !strings.HasPrefix(line, "#") {
			assert.Len(t, strings.Fields(line), 4)
			dataRows++
		}
	}
	assert.Equal(t, res.Steps, dataRows)
}

func TestWriteSolution(t *testing.T) {
	g := FD1D.NewGrid1D([2]float64{0, 1}, 2, 1, 2)
	g.SetQ(utils.NewMatrix(2, 4, []float64{
		9, 1, 2, 9,
		9, -3, 4, 9,
	}))
	var buf bytes.Buffer
	require.NoError(t, WriteSolution(&buf, 0.125, g))
	assert.Equal(t, "1.250000000000000e-01\n"+
		"+2.500000000000000e-01 +1.000000000000000e+00 -3.000000000000000e+00\n"+
		"+7.500000000000000e-01 +2.000000000000000e+00 +4.000000000000000e+00\n", buf.String())
}

func TestTextDB(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "error.dat")
	db := NewTextDB(fileName)
	db.SetField("mx", "%5.0f", "Number of grid points")
	db.SetField("L2", "%.3e", "L2 norm of error")
	assert.Error(t, db.Write(1, 2))
	require.NoError(t, db.Open())
	require.NoError(t, db.Write(50, 1.5e-3))
	assert.Error(t, db.Write(1))
	require.NoError(t, db.Close())
	require.NoError(t, db.Open())
	require.NoError(t, db.Write(100, 5e-5))
	require.NoError(t, db.Close())
	data, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Equal(t, db.Header()+"   50 1.500e-03\n  100 5.000e-05\n", string(data))
	assert.Contains(t, db.Header(), "# Column  1\n# ---------\n# L2 %.3e\n# L2 norm of error\n")
}

func TestLatexFloat(t *testing.T) {
	assert.Equal(t, `1.25000\times 10^{-07}`, LatexFloat(1.25e-7, 5))
	assert.Equal(t, `-3.0\times 10^{+02}`, LatexFloat(-300, 1))
}

func TestRefine(t *testing.T) {
	assert.Equal(t, []int{50, 100, 200, 400, 800, 1600, 3200}, RefinementLevels(50, 3200, 7))
	assert.Equal(t, []int{10}, RefinementLevels(10, 20, 1))
	rows, err := Refine(advectionSine(), "Z5", "rk4", 0.5, []int{20, 40}, quiet())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, math.IsNaN(rows[0].Order))
	assert.Greater(t, rows[1].Order, 3.5)
	assert.Less(t, rows[1].L2, rows[0].L2)

	var buf bytes.Buffer
	require.NoError(t, WriteConvergenceCSV(&buf, rows))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "mx,dx,L1,L2,Linf,order", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], ","))

	tc := advectionSine()
	tc.QExact = nil
	_, err = Refine(tc, "Z5", "rk4", 0.5, []int{20}, quiet())
	assert.True(t, errors.Is(err, ErrMissingField))
}

func TestRunFailures(t *testing.T) {
	nm, err := NewNumerics("JS5", "rk4", 0.5, 20)
	require.NoError(t, err)
	{
		tc := advectionSine()
		tc.QInit = func(x []float64) utils.Matrix { return utils.NewMatrix(2, len(x)) }
		_, err = RunSimulation(tc, nm, quiet())
		assert.True(t, errors.Is(err, ErrInvalidInit))
		tc.QInit = func(x []float64) utils.Matrix { return utils.Matrix{} }
		_, err = RunSimulation(tc, nm, quiet())
		assert.True(t, errors.Is(err, ErrInvalidInit))
	}
	{
		tc := advectionSine()
		tc.Model = flux.NewBurgers()
		tc.QInit = func(x []float64) utils.Matrix {
			Q := sineProfile(x, 0)
			Q.Set(0, len(x)/2, math.NaN())
			return Q
		}
		_, err = RunSimulation(tc, nm, quiet())
		assert.True(t, errors.Is(err, ErrNonFinite))
		var simErr *SimulationError
		require.True(t, errors.As(err, &simErr))
		assert.Equal(t, 1, simErr.Step)
	}
	{
		_, err = RunSimulation(advectionSine(), nm, &Options{MaxSteps: 3})
		assert.True(t, errors.Is(err, ErrMaxSteps))
	}
}
