package solver

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"time"

	"github.com/notargets/hyperweno/FD1D"
	"github.com/notargets/hyperweno/MOL"
	"github.com/notargets/hyperweno/utils"
)

const landingTol = 1.e-9

type Options struct {
	// Progress line every LogFrequency steps, zero or negative silences the run
	LogFrequency int
	Log          io.Writer
	Parallel     int
	// Output instants, the time step is shortened to land on each one
	Tout []float64
	// Frames go to <OutputBase>_NNNN.dat when set
	OutputBase string
	// Time history of t, ts, dt and mass per equation
	HistoryFile string
	MaxSteps    int
	OnFrame     func(frame int, t float64, g *FD1D.Grid1D)
}

func DefaultOptions() *Options {
	return &Options{
		LogFrequency: 50,
		Log:          os.Stdout,
		Parallel:     1,
	}
}

type Result struct {
	Grid   *FD1D.Grid1D
	T      float64
	Steps  int
	Frames []string
	Wall   time.Duration
	// Nil when the test case has no exact solution
	Norms *Norms
}

// RunSimulation integrates tc from t = 0 to tc.TEnd with the discretization nm
func RunSimulation(tc *TestCase, nm *Numerics, opts *Options) (res *Result, err error) {
	if err = tc.Verify(); err != nil {
		return
	}
	if err = nm.Verify(); err != nil {
		return
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	logw := opts.Log
	if logw == nil || opts.LogFrequency <= 0 {
		logw = io.Discard
	}
	var (
		start = time.Now()
		mbc   = nm.Weno.Mbc()
		grid  = FD1D.NewGrid1D(tc.XLims, nm.Mx, mbc, tc.Model.Meq())
		Q0    = tc.QInit(grid.X)
		clock = NewTimeManager(0)
		tout  = pendingOutputs(opts.Tout, tc.TEnd)
		frame int
		hist  *TextDB
	)
	if Q0.IsEmpty() {
		err = fmt.Errorf("%w: %s initial condition is empty", ErrInvalidInit, tc.Name)
		return
	}
	if nr, nc := Q0.Dims(); nr != grid.Meq || nc != grid.Ncells() {
		err = fmt.Errorf("%w: %s initial condition is %dx%d, grid needs %dx%d",
			ErrInvalidInit, tc.Name, nr, nc, grid.Meq, grid.Ncells())
		return
	}
	grid.SetQ(Q0)
	mol := MOL.NewMOL(grid, tc.Model, nm.Weno, tc.BCs(nm.Mx, mbc))
	if opts.Parallel > 1 {
		mol.SetParallel(opts.Parallel)
	}
	res = &Result{Grid: grid}
	if opts.HistoryFile != "" {
		if hist, err = newHistory(opts.HistoryFile, grid.Meq); err != nil {
			return
		}
		defer func() {
			if cerr := hist.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
	}
	emitFrame := func() error {
		if opts.OnFrame != nil {
			opts.OnFrame(frame, clock.T(), grid)
		}
		if opts.OutputBase != "" {
			fileName := fmt.Sprintf("%s_%04d.dat", opts.OutputBase, frame)
			if err := WriteSolutionFile(fileName, clock.T(), grid); err != nil {
				return err
			}
			res.Frames = append(res.Frames, fileName)
		}
		frame++
		return nil
	}
	for len(tout) != 0 && tout[0] <= 0 {
		if err = emitFrame(); err != nil {
			return
		}
		tout = tout[1:]
	}
	stop := false
	for clock.T() < tc.TEnd && !stop {
		if opts.MaxSteps > 0 && clock.TS() >= opts.MaxSteps {
			err = &SimulationError{tc.Name, clock.TS(), clock.T(), ErrMaxSteps}
			return
		}
		var (
			vmax = tc.Model.MaxWaveSpeed(grid.Q)
			dt   = math.Inf(1)
			hit  = false
		)
		if vmax > 0 {
			dt = grid.Dx / vmax * nm.CFL
		}
		// Land exactly on output instants and the final time, round off in the running sum of dt
		// must not leave a sliver of a step
		if len(tout) != 0 && tout[0]-clock.T() <= dt*(1+landingTol) {
			dt = tout[0] - clock.T()
			hit = true
		}
		if tc.TEnd-clock.T() <= dt*(1+landingTol) {
			dt = tc.TEnd - clock.T()
			stop = true
		}
		if clock.TS()%opts.logEvery() == 0 {
			fmt.Fprintf(logw, "ts = %3d;  t = %.3f;  dt = %.3e\n", clock.TS(), clock.T(), dt)
		}
		grid.SetQ(nm.Stepper.Advance(mol, grid.Q, clock.T(), dt))
		clock.Advance(dt)
		if utils.IsNan(grid.Q) {
			err = &SimulationError{tc.Name, clock.TS(), clock.T(), ErrNonFinite}
			return
		}
		if hist != nil {
			if err = hist.Write(append([]float64{clock.T(), float64(clock.TS()), dt}, grid.Mass()...)...); err != nil {
				return
			}
		}
		if hit || (len(tout) != 0 && clock.T() >= tout[0]) {
			if err = emitFrame(); err != nil {
				return
			}
			tout = tout[1:]
			for len(tout) != 0 && tout[0] <= clock.T() {
				tout = tout[1:]
			}
		}
	}
	fmt.Fprintf(logw, "ts = %3d;  t = %.3f;  dt = --\n", clock.TS(), clock.T())
	res.T = clock.T()
	res.Steps = clock.TS()
	res.Wall = time.Since(start)
	if tc.HasExact() {
		var norms Norms
		if norms, err = ErrorNorms(grid, tc.QExact(grid.X, res.T)); err != nil {
			return
		}
		res.Norms = &norms
	}
	fmt.Fprintf(logw, "%s: %d steps in %v", tc.Name, res.Steps, res.Wall)
	if res.Norms != nil {
		fmt.Fprintf(logw, ", L2 error = %.6e", res.Norms.L2[0])
	}
	fmt.Fprintln(logw)
	return
}

func (o *Options) logEvery() int {
	if o.LogFrequency <= 0 {
		return 1
	}
	return o.LogFrequency
}

// pendingOutputs sorts the requested instants and drops the ones past the end of the run
func pendingOutputs(tout []float64, tend float64) (pending []float64) {
	for _, t := range tout {
		if t <= tend {
			pending = append(pending, t)
		}
	}
	sort.Float64s(pending)
	return
}

func newHistory(fileName string, meq int) (db *TextDB, err error) {
	db = NewTextDB(fileName)
	db.SetField("t", "%+.15e", "simulation time")
	db.SetField("ts", "%6.0f", "time step number")
	db.SetField("dt", "%.6e", "time step size")
	for n := 0; n < meq; n++ {
		db.SetField(fmt.Sprintf("mass%d", n), "%+.15e", fmt.Sprintf("integral of q%d over the interior", n))
	}
	err = db.Open()
	return
}
