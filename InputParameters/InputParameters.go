package InputParameters

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/hyperweno/FD1D"
	"github.com/notargets/hyperweno/flux"
	"github.com/notargets/hyperweno/integrators"
	"github.com/notargets/hyperweno/model_problems"
	"github.com/notargets/hyperweno/solver"
	"github.com/notargets/hyperweno/utils"
)

// Parameters obtained from the YAML input file, zero values take the problem defaults
type InputParameters1D struct {
	Title        string  `json:"Title,omitempty"`
	Problem      string  `json:"Problem"`
	Scheme       string  `json:"Scheme,omitempty"`
	Stepper      string  `json:"Stepper,omitempty"`
	CFL          float64 `json:"CFL,omitempty"`
	Mx           int     `json:"Mx,omitempty"`
	FinalTime    float64 `json:"FinalTime,omitempty"`
	C3           float64 `json:"C3,omitempty"` // TD_RK5 abscissa
	OutputFile   string  `json:"OutputFile,omitempty"`
	Frames       int     `json:"Frames,omitempty"`
	BC           string  `json:"BC,omitempty"` // Periodic, Outflow or SolidWall, replaces the problem's
	Parallel     int     `json:"Parallel,omitempty"`
	LogFrequency int     `json:"LogFrequency,omitempty"`
	HistoryFile  string  `json:"HistoryFile,omitempty"`
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) Marshal() ([]byte, error) {
	return yaml.Marshal(ip)
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Problem\n", ip.Problem)
	fmt.Printf("[%s]\t\t\t= Scheme\n", ip.Scheme)
	fmt.Printf("[%s]\t\t\t= Stepper\n", ip.Stepper)
	if ip.C3 != 0 {
		fmt.Printf("%8.5f\t\t= C3\n", ip.C3)
	}
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("[%d]\t\t\t= Mx\n", ip.Mx)
	fmt.Printf("[%d]\t\t\t= Frames\n", ip.Frames)
	if ip.BC != "" {
		fmt.Printf("[%s]\t\t= BC\n", ip.BC)
	}
	if ip.OutputFile != "" {
		fmt.Printf("[%s]\t= OutputFile\n", ip.OutputFile)
	}
}

// Apply fills every unset parameter from the defaults of the named problem
func (ip *InputParameters1D) Apply(p *model_problems.Problem) {
	d := p.Defaults
	if ip.Title == "" {
		ip.Title = p.Description
	}
	if ip.Scheme == "" {
		ip.Scheme = d.Scheme
	}
	if ip.Stepper == "" {
		ip.Stepper = d.Stepper
	}
	if ip.CFL == 0 {
		ip.CFL = d.CFL
	}
	if ip.Mx == 0 {
		ip.Mx = d.Mx
	}
	if ip.Frames == 0 {
		ip.Frames = d.Frames
	}
	if ip.FinalTime == 0 {
		ip.FinalTime = p.TestCase().TEnd
	}
	if ip.LogFrequency == 0 {
		ip.LogFrequency = 50
	}
}

// Build resolves the problem and numerics, applying defaults for every unset parameter
func (ip *InputParameters1D) Build() (tc *solver.TestCase, nm *solver.Numerics, opts *solver.Options, err error) {
	var (
		p *model_problems.Problem
	)
	if p, err = model_problems.Lookup(ip.Problem); err != nil {
		return
	}
	ip.Apply(p)
	tc = p.TestCase()
	tc.TEnd = ip.FinalTime
	if ip.BC != "" {
		if tc.BCs, err = boundaryConditions(ip.BC, tc.Model); err != nil {
			return
		}
	}
	if nm, err = solver.NewNumerics(ip.Scheme, ip.Stepper, ip.CFL, ip.Mx); err != nil {
		return
	}
	if ip.C3 != 0 {
		if !strings.EqualFold(nm.Stepper.Name, "TD_RK5") {
			err = fmt.Errorf("%w: C3 only applies to TD_RK5, not %s", integrators.ErrInvalidParameter, nm.Stepper.Name)
			return
		}
		if nm.Stepper, err = integrators.NewTDRK5(ip.C3); err != nil {
			return
		}
	}
	opts = solver.DefaultOptions()
	opts.LogFrequency = ip.LogFrequency
	opts.Parallel = ip.Parallel
	opts.HistoryFile = ip.HistoryFile
	if ip.OutputFile != "" {
		opts.OutputBase = strings.TrimSuffix(ip.OutputFile, filepath.Ext(ip.OutputFile))
	}
	if ip.Frames > 0 {
		opts.Tout = utils.Linspace(0, tc.TEnd, ip.Frames+1)
	}
	return
}

func boundaryConditions(name string, fm flux.Flux1D) (bcs FD1D.BCFactory, err error) {
	var bt FD1D.BCType
	if bt, err = FD1D.NewBCType(name); err != nil {
		return
	}
	switch bt {
	case FD1D.BCPeriodic:
		bcs = FD1D.NewPeriodicBCs()
	case FD1D.BCOutflow:
		bcs = FD1D.NewOutflowBCs()
	case FD1D.BCSolidWall:
		e, ok := fm.(*flux.Euler)
		if !ok {
			err = fmt.Errorf("solid walls need the Euler equations, not %s", fm.Name())
			return
		}
		bcs = FD1D.NewSideBCs(e.SolidWallLeft, e.SolidWallRight)
	}
	return
}
