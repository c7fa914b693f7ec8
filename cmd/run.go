/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/hyperweno/FD1D"
	"github.com/notargets/hyperweno/InputParameters"
	"github.com/notargets/hyperweno/integrators"
	"github.com/notargets/hyperweno/solver"
	"github.com/notargets/hyperweno/utils"
)

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Solve a one dimensional model problem",
	Long: `
Executes the WENO method of lines solver for one of the model problems (see "hyperweno list"),
parameters come from an optional YAML input file and are overridden by flags, environment
variables prefixed with HYPERWENO_ and the config file.

hyperweno run --problem sod --scheme Z7 --stepper td_rk5 --c3 0.8 --mx 400 --output sod.dat`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		if err = viper.BindPFlags(cmd.Flags()); err != nil {
			panic(err)
		}
		m1d := &Model1D{}
		m1d.InputFile, _ = cmd.Flags().GetString("input")
		m1d.Graph, _ = cmd.Flags().GetBool("graph")
		m1d.GraphField, _ = cmd.Flags().GetInt("graphField")
		dr, _ := cmd.Flags().GetInt("delay")
		m1d.Delay = time.Duration(dr) * time.Millisecond
		m1d.Profile, _ = cmd.Flags().GetString("profile")
		ip, err := processInput(m1d)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = Run1D(m1d, ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(RunCmd)
	RunCmd.Flags().StringP("input", "I", "", "YAML file for input parameters, see \"hyperweno list --example\"")
	RunCmd.Flags().StringP("problem", "p", "sod", "model problem to run")
	RunCmd.Flags().StringP("scheme", "w", "", "WENO scheme: CFD5, JS5, Z5, CFD7, JS7, Z7")
	RunCmd.Flags().StringP("stepper", "s", "", "time stepper, see \"hyperweno list\"")
	RunCmd.Flags().Float64("CFL", 0, "CFL - increase for speedup, decrease for stability")
	RunCmd.Flags().IntP("mx", "m", 0, "number of interior cells")
	RunCmd.Flags().Float64("finalTime", 0, "FinalTime - the target end time for the sim")
	RunCmd.Flags().Float64("c3", 0, "third abscissa of the TD_RK5 family")
	RunCmd.Flags().StringP("output", "o", "", "solution file, frames are written as <name>_NNNN.dat")
	RunCmd.Flags().String("bc", "", "replace the problem's boundary conditions: periodic, outflow or wall")
	RunCmd.Flags().IntP("frames", "f", 0, "number of equally spaced output frames after the initial one")
	RunCmd.Flags().IntP("parallel", "n", 1, "number of goroutines evaluating the spatial operator")
	RunCmd.Flags().Int("logFrequency", 50, "steps between progress lines, zero silences the run")
	RunCmd.Flags().String("history", "", "file for the time history of dt and the conserved totals")
	RunCmd.Flags().BoolP("graph", "g", false, "display a graph of each frame while computing solution")
	RunCmd.Flags().IntP("graphField", "q", 0, "which equation should be displayed, 0 is the first")
	RunCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	RunCmd.Flags().String("profile", "", "write a cpu or mem profile to the current directory")
}

type Model1D struct {
	InputFile  string
	Graph      bool
	GraphField int
	Delay      time.Duration
	Profile    string
}

var max_CFL = map[string]float64{
	"fe": 0.4, "rk2_midpoint": 0.8, "rk2_heun": 0.8, "rk3": 1, "rk3_ssp": 1, "rk4": 1.2, "fehlberg5": 1.2,
	"taylor2": 0.5, "td_rk3": 1, "td_rk4": 1.2, "td_rk5": 1.2,
}

// processInput reads the input file when one is given, then overrides each parameter that was set
// on the command line, in the environment or in the config file
func processInput(m1d *Model1D) (ip *InputParameters.InputParameters1D, err error) {
	ip = &InputParameters.InputParameters1D{}
	if len(m1d.InputFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(m1d.InputFile); err != nil {
			return
		}
		if err = ip.Parse(data); err != nil {
			err = fmt.Errorf("parsing %s: %w", m1d.InputFile, err)
			return
		}
	}
	if viper.IsSet("problem") || ip.Problem == "" {
		ip.Problem = viper.GetString("problem")
	}
	if viper.IsSet("scheme") {
		ip.Scheme = viper.GetString("scheme")
	}
	if viper.IsSet("stepper") {
		ip.Stepper = viper.GetString("stepper")
	}
	if viper.IsSet("CFL") {
		ip.CFL = viper.GetFloat64("CFL")
	}
	if viper.IsSet("mx") {
		ip.Mx = viper.GetInt("mx")
	}
	if viper.IsSet("finalTime") {
		ip.FinalTime = viper.GetFloat64("finalTime")
	}
	if viper.IsSet("c3") {
		ip.C3 = viper.GetFloat64("c3")
	}
	if viper.IsSet("output") {
		ip.OutputFile = viper.GetString("output")
	}
	if viper.IsSet("bc") {
		ip.BC = viper.GetString("bc")
	}
	if viper.IsSet("frames") {
		ip.Frames = viper.GetInt("frames")
	}
	if viper.IsSet("parallel") || ip.Parallel == 0 {
		ip.Parallel = viper.GetInt("parallel")
	}
	if viper.IsSet("logFrequency") {
		ip.LogFrequency = viper.GetInt("logFrequency")
	}
	if viper.IsSet("history") {
		ip.HistoryFile = viper.GetString("history")
	}
	return
}

func Run1D(m1d *Model1D, ip *InputParameters.InputParameters1D) (err error) {
	tc, nm, opts, err := ip.Build()
	if err != nil {
		return
	}
	nm.CFL = LimitCFL(nm.Stepper, nm.CFL)
	ip.CFL = nm.CFL
	ip.Print()
	if m1d.Graph {
		opts.OnFrame = func(frame int, t float64, g *FD1D.Grid1D) {
			fmt.Println(PlotField(g, m1d.GraphField, fmt.Sprintf("%s frame %d, t = %.4f", tc.Name, frame, t)))
			time.Sleep(m1d.Delay)
		}
	}
	switch strings.ToLower(m1d.Profile) {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		return fmt.Errorf("unknown profile type %q, use cpu or mem", m1d.Profile)
	}
	res, err := solver.RunSimulation(tc, nm, opts)
	if err != nil {
		return
	}
	if m1d.Graph && len(res.Frames) == 0 && len(opts.Tout) == 0 {
		fmt.Println(PlotField(res.Grid, m1d.GraphField, fmt.Sprintf("%s, t = %.4f", tc.Name, res.T)))
	}
	for _, fileName := range res.Frames {
		fmt.Printf("wrote %s\n", fileName)
	}
	fmt.Printf("%d steps to t = %.4f in %v, %s\n", res.Steps, res.T, res.Wall, utils.GetMemUsage())
	if res.Norms != nil {
		for n := range res.Norms.L2 {
			fmt.Printf("q%d: L1 = %.6e, L2 = %.6e, Linf = %.6e\n", n, res.Norms.L1[n], res.Norms.L2[n], res.Norms.Linf[n])
		}
	}
	return
}

func LimitCFL(s *integrators.Stepper, CFL float64) (CFLNew float64) {
	CFLMax, ok := max_CFL[strings.ToLower(s.Name)]
	if ok && CFL > CFLMax {
		fmt.Printf("Input CFL is higher than max CFL for this method\nReplacing with Max CFL: %8.2f\n", CFLMax)
		return CFLMax
	}
	return CFL
}

// PlotField renders one equation of the interior solution as an ascii chart
func PlotField(g *FD1D.Grid1D, field int, caption string) string {
	if field < 0 || field >= g.Meq {
		field = 0
	}
	return asciigraph.Plot(g.InteriorRow(field),
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("q%d: %s", field, caption)),
	)
}
