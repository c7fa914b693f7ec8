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
	"io"
	"math"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/notargets/hyperweno/model_problems"
	"github.com/notargets/hyperweno/solver"
)

// RefineCmd represents the refine command
var RefineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Grid refinement study against an exact solution",
	Long: `
Runs a model problem with an exact solution at a sequence of resolutions and reports the
error norms of the first equation with the observed order of accuracy.

hyperweno refine --problem advection_sine --scheme JS7 --stepper rk4 --csvFile js7.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		rs := &RefineStudy{}
		rs.Problem, _ = cmd.Flags().GetString("problem")
		rs.Scheme, _ = cmd.Flags().GetString("scheme")
		rs.Stepper, _ = cmd.Flags().GetString("stepper")
		rs.CFL, _ = cmd.Flags().GetFloat64("CFL")
		rs.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
		rs.MxMin, _ = cmd.Flags().GetInt("mxMin")
		rs.MxMax, _ = cmd.Flags().GetInt("mxMax")
		rs.Levels, _ = cmd.Flags().GetInt("levels")
		rs.CSVFile, _ = cmd.Flags().GetString("csvFile")
		rs.Latex, _ = cmd.Flags().GetBool("latex")
		rs.Graph, _ = cmd.Flags().GetBool("graph")
		if err := rs.Run(os.Stdout); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(RefineCmd)
	RefineCmd.Flags().StringP("problem", "p", "advection_sine", "model problem with an exact solution")
	RefineCmd.Flags().StringP("scheme", "w", "", "WENO scheme, defaults to the problem's")
	RefineCmd.Flags().StringP("stepper", "s", "", "time stepper, defaults to the problem's")
	RefineCmd.Flags().Float64("CFL", 0, "CFL, defaults to the problem's")
	RefineCmd.Flags().Float64("finalTime", 0, "FinalTime, defaults to the problem's")
	RefineCmd.Flags().Int("mxMin", 20, "coarsest grid")
	RefineCmd.Flags().Int("mxMax", 320, "finest grid")
	RefineCmd.Flags().IntP("levels", "l", 5, "number of grids, spaced logarithmically")
	RefineCmd.Flags().String("csvFile", "", "write the study to a CSV file")
	RefineCmd.Flags().Bool("latex", false, "print the errors as LaTeX table rows")
	RefineCmd.Flags().BoolP("graph", "g", false, "plot log10 of the L2 error against the level")
}

type RefineStudy struct {
	Problem, Scheme, Stepper string
	CFL, FinalTime           float64
	MxMin, MxMax, Levels     int
	CSVFile                  string
	Latex, Graph             bool
}

func (rs *RefineStudy) Run(w io.Writer) (err error) {
	var (
		p    *model_problems.Problem
		rows []solver.ConvergenceRow
	)
	if p, err = model_problems.Lookup(rs.Problem); err != nil {
		return
	}
	tc := p.TestCase()
	if rs.FinalTime > 0 {
		tc.TEnd = rs.FinalTime
	}
	if rs.Scheme == "" {
		rs.Scheme = p.Defaults.Scheme
	}
	if rs.Stepper == "" {
		rs.Stepper = p.Defaults.Stepper
	}
	if rs.CFL == 0 {
		rs.CFL = p.Defaults.CFL
	}
	fmt.Fprintf(w, "%s: %s, %s, CFL = %.2f, t = %g\n", tc.Name, rs.Scheme, rs.Stepper, rs.CFL, tc.TEnd)
	mxs := solver.RefinementLevels(rs.MxMin, rs.MxMax, rs.Levels)
	if rows, err = solver.Refine(tc, rs.Scheme, rs.Stepper, rs.CFL, mxs, &solver.Options{}); err != nil {
		return
	}
	for _, r := range rows {
		if rs.Latex {
			fmt.Fprintf(w, "%d & $%s$ & $%s$ & $%s$ & %s \\\\\n", r.Mx,
				solver.LatexFloat(r.L1, 3), solver.LatexFloat(r.L2, 3), solver.LatexFloat(r.Linf, 3), orderText(r.Order))
			continue
		}
		fmt.Fprintf(w, "%6d  %.6e  %.6e  %.6e  %s\n", r.Mx, r.L1, r.L2, r.Linf, orderText(r.Order))
	}
	if rs.CSVFile != "" {
		var f *os.File
		if f, err = os.Create(rs.CSVFile); err != nil {
			return
		}
		defer f.Close()
		if err = solver.WriteConvergenceCSV(f, rows); err != nil {
			return
		}
	}
	if rs.Graph && len(rows) > 1 {
		logL2 := make([]float64, len(rows))
		for i, r := range rows {
			logL2[i] = math.Log10(r.L2)
		}
		fmt.Fprintln(w, asciigraph.Plot(logL2,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("log10 L2 error by level"),
		))
	}
	return
}

func orderText(order float64) string {
	if math.IsNaN(order) {
		return "--"
	}
	return fmt.Sprintf("%.2f", order)
}
