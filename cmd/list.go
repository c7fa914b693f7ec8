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
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/hyperweno/InputParameters"
	"github.com/notargets/hyperweno/WENO"
	"github.com/notargets/hyperweno/integrators"
	"github.com/notargets/hyperweno/model_problems"
)

// ListCmd represents the list command
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the model problems, WENO schemes and time steppers",
	Long: `
Lists the model problems with their default numerics, the WENO schemes and the time steppers.
With --example an input file for the chosen problem is printed, ready for "hyperweno run -I".

hyperweno list --example --problem dam_break > dam.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		example, _ := cmd.Flags().GetBool("example")
		if example {
			name, _ := cmd.Flags().GetString("problem")
			if err := ExampleInput(os.Stdout, name); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
			return
		}
		if err := List(os.Stdout); err != nil {
			panic(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(ListCmd)
	ListCmd.Flags().BoolP("example", "e", false, "print an example input file instead of the lists")
	ListCmd.Flags().StringP("problem", "p", "sod", "problem used for the example input file")
}

func List(w io.Writer) (err error) {
	fmt.Fprintln(w, "Problems:")
	for _, name := range model_problems.Names() {
		p, _ := model_problems.Lookup(name)
		d := p.Defaults
		fmt.Fprintf(w, "  %-18s %s\n", name, p.Description)
		fmt.Fprintf(w, "  %-18s [%s, %s, CFL = %.2f, Mx = %d, Frames = %d]\n", "", d.Scheme, d.Stepper, d.CFL, d.Mx, d.Frames)
	}
	fmt.Fprintf(w, "Schemes:\n  %v\n", WENO.Names())
	fmt.Fprintln(w, "Steppers:")
	for _, name := range integrators.Names() {
		var s *integrators.Stepper
		if s, err = integrators.NewStepper(name); err != nil {
			return
		}
		fmt.Fprintf(w, "  %-14s %s\n", name, s)
	}
	return
}

// ExampleInput writes the input file of a problem with every default filled in
func ExampleInput(w io.Writer, problem string) (err error) {
	var (
		p    *model_problems.Problem
		data []byte
	)
	if p, err = model_problems.Lookup(problem); err != nil {
		return
	}
	ip := &InputParameters.InputParameters1D{Problem: p.Name}
	ip.Apply(p)
	ip.OutputFile = p.Name + ".dat"
	if data, err = ip.Marshal(); err != nil {
		return
	}
	fmt.Fprintf(w, "########################################\n%s########################################\n", data)
	return
}
