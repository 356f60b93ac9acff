/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

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
	"io/ioutil"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/badmax333/LaserProcessing/InputParameters"
	"github.com/badmax333/LaserProcessing/model_problems/Contact1D"
)

type ModelContact struct {
	ICFile     string
	OutputDir  string
	Benchmark  bool
	CPUProfile bool
	Graph      bool
	Delay      time.Duration
}

// ContactCmd represents the contact command
var ContactCmd = &cobra.Command{
	Use:   "contact",
	Short: "GFMD contact of a rigid punch on a periodic elastic substrate",
	Long: `
Computes the static elastic response of a flat periodic 2D elastic half-space
indented by a rigid frictionless punch, using the Green's function molecular
dynamics method per Fourier mode. Writes a textual report and per-point
displacement and force files.

Note: the virtual-time tuning is an open-loop heuristic; a diverging result
usually means the time increment prefactor is not small enough.

laserproc contact`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		mc := &ModelContact{}
		if mc.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		mc.OutputDir, _ = cmd.Flags().GetString("outputDir")
		mc.Benchmark, _ = cmd.Flags().GetBool("benchmark")
		mc.CPUProfile, _ = cmd.Flags().GetBool("cpuprofile")
		mc.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		mc.Delay = time.Duration(dr) * time.Millisecond
		ip := processContactInput(cmd, mc)
		RunContact(mc, ip)
	},
}

func processContactInput(cmd *cobra.Command, mc *ModelContact) (ip *InputParameters.InputParametersGFMD) {
	var (
		err error
	)
	ip = InputParameters.NewDefaultParameters()
	if len(mc.ICFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(mc.ICFile); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = ip.Parse(data); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	}
	// Flags override the case file only when given on the command line.
	if cmd.Flags().Changed("n") {
		ip.XPoints, _ = cmd.Flags().GetInt("n")
	}
	if cmd.Flags().Changed("geometry") {
		ip.Geometry, _ = cmd.Flags().GetString("geometry")
	}
	if cmd.Flags().Changed("boundary") {
		ip.BoundaryCondition, _ = cmd.Flags().GetString("boundary")
	}
	if cmd.Flags().Changed("dtPrefactor") {
		ip.TimeIncrementPrefactor, _ = cmd.Flags().GetFloat64("dtPrefactor")
	}
	if cmd.Flags().Changed("stepsPrefactor") {
		ip.StepsPrefactor, _ = cmd.Flags().GetInt("stepsPrefactor")
	}
	if cmd.Flags().Changed("dampingPrefactor") {
		ip.DampingPrefactor, _ = cmd.Flags().GetFloat64("dampingPrefactor")
	}
	if cmd.Flags().Changed("maxResidual") {
		ip.MaxResidual, _ = cmd.Flags().GetFloat64("maxResidual")
	}
	ip.Print()
	return
}

func init() {
	rootCmd.AddCommand(ContactCmd)
	ContactCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file with the case parameters (moduli, pressure, geometry, tuning)")
	ContactCmd.Flags().StringP("outputDir", "o", "output", "directory for the report and per-point output files")
	ContactCmd.Flags().IntP("n", "n", 128, "number of spatial discretization points, should be a power of 2")
	ContactCmd.Flags().StringP("geometry", "g", "cylinder", "punch geometry: cylinder or wave")
	ContactCmd.Flags().StringP("boundary", "b", "free", "out-of-plane boundary condition: free (plane stress) or fixed (plane strain)")
	ContactCmd.Flags().Float64("dtPrefactor", 0.001, "virtual time increment prefactor - decrease for stability")
	ContactCmd.Flags().Int("stepsPrefactor", 4, "relaxation step count prefactor - increase for accuracy")
	ContactCmd.Flags().Float64("dampingPrefactor", 1, "per-mode damping prefactor")
	ContactCmd.Flags().Float64("maxResidual", 0, "stop early when the spectral residual drops below this value, 0 keeps the fixed step budget")
	ContactCmd.Flags().Bool("benchmark", false, "run 100 steps, print an estimated total computation time and exit without output files")
	ContactCmd.Flags().Bool("cpuprofile", false, "capture a CPU profile of the run")
	ContactCmd.Flags().Bool("graph", false, "display the punch and displacement fields while computing the solution")
	ContactCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
}

func RunContact(mc *ModelContact, ip *InputParameters.InputParametersGFMD) {
	if mc.CPUProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	c, err := Contact1D.NewContact(ip)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if mc.Benchmark {
		c.BenchmarkSteps = 100
	}
	c.Run(mc.Graph, mc.Delay)
	if mc.Benchmark {
		return
	}
	res := c.Finalize()
	c.PrintReport(res)
	if err = c.WriteResults(res, mc.OutputDir); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
}
