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
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Gorocy/Finite-Element-Method/InputParameters"
	"github.com/Gorocy/Finite-Element-Method/mesh"
	"github.com/Gorocy/Finite-Element-Method/model_problems/Heat2D"
	"github.com/Gorocy/Finite-Element-Method/readfiles"
	"github.com/Gorocy/Finite-Element-Method/types"
	"github.com/Gorocy/Finite-Element-Method/utils"
)

type ModelHeat2D struct {
	GridFile    string
	ICFile      string
	PlotFile    string
	MeshPlot    string
	Profile     string
	Order       int
	TagExterior bool
	Verbose     bool
}

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Solve a transient heat conduction problem read from a mesh file",
	Long: `Solve a transient heat conduction problem read from a mesh file, parameters in the
mesh file header can be overridden with a YAML file (-I)`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			mh2d = &ModelHeat2D{}
		)
		if mh2d.GridFile, err = cmd.Flags().GetString("gridFile"); err != nil {
			return
		}
		if mh2d.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			return
		}
		mh2d.TagExterior, _ = cmd.Flags().GetBool("tagExterior")
		mh2d.Profile, _ = cmd.Flags().GetString("profile")
		mh2d.Order = viper.GetInt("order")
		mh2d.PlotFile = viper.GetString("plot")
		mh2d.MeshPlot, _ = cmd.Flags().GetString("plotMesh")
		mh2d.Verbose = viper.GetBool("verbose")
		if len(mh2d.GridFile) == 0 {
			return fmt.Errorf("must supply a mesh file (-F, --gridFile)")
		}
		switch mh2d.Profile {
		case "":
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
		default:
			return fmt.Errorf("unknown profile mode %q, use cpu or mem", mh2d.Profile)
		}
		_, err = RunHeat2D(mh2d, os.Stdout)
		return
	},
}

func init() {
	rootCmd.AddCommand(RunCmd)
	RunCmd.Flags().StringP("gridFile", "F", "", "Mesh file with parameters, *Node, *Element and *BC sections")
	RunCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file overriding parameters like:\n\t- SimulationTime\n\t- Conductivity")
	RunCmd.Flags().IntP("order", "n", 0, "Gauss-Legendre integration order 1..5, 0 uses the parameters (default 4)")
	RunCmd.Flags().StringP("plot", "p", "", "write a min/max temperature history plot, .png or .svg")
	RunCmd.Flags().String("plotMesh", "", "write a plot of the mesh with its boundary nodes, .png or .svg")
	RunCmd.Flags().Bool("tagExterior", false, "tag every node on the outer boundary for convection")
	RunCmd.Flags().String("profile", "", "write a cpu or mem profile to the current directory")
	_ = viper.BindPFlag("order", RunCmd.Flags().Lookup("order"))
	_ = viper.BindPFlag("plot", RunCmd.Flags().Lookup("plot"))
}

func processInput(mh2d *ModelHeat2D) (grid *mesh.Grid, hp *InputParameters.HeatParameters, err error) {
	var (
		mi *readfiles.MeshInput
	)
	if mi, err = readfiles.ReadMeshFile(mh2d.GridFile, mh2d.Verbose); err != nil {
		return
	}
	if hp, err = mi.HeatParameters(); err != nil {
		return
	}
	if len(mh2d.ICFile) != 0 {
		var (
			data     []byte
			override = &InputParameters.HeatParameters{}
		)
		if data, err = os.ReadFile(mh2d.ICFile); err != nil {
			return
		}
		if err = override.Parse(data); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", mh2d.ICFile, err)
		}
		hp.Merge(override)
	}
	if grid, err = mi.BuildGrid(hp); err != nil {
		return
	}
	if mh2d.TagExterior {
		var count int
		if count, err = grid.TagExterior(types.BCConvection); err != nil {
			return
		}
		if mh2d.Verbose {
			fmt.Printf("Tagged %d exterior nodes\n", count)
		}
	}
	return
}

// RunHeat2D runs the whole pipeline and writes the report to w
func RunHeat2D(mh2d *ModelHeat2D, w io.Writer) (steps []Heat2D.Step, err error) {
	var (
		grid  *mesh.Grid
		hp    *InputParameters.HeatParameters
		c     *Heat2D.Heat2D
		start = time.Now()
	)
	if grid, hp, err = processInput(mh2d); err != nil {
		return
	}
	if c, err = Heat2D.NewHeat2D(grid, hp, mh2d.Order); err != nil {
		return
	}
	if len(mh2d.MeshPlot) != 0 {
		if err = readfiles.PlotMesh(grid, true, mh2d.MeshPlot); err != nil {
			return
		}
	}
	c.PrintParameters(w)
	if err = c.Initialize(); err != nil {
		return
	}
	c.PrintGrid(w)
	c.PrintGlobals(w)
	if steps, err = c.Solve(func(s Heat2D.Step) { Heat2D.PrintStep(w, s) }); err != nil {
		return
	}
	Heat2D.PrintSteps(w, steps)
	Heat2D.PrintMinMax(w, steps)
	switch {
	case len(mh2d.PlotFile) == 0:
	case len(steps) == 0:
		fmt.Fprintf(w, "No time steps, %s not written\n", mh2d.PlotFile)
	default:
		if err = Heat2D.PlotHistory(steps, mh2d.PlotFile); err != nil {
			return
		}
	}
	if mh2d.Verbose {
		fmt.Printf("Solved %d steps in %v, %s\n", len(steps), time.Since(start), utils.GetMemUsage())
	}
	return
}
