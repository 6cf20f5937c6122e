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

	"github.com/Gorocy/Finite-Element-Method/InputParameters"
	"github.com/Gorocy/Finite-Element-Method/mesh"
	"github.com/Gorocy/Finite-Element-Method/readfiles"
	"github.com/Gorocy/Finite-Element-Method/types"
)

type GridSpec struct {
	Width, Height float64
	NW, NH        int
	Params        InputParameters.HeatParameters
}

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a structured rectangular mesh file with its outer boundary tagged",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			gs  = &GridSpec{}
			out string
			w   = io.Writer(os.Stdout)
		)
		flags := cmd.Flags()
		gs.Width, _ = flags.GetFloat64("width")
		gs.Height, _ = flags.GetFloat64("height")
		gs.NW, _ = flags.GetInt("nW")
		gs.NH, _ = flags.GetInt("nH")
		gs.Params.SimulationTime, _ = flags.GetFloat64("simulationTime")
		gs.Params.SimulationStepTime, _ = flags.GetFloat64("stepTime")
		gs.Params.Conductivity, _ = flags.GetFloat64("conductivity")
		gs.Params.Alfa, _ = flags.GetFloat64("alfa")
		gs.Params.Tot, _ = flags.GetFloat64("tot")
		gs.Params.InitialTemp, _ = flags.GetFloat64("initialTemp")
		gs.Params.Density, _ = flags.GetFloat64("density")
		gs.Params.SpecificHeat, _ = flags.GetFloat64("specificHeat")
		out, _ = flags.GetString("output")
		if len(out) != 0 {
			var file *os.File
			if file, err = os.Create(out); err != nil {
				return
			}
			defer file.Close()
			w = file
		}
		return GenerateGrid(gs, w)
	},
}

func init() {
	rootCmd.AddCommand(GenerateCmd)
	GenerateCmd.Flags().Float64("width", 0.1, "domain width")
	GenerateCmd.Flags().Float64("height", 0.1, "domain height")
	GenerateCmd.Flags().Int("nW", 4, "number of nodes along the width")
	GenerateCmd.Flags().Int("nH", 4, "number of nodes along the height")
	GenerateCmd.Flags().Float64("simulationTime", 500, "total simulation time")
	GenerateCmd.Flags().Float64("stepTime", 50, "time step")
	GenerateCmd.Flags().Float64("conductivity", 25, "thermal conductivity")
	GenerateCmd.Flags().Float64("alfa", 300, "convective heat transfer coefficient")
	GenerateCmd.Flags().Float64("tot", 1200, "ambient temperature")
	GenerateCmd.Flags().Float64("initialTemp", 100, "initial temperature")
	GenerateCmd.Flags().Float64("density", 7800, "density")
	GenerateCmd.Flags().Float64("specificHeat", 700, "specific heat")
	GenerateCmd.Flags().StringP("output", "o", "", "output file, stdout when empty")
}

func GenerateGrid(gs *GridSpec, w io.Writer) (err error) {
	var (
		g *mesh.Grid
	)
	if g, err = mesh.NewRectangularGrid(gs.Width, gs.Height, gs.NW, gs.NH); err != nil {
		return
	}
	if _, err = g.TagExterior(types.BCConvection); err != nil {
		return
	}
	if err = readfiles.WriteMesh(w, g, &gs.Params); err != nil {
		return fmt.Errorf("unable to write mesh: %w", err)
	}
	return
}
