// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/p-astudillo/nifes-strucs-sub001/sec"
)

var (
	secShape string
	secB     float64
	secH     float64
	secD     float64
	secT     float64
	secBf    float64
	secTf    float64
	secTw    float64
	secL1    float64
	secL2    float64
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Compute the properties of a parametric section",
	Long: `Compute area, second moments, section moduli, radii of gyration
and the torsional constant of a parametric cross-section. Dimensions
are in meters, properties come out in meters.

Shapes and their dimensions:
  rectangle  --b --h
  box        --b --h --t
  circle     --d
  pipe       --d --t
  I-beam     --d --bf --tf --tw
  channel    --d --bf --tf --tw
  angle      --l1 --l2 --t
  T-beam     --d --bf --tf --tw

Examples:
  strucs section --shape rectangle --b 0.3 --h 0.5
  strucs section --shape pipe --d 0.2 --t 0.01`,
	Run: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
	sectionCmd.Flags().StringVar(&secShape, "shape", "", "Shape kind [required]")
	sectionCmd.Flags().Float64Var(&secB, "b", 0, "Width (rectangle, box)")
	sectionCmd.Flags().Float64Var(&secH, "h", 0, "Height (rectangle, box)")
	sectionCmd.Flags().Float64Var(&secD, "d", 0, "Diameter or total depth")
	sectionCmd.Flags().Float64Var(&secT, "t", 0, "Thickness (box, pipe, angle)")
	sectionCmd.Flags().Float64Var(&secBf, "bf", 0, "Flange width")
	sectionCmd.Flags().Float64Var(&secTf, "tf", 0, "Flange thickness")
	sectionCmd.Flags().Float64Var(&secTw, "tw", 0, "Web thickness")
	sectionCmd.Flags().Float64Var(&secL1, "l1", 0, "Vertical leg (angle)")
	sectionCmd.Flags().Float64Var(&secL2, "l2", 0, "Horizontal leg (angle)")
	sectionCmd.MarkFlagRequired("shape")
}

// shapeFromFlags assembles the shape variant selected by the flags
func shapeFromFlags() (sec.Shape, error) {
	switch secShape {
	case sec.KindRectangle:
		return sec.Rect{B: secB, H: secH}, nil
	case sec.KindBox:
		return sec.Box{B: secB, H: secH, T: secT}, nil
	case sec.KindCircle:
		return sec.Circle{D: secD}, nil
	case sec.KindPipe:
		return sec.Pipe{D: secD, T: secT}, nil
	case sec.KindIBeam:
		return sec.IBeam{D: secD, Bf: secBf, Tf: secTf, Tw: secTw}, nil
	case sec.KindChannel:
		return sec.Channel{D: secD, Bf: secBf, Tf: secTf, Tw: secTw}, nil
	case sec.KindAngle:
		return sec.Angle{L1: secL1, L2: secL2, T: secT}, nil
	case sec.KindTBeam:
		return sec.TBeam{D: secD, Bf: secBf, Tf: secTf, Tw: secTw}, nil
	}
	return nil, chk.Err("unknown shape %q", secShape)
}

func runSection(cmd *cobra.Command, args []string) {
	shape, err := shapeFromFlags()
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
	s, err := sec.FromShape(secShape, shape)
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
	io.Pf("%s\n", s.GetInfoString())
	io.Pf("%10s = %g m²\n", "A", s.A)
	io.Pf("%10s = %g m⁴\n", "Ix", s.Ix)
	io.Pf("%10s = %g m⁴\n", "Iy", s.Iy)
	io.Pf("%10s = %g m³\n", "Sx", s.Sx)
	io.Pf("%10s = %g m³\n", "Sy", s.Sy)
	io.Pf("%10s = %g m³\n", "Zx", s.Zx)
	io.Pf("%10s = %g m³\n", "Zy", s.Zy)
	io.Pf("%10s = %g m\n", "rx", s.Rx)
	io.Pf("%10s = %g m\n", "ry", s.Ry)
	io.Pf("%10s = %g m⁴\n", "J", s.J)
}
