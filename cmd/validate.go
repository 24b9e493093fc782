// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/p-astudillo/nifes-strucs-sub001/inp"
	"github.com/p-astudillo/nifes-strucs-sub001/vld"
)

var validateCmd = &cobra.Command{
	Use:   "validate <project.prj>",
	Short: "Check a project for analysis-readiness",
	Long: `Check the project's model against its material and section
databases: node and frame counts, boundary conditions, restraint
sufficiency, dangling material/section references and connectivity.

The exit code is nonzero when the model has errors; warnings alone do
not fail the check.`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	prj, err := inp.ReadPrj(args[0])
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
	res := vld.Check(prj.Model, prj.Mats, prj.Secs)
	if res.IsValid() {
		io.Pforan("%s", res.Report())
		return
	}
	io.PfRed("%s", res.Report())
	os.Exit(1)
}
