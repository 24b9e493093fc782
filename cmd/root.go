// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the strucs command line interface
package cmd

import (
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "strucs",
	Short: "3D frame analysis tool",
	Long: `strucs - Structural Frame Analysis

A CLI tool for linear static analysis of 3D frame structures.

It reads a project file (.prj) holding the model, the loads and the
analysis options, referencing material (.mat) and section (.sec)
databases, and solves every load case with a direct-stiffness engine.

Commands:
  analyze   - solve the load cases and combinations of a project
  validate  - check a project for analysis-readiness
  section   - compute the properties of a parametric section
  version   - print the version number`,
	Run: func(cmd *cobra.Command, args []string) {
		io.PfWhite("\nStrucs Version %s -- Structural Frame Analysis\n", Version)
		io.Pf("Copyright 2025 The Strucs Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
		io.Pf("Use 'strucs --help' to see available commands.\n")
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
