// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// Version is the semantic version of the application
const Version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of strucs",
	Run: func(cmd *cobra.Command, args []string) {
		io.Pf("strucs v%s\n", Version)
		io.Pf("Structural Frame Analysis\n")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
