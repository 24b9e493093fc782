// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/p-astudillo/nifes-strucs-sub001/ana"
	"github.com/p-astudillo/nifes-strucs-sub001/inp"
	"github.com/p-astudillo/nifes-strucs-sub001/lfe"
	"github.com/p-astudillo/nifes-strucs-sub001/out"
)

var (
	analyzeCases   []string
	analyzeSolver  string
	analyzeDiagram string
	analyzeTable   bool
	analyzeHeight  int
	analyzeQuiet   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <project.prj>",
	Short: "Solve the load cases and combinations of a project",
	Long: `Run a linear static analysis of the project: every selected load
case is solved with the direct-stiffness engine, then the declared
combinations are evaluated from the per-case results.

Examples:
  # Solve every case and combination of the project
  strucs analyze building.prj

  # Solve selected cases only, with moment diagrams
  strucs analyze building.prj --case Dead --case Live --diagram M3`,
	Args: cobra.ExactArgs(1),
	Run:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringArrayVar(&analyzeCases, "case", nil, "Load case to solve (repeatable); default: project selection")
	analyzeCmd.Flags().StringVar(&analyzeSolver, "solver", "", "Linear solver name; default: project option or umfpack")
	analyzeCmd.Flags().StringVar(&analyzeDiagram, "diagram", "", "Force component to plot per member: P, V2, V3, T, M2 or M3")
	analyzeCmd.Flags().BoolVar(&analyzeTable, "table", false, "Print the member force tables")
	analyzeCmd.Flags().IntVar(&analyzeHeight, "height", 10, "Diagram height in rows")
	analyzeCmd.Flags().BoolVarP(&analyzeQuiet, "quiet", "q", false, "Suppress progress messages")
}

func runAnalyze(cmd *cobra.Command, args []string) {

	prj, err := inp.ReadPrj(args[0])
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
	io.Pf("project %q: %d nodes, %d frames\n", prj.Name, prj.Model.NodeCount(), prj.Model.FrameCount())

	// engine and runner
	eng := lfe.New()
	eng.SolverName = prj.Options.Solver
	if analyzeSolver != "" {
		eng.SolverName = analyzeSolver
	}
	runner := ana.NewRunner(eng, prj.Model, prj.Mats, prj.Secs, prj.Loads)
	if !analyzeQuiet {
		runner.Progress = func(step, total int, msg string) {
			io.Pfgrey("  [%d/%d] %s\n", step, total, msg)
		}
	}

	// cases
	caseNames := analyzeCases
	if len(caseNames) == 0 {
		if caseNames, err = prj.CaseNames(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}
	progress := func(i, total int, msg string) {
		io.Pf("(%d/%d) %s\n", i, total, msg)
	}
	if analyzeQuiet {
		progress = nil
	}
	all := runner.AnalyzeAll(caseNames, progress)

	// per-case report
	failures := 0
	byName := make(map[string]*out.Results)
	for _, res := range all {
		byName[res.Case] = res
		if res.Success {
			io.Pforan("%s", res.Summary())
			printFrames(res)
		} else {
			io.PfRed("%s", res.Summary())
			failures++
		}
	}

	// combinations
	combos, err := prj.ComboSelection()
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
	for _, cb := range combos {
		res := runner.AnalyzeCombo(cb, byName)
		if res.Success {
			io.Pforan("%s", res.Summary())
			printFrames(res)
		} else {
			io.PfRed("%s", res.Summary())
			failures++
		}
	}

	if failures > 0 {
		io.PfRed("%d analysis run(s) failed\n", failures)
		os.Exit(1)
	}
}

// printFrames prints the optional force tables and diagrams of one
// result
func printFrames(res *out.Results) {
	if !analyzeTable && analyzeDiagram == "" {
		return
	}
	for _, id := range res.FrameIds() {
		fr := res.Frame(id)
		if analyzeTable {
			io.Pf("%s", out.ForceTable(fr))
		}
		if analyzeDiagram != "" {
			io.Pf("%s\n\n", out.Diagram(fr, analyzeDiagram, analyzeHeight))
		}
	}
}
