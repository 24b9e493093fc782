// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"strings"
	"time"

	"github.com/cpmech/gosl/io"

	"github.com/p-astudillo/nifes-strucs-sub001/out"
	"github.com/p-astudillo/nifes-strucs-sub001/vld"

	"github.com/p-astudillo/nifes-strucs-sub001/lds"
	"github.com/p-astudillo/nifes-strucs-sub001/mat"
	"github.com/p-astudillo/nifes-strucs-sub001/mdl"
	"github.com/p-astudillo/nifes-strucs-sub001/sec"
)

// nstages is the number of pipeline stages reported to ProgressFn
const nstages = 5

// Runner drives the five-stage analysis pipeline over one model. It is
// single-threaded; callers must not share a Runner across goroutines.
type Runner struct {
	Engine Engine     // solver adapter
	Model  *mdl.Model // model to analyze
	Mats   *mat.MatDb // material database
	Secs   *sec.SecDb // section database
	Loads  *lds.Set   // cases, loads and combinations

	Progress ProgressFn // optional progress reporting
	SkipVld  bool       // skip the validation stage (tests only)
}

// NewRunner returns a runner wired to one engine and one model
func NewRunner(engine Engine, m *mdl.Model, mats *mat.MatDb, secs *sec.SecDb, loads *lds.Set) *Runner {
	return &Runner{Engine: engine, Model: m, Mats: mats, Secs: secs, Loads: loads}
}

func (o *Runner) report(step int, msg string) {
	if o.Progress != nil {
		o.Progress(step, nstages, msg)
	}
}

// Analyze runs the full pipeline for one load case. It always returns
// a Results container: stage failures yield Success=false with a
// stage-specific message and never an error.
func (o *Runner) Analyze(caseName string) *out.Results {

	start := time.Now()
	lc := o.Loads.GetCase(caseName)
	if lc == nil {
		return out.Failed(caseName, io.Sf("load case %q not found", caseName))
	}

	// stage 1: validate
	o.report(1, "validating model")
	if !o.SkipVld {
		res := vld.Check(o.Model, o.Mats, o.Secs)
		if !res.IsValid() {
			return out.Failed(caseName, io.Sf("validation failed: %s", strings.Join(res.Errors, "; ")))
		}
	}

	// stage 2: build the solver model
	o.report(2, "building analysis model")
	if err := o.Engine.Clear(); err != nil {
		return out.Failed(caseName, io.Sf("failed to build model: %v", err))
	}
	if err := o.Engine.BuildModel(o.Model, o.Mats, o.Secs); err != nil {
		return out.Failed(caseName, io.Sf("failed to build model: %v", err))
	}

	// stage 3: apply loads
	o.report(3, "applying loads")
	err := o.Engine.ApplyLoads(lc, o.Loads.NodalFor(caseName), o.Loads.DistFor(caseName), o.Loads.PointsFor(caseName))
	if err != nil {
		return out.Failed(caseName, io.Sf("failed to apply loads: %v", err))
	}

	// stage 4: solve
	o.report(4, "running analysis")
	converged, err := o.Engine.Run()
	if err != nil {
		return out.Failed(caseName, io.Sf("analysis failed: %v", err))
	}

	// stage 5: extract
	o.report(5, "extracting results")
	results, err := o.Engine.Extract(caseName)
	if err != nil {
		return out.Failed(caseName, io.Sf("failed to extract results: %v", err))
	}
	results.Success = converged
	if !converged {
		results.ErrMsg = "analysis did not converge"
	}
	results.Elapsed = time.Since(start).Seconds()
	return results
}

// AnalyzeAll runs the pipeline for a sequence of cases, reporting
// outer progress per case. Failed cases do not stop the batch.
func (o *Runner) AnalyzeAll(caseNames []string, progress ProgressFn) (res []*out.Results) {
	for i, name := range caseNames {
		if progress != nil {
			progress(i+1, len(caseNames), io.Sf("analyzing %s", name))
		}
		res = append(res, o.Analyze(name))
	}
	return
}

// AnalyzeCombo evaluates one combination over already-computed case
// results. Every participating case must be present and successful.
func (o *Runner) AnalyzeCombo(combo *lds.Combo, caseResults map[string]*out.Results) *out.Results {
	for _, it := range combo.Items {
		r, ok := caseResults[it.Case]
		if !ok {
			return out.Failed(combo.Name, io.Sf("combination %q misses results of case %q", combo.Name, it.Case))
		}
		if !r.Success {
			return out.Failed(combo.Name, io.Sf("combination %q depends on failed case %q: %s", combo.Name, it.Case, r.ErrMsg))
		}
	}
	res, err := Combine(combo, caseResults)
	if err != nil {
		return out.Failed(combo.Name, io.Sf("failed to combine results: %v", err))
	}
	return res
}
