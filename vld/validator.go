// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vld checks a structural model for analysis-readiness:
// supports, connectivity, and material/section references. The
// stability checks are heuristic gates, not a rank check on the
// stiffness matrix.
package vld

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/io"

	"github.com/p-astudillo/nifes-strucs-sub001/mat"
	"github.com/p-astudillo/nifes-strucs-sub001/mdl"
	"github.com/p-astudillo/nifes-strucs-sub001/sec"
)

// Result collects validation findings. Errors invalidate the model;
// warnings are advisory only.
type Result struct {
	Errors   []string // blocking findings
	Warnings []string // advisory findings
}

// IsValid tells whether the model can be analyzed
func (o *Result) IsValid() bool { return len(o.Errors) == 0 }

// AddError appends a blocking finding
func (o *Result) AddError(msg string) { o.Errors = append(o.Errors, msg) }

// AddWarning appends an advisory finding
func (o *Result) AddWarning(msg string) { o.Warnings = append(o.Warnings, msg) }

// Report formats all findings, errors first
func (o *Result) Report() (l string) {
	if o.IsValid() {
		l = "model is valid\n"
	} else {
		l = io.Sf("model is INVALID: %d error(s)\n", len(o.Errors))
	}
	for _, msg := range o.Errors {
		l += io.Sf("  error: %s\n", msg)
	}
	for _, msg := range o.Warnings {
		l += io.Sf("  warning: %s\n", msg)
	}
	return
}

// Validator runs the analysis-readiness checks over one model and its
// material/section databases
type Validator struct {
	Model *mdl.Model // model to validate
	Mats  *mat.MatDb // available materials
	Secs  *sec.SecDb // available sections
}

// New returns a validator for the given model and databases
func New(m *mdl.Model, mats *mat.MatDb, secs *sec.SecDb) *Validator {
	return &Validator{Model: m, Mats: mats, Secs: secs}
}

// Validate runs all checks in a fixed order and returns the findings
func (o *Validator) Validate() (res *Result) {
	res = new(Result)
	o.checkHasNodes(res)
	o.checkHasFrames(res)
	o.checkHasSupports(res)
	o.checkMaterialRefs(res)
	o.checkSectionRefs(res)
	o.checkStability(res)
	return
}

// checkHasNodes requires at least 2 nodes
func (o *Validator) checkHasNodes(res *Result) {
	switch o.Model.NodeCount() {
	case 0:
		res.AddError("model has no nodes")
	case 1:
		res.AddError("model must have at least 2 nodes")
	}
}

// checkHasFrames requires at least 1 member
func (o *Validator) checkHasFrames(res *Result) {
	if o.Model.FrameCount() == 0 {
		res.AddError("model has no frame elements")
	}
}

// checkHasSupports requires boundary conditions able to block rigid
// body motion: at least 6 restrained DOFs in total, and ideally one
// translation restraint per global axis
func (o *Validator) checkHasSupports(res *Result) {
	supported := o.Model.SupportedNodes()
	if len(supported) == 0 {
		res.AddError("model has no supported nodes (no boundary conditions)")
		return
	}

	nrestrained := 0
	for _, n := range supported {
		nrestrained += n.Restraint.Count()
	}
	if nrestrained < 6 {
		res.AddError(io.Sf("insufficient restraints: only %d DOFs restrained; need at least 6 for 3D stability", nrestrained))
	}

	hasUx, hasUy, hasUz := false, false, false
	for _, n := range supported {
		hasUx = hasUx || n.Restraint.Ux
		hasUy = hasUy || n.Restraint.Uy
		hasUz = hasUz || n.Restraint.Uz
	}
	if !(hasUx && hasUy && hasUz) {
		var missing []string
		if !hasUx {
			missing = append(missing, "X")
		}
		if !hasUy {
			missing = append(missing, "Y")
		}
		if !hasUz {
			missing = append(missing, "Z")
		}
		res.AddWarning(io.Sf("no translation restraint in %s direction(s); model may have rigid body motion", strings.Join(missing, ", ")))
	}
}

// checkMaterialRefs requires every member to reference a known material
func (o *Validator) checkMaterialRefs(res *Result) {
	for _, f := range o.Model.Frames() {
		if o.Mats == nil || o.Mats.Get(f.MatName) == nil {
			res.AddError(io.Sf("frame %d references unknown material %q", f.Id, f.MatName))
		}
	}
}

// checkSectionRefs requires every member to reference a known section
func (o *Validator) checkSectionRefs(res *Result) {
	for _, f := range o.Model.Frames() {
		if o.Secs == nil || o.Secs.Get(f.SecName) == nil {
			res.AddError(io.Sf("frame %d references unknown section %q", f.Id, f.SecName))
		}
	}
}

// checkStability warns about floating nodes and errors when no
// supported node takes part in the member graph
func (o *Validator) checkStability(res *Result) {
	if o.Model.NodeCount() == 0 || o.Model.FrameCount() == 0 {
		return // already reported
	}

	connected := make(map[int]bool)
	for _, f := range o.Model.Frames() {
		connected[f.NodeI] = true
		connected[f.NodeJ] = true
	}

	var floating []int
	for _, n := range o.Model.Nodes() {
		if !connected[n.Id] {
			floating = append(floating, n.Id)
		}
	}
	if len(floating) > 0 {
		sort.Ints(floating)
		res.AddWarning(io.Sf("nodes %v are not connected to any frame elements", floating))
	}

	supported := o.Model.SupportedNodes()
	if len(supported) == 0 {
		return // missing supports already reported
	}
	for _, n := range supported {
		if connected[n.Id] {
			return
		}
	}
	res.AddError("no supported node is connected to frame elements; model will be unstable")
}

// Check is a convenience wrapper running all validations at once
func Check(m *mdl.Model, mats *mat.MatDb, secs *sec.SecDb) *Result {
	return New(m, mats, secs).Validate()
}
