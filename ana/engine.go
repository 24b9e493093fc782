// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana orchestrates the analysis pipeline: validate, build,
// load, run, extract. The solver itself sits behind the Engine
// interface and its failures never propagate to the caller; they are
// converted into failed result containers instead.
package ana

import (
	"github.com/p-astudillo/nifes-strucs-sub001/lds"
	"github.com/p-astudillo/nifes-strucs-sub001/mat"
	"github.com/p-astudillo/nifes-strucs-sub001/mdl"
	"github.com/p-astudillo/nifes-strucs-sub001/out"
	"github.com/p-astudillo/nifes-strucs-sub001/sec"
)

// Engine is the solver contract. Implementations own their internal
// state between Clear and Extract; the Runner drives the calls in a
// fixed order for each load case.
type Engine interface {

	// Clear resets the solver state before a new case
	Clear() error

	// BuildModel assembles the solver's internal model. It fails on
	// dangling material or section references.
	BuildModel(m *mdl.Model, mats *mat.MatDb, secs *sec.SecDb) error

	// ApplyLoads sets the loads of one case, including self-weight
	// when the case carries a multiplier
	ApplyLoads(lc *lds.Case, nodal []*lds.NodalLoad, dist []*lds.DistLoad, points []*lds.PointLoad) error

	// Run solves the linear system; converged is false when the
	// solution cannot be trusted
	Run() (converged bool, err error)

	// Extract collects displacements, reactions and member forces
	Extract(caseName string) (*out.Results, error)
}

// ProgressFn reports pipeline progress. It is called synchronously and
// in order; the pipeline blocks until it returns.
type ProgressFn func(step, total int, msg string)
