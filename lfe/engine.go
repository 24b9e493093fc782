// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lfe implements the linear frame engine: a direct-stiffness
// solver for 3D frames with Euler-Bernoulli members, end releases,
// distributed and concentrated member loads, and self-weight. It plugs
// into the analysis pipeline through the ana.Engine contract.
package lfe

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/p-astudillo/nifes-strucs-sub001/lds"
	"github.com/p-astudillo/nifes-strucs-sub001/mat"
	"github.com/p-astudillo/nifes-strucs-sub001/mdl"
	"github.com/p-astudillo/nifes-strucs-sub001/out"
	"github.com/p-astudillo/nifes-strucs-sub001/sec"
)

// Grav is the gravitational acceleration [m/s²] used for self-weight
const Grav = 9.80665

// Nstations is the number of force recovery points along each member
const Nstations = 11

// Engine is the in-process direct-stiffness solver. Its lifecycle
// follows the pipeline: Clear, BuildModel, ApplyLoads, Run, Extract.
type Engine struct {

	// solver selection
	SolverName string // linear solver name; "" means umfpack

	// model
	model *mdl.Model
	elems []*element
	eqs   map[int][]int // node id -> 6 equation numbers; -1 = restrained
	nfree int

	// per-case state
	fext   []float64            // [nfree] external force vector
	u      []float64            // [nfree] solution
	nodal  map[int][6]float64   // applied nodal loads by node, for reactions
	loaded bool
	solved bool
}

// New returns an engine ready for BuildModel
func New() *Engine { return &Engine{} }

// Clear resets all solver state
func (o *Engine) Clear() error {
	o.model = nil
	o.elems = nil
	o.eqs = nil
	o.nfree = 0
	o.fext = nil
	o.u = nil
	o.nodal = nil
	o.loaded = false
	o.solved = false
	return nil
}

// BuildModel assembles the elements and the reduced equation
// numbering. Restrained DOFs carry no equation; supports are fixed at
// zero displacement.
func (o *Engine) BuildModel(m *mdl.Model, mats *mat.MatDb, secs *sec.SecDb) error {

	if m.NodeCount() == 0 || m.FrameCount() == 0 {
		return chk.Err("model is empty")
	}
	o.model = m

	// equation numbering, node ids ascending, DOF order ux uy uz rx ry rz
	o.eqs = make(map[int][]int)
	o.nfree = 0
	for _, n := range m.Nodes() {
		eq := make([]int, 6)
		flags := n.Restraint.Flags()
		for d := 0; d < 6; d++ {
			if flags[d] {
				eq[d] = -1
			} else {
				eq[d] = o.nfree
				o.nfree++
			}
		}
		o.eqs[n.Id] = eq
	}

	// elements
	o.elems = nil
	for _, f := range m.Frames() {
		mm := mats.Get(f.MatName)
		if mm == nil {
			return chk.Err("frame %d references unknown material %q", f.Id, f.MatName)
		}
		ss := secs.Get(f.SecName)
		if ss == nil {
			return chk.Err("frame %d references unknown section %q", f.Id, f.SecName)
		}
		e, err := newElement(f, mm.E, mm.G(), ss.A, ss.Ix, ss.Iy, ss.J, mm.Rho)
		if err != nil {
			return err
		}
		e.umap = make([]int, nu)
		for k, nid := range []int{f.NodeI, f.NodeJ} {
			for d := 0; d < 6; d++ {
				e.umap[6*k+d] = o.eqs[nid][d]
			}
		}
		o.elems = append(o.elems, e)
	}
	return nil
}

// localDir resolves a load direction tag into local unit components
// for one element. Gravity points along global -Z.
func localDir(e *element, dir string) ([]float64, error) {
	switch dir {
	case lds.DirLocalX:
		return []float64{1, 0, 0}, nil
	case lds.DirLocalY:
		return []float64{0, 1, 0}, nil
	case lds.DirLocalZ:
		return []float64{0, 0, 1}, nil
	case lds.DirGravity:
		return e.axes.ToLocal([]float64{0, 0, -1}), nil
	case lds.DirGlobalX:
		return e.axes.ToLocal([]float64{1, 0, 0}), nil
	case lds.DirGlobalY:
		return e.axes.ToLocal([]float64{0, 1, 0}), nil
	case lds.DirGlobalZ:
		return e.axes.ToLocal([]float64{0, 0, 1}), nil
	}
	return nil, chk.Err("unknown load direction %q", dir)
}

// ApplyLoads sets the loads of one case: nodal loads, member loads and
// self-weight. Must be called after BuildModel.
func (o *Engine) ApplyLoads(lc *lds.Case, nodal []*lds.NodalLoad, dist []*lds.DistLoad, points []*lds.PointLoad) error {

	if o.model == nil {
		return chk.Err("model must be built before applying loads")
	}

	o.fext = make([]float64, o.nfree)
	o.nodal = make(map[int][6]float64)
	byFrame := make(map[int]*element)
	for _, e := range o.elems {
		e.clearLoads()
		byFrame[e.frame.Id] = e
	}
	o.loaded = false
	o.solved = false

	// nodal loads
	for _, l := range nodal {
		eq, ok := o.eqs[l.NodeId]
		if !ok {
			return chk.Err("nodal load targets unknown node %d", l.NodeId)
		}
		vals := [6]float64{l.Fx, l.Fy, l.Fz, l.Mx, l.My, l.Mz}
		acc := o.nodal[l.NodeId]
		for d := 0; d < 6; d++ {
			acc[d] += vals[d]
			if eq[d] >= 0 {
				o.fext[eq[d]] += vals[d]
			}
		}
		o.nodal[l.NodeId] = acc
	}

	// distributed loads
	for _, l := range dist {
		e, ok := byFrame[l.FrameId]
		if !ok {
			return chk.Err("distributed load targets unknown frame %d", l.FrameId)
		}
		d, err := localDir(e, l.Dir)
		if err != nil {
			return err
		}
		var ld lineLoad
		ld.xa, ld.xb = l.La*e.l, l.Lb*e.l
		for i := 0; i < 3; i++ {
			ld.qa[i] = l.Wa * d[i]
			ld.qb[i] = l.Wb * d[i]
		}
		e.addLine(ld)
	}

	// point loads on members
	for _, l := range points {
		e, ok := byFrame[l.FrameId]
		if !ok {
			return chk.Err("point load targets unknown frame %d", l.FrameId)
		}
		d, err := localDir(e, l.Dir)
		if err != nil {
			return err
		}
		var ld pntLoad
		ld.a = l.Loc * e.l
		for i := 0; i < 3; i++ {
			ld.f[i] = l.P * d[i]
		}
		// the moment acts about the axis perpendicular to the force,
		// split over the bending planes like the force itself
		ld.mt = l.M * d[0]
		ld.m3 = l.M * d[1]
		ld.m2 = l.M * d[2]
		e.addPoint(ld)
	}

	// self-weight as a gravity line load over every member
	if lc.SelfWgt != 0 {
		for _, e := range o.elems {
			w := e.rhoA * Grav * lc.SelfWgt / 1000.0 // kN/m
			d, err := localDir(e, lds.DirGravity)
			if err != nil {
				return err
			}
			var ld lineLoad
			ld.xa, ld.xb = 0, e.l
			for i := 0; i < 3; i++ {
				ld.qa[i] = w * d[i]
				ld.qb[i] = w * d[i]
			}
			e.addLine(ld)
		}
	}

	// condense the equivalent loads and scatter them to the global
	// force vector: fext += trans(T) * feq
	for _, e := range o.elems {
		if err := e.condenseLoads(); err != nil {
			return chk.Err("frame %d: %v", e.frame.Id, err)
		}
		fg := make([]float64, nu)
		la.MatTrVecMulAdd(fg, 1, e.T, e.feq)
		for i, I := range e.umap {
			if I >= 0 {
				o.fext[I] += fg[i]
			}
		}
	}
	o.loaded = true
	return nil
}

// Run assembles the global stiffness matrix and solves the linear
// system. converged is false when the factorization fails or the
// solution is not finite.
func (o *Engine) Run() (converged bool, err error) {

	if !o.loaded {
		return false, chk.Err("loads must be applied before running the analysis")
	}

	// a fully restrained model has nothing to solve; reactions still
	// follow from the equivalent loads
	if o.nfree == 0 {
		o.u = nil
		o.solved = true
		return true, nil
	}

	// assemble sparse K
	var Kb la.Triplet
	Kb.Init(o.nfree, o.nfree, len(o.elems)*nu*nu)
	for _, e := range o.elems {
		for i, I := range e.umap {
			if I < 0 {
				continue
			}
			for j, J := range e.umap {
				if J < 0 {
					continue
				}
				Kb.Put(I, J, e.K[i][j])
			}
		}
	}

	// factorize and solve
	name := o.SolverName
	if name == "" {
		name = "umfpack"
	}
	lis := la.GetSolver(name)
	defer lis.Free()
	if err = lis.InitR(&Kb, false, false, false); err != nil {
		return false, nil
	}
	if err = lis.Fact(); err != nil {
		return false, nil
	}
	o.u = make([]float64, o.nfree)
	if err = lis.SolveR(o.u, o.fext, false); err != nil {
		return false, nil
	}
	for _, v := range o.u {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false, nil
		}
	}
	o.solved = true
	return true, nil
}

// nodeDisp gathers the six global displacements of one node
func (o *Engine) nodeDisp(nodeId int) (d [6]float64) {
	for i, I := range o.eqs[nodeId] {
		if I >= 0 {
			d[i] = o.u[I]
		}
	}
	return
}

// Extract collects displacements, support reactions and member force
// stations into a results container
func (o *Engine) Extract(caseName string) (*out.Results, error) {

	if !o.solved {
		return nil, chk.Err("analysis must run before extracting results")
	}
	res := out.NewResults(caseName)

	// displacements
	for _, n := range o.model.Nodes() {
		d := o.nodeDisp(n.Id)
		res.AddDisp(&out.NodalDisp{NodeId: n.Id,
			Ux: d[0], Uy: d[1], Uz: d[2], Rx: d[3], Ry: d[4], Rz: d[5]})
	}

	// end forces and reactions. reactions accumulate the element nodal
	// forces at restrained DOFs, minus directly applied nodal loads.
	react := make(map[int]*[6]float64)
	for _, e := range o.elems {
		ueg := make([]float64, nu)
		for k, nid := range []int{e.frame.NodeI, e.frame.NodeJ} {
			d := o.nodeDisp(nid)
			copy(ueg[6*k:6*k+6], d[:])
		}
		e.endForces(ueg)
		fg := e.globalForces()
		for k, nid := range []int{e.frame.NodeI, e.frame.NodeJ} {
			for d := 0; d < 6; d++ {
				if o.eqs[nid][d] != -1 {
					continue
				}
				acc, ok := react[nid]
				if !ok {
					acc = new([6]float64)
					react[nid] = acc
				}
				acc[d] += fg[6*k+d]
			}
		}
	}
	var ids []int
	for id := range react {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		acc := react[id]
		applied := o.nodal[id]
		for d := 0; d < 6; d++ {
			if o.eqs[id][d] == -1 {
				acc[d] -= applied[d]
			}
		}
		res.AddReaction(&out.NodalReaction{NodeId: id,
			Fx: acc[0], Fy: acc[1], Fz: acc[2], Mx: acc[3], My: acc[4], Mz: acc[5]})
	}

	// station forces
	for _, e := range o.elems {
		fr := &out.FrameResult{FrameId: e.frame.Id}
		for i := 0; i < Nstations; i++ {
			s := float64(i) / float64(Nstations-1)
			p, v2, v3, t, m2, m3 := e.stationForces(s * e.l)
			fr.Forces = append(fr.Forces, &out.Forces{Loc: s, P: p, V2: v2, V3: v3, T: t, M2: m2, M3: m3})
		}
		res.AddFrame(fr)
	}
	return res, nil
}
