// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/p-astudillo/nifes-strucs-sub001/lds"
	"github.com/p-astudillo/nifes-strucs-sub001/out"
)

// combineOp folds one factored case value into the accumulated value
type combineOp func(acc, val float64) float64

func linearOp(acc, val float64) float64 { return acc + val }

func absAddOp(acc, val float64) float64 { return acc + math.Abs(val) }

// envelopeOp keeps the value with the largest magnitude, sign
// preserved; exact magnitude ties keep the earlier case
func envelopeOp(acc, val float64) float64 {
	if math.Abs(val) > math.Abs(acc) {
		return val
	}
	return acc
}

// Combine evaluates a combination over per-case results according to
// its type tag: linear superposition, magnitude envelope, or sum of
// absolute values. All participating results must sample member forces
// on the same station grid.
func Combine(combo *lds.Combo, caseResults map[string]*out.Results) (res *out.Results, err error) {

	var op combineOp
	switch combo.Type {
	case lds.ComboLinear:
		op = linearOp
	case lds.ComboEnvelope:
		op = envelopeOp
	case lds.ComboAbsAdd:
		op = absAddOp
	default:
		return nil, chk.Err("unknown combination type %q", combo.Type)
	}

	res = out.NewResults(combo.Name)
	for _, it := range combo.Items {
		r, ok := caseResults[it.Case]
		if !ok {
			return nil, chk.Err("missing results of case %q", it.Case)
		}
		if err = foldCase(res, r, it.Factor, op); err != nil {
			return nil, err
		}
		res.Elapsed += r.Elapsed
	}
	return
}

// foldCase accumulates one factored case into the combined result
func foldCase(res, r *out.Results, factor float64, op combineOp) error {

	var nodeIds []int
	for id := range r.Disps {
		nodeIds = append(nodeIds, id)
	}
	sort.Ints(nodeIds)
	for _, id := range nodeIds {
		d := r.Disps[id]
		acc := res.Disp(id)
		if acc == nil {
			acc = &out.NodalDisp{NodeId: id}
			res.AddDisp(acc)
		}
		acc.Ux = op(acc.Ux, factor*d.Ux)
		acc.Uy = op(acc.Uy, factor*d.Uy)
		acc.Uz = op(acc.Uz, factor*d.Uz)
		acc.Rx = op(acc.Rx, factor*d.Rx)
		acc.Ry = op(acc.Ry, factor*d.Ry)
		acc.Rz = op(acc.Rz, factor*d.Rz)
	}

	nodeIds = nodeIds[:0]
	for id := range r.Reactions {
		nodeIds = append(nodeIds, id)
	}
	sort.Ints(nodeIds)
	for _, id := range nodeIds {
		c := r.Reactions[id]
		acc := res.Reaction(id)
		if acc == nil {
			acc = &out.NodalReaction{NodeId: id}
			res.AddReaction(acc)
		}
		acc.Fx = op(acc.Fx, factor*c.Fx)
		acc.Fy = op(acc.Fy, factor*c.Fy)
		acc.Fz = op(acc.Fz, factor*c.Fz)
		acc.Mx = op(acc.Mx, factor*c.Mx)
		acc.My = op(acc.My, factor*c.My)
		acc.Mz = op(acc.Mz, factor*c.Mz)
	}

	var frameIds []int
	for id := range r.Frames {
		frameIds = append(frameIds, id)
	}
	sort.Ints(frameIds)
	for _, id := range frameIds {
		fr := r.Frames[id]
		acc := res.Frame(id)
		if acc == nil {
			acc = &out.FrameResult{FrameId: id}
			for _, s := range fr.Forces {
				acc.Forces = append(acc.Forces, &out.Forces{Loc: s.Loc})
			}
			res.AddFrame(acc)
		}
		if len(acc.Forces) != len(fr.Forces) {
			return chk.Err("frame %d: station grids differ between cases (%d vs %d)", id, len(acc.Forces), len(fr.Forces))
		}
		for i, s := range fr.Forces {
			a := acc.Forces[i]
			a.P = op(a.P, factor*s.P)
			a.V2 = op(a.V2, factor*s.V2)
			a.V3 = op(a.V3, factor*s.V3)
			a.T = op(a.T, factor*s.T)
			a.M2 = op(a.M2, factor*s.M2)
			a.M3 = op(a.M3, factor*s.M3)
		}
	}
	return nil
}
