// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out aggregates analysis results: nodal displacements and
// reactions in global coordinates, member force samples in local
// coordinates, and the derived envelopes.
package out

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/io"
)

// Forces holds the internal forces at one fractional location along a
// member, in local coordinates. Axial force is positive in tension.
// Units: kN for forces, kN·m for moments.
type Forces struct {
	Loc float64 `json:"location"` // fractional location in [0,1]
	P   float64 `json:"P"`        // axial force
	V2  float64 `json:"V2"`       // shear along local axis 2
	V3  float64 `json:"V3"`       // shear along local axis 3
	T   float64 `json:"T"`        // torsion about local axis 1
	M2  float64 `json:"M2"`       // bending moment about local axis 2
	M3  float64 `json:"M3"`       // bending moment about local axis 3
}

// FrameResult holds the ordered force samples of one member
type FrameResult struct {
	FrameId int       `json:"frame_id"`
	Forces  []*Forces `json:"forces"`
}

// absMax returns the entry with the largest magnitude, sign preserved.
// When magnitudes tie exactly, the first encountered sample wins.
func absMax(vals []float64) (res float64) {
	for i, v := range vals {
		if i == 0 || math.Abs(v) > math.Abs(res) {
			res = v
		}
	}
	return
}

// PMax returns the algebraic maximum axial force (largest tension)
func (o *FrameResult) PMax() (res float64) {
	for i, f := range o.Forces {
		if i == 0 || f.P > res {
			res = f.P
		}
	}
	return
}

// PMin returns the algebraic minimum axial force (largest compression)
func (o *FrameResult) PMin() (res float64) {
	for i, f := range o.Forces {
		if i == 0 || f.P < res {
			res = f.P
		}
	}
	return
}

// V2Max returns the extreme shear along axis 2, by magnitude with sign
func (o *FrameResult) V2Max() float64 { return absMax(o.collect("V2")) }

// V3Max returns the extreme shear along axis 3, by magnitude with sign
func (o *FrameResult) V3Max() float64 { return absMax(o.collect("V3")) }

// TMax returns the extreme torsion, by magnitude with sign
func (o *FrameResult) TMax() float64 { return absMax(o.collect("T")) }

// M2Max returns the extreme moment about axis 2, by magnitude with sign
func (o *FrameResult) M2Max() float64 { return absMax(o.collect("M2")) }

// M3Max returns the extreme moment about axis 3, by magnitude with sign
func (o *FrameResult) M3Max() float64 { return absMax(o.collect("M3")) }

// VMax returns the extreme shear over both directions
func (o *FrameResult) VMax() float64 {
	v2, v3 := o.V2Max(), o.V3Max()
	if math.Abs(v2) >= math.Abs(v3) {
		return v2
	}
	return v3
}

// MMax returns the extreme bending moment over both axes
func (o *FrameResult) MMax() float64 {
	m2, m3 := o.M2Max(), o.M3Max()
	if math.Abs(m2) >= math.Abs(m3) {
		return m2
	}
	return m3
}

// AtStart returns the sample at location 0, or the first one when no
// exact match exists; nil for an empty result
func (o *FrameResult) AtStart() *Forces {
	for _, f := range o.Forces {
		if f.Loc == 0.0 {
			return f
		}
	}
	if len(o.Forces) > 0 {
		return o.Forces[0]
	}
	return nil
}

// AtEnd returns the sample at location 1, or the last one when no
// exact match exists; nil for an empty result
func (o *FrameResult) AtEnd() *Forces {
	for _, f := range o.Forces {
		if f.Loc == 1.0 {
			return f
		}
	}
	if len(o.Forces) > 0 {
		return o.Forces[len(o.Forces)-1]
	}
	return nil
}

// Series extracts the sampled values of one component: "P", "V2",
// "V3", "T", "M2" or "M3"
func (o *FrameResult) Series(component string) []float64 {
	return o.collect(component)
}

// Locations returns the fractional sample locations
func (o *FrameResult) Locations() (res []float64) {
	for _, f := range o.Forces {
		res = append(res, f.Loc)
	}
	return
}

func (o *FrameResult) collect(component string) (res []float64) {
	res = make([]float64, len(o.Forces))
	for i, f := range o.Forces {
		switch component {
		case "P":
			res[i] = f.P
		case "V2":
			res[i] = f.V2
		case "V3":
			res[i] = f.V3
		case "T":
			res[i] = f.T
		case "M2":
			res[i] = f.M2
		case "M3":
			res[i] = f.M3
		}
	}
	return
}

// NodalDisp holds the displacements of one node in global coordinates;
// translations in m, rotations in rad
type NodalDisp struct {
	NodeId int     `json:"node_id"`
	Ux     float64 `json:"Ux"`
	Uy     float64 `json:"Uy"`
	Uz     float64 `json:"Uz"`
	Rx     float64 `json:"Rx"`
	Ry     float64 `json:"Ry"`
	Rz     float64 `json:"Rz"`
}

// TranslationNorm returns the translational displacement magnitude
func (o *NodalDisp) TranslationNorm() float64 {
	return math.Sqrt(o.Ux*o.Ux + o.Uy*o.Uy + o.Uz*o.Uz)
}

// RotationNorm returns the rotational displacement magnitude
func (o *NodalDisp) RotationNorm() float64 {
	return math.Sqrt(o.Rx*o.Rx + o.Ry*o.Ry + o.Rz*o.Rz)
}

// NodalReaction holds the support reactions of one node in global
// coordinates; forces in kN, moments in kN·m
type NodalReaction struct {
	NodeId int     `json:"node_id"`
	Fx     float64 `json:"Fx"`
	Fy     float64 `json:"Fy"`
	Fz     float64 `json:"Fz"`
	Mx     float64 `json:"Mx"`
	My     float64 `json:"My"`
	Mz     float64 `json:"Mz"`
}

// ForceNorm returns the reaction force magnitude
func (o *NodalReaction) ForceNorm() float64 {
	return math.Sqrt(o.Fx*o.Fx + o.Fy*o.Fy + o.Fz*o.Fz)
}

// MomentNorm returns the reaction moment magnitude
func (o *NodalReaction) MomentNorm() float64 {
	return math.Sqrt(o.Mx*o.Mx + o.My*o.My + o.Mz*o.Mz)
}

// Results holds the complete output of one analysis run for one load
// case or combination. A Results value exists even when the run fails;
// Success and ErrMsg tell the two apart.
type Results struct {
	Case    string  `json:"load_case"`     // case or combination name
	Success bool    `json:"success"`       // solve converged and extraction finished
	ErrMsg  string  `json:"error_message"` // reason of the failure, "" on success
	Elapsed float64 `json:"analysis_time_seconds"`

	Disps     map[int]*NodalDisp     `json:"displacements"`
	Reactions map[int]*NodalReaction `json:"reactions"`
	Frames    map[int]*FrameResult   `json:"frame_results"`
}

// NewResults returns an empty successful result for one case
func NewResults(caseName string) *Results {
	return &Results{
		Case:      caseName,
		Success:   true,
		Disps:     make(map[int]*NodalDisp),
		Reactions: make(map[int]*NodalReaction),
		Frames:    make(map[int]*FrameResult),
	}
}

// Failed returns a failed result carrying an error message
func Failed(caseName, msg string) *Results {
	o := NewResults(caseName)
	o.Success = false
	o.ErrMsg = msg
	return o
}

// Disp returns the displacement of one node or nil
func (o *Results) Disp(nodeId int) *NodalDisp { return o.Disps[nodeId] }

// Reaction returns the reaction of one node or nil
func (o *Results) Reaction(nodeId int) *NodalReaction { return o.Reactions[nodeId] }

// Frame returns the force samples of one member or nil
func (o *Results) Frame(frameId int) *FrameResult { return o.Frames[frameId] }

// AddDisp stores a nodal displacement, replacing any previous entry
func (o *Results) AddDisp(d *NodalDisp) { o.Disps[d.NodeId] = d }

// AddReaction stores a nodal reaction
func (o *Results) AddReaction(r *NodalReaction) { o.Reactions[r.NodeId] = r }

// AddFrame stores a member result
func (o *Results) AddFrame(f *FrameResult) { o.Frames[f.FrameId] = f }

// FrameIds returns all member ids, ascending
func (o *Results) FrameIds() (res []int) {
	for id := range o.Frames {
		res = append(res, id)
	}
	sort.Ints(res)
	return
}

// MaxDisplacement returns the largest translational displacement
// magnitude over all nodes
func (o *Results) MaxDisplacement() (res float64) {
	for _, d := range o.Disps {
		if m := d.TranslationNorm(); m > res {
			res = m
		}
	}
	return
}

// MaxRotation returns the largest rotational displacement magnitude
func (o *Results) MaxRotation() (res float64) {
	for _, d := range o.Disps {
		if m := d.RotationNorm(); m > res {
			res = m
		}
	}
	return
}

// MaxReaction returns the largest reaction force magnitude and the id
// of the node carrying it; id is -1 when there are no reactions
func (o *Results) MaxReaction() (nodeId int, res float64) {
	nodeId = -1
	for id, r := range o.Reactions {
		if m := r.ForceNorm(); nodeId < 0 || m > res || (m == res && id < nodeId) {
			nodeId, res = id, m
		}
	}
	return
}

// Summary formats a short human-readable account of this result
func (o *Results) Summary() (l string) {
	if !o.Success {
		return io.Sf("case %q FAILED: %s\n", o.Case, o.ErrMsg)
	}
	l = io.Sf("case %q solved in %.4f s\n", o.Case, o.Elapsed)
	l += io.Sf("  nodes: %d displacements, %d reactions\n", len(o.Disps), len(o.Reactions))
	l += io.Sf("  members: %d\n", len(o.Frames))
	l += io.Sf("  max displacement = %g m\n", o.MaxDisplacement())
	if id, r := o.MaxReaction(); id >= 0 {
		l += io.Sf("  max reaction = %g kN at node %d\n", r, id)
	}
	return
}
