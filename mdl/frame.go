// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gosl/chk"

	"github.com/p-astudillo/nifes-strucs-sub001/gm"
)

// MinFrameLength is the smallest member length accepted [m]
const MinFrameLength = 0.01

// FrameReleases holds the end releases of a member in local
// coordinates. true means the force component is released at that end.
type FrameReleases struct {
	Pi  bool `json:"P_i"`  // axial at end i
	V2i bool `json:"V2_i"` // shear along axis 2 at end i
	V3i bool `json:"V3_i"` // shear along axis 3 at end i
	Ti  bool `json:"T_i"`  // torsion at end i
	M2i bool `json:"M2_i"` // bending about axis 2 at end i
	M3i bool `json:"M3_i"` // bending about axis 3 at end i
	Pj  bool `json:"P_j"`  // axial at end j
	V2j bool `json:"V2_j"` // shear along axis 2 at end j
	V3j bool `json:"V3_j"` // shear along axis 3 at end j
	Tj  bool `json:"T_j"`  // torsion at end j
	M2j bool `json:"M2_j"` // bending about axis 2 at end j
	M3j bool `json:"M3_j"` // bending about axis 3 at end j
}

// release presets
func FixedFixed() FrameReleases   { return FrameReleases{} }
func PinnedPinned() FrameReleases { return FrameReleases{M2i: true, M3i: true, M2j: true, M3j: true} }
func FixedPinned() FrameReleases  { return FrameReleases{M2j: true, M3j: true} }
func PinnedFixed() FrameReleases  { return FrameReleases{M2i: true, M3i: true} }

// IsFullyFixed tells whether no component is released
func (o FrameReleases) IsFullyFixed() bool { return o == FrameReleases{} }

// Flags returns the releases in local DOF order:
// [Pi V2i V3i Ti M2i M3i Pj V2j V3j Tj M2j M3j]
func (o FrameReleases) Flags() [12]bool {
	return [12]bool{o.Pi, o.V2i, o.V3i, o.Ti, o.M2i, o.M3i, o.Pj, o.V2j, o.V3j, o.Tj, o.M2j, o.M3j}
}

// Frame is a 1D member (beam, column, brace) connecting two nodes.
// Material and section are referenced by name; the databases live
// outside the model.
type Frame struct {
	Id       int           `json:"id"`            // unique id within a model
	NodeI    int           `json:"node_i_id"`     // start node id
	NodeJ    int           `json:"node_j_id"`     // end node id
	MatName  string        `json:"material_name"` // material reference
	SecName  string        `json:"section_name"`  // section reference
	Rot      float64       `json:"rotation"`      // rotation about axis 1 [rad]
	Releases FrameReleases `json:"releases"`      // end releases
	Label    string        `json:"label"`         // user label

	// cached node references, set by the model
	ni, nj *Node
}

// Validate checks the member definition (not the geometry)
func (o *Frame) Validate() error {
	if o.NodeI == o.NodeJ {
		return chk.Err("frame cannot connect a node to itself (node id = %d)", o.NodeI)
	}
	if o.MatName == "" {
		return chk.Err("frame must have a material assigned")
	}
	if o.SecName == "" {
		return chk.Err("frame must have a section assigned")
	}
	return nil
}

// SetNodes caches the node references used by the geometry helpers
func (o *Frame) SetNodes(ni, nj *Node) error {
	if ni.Id != o.NodeI {
		return chk.Err("node i id mismatch: expected %d, got %d", o.NodeI, ni.Id)
	}
	if nj.Id != o.NodeJ {
		return chk.Err("node j id mismatch: expected %d, got %d", o.NodeJ, nj.Id)
	}
	o.ni, o.nj = ni, nj
	return nil
}

// Nodes returns the cached node references
func (o *Frame) Nodes() (ni, nj *Node, err error) {
	if o.ni == nil || o.nj == nil {
		return nil, nil, chk.Err("frame %d: node references not set", o.Id)
	}
	return o.ni, o.nj, nil
}

// Length returns the member length
func (o *Frame) Length() (float64, error) {
	ni, nj, err := o.Nodes()
	if err != nil {
		return 0, err
	}
	return ni.DistTo(nj), nil
}

// Axes returns the member local coordinate system
func (o *Frame) Axes() (*gm.Axes, error) {
	ni, nj, err := o.Nodes()
	if err != nil {
		return nil, err
	}
	return gm.NewAxes(ni.Pos(), nj.Pos(), o.Rot)
}

// Midpoint returns the point halfway along the member
func (o *Frame) Midpoint() ([]float64, error) {
	ni, nj, err := o.Nodes()
	if err != nil {
		return nil, err
	}
	return gm.Midpoint(ni.Pos(), nj.Pos()), nil
}

// Direction returns the unit vector from node i to node j; zero for
// degenerate members
func (o *Frame) Direction() ([]float64, error) {
	ni, nj, err := o.Nodes()
	if err != nil {
		return nil, err
	}
	l := ni.DistTo(nj)
	if l < gm.ZeroLenTol {
		return []float64{0, 0, 0}, nil
	}
	return []float64{(nj.X - ni.X) / l, (nj.Y - ni.Y) / l, (nj.Z - ni.Z) / l}, nil
}

// PointAt returns the point at fraction t along the member (0 at node
// i, 1 at node j)
func (o *Frame) PointAt(t float64) ([]float64, error) {
	ni, nj, err := o.Nodes()
	if err != nil {
		return nil, err
	}
	return gm.PointAt(ni.Pos(), nj.Pos(), t), nil
}
