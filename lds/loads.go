// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lds implements the load model: load cases, nodal loads,
// distributed and point loads on members, and factored combinations.
// Force unit is kN, line loads kN/m, moments kN·m.
package lds

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
)

// load case type literals; persisted, do not change
const (
	CaseDead        = "Dead"
	CaseLive        = "Live"
	CaseRoofLive    = "Roof Live"
	CaseSnow        = "Snow"
	CaseWind        = "Wind"
	CaseSeismic     = "Seismic"
	CaseTemperature = "Temperature"
	CaseOther       = "Other"
)

// load direction literals; persisted, do not change
const (
	DirGravity = "Gravity" // always -Z global
	DirLocalX  = "Local X" // along the member axis
	DirLocalY  = "Local Y"
	DirLocalZ  = "Local Z"
	DirGlobalX = "Global X"
	DirGlobalY = "Global Y"
	DirGlobalZ = "Global Z"
)

// ValidDir tells whether a direction literal is known
func ValidDir(dir string) bool {
	switch dir {
	case DirGravity, DirLocalX, DirLocalY, DirLocalZ, DirGlobalX, DirGlobalY, DirGlobalZ:
		return true
	}
	return false
}

// Case groups loads acting together. Cases are identified by name.
type Case struct {
	Name    string  `json:"name"`                   // unique name
	Type    string  `json:"load_type"`              // case type literal
	Descr   string  `json:"descr"`                  // free text
	SelfWgt float64 `json:"self_weight_multiplier"` // 0 = no self-weight
}

// NewCase creates a load case; the name must not be empty
func NewCase(name, typ string) (*Case, error) {
	if name == "" {
		return nil, chk.Err("load case name cannot be empty")
	}
	if typ == "" {
		typ = CaseOther
	}
	return &Case{Name: name, Type: typ}, nil
}

// NodalLoad is a concentrated force/moment at a node, in global
// coordinates
type NodalLoad struct {
	NodeId int     `json:"node_id"`   // target node
	Case   string  `json:"load_case"` // owning case name
	Fx     float64 `json:"Fx"`        // force along global X [kN]
	Fy     float64 `json:"Fy"`        // force along global Y [kN]
	Fz     float64 `json:"Fz"`        // force along global Z [kN]
	Mx     float64 `json:"Mx"`        // moment about global X [kN·m]
	My     float64 `json:"My"`        // moment about global Y [kN·m]
	Mz     float64 `json:"Mz"`        // moment about global Z [kN·m]
}

// IsZero tells whether all components vanish
func (o *NodalLoad) IsZero() bool {
	return o.Fx == 0 && o.Fy == 0 && o.Fz == 0 && o.Mx == 0 && o.My == 0 && o.Mz == 0
}

// DistLoad is a line load along a member, constant or linearly varying
// over the fraction range [La, Lb] of the length
type DistLoad struct {
	FrameId int     `json:"frame_id"`  // target member
	Case    string  `json:"load_case"` // owning case name
	Dir     string  `json:"direction"` // direction literal
	Wa      float64 `json:"w_start"`   // intensity at La [kN/m]
	Wb      float64 `json:"w_end"`     // intensity at Lb [kN/m]
	La      float64 `json:"start_loc"` // start fraction, 0 to 1
	Lb      float64 `json:"end_loc"`   // end fraction, 0 to 1
}

// UnmarshalJSON decodes a distributed load applying the persisted
// defaults: a missing direction means gravity, a missing end intensity
// repeats the start intensity (uniform), and a missing end location
// means the full member length.
func (o *DistLoad) UnmarshalJSON(b []byte) error {
	type alias DistLoad
	data := struct {
		*alias
		Wb *float64 `json:"w_end"`
		Lb *float64 `json:"end_loc"`
	}{alias: (*alias)(o)}
	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}
	if o.Dir == "" {
		o.Dir = DirGravity
	}
	o.Wb = o.Wa
	if data.Wb != nil {
		o.Wb = *data.Wb
	}
	o.Lb = 1.0
	if data.Lb != nil {
		o.Lb = *data.Lb
	}
	return nil
}

// Validate checks the direction literal and the fraction range
func (o *DistLoad) Validate() error {
	if !ValidDir(o.Dir) {
		return chk.Err("unknown load direction %q", o.Dir)
	}
	if o.La < 0 || o.La > 1 {
		return chk.Err("start_loc must be between 0 and 1, got %v", o.La)
	}
	if o.Lb < 0 || o.Lb > 1 {
		return chk.Err("end_loc must be between 0 and 1, got %v", o.Lb)
	}
	if o.La >= o.Lb {
		return chk.Err("start_loc (%v) must be less than end_loc (%v)", o.La, o.Lb)
	}
	return nil
}

// IsUniform tells whether the intensity is constant
func (o *DistLoad) IsUniform() bool { return o.Wa == o.Wb }

// IsFullLength tells whether the load covers the whole member
func (o *DistLoad) IsFullLength() bool { return o.La == 0 && o.Lb == 1 }

// AvgIntensity returns the mean intensity over the loaded range
func (o *DistLoad) AvgIntensity() float64 { return (o.Wa + o.Wb) / 2.0 }

// IntensityAt returns the intensity at fraction t of the member
// length; zero outside the loaded range
func (o *DistLoad) IntensityAt(t float64) float64 {
	if t < o.La || t > o.Lb {
		return 0
	}
	if o.IsUniform() {
		return o.Wa
	}
	s := (t - o.La) / (o.Lb - o.La)
	return o.Wa + s*(o.Wb-o.Wa)
}

// Uniform creates a constant line load over the full member length
func Uniform(frameId int, caseName string, w float64, dir string) *DistLoad {
	return &DistLoad{FrameId: frameId, Case: caseName, Dir: dir, Wa: w, Wb: w, La: 0, Lb: 1}
}

// Triangular creates a linearly varying load over the full length:
// ascending grows from zero at node i to wmax at node j, descending
// the other way round
func Triangular(frameId int, caseName string, wmax float64, dir string, ascending bool) *DistLoad {
	if ascending {
		return &DistLoad{FrameId: frameId, Case: caseName, Dir: dir, Wa: 0, Wb: wmax, La: 0, Lb: 1}
	}
	return &DistLoad{FrameId: frameId, Case: caseName, Dir: dir, Wa: wmax, Wb: 0, La: 0, Lb: 1}
}

// Trapezoidal creates a linearly varying load over the full length
func Trapezoidal(frameId int, caseName string, wa, wb float64, dir string) *DistLoad {
	return &DistLoad{FrameId: frameId, Case: caseName, Dir: dir, Wa: wa, Wb: wb, La: 0, Lb: 1}
}

// PartialUniform creates a constant line load over [la, lb]
func PartialUniform(frameId int, caseName string, w float64, la, lb float64, dir string) *DistLoad {
	return &DistLoad{FrameId: frameId, Case: caseName, Dir: dir, Wa: w, Wb: w, La: la, Lb: lb}
}

// PointLoad is a concentrated force (and optional moment) at a
// fraction of the member length
type PointLoad struct {
	FrameId int     `json:"frame_id"`  // target member
	Case    string  `json:"load_case"` // owning case name
	Loc     float64 `json:"location"`  // fraction of length, 0 to 1
	P       float64 `json:"P"`         // force magnitude [kN]
	Dir     string  `json:"direction"` // direction literal
	M       float64 `json:"M"`         // moment magnitude [kN·m]
}

// UnmarshalJSON decodes a point load; a missing direction means
// gravity
func (o *PointLoad) UnmarshalJSON(b []byte) error {
	type alias PointLoad
	if err := json.Unmarshal(b, (*alias)(o)); err != nil {
		return err
	}
	if o.Dir == "" {
		o.Dir = DirGravity
	}
	return nil
}

// Validate checks the direction literal and the location fraction
func (o *PointLoad) Validate() error {
	if !ValidDir(o.Dir) {
		return chk.Err("unknown load direction %q", o.Dir)
	}
	if o.Loc < 0 || o.Loc > 1 {
		return chk.Err("location must be between 0 and 1, got %v", o.Loc)
	}
	return nil
}

// location classifiers
func (o *PointLoad) IsAtStart() bool { return o.Loc == 0 }
func (o *PointLoad) IsAtEnd() bool   { return o.Loc == 1 }
func (o *PointLoad) IsAtMidpoint() bool {
	d := o.Loc - 0.5
	return d < 1e-6 && d > -1e-6
}

// Midspan creates a point load at the middle of a member
func Midspan(frameId int, caseName string, p float64, dir string) *PointLoad {
	return &PointLoad{FrameId: frameId, Case: caseName, Loc: 0.5, P: p, Dir: dir}
}
