// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mdl implements the structural model: nodes with boundary
// conditions, frame members, and the container managing them.
package mdl

import "github.com/cpmech/gosl/chk"

// Restraint kind literals; persisted, do not change
const (
	RestFree         = "free"
	RestFixed        = "fixed"
	RestPinned       = "pinned"
	RestRollerX      = "roller_x"
	RestRollerY      = "roller_y"
	RestRollerZ      = "roller_z"
	RestVerticalOnly = "vertical_only"
	RestCustom       = "custom"
)

// Restraint holds the boundary conditions at a node. true means the
// degree of freedom is fixed.
type Restraint struct {
	Ux bool `json:"ux"` // translation along X
	Uy bool `json:"uy"` // translation along Y
	Uz bool `json:"uz"` // translation along Z
	Rx bool `json:"rx"` // rotation about X
	Ry bool `json:"ry"` // rotation about Y
	Rz bool `json:"rz"` // rotation about Z
}

// preset restraints
var (
	Free         = Restraint{}
	Fixed        = Restraint{true, true, true, true, true, true}
	Pinned       = Restraint{Ux: true, Uy: true, Uz: true}
	RollerX      = Restraint{Uy: true, Uz: true}
	RollerY      = Restraint{Ux: true, Uz: true}
	RollerZ      = Restraint{Ux: true, Uy: true}
	VerticalOnly = Restraint{Uz: true}
)

// NewRestraint returns the preset restraint for a kind literal;
// "custom" starts free
func NewRestraint(kind string) (Restraint, error) {
	switch kind {
	case RestFree, RestCustom:
		return Free, nil
	case RestFixed:
		return Fixed, nil
	case RestPinned:
		return Pinned, nil
	case RestRollerX:
		return RollerX, nil
	case RestRollerY:
		return RollerY, nil
	case RestRollerZ:
		return RollerZ, nil
	case RestVerticalOnly:
		return VerticalOnly, nil
	}
	return Free, chk.Err("unknown restraint kind %q", kind)
}

// IsFree tells whether all degrees of freedom are free
func (o Restraint) IsFree() bool {
	return !(o.Ux || o.Uy || o.Uz || o.Rx || o.Ry || o.Rz)
}

// IsFixed tells whether all degrees of freedom are fixed
func (o Restraint) IsFixed() bool {
	return o.Ux && o.Uy && o.Uz && o.Rx && o.Ry && o.Rz
}

// IsPinned tells whether translations are fixed and rotations free
func (o Restraint) IsPinned() bool {
	return o.Ux && o.Uy && o.Uz && !o.Rx && !o.Ry && !o.Rz
}

// Kind classifies the DOF pattern back into its preset literal;
// unmatched patterns are "custom"
func (o Restraint) Kind() string {
	switch o {
	case Free:
		return RestFree
	case Fixed:
		return RestFixed
	case Pinned:
		return RestPinned
	case RollerX:
		return RestRollerX
	case RollerY:
		return RestRollerY
	case RollerZ:
		return RestRollerZ
	case VerticalOnly:
		return RestVerticalOnly
	}
	return RestCustom
}

// Flags returns [ux, uy, uz, rx, ry, rz]
func (o Restraint) Flags() [6]bool {
	return [6]bool{o.Ux, o.Uy, o.Uz, o.Rx, o.Ry, o.Rz}
}

// Count returns the number of fixed degrees of freedom
func (o Restraint) Count() (n int) {
	for _, f := range o.Flags() {
		if f {
			n++
		}
	}
	return
}
