// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/p-astudillo/nifes-strucs-sub001/gm"
)

// CoordPrec is the number of decimals coordinates are rounded to [m]
const CoordPrec = 6

// Node is a structural joint in 3D space
type Node struct {
	Id        int       `json:"id"`        // unique id within a model
	X         float64   `json:"x"`         // coordinate [m]
	Y         float64   `json:"y"`         // coordinate [m]
	Z         float64   `json:"z"`         // coordinate [m]
	Restraint Restraint `json:"restraint"` // boundary conditions
}

// NewNode creates a node with rounded coordinates. Non-finite
// coordinates are rejected.
func NewNode(id int, x, y, z float64, r Restraint) (*Node, error) {
	for _, c := range []struct {
		v    float64
		name string
	}{{x, "x"}, {y, "y"}, {z, "z"}} {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) {
			return nil, chk.Err("coordinate %s must be a finite number, got %v", c.name, c.v)
		}
	}
	return &Node{Id: id, X: roundCoord(x), Y: roundCoord(y), Z: roundCoord(z), Restraint: r}, nil
}

// Pos returns the position as a vector
func (o *Node) Pos() []float64 { return []float64{o.X, o.Y, o.Z} }

// IsSupported tells whether any degree of freedom is restrained
func (o *Node) IsSupported() bool { return !o.Restraint.IsFree() }

// DistTo returns the distance to another node
func (o *Node) DistTo(other *Node) float64 { return gm.Dist(o.Pos(), other.Pos()) }

// DistToPoint returns the distance to a point
func (o *Node) DistToPoint(x, y, z float64) float64 {
	return gm.Dist(o.Pos(), []float64{x, y, z})
}

// MoveTo places the node at a new position (rounded)
func (o *Node) MoveTo(x, y, z float64) {
	o.X, o.Y, o.Z = roundCoord(x), roundCoord(y), roundCoord(z)
}

// MoveBy offsets the node position (rounded)
func (o *Node) MoveBy(dx, dy, dz float64) {
	o.MoveTo(o.X+dx, o.Y+dy, o.Z+dz)
}

// Copy duplicates the node, optionally under a new id (negative keeps
// the current one)
func (o *Node) Copy(newId int) *Node {
	dup := *o
	if newId >= 0 {
		dup.Id = newId
	}
	return &dup
}

func roundCoord(v float64) float64 {
	const s = 1e6 // 10^CoordPrec
	return math.Round(v*s) / s
}
