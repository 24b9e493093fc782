// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gm implements the geometry kernel: member local coordinate
// systems, vector rotation, and small point helpers.
package gm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// ZeroLenTol is the tolerance below which a member is considered degenerate
const ZeroLenTol = 1e-9

// Axes holds the orthonormal local coordinate system of a member
//
//	A1 -- longitudinal axis, from start node to end node
//	A2 -- first transverse axis (web direction for typical sections)
//	A3 -- second transverse axis; A3 := A1 cross A2
//
type Axes struct {
	A1 []float64 // [3] longitudinal unit vector
	A2 []float64 // [3] transverse unit vector
	A3 []float64 // [3] transverse unit vector
}

// NewAxes computes the local axes of a member going from xi to xj,
// with an optional rotation [rad] about the longitudinal axis.
//
// For non-vertical members A2 is horizontal and perpendicular to the
// member (pointing to the left when walking from i to j); for vertical
// members A2 is seeded from global X. Returns an error if the member
// is shorter than ZeroLenTol.
func NewAxes(xi, xj []float64, rot float64) (o *Axes, err error) {

	// longitudinal direction
	d := []float64{xj[0] - xi[0], xj[1] - xi[1], xj[2] - xi[2]}
	l := math.Sqrt(utl.Dot3d(d, d))
	if l < ZeroLenTol {
		err = chk.Err("cannot compute local axes: member from (%g,%g,%g) to (%g,%g,%g) has zero length", xi[0], xi[1], xi[2], xj[0], xj[1], xj[2])
		return
	}
	o = new(Axes)
	o.A1 = []float64{d[0] / l, d[1] / l, d[2] / l}
	o.A2 = make([]float64, 3)
	o.A3 = make([]float64, 3)

	// transverse directions
	h := math.Sqrt(d[0]*d[0] + d[1]*d[1])
	if h < ZeroLenTol { // vertical member: seed from global X
		seed := []float64{1, 0, 0}
		utl.Cross3d(o.A3, o.A1, seed) // A3 := A1 cross seed
		normalize(o.A3)
		utl.Cross3d(o.A2, o.A3, o.A1) // A2 := A3 cross A1
		normalize(o.A2)
	} else {
		o.A2[0], o.A2[1], o.A2[2] = -d[1]/h, d[0]/h, 0
		utl.Cross3d(o.A3, o.A1, o.A2) // A3 := A1 cross A2
		normalize(o.A3)
	}

	// rotation about the longitudinal axis
	if rot != 0 {
		o.A2 = RotateAbout(o.A2, o.A1, rot)
		o.A3 = RotateAbout(o.A3, o.A1, rot)
	}
	return
}

// Matrix returns the 3x3 rotation matrix with A1, A2, A3 as rows;
// multiplying a global vector by it yields local components.
func (o *Axes) Matrix() (R [][]float64) {
	return [][]float64{
		{o.A1[0], o.A1[1], o.A1[2]},
		{o.A2[0], o.A2[1], o.A2[2]},
		{o.A3[0], o.A3[1], o.A3[2]},
	}
}

// ToLocal converts a global vector to local components
func (o *Axes) ToLocal(vg []float64) (vl []float64) {
	return []float64{utl.Dot3d(o.A1, vg), utl.Dot3d(o.A2, vg), utl.Dot3d(o.A3, vg)}
}

// ToGlobal converts a local vector to global components
func (o *Axes) ToGlobal(vl []float64) (vg []float64) {
	vg = make([]float64, 3)
	for i := 0; i < 3; i++ {
		vg[i] = o.A1[i]*vl[0] + o.A2[i]*vl[1] + o.A3[i]*vl[2]
	}
	return
}

// RotateAbout rotates v about the unit vector axis by ang [rad]
// (Rodrigues' formula)
func RotateAbout(v, axis []float64, ang float64) (w []float64) {
	c, s := math.Cos(ang), math.Sin(ang)
	axv := make([]float64, 3)
	utl.Cross3d(axv, axis, v) // axv := axis cross v
	add := utl.Dot3d(axis, v) * (1.0 - c)
	w = make([]float64, 3)
	for i := 0; i < 3; i++ {
		w[i] = v[i]*c + axv[i]*s + axis[i]*add
	}
	return
}

// Dist returns the distance between two points
func Dist(a, b []float64) float64 {
	d := []float64{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	return math.Sqrt(utl.Dot3d(d, d))
}

// Midpoint returns the point halfway between a and b
func Midpoint(a, b []float64) []float64 {
	return []float64{(a[0] + b[0]) / 2.0, (a[1] + b[1]) / 2.0, (a[2] + b[2]) / 2.0}
}

// PointAt returns the point at fraction t along the segment from a to b
func PointAt(a, b []float64, t float64) []float64 {
	return []float64{a[0] + t*(b[0]-a[0]), a[1] + t*(b[1]-a[1]), a[2] + t*(b[2]-a[2])}
}

func normalize(v []float64) {
	l := math.Sqrt(utl.Dot3d(v, v))
	for i := 0; i < 3; i++ {
		v[i] /= l
	}
}
