// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lfe

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/p-astudillo/nifes-strucs-sub001/gm"
	"github.com/p-astudillo/nifes-strucs-sub001/mdl"
)

// nu is the number of element unknowns: 2 nodes, 6 DOFs each
const nu = 12

// lineLoad is one distributed load reduced to local components; qa and
// qb are the intensities (kN/m) at the ends of the loaded span
type lineLoad struct {
	xa, xb float64    // loaded span along the member [m]
	qa, qb [3]float64 // local intensities at xa and xb
}

// pntLoad is one concentrated load reduced to local components
type pntLoad struct {
	a          float64    // position along the member [m]
	f          [3]float64 // local force components [kN]
	mt, m2, m3 float64    // torsion and bending moments [kN·m]
}

// element is one linear elastic Euler-Bernoulli beam-column with end
// releases handled by static condensation. The local system follows
// the member axes: 1 along the member, bending in the 1-2 and 1-3
// planes, torsion about 1.
type element struct {

	// definition
	frame *mdl.Frame
	axes  *gm.Axes
	l     float64 // length
	rhoA  float64 // mass per length, for self-weight [kg/m]

	// matrices
	T     [][]float64 // [nu][nu] global-to-local transformation
	Klraw [][]float64 // local stiffness before condensation
	Kl    [][]float64 // local stiffness, releases condensed
	K     [][]float64 // global stiffness, releases condensed

	// equations
	umap     []int // [nu] global equation numbers; -1 = restrained
	released []int // local DOF indices condensed out

	// per-case loads
	feqRaw []float64 // local equivalent nodal loads
	feq    []float64 // condensed equivalent nodal loads
	lines  []lineLoad
	points []pntLoad

	// per-case solution
	fl []float64 // local end forces: Kl*ue - feq
}

// newElement builds the element matrices from the member geometry and
// its material/section properties. E, G in kPa; A, I, J in m units.
func newElement(f *mdl.Frame, e, g, a, ix, iy, jt, rho float64) (o *element, err error) {

	o = &element{frame: f}
	o.axes, err = f.Axes()
	if err != nil {
		return nil, err
	}
	o.l, err = f.Length()
	if err != nil {
		return nil, err
	}
	o.rhoA = rho * a

	// global-to-local transformation: 4 diagonal blocks with the axes
	// as rows
	o.T = la.MatAlloc(nu, nu)
	for k := 0; k < 4; k++ {
		for j := 0; j < 3; j++ {
			o.T[3*k+0][3*k+j] = o.axes.A1[j]
			o.T[3*k+1][3*k+j] = o.axes.A2[j]
			o.T[3*k+2][3*k+j] = o.axes.A3[j]
		}
	}

	// local stiffness. bending in the 1-2 plane uses I3 (strong axis),
	// bending in the 1-3 plane uses I2.
	EA, GJ := e*a, g*jt
	EI3, EI2 := e*ix, e*iy
	l := o.l
	ll := l * l
	lll := l * ll
	o.Klraw = la.MatAlloc(nu, nu)
	kl := o.Klraw

	kl[0][0] = EA / l
	kl[0][6] = -EA / l

	kl[1][1] = 12.0 * EI3 / lll
	kl[1][5] = 6.0 * EI3 / ll
	kl[1][7] = -12.0 * EI3 / lll
	kl[1][11] = 6.0 * EI3 / ll

	kl[2][2] = 12.0 * EI2 / lll
	kl[2][4] = -6.0 * EI2 / ll
	kl[2][8] = -12.0 * EI2 / lll
	kl[2][10] = -6.0 * EI2 / ll

	kl[3][3] = GJ / l
	kl[3][9] = -GJ / l

	kl[4][2] = -6.0 * EI2 / ll
	kl[4][4] = 4.0 * EI2 / l
	kl[4][8] = 6.0 * EI2 / ll
	kl[4][10] = 2.0 * EI2 / l

	kl[5][1] = 6.0 * EI3 / ll
	kl[5][5] = 4.0 * EI3 / l
	kl[5][7] = -6.0 * EI3 / ll
	kl[5][11] = 2.0 * EI3 / l

	kl[6][0] = -EA / l
	kl[6][6] = EA / l

	kl[7][1] = -12.0 * EI3 / lll
	kl[7][5] = -6.0 * EI3 / ll
	kl[7][7] = 12.0 * EI3 / lll
	kl[7][11] = -6.0 * EI3 / ll

	kl[8][2] = -12.0 * EI2 / lll
	kl[8][4] = 6.0 * EI2 / ll
	kl[8][8] = 12.0 * EI2 / lll
	kl[8][10] = 6.0 * EI2 / ll

	kl[9][3] = -GJ / l
	kl[9][9] = GJ / l

	kl[10][2] = -6.0 * EI2 / ll
	kl[10][4] = 2.0 * EI2 / l
	kl[10][8] = 6.0 * EI2 / ll
	kl[10][10] = 4.0 * EI2 / l

	kl[11][1] = 6.0 * EI3 / ll
	kl[11][5] = 2.0 * EI3 / l
	kl[11][7] = -6.0 * EI3 / ll
	kl[11][11] = 4.0 * EI3 / l

	// end releases map one-to-one onto local DOF indices
	flags := f.Releases.Flags()
	for r, on := range flags {
		if on {
			o.released = append(o.released, r)
		}
	}

	// condense the stiffness alone to expose unstable release patterns
	// early; the equivalent loads are condensed per case
	o.Kl = la.MatAlloc(nu, nu)
	for i := 0; i < nu; i++ {
		copy(o.Kl[i], o.Klraw[i])
	}
	dummy := make([]float64, nu)
	if err = condense(o.Kl, dummy, o.released); err != nil {
		return nil, chk.Err("frame %d: %v", f.Id, err)
	}

	// global stiffness: K = trans(T) * Kl * T
	o.K = la.MatAlloc(nu, nu)
	la.MatTrMul3(o.K, 1, o.T, o.Kl, o.T)

	o.feqRaw = make([]float64, nu)
	o.feq = make([]float64, nu)
	o.fl = make([]float64, nu)
	return
}

// condense eliminates the released DOFs from K and f in place by
// static condensation. Released rows and columns end up zeroed, so the
// element transmits no force through them.
func condense(K [][]float64, f []float64, released []int) error {
	maxdiag := 0.0
	for i := 0; i < nu; i++ {
		if d := math.Abs(K[i][i]); d > maxdiag {
			maxdiag = d
		}
	}
	for _, r := range released {
		pivot := K[r][r]
		if math.Abs(pivot) < 1e-12*maxdiag {
			return chk.Err("unstable end-release pattern (local DOF %d)", r)
		}
		for i := 0; i < nu; i++ {
			if i == r {
				continue
			}
			c := K[i][r] / pivot
			if c == 0 && f[r] == 0 {
				continue
			}
			for j := 0; j < nu; j++ {
				if j != r {
					K[i][j] -= c * K[r][j]
				}
			}
			f[i] -= c * f[r]
		}
		for i := 0; i < nu; i++ {
			K[i][r], K[r][i] = 0, 0
		}
		f[r] = 0
	}
	return nil
}

// clearLoads resets the per-case load state
func (o *element) clearLoads() {
	for i := 0; i < nu; i++ {
		o.feqRaw[i] = 0
		o.feq[i] = 0
		o.fl[i] = 0
	}
	o.lines = o.lines[:0]
	o.points = o.points[:0]
}

// hermite evaluates the cubic beam shape functions at x
func (o *element) hermite(x float64) (n1, n2, n3, n4 float64) {
	q := x / o.l
	n1 = 1.0 - 3.0*q*q + 2.0*q*q*q
	n2 = x * (1.0 - q) * (1.0 - q)
	n3 = 3.0*q*q - 2.0*q*q*q
	n4 = x * q * (q - 1.0)
	return
}

// hermiteDx evaluates the shape function derivatives at x
func (o *element) hermiteDx(x float64) (d1, d2, d3, d4 float64) {
	q := x / o.l
	d1 = (6.0*q*q - 6.0*q) / o.l
	d2 = 1.0 - 4.0*q + 3.0*q*q
	d3 = (6.0*q - 6.0*q*q) / o.l
	d4 = 3.0*q*q - 2.0*q
	return
}

// gauss3 integrates fcn over [a,b] with 3-point Gauss-Legendre
// quadrature, exact for polynomials up to degree 5
func gauss3(a, b float64, fcn func(x float64) float64) float64 {
	if b <= a {
		return 0
	}
	c, h := (a+b)/2.0, (b-a)/2.0
	p := math.Sqrt(3.0 / 5.0)
	return h * (5.0*fcn(c-h*p) + 8.0*fcn(c) + 5.0*fcn(c+h*p)) / 9.0
}

// addLine accumulates a distributed load into the equivalent nodal
// loads and keeps it for internal force recovery
func (o *element) addLine(ld lineLoad) {
	o.lines = append(o.lines, ld)
	span := ld.xb - ld.xa
	if span <= 0 {
		return
	}
	q := func(dim int) func(x float64) float64 {
		return func(x float64) float64 {
			return ld.qa[dim] + (ld.qb[dim]-ld.qa[dim])*(x-ld.xa)/span
		}
	}
	q1, q2, q3 := q(0), q(1), q(2)
	f := o.feqRaw

	// axial: linear shape functions
	f[0] += gauss3(ld.xa, ld.xb, func(x float64) float64 { return q1(x) * (1.0 - x/o.l) })
	f[6] += gauss3(ld.xa, ld.xb, func(x float64) float64 { return q1(x) * x / o.l })

	// bending in the 1-2 plane
	f[1] += gauss3(ld.xa, ld.xb, func(x float64) float64 { n1, _, _, _ := o.hermite(x); return q2(x) * n1 })
	f[5] += gauss3(ld.xa, ld.xb, func(x float64) float64 { _, n2, _, _ := o.hermite(x); return q2(x) * n2 })
	f[7] += gauss3(ld.xa, ld.xb, func(x float64) float64 { _, _, n3, _ := o.hermite(x); return q2(x) * n3 })
	f[11] += gauss3(ld.xa, ld.xb, func(x float64) float64 { _, _, _, n4 := o.hermite(x); return q2(x) * n4 })

	// bending in the 1-3 plane: rotation about axis 2 couples with the
	// opposite sign
	f[2] += gauss3(ld.xa, ld.xb, func(x float64) float64 { n1, _, _, _ := o.hermite(x); return q3(x) * n1 })
	f[4] -= gauss3(ld.xa, ld.xb, func(x float64) float64 { _, n2, _, _ := o.hermite(x); return q3(x) * n2 })
	f[8] += gauss3(ld.xa, ld.xb, func(x float64) float64 { _, _, n3, _ := o.hermite(x); return q3(x) * n3 })
	f[10] -= gauss3(ld.xa, ld.xb, func(x float64) float64 { _, _, _, n4 := o.hermite(x); return q3(x) * n4 })
}

// addPoint accumulates a concentrated load into the equivalent nodal
// loads and keeps it for internal force recovery
func (o *element) addPoint(ld pntLoad) {
	o.points = append(o.points, ld)
	q := ld.a / o.l
	n1, n2, n3, n4 := o.hermite(ld.a)
	d1, d2, d3, d4 := o.hermiteDx(ld.a)
	f := o.feqRaw

	// axial and torsion: linear interpolation to the nodes
	f[0] += ld.f[0] * (1.0 - q)
	f[6] += ld.f[0] * q
	f[3] += ld.mt * (1.0 - q)
	f[9] += ld.mt * q

	// force and moment in the 1-2 plane
	f[1] += ld.f[1]*n1 + ld.m3*d1
	f[5] += ld.f[1]*n2 + ld.m3*d2
	f[7] += ld.f[1]*n3 + ld.m3*d3
	f[11] += ld.f[1]*n4 + ld.m3*d4

	// force and moment in the 1-3 plane
	f[2] += ld.f[2]*n1 - ld.m2*d1
	f[4] += -ld.f[2]*n2 + ld.m2*d2
	f[8] += ld.f[2]*n3 - ld.m2*d3
	f[10] += -ld.f[2]*n4 + ld.m2*d4
}

// condenseLoads reduces the accumulated equivalent loads through the
// released DOFs, redoing the joint condensation with the raw stiffness
func (o *element) condenseLoads() error {
	K := la.MatAlloc(nu, nu)
	for i := 0; i < nu; i++ {
		copy(K[i], o.Klraw[i])
		o.feq[i] = o.feqRaw[i]
	}
	return condense(K, o.feq, o.released)
}

// endForces computes the local end forces from the global element
// displacements: fl = Kl*T*ue - feq
func (o *element) endForces(ueGlobal []float64) {
	uel := make([]float64, nu)
	la.MatVecMul(uel, 1, o.T, ueGlobal)
	la.MatVecMul(o.fl, 1, o.Kl, uel)
	for i := 0; i < nu; i++ {
		o.fl[i] -= o.feq[i]
	}
}

// globalForces returns the element nodal forces in global coordinates:
// trans(T) * fl
func (o *element) globalForces() []float64 {
	fg := make([]float64, nu)
	la.MatTrVecMulAdd(fg, 1, o.T, o.fl)
	return fg
}

// lineInt0 returns the resultant of the q[dim] line loads over [0,x]
func (o *element) lineInt0(dim int, x float64) (res float64) {
	for _, ld := range o.lines {
		span := ld.xb - ld.xa
		if span <= 0 || x <= ld.xa {
			continue
		}
		d := math.Min(x, ld.xb) - ld.xa
		k := (ld.qb[dim] - ld.qa[dim]) / span
		res += ld.qa[dim]*d + k*d*d/2.0
	}
	return
}

// lineInt1 returns the moment of the q[dim] line loads over [0,x]
// about the station x
func (o *element) lineInt1(dim int, x float64) (res float64) {
	for _, ld := range o.lines {
		span := ld.xb - ld.xa
		if span <= 0 || x <= ld.xa {
			continue
		}
		d := math.Min(x, ld.xb) - ld.xa
		k := (ld.qb[dim] - ld.qa[dim]) / span
		c := x - ld.xa
		res += ld.qa[dim]*(c*d-d*d/2.0) + k*(c*d*d/2.0-d*d*d/3.0)
	}
	return
}

// stationForces recovers the internal forces at distance x from the i
// end by equilibrium of the segment [0,x]. Axial force is positive in
// tension; both bending moments are sagging-positive, so dM/dx = V in
// both planes.
func (o *element) stationForces(x float64) (p, v2, v3, t, m2, m3 float64) {

	p = -(o.fl[0] + o.lineInt0(0, x))
	v2 = o.fl[1] + o.lineInt0(1, x)
	v3 = o.fl[2] + o.lineInt0(2, x)
	t = -o.fl[3]
	m3 = -o.fl[5] + x*o.fl[1] + o.lineInt1(1, x)
	m2 = o.fl[4] + x*o.fl[2] + o.lineInt1(2, x)

	for _, ld := range o.points {
		if ld.a >= x {
			continue
		}
		p -= ld.f[0]
		v2 += ld.f[1]
		v3 += ld.f[2]
		t -= ld.mt
		m3 += (x-ld.a)*ld.f[1] - ld.m3
		m2 += (x-ld.a)*ld.f[2] + ld.m2
	}
	return
}
