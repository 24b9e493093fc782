// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sec implements the section property engine: parametric
// cross-section shapes, derived elastic/plastic properties, and the
// section database.
package sec

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Shape kind literals. These are persisted in section records and must
// not change.
const (
	KindRectangle = "rectangle"
	KindBox       = "box"
	KindCircle    = "circle"
	KindPipe      = "pipe"
	KindIBeam     = "I-beam"
	KindChannel   = "channel"
	KindAngle     = "angle"
	KindTBeam     = "T-beam"
)

// Shape is a parametric cross-section outline. The variant set is
// closed: the eight kinds above, no user-registered shapes.
//
// Conventions: x is the strong bending axis, y the weak one; all
// dimensions in metres. Properties are only meaningful after Validate
// returns nil.
type Shape interface {
	Kind() string              // kind literal
	Dims() map[string]float64  // dimension name -> value
	Validate() error           // dimension sanity
	A() float64                // area
	Ix() float64               // second moment about x
	Iy() float64               // second moment about y
	J() float64                // torsional constant
	Zx() float64               // plastic modulus about x
	Zy() float64               // plastic modulus about y
	Cx() float64               // distance to extreme fibre from x axis
	Cy() float64               // distance to extreme fibre from y axis
}

func positive(v float64, name string) error {
	if v <= 0 {
		return chk.Err("%s must be positive, got %v", name, v)
	}
	return nil
}

func thinEnough(t, outer float64, name string) error {
	if t >= outer/2.0 {
		return chk.Err("thickness %s (%v) must be less than half of outer dimension (%v)", name, t, outer/2.0)
	}
	return nil
}

// Rect is a solid rectangle: width B (weak direction), height H
// (strong direction)
type Rect struct {
	B float64 // width
	H float64 // height
}

func (o Rect) Kind() string              { return KindRectangle }
func (o Rect) Dims() map[string]float64  { return map[string]float64{"B": o.B, "H": o.H} }
func (o Rect) A() float64                { return o.B * o.H }
func (o Rect) Ix() float64               { return o.B * o.H * o.H * o.H / 12.0 }
func (o Rect) Iy() float64               { return o.H * o.B * o.B * o.B / 12.0 }
func (o Rect) Zx() float64               { return o.B * o.H * o.H / 4.0 }
func (o Rect) Zy() float64               { return o.H * o.B * o.B / 4.0 }
func (o Rect) Cx() float64               { return o.H / 2.0 }
func (o Rect) Cy() float64               { return o.B / 2.0 }

func (o Rect) Validate() error {
	if err := positive(o.B, "B (width)"); err != nil {
		return err
	}
	return positive(o.H, "H (height)")
}

// J uses the membrane-analogy fit for solid rectangles:
// J = a·b³/3 · (1 − 0.63·b/a) with a ≥ b
func (o Rect) J() float64 {
	a, b := math.Max(o.B, o.H), math.Min(o.B, o.H)
	if a == 0 {
		return 0
	}
	return b * b * b * a / 3.0 * (1.0 - 0.63*b/a)
}

// Box is a hollow rectangle with uniform wall thickness T
type Box struct {
	B float64 // outer width
	H float64 // outer height
	T float64 // wall thickness
}

func (o Box) Kind() string             { return KindBox }
func (o Box) Dims() map[string]float64 { return map[string]float64{"B": o.B, "H": o.H, "t": o.T} }
func (o Box) bi() float64              { return o.B - 2.0*o.T }
func (o Box) hi() float64              { return o.H - 2.0*o.T }
func (o Box) A() float64               { return o.B*o.H - o.bi()*o.hi() }
func (o Box) Ix() float64              { return (o.B*o.H*o.H*o.H - o.bi()*o.hi()*o.hi()*o.hi()) / 12.0 }
func (o Box) Iy() float64              { return (o.H*o.B*o.B*o.B - o.hi()*o.bi()*o.bi()*o.bi()) / 12.0 }
func (o Box) Zx() float64              { return (o.B*o.H*o.H - o.bi()*o.hi()*o.hi()) / 4.0 }
func (o Box) Zy() float64              { return (o.H*o.B*o.B - o.hi()*o.bi()*o.bi()) / 4.0 }
func (o Box) Cx() float64              { return o.H / 2.0 }
func (o Box) Cy() float64              { return o.B / 2.0 }

func (o Box) Validate() error {
	if err := positive(o.B, "B (width)"); err != nil {
		return err
	}
	if err := positive(o.H, "H (height)"); err != nil {
		return err
	}
	if err := positive(o.T, "t (thickness)"); err != nil {
		return err
	}
	return thinEnough(o.T, math.Min(o.B, o.H), "t")
}

// J for a single-cell closed section: 4·Am²·t / pm with mean wall
// dimensions
func (o Box) J() float64 {
	bm, hm := o.B-o.T, o.H-o.T
	pm := 2.0 * (bm + hm)
	if pm == 0 {
		return 0
	}
	am := bm * hm
	return 4.0 * am * am * o.T / pm
}

// Circle is a solid circular section of diameter D
type Circle struct {
	D float64 // diameter
}

func (o Circle) Kind() string             { return KindCircle }
func (o Circle) Dims() map[string]float64 { return map[string]float64{"D": o.D} }
func (o Circle) Validate() error          { return positive(o.D, "D (diameter)") }
func (o Circle) A() float64               { return math.Pi * o.D * o.D / 4.0 }
func (o Circle) Ix() float64              { return math.Pi * math.Pow(o.D, 4) / 64.0 }
func (o Circle) Iy() float64              { return o.Ix() }
func (o Circle) J() float64               { return math.Pi * math.Pow(o.D, 4) / 32.0 }
func (o Circle) Zx() float64              { return o.D * o.D * o.D / 6.0 }
func (o Circle) Zy() float64              { return o.Zx() }
func (o Circle) Cx() float64              { return o.D / 2.0 }
func (o Circle) Cy() float64              { return o.D / 2.0 }

// Pipe is a hollow circular section: outer diameter D, wall thickness T
type Pipe struct {
	D float64 // outer diameter
	T float64 // wall thickness
}

func (o Pipe) Kind() string             { return KindPipe }
func (o Pipe) Dims() map[string]float64 { return map[string]float64{"D": o.D, "t": o.T} }
func (o Pipe) di() float64              { return o.D - 2.0*o.T }
func (o Pipe) A() float64               { return math.Pi * (o.D*o.D - o.di()*o.di()) / 4.0 }
func (o Pipe) Ix() float64              { return math.Pi * (math.Pow(o.D, 4) - math.Pow(o.di(), 4)) / 64.0 }
func (o Pipe) Iy() float64              { return o.Ix() }
func (o Pipe) J() float64               { return math.Pi * (math.Pow(o.D, 4) - math.Pow(o.di(), 4)) / 32.0 }
func (o Pipe) Zx() float64              { return (math.Pow(o.D, 3) - math.Pow(o.di(), 3)) / 6.0 }
func (o Pipe) Zy() float64              { return o.Zx() }
func (o Pipe) Cx() float64              { return o.D / 2.0 }
func (o Pipe) Cy() float64              { return o.D / 2.0 }

func (o Pipe) Validate() error {
	if err := positive(o.D, "D (diameter)"); err != nil {
		return err
	}
	if err := positive(o.T, "t (thickness)"); err != nil {
		return err
	}
	return thinEnough(o.T, o.D, "t")
}

// IBeam is a doubly-symmetric wide-flange section
type IBeam struct {
	D  float64 // total depth
	Bf float64 // flange width
	Tf float64 // flange thickness
	Tw float64 // web thickness
}

func (o IBeam) Kind() string { return KindIBeam }
func (o IBeam) Dims() map[string]float64 {
	return map[string]float64{"d": o.D, "bf": o.Bf, "tf": o.Tf, "tw": o.Tw}
}
func (o IBeam) hw() float64 { return o.D - 2.0*o.Tf }
func (o IBeam) A() float64  { return 2.0*o.Bf*o.Tf + o.hw()*o.Tw }
func (o IBeam) Ix() float64 {
	return (o.Bf*math.Pow(o.D, 3) - (o.Bf-o.Tw)*math.Pow(o.hw(), 3)) / 12.0
}
func (o IBeam) Iy() float64 { return (2.0*o.Tf*math.Pow(o.Bf, 3) + o.hw()*math.Pow(o.Tw, 3)) / 12.0 }
func (o IBeam) J() float64  { return (2.0*o.Bf*math.Pow(o.Tf, 3) + o.hw()*math.Pow(o.Tw, 3)) / 3.0 }
func (o IBeam) Zx() float64 { return o.Bf*o.Tf*(o.D-o.Tf) + o.Tw*o.hw()*o.hw()/4.0 }
func (o IBeam) Zy() float64 { return o.Tf*o.Bf*o.Bf/2.0 + o.hw()*o.Tw*o.Tw/4.0 }
func (o IBeam) Cx() float64 { return o.D / 2.0 }
func (o IBeam) Cy() float64 { return o.Bf / 2.0 }

func (o IBeam) Validate() error {
	if err := positive(o.D, "d (depth)"); err != nil {
		return err
	}
	if err := positive(o.Bf, "bf (flange width)"); err != nil {
		return err
	}
	if err := positive(o.Tf, "tf (flange thickness)"); err != nil {
		return err
	}
	if err := positive(o.Tw, "tw (web thickness)"); err != nil {
		return err
	}
	if o.hw() <= 0 {
		return chk.Err("web height (d - 2*tf = %v) must be positive", o.hw())
	}
	if o.Tw >= o.Bf {
		return chk.Err("web thickness (%v) should be less than flange width (%v)", o.Tw, o.Bf)
	}
	return nil
}

// Channel is a C-shaped section; the weak axis passes through the
// centroid, not the mid-width
type Channel struct {
	D  float64 // total depth
	Bf float64 // flange width
	Tf float64 // flange thickness
	Tw float64 // web thickness
}

func (o Channel) Kind() string { return KindChannel }
func (o Channel) Dims() map[string]float64 {
	return map[string]float64{"d": o.D, "bf": o.Bf, "tf": o.Tf, "tw": o.Tw}
}
func (o Channel) hw() float64 { return o.D - 2.0*o.Tf }
func (o Channel) A() float64  { return o.hw()*o.Tw + 2.0*o.Bf*o.Tf }

// xc is the centroid offset from the back of the web
func (o Channel) xc() float64 {
	aw, xw := o.hw()*o.Tw, o.Tw/2.0
	af, xf := 2.0*o.Bf*o.Tf, o.Bf/2.0
	return (aw*xw + af*xf) / (aw + af)
}

func (o Channel) Ix() float64 {
	web := o.Tw * math.Pow(o.hw(), 3) / 12.0
	af := o.Bf * o.Tf
	df := (o.D - o.Tf) / 2.0
	return web + 2.0*(o.Bf*math.Pow(o.Tf, 3)/12.0+af*df*df)
}

func (o Channel) Iy() float64 {
	xc := o.xc()
	aw, xw := o.hw()*o.Tw, o.Tw/2.0
	web := o.hw()*math.Pow(o.Tw, 3)/12.0 + aw*(xc-xw)*(xc-xw)
	af, xf := o.Bf*o.Tf, o.Bf/2.0
	fla := 2.0 * (o.Tf*math.Pow(o.Bf, 3)/12.0 + af*(xc-xf)*(xc-xf))
	return web + fla
}

func (o Channel) J() float64  { return (2.0*o.Bf*math.Pow(o.Tf, 3) + o.hw()*math.Pow(o.Tw, 3)) / 3.0 }
func (o Channel) Zx() float64 { return o.Bf*o.Tf*(o.D-o.Tf) + o.Tw*o.hw()*o.hw()/4.0 }
func (o Channel) Zy() float64 { return 1.5 * o.Iy() / o.Cy() }
func (o Channel) Cx() float64 { return o.D / 2.0 }
func (o Channel) CyVals() (xc, c float64) {
	xc = o.xc()
	return xc, math.Max(xc, o.Bf-xc)
}
func (o Channel) Cy() float64 {
	_, c := o.CyVals()
	return c
}

func (o Channel) Validate() error {
	if err := positive(o.D, "d (depth)"); err != nil {
		return err
	}
	if err := positive(o.Bf, "bf (flange width)"); err != nil {
		return err
	}
	if err := positive(o.Tf, "tf (flange thickness)"); err != nil {
		return err
	}
	if err := positive(o.Tw, "tw (web thickness)"); err != nil {
		return err
	}
	if o.hw() <= 0 {
		return chk.Err("web height (d - 2*tf = %v) must be positive", o.hw())
	}
	if o.Tw >= o.Bf {
		return chk.Err("web thickness (%v) should be less than flange width (%v)", o.Tw, o.Bf)
	}
	return nil
}

// Angle is a single L-shaped section with legs L1 (vertical) and L2
// (horizontal) of uniform thickness T. Properties are about the
// centroidal axes.
type Angle struct {
	L1 float64 // vertical leg
	L2 float64 // horizontal leg
	T  float64 // thickness
}

func (o Angle) Kind() string { return KindAngle }
func (o Angle) Dims() map[string]float64 {
	return map[string]float64{"L1": o.L1, "L2": o.L2, "t": o.T}
}
func (o Angle) A() float64 { return o.T * (o.L1 + o.L2 - o.T) }

// centroid from the heel corner; the horizontal leg is the full L2 x T
// strip, the vertical leg excludes the overlap
func (o Angle) centroid() (xc, yc float64) {
	a1 := o.L2 * o.T
	x1, y1 := o.L2/2.0, o.T/2.0
	a2 := (o.L1 - o.T) * o.T
	x2, y2 := o.T/2.0, o.T+(o.L1-o.T)/2.0
	xc = (a1*x1 + a2*x2) / (a1 + a2)
	yc = (a1*y1 + a2*y2) / (a1 + a2)
	return
}

func (o Angle) Ix() float64 {
	_, yc := o.centroid()
	a1, y1 := o.L2*o.T, o.T/2.0
	i1 := o.L2*math.Pow(o.T, 3)/12.0 + a1*(yc-y1)*(yc-y1)
	h2 := o.L1 - o.T
	a2, y2 := h2*o.T, o.T+h2/2.0
	i2 := o.T*math.Pow(h2, 3)/12.0 + a2*(yc-y2)*(yc-y2)
	return i1 + i2
}

func (o Angle) Iy() float64 {
	xc, _ := o.centroid()
	a1, x1 := o.L2*o.T, o.L2/2.0
	i1 := o.T*math.Pow(o.L2, 3)/12.0 + a1*(xc-x1)*(xc-x1)
	h2 := o.L1 - o.T
	a2, x2 := h2*o.T, o.T/2.0
	i2 := h2*math.Pow(o.T, 3)/12.0 + a2*(xc-x2)*(xc-x2)
	return i1 + i2
}

func (o Angle) J() float64 { return (o.L1 + o.L2 - o.T) * math.Pow(o.T, 3) / 3.0 }
func (o Angle) Cx() float64 {
	_, yc := o.centroid()
	return math.Max(yc, o.L1-yc)
}
func (o Angle) Cy() float64 {
	xc, _ := o.centroid()
	return math.Max(xc, o.L2-xc)
}
func (o Angle) Zx() float64 { return 1.5 * o.Ix() / o.Cx() }
func (o Angle) Zy() float64 { return 1.5 * o.Iy() / o.Cy() }

func (o Angle) Validate() error {
	if err := positive(o.L1, "L1 (vertical leg)"); err != nil {
		return err
	}
	if err := positive(o.L2, "L2 (horizontal leg)"); err != nil {
		return err
	}
	if err := positive(o.T, "t (thickness)"); err != nil {
		return err
	}
	if o.T >= o.L1 {
		return chk.Err("thickness (%v) must be less than L1 (%v)", o.T, o.L1)
	}
	if o.T >= o.L2 {
		return chk.Err("thickness (%v) must be less than L2 (%v)", o.T, o.L2)
	}
	return nil
}

// TBeam is a tee section: flange on top, stem below. The strong axis
// passes through the centroid.
type TBeam struct {
	D  float64 // total depth
	Bf float64 // flange width
	Tf float64 // flange thickness
	Tw float64 // stem thickness
}

func (o TBeam) Kind() string { return KindTBeam }
func (o TBeam) Dims() map[string]float64 {
	return map[string]float64{"d": o.D, "bf": o.Bf, "tf": o.Tf, "tw": o.Tw}
}
func (o TBeam) hs() float64 { return o.D - o.Tf }
func (o TBeam) A() float64  { return o.Bf*o.Tf + o.hs()*o.Tw }

// yc measured from the bottom of the stem
func (o TBeam) yc() float64 {
	af, yf := o.Bf*o.Tf, o.D-o.Tf/2.0
	as, ys := o.hs()*o.Tw, o.hs()/2.0
	return (af*yf + as*ys) / (af + as)
}

func (o TBeam) Ix() float64 {
	yc := o.yc()
	af, yf := o.Bf*o.Tf, o.D-o.Tf/2.0
	ifl := o.Bf*math.Pow(o.Tf, 3)/12.0 + af*(yc-yf)*(yc-yf)
	as, ys := o.hs()*o.Tw, o.hs()/2.0
	ist := o.Tw*math.Pow(o.hs(), 3)/12.0 + as*(yc-ys)*(yc-ys)
	return ifl + ist
}

func (o TBeam) Iy() float64 { return (o.Tf*math.Pow(o.Bf, 3) + o.hs()*math.Pow(o.Tw, 3)) / 12.0 }
func (o TBeam) J() float64  { return (o.Bf*math.Pow(o.Tf, 3) + o.hs()*math.Pow(o.Tw, 3)) / 3.0 }
func (o TBeam) Cx() float64 {
	yc := o.yc()
	return math.Max(yc, o.D-yc)
}
func (o TBeam) Cy() float64 { return o.Bf / 2.0 }
func (o TBeam) Zx() float64 { return 1.3 * o.Ix() / o.Cx() }
func (o TBeam) Zy() float64 { return o.Tf*o.Bf*o.Bf/4.0 + o.hs()*o.Tw*o.Tw/4.0 }

func (o TBeam) Validate() error {
	if err := positive(o.D, "d (depth)"); err != nil {
		return err
	}
	if err := positive(o.Bf, "bf (flange width)"); err != nil {
		return err
	}
	if err := positive(o.Tf, "tf (flange thickness)"); err != nil {
		return err
	}
	if err := positive(o.Tw, "tw (stem thickness)"); err != nil {
		return err
	}
	if o.hs() <= 0 {
		return chk.Err("stem height (d - tf = %v) must be positive", o.hs())
	}
	if o.Tw >= o.Bf {
		return chk.Err("stem thickness (%v) should be less than flange width (%v)", o.Tw, o.Bf)
	}
	return nil
}
