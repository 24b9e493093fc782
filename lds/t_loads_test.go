// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lds

import (
	"encoding/json"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_dist01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dist01. intensity interpolation")

	// trapezoid 10 -> 20 over the full length
	w := Trapezoidal(1, "Dead", 10, 20, DirGravity)
	if err := w.Validate(); err != nil {
		tst.Errorf("validate failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "w(0)  ", 1e-17, w.IntensityAt(0.0), 10.0)
	chk.Scalar(tst, "w(0.5)", 1e-17, w.IntensityAt(0.5), 15.0)
	chk.Scalar(tst, "w(1)  ", 1e-17, w.IntensityAt(1.0), 20.0)
	chk.Scalar(tst, "avg   ", 1e-17, w.AvgIntensity(), 15.0)
	if w.IsUniform() || !w.IsFullLength() {
		tst.Errorf("classification is wrong\n")
	}

	// partial uniform load is zero outside its range
	p := PartialUniform(1, "Dead", 5, 0.25, 0.75, DirLocalY)
	chk.Scalar(tst, "partial w(0.1) ", 1e-17, p.IntensityAt(0.1), 0.0)
	chk.Scalar(tst, "partial w(0.5) ", 1e-17, p.IntensityAt(0.5), 5.0)
	chk.Scalar(tst, "partial w(0.9) ", 1e-17, p.IntensityAt(0.9), 0.0)

	// triangular loads peak at the right end
	asc := Triangular(1, "Dead", 8, DirGravity, true)
	des := Triangular(1, "Dead", 8, DirGravity, false)
	chk.Scalar(tst, "asc w(1)", 1e-17, asc.IntensityAt(1.0), 8.0)
	chk.Scalar(tst, "asc w(0)", 1e-17, asc.IntensityAt(0.0), 0.0)
	chk.Scalar(tst, "des w(0)", 1e-17, des.IntensityAt(0.0), 8.0)
}

func Test_dist02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dist02. invalid ranges and directions")

	bad := []*DistLoad{
		{FrameId: 1, Case: "Dead", Dir: DirGravity, La: -0.1, Lb: 1},
		{FrameId: 1, Case: "Dead", Dir: DirGravity, La: 0, Lb: 1.1},
		{FrameId: 1, Case: "Dead", Dir: DirGravity, La: 0.6, Lb: 0.4},
		{FrameId: 1, Case: "Dead", Dir: "Sideways", La: 0, Lb: 1},
	}
	for i, w := range bad {
		if err := w.Validate(); err == nil {
			tst.Errorf("load %d must be rejected\n", i)
			return
		} else {
			io.Pfgrey("%d rejected: %v\n", i, err)
		}
	}

	pl := &PointLoad{FrameId: 1, Case: "Dead", Loc: 1.5, P: 10, Dir: DirGravity}
	if err := pl.Validate(); err == nil {
		tst.Errorf("out-of-range point load must be rejected\n")
	}
	mid := Midspan(1, "Dead", 10, DirGravity)
	if !mid.IsAtMidpoint() || mid.IsAtStart() || mid.IsAtEnd() {
		tst.Errorf("midspan classification is wrong\n")
	}
}

func Test_dist03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dist03. persisted defaults for partial records")

	// omitted end intensity, end location and direction: uniform
	// gravity load over the full length
	var w DistLoad
	err := json.Unmarshal([]byte(`{"frame_id":1,"load_case":"Dead","w_start":10}`), &w)
	if err != nil {
		tst.Errorf("unmarshal failed: %v\n", err)
		return
	}
	chk.StrAssert(w.Dir, DirGravity)
	chk.Scalar(tst, "Wb defaults to Wa", 1e-17, w.Wb, 10.0)
	chk.Scalar(tst, "Lb defaults to 1", 1e-17, w.Lb, 1.0)
	chk.Scalar(tst, "w(0.5)", 1e-17, w.IntensityAt(0.5), 10.0)
	if err := w.Validate(); err != nil {
		tst.Errorf("defaulted load must be valid: %v\n", err)
		return
	}

	// an explicit zero end intensity is not the same as an omitted one
	var tri DistLoad
	err = json.Unmarshal([]byte(`{"frame_id":1,"load_case":"Dead","w_start":10,"w_end":0}`), &tri)
	if err != nil {
		tst.Errorf("unmarshal failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "explicit Wb", 1e-17, tri.Wb, 0.0)
	chk.Scalar(tst, "tri w(0.5)", 1e-17, tri.IntensityAt(0.5), 5.0)

	// fully specified records pass through untouched
	var part DistLoad
	err = json.Unmarshal([]byte(`{"frame_id":2,"load_case":"Live","direction":"Local Y","w_start":3,"w_end":6,"start_loc":0.2,"end_loc":0.8}`), &part)
	if err != nil {
		tst.Errorf("unmarshal failed: %v\n", err)
		return
	}
	chk.StrAssert(part.Dir, DirLocalY)
	chk.Scalar(tst, "part Wb", 1e-17, part.Wb, 6.0)
	chk.Scalar(tst, "part La", 1e-17, part.La, 0.2)
	chk.Scalar(tst, "part Lb", 1e-17, part.Lb, 0.8)

	// point loads default to gravity as well
	var pl PointLoad
	err = json.Unmarshal([]byte(`{"frame_id":1,"load_case":"Live","location":0.5,"P":10}`), &pl)
	if err != nil {
		tst.Errorf("unmarshal failed: %v\n", err)
		return
	}
	chk.StrAssert(pl.Dir, DirGravity)
	io.Pforan("defaulted: %+v\n", w)
}

func Test_set01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("set01. cases own their loads")

	s := NewSet()
	dead, _ := NewCase("Dead", CaseDead)
	dead.SelfWgt = 1.0
	live, _ := NewCase("Live", CaseLive)
	if err := s.AddCase(dead); err != nil {
		tst.Errorf("AddCase failed: %v\n", err)
		return
	}
	s.AddCase(live)
	if err := s.AddCase(&Case{Name: "Dead"}); err == nil {
		tst.Errorf("duplicate case name must be rejected\n")
		return
	}

	// loads must reference existing cases
	if err := s.AddDist(Uniform(1, "Crane", 5, DirGravity)); err == nil {
		tst.Errorf("load on unknown case must be rejected\n")
		return
	}
	s.AddDist(Uniform(1, "Dead", 5, DirGravity))
	s.AddDist(Uniform(2, "Dead", 3, DirGravity))
	s.AddDist(Uniform(1, "Live", 4, DirGravity))
	s.AddPoint(Midspan(1, "Live", 10, DirGravity))
	s.AddNodal(&NodalLoad{NodeId: 2, Case: "Live", Fz: -12})

	chk.IntAssert(len(s.DistFor("Dead")), 2)
	chk.IntAssert(len(s.DistFor("Live")), 1)
	chk.IntAssert(len(s.NodalFor("Live")), 1)
	d, p := s.LoadsOnFrame("Live", 1)
	chk.IntAssert(len(d), 1)
	chk.IntAssert(len(p), 1)

	// removing a case cascades to its loads
	if err := s.RemoveCase("Live"); err != nil {
		tst.Errorf("RemoveCase failed: %v\n", err)
		return
	}
	chk.IntAssert(len(s.Dist), 2)
	chk.IntAssert(len(s.Points), 0)
	chk.IntAssert(len(s.Nodal), 0)

	// removing loads on a member reports what went away
	gone, _ := s.RemoveLoadsOnFrame(1)
	chk.IntAssert(len(gone), 1)
	chk.IntAssert(len(s.Dist), 1)
}

func Test_combo01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("combo01. factored combinations")

	s := NewSet()
	dead, _ := NewCase("Dead", CaseDead)
	live, _ := NewCase("Live", CaseLive)
	s.AddCase(dead)
	s.AddCase(live)

	for _, c := range LRFDCombos("Dead", "Live") {
		if err := s.AddCombo(c); err != nil {
			tst.Errorf("AddCombo failed: %v\n", err)
			return
		}
	}
	chk.IntAssert(len(s.Combos), 2)

	c := s.GetCombo("1.2D+1.6L")
	if c == nil {
		tst.Errorf("combination not found\n")
		return
	}
	f, ok := c.Factor("Dead")
	if !ok {
		tst.Errorf("Dead must take part\n")
		return
	}
	chk.Scalar(tst, "dead factor", 1e-17, f, 1.2)
	f, ok = c.Factor("Live")
	chk.Scalar(tst, "live factor", 1e-17, f, 1.6)
	if _, ok := c.Factor("Wind"); ok {
		tst.Errorf("Wind must not take part\n")
		return
	}

	asd := ASDCombos("Dead", "Live")
	chk.StrAssert(asd[0].Name, "D")
	chk.StrAssert(asd[1].Name, "D+L")

	// combos referencing unknown cases are rejected
	badCombo, _ := NewCombo("1.0W", ComboLinear)
	badCombo.AddCase("Wind", 1.0)
	if err := s.AddCombo(badCombo); err == nil {
		tst.Errorf("combo with unknown case must be rejected\n")
		return
	}
	if _, err := NewCombo("x", "Quadratic"); err == nil {
		tst.Errorf("unknown combination type must be rejected\n")
	}
}
