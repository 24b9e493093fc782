// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lfe

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/p-astudillo/nifes-strucs-sub001/ana"
	"github.com/p-astudillo/nifes-strucs-sub001/lds"
	"github.com/p-astudillo/nifes-strucs-sub001/mat"
	"github.com/p-astudillo/nifes-strucs-sub001/mdl"
	"github.com/p-astudillo/nifes-strucs-sub001/out"
	"github.com/p-astudillo/nifes-strucs-sub001/sec"
)

// steelDbs returns databases with one steel material and two round
// bars; circular sections keep both bending planes identical
func steelDbs() (*mat.MatDb, *sec.SecDb) {
	mats := new(mat.MatDb)
	mats.Add(&mat.Material{Name: "steel", Type: mat.TypeSteel, E: 200e6, Nu: 0.3, Rho: 7850})
	secs := new(sec.SecDb)
	d100, _ := sec.FromShape("D100", sec.Circle{D: 0.1})
	d200, _ := sec.FromShape("D200", sec.Circle{D: 0.2})
	secs.Add(d100)
	secs.Add(d200)
	return mats, secs
}

func solve(tst *testing.T, m *mdl.Model, mats *mat.MatDb, secs *sec.SecDb, loads *lds.Set, caseName string) *out.Results {
	eng := New()
	if err := eng.BuildModel(m, mats, secs); err != nil {
		tst.Errorf("build failed: %v\n", err)
		return nil
	}
	lc := loads.GetCase(caseName)
	err := eng.ApplyLoads(lc, loads.NodalFor(caseName), loads.DistFor(caseName), loads.PointsFor(caseName))
	if err != nil {
		tst.Errorf("apply loads failed: %v\n", err)
		return nil
	}
	converged, err := eng.Run()
	if err != nil || !converged {
		tst.Errorf("run failed: converged=%v err=%v\n", converged, err)
		return nil
	}
	res, err := eng.Extract(caseName)
	if err != nil {
		tst.Errorf("extract failed: %v\n", err)
		return nil
	}
	return res
}

func Test_lfe01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lfe01. cantilever with a tip load")

	mats, secs := steelDbs()
	m := mdl.NewModel()
	m.AddNode(0, 0, 0, mdl.Fixed)
	m.AddNode(2, 0, 0, mdl.Free)
	m.AddFrame(1, 2, "steel", "D100", 0, mdl.FixedFixed(), "")

	loads := lds.NewSet()
	lc, _ := lds.NewCase("Dead", lds.CaseDead)
	loads.AddCase(lc)
	loads.AddNodal(&lds.NodalLoad{NodeId: 2, Case: "Dead", Fz: -10})

	res := solve(tst, m, mats, secs, loads, "Dead")
	if res == nil {
		return
	}

	// tip deflection: -P*L^3/(3*E*I)
	chk.Scalar(tst, "tip Uz", 1e-10, res.Disp(2).Uz, -0.027162443621016802)
	chk.Scalar(tst, "tip Ux", 1e-12, res.Disp(2).Ux, 0.0)

	// support reaction balances the tip load
	r := res.Reaction(1)
	chk.Scalar(tst, "R Fz", 1e-10, r.Fz, 10.0)
	chk.Scalar(tst, "R My", 1e-10, r.My, -20.0)
	chk.Scalar(tst, "R Fx", 1e-10, r.Fx, 0.0)

	// shear constant, moment linear from the hogging fixed end
	fr := res.Frame(1)
	chk.Scalar(tst, "V3(0)  ", 1e-10, fr.AtStart().V3, 10.0)
	chk.Scalar(tst, "V3(L)  ", 1e-10, fr.AtEnd().V3, 10.0)
	chk.Scalar(tst, "M2(0)  ", 1e-10, fr.AtStart().M2, -20.0)
	chk.Scalar(tst, "M2(L)  ", 1e-10, fr.AtEnd().M2, 0.0)
	chk.Scalar(tst, "M2(0.5)", 1e-10, fr.Forces[5].M2, -10.0)
	io.Pforan("%s", out.ForceTable(fr))
}

// ssBeam builds a 6 m simply supported beam: the first node holds all
// translations plus torsion, the second holds the two transverse ones
func ssBeam() *mdl.Model {
	m := mdl.NewModel()
	m.AddNode(0, 0, 0, mdl.Restraint{Ux: true, Uy: true, Uz: true, Rx: true})
	m.AddNode(6, 0, 0, mdl.Restraint{Uy: true, Uz: true})
	m.AddFrame(1, 2, "steel", "D200", 0, mdl.FixedFixed(), "")
	return m
}

func Test_lfe02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lfe02. simply supported beam under a uniform load")

	mats, secs := steelDbs()
	m := ssBeam()

	loads := lds.NewSet()
	lc, _ := lds.NewCase("Dead", lds.CaseDead)
	loads.AddCase(lc)
	loads.AddDist(lds.Uniform(1, "Dead", 5, lds.DirGravity))

	res := solve(tst, m, mats, secs, loads, "Dead")
	if res == nil {
		return
	}

	// w*L/2 at each support
	chk.Scalar(tst, "R1 Fz", 1e-9, res.Reaction(1).Fz, 15.0)
	chk.Scalar(tst, "R2 Fz", 1e-9, res.Reaction(2).Fz, 15.0)

	// shear w*L/2 -> -w*L/2, midspan moment w*L^2/8 sagging
	fr := res.Frame(1)
	chk.Scalar(tst, "V3(0)", 1e-9, fr.AtStart().V3, 15.0)
	chk.Scalar(tst, "V3(L)", 1e-9, fr.AtEnd().V3, -15.0)
	chk.Scalar(tst, "M2(0)", 1e-9, fr.AtStart().M2, 0.0)
	chk.Scalar(tst, "M2 mid", 1e-9, fr.Forces[5].M2, 22.5)
	chk.Scalar(tst, "M2 env", 1e-9, fr.M2Max(), 22.5)

	// end rotations are free: Ry at the supports must not vanish
	if res.Disp(1).Ry == 0 || res.Disp(2).Ry == 0 {
		tst.Errorf("support rotations must be free\n")
	}
}

func Test_lfe03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lfe03. fixed ends and moment releases")

	mats, secs := steelDbs()

	// clamped-clamped: end moments -w*L^2/12, midspan +w*L^2/24
	m := mdl.NewModel()
	m.AddNode(0, 0, 0, mdl.Fixed)
	m.AddNode(6, 0, 0, mdl.Fixed)
	m.AddFrame(1, 2, "steel", "D200", 0, mdl.FixedFixed(), "")
	loads := lds.NewSet()
	lc, _ := lds.NewCase("Dead", lds.CaseDead)
	loads.AddCase(lc)
	loads.AddDist(lds.Uniform(1, "Dead", 5, lds.DirGravity))

	res := solve(tst, m, mats, secs, loads, "Dead")
	if res == nil {
		return
	}
	fr := res.Frame(1)
	chk.Scalar(tst, "clamped M2(0) ", 1e-9, fr.AtStart().M2, -15.0)
	chk.Scalar(tst, "clamped M2 mid", 1e-9, fr.Forces[5].M2, 7.5)
	chk.Scalar(tst, "clamped M2(L) ", 1e-9, fr.AtEnd().M2, -15.0)

	// every DOF restrained: no unknowns, reactions from the fixed-end
	// forces alone
	chk.Scalar(tst, "clamped Uz(1)", 1e-17, res.Disp(1).Uz, 0.0)
	chk.Scalar(tst, "clamped R1 Fz", 1e-9, res.Reaction(1).Fz, 15.0)
	chk.Scalar(tst, "clamped R1 My", 1e-9, res.Reaction(1).My, -15.0)
	chk.Scalar(tst, "clamped R2 Fz", 1e-9, res.Reaction(2).Fz, 15.0)

	// releasing both ends turns it back into a simply supported beam
	m2 := mdl.NewModel()
	m2.AddNode(0, 0, 0, mdl.Fixed)
	m2.AddNode(6, 0, 0, mdl.Fixed)
	m2.AddFrame(1, 2, "steel", "D200", 0, mdl.PinnedPinned(), "")

	res = solve(tst, m2, mats, secs, loads, "Dead")
	if res == nil {
		return
	}
	fr = res.Frame(1)
	chk.Scalar(tst, "released M2(0) ", 1e-9, fr.AtStart().M2, 0.0)
	chk.Scalar(tst, "released M2 mid", 1e-9, fr.Forces[5].M2, 22.5)
	chk.Scalar(tst, "released V3(0) ", 1e-9, fr.AtStart().V3, 15.0)
}

func Test_lfe04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lfe04. midspan point load on a member")

	mats, secs := steelDbs()
	m := ssBeam()

	loads := lds.NewSet()
	lc, _ := lds.NewCase("Live", lds.CaseLive)
	loads.AddCase(lc)
	loads.AddPoint(lds.Midspan(1, "Live", 10, lds.DirGravity))

	res := solve(tst, m, mats, secs, loads, "Live")
	if res == nil {
		return
	}

	chk.Scalar(tst, "R1 Fz", 1e-9, res.Reaction(1).Fz, 5.0)
	chk.Scalar(tst, "R2 Fz", 1e-9, res.Reaction(2).Fz, 5.0)

	// triangular moment diagram peaking at P*L/4
	fr := res.Frame(1)
	chk.Scalar(tst, "M2 mid ", 1e-9, fr.Forces[5].M2, 15.0)
	chk.Scalar(tst, "M2(0.4)", 1e-9, fr.Forces[4].M2, 12.0)
	chk.Scalar(tst, "M2(0.6)", 1e-9, fr.Forces[6].M2, 12.0)
	chk.Scalar(tst, "V3(0.4)", 1e-9, fr.Forces[4].V3, 5.0)
	chk.Scalar(tst, "V3(0.6)", 1e-9, fr.Forces[6].V3, -5.0)
}

func Test_lfe05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lfe05. column under axial load and self-weight")

	mats, secs := steelDbs()
	m := mdl.NewModel()
	m.AddNode(0, 0, 0, mdl.Fixed)
	m.AddNode(0, 0, 3, mdl.Free)
	m.AddFrame(1, 2, "steel", "D100", 0, mdl.FixedFixed(), "")

	loads := lds.NewSet()
	lc, _ := lds.NewCase("Dead", lds.CaseDead)
	lc.SelfWgt = 1.0
	loads.AddCase(lc)
	loads.AddNodal(&lds.NodalLoad{NodeId: 2, Case: "Dead", Fz: -100})

	res := solve(tst, m, mats, secs, loads, "Dead")
	if res == nil {
		return
	}

	// total weight: rho*A*g*L
	W := 1.8138504137337137
	chk.Scalar(tst, "R Fz", 1e-9, res.Reaction(1).Fz, 100.0+W)

	// axial force: compression grows towards the base
	fr := res.Frame(1)
	chk.Scalar(tst, "P base", 1e-9, fr.AtStart().P, -(100.0 + W))
	chk.Scalar(tst, "P top ", 1e-9, fr.AtEnd().P, -100.0)
	chk.Scalar(tst, "V2 base", 1e-10, fr.AtStart().V2, 0.0)
}

func Test_lfe06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lfe06. engine driven through the analysis pipeline")

	mats, secs := steelDbs()
	m := ssBeam()

	loads := lds.NewSet()
	dead, _ := lds.NewCase("Dead", lds.CaseDead)
	live, _ := lds.NewCase("Live", lds.CaseLive)
	loads.AddCase(dead)
	loads.AddCase(live)
	loads.AddDist(lds.Uniform(1, "Dead", 5, lds.DirGravity))
	loads.AddPoint(lds.Midspan(1, "Live", 10, lds.DirGravity))

	r := ana.NewRunner(New(), m, mats, secs, loads)
	all := r.AnalyzeAll([]string{"Dead", "Live"}, nil)
	for _, res := range all {
		if !res.Success {
			tst.Errorf("case %q failed: %s\n", res.Case, res.ErrMsg)
			return
		}
	}

	// midspan deflections
	chk.Scalar(tst, "dead mid M2", 1e-9, all[0].Frame(1).M2Max(), 22.5)
	chk.Scalar(tst, "live mid M2", 1e-9, all[1].Frame(1).M2Max(), 15.0)

	// 1.2D + 1.6L
	cb, _ := lds.NewCombo("1.2D+1.6L", lds.ComboLinear)
	cb.AddCase("Dead", 1.2)
	cb.AddCase("Live", 1.6)
	caseResults := map[string]*out.Results{"Dead": all[0], "Live": all[1]}
	res := r.AnalyzeCombo(cb, caseResults)
	if !res.Success {
		tst.Errorf("combination failed: %s\n", res.ErrMsg)
		return
	}
	chk.Scalar(tst, "combo mid M2", 1e-9, res.Frame(1).Forces[5].M2, 1.2*22.5+1.6*15.0)
	chk.Scalar(tst, "combo R1 Fz", 1e-9, res.Reaction(1).Fz, 1.2*15.0+1.6*5.0)
}
