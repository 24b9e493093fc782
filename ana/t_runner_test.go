// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/p-astudillo/nifes-strucs-sub001/lds"
	"github.com/p-astudillo/nifes-strucs-sub001/mat"
	"github.com/p-astudillo/nifes-strucs-sub001/mdl"
	"github.com/p-astudillo/nifes-strucs-sub001/out"
	"github.com/p-astudillo/nifes-strucs-sub001/sec"
)

// stubEngine records the pipeline calls and fails on demand
type stubEngine struct {
	calls      []string
	failAt     string // method name to fail at, "" for none
	noConverge bool
}

func (o *stubEngine) do(name string) error {
	o.calls = append(o.calls, name)
	if o.failAt == name {
		return chk.Err("%s blew up", name)
	}
	return nil
}

func (o *stubEngine) Clear() error { return o.do("clear") }

func (o *stubEngine) BuildModel(m *mdl.Model, mats *mat.MatDb, secs *sec.SecDb) error {
	return o.do("build")
}

func (o *stubEngine) ApplyLoads(lc *lds.Case, nodal []*lds.NodalLoad, dist []*lds.DistLoad, points []*lds.PointLoad) error {
	return o.do("loads")
}

func (o *stubEngine) Run() (bool, error) {
	if err := o.do("run"); err != nil {
		return false, err
	}
	return !o.noConverge, nil
}

func (o *stubEngine) Extract(caseName string) (*out.Results, error) {
	if err := o.do("extract"); err != nil {
		return nil, err
	}
	r := out.NewResults(caseName)
	r.AddDisp(&out.NodalDisp{NodeId: 2, Uz: -0.01})
	r.AddReaction(&out.NodalReaction{NodeId: 1, Fz: 15})
	r.AddFrame(&out.FrameResult{FrameId: 1, Forces: []*out.Forces{
		{Loc: 0, V2: 15}, {Loc: 0.5, M3: 11.25}, {Loc: 1, V2: -15},
	}})
	return r, nil
}

func testSetup() (*mdl.Model, *mat.MatDb, *sec.SecDb, *lds.Set) {
	m := mdl.NewModel()
	m.AddNode(0, 0, 0, mdl.Fixed)
	m.AddNode(6, 0, 0, mdl.Pinned)
	m.AddFrame(1, 2, "A36", "R30x50", 0, mdl.FrameReleases{}, "")
	mats := new(mat.MatDb)
	mats.Add(&mat.Material{Name: "A36", Type: mat.TypeSteel, E: 200e6, Nu: 0.3, Rho: 7850})
	secs := new(sec.SecDb)
	s, _ := sec.FromShape("R30x50", sec.Rect{B: 0.3, H: 0.5})
	secs.Add(s)
	loads := lds.NewSet()
	dead, _ := lds.NewCase("Dead", lds.CaseDead)
	live, _ := lds.NewCase("Live", lds.CaseLive)
	loads.AddCase(dead)
	loads.AddCase(live)
	loads.AddDist(lds.Uniform(1, "Dead", 5, lds.DirGravity))
	return m, mats, secs, loads
}

func Test_run01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run01. the happy path reports five stages in order")

	eng := new(stubEngine)
	m, mats, secs, loads := testSetup()
	r := NewRunner(eng, m, mats, secs, loads)

	var steps []int
	r.Progress = func(step, total int, msg string) {
		chk.IntAssert(total, 5)
		steps = append(steps, step)
		io.Pfgrey("%d/%d %s\n", step, total, msg)
	}

	res := r.Analyze("Dead")
	if !res.Success {
		tst.Errorf("analysis must succeed: %s\n", res.ErrMsg)
		return
	}
	chk.Ints(tst, "steps", steps, []int{1, 2, 3, 4, 5})
	chk.Ints(tst, "calls", callIdx(eng.calls), []int{0, 1, 2, 3, 4})
	chk.Scalar(tst, "tip Uz", 1e-17, res.Disp(2).Uz, -0.01)
	if res.Elapsed < 0 {
		tst.Errorf("elapsed time must be recorded\n")
	}
}

// callIdx maps the stub call log onto stage indices
func callIdx(calls []string) (res []int) {
	order := map[string]int{"clear": 0, "build": 1, "loads": 2, "run": 3, "extract": 4}
	for _, c := range calls {
		res = append(res, order[c])
	}
	return
}

func Test_run02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run02. validation failures never reach the engine")

	eng := new(stubEngine)
	m := mdl.NewModel() // empty, invalid
	_, mats, secs, loads := testSetup()
	r := NewRunner(eng, m, mats, secs, loads)

	res := r.Analyze("Dead")
	if res.Success {
		tst.Errorf("analysis of an invalid model must fail\n")
		return
	}
	if !strings.HasPrefix(res.ErrMsg, "validation failed: ") {
		tst.Errorf("wrong message: %q\n", res.ErrMsg)
		return
	}
	chk.IntAssert(len(eng.calls), 0)

	// unknown case fails before validation
	res = r.Analyze("Crane")
	if res.Success || !strings.Contains(res.ErrMsg, `"Crane" not found`) {
		tst.Errorf("unknown case must fail: %q\n", res.ErrMsg)
	}
}

func Test_run03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run03. stage failures become failed results")

	for _, tc := range []struct {
		failAt string
		prefix string
	}{
		{"build", "failed to build model: "},
		{"loads", "failed to apply loads: "},
		{"run", "analysis failed: "},
		{"extract", "failed to extract results: "},
	} {
		eng := &stubEngine{failAt: tc.failAt}
		m, mats, secs, loads := testSetup()
		r := NewRunner(eng, m, mats, secs, loads)
		res := r.Analyze("Dead")
		if res.Success {
			tst.Errorf("failure at %q must yield a failed result\n", tc.failAt)
			return
		}
		if !strings.HasPrefix(res.ErrMsg, tc.prefix) {
			tst.Errorf("failure at %q: wrong message %q\n", tc.failAt, res.ErrMsg)
			return
		}
		io.Pfgrey("%s%v\n", tc.prefix, res.ErrMsg)
	}

	// non-convergence is a failure with results attached
	eng := &stubEngine{noConverge: true}
	m, mats, secs, loads := testSetup()
	r := NewRunner(eng, m, mats, secs, loads)
	res := r.Analyze("Dead")
	if res.Success {
		tst.Errorf("non-converged run must be marked failed\n")
		return
	}
	chk.StrAssert(res.ErrMsg, "analysis did not converge")
	if res.Disp(2) == nil {
		tst.Errorf("non-converged run must still carry extracted results\n")
	}
}

func Test_run04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run04. batch runs report outer progress per case")

	eng := new(stubEngine)
	m, mats, secs, loads := testSetup()
	r := NewRunner(eng, m, mats, secs, loads)

	var msgs []string
	all := r.AnalyzeAll([]string{"Dead", "Live"}, func(step, total int, msg string) {
		chk.IntAssert(total, 2)
		msgs = append(msgs, msg)
	})
	chk.IntAssert(len(all), 2)
	chk.StrAssert(all[0].Case, "Dead")
	chk.StrAssert(all[1].Case, "Live")
	chk.StrAssert(msgs[0], "analyzing Dead")
	chk.StrAssert(msgs[1], "analyzing Live")
}

func Test_cmb01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmb01. linear, envelope and absolute combinations")

	dead := out.NewResults("Dead")
	dead.AddDisp(&out.NodalDisp{NodeId: 2, Uz: -0.010})
	dead.AddReaction(&out.NodalReaction{NodeId: 1, Fz: 15})
	dead.AddFrame(&out.FrameResult{FrameId: 1, Forces: []*out.Forces{
		{Loc: 0, M3: 0}, {Loc: 0.5, M3: 11.25}, {Loc: 1, M3: 0},
	}})
	live := out.NewResults("Live")
	live.AddDisp(&out.NodalDisp{NodeId: 2, Uz: -0.004})
	live.AddReaction(&out.NodalReaction{NodeId: 1, Fz: 6})
	live.AddFrame(&out.FrameResult{FrameId: 1, Forces: []*out.Forces{
		{Loc: 0, M3: 0}, {Loc: 0.5, M3: -4.5}, {Loc: 1, M3: 0},
	}})
	caseResults := map[string]*out.Results{"Dead": dead, "Live": live}

	// 1.2D + 1.6L
	lin, _ := lds.NewCombo("1.2D+1.6L", lds.ComboLinear)
	lin.AddCase("Dead", 1.2)
	lin.AddCase("Live", 1.6)
	res, err := Combine(lin, caseResults)
	if err != nil {
		tst.Errorf("combine failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "lin Uz", 1e-15, res.Disp(2).Uz, -0.0184)
	chk.Scalar(tst, "lin Fz", 1e-15, res.Reaction(1).Fz, 27.6)
	chk.Scalar(tst, "lin M3", 1e-15, res.Frame(1).M3Max(), 6.3)

	// envelope keeps the governing magnitude with its sign
	env, _ := lds.NewCombo("D/L envelope", lds.ComboEnvelope)
	env.AddCase("Dead", 1.0)
	env.AddCase("Live", 3.0)
	res, err = Combine(env, caseResults)
	if err != nil {
		tst.Errorf("combine failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "env M3 mid", 1e-15, res.Frame(1).Forces[1].M3, -13.5)
	chk.Scalar(tst, "env Fz", 1e-15, res.Reaction(1).Fz, 18.0)

	// absolute sum ignores signs
	abs, _ := lds.NewCombo("D+L abs", lds.ComboAbsAdd)
	abs.AddCase("Dead", 1.0)
	abs.AddCase("Live", 1.0)
	res, err = Combine(abs, caseResults)
	if err != nil {
		tst.Errorf("combine failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "abs M3 mid", 1e-15, res.Frame(1).Forces[1].M3, 15.75)
	chk.Scalar(tst, "abs Uz", 1e-15, res.Disp(2).Uz, 0.014)
}

func Test_cmb02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmb02. combinations refuse missing or failed cases")

	eng := new(stubEngine)
	m, mats, secs, loads := testSetup()
	r := NewRunner(eng, m, mats, secs, loads)

	cb, _ := lds.NewCombo("1.4D", lds.ComboLinear)
	cb.AddCase("Dead", 1.4)

	res := r.AnalyzeCombo(cb, map[string]*out.Results{})
	if res.Success || !strings.Contains(res.ErrMsg, "misses results") {
		tst.Errorf("missing case must fail the combination: %q\n", res.ErrMsg)
		return
	}

	failed := out.Failed("Dead", "solver blew up")
	res = r.AnalyzeCombo(cb, map[string]*out.Results{"Dead": failed})
	if res.Success || !strings.Contains(res.ErrMsg, "failed case") {
		tst.Errorf("failed case must fail the combination: %q\n", res.ErrMsg)
	}
}
