// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the input data read from a (.prj) JSON file.
// A project bundles a structural model, its load set and the analysis
// options, and references external material (.mat) and section (.sec)
// databases.
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/p-astudillo/nifes-strucs-sub001/lds"
	"github.com/p-astudillo/nifes-strucs-sub001/mat"
	"github.com/p-astudillo/nifes-strucs-sub001/mdl"
	"github.com/p-astudillo/nifes-strucs-sub001/sec"
)

// Options holds analysis options
type Options struct {
	Solver string   `json:"solver"`       // linear solver name; "" means umfpack
	Cases  []string `json:"cases"`        // cases to analyze; empty means all
	Combos []string `json:"combinations"` // combinations to evaluate; empty means all
}

// Project holds all input data of one analysis project
type Project struct {

	// input data
	Name    string     `json:"name"`    // project name
	Descr   string     `json:"descr"`   // free text
	Matfile string     `json:"matfile"` // material database path, relative to the project file
	Secfile string     `json:"secfile"` // section database path, relative to the project file
	Model   *mdl.Model `json:"model"`   // nodes and frames
	Loads   *lds.Set   `json:"loads"`   // cases, loads and combinations
	Options Options    `json:"options"` // analysis options

	// derived
	Key  string     `json:"-"` // filename key, e.g. "beam" for beam.prj
	Dir  string     `json:"-"` // directory of the project file
	Mats *mat.MatDb `json:"-"` // loaded material database
	Secs *sec.SecDb `json:"-"` // loaded section database
}

// NewProject returns an empty project with allocated model, load set
// and databases
func NewProject(name string) *Project {
	return &Project{
		Name:  name,
		Model: mdl.NewModel(),
		Loads: lds.NewSet(),
		Mats:  new(mat.MatDb),
		Secs:  new(sec.SecDb),
	}
}

// ReadPrj reads a project from a .prj JSON file and loads the
// referenced material and section databases. Relative database paths
// resolve against the project file's directory.
func ReadPrj(prjfilepath string) (o *Project, err error) {

	b, err := io.ReadFile(prjfilepath)
	if err != nil {
		return nil, chk.Err("cannot read project file %q: %v", prjfilepath, err)
	}

	// decode; the model and load set must exist before unmarshalling
	// so partial files get working defaults
	o = new(Project)
	o.Model = mdl.NewModel()
	o.Loads = lds.NewSet()
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot parse project file %q: %v", prjfilepath, err)
	}

	// directory and filename key
	o.Dir = os.ExpandEnv(filepath.Dir(prjfilepath))
	o.Key = io.FnKey(filepath.Base(prjfilepath))
	if o.Name == "" {
		o.Name = o.Key
	}

	// databases
	o.Mats = new(mat.MatDb)
	if o.Matfile != "" {
		if o.Mats, err = mat.ReadMat(o.abspath(o.Matfile)); err != nil {
			return nil, err
		}
	}
	o.Secs = new(sec.SecDb)
	if o.Secfile != "" {
		if o.Secs, err = sec.ReadSec(o.abspath(o.Secfile)); err != nil {
			return nil, err
		}
	}

	// loads must be well-formed and target known cases
	if err = o.checkLoads(); err != nil {
		return nil, chk.Err("project file %q: %v", prjfilepath, err)
	}
	return
}

// abspath resolves a database path against the project directory
func (o *Project) abspath(fn string) string {
	if filepath.IsAbs(fn) {
		return fn
	}
	return filepath.Join(o.Dir, fn)
}

// checkLoads verifies that every load is well-formed and that every
// load and combination item refers to a declared load case
func (o *Project) checkLoads() error {
	for _, l := range o.Loads.Nodal {
		if o.Loads.GetCase(l.Case) == nil {
			return chk.Err("nodal load on node %d references unknown case %q", l.NodeId, l.Case)
		}
	}
	for _, l := range o.Loads.Dist {
		if o.Loads.GetCase(l.Case) == nil {
			return chk.Err("distributed load on frame %d references unknown case %q", l.FrameId, l.Case)
		}
		if err := l.Validate(); err != nil {
			return chk.Err("distributed load on frame %d: %v", l.FrameId, err)
		}
	}
	for _, l := range o.Loads.Points {
		if o.Loads.GetCase(l.Case) == nil {
			return chk.Err("point load on frame %d references unknown case %q", l.FrameId, l.Case)
		}
		if err := l.Validate(); err != nil {
			return chk.Err("point load on frame %d: %v", l.FrameId, err)
		}
	}
	for _, cb := range o.Loads.Combos {
		for _, it := range cb.Items {
			if o.Loads.GetCase(it.Case) == nil {
				return chk.Err("combination %q references unknown case %q", cb.Name, it.Case)
			}
		}
	}
	return nil
}

// SavePrj writes the project to a .prj JSON file
func (o *Project) SavePrj(prjfilepath string) error {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return chk.Err("cannot encode project %q: %v", o.Name, err)
	}
	io.WriteFileSD(filepath.Dir(prjfilepath), filepath.Base(prjfilepath), string(b))
	return nil
}

// CaseNames returns the cases selected for analysis: Options.Cases
// when set, otherwise all declared cases in order
func (o *Project) CaseNames() (res []string, err error) {
	if len(o.Options.Cases) > 0 {
		for _, name := range o.Options.Cases {
			if o.Loads.GetCase(name) == nil {
				return nil, chk.Err("options select unknown case %q", name)
			}
		}
		return o.Options.Cases, nil
	}
	for _, c := range o.Loads.Cases {
		res = append(res, c.Name)
	}
	return
}

// ComboSelection returns the combinations selected for evaluation:
// Options.Combos when set, otherwise all declared combinations
func (o *Project) ComboSelection() (res []*lds.Combo, err error) {
	if len(o.Options.Combos) > 0 {
		for _, name := range o.Options.Combos {
			cb := o.Loads.GetCombo(name)
			if cb == nil {
				return nil, chk.Err("options select unknown combination %q", name)
			}
			res = append(res, cb)
		}
		return
	}
	return o.Loads.Combos, nil
}
