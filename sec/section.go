// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Section holds the flat property record of a cross-section, either
// taken from a catalogue or derived from a parametric Shape. Units:
// m, m2, m3, m4.
type Section struct {
	Name  string `json:"name"`  // unique name within a database
	Shape string `json:"shape"` // shape kind literal
	Descr string `json:"descr"` // free text

	// elastic and plastic properties
	A  float64 `json:"A"`  // area
	Ix float64 `json:"Ix"` // second moment, strong axis
	Iy float64 `json:"Iy"` // second moment, weak axis
	Sx float64 `json:"Sx"` // elastic modulus, strong axis
	Sy float64 `json:"Sy"` // elastic modulus, weak axis
	Zx float64 `json:"Zx"` // plastic modulus, strong axis
	Zy float64 `json:"Zy"` // plastic modulus, weak axis
	Rx float64 `json:"rx"` // radius of gyration, strong axis
	Ry float64 `json:"ry"` // radius of gyration, weak axis
	J  float64 `json:"J"`  // torsional constant

	// nominal dimensions (zero when not applicable)
	Dims map[string]float64 `json:"dims,omitempty"`
}

// FromShape validates a parametric shape and derives its full property
// record
func FromShape(name string, s Shape) (o *Section, err error) {
	if err = s.Validate(); err != nil {
		return nil, chk.Err("section %q is invalid: %v", name, err)
	}
	o = &Section{
		Name:  name,
		Shape: s.Kind(),
		A:     s.A(),
		Ix:    s.Ix(),
		Iy:    s.Iy(),
		Zx:    s.Zx(),
		Zy:    s.Zy(),
		J:     s.J(),
		Dims:  s.Dims(),
	}
	if cx := s.Cx(); cx > 0 {
		o.Sx = o.Ix / cx
	}
	if cy := s.Cy(); cy > 0 {
		o.Sy = o.Iy / cy
	}
	if o.A > 0 {
		o.Rx = math.Sqrt(o.Ix / o.A)
		o.Ry = math.Sqrt(o.Iy / o.A)
	}
	return
}

// GetInfoString returns a one-line summary of the main properties
func (o *Section) GetInfoString() string {
	return io.Sf("%s (%s): A=%g Ix=%g Iy=%g J=%g", o.Name, o.Shape, o.A, o.Ix, o.Iy, o.J)
}

// SecsData holds a set of section records
type SecsData []*Section

// SecDb implements a database of sections
type SecDb struct {
	Sections SecsData `json:"sections"` // all sections
}

// ReadSec reads a section database from a .sec JSON file
func ReadSec(fn string) (o *SecDb, err error) {
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read section database %q: %v", fn, err)
	}
	o = new(SecDb)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot parse section database %q: %v", fn, err)
	}
	for _, s := range o.Sections {
		if s.Name == "" {
			return nil, chk.Err("section database %q has a section with empty name", fn)
		}
	}
	return
}

// Get returns a section by name or nil if absent
func (o *SecDb) Get(name string) *Section {
	for _, s := range o.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Add appends a section, replacing any record with the same name
func (o *SecDb) Add(s *Section) {
	for i, old := range o.Sections {
		if old.Name == s.Name {
			o.Sections[i] = s
			return
		}
	}
	o.Sections = append(o.Sections, s)
}
