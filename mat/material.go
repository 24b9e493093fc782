// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mat implements linear-elastic materials and the material
// database. Stress unit is kPa, density kg/m3.
package mat

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Material type literals
const (
	TypeSteel    = "steel"
	TypeConcrete = "concrete"
	TypeAluminum = "aluminum"
	TypeWood     = "wood"
	TypeMasonry  = "masonry"
	TypeOther    = "other"
)

// Material holds the mechanical properties of a linear-elastic
// material. Strengths are optional: zero means not specified.
type Material struct {
	Name  string  `json:"name"`  // unique name within a database
	Type  string  `json:"type"`  // material type literal
	E     float64 `json:"E"`     // elastic modulus [kPa]
	Nu    float64 `json:"nu"`    // Poisson's ratio
	Rho   float64 `json:"rho"`   // density [kg/m3]
	Fy    float64 `json:"fy"`    // yield strength [kPa]
	Fu    float64 `json:"fu"`    // ultimate strength [kPa]
	Fc    float64 `json:"fc"`    // compressive strength [kPa]
	Descr string  `json:"descr"` // free text
}

// Validate checks the mechanical properties
func (o *Material) Validate() error {
	if o.E <= 0 {
		return chk.Err("elastic modulus E must be positive, got %v", o.E)
	}
	if o.Nu < 0 || o.Nu > 0.5 {
		return chk.Err("Poisson's ratio nu must be between 0 and 0.5, got %v", o.Nu)
	}
	if o.Rho <= 0 {
		return chk.Err("density rho must be positive, got %v", o.Rho)
	}
	if o.Fy < 0 {
		return chk.Err("yield strength fy must be positive, got %v", o.Fy)
	}
	if o.Fu < 0 {
		return chk.Err("ultimate strength fu must be positive, got %v", o.Fu)
	}
	if o.Fc < 0 {
		return chk.Err("compressive strength fc must be positive, got %v", o.Fc)
	}
	if o.Fy > 0 && o.Fu > 0 && o.Fu < o.Fy {
		return chk.Err("ultimate strength fu (%v) should be >= yield strength fy (%v)", o.Fu, o.Fy)
	}
	return nil
}

// G returns the shear modulus: G = E / (2 (1 + nu))
func (o *Material) G() float64 {
	return o.E / (2.0 * (1.0 + o.Nu))
}

// K returns the bulk modulus: K = E / (3 (1 - 2 nu)); +Inf when
// incompressible
func (o *Material) K() float64 {
	if o.Nu == 0.5 {
		return math.Inf(1)
	}
	return o.E / (3.0 * (1.0 - 2.0*o.Nu))
}

// Copy returns a duplicate with a new name
func (o *Material) Copy(newName string) *Material {
	dup := *o
	if newName == "" {
		newName = o.Name + " (copy)"
	}
	dup.Name = newName
	return &dup
}

// MatsData holds a set of materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {
	Materials MatsData `json:"materials"` // all materials
}

// ReadMat reads a material database from a .mat JSON file
func ReadMat(fn string) (o *MatDb, err error) {
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read material database %q: %v", fn, err)
	}
	o = new(MatDb)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot parse material database %q: %v", fn, err)
	}
	for _, m := range o.Materials {
		if m.Name == "" {
			return nil, chk.Err("material database %q has a material with empty name", fn)
		}
		if err = m.Validate(); err != nil {
			return nil, chk.Err("material %q in %q is invalid: %v", m.Name, fn, err)
		}
	}
	return
}

// Get returns a material by name or nil if absent
func (o *MatDb) Get(name string) *Material {
	for _, m := range o.Materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Add appends a material, replacing any record with the same name
func (o *MatDb) Add(m *Material) {
	for i, old := range o.Materials {
		if old.Name == m.Name {
			o.Materials[i] = m
			return
		}
	}
	o.Materials = append(o.Materials, m)
}

// MpaToKpa converts MPa to kPa
func MpaToKpa(mpa float64) float64 { return mpa * 1000.0 }

// KsiToKpa converts ksi to kPa
func KsiToKpa(ksi float64) float64 { return ksi * 6894.76 }
