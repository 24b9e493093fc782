// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lds

import "github.com/cpmech/gosl/chk"

// combination type literals; persisted, do not change
const (
	ComboLinear   = "Linear"       // factored sum of case results
	ComboEnvelope = "Envelope"     // max/min envelope of case results
	ComboAbsAdd   = "Absolute Add" // sum of absolute values
)

// ComboItem is one factored case inside a combination
type ComboItem struct {
	Case   string  `json:"load_case"` // case name
	Factor float64 `json:"factor"`    // multiplication factor
}

// Combo is a factored combination of load cases
type Combo struct {
	Name  string      `json:"name"`             // unique name
	Type  string      `json:"combination_type"` // combination type literal
	Items []ComboItem `json:"items"`            // factored cases
	Descr string      `json:"descr"`            // free text
}

// NewCombo creates a combination; the name must not be empty
func NewCombo(name, typ string) (*Combo, error) {
	if name == "" {
		return nil, chk.Err("load combination name cannot be empty")
	}
	switch typ {
	case ComboLinear, ComboEnvelope, ComboAbsAdd:
	case "":
		typ = ComboLinear
	default:
		return nil, chk.Err("unknown combination type %q", typ)
	}
	return &Combo{Name: name, Type: typ}, nil
}

// AddCase appends a factored case
func (o *Combo) AddCase(caseName string, factor float64) {
	o.Items = append(o.Items, ComboItem{Case: caseName, Factor: factor})
}

// Factor returns the factor of a case and whether the case takes part
func (o *Combo) Factor(caseName string) (float64, bool) {
	for _, it := range o.Items {
		if it.Case == caseName {
			return it.Factor, true
		}
	}
	return 0, false
}

// LRFDCombos returns the standard strength-design combinations:
// 1.4D and 1.2D+1.6L
func LRFDCombos(deadCase, liveCase string) []*Combo {
	c1 := &Combo{Name: "1.4D", Type: ComboLinear, Descr: "LRFD: Dead only"}
	c1.AddCase(deadCase, 1.4)
	c2 := &Combo{Name: "1.2D+1.6L", Type: ComboLinear, Descr: "LRFD: Dead + Live"}
	c2.AddCase(deadCase, 1.2)
	c2.AddCase(liveCase, 1.6)
	return []*Combo{c1, c2}
}

// ASDCombos returns the standard allowable-stress combinations:
// D and D+L
func ASDCombos(deadCase, liveCase string) []*Combo {
	c1 := &Combo{Name: "D", Type: ComboLinear, Descr: "ASD: Dead only"}
	c1.AddCase(deadCase, 1.0)
	c2 := &Combo{Name: "D+L", Type: ComboLinear, Descr: "ASD: Dead + Live"}
	c2.AddCase(deadCase, 1.0)
	c2.AddCase(liveCase, 1.0)
	return []*Combo{c1, c2}
}
