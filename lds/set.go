// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lds

import "github.com/cpmech/gosl/chk"

// Set owns the load cases, the loads assigned to them, and the
// combinations. Loads always belong to an existing case.
type Set struct {
	Cases  []*Case      `json:"cases"`        // all cases, insertion order
	Nodal  []*NodalLoad `json:"nodal"`        // nodal loads
	Dist   []*DistLoad  `json:"distributed"`  // distributed loads
	Points []*PointLoad `json:"points"`       // point loads on members
	Combos []*Combo     `json:"combinations"` // combinations
}

// NewSet returns an empty load set
func NewSet() *Set { return &Set{} }

// GetCase returns a case by name or nil
func (o *Set) GetCase(name string) *Case {
	for _, c := range o.Cases {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// AddCase registers a case; names are unique
func (o *Set) AddCase(c *Case) error {
	if c.Name == "" {
		return chk.Err("load case name cannot be empty")
	}
	if o.GetCase(c.Name) != nil {
		return chk.Err("load case %q already exists", c.Name)
	}
	o.Cases = append(o.Cases, c)
	return nil
}

// RemoveCase deletes a case together with all its loads and drops it
// from combinations
func (o *Set) RemoveCase(name string) error {
	idx := -1
	for i, c := range o.Cases {
		if c.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return chk.Err("load case %q not found", name)
	}
	o.Cases = append(o.Cases[:idx], o.Cases[idx+1:]...)
	nodal := o.Nodal[:0]
	for _, l := range o.Nodal {
		if l.Case != name {
			nodal = append(nodal, l)
		}
	}
	o.Nodal = nodal
	dist := o.Dist[:0]
	for _, l := range o.Dist {
		if l.Case != name {
			dist = append(dist, l)
		}
	}
	o.Dist = dist
	points := o.Points[:0]
	for _, l := range o.Points {
		if l.Case != name {
			points = append(points, l)
		}
	}
	o.Points = points
	for _, cb := range o.Combos {
		items := cb.Items[:0]
		for _, it := range cb.Items {
			if it.Case != name {
				items = append(items, it)
			}
		}
		cb.Items = items
	}
	return nil
}

// AddNodal attaches a nodal load to its case
func (o *Set) AddNodal(l *NodalLoad) error {
	if o.GetCase(l.Case) == nil {
		return chk.Err("load case %q not found", l.Case)
	}
	o.Nodal = append(o.Nodal, l)
	return nil
}

// AddDist attaches a distributed load to its case
func (o *Set) AddDist(l *DistLoad) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if o.GetCase(l.Case) == nil {
		return chk.Err("load case %q not found", l.Case)
	}
	o.Dist = append(o.Dist, l)
	return nil
}

// AddPoint attaches a point load to its case
func (o *Set) AddPoint(l *PointLoad) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if o.GetCase(l.Case) == nil {
		return chk.Err("load case %q not found", l.Case)
	}
	o.Points = append(o.Points, l)
	return nil
}

// NodalFor returns the nodal loads of a case, in insertion order
func (o *Set) NodalFor(caseName string) (res []*NodalLoad) {
	for _, l := range o.Nodal {
		if l.Case == caseName {
			res = append(res, l)
		}
	}
	return
}

// DistFor returns the distributed loads of a case
func (o *Set) DistFor(caseName string) (res []*DistLoad) {
	for _, l := range o.Dist {
		if l.Case == caseName {
			res = append(res, l)
		}
	}
	return
}

// PointsFor returns the point loads of a case
func (o *Set) PointsFor(caseName string) (res []*PointLoad) {
	for _, l := range o.Points {
		if l.Case == caseName {
			res = append(res, l)
		}
	}
	return
}

// LoadsOnFrame returns the distributed and point loads a case applies
// to one member
func (o *Set) LoadsOnFrame(caseName string, frameId int) (dist []*DistLoad, points []*PointLoad) {
	for _, l := range o.Dist {
		if l.Case == caseName && l.FrameId == frameId {
			dist = append(dist, l)
		}
	}
	for _, l := range o.Points {
		if l.Case == caseName && l.FrameId == frameId {
			points = append(points, l)
		}
	}
	return
}

// RemoveLoadsOnFrame drops all loads targeting a member, over all
// cases; returns the removed loads so commands can restore them
func (o *Set) RemoveLoadsOnFrame(frameId int) (dist []*DistLoad, points []*PointLoad) {
	keep := o.Dist[:0]
	for _, l := range o.Dist {
		if l.FrameId == frameId {
			dist = append(dist, l)
		} else {
			keep = append(keep, l)
		}
	}
	o.Dist = keep
	keepP := o.Points[:0]
	for _, l := range o.Points {
		if l.FrameId == frameId {
			points = append(points, l)
		} else {
			keepP = append(keepP, l)
		}
	}
	o.Points = keepP
	return
}

// RemoveLoadsOnNode drops all nodal loads targeting a node, over all
// cases; returns the removed loads
func (o *Set) RemoveLoadsOnNode(nodeId int) (nodal []*NodalLoad) {
	keep := o.Nodal[:0]
	for _, l := range o.Nodal {
		if l.NodeId == nodeId {
			nodal = append(nodal, l)
		} else {
			keep = append(keep, l)
		}
	}
	o.Nodal = keep
	return
}

// GetCombo returns a combination by name or nil
func (o *Set) GetCombo(name string) *Combo {
	for _, c := range o.Combos {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// AddCombo registers a combination; names are unique and every item
// must reference an existing case
func (o *Set) AddCombo(c *Combo) error {
	if c.Name == "" {
		return chk.Err("load combination name cannot be empty")
	}
	if o.GetCombo(c.Name) != nil {
		return chk.Err("load combination %q already exists", c.Name)
	}
	for _, it := range c.Items {
		if o.GetCase(it.Case) == nil {
			return chk.Err("load combination %q references unknown case %q", c.Name, it.Case)
		}
	}
	o.Combos = append(o.Combos, c)
	return nil
}
