// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"encoding/json"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// model size limits and tolerances
const (
	MaxNodes  = 50000  // maximum number of nodes
	MaxFrames = 100000 // maximum number of frames
	DupTol    = 0.001  // node duplicate tolerance [m]
)

// Model is the container for all structural entities. It owns node and
// frame identity; materials and sections are external databases
// referenced by name. Not safe for concurrent mutation: one writer.
type Model struct {
	nodes      map[int]*Node
	frames     map[int]*Frame
	nextNodeId int
	nextFrmId  int
}

// NewModel returns an empty model
func NewModel() *Model {
	return &Model{
		nodes:      make(map[int]*Node),
		frames:     make(map[int]*Frame),
		nextNodeId: 1,
		nextFrmId:  1,
	}
}

// Clear removes all nodes and frames and resets id counters
func (o *Model) Clear() {
	o.nodes = make(map[int]*Node)
	o.frames = make(map[int]*Frame)
	o.nextNodeId = 1
	o.nextFrmId = 1
}

// node operations //////////////////////////////////////////////////////////////////////////////////

// Nodes returns all nodes sorted by id
func (o *Model) Nodes() []*Node {
	res := make([]*Node, 0, len(o.nodes))
	for _, n := range o.nodes {
		res = append(res, n)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Id < res[j].Id })
	return res
}

// NodeCount returns the number of nodes
func (o *Model) NodeCount() int { return len(o.nodes) }

// HasNode tells whether a node id exists
func (o *Model) HasNode(id int) bool { _, ok := o.nodes[id]; return ok }

// GetNode returns a node by id
func (o *Model) GetNode(id int) (*Node, error) {
	n, ok := o.nodes[id]
	if !ok {
		return nil, chk.Err("node %d not found", id)
	}
	return n, nil
}

// AddNode creates a node at (x,y,z) with an auto-assigned id,
// rejecting positions within DupTol of an existing node
func (o *Model) AddNode(x, y, z float64, r Restraint) (*Node, error) {
	return o.addNode(x, y, z, r, -1, true)
}

// AddNodeWithId creates a node under a caller-chosen id; used when
// restoring removed nodes
func (o *Model) AddNodeWithId(id int, x, y, z float64, r Restraint, checkDup bool) (*Node, error) {
	return o.addNode(x, y, z, r, id, checkDup)
}

func (o *Model) addNode(x, y, z float64, r Restraint, id int, checkDup bool) (*Node, error) {
	if len(o.nodes) >= MaxNodes {
		return nil, chk.Err("maximum number of nodes (%d) exceeded", MaxNodes)
	}
	if checkDup {
		if existing := o.FindNodeAt(x, y, z, DupTol); existing != nil {
			return nil, chk.Err("node already exists at coordinates (%g, %g, %g): node %d", x, y, z, existing.Id)
		}
	}
	if id < 0 {
		id = o.nextNodeId
		o.nextNodeId++
	} else {
		if _, ok := o.nodes[id]; ok {
			return nil, chk.Err("node id %d already exists", id)
		}
		if id >= o.nextNodeId {
			o.nextNodeId = id + 1
		}
	}
	n, err := NewNode(id, x, y, z, r)
	if err != nil {
		return nil, err
	}
	o.nodes[id] = n
	return n, nil
}

// RemoveNode deletes a node, rejecting the removal when frames still
// reference it; the removed node is returned so callers can restore it
func (o *Model) RemoveNode(id int) (*Node, error) {
	n, ok := o.nodes[id]
	if !ok {
		return nil, chk.Err("node %d not found", id)
	}
	if frames := o.FramesUsingNode(id); len(frames) > 0 {
		ids := make([]int, len(frames))
		for i, f := range frames {
			ids[i] = f.Id
		}
		return nil, chk.Err("cannot remove node %d: used by frames %v", id, ids)
	}
	delete(o.nodes, id)
	return n, nil
}

// MoveNode places a node at a new position, rejecting positions
// occupied by another node
func (o *Model) MoveNode(id int, x, y, z float64) error {
	n, err := o.GetNode(id)
	if err != nil {
		return err
	}
	if existing := o.FindNodeAt(x, y, z, DupTol); existing != nil && existing.Id != id {
		return chk.Err("node already exists at coordinates (%g, %g, %g): node %d", x, y, z, existing.Id)
	}
	n.MoveTo(x, y, z)
	return nil
}

// SetRestraint replaces the boundary conditions of a node
func (o *Model) SetRestraint(id int, r Restraint) error {
	n, err := o.GetNode(id)
	if err != nil {
		return err
	}
	n.Restraint = r
	return nil
}

// FindNodeAt returns the first node within tol of (x,y,z), or nil
func (o *Model) FindNodeAt(x, y, z, tol float64) *Node {
	for _, n := range o.Nodes() {
		if n.DistToPoint(x, y, z) <= tol {
			return n
		}
	}
	return nil
}

// FindNodesInBox returns the nodes inside the axis-aligned box, sorted
// by id
func (o *Model) FindNodesInBox(xmin, ymin, zmin, xmax, ymax, zmax float64) (res []*Node) {
	for _, n := range o.Nodes() {
		if n.X >= xmin && n.X <= xmax && n.Y >= ymin && n.Y <= ymax && n.Z >= zmin && n.Z <= zmax {
			res = append(res, n)
		}
	}
	return
}

// SupportedNodes returns the nodes with at least one restrained DOF,
// sorted by id
func (o *Model) SupportedNodes() (res []*Node) {
	for _, n := range o.Nodes() {
		if n.IsSupported() {
			res = append(res, n)
		}
	}
	return
}

// frame operations /////////////////////////////////////////////////////////////////////////////////

// Frames returns all frames sorted by id
func (o *Model) Frames() []*Frame {
	res := make([]*Frame, 0, len(o.frames))
	for _, f := range o.frames {
		res = append(res, f)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Id < res[j].Id })
	return res
}

// FrameCount returns the number of frames
func (o *Model) FrameCount() int { return len(o.frames) }

// HasFrame tells whether a frame id exists
func (o *Model) HasFrame(id int) bool { _, ok := o.frames[id]; return ok }

// GetFrame returns a frame by id
func (o *Model) GetFrame(id int) (*Frame, error) {
	f, ok := o.frames[id]
	if !ok {
		return nil, chk.Err("frame %d not found", id)
	}
	return f, nil
}

// AddFrame creates a member between two existing nodes with an
// auto-assigned id. Rejects self-connections, members shorter than
// MinFrameLength, and duplicate connectivity (either direction).
func (o *Model) AddFrame(niId, njId int, matName, secName string, rot float64, rel FrameReleases, label string) (*Frame, error) {
	return o.addFrame(niId, njId, matName, secName, rot, rel, label, -1)
}

// AddFrameWithId creates a member under a caller-chosen id; used when
// restoring removed frames
func (o *Model) AddFrameWithId(id, niId, njId int, matName, secName string, rot float64, rel FrameReleases, label string) (*Frame, error) {
	return o.addFrame(niId, njId, matName, secName, rot, rel, label, id)
}

func (o *Model) addFrame(niId, njId int, matName, secName string, rot float64, rel FrameReleases, label string, id int) (*Frame, error) {
	if len(o.frames) >= MaxFrames {
		return nil, chk.Err("maximum number of frames (%d) exceeded", MaxFrames)
	}
	ni, err := o.GetNode(niId)
	if err != nil {
		return nil, err
	}
	nj, err := o.GetNode(njId)
	if err != nil {
		return nil, err
	}
	if l := ni.DistTo(nj); l < MinFrameLength {
		return nil, chk.Err("frame length (%g) is below minimum (%g)", l, MinFrameLength)
	}
	if existing := o.FindFrameBetween(niId, njId); existing != nil {
		return nil, chk.Err("frame already exists between nodes %d and %d: frame %d", niId, njId, existing.Id)
	}
	if id < 0 {
		id = o.nextFrmId
		o.nextFrmId++
	} else {
		if _, ok := o.frames[id]; ok {
			return nil, chk.Err("frame id %d already exists", id)
		}
		if id >= o.nextFrmId {
			o.nextFrmId = id + 1
		}
	}
	f := &Frame{Id: id, NodeI: niId, NodeJ: njId, MatName: matName, SecName: secName, Rot: rot, Releases: rel, Label: label}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if err := f.SetNodes(ni, nj); err != nil {
		return nil, err
	}
	o.frames[id] = f
	return f, nil
}

// RemoveFrame deletes a frame and returns it
func (o *Model) RemoveFrame(id int) (*Frame, error) {
	f, ok := o.frames[id]
	if !ok {
		return nil, chk.Err("frame %d not found", id)
	}
	delete(o.frames, id)
	return f, nil
}

// SetFrameMaterial changes the material reference of a frame
func (o *Model) SetFrameMaterial(id int, matName string) error {
	f, err := o.GetFrame(id)
	if err != nil {
		return err
	}
	if matName == "" {
		return chk.Err("frame must have a material assigned")
	}
	f.MatName = matName
	return nil
}

// SetFrameSection changes the section reference of a frame
func (o *Model) SetFrameSection(id int, secName string) error {
	f, err := o.GetFrame(id)
	if err != nil {
		return err
	}
	if secName == "" {
		return chk.Err("frame must have a section assigned")
	}
	f.SecName = secName
	return nil
}

// SetFrameRotation changes the local-axis rotation of a frame [rad]
func (o *Model) SetFrameRotation(id int, rot float64) error {
	f, err := o.GetFrame(id)
	if err != nil {
		return err
	}
	f.Rot = rot
	return nil
}

// SetFrameReleases changes the end releases of a frame
func (o *Model) SetFrameReleases(id int, rel FrameReleases) error {
	f, err := o.GetFrame(id)
	if err != nil {
		return err
	}
	f.Releases = rel
	return nil
}

// SetFrameLabel changes the user label of a frame
func (o *Model) SetFrameLabel(id int, label string) error {
	f, err := o.GetFrame(id)
	if err != nil {
		return err
	}
	f.Label = label
	return nil
}

// FindFrameBetween returns the frame connecting two nodes in either
// direction, or nil
func (o *Model) FindFrameBetween(niId, njId int) *Frame {
	for _, f := range o.Frames() {
		if (f.NodeI == niId && f.NodeJ == njId) || (f.NodeI == njId && f.NodeJ == niId) {
			return f
		}
	}
	return nil
}

// FramesUsingNode returns the frames connected to a node, sorted by id
func (o *Model) FramesUsingNode(nodeId int) (res []*Frame) {
	for _, f := range o.Frames() {
		if f.NodeI == nodeId || f.NodeJ == nodeId {
			res = append(res, f)
		}
	}
	return
}

// FramesWithMaterial returns the frames using a material, sorted by id
func (o *Model) FramesWithMaterial(matName string) (res []*Frame) {
	for _, f := range o.Frames() {
		if f.MatName == matName {
			res = append(res, f)
		}
	}
	return
}

// FramesWithSection returns the frames using a section, sorted by id
func (o *Model) FramesWithSection(secName string) (res []*Frame) {
	for _, f := range o.Frames() {
		if f.SecName == secName {
			res = append(res, f)
		}
	}
	return
}

// serialization ////////////////////////////////////////////////////////////////////////////////////

type modelData struct {
	Nodes  []*Node  `json:"nodes"`
	Frames []*Frame `json:"frames"`
}

// MarshalJSON encodes nodes and frames as id-sorted arrays
func (o *Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(modelData{Nodes: o.Nodes(), Frames: o.Frames()})
}

// UnmarshalJSON rebuilds the model, restoring id counters and node
// references
func (o *Model) UnmarshalJSON(b []byte) error {
	var data modelData
	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}
	o.Clear()
	for _, n := range data.Nodes {
		if _, ok := o.nodes[n.Id]; ok {
			return chk.Err("node id %d already exists", n.Id)
		}
		o.nodes[n.Id] = n
		if n.Id >= o.nextNodeId {
			o.nextNodeId = n.Id + 1
		}
	}
	for _, f := range data.Frames {
		if _, ok := o.frames[f.Id]; ok {
			return chk.Err("frame id %d already exists", f.Id)
		}
		if err := f.Validate(); err != nil {
			return chk.Err("frame %d is invalid: %v", f.Id, err)
		}
		ni, err := o.GetNode(f.NodeI)
		if err != nil {
			return chk.Err("frame %d: %v", f.Id, err)
		}
		nj, err := o.GetNode(f.NodeJ)
		if err != nil {
			return chk.Err("frame %d: %v", f.Id, err)
		}
		if err := f.SetNodes(ni, nj); err != nil {
			return err
		}
		o.frames[f.Id] = f
		if f.Id >= o.nextFrmId {
			o.nextFrmId = f.Id + 1
		}
	}
	return nil
}
