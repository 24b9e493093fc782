// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/p-astudillo/nifes-strucs-sub001/lds"
	"github.com/p-astudillo/nifes-strucs-sub001/mdl"
)

// CreateNode adds a node. The id assigned on the first execution is
// reused when the command is redone, so references stay stable across
// undo/redo cycles.
type CreateNode struct {
	Model     *mdl.Model
	X, Y, Z   float64
	Restraint mdl.Restraint

	node *mdl.Node
	id   int // 0 until first execution
}

func (o *CreateNode) Execute() (err error) {
	if o.id == 0 {
		o.node, err = o.Model.AddNode(o.X, o.Y, o.Z, o.Restraint)
		if err == nil {
			o.id = o.node.Id
		}
		return
	}
	o.node, err = o.Model.AddNodeWithId(o.id, o.X, o.Y, o.Z, o.Restraint, true)
	return
}

func (o *CreateNode) Undo() error {
	_, err := o.Model.RemoveNode(o.id)
	return err
}

func (o *CreateNode) Descr() string {
	return io.Sf("create node at (%g, %g, %g)", o.X, o.Y, o.Z)
}

// Node returns the created node (after Execute)
func (o *CreateNode) Node() *mdl.Node { return o.node }

// DeleteNode removes an unconnected node, keeping its data for undo
type DeleteNode struct {
	Model  *mdl.Model
	NodeId int

	deleted *mdl.Node
}

func (o *DeleteNode) Execute() (err error) {
	o.deleted, err = o.Model.RemoveNode(o.NodeId)
	return
}

func (o *DeleteNode) Undo() error {
	n := o.deleted
	_, err := o.Model.AddNodeWithId(n.Id, n.X, n.Y, n.Z, n.Restraint, false)
	return err
}

func (o *DeleteNode) Descr() string { return io.Sf("delete node %d", o.NodeId) }

// MoveNode places a node at a new position, keeping the old one
type MoveNode struct {
	Model   *mdl.Model
	NodeId  int
	X, Y, Z float64

	oldX, oldY, oldZ float64
}

func (o *MoveNode) Execute() error {
	n, err := o.Model.GetNode(o.NodeId)
	if err != nil {
		return err
	}
	o.oldX, o.oldY, o.oldZ = n.X, n.Y, n.Z
	return o.Model.MoveNode(o.NodeId, o.X, o.Y, o.Z)
}

func (o *MoveNode) Undo() error {
	return o.Model.MoveNode(o.NodeId, o.oldX, o.oldY, o.oldZ)
}

func (o *MoveNode) Descr() string {
	return io.Sf("move node %d to (%g, %g, %g)", o.NodeId, o.X, o.Y, o.Z)
}

// MoveNodeBy offsets a node position
type MoveNodeBy struct {
	Model      *mdl.Model
	NodeId     int
	Dx, Dy, Dz float64
}

func (o *MoveNodeBy) Execute() error {
	n, err := o.Model.GetNode(o.NodeId)
	if err != nil {
		return err
	}
	return o.Model.MoveNode(o.NodeId, n.X+o.Dx, n.Y+o.Dy, n.Z+o.Dz)
}

func (o *MoveNodeBy) Undo() error {
	n, err := o.Model.GetNode(o.NodeId)
	if err != nil {
		return err
	}
	return o.Model.MoveNode(o.NodeId, n.X-o.Dx, n.Y-o.Dy, n.Z-o.Dz)
}

func (o *MoveNodeBy) Descr() string {
	return io.Sf("move node %d by (%g, %g, %g)", o.NodeId, o.Dx, o.Dy, o.Dz)
}

// SetRestraint replaces the boundary conditions of a node
type SetRestraint struct {
	Model     *mdl.Model
	NodeId    int
	Restraint mdl.Restraint

	old mdl.Restraint
}

func (o *SetRestraint) Execute() error {
	n, err := o.Model.GetNode(o.NodeId)
	if err != nil {
		return err
	}
	o.old = n.Restraint
	return o.Model.SetRestraint(o.NodeId, o.Restraint)
}

func (o *SetRestraint) Undo() error {
	return o.Model.SetRestraint(o.NodeId, o.old)
}

func (o *SetRestraint) Descr() string {
	return io.Sf("set restraint of node %d to %s", o.NodeId, o.Restraint.Kind())
}

// CreateFrame adds a member; like CreateNode, the first assigned id is
// reused on redo
type CreateFrame struct {
	Model        *mdl.Model
	NodeI, NodeJ int
	MatName      string
	SecName      string
	Rot          float64
	Releases     mdl.FrameReleases
	Label        string

	frame *mdl.Frame
	id    int
}

func (o *CreateFrame) Execute() (err error) {
	if o.id == 0 {
		o.frame, err = o.Model.AddFrame(o.NodeI, o.NodeJ, o.MatName, o.SecName, o.Rot, o.Releases, o.Label)
		if err == nil {
			o.id = o.frame.Id
		}
		return
	}
	o.frame, err = o.Model.AddFrameWithId(o.id, o.NodeI, o.NodeJ, o.MatName, o.SecName, o.Rot, o.Releases, o.Label)
	return
}

func (o *CreateFrame) Undo() error {
	_, err := o.Model.RemoveFrame(o.id)
	return err
}

func (o *CreateFrame) Descr() string {
	return io.Sf("create frame from node %d to %d", o.NodeI, o.NodeJ)
}

// Frame returns the created frame (after Execute)
func (o *CreateFrame) Frame() *mdl.Frame { return o.frame }

// DeleteFrame removes a member, keeping its data for undo
type DeleteFrame struct {
	Model   *mdl.Model
	FrameId int

	deleted *mdl.Frame
}

func (o *DeleteFrame) Execute() (err error) {
	o.deleted, err = o.Model.RemoveFrame(o.FrameId)
	return
}

func (o *DeleteFrame) Undo() error {
	f := o.deleted
	_, err := o.Model.AddFrameWithId(f.Id, f.NodeI, f.NodeJ, f.MatName, f.SecName, f.Rot, f.Releases, f.Label)
	return err
}

func (o *DeleteFrame) Descr() string { return io.Sf("delete frame %d", o.FrameId) }

// SetFrameMaterial changes the material reference of a member
type SetFrameMaterial struct {
	Model   *mdl.Model
	FrameId int
	MatName string

	old string
}

func (o *SetFrameMaterial) Execute() error {
	f, err := o.Model.GetFrame(o.FrameId)
	if err != nil {
		return err
	}
	o.old = f.MatName
	return o.Model.SetFrameMaterial(o.FrameId, o.MatName)
}

func (o *SetFrameMaterial) Undo() error {
	return o.Model.SetFrameMaterial(o.FrameId, o.old)
}

func (o *SetFrameMaterial) Descr() string {
	return io.Sf("set material of frame %d to %s", o.FrameId, o.MatName)
}

// SetFrameSection changes the section reference of a member
type SetFrameSection struct {
	Model   *mdl.Model
	FrameId int
	SecName string

	old string
}

func (o *SetFrameSection) Execute() error {
	f, err := o.Model.GetFrame(o.FrameId)
	if err != nil {
		return err
	}
	o.old = f.SecName
	return o.Model.SetFrameSection(o.FrameId, o.SecName)
}

func (o *SetFrameSection) Undo() error {
	return o.Model.SetFrameSection(o.FrameId, o.old)
}

func (o *SetFrameSection) Descr() string {
	return io.Sf("set section of frame %d to %s", o.FrameId, o.SecName)
}

// SetFrameRotation changes the local-axis rotation of a member
type SetFrameRotation struct {
	Model   *mdl.Model
	FrameId int
	Rot     float64

	old float64
}

func (o *SetFrameRotation) Execute() error {
	f, err := o.Model.GetFrame(o.FrameId)
	if err != nil {
		return err
	}
	o.old = f.Rot
	return o.Model.SetFrameRotation(o.FrameId, o.Rot)
}

func (o *SetFrameRotation) Undo() error {
	return o.Model.SetFrameRotation(o.FrameId, o.old)
}

func (o *SetFrameRotation) Descr() string {
	return io.Sf("set rotation of frame %d to %g", o.FrameId, o.Rot)
}

// SetFrameReleases changes the end releases of a member
type SetFrameReleases struct {
	Model    *mdl.Model
	FrameId  int
	Releases mdl.FrameReleases

	old mdl.FrameReleases
}

func (o *SetFrameReleases) Execute() error {
	f, err := o.Model.GetFrame(o.FrameId)
	if err != nil {
		return err
	}
	o.old = f.Releases
	return o.Model.SetFrameReleases(o.FrameId, o.Releases)
}

func (o *SetFrameReleases) Undo() error {
	return o.Model.SetFrameReleases(o.FrameId, o.old)
}

func (o *SetFrameReleases) Descr() string {
	return io.Sf("set releases of frame %d", o.FrameId)
}

// RemoveFrameLoads drops all loads targeting a member, over all cases
type RemoveFrameLoads struct {
	Loads   *lds.Set
	FrameId int

	dist   []*lds.DistLoad
	points []*lds.PointLoad
}

func (o *RemoveFrameLoads) Execute() error {
	o.dist, o.points = o.Loads.RemoveLoadsOnFrame(o.FrameId)
	return nil
}

func (o *RemoveFrameLoads) Undo() error {
	for _, l := range o.dist {
		if err := o.Loads.AddDist(l); err != nil {
			return err
		}
	}
	for _, l := range o.points {
		if err := o.Loads.AddPoint(l); err != nil {
			return err
		}
	}
	o.dist, o.points = nil, nil
	return nil
}

func (o *RemoveFrameLoads) Descr() string {
	return io.Sf("remove loads on frame %d", o.FrameId)
}

// Composite groups commands into one history entry. Execution stops at
// the first failure and rolls back the already-executed part; undo
// runs in reverse order.
type Composite struct {
	Cmds  []Command
	Label string

	done int
}

func (o *Composite) Execute() error {
	o.done = 0
	for _, cmd := range o.Cmds {
		if err := cmd.Execute(); err != nil {
			for i := o.done - 1; i >= 0; i-- {
				if uerr := o.Cmds[i].Undo(); uerr != nil {
					o.done = i + 1 // commands up to i are still applied
					return chk.Err("%v (rollback of %q also failed: %v)", err, o.Cmds[i].Descr(), uerr)
				}
			}
			o.done = 0
			return err
		}
		o.done++
	}
	return nil
}

func (o *Composite) Undo() error {
	for i := o.done - 1; i >= 0; i-- {
		if err := o.Cmds[i].Undo(); err != nil {
			return err
		}
	}
	o.done = 0
	return nil
}

func (o *Composite) Descr() string {
	if o.Label != "" {
		return o.Label
	}
	return io.Sf("composite (%d commands)", len(o.Cmds))
}
