// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hist implements reversible model edits: the Command
// interface, the concrete commands, and the bounded undo/redo history.
package hist

// MaxUndoLevels is the default depth of the undo stack
const MaxUndoLevels = 50

// Command is a reversible model edit. Execute applies the edit and
// captures whatever prior state Undo needs; Undo restores it. A
// command is executed and undone strictly alternately by History.
type Command interface {
	Execute() error // apply the edit
	Undo() error    // restore the captured prior state
	Descr() string  // short human-readable description
}

// History keeps two bounded stacks of executed commands. Executing a
// new command invalidates the redo stack; exceeding the depth evicts
// the oldest undoable command.
type History struct {
	undo []Command
	redo []Command
	max  int
}

// NewHistory creates a history with the given depth; zero or negative
// means MaxUndoLevels
func NewHistory(max int) *History {
	if max <= 0 {
		max = MaxUndoLevels
	}
	return &History{max: max}
}

// Execute runs a command and pushes it onto the undo stack. Failed
// commands are not recorded.
func (o *History) Execute(cmd Command) error {
	if err := cmd.Execute(); err != nil {
		return err
	}
	o.undo = append(o.undo, cmd)
	if len(o.undo) > o.max {
		o.undo = o.undo[len(o.undo)-o.max:]
	}
	o.redo = o.redo[:0]
	return nil
}

// Undo reverses the most recent command; ok is false when there is
// nothing to undo. A command whose Undo fails stays on the undo stack.
func (o *History) Undo() (ok bool, err error) {
	if len(o.undo) == 0 {
		return false, nil
	}
	cmd := o.undo[len(o.undo)-1]
	if err = cmd.Undo(); err != nil {
		return false, err
	}
	o.undo = o.undo[:len(o.undo)-1]
	o.redo = append(o.redo, cmd)
	return true, nil
}

// Redo re-applies the most recently undone command; ok is false when
// there is nothing to redo. A command whose Execute fails stays on the
// redo stack.
func (o *History) Redo() (ok bool, err error) {
	if len(o.redo) == 0 {
		return false, nil
	}
	cmd := o.redo[len(o.redo)-1]
	if err = cmd.Execute(); err != nil {
		return false, err
	}
	o.redo = o.redo[:len(o.redo)-1]
	o.undo = append(o.undo, cmd)
	return true, nil
}

// CanUndo tells whether the undo stack is non-empty
func (o *History) CanUndo() bool { return len(o.undo) > 0 }

// CanRedo tells whether the redo stack is non-empty
func (o *History) CanRedo() bool { return len(o.redo) > 0 }

// UndoDescr returns the description of the next command to undo, or ""
func (o *History) UndoDescr() string {
	if len(o.undo) == 0 {
		return ""
	}
	return o.undo[len(o.undo)-1].Descr()
}

// RedoDescr returns the description of the next command to redo, or ""
func (o *History) RedoDescr() string {
	if len(o.redo) == 0 {
		return ""
	}
	return o.redo[len(o.redo)-1].Descr()
}

// UndoHistory lists undoable descriptions, most recent first
func (o *History) UndoHistory() (res []string) {
	for i := len(o.undo) - 1; i >= 0; i-- {
		res = append(res, o.undo[i].Descr())
	}
	return
}

// RedoHistory lists redoable descriptions, most recent first
func (o *History) RedoHistory() (res []string) {
	for i := len(o.redo) - 1; i >= 0; i-- {
		res = append(res, o.redo[i].Descr())
	}
	return
}

// UndoCount returns the undo stack size
func (o *History) UndoCount() int { return len(o.undo) }

// RedoCount returns the redo stack size
func (o *History) RedoCount() int { return len(o.redo) }

// Clear drops both stacks
func (o *History) Clear() {
	o.undo = o.undo[:0]
	o.redo = o.redo[:0]
}
