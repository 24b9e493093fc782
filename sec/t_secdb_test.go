// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_secdb01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("secdb01. reading a section library")

	db, err := ReadSec("data/library.sec")
	if err != nil {
		tst.Errorf("ReadSec failed: %v\n", err)
		return
	}
	chk.IntAssert(len(db.Sections), 3)

	w := db.Get("W310x39")
	if w == nil {
		tst.Errorf("W310x39 not found\n")
		return
	}
	io.Pforan("%v\n", w.GetInfoString())
	chk.StrAssert(w.Shape, KindIBeam)
	chk.Scalar(tst, "A ", 1e-17, w.A, 0.00494)
	chk.Scalar(tst, "Ix", 1e-17, w.Ix, 8.49e-05)
	chk.Scalar(tst, "d ", 1e-17, w.Dims["d"], 0.31)

	if db.Get("missing") != nil {
		tst.Errorf("absent section must return nil\n")
	}
}

func Test_secdb02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("secdb02. adding and replacing records")

	db := new(SecDb)
	r, err := FromShape("R30x50", Rect{B: 0.3, H: 0.5})
	if err != nil {
		tst.Errorf("FromShape failed: %v\n", err)
		return
	}
	db.Add(r)
	chk.IntAssert(len(db.Sections), 1)

	// same name replaces in place
	r2, err := FromShape("R30x50", Rect{B: 0.3, H: 0.6})
	if err != nil {
		tst.Errorf("FromShape failed: %v\n", err)
		return
	}
	db.Add(r2)
	chk.IntAssert(len(db.Sections), 1)
	chk.Scalar(tst, "replaced A", 1e-17, db.Get("R30x50").A, 0.18)
}
