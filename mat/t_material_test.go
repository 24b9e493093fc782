// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_material01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material01. derived moduli and validation")

	steel := Material{Name: "A36", Type: TypeSteel, E: 200e6, Nu: 0.3, Rho: 7850, Fy: 250e3, Fu: 400e3}
	if err := steel.Validate(); err != nil {
		tst.Errorf("validate failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "G", 1e-6, steel.G(), 200e6/2.6)
	chk.Scalar(tst, "K", 1e-6, steel.K(), 200e6/1.2)

	rubberish := Material{Name: "x", Type: TypeOther, E: 1000, Nu: 0.5, Rho: 1000}
	if !math.IsInf(rubberish.K(), 1) {
		tst.Errorf("incompressible material must have infinite bulk modulus\n")
	}

	bad := []Material{
		{Name: "a", E: 0, Nu: 0.3, Rho: 7850},
		{Name: "b", E: 200e6, Nu: 0.6, Rho: 7850},
		{Name: "c", E: 200e6, Nu: -0.1, Rho: 7850},
		{Name: "d", E: 200e6, Nu: 0.3, Rho: 0},
		{Name: "e", E: 200e6, Nu: 0.3, Rho: 7850, Fy: 400e3, Fu: 250e3},
	}
	for _, m := range bad {
		if err := m.Validate(); err == nil {
			tst.Errorf("material %q must be rejected\n", m.Name)
			return
		} else {
			io.Pfgrey("%q rejected: %v\n", m.Name, err)
		}
	}
}

func Test_material02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material02. reading a material library")

	db, err := ReadMat("data/library.mat")
	if err != nil {
		tst.Errorf("ReadMat failed: %v\n", err)
		return
	}
	chk.IntAssert(len(db.Materials), 4)

	a36 := db.Get("A36")
	if a36 == nil {
		tst.Errorf("A36 not found\n")
		return
	}
	chk.StrAssert(a36.Type, TypeSteel)
	chk.Scalar(tst, "E  ", 1e-17, a36.E, 200e6)
	chk.Scalar(tst, "rho", 1e-17, a36.Rho, 7850)

	if db.Get("unobtainium") != nil {
		tst.Errorf("absent material must return nil\n")
	}

	// copies are independent
	dup := a36.Copy("")
	chk.StrAssert(dup.Name, "A36 (copy)")
	dup.E = 1
	chk.Scalar(tst, "original E untouched", 1e-17, a36.E, 200e6)
}

func Test_material03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material03. stress unit conversions")

	chk.Scalar(tst, "MPa->kPa", 1e-17, MpaToKpa(250), 250000)
	chk.Scalar(tst, "ksi->kPa", 1e-10, KsiToKpa(36), 248211.36)
}
