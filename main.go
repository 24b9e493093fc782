// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Strucs is a linear static analysis tool for 3D frame structures.
package main

import (
	"github.com/p-astudillo/nifes-strucs-sub001/cmd"
)

func main() {
	cmd.Execute()
}
