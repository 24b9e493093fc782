// Copyright 2025 The Strucs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/guptarohit/asciigraph"
)

// Diagram renders the sampled values of one force component as a
// terminal plot. The component is one of "P", "V2", "V3", "T", "M2"
// or "M3"; height is in character rows.
func Diagram(fr *FrameResult, component string, height int) string {
	vals := fr.Series(component)
	if len(vals) == 0 {
		return ""
	}
	if height <= 0 {
		height = 10
	}
	caption := io.Sf("frame %d: %s along member (kN or kN·m)", fr.FrameId, component)
	return asciigraph.Plot(vals,
		asciigraph.Height(height),
		asciigraph.Width(4*len(vals)),
		asciigraph.Caption(caption),
	)
}

// MomentDiagram renders the major-axis bending moment diagram
func MomentDiagram(fr *FrameResult, height int) string {
	return Diagram(fr, "M3", height)
}

// ShearDiagram renders the major-axis shear diagram
func ShearDiagram(fr *FrameResult, height int) string {
	return Diagram(fr, "V2", height)
}

// AxialDiagram renders the axial force diagram
func AxialDiagram(fr *FrameResult, height int) string {
	return Diagram(fr, "P", height)
}

// ForceTable formats the force samples of one member as a fixed-width
// table, one row per station
func ForceTable(fr *FrameResult) (l string) {
	l = io.Sf("frame %d\n", fr.FrameId)
	l += io.Sf("%8s%12s%12s%12s%12s%12s%12s\n", "loc", "P", "V2", "V3", "T", "M2", "M3")
	for _, f := range fr.Forces {
		l += io.Sf("%8.3f%12.4f%12.4f%12.4f%12.4f%12.4f%12.4f\n", f.Loc, f.P, f.V2, f.V3, f.T, f.M2, f.M3)
	}
	l += io.Sf("envelope: P=[%g,%g] V=%g M=%g T=%g\n", fr.PMin(), fr.PMax(), fr.VMax(), fr.MMax(), fr.TMax())
	return
}
