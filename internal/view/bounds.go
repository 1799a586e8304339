package view

import (
	"gridboard/pkg/geometry"
)

// EnforceBounds clamps the transform so the view never zooms out past
// the native size and never pans to expose area outside the native
// content rect. The clamped values are written back as a whole-transform
// replacement so repeated relative transforms cannot accumulate float
// drift into the bounds.
//
// The max zoom is deliberately not enforced here: undoing an applied
// scale-about-pivot composite is not a simple clamp, so the interaction
// layer checks it before issuing a zoom-in.
func (v *View) EnforceBounds() {
	t := v.t

	if t.A < MinScale {
		t.A = MinScale
	}
	if t.D < MinScale {
		t.D = MinScale
	}

	// The right/bottom edge of the scaled content may not move inside
	// the canvas's right/bottom edge, and translation 0 means no pan.
	scaledW := v.cfg.NativeWidth * t.A
	scaledH := v.cfg.NativeHeight * t.D
	minTX := -(scaledW - v.cfg.NativeWidth) * v.cfg.Density
	minTY := -(scaledH - v.cfg.NativeHeight) * v.cfg.Density

	t.TX = clamp(t.TX, minTX, 0)
	t.TY = clamp(t.TY, minTY, 0)

	v.t = geometry.AffineTransform{A: t.A, B: t.B, TX: t.TX, C: t.C, D: t.D, TY: t.TY}
}

func clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
