package view

import (
	"gridboard/pkg/geometry"
)

// ToLogical converts a device position (as delivered by pointer events,
// in device-independent pixels) into the content's logical coordinate
// space: the backing-store scale-up is undone by the density factor and
// the current zoom and pan are inverted. Under the identity transform
// ToLogical(x, y) == (x*density, y*density).
func (v *View) ToLogical(deviceX, deviceY float64) geometry.Point2D {
	invX := 1 / v.t.A
	invY := 1 / v.t.D
	return geometry.Point2D{
		X: invX*deviceX*v.cfg.Density - invX*v.t.TX,
		Y: invY*deviceY*v.cfg.Density - invY*v.t.TY,
	}
}
