// Package view implements the viewport core: the affine view transform,
// device-to-logical coordinate mapping, and bounds enforcement. It is
// pure state and math with no UI toolkit dependency.
package view

import (
	"gridboard/pkg/geometry"
)

// MinScale is the smallest allowed zoom. The view can never be zoomed
// out past the content's native size.
const MinScale = 1.0

// DefaultMaxZoom is the upper zoom bound used when none is configured.
const DefaultMaxZoom = 5.0

// Config holds the fixed parameters of a view. It does not change after
// the view is created.
type Config struct {
	// NativeWidth and NativeHeight are the content's native size in
	// device-independent pixels.
	NativeWidth  float64
	NativeHeight float64

	// Density is the device pixel ratio between the backing store and
	// device-independent coordinates. Clamped to a minimum of 2 so the
	// backing store stays crisp on low-density displays.
	Density float64

	// MaxZoom is the soft upper zoom bound. It is checked before a
	// zoom-in is issued, not clamped afterwards.
	MaxZoom float64
}

// View owns the viewport transform. All zoom and pan state flows through
// it; it is the single piece of shared mutable state in the core.
type View struct {
	cfg Config
	t   geometry.AffineTransform
}

// New creates a view with the identity transform. Density is clamped to
// a minimum of 2 and MaxZoom defaults to DefaultMaxZoom.
func New(cfg Config) *View {
	if cfg.Density < 2 {
		cfg.Density = 2
	}
	if cfg.MaxZoom <= 0 {
		cfg.MaxZoom = DefaultMaxZoom
	}
	return &View{cfg: cfg, t: geometry.Identity()}
}

// Config returns the fixed view parameters.
func (v *View) Config() Config {
	return v.cfg
}

// Transform returns the current view transform.
func (v *View) Transform() geometry.AffineTransform {
	return v.t
}

// SetTransform replaces the whole transform.
func (v *View) SetTransform(t geometry.AffineTransform) {
	v.t = t
}

// Scale returns the current uniform zoom factor.
func (v *View) Scale() float64 {
	return v.t.A
}

// Translate pans the view by (dx, dy) logical units. The offsets land in
// the matrix pre-multiplied by the current scale, standard composition
// order: new = current ∘ translation. No bounds are applied here.
func (v *View) Translate(dx, dy float64) {
	v.t = v.t.Compose(geometry.Translation(dx, dy))
}

// ScaleAbout zooms by factor around the given logical pivot point, so
// the pivot stays stationary on screen. No bounds are applied here.
func (v *View) ScaleAbout(factor float64, pivot geometry.Point2D) {
	v.t = v.t.Compose(geometry.ScaleAbout(factor, pivot))
}
