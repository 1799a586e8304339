// Package viewport provides an interactive zoom/pan canvas widget that
// composites a background grid with host-owned drawable objects.
package viewport

import (
	"gridboard/pkg/geometry"
)

// Drawable is an object the host places on the canvas. The host owns the
// collection and its lifecycle; the viewport only reads it and invokes
// the contract. Drawing is the one mandatory capability.
type Drawable interface {
	Draw(s *Surface)
}

// Toucher is the optional hit-test capability. Coordinates are logical
// (de-zoomed, de-panned) canvas space. A drawable without it is simply
// not interactive.
type Toucher interface {
	Touches(x, y float64) bool
}

// Mover is the optional reposition capability. A drawable that exposes
// it is dragged on pointer gestures instead of panning the view.
type Mover interface {
	Move(p geometry.Point2D)
}

// ContextMenuEvent is passed to the host's context-menu callback on a
// secondary click.
type ContextMenuEvent struct {
	// Point is the click position in logical canvas coordinates.
	Point geometry.Point2D
	// Object is the topmost hit-tested drawable, or nil for empty space.
	Object Drawable
	// ScreenX and ScreenY are the raw event position relative to the
	// window, before any coordinate mapping.
	ScreenX, ScreenY float32
}
