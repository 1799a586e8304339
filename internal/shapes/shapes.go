// Package shapes provides ready-made drawables for hosts of the
// viewport widget. Box and Disc are interactive (hit-testable and
// movable); Sprite is draw-only.
package shapes

import (
	"image"
	"image/color"

	"gridboard/pkg/geometry"
	"gridboard/ui/viewport"
)

// Box is a filled, outlined rectangle. Dragging moves its center to the
// pointer.
type Box struct {
	Rect    geometry.Rect
	Fill    color.RGBA
	Outline color.RGBA
}

// NewBox creates a box with the given bounds and fill color.
func NewBox(r geometry.Rect, fill color.RGBA) *Box {
	return &Box{
		Rect:    r,
		Fill:    fill,
		Outline: color.RGBA{A: 255},
	}
}

// Draw implements viewport.Drawable.
func (b *Box) Draw(s *viewport.Surface) {
	s.FillRect(b.Rect, b.Fill)
	s.StrokeRect(b.Rect, b.Outline, 2)
}

// Touches implements viewport.Toucher.
func (b *Box) Touches(x, y float64) bool {
	return b.Rect.Contains(geometry.Point2D{X: x, Y: y})
}

// Move implements viewport.Mover.
func (b *Box) Move(p geometry.Point2D) {
	b.Rect.X = p.X - b.Rect.Width/2
	b.Rect.Y = p.Y - b.Rect.Height/2
}

// Disc is a filled circle. Dragging moves its center to the pointer.
type Disc struct {
	Center geometry.Point2D
	Radius float64
	Fill   color.RGBA
}

// NewDisc creates a disc at the given center.
func NewDisc(center geometry.Point2D, radius float64, fill color.RGBA) *Disc {
	return &Disc{Center: center, Radius: radius, Fill: fill}
}

// Draw implements viewport.Drawable.
func (d *Disc) Draw(s *viewport.Surface) {
	s.FillCircle(d.Center.X, d.Center.Y, d.Radius, d.Fill)
}

// Touches implements viewport.Toucher.
func (d *Disc) Touches(x, y float64) bool {
	return d.Center.Distance(geometry.Point2D{X: x, Y: y}) <= d.Radius
}

// Move implements viewport.Mover.
func (d *Disc) Move(p geometry.Point2D) {
	d.Center = p
}

// Sprite renders an image scaled into a logical rect. It carries no hit
// or move capability, so pointer gestures over it pan the view.
type Sprite struct {
	Img  image.Image
	Rect geometry.Rect
}

// NewSprite creates a sprite covering the given bounds.
func NewSprite(img image.Image, r geometry.Rect) *Sprite {
	return &Sprite{Img: img, Rect: r}
}

// Draw implements viewport.Drawable.
func (sp *Sprite) Draw(s *viewport.Surface) {
	s.DrawImage(sp.Img, sp.Rect)
}
