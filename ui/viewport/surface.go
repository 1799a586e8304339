package viewport

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"gridboard/pkg/geometry"
)

// Surface is the drawing target handed to each Drawable. Coordinates
// passed to its primitives are logical canvas units; the surface applies
// the live view transform and maps the result into the backing buffer.
type Surface struct {
	buf    *image.RGBA
	t      geometry.AffineTransform
	kx, ky float64 // buffer pixels per logical backing unit
}

func newSurface(buf *image.RGBA, t geometry.AffineTransform, kx, ky float64) *Surface {
	return &Surface{buf: buf, t: t, kx: kx, ky: ky}
}

// Transform returns the view transform active for this frame.
func (s *Surface) Transform() geometry.AffineTransform {
	return s.t
}

// device maps a logical point into buffer pixel coordinates.
func (s *Surface) device(x, y float64) (float64, float64) {
	p := s.t.Apply(geometry.Point2D{X: x, Y: y})
	return p.X * s.kx, p.Y * s.ky
}

// strokeWidth converts a logical line width into buffer pixels, never
// thinner than one pixel.
func (s *Surface) strokeWidth(w float64) int {
	px := int(math.Round(w * s.t.A * s.kx))
	if px < 1 {
		px = 1
	}
	return px
}

// setPixel writes a pixel clipped against the buffer bounds.
func (s *Surface) setPixel(x, y int, col color.RGBA) {
	b := s.buf.Bounds()
	if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
		s.buf.SetRGBA(x, y, col)
	}
}

// Line draws a line between two logical points using Bresenham's
// algorithm with the given logical stroke width.
func (s *Surface) Line(x1, y1, x2, y2 float64, col color.RGBA, width float64) {
	dx1, dy1 := s.device(x1, y1)
	dx2, dy2 := s.device(x2, y2)
	s.lineDevice(int(math.Round(dx1)), int(math.Round(dy1)),
		int(math.Round(dx2)), int(math.Round(dy2)), col, s.strokeWidth(width))
}

func (s *Surface) lineDevice(x1, y1, x2, y2 int, col color.RGBA, thickness int) {
	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		for t := -thickness / 2; t <= thickness/2; t++ {
			for u := -thickness / 2; u <= thickness/2; u++ {
				s.setPixel(x1+u, y1+t, col)
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// deviceRect maps a logical rect into integer buffer coordinates. The
// transform carries no rotation, so the rect stays axis-aligned.
func (s *Surface) deviceRect(r geometry.Rect) (x1, y1, x2, y2 int) {
	fx1, fy1 := s.device(r.X, r.Y)
	fx2, fy2 := s.device(r.X+r.Width, r.Y+r.Height)
	return int(math.Round(fx1)), int(math.Round(fy1)), int(math.Round(fx2)), int(math.Round(fy2))
}

// FillRect fills a logical rectangle.
func (s *Surface) FillRect(r geometry.Rect, col color.RGBA) {
	x1, y1, x2, y2 := s.deviceRect(r)
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			s.setPixel(x, y, col)
		}
	}
}

// StrokeRect outlines a logical rectangle with the given logical stroke
// width.
func (s *Surface) StrokeRect(r geometry.Rect, col color.RGBA, width float64) {
	x1, y1, x2, y2 := s.deviceRect(r)
	thickness := s.strokeWidth(width)

	for t := 0; t < thickness; t++ {
		for x := x1; x <= x2; x++ {
			s.setPixel(x, y1+t, col)
			s.setPixel(x, y2-t, col)
		}
		for y := y1; y <= y2; y++ {
			s.setPixel(x1+t, y, col)
			s.setPixel(x2-t, y, col)
		}
	}
}

// FillCircle fills a circle centered at a logical point with a logical
// radius.
func (s *Surface) FillCircle(cx, cy, radius float64, col color.RGBA) {
	dcx, dcy := s.device(cx, cy)
	r := radius * s.t.A * s.kx

	minX := int(dcx - r - 1)
	maxX := int(dcx + r + 1)
	minY := int(dcy - r - 1)
	maxY := int(dcy + r + 1)
	r2 := r * r

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x) - dcx
			dy := float64(y) - dcy
			if dx*dx+dy*dy <= r2 {
				s.setPixel(x, y, col)
			}
		}
	}
}

// DrawImage scales img into the logical destination rect.
func (s *Surface) DrawImage(img image.Image, dst geometry.Rect) {
	if img == nil {
		return
	}
	x1, y1, x2, y2 := s.deviceRect(dst)
	target := image.Rect(x1, y1, x2, y2).Intersect(s.buf.Bounds())
	if target.Empty() {
		return
	}
	xdraw.ApproxBiLinear.Scale(s.buf, image.Rect(x1, y1, x2, y2), img, img.Bounds(), xdraw.Over, nil)
}
