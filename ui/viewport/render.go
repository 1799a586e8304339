package viewport

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"gridboard/internal/view"
)

// GridOptions configures the background grid.
type GridOptions struct {
	// Draw enables the grid. Off by default.
	Draw bool
	// CellSize is the spacing between grid lines in logical units.
	CellSize float64
	// LineWidth is the grid stroke width in logical units.
	LineWidth float64
	// LineColor is a hex color string such as "#e6e6e6".
	LineColor string
}

const (
	defaultCellSize  = 40
	defaultLineWidth = 1
	defaultLineColor = "#e6e6e6"
)

func (g GridOptions) withDefaults() GridOptions {
	if g.CellSize <= 0 {
		g.CellSize = defaultCellSize
	}
	if g.LineWidth <= 0 {
		g.LineWidth = defaultLineWidth
	}
	if g.LineColor == "" {
		g.LineColor = defaultLineColor
	}
	return g
}

// renderFrame runs one pass of the render pipeline into buf: clear the
// whole backing buffer, draw the grid when enabled, then each drawable
// in slice order (later drawables paint over earlier ones). A nil entry
// in objects is a host programming error: rendering aborts and the error
// propagates.
func renderFrame(buf *image.RGBA, v *view.View, grid GridOptions, objects []Drawable) error {
	cfg := v.Config()
	bounds := buf.Bounds()

	// Clear covers the full backing store regardless of the current
	// transform, so no stale pixels survive a zoomed-in frame.
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for i := 0; i < len(buf.Pix); i += 4 {
		buf.Pix[i] = white.R
		buf.Pix[i+1] = white.G
		buf.Pix[i+2] = white.B
		buf.Pix[i+3] = white.A
	}

	extentW := cfg.NativeWidth * cfg.Density
	extentH := cfg.NativeHeight * cfg.Density
	kx := float64(bounds.Dx()) / extentW
	ky := float64(bounds.Dy()) / extentH
	s := newSurface(buf, v.Transform(), kx, ky)

	if grid.Draw {
		drawGrid(s, grid.withDefaults(), extentW, extentH)
	}

	for i, obj := range objects {
		if obj == nil {
			return fmt.Errorf("drawable %d has no draw capability", i)
		}
		obj.Draw(s)
	}

	return nil
}

// drawGrid draws grid lines across the full density-scaled native rect.
// The lines live in logical space, so the view transform repositions
// them; drawing the full extent rather than the visible sub-region keeps
// edge density stable while panning.
func drawGrid(s *Surface, grid GridOptions, extentW, extentH float64) {
	col := parseHexColor(grid.LineColor)

	for _, x := range gridOffsets(extentW, grid.CellSize) {
		s.Line(x, 0, x, extentH, col, grid.LineWidth)
	}
	for _, y := range gridOffsets(extentH, grid.CellSize) {
		s.Line(0, y, extentW, y, col, grid.LineWidth)
	}
}

// gridOffsets returns the line positions covering [0, extent] at cell
// spacing: ceil(extent/cell)+1 lines, the last one at or past the edge.
func gridOffsets(extent, cell float64) []float64 {
	if extent <= 0 || cell <= 0 {
		return nil
	}
	n := int(math.Ceil(extent / cell))
	offsets := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		offsets = append(offsets, float64(i)*cell)
	}
	return offsets
}

// parseHexColor parses "#rgb" and "#rrggbb" color strings, falling back
// to the default grid color on malformed input.
func parseHexColor(s string) color.RGBA {
	fallback := color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}
	if len(s) == 0 || s[0] != '#' {
		return fallback
	}

	hex := s[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return fallback
	}

	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{
		R: uint8(val >> 16),
		G: uint8(val >> 8),
		B: uint8(val),
		A: 0xff,
	}
}
