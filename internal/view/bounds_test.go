package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridboard/pkg/geometry"
)

func TestEnforceBoundsRestoresMinimumScale(t *testing.T) {
	cases := []geometry.AffineTransform{
		{A: 0.5, D: 0.5},
		{A: 0.99, D: 1.2},
		{A: 3, D: 0.1},
	}

	for _, tr := range cases {
		v := newTestView()
		v.SetTransform(tr)
		v.EnforceBounds()

		got := v.Transform()
		assert.GreaterOrEqual(t, got.A, MinScale)
		assert.GreaterOrEqual(t, got.D, MinScale)
	}
}

func TestEnforceBoundsClampsTranslation(t *testing.T) {
	v := newTestView()

	// Positive translation means panning past the top-left edge.
	v.SetTransform(geometry.AffineTransform{A: 2, D: 2, TX: 50, TY: 10})
	v.EnforceBounds()
	assert.Equal(t, 0.0, v.Transform().TX)
	assert.Equal(t, 0.0, v.Transform().TY)

	// At scale 2 on a 700-wide native rect with density 2 the most
	// negative allowed translation is -(1400-700)*2 = -1400.
	v.SetTransform(geometry.AffineTransform{A: 2, D: 2, TX: -1e6, TY: -1e6})
	v.EnforceBounds()
	assert.Equal(t, -1400.0, v.Transform().TX)
	assert.Equal(t, -1400.0, v.Transform().TY)
}

func TestEnforceBoundsIdempotent(t *testing.T) {
	cases := []geometry.AffineTransform{
		{A: 0.3, D: 0.3, TX: 900, TY: -9000},
		{A: 2.5, D: 2.5, TX: -100, TY: -3000},
		{A: 1, D: 1},
		{A: 4, D: 4, TX: -4200, TY: 0},
	}

	for _, tr := range cases {
		v := newTestView()
		v.SetTransform(tr)
		v.EnforceBounds()
		once := v.Transform()
		v.EnforceBounds()
		assert.Equal(t, once, v.Transform())
	}
}

// After enforcement the visible region must sit inside the native
// content rect: the logical mapping of every on-screen device point
// stays within [0, native*density] on both axes.
func TestVisibleRegionContained(t *testing.T) {
	cases := []geometry.AffineTransform{
		{A: 1.5, D: 1.5, TX: 400, TY: -90000},
		{A: 0.2, D: 0.2, TX: -50, TY: 70},
		{A: 5, D: 5, TX: -3000, TY: -100},
	}

	for _, tr := range cases {
		v := newTestView()
		v.SetTransform(tr)
		v.EnforceBounds()

		cfg := v.Config()
		topLeft := v.ToLogical(0, 0)
		bottomRight := v.ToLogical(cfg.NativeWidth, cfg.NativeHeight)

		assert.GreaterOrEqual(t, topLeft.X, -1e-9)
		assert.GreaterOrEqual(t, topLeft.Y, -1e-9)
		assert.LessOrEqual(t, bottomRight.X, cfg.NativeWidth*cfg.Density+1e-9)
		assert.LessOrEqual(t, bottomRight.Y, cfg.NativeHeight*cfg.Density+1e-9)
	}
}
