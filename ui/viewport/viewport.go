package viewport

import (
	"fmt"
	"image"
	"log"
	"math"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"gridboard/internal/view"
	"gridboard/pkg/geometry"
)

const (
	zoomInStep  = 1.02
	zoomOutStep = 0.98
)

// Options configures a Viewport at construction time.
type Options struct {
	// Width and Height are the content's native size in
	// device-independent pixels.
	Width, Height float64
	// Density is the device pixel ratio; values below 2 are raised to 2.
	Density float64
	// MaxZoom is the soft upper zoom bound, default 5.
	MaxZoom float64
	// Grid configures the background grid.
	Grid GridOptions
	// Objects is the host-owned ordered drawable list; nil is treated
	// as empty.
	Objects []Drawable
	// OnContextMenu is invoked on secondary clicks.
	OnContextMenu func(ContextMenuEvent)
}

// interaction is the transient per-gesture state. The two fields are
// mutually exclusive: at most one is set between pointer-down and
// pointer-up.
type interaction struct {
	dragging  Drawable          // drawable being moved
	panAnchor *geometry.Point2D // logical anchor of an active pan
}

// Viewport is a fyne widget hosting the zoom/pan canvas. All event
// handling runs synchronously on the fyne event loop, so the transform
// and interaction state have a single writer.
type Viewport struct {
	widget.BaseWidget

	view    *view.View
	opts    Options
	objects []Drawable
	raster  *fynecanvas.Raster
	state   interaction
}

// New creates a viewport widget. Zero-valued options get defaults:
// 700x700 native size, density 2, max zoom 5, grid off.
func New(opts Options) *Viewport {
	if opts.Width <= 0 {
		opts.Width = 700
	}
	if opts.Height <= 0 {
		opts.Height = 700
	}

	v := &Viewport{
		opts:    opts,
		objects: opts.Objects,
		view: view.New(view.Config{
			NativeWidth:  opts.Width,
			NativeHeight: opts.Height,
			Density:      opts.Density,
			MaxZoom:      opts.MaxZoom,
		}),
	}

	v.raster = fynecanvas.NewRaster(v.draw)
	v.raster.ScaleMode = fynecanvas.ImageScalePixels
	v.raster.SetMinSize(fyne.NewSize(float32(opts.Width), float32(opts.Height)))

	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget.
func (v *Viewport) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// draw is the raster callback. A render error is a contract violation by
// the host and is not recoverable.
func (v *Viewport) draw(w, h int) image.Image {
	buf := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return buf
	}
	if err := renderFrame(buf, v.view, v.opts.Grid, v.objects); err != nil {
		log.Panicf("viewport render: %v", err)
	}
	return buf
}

// Refresh redraws the canvas.
func (v *Viewport) Refresh() {
	v.raster.Refresh()
	v.BaseWidget.Refresh()
}

// SetObjects replaces the drawable list. The viewport never mutates the
// slice or its elements beyond invoking their capabilities.
func (v *Viewport) SetObjects(objects []Drawable) {
	v.objects = objects
	v.Refresh()
}

// Objects returns the current drawable list.
func (v *Viewport) Objects() []Drawable {
	return v.objects
}

// SetGridVisible toggles the background grid.
func (v *Viewport) SetGridVisible(show bool) {
	v.opts.Grid.Draw = show
	v.Refresh()
}

// OnContextMenu sets the secondary-click callback.
func (v *Viewport) OnContextMenu(cb func(ContextMenuEvent)) {
	v.opts.OnContextMenu = cb
}

// Transform returns the current view transform.
func (v *Viewport) Transform() geometry.AffineTransform {
	return v.view.Transform()
}

// SetTransform replaces the view transform and reasserts bounds.
func (v *Viewport) SetTransform(t geometry.AffineTransform) {
	v.view.SetTransform(t)
	v.view.EnforceBounds()
	v.Refresh()
}

// Scale returns the current zoom factor.
func (v *Viewport) Scale() float64 {
	return v.view.Scale()
}

// ToLogical maps a device position into logical canvas coordinates.
func (v *Viewport) ToLogical(deviceX, deviceY float64) geometry.Point2D {
	return v.view.ToLogical(deviceX, deviceY)
}

// ObjectAt hit-tests the drawable list at a logical point and returns
// the first drawable (in list order) whose hit test passes, or nil.
// Drawables without the Toucher capability are skipped.
func (v *Viewport) ObjectAt(p geometry.Point2D) Drawable {
	for _, obj := range v.objects {
		if t, ok := obj.(Toucher); ok && t.Touches(p.X, p.Y) {
			return obj
		}
	}
	return nil
}

// Reset restores the identity transform (no zoom, no pan).
func (v *Viewport) Reset() {
	v.SetTransform(geometry.Identity())
}

// ZoomToRect zooms so the given logical rect fills the view. The target
// transform is fitted from the rect's corner correspondences, then made
// uniform around the rect center and clamped to the zoom bounds.
func (v *Viewport) ZoomToRect(r geometry.Rect) error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("zoom rect must have positive size")
	}

	cfg := v.view.Config()
	full := geometry.NewRect(0, 0, cfg.NativeWidth*cfg.Density, cfg.NativeHeight*cfg.Density)

	fit, err := geometry.FitAffine(r.Corners(), full.Corners())
	if err != nil {
		return err
	}

	scale := math.Min(fit.A, fit.D)
	if scale > cfg.MaxZoom {
		scale = cfg.MaxZoom
	}
	if scale < view.MinScale {
		scale = view.MinScale
	}

	center := r.Center()
	target := full.Center()
	v.SetTransform(geometry.AffineTransform{
		A: scale, D: scale,
		TX: target.X - scale*center.X,
		TY: target.Y - scale*center.Y,
	})
	return nil
}

// MouseDown starts a gesture on the primary button: a hit drawable with
// the Mover capability becomes the drag target, anything else anchors a
// pan. Other buttons are ignored.
func (v *Viewport) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}

	p := v.view.ToLogical(float64(ev.Position.X), float64(ev.Position.Y))
	obj := v.ObjectAt(p)
	if obj != nil {
		if _, ok := obj.(Mover); ok {
			v.state = interaction{dragging: obj}
			return
		}
	}
	v.state = interaction{panAnchor: &p}
}

// MouseUp ends the gesture when the release lands on the canvas.
func (v *Viewport) MouseUp(_ *desktop.MouseEvent) {
	v.state = interaction{}
}

// Dragged advances an active gesture: moving a drawable or panning the
// view. The pan anchor is stored once at gesture start; the delta is
// recomputed against the live transform each move, so the applied
// translation brings the fresh mapping back to the anchor and no drift
// accumulates.
func (v *Viewport) Dragged(ev *fyne.DragEvent) {
	cur := v.view.ToLogical(float64(ev.Position.X), float64(ev.Position.Y))

	switch {
	case v.state.dragging != nil:
		v.state.dragging.(Mover).Move(cur)
		v.Refresh()
	case v.state.panAnchor != nil:
		delta := cur.Sub(*v.state.panAnchor)
		v.view.Translate(delta.X, delta.Y)
		v.view.EnforceBounds()
		v.Refresh()
	}
}

// DragEnd ends the gesture. fyne delivers it to the widget the drag
// started on even when the pointer is released elsewhere, which is the
// second, broader listening scope: a drag or pan must terminate even if
// the pointer left the canvas before release.
func (v *Viewport) DragEnd() {
	v.state = interaction{}
}

// Scrolled zooms around the pointer. A zoom-in is ignored outright when
// the scale already exceeds the configured maximum; zoom-out is always
// allowed and the bounds pass restores the minimum scale.
func (v *Viewport) Scrolled(ev *fyne.ScrollEvent) {
	zoomIn := ev.Scrolled.DY > 0
	if zoomIn && v.view.Scale() > v.view.Config().MaxZoom {
		return
	}

	factor := zoomOutStep
	if zoomIn {
		factor = zoomInStep
	}

	pivot := v.view.ToLogical(float64(ev.Position.X), float64(ev.Position.Y))
	v.view.ScaleAbout(factor, pivot)
	v.view.EnforceBounds()
	v.Refresh()
}

// Tapped performs a redraw only. Selection reactions live in the host;
// the redraw is kept for drawables whose appearance changed elsewhere.
func (v *Viewport) Tapped(_ *fyne.PointEvent) {
	v.Refresh()
}

// TappedSecondary hit-tests the click point and dispatches the host's
// context-menu callback. Handling the event in-widget suppresses the
// platform menu. Interaction state is untouched.
func (v *Viewport) TappedSecondary(ev *fyne.PointEvent) {
	if v.opts.OnContextMenu == nil {
		return
	}

	p := v.view.ToLogical(float64(ev.Position.X), float64(ev.Position.Y))
	v.opts.OnContextMenu(ContextMenuEvent{
		Point:   p,
		Object:  v.ObjectAt(p),
		ScreenX: ev.AbsolutePosition.X,
		ScreenY: ev.AbsolutePosition.Y,
	})
}
