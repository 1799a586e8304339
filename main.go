// Package main provides a small demo host for the viewport widget: a
// grid canvas with a few draggable shapes, right-click to add more.
package main

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"gridboard/internal/shapes"
	"gridboard/pkg/geometry"
	"gridboard/ui/prefs"
	"gridboard/ui/viewport"
)

const (
	appTitle   = "Grid Board"
	appVersion = "0.1.0"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, appVersion)

	appPrefs := prefs.Load()

	fyneApp := app.New()
	win := fyneApp.NewWindow(appTitle)

	objects := []viewport.Drawable{
		shapes.NewBox(geometry.NewRect(120, 120, 160, 120), color.RGBA{R: 120, G: 170, B: 230, A: 255}),
		shapes.NewDisc(geometry.NewPoint2D(500, 300), 60, color.RGBA{R: 230, G: 140, B: 110, A: 255}),
	}

	vp := viewport.New(viewport.Options{
		Width:   700,
		Height:  700,
		MaxZoom: appPrefs.Float("max_zoom", 5),
		Grid: viewport.GridOptions{
			Draw:     appPrefs.Bool("grid", true),
			CellSize: appPrefs.Float("grid_cell", 40),
		},
		Objects: objects,
	})

	// Right-click drops a new disc at the clicked logical point.
	vp.OnContextMenu(func(ev viewport.ContextMenuEvent) {
		if ev.Object != nil {
			log.Printf("context menu on object at (%.0f, %.0f)", ev.Point.X, ev.Point.Y)
			return
		}
		objects = append(objects, shapes.NewDisc(ev.Point, 40, color.RGBA{R: 140, G: 200, B: 140, A: 255}))
		vp.SetObjects(objects)
	})

	gridCheck := widget.NewCheck("Grid", func(on bool) {
		vp.SetGridVisible(on)
		appPrefs.SetBool("grid", on)
	})
	gridCheck.SetChecked(appPrefs.Bool("grid", true))

	resetBtn := widget.NewButton("Reset view", vp.Reset)

	toolbar := container.NewHBox(gridCheck, resetBtn)
	win.SetContent(container.NewBorder(toolbar, nil, nil, nil, vp))
	win.Resize(fyne.NewSize(720, 760))

	win.SetOnClosed(func() {
		if err := appPrefs.Save(); err != nil {
			log.Printf("Failed to save preferences: %v", err)
		}
	})

	win.ShowAndRun()
}
