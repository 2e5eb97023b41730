// Package gui provides widgets built from planes: labels, buttons,
// containers that stack their children, option lists, text boxes and
// dialogs.
//
// Every widget owns a *planes.Plane, returned by its Plane method, and
// installs itself as that plane's behavior. Widgets are added to a tree by
// inserting their plane:
//
//	ok, _ := gui.NewButton("OK", planes.R(0, 0, 60, 30), func(*gui.Button) { ... })
//	display.InsertChild(ok.Plane())
package gui

import (
	"errors"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/phanxgames/planes"
)

// Default colors.
var (
	BackgroundColor = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	HighlightColor  = color.RGBA{R: 191, G: 95, B: 0, A: 255}
	TextColor       = color.RGBA{A: 255}
	BorderColor     = color.RGBA{A: 255}
)

// PixPerChar is the estimated width of a character, used to size labels
// from their text length.
const PixPerChar = 8

// ErrInvalidName is returned when a widget name cannot be derived.
var ErrInvalidName = errors.New("gui: invalid widget name")

// scale multiplies the color channels of c by f, clamping to 255. Alpha is
// kept.
func scale(c color.RGBA, f float64) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(min(255, int(float64(v)*f)))
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}

// newCanvas returns a drawing context of the given size filled with bg.
func newCanvas(w, h int, bg color.Color) *gg.Context {
	dc := gg.NewContext(w, h)
	dc.SetColor(bg)
	dc.Clear()
	return dc
}

// install replaces p's content with the pixels of dc.
func install(p *planes.Plane, dc *gg.Context) {
	p.SetContent(planes.NewSurfaceFromImage(dc.Image()))
}

// hline and vline draw 1px lines, both ends inclusive.
func hline(dc *gg.Context, x0, x1, y int) {
	for x := min(x0, x1); x <= max(x0, x1); x++ {
		dc.SetPixel(x, y)
	}
}

func vline(dc *gg.Context, x, y0, y1 int) {
	for y := min(y0, y1); y <= max(y0, y1); y++ {
		dc.SetPixel(x, y)
	}
}

// drawBorder draws a 1px frame along the edges of dc.
func drawBorder(dc *gg.Context, c color.Color) {
	w, h := dc.Width(), dc.Height()
	if w == 0 || h == 0 {
		return
	}
	dc.SetColor(c)
	hline(dc, 0, w-1, 0)
	hline(dc, 0, w-1, h-1)
	vline(dc, 0, 0, h-1)
	vline(dc, w-1, 0, h-1)
}
