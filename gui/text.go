package gui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Font measures and renders single lines of text.
type Font struct {
	face font.Face
}

// NewFont wraps a font face.
func NewFont(face font.Face) *Font {
	return &Font{face: face}
}

// DefaultFont returns the 7x13 bitmap font. It needs no parsing and is used
// when a TrueType font cannot be loaded.
func DefaultFont() *Font {
	return &Font{face: basicfont.Face7x13}
}

// LoadFont parses TrueType data and returns a face of the given point size.
func LoadFont(ttf []byte, size float64) (*Font, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Font{face: truetype.NewFace(f, &truetype.Options{
		Size:    size,
		Hinting: font.HintingFull,
	})}, nil
}

// GoFont returns the Go regular font at the given size, falling back to
// DefaultFont.
func GoFont(size float64) *Font {
	return mustFont(goregular.TTF, size)
}

func mustFont(ttf []byte, size float64) *Font {
	f, err := LoadFont(ttf, size)
	if err != nil {
		return DefaultFont()
	}
	return f
}

// Fonts used by the widgets unless a widget's Font field says otherwise.
var (
	SmallFont = mustFont(goregular.TTF, 12)
	BigFont   = mustFont(goregular.TTF, 30)
	BoldFont  = mustFont(gobold.TTF, 12)
)

// Face returns the underlying font face.
func (f *Font) Face() font.Face {
	return f.face
}

// LineHeight returns the height of one line of text in pixels.
func (f *Font) LineHeight() int {
	return f.face.Metrics().Height.Ceil()
}

// Measure returns the size of text rendered in f.
func (f *Font) Measure(text string) (w, h int) {
	adv := font.MeasureString(f.face, text)
	return adv.Ceil(), f.LineHeight()
}

// Render draws text onto a new image of exactly the measured size. A nil bg
// leaves the background transparent.
func (f *Font) Render(text string, fg, bg color.Color) image.Image {
	w, h := f.Measure(text)
	if w == 0 || h == 0 {
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}
	dc := gg.NewContext(w, h)
	if bg != nil {
		dc.SetColor(bg)
		dc.Clear()
	}
	f.draw(dc, text, fg, 0, 0)
	return dc.Image()
}

// draw writes text with its top-left corner at (x, y).
func (f *Font) draw(dc *gg.Context, text string, fg color.Color, x, y float64) {
	dc.SetFontFace(f.face)
	dc.SetColor(fg)
	ascent := float64(f.face.Metrics().Ascent.Ceil())
	dc.DrawString(text, math.Round(x), math.Round(y+ascent))
}

// drawCentered writes text centered on (cx, cy).
func (f *Font) drawCentered(dc *gg.Context, text string, fg color.Color, cx, cy float64) {
	w, h := f.Measure(text)
	f.draw(dc, text, fg, cx-float64(w)/2, cy-float64(h)/2)
}
