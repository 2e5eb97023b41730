package gui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fogleman/gg"
	"github.com/phanxgames/planes"
)

// clickFrames is the number of updates a button stays darkened after a
// click.
const clickFrames = 4

// Button is a label with an embossed border. A left click darkens it for a
// few frames and calls Callback.
type Button struct {
	*Label

	Callback func(b *Button)

	clicked int
}

// NewButton returns a button labeled text. The plane name is derived from
// text by keeping its letters and digits, lowercased; ErrInvalidName is
// returned if nothing is left.
func NewButton(text string, r planes.Rect, callback func(b *Button)) (*Button, error) {
	name := buttonName(text)
	if name == "" {
		return nil, fmt.Errorf("button %q: %w", text, ErrInvalidName)
	}
	return NewNamedButton(name, text, r, callback), nil
}

// NewNamedButton returns a button with an explicit plane name.
func NewNamedButton(name, text string, r planes.Rect, callback func(b *Button)) *Button {
	b := &Button{Label: &Label{}, Callback: callback}
	b.init(name, text, r)
	b.paint = b.paintEmbossed
	b.plane.Highlight = true
	b.plane.SetBehavior(b)
	b.plane.SetClickHandler(planes.MouseButtonLeft, func(*planes.Plane) {
		if b.Callback != nil {
			b.Callback(b)
		}
	})
	b.redraw(true)
	return b
}

func buttonName(text string) string {
	var sb strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}

// Clicked darkens the button on a left click, then runs the click handlers.
func (b *Button) Clicked(p *planes.Plane, button planes.MouseButton) {
	if button == planes.MouseButtonLeft {
		b.clicked = clickFrames
		b.CurrentColor = scale(b.BackgroundColor, 0.5)
		b.redraw(false)
	}
	p.BaseClicked(button)
}

// Update counts down the click feedback and restores the background color
// when it runs out.
func (b *Button) Update(p *planes.Plane) {
	if b.clicked > 0 {
		b.clicked--
		if b.clicked == 0 {
			b.CurrentColor = b.BackgroundColor
		}
	}
	b.Label.Update(p)
}

func (b *Button) paintEmbossed(dc *gg.Context) {
	b.paintCentered(dc)
	w, h := dc.Width(), dc.Height()
	if w < 2 || h < 2 {
		return
	}
	dc.SetColor(scale(b.CurrentColor, 0.5))
	hline(dc, 1, w-1, h-1)
	vline(dc, w-1, 1, h-1)
	dc.SetColor(scale(b.CurrentColor, 1.33))
	vline(dc, 0, 0, h-2)
	hline(dc, 0, w-2, 0)
}
