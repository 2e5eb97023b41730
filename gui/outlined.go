package gui

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/phanxgames/planes"
)

// OutlinedText is a label with black-outlined bold text on a transparent
// background. Its size follows the text and its center is kept when the
// text changes.
type OutlinedText struct {
	*Label
}

// NewOutlinedText returns outlined text in textColor.
func NewOutlinedText(name, text string, textColor color.RGBA) *OutlinedText {
	o := &OutlinedText{Label: &Label{}}
	o.init(name, text, planes.R(0, 0, 0, 0))
	o.TextColor = textColor
	o.Font = BoldFont
	o.plane.SetBehavior(o)
	o.redraw(true)
	return o
}

// Redraw resizes and redraws the text if it changed.
func (o *OutlinedText) Redraw() {
	o.redraw(false)
}

func (o *OutlinedText) redraw(force bool) {
	if o.plane.IsDestroyed() || (!force && o.drawn && o.drawnText == o.Text) {
		return
	}
	w, h := o.Font.Measure(o.Text)
	w, h = w+2, h+2
	dc := gg.NewContext(w, h)
	for dy := 0; dy <= 2; dy++ {
		for dx := 0; dx <= 2; dx++ {
			if dx != 1 || dy != 1 {
				o.Font.draw(dc, o.Text, color.Black, float64(dx), float64(dy))
			}
		}
	}
	o.Font.draw(dc, o.Text, o.TextColor, 1, 1)

	c := o.plane.Rect.Center()
	o.plane.Rect.Width, o.plane.Rect.Height = w, h
	o.plane.Rect = o.plane.Rect.WithCenter(c)
	install(o.plane, dc)
	o.drawnText = o.Text
	o.drawn = true
}

// Update redraws the text if needed, then runs the default update.
func (o *OutlinedText) Update(p *planes.Plane) {
	o.redraw(false)
	p.BaseUpdate()
}
