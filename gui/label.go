package gui

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/phanxgames/planes"
)

// Label displays a line of text centered on a solid background. Changing
// Text or CurrentColor takes effect on the next update.
type Label struct {
	plane *planes.Plane

	Text            string
	TextColor       color.RGBA
	BackgroundColor color.RGBA
	// CurrentColor is the color the background is drawn in. It starts as
	// BackgroundColor; widgets change it to signal state.
	CurrentColor color.RGBA
	Font         *Font

	// paint draws the foreground onto the freshly cleared canvas.
	paint func(dc *gg.Context)

	drawnText  string
	drawnColor color.RGBA
	drawn      bool
}

// NewLabel returns a label showing text in the given rectangle.
func NewLabel(name, text string, r planes.Rect) *Label {
	l := &Label{}
	l.init(name, text, r)
	l.plane.SetBehavior(l)
	l.redraw(true)
	return l
}

func (l *Label) init(name, text string, r planes.Rect) {
	l.plane = planes.NewPlane(name, r)
	l.Text = text
	l.TextColor = TextColor
	l.BackgroundColor = BackgroundColor
	l.CurrentColor = BackgroundColor
	l.Font = SmallFont
	l.paint = l.paintCentered
}

// Plane returns the plane showing the label.
func (l *Label) Plane() *planes.Plane {
	return l.plane
}

// Redraw redraws the label if its text or color changed since it was last
// drawn.
func (l *Label) Redraw() {
	l.redraw(false)
}

func (l *Label) redraw(force bool) {
	if l.plane.IsDestroyed() {
		return
	}
	if !force && l.drawn && l.drawnText == l.Text && l.drawnColor == l.CurrentColor {
		return
	}
	r := l.plane.Rect
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	dc := newCanvas(r.Width, r.Height, l.CurrentColor)
	l.paint(dc)
	install(l.plane, dc)
	l.drawnText = l.Text
	l.drawnColor = l.CurrentColor
	l.drawn = true
}

func (l *Label) paintCentered(dc *gg.Context) {
	l.Font.drawCentered(dc, l.Text, l.TextColor, float64(dc.Width())/2, float64(dc.Height())/2)
}

// Update redraws the label if needed, then runs the default update.
func (l *Label) Update(p *planes.Plane) {
	l.redraw(false)
	p.BaseUpdate()
}
