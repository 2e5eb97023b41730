package gui

import (
	"image/color"
	"unicode"

	"github.com/atotto/clipboard"
	"github.com/fogleman/gg"
	"github.com/phanxgames/planes"
)

// readClipboard is replaced in tests.
var readClipboard = clipboard.ReadAll

// TextBox is a label the user can type into while it holds the keyboard
// focus. Register it with Display.SetKeyFocus.
type TextBox struct {
	*Label

	// Active is set while the text box holds the focus. An active text box
	// shows a cursor behind the text.
	Active bool

	// ReturnCallback, if set, is called with the text when Enter is pressed.
	ReturnCallback func(text string)
}

// NewTextBox returns an empty text box.
func NewTextBox(name string, r planes.Rect, returnCallback func(string)) *TextBox {
	t := &TextBox{Label: &Label{}, ReturnCallback: returnCallback}
	t.init(name, "", r)
	t.BackgroundColor = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	t.CurrentColor = t.BackgroundColor
	t.paint = t.paintText
	t.plane.SetBehavior(t)
	t.redraw(true)
	return t
}

// printable reports whether r belongs to one of the Unicode letter, number,
// punctuation, symbol or separator categories.
func printable(r rune) bool {
	return unicode.In(r, unicode.L, unicode.N, unicode.P, unicode.S, unicode.Z)
}

// KeyDown edits the text: printable characters are appended, Backspace
// deletes the last character, Enter confirms and Ctrl+V pastes.
func (t *TextBox) KeyDown(p *planes.Plane, ev planes.Event) {
	switch {
	case ev.Modifiers&planes.ModCtrl != 0:
		if ev.Key == planes.KeyV || ev.Rune == 'v' {
			t.paste()
		}
	case ev.Rune != 0 && printable(ev.Rune):
		t.Text += string(ev.Rune)
	case ev.Key == planes.KeyBackspace:
		if r := []rune(t.Text); len(r) > 0 {
			t.Text = string(r[:len(r)-1])
		}
	case ev.Key == planes.KeyEnter && t.ReturnCallback != nil:
		t.Deactivate(p)
		t.ReturnCallback(t.Text)
		return
	}
	t.redraw(false)
}

func (t *TextBox) paste() {
	s, err := readClipboard()
	if err != nil {
		planes.Logger().Debug("textbox: clipboard unavailable", "textbox", t.plane.Name, "err", err)
		return
	}
	for _, r := range s {
		if printable(r) {
			t.Text += string(r)
		}
	}
}

// Activate shows the cursor.
func (t *TextBox) Activate(*planes.Plane) {
	t.Active = true
	t.redraw(true)
}

// Deactivate hides the cursor.
func (t *TextBox) Deactivate(*planes.Plane) {
	t.Active = false
	t.redraw(true)
}

// paintText draws the text left-aligned, or right-aligned once it is wider
// than the box so the end stays visible.
func (t *TextBox) paintText(dc *gg.Context) {
	s := t.Text
	if t.Active {
		s += "|"
	}
	w, _ := t.Font.Measure(s)
	x := 0
	if w > dc.Width() {
		x = dc.Width() - w
	}
	t.Font.draw(dc, s, t.TextColor, float64(x), 0)
}
