package gui

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/phanxgames/planes"
)

var okBoxSeq atomic.Uint64

// OkBox shows a message and an OK button that destroys the box. The message
// is split into lines at newlines.
type OkBox struct {
	*Container
}

// NewOkBox returns a box showing message. Every box gets a unique name so
// several can be shown at once.
func NewOkBox(message string) *OkBox {
	b := &OkBox{Container: &Container{}}
	b.init(fmt.Sprintf("okbox%d", okBoxSeq.Add(1)), 5)
	b.plane.SetBehavior(b)

	for i, line := range strings.Split(message, "\n") {
		l := NewLabel(fmt.Sprintf("message_line_%d", i), line, planes.R(0, 0, len(line)*PixPerChar, 30))
		b.add(l.Plane())
	}
	ok := NewNamedButton("ok", "OK", planes.R(0, 0, 50, 30), func(*Button) {
		b.plane.Destroy()
	})
	b.add(ok.Plane())
	return b
}

// GetStringDialog asks the user for a string with a prompt, a text box and
// an OK button. Pressing OK or Enter destroys the dialog and then calls
// Callback with the text.
type GetStringDialog struct {
	*Container

	TextBox  *TextBox
	Callback func(text string)
}

// NewGetStringDialog returns a dialog named "get_string_dialog" and gives
// its text box the keyboard focus of d.
func NewGetStringDialog(prompt string, callback func(string), d *planes.Display) *GetStringDialog {
	g := &GetStringDialog{Container: &Container{}, Callback: callback}
	g.init("get_string_dialog", 5)
	g.plane.SetBehavior(g)

	g.add(NewLabel("prompt", prompt, planes.R(0, 0, 200, 30)).Plane())
	g.TextBox = NewTextBox("textbox", planes.R(0, 0, 200, 30), g.finish)
	g.add(g.TextBox.Plane())
	if d != nil {
		d.SetKeyFocus(g.TextBox.Plane())
	}
	ok := NewNamedButton("ok", "OK", planes.R(0, 0, 90, 30), func(*Button) {
		g.TextBox.Deactivate(g.TextBox.Plane())
		g.finish(g.TextBox.Text)
	})
	g.add(ok.Plane())
	return g
}

func (g *GetStringDialog) finish(text string) {
	g.plane.Destroy()
	if g.Callback != nil {
		g.Callback(text)
	}
}
