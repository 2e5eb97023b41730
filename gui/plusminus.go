package gui

import (
	"strconv"

	"github.com/phanxgames/planes"
)

// PlusMinusBox is a numeric text box between a minus and a plus button.
type PlusMinusBox struct {
	plane   *planes.Plane
	TextBox *TextBox
}

// NewPlusMinusBox returns a box whose text field is charWidth characters
// wide and starts at value.
func NewPlusMinusBox(name string, charWidth, value int) *PlusMinusBox {
	h := PixPerChar * 2
	b := &PlusMinusBox{}

	minus := NewNamedButton("minus", "-", planes.R(0, 0, PixPerChar, h), func(*Button) { b.add(-1) })
	b.TextBox = NewTextBox("textbox", planes.R(PixPerChar, 0, PixPerChar*charWidth, h), nil)
	b.TextBox.Text = strconv.Itoa(value)
	b.TextBox.Redraw()
	plus := NewNamedButton("plus", "+", planes.R(PixPerChar*(charWidth+1), 0, PixPerChar, h), func(*Button) { b.add(1) })

	b.plane = planes.NewPlane(name, planes.R(0, 0, PixPerChar*(charWidth+2), h))
	for _, child := range []*planes.Plane{minus.Plane(), b.TextBox.Plane(), plus.Plane()} {
		if err := b.plane.InsertChild(child); err != nil {
			planes.Logger().Error("plusminus: add child", "box", name, "child", child.Name, "err", err)
		}
	}
	return b
}

// Plane returns the box's plane.
func (b *PlusMinusBox) Plane() *planes.Plane {
	return b.plane
}

// Value returns the number in the text field. Text that is not a number
// reads as 0.
func (b *PlusMinusBox) Value() int {
	v, err := strconv.Atoi(b.TextBox.Text)
	if err != nil {
		return 0
	}
	return v
}

func (b *PlusMinusBox) add(delta int) {
	b.TextBox.Text = strconv.Itoa(b.Value() + delta)
	b.TextBox.Redraw()
}
