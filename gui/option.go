package gui

import (
	"fmt"

	"github.com/phanxgames/planes"
)

// Option is a selectable line in an OptionList.
type Option struct {
	*Label

	list *OptionList
}

// Clicked selects the option on a left click.
func (o *Option) Clicked(p *planes.Plane, button planes.MouseButton) {
	if button == planes.MouseButtonLeft {
		o.list.Select(o)
	}
	p.BaseClicked(button)
}

// OptionList is a stack of options of which exactly one is selected. The
// option planes are named option0, option1 and so on. Confirming the
// selection is left to a wrapper such as OptionSelector.
type OptionList struct {
	*Container

	// Selected is the selected option, or nil if the list is empty.
	Selected *Option

	options []*Option
}

// NewOptionList returns a list showing the given texts, one option per
// line. The first option is selected.
func NewOptionList(name string, texts []string, width, lineHeight int) *OptionList {
	l := &OptionList{Container: &Container{}}
	l.init(name, 0)
	l.plane.SetBehavior(l)
	for i, text := range texts {
		o := &Option{Label: &Label{}, list: l}
		o.init(fmt.Sprintf("option%d", i), text, planes.R(0, 0, width, lineHeight))
		o.plane.Highlight = true
		o.plane.SetBehavior(o)
		o.redraw(true)
		l.options = append(l.options, o)
		l.add(o.plane)
	}
	if len(l.options) > 0 {
		l.Select(l.options[0])
	}
	return l
}

// Options returns the options in display order.
func (l *OptionList) Options() []*Option {
	return l.options
}

// Select makes o the selected option and highlights it.
func (l *OptionList) Select(o *Option) {
	for _, other := range l.options {
		other.CurrentColor = other.BackgroundColor
	}
	o.CurrentColor = HighlightColor
	l.Selected = o
	for _, other := range l.options {
		other.Redraw()
	}
}

// OptionSelector wraps an OptionList and an OK button. Pressing OK calls
// the callback with the selected option, then destroys the selector.
type OptionSelector struct {
	*Container

	List     *OptionList
	Callback func(selected *Option)
}

// NewOptionSelector returns a selector offering texts.
func NewOptionSelector(name string, texts []string, width, lineHeight int, callback func(*Option)) *OptionSelector {
	s := &OptionSelector{Container: &Container{}, Callback: callback}
	s.init(name, 5)
	s.plane.SetBehavior(s)

	s.List = NewOptionList("option_list", texts, width, lineHeight)
	s.add(s.List.Plane())
	ok := NewNamedButton("ok", "OK", planes.R(0, 0, width, lineHeight), func(*Button) {
		s.confirm()
	})
	s.add(ok.Plane())
	return s
}

func (s *OptionSelector) confirm() {
	if s.Callback != nil {
		s.Callback(s.List.Selected)
	}
	s.plane.Destroy()
}
