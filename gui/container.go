package gui

import (
	"image"
	"image/color"

	"github.com/phanxgames/planes"
)

// Container stacks its children vertically, centered horizontally, and
// resizes itself to fit them. An opaque container draws a 1px black border.
//
// The layout is redone whenever a child is added or removed, including by
// drag and drop.
type Container struct {
	plane *planes.Plane

	Padding         int
	BackgroundColor color.RGBA
}

// NewContainer returns an empty container. It has no size until children
// are added.
func NewContainer(name string, padding int) *Container {
	c := &Container{}
	c.init(name, padding)
	c.plane.SetBehavior(c)
	return c
}

func (c *Container) init(name string, padding int) {
	c.plane = planes.NewPlane(name, planes.R(0, 0, 0, 0))
	c.Padding = padding
	c.BackgroundColor = BackgroundColor
}

// Plane returns the container's plane.
func (c *Container) Plane() *planes.Plane {
	return c.plane
}

// Add appends p at the bottom of the container.
func (c *Container) Add(p *planes.Plane) error {
	return c.plane.InsertChild(p)
}

// add is Add for children whose insertion cannot fail.
func (c *Container) add(p *planes.Plane) {
	if err := c.Add(p); err != nil {
		planes.Logger().Error("container: add child", "container", c.plane.Name, "child", p.Name, "err", err)
	}
}

// ChildAdded lays out the children again.
func (c *Container) ChildAdded(p, _ *planes.Plane) {
	c.layout()
}

// ChildRemoved lays out the children again.
func (c *Container) ChildRemoved(p, _ *planes.Plane) {
	c.layout()
}

// DroppedUpon annexes the dropped plane like any grabbing plane, then
// restacks the children so it joins the column.
func (c *Container) DroppedUpon(p, dropped *planes.Plane, at image.Point) error {
	err := p.BaseDroppedUpon(dropped, at)
	c.layout()
	return err
}

// layout stacks the children from the top and resizes the container to the
// widest child plus padding and border.
func (c *Container) layout() {
	children := c.plane.Children()
	width, height := 0, 0
	if len(children) > 0 {
		top := 1 + c.Padding
		for _, child := range children {
			width = max(width, child.Rect.Width+2*c.Padding+2)
			child.Rect.Y = top
			top += child.Rect.Height + c.Padding
		}
		height = top + 1
		for _, child := range children {
			child.Rect.X = (width - child.Rect.Width) / 2
		}
	}
	c.plane.Rect.Width = width
	c.plane.Rect.Height = height
	c.redraw()
}

func (c *Container) redraw() {
	r := c.plane.Rect
	if r.Width <= 0 || r.Height <= 0 {
		c.plane.SetContent(planes.NewSurface(max(r.Width, 0), max(r.Height, 0)))
		return
	}
	dc := newCanvas(r.Width, r.Height, c.BackgroundColor)
	if c.BackgroundColor.A == 0xff {
		drawBorder(dc, BorderColor)
	}
	install(c.plane, dc)
}
