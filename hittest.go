package planes

import "image"

// PlaneAt returns the deepest plane under pt, which is given in p's local
// coordinates, together with pt translated into that plane's coordinates.
//
// Children are tested topmost first (the reverse of insertion order), so
// where siblings overlap the one inserted last wins. If no child contains
// pt the result is p itself.
func (p *Plane) PlaneAt(pt image.Point) (*Plane, image.Point) {
	cur := p
	for {
		next := cur.childAt(pt)
		if next == nil {
			return cur, pt
		}
		pt = pt.Sub(next.Rect.Min())
		cur = next
	}
}

func (p *Plane) childAt(pt image.Point) *Plane {
	for i := len(p.children) - 1; i >= 0; i-- {
		if c := p.children[i]; c.Rect.Contains(pt) {
			return c
		}
	}
	return nil
}

// AbsoluteRect returns the plane's rectangle in the coordinate space of its
// root.
func (p *Plane) AbsoluteRect() Rect {
	r := p.Rect
	for a := p.parent; a != nil; a = a.parent {
		r = r.Translate(a.Rect.Min())
	}
	return r
}

// ToLocal converts a point in the root's coordinate space to p's local
// coordinates.
func (p *Plane) ToLocal(pt image.Point) image.Point {
	return pt.Sub(p.AbsoluteRect().Min())
}
