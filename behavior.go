package planes

import "image"

// A plane's behavior customizes how it reacts to the engine. It may implement
// any subset of the capability interfaces below; for every hook it does not
// implement, the plane's Base* default runs instead. Widgets install
// themselves with SetBehavior.
//
// An implementation replaces the default entirely. To extend it, call the
// matching Base* method on the plane. In particular an Updater that does not
// call BaseUpdate stops the update from reaching the plane's children.

// Updater customizes the per-frame update.
type Updater interface {
	Update(p *Plane)
}

// Clicker customizes the reaction to a mouse button press.
type Clicker interface {
	Clicked(p *Plane, button MouseButton)
}

// Dropper customizes the reaction to a plane being dropped on p.
type Dropper interface {
	DroppedUpon(p, dropped *Plane, at image.Point) error
}

// KeyHandler receives key presses while p holds the keyboard focus.
type KeyHandler interface {
	KeyDown(p *Plane, ev Event)
}

// Focuser is notified when p gains or loses the keyboard focus.
type Focuser interface {
	Activate(p *Plane)
	Deactivate(p *Plane)
}

// Hoverer customizes the reaction to the pointer entering or leaving p.
type Hoverer interface {
	MouseOver(p *Plane)
	MouseOut(p *Plane)
}

// ChildObserver is notified after a child has been added to or removed from
// p, e.g. to lay the children out again.
type ChildObserver interface {
	ChildAdded(p, child *Plane)
	ChildRemoved(p, child *Plane)
}

// SetBehavior installs b as the plane's behavior. b is usually the widget
// value that owns the plane.
func (p *Plane) SetBehavior(b any) {
	p.behavior = b
}

// Behavior returns the value installed with SetBehavior, or nil.
func (p *Plane) Behavior() any {
	return p.behavior
}

// SetClickHandler registers fn to be called with p when p is clicked with
// button. A nil fn removes the handler.
func (p *Plane) SetClickHandler(button MouseButton, fn func(p *Plane)) {
	if button < mouseButtonCount {
		p.clickHandlers[button] = fn
	}
}

// --- Dispatch ---

// Update runs the plane's per-frame update.
func (p *Plane) Update() {
	if p.destroyed {
		return
	}
	if u, ok := p.behavior.(Updater); ok {
		u.Update(p)
		return
	}
	p.BaseUpdate()
}

// BaseUpdate updates all children, then applies the position sync link and
// finally calls OnUpdate. Children added or removed by the updates are
// picked up in the next frame.
func (p *Plane) BaseUpdate() {
	for _, child := range snapshot(p.children) {
		if child.destroyed {
			continue
		}
		child.Update()
	}
	if p.destroyed {
		// A child's update destroyed an ancestor.
		return
	}
	p.applySync()
	if p.OnUpdate != nil {
		p.OnUpdate(p)
	}
}

// Clicked is called when a mouse button is pressed over the plane.
func (p *Plane) Clicked(button MouseButton) {
	if p.destroyed {
		return
	}
	if c, ok := p.behavior.(Clicker); ok {
		c.Clicked(p, button)
		return
	}
	p.BaseClicked(button)
}

// BaseClicked calls the click handler registered for button, if any.
func (p *Plane) BaseClicked(button MouseButton) {
	if button < mouseButtonCount && p.clickHandlers[button] != nil {
		p.clickHandlers[button](p)
	}
}

// DroppedUpon is called on the plane that dropped was released over. at is
// the drop point in p's local coordinates.
func (p *Plane) DroppedUpon(dropped *Plane, at image.Point) error {
	if p.destroyed {
		return planeError("drop", p, dropped.Name, ErrDestroyed)
	}
	if d, ok := p.behavior.(Dropper); ok {
		return d.DroppedUpon(p, dropped, at)
	}
	return p.BaseDroppedUpon(dropped, at)
}

// BaseDroppedUpon annexes dropped if p grabs, centering it on at, and then
// calls OnDrop. OnDrop is called even when annexing fails.
func (p *Plane) BaseDroppedUpon(dropped *Plane, at image.Point) error {
	var err error
	if p.Grab {
		if dropped.parent != p {
			err = p.InsertChild(dropped)
		}
		if err == nil {
			dropped.SetCenter(at)
		}
	}
	if p.OnDrop != nil {
		p.OnDrop(p, dropped, at)
	}
	return err
}

// KeyDown forwards a key press to the plane.
func (p *Plane) KeyDown(ev Event) {
	if p.destroyed {
		return
	}
	if k, ok := p.behavior.(KeyHandler); ok {
		k.KeyDown(p, ev)
		return
	}
	if p.OnKeyDown != nil {
		p.OnKeyDown(p, ev)
	}
}

// Activate is called when the plane receives the keyboard focus.
func (p *Plane) Activate() {
	if p.destroyed {
		return
	}
	if f, ok := p.behavior.(Focuser); ok {
		f.Activate(p)
		return
	}
	if p.OnActivate != nil {
		p.OnActivate(p)
	}
}

// Deactivate is called when the plane loses the keyboard focus.
func (p *Plane) Deactivate() {
	if p.destroyed {
		return
	}
	if f, ok := p.behavior.(Focuser); ok {
		f.Deactivate(p)
		return
	}
	if p.OnDeactivate != nil {
		p.OnDeactivate(p)
	}
}

// MouseOver is called when the pointer has moved onto the plane.
func (p *Plane) MouseOver() {
	if p.destroyed {
		return
	}
	if h, ok := p.behavior.(Hoverer); ok {
		h.MouseOver(p)
		return
	}
	p.BaseMouseOver()
}

// BaseMouseOver turns the highlight on if the plane is highlightable, then
// calls OnMouseOver.
func (p *Plane) BaseMouseOver() {
	if p.Highlight {
		p.setMouseOver(true)
	}
	if p.OnMouseOver != nil {
		p.OnMouseOver(p)
	}
}

// MouseOut is called when the pointer has left the plane.
func (p *Plane) MouseOut() {
	if p.destroyed {
		return
	}
	if h, ok := p.behavior.(Hoverer); ok {
		h.MouseOut(p)
		return
	}
	p.BaseMouseOut()
}

// BaseMouseOut turns the highlight off, then calls OnMouseOut. Highlight is
// not consulted, since it may have changed while the pointer was over p.
func (p *Plane) BaseMouseOut() {
	p.setMouseOver(false)
	if p.OnMouseOut != nil {
		p.OnMouseOut(p)
	}
}

func (p *Plane) setMouseOver(on bool) {
	if p.mouseOver == on {
		return
	}
	p.mouseOver = on
	if p.parent != nil {
		p.parent.dirty = true
	}
}

// snapshot copies a child list so hooks may restructure the tree while it
// is being walked.
func snapshot(children []*Plane) []*Plane {
	if len(children) == 0 {
		return nil
	}
	out := make([]*Plane, len(children))
	copy(out, children)
	return out
}
