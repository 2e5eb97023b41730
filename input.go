package planes

// Process runs the input state machine over one frame's events, in arrival
// order.
//
// A trackable button press clicks the plane under the pointer; a left press
// on a draggable plane also starts a drag. A left release ends the drag and
// drops the dragged plane on whatever is under the pointer, unless that is
// the dragged plane itself. Key presses go to the focus holder. If none of
// this happened, mouse-over is re-evaluated at the pointer position.
func (d *Display) Process(events []Event) {
	nothingHappened := true
	for _, ev := range events {
		if o, ok := d.Pointer().(EventObserver); ok {
			o.Observe(ev)
		}
		switch ev.Kind {
		case EventButtonDown:
			if !ev.Button.trackable() {
				continue
			}
			nothingHappened = false
			d.buttonDown(ev)
		case EventButtonUp:
			if ev.Button != MouseButtonLeft {
				continue
			}
			nothingHappened = false
			d.buttonUp(ev)
		case EventKeyDown:
			if d.forwardKey(ev) {
				nothingHappened = false
			}
		}
	}
	if nothingHappened {
		d.updateMouseOver()
	}
}

func (d *Display) buttonDown(ev Event) {
	hit, _ := d.PlaneAt(ev.Pos)
	if hit == d.Plane {
		return
	}
	hit.Clicked(ev.Button)
	// The click handler may have destroyed or detached the plane.
	if ev.Button == MouseButtonLeft && hit.Draggable && !hit.destroyed && hit.parent != nil {
		d.endDrag()
		d.beginDrag(hit)
	}
}

func (d *Display) buttonUp(ev Event) {
	g := d.dragged
	if g == nil {
		return
	}
	target, at := d.PlaneAt(ev.Pos)
	switch {
	case g.Source.destroyed:
		d.logger.Debug("drop skipped, dragged plane was destroyed", "plane", g.Source.Name)
	case target != g.Source:
		if err := target.DroppedUpon(g.Source, at); err != nil {
			d.logger.Debug("drop failed", "target", target.Name, "plane", g.Source.Name, "err", err)
		}
	}
	d.endDrag()
	d.Render(true)
}

// forwardKey sends ev to the focus holder and reports whether it was
// delivered. A holder that is no longer attached is skipped; a destroyed one
// is also forgotten.
func (d *Display) forwardKey(ev Event) bool {
	f := d.keyFocus
	if f == nil {
		return false
	}
	if f.destroyed {
		d.logger.Debug("focus holder destroyed, clearing focus", "plane", f.Name)
		d.keyFocus = nil
		return false
	}
	if f.parent == nil {
		d.logger.Debug("focus holder detached, key skipped", "plane", f.Name)
		return false
	}
	f.KeyDown(ev)
	return true
}

// updateMouseOver hit-tests at the pointer position and fires MouseOut and
// MouseOver only when the plane under the pointer changed.
func (d *Display) updateMouseOver() {
	target, _ := d.PlaneAt(d.Pointer().Position())
	if target == d.Plane {
		target = nil
	}
	if target == d.mouseOver {
		return
	}
	if d.mouseOver != nil {
		d.mouseOver.MouseOut()
	}
	if target != nil {
		target.MouseOver()
	}
	d.mouseOver = target
}
