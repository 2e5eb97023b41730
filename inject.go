package planes

import "image"

// injectedEvent is one frame's worth of synthetic input. A move only
// repositions the injection pointer; everything else is delivered to
// Process as a single event.
type injectedEvent struct {
	ev   Event
	move bool
}

// InjectPress queues a left button press at pos (display coordinates). The
// event is consumed by the next Step, replacing that frame's real events.
func (d *Display) InjectPress(pos image.Point) {
	d.inject(injectedEvent{ev: ButtonDown(MouseButtonLeft, pos)})
}

// InjectMove queues a pointer move to pos with the button state unchanged.
// Use this between InjectPress and InjectRelease to simulate a drag.
func (d *Display) InjectMove(pos image.Point) {
	d.inject(injectedEvent{ev: Event{Pos: pos}, move: true})
}

// InjectRelease queues a left button release at pos.
func (d *Display) InjectRelease(pos image.Point) {
	d.inject(injectedEvent{ev: ButtonUp(MouseButtonLeft, pos)})
}

// InjectClick is a convenience that queues a press followed by a release at
// the same position. Consumes two frames.
func (d *Display) InjectClick(pos image.Point) {
	d.InjectPress(pos)
	d.InjectRelease(pos)
}

// InjectDrag queues a full drag sequence: press at from, linearly
// interpolated moves over frames-2 intermediate frames, and release at to.
// The total sequence consumes frames frames. Minimum frames is 2 (press +
// release).
func (d *Display) InjectDrag(from, to image.Point, frames int) {
	if frames < 2 {
		frames = 2
	}
	d.InjectPress(from)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		d.InjectMove(image.Pt(
			from.X+int(float64(to.X-from.X)*t),
			from.Y+int(float64(to.Y-from.Y)*t),
		))
	}
	d.InjectRelease(to)
}

// InjectKey queues a press of a named key.
func (d *Display) InjectKey(key Key, mods KeyModifiers) {
	d.inject(injectedEvent{ev: KeyPress(key, mods)})
}

// InjectText queues one typed-character event per rune of s.
func (d *Display) InjectText(s string) {
	for _, r := range s {
		d.inject(injectedEvent{ev: TypeRune(r)})
	}
}

func (d *Display) inject(e injectedEvent) {
	if !d.injecting {
		// Start from wherever the live pointer is.
		d.injectPointer = VirtualPointer{Pos: d.pointer.Position(), Down: d.pointer.Pressed()}
		d.injecting = true
	}
	d.injectQueue = append(d.injectQueue, e)
}

// nextInjected pops one queued event and returns the batch Process should
// see this frame. It reports false when nothing was queued, in which case
// the real events are used. Once the queue has drained and the button is
// up again the live pointer takes over.
func (d *Display) nextInjected() ([]Event, bool) {
	if len(d.injectQueue) == 0 {
		if d.injecting && !d.injectPointer.Down {
			d.injecting = false
			if vp, ok := d.pointer.(*VirtualPointer); ok {
				*vp = d.injectPointer
			}
		}
		return nil, false
	}
	e := d.injectQueue[0]
	copy(d.injectQueue, d.injectQueue[1:])
	d.injectQueue = d.injectQueue[:len(d.injectQueue)-1]

	if e.move {
		d.injectPointer.MoveTo(e.ev.Pos)
		return []Event{}, true
	}
	return []Event{e.ev}, true
}
