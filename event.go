package planes

import (
	"fmt"
	"image"
)

// EventKind identifies a kind of input event.
type EventKind uint8

const (
	EventButtonDown EventKind = iota // a mouse button was pressed
	EventButtonUp                    // a mouse button was released
	EventKeyDown                     // a key was pressed or a character typed
)

func (k EventKind) String() string {
	switch k {
	case EventButtonDown:
		return "buttondown"
	case EventButtonUp:
		return "buttonup"
	case EventKeyDown:
		return "keydown"
	default:
		return "unknown"
	}
}

// Event is a normalized input event as delivered by the windowing layer.
type Event struct {
	Kind      EventKind
	Button    MouseButton  // button events
	Pos       image.Point  // button events, display coordinates
	Key       Key          // key events
	Rune      rune         // key events: the typed character, or 0
	Modifiers KeyModifiers // key events
}

// ButtonDown returns a button press event at pos.
func ButtonDown(button MouseButton, pos image.Point) Event {
	return Event{Kind: EventButtonDown, Button: button, Pos: pos}
}

// ButtonUp returns a button release event at pos.
func ButtonUp(button MouseButton, pos image.Point) Event {
	return Event{Kind: EventButtonUp, Button: button, Pos: pos}
}

// KeyPress returns a key event for a named key.
func KeyPress(key Key, mods KeyModifiers) Event {
	return Event{Kind: EventKeyDown, Key: key, Modifiers: mods}
}

// TypeRune returns a key event for a typed character.
func TypeRune(r rune) Event {
	return Event{Kind: EventKeyDown, Rune: r}
}

func (e Event) String() string {
	switch e.Kind {
	case EventButtonDown, EventButtonUp:
		return fmt.Sprintf("%s(%s @%d,%d)", e.Kind, e.Button, e.Pos.X, e.Pos.Y)
	default:
		if e.Rune != 0 {
			return fmt.Sprintf("%s(%q)", e.Kind, e.Rune)
		}
		return fmt.Sprintf("%s(%s)", e.Kind, e.Key)
	}
}

// Pointer reports the live pointer state. The display queries it for
// mouse-over detection and to notice a drag whose button release was missed.
type Pointer interface {
	Position() image.Point
	Pressed() bool
}

// EventObserver is implemented by pointers that derive their state from the
// events the display processes.
type EventObserver interface {
	Observe(ev Event)
}

// VirtualPointer is a Pointer driven by the events it observes. It is the
// default pointer of a Display and the one used by injected input.
type VirtualPointer struct {
	Pos  image.Point
	Down bool
}

// Position returns the last observed pointer position.
func (v *VirtualPointer) Position() image.Point {
	return v.Pos
}

// Pressed reports whether a button is held down.
func (v *VirtualPointer) Pressed() bool {
	return v.Down
}

// Observe updates the pointer from a button event.
func (v *VirtualPointer) Observe(ev Event) {
	switch ev.Kind {
	case EventButtonDown:
		v.Pos = ev.Pos
		if ev.Button == MouseButtonLeft || ev.Button == MouseButtonRight || ev.Button == MouseButtonMiddle {
			v.Down = true
		}
	case EventButtonUp:
		v.Pos = ev.Pos
		v.Down = false
	}
}

// MoveTo sets the pointer position without pressing anything.
func (v *VirtualPointer) MoveTo(pos image.Point) {
	v.Pos = pos
}
