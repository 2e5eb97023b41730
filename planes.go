package planes

import "image"

// Rect is an integer rectangle in the coordinate space of a plane's parent.
// The origin is at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Min returns the top-left corner.
func (r Rect) Min() image.Point {
	return image.Point{X: r.X, Y: r.Y}
}

// Size returns the width and height as a point.
func (r Rect) Size() image.Point {
	return image.Point{X: r.Width, Y: r.Height}
}

// Center returns the center point, rounding toward the top-left.
func (r Rect) Center() image.Point {
	return image.Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// WithCenter returns r moved so that its center is c.
func (r Rect) WithCenter(c image.Point) Rect {
	r.X = c.X - r.Width/2
	r.Y = c.Y - r.Height/2
	return r
}

// Translate returns r offset by d.
func (r Rect) Translate(d image.Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Contains reports whether pt lies inside the rectangle. The right and
// bottom edges are outside, so adjacent rectangles never both contain a point.
func (r Rect) Contains(pt image.Point) bool {
	return pt.X >= r.X && pt.X < r.X+r.Width &&
		pt.Y >= r.Y && pt.Y < r.Y+r.Height
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// BlendMode selects a compositing operation for Surface.Draw.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendCopy                      // overwrite destination pixels
	BlendAdd                       // additive, clamped
	BlendMultiply                  // source * destination; only darkens
)

func (b BlendMode) String() string {
	switch b {
	case BlendNormal:
		return "normal"
	case BlendCopy:
		return "copy"
	case BlendAdd:
		return "add"
	case BlendMultiply:
		return "multiply"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button. Wheel movement is reported as
// presses of the two wheel pseudo-buttons.
type MouseButton uint8

const (
	MouseButtonLeft      MouseButton = iota // primary (left) mouse button
	MouseButtonMiddle                       // middle mouse button
	MouseButtonRight                        // secondary (right) mouse button
	MouseButtonWheelUp                      // wheel scrolled up
	MouseButtonWheelDown                    // wheel scrolled down

	mouseButtonCount
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonRight:
		return "right"
	case MouseButtonWheelUp:
		return "wheelup"
	case MouseButtonWheelDown:
		return "wheeldown"
	default:
		return "unknown"
	}
}

// trackable reports whether a press of b is dispatched as a click.
func (b MouseButton) trackable() bool {
	switch b {
	case MouseButtonLeft, MouseButtonRight, MouseButtonWheelUp, MouseButtonWheelDown:
		return true
	}
	return false
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Key identifies a non-text key. Printable input arrives as Event.Rune with
// KeyUnknown unless the key also has a name here.
type Key uint16

const (
	KeyUnknown Key = iota
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyTab
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeySpace
	KeyV
)

var keyNames = [...]string{
	KeyUnknown:   "unknown",
	KeyBackspace: "backspace",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyTab:       "tab",
	KeyDelete:    "delete",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeySpace:     "space",
	KeyV:         "v",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// ParseKey returns the key with the given name, as produced by Key.String.
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name {
			return Key(k), true
		}
	}
	return KeyUnknown, false
}
