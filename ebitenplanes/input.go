package ebitenplanes

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/planes"
)

// Key repeat timing in ticks at 60 TPS.
const (
	repeatDelay    = 30
	repeatInterval = 3
)

// Input polls ebiten once per tick and translates the result into planes
// events. It also serves as the display's live pointer.
type Input struct {
	keys  []ebiten.Key
	chars []rune
}

// NewInput returns an input source.
func NewInput() *Input {
	return &Input{}
}

// Position returns the cursor position.
func (in *Input) Position() image.Point {
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y)
}

// Pressed reports whether a mouse button is held down.
func (in *Input) Pressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
}

// Poll returns the events of the current tick: button presses and
// releases, wheel movement, named keys and typed characters.
func (in *Input) Poll() []planes.Event {
	var events []planes.Event
	pos := in.Position()

	for _, b := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonMiddle, ebiten.MouseButtonRight} {
		mb, _ := mapButton(b)
		if inpututil.IsMouseButtonJustPressed(b) {
			events = append(events, planes.ButtonDown(mb, pos))
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			events = append(events, planes.ButtonUp(mb, pos))
		}
	}
	_, dy := ebiten.Wheel()
	events = append(events, wheelEvents(dy, pos)...)

	mods := readModifiers()
	in.keys = in.keys[:0]
	for _, k := range mappedKeys {
		if repeating(inpututil.KeyPressDuration(k)) {
			in.keys = append(in.keys, k)
		}
	}
	events = append(events, keyEvents(in.keys, mods)...)

	if mods&(planes.ModCtrl|planes.ModMeta) == 0 {
		in.chars = ebiten.AppendInputChars(in.chars[:0])
		for _, r := range in.chars {
			ev := planes.TypeRune(r)
			ev.Modifiers = mods
			events = append(events, ev)
		}
	}
	return events
}

// repeating reports whether a key held for d ticks fires this tick.
func repeating(d int) bool {
	return d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0)
}

// keyEvents translates named keys. Letter keys are only reported together
// with Ctrl or Meta; on their own they arrive as typed characters.
func keyEvents(keys []ebiten.Key, mods planes.KeyModifiers) []planes.Event {
	var events []planes.Event
	for _, k := range keys {
		pk, ok := mapKey(k)
		if !ok {
			continue
		}
		if pk == planes.KeyV && mods&(planes.ModCtrl|planes.ModMeta) == 0 {
			continue
		}
		events = append(events, planes.KeyPress(pk, mods))
	}
	return events
}

// wheelEvents reports scrolling as presses of the wheel buttons.
func wheelEvents(dy float64, pos image.Point) []planes.Event {
	switch {
	case dy > 0:
		return []planes.Event{planes.ButtonDown(planes.MouseButtonWheelUp, pos)}
	case dy < 0:
		return []planes.Event{planes.ButtonDown(planes.MouseButtonWheelDown, pos)}
	}
	return nil
}

func mapButton(b ebiten.MouseButton) (planes.MouseButton, bool) {
	switch b {
	case ebiten.MouseButtonLeft:
		return planes.MouseButtonLeft, true
	case ebiten.MouseButtonMiddle:
		return planes.MouseButtonMiddle, true
	case ebiten.MouseButtonRight:
		return planes.MouseButtonRight, true
	}
	return 0, false
}

// mappedKeys lists the keys of keyMap in polling order.
var mappedKeys = []ebiten.Key{
	ebiten.KeyBackspace, ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeyEscape,
	ebiten.KeyTab, ebiten.KeyDelete, ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
	ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyHome, ebiten.KeyEnd,
	ebiten.KeySpace, ebiten.KeyV,
}

var keyMap = map[ebiten.Key]planes.Key{
	ebiten.KeyBackspace:   planes.KeyBackspace,
	ebiten.KeyEnter:       planes.KeyEnter,
	ebiten.KeyNumpadEnter: planes.KeyEnter,
	ebiten.KeyEscape:      planes.KeyEscape,
	ebiten.KeyTab:         planes.KeyTab,
	ebiten.KeyDelete:      planes.KeyDelete,
	ebiten.KeyArrowLeft:   planes.KeyLeft,
	ebiten.KeyArrowRight:  planes.KeyRight,
	ebiten.KeyArrowUp:     planes.KeyUp,
	ebiten.KeyArrowDown:   planes.KeyDown,
	ebiten.KeyHome:        planes.KeyHome,
	ebiten.KeyEnd:         planes.KeyEnd,
	ebiten.KeySpace:       planes.KeySpace,
	ebiten.KeyV:           planes.KeyV,
}

func mapKey(k ebiten.Key) (planes.Key, bool) {
	pk, ok := keyMap[k]
	return pk, ok
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() planes.KeyModifiers {
	var mods planes.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= planes.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= planes.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= planes.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= planes.ModMeta
	}
	return mods
}
