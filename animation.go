package planes

import (
	"image"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 values of a Plane simultaneously. Create one
// via the convenience constructors (TweenPosition, TweenCenter, TweenAlpha)
// and call Update(dt) each frame, e.g. from the plane's OnUpdate. Position
// values are rounded to whole pixels when applied. If the target plane is
// destroyed, the group stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	apply  [4]func(v float32)
	target *Plane
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target. If the target has been destroyed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDestroyed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.apply[i](val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}

// TweenPosition creates a TweenGroup that moves the plane's top-left corner
// to the given point in its parent's coordinates.
func TweenPosition(p *Plane, to image.Point, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: p}
	g.tweens[0] = gween.New(float32(p.Rect.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(p.Rect.Y), float32(to.Y), duration, fn)
	g.apply[0] = func(v float32) { p.Rect.X = round(v) }
	g.apply[1] = func(v float32) { p.Rect.Y = round(v) }
	return g
}

// TweenCenter creates a TweenGroup that moves the plane's center to the
// given point in its parent's coordinates.
func TweenCenter(p *Plane, to image.Point, duration float32, fn ease.TweenFunc) *TweenGroup {
	c := p.Rect.Center()
	g := &TweenGroup{count: 2, target: p}
	g.tweens[0] = gween.New(float32(c.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(c.Y), float32(to.Y), duration, fn)
	g.apply[0] = func(v float32) { p.Rect.X = round(v) - p.Rect.Width/2 }
	g.apply[1] = func(v float32) { p.Rect.Y = round(v) - p.Rect.Height/2 }
	return g
}

// TweenAlpha creates a TweenGroup that animates the plane's Alpha to the
// target value.
func TweenAlpha(p *Plane, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: p}
	g.tweens[0] = gween.New(float32(p.Alpha), float32(to), duration, fn)
	g.apply[0] = func(v float32) { p.Alpha = math.Min(1, math.Max(0, float64(v))) }
	return g
}
