package gui

import (
	"github.com/phanxgames/planes"
	"github.com/tanema/gween/ease"
)

// FadingContainer is a container that is shown for DisplayDuration updates,
// then fades out over FadeDuration updates and destroys itself.
type FadingContainer struct {
	*Container

	DisplayDuration int
	FadeDuration    int

	fade *planes.TweenGroup
}

// NewFadingContainer returns an empty fading container.
func NewFadingContainer(name string, displayDuration, fadeDuration, padding int) *FadingContainer {
	f := &FadingContainer{
		Container:       &Container{},
		DisplayDuration: displayDuration,
		FadeDuration:    fadeDuration,
	}
	f.init(name, padding)
	f.plane.SetBehavior(f)
	return f
}

// Update counts down the display time, then advances the fade by one step.
func (f *FadingContainer) Update(p *planes.Plane) {
	p.BaseUpdate()
	if p.IsDestroyed() {
		return
	}
	if f.DisplayDuration > 0 {
		f.DisplayDuration--
		return
	}
	if f.FadeDuration <= 0 {
		p.Destroy()
		return
	}
	if f.fade == nil {
		f.fade = planes.TweenAlpha(p, 0, float32(f.FadeDuration), ease.Linear)
	}
	f.fade.Update(1)
	if f.fade.Done {
		p.Destroy()
	}
}
