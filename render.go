package planes

import "image"

var zeroPoint image.Point

// Render brings the plane's composite up to date with its content and all
// descendants and reports whether the composite changed since the last call.
//
// Children are rendered first. The composite is rebuilt from scratch when
// the plane's content surface was replaced, when a child's composite
// changed, when a child moved, resized or changed Alpha, or when the child
// list was restructured. Otherwise the previous composite is kept and Render
// returns false. Partial redraws are never attempted: anything that changes
// repaints the whole plane, which can never leave stale pixels behind.
//
// Content changes are detected by identity only. Drawing into the installed
// content surface is not noticed; use SetContent.
func (p *Plane) Render() bool {
	if p.destroyed {
		return false
	}
	if len(p.children) == 0 {
		p.dirty = false
		if p.composite == p.content && p.lastContent == p.content {
			return false
		}
		if p.composite != p.content {
			p.releaseComposite()
			p.composite = p.content
		}
		p.lastContent = p.content
		return true
	}

	changed := p.dirty
	for _, child := range p.children {
		if child.Render() {
			changed = true
		}
		if !child.lastSeen || child.Rect != child.lastRect || child.Alpha != child.lastAlpha {
			changed = true
		}
		child.lastRect = child.Rect
		child.lastAlpha = child.Alpha
		child.lastSeen = true
	}
	if p.content != p.lastContent || p.composite == p.content || p.composite == nil {
		changed = true
	}
	if !changed {
		return false
	}

	p.recomposite()
	p.lastContent = p.content
	p.dirty = false
	renderStats.composites++
	return true
}

// recomposite paints the content as the base layer and every child's
// composite over it in stacking order, each followed by its highlight.
func (p *Plane) recomposite() {
	size := p.content.Size()
	if p.composite == nil || p.composite == p.content || p.composite.Size() != size {
		p.releaseComposite()
		p.composite = backend.NewSurface(size.X, size.Y)
	}
	dst := p.composite
	dst.Draw(p.content, zeroPoint, BlendCopy, 1)

	for _, child := range p.children {
		if child.composite == nil {
			continue
		}
		dst.Draw(child.composite, child.Rect.Min(), BlendNormal, child.Alpha)
		if child.mouseOver {
			drawHighlight(dst, child)
		}
	}
}

// drawHighlight brightens the area of child on dst: the child's composite is
// multiplied with itself twice, which keeps bright areas bright and makes
// dark ones darker, and the result is added on top. The child's own pixels
// are left alone.
func drawHighlight(dst Surface, child *Plane) {
	size := child.composite.Size()
	if size.X == 0 || size.Y == 0 {
		return
	}
	overlay := overlayPool.Acquire(size.X, size.Y)
	overlay.Draw(child.composite, zeroPoint, BlendCopy, 1)
	overlay.Draw(overlay, zeroPoint, BlendMultiply, 1)
	overlay.Draw(overlay, zeroPoint, BlendMultiply, 1)
	dst.Draw(overlay, child.Rect.Min(), BlendAdd, 1)
	overlayPool.Release(overlay)
}

// releaseComposite disposes a composite buffer that is not the content.
func (p *Plane) releaseComposite() {
	if p.composite != nil && p.composite != p.content {
		p.composite.Dispose()
	}
	p.composite = nil
}
