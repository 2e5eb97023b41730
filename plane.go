package planes

import (
	"fmt"
	"image"
	"image/color"
	"slices"
	"runtime"
	"strings"
	"sync"
	"weak"
)

// --- Plane ---

// Plane is a rectangular surface in a hierarchy of surfaces. It owns its
// pixel content and its children; the parent link is a plain back-reference.
//
// Planes are not safe for concurrent use. The whole tree is expected to be
// driven from a single goroutine, one frame at a time.
type Plane struct {
	// Name identifies the plane among its siblings. Use SetName to change
	// it while the plane has a parent.
	Name string

	// Rect is the render position and size in the parent's coordinate space.
	Rect Rect

	// Alpha scales the opacity of the plane's composite when its parent
	// composites it. NewPlane sets it to 1.
	Alpha float64

	// Draggable planes can be dragged and dropped with the left button.
	Draggable bool

	// Grab planes annex planes dropped onto them (see BaseDroppedUpon).
	Grab bool

	// Highlight planes are highlighted while the pointer is over them.
	Highlight bool

	// Per-plane callbacks (nil by default).
	OnDrop       func(target, dropped *Plane, at image.Point)
	OnKeyDown    func(p *Plane, ev Event)
	OnActivate   func(p *Plane)
	OnDeactivate func(p *Plane)
	OnMouseOver  func(p *Plane)
	OnMouseOut   func(p *Plane)
	OnUpdate     func(p *Plane)

	clickHandlers [mouseButtonCount]func(p *Plane)

	// Hierarchy
	parent   *Plane
	children []*Plane
	byName   map[string]*Plane

	// Pixels
	held      *contentSlot // content use count entry, dropped if p is collected
	content   Surface
	composite Surface // equals content while the plane has no children

	// Render cache
	lastContent Surface // content identity at the last composite
	lastRect    Rect    // Rect as seen by the parent's last composite
	lastAlpha   float64
	lastSeen    bool // lastRect/lastAlpha are valid
	dirty       bool // composite must be rebuilt regardless of change detection
	mouseOver   bool

	// Position sync
	syncMaster weak.Pointer[Plane]
	syncOffset image.Point

	behavior  any
	root      bool
	destroyed bool
}

// NewPlane creates a plane with the given name and rectangle. Its content is
// an opaque black surface of the rectangle's size.
func NewPlane(name string, r Rect) *Plane {
	content := NewSurface(r.Width, r.Height)
	content.Fill(color.Black)
	p := &Plane{
		Name:      name,
		Rect:      r,
		Alpha:     1,
		content:   content,
		composite: content,
		byName:    make(map[string]*Plane),
		held:      &contentSlot{},
	}
	p.held.hold(content)
	runtime.AddCleanup(p, (*contentSlot).forget, p.held)
	return p
}

// --- Tree manipulation ---

// InsertChild makes child the topmost child of p. See InsertChildAfter.
func (p *Plane) InsertChild(child *Plane) error {
	return p.insertChild(child, "", false)
}

// InsertChildAfter removes child from its current parent and adds it to p,
// immediately after the sibling named after. If no such sibling exists the
// child is appended, making it the topmost one.
//
// A child of p that has the same name as child is detached first; when after
// is empty, child takes over its position in the stacking order.
//
// Inserting p into itself or into one of its descendants fails with
// ErrCycle, and inserting a display fails with ErrRootChild. On failure the
// tree is left unchanged.
func (p *Plane) InsertChildAfter(child *Plane, after string) error {
	return p.insertChild(child, after, true)
}

func (p *Plane) insertChild(child *Plane, after string, useAfter bool) error {
	if child == nil {
		return planeError("insert", p, "", ErrNilPlane)
	}
	if p.destroyed || child.destroyed {
		debugLogDestroyed("insert", p, child)
		return planeError("insert", p, child.Name, ErrDestroyed)
	}
	if child.root {
		return planeError("insert", p, child.Name, ErrRootChild)
	}
	if isAncestor(child, p) {
		return planeError("insert", p, child.Name, ErrCycle)
	}

	if child.parent != nil {
		child.parent.removeChild(child)
	}

	index := len(p.children)
	if old, ok := p.byName[child.Name]; ok {
		i := p.removeChild(old)
		if !useAfter || after == "" {
			index = i
		}
	}
	if useAfter && after != "" {
		if i := p.indexOf(after); i >= 0 {
			index = i + 1
		} else {
			index = len(p.children)
		}
	}
	index = min(index, len(p.children))

	p.children = slices.Insert(p.children, index, child)
	p.byName[child.Name] = child
	child.parent = p
	child.lastSeen = false
	p.dirty = true

	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(p)
	}
	if o, ok := p.behavior.(ChildObserver); ok {
		o.ChildAdded(p, child)
	}
	return nil
}

// SetName renames the plane and re-keys it in its parent's name index.
// It fails with ErrNameTaken if a sibling already uses name.
func (p *Plane) SetName(name string) error {
	if p.destroyed {
		return planeError("rename", p, name, ErrDestroyed)
	}
	if name == p.Name {
		return nil
	}
	if parent := p.parent; parent != nil {
		if _, ok := parent.byName[name]; ok {
			return planeError("rename", parent, name, ErrNameTaken)
		}
		if parent.byName[p.Name] == p {
			delete(parent.byName, p.Name)
		}
		parent.byName[name] = p
	}
	p.Name = name
	return nil
}

// Remove detaches the child with the given name. The child is not destroyed.
func (p *Plane) Remove(name string) error {
	if p.destroyed {
		return planeError("remove", p, name, ErrDestroyed)
	}
	child, ok := p.byName[name]
	if !ok {
		return planeError("remove", p, name, ErrNotFound)
	}
	p.removeChild(child)
	return nil
}

// RemoveChild detaches child from p. The child is not destroyed.
func (p *Plane) RemoveChild(child *Plane) error {
	if child == nil {
		return planeError("remove", p, "", ErrNilPlane)
	}
	if p.destroyed {
		return planeError("remove", p, child.Name, ErrDestroyed)
	}
	if child.parent != p {
		return planeError("remove", p, child.Name, ErrNotFound)
	}
	p.removeChild(child)
	return nil
}

func (p *Plane) removeChild(child *Plane) int {
	i := p.detach(child)
	if o, ok := p.behavior.(ChildObserver); ok {
		o.ChildRemoved(p, child)
	}
	return i
}

// RemoveAll detaches every child. It is a no-op on a plane without children.
func (p *Plane) RemoveAll() {
	for _, child := range slices.Clone(p.children) {
		if child.parent == p {
			p.removeChild(child)
		}
	}
}

// detach unlinks child and returns the index it occupied. It marks p for a
// full recomposite: every remaining sibling is painted again.
func (p *Plane) detach(child *Plane) int {
	i := slices.Index(p.children, child)
	if i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	if p.byName[child.Name] == child {
		delete(p.byName, child.Name)
	}
	child.parent = nil
	child.lastSeen = false
	child.mouseOver = false
	p.dirty = true
	return i
}

func (p *Plane) indexOf(name string) int {
	for i, c := range p.children {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// --- Lookup ---

// Child returns the child with the given name.
func (p *Plane) Child(name string) (*Plane, error) {
	if p.destroyed {
		return nil, planeError("child", p, name, ErrDestroyed)
	}
	child, ok := p.byName[name]
	if !ok {
		return nil, planeError("child", p, name, ErrNotFound)
	}
	return child, nil
}

// Lookup follows a path of child names, e.g. Lookup("dialog", "ok").
// An empty path returns p.
func (p *Plane) Lookup(path ...string) (*Plane, error) {
	cur := p
	for _, name := range path {
		next, err := cur.Child(name)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Children returns the children in stacking order, bottom first. The
// returned slice MUST NOT be mutated by the caller.
func (p *Plane) Children() []*Plane {
	return p.children
}

// NumChildren returns the number of children.
func (p *Plane) NumChildren() int {
	return len(p.children)
}

// Parent returns the parent plane, or nil.
func (p *Plane) Parent() *Plane {
	return p.parent
}

// Root returns the topmost ancestor of p, which is p itself when detached.
func (p *Plane) Root() *Plane {
	r := p
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// IsDestroyed reports whether Destroy has been called.
func (p *Plane) IsDestroyed() bool {
	return p.destroyed
}

// MouseOverFlag reports whether the plane is currently highlighted because
// the pointer is over it.
func (p *Plane) MouseOverFlag() bool {
	return p.mouseOver
}

// --- Content ---

// Content returns the plane's own pixels, without children.
func (p *Plane) Content() Surface {
	return p.content
}

// SetContent replaces the plane's pixels. The previous content surface is
// disposed once no plane uses it as content any more. The new surface must
// not be drawn into afterwards; install another one to change the plane's
// appearance. nil installs a transparent surface of the plane's size.
func (p *Plane) SetContent(s Surface) {
	if p.destroyed {
		debugLogDestroyed("set content", p, nil)
		return
	}
	if s == nil {
		s = NewSurface(p.Rect.Width, p.Rect.Height)
	}
	if s == p.content {
		return
	}
	old := p.content
	if p.composite == old {
		p.composite = s
	}
	p.content = s
	p.held.hold(s)
	releaseContent(old)
}

// Content surfaces may be shared between planes. contentRefs counts the
// planes using each one so that only the last user disposes it.
var (
	contentMu   sync.Mutex
	contentRefs = map[Surface]int{}
)

// contentSlot is a plane's entry in contentRefs. It lives outside the plane
// so a garbage-collected plane can give up its use without a Destroy.
type contentSlot struct {
	s Surface
}

func (c *contentSlot) hold(s Surface) {
	contentMu.Lock()
	contentRefs[s]++
	contentMu.Unlock()
	c.s = s
}

// forget drops the use without disposing the surface; the garbage
// collector reclaims it.
func (c *contentSlot) forget() {
	if c.s != nil {
		unref(c.s)
	}
}

// unref drops one use of s and reports whether it was the last.
func unref(s Surface) bool {
	contentMu.Lock()
	defer contentMu.Unlock()
	if n := contentRefs[s]; n > 1 {
		contentRefs[s] = n - 1
		return false
	}
	delete(contentRefs, s)
	return true
}

// releaseContent drops one use of s and disposes it after the last one.
func releaseContent(s Surface) {
	if s != nil && unref(s) {
		s.Dispose()
	}
}

// flatten paints the plane and its descendants into a new surface without
// touching any render cache.
func (p *Plane) flatten() Surface {
	size := p.content.Size()
	dst := NewSurface(size.X, size.Y)
	dst.Draw(p.content, zeroPoint, BlendCopy, 1)
	for _, child := range p.children {
		if child.content == nil {
			continue
		}
		if len(child.children) == 0 {
			dst.Draw(child.content, child.Rect.Min(), BlendNormal, child.Alpha)
			continue
		}
		s := child.flatten()
		dst.Draw(s, child.Rect.Min(), BlendNormal, child.Alpha)
		s.Dispose()
	}
	return dst
}

// Fill replaces the plane's content with a new surface of the plane's size
// filled with c.
func (p *Plane) Fill(c color.Color) {
	if p.destroyed {
		return
	}
	s := NewSurface(p.Rect.Width, p.Rect.Height)
	s.Fill(c)
	p.SetContent(s)
}

// Composite returns the last composite of the plane and all its
// descendants, as produced by Render.
func (p *Plane) Composite() Surface {
	return p.composite
}

// SetCenter moves the plane so that its center is c.
func (p *Plane) SetCenter(c image.Point) {
	p.Rect = p.Rect.WithCenter(c)
}

// --- Position sync ---

// Sync makes the plane follow master: every Update moves the plane so the
// distance between the two centers stays what it is now. The link does not
// keep master alive.
func (p *Plane) Sync(master *Plane) {
	if master == nil {
		p.Unsync()
		return
	}
	p.syncMaster = weak.Make(master)
	p.syncOffset = p.Rect.Center().Sub(master.Rect.Center())
}

// Unsync removes the position sync link.
func (p *Plane) Unsync() {
	p.syncMaster = weak.Pointer[Plane]{}
	p.syncOffset = image.Point{}
}

// SyncMaster returns the plane this one follows, or nil.
func (p *Plane) SyncMaster() *Plane {
	return p.syncMaster.Value()
}

func (p *Plane) applySync() {
	master := p.syncMaster.Value()
	if master == nil {
		return
	}
	if master.destroyed {
		p.Unsync()
		return
	}
	p.SetCenter(master.Rect.Center().Add(p.syncOffset))
}

// --- Disposal ---

// Destroy removes the plane from its parent, destroys all descendants and
// releases all pixel memory. A destroyed plane must not be used again.
func (p *Plane) Destroy() {
	if p.destroyed {
		return
	}
	if p.parent != nil {
		p.parent.removeChild(p)
	}
	p.destroy()
}

func (p *Plane) destroy() {
	for _, child := range p.children {
		child.parent = nil
		child.destroy()
	}
	p.children = nil
	p.byName = nil
	if p.composite != nil && p.composite != p.content {
		p.composite.Dispose()
	}
	p.held.s = nil
	releaseContent(p.content)
	p.content = nil
	p.composite = nil
	p.lastContent = nil
	p.Unsync()
	p.behavior = nil
	p.clickHandlers = [mouseButtonCount]func(*Plane){}
	p.OnDrop = nil
	p.OnKeyDown = nil
	p.OnActivate = nil
	p.OnDeactivate = nil
	p.OnMouseOver = nil
	p.OnMouseOut = nil
	p.OnUpdate = nil
	p.Draggable = false
	p.Grab = false
	p.destroyed = true
}

// --- Helpers ---

// isAncestor reports whether candidate is plane or one of its ancestors.
func isAncestor(candidate, plane *Plane) bool {
	for p := plane; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// String returns a one-line description for logs and debugging.
func (p *Plane) String() string {
	parent := "none"
	if p.parent != nil {
		parent = p.parent.Name
	}
	names := make([]string, len(p.children))
	for i, c := range p.children {
		names[i] = c.Name
	}
	return fmt.Sprintf("<Plane %q rect=(%d,%d %dx%d) parent=%q children=[%s] draggable=%t grab=%t destroyed=%t>",
		p.Name, p.Rect.X, p.Rect.Y, p.Rect.Width, p.Rect.Height, parent,
		strings.Join(names, " "), p.Draggable, p.Grab, p.destroyed)
}
