package planes

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type haltUpdater struct{ calls int }

func (h *haltUpdater) Update(p *Plane) { h.calls++ }

func TestUpdaterReplacesBaseUpdate(t *testing.T) {
	root := NewPlane("root", R(0, 0, 10, 10))
	mid := NewPlane("mid", R(0, 0, 10, 10))
	leaf := NewPlane("leaf", R(0, 0, 1, 1))
	require.NoError(t, root.InsertChild(mid))
	require.NoError(t, mid.InsertChild(leaf))

	var leafUpdates int
	leaf.OnUpdate = func(*Plane) { leafUpdates++ }
	h := &haltUpdater{}
	mid.SetBehavior(h)

	root.Update()
	assert.Equal(t, 1, h.calls)
	assert.Equal(t, 0, leafUpdates, "an Updater that skips BaseUpdate stops the walk")
}

type chainUpdater struct{ calls int }

func (c *chainUpdater) Update(p *Plane) {
	c.calls++
	p.BaseUpdate()
}

func TestUpdaterChainsToBase(t *testing.T) {
	root := NewPlane("root", R(0, 0, 10, 10))
	leaf := NewPlane("leaf", R(0, 0, 1, 1))
	require.NoError(t, root.InsertChild(leaf))
	var leafUpdates, rootUpdates int
	leaf.OnUpdate = func(*Plane) { leafUpdates++ }
	root.OnUpdate = func(*Plane) { rootUpdates++ }
	c := &chainUpdater{}
	root.SetBehavior(c)

	root.Update()
	assert.Equal(t, 1, c.calls)
	assert.Equal(t, 1, leafUpdates)
	assert.Equal(t, 1, rootUpdates)
}

type rejectDrops struct{ seen []string }

func (r *rejectDrops) DroppedUpon(p, dropped *Plane, at image.Point) error {
	r.seen = append(r.seen, dropped.Name)
	return nil
}

func TestDropperReplacesGrab(t *testing.T) {
	d, dp, gp := dragScene(t)
	r := &rejectDrops{}
	gp.SetBehavior(r)

	d.Process([]Event{
		ButtonDown(MouseButtonLeft, image.Pt(30, 30)),
		ButtonUp(MouseButtonLeft, image.Pt(120, 120)),
	})
	assert.Equal(t, []string{"D"}, r.seen)
	assert.Same(t, d.Plane, dp.Parent())
}

type layoutCounter struct{ added, removed []string }

func (l *layoutCounter) ChildAdded(p, child *Plane) { l.added = append(l.added, child.Name) }
func (l *layoutCounter) ChildRemoved(p, child *Plane) { l.removed = append(l.removed, child.Name) }

func TestChildObserver(t *testing.T) {
	a := NewPlane("a", R(0, 0, 10, 10))
	b := NewPlane("b", R(0, 0, 10, 10))
	la, lb := &layoutCounter{}, &layoutCounter{}
	a.SetBehavior(la)
	b.SetBehavior(lb)

	x := NewPlane("x", R(0, 0, 1, 1))
	require.NoError(t, a.InsertChild(x))
	// Reparent, then replace by name.
	require.NoError(t, b.InsertChild(x))
	require.NoError(t, b.InsertChild(NewPlane("x", R(0, 0, 1, 1))))
	x2, _ := b.Child("x")
	x2.Destroy()

	assert.Equal(t, []string{"x"}, la.added)
	assert.Equal(t, []string{"x"}, la.removed)
	assert.Equal(t, []string{"x", "x"}, lb.added)
	assert.Equal(t, []string{"x", "x"}, lb.removed)
}

type focusRecorder struct{ log []string }

func (f *focusRecorder) Activate(p *Plane) { f.log = append(f.log, "on") }
func (f *focusRecorder) Deactivate(p *Plane) { f.log = append(f.log, "off") }
func (f *focusRecorder) KeyDown(p *Plane, ev Event) { f.log = append(f.log, ev.String()) }
func (f *focusRecorder) MouseOver(p *Plane) { f.log = append(f.log, "over") }
func (f *focusRecorder) MouseOut(p *Plane) { f.log = append(f.log, "out") }

func TestBehaviorFocusKeysHover(t *testing.T) {
	vp := &VirtualPointer{}
	d := NewDisplay(50, 50, WithPointer(vp))
	p := NewPlane("p", R(0, 0, 10, 10))
	p.Highlight = true
	require.NoError(t, d.InsertChild(p))
	rec := &focusRecorder{}
	p.SetBehavior(rec)

	d.SetKeyFocus(p)
	d.Process([]Event{TypeRune('q')})
	vp.MoveTo(image.Pt(5, 5))
	d.Process(nil)
	vp.MoveTo(image.Pt(40, 40))
	d.Process(nil)
	d.ClearKeyFocus()

	assert.Equal(t, []string{"on", `keydown('q')`, "over", "out", "off"}, rec.log)
	assert.False(t, p.MouseOverFlag(), "Hoverer replaces the default highlight")
}

func TestBaseDroppedUponCallsOnDropOnFailure(t *testing.T) {
	g := NewPlane("g", R(0, 0, 10, 10))
	g.Grab = true
	var called bool
	g.OnDrop = func(_, _ *Plane, _ image.Point) { called = true }

	parent := NewPlane("parent", R(0, 0, 10, 10))
	require.NoError(t, parent.InsertChild(g))
	err := g.DroppedUpon(parent, image.Pt(1, 1))
	assert.ErrorIs(t, err, ErrCycle)
	assert.True(t, called)
}
