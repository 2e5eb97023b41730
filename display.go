package planes

import (
	"image/color"
	"log/slog"
	"time"
)

// ghostAlpha is the opacity of a dragged plane's stand-in (about 2/3).
const ghostAlpha = 170.0 / 255.0

// Ghost is the semi-transparent stand-in painted under the pointer while a
// plane is being dragged. It is not part of the tree and lives for exactly
// one drag gesture.
type Ghost struct {
	Rect   Rect    // display coordinates; re-centered on the pointer each frame
	Image  Surface // snapshot of the source's composite at drag start
	Source *Plane  // the plane being dragged
	Alpha  float64
}

// FrameStats describes the last call to Display.Render.
type FrameStats struct {
	Composites int           // planes whose composite was rebuilt
	Presented  bool          // whether Screen was redrawn
	Duration   time.Duration // only measured in debug mode
}

// Display is the root plane. It owns the per-frame input state machine
// (clicks, drag and drop, mouse-over, keyboard focus) and the screen
// surface that the composited tree is presented on.
type Display struct {
	*Plane

	screen  Surface
	pointer Pointer
	logger  *slog.Logger
	debug   bool
	stats   FrameStats

	// Input state
	dragged   *Ghost
	keyFocus  *Plane
	mouseOver *Plane

	// Injected input
	injectQueue   []injectedEvent
	injectPointer VirtualPointer
	injecting     bool
	testRunner    *TestRunner

	// Screenshots
	ScreenshotDir   string
	screenshotQueue []string
}

// DisplayOption configures a Display.
type DisplayOption func(*Display)

// WithPointer sets the live pointer source. The default is a VirtualPointer
// that follows the processed button events.
func WithPointer(p Pointer) DisplayOption {
	return func(d *Display) {
		d.pointer = p
	}
}

// WithLogger sets the logger used for debug output and swallowed errors.
func WithLogger(l *slog.Logger) DisplayOption {
	return func(d *Display) {
		d.logger = l
	}
}

// WithScreenshotDir sets the directory screenshots are written to.
func WithScreenshotDir(dir string) DisplayOption {
	return func(d *Display) {
		d.ScreenshotDir = dir
	}
}

// NewDisplay creates a display of the given size. Its content is an opaque
// black surface; replace it with Fill or SetContent.
func NewDisplay(w, h int, opts ...DisplayOption) *Display {
	root := NewPlane("display", R(0, 0, w, h))
	root.root = true
	d := &Display{
		Plane:         root,
		screen:        NewSurface(w, h),
		pointer:       &VirtualPointer{},
		logger:        Logger(),
		ScreenshotDir: "screenshots",
	}
	d.screen.Fill(color.Black)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Screen returns the surface the display presents frames on. The
// windowing layer copies it to the window after Render.
func (d *Display) Screen() Surface {
	return d.screen
}

// Pointer returns the pointer the display currently reads, which is the
// injection pointer while injected input is being replayed.
func (d *Display) Pointer() Pointer {
	if d.injecting {
		return &d.injectPointer
	}
	return d.pointer
}

// SetPointer replaces the live pointer source. nil restores a
// VirtualPointer.
func (d *Display) SetPointer(p Pointer) {
	if p == nil {
		p = &VirtualPointer{}
	}
	d.pointer = p
}

// Dragged returns the active drag ghost, or nil.
func (d *Display) Dragged() *Ghost {
	return d.dragged
}

// MouseOverPlane returns the plane the pointer was found over at the last
// mouse-over evaluation, or nil.
func (d *Display) MouseOverPlane() *Plane {
	return d.mouseOver
}

// Stats returns statistics about the last Render.
func (d *Display) Stats() FrameStats {
	return d.stats
}

// --- Keyboard focus ---

// SetKeyFocus makes p the plane that receives key events. The previous
// focus holder, if any, is deactivated first, then p is activated.
// Passing nil clears the focus.
func (d *Display) SetKeyFocus(p *Plane) {
	if p == d.keyFocus {
		return
	}
	if d.keyFocus != nil {
		d.keyFocus.Deactivate()
	}
	d.keyFocus = p
	if p != nil {
		p.Activate()
	}
}

// ClearKeyFocus deactivates and forgets the focus holder.
func (d *Display) ClearKeyFocus() {
	d.SetKeyFocus(nil)
}

// KeyFocus returns the plane that receives key events, or nil.
func (d *Display) KeyFocus() *Plane {
	return d.keyFocus
}

// --- Frame ---

// Update runs the per-frame update of the whole tree.
func (d *Display) Update() {
	d.Plane.Update()
}

// Render composites the tree and presents it on Screen if anything changed,
// if force is set, or while a drag is in progress. It reports whether Screen
// was redrawn.
//
// While dragging, the ghost is painted above everything, centered on the
// pointer. If the pointer reports no pressed button the release was missed
// and the drag is cancelled without a drop.
func (d *Display) Render(force bool) bool {
	var t0 time.Time
	if d.debug {
		t0 = time.Now()
	}
	renderStats = frameCounters{}

	changed := d.Plane.Render()
	presented := false
	if changed || force || d.dragged != nil {
		d.screen.Draw(d.composite, zeroPoint, BlendCopy, 1)
		if g := d.dragged; g != nil {
			ptr := d.Pointer()
			if ptr.Pressed() {
				g.Rect = g.Rect.WithCenter(ptr.Position())
				d.screen.Draw(g.Image, g.Rect.Min(), BlendNormal, g.Alpha)
			} else {
				d.logger.Debug("drag cancelled, button no longer pressed", "plane", g.Source.Name)
				d.endDrag()
			}
		}
		presented = true
	}

	d.stats = FrameStats{Composites: renderStats.composites, Presented: presented}
	if d.debug {
		d.stats.Duration = time.Since(t0)
		d.debugLog(d.stats)
	}
	d.flushScreenshots()
	return presented
}

// Step runs one complete frame: scripted input, Process, Update and Render.
// While injected events are queued, one of them replaces events.
func (d *Display) Step(events []Event) bool {
	if d.testRunner != nil {
		d.testRunner.step(d)
	}
	if ev, ok := d.nextInjected(); ok {
		events = ev
	}
	d.Process(events)
	d.Update()
	return d.Render(false)
}

// SetDebugMode enables or disables debug mode. When enabled, operations on
// destroyed planes are logged as errors, tree depth and child count
// warnings are logged, and per-frame stats are logged at debug level.
func (d *Display) SetDebugMode(enabled bool) {
	d.debug = enabled
	globalDebug = enabled
}

func (d *Display) beginDrag(source *Plane) {
	// The composite may predate the last change to the subtree, so planes
	// with children are painted afresh.
	var snap Surface
	switch {
	case source.content == nil:
		snap = NewSurface(source.Rect.Width, source.Rect.Height)
	case len(source.children) > 0:
		snap = source.flatten()
	default:
		snap = source.content.Copy()
	}
	d.dragged = &Ghost{
		Rect:   source.AbsoluteRect(),
		Image:  snap,
		Source: source,
		Alpha:  ghostAlpha,
	}
}

func (d *Display) endDrag() {
	if d.dragged == nil {
		return
	}
	d.dragged.Image.Dispose()
	d.dragged = nil
}
