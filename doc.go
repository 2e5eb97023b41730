// Package planes is a hierarchical, rectangle-based 2D GUI and sprite
// engine. It composites a tree of pixel-owning planes into a single image
// and routes pointer and keyboard input to them.
//
// # Quick start
//
// The [ebitenplanes] subpackage opens a window and runs the frame loop:
//
//	display := planes.NewDisplay(640, 480)
//	// ... add planes ...
//	ebitenplanes.Run(display, planes.DefaultRunConfig())
//
// For full control, feed a [Display] yourself once per frame:
//
//	display.Process(events)
//	display.Update()
//	if display.Render(false) {
//		present(display.Screen())
//	}
//
// [Display.Step] does the same and also replays injected input.
//
// # Planes
//
// Every visual element is a [Plane]: a named rectangle in its parent's
// coordinates with its own content surface. Child names are unique per
// parent, and a plane has at most one parent.
//
//	box := planes.NewPlane("box", planes.R(10, 10, 50, 50))
//	box.Fill(color.RGBA{R: 200, A: 255})
//	box.Draggable = true
//	display.InsertChild(box)
//
// Planes inserted later are drawn on top and win hit tests where siblings
// overlap.
//
// # Compositing
//
// [Plane.Render] rebuilds a plane's composite only when something below it
// changed: a child moved, resized, faded, was added or removed, or a content
// surface was replaced. Content changes are detected by identity, so replace
// content with [Plane.SetContent] or [Plane.Fill] instead of drawing into
// the installed surface.
//
// # Input
//
// [Display.Process] implements clicks, drag and drop of Draggable planes
// onto Grab planes, edge-triggered mouse-over with optional highlighting,
// and keyboard focus ([Display.SetKeyFocus]).
//
// # Widgets
//
// The gui subpackage provides labels, buttons, containers, option lists,
// text boxes and dialogs built on planes.
//
// # Testing
//
// All core operations run headless on the software [RasterBackend].
// [Display.InjectClick], [Display.InjectDrag] and JSON test scripts
// ([LoadTestScript]) drive a display through synthetic input, and
// [Display.Screenshot] writes the presented frame as PNG.
//
// [ebitenplanes]: https://pkg.go.dev/github.com/phanxgames/planes/ebitenplanes
package planes
