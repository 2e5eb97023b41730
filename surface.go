package planes

import (
	"image"
	"image/color"
)

// Surface is a pixel buffer. A content surface may be shared by several
// planes and is disposed when the last of them lets go of it; composites
// and drag ghosts have a single owner.
// Implementations must be comparable; pointer types are.
//
// The compositor detects content changes by identity, so a plane's
// appearance is changed by installing a new Surface with Plane.SetContent,
// never by drawing into the installed one.
type Surface interface {
	// Size returns the width and height in pixels.
	Size() image.Point
	// Fill replaces every pixel with c.
	Fill(c color.Color)
	// Draw composites src with its top-left corner at at. alpha scales the
	// source opacity for BlendNormal and BlendCopy and is ignored by
	// BlendAdd and BlendMultiply. src may be the receiver.
	Draw(src Surface, at image.Point, mode BlendMode, alpha float64)
	// Copy returns an independent surface with the same pixels.
	Copy() Surface
	// Image returns the pixels as a premultiplied image. Backends backed by
	// GPU memory may only support this while a frame is being drawn.
	Image() image.Image
	// Dispose releases the pixel memory. The surface must not be used after.
	Dispose()
}

// Backend allocates surfaces.
type Backend interface {
	NewSurface(w, h int) Surface
	NewSurfaceFromImage(img image.Image) Surface
}

var backend Backend = RasterBackend{}

// SetBackend selects the backend used by NewPlane, Fill and the compositor.
// It must be called before any plane is created; surfaces from different
// backends can still be drawn onto each other, but only through the slow
// Image path. Passing nil restores the software raster backend.
func SetBackend(b Backend) {
	if b == nil {
		b = RasterBackend{}
	}
	backend = b
}

// CurrentBackend returns the backend selected with SetBackend.
func CurrentBackend() Backend {
	return backend
}

// NewSurface allocates a surface of the given size on the current backend.
// Negative dimensions are clamped to zero.
func NewSurface(w, h int) Surface {
	return backend.NewSurface(max(w, 0), max(h, 0))
}

// NewSurfaceFromImage uploads img to a new surface on the current backend.
func NewSurfaceFromImage(img image.Image) Surface {
	return backend.NewSurfaceFromImage(img)
}
