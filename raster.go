package planes

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blend"
	"golang.org/x/image/draw"
)

// RasterBackend allocates software surfaces backed by *image.RGBA. It is the
// default backend and the one used by headless tests and screenshots.
type RasterBackend struct{}

// NewSurface returns a transparent raster of the given size.
func (RasterBackend) NewSurface(w, h int) Surface {
	return NewRaster(w, h)
}

// NewSurfaceFromImage copies img into a new raster whose origin is (0, 0).
func (RasterBackend) NewSurfaceFromImage(img image.Image) Surface {
	return &Raster{img: toRGBA(img)}
}

// Raster is a Surface held in main memory.
type Raster struct {
	img *image.RGBA
}

// NewRaster creates a transparent raster of the given size.
func NewRaster(w, h int) *Raster {
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))}
}

// Size returns the raster dimensions.
func (r *Raster) Size() image.Point {
	return r.img.Bounds().Size()
}

// RGBA returns the backing image. Callers must not retain it across a
// Dispose.
func (r *Raster) RGBA() *image.RGBA {
	return r.img
}

// Image returns the backing image.
func (r *Raster) Image() image.Image {
	return r.img
}

// At returns the premultiplied colour of the pixel at (x, y).
func (r *Raster) At(x, y int) color.RGBA {
	return r.img.RGBAAt(x, y)
}

// Fill replaces every pixel with c.
func (r *Raster) Fill(c color.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Draw composites src onto r.
func (r *Raster) Draw(src Surface, at image.Point, mode BlendMode, alpha float64) {
	if src == nil || alpha <= 0 {
		return
	}
	srcImg := rasterImage(src)
	dstRect := image.Rectangle{Min: at, Max: at.Add(srcImg.Bounds().Size())}.Intersect(r.img.Bounds())
	if dstRect.Empty() {
		return
	}
	sp := srcImg.Bounds().Min.Add(dstRect.Min.Sub(at))

	switch mode {
	case BlendAdd, BlendMultiply:
		bg := toRGBA(r.img.SubImage(dstRect))
		fg := toRGBA(srcImg.SubImage(image.Rectangle{Min: sp, Max: sp.Add(dstRect.Size())}))
		var out *image.RGBA
		if mode == BlendAdd {
			out = blend.Add(bg, fg)
		} else {
			out = blend.Multiply(bg, fg)
		}
		draw.Draw(r.img, dstRect, out, out.Bounds().Min, draw.Src)
	default:
		op := draw.Over
		if mode == BlendCopy {
			op = draw.Src
		}
		if alpha >= 1 {
			draw.Draw(r.img, dstRect, srcImg, sp, op)
			return
		}
		mask := image.NewUniform(color.Alpha{A: uint8(alpha*255 + 0.5)})
		draw.DrawMask(r.img, dstRect, srcImg, sp, mask, image.Point{}, op)
	}
}

// Copy returns an independent raster with the same pixels.
func (r *Raster) Copy() Surface {
	img := image.NewRGBA(r.img.Bounds())
	copy(img.Pix, r.img.Pix)
	return &Raster{img: img}
}

// Dispose drops the pixel memory. Subsequent use yields a zero-size raster.
func (r *Raster) Dispose() {
	r.img = image.NewRGBA(image.Rectangle{})
}

// rasterImage returns the pixels of s as an *image.RGBA, converting surfaces
// of other backends.
func rasterImage(s Surface) *image.RGBA {
	if r, ok := s.(*Raster); ok {
		return r.img
	}
	return toRGBA(s.Image())
}

// toRGBA copies img into a new *image.RGBA anchored at the origin.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
