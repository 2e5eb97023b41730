package ebitenplanes

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/planes"
)

// Backend allocates GPU surfaces. Select it before creating any plane:
//
//	planes.SetBackend(ebitenplanes.Backend{})
//
// Surfaces of zero width or height hold no image and ignore drawing.
type Backend struct{}

// NewSurface returns a transparent surface.
func (Backend) NewSurface(w, h int) planes.Surface {
	s := &Surface{size: image.Pt(w, h)}
	if w > 0 && h > 0 {
		s.img = ebiten.NewImage(w, h)
	}
	return s
}

// NewSurfaceFromImage uploads img.
func (Backend) NewSurfaceFromImage(img image.Image) planes.Surface {
	b := img.Bounds()
	if b.Empty() {
		return &Surface{size: b.Size()}
	}
	return &Surface{img: ebiten.NewImageFromImage(img), size: b.Size()}
}

// Surface is a planes.Surface backed by an *ebiten.Image.
type Surface struct {
	img  *ebiten.Image
	size image.Point
}

// Ebiten returns the underlying image, or nil for an empty surface.
func (s *Surface) Ebiten() *ebiten.Image {
	return s.img
}

// Size returns the surface size.
func (s *Surface) Size() image.Point {
	return s.size
}

// Fill replaces every pixel with c.
func (s *Surface) Fill(c color.Color) {
	if s.img != nil {
		s.img.Fill(c)
	}
}

// Draw composites src onto s. Surfaces of other backends are uploaded
// first.
func (s *Surface) Draw(src planes.Surface, at image.Point, mode planes.BlendMode, alpha float64) {
	if s.img == nil {
		return
	}
	var srcImg *ebiten.Image
	switch t := src.(type) {
	case *Surface:
		if t.img == nil {
			return
		}
		srcImg = t.img
		if t == s {
			// ebiten cannot draw an image onto itself.
			srcImg = ebiten.NewImageFromImage(s.img)
			defer srcImg.Deallocate()
		}
	default:
		img := src.Image()
		if img == nil || img.Bounds().Empty() {
			return
		}
		srcImg = ebiten.NewImageFromImage(img)
		defer srcImg.Deallocate()
	}

	op := &ebiten.DrawImageOptions{Blend: blendFor(mode)}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	if alpha < 1 && (mode == planes.BlendNormal || mode == planes.BlendCopy) {
		op.ColorScale.ScaleAlpha(float32(max(alpha, 0)))
	}
	s.img.DrawImage(srcImg, op)
}

// Copy returns a new surface with the same pixels.
func (s *Surface) Copy() planes.Surface {
	c := &Surface{size: s.size}
	if s.img != nil {
		c.img = ebiten.NewImage(s.size.X, s.size.Y)
		c.img.DrawImage(s.img, &ebiten.DrawImageOptions{Blend: ebiten.BlendCopy})
	}
	return c
}

// Image returns the underlying image. Reading its pixels is only possible
// while the game loop runs.
func (s *Surface) Image() image.Image {
	if s.img == nil {
		return image.NewRGBA(image.Rectangle{Max: s.size})
	}
	return s.img
}

// Dispose releases the GPU memory.
func (s *Surface) Dispose() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	s.size = image.Point{}
}

// blendFor returns the ebiten.Blend value corresponding to a planes blend
// mode.
func blendFor(mode planes.BlendMode) ebiten.Blend {
	switch mode {
	case planes.BlendCopy:
		return ebiten.BlendCopy
	case planes.BlendAdd:
		return ebiten.BlendLighter
	case planes.BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendSourceOver
	}
}
