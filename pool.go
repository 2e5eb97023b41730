package planes

import "image/color"

// surfacePool manages reusable scratch surfaces keyed by exact dimensions.
// The compositor uses it for the per-frame highlight overlays, which are
// allocated and thrown away every frame the pointer rests on a plane.
type surfacePool struct {
	backend Backend
	buckets map[uint64][]Surface
}

// poolKey packs width and height into a single uint64.
func poolKey(w, h int) uint64 {
	return uint64(w)<<32 | uint64(uint32(h))
}

// Acquire returns a transparent surface of exactly (w, h) pixels.
func (p *surfacePool) Acquire(w, h int) Surface {
	if p.backend != backend {
		// Surfaces from a previous backend are never handed out again.
		p.Reset()
		p.backend = backend
	}
	key := poolKey(w, h)
	if stack := p.buckets[key]; len(stack) > 0 {
		s := stack[len(stack)-1]
		stack[len(stack)-1] = nil
		p.buckets[key] = stack[:len(stack)-1]
		s.Fill(color.Transparent)
		return s
	}
	return backend.NewSurface(w, h)
}

// Release returns s to the pool. The surface is cleared on the next Acquire,
// not here.
func (p *surfacePool) Release(s Surface) {
	if s == nil {
		return
	}
	size := s.Size()
	if p.buckets == nil {
		p.buckets = make(map[uint64][]Surface)
	}
	key := poolKey(size.X, size.Y)
	p.buckets[key] = append(p.buckets[key], s)
}

// Reset disposes every pooled surface.
func (p *surfacePool) Reset() {
	for key, stack := range p.buckets {
		for _, s := range stack {
			s.Dispose()
		}
		delete(p.buckets, key)
	}
}

// overlayPool is shared by all planes; the engine is single-threaded.
var overlayPool surfacePool
