package planes

import (
	"image"
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	p := NewPlane("pos", R(10, 20, 4, 4))

	g := TweenPosition(p, image.Pt(100, 200), 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	if p.Rect.X != 55 || p.Rect.Y != 110 {
		t.Errorf("halfway = (%d, %d), want (55, 110)", p.Rect.X, p.Rect.Y)
	}
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if p.Rect.X != 100 || p.Rect.Y != 200 {
		t.Errorf("Rect = %v, want (100, 200)", p.Rect)
	}
	if p.Rect.Width != 4 || p.Rect.Height != 4 {
		t.Errorf("size changed: %v", p.Rect)
	}
}

func TestTweenCenterReachesTarget(t *testing.T) {
	p := NewPlane("c", R(0, 0, 10, 10))

	g := TweenCenter(p, image.Pt(50, 60), 0.5, ease.Linear)
	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if got := p.Rect.Center(); got != image.Pt(50, 60) {
		t.Errorf("Center = %v, want (50, 60)", got)
	}
}

func TestTweenAlphaReachesTarget(t *testing.T) {
	p := NewPlane("a", R(0, 0, 1, 1))

	g := TweenAlpha(p, 0, 1.0, ease.Linear)
	g.Update(0.5)
	if math.Abs(p.Alpha-0.5) > 0.01 {
		t.Errorf("Alpha = %f, want ~0.5", p.Alpha)
	}
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if p.Alpha != 0 {
		t.Errorf("Alpha = %f, want 0", p.Alpha)
	}
}

func TestTweenAlphaClamped(t *testing.T) {
	p := NewPlane("a", R(0, 0, 1, 1))
	g := TweenAlpha(p, 0, 1.0, ease.OutBack)
	for !g.Done {
		g.Update(0.1)
		if p.Alpha < 0 || p.Alpha > 1 {
			t.Fatalf("Alpha = %f out of range", p.Alpha)
		}
	}
}

func TestTweenStopsOnDestroyedPlane(t *testing.T) {
	p := NewPlane("gone", R(0, 0, 1, 1))
	g := TweenPosition(p, image.Pt(100, 100), 1.0, ease.Linear)

	p.Destroy()
	g.Update(0.5)

	if !g.Done {
		t.Error("expected Done after target destroyed")
	}
	if p.Rect.X != 0 {
		t.Errorf("X = %d, want 0 (no writes after destroy)", p.Rect.X)
	}
}

func TestTweenDoneIsNoop(t *testing.T) {
	p := NewPlane("p", R(0, 0, 1, 1))
	g := TweenPosition(p, image.Pt(10, 10), 0.1, ease.Linear)
	g.Update(0.1)
	if !g.Done {
		t.Fatal("expected Done")
	}
	p.Rect.X = 99
	g.Update(0.1)
	if p.Rect.X != 99 {
		t.Errorf("X = %d, want 99 (updates after Done must not write)", p.Rect.X)
	}
}
