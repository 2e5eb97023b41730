package planes

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaneAtLastInsertedWins(t *testing.T) {
	root := NewPlane("root", R(0, 0, 100, 100))
	c1 := NewPlane("c1", R(0, 0, 50, 50))
	c2 := NewPlane("c2", R(10, 10, 50, 50))
	c3 := NewPlane("c3", R(20, 20, 50, 50))
	require.NoError(t, root.InsertChild(c1))
	require.NoError(t, root.InsertChild(c2))
	require.NoError(t, root.InsertChild(c3))

	hit, local := root.PlaneAt(image.Pt(30, 30))
	assert.Same(t, c3, hit)
	assert.Equal(t, image.Pt(10, 10), local)

	// Re-inserting c1 moves it to the top.
	require.NoError(t, root.InsertChild(c1))
	hit, _ = root.PlaneAt(image.Pt(30, 30))
	assert.Same(t, c1, hit)
}

func TestPlaneAtDeepest(t *testing.T) {
	root := NewPlane("root", R(0, 0, 100, 100))
	outer := NewPlane("outer", R(10, 10, 50, 50))
	inner := NewPlane("inner", R(5, 5, 10, 10))
	require.NoError(t, root.InsertChild(outer))
	require.NoError(t, outer.InsertChild(inner))

	tests := []struct {
		name      string
		pt        image.Point
		want      *Plane
		wantLocal image.Point
	}{
		{"inner", image.Pt(16, 17), inner, image.Pt(1, 2)},
		{"outer", image.Pt(40, 40), outer, image.Pt(30, 30)},
		{"root", image.Pt(80, 80), root, image.Pt(80, 80)},
		{"outside everything", image.Pt(-5, 200), root, image.Pt(-5, 200)},
		{"right edge excluded", image.Pt(60, 20), root, image.Pt(60, 20)},
		{"left edge included", image.Pt(10, 10), outer, image.Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, local := root.PlaneAt(tt.pt)
			assert.Same(t, tt.want, hit)
			assert.Equal(t, tt.wantLocal, local)
		})
	}
}

func TestPlaneAtChildOutsideParentBounds(t *testing.T) {
	// Children are tested against their own rectangle only.
	root := NewPlane("root", R(0, 0, 100, 100))
	small := NewPlane("small", R(0, 0, 10, 10))
	far := NewPlane("far", R(50, 50, 5, 5))
	require.NoError(t, root.InsertChild(small))
	require.NoError(t, small.InsertChild(far))

	hit, local := root.PlaneAt(image.Pt(52, 52))
	assert.Same(t, root, hit)
	assert.Equal(t, image.Pt(52, 52), local)
}

func TestAbsoluteRect(t *testing.T) {
	root := NewPlane("root", R(0, 0, 100, 100))
	a := NewPlane("a", R(10, 20, 50, 50))
	b := NewPlane("b", R(3, 4, 5, 6))
	require.NoError(t, root.InsertChild(a))
	require.NoError(t, a.InsertChild(b))

	assert.Equal(t, R(13, 24, 5, 6), b.AbsoluteRect())
	assert.Equal(t, image.Pt(2, 1), b.ToLocal(image.Pt(15, 25)))
}
