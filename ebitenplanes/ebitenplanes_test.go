package ebitenplanes

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/planes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlendFor(t *testing.T) {
	tests := []struct {
		mode planes.BlendMode
		want ebiten.Blend
	}{
		{planes.BlendNormal, ebiten.BlendSourceOver},
		{planes.BlendCopy, ebiten.BlendCopy},
		{planes.BlendAdd, ebiten.BlendLighter},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, blendFor(tt.mode), tt.mode.String())
	}
	m := blendFor(planes.BlendMultiply)
	assert.Equal(t, ebiten.BlendFactorDestinationColor, m.BlendFactorSourceRGB)
	assert.Equal(t, ebiten.BlendFactorOneMinusSourceAlpha, m.BlendFactorDestinationRGB)
}

func TestMapButton(t *testing.T) {
	b, ok := mapButton(ebiten.MouseButtonRight)
	assert.True(t, ok)
	assert.Equal(t, planes.MouseButtonRight, b)

	_, ok = mapButton(ebiten.MouseButton4)
	assert.False(t, ok)
}

func TestKeyEvents(t *testing.T) {
	keys := []ebiten.Key{ebiten.KeyBackspace, ebiten.KeyV, ebiten.KeyF1, ebiten.KeyNumpadEnter}

	evs := keyEvents(keys, 0)
	require.Len(t, evs, 2, "plain V arrives as a character, F1 is not mapped")
	assert.Equal(t, planes.KeyBackspace, evs[0].Key)
	assert.Equal(t, planes.KeyEnter, evs[1].Key)

	evs = keyEvents(keys, planes.ModCtrl)
	require.Len(t, evs, 3)
	assert.Equal(t, planes.KeyPress(planes.KeyV, planes.ModCtrl), evs[1])
}

func TestKeyMapCoversPolledKeys(t *testing.T) {
	assert.Len(t, mappedKeys, len(keyMap))
	for _, k := range mappedKeys {
		_, ok := mapKey(k)
		assert.True(t, ok, k.String())
	}
}

func TestWheelEvents(t *testing.T) {
	pos := image.Pt(3, 4)
	assert.Equal(t, []planes.Event{planes.ButtonDown(planes.MouseButtonWheelUp, pos)}, wheelEvents(1, pos))
	assert.Equal(t, []planes.Event{planes.ButtonDown(planes.MouseButtonWheelDown, pos)}, wheelEvents(-0.5, pos))
	assert.Empty(t, wheelEvents(0, pos))
}

func TestRepeating(t *testing.T) {
	var fired []int
	for d := 0; d <= repeatDelay+2*repeatInterval; d++ {
		if repeating(d) {
			fired = append(fired, d)
		}
	}
	assert.Equal(t, []int{1, repeatDelay, repeatDelay + repeatInterval, repeatDelay + 2*repeatInterval}, fired)
}

func TestPixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(2, 2, color.RGBA{R: 255, A: 255})
	assert.Len(t, pixels(img), 4*4*4)

	sub := img.SubImage(image.Rect(2, 2, 4, 4))
	px := pixels(sub)
	require.Len(t, px, 2*2*4)
	assert.Equal(t, []byte{255, 0, 0, 255}, px[:4], "sub-images are repacked at the origin")
}

func TestFPSText(t *testing.T) {
	assert.Equal(t, "FPS: 59.9\nTPS: 60.0", fpsText(59.94, 60))
}

func TestNewGame(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "smoke.json")
	require.NoError(t, os.WriteFile(script, []byte(`{"steps":[{"action":"wait","frames":1}]}`), 0o644))

	cfg := planes.DefaultRunConfig()
	cfg.Width, cfg.Height = 64, 48
	cfg.Background = "#102030"
	cfg.ScreenshotDir = dir
	cfg.TestScript = script

	d := planes.NewDisplay(64, 48)
	g, err := NewGame(d, cfg)
	require.NoError(t, err)

	assert.Equal(t, dir, d.ScreenshotDir)
	assert.Same(t, g.input, d.Pointer())
	require.NotNil(t, g.runner)
	assert.False(t, g.runner.Done())

	raster, ok := d.Content().(*planes.Raster)
	require.True(t, ok)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, raster.At(0, 0))

	w, h := g.Layout(800, 600)
	assert.Equal(t, 64, w)
	assert.Equal(t, 48, h)
}

func TestNewGameErrors(t *testing.T) {
	d := planes.NewDisplay(10, 10)

	cfg := planes.DefaultRunConfig()
	cfg.Width = 0
	_, err := NewGame(d, cfg)
	assert.Error(t, err)

	cfg = planes.DefaultRunConfig()
	cfg.TestScript = filepath.Join(t.TempDir(), "missing.json")
	_, err = NewGame(d, cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"steps":[{"action":"fly"}]}`), 0o644))
	cfg.TestScript = bad
	_, err = NewGame(d, cfg)
	assert.Error(t, err)
}
