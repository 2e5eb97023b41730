package ebitenplanes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsInterval is the time between refreshes of the overlay in seconds.
const fpsInterval = 0.5

// fpsOverlay shows the current FPS and TPS in the top-left corner. It is
// drawn on the window after the display, so it never enters the planes tree
// or screenshots.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
}

func (f *fpsOverlay) update(dt float64) {
	f.elapsed += dt
	if f.img != nil && f.elapsed < fpsInterval {
		return
	}
	f.elapsed = 0
	if f.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		f.img = ebiten.NewImage(100, 32)
	}
	f.img.Clear()
	// Semi-transparent background for readability
	f.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(f.img, fpsText(ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	if f.img != nil {
		screen.DrawImage(f.img, nil)
	}
}

func fpsText(fps, tps float64) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
}
