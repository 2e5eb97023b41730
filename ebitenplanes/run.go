// Package ebitenplanes runs a planes.Display in an [Ebitengine] window.
//
// [Run] opens the window and drives the frame loop. For full control,
// embed a [Game] in your own ebiten.Game. Planes are composited in software
// unless [Backend] is selected before any plane is created.
//
// [Ebitengine]: https://ebitengine.org
package ebitenplanes

import (
	"fmt"
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/planes"
	"golang.org/x/image/draw"
)

// Game is an ebiten.Game that feeds window input to a display and presents
// its screen.
type Game struct {
	display *planes.Display
	input   *Input
	cfg     planes.RunConfig
	runner  *planes.TestRunner
	fps     *fpsOverlay

	frame   *ebiten.Image // upload target for software screens
	pending bool          // a presented frame has not been uploaded yet
}

// NewGame prepares d for cfg. It installs the window cursor as the live
// pointer, paints the background, applies the debug and screenshot settings
// and loads the test script, if any.
func NewGame(d *planes.Display, cfg planes.RunConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ebitenplanes: %w", err)
	}
	g := &Game{display: d, input: NewInput(), cfg: cfg, pending: true}
	if cfg.TestScript != "" {
		data, err := os.ReadFile(cfg.TestScript)
		if err != nil {
			return nil, fmt.Errorf("ebitenplanes: %w", err)
		}
		g.runner, err = planes.LoadTestScript(data)
		if err != nil {
			return nil, fmt.Errorf("ebitenplanes: test script %s: %w", cfg.TestScript, err)
		}
		d.SetTestRunner(g.runner)
	}
	if cfg.ShowFPS {
		g.fps = &fpsOverlay{}
	}
	if cfg.ScreenshotDir != "" {
		d.ScreenshotDir = cfg.ScreenshotDir
	}
	d.SetDebugMode(cfg.Debug)
	d.SetPointer(g.input)
	d.Fill(cfg.BackgroundColor())
	return g, nil
}

// Update runs one frame of the display. It ends the game once a test
// script has finished.
func (g *Game) Update() error {
	if g.display.Step(g.input.Poll()) {
		g.pending = true
	}
	if g.fps != nil {
		g.fps.update(1 / float64(ebiten.TPS()))
	}
	if g.runner != nil && g.runner.Done() {
		planes.Logger().Info("test script finished")
		return ebiten.Termination
	}
	return nil
}

// Draw copies the display's screen to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	switch s := g.display.Screen().(type) {
	case *Surface:
		if s.Ebiten() != nil {
			screen.DrawImage(s.Ebiten(), nil)
		}
	default:
		if g.pending || g.frame == nil {
			g.upload(s)
		}
		if g.frame != nil {
			screen.DrawImage(g.frame, nil)
		}
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *Game) upload(s planes.Surface) {
	size := s.Size()
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	if g.frame == nil || g.frame.Bounds().Size() != size {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(size.X, size.Y)
	}
	g.frame.WritePixels(pixels(s.Image()))
	g.pending = false
}

// pixels returns img as tightly packed premultiplied RGBA bytes.
func pixels(img image.Image) []byte {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba.Pix[:4*b.Dx()*b.Dy()]
	}
	dst := image.NewRGBA(image.Rectangle{Max: b.Size()})
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst.Pix
}

// Layout keeps the logical screen at the configured size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window for cfg and runs d until the window is closed or the
// test script has finished.
func Run(d *planes.Display, cfg planes.RunConfig) error {
	g, err := NewGame(d, cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetFullscreen(cfg.Fullscreen)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	planes.Logger().Info("starting", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	return ebiten.RunGame(g)
}
