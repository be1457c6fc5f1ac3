// Package window runs a frost.Driver in an Ebitengine window: pointer and
// touch input, keyboard controls for the live parameters, presentation of
// the composite frame, a debug HUD and a native save dialog.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/frost"
)

// Options configures the window.
type Options struct {
	// Title is the window title. Empty uses the driver config title.
	Title string
	// Width and Height set the initial window size. Zero uses the driver's
	// surface size.
	Width, Height int
	// ShowHUD starts with the debug HUD visible. F1 toggles it.
	ShowHUD bool
	// Fixed disables window resizing.
	Fixed bool
}

// Key bindings for the live parameters: step sizes per key press.
const (
	strengthStep = 0.1
	opacityStep  = 0.05
	edgeBlurStep = 1
	sizeStep     = 10
)

type paramKey struct {
	dec, inc ebiten.Key
	name     string
	step     float64
}

var paramKeys = []paramKey{
	{ebiten.KeyDigit1, ebiten.KeyDigit2, frost.ParamStrength, strengthStep},
	{ebiten.KeyDigit3, ebiten.KeyDigit4, frost.ParamOpacity, opacityStep},
	{ebiten.KeyDigit5, ebiten.KeyDigit6, frost.ParamEdgeBlur, edgeBlurStep},
	{ebiten.KeyDigit7, ebiten.KeyDigit8, frost.ParamSize, sizeStep},
}

// game adapts a Driver to ebiten.Game.
type game struct {
	d       *frost.Driver
	input   pointerReader
	hud     *hud
	showHUD bool
	dialog  *saveDialog
	frame   *ebiten.Image

	start      time.Time
	lastUpdate time.Time

	pendingW, pendingH int
}

// Run opens a window and drives d until the window is closed or Esc is
// pressed. It blocks and must be called from the main goroutine.
func Run(d *frost.Driver, opts Options) error {
	cfg := d.Config()
	if opts.Title == "" {
		opts.Title = cfg.Window.Title
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width = d.Background().Width()
		opts.Height = d.Background().Height()
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	if opts.Fixed {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := &game{
		d:       d,
		hud:     newHUD(),
		showHUD: opts.ShowHUD,
		dialog:  newSaveDialog(),
	}
	err := ebiten.RunGame(g)
	d.Stop()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Update applies a pending resize, feeds input to the driver and runs one
// tick. Time passed to the driver is milliseconds since the first Update.
func (g *game) Update() error {
	now := time.Now()
	if g.start.IsZero() {
		g.start, g.lastUpdate = now, now
	}
	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now

	if g.pendingW > 0 && g.pendingH > 0 {
		g.d.Resize(g.pendingW, g.pendingH)
		g.pendingW, g.pendingH = 0, 0
	}

	if err := g.handleKeys(); err != nil {
		return err
	}
	g.pollDialog()
	g.input.read(g.d)

	g.d.Tick(float64(now.Sub(g.start).Microseconds()) / 1000)

	if g.showHUD {
		g.hud.update(dt, g.d)
	}
	return nil
}

func (g *game) handleKeys() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	store := g.d.Params()
	for _, k := range paramKeys {
		var delta float64
		if inpututil.IsKeyJustPressed(k.dec) {
			delta -= k.step
		}
		if inpututil.IsKeyJustPressed(k.inc) {
			delta += k.step
		}
		if delta != 0 {
			if _, err := store.Adjust(k.name, delta); err != nil {
				frost.Logger().Warn("adjust failed", "param", k.name, "err", err)
			}
		}
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.dialog.start(g.d.ScreenshotDir)
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		on := g.d.ToggleDecorations()
		g.hud.flash(fmt.Sprintf("decorations %v", on))
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		mode := g.d.ToggleMotionMode()
		g.hud.flash("motion " + mode.String())
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.d.Recenter()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.d.Screenshot("frame")
		g.hud.flash("screenshot queued")
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		g.showHUD = !g.showHUD
		g.hud.elapsed = hudRefresh
	}
	return nil
}

func (g *game) pollDialog() {
	path, ok, err := g.dialog.poll()
	switch {
	case !ok:
	case err != nil:
		frost.Logger().Warn("save dialog failed", "err", err)
		g.hud.flash("save failed")
	case path == "":
		g.hud.flash("save cancelled")
	default:
		if err := g.d.SavePNG(path); err != nil {
			frost.Logger().Warn("save frame failed", "path", path, "err", err)
			g.hud.flash("save failed")
			return
		}
		frost.Logger().Info("frame saved", "path", path)
		g.hud.flash("saved " + path)
	}
}

// Draw uploads the composite frame and draws the HUD over it.
func (g *game) Draw(screen *ebiten.Image) {
	img := g.d.Composite()
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if g.frame == nil || g.frame.Bounds().Dx() != w || g.frame.Bounds().Dy() != h {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(w, h)
	}
	// Surface pixels are premultiplied, which is what WritePixels expects.
	g.frame.WritePixels(img.Pix)
	screen.DrawImage(g.frame, nil)

	if g.showHUD {
		g.hud.draw(screen)
	}
}

// Layout keeps the logical screen equal to the window size. A change is
// recorded and applied to the driver at the start of the next Update.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	bg := g.d.Background()
	if outsideWidth != bg.Width() || outsideHeight != bg.Height() {
		g.pendingW, g.pendingH = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}
