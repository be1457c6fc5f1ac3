package frost

import (
	"fmt"
	"image"
	"math/rand/v2"
	"time"

	"github.com/fogleman/gg"
)

// Driver owns the two surfaces, the field, the motion state and the
// compositor, and runs them in a fixed order once per tick. All methods must
// be called from the goroutine that calls Tick, except Params, whose store is
// safe for concurrent writers.
type Driver struct {
	cfg   Config
	store *ParamStore
	rng   *rand.Rand
	debug bool

	background *Surface
	overlay    *Surface
	field      *Field
	motion     *Motion
	compositor *Compositor
	pool       bufferPool

	composite *image.RGBA

	// Input
	events      []PointerEvent
	injectQueue []PointerEvent
	runner      *ScriptRunner

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string

	running bool
	now     float64
	ticks   uint64
	last    Params
}

// NewDriver builds a driver from cfg. When store is nil a new store seeded
// from cfg is created. The button starts at the center of the surface.
func NewDriver(cfg Config, store *ParamStore) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new driver: %w", err)
	}
	w, h := cfg.Window.Width, cfg.Window.Height
	bg, err := NewSurface(w, h)
	if err != nil {
		return nil, fmt.Errorf("new driver: background: %w", err)
	}
	ov, err := NewSurface(w, h)
	if err != nil {
		return nil, fmt.Errorf("new driver: overlay: %w", err)
	}
	comp, err := NewCompositor(cfg.Button.Label, DefaultCompositorOptions())
	if err != nil {
		return nil, fmt.Errorf("new driver: %w", err)
	}
	if store == nil {
		store = NewParamStore(cfg.Params())
	}

	rng := rand.New(rand.NewPCG(cfg.Field.Seed, cfg.Field.Seed^0x9e3779b97f4a7c15))
	field := NewField(rng, cfg.Field.Objects, float64(w), float64(h))
	field.Decorations = cfg.Field.Decorations

	motion := NewMotion(float64(w)/2, float64(h)/2)
	motion.Smoothing = cfg.Motion.Smoothing
	motion.SetSpring(SpringParams{Frequency: cfg.Motion.SpringFrequency, Damping: cfg.Motion.SpringDamping})
	mode, _ := ParseMotionMode(cfg.Motion.Mode)
	motion.SetMode(mode)

	d := &Driver{
		cfg:           cfg,
		store:         store,
		rng:           rng,
		debug:         cfg.Debug,
		background:    bg,
		overlay:       ov,
		field:         field,
		motion:        motion,
		compositor:    comp,
		ScreenshotDir: cfg.ScreenshotDir,
		running:       true,
		last:          store.Snapshot(),
	}
	Logger().Info("driver created", "width", w, "height", h, "objects", len(field.Objects), "mode", mode)
	return d, nil
}

// Config returns the configuration the driver was built from.
func (d *Driver) Config() Config { return d.cfg }

// Params returns the live parameter store.
func (d *Driver) Params() *ParamStore { return d.store }

// Motion returns the motion state.
func (d *Driver) Motion() *Motion { return d.motion }

// Field returns the background field.
func (d *Driver) Field() *Field { return d.field }

// Background returns the background surface.
func (d *Driver) Background() *Surface { return d.background }

// Overlay returns the overlay surface.
func (d *Driver) Overlay() *Surface { return d.overlay }

// Now returns the time passed to the most recent Tick, in milliseconds.
func (d *Driver) Now() float64 { return d.now }

// Ticks returns the number of completed ticks.
func (d *Driver) Ticks() uint64 { return d.ticks }

// LastParams returns the parameter snapshot used by the most recent tick.
func (d *Driver) LastParams() Params { return d.last }

// Geometry returns the button geometry for the current parameters.
func (d *Driver) Geometry() Geometry {
	return d.geometry(d.store.Snapshot())
}

func (d *Driver) geometry(p Params) Geometry {
	return GeometryFor(p.ButtonSize, d.cfg.Button.Aspect, d.cfg.Button.Radius)
}

// SetDebug enables per-tick stage timings at debug log level.
func (d *Driver) SetDebug(enabled bool) { d.debug = enabled }

// Running reports whether the driver still accepts ticks.
func (d *Driver) Running() bool { return d.running }

// Stop makes every further Tick a no-op. A tick in progress is not affected.
func (d *Driver) Stop() {
	if d.running {
		Logger().Info("driver stopped", "ticks", d.ticks)
	}
	d.running = false
}

// Input queues a pointer event. Queued events are applied, in order, at the
// start of the next tick.
func (d *Driver) Input(ev PointerEvent) {
	d.events = append(d.events, ev)
}

// ToggleDecorations flips the field's static decorations.
func (d *Driver) ToggleDecorations() bool {
	d.field.Decorations = !d.field.Decorations
	return d.field.Decorations
}

// ToggleMotionMode switches between smooth and spring motion.
func (d *Driver) ToggleMotionMode() MotionMode {
	next := MotionSpring
	if d.motion.Mode() == MotionSpring {
		next = MotionSmooth
	}
	d.motion.SetMode(next)
	return next
}

// Recenter tweens the button back to the middle of the surface.
func (d *Driver) Recenter() {
	d.motion.Recenter(
		float64(d.background.Width())/2, float64(d.background.Height())/2,
		float32(d.cfg.Motion.RecenterSeconds), EaseByName(d.cfg.Motion.RecenterEase),
	)
}

// Tick runs one frame at time now (milliseconds). The attached script steps
// first, then parameters are snapshotted and pending input applied. Motion,
// field repaint, sampling and compositing follow in that order, and queued
// screenshots are written last.
func (d *Driver) Tick(now float64) {
	if !d.running {
		return
	}
	var stats tickStats
	var t0 time.Time
	if d.debug {
		t0 = time.Now()
	}

	d.now = now
	if d.runner != nil {
		d.runner.step(d)
	}
	p := d.store.Snapshot()
	d.last = p
	d.processInput()

	d.motion.Update(now)
	if d.debug {
		stats.motion = time.Since(t0)
		t0 = time.Now()
	}

	d.field.Render(d.background, now)
	if d.debug {
		stats.field = time.Since(t0)
		t0 = time.Now()
	}

	g := d.geometry(p)
	pos := d.motion.Pos
	win := WindowRect(pos.X, pos.Y, g.Width, g.Height)
	crop := d.pool.acquire(win.Dx(), win.Dy())
	d.background.captureInto(crop, win)
	refracted := d.pool.acquire(win.Dx(), win.Dy())
	refractInto(refracted, crop, p.RefractionStrength)
	if d.debug {
		stats.sample = time.Since(t0)
		t0 = time.Now()
	}

	d.compositor.Render(d.overlay, crop, refracted, pos, g, p)
	d.pool.release(crop)
	d.pool.release(refracted)
	if d.debug {
		stats.composite = time.Since(t0)
		stats.window = win
		d.debugLog(stats)
	}

	d.ticks++
	d.flushScreenshots()
}

// processInput applies every queued real event, then at most one injected
// event so scripted sequences span consecutive ticks.
func (d *Driver) processInput() {
	for _, ev := range d.events {
		d.motion.Apply(ev)
	}
	d.events = d.events[:0]
	d.processInjectedInput()
}

// Resize regenerates both surfaces and the scene objects for a w x h view,
// even when the size is unchanged. Motion state is left untouched. Zero or
// negative sizes are ignored.
func (d *Driver) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		Logger().Warn("resize ignored", "width", w, "height", h)
		return
	}
	// Both calls only fail on non-positive sizes, which are rejected above.
	_ = d.background.Resize(w, h)
	_ = d.overlay.Resize(w, h)
	d.field.Reset(d.rng, float64(w), float64(h))
	d.pool.reset()
	d.composite = nil
	Logger().Info("resized", "width", w, "height", h)
}

// Composite returns the background with the overlay drawn over it. The
// returned image is reused by the next call.
func (d *Driver) Composite() *image.RGBA {
	bg := d.background.Image()
	if d.composite == nil || d.composite.Rect != bg.Rect {
		d.composite = image.NewRGBA(bg.Rect)
	}
	copy(d.composite.Pix, bg.Pix)
	gg.NewContextForRGBA(d.composite).DrawImage(d.overlay.Image(), 0, 0)
	return d.composite
}
