// Package frost renders an animated procedural background and a single
// "glass" button whose interior refracts the pixels beneath it.
//
// The package is the display-independent core: CPU raster surfaces drawn
// with [gg], a background field generator, the button's motion controller,
// the refraction sampler and the glass compositor, all sequenced by a
// [Driver]. The interactive window lives in frost/window, built on
// [Ebitengine].
//
// # Quick start
//
// Build a driver from a config and tick it with a monotonically increasing
// time in milliseconds:
//
//	d, err := frost.NewDriver(frost.DefaultConfig(), nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i := 0; i < 60; i++ {
//		d.Tick(float64(i) * 1000 / 60)
//	}
//	img := d.Composite() // background with the glass overlay on top
//
// To open a window instead, hand the driver to window.Run.
//
// # Frame pipeline
//
// Every [Driver.Tick] runs the same fixed sequence:
//
//  1. apply queued pointer events to the [Motion] state
//  2. advance motion (exponential smoothing or a damped spring)
//  3. repaint the whole background with [Field.Render]
//  4. capture the button-sized window around the button and [Refract] it
//  5. redraw the overlay with [Compositor.Render]
//
// # Refraction
//
// [Refract] is a pure nearest-neighbour remap. Each output pixel copies the
// source pixel displaced toward the window center by
// sin(r/rmax * pi/2) * strength * 0.1 of its offset. A strength of zero
// returns an identical copy, and the center pixel never moves.
//
// # Live parameters
//
// Refraction strength, glass opacity, edge blur and button size live in a
// [ParamStore]. Writers on any goroutine call [ParamStore.Set],
// [ParamStore.Adjust] or [ParamStore.Apply]; the driver takes one snapshot
// per tick. Edge blur is carried and displayed but no stage reads it.
//
// # Scripting and capture
//
// Synthetic input can be queued with [Driver.InjectClick] and friends, or
// sequenced from JSON with [LoadScript]. [Driver.Screenshot] writes PNGs to
// the screenshot directory and [Export] renders a fixed number of frames
// headlessly.
//
// # Logging
//
// frost logs through log/slog and is silent by default. Install a logger
// with [SetLogger].
//
// [gg]: https://github.com/fogleman/gg
// [Ebitengine]: https://ebitengine.org
package frost
