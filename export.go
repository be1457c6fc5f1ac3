package frost

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ExportOptions controls a headless frame export.
type ExportOptions struct {
	// Frames is the number of ticks to run and write.
	Frames int
	// StartMS is the time of the first tick; each later tick adds StepMS.
	StartMS float64
	StepMS  float64
	// Dir receives frame_00000.png, frame_00001.png, ...
	Dir string
	// Workers bounds concurrent PNG encoders. Zero means GOMAXPROCS.
	Workers int
	// Script, when set, is attached to the driver before the first tick.
	Script *ScriptRunner
}

// Export ticks d Frames times at fixed time steps and writes each composite
// frame to opts.Dir. Ticking stays on the calling goroutine; PNG encoding runs
// on a bounded worker pool. The first encoding error or a cancelled ctx stops
// the export.
func Export(ctx context.Context, d *Driver, opts ExportOptions) error {
	if opts.Frames <= 0 {
		return fmt.Errorf("export: frames must be positive, got %d", opts.Frames)
	}
	if opts.StepMS <= 0 {
		opts.StepMS = 1000.0 / 60
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if opts.Script != nil {
		d.SetScript(opts.Script)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < opts.Frames; i++ {
		if gctx.Err() != nil {
			break
		}
		d.Tick(opts.StartMS + float64(i)*opts.StepMS)
		frame := toNRGBA(d.Composite())
		path := filepath.Join(opts.Dir, fmt.Sprintf("frame_%05d.png", i))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return writePNG(path, frame)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	Logger().Info("export finished", "frames", opts.Frames, "dir", opts.Dir)
	return nil
}
