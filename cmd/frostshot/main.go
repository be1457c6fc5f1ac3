// Command frostshot renders frames headlessly and writes them as PNG files.
//
//	frostshot -frames 120 -out frames -config frost.yaml -script demo.json
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/phanxgames/frost"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults built in)")
	scriptPath := flag.String("script", "", "JSON input script to play back")
	out := flag.String("out", "frames", "output directory")
	frames := flag.Int("frames", 60, "number of ticks to render")
	step := flag.Float64("step", 1000.0/60, "milliseconds between ticks")
	workers := flag.Int("workers", 0, "concurrent PNG encoders (0 = GOMAXPROCS)")
	width := flag.Int("width", 0, "override surface width")
	height := flag.Int("height", 0, "override surface height")
	seed := flag.Uint64("seed", 0, "override field seed")
	verbose := flag.Bool("v", false, "log per-tick timings")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	frost.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := frost.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = frost.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("frostshot: %v", err)
		}
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if *seed != 0 {
		cfg.Field.Seed = *seed
	}
	cfg.Debug = cfg.Debug || *verbose

	d, err := frost.NewDriver(cfg, nil)
	if err != nil {
		log.Fatalf("frostshot: %v", err)
	}

	opts := frost.ExportOptions{
		Frames:  *frames,
		StepMS:  *step,
		Dir:     *out,
		Workers: *workers,
	}
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("frostshot: %v", err)
		}
		opts.Script, err = frost.LoadScript(data)
		if err != nil {
			log.Fatalf("frostshot: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := frost.Export(ctx, d, opts); err != nil {
		log.Fatalf("frostshot: %v", err)
	}
}
