package frost

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Screenshot queues a labeled screenshot of the composite frame. It is
// written at the end of the next tick to ScreenshotDir with a timestamped
// file name.
func (d *Driver) Screenshot(label string) {
	d.screenshotQueue = append(d.screenshotQueue, label)
}

// flushScreenshots writes every queued screenshot. Failures are logged and
// the queue is always emptied.
func (d *Driver) flushScreenshots() {
	if len(d.screenshotQueue) == 0 {
		return
	}
	defer func() { d.screenshotQueue = d.screenshotQueue[:0] }()

	if err := os.MkdirAll(d.ScreenshotDir, 0o755); err != nil {
		Logger().Warn("screenshot: mkdir failed", "dir", d.ScreenshotDir, "err", err)
		return
	}

	img := toNRGBA(d.Composite())
	stamp := time.Now().Format("20060102_150405")

	for i, label := range d.screenshotQueue {
		name := fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label))
		if i > 0 {
			name = fmt.Sprintf("%s_%s_%d.png", stamp, sanitizeLabel(label), i)
		}
		path := filepath.Join(d.ScreenshotDir, name)
		if err := writePNG(path, img); err != nil {
			Logger().Warn("screenshot failed", "err", err)
			continue
		}
		Logger().Info("screenshot saved", "path", path)
	}
}

// SavePNG writes the current composite frame to path.
func (d *Driver) SavePNG(path string) error {
	return writePNG(path, toNRGBA(d.Composite()))
}

// toNRGBA converts premultiplied RGBA to a new straight-alpha NRGBA image.
func toNRGBA(src *image.RGBA) *image.NRGBA {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		si := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		di := y * img.Stride
		for x := 0; x < w*4; x += 4 {
			r, g, b, a := src.Pix[si+x], src.Pix[si+x+1], src.Pix[si+x+2], src.Pix[si+x+3]
			if a > 0 && a < 255 {
				r = uint8(min(int(r)*255/int(a), 255))
				g = uint8(min(int(g)*255/int(a), 255))
				b = uint8(min(int(b)*255/int(a), 255))
			}
			img.Pix[di+x] = r
			img.Pix[di+x+1] = g
			img.Pix[di+x+2] = b
			img.Pix[di+x+3] = a
		}
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
