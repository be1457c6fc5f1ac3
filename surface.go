package frost

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// ErrInvalidSize is returned when a surface is requested with a zero or
// negative dimension.
var ErrInvalidSize = errors.New("frost: invalid surface size")

// Surface is a CPU raster canvas owned by the caller. Primitive drawing goes
// through the gg context, which writes straight into the surface's pixels, so
// reads always observe the most recent writes.
type Surface struct {
	img  *image.RGBA
	dc   *gg.Context
	w, h int
}

// NewSurface creates a transparent surface of the given size.
func NewSurface(w, h int) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("new surface %dx%d: %w", w, h, ErrInvalidSize)
	}
	s := &Surface{}
	s.alloc(w, h)
	return s, nil
}

func (s *Surface) alloc(w, h int) {
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
	s.dc = gg.NewContextForRGBA(s.img)
	s.w, s.h = w, h
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.w
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.h
}

// Bounds returns the surface rectangle anchored at the origin.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Rect
}

// Context returns the gg drawing context bound to this surface.
func (s *Surface) Context() *gg.Context {
	return s.dc
}

// Image returns the underlying *image.RGBA for direct pixel access.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Clear fills the surface with transparent black.
func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// Fill fills the entire surface with the given color.
func (s *Surface) Fill(c Color) {
	s.dc.SetColor(c.NRGBA())
	s.dc.Clear()
}

// At returns the premultiplied pixel at (x, y), or transparent black when out
// of range.
func (s *Surface) At(x, y int) color.RGBA {
	if !(image.Point{x, y}).In(s.img.Rect) {
		return color.RGBA{}
	}
	return s.img.RGBAAt(x, y)
}

// Capture copies the pixels under r into a new buffer. Pixels of r that fall
// outside the surface read as transparent black.
func (s *Surface) Capture(r image.Rectangle) PixelBuffer {
	buf := NewPixelBuffer(r.Dx(), r.Dy())
	buf.copyFrom(s.img, r)
	return buf
}

// captureInto is Capture writing into a caller-supplied buffer of r's size.
// Every sample of dst is overwritten.
func (s *Surface) captureInto(dst PixelBuffer, r image.Rectangle) {
	if !r.In(s.img.Rect) {
		clear(dst.Pix)
	}
	dst.copyFrom(s.img, r)
}

// Blit writes buf onto the surface with its top-left at (x, y), replacing the
// destination pixels. Parts of buf outside the surface are dropped.
func (s *Surface) Blit(buf PixelBuffer, x, y int) {
	dst := image.Rect(x, y, x+buf.Width, y+buf.Height)
	inter := dst.Intersect(s.img.Rect)
	if inter.Empty() {
		return
	}
	rowBytes := inter.Dx() * 4
	for py := inter.Min.Y; py < inter.Max.Y; py++ {
		si := buf.offset(inter.Min.X-x, py-y)
		di := s.img.PixOffset(inter.Min.X, py)
		copy(s.img.Pix[di:di+rowBytes], buf.Pix[si:si+rowBytes])
	}
}

// Resize replaces the surface storage with a transparent canvas of the new
// size. Previous contents are discarded.
func (s *Surface) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("resize surface to %dx%d: %w", w, h, ErrInvalidSize)
	}
	if w == s.w && h == s.h {
		s.Clear()
		return nil
	}
	s.alloc(w, h)
	return nil
}
