package frost

import (
	"bytes"
	"image"
	"image/color"
)

// PixelBuffer is a rectangular block of premultiplied RGBA8 samples with its
// own backing storage. Row stride is always 4*Width.
type PixelBuffer struct {
	Width, Height int
	Pix           []uint8
}

// NewPixelBuffer allocates a transparent buffer of the given size. Negative
// dimensions are treated as zero.
func NewPixelBuffer(w, h int) PixelBuffer {
	w, h = max(w, 0), max(h, 0)
	return PixelBuffer{Width: w, Height: h, Pix: make([]uint8, 4*w*h)}
}

// Empty reports whether the buffer holds no pixels.
func (b PixelBuffer) Empty() bool {
	return b.Width == 0 || b.Height == 0
}

// offset returns the index of the first byte of pixel (x, y).
func (b PixelBuffer) offset(x, y int) int {
	return (y*b.Width + x) * 4
}

// In reports whether (x, y) addresses a pixel of the buffer.
func (b PixelBuffer) In(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// At returns the pixel at (x, y), or transparent black when out of range.
func (b PixelBuffer) At(x, y int) color.RGBA {
	if !b.In(x, y) {
		return color.RGBA{}
	}
	i := b.offset(x, y)
	p := b.Pix[i : i+4 : i+4]
	return color.RGBA{p[0], p[1], p[2], p[3]}
}

// Set writes the pixel at (x, y). Out-of-range writes are dropped.
func (b PixelBuffer) Set(x, y int, c color.RGBA) {
	if !b.In(x, y) {
		return
	}
	i := b.offset(x, y)
	p := b.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// Equal reports whether b and o have the same size and identical samples.
func (b PixelBuffer) Equal(o PixelBuffer) bool {
	return b.Width == o.Width && b.Height == o.Height && bytes.Equal(b.Pix, o.Pix)
}

// Clone returns a deep copy of b.
func (b PixelBuffer) Clone() PixelBuffer {
	c := PixelBuffer{Width: b.Width, Height: b.Height, Pix: make([]uint8, len(b.Pix))}
	copy(c.Pix, b.Pix)
	return c
}

// RGBA returns an *image.RGBA anchored at the origin that shares b's storage.
func (b PixelBuffer) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    b.Pix,
		Stride: 4 * b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// WithOpacity returns a copy of b with every sample scaled by alpha, which is
// the premultiplied form of drawing b at partial opacity.
func (b PixelBuffer) WithOpacity(alpha float64) PixelBuffer {
	out := NewPixelBuffer(b.Width, b.Height)
	b.scaleInto(out, alpha)
	return out
}

// scaleInto writes b scaled by alpha into dst, which must match b's size.
func (b PixelBuffer) scaleInto(dst PixelBuffer, alpha float64) {
	a := uint32(clamp01(alpha)*256 + 0.5)
	for i, v := range b.Pix {
		dst.Pix[i] = uint8((uint32(v)*a + 128) >> 8)
	}
}

// copyFrom copies the overlapping region of an RGBA image into b, with the
// image pixel at src.Min landing on (0, 0). Pixels outside the image bounds
// are left untouched.
func (b PixelBuffer) copyFrom(img *image.RGBA, src image.Rectangle) {
	inter := src.Intersect(img.Rect)
	if inter.Empty() {
		return
	}
	rowBytes := inter.Dx() * 4
	for y := inter.Min.Y; y < inter.Max.Y; y++ {
		si := img.PixOffset(inter.Min.X, y)
		di := b.offset(inter.Min.X-src.Min.X, y-src.Min.Y)
		copy(b.Pix[di:di+rowBytes], img.Pix[si:si+rowBytes])
	}
}
