package frost

import (
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// shadowKey identifies a blurred rounded-rect silhouette. A positive stroke
// selects the outline of that width instead of the filled shape.
type shadowKey struct {
	w, h, r, blur, stroke float64
}

// shadowCache keeps the most recent blurred silhouette. The button geometry
// only changes on user input, so one entry is enough.
type shadowCache struct {
	key   shadowKey
	pad   int
	mask  PixelBuffer // premultiplied opaque-black silhouette, blurred
	valid bool
	tint  PixelBuffer
}

// silhouette returns the blurred silhouette for a w x h rounded rect with
// corner radius r, and the padding added on every side. blur follows the
// canvas shadowBlur convention (sigma = blur/2). With stroke > 0 the
// silhouette is the rect's outline at that line width.
func (c *shadowCache) silhouette(w, h, r, blur, stroke float64) (PixelBuffer, int) {
	key := shadowKey{w, h, r, blur, stroke}
	if c.valid && c.key == key {
		return c.mask, c.pad
	}

	sigma := blur / 2
	pad := int(math.Ceil(sigma*3 + stroke/2))
	bw := int(math.Ceil(w)) + 2*pad
	bh := int(math.Ceil(h)) + 2*pad

	src := NewPixelBuffer(bw, bh)
	dc := gg.NewContextForRGBA(src.RGBA())
	dc.SetRGB(0, 0, 0)
	dc.DrawRoundedRectangle(float64(pad), float64(pad), w, h, r)
	if stroke > 0 {
		dc.SetLineWidth(stroke)
		dc.Stroke()
	} else {
		dc.Fill()
	}

	mask := src
	if sigma > 0 {
		// The silhouette is black, so straight and premultiplied samples
		// coincide and the blurred NRGBA bytes can be reused as is.
		blurred := imaging.Blur(src.RGBA(), sigma)
		mask = PixelBuffer{Width: bw, Height: bh, Pix: blurred.Pix}
	}

	c.key, c.pad, c.mask, c.valid = key, pad, mask, true
	return mask, pad
}

// tinted returns the silhouette scaled to alpha, reusing an internal buffer.
func (c *shadowCache) tinted(mask PixelBuffer, alpha float64) PixelBuffer {
	if c.tint.Width != mask.Width || c.tint.Height != mask.Height {
		c.tint = NewPixelBuffer(mask.Width, mask.Height)
	}
	mask.scaleInto(c.tint, alpha)
	return c.tint
}
