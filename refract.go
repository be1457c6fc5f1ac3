package frost

import (
	"image"
	"math"
)

// WindowRect returns the integer rectangle of a w x h window centered at
// (cx, cy). The top-left is floored and the size truncated, so a fractional
// center never changes the window's dimensions.
func WindowRect(cx, cy, w, h float64) image.Rectangle {
	x0 := int(math.Floor(cx - w/2))
	y0 := int(math.Floor(cy - h/2))
	return image.Rect(x0, y0, x0+int(w), y0+int(h))
}

// Refract applies the radial lens remap to src and returns a new buffer of
// the same size. Each output pixel (x, y) copies the source pixel at
//
//	x - dx*d, y - dy*d   (rounded half away from zero)
//
// where (dx, dy) is the offset from the buffer center and
// d = sin(r/(min(w,h)/2) * pi/2) * strength * 0.1. Source positions that land
// outside the buffer fall back to the pixel at (x, y). Refract is a pure
// function of its inputs.
func Refract(src PixelBuffer, strength float64) PixelBuffer {
	out := NewPixelBuffer(src.Width, src.Height)
	refractInto(out, src, strength)
	return out
}

// refractInto is Refract writing into dst, which must match src's size. Every
// sample of dst is overwritten.
func refractInto(dst, src PixelBuffer, strength float64) {
	w, h := src.Width, src.Height
	if w == 0 || h == 0 {
		return
	}
	if strength == 0 {
		copy(dst.Pix, src.Pix)
		return
	}

	halfW, halfH := float64(w)/2, float64(h)/2
	radius := math.Min(float64(w), float64(h)) / 2
	k := strength * 0.1

	for y := 0; y < h; y++ {
		dy := float64(y) - halfH
		row := y * w * 4
		for x := 0; x < w; x++ {
			dx := float64(x) - halfW
			dist := math.Sqrt(dx*dx + dy*dy)
			d := math.Sin(dist/radius*math.Pi/2) * k

			sx := int(math.Round(float64(x) - dx*d))
			sy := int(math.Round(float64(y) - dy*d))

			di := row + x*4
			si := di
			if sx >= 0 && sx < w && sy >= 0 && sy < h {
				si = (sy*w + sx) * 4
			}
			copy(dst.Pix[di:di+4:di+4], src.Pix[si:si+4:si+4])
		}
	}
}

// Sample captures the w x h window of s centered at (cx, cy) and returns the
// raw capture together with its refracted copy. Window pixels outside s read
// as transparent.
func Sample(s *Surface, cx, cy, w, h, strength float64) (crop, refracted PixelBuffer) {
	crop = s.Capture(WindowRect(cx, cy, w, h))
	return crop, Refract(crop, strength)
}
