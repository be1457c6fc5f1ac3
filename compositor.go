package frost

import (
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// DefaultLabel is the text drawn in the middle of the button.
const DefaultLabel = "Pesquisar"

// CompositorOptions holds the fixed styling of the glass button. Values come
// from DefaultCompositorOptions and are not live-tunable.
type CompositorOptions struct {
	// BlendOpacity is the opacity of the refracted layer over the raw crop.
	BlendOpacity float64
	// ShadowColor, ShadowBlur and ShadowOffsetY style the drop shadow cast
	// by both the frame fill and the border, each scaled by its own opacity.
	ShadowColor   Color
	ShadowBlur    float64
	ShadowOffsetY float64
	// FillFactor scales GlassOpacity for the frame fill.
	FillFactor  float64
	StrokeWidth float64
	FontSize    float64
	LabelColor  Color
}

// DefaultCompositorOptions returns the standard glass styling.
func DefaultCompositorOptions() CompositorOptions {
	return CompositorOptions{
		BlendOpacity:  0.8,
		ShadowColor:   Color{0, 0, 0, 0.25},
		ShadowBlur:    15,
		ShadowOffsetY: 8,
		FillFactor:    0.3,
		StrokeWidth:   0.5,
		FontSize:      16,
		LabelColor:    Color{0, 0, 0, 0.7},
	}
}

// Compositor draws the glass button onto the overlay surface.
type Compositor struct {
	Label string

	opts         CompositorOptions
	face         font.Face
	fillShadow   shadowCache
	strokeShadow shadowCache
	blended      PixelBuffer
}

// NewCompositor creates a compositor that draws label with the given styling.
func NewCompositor(label string, opts CompositorOptions) (*Compositor, error) {
	face, err := newBoldFace(opts.FontSize)
	if err != nil {
		return nil, err
	}
	return &Compositor{Label: label, opts: opts, face: face}, nil
}

// Options returns the compositor styling.
func (c *Compositor) Options() CompositorOptions {
	return c.opts
}

// Render redraws the overlay: the raw background crop and the refracted crop
// clipped to the rounded button, then the shadow, frame fill, border and
// label unclipped on top. base and refracted must both have the size of
// WindowRect(center, g).
func (c *Compositor) Render(overlay *Surface, base, refracted PixelBuffer, center Vec2, g Geometry, p Params) {
	if overlay == nil {
		panic("frost: Compositor.Render called with nil overlay")
	}
	dc := overlay.Context()
	overlay.Clear()

	win := WindowRect(center.X, center.Y, g.Width, g.Height)
	b := g.Bounds(center)

	dc.Push()
	dc.DrawRoundedRectangle(b.X, b.Y, b.Width, b.Height, g.Radius)
	dc.Clip()
	if !base.Empty() {
		dc.DrawImage(base.RGBA(), win.Min.X, win.Min.Y)
	}
	if !refracted.Empty() {
		dc.DrawImage(c.fade(refracted).RGBA(), win.Min.X, win.Min.Y)
	}
	dc.ResetClip()
	dc.Pop()

	fillAlpha := clamp01(p.GlassOpacity * c.opts.FillFactor)
	strokeAlpha := clamp01(p.GlassOpacity)

	c.drawShadow(dc, &c.fillShadow, b, g.Radius, fillAlpha, 0)
	dc.DrawRoundedRectangle(b.X, b.Y, b.Width, b.Height, g.Radius)
	dc.SetColor(ColorWhite.WithAlpha(fillAlpha).NRGBA())
	dc.Fill()

	c.drawShadow(dc, &c.strokeShadow, b, g.Radius, strokeAlpha, c.opts.StrokeWidth)
	dc.DrawRoundedRectangle(b.X, b.Y, b.Width, b.Height, g.Radius)
	dc.SetColor(ColorWhite.WithAlpha(strokeAlpha).NRGBA())
	dc.SetLineWidth(c.opts.StrokeWidth)
	dc.Stroke()

	if c.Label != "" {
		dc.SetFontFace(c.face)
		dc.SetColor(c.opts.LabelColor.NRGBA())
		dc.DrawStringAnchored(c.Label, center.X, center.Y, 0.5, 0.5)
	}
}

// drawShadow stamps the offset, blurred silhouette of the button (its outline
// when stroke > 0) under a shape drawn at shapeAlpha.
func (c *Compositor) drawShadow(dc *gg.Context, cache *shadowCache, b Rect, radius, shapeAlpha, stroke float64) {
	a := c.opts.ShadowColor.A * shapeAlpha
	if a <= 0 || b.Width <= 0 || b.Height <= 0 {
		return
	}
	mask, pad := cache.silhouette(b.Width, b.Height, radius, c.opts.ShadowBlur, stroke)
	sx := int(math.Round(b.X)) - pad
	sy := int(math.Round(b.Y+c.opts.ShadowOffsetY)) - pad
	dc.DrawImage(cache.tinted(mask, a).RGBA(), sx, sy)
}

// fade returns refracted scaled to the blend opacity, reusing an internal
// buffer between calls.
func (c *Compositor) fade(refracted PixelBuffer) PixelBuffer {
	if c.blended.Width != refracted.Width || c.blended.Height != refracted.Height {
		c.blended = NewPixelBuffer(refracted.Width, refracted.Height)
	}
	refracted.scaleInto(c.blended, c.opts.BlendOpacity)
	return c.blended
}

