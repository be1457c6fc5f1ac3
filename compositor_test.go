package frost

import (
	"image/color"
	"testing"
)

// compositeFixture returns a 300x200 patterned background, the crop under a
// 120x80 button centered at (150, 100), and its geometry.
func compositeFixture(t *testing.T) (*Surface, PixelBuffer, Vec2, Geometry) {
	t.Helper()
	bg, err := NewSurface(300, 200)
	if err != nil {
		t.Fatal(err)
	}
	bg.Blit(patternBuffer(300, 200), 0, 0)
	g := GeometryFor(120, 1.5, 10)
	c := Vec2{150, 100}
	crop := bg.Capture(WindowRect(c.X, c.Y, g.Width, g.Height))
	return bg, crop, c, g
}

func newTestCompositor(t *testing.T, label string) *Compositor {
	t.Helper()
	c, err := NewCompositor(label, DefaultCompositorOptions())
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func near(a, b color.RGBA, tol int) bool {
	d := func(x, y uint8) bool {
		v := int(x) - int(y)
		return v >= -tol && v <= tol
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestCompositorNilOverlayPanics(t *testing.T) {
	c := newTestCompositor(t, "")
	defer func() {
		if recover() == nil {
			t.Error("Render(nil) did not panic")
		}
	}()
	c.Render(nil, PixelBuffer{}, PixelBuffer{}, Vec2{}, Geometry{10, 10, 0}, DefaultParams())
}

func TestCompositorOutsideTransparent(t *testing.T) {
	_, crop, center, g := compositeFixture(t)
	ov, _ := NewSurface(300, 200)
	ov.Fill(ColorWhite)
	c := newTestCompositor(t, DefaultLabel)

	p := DefaultParams()
	p.GlassOpacity = 1
	c.Render(ov, crop, Refract(crop, p.RefractionStrength), center, g, p)

	for _, pt := range [][2]int{{0, 0}, {299, 0}, {0, 199}, {299, 199}, {20, 100}} {
		if got := ov.At(pt[0], pt[1]); got != (color.RGBA{}) {
			t.Errorf("At%v = %v, want transparent", pt, got)
		}
	}
}

func TestCompositorInteriorShowsBackground(t *testing.T) {
	_, crop, center, g := compositeFixture(t)
	ov, _ := NewSurface(300, 200)
	c := newTestCompositor(t, "")

	p := DefaultParams()
	p.GlassOpacity = 0
	c.Render(ov, crop, PixelBuffer{}, center, g, p)

	// Window origin is (90, 60).
	for _, pt := range [][2]int{{150, 100}, {100, 70}, {200, 130}} {
		got := ov.At(pt[0], pt[1])
		want := crop.At(pt[0]-90, pt[1]-60)
		if !near(got, want, 1) {
			t.Errorf("At%v = %v, want %v", pt, got, want)
		}
	}
	// Rounded corner stays clear.
	if got := ov.At(90, 60); got.A > 64 {
		t.Errorf("corner pixel = %v, want mostly transparent", got)
	}
}

func TestCompositorRefractionVisible(t *testing.T) {
	_, crop, center, g := compositeFixture(t)
	p := DefaultParams()
	p.GlassOpacity = 0

	flat, _ := NewSurface(300, 200)
	bent, _ := NewSurface(300, 200)
	newTestCompositor(t, "").Render(flat, crop, Refract(crop, 0), center, g, p)
	newTestCompositor(t, "").Render(bent, crop, Refract(crop, 3), center, g, p)

	if flat.At(150, 100) != bent.At(150, 100) {
		t.Errorf("center differs: %v vs %v", flat.At(150, 100), bent.At(150, 100))
	}
	differ := false
	for x := 95; x < 205 && !differ; x++ {
		differ = flat.At(x, 65) != bent.At(x, 65)
	}
	if !differ {
		t.Error("no edge pixel changed by refraction")
	}
}

func TestCompositorFrameAndShadow(t *testing.T) {
	_, _, center, g := compositeFixture(t)
	ov, _ := NewSurface(300, 200)
	c := newTestCompositor(t, "")

	p := DefaultParams()
	p.GlassOpacity = 1
	c.Render(ov, PixelBuffer{}, PixelBuffer{}, center, g, p)

	// Fill: white at 0.3 over the shadow.
	if got := ov.At(150, 100); got.R < 74 || got.R > 80 || got.R != got.B || got.A < got.R {
		t.Errorf("fill = %v, want ~white at 0.3", got)
	}
	// Button bottom is y = 140; the shadow is offset 8px down.
	if got := ov.At(150, 145); got.A == 0 || got.R != 0 {
		t.Errorf("below button = %v, want dark translucent shadow", got)
	}
	if got := ov.At(150, 40); got.A != 0 {
		t.Errorf("above button = %v, want no shadow", got)
	}

	p.GlassOpacity = 0
	c.Render(ov, PixelBuffer{}, PixelBuffer{}, center, g, p)
	if got := ov.At(150, 145); got.A != 0 {
		t.Errorf("shadow with opacity 0 = %v, want transparent", got)
	}
}

func TestCompositorBorderShadow(t *testing.T) {
	_, _, center, g := compositeFixture(t)
	opts := DefaultCompositorOptions()
	opts.FillFactor = 0
	opts.StrokeWidth = 8
	c, err := NewCompositor("", opts)
	if err != nil {
		t.Fatal(err)
	}
	ov, _ := NewSurface(300, 200)

	p := DefaultParams()
	p.GlassOpacity = 1
	c.Render(ov, PixelBuffer{}, PixelBuffer{}, center, g, p)

	// No fill, so anything below the border at y = 140 +/- 4 is its shadow.
	if got := ov.At(150, 150); got.A == 0 || got.R != 0 {
		t.Errorf("below border = %v, want dark translucent shadow", got)
	}

	p.GlassOpacity = 0
	c.Render(ov, PixelBuffer{}, PixelBuffer{}, center, g, p)
	if got := ov.At(150, 150); got.A != 0 {
		t.Errorf("border shadow with opacity 0 = %v, want transparent", got)
	}
}

func TestCompositorLabel(t *testing.T) {
	_, _, center, g := compositeFixture(t)
	p := DefaultParams()
	p.GlassOpacity = 0

	plain, _ := NewSurface(300, 200)
	labeled, _ := NewSurface(300, 200)
	newTestCompositor(t, "").Render(plain, PixelBuffer{}, PixelBuffer{}, center, g, p)
	newTestCompositor(t, DefaultLabel).Render(labeled, PixelBuffer{}, PixelBuffer{}, center, g, p)

	inked := 0
	for y := 85; y < 115; y++ {
		for x := 100; x < 200; x++ {
			if labeled.At(x, y) != plain.At(x, y) {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("label drew nothing")
	}
}

func TestCompositorRenderRepeatable(t *testing.T) {
	_, crop, center, g := compositeFixture(t)
	ov, _ := NewSurface(300, 200)
	c := newTestCompositor(t, DefaultLabel)
	refracted := Refract(crop, 1.5)

	c.Render(ov, crop, refracted, center, g, DefaultParams())
	first := ov.Capture(ov.Bounds())
	c.Render(ov, crop, refracted, center, g, DefaultParams())
	if !ov.Capture(ov.Bounds()).Equal(first) {
		t.Error("second render differs from the first")
	}
}

func TestCompositorScenario800x600(t *testing.T) {
	bg, _ := NewSurface(800, 600)
	bg.Blit(randomBuffer(800, 600, 11), 0, 0)
	g := GeometryFor(220, 1.5, 25)
	center := Vec2{400, 300}
	win := WindowRect(center.X, center.Y, g.Width, g.Height)
	if win.Dx() != 220 || win.Dy() != 146 {
		t.Fatalf("window = %v, want 220x146", win)
	}
	crop := bg.Capture(win)
	c := newTestCompositor(t, DefaultLabel)
	p := DefaultParams()

	render := func(refracted PixelBuffer) PixelBuffer {
		ov, _ := NewSurface(800, 600)
		c.Render(ov, crop, refracted, center, g, p)
		return ov.Capture(ov.Bounds())
	}
	plain := render(crop.Clone())
	if !render(Refract(crop, 0)).Equal(plain) {
		t.Error("strength 0 differs from the unrefracted crop")
	}

	low := render(Refract(crop, 0.5))
	edge := false
	for y := win.Min.Y; y < win.Max.Y; y++ {
		for x := win.Min.X; x < win.Max.X; x++ {
			same := low.At(x, y) == plain.At(x, y)
			dx := float64(x - win.Min.X - win.Dx()/2)
			dy := float64(y - win.Min.Y - win.Dy()/2)
			if !same && dx*dx+dy*dy < 20*20 {
				t.Fatalf("pixel (%d,%d) near the center changed", x, y)
			}
			edge = edge || !same
		}
	}
	if !edge {
		t.Error("no pixel near the edges changed at strength 0.5")
	}
}
