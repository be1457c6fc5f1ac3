package frost

// DefaultAspect is the button's width-to-height ratio.
const DefaultAspect = 1.5

// DefaultCornerRadius is the button's corner radius in pixels.
const DefaultCornerRadius = 25

// Geometry is the button's size and corner radius. It is read-only to the
// frame pipeline.
type Geometry struct {
	Width, Height float64
	Radius        float64
}

// GeometryFor derives a size x size/aspect button. A non-positive aspect
// falls back to DefaultAspect and the radius is capped at half the shorter
// side.
func GeometryFor(size, aspect, radius float64) Geometry {
	if aspect <= 0 {
		aspect = DefaultAspect
	}
	h := size / aspect
	radius = clamp(radius, 0, min(size, h)/2)
	return Geometry{Width: size, Height: h, Radius: radius}
}

// Bounds returns the button rectangle centered at c.
func (g Geometry) Bounds(c Vec2) Rect {
	return Rect{X: c.X - g.Width/2, Y: c.Y - g.Height/2, Width: g.Width, Height: g.Height}
}
