package frost

import (
	"math"
	"testing"
)

func TestGeometryFor(t *testing.T) {
	tests := []struct {
		size, aspect, radius float64
		want                 Geometry
	}{
		{220, 1.5, 25, Geometry{220, 220 / 1.5, 25}},
		{300, 2, 10, Geometry{300, 150, 10}},
		{220, 0, 25, Geometry{220, 220 / 1.5, 25}},
		{220, -1, 25, Geometry{220, 220 / 1.5, 25}},
		{40, 1.5, 25, Geometry{40, 40 / 1.5, 40 / 1.5 / 2}},
		{100, 1, -5, Geometry{100, 100, 0}},
	}
	for _, tt := range tests {
		got := GeometryFor(tt.size, tt.aspect, tt.radius)
		if math.Abs(got.Width-tt.want.Width) > 1e-9 ||
			math.Abs(got.Height-tt.want.Height) > 1e-9 ||
			math.Abs(got.Radius-tt.want.Radius) > 1e-9 {
			t.Errorf("GeometryFor(%v, %v, %v) = %+v, want %+v", tt.size, tt.aspect, tt.radius, got, tt.want)
		}
	}
}

func TestGeometryBounds(t *testing.T) {
	g := Geometry{Width: 120, Height: 80, Radius: 10}
	got := g.Bounds(Vec2{150, 100})
	want := Rect{X: 90, Y: 60, Width: 120, Height: 80}
	if got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
	if c := got.Center(); c != (Vec2{150, 100}) {
		t.Errorf("Center = %v, want (150, 100)", c)
	}
}
