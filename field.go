package frost

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// DefaultObjectCount is the number of scene objects in a freshly generated field.
const DefaultObjectCount = 25

// objectAlpha is the opacity every scene object is painted with.
const objectAlpha = 0.7

// fieldPalette holds the colors scene objects are drawn from.
var fieldPalette = [...]string{
	"#ff6b6b", "#4ecdc4", "#45b7d1", "#96ceb4", "#feca57", "#ff9ff3", "#a8e6cf",
}

// gradientStops are the background gradient colors at offsets 0, .25, .5, .75, 1.
var gradientStops = [...]string{
	"#667eea", "#764ba2", "#f093fb", "#f5576c", "#4ecdc4",
}

// SceneObject is one animated shape of the background field.
type SceneObject struct {
	X, Y float64
	// Size is the shape's nominal extent in pixels.
	Size  float64
	Color color.NRGBA
	Kind  ShapeKind
	// Rotation is in radians; RotationSpeed is added once per tick.
	Rotation      float64
	RotationSpeed float64
	// VX and VY are the per-tick displacement.
	VX, VY float64
}

// Advance integrates position and rotation by one tick and wraps the object
// to the opposite edge once it has fully left a w x h surface.
func (o *SceneObject) Advance(w, h float64) {
	o.X += o.VX
	o.Y += o.VY
	o.Rotation += o.RotationSpeed

	if o.X < -o.Size {
		o.X = w + o.Size
	}
	if o.X > w+o.Size {
		o.X = -o.Size
	}
	if o.Y < -o.Size {
		o.Y = h + o.Size
	}
	if o.Y > h+o.Size {
		o.Y = -o.Size
	}
}

// NewSceneObjects draws n objects uniformly over a w x h surface.
func NewSceneObjects(rng *rand.Rand, n int, w, h float64) []SceneObject {
	objs := make([]SceneObject, n)
	for i := range objs {
		objs[i] = SceneObject{
			X:             rng.Float64() * w,
			Y:             rng.Float64() * h,
			Size:          rng.Float64()*100 + 50,
			Color:         ColorFromHex(fieldPalette[rng.IntN(len(fieldPalette))]).NRGBA(),
			Kind:          ShapeKind(rng.IntN(int(shapeKindCount))),
			Rotation:      rng.Float64() * math.Pi * 2,
			RotationSpeed: (rng.Float64() - 0.5) * 0.02,
			VX:            (rng.Float64() - 0.5) * 0.5,
			VY:            (rng.Float64() - 0.5) * 0.5,
		}
	}
	return objs
}

// Field is the procedural background: an animated gradient with a batch of
// drifting shapes on top.
type Field struct {
	Objects []SceneObject
	// Decorations enables a static 50px grid and large caption text drawn
	// between the gradient and the shapes.
	Decorations bool

	count int
	face  font.Face
}

// NewField creates a field with n objects sized for a w x h surface.
func NewField(rng *rand.Rand, n int, w, h float64) *Field {
	return &Field{
		Objects: NewSceneObjects(rng, n, w, h),
		count:   n,
	}
}

// Reset discards every object and generates a new batch for a w x h surface.
func (f *Field) Reset(rng *rand.Rand, w, h float64) {
	f.Objects = NewSceneObjects(rng, f.count, w, h)
}

// Render repaints the whole surface for time t (milliseconds), advancing every
// object by one tick. Output depends only on t and the object list.
func (f *Field) Render(s *Surface, t float64) {
	w, h := float64(s.Width()), float64(s.Height())
	dc := s.Context()
	s.Clear()

	grad := gg.NewLinearGradient(
		math.Sin(t*0.001)*200, math.Cos(t*0.001)*200,
		w+math.Sin(t*0.0015)*200, h+math.Cos(t*0.0015)*200,
	)
	for i, hex := range gradientStops {
		grad.AddColorStop(float64(i)/float64(len(gradientStops)-1), ColorFromHex(hex).NRGBA())
	}
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	if f.Decorations {
		f.paintDecorations(dc, w, h)
	}

	for i := range f.Objects {
		o := &f.Objects[i]
		o.Advance(w, h)
		paintObject(dc, o)
	}
}

func paintObject(dc *gg.Context, o *SceneObject) {
	dc.Push()
	dc.Translate(o.X, o.Y)
	dc.Rotate(o.Rotation)
	dc.SetRGBA(float64(o.Color.R)/255, float64(o.Color.G)/255, float64(o.Color.B)/255, objectAlpha)

	s := o.Size
	switch o.Kind {
	case ShapeCircle:
		dc.DrawCircle(0, 0, s/2)
	case ShapeRect:
		dc.DrawRectangle(-s/2, -s/2, s, s*0.6)
	case ShapeTriangle:
		dc.MoveTo(0, -s/2)
		dc.LineTo(-s/2, s/2)
		dc.LineTo(s/2, s/2)
		dc.ClosePath()
	}
	dc.Fill()
	dc.Pop()
}

func (f *Field) paintDecorations(dc *gg.Context, w, h float64) {
	dc.SetRGBA(1, 1, 1, 0.05)
	dc.SetLineWidth(1)
	for x := 0.0; x < w; x += 50 {
		dc.MoveTo(x, 0)
		dc.LineTo(x, h)
	}
	for y := 0.0; y < h; y += 50 {
		dc.MoveTo(0, y)
		dc.LineTo(w, y)
	}
	dc.Stroke()

	if f.face == nil {
		face, err := newBoldFace(120)
		if err != nil {
			Logger().Warn("field decorations disabled", "err", err)
			f.Decorations = false
			return
		}
		f.face = face
	}
	dc.SetFontFace(f.face)
	dc.SetRGBA(1, 1, 1, 0.1)
	dc.DrawString("APPLE", 100, 200)
	dc.DrawString("GLASS", 300, 400)
	dc.DrawString("DESIGN", 50, 600)
}
