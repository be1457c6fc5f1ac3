package frost

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultSmoothing is the fraction of the remaining distance covered per tick
// in smooth mode.
const DefaultSmoothing = 0.1

// driftEpsilon is how close, on both axes, the pointer must be to the target
// for idle drift to kick in.
const driftEpsilon = 5.0

// MotionMode selects how the button position chases its target.
type MotionMode uint8

const (
	MotionSmooth MotionMode = iota // exponential smoothing, never overshoots
	MotionSpring                   // damped spring per axis
)

// String implements fmt.Stringer.
func (m MotionMode) String() string {
	switch m {
	case MotionSmooth:
		return "smooth"
	case MotionSpring:
		return "spring"
	default:
		return "unknown"
	}
}

// ParseMotionMode maps "smooth" or "spring" to a MotionMode.
func ParseMotionMode(s string) (MotionMode, error) {
	switch s {
	case "", "smooth":
		return MotionSmooth, nil
	case "spring":
		return MotionSpring, nil
	}
	return MotionSmooth, fmt.Errorf("unknown motion mode %q", s)
}

// easings lists the easing curves accepted by Recenter callers by name.
var easings = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"in-quad":     ease.InQuad,
	"out-quad":    ease.OutQuad,
	"in-out-quad": ease.InOutQuad,
	"out-cubic":   ease.OutCubic,
	"in-out-sine": ease.InOutSine,
	"out-back":    ease.OutBack,
	"out-bounce":  ease.OutBounce,
	"out-elastic": ease.OutElastic,
}

// EaseByName returns the named easing curve, or ease.OutCubic when the name
// is unknown.
func EaseByName(name string) ease.TweenFunc {
	if fn, ok := easings[name]; ok {
		return fn
	}
	return ease.OutCubic
}

// SpringParams tunes MotionSpring.
type SpringParams struct {
	Frequency float64 // angular frequency
	Damping   float64 // damping ratio; 1 is critically damped
}

// Motion tracks the button position and the target it chases. Pointer events
// and Update must be called from the same goroutine.
type Motion struct {
	Pos     Vec2
	Target  Vec2
	Pointer Vec2
	Held    bool

	Smoothing float64
	mode      MotionMode
	spring    harmonica.Spring
	vel       Vec2

	recenter [2]*gween.Tween
	lastNow  float64
	hasLast  bool
}

// NewMotion places both position and target at (x, y).
func NewMotion(x, y float64) *Motion {
	m := &Motion{
		Pos:       Vec2{x, y},
		Target:    Vec2{x, y},
		Smoothing: DefaultSmoothing,
	}
	m.SetSpring(SpringParams{Frequency: 6, Damping: 0.5})
	return m
}

// Mode returns the active motion mode.
func (m *Motion) Mode() MotionMode {
	return m.mode
}

// SetMode switches motion modes. Switching resets spring velocity.
func (m *Motion) SetMode(mode MotionMode) {
	m.mode = mode
	m.vel = Vec2{}
}

// SetSpring replaces the spring coefficients. The spring is stepped at 60 TPS.
func (m *Motion) SetSpring(p SpringParams) {
	m.spring = harmonica.NewSpring(harmonica.FPS(60), p.Frequency, p.Damping)
}

// Update advances the motion by one tick at time now (milliseconds).
func (m *Motion) Update(now float64) {
	dt := 0.0
	if m.hasLast {
		dt = (now - m.lastNow) / 1000
	}
	m.lastNow, m.hasLast = now, true

	recentering := m.stepRecenter(dt)

	switch m.mode {
	case MotionSpring:
		m.Pos.X, m.vel.X = m.spring.Update(m.Pos.X, m.vel.X, m.Target.X)
		m.Pos.Y, m.vel.Y = m.spring.Update(m.Pos.Y, m.vel.Y, m.Target.Y)
	default:
		m.Pos.X += (m.Target.X - m.Pos.X) * m.Smoothing
		m.Pos.Y += (m.Target.Y - m.Pos.Y) * m.Smoothing
	}

	if !recentering && m.idle() {
		m.Target.X += math.Sin(now*0.001) * 0.5
		m.Target.Y += math.Cos(now*0.0007) * 0.3
	}
}

// idle reports whether the pointer is released and resting on the target.
func (m *Motion) idle() bool {
	return !m.Held &&
		math.Abs(m.Pointer.X-m.Target.X) < driftEpsilon &&
		math.Abs(m.Pointer.Y-m.Target.Y) < driftEpsilon
}

// PointerMove records the pointer and, unless held, retargets to it.
func (m *Motion) PointerMove(x, y float64) {
	m.cancelRecenter()
	m.Pointer = Vec2{x, y}
	if !m.Held {
		m.Target = Vec2{x, y}
	}
}

// PointerDown holds the target at (x, y) until the next PointerUp.
func (m *Motion) PointerDown(x, y float64) {
	m.cancelRecenter()
	m.Held = true
	m.Target = Vec2{x, y}
}

// PointerUp releases the hold. Tracking resumes on the next move.
func (m *Motion) PointerUp() {
	m.Held = false
}

// Apply routes a pointer event to the matching handler.
func (m *Motion) Apply(ev PointerEvent) {
	switch ev.Type {
	case EventPointerMove:
		m.PointerMove(ev.X, ev.Y)
	case EventPointerDown:
		m.PointerDown(ev.X, ev.Y)
	case EventPointerUp:
		m.PointerUp()
	}
}

// Recenter tweens the target to (x, y) over the given number of seconds.
// The pointer is moved along with it so idle drift resumes afterwards. Any
// pointer move or press cancels the tween.
func (m *Motion) Recenter(x, y float64, seconds float32, fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.OutCubic
	}
	if seconds <= 0 {
		m.Target = Vec2{x, y}
		m.Pointer = m.Target
		m.recenter = [2]*gween.Tween{}
		return
	}
	m.recenter[0] = gween.New(float32(m.Target.X), float32(x), seconds, fn)
	m.recenter[1] = gween.New(float32(m.Target.Y), float32(y), seconds, fn)
	m.Pointer = Vec2{x, y}
}

// Recentering reports whether a Recenter tween is in flight.
func (m *Motion) Recentering() bool {
	return m.recenter[0] != nil
}

func (m *Motion) cancelRecenter() {
	m.recenter = [2]*gween.Tween{}
}

// stepRecenter advances an active recenter tween by dt seconds and writes
// the target. Returns true while the tween was active this tick.
func (m *Motion) stepRecenter(dt float64) bool {
	if m.recenter[0] == nil {
		return false
	}
	x, doneX := m.recenter[0].Update(float32(dt))
	y, doneY := m.recenter[1].Update(float32(dt))
	m.Target = Vec2{float64(x), float64(y)}
	if doneX && doneY {
		m.cancelRecenter()
	}
	return true
}
