package frost

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const tickMS = 1000.0 / 60

func TestMotionSmoothConvergence(t *testing.T) {
	m := NewMotion(0, 0)
	m.PointerDown(100, 0) // held: no idle drift

	prev := m.Target.Sub(m.Pos).Len()
	for i := 1; i <= 45; i++ {
		m.Update(float64(i) * tickMS)
		d := m.Target.Sub(m.Pos).Len()
		if d >= prev {
			t.Fatalf("tick %d: distance %v did not decrease from %v", i, d, prev)
		}
		if m.Pos.X > 100 {
			t.Fatalf("tick %d: overshoot Pos.X = %v", i, m.Pos.X)
		}
		prev = d
	}
	if prev >= 1 {
		t.Errorf("distance after 45 ticks = %v, want < 1", prev)
	}
}

func TestMotionSmoothingStep(t *testing.T) {
	m := NewMotion(0, 0)
	m.PointerDown(100, 50)
	m.Update(0)
	if m.Pos.X != 10 || m.Pos.Y != 5 {
		t.Errorf("Pos = %v, want (10, 5)", m.Pos)
	}
}

func TestMotionIdleDrift(t *testing.T) {
	m := NewMotion(100, 100)
	m.Pointer = Vec2{100, 100}
	m.Update(1000)

	if m.Pos != (Vec2{100, 100}) {
		t.Errorf("Pos = %v, want unchanged (position updates before drift)", m.Pos)
	}
	wantX := 100 + math.Sin(1)*0.5
	wantY := 100 + math.Cos(0.7)*0.3
	if math.Abs(m.Target.X-wantX) > 1e-12 || math.Abs(m.Target.Y-wantY) > 1e-12 {
		t.Errorf("Target = %v, want (%v, %v)", m.Target, wantX, wantY)
	}
}

func TestMotionNoDriftWhenHeld(t *testing.T) {
	m := NewMotion(100, 100)
	m.PointerMove(100, 100)
	m.PointerDown(100, 100)
	m.Update(1000)
	if m.Target != (Vec2{100, 100}) {
		t.Errorf("Target = %v, want (100, 100)", m.Target)
	}
}

func TestMotionNoDriftWhenPointerAway(t *testing.T) {
	m := NewMotion(100, 100)
	// Pointer starts at the origin, far from the target.
	m.Update(1000)
	if m.Target != (Vec2{100, 100}) {
		t.Errorf("Target = %v, want (100, 100)", m.Target)
	}
}

func TestMotionDriftThreshold(t *testing.T) {
	tests := []struct {
		px, py float64
		drift  bool
	}{
		{104.9, 104.9, true},
		{95.1, 100, true},
		{105, 100, false},
		{100, 94, false},
	}
	for _, tt := range tests {
		m := NewMotion(100, 100)
		m.Pointer = Vec2{tt.px, tt.py}
		m.Update(1000)
		moved := m.Target != (Vec2{100, 100})
		if moved != tt.drift {
			t.Errorf("pointer (%v, %v): drift = %v, want %v", tt.px, tt.py, moved, tt.drift)
		}
	}
}

func TestMotionPointerSemantics(t *testing.T) {
	m := NewMotion(0, 0)

	m.PointerMove(50, 60)
	if m.Target != (Vec2{50, 60}) || m.Pointer != (Vec2{50, 60}) {
		t.Fatalf("after move: Target %v Pointer %v", m.Target, m.Pointer)
	}

	m.PointerDown(70, 80)
	if !m.Held || m.Target != (Vec2{70, 80}) {
		t.Fatalf("after down: Held %v Target %v", m.Held, m.Target)
	}

	m.PointerMove(200, 200)
	if m.Target != (Vec2{70, 80}) {
		t.Errorf("move while held changed Target to %v", m.Target)
	}
	if m.Pointer != (Vec2{200, 200}) {
		t.Errorf("move while held: Pointer = %v, want (200, 200)", m.Pointer)
	}

	m.PointerUp()
	if m.Held {
		t.Error("Held after up = true")
	}
	if m.Target != (Vec2{70, 80}) {
		t.Errorf("up changed Target to %v", m.Target)
	}

	m.PointerMove(10, 20)
	if m.Target != (Vec2{10, 20}) {
		t.Errorf("move after up: Target = %v, want (10, 20)", m.Target)
	}
}

func TestMotionApply(t *testing.T) {
	m := NewMotion(0, 0)
	m.Apply(PointerEvent{Type: EventPointerMove, X: 5, Y: 6})
	m.Apply(PointerEvent{Type: EventPointerDown, X: 7, Y: 8})
	if !m.Held || m.Target != (Vec2{7, 8}) || m.Pointer != (Vec2{5, 6}) {
		t.Fatalf("Held %v Target %v Pointer %v", m.Held, m.Target, m.Pointer)
	}
	m.Apply(PointerEvent{Type: EventPointerUp})
	if m.Held {
		t.Error("Held after EventPointerUp")
	}
}

func TestMotionSpringConverges(t *testing.T) {
	m := NewMotion(0, 0)
	m.SetMode(MotionSpring)
	m.PointerDown(100, 40)
	for i := 0; i < 600; i++ {
		m.Update(float64(i) * tickMS)
	}
	if d := m.Target.Sub(m.Pos).Len(); d > 0.5 {
		t.Errorf("distance after 600 spring ticks = %v, want <= 0.5", d)
	}
}

func TestMotionSpringDiffersFromSmooth(t *testing.T) {
	a := NewMotion(0, 0)
	b := NewMotion(0, 0)
	b.SetMode(MotionSpring)
	a.PointerDown(100, 0)
	b.PointerDown(100, 0)
	for i := 0; i < 5; i++ {
		a.Update(float64(i) * tickMS)
		b.Update(float64(i) * tickMS)
	}
	if a.Pos == b.Pos {
		t.Errorf("spring and smooth positions equal: %v", a.Pos)
	}
}

func TestMotionRecenter(t *testing.T) {
	m := NewMotion(0, 0)
	m.Recenter(100, 50, 0.5, ease.Linear)
	if !m.Recentering() {
		t.Fatal("Recentering() = false after Recenter")
	}

	finished := false
	for i := 0; i < 100; i++ {
		m.Update(float64(i) * tickMS)
		if !m.Recentering() {
			finished = true
			break
		}
	}
	if !finished {
		t.Fatal("recenter tween never finished")
	}
	if math.Abs(m.Target.X-100) > 1e-3 || math.Abs(m.Target.Y-50) > 1e-3 {
		t.Errorf("Target = %v, want (100, 50)", m.Target)
	}
}

func TestMotionRecenterCancelledByPointer(t *testing.T) {
	m := NewMotion(0, 0)
	m.Recenter(100, 50, 1, nil)
	m.Update(0)
	m.PointerMove(10, 10)
	if m.Recentering() {
		t.Error("Recentering() = true after pointer move")
	}
	m.Update(tickMS)
	if m.Target.Sub(Vec2{10, 10}).Len() > 1 {
		t.Errorf("Target = %v, want near (10, 10)", m.Target)
	}
}

func TestMotionRecenterImmediate(t *testing.T) {
	m := NewMotion(0, 0)
	m.Recenter(30, 40, 0, ease.Linear)
	if m.Recentering() {
		t.Error("zero-duration recenter left a tween running")
	}
	if m.Target != (Vec2{30, 40}) {
		t.Errorf("Target = %v, want (30, 40)", m.Target)
	}
}

func TestParseMotionMode(t *testing.T) {
	tests := []struct {
		in      string
		want    MotionMode
		wantErr bool
	}{
		{"smooth", MotionSmooth, false},
		{"", MotionSmooth, false},
		{"spring", MotionSpring, false},
		{"bouncy", MotionSmooth, true},
	}
	for _, tt := range tests {
		got, err := ParseMotionMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseMotionMode(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestEaseByNameFallback(t *testing.T) {
	if EaseByName("nope") == nil {
		t.Error("EaseByName(unknown) = nil")
	}
	if EaseByName("linear") == nil {
		t.Error("EaseByName(linear) = nil")
	}
}
