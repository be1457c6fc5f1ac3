package frost

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
)

// Params are the live-tunable glass parameters. A Params value is immutable
// once published through a ParamStore.
type Params struct {
	RefractionStrength float64 // unitless lens multiplier
	GlassOpacity       float64 // frame fill and border opacity
	EdgeBlur           float64 // carried for display; no stage reads it
	ButtonSize         float64 // button width in pixels
}

// DefaultParams returns the start-up parameter set.
func DefaultParams() Params {
	return Params{
		RefractionStrength: 1.5,
		GlassOpacity:       0.3,
		EdgeBlur:           8,
		ButtonSize:         220,
	}
}

// Parameter names accepted by Set, Adjust and Apply.
const (
	ParamStrength = "strength"
	ParamOpacity  = "opacity"
	ParamEdgeBlur = "edge_blur"
	ParamSize     = "size"
)

// paramRange is the closed interval a parameter is clamped to.
type paramRange struct{ lo, hi float64 }

var paramRanges = map[string]paramRange{
	ParamStrength: {0, 5},
	ParamOpacity:  {0, 1},
	ParamEdgeBlur: {0, 20},
	ParamSize:     {40, 600},
}

// ParamNames lists the accepted parameter names in display order.
func ParamNames() []string {
	return []string{ParamStrength, ParamOpacity, ParamEdgeBlur, ParamSize}
}

// Clamped returns p with every field clamped to its range.
func (p Params) Clamped() Params {
	for _, name := range ParamNames() {
		p, _ = p.with(name, p.get(name))
	}
	return p
}

func (p Params) get(name string) float64 {
	switch name {
	case ParamStrength:
		return p.RefractionStrength
	case ParamOpacity:
		return p.GlassOpacity
	case ParamEdgeBlur:
		return p.EdgeBlur
	case ParamSize:
		return p.ButtonSize
	}
	return 0
}

// with returns p with the named field set to v clamped to its range.
func (p Params) with(name string, v float64) (Params, error) {
	r, ok := paramRanges[name]
	if !ok {
		return p, fmt.Errorf("unknown parameter %q", name)
	}
	v = clamp(v, r.lo, r.hi)
	switch name {
	case ParamStrength:
		p.RefractionStrength = v
	case ParamOpacity:
		p.GlassOpacity = v
	case ParamEdgeBlur:
		p.EdgeBlur = v
	case ParamSize:
		p.ButtonSize = v
	}
	return p, nil
}

// ParamStore publishes Params snapshots. Writers may run on any goroutine;
// readers take one snapshot per tick and never observe a torn update.
type ParamStore struct {
	cur atomic.Pointer[Params]
}

// NewParamStore creates a store holding p, clamped.
func NewParamStore(p Params) *ParamStore {
	s := &ParamStore{}
	p = p.Clamped()
	s.cur.Store(&p)
	return s
}

// Snapshot returns the current parameters.
func (s *ParamStore) Snapshot() Params {
	return *s.cur.Load()
}

// Replace publishes p, clamped, as a whole.
func (s *ParamStore) Replace(p Params) {
	p = p.Clamped()
	s.cur.Store(&p)
}

// update applies fn in a compare-and-swap loop.
func (s *ParamStore) update(fn func(Params) (Params, error)) (Params, error) {
	for {
		old := s.cur.Load()
		next, err := fn(*old)
		if err != nil {
			return *old, err
		}
		if s.cur.CompareAndSwap(old, &next) {
			return next, nil
		}
	}
}

// Set assigns the named parameter, clamped to its range.
func (s *ParamStore) Set(name string, v float64) (Params, error) {
	return s.update(func(p Params) (Params, error) {
		return p.with(name, v)
	})
}

// Adjust adds delta to the named parameter, clamped to its range.
func (s *ParamStore) Adjust(name string, delta float64) (Params, error) {
	return s.update(func(p Params) (Params, error) {
		return p.with(name, p.get(name)+delta)
	})
}

// Apply parses raw as a number and assigns it to the named parameter. Input
// that is not a finite number is rejected and the store is left unchanged.
func (s *ParamStore) Apply(name, raw string) (Params, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return s.Snapshot(), fmt.Errorf("parameter %s: %w", name, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return s.Snapshot(), fmt.Errorf("parameter %s: %q is not finite", name, raw)
	}
	return s.Set(name, v)
}
