package frost

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Ticks  int     `json:"ticks,omitempty"`
	Param  string  `json:"param,omitempty"`
	Value  float64 `json:"value,omitempty"`
}

// script is the top-level JSON structure of an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"move": true, "press": true, "release": true, "click": true,
	"drag": true, "wait": true, "screenshot": true, "set": true,
}

// ScriptRunner sequences injected pointer events, parameter changes and
// screenshots across ticks. Attach to a Driver via SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script of the form
//
//	{"steps": [{"action": "click", "x": 400, "y": 300}, ...]}
//
// Actions are move, press, release, click, drag, wait, screenshot and set.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "set" {
			if _, ok := paramRanges[st.Param]; !ok {
				return nil, fmt.Errorf("parse script: step %d: unknown parameter %q", i, st.Param)
			}
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScript attaches a runner to the driver. The runner advances at the start
// of every tick, before input is applied. Pass nil to detach.
func (d *Driver) SetScript(r *ScriptRunner) {
	d.runner = r
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick.
func (r *ScriptRunner) step(d *Driver) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(d.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		d.InjectMove(st.X, st.Y)
	case "press":
		d.InjectPress(st.X, st.Y)
	case "release":
		d.InjectRelease(st.X, st.Y)
	case "click":
		d.InjectClick(st.X, st.Y)
	case "drag":
		d.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Ticks)
	case "wait":
		if st.Ticks > 0 {
			r.waitCount = st.Ticks - 1 // this tick counts as one
		}
	case "screenshot":
		d.Screenshot(st.Label)
	case "set":
		if _, err := d.store.Set(st.Param, st.Value); err != nil {
			Logger().Warn("script set failed", "param", st.Param, "err", err)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(d.injectQueue) == 0 {
		r.done = true
	}
}
