package panzoom

import (
	"encoding/json"
	"fmt"
)

// gestureStep represents a single action in a gesture script.
type gestureStep struct {
	Action   string  `json:"action"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Delta    float64 `json:"delta,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	FromDist float64 `json:"fromDist,omitempty"`
	ToDist   float64 `json:"toDist,omitempty"`
	Zoom     float64 `json:"zoom,omitempty"`
	Duration float32 `json:"duration,omitempty"`
	Instant  bool    `json:"instant,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []gestureStep `json:"steps"`
}

var knownActions = map[string]bool{
	"wheel": true, "drag": true, "pinch": true, "zoom": true,
	"pan": true, "fly": true, "reset": true, "wait": true,
}

// GestureRunner replays a scripted sequence of gestures through an
// InputBinder, one step per frame, for demos and automated checks. Attach
// it with InputBinder.SetGestureRunner.
//
// Actions:
//
//	wheel  x, y, delta (notches)           injected wheel at a screen point
//	drag   fromX, fromY, toX, toY, frames  injected pointer drag
//	pinch  x, y, fromDist, toDist, frames  injected two-finger pinch
//	zoom   zoom[, x, y]                    SetZoomLevel, anchored when x or y is set
//	pan    x, y[, instant]                 AnimatedPan or InstantPan to a world offset
//	fly    zoom, x, y, duration            FlyTo
//	reset                                  FlyTo zoom 1, pan 0 over duration (default instant)
//	wait   frames                          idle frames
type GestureRunner struct {
	steps     []gestureStep
	cursor    int
	waitCount int
	done      bool
}

// LoadGestureScript parses a JSON gesture script and returns a runner ready
// to be attached to an InputBinder.
func LoadGestureScript(jsonData []byte) (*GestureRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &GestureRunner{steps: script.Steps}, nil
}

// SetGestureRunner attaches a runner. Its step method is called from Update
// before input is read each frame. Pass nil to detach.
func (b *InputBinder) SetGestureRunner(r *GestureRunner) {
	b.runner = r
}

// Done reports whether all steps have been executed.
func (r *GestureRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *GestureRunner) step(b *InputBinder) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(b.injectQueue) > 0 {
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
	ctrl := b.view.ctrl
	size := b.view.size()

	switch st.Action {
	case "wheel":
		b.InjectWheel(st.X, st.Y, st.Delta)
	case "drag":
		b.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "pinch":
		b.InjectPinch(st.X, st.Y, st.FromDist, st.ToDist, max(st.Frames, 3))
	case "zoom":
		if st.X != 0 || st.Y != 0 {
			ctrl.SetZoomLevel(st.Zoom, AtPoint(b.view.Local(st.X, st.Y), size))
		} else {
			ctrl.SetZoomLevel(st.Zoom)
		}
	case "pan":
		if st.Instant {
			ctrl.InstantPan(Vec2{X: st.X, Y: st.Y})
		} else {
			ctrl.AnimatedPan(Vec2{X: st.X, Y: st.Y})
		}
	case "fly":
		ctrl.FlyTo(st.Zoom, Vec2{X: st.X, Y: st.Y}, st.Duration, nil)
	case "reset":
		ctrl.FlyTo(1, Vec2{}, st.Duration, nil)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(b.injectQueue) == 0 {
		r.done = true
	}
}
