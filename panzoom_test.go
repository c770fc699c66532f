package panzoom

import (
	"math"
	"testing"
	"time"
)

const epsilon = 1e-9

// frameStep is one 60 Hz frame.
const frameStep = time.Second / 60

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func vecNear(a, b Vec2, eps float64) bool {
	return approxEqual(a.X, b.X, eps) && approxEqual(a.Y, b.Y, eps)
}

// newTestController returns a controller on its own ticker with an 800x600
// viewport and the given config (nil for defaults).
func newTestController(zoom float64, pan Vec2, cfg *Config) (*Controller, *Ticker) {
	ticker := NewTicker()
	c := New(Options{
		Zoom:      zoom,
		Pan:       pan,
		Config:    cfg,
		Scheduler: ticker,
		Viewport:  Size{Width: 800, Height: 600},
	})
	return c, ticker
}

// settle advances the ticker until the controller stops animating and
// returns the number of frames run. It fails the test after limit frames.
func settle(t testing.TB, c *Controller, ticker *Ticker, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		ticker.Advance(frameStep)
		if !c.IsAnimating() {
			return i
		}
	}
	t.Fatalf("controller still animating after %d frames: zoom %v pan %v", limit, c.ZoomState(), c.PanState())
	return limit
}

func TestVec2Ops(t *testing.T) {
	a := Vec2{3, 4}
	if a.Len() != 5 {
		t.Errorf("Len = %v, want 5", a.Len())
	}
	if got := a.Add(Vec2{1, 1}); got != (Vec2{4, 5}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(Vec2{1, 1}); got != (Vec2{2, 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale = %v", got)
	}
}

func TestSizeSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   Size
		want Size
	}{
		{"valid", Size{800, 600}, Size{800, 600}},
		{"zero height", Size{800, 0}, Size{800, 1}},
		{"negative", Size{-5, -5}, Size{1, 1}},
		{"nan", Size{math.NaN(), 600}, Size{1, 600}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.sanitize(); got != tt.want {
				t.Errorf("sanitize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRectContainsIntersects(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if !r.Contains(10, 20) || !r.Contains(110, 70) {
		t.Error("edges should be inside")
	}
	if r.Contains(5, 40) {
		t.Error("point left of rect reported inside")
	}
	if !r.Intersects(Rect{X: 110, Y: 70, Width: 5, Height: 5}) {
		t.Error("touching rects should intersect")
	}
	if r.Intersects(Rect{X: 200, Y: 200, Width: 5, Height: 5}) {
		t.Error("disjoint rects reported intersecting")
	}
}

func TestRound3(t *testing.T) {
	if got := round3(1.23456); got != 1.235 {
		t.Errorf("round3(1.23456) = %v, want 1.235", got)
	}
	if got := round3(-0.0004); got != 0 {
		t.Errorf("round3(-0.0004) = %v, want 0", got)
	}
}
