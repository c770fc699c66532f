package panzoom

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameID identifies a pending frame request. The zero value is never
// returned by a scheduler.
type FrameID uint64

// FrameFunc is a per-frame callback. now is the scheduler's monotonic clock.
type FrameFunc func(now time.Duration)

// FrameScheduler schedules one-shot callbacks for the next frame, like a
// browser's requestAnimationFrame. Callbacks requested while a frame is
// running are deferred to the following frame.
type FrameScheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

type pendingFrame struct {
	id FrameID
	fn FrameFunc
}

// Ticker is a FrameScheduler driven explicitly by its owner. Call Update
// once per ebiten.Game.Update, or Advance with an explicit step in tests and
// headless tools. A Ticker is not safe for concurrent use.
type Ticker struct {
	now     time.Duration
	nextID  FrameID
	pending []pendingFrame
	running []pendingFrame
}

// NewTicker creates a Ticker with its clock at zero.
func NewTicker() *Ticker {
	return &Ticker{}
}

// RequestFrame queues fn to run on the next Advance or Update.
func (t *Ticker) RequestFrame(fn FrameFunc) FrameID {
	t.nextID++
	t.pending = append(t.pending, pendingFrame{id: t.nextID, fn: fn})
	return t.nextID
}

// CancelFrame removes a pending request. Unknown or already-run IDs are
// ignored.
func (t *Ticker) CancelFrame(id FrameID) {
	for i := range t.pending {
		if t.pending[i].id == id {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			return
		}
	}
	// A callback earlier in the running batch may cancel a later one.
	for i := range t.running {
		if t.running[i].id == id {
			t.running[i].fn = nil
			return
		}
	}
}

// Pending returns the number of callbacks waiting for the next frame.
func (t *Ticker) Pending() int {
	return len(t.pending)
}

// Now returns the ticker's clock.
func (t *Ticker) Now() time.Duration {
	return t.now
}

// Advance moves the clock forward by dt and runs every callback that was
// pending before the call. It returns the number of callbacks run.
func (t *Ticker) Advance(dt time.Duration) int {
	if dt > 0 {
		t.now += dt
	}
	if len(t.pending) == 0 {
		return 0
	}
	t.running, t.pending = t.pending, t.running[:0]
	ran := 0
	for i := range t.running {
		fn := t.running[i].fn
		if fn == nil {
			continue
		}
		t.running[i].fn = nil
		fn(t.now)
		ran++
	}
	t.running = t.running[:0]
	return ran
}

// Update advances the ticker by one Ebitengine tick (1/TPS seconds).
func (t *Ticker) Update() int {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	return t.Advance(time.Second / time.Duration(tps))
}
