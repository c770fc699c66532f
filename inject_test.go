package panzoom

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestInjectWheel(t *testing.T) {
	b, _, c, _ := newTestBinder(1)
	b.InjectWheel(400, 300, 1)
	if b.PendingInjections() != 1 {
		t.Fatalf("PendingInjections = %d, want 1", b.PendingInjections())
	}
	b.Update()
	if b.PendingInjections() != 0 {
		t.Error("injected frame not consumed")
	}
	if !approxEqual(c.ZoomState().Target, 1.1, 1e-9) {
		t.Errorf("target = %v, want 1.1", c.ZoomState().Target)
	}
}

func TestInjectReplacesDeviceInput(t *testing.T) {
	b, src, c, _ := newTestBinder(1)
	src.x, src.y, src.wheel = 400, 300, -3
	b.InjectPress(10, 10)
	b.Update()
	if c.ZoomState().Target != 1 {
		t.Error("device wheel read while an injected frame was queued")
	}
	b.Update()
	if c.ZoomState().Target == 1 {
		t.Error("device input not read after the queue drained")
	}
}

func TestInjectDrag(t *testing.T) {
	b, _, c, _ := newTestBinder(1)

	// press 400, moves 425 450 475, release 500.
	b.InjectDrag(400, 300, 500, 300, 5)
	if b.PendingInjections() != 5 {
		t.Fatalf("PendingInjections = %d, want 5", b.PendingInjections())
	}
	for i := 0; i < 5; i++ {
		b.Update()
	}
	if !approxEqual(c.Pan().X, -93.75, 1e-9) {
		t.Errorf("pan = %v, want X -93.75", c.Pan())
	}
	if c.PanState().Velocity.X >= 0 {
		t.Errorf("velocity = %v, want leftward momentum", c.PanState().Velocity)
	}
}

func TestInjectDragMinFrames(t *testing.T) {
	b, _, _, _ := newTestBinder(1)
	b.InjectDrag(0, 0, 10, 10, 0)
	if b.PendingInjections() != 2 {
		t.Errorf("PendingInjections = %d, want 2", b.PendingInjections())
	}
}

func TestInjectPressMoveRelease(t *testing.T) {
	b, _, c, _ := newTestBinder(2)
	b.InjectPress(100, 100)
	b.InjectMove(100, 180)
	b.InjectRelease(100, 180)
	b.Update()
	b.Update()
	if !b.IsDragging() {
		t.Fatal("press and move did not drag")
	}
	// 80px at 1.6 px per world unit.
	if !approxEqual(c.Pan().Y, -50, 1e-9) {
		t.Errorf("pan = %v, want Y -50", c.Pan())
	}
	b.Update()
	if b.IsDragging() {
		t.Error("release did not end the drag")
	}
}

func TestInjectPinch(t *testing.T) {
	b, _, c, _ := newTestBinder(1)
	b.InjectPinch(400, 300, 100, 200, 5)
	if b.PendingInjections() != 5 {
		t.Fatalf("PendingInjections = %d, want 5", b.PendingInjections())
	}
	for i := 0; i < 4; i++ {
		b.Update()
		if !c.IsGesturing() {
			t.Fatalf("frame %d: not gesturing", i)
		}
	}
	b.Update()
	if !approxEqual(c.Zoom(), 2, epsilon) {
		t.Errorf("zoom = %v, want 2", c.Zoom())
	}
	if c.IsGesturing() || b.IsPinching() {
		t.Error("pinch still active after the lift frame")
	}
}

func TestInjectPinchMinFrames(t *testing.T) {
	b, _, _, _ := newTestBinder(1)
	b.InjectPinch(0, 0, 10, 20, 1)
	if b.PendingInjections() != 3 {
		t.Errorf("PendingInjections = %d, want 3", b.PendingInjections())
	}
}

func TestInjectKey(t *testing.T) {
	b, _, c, _ := newTestBinder(1)
	b.InjectKey(ebiten.KeyArrowUp)
	b.Update()
	if got := c.PanState().Target; got != (Vec2{0, -75}) {
		t.Errorf("pan target = %v, want (0,-75)", got)
	}
}

func TestInjectQueueOrder(t *testing.T) {
	b, _, c, _ := newTestBinder(1)
	b.InjectKey(ebiten.KeyEqual)
	b.InjectKey(ebiten.KeyEqual)
	b.Update()
	if !approxEqual(c.ZoomState().Target, 1.25, epsilon) {
		t.Errorf("after one frame target = %v, want 1.25", c.ZoomState().Target)
	}
	b.Update()
	if !approxEqual(c.ZoomState().Target, 1.5625, epsilon) {
		t.Errorf("after two frames target = %v, want 1.5625", c.ZoomState().Target)
	}
}
