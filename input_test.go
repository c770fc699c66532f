package panzoom

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// fakeInput is a scriptable InputSource. Keys stay pressed until cleared.
type fakeInput struct {
	x, y    int
	wheel   float64
	pressed bool
	touches []Vec2
	keys    map[ebiten.Key]bool
}

func (f *fakeInput) CursorPosition() (int, int) {
	return f.x, f.y
}

func (f *fakeInput) Wheel() (float64, float64) {
	return 0, f.wheel
}

func (f *fakeInput) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return f.pressed && b == ebiten.MouseButtonLeft
}

func (f *fakeInput) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	for i := range f.touches {
		ids = append(ids, ebiten.TouchID(i+1))
	}
	return ids
}

func (f *fakeInput) TouchPosition(id ebiten.TouchID) (int, int) {
	p := f.touches[int(id)-1]
	return int(p.X), int(p.Y)
}

func (f *fakeInput) IsKeyJustPressed(k ebiten.Key) bool {
	return f.keys[k]
}

func (f *fakeInput) press(k ebiten.Key) {
	f.keys = map[ebiten.Key]bool{k: true}
}

func newTestBinder(zoom float64) (*InputBinder, *fakeInput, *Controller, *Ticker) {
	c, ticker := newTestController(zoom, Vec2{}, nil)
	view := NewView(c, Rect{Width: 800, Height: 600})
	src := &fakeInput{}
	return NewInputBinder(view, src, BinderConfig{}), src, c, ticker
}

func TestBinderConfigDefaults(t *testing.T) {
	cfg := BinderConfig{}.withDefaults()
	if cfg.DragDeadZone != defaultDragDeadZone || cfg.WheelScale != 25 ||
		cfg.KeyPanFraction != 0.1 || cfg.KeyZoomStep != 1.25 || cfg.MinFlickSpeed != 50 {
		t.Errorf("defaults = %+v", cfg)
	}
	custom := BinderConfig{WheelScale: -10, KeyZoomStep: 2}.withDefaults()
	if custom.WheelScale != -10 || custom.KeyZoomStep != 2 {
		t.Errorf("custom values overwritten: %+v", custom)
	}
}

func TestBinderWheelZoom(t *testing.T) {
	b, src, c, _ := newTestBinder(1)
	src.x, src.y = 400, 300
	src.wheel = 1
	b.Update()

	if !approxEqual(c.ZoomState().Target, 1.1, 1e-9) {
		t.Errorf("target zoom = %v, want 1.1", c.ZoomState().Target)
	}
	if !c.IsAnimating() {
		t.Error("wheel notch did not start the animation")
	}
}

func TestBinderWheelOutsideView(t *testing.T) {
	b, src, c, ticker := newTestBinder(1)
	src.x, src.y = 900, 300
	src.wheel = 1
	b.Update()
	if c.ZoomState().Target != 1 || ticker.Pending() != 0 {
		t.Error("wheel outside the view changed zoom")
	}
}

func TestBinderDragPansAndFlicks(t *testing.T) {
	b, src, c, _ := newTestBinder(1)

	src.x, src.y, src.pressed = 400, 300, true
	b.Update()
	if b.IsDragging() {
		t.Fatal("press alone started a drag")
	}

	src.x = 450
	b.Update()
	if !b.IsDragging() {
		t.Fatal("move past the dead zone did not start a drag")
	}
	// 50px at 0.8 px per world unit.
	if !approxEqual(c.Pan().X, -62.5, 1e-9) || c.Pan().Y != 0 {
		t.Errorf("pan = %v, want (-62.5,0)", c.Pan())
	}
	if c.IsAnimating() {
		t.Error("drag movement should be instant")
	}

	src.pressed = false
	b.Update()
	if b.IsDragging() {
		t.Error("release did not end the drag")
	}
	if v := c.PanState().Velocity; v.X >= 0 || v.Y != 0 {
		t.Errorf("momentum = %v, want negative X", v)
	}
	if !c.IsAnimating() {
		t.Error("flick did not start the momentum animation")
	}
}

func TestBinderDragWithinDeadZone(t *testing.T) {
	b, src, c, _ := newTestBinder(1)
	src.x, src.y, src.pressed = 400, 300, true
	b.Update()
	src.x = 401
	b.Update()
	if b.IsDragging() || c.Pan() != (Vec2{}) {
		t.Error("movement inside the dead zone panned")
	}
}

func TestBinderHeldDragReleasesWithoutMomentum(t *testing.T) {
	b, src, c, _ := newTestBinder(1)
	src.x, src.y, src.pressed = 400, 300, true
	b.Update()
	src.x = 450
	b.Update()
	for i := 0; i < 12; i++ {
		b.Update()
	}
	src.pressed = false
	b.Update()
	if c.PanState().Velocity != (Vec2{}) || c.IsAnimating() {
		t.Errorf("held drag released with momentum %v", c.PanState().Velocity)
	}
}

func TestBinderPressCatchesMomentum(t *testing.T) {
	b, src, c, ticker := newTestBinder(1)
	c.AddPanMomentum(Vec2{500, 0})
	ticker.Advance(frameStep)

	src.x, src.y, src.pressed = 10, 10, true
	b.Update()
	if c.PanState().Velocity != (Vec2{}) {
		t.Errorf("velocity = %v after press, want zero", c.PanState().Velocity)
	}
	if c.PanState().Target != c.Pan() {
		t.Error("press did not settle the pan target")
	}
}

func TestBinderPressOutsideViewIgnored(t *testing.T) {
	b, src, c, _ := newTestBinder(1)
	src.x, src.y, src.pressed = 900, 300, true
	b.Update()
	src.x = 700
	b.Update()
	if b.IsDragging() || c.Pan() != (Vec2{}) {
		t.Error("drag starting outside the view panned")
	}
}

func TestBinderSingleTouchDrags(t *testing.T) {
	b, src, c, _ := newTestBinder(1)
	src.touches = []Vec2{{400, 300}}
	b.Update()
	src.touches = []Vec2{{400, 380}}
	b.Update()
	if !approxEqual(c.Pan().Y, -100, 1e-9) {
		t.Errorf("pan = %v, want Y -100", c.Pan())
	}
}

func TestBinderPinch(t *testing.T) {
	b, src, c, _ := newTestBinder(1)

	src.touches = []Vec2{{350, 300}, {450, 300}}
	b.Update()
	if !b.IsPinching() || !c.IsGesturing() {
		t.Fatal("two touches did not start a pinch")
	}
	if c.Zoom() != 1 {
		t.Errorf("zoom = %v at pinch start, want 1", c.Zoom())
	}

	src.touches = []Vec2{{300, 300}, {500, 300}}
	b.Update()
	if !approxEqual(c.Zoom(), 2, epsilon) {
		t.Errorf("zoom = %v, want 2", c.Zoom())
	}
	w := ScreenToWorld(Vec2{400, 300}, c.Zoom(), c.Pan(), Size{800, 600})
	if !vecNear(w, Vec2{500, 375}, 0.001) {
		t.Errorf("pinch center drifted to world %v", w)
	}

	src.touches = nil
	b.Update()
	if b.IsPinching() || c.IsGesturing() {
		t.Error("lifting fingers did not end the pinch")
	}
	if !approxEqual(c.Zoom(), 2, epsilon) {
		t.Errorf("zoom = %v after lift, want 2", c.Zoom())
	}
}

func TestBinderPinchPansWithCenter(t *testing.T) {
	b, src, c, _ := newTestBinder(1)
	src.touches = []Vec2{{350, 300}, {450, 300}}
	b.Update()
	src.touches = []Vec2{{430, 300}, {530, 300}}
	b.Update()
	// Center moved 80px right with no scale change: 100 world units left.
	if !approxEqual(c.Pan().X, -100, 1e-9) {
		t.Errorf("pan = %v, want X -100", c.Pan())
	}
}

func TestBinderKeys(t *testing.T) {
	b, src, c, _ := newTestBinder(1)

	src.press(ebiten.KeyArrowRight)
	b.Update()
	if got := c.PanState().Target; got != (Vec2{100, 0}) {
		t.Errorf("arrow right target = %v, want (100,0)", got)
	}

	src.press(ebiten.KeyArrowDown)
	b.Update()
	if got := c.PanState().Target; got != (Vec2{100, 75}) {
		t.Errorf("arrow down target = %v, want (100,75)", got)
	}

	src.press(ebiten.KeyEqual)
	b.Update()
	if !approxEqual(c.ZoomState().Target, 1.25, epsilon) {
		t.Errorf("zoom target = %v, want 1.25", c.ZoomState().Target)
	}

	src.press(ebiten.KeyMinus)
	b.Update()
	if !approxEqual(c.ZoomState().Target, 1, epsilon) {
		t.Errorf("zoom target = %v, want 1", c.ZoomState().Target)
	}

	src.press(ebiten.KeyDigit0)
	b.Update()
	if !c.IsFlying() {
		t.Error("reset key did not start a flight")
	}
	if c.ZoomState().Target != 1 || c.PanState().Target != (Vec2{}) {
		t.Errorf("reset targets zoom %v pan %v", c.ZoomState().Target, c.PanState().Target)
	}
}

func TestBinderKeyboardDisabled(t *testing.T) {
	c, ticker := newTestController(1, Vec2{}, nil)
	src := &fakeInput{}
	b := NewInputBinder(NewView(c, Rect{Width: 800, Height: 600}), src, BinderConfig{DisableKeyboard: true})
	src.press(ebiten.KeyArrowLeft)
	b.Update()
	if ticker.Pending() != 0 || c.PanState().Target != (Vec2{}) {
		t.Error("key handled with keyboard disabled")
	}
}

func TestBinderViewportOffset(t *testing.T) {
	c, _ := newTestController(1, Vec2{}, nil)
	src := &fakeInput{}
	b := NewInputBinder(NewView(c, Rect{X: 200, Y: 100, Width: 800, Height: 600}), src, BinderConfig{})

	src.x, src.y, src.wheel = 600, 400, 4
	b.Update()
	// Zoom anchors at the viewport-local point (400,300), the center.
	want := AdjustPanForZoom(1, c.ZoomState().Target, Vec2{400, 300}, Size{800, 600}, Vec2{})
	if c.PanState().Target != want {
		t.Errorf("pan target = %v, want %v", c.PanState().Target, want)
	}
}
