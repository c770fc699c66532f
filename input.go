package panzoom

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

// InputSource reads raw device input. EbitenInput is the default; tests and
// tools can supply their own.
type InputSource interface {
	CursorPosition() (x, y int)
	Wheel() (xoff, yoff float64)
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	AppendTouchIDs(touches []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (x, y int)
	IsKeyJustPressed(key ebiten.Key) bool
}

type ebitenInput struct{}

// EbitenInput returns an InputSource backed by Ebitengine's global input state.
func EbitenInput() InputSource {
	return ebitenInput{}
}

func (ebitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}
func (ebitenInput) Wheel() (float64, float64) {
	return ebiten.Wheel()
}
func (ebitenInput) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}
func (ebitenInput) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}
func (ebitenInput) AppendTouchIDs(t []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(t)
}
func (ebitenInput) IsKeyJustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

// BinderConfig tunes how raw input maps to gestures. Zero fields take
// defaults.
type BinderConfig struct {
	// DragDeadZone is the distance in pixels a pointer must travel before a
	// press becomes a drag. Default 2.
	DragDeadZone float64
	// WheelScale converts wheel notches to WheelZoom deltas. Default 25.
	WheelScale float64
	// KeyPanFraction is the fraction of the visible area an arrow key pans.
	// Default 0.1.
	KeyPanFraction float64
	// KeyZoomStep is the zoom multiplier of one +/- key press. Default 1.25.
	KeyZoomStep float64
	// MinFlickSpeed is the release speed in world units per second below
	// which a drag ends without momentum. Default 50.
	MinFlickSpeed float64
	// DisableKeyboard turns off arrow, +/-, and 0 key handling.
	DisableKeyboard bool
}

const defaultDragDeadZone = 2.0

func (c BinderConfig) withDefaults() BinderConfig {
	if c.DragDeadZone <= 0 {
		c.DragDeadZone = defaultDragDeadZone
	}
	if c.WheelScale == 0 {
		c.WheelScale = 25
	}
	if c.KeyPanFraction <= 0 {
		c.KeyPanFraction = 0.1
	}
	if c.KeyZoomStep <= 1 {
		c.KeyZoomStep = 1.25
	}
	if c.MinFlickSpeed <= 0 {
		c.MinFlickSpeed = 50
	}
	return c
}

// boundKeys are the keys the binder reacts to.
var boundKeys = []ebiten.Key{
	ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyArrowUp, ebiten.KeyArrowDown,
	ebiten.KeyEqual, ebiten.KeyNumpadAdd, ebiten.KeyMinus, ebiten.KeyNumpadSubtract,
	ebiten.KeyDigit0, ebiten.KeyNumpad0,
}

// resetDuration is the FlyTo duration of the reset key.
const resetDuration = 0.4

// inputFrame is one frame of raw input, read from the source or injected.
type inputFrame struct {
	cursor  Vec2
	pressed bool
	wheel   float64
	touches []Vec2
	keys    []ebiten.Key
}

type dragState struct {
	down     bool
	dragging bool
	start    Vec2
	last     Vec2
	velocity Vec2 // world units per second
}

type pinchState struct {
	active      bool
	initialDist float64
	prevCenter  Vec2
	lastScale   float64
	lastCenter  Vec2
}

// InputBinder turns mouse, wheel, touch, and keyboard input into Controller
// gestures for one View. Call Update once per frame, before advancing the
// controller's scheduler.
type InputBinder struct {
	view *View
	src  InputSource
	cfg  BinderConfig

	drag     dragState
	pinch    pinchState
	touchBuf []ebiten.TouchID
	frame    inputFrame

	injectQueue []inputFrame
	runner      *GestureRunner
}

// NewInputBinder creates a binder for view. A nil src reads Ebitengine input.
func NewInputBinder(view *View, src InputSource, cfg BinderConfig) *InputBinder {
	if src == nil {
		src = EbitenInput()
	}
	return &InputBinder{view: view, src: src, cfg: cfg.withDefaults()}
}

// View returns the bound view.
func (b *InputBinder) View() *View {
	return b.view
}

// IsDragging reports whether a pointer drag is in progress.
func (b *InputBinder) IsDragging() bool {
	return b.drag.dragging
}

// IsPinching reports whether a two-finger pinch is in progress.
func (b *InputBinder) IsPinching() bool {
	return b.pinch.active
}

// Update reads one frame of input and dispatches gestures. Injected input,
// when queued, replaces device input for the frame.
func (b *InputBinder) Update() {
	if b.runner != nil {
		b.runner.step(b)
	}
	var in inputFrame
	if len(b.injectQueue) > 0 {
		in = b.injectQueue[0]
		copy(b.injectQueue, b.injectQueue[1:])
		b.injectQueue = b.injectQueue[:len(b.injectQueue)-1]
	} else {
		in = b.readFrame()
	}
	b.process(in)
}

// readFrame samples the input source.
func (b *InputBinder) readFrame() inputFrame {
	in := &b.frame
	mx, my := b.src.CursorPosition()
	in.cursor = Vec2{X: float64(mx), Y: float64(my)}
	in.pressed = b.src.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		b.src.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	_, in.wheel = b.src.Wheel()

	b.touchBuf = b.src.AppendTouchIDs(b.touchBuf[:0])
	in.touches = in.touches[:0]
	for _, id := range b.touchBuf {
		tx, ty := b.src.TouchPosition(id)
		in.touches = append(in.touches, Vec2{X: float64(tx), Y: float64(ty)})
	}

	in.keys = in.keys[:0]
	if !b.cfg.DisableKeyboard {
		for _, k := range boundKeys {
			if b.src.IsKeyJustPressed(k) {
				in.keys = append(in.keys, k)
			}
		}
	}
	return *in
}

func (b *InputBinder) process(in inputFrame) {
	switch {
	case len(in.touches) >= 2:
		b.processPinch(in.touches[0], in.touches[1])
	case b.pinch.active:
		b.endPinch()
	}

	if !b.pinch.active {
		switch {
		case len(in.touches) == 1:
			b.processPointer(in.touches[0], true)
		default:
			b.processPointer(in.cursor, in.pressed)
		}
	}

	if in.wheel != 0 && b.view.Contains(in.cursor.X, in.cursor.Y) {
		b.view.ctrl.WheelZoom(in.wheel*b.cfg.WheelScale, b.view.Local(in.cursor.X, in.cursor.Y), b.view.size())
	}

	for _, k := range in.keys {
		b.processKey(k)
	}
}

// processPointer runs the drag state machine for the primary pointer.
func (b *InputBinder) processPointer(p Vec2, pressed bool) {
	ctrl := b.view.ctrl
	d := &b.drag

	switch {
	case pressed && !d.down:
		if !b.view.Contains(p.X, p.Y) {
			return
		}
		d.down = true
		d.dragging = false
		d.start = p
		d.last = p
		d.velocity = Vec2{}
		// Catch the view: a press stops any pan momentum.
		if ctrl.pan.Velocity != (Vec2{}) {
			ctrl.InstantPan(ctrl.Pan())
		}

	case pressed && d.down:
		if p == d.last {
			d.velocity = d.velocity.Scale(0.5)
			return
		}
		if !d.dragging && p.Sub(d.start).Len() > b.cfg.DragDeadZone {
			d.dragging = true
			d.last = d.start
		}
		if d.dragging {
			delta := p.Sub(d.last)
			world := ctrl.screenToWorldDelta(delta)
			ctrl.PanBy(delta)
			inst := world.Scale(-1 / frameSeconds())
			d.velocity = d.velocity.Scale(0.2).Add(inst.Scale(0.8))
		}
		d.last = p

	case !pressed && d.down:
		if d.dragging && d.velocity.Len() >= b.cfg.MinFlickSpeed {
			ctrl.AddPanMomentum(d.velocity)
		}
		*d = dragState{}
	}
}

// processPinch tracks a two-finger gesture, zooming by the ratio of finger
// distance to the distance at gesture start and panning with the midpoint.
func (b *InputBinder) processPinch(t0, t1 Vec2) {
	ctrl := b.view.ctrl
	center := b.view.Local((t0.X+t1.X)/2, (t0.Y+t1.Y)/2)
	dist := t1.Sub(t0).Len()

	if !b.pinch.active {
		b.pinch = pinchState{
			active:      true,
			initialDist: dist,
			prevCenter:  center,
			lastScale:   1,
			lastCenter:  center,
		}
		// Suppress the drag the first finger may have started.
		b.drag = dragState{}
		ctrl.PinchZoom(1, center, b.view.size(), true)
		return
	}

	scale := 1.0
	if b.pinch.initialDist > 0 {
		scale = dist / b.pinch.initialDist
	}
	if moved := center.Sub(b.pinch.prevCenter); moved != (Vec2{}) {
		ctrl.PanBy(moved)
	}
	ctrl.PinchZoom(scale, center, b.view.size(), true)
	b.pinch.prevCenter = center
	b.pinch.lastScale = scale
	b.pinch.lastCenter = center
}

func (b *InputBinder) endPinch() {
	b.view.ctrl.PinchZoom(b.pinch.lastScale, b.pinch.lastCenter, b.view.size(), false)
	b.pinch = pinchState{}
}

// processKey handles one key press.
func (b *InputBinder) processKey(k ebiten.Key) {
	ctrl := b.view.ctrl
	size := b.view.size()
	center := Vec2{X: size.Width / 2, Y: size.Height / 2}
	vb := ViewBoxFor(ctrl.zoom.Target, ctrl.pan.Target, size)
	stepX := vb.Width * b.cfg.KeyPanFraction
	stepY := vb.Height * b.cfg.KeyPanFraction

	switch k {
	case ebiten.KeyArrowLeft:
		ctrl.AnimatedPan(ctrl.pan.Target.Add(Vec2{X: -stepX}))
	case ebiten.KeyArrowRight:
		ctrl.AnimatedPan(ctrl.pan.Target.Add(Vec2{X: stepX}))
	case ebiten.KeyArrowUp:
		ctrl.AnimatedPan(ctrl.pan.Target.Add(Vec2{Y: -stepY}))
	case ebiten.KeyArrowDown:
		ctrl.AnimatedPan(ctrl.pan.Target.Add(Vec2{Y: stepY}))
	case ebiten.KeyEqual, ebiten.KeyNumpadAdd:
		ctrl.SetZoomLevel(ctrl.zoom.Target*b.cfg.KeyZoomStep, AtPoint(center, size))
	case ebiten.KeyMinus, ebiten.KeyNumpadSubtract:
		ctrl.SetZoomLevel(ctrl.zoom.Target/b.cfg.KeyZoomStep, AtPoint(center, size))
	case ebiten.KeyDigit0, ebiten.KeyNumpad0:
		ctrl.FlyTo(1, Vec2{}, resetDuration, ease.OutCubic)
	}
}

// frameSeconds returns the duration of one Ebitengine tick.
func frameSeconds() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	return 1 / float64(tps)
}

// pinchTouches returns two touch points dist apart, centered on c.
func pinchTouches(c Vec2, dist float64) []Vec2 {
	h := math.Max(dist, 0) / 2
	return []Vec2{{X: c.X - h, Y: c.Y}, {X: c.X + h, Y: c.Y}}
}
