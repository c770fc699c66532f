package panzoom

import "github.com/hajimehoshi/ebiten/v2"

// Injected input replaces device input for one frame per queued entry.
// Coordinates are screen coordinates, identical to real mouse and touch input.

// InjectWheel queues one frame with the cursor at (x, y) and the given wheel
// offset in notches (positive zooms in).
func (b *InputBinder) InjectWheel(x, y, notches float64) {
	b.injectQueue = append(b.injectQueue, inputFrame{
		cursor: Vec2{X: x, Y: y},
		wheel:  notches,
	})
}

// InjectPress queues a pointer press at the given screen coordinates.
func (b *InputBinder) InjectPress(x, y float64) {
	b.injectQueue = append(b.injectQueue, inputFrame{cursor: Vec2{X: x, Y: y}, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (b *InputBinder) InjectMove(x, y float64) {
	b.injectQueue = append(b.injectQueue, inputFrame{cursor: Vec2{X: x, Y: y}, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (b *InputBinder) InjectRelease(x, y float64) {
	b.injectQueue = append(b.injectQueue, inputFrame{cursor: Vec2{X: x, Y: y}})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (b *InputBinder) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	b.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		b.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	b.InjectRelease(toX, toY)
}

// InjectPinch queues a two-finger pinch centered on (x, y) whose finger
// distance goes from fromDist to toDist over frames-1 frames, followed by a
// frame with both fingers lifted. Minimum frames is 3.
func (b *InputBinder) InjectPinch(x, y, fromDist, toDist float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	c := Vec2{X: x, Y: y}
	steps := frames - 1
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		b.injectQueue = append(b.injectQueue, inputFrame{
			cursor:  c,
			touches: pinchTouches(c, fromDist+(toDist-fromDist)*t),
		})
	}
	b.injectQueue = append(b.injectQueue, inputFrame{cursor: c})
}

// InjectKey queues one frame in which key was just pressed.
func (b *InputBinder) InjectKey(key ebiten.Key) {
	b.injectQueue = append(b.injectQueue, inputFrame{keys: []ebiten.Key{key}, cursor: Vec2{X: -1, Y: -1}})
}

// PendingInjections returns the number of queued synthetic frames.
func (b *InputBinder) PendingInjections() int {
	return len(b.injectQueue)
}
