// Package panzoom is a smooth zoom and pan view controller for 2D map and
// diagram editors built on [Ebitengine].
//
// A [Controller] owns the current and target zoom and pan. Gesture handlers
// set targets; an animation loop, paced by a [FrameScheduler], blends the
// current values toward them once per frame and pushes every change to the
// host through caller-supplied setters. Nothing in the controller touches
// rendering, so the same controller can drive an ebiten view, a test, or an
// ECS component.
//
// # Quick start
//
//	ticker := panzoom.NewTicker()
//	ctrl := panzoom.New(panzoom.Options{
//		Zoom:      1,
//		Scheduler: ticker,
//		SetZoom:   func(z float64) { state.Zoom = z },
//		SetPan:    func(p panzoom.Vec2) { state.Pan = p },
//	})
//	view := panzoom.NewView(ctrl, panzoom.Rect{Width: 800, Height: 600})
//	binder := panzoom.NewInputBinder(view, nil, panzoom.BinderConfig{})
//
//	func (g *Game) Update() error {
//		g.binder.Update() // wheel, drag, pinch, keys -> gestures
//		g.ticker.Update() // one animation frame
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		var op ebiten.DrawImageOptions
//		op.GeoM = g.view.GeoM()
//		screen.DrawImage(g.world, &op)
//	}
//
// # Coordinates
//
// Pan is the world point at the viewport's top-left corner. The visible
// world rectangle (the [ViewBox]) is [BaseViewBoxWidth]/zoom wide, with its
// height following the viewport aspect ratio. Zoom centers passed to the
// gesture handlers are viewport-relative screen points.
//
// # Gestures
//
// [Controller.WheelZoom] applies small steps at once and animates large
// ones. [Controller.PinchZoom] always applies at once. [Controller.SetZoomLevel]
// and [Controller.AnimatedPan] always animate. [Controller.InstantPan]
// writes through for drags, and [Controller.AddPanMomentum] keeps the view
// gliding after a flick. [Controller.FlyTo] runs a fixed-duration eased
// transition via [gween].
//
// Zoom always stays within [Config] MinZoom and MaxZoom. Optional snap
// levels and world bounds are applied by the animation loop.
//
// See package ecs for a [Donburi] adapter.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package panzoom
