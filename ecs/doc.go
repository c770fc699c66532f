// Package ecs provides Donburi adapters for panzoom controllers.
//
// [NewView] attaches a [ViewComponent] to an entity. The component owns a
// panzoom.Controller whose setters mirror zoom and pan into the component.
// [UpdateViews], called once per frame, advances each view's animation and
// publishes a [ViewChangedEvent] for every view that changed. Process the
// events afterwards:
//
//	world := donburi.NewWorld()
//	entity := ecs.NewView(world, panzoom.Options{Zoom: 1})
//	ecs.ViewChangedEventType.Subscribe(world, onViewChanged)
//
//	// each frame
//	ecs.UpdateViews(world, time.Second/60)
//	ecs.ViewChangedEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
