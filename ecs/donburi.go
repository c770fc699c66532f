package ecs

import (
	"time"

	"github.com/phanxgames/panzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ViewData mirrors a controller's current zoom and pan on an entity.
type ViewData struct {
	Zoom       float64
	Pan        panzoom.Vec2
	Controller *panzoom.Controller

	ticker *panzoom.Ticker
	dirty  bool
}

// ViewComponent is the Donburi component type holding ViewData.
var ViewComponent = donburi.NewComponentType[ViewData]()

// ViewChangedEvent is published by UpdateViews for every view whose zoom or
// pan changed since the previous call.
type ViewChangedEvent struct {
	Entity donburi.Entity
	Zoom   float64
	Pan    panzoom.Vec2
}

// ViewChangedEventType is the Donburi event type for view changes.
var ViewChangedEventType = events.NewEventType[ViewChangedEvent]()

// NewView creates an entity with a ViewComponent driven by a new controller.
// When opts.Scheduler is nil the view gets its own ticker, advanced by
// UpdateViews. Caller setters in opts are still invoked.
func NewView(world donburi.World, opts panzoom.Options) donburi.Entity {
	entity := world.Create(ViewComponent)

	userZoom, userPan := opts.SetZoom, opts.SetPan
	opts.SetZoom = func(z float64) {
		if d := viewData(world, entity); d != nil {
			d.Zoom = z
			d.dirty = true
		}
		if userZoom != nil {
			userZoom(z)
		}
	}
	opts.SetPan = func(p panzoom.Vec2) {
		if d := viewData(world, entity); d != nil {
			d.Pan = p
			d.dirty = true
		}
		if userPan != nil {
			userPan(p)
		}
	}

	ctrl := panzoom.New(opts)
	ViewComponent.SetValue(world.Entry(entity), ViewData{
		Zoom:       ctrl.Zoom(),
		Pan:        ctrl.Pan(),
		Controller: ctrl,
		ticker:     ctrl.Ticker(),
	})
	return entity
}

// Controller returns the controller of a view entity, or nil if the entity
// is gone or has no ViewComponent.
func Controller(world donburi.World, entity donburi.Entity) *panzoom.Controller {
	if d := viewData(world, entity); d != nil {
		return d.Controller
	}
	return nil
}

// RemoveView closes the view's controller and removes the entity.
func RemoveView(world donburi.World, entity donburi.Entity) {
	if d := viewData(world, entity); d != nil && d.Controller != nil {
		d.Controller.Close()
	}
	if world.Valid(entity) {
		world.Remove(entity)
	}
}

// UpdateViews advances every view that owns its ticker by dt and publishes a
// ViewChangedEvent for each view that changed. Events are queued; call
// ViewChangedEventType.ProcessEvents to deliver them.
func UpdateViews(world donburi.World, dt time.Duration) {
	ViewComponent.Each(world, func(entry *donburi.Entry) {
		d := ViewComponent.Get(entry)
		if d.ticker != nil {
			d.ticker.Advance(dt)
		}
		if !d.dirty {
			return
		}
		d.dirty = false
		ViewChangedEventType.Publish(world, ViewChangedEvent{
			Entity: entry.Entity(),
			Zoom:   d.Zoom,
			Pan:    d.Pan,
		})
	})
}

func viewData(world donburi.World, entity donburi.Entity) *ViewData {
	if !world.Valid(entity) {
		return nil
	}
	entry := world.Entry(entity)
	if !entry.HasComponent(ViewComponent) {
		return nil
	}
	return ViewComponent.Get(entry)
}
