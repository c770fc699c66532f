package panzoom

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// View derives rendering transforms from a Controller for a screen-space
// viewport rectangle.
type View struct {
	ctrl *Controller
	// Viewport is the screen-space rectangle this view renders into. Call
	// SetViewport to change it so the controller sees the new size.
	Viewport Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	cacheZoom     float64
	cachePan      Vec2
	cacheViewport Rect
	valid         bool
}

// NewView creates a View over ctrl and records the viewport size on the
// controller.
func NewView(ctrl *Controller, viewport Rect) *View {
	v := &View{ctrl: ctrl}
	v.SetViewport(viewport)
	return v
}

// Controller returns the controller this view reads from.
func (v *View) Controller() *Controller {
	return v.ctrl
}

// SetViewport changes the screen rectangle and updates the controller's
// viewport size.
func (v *View) SetViewport(viewport Rect) {
	v.Viewport = viewport
	v.ctrl.SetViewport(v.size())
}

func (v *View) size() Size {
	return Size{Width: v.Viewport.Width, Height: v.Viewport.Height}.sanitize()
}

// ViewBox returns the visible world rectangle.
func (v *View) ViewBox() ViewBox {
	return ViewBoxFor(v.ctrl.Zoom(), v.ctrl.Pan(), v.size())
}

// Scale returns screen pixels per world unit.
func (v *View) Scale() float64 {
	w, _ := viewBoxSize(v.ctrl.Zoom(), v.size())
	return v.size().Width / w
}

// Matrix returns the world-to-screen affine matrix, recomputing it only when
// zoom, pan, or viewport changed.
//
//	Matrix = Translate(vp.X, vp.Y) * Scale(s) * Translate(-pan.X, -pan.Y)
func (v *View) Matrix() [6]float64 {
	z, p := v.ctrl.Zoom(), v.ctrl.Pan()
	if v.valid && z == v.cacheZoom && p == v.cachePan && v.Viewport == v.cacheViewport {
		return v.viewMatrix
	}
	s := v.Scale()
	m := multiplyAffine([6]float64{s, 0, 0, s, 0, 0}, [6]float64{1, 0, 0, 1, -p.X, -p.Y})
	v.viewMatrix = multiplyAffine([6]float64{1, 0, 0, 1, v.Viewport.X, v.Viewport.Y}, m)
	v.invViewMatrix = invertAffine(v.viewMatrix)
	v.cacheZoom, v.cachePan, v.cacheViewport = z, p, v.Viewport
	v.valid = true
	return v.viewMatrix
}

// GeoM returns the world-to-screen transform for ebiten.DrawImageOptions.
// Concatenate it after an object's own world transform.
func (v *View) GeoM() ebiten.GeoM {
	return geoM(v.Matrix())
}

// WorldToScreen converts world coordinates to screen coordinates.
func (v *View) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return transformPoint(v.Matrix(), wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (v *View) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	v.Matrix()
	return transformPoint(v.invViewMatrix, sx, sy)
}

// Local converts a screen point to viewport-relative coordinates, the form
// the gesture handlers expect for zoom centers.
func (v *View) Local(sx, sy float64) Vec2 {
	return Vec2{X: sx - v.Viewport.X, Y: sy - v.Viewport.Y}
}

// Contains reports whether a screen point lies inside the viewport.
func (v *View) Contains(sx, sy float64) bool {
	return v.Viewport.Contains(sx, sy)
}

// VisibleBounds returns the axis-aligned bounding rect of the visible area in
// world space.
func (v *View) VisibleBounds() Rect {
	v.Matrix()
	inv := v.invViewMatrix

	vx := v.Viewport.X
	vy := v.Viewport.Y
	vr := vx + v.Viewport.Width
	vb := vy + v.Viewport.Height

	x0, y0 := transformPoint(inv, vx, vy)
	x1, y1 := transformPoint(inv, vr, vb)

	minX, maxX := math.Min(x0, x1), math.Max(x0, x1)
	minY, maxY := math.Min(y0, y1), math.Max(y0, y1)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Invalidate forces a recomputation of the view matrix.
func (v *View) Invalidate() {
	v.valid = false
}
