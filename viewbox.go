package panzoom

// BaseViewBoxWidth is the world-space width visible at zoom 1. The visible
// height follows from the viewport aspect ratio.
const BaseViewBoxWidth = 1000.0

// minZoomValue keeps the view math finite if a non-positive zoom slips through.
const minZoomValue = 1e-6

// ViewBox is the world-space rectangle visible in the viewport. X and Y are
// the pan offset (the world point at the viewport's top-left corner).
type ViewBox struct {
	X, Y, Width, Height float64
}

// Rect returns the viewbox as a Rect.
func (v ViewBox) Rect() Rect {
	return Rect{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height}
}

func safeZoom(z float64) float64 {
	if !(z >= minZoomValue) {
		return minZoomValue
	}
	return z
}

// viewBoxSize returns the visible world width and height at the given zoom.
func viewBoxSize(zoom float64, viewport Size) (w, h float64) {
	zoom = safeZoom(zoom)
	aspect := viewport.Aspect()
	return BaseViewBoxWidth / zoom, BaseViewBoxWidth / aspect / zoom
}

// ViewBoxFor returns the visible world rectangle for the given zoom, pan, and
// viewport size.
func ViewBoxFor(zoom float64, pan Vec2, viewport Size) ViewBox {
	w, h := viewBoxSize(zoom, viewport)
	return ViewBox{X: pan.X, Y: pan.Y, Width: w, Height: h}
}

// normalize maps a screen point to viewport-relative [0,1] coordinates.
func normalize(p Vec2, viewport Size) Vec2 {
	viewport = viewport.sanitize()
	return Vec2{X: p.X / viewport.Width, Y: p.Y / viewport.Height}
}

// ScreenToWorld converts a screen point to world coordinates.
func ScreenToWorld(p Vec2, zoom float64, pan Vec2, viewport Size) Vec2 {
	n := normalize(p, viewport)
	w, h := viewBoxSize(zoom, viewport)
	return Vec2{X: pan.X + n.X*w, Y: pan.Y + n.Y*h}
}

// WorldToScreen converts a world point to screen coordinates.
func WorldToScreen(p Vec2, zoom float64, pan Vec2, viewport Size) Vec2 {
	viewport = viewport.sanitize()
	w, h := viewBoxSize(zoom, viewport)
	return Vec2{
		X: (p.X - pan.X) / w * viewport.Width,
		Y: (p.Y - pan.Y) / h * viewport.Height,
	}
}

// AdjustPanForZoom returns the pan offset that keeps the world point under
// center fixed on screen when zoom changes from oldZoom to newZoom. The
// result is rounded to 3 decimal places.
func AdjustPanForZoom(oldZoom, newZoom float64, center Vec2, viewport Size, pan Vec2) Vec2 {
	n := normalize(center, viewport)
	oldW, oldH := viewBoxSize(oldZoom, viewport)
	newW, newH := viewBoxSize(newZoom, viewport)

	worldX := pan.X + n.X*oldW
	worldY := pan.Y + n.Y*oldH

	return Vec2{
		X: round3(worldX - n.X*newW),
		Y: round3(worldY - n.Y*newH),
	}
}

// clampPanToBounds restricts pan so the visible area stays within bounds.
// If the bounds are smaller than the visible area on an axis, the view is
// centered on the bounds along that axis.
func clampPanToBounds(pan Vec2, zoom float64, viewport Size, bounds Rect) Vec2 {
	w, h := viewBoxSize(zoom, viewport)

	minX := bounds.X
	maxX := bounds.X + bounds.Width - w
	minY := bounds.Y
	maxY := bounds.Y + bounds.Height - h

	if minX > maxX {
		pan.X = bounds.X + (bounds.Width-w)/2
	} else {
		pan.X = clamp(pan.X, minX, maxX)
	}
	if minY > maxY {
		pan.Y = bounds.Y + (bounds.Height-h)/2
	} else {
		pan.Y = clamp(pan.Y, minY, maxY)
	}
	return pan
}
