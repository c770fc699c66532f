package panzoom

import (
	"math"
	"slices"
)

// Default configuration values used for any zero field of Config.
const (
	DefaultMinZoom          = 0.1
	DefaultMaxZoom          = 10.0
	DefaultZoomSpeed        = 0.004
	DefaultSmoothingFactor  = 0.15
	DefaultMomentumFriction = 0.92
)

// Config controls zoom limits and animation feel. Zero fields take the
// package defaults. A Config is copied when a Controller is created and is
// never mutated afterwards.
type Config struct {
	// MinZoom and MaxZoom bound both current and target zoom.
	MinZoom, MaxZoom float64
	// ZoomSpeed scales wheel deltas: a wheel step multiplies zoom by
	// 1 + delta*ZoomSpeed.
	ZoomSpeed float64
	// SmoothingFactor is the fraction of the remaining distance covered per
	// animation frame, in (0, 1].
	SmoothingFactor float64
	// MomentumFriction is the per-frame (60 Hz) velocity retention factor
	// for momentum panning and zooming, in [0, 1).
	MomentumFriction float64
	// SnapLevels, when non-empty, lists zoom levels the animation settles on
	// after zoom converges. Levels outside [MinZoom, MaxZoom] are dropped.
	SnapLevels []float64
	// Bounds, when non-nil, is the world-space rectangle the visible area
	// is kept inside.
	Bounds *Rect
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{
		MinZoom:          DefaultMinZoom,
		MaxZoom:          DefaultMaxZoom,
		ZoomSpeed:        DefaultZoomSpeed,
		SmoothingFactor:  DefaultSmoothingFactor,
		MomentumFriction: DefaultMomentumFriction,
	}
}

// withDefaults returns a normalized copy of c: zero or invalid fields are
// replaced by defaults, zoom limits are ordered, and snap levels are sorted,
// deduplicated, and restricted to the zoom range.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if !(c.MinZoom > 0) || !finite(c.MinZoom) {
		c.MinZoom = d.MinZoom
	}
	if !(c.MaxZoom > 0) || !finite(c.MaxZoom) {
		c.MaxZoom = d.MaxZoom
	}
	if c.MinZoom > c.MaxZoom {
		c.MinZoom, c.MaxZoom = c.MaxZoom, c.MinZoom
	}
	if c.ZoomSpeed == 0 || !finite(c.ZoomSpeed) {
		c.ZoomSpeed = d.ZoomSpeed
	}
	if !(c.SmoothingFactor > 0) || c.SmoothingFactor > 1 {
		c.SmoothingFactor = d.SmoothingFactor
	}
	if !(c.MomentumFriction > 0) || c.MomentumFriction >= 1 {
		c.MomentumFriction = d.MomentumFriction
	}

	if len(c.SnapLevels) > 0 {
		levels := make([]float64, 0, len(c.SnapLevels))
		for _, l := range c.SnapLevels {
			if finite(l) && l >= c.MinZoom && l <= c.MaxZoom {
				levels = append(levels, l)
			}
		}
		slices.Sort(levels)
		c.SnapLevels = slices.Compact(levels)
	}
	if c.Bounds != nil {
		b := *c.Bounds
		c.Bounds = &b
	}
	return c
}

// clampZoom restricts z to [MinZoom, MaxZoom].
func (c *Config) clampZoom(z float64) float64 {
	return clamp(z, c.MinZoom, c.MaxZoom)
}

// nearestSnapLevel returns the snap level closest to z. ok is false when no
// snap levels are configured.
func (c *Config) nearestSnapLevel(z float64) (level float64, ok bool) {
	if len(c.SnapLevels) == 0 {
		return 0, false
	}
	best := c.SnapLevels[0]
	for _, l := range c.SnapLevels[1:] {
		if math.Abs(l-z) < math.Abs(best-z) {
			best = l
		}
	}
	return best, true
}
