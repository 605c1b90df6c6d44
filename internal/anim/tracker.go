package anim

import "github.com/iburimskiy/geometry-visualization/internal/palette"

// Tracker is a scalar that animations move and redraw closures read.
type Tracker struct {
	value float64
}

// NewTracker starts a tracker at v.
func NewTracker(v float64) *Tracker { return &Tracker{value: v} }

// Value reads the tracker.
func (t *Tracker) Value() float64 { return t.value }

// Set writes the tracker.
func (t *Tracker) Set(v float64) { t.value = v }

// ColorTracker is a color that animations blend and redraw closures read.
type ColorTracker struct {
	value palette.Color
}

// NewColorTracker starts a color tracker at c.
func NewColorTracker(c palette.Color) *ColorTracker { return &ColorTracker{value: c} }

// Value reads the tracker.
func (t *ColorTracker) Value() palette.Color { return t.value }

// Set writes the tracker.
func (t *ColorTracker) Set(c palette.Color) { t.value = c }
