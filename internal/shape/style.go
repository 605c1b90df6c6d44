package shape

import (
	"github.com/iburimskiy/geometry-visualization/internal/geom"
	"github.com/iburimskiy/geometry-visualization/internal/palette"
)

// SetStrokeColor sets the outline color of the family.
func (s *Shape) SetStrokeColor(c palette.Color) *Shape {
	for _, m := range s.Family() {
		m.Stroke.Color = c
	}
	return s
}

// SetStrokeWidth sets the outline width of the family.
func (s *Shape) SetStrokeWidth(w float64) *Shape {
	if w < 0 {
		w = 0
	}
	for _, m := range s.Family() {
		m.Stroke.Width = w
	}
	return s
}

// SetStrokeOpacity sets the outline opacity of the family.
func (s *Shape) SetStrokeOpacity(o float64) *Shape {
	o = clamp01(o)
	for _, m := range s.Family() {
		m.Stroke.Opacity = o
	}
	return s
}

// SetStroke sets color, width and opacity of the outline in one call.
func (s *Shape) SetStroke(c palette.Color, w, o float64) *Shape {
	return s.SetStrokeColor(c).SetStrokeWidth(w).SetStrokeOpacity(o)
}

// SetFill sets fill color and opacity of the family.
func (s *Shape) SetFill(c palette.Color, o float64) *Shape {
	o = clamp01(o)
	for _, m := range s.Family() {
		m.Fill = Fill{Color: c, Opacity: o}
	}
	return s
}

// SetFillOpacity changes only the fill opacity.
func (s *Shape) SetFillOpacity(o float64) *Shape {
	o = clamp01(o)
	for _, m := range s.Family() {
		m.Fill.Opacity = o
	}
	return s
}

// SetColor recolors outline, fill and labels of the family.
func (s *Shape) SetColor(c palette.Color) *Shape {
	for _, m := range s.Family() {
		m.Stroke.Color = c
		m.Fill.Color = c
		if m.Label != nil {
			for i := range m.Label.Runs {
				m.Label.Runs[i].Color = c
			}
		}
	}
	return s
}

// SetOpacity sets outline, fill and label opacity of the family at once.
func (s *Shape) SetOpacity(o float64) *Shape {
	o = clamp01(o)
	for _, m := range s.Family() {
		m.Stroke.Opacity = o
		m.Fill.Opacity = o
		if m.Label != nil {
			m.Label.Opacity = o
		}
	}
	return s
}

// SetSheen adds a metallic highlight toward dir.
func (s *Shape) SetSheen(factor float64, dir geom.Vec) *Shape {
	for _, m := range s.Family() {
		m.Sheen = factor
		m.SheenDir = dir
	}
	return s
}

// SetDrawn sets the visible proportion of every leaf.
func (s *Shape) SetDrawn(p float64) *Shape {
	p = clamp01(p)
	for _, m := range s.Family() {
		m.Drawn = p
		if m.Label != nil {
			m.Label.Reveal = p
		}
	}
	return s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
