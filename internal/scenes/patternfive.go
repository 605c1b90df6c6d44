package scenes

import (
	"math"

	"github.com/iburimskiy/geometry-visualization/internal/anim"
	"github.com/iburimskiy/geometry-visualization/internal/camera"
	"github.com/iburimskiy/geometry-visualization/internal/geom"
	"github.com/iburimskiy/geometry-visualization/internal/palette"
	"github.com/iburimskiy/geometry-visualization/internal/shape"
)

const spreadRadius = 4.0

var cream = palette.MustParse("#FFFDD0")

// flower is the five-petal rose r = 1.5 cos(5t), filled at 0.4.
func flower(c palette.Color) *shape.Shape {
	f := shape.Parametric(geom.Flower(1.5), 0, 2*math.Pi, c)
	f.Name = "flower"
	return f.SetStroke(c, 2, 1).SetFill(c, 0.4)
}

// PatternOfFive spawns five colored flowers from a central one onto a ring,
// joins them with a pentagon and lets the group breathe under an orbiting
// camera.
func PatternOfFive(cam *camera.Camera) *anim.Scene {
	s := anim.NewScene("pattern-of-five", cam)
	s.Background = palette.MustParse("#050505")
	s.SetCameraOrientation(75*geom.Degrees, -30*geom.Degrees)

	center := flower(palette.Gold)
	s.Play(anim.For(1.5), anim.GrowFromCenter(center))
	s.Wait(0.5)

	colors := []palette.Color{palette.RedD, palette.Pink, palette.YellowD, palette.Orange, cream}
	targets := geom.RingPositions(5, spreadRadius, math.Pi/2)
	flowers := shape.Group()
	for i, target := range targets {
		f := flower(colors[i])
		flowers.Add(f)
		s.Play(anim.For(1.5).With(anim.Smooth),
			anim.Animate(center, func(m *shape.Shape) { m.Scale(0.1).SetOpacity(0) }),
			anim.Animate(f, func(m *shape.Shape) { m.MoveTo(target).Scale(0.8) }),
		)
	}
	s.Remove(center)

	pentagon := shape.Polygon(palette.BlueE, targets...).SetStroke(palette.BlueE, 3, 0.5)
	pentagonGlow := pentagon.Copy().SetStroke(palette.Blue, 8, 0.2)
	s.Play(anim.For(2), anim.Create(pentagon), anim.FadeIn(pentagonGlow))

	s.BeginAmbientRotation(0.08)
	s.Play(anim.For(2).With(anim.ThereAndBack),
		anim.Animate(flowers, func(m *shape.Shape) { m.Scale(1.05) }, anim.Lag(0.1)),
	)
	s.Wait(4)
	return s
}
