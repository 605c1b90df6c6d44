package scenes

import (
	"math"

	"github.com/iburimskiy/geometry-visualization/internal/anim"
	"github.com/iburimskiy/geometry-visualization/internal/camera"
	"github.com/iburimskiy/geometry-visualization/internal/geom"
	"github.com/iburimskiy/geometry-visualization/internal/palette"
	"github.com/iburimskiy/geometry-visualization/internal/shape"
)

// HiddenFiveReveal draws five overlapping circles and lets the pentagram
// hidden in their intersections light up.
func HiddenFiveReveal(cam *camera.Camera) *anim.Scene {
	s := anim.NewScene("hidden-five-reveal", cam)
	s.Background = palette.MustParse("#050505")

	gold := palette.MustParse("#FFD700")
	glowColor := palette.MustParse("#FFFFE0")
	starColor := palette.MustParse("#FF4500")

	const r = 2.0
	circles := shape.Group()
	for _, c := range geom.RingPositions(5, r*0.6, math.Pi/2) {
		circles.Add(shape.Circle(r, gold).SetStroke(gold, 2, 0.6).MoveTo(c))
	}

	points := geom.Pentagram(geom.RingPositions(5, r*0.4, math.Pi/2))
	star := shape.Polygon(starColor, points...).SetStroke(starColor, 4, 1).SetFill(starColor, 0.3)
	starGlow := star.Copy().SetStroke(glowColor, 10, 0.3)

	s.Wait(0.5)
	s.Play(anim.For(4).With(anim.Smooth), anim.Create(circles, anim.Lag(0.5)))
	s.Wait(0.5)

	s.Play(anim.For(2),
		anim.Create(star),
		anim.FadeIn(starGlow),
		anim.Animate(circles, func(m *shape.Shape) { m.SetStrokeOpacity(0.3) }),
	)

	pulse := func(m *shape.Shape) { m.Scale(1.1) }
	s.Play(anim.For(1.5).With(anim.ThereAndBack),
		anim.Animate(star, pulse),
		anim.Animate(starGlow, pulse),
	)
	s.Wait(2)
	return s
}
