package scenes

import (
	"math"

	"github.com/iburimskiy/geometry-visualization/internal/anim"
	"github.com/iburimskiy/geometry-visualization/internal/camera"
	"github.com/iburimskiy/geometry-visualization/internal/geom"
	"github.com/iburimskiy/geometry-visualization/internal/palette"
	"github.com/iburimskiy/geometry-visualization/internal/shape"
)

var (
	richGold   = palette.MustParse("#FFD700")
	amberGlow  = palette.MustParse("#FF4500")
	deepBronze = palette.MustParse("#CD7F32")
)

const cinematicRadius = 2.5

// pentagonScale fits the pentagon inside the intersections of the circles.
var pentagonScale = cinematicRadius * math.Sqrt((3-math.Sqrt(5))/2) * 1.236

// SacredCinematic builds a glowing gold circle ringed by five bronze ones and
// ignites the pentagon and pentagram they frame.
func SacredCinematic(cam *camera.Camera) *anim.Scene {
	s := anim.NewScene("sacred-cinematic", cam)
	s.Background = palette.MustParse("#050505")

	centerBase := shape.Circle(cinematicRadius, richGold).SetStrokeWidth(5).SetSheen(0.8, geom.UR)
	centerCircle := shape.Glow(centerBase, richGold, 3, 12, 0.2)

	ring := shape.Group()
	for _, c := range geom.RingPositions(5, cinematicRadius, 90*geom.Degrees) {
		base := shape.Circle(cinematicRadius, deepBronze).SetStrokeWidth(3)
		ring.Add(shape.Glow(base, deepBronze, 2, 8, 0.15).MoveTo(c))
	}

	turn := 216 * geom.Degrees
	pentagon := shape.RegularPolygon(5, amberGlow).SetStrokeWidth(6)
	pentagon.Scale(pentagonScale).Rotate(turn)
	pentagram := shape.Star(5, pentagon.Width()/2, amberGlow).SetStrokeWidth(4)
	pentagram.Rotate(turn)
	symmetry := shape.Glow(shape.Group(pentagon, pentagram), amberGlow, 6, 40, 0.5)

	s.Play(anim.For(2.5).With(anim.Smooth),
		anim.DrawBorderThenFill(centerBase),
		anim.FadeIn(shape.Halos(centerCircle)),
	)
	s.Wait(0.5)

	var draws, glows []anim.Animation
	for _, c := range ring.Children {
		draws = append(draws, anim.Create(c.Last()))
		glows = append(glows, anim.FadeIn(shape.Halos(c)))
	}
	s.Play(anim.For(5).With(anim.Linear),
		anim.LaggedStart(0.3, draws...),
		anim.LaggedStart(0.3, glows...),
	)

	dim := func(m *shape.Shape) { m.SetOpacity(0.2) }
	s.Play(anim.For(1.5),
		anim.Animate(centerCircle, dim),
		anim.Animate(ring, dim),
	)

	s.Play(anim.For(3).With(anim.ThereAndBackWithPause),
		anim.Create(symmetry.Last()),
		anim.FadeIn(shape.Halos(symmetry)),
	)

	s.Play(anim.For(7).With(anim.Smooth),
		anim.Rotate(shape.Group(centerCircle, ring, symmetry), math.Pi/5),
	)
	return s
}
