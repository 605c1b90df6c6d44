package scenes

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/iburimskiy/geometry-visualization/internal/anim"
	"github.com/iburimskiy/geometry-visualization/internal/camera"
	"github.com/iburimskiy/geometry-visualization/internal/geom"
	"github.com/iburimskiy/geometry-visualization/internal/palette"
	"github.com/iburimskiy/geometry-visualization/internal/shape"
)

var (
	templeMainGold = palette.MustParse("#D4AF37")
	templeDeepGold = palette.MustParse("#AA8C2C")
	templeGlow     = palette.MustParse("#FFFFF0")
)

const templeScale = 0.8

// temple is a stretched cube plinth with a cone spire on top, standing on
// the floor at pos.
func temple(pos geom.Vec, size float64, main, accent palette.Color) *shape.Shape {
	base := shape.Cube(0.7*size, main).SetStroke(accent, 1, 1)
	base.Stretch(0.4, 2)
	base.MoveTo(r3.Add(pos, geom.Vec{Z: 0.15 * size}))

	spire := shape.Cone(0.35*size, 0.8*size, main).SetStroke(accent, 1, 1)
	spire.NextTo(base, geom.Out, 0)

	t := shape.Group(base, spire)
	t.Name = "temple"
	return t
}

// CirclesToTemple lays out the five-circle plan, marks its points, then tilts
// the camera and raises a shrine on every point.
func CirclesToTemple(cam *camera.Camera) *anim.Scene {
	s := anim.NewScene("circles-to-temple", cam)
	s.Background = palette.MustParse("#0a0a0a")
	s.SetCameraOrientation(0, -90*geom.Degrees)

	r := 2.0 * templeScale
	center := shape.Circle(r, templeMainGold).SetStroke(templeMainGold, 3, 0.8)
	outer := shape.Group()
	for _, p := range geom.RingPositions(4, r, 0) {
		outer.Add(shape.Circle(r, templeDeepGold).SetStroke(templeDeepGold, 2, 0.5).MoveTo(p))
	}
	plan := shape.Group(center, outer)

	s.Play(anim.For(2.5).With(anim.Smooth),
		anim.Create(center),
		anim.Create(outer, anim.Lag(0.1)),
	)
	s.Wait(0.5)

	points := shape.Group(shape.Dot(geom.Origin, 0.1*templeScale, templeGlow))
	corners := geom.RingPositions(4, r*0.8, math.Pi/4)
	for _, p := range corners {
		points.Add(shape.Dot(p, 0.08*templeScale, templeMainGold))
	}

	s.Play(anim.For(1.5),
		anim.Animate(plan, func(m *shape.Shape) { m.SetStrokeOpacity(0.1).SetStrokeWidth(1) }),
		anim.GrowFromCenter(points),
	)
	s.Wait(0.5)

	mainShrine := temple(geom.Origin, 1.2*templeScale, templeDeepGold, templeMainGold)
	shrines := shape.Group()
	lines := shape.Group()
	for _, p := range corners {
		shrine := temple(p, 0.7*templeScale, templeDeepGold, templeMainGold)
		shrines.Add(shrine)
		line := shape.Line(mainShrine.Children[0].Center(), shrine.Children[0].Center(), templeMainGold)
		lines.Add(line.SetStroke(templeMainGold, 1.5, 0.4))
	}

	s.Play(anim.For(2), anim.MoveCamera(70*geom.Degrees, -45*geom.Degrees))
	s.Play(anim.For(0.5), anim.FadeOut(plan), anim.FadeOut(points))

	rise := []anim.Animation{
		anim.Create(lines),
		anim.GrowFromPoint(mainShrine, mainShrine.Bottom()),
	}
	for _, shrine := range shrines.Children {
		rise = append(rise, anim.GrowFromPoint(shrine, shrine.Bottom()))
	}
	s.Play(anim.For(2.5).With(anim.Smooth), rise...)

	s.BeginAmbientRotation(0.1)
	s.Wait(4)
	return s
}
