package scenes

import (
	"fmt"
	"math"

	"github.com/iburimskiy/geometry-visualization/internal/anim"
	"github.com/iburimskiy/geometry-visualization/internal/camera"
	"github.com/iburimskiy/geometry-visualization/internal/geom"
	"github.com/iburimskiy/geometry-visualization/internal/palette"
	"github.com/iburimskiy/geometry-visualization/internal/shape"
)

const (
	roseAmplitude = 2.5
	equationSize  = 0.6
)

// OddSymmetry morphs the rose r = 2.5 cos(n t) through n = 1, 3, 5, 7 over a
// faint polar grid while a live label follows n.
func OddSymmetry(cam *camera.Camera) *anim.Scene {
	s := anim.NewScene("odd-symmetry", cam)
	s.Background = palette.MustParse("#101010")

	plane := shape.PolarPlane(shape.PlaneOptions{
		RadiusMax:  3.5,
		RadiusStep: 1,
		Divisions:  12,
		Color:      palette.Teal,
		Opacity:    0.2,
		LabelSize:  0.25,
		LabelColor: palette.White,
	})

	n := anim.NewTracker(1)
	tint := anim.NewColorTracker(palette.Yellow)
	spin := anim.NewTracker(0)

	rose := func(width, opacity float64) *shape.Shape {
		c := shape.Parametric(geom.Rose(roseAmplitude, n.Value()), 0, 2*math.Pi, tint.Value())
		c.SetStroke(tint.Value(), width, opacity)
		return c.RotateAbout(spin.Value(), geom.Out, geom.Origin)
	}
	glow := s.Redraw(func() *shape.Shape { return rose(15, 0.3) })
	graph := s.Redraw(func() *shape.Shape { return rose(6, 1).SetSheen(0.5, geom.UR) })

	equation := shape.Text(equationSize,
		shape.Run{Text: "r = cos(", Color: palette.White},
		shape.Run{Text: "n", Color: palette.Orange},
		shape.Run{Text: "θ)", Color: palette.White},
	).ToCorner(cam.FrameWidth(), camera.FrameHeight, geom.UL, 0.5)

	number := s.Redraw(func() *shape.Shape {
		return shape.Plain(equationSize, fmt.Sprintf("n = %.0f", n.Value()), palette.Orange).
			Below(equation, 0.25)
	})

	s.Play(anim.For(1.5), anim.Create(plane))
	s.Play(anim.For(1), anim.Write(equation))
	s.Play(anim.For(1), anim.FadeIn(number))

	s.Play(anim.For(1.5), anim.Create(glow), anim.Create(graph))
	s.Wait(0.5)

	s.Play(anim.For(2).With(anim.Smooth), anim.SetValue(n, 3))
	s.Wait(1)

	s.Play(anim.For(2).With(anim.Smooth), anim.SetValue(n, 5), anim.SetColor(tint, palette.Gold))
	s.Wait(1)

	s.Play(anim.For(2).With(anim.Smooth), anim.SetValue(n, 7), anim.SetColor(tint, palette.Pink))
	s.Wait(2)

	s.Play(anim.For(3), anim.SetValue(spin, math.Pi/4))
	return s
}
