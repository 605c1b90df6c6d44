package shape

import (
	"fmt"
	"math"

	"github.com/iburimskiy/geometry-visualization/internal/geom"
	"github.com/iburimskiy/geometry-visualization/internal/palette"
)

// Sampling resolutions.
const (
	CircleResolution = 96
	CurveResolution  = 720
	ConeResolution   = 24
)

// Circle is an outline of radius r centered at the origin.
func Circle(r float64, c palette.Color) *Shape {
	s := newLeaf("circle")
	s.Stroke.Color, s.Fill.Color = c, c
	pts, err := geom.Circle(geom.Origin, r, CircleResolution)
	s.err = err
	s.Paths = []Path{{Points: pts, Closed: true}}
	return s
}

// Dot is a filled disc of radius r at p.
func Dot(p geom.Vec, r float64, c palette.Color) *Shape {
	s := newLeaf("dot")
	if r < 0 {
		s.err = fmt.Errorf("%w: dot radius %v", geom.ErrInvalidGeometry, r)
	}
	s.Paths = []Path{{Points: []geom.Vec{p}}}
	s.DotRadius = r
	s.Stroke = Stroke{Color: c}
	s.Fill = Fill{Color: c, Opacity: 1}
	return s
}

// Line joins a and b.
func Line(a, b geom.Vec, c palette.Color) *Shape {
	s := newLeaf("line")
	s.Stroke.Color, s.Fill.Color = c, c
	s.Paths = []Path{{Points: []geom.Vec{a, b}}}
	return s
}

// Polygon closes the given vertices in order.
func Polygon(c palette.Color, vertices ...geom.Vec) *Shape {
	s := newLeaf("polygon")
	s.Stroke.Color, s.Fill.Color = c, c
	if len(vertices) < 3 {
		s.err = fmt.Errorf("%w: polygon with %d vertices", geom.ErrInvalidGeometry, len(vertices))
	}
	s.Paths = []Path{{Points: append([]geom.Vec(nil), vertices...), Closed: true}}
	return s
}

// RegularPolygon has n sides and circumradius 1. Odd polygons start with a
// vertex at the top, even ones at angle zero.
func RegularPolygon(n int, c palette.Color) *Shape {
	pts, err := geom.RegularPolygon(n, 1, float64(n%2)*90*geom.Degrees)
	s := Polygon(c, pts...)
	s.Name = "regular-polygon"
	if err != nil {
		s.err = err
	}
	return s
}

// Star is the regular star {n/2} with outer vertices at radius outer, the
// first pointing up.
func Star(n int, outer float64, c palette.Color) *Shape {
	inner := geom.StarInnerRadius(n, 2, outer)
	pts, err := geom.Star(n, outer, inner, math.Pi/2)
	s := Polygon(c, pts...)
	s.Name = "star"
	if err != nil {
		s.err = err
	}
	return s
}

// Parametric samples f over [t0, t1] as an open curve.
func Parametric(f func(t float64) geom.Vec, t0, t1 float64, c palette.Color) *Shape {
	s := newLeaf("curve")
	s.Stroke.Color, s.Fill.Color = c, c
	s.Paths = []Path{{Points: geom.Sample(f, t0, t1, CurveResolution)}}
	return s
}

// Cube is an axis-aligned solid of the given side centered at the origin.
func Cube(side float64, c palette.Color) *Shape {
	h := side / 2
	v := func(x, y, z float64) geom.Vec { return geom.Vec{X: x * h, Y: y * h, Z: z * h} }
	faces := [][]geom.Vec{
		{v(-1, -1, -1), v(-1, 1, -1), v(1, 1, -1), v(1, -1, -1)},
		{v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1)},
		{v(-1, -1, -1), v(1, -1, -1), v(1, -1, 1), v(-1, -1, 1)},
		{v(-1, 1, -1), v(-1, 1, 1), v(1, 1, 1), v(1, 1, -1)},
		{v(-1, -1, -1), v(-1, -1, 1), v(-1, 1, 1), v(-1, 1, -1)},
		{v(1, -1, -1), v(1, 1, -1), v(1, 1, 1), v(1, -1, 1)},
	}
	s := solid("cube", faces, c)
	if side < 0 {
		s.err = fmt.Errorf("%w: cube side %v", geom.ErrInvalidGeometry, side)
	}
	return s
}

// Cone has its base disc at z=0 and its apex at z=height.
func Cone(radius, height float64, c palette.Color) *Shape {
	base, err := geom.Circle(geom.Origin, radius, ConeResolution)
	if err != nil {
		s := solid("cone", nil, c)
		s.err = err
		return s
	}
	apex := geom.Vec{Z: height}
	rev := make([]geom.Vec, len(base))
	for i, p := range base {
		rev[len(base)-1-i] = p
	}
	faces := [][]geom.Vec{rev}
	for i := range base {
		faces = append(faces, []geom.Vec{base[i], base[(i+1)%len(base)], apex})
	}
	return solid("cone", faces, c)
}

func solid(name string, faces [][]geom.Vec, c palette.Color) *Shape {
	s := newLeaf(name)
	s.Solid = true
	s.Stroke = Stroke{Color: c, Width: 1, Opacity: 1}
	s.Fill = Fill{Color: c, Opacity: 1}
	for _, f := range faces {
		s.Paths = append(s.Paths, Path{Points: f, Closed: true})
	}
	return s
}
