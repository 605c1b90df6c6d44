// Package geom computes the point sets the scenes are made of: circles,
// polygons, stars, parametric curves and the polyline helpers used to draw
// them partially.
//
// Coordinates are scene units. The frame is 8 units tall, x grows right,
// y grows up and z points out of the screen toward the viewer.
package geom

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is a point or direction in scene space.
type Vec = r3.Vec

// Directions.
var (
	Origin = Vec{}
	Up     = Vec{Y: 1}
	Down   = Vec{Y: -1}
	Left   = Vec{X: -1}
	Right  = Vec{X: 1}
	Out    = Vec{Z: 1}
	In     = Vec{Z: -1}
	UR     = Vec{X: 1, Y: 1}
	UL     = Vec{X: -1, Y: 1}
)

// Degrees converts degrees to radians.
const Degrees = math.Pi / 180

// ErrInvalidGeometry reports a negative radius, a polygon with fewer than
// three vertices or a similar degenerate request.
var ErrInvalidGeometry = errors.New("geom: invalid geometry")

// Polar returns the point at radius r and angle theta in the z=0 plane.
func Polar(r, theta float64) Vec {
	s, c := math.Sincos(theta)
	return Vec{X: r * c, Y: r * s}
}

// RingPositions places n points evenly on a circle, the first at phase.
func RingPositions(n int, radius, phase float64) []Vec {
	out := make([]Vec, n)
	for i := range out {
		out[i] = Polar(radius, phase+float64(i)*2*math.Pi/float64(n))
	}
	return out
}

// Circle samples a circle of radius r around center, starting at angle 0
// and running counterclockwise. The first point is not repeated.
func Circle(center Vec, r float64, n int) ([]Vec, error) {
	if r < 0 {
		return nil, fmt.Errorf("%w: circle radius %v", ErrInvalidGeometry, r)
	}
	if n < 3 {
		return nil, fmt.Errorf("%w: circle resolution %d", ErrInvalidGeometry, n)
	}
	pts := RingPositions(n, r, 0)
	for i := range pts {
		pts[i] = r3.Add(pts[i], center)
	}
	return pts, nil
}

// RegularPolygon returns the n vertices of a regular polygon inscribed in a
// circle of radius r, the first vertex at angle start.
func RegularPolygon(n int, r, start float64) ([]Vec, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: polygon with %d sides", ErrInvalidGeometry, n)
	}
	if r < 0 {
		return nil, fmt.Errorf("%w: polygon radius %v", ErrInvalidGeometry, r)
	}
	return RingPositions(n, r, start), nil
}

// StarInnerRadius is the radius of the inner vertices of the regular star
// {n/density} whose outer vertices lie at outer.
func StarInnerRadius(n, density int, outer float64) float64 {
	return outer * math.Cos(math.Pi*float64(density)/float64(n)) /
		math.Cos(math.Pi*float64(density-1)/float64(n))
}

// Star returns the 2n outline vertices of an n-pointed star, alternating
// outer and inner vertices and starting with the outer one at angle start.
func Star(n int, outer, inner, start float64) ([]Vec, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: star with %d points", ErrInvalidGeometry, n)
	}
	if outer < 0 || inner < 0 {
		return nil, fmt.Errorf("%w: star radii %v/%v", ErrInvalidGeometry, outer, inner)
	}
	step := math.Pi / float64(n)
	out := make([]Vec, 0, 2*n)
	for i := 0; i < n; i++ {
		a := start + 2*float64(i)*step
		out = append(out, Polar(outer, a), Polar(inner, a+step))
	}
	return out, nil
}

// Pentagram reorders five ring points into the star drawing order
// 0, 2, 4, 1, 3. Other counts are visited with the same stride of two.
func Pentagram(pts []Vec) []Vec {
	n := len(pts)
	out := make([]Vec, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, pts[(2*i)%n])
	}
	return out
}

// Sample evaluates f at n evenly spaced parameters over [t0, t1], both ends
// included.
func Sample(f func(t float64) Vec, t0, t1 float64, n int) []Vec {
	if n < 2 {
		n = 2
	}
	out := make([]Vec, n)
	for i := range out {
		out[i] = f(t0 + (t1-t0)*float64(i)/float64(n-1))
	}
	return out
}

// Rose is the polar rose r = a cos(n t).
func Rose(a, n float64) func(t float64) Vec {
	return func(t float64) Vec {
		return Polar(a*math.Cos(n*t), t)
	}
}

// Flower is the five-petal curve (a cos5t cos t, a cos5t sin t, 0).
func Flower(a float64) func(t float64) Vec {
	return Rose(a, 5)
}

// Lerp interpolates between two points.
func Lerp(a, b Vec, t float64) Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// RotateAbout rotates p by angle around axis through about.
func RotateAbout(p Vec, angle float64, axis, about Vec) Vec {
	if angle == 0 || r3.Norm(axis) == 0 {
		return p
	}
	rot := r3.NewRotation(angle, axis)
	return r3.Add(about, rot.Rotate(r3.Sub(p, about)))
}

// ScaleAbout scales p per axis around about.
func ScaleAbout(p, factor, about Vec) Vec {
	d := r3.Sub(p, about)
	return r3.Add(about, Vec{X: d.X * factor.X, Y: d.Y * factor.Y, Z: d.Z * factor.Z})
}

// Uniform returns a per-axis factor equal to f on every axis.
func Uniform(f float64) Vec { return Vec{X: f, Y: f, Z: f} }
