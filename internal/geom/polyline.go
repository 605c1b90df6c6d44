package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Length is the arc length of a polyline, including the closing segment
// when closed is set.
func Length(pts []Vec, closed bool) float64 {
	var l float64
	for i := 1; i < len(pts); i++ {
		l += r3.Norm(r3.Sub(pts[i], pts[i-1]))
	}
	if closed && len(pts) > 1 {
		l += r3.Norm(r3.Sub(pts[0], pts[len(pts)-1]))
	}
	return l
}

// Partial returns the piece of the polyline between proportions a and b of
// its length. A closed polyline is treated as open, ending at its first
// point again.
func Partial(pts []Vec, closed bool, a, b float64) []Vec {
	if len(pts) == 0 {
		return nil
	}
	if closed {
		pts = append(append(make([]Vec, 0, len(pts)+1), pts...), pts[0])
	}
	a, b = clamp01(a), clamp01(b)
	if b <= a {
		return nil
	}
	total := Length(pts, false)
	if total == 0 {
		return []Vec{pts[0]}
	}
	from, to := a*total, b*total

	var out []Vec
	var walked float64
	for i := 1; i < len(pts); i++ {
		seg := r3.Norm(r3.Sub(pts[i], pts[i-1]))
		s0, s1 := walked, walked+seg
		walked = s1
		if s1 < from || seg == 0 {
			continue
		}
		if len(out) == 0 {
			out = append(out, Lerp(pts[i-1], pts[i], (from-s0)/seg))
		}
		if s1 >= to {
			out = append(out, Lerp(pts[i-1], pts[i], (to-s0)/seg))
			return out
		}
		out = append(out, pts[i])
	}
	return out
}

// Bounds returns the axis-aligned box around pts. ok is false for an empty set.
func Bounds(pts []Vec) (lo, hi Vec, ok bool) {
	if len(pts) == 0 {
		return lo, hi, false
	}
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}
	return lo, hi, true
}

// Normal is the unit normal of a planar polygon (Newell's method). It is
// the zero vector for degenerate input.
func Normal(pts []Vec) Vec {
	var n Vec
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	if r3.Norm(n) == 0 {
		return n
	}
	return r3.Unit(n)
}

// Centroid is the mean of pts.
func Centroid(pts []Vec) Vec {
	var c Vec
	if len(pts) == 0 {
		return c
	}
	for _, p := range pts {
		c = r3.Add(c, p)
	}
	return r3.Scale(1/float64(len(pts)), c)
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
